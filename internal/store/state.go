package store

import (
	"time"

	"github.com/spec-kit/resty-service/internal/domain"
)

// Field names one independently observable part of the state.
type Field string

const (
	FieldStaff            Field = "staff"
	FieldSelectedStaff    Field = "selectedStaff"
	FieldShifts           Field = "shifts"
	FieldChatMessages     Field = "chatMessages"
	FieldInsights         Field = "insights"
	FieldAnalytics        Field = "analytics"
	FieldSidebarOpen      Field = "sidebarOpen"
	FieldSidebarCollapsed Field = "sidebarCollapsed"
	FieldCurrentView      Field = "currentView"
)

// AllFields lists every field of State.
var AllFields = []Field{
	FieldStaff,
	FieldSelectedStaff,
	FieldShifts,
	FieldChatMessages,
	FieldInsights,
	FieldAnalytics,
	FieldSidebarOpen,
	FieldSidebarCollapsed,
	FieldCurrentView,
}

// ParseField resolves a field name, reporting whether it is known.
func ParseField(name string) (Field, bool) {
	for _, f := range AllFields {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}

// State is an immutable snapshot of the dashboard. Slices and pointers in a
// snapshot are shared with the store and must be treated as read-only.
type State struct {
	Staff            []domain.Staff        `json:"staff"`
	SelectedStaff    *domain.Staff         `json:"selectedStaff"`
	Shifts           []domain.Shift        `json:"shifts"`
	ChatMessages     []domain.ChatMessage  `json:"chatMessages"`
	Insights         []domain.AIInsight    `json:"insights"`
	Analytics        *domain.AnalyticsData `json:"analytics"`
	SidebarOpen      bool                  `json:"sidebarOpen"`
	SidebarCollapsed bool                  `json:"sidebarCollapsed"`
	CurrentView      domain.View           `json:"currentView"`
}

func initialState() State {
	return State{
		Staff:        []domain.Staff{},
		Shifts:       []domain.Shift{},
		ChatMessages: []domain.ChatMessage{},
		Insights:     []domain.AIInsight{},
		SidebarOpen:  true,
		CurrentView:  domain.ViewChat,
	}
}

// Seed is the startup payload produced by a seed provider.
type Seed struct {
	Staff     []domain.Staff        `json:"staff" yaml:"staff"`
	Insights  []domain.AIInsight    `json:"insights" yaml:"insights"`
	Analytics *domain.AnalyticsData `json:"analytics" yaml:"analytics"`
}

// StaffPatch lists the staff fields to overwrite; nil fields are left untouched.
type StaffPatch struct {
	Name         *string                    `json:"name,omitempty"`
	Email        *string                    `json:"email,omitempty"`
	Role         *domain.Role               `json:"role,omitempty"`
	Skills       *[]string                  `json:"skills,omitempty"`
	WageRate     *float64                   `json:"wageRate,omitempty"`
	MaxHours     *int                       `json:"maxHours,omitempty"`
	Availability *domain.WeeklyAvailability `json:"availability,omitempty"`
	IsActive     *bool                      `json:"isActive,omitempty"`
	CreatedAt    *time.Time                 `json:"createdAt,omitempty"`
	UpdatedAt    *time.Time                 `json:"updatedAt,omitempty"`
}

// Apply returns a copy of s with the patch fields merged in.
func (p StaffPatch) Apply(s domain.Staff) domain.Staff {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.Role != nil {
		s.Role = *p.Role
	}
	if p.Skills != nil {
		s.Skills = append([]string(nil), (*p.Skills)...)
	}
	if p.WageRate != nil {
		s.WageRate = *p.WageRate
	}
	if p.MaxHours != nil {
		s.MaxHours = *p.MaxHours
	}
	if p.Availability != nil {
		s.Availability = p.Availability.Clone()
	}
	if p.IsActive != nil {
		s.IsActive = *p.IsActive
	}
	if p.CreatedAt != nil {
		s.CreatedAt = *p.CreatedAt
	}
	if p.UpdatedAt != nil {
		s.UpdatedAt = *p.UpdatedAt
	}
	return s
}

// ShiftPatch lists the shift fields to overwrite; nil fields are left untouched.
type ShiftPatch struct {
	StaffID   *string             `json:"staffId,omitempty"`
	Date      *time.Time          `json:"date,omitempty"`
	StartTime *time.Time          `json:"startTime,omitempty"`
	EndTime   *time.Time          `json:"endTime,omitempty"`
	Role      *domain.Role        `json:"role,omitempty"`
	Status    *domain.ShiftStatus `json:"status,omitempty"`
	Notes     *string             `json:"notes,omitempty"`
}

// Apply returns a copy of s with the patch fields merged in.
func (p ShiftPatch) Apply(s domain.Shift) domain.Shift {
	if p.StaffID != nil {
		s.StaffID = *p.StaffID
	}
	if p.Date != nil {
		s.Date = *p.Date
	}
	if p.StartTime != nil {
		s.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		s.EndTime = *p.EndTime
	}
	if p.Role != nil {
		s.Role = *p.Role
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.Notes != nil {
		notes := *p.Notes
		s.Notes = &notes
	}
	return s
}
