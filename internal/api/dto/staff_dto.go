package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/resty-service/internal/domain"
	"github.com/spec-kit/resty-service/internal/store"
)

// StaffRequest payload for adding a staff member or replacing the roster.
type StaffRequest struct {
	ID           string                    `json:"id" validate:"omitempty,max=64"`
	Name         string                    `json:"name" validate:"required,max=120"`
	Email        string                    `json:"email" validate:"required,email"`
	Role         domain.Role               `json:"role" validate:"required,oneof=MANAGER WAITER BARTENDER COOK HOST CLEANER"`
	Skills       []string                  `json:"skills" validate:"omitempty,dive,required"`
	WageRate     float64                   `json:"wageRate" validate:"gte=0"`
	MaxHours     int                       `json:"maxHours" validate:"gte=0,lte=168"`
	Availability domain.WeeklyAvailability `json:"availability"`
	IsActive     *bool                     `json:"isActive"`
}

// ToDomain builds the staff member, assigning an id when none was given.
func (r StaffRequest) ToDomain(now time.Time) domain.Staff {
	id := r.ID
	if id == "" {
		id = uuid.NewString()
	}
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	skills := append([]string{}, r.Skills...)
	return domain.Staff{
		ID:           id,
		Name:         r.Name,
		Email:        r.Email,
		Role:         r.Role,
		Skills:       skills,
		WageRate:     r.WageRate,
		MaxHours:     r.MaxHours,
		Availability: r.Availability,
		IsActive:     active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ReplaceStaffRequest payload for SetStaff.
type ReplaceStaffRequest struct {
	Staff []StaffRequest `json:"staff" validate:"dive"`
}

// StaffPatchRequest payload for partial staff updates.
type StaffPatchRequest struct {
	Name         *string                    `json:"name" validate:"omitempty,min=1,max=120"`
	Email        *string                    `json:"email" validate:"omitempty,email"`
	Role         *domain.Role               `json:"role" validate:"omitempty,oneof=MANAGER WAITER BARTENDER COOK HOST CLEANER"`
	Skills       *[]string                  `json:"skills"`
	WageRate     *float64                   `json:"wageRate" validate:"omitempty,gte=0"`
	MaxHours     *int                       `json:"maxHours" validate:"omitempty,gte=0,lte=168"`
	Availability *domain.WeeklyAvailability `json:"availability"`
	IsActive     *bool                      `json:"isActive"`
}

// ToPatch converts the request, stamping UpdatedAt.
func (r StaffPatchRequest) ToPatch(now time.Time) store.StaffPatch {
	return store.StaffPatch{
		Name:         r.Name,
		Email:        r.Email,
		Role:         r.Role,
		Skills:       r.Skills,
		WageRate:     r.WageRate,
		MaxHours:     r.MaxHours,
		Availability: r.Availability,
		IsActive:     r.IsActive,
		UpdatedAt:    &now,
	}
}

// StaffListResponse is the filtered roster with its counts.
type StaffListResponse struct {
	Staff []domain.Staff `json:"staff"`
	Total int            `json:"total"`
	Shown int            `json:"shown"`
}

// AppliedResponse reports whether an id-targeted mutation matched.
type AppliedResponse struct {
	Applied bool `json:"applied"`
}
