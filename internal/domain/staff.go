package domain

import "time"

// Role enumerates restaurant job functions.
type Role string

const (
	RoleManager   Role = "MANAGER"
	RoleWaiter    Role = "WAITER"
	RoleBartender Role = "BARTENDER"
	RoleCook      Role = "COOK"
	RoleHost      Role = "HOST"
	RoleCleaner   Role = "CLEANER"
)

// AllRoles lists roles in the order the roster filter presents them.
var AllRoles = []Role{RoleWaiter, RoleBartender, RoleCook, RoleHost, RoleCleaner, RoleManager}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleManager, RoleWaiter, RoleBartender, RoleCook, RoleHost, RoleCleaner:
		return true
	}
	return false
}

// ShiftSegment is a preferred part of the working day.
type ShiftSegment string

const (
	SegmentMorning   ShiftSegment = "morning"
	SegmentAfternoon ShiftSegment = "afternoon"
	SegmentEvening   ShiftSegment = "evening"
)

// DayAvailability describes when a staff member can work on one weekday.
// StartTime and EndTime use "15:04" notation.
type DayAvailability struct {
	Available       bool           `json:"available" yaml:"available"`
	StartTime       *string        `json:"startTime,omitempty" yaml:"startTime,omitempty"`
	EndTime         *string        `json:"endTime,omitempty" yaml:"endTime,omitempty"`
	PreferredShifts []ShiftSegment `json:"preferredShifts,omitempty" yaml:"preferredShifts,omitempty"`
}

// Clone returns a copy that shares no memory with d.
func (d DayAvailability) Clone() DayAvailability {
	out := d
	if d.StartTime != nil {
		v := *d.StartTime
		out.StartTime = &v
	}
	if d.EndTime != nil {
		v := *d.EndTime
		out.EndTime = &v
	}
	if d.PreferredShifts != nil {
		out.PreferredShifts = append([]ShiftSegment(nil), d.PreferredShifts...)
	}
	return out
}

// WeeklyAvailability holds one DayAvailability per weekday.
type WeeklyAvailability struct {
	Monday    DayAvailability `json:"monday" yaml:"monday"`
	Tuesday   DayAvailability `json:"tuesday" yaml:"tuesday"`
	Wednesday DayAvailability `json:"wednesday" yaml:"wednesday"`
	Thursday  DayAvailability `json:"thursday" yaml:"thursday"`
	Friday    DayAvailability `json:"friday" yaml:"friday"`
	Saturday  DayAvailability `json:"saturday" yaml:"saturday"`
	Sunday    DayAvailability `json:"sunday" yaml:"sunday"`
}

// Day returns the availability for the given weekday.
func (w WeeklyAvailability) Day(d time.Weekday) DayAvailability {
	switch d {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	default:
		return w.Sunday
	}
}

// Clone returns a copy that shares no memory with w.
func (w WeeklyAvailability) Clone() WeeklyAvailability {
	return WeeklyAvailability{
		Monday:    w.Monday.Clone(),
		Tuesday:   w.Tuesday.Clone(),
		Wednesday: w.Wednesday.Clone(),
		Thursday:  w.Thursday.Clone(),
		Friday:    w.Friday.Clone(),
		Saturday:  w.Saturday.Clone(),
		Sunday:    w.Sunday.Clone(),
	}
}

// Staff models a restaurant team member.
type Staff struct {
	ID           string             `json:"id" yaml:"id"`
	Name         string             `json:"name" yaml:"name"`
	Email        string             `json:"email" yaml:"email"`
	Role         Role               `json:"role" yaml:"role"`
	Skills       []string           `json:"skills" yaml:"skills"`
	WageRate     float64            `json:"wageRate" yaml:"wageRate"`
	MaxHours     int                `json:"maxHours" yaml:"maxHours"`
	Availability WeeklyAvailability `json:"availability" yaml:"availability"`
	IsActive     bool               `json:"isActive" yaml:"isActive"`
	CreatedAt    time.Time          `json:"createdAt" yaml:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" yaml:"updatedAt"`
}

// Clone returns a copy that shares no memory with s.
func (s Staff) Clone() Staff {
	out := s
	if s.Skills != nil {
		out.Skills = append([]string(nil), s.Skills...)
	}
	out.Availability = s.Availability.Clone()
	return out
}
