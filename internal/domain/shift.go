package domain

import "time"

// ShiftStatus tracks the lifecycle of a scheduled work period.
type ShiftStatus string

const (
	ShiftScheduled  ShiftStatus = "SCHEDULED"
	ShiftInProgress ShiftStatus = "IN_PROGRESS"
	ShiftCompleted  ShiftStatus = "COMPLETED"
	ShiftCancelled  ShiftStatus = "CANCELLED"
	ShiftNoShow     ShiftStatus = "NO_SHOW"
)

// Valid reports whether s is a known status.
func (s ShiftStatus) Valid() bool {
	switch s {
	case ShiftScheduled, ShiftInProgress, ShiftCompleted, ShiftCancelled, ShiftNoShow:
		return true
	}
	return false
}

// Shift is a work period filled by one staff member in one role.
// StaffID references Staff.ID; nothing keeps it in sync when staff is removed.
type Shift struct {
	ID        string      `json:"id"`
	StaffID   string      `json:"staffId"`
	Date      time.Time   `json:"date"`
	StartTime time.Time   `json:"startTime"`
	EndTime   time.Time   `json:"endTime"`
	Role      Role        `json:"role"`
	Status    ShiftStatus `json:"status"`
	Notes     *string     `json:"notes,omitempty"`
}

// Duration returns the scheduled length of the shift.
func (s Shift) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}
