package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/resty-service/internal/domain"
	"github.com/spec-kit/resty-service/internal/store"
)

// ShiftRequest payload for adding a shift.
type ShiftRequest struct {
	ID        string             `json:"id" validate:"omitempty,max=64"`
	StaffID   string             `json:"staffId" validate:"required"`
	Date      time.Time          `json:"date" validate:"required"`
	StartTime time.Time          `json:"startTime" validate:"required"`
	EndTime   time.Time          `json:"endTime" validate:"required,gtfield=StartTime"`
	Role      domain.Role        `json:"role" validate:"required,oneof=MANAGER WAITER BARTENDER COOK HOST CLEANER"`
	Status    domain.ShiftStatus `json:"status" validate:"omitempty,oneof=SCHEDULED IN_PROGRESS COMPLETED CANCELLED NO_SHOW"`
	Notes     *string            `json:"notes" validate:"omitempty,max=500"`
}

// ToDomain builds the shift; status defaults to SCHEDULED.
func (r ShiftRequest) ToDomain() domain.Shift {
	id := r.ID
	if id == "" {
		id = uuid.NewString()
	}
	status := r.Status
	if status == "" {
		status = domain.ShiftScheduled
	}
	return domain.Shift{
		ID:        id,
		StaffID:   r.StaffID,
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Role:      r.Role,
		Status:    status,
		Notes:     r.Notes,
	}
}

// ReplaceShiftsRequest payload for SetShifts.
type ReplaceShiftsRequest struct {
	Shifts []ShiftRequest `json:"shifts" validate:"dive"`
}

// ShiftPatchRequest payload for partial shift updates.
type ShiftPatchRequest struct {
	StaffID   *string             `json:"staffId" validate:"omitempty,min=1"`
	Date      *time.Time          `json:"date"`
	StartTime *time.Time          `json:"startTime"`
	EndTime   *time.Time          `json:"endTime"`
	Role      *domain.Role        `json:"role" validate:"omitempty,oneof=MANAGER WAITER BARTENDER COOK HOST CLEANER"`
	Status    *domain.ShiftStatus `json:"status" validate:"omitempty,oneof=SCHEDULED IN_PROGRESS COMPLETED CANCELLED NO_SHOW"`
	Notes     *string             `json:"notes" validate:"omitempty,max=500"`
}

// ToPatch converts the request.
func (r ShiftPatchRequest) ToPatch() store.ShiftPatch {
	return store.ShiftPatch{
		StaffID:   r.StaffID,
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Role:      r.Role,
		Status:    r.Status,
		Notes:     r.Notes,
	}
}
