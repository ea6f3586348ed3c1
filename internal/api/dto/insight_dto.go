package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/resty-service/internal/domain"
)

// InsightActionRequest payload.
type InsightActionRequest struct {
	Label  string                   `json:"label" validate:"required"`
	Type   domain.InsightActionType `json:"type" validate:"required,oneof=navigate create update"`
	Target *string                  `json:"target"`
}

// InsightRequest payload for adding an insight.
type InsightRequest struct {
	ID          string                 `json:"id" validate:"omitempty,max=64"`
	Type        domain.InsightType     `json:"type" validate:"required,oneof=warning suggestion info success"`
	Title       string                 `json:"title" validate:"required,max=200"`
	Description string                 `json:"description" validate:"max=2000"`
	Actionable  bool                   `json:"actionable"`
	Action      *InsightActionRequest  `json:"action"`
	Priority    domain.InsightPriority `json:"priority" validate:"required,oneof=low medium high"`
}

// ToDomain builds the insight.
func (r InsightRequest) ToDomain(now time.Time) domain.AIInsight {
	id := r.ID
	if id == "" {
		id = uuid.NewString()
	}
	insight := domain.AIInsight{
		ID:          id,
		Type:        r.Type,
		Title:       r.Title,
		Description: r.Description,
		Actionable:  r.Actionable,
		Priority:    r.Priority,
		CreatedAt:   now,
	}
	if r.Action != nil {
		insight.Action = &domain.InsightAction{Label: r.Action.Label, Type: r.Action.Type, Target: r.Action.Target}
	}
	return insight
}

// ReplaceInsightsRequest payload for SetInsights.
type ReplaceInsightsRequest struct {
	Insights []InsightRequest `json:"insights" validate:"dive"`
}
