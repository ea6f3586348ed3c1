package domain

import "time"

// InsightType classifies an advisory message.
type InsightType string

const (
	InsightWarning    InsightType = "warning"
	InsightSuggestion InsightType = "suggestion"
	InsightInfo       InsightType = "info"
	InsightSuccess    InsightType = "success"
)

// InsightPriority orders insights by urgency.
type InsightPriority string

const (
	PriorityLow    InsightPriority = "low"
	PriorityMedium InsightPriority = "medium"
	PriorityHigh   InsightPriority = "high"
)

// InsightActionType is the effect a suggested action has.
type InsightActionType string

const (
	ActionNavigate InsightActionType = "navigate"
	ActionCreate   InsightActionType = "create"
	ActionUpdate   InsightActionType = "update"
)

// InsightAction is the optional call to action attached to an insight.
type InsightAction struct {
	Label  string            `json:"label" yaml:"label"`
	Type   InsightActionType `json:"type" yaml:"type"`
	Target *string           `json:"target,omitempty" yaml:"target,omitempty"`
}

// AIInsight is a precomputed advisory surfaced on the dashboard.
type AIInsight struct {
	ID          string          `json:"id" yaml:"id"`
	Type        InsightType     `json:"type" yaml:"type"`
	Title       string          `json:"title" yaml:"title"`
	Description string          `json:"description" yaml:"description"`
	Actionable  bool            `json:"actionable" yaml:"actionable"`
	Action      *InsightAction  `json:"action,omitempty" yaml:"action,omitempty"`
	Priority    InsightPriority `json:"priority" yaml:"priority"`
	CreatedAt   time.Time       `json:"createdAt" yaml:"createdAt"`
}
