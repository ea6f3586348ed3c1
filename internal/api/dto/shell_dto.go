package dto

import "github.com/spec-kit/resty-service/internal/domain"

// ViewRequest payload for SetCurrentView and Navigate. Unknown views are
// stored as given and rendered as chat.
type ViewRequest struct {
	View domain.View `json:"view" validate:"required,max=32"`
}

// SidebarRequest payload; at least one flag must be set.
type SidebarRequest struct {
	Open      *bool `json:"open" validate:"required_without=Collapsed"`
	Collapsed *bool `json:"collapsed" validate:"required_without=Open"`
}
