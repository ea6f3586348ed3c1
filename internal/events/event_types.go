package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/resty-service/internal/domain"
	"github.com/spec-kit/resty-service/internal/store"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventStaffReplaced      EventType = "staff_replaced"
	EventStaffAdded         EventType = "staff_added"
	EventStaffUpdated       EventType = "staff_updated"
	EventStaffRemoved       EventType = "staff_removed"
	EventStaffSelected      EventType = "staff_selected"
	EventShiftsReplaced     EventType = "shifts_replaced"
	EventShiftAdded         EventType = "shift_added"
	EventShiftUpdated       EventType = "shift_updated"
	EventShiftRemoved       EventType = "shift_removed"
	EventChatMessageAdded   EventType = "chat_message_added"
	EventChatCleared        EventType = "chat_cleared"
	EventInsightsReplaced   EventType = "insights_replaced"
	EventInsightAdded       EventType = "insight_added"
	EventInsightRemoved     EventType = "insight_removed"
	EventAnalyticsUpdated   EventType = "analytics_updated"
	EventSidebarToggled     EventType = "sidebar_toggled"
	EventSidebarCollapsed   EventType = "sidebar_collapsed"
	EventCurrentViewChanged EventType = "current_view_changed"
)

var opEvents = map[store.Op]EventType{
	store.OpSetStaff:            EventStaffReplaced,
	store.OpAddStaff:            EventStaffAdded,
	store.OpUpdateStaff:         EventStaffUpdated,
	store.OpRemoveStaff:         EventStaffRemoved,
	store.OpSetSelectedStaff:    EventStaffSelected,
	store.OpSetShifts:           EventShiftsReplaced,
	store.OpAddShift:            EventShiftAdded,
	store.OpUpdateShift:         EventShiftUpdated,
	store.OpRemoveShift:         EventShiftRemoved,
	store.OpAddChatMessage:      EventChatMessageAdded,
	store.OpClearChatMessages:   EventChatCleared,
	store.OpSetInsights:         EventInsightsReplaced,
	store.OpAddInsight:          EventInsightAdded,
	store.OpRemoveInsight:       EventInsightRemoved,
	store.OpSetAnalytics:        EventAnalyticsUpdated,
	store.OpSetSidebarOpen:      EventSidebarToggled,
	store.OpSetSidebarCollapsed: EventSidebarCollapsed,
	store.OpSetCurrentView:      EventCurrentViewChanged,
}

// Event represents a store change published to interested handlers.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	EntityID  string    `json:"entity_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload,omitempty"`
}

// StaffRemovedPayload payload. DanglingShiftIDs lists shifts still
// referencing the removed staff member.
type StaffRemovedPayload struct {
	StaffID          string   `json:"staff_id"`
	SelectionCleared bool     `json:"selection_cleared"`
	DanglingShiftIDs []string `json:"dangling_shift_ids,omitempty"`
}

// InsightAddedPayload payload.
type InsightAddedPayload struct {
	Insight domain.AIInsight `json:"insight"`
}

// ChatMessageAddedPayload payload.
type ChatMessageAddedPayload struct {
	MessageID   string          `json:"message_id"`
	Role        domain.ChatRole `json:"role"`
	BodyPreview string          `json:"body_preview"`
}

// ViewChangedPayload payload.
type ViewChangedPayload struct {
	View domain.View `json:"view"`
}

const previewLength = 80

// FromChange builds the event describing change, using state for payloads.
// It reports false for operations without an event type.
func FromChange(state store.State, change store.Change, now time.Time) (Event, bool) {
	typ, ok := opEvents[change.Op]
	if !ok {
		return Event{}, false
	}
	event := Event{
		ID:        uuid.NewString(),
		Type:      typ,
		EntityID:  change.ID,
		Timestamp: now,
	}

	switch typ {
	case EventStaffRemoved:
		payload := StaffRemovedPayload{
			StaffID:          change.ID,
			SelectionCleared: change.Touches(store.FieldSelectedStaff),
		}
		for _, shift := range state.Shifts {
			if shift.StaffID == change.ID {
				payload.DanglingShiftIDs = append(payload.DanglingShiftIDs, shift.ID)
			}
		}
		event.Payload = payload
	case EventInsightAdded:
		for _, insight := range state.Insights {
			if insight.ID == change.ID {
				event.Payload = InsightAddedPayload{Insight: insight}
			}
		}
	case EventChatMessageAdded:
		if n := len(state.ChatMessages); n > 0 {
			msg := state.ChatMessages[n-1]
			event.Payload = ChatMessageAddedPayload{
				MessageID:   msg.ID,
				Role:        msg.Role,
				BodyPreview: preview(msg.Content),
			}
		}
	case EventCurrentViewChanged:
		event.Payload = ViewChangedPayload{View: state.CurrentView}
	}
	return event, true
}

func preview(s string) string {
	runes := []rune(s)
	if len(runes) <= previewLength {
		return s
	}
	return string(runes[:previewLength]) + "…"
}
