package events

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/resty-service/internal/domain"
	"github.com/spec-kit/resty-service/internal/store"
)

func TestDispatcherContinuesAfterHandlerError(t *testing.T) {
	d := NewInMemoryDispatcher(nil)
	var calls []string
	d.Subscribe(EventStaffAdded, func(context.Context, Event) error {
		calls = append(calls, "first")
		return errors.New("boom")
	})
	d.Subscribe(EventStaffAdded, func(context.Context, Event) error {
		calls = append(calls, "second")
		return nil
	})
	d.Subscribe(EventStaffRemoved, func(context.Context, Event) error {
		calls = append(calls, "other")
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventStaffAdded}))
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestEveryStoreOpHasAnEvent(t *testing.T) {
	ops := []store.Op{
		store.OpSetStaff, store.OpAddStaff, store.OpUpdateStaff, store.OpRemoveStaff,
		store.OpSetSelectedStaff, store.OpSetShifts, store.OpAddShift, store.OpUpdateShift,
		store.OpRemoveShift, store.OpAddChatMessage, store.OpClearChatMessages,
		store.OpSetInsights, store.OpAddInsight, store.OpRemoveInsight, store.OpSetAnalytics,
		store.OpSetSidebarOpen, store.OpSetSidebarCollapsed, store.OpSetCurrentView,
	}
	for _, op := range ops {
		_, ok := FromChange(store.State{}, store.Change{Op: op}, time.Now())
		assert.True(t, ok, string(op))
	}
	_, ok := FromChange(store.State{}, store.Change{Op: "unknown"}, time.Now())
	assert.False(t, ok)
}

func TestBridgeReportsDanglingShifts(t *testing.T) {
	s := store.New()
	d := NewInMemoryDispatcher(nil)
	var got []Event
	d.Subscribe(EventStaffRemoved, func(_ context.Context, e Event) error {
		got = append(got, e)
		return nil
	})
	detach := Bridge(s, d)
	defer detach()

	staff := domain.Staff{ID: "s1", Role: domain.RoleCook}
	s.AddStaff(staff)
	s.SetSelectedStaff(&staff)
	s.AddShift(domain.Shift{ID: "sh1", StaffID: "s1"})
	s.AddShift(domain.Shift{ID: "sh2", StaffID: "s2"})
	require.True(t, s.RemoveStaff("s1"))

	require.Len(t, got, 1)
	assert.Equal(t, "s1", got[0].EntityID)
	assert.NotEmpty(t, got[0].ID)
	payload, ok := got[0].Payload.(StaffRemovedPayload)
	require.True(t, ok)
	assert.True(t, payload.SelectionCleared)
	assert.Equal(t, []string{"sh1"}, payload.DanglingShiftIDs)
}

func TestFromChangePayloads(t *testing.T) {
	long := strings.Repeat("a", 200)
	state := store.State{
		ChatMessages: []domain.ChatMessage{{ID: "m1", Role: domain.ChatRoleUser, Content: long}},
		Insights:     []domain.AIInsight{{ID: "i1", Title: "Low coverage"}},
		CurrentView:  domain.ViewStaff,
	}

	e, ok := FromChange(state, store.Change{Op: store.OpAddChatMessage, ID: "m1"}, time.Now())
	require.True(t, ok)
	chat := e.Payload.(ChatMessageAddedPayload)
	assert.Equal(t, "m1", chat.MessageID)
	assert.Equal(t, previewLength+1, len([]rune(chat.BodyPreview)))

	e, _ = FromChange(state, store.Change{Op: store.OpAddInsight, ID: "i1"}, time.Now())
	assert.Equal(t, "Low coverage", e.Payload.(InsightAddedPayload).Insight.Title)

	e, _ = FromChange(state, store.Change{Op: store.OpSetCurrentView}, time.Now())
	assert.Equal(t, domain.ViewStaff, e.Payload.(ViewChangedPayload).View)
}
