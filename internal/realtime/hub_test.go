package realtime

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/spec-kit/resty-service/internal/domain"
	"github.com/spec-kit/resty-service/internal/store"
)

func startHub(t *testing.T) (*Hub, context.CancelFunc, chan struct{}) {
	t.Helper()
	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		hub.Run(ctx)
	}()
	return hub, cancel, done
}

func receive(t *testing.T, c *Client) Frame {
	t.Helper()
	select {
	case raw, ok := <-c.Send:
		require.True(t, ok, "send channel closed")
		var f Frame
		require.NoError(t, json.Unmarshal(raw, &f))
		return f
	case <-time.After(time.Second):
		t.Fatal("no frame received")
		return Frame{}
	}
}

func TestHubPushesMatchingChanges(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub, cancel, done := startHub(t)
	s := store.New()
	detach := hub.Attach(s)
	defer detach()

	ctx := context.Background()
	all := NewClient(hub, nil, nil)
	shiftsOnly := NewClient(hub, nil, []store.Field{store.FieldShifts})
	require.NoError(t, hub.Register(ctx, all))
	require.NoError(t, hub.Register(ctx, shiftsOnly))
	assert.Equal(t, 2, hub.Count(ctx))

	s.AddStaff(domain.Staff{ID: "s1", Name: "Ana", Role: domain.RoleCook})

	f := receive(t, all)
	assert.Equal(t, FrameState, f.Type)
	require.NotNil(t, f.Change)
	assert.Equal(t, store.OpAddStaff, f.Change.Op)
	assert.Equal(t, "s1", f.Change.ID)
	require.Len(t, f.Data.Staff, 1)
	assert.Equal(t, "Ana", f.Data.Staff[0].Name)

	s.AddShift(domain.Shift{ID: "sh1", StaffID: "s1"})
	f = receive(t, shiftsOnly)
	assert.Equal(t, store.OpAddShift, f.Change.Op)
	assert.Len(t, f.Data.Shifts, 1)
	assert.Equal(t, store.OpAddShift, receive(t, all).Change.Op)
	assert.Empty(t, shiftsOnly.Send)

	hub.Unregister(ctx, all)
	_, ok := <-all.Send
	assert.False(t, ok)
	assert.Equal(t, 1, hub.Count(ctx))

	cancel()
	<-done
	_, ok = <-shiftsOnly.Send
	assert.False(t, ok)
}

func TestSnapshotFrame(t *testing.T) {
	s := store.New()
	s.SetCurrentView(domain.ViewAnalytics)

	raw, err := SnapshotFrame(s.Snapshot())
	require.NoError(t, err)

	var f Frame
	require.NoError(t, json.Unmarshal(raw, &f))
	assert.Equal(t, FrameSnapshot, f.Type)
	assert.Nil(t, f.Change)
	assert.Equal(t, domain.ViewAnalytics, f.Data.CurrentView)
	assert.True(t, f.Data.SidebarOpen)
}

func TestRegisterHonoursContext(t *testing.T) {
	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, hub.Register(ctx, NewClient(hub, nil, nil)), context.Canceled)
	assert.Equal(t, 0, hub.Count(ctx))
}

func TestJoinSnapshotIncludesChangesBeforeRegistration(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub := NewHub(nil)
	s := store.New()
	detach := hub.Attach(s)
	defer detach()

	client := NewClient(hub, nil, nil)
	// The change's broadcast is queued before the hub sees the client.
	s.AddStaff(domain.Staff{ID: "s1", Name: "Ana", Role: domain.RoleCook})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		hub.Run(ctx)
	}()

	require.NoError(t, hub.Join(ctx, client, s))

	first := receive(t, client)
	assert.Equal(t, FrameSnapshot, first.Type)
	require.Len(t, first.Data.Staff, 1)
	assert.Equal(t, "s1", first.Data.Staff[0].ID)

	s.AddStaff(domain.Staff{ID: "s2", Name: "Ben", Role: domain.RoleHost})
	for {
		f := receive(t, client)
		assert.Equal(t, FrameState, f.Type)
		if len(f.Data.Staff) == 2 {
			break
		}
	}

	cancel()
	<-done
}
