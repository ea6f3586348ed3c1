package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/resty-service/internal/config"
	"github.com/spec-kit/resty-service/internal/domain"
	"github.com/spec-kit/resty-service/internal/events"
	"github.com/spec-kit/resty-service/internal/store"
)

func newObservedService(t *testing.T, webhook string) (*store.Store, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	s := store.New()
	d := events.NewInMemoryDispatcher(logger)
	NewNotificationService(d, logger, config.NotificationConfig{WebhookURL: webhook}).RegisterHandlers()
	t.Cleanup(events.Bridge(s, d))
	return s, logs
}

func TestHighPriorityInsightIsLogged(t *testing.T) {
	s, logs := newObservedService(t, "https://hooks.example/notify")

	s.AddInsight(domain.AIInsight{ID: "low", Priority: domain.PriorityLow, Title: "fine"})
	s.AddInsight(domain.AIInsight{ID: "hi", Priority: domain.PriorityHigh, Type: domain.InsightWarning, Title: "Understaffed"})

	warnings := logs.FilterMessage("high priority insight").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "hi", warnings[0].ContextMap()["insight_id"])
	assert.Equal(t, 1, logs.FilterMessage("sendWebhookNotificationStub").Len())
}

func TestDanglingShiftsAreReported(t *testing.T) {
	s, logs := newObservedService(t, "")

	s.AddStaff(domain.Staff{ID: "s1"})
	s.AddStaff(domain.Staff{ID: "s2"})
	s.AddShift(domain.Shift{ID: "sh1", StaffID: "s1"})

	s.RemoveStaff("s2")
	assert.Equal(t, 0, logs.FilterMessage("shifts reference removed staff").Len())

	s.RemoveStaff("s1")
	warnings := logs.FilterMessage("shifts reference removed staff").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "s1", warnings[0].ContextMap()["staff_id"])
	assert.Equal(t, 0, logs.FilterMessage("sendWebhookNotificationStub").Len())
	assert.Len(t, s.Shifts(), 1)
}

func TestChatClearedIsLogged(t *testing.T) {
	s, logs := newObservedService(t, "")

	s.ClearChatMessages()

	assert.Equal(t, 1, logs.FilterMessage("ChatCleared").Len())
}
