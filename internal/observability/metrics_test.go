package observability

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/resty-service/internal/domain"
	"github.com/spec-kit/resty-service/internal/store"
)

func TestMetricsObserveStore(t *testing.T) {
	m := NewMetrics("resty")
	s := store.New()
	detach := m.ObserveStore(s)

	s.AddStaff(domain.Staff{ID: "1"})
	s.AddStaff(domain.Staff{ID: "2"})
	s.RemoveStaff("missing")
	s.SetSidebarOpen(false)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.storeChanges.WithLabelValues(string(store.OpAddStaff))))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.storeChanges.WithLabelValues(string(store.OpRemoveStaff))))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.storeChanges.WithLabelValues(string(store.OpSetSidebarOpen))))

	detach()
	s.AddStaff(domain.Staff{ID: "3"})
	assert.Equal(t, float64(2), testutil.ToFloat64(m.storeChanges.WithLabelValues(string(store.OpAddStaff))))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordRequest("/", "GET", 200, time.Millisecond)
		m.RecordError("/", "GET", "NOT_FOUND")
		assert.NoError(t, m.TrackChatSessions(func() int { return 3 }))
		m.ObserveStore(store.New())()
	})
}

func TestTrackChatSessionsReadsOnScrape(t *testing.T) {
	m := NewMetrics("resty")
	open := 2
	require.NoError(t, m.TrackChatSessions(func() int { return open }))

	count := func() float64 {
		families, err := m.Gatherer().Gather()
		require.NoError(t, err)
		for _, f := range families {
			if f.GetName() == "resty_chat_sessions_open" {
				return f.GetMetric()[0].GetGauge().GetValue()
			}
		}
		t.Fatal("chat sessions gauge not registered")
		return 0
	}

	assert.Equal(t, float64(2), count())
	open = 0
	assert.Equal(t, float64(0), count())

	assert.Error(t, m.TrackChatSessions(func() int { return 1 }))
}

func TestRequestLoggerRecordsAndExposesMetrics(t *testing.T) {
	m := NewMetrics("resty")
	app := fiber.New()
	app.Use(RequestLogger(zap.NewNop(), m))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })
	app.Get("/metrics", m.Handler())

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requestCount.WithLabelValues("/ping", "GET", "200")))

	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "resty_http_requests_total")
}
