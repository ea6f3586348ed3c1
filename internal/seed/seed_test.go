package seed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/resty-service/internal/config"
	"github.com/spec-kit/resty-service/internal/domain"
	"github.com/spec-kit/resty-service/internal/persistence"
	"github.com/spec-kit/resty-service/internal/repository"
	"github.com/spec-kit/resty-service/internal/store"
)

var fixedNow = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

func TestDemoProviderIsDeterministic(t *testing.T) {
	p := NewDemoProvider(func() time.Time { return fixedNow })

	first, err := p.Load(context.Background())
	require.NoError(t, err)
	second, err := p.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first.Staff, 8)
	assert.Len(t, first.Insights, 5)
	require.NotNil(t, first.Analytics)
	assert.Equal(t, 104, first.Analytics.TotalShifts)
	assert.Len(t, first.Analytics.WeeklyTrends, 7)

	ids := map[string]bool{}
	for _, s := range first.Staff {
		assert.True(t, s.Role.Valid(), s.Name)
		assert.False(t, ids[s.ID], "duplicate id %s", s.ID)
		ids[s.ID] = true
	}
	assert.Equal(t, DemoID("staff", "Sarah Johnson"), first.Staff[0].ID)
	assert.Equal(t, "sarah.johnson@restaurant.example", first.Staff[0].Email)
}

func TestDemoAvailabilityMask(t *testing.T) {
	w := weekly("MT.....", domain.SegmentMorning)

	assert.True(t, w.Day(time.Monday).Available)
	assert.True(t, w.Day(time.Tuesday).Available)
	assert.False(t, w.Day(time.Wednesday).Available)
	assert.False(t, w.Day(time.Sunday).Available)
	require.NotNil(t, w.Monday.StartTime)
	assert.Equal(t, "07:00", *w.Monday.StartTime)
	assert.Equal(t, []domain.ShiftSegment{domain.SegmentMorning}, w.Monday.PreferredShifts)
}

func TestFileProvider(t *testing.T) {
	doc := `
staff:
  - id: s1
    name: Ana
    email: ana@example.com
    role: COOK
    skills: [Grill]
    wageRate: 19.5
    maxHours: 40
    isActive: true
    availability:
      monday:
        available: true
        startTime: "09:00"
        endTime: "17:00"
insights:
  - id: i1
    type: warning
    title: Low coverage
    description: Friday is short
    actionable: false
    priority: high
analytics:
  totalStaff: 1
  roleDistribution:
    COOK: 1
`
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	payload, err := NewFileProvider(path).Load(context.Background())
	require.NoError(t, err)

	require.Len(t, payload.Staff, 1)
	assert.Equal(t, domain.RoleCook, payload.Staff[0].Role)
	assert.Equal(t, 19.5, payload.Staff[0].WageRate)
	require.NotNil(t, payload.Staff[0].Availability.Monday.StartTime)
	assert.Equal(t, "09:00", *payload.Staff[0].Availability.Monday.StartTime)
	require.Len(t, payload.Insights, 1)
	assert.Equal(t, domain.PriorityHigh, payload.Insights[0].Priority)
	require.NotNil(t, payload.Analytics)
	assert.Equal(t, 1, payload.Analytics.RoleDistribution[domain.RoleCook])
}

func TestFileProviderErrors(t *testing.T) {
	_, err := NewFileProvider(filepath.Join(t.TempDir(), "missing.yaml")).Load(context.Background())
	assert.Error(t, err)

	_, err = Decode([]byte("staff:\n  - id: s1\n    role: CHEF\n"))
	assert.ErrorContains(t, err, "unknown role")

	_, err = Decode([]byte("staff:\n  - name: nobody\n    role: COOK\n"))
	assert.ErrorContains(t, err, "missing id")

	_, err = Decode([]byte("staff: [unterminated"))
	assert.Error(t, err)
}

type fakeRoster struct {
	staff []domain.Staff
	err   error
}

func (f fakeRoster) List(context.Context, repository.RosterFilter) ([]domain.Staff, error) {
	return f.staff, f.err
}

func TestPostgresProviderMergesRosterWithFallback(t *testing.T) {
	roster := []domain.Staff{{ID: "db-1", Name: "From DB", Role: domain.RoleHost}}
	p := NewPostgresProvider(fakeRoster{staff: roster}, NewDemoProvider(func() time.Time { return fixedNow }), nil)

	payload, err := p.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, roster, payload.Staff)
	assert.Len(t, payload.Insights, 5)
	assert.NotNil(t, payload.Analytics)
}

func TestPostgresProviderPropagatesErrors(t *testing.T) {
	cause := errors.New("relation does not exist")
	p := NewPostgresProvider(fakeRoster{err: cause}, nil, nil)

	_, err := p.Load(context.Background())
	assert.ErrorIs(t, err, cause)
}

func TestNewFromConfig(t *testing.T) {
	logger := zap.NewNop()
	unconfigured := &persistence.Postgres{}

	p, err := NewFromConfig(config.SeedConfig{Source: config.SeedSourceDemo}, unconfigured, logger)
	require.NoError(t, err)
	assert.IsType(t, &DemoProvider{}, p)

	p, err = NewFromConfig(config.SeedConfig{Source: config.SeedSourceFile, File: "x.yaml"}, unconfigured, logger)
	require.NoError(t, err)
	assert.IsType(t, &FileProvider{}, p)

	_, err = NewFromConfig(config.SeedConfig{Source: config.SeedSourcePostgres}, unconfigured, logger)
	assert.Error(t, err)

	_, err = NewFromConfig(config.SeedConfig{Source: "s3"}, unconfigured, logger)
	assert.Error(t, err)
}

func TestApplySeedsStore(t *testing.T) {
	s := store.New()
	require.NoError(t, Apply(context.Background(), NewDemoProvider(func() time.Time { return fixedNow }), s))

	assert.Len(t, s.Staff(), 8)
	assert.Len(t, s.Insights(), 5)
	assert.NotNil(t, s.Analytics())

	failing := ProviderFunc(func(context.Context) (store.Seed, error) { return store.Seed{}, errors.New("nope") })
	assert.Error(t, Apply(context.Background(), failing, store.New()))
}
