package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/resty-service/internal/domain"
	apperrors "github.com/spec-kit/resty-service/pkg/util/errorutil"
)

func validationDetails(t *testing.T, err error) map[string]any {
	t.Helper()
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	require.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	return domainErr.Details
}

func TestStaffRequestValidation(t *testing.T) {
	valid := StaffRequest{Name: "Ana", Email: "ana@example.com", Role: domain.RoleCook, MaxHours: 40}
	require.NoError(t, Validate(valid))

	bad := StaffRequest{Name: "", Email: "nope", Role: "CHEF", MaxHours: 200}
	details := validationDetails(t, Validate(bad))
	assert.Equal(t, "required", details["name"])
	assert.Equal(t, "email", details["email"])
	assert.Contains(t, details["role"], "oneof")
	assert.Equal(t, "lte=168", details["maxHours"])
}

func TestStaffRequestToDomain(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	s := StaffRequest{Name: "Ana", Email: "ana@example.com", Role: domain.RoleCook}.ToDomain(now)
	assert.NotEmpty(t, s.ID)
	assert.True(t, s.IsActive)
	assert.Equal(t, []string{}, s.Skills)
	assert.Equal(t, now, s.CreatedAt)

	inactive := false
	s = StaffRequest{ID: "fixed", IsActive: &inactive}.ToDomain(now)
	assert.Equal(t, "fixed", s.ID)
	assert.False(t, s.IsActive)
}

func TestStaffPatchRequest(t *testing.T) {
	empty := ""
	details := validationDetails(t, Validate(StaffPatchRequest{Name: &empty}))
	assert.Equal(t, "min=1", details["name"])

	role := domain.RoleHost
	req := StaffPatchRequest{Role: &role}
	require.NoError(t, Validate(req))

	now := time.Now()
	patch := req.ToPatch(now)
	assert.Equal(t, &role, patch.Role)
	require.NotNil(t, patch.UpdatedAt)
	assert.Equal(t, now, *patch.UpdatedAt)
	assert.Nil(t, patch.Name)
}

func TestShiftRequest(t *testing.T) {
	start := time.Date(2025, 1, 3, 17, 0, 0, 0, time.UTC)
	req := ShiftRequest{StaffID: "s1", Date: start, StartTime: start, EndTime: start.Add(-time.Hour), Role: domain.RoleWaiter}
	details := validationDetails(t, Validate(req))
	assert.Equal(t, "gtfield=StartTime", details["endTime"])

	req.EndTime = start.Add(6 * time.Hour)
	require.NoError(t, Validate(req))
	shift := req.ToDomain()
	assert.Equal(t, domain.ShiftScheduled, shift.Status)
	assert.NotEmpty(t, shift.ID)
	assert.Equal(t, 6*time.Hour, shift.Duration())
}

func TestNestedValidation(t *testing.T) {
	req := ReplaceInsightsRequest{Insights: []InsightRequest{{
		Type:     domain.InsightWarning,
		Title:    "Short staffed",
		Priority: "urgent",
		Action:   &InsightActionRequest{Type: domain.ActionNavigate},
	}}}
	details := validationDetails(t, Validate(req))
	assert.Contains(t, details, "insights[0].priority")
	assert.Contains(t, details, "insights[0].action.label")
}

func TestSidebarRequestNeedsAFlag(t *testing.T) {
	assert.Error(t, Validate(SidebarRequest{}))
	open := true
	assert.NoError(t, Validate(SidebarRequest{Open: &open}))
}

func TestInsightRequestToDomain(t *testing.T) {
	target := "staff"
	insight := InsightRequest{
		Type:     domain.InsightSuggestion,
		Title:    "Cross-train",
		Priority: domain.PriorityMedium,
		Action:   &InsightActionRequest{Label: "Open", Type: domain.ActionNavigate, Target: &target},
	}.ToDomain(time.Now())

	assert.NotEmpty(t, insight.ID)
	require.NotNil(t, insight.Action)
	assert.Equal(t, &target, insight.Action.Target)
}
