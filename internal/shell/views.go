package shell

import (
	"strings"

	"github.com/spec-kit/resty-service/internal/domain"
	"github.com/spec-kit/resty-service/internal/store"
)

// Estimates shown on the roster screen until real time tracking exists.
const (
	monthlyWageHours          = 30
	mockAveragePerformance    = 8.5
	maxStaffInsightsDisplayed = 2
)

const maxAnalyticsInsightsDisplayed = 4

// RoleFilterAll disables role filtering on the roster.
const RoleFilterAll = "all"

// SuggestedQuestion is a one-click prompt offered on an empty transcript.
type SuggestedQuestion struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// SuggestedQuestions are offered while the transcript is empty.
var SuggestedQuestions = []SuggestedQuestion{
	{Text: "Create a schedule for next week", Category: "scheduling"},
	{Text: "How many bartenders are available this weekend?", Category: "staff"},
	{Text: "Show me this week's wage costs", Category: "analytics"},
	{Text: "Schedule 3 waiters for Friday evening", Category: "scheduling"},
}

// ChatView is the assistant transcript screen.
type ChatView struct {
	Messages           []domain.ChatMessage `json:"messages"`
	Awaiting           bool                 `json:"awaiting"`
	SuggestedQuestions []SuggestedQuestion  `json:"suggestedQuestions,omitempty"`
}

// RenderChat builds the chat view model.
func RenderChat(state store.State, rc RenderContext) ViewModel {
	view := &ChatView{
		Messages: state.ChatMessages,
		Awaiting: rc.Awaiting,
	}
	if len(state.ChatMessages) == 0 {
		view.SuggestedQuestions = SuggestedQuestions
	}
	return ViewModel{View: domain.ViewChat, Chat: view}
}

// StaffFilter narrows the roster by free-text search and role.
type StaffFilter struct {
	Query string `json:"query"`
	Role  string `json:"role"`
}

// Matches reports whether s passes the filter. The query matches name or
// email case-insensitively; an empty role or "all" matches every role.
func (f StaffFilter) Matches(s domain.Staff) bool {
	q := strings.ToLower(f.Query)
	matchesSearch := strings.Contains(strings.ToLower(s.Name), q) ||
		strings.Contains(strings.ToLower(s.Email), q)
	matchesRole := f.Role == "" || f.Role == RoleFilterAll || string(s.Role) == f.Role
	return matchesSearch && matchesRole
}

// Apply returns the members passing the filter in roster order.
func (f StaffFilter) Apply(list []domain.Staff) []domain.Staff {
	out := make([]domain.Staff, 0, len(list))
	for _, s := range list {
		if f.Matches(s) {
			out = append(out, s)
		}
	}
	return out
}

// StaffStats summarises the roster.
type StaffStats struct {
	Total              int     `json:"total"`
	Active             int     `json:"active"`
	MonthlyWageCost    float64 `json:"monthlyWageCost"`
	AveragePerformance float64 `json:"averagePerformance"`
}

// StaffView is the roster management screen.
type StaffView struct {
	Stats    StaffStats         `json:"stats"`
	Insights []domain.AIInsight `json:"insights"`
	Members  []domain.Staff     `json:"members"`
	Showing  int                `json:"showing"`
	Total    int                `json:"total"`
	Selected *domain.Staff      `json:"selected"`
	Filter   StaffFilter        `json:"filter"`
	Roles    []domain.Role      `json:"roles"`
}

// RenderStaff builds the roster view model.
func RenderStaff(state store.State, rc RenderContext) ViewModel {
	members := rc.StaffFilter.Apply(state.Staff)
	return ViewModel{View: domain.ViewStaff, Staff: &StaffView{
		Stats:    staffStats(state.Staff),
		Insights: staffInsights(state.Insights),
		Members:  members,
		Showing:  len(members),
		Total:    len(state.Staff),
		Selected: state.SelectedStaff,
		Filter:   rc.StaffFilter,
		Roles:    domain.AllRoles,
	}}
}

func staffStats(list []domain.Staff) StaffStats {
	stats := StaffStats{Total: len(list), AveragePerformance: mockAveragePerformance}
	for _, s := range list {
		if s.IsActive {
			stats.Active++
		}
		stats.MonthlyWageCost += s.WageRate * monthlyWageHours
	}
	return stats
}

func staffInsights(list []domain.AIInsight) []domain.AIInsight {
	out := []domain.AIInsight{}
	for _, in := range list {
		if len(out) == maxStaffInsightsDisplayed {
			break
		}
		if containsFold(in.Title, "staff") || containsFold(in.Description, "staff") {
			out = append(out, in)
		}
	}
	return out
}

// AnalyticsView is the analytics screen.
type AnalyticsView struct {
	Data     *domain.AnalyticsData `json:"data"`
	Insights []domain.AIInsight    `json:"insights"`
}

// RenderAnalytics builds the analytics view model. The analytics snapshot is
// passed through untouched.
func RenderAnalytics(state store.State, _ RenderContext) ViewModel {
	insights := []domain.AIInsight{}
	for _, in := range state.Insights {
		if len(insights) == maxAnalyticsInsightsDisplayed {
			break
		}
		if containsFold(in.Title, "performance") || containsFold(in.Title, "cost") || containsFold(in.Title, "shift") {
			insights = append(insights, in)
		}
	}
	return ViewModel{View: domain.ViewAnalytics, Analytics: &AnalyticsView{
		Data:     state.Analytics,
		Insights: insights,
	}}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}
