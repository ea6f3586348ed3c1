package seed

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/resty-service/internal/domain"
	"github.com/spec-kit/resty-service/internal/store"
)

// demoNamespace derives stable ids for demo records.
var demoNamespace = uuid.MustParse("6f1c4b8e-2d0a-4c55-9a57-3e1f0d2b7c90")

// DemoProvider returns a fixed restaurant roster with insights and analytics.
type DemoProvider struct {
	now func() time.Time
}

// NewDemoProvider returns a demo provider; a nil clock means time.Now.
func NewDemoProvider(now func() time.Time) *DemoProvider {
	if now == nil {
		now = time.Now
	}
	return &DemoProvider{now: now}
}

// DemoID returns the id the demo provider assigns to the named record.
func DemoID(kind, name string) string {
	return uuid.NewSHA1(demoNamespace, []byte(kind+":"+name)).String()
}

func (p *DemoProvider) Load(ctx context.Context) (store.Seed, error) {
	if err := ctx.Err(); err != nil {
		return store.Seed{}, err
	}
	now := p.now().UTC()
	analytics := demoAnalytics()
	return store.Seed{
		Staff:     demoStaff(now),
		Insights:  demoInsights(now),
		Analytics: &analytics,
	}, nil
}

type rosterEntry struct {
	name     string
	role     domain.Role
	skills   []string
	wage     float64
	maxHours int
	days     string
	segment  domain.ShiftSegment
	active   bool
}

var demoRoster = []rosterEntry{
	{"Sarah Johnson", domain.RoleManager, []string{"Scheduling", "Inventory", "Customer Service"}, 28, 45, "MTWRF..", domain.SegmentMorning, true},
	{"Mike Chen", domain.RoleBartender, []string{"Mixology", "Wine Knowledge", "Cash Handling"}, 18.5, 40, "..WRFSU", domain.SegmentEvening, true},
	{"Emily Davis", domain.RoleWaiter, []string{"Fine Dining", "Wine Pairing"}, 15, 35, "MT..FSU", domain.SegmentEvening, true},
	{"James Wilson", domain.RoleCook, []string{"Grill", "Prep", "Food Safety"}, 20, 40, "MTWRF..", domain.SegmentAfternoon, true},
	{"Ana Martinez", domain.RoleWaiter, []string{"Customer Service", "POS Systems"}, 15, 30, "...RFSU", domain.SegmentEvening, true},
	{"David Kim", domain.RoleHost, []string{"Reservations", "Customer Service"}, 14, 25, "....FSU", domain.SegmentEvening, true},
	{"Lisa Brown", domain.RoleBartender, []string{"Mixology", "Craft Beer"}, 17.5, 32, "MTW..SU", domain.SegmentAfternoon, true},
	{"Tom Garcia", domain.RoleCleaner, []string{"Sanitation", "Equipment Care"}, 13, 20, "MTWRF..", domain.SegmentMorning, false},
}

var segmentHours = map[domain.ShiftSegment][2]string{
	domain.SegmentMorning:   {"07:00", "15:00"},
	domain.SegmentAfternoon: {"11:00", "19:00"},
	domain.SegmentEvening:   {"16:00", "23:59"},
}

func demoStaff(now time.Time) []domain.Staff {
	out := make([]domain.Staff, 0, len(demoRoster))
	for i, e := range demoRoster {
		joined := now.AddDate(0, -(i + 1), 0)
		out = append(out, domain.Staff{
			ID:           DemoID("staff", e.name),
			Name:         e.name,
			Email:        emailFor(e.name),
			Role:         e.role,
			Skills:       append([]string(nil), e.skills...),
			WageRate:     e.wage,
			MaxHours:     e.maxHours,
			Availability: weekly(e.days, e.segment),
			IsActive:     e.active,
			CreatedAt:    joined,
			UpdatedAt:    now,
		})
	}
	return out
}

// weekly expands a Monday-first mask such as "MTWRF.." into availability.
func weekly(mask string, segment domain.ShiftSegment) domain.WeeklyAvailability {
	hours := segmentHours[segment]
	day := func(i int) domain.DayAvailability {
		if i >= len(mask) || mask[i] == '.' {
			return domain.DayAvailability{Available: false}
		}
		start, end := hours[0], hours[1]
		return domain.DayAvailability{
			Available:       true,
			StartTime:       &start,
			EndTime:         &end,
			PreferredShifts: []domain.ShiftSegment{segment},
		}
	}
	return domain.WeeklyAvailability{
		Monday:    day(0),
		Tuesday:   day(1),
		Wednesday: day(2),
		Thursday:  day(3),
		Friday:    day(4),
		Saturday:  day(5),
		Sunday:    day(6),
	}
}

func emailFor(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@restaurant.example"
}

func demoInsights(now time.Time) []domain.AIInsight {
	staffView := string(domain.ViewStaff)
	analyticsView := string(domain.ViewAnalytics)
	return []domain.AIInsight{
		{
			ID:          DemoID("insight", "weekend-understaffed"),
			Type:        domain.InsightWarning,
			Title:       "Weekend shift understaffed",
			Description: "Saturday evening has 2 fewer bartenders than forecast demand requires.",
			Actionable:  true,
			Action:      &domain.InsightAction{Label: "Review staff", Type: domain.ActionNavigate, Target: &staffView},
			Priority:    domain.PriorityHigh,
			CreatedAt:   now.Add(-2 * time.Hour),
		},
		{
			ID:          DemoID("insight", "overtime-risk"),
			Type:        domain.InsightWarning,
			Title:       "Overtime cost risk",
			Description: "Two cooks are scheduled within 4 hours of their weekly maximum.",
			Actionable:  true,
			Action:      &domain.InsightAction{Label: "View analytics", Type: domain.ActionNavigate, Target: &analyticsView},
			Priority:    domain.PriorityHigh,
			CreatedAt:   now.Add(-5 * time.Hour),
		},
		{
			ID:          DemoID("insight", "cross-train"),
			Type:        domain.InsightSuggestion,
			Title:       "Cross-train hosts for waiter coverage",
			Description: "Cross-training hosts would cover 80% of Friday waiter gaps.",
			Actionable:  false,
			Priority:    domain.PriorityMedium,
			CreatedAt:   now.Add(-24 * time.Hour),
		},
		{
			ID:          DemoID("insight", "performance-up"),
			Type:        domain.InsightSuccess,
			Title:       "Team performance improved",
			Description: "Average performance rose to 8.6 this month, up from 8.1.",
			Actionable:  false,
			Priority:    domain.PriorityLow,
			CreatedAt:   now.Add(-48 * time.Hour),
		},
		{
			ID:          DemoID("insight", "availability-update"),
			Type:        domain.InsightInfo,
			Title:       "New availability submitted",
			Description: "3 staff members updated their availability for next week.",
			Actionable:  false,
			Priority:    domain.PriorityMedium,
			CreatedAt:   now.Add(-72 * time.Hour),
		},
	}
}

func demoAnalytics() domain.AnalyticsData {
	return domain.AnalyticsData{
		TotalStaff:           12,
		ActiveStaff:          11,
		TotalShifts:          104,
		CompletedShifts:      98,
		TotalWageCost:        12500,
		AverageHoursPerStaff: 32.5,
		ShiftFulfillmentRate: 94.2,
		RoleDistribution: map[domain.Role]int{
			domain.RoleWaiter:    5,
			domain.RoleBartender: 3,
			domain.RoleCook:      2,
			domain.RoleHost:      1,
			domain.RoleCleaner:   1,
		},
		WeeklyTrends: []domain.WeeklyTrend{
			{Date: "Mon", Shifts: 12, Cost: 1200, StaffCount: 8},
			{Date: "Tue", Shifts: 10, Cost: 1100, StaffCount: 7},
			{Date: "Wed", Shifts: 14, Cost: 1400, StaffCount: 9},
			{Date: "Thu", Shifts: 16, Cost: 1600, StaffCount: 10},
			{Date: "Fri", Shifts: 20, Cost: 2200, StaffCount: 12},
			{Date: "Sat", Shifts: 24, Cost: 2800, StaffCount: 14},
			{Date: "Sun", Shifts: 18, Cost: 2100, StaffCount: 11},
		},
	}
}
