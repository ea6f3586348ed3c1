package domain

// WeeklyTrend is one point of the weekly trend series.
type WeeklyTrend struct {
	Date       string  `json:"date" yaml:"date"`
	Shifts     int     `json:"shifts" yaml:"shifts"`
	Cost       float64 `json:"cost" yaml:"cost"`
	StaffCount int     `json:"staffCount" yaml:"staffCount"`
}

// AnalyticsData is a precomputed snapshot held verbatim by the store.
type AnalyticsData struct {
	TotalStaff           int           `json:"totalStaff" yaml:"totalStaff"`
	ActiveStaff          int           `json:"activeStaff" yaml:"activeStaff"`
	TotalShifts          int           `json:"totalShifts" yaml:"totalShifts"`
	CompletedShifts      int           `json:"completedShifts" yaml:"completedShifts"`
	TotalWageCost        float64       `json:"totalWageCost" yaml:"totalWageCost"`
	AverageHoursPerStaff float64       `json:"averageHoursPerStaff" yaml:"averageHoursPerStaff"`
	ShiftFulfillmentRate float64       `json:"shiftFulfillmentRate" yaml:"shiftFulfillmentRate"`
	RoleDistribution     map[Role]int  `json:"roleDistribution" yaml:"roleDistribution"`
	WeeklyTrends         []WeeklyTrend `json:"weeklyTrends" yaml:"weeklyTrends"`
}
