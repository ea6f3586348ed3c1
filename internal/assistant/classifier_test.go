package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/resty-service/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want domain.MessageCategory
	}{
		{text: "Create a schedule for next week", want: domain.CategorySchedule},
		{text: "How many bartenders are available this weekend?", want: domain.CategoryStaff},
		{text: "Show me this week's wage costs", want: domain.CategoryAnalytics},
		{text: "schedule a bartender", want: domain.CategorySchedule},
		{text: "hello", want: domain.CategoryGeneral},
		{text: "Schedule 3 waiters for Friday evening", want: domain.CategorySchedule},
		{text: "ASSIGN Maria to the bar", want: domain.CategorySchedule},
		{text: "list every Employee", want: domain.CategoryStaff},
		{text: "staff costs this month", want: domain.CategoryStaff},
		{text: "team Performance review", want: domain.CategoryAnalytics},
		{text: "", want: domain.CategoryGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}
