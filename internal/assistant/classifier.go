package assistant

import (
	"strings"

	"github.com/spec-kit/resty-service/internal/domain"
)

type intentRule struct {
	category domain.MessageCategory
	keywords []string
}

// Rules are evaluated in order; the first rule with a matching keyword wins.
var intentRules = []intentRule{
	{category: domain.CategorySchedule, keywords: []string{"schedule", "shift", "assign"}},
	{category: domain.CategoryStaff, keywords: []string{"staff", "employee", "waiter", "bartender"}},
	{category: domain.CategoryAnalytics, keywords: []string{"cost", "wage", "performance", "analytics"}},
}

// Classify maps free text to an intent category using a case-insensitive
// keyword scan. Text matching no rule is general.
func Classify(text string) domain.MessageCategory {
	lower := strings.ToLower(text)
	for _, rule := range intentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return domain.CategoryGeneral
}
