package assistant

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/spec-kit/resty-service/internal/domain"
)

// FallbackReply is appended whenever a reply cannot be produced.
const FallbackReply = "I'm sorry, I encountered an error. Please try again."

// ResponseProvider produces the assistant's reply for a classified message.
type ResponseProvider interface {
	Respond(ctx context.Context, category domain.MessageCategory, text string) (string, error)
}

// ResponseProviderFunc adapts a function to ResponseProvider.
type ResponseProviderFunc func(ctx context.Context, category domain.MessageCategory, text string) (string, error)

// Respond calls f.
func (f ResponseProviderFunc) Respond(ctx context.Context, category domain.MessageCategory, text string) (string, error) {
	return f(ctx, category, text)
}

var cannedReplies = map[domain.MessageCategory][]string{
	domain.CategorySchedule: {
		"I'll help you create an optimized schedule. Based on your current staff availability, I can schedule 3 waiters for Friday evening. Would you like me to assign specific staff members?",
		"I've analyzed your scheduling needs. For next week, I recommend scheduling 2 bartenders and 4 waiters for peak hours. Shall I create the detailed schedule?",
		"Looking at your shift requirements, I can optimize the schedule to reduce overtime costs by 15% while maintaining full coverage.",
	},
	domain.CategoryStaff: {
		"Currently, you have 5 bartenders available this weekend. 3 are available for evening shifts and 2 for afternoon shifts. Would you like to see their detailed availability?",
		"I found 8 active staff members in your system. 3 waiters, 2 bartenders, 2 cooks, and 1 host. Would you like me to show their performance metrics?",
		"Your staff utilization is at 78% this week. I recommend adding one more part-time waiter to improve coverage during peak hours.",
	},
	domain.CategoryAnalytics: {
		"This week's total wage cost is $2,847. This is 12% higher than last week due to overtime. I recommend adjusting the schedule to reduce overtime costs.",
		"Your team's average performance score is 8.3/10 this month. Top performer: Sarah (Bartender) with 9.2/10. Would you like detailed performance insights?",
		"Shift fulfillment rate is currently 94%. You're missing coverage for 2 morning shifts this week. Shall I suggest available staff?",
	},
	domain.CategoryGeneral: {
		"I'm here to help you manage your restaurant staff and scheduling. You can ask me about creating schedules, managing staff, or viewing analytics. What would you like to know?",
		"I can help you with staff scheduling, performance tracking, and cost optimization. Try asking me something like 'How many waiters do I need for Saturday?'",
		"As your AI assistant, I can analyze your staff data and provide recommendations. Would you like to see your current staff overview or schedule insights?",
	},
}

// CannedReplies returns the reply pool for a category, falling back to the
// general pool for unknown categories.
func CannedReplies(category domain.MessageCategory) []string {
	if pool, ok := cannedReplies[category]; ok {
		return pool
	}
	return cannedReplies[domain.CategoryGeneral]
}

// CannedProvider picks a reply uniformly at random from the category pool.
type CannedProvider struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewCannedProvider builds a provider drawing from rng.
func NewCannedProvider(rng *rand.Rand) *CannedProvider {
	return &CannedProvider{rng: rng}
}

// NewSeededProvider builds a provider with a deterministic generator.
func NewSeededProvider(seed uint64) *CannedProvider {
	return NewCannedProvider(rand.New(rand.NewPCG(seed, seed)))
}

// Respond returns one canned reply for category.
func (p *CannedProvider) Respond(ctx context.Context, category domain.MessageCategory, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	pool := CannedReplies(category)
	p.mu.Lock()
	i := p.rng.IntN(len(pool))
	p.mu.Unlock()
	return pool[i], nil
}
