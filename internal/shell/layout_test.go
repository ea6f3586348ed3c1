package shell

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/resty-service/internal/domain"
	"github.com/spec-kit/resty-service/internal/store"
)

func TestComposeHeaderAndSidebar(t *testing.T) {
	s := store.New()
	s.SetInsights([]domain.AIInsight{
		{ID: "a", Priority: domain.PriorityHigh},
		{ID: "b", Priority: domain.PriorityMedium},
		{ID: "c", Priority: domain.PriorityHigh},
	})
	s.SetCurrentView(domain.ViewStaff)

	layout := New(s, DefaultRouter()).Layout(RenderContext{})

	assert.Equal(t, "Staff Management", layout.Header.Title)
	assert.Equal(t, "Manage your team members and their profiles", layout.Header.Description)
	assert.Equal(t, 2, layout.Header.UnreadInsights)
	assert.True(t, layout.Sidebar.Open)
	assert.False(t, layout.Sidebar.Collapsed)
	require.Len(t, layout.Sidebar.Items, 3)
	for _, item := range layout.Sidebar.Items {
		assert.Equal(t, item.View == domain.ViewStaff, item.Active, item.Name)
	}
	assert.Equal(t, domain.ViewStaff, layout.Content.View)
}

func TestComposeFallsBackToChatHeader(t *testing.T) {
	state := store.New().Snapshot()
	state.CurrentView = "unknown"

	layout := Compose(state, DefaultRouter(), RenderContext{})

	assert.Equal(t, "AI Assistant", layout.Header.Title)
	assert.Equal(t, domain.ViewChat, layout.Content.View)
	for _, item := range layout.Sidebar.Items {
		assert.False(t, item.Active)
	}
}

func TestNavigateClosesSidebar(t *testing.T) {
	s := store.New()
	sh := New(s, DefaultRouter())

	sh.Navigate(domain.ViewAnalytics)

	assert.Equal(t, domain.ViewAnalytics, s.CurrentView())
	assert.False(t, s.SidebarOpen())

	sh.OpenSidebar()
	assert.True(t, s.SidebarOpen())
	sh.CloseSidebar()
	assert.False(t, s.SidebarOpen())
}

func TestSetCurrentViewAloneKeepsSidebar(t *testing.T) {
	s := store.New()
	s.SetCurrentView(domain.ViewStaff)
	assert.True(t, s.SidebarOpen())
}

func TestToggleCollapsed(t *testing.T) {
	s := store.New()
	sh := New(s, DefaultRouter())

	assert.True(t, sh.ToggleCollapsed())
	assert.True(t, s.SidebarCollapsed())
	assert.False(t, sh.ToggleCollapsed())
	assert.False(t, s.SidebarCollapsed())
	assert.True(t, s.SidebarOpen())
}

func TestToggleCollapsedFromManyRequests(t *testing.T) {
	s := store.New()
	sh := New(s, DefaultRouter())

	const toggles = 21
	results := make(chan bool, toggles)
	var wg sync.WaitGroup
	for i := 0; i < toggles; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- sh.ToggleCollapsed()
		}()
	}
	wg.Wait()
	close(results)

	collapsed := 0
	for v := range results {
		if v {
			collapsed++
		}
	}
	assert.Equal(t, 11, collapsed)
	assert.True(t, s.SidebarCollapsed())
}
