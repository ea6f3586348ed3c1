package shell

import (
	"github.com/spec-kit/resty-service/internal/domain"
	"github.com/spec-kit/resty-service/internal/store"
)

type viewInfo struct {
	title       string
	description string
	navName     string
	navHint     string
}

var views = map[domain.View]viewInfo{
	domain.ViewChat: {
		title:       "AI Assistant",
		description: "Communicate with AI to manage your restaurant scheduling",
		navName:     "AI Assistant",
		navHint:     "Chat with AI for scheduling",
	},
	domain.ViewStaff: {
		title:       "Staff Management",
		description: "Manage your team members and their profiles",
		navName:     "Staff Management",
		navHint:     "Manage your team",
	},
	domain.ViewAnalytics: {
		title:       "Analytics Dashboard",
		description: "View insights and performance metrics",
		navName:     "Analytics",
		navHint:     "Performance insights",
	},
}

var navOrder = []domain.View{domain.ViewChat, domain.ViewStaff, domain.ViewAnalytics}

// Header is the bar above the active view.
type Header struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	UnreadInsights int    `json:"unreadInsights"`
}

// NavItem is one sidebar entry.
type NavItem struct {
	Name        string      `json:"name"`
	View        domain.View `json:"view"`
	Description string      `json:"description"`
	Active      bool        `json:"active"`
}

// Sidebar is the navigation panel.
type Sidebar struct {
	Open      bool      `json:"open"`
	Collapsed bool      `json:"collapsed"`
	Items     []NavItem `json:"items"`
}

// Layout is the whole dashboard frame for one snapshot.
type Layout struct {
	Header  Header    `json:"header"`
	Sidebar Sidebar   `json:"sidebar"`
	Content ViewModel `json:"content"`
}

// Compose renders the frame and the current view of state.
func Compose(state store.State, router *Router, rc RenderContext) Layout {
	view, renderer := router.Resolve(state.CurrentView)
	info := views[view]

	unread := 0
	for _, in := range state.Insights {
		if in.Priority == domain.PriorityHigh {
			unread++
		}
	}

	items := make([]NavItem, 0, len(navOrder))
	for _, v := range navOrder {
		items = append(items, NavItem{
			Name:        views[v].navName,
			View:        v,
			Description: views[v].navHint,
			Active:      v == state.CurrentView,
		})
	}

	return Layout{
		Header: Header{
			Title:          info.title,
			Description:    info.description,
			UnreadInsights: unread,
		},
		Sidebar: Sidebar{
			Open:      state.SidebarOpen,
			Collapsed: state.SidebarCollapsed,
			Items:     items,
		},
		Content: renderer.Render(state, rc),
	}
}

// Shell drives navigation on top of the store.
type Shell struct {
	store  *store.Store
	router *Router
}

// New builds a Shell.
func New(s *store.Store, router *Router) *Shell {
	return &Shell{store: s, router: router}
}

// Navigate switches to view and closes the sidebar, as a sidebar click does
// on narrow screens.
func (s *Shell) Navigate(view domain.View) {
	s.store.SetCurrentView(view)
	s.store.SetSidebarOpen(false)
}

// OpenSidebar shows the sidebar.
func (s *Shell) OpenSidebar() {
	s.store.SetSidebarOpen(true)
}

// CloseSidebar hides the sidebar.
func (s *Shell) CloseSidebar() {
	s.store.SetSidebarOpen(false)
}

// ToggleCollapsed flips the collapsed flag and returns the new value.
func (s *Shell) ToggleCollapsed() bool {
	return s.store.ToggleSidebarCollapsed()
}

// Layout composes the frame for the current snapshot.
func (s *Shell) Layout(rc RenderContext) Layout {
	return Compose(s.store.Snapshot(), s.router, rc)
}
