package shell

import (
	"github.com/spec-kit/resty-service/internal/domain"
	"github.com/spec-kit/resty-service/internal/store"
)

// RenderContext carries per-request inputs that live outside the store, such
// as a chat session's pending flag or the roster search box.
type RenderContext struct {
	Awaiting    bool
	StaffFilter StaffFilter
}

// Renderer builds the model of one view from a state snapshot.
type Renderer interface {
	Render(state store.State, rc RenderContext) ViewModel
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(state store.State, rc RenderContext) ViewModel

// Render calls f.
func (f RendererFunc) Render(state store.State, rc RenderContext) ViewModel {
	return f(state, rc)
}

// ViewModel is what a view renderer hands to the client.
type ViewModel struct {
	View      domain.View    `json:"view"`
	Chat      *ChatView      `json:"chat,omitempty"`
	Staff     *StaffView     `json:"staff,omitempty"`
	Analytics *AnalyticsView `json:"analytics,omitempty"`
}

// Router maps the current view tag to exactly one renderer.
type Router struct {
	chat      Renderer
	staff     Renderer
	analytics Renderer
}

// NewRouter wires the three view renderers.
func NewRouter(chat, staff, analytics Renderer) *Router {
	return &Router{chat: chat, staff: staff, analytics: analytics}
}

// DefaultRouter wires the built-in renderers.
func DefaultRouter() *Router {
	return NewRouter(RendererFunc(RenderChat), RendererFunc(RenderStaff), RendererFunc(RenderAnalytics))
}

// Resolve returns the renderer for view. Unknown tags resolve to chat.
func (r *Router) Resolve(view domain.View) (domain.View, Renderer) {
	switch view {
	case domain.ViewChat:
		return domain.ViewChat, r.chat
	case domain.ViewStaff:
		return domain.ViewStaff, r.staff
	case domain.ViewAnalytics:
		return domain.ViewAnalytics, r.analytics
	default:
		return domain.ViewChat, r.chat
	}
}

// Render renders the snapshot's current view.
func (r *Router) Render(state store.State, rc RenderContext) ViewModel {
	_, renderer := r.Resolve(state.CurrentView)
	return renderer.Render(state, rc)
}
