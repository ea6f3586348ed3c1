package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/resty-service/internal/domain"
	"github.com/spec-kit/resty-service/internal/store"
)

func TestRouterResolvesEveryTag(t *testing.T) {
	tests := []struct {
		in   domain.View
		want domain.View
	}{
		{in: domain.ViewChat, want: domain.ViewChat},
		{in: domain.ViewStaff, want: domain.ViewStaff},
		{in: domain.ViewAnalytics, want: domain.ViewAnalytics},
		{in: "reports", want: domain.ViewChat},
		{in: "", want: domain.ViewChat},
	}

	router := DefaultRouter()
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			state := store.New().Snapshot()
			state.CurrentView = tt.in

			got, _ := router.Resolve(tt.in)
			assert.Equal(t, tt.want, got)

			vm := router.Render(state, RenderContext{})
			assert.Equal(t, tt.want, vm.View)
		})
	}
}

func TestRouterRendersExactlyOneView(t *testing.T) {
	router := DefaultRouter()
	state := store.New().Snapshot()

	state.CurrentView = domain.ViewStaff
	vm := router.Render(state, RenderContext{})
	assert.NotNil(t, vm.Staff)
	assert.Nil(t, vm.Chat)
	assert.Nil(t, vm.Analytics)

	state.CurrentView = domain.ViewAnalytics
	vm = router.Render(state, RenderContext{})
	assert.NotNil(t, vm.Analytics)
	assert.Nil(t, vm.Chat)
	assert.Nil(t, vm.Staff)
}

func TestRouterUsesInjectedRenderers(t *testing.T) {
	var called []string
	mk := func(name string, v domain.View) Renderer {
		return RendererFunc(func(store.State, RenderContext) ViewModel {
			called = append(called, name)
			return ViewModel{View: v}
		})
	}
	router := NewRouter(mk("chat", domain.ViewChat), mk("staff", domain.ViewStaff), mk("analytics", domain.ViewAnalytics))

	state := store.New().Snapshot()
	for _, v := range []domain.View{domain.ViewAnalytics, domain.ViewStaff, "bogus"} {
		state.CurrentView = v
		router.Render(state, RenderContext{})
	}

	require.Equal(t, []string{"analytics", "staff", "chat"}, called)
}
