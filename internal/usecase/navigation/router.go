// Package navigation keeps the per-session screen stack.
package navigation

import (
	"sync"

	"github.com/simaogato/kirimuang-backend/internal/domain"
)

// Router is an in-memory Navigator. Back on an empty stack lands on the dashboard.
type Router struct {
	mu    sync.Mutex
	stack []domain.Route
}

var _ domain.Navigator = (*Router)(nil)

// NewRouter starts at start, or at the dashboard when start is not a known route
func NewRouter(start domain.Route) *Router {
	if !start.Valid() {
		start = domain.RouteDashboard
	}
	return &Router{stack: []domain.Route{start}}
}

func (r *Router) Navigate(route domain.Route) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !route.Valid() {
		return
	}
	if r.stack[len(r.stack)-1] == route {
		return
	}
	r.stack = append(r.stack, route)
}

func (r *Router) Back() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.stack) > 1 {
		r.stack = r.stack[:len(r.stack)-1]
		return
	}
	r.stack[0] = domain.RouteDashboard
}

func (r *Router) Current() domain.Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stack[len(r.stack)-1]
}

// History returns the stack from the first screen to the current one
func (r *Router) History() []domain.Route {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Route, len(r.stack))
	copy(out, r.stack)
	return out
}
