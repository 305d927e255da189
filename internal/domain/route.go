package domain

// Route is a named client-side screen
type Route string

const (
	RouteDashboard  Route = "/"
	RouteSend       Route = "/send"
	RouteHistory    Route = "/history"
	RouteProfile    Route = "/profile"
	RouteOnboarding Route = "/onboarding"
)

// Valid reports whether the route is one of the named screens
func (r Route) Valid() bool {
	switch r {
	case RouteDashboard, RouteSend, RouteHistory, RouteProfile, RouteOnboarding:
		return true
	default:
		return false
	}
}

// Navigator is the "navigate to named route" and "go back" capability the screens rely on
type Navigator interface {
	Navigate(route Route)
	Back()
	Current() Route
}
