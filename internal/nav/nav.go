// package nav decides where a navigation attempt lands based on the current
// session state.
//
// Each route declares whether it requires an authenticated session. The guard
// re-derives the session state from storage on every check, so a credential
// cleared elsewhere takes effect on the next navigation.
package nav

import (
	"github.com/charmbracelet/log"
	"github.com/desertthunder/mvx/internal/session"
)

// Route is a named destination in the navigation table.
type Route struct {
	Name         string
	Path         string
	RequiresAuth bool
}

// Well-known route names.
const (
	RouteHome       = "home"
	RouteWishlist   = "wishlist"
	RoutePopular    = "popular"
	RouteSearch     = "search"
	RouteSignIn     = "signin"
	RouteOAuthRedir = "oauth-redirect"
)

// DefaultTable returns the navigation table for the movie catalog.
//
// The sign-in route and the OAuth landing route stay open to unauthenticated
// sessions; everything else is protected.
func DefaultTable() []Route {
	return []Route{
		{Name: RouteHome, Path: "/", RequiresAuth: true},
		{Name: RouteWishlist, Path: "/wishlist", RequiresAuth: true},
		{Name: RoutePopular, Path: "/popular", RequiresAuth: true},
		{Name: RouteSearch, Path: "/search", RequiresAuth: true},
		{Name: RouteSignIn, Path: "/signin", RequiresAuth: false},
		{Name: RouteOAuthRedir, Path: "/oauth/redirect", RequiresAuth: false},
	}
}

// Decision is the outcome of a navigation check.
type Decision int

const (
	// Proceed lets the navigation through unchanged.
	Proceed Decision = iota
	// RedirectSignIn sends an unauthenticated session to the sign-in route.
	RedirectSignIn
	// RedirectHome bounces an authenticated session off the sign-in route.
	RedirectHome
)

func (d Decision) String() string {
	switch d {
	case RedirectSignIn:
		return "redirect:" + RouteSignIn
	case RedirectHome:
		return "redirect:" + RouteHome
	default:
		return "proceed"
	}
}

// Guard evaluates navigation attempts against the session store.
type Guard struct {
	session *session.Store
	routes  map[string]Route
	logger  *log.Logger
}

// NewGuard creates a guard over the given route table.
func NewGuard(sess *session.Store, routes []Route, logger *log.Logger) *Guard {
	byName := make(map[string]Route, len(routes))
	for _, route := range routes {
		byName[route.Name] = route
	}
	return &Guard{session: sess, routes: byName, logger: logger}
}

// Lookup returns the route registered under the given name.
func (g *Guard) Lookup(name string) (Route, bool) {
	route, ok := g.routes[name]
	return route, ok
}

// Check decides where a navigation to the named route lands.
//
// The session state is re-derived from storage before deciding. Unknown
// route names are treated as protected.
func (g *Guard) Check(name string) Decision {
	authenticated := g.session.CheckAuth()

	route, ok := g.routes[name]
	if !ok {
		g.logger.Warn("navigation to unregistered route", "route", name)
		route = Route{Name: name, RequiresAuth: true}
	}

	switch {
	case route.RequiresAuth && !authenticated:
		g.logger.Debug("navigation blocked", "route", name)
		return RedirectSignIn
	case route.Name == RouteSignIn && authenticated:
		return RedirectHome
	default:
		return Proceed
	}
}
