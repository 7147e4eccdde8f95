// Package guard decides whether a navigation may proceed.
//
// The guard is a pure function over a route's static capability flags and a
// session snapshot. It holds no state and is safe to evaluate repeatedly and
// concurrently.
package guard

import "github.com/maartenv/kampeer/internal/session"

// Route is a navigable screen with its static authorization flags.
type Route struct {
	Path string
	Name string

	// RequiresAuth: the route needs an authenticated session.
	RequiresAuth bool
	// RequiresGuest: the route is only for logged-out users.
	RequiresGuest bool
	// RequiresOwner: the route needs the OWNER role.
	RequiresOwner bool
}

// Decision is the guard's verdict on one navigation.
type Decision struct {
	Allowed  bool
	Redirect string
}

// Proceed permits the navigation.
func Proceed() Decision {
	return Decision{Allowed: true}
}

// Redirect sends the user to another path instead.
func Redirect(path string) Decision {
	return Decision{Redirect: path}
}

// Evaluate applies the authorization rules top to bottom, first match wins:
//
//  1. auth-only route, no session       -> redirect to /login
//  2. guest-only route, active session  -> redirect to /
//  3. owner-only route, role not OWNER  -> redirect to /
//  4. otherwise                         -> proceed
func Evaluate(route Route, snap session.Snapshot) Decision {
	if route.RequiresAuth && !snap.IsAuthenticated() {
		return Redirect(LoginPath)
	}
	if route.RequiresGuest && snap.IsAuthenticated() {
		return Redirect(HomePath)
	}
	if route.RequiresOwner && !snap.IsOwner() {
		return Redirect(HomePath)
	}
	return Proceed()
}
