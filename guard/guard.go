// Package guard decides whether a navigation into a protected area is
// admitted or sent back to the platform entry page.
package guard

import (
	"github.com/udyambridge/business-platform-go/models"
	"github.com/udyambridge/business-platform-go/session"
)

type Outcome int

const (
	// Defer means the session restore has not finished; render nothing and
	// decide later rather than evicting an about-to-be-restored login.
	Defer Outcome = iota
	Admit
	Redirect
)

// Decision carries the outcome; Location is set only for Redirect.
type Decision struct {
	Outcome  Outcome
	Location string
}

// Guard redirects anonymous and wrong-role navigations to a single fixed
// fallback path. The two cases are deliberately indistinguishable to callers.
type Guard struct {
	Fallback string
}

// Decide admits the navigation when the snapshot holds an authenticated
// session satisfying the required role. An empty required role only demands a
// session.
func (g Guard) Decide(required models.Role, snap session.Snapshot) Decision {
	switch {
	case snap.State == session.StateLoading:
		return Decision{Outcome: Defer}
	case snap.State != session.StateAuthenticated || snap.Session == nil:
		return Decision{Outcome: Redirect, Location: g.Fallback}
	case required != "" && snap.Session.AppRole != required:
		return Decision{Outcome: Redirect, Location: g.Fallback}
	default:
		return Decision{Outcome: Admit}
	}
}
