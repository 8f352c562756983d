// Package session tracks the client's current identity (guest or logged-in
// user) and notifies interested components when it changes. The cart store
// subscribes here to swap its persisted slot on login/logout.
package session

import "fmt"

// Identity is a comparable value describing who owns the current session:
// either the anonymous guest or an authenticated user id.
type Identity struct {
	authenticated bool
	userID        int64
}

// Guest returns the anonymous identity.
func Guest() Identity {
	return Identity{}
}

// User returns the identity of the authenticated user with the given id.
func User(id int64) Identity {
	return Identity{authenticated: true, userID: id}
}

// Authenticated reports whether the identity belongs to a logged-in user.
func (i Identity) Authenticated() bool {
	return i.authenticated
}

// UserID returns the user id and true for an authenticated identity,
// or 0 and false for the guest.
func (i Identity) UserID() (int64, bool) {
	if !i.authenticated {
		return 0, false
	}
	return i.userID, true
}

func (i Identity) String() string {
	if i.authenticated {
		return fmt.Sprintf("user %d", i.userID)
	}
	return "guest"
}
