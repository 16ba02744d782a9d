// Package policy holds the access-control predicates for the API. Each policy
// is a pure function over the request method and the acting user so the rules
// can be unit-tested without a router or a database.
package policy

import "net/http"

// Actor is the authenticated principal a policy decides about. A nil *Actor
// means the request carried no (valid) credentials.
type Actor struct {
	UserID string
	Role   string
}

// IsStaff reports whether the actor carries the administrative role.
func (a *Actor) IsStaff() bool {
	return a != nil && a.Role == "admin"
}

// IsSafeMethod reports whether the HTTP method is read-only.
func IsSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// AdminOrReadOnly permits safe methods for everyone and unsafe methods only
// for staff actors.
func AdminOrReadOnly(method string, actor *Actor) bool {
	if IsSafeMethod(method) {
		return true
	}
	return actor.IsStaff()
}

// OwnerOrReadOnly permits safe methods for everyone and unsafe methods only
// for the resource owner or staff.
func OwnerOrReadOnly(method string, actor *Actor, ownerID string) bool {
	if IsSafeMethod(method) {
		return true
	}
	if actor == nil {
		return false
	}
	return actor.UserID == ownerID || actor.IsStaff()
}
