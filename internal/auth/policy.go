package auth

import (
	"strings"

	"github.com/daniilsolovey/truck-portal/internal/portal"
)

// Access is the class of a procedure.
type Access int

const (
	Public Access = iota
	Protected
	AdminOnly
)

// Decision is the outcome of checking a caller against a procedure.
type Decision int

const (
	Allow Decision = iota
	Unauthenticated
	Forbidden
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Unauthenticated:
		return "unauthenticated"
	case Forbidden:
		return "forbidden"
	}
	return "unknown"
}

// Policy maps "namespace.method" to its access class. Unlisted procedures are public.
type Policy map[string]Access

func NewPolicy(rules map[string]Access) Policy {
	p := make(Policy, len(rules))
	for k, v := range rules {
		p[strings.ToLower(k)] = v
	}
	return p
}

func (p Policy) Access(namespace, method string) Access {
	return p[strings.ToLower(namespace+"."+method)]
}

// Decide evaluates the procedure access class against the caller; user is nil for anonymous callers.
func (p Policy) Decide(namespace, method string, user *portal.User) Decision {
	switch p.Access(namespace, method) {
	case Protected:
		if user == nil {
			return Unauthenticated
		}
	case AdminOnly:
		if user == nil {
			return Unauthenticated
		}
		if !user.IsAdmin() {
			return Forbidden
		}
	}

	return Allow
}
