// Package access decides whether a principal may perform a verb on a resource kind.
package access

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/farellandr/airport-service/internal/apperror"
)

// Principal is the authenticated caller. A nil *Principal is an anonymous caller.
type Principal struct {
	UserID  uuid.UUID
	IsStaff bool
}

func (p *Principal) Authenticated() bool {
	return p != nil && p.UserID != uuid.Nil
}

func (p *Principal) Admin() bool {
	return p.Authenticated() && p.IsStaff
}

type Kind string

const (
	KindFlight       Kind = "flight"
	KindOrder        Kind = "order"
	KindAirport      Kind = "airport"
	KindAirplaneType Kind = "airplane_type"
	KindAirplane     Kind = "airplane"
	KindRoute        Kind = "route"
	KindCrew         Kind = "crew"
	KindImageAttach  Kind = "image_attach"
	KindProfile      Kind = "profile"
	KindBoardingPass Kind = "boarding_pass"
)

type Verb int

const (
	VerbRead Verb = iota
	VerbWrite
)

// VerbFor maps safe HTTP methods to VerbRead and everything else to VerbWrite.
func VerbFor(method string) Verb {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return VerbRead
	default:
		return VerbWrite
	}
}

type Decision int

const (
	Deny Decision = iota
	Allow
)

func Decide(p *Principal, kind Kind, verb Verb) Decision {
	switch kind {
	case KindFlight:
		if verb == VerbRead || p.Admin() {
			return Allow
		}
	case KindOrder, KindProfile:
		if p.Authenticated() {
			return Allow
		}
	case KindAirport, KindAirplaneType, KindAirplane, KindRoute, KindCrew:
		if (verb == VerbRead && p.Authenticated()) || p.Admin() {
			return Allow
		}
	case KindImageAttach:
		if verb == VerbWrite && p.Admin() {
			return Allow
		}
	case KindBoardingPass:
		if p.Admin() {
			return Allow
		}
	}
	return Deny
}

// Check returns nil on Allow, an Unauthenticated error when an anonymous caller is
// denied, and PermissionDenied otherwise.
func Check(p *Principal, kind Kind, verb Verb) error {
	if Decide(p, kind, verb) == Allow {
		return nil
	}
	if !p.Authenticated() {
		return apperror.Unauthenticated("Authentication credentials were not provided.")
	}
	return apperror.PermissionDenied("You do not have permission to perform this action.")
}

// OrderOwner is the owner every order listing is restricted to.
func OrderOwner(p *Principal) uuid.UUID {
	if !p.Authenticated() {
		return uuid.Nil
	}
	return p.UserID
}
