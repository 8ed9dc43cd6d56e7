// Package identity resolves an inbound request's already-evaluated
// authentication outcome into the Principals the ACL engine reasons
// about. Pure logic, no I/O.
package identity

import (
	"github.com/rs/xid"

	"github.com/osdash/warden/core"
)

type service struct {
}

func NewService() core.IdentityService {
	return &service{}
}

// Resolve maps the tri-state auth status to Principals.
//
// "unknown" (no authentication backend configured) yields an empty
// value, which matches nobody under the engine's semantics. Callers
// that want "no auth configured means unrestricted" must opt in via
// the permission service's AllowNoAuth bypass; the resolver never
// grants implicit access.
func (s *service) Resolve(auth core.AuthContext) (core.Principals, error) {
	switch auth.Status {
	case core.AuthStatusUnknown:
		return core.Principals{}, nil
	case core.AuthStatusAuthenticated:
		return resolveClaims(auth.Claims), nil
	case core.AuthStatusUnauthenticated:
		return core.Principals{}, core.NewErrorNotAuthorized()
	default:
		return core.Principals{}, core.NewErrorUnexpectedAuthStatus(auth.Status)
	}
}

func resolveClaims(claims *core.AuthClaims) core.Principals {
	var principals core.Principals

	if claims != nil {
		if len(claims.BackendRoles) > 0 {
			principals.Groups = append([]string{}, claims.BackendRoles...)
		}
		// prefer the stable opaque id over the display name
		switch {
		case claims.UserID != "":
			principals.Users = []string{claims.UserID}
		case claims.UserName != "":
			principals.Users = []string{claims.UserName}
		}
	}

	// Authenticated but no usable claim: synthesize a per-call-unique
	// user id so the caller matches no stored permission. An explicit
	// deny, never an accidental allow.
	if principals.IsEmpty() {
		principals.Users = []string{"unresolved:" + xid.New().String()}
	}

	return principals
}
