// Package authz is the single place role decisions are made. Handlers
// and middleware ask for a typed decision instead of re-reading the
// profile row and comparing role strings inline.
package authz

import authdomain "journeyhome-backend/internal/auth/domain"

// Decision is the result of an authorization check.
type Decision struct {
	Allowed bool
	Reason  string
}

// Allow is the positive decision.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny returns a negative decision carrying the reason shown to the caller.
func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// rank orders roles by privilege. Unknown roles (including a missing
// profile) rank below participant so they never pass any gate.
func rank(role authdomain.Role) int {
	switch role {
	case authdomain.RoleAdmin:
		return 3
	case authdomain.RoleModerator:
		return 2
	case authdomain.RoleParticipant:
		return 1
	}
	return 0
}

// RequireRole decides whether a profile may act at the given minimum
// role. A nil profile is always denied.
func RequireRole(profile *authdomain.Profile, minimum authdomain.Role) Decision {
	if profile == nil {
		return Deny("no profile")
	}
	if rank(profile.Role) < rank(minimum) {
		return Deny("requires " + string(minimum) + " role")
	}
	return Allow()
}

// RequireAdmin is the gate for the privileged admin endpoints.
func RequireAdmin(profile *authdomain.Profile) Decision {
	if profile == nil {
		return Deny("no profile")
	}
	if profile.Role != authdomain.RoleAdmin {
		return Deny("admin role required")
	}
	return Allow()
}
