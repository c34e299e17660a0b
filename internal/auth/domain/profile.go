package domain

import "time"

// Role controls which features a user can see and mutate.
type Role string

const (
	RoleParticipant Role = "participant"
	RoleModerator   Role = "moderator"
	RoleAdmin       Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleParticipant, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// Profile is the application-side identity row. A profile with an
// empty Password is a pending invite that has not completed signup.
type Profile struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-"` // Never return password in JSON
	FullName  string    `json:"full_name"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Role      Role      `json:"role" gorm:"default:participant"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RefreshToken struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SignInCodeType mirrors the redirect `type` parameter carried by
// invite and recovery links.
type SignInCodeType string

const (
	SignInCodeInvite   SignInCodeType = "invite"
	SignInCodeSignup   SignInCodeType = "signup"
	SignInCodeRecovery SignInCodeType = "recovery"
)

// SignInCode is a single-use code embedded in invite/recovery emails.
// The auth callback exchanges it for a session exactly once.
type SignInCode struct {
	Code      string         `json:"-" gorm:"primaryKey"`
	UserID    string         `json:"user_id" gorm:"index;not null"`
	Type      SignInCodeType `json:"type"`
	ExpiresAt time.Time      `json:"expires_at"`
	CreatedAt time.Time      `json:"created_at"`
}
