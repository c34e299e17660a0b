package repository

import authdomain "journeyhome-backend/internal/auth/domain"

// ProfileRepository defines data access for profiles, refresh tokens
// and one-time sign-in codes.
type ProfileRepository interface {
	Create(profile *authdomain.Profile) error
	FindByEmail(email string) (*authdomain.Profile, error)
	FindByID(id string) (*authdomain.Profile, error)
	FindAll() ([]authdomain.Profile, error)
	Update(profile *authdomain.Profile) error
	Delete(id string) error

	SaveRefreshToken(token *authdomain.RefreshToken) error
	FindRefreshToken(token string) (*authdomain.RefreshToken, error)
	DeleteRefreshToken(token string) error
	DeleteRefreshTokensByUser(userID string) error

	CreateSignInCode(code *authdomain.SignInCode) error
	// ConsumeSignInCode atomically fetches and deletes a code so it can
	// be redeemed at most once. Returns nil when absent or expired.
	ConsumeSignInCode(code string) (*authdomain.SignInCode, error)
}
