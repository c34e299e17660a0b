package usecase

import (
	"context"

	authdomain "journeyhome-backend/internal/auth/domain"
	authdto "journeyhome-backend/internal/auth/dto"
)

// AuthUsecase defines authentication business logic
type AuthUsecase interface {
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)
	Logout(refreshToken string) error
	ValidateToken(tokenString string) (*authdomain.Profile, error)

	SetPassword(userID, password string) error
	UpdateProfile(userID string, req *authdto.UpdateProfileRequest) (*authdomain.Profile, error)

	RegisterFCMToken(userID, token, deviceInfo string) error
	UnregisterFCMToken(token string) error

	// IssueSignInCode mints a single-use code for invite/recovery links.
	IssueSignInCode(userID string, codeType authdomain.SignInCodeType) (string, error)
	// RequestRecovery issues a recovery code and emails its callback
	// link. Unknown addresses succeed silently.
	RequestRecovery(ctx context.Context, email string) error
	// SetRecoveryMailer attaches the recovery email sender. Optional;
	// without it recovery requests fail.
	SetRecoveryMailer(mailer RecoveryMailer)
	// ResolveCallback runs the auth-callback state machine over an
	// incoming redirect and returns where to send the browser.
	ResolveCallback(params CallbackParams) CallbackResult
}
