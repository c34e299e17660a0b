package usecase

import (
	"context"
	"errors"
	"time"

	authdomain "journeyhome-backend/internal/auth/domain"
	authdto "journeyhome-backend/internal/auth/dto"
	"journeyhome-backend/internal/auth/repository"
	"journeyhome-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidCredentials is returned when email or password is wrong.
// The message is identical for both so login cannot be used to probe
// which addresses exist.
var ErrInvalidCredentials = errors.New("invalid email or password")

// RecoveryMailer delivers the password-recovery email; satisfied by
// pkg/mailer.
type RecoveryMailer interface {
	SendRecovery(ctx context.Context, email, code string) error
}

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	profileRepo repository.ProfileRepository
	fcmRepo     repository.FCMTokenRepository
	config      *config.Config
	mailer      RecoveryMailer
	now         func() time.Time
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(profileRepo repository.ProfileRepository, fcmRepo repository.FCMTokenRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		profileRepo: profileRepo,
		fcmRepo:     fcmRepo,
		config:      cfg,
		now:         time.Now,
	}
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	profile, err := u.profileRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if profile == nil {
		return nil, ErrInvalidCredentials
	}

	if profile.Password == "" {
		// Pending invite: the account exists but signup was never
		// completed through the invite link.
		return nil, errors.New("account setup incomplete, use your invitation link")
	}

	if !repository.CheckPasswordHash(req.Password, profile.Password) {
		return nil, ErrInvalidCredentials
	}

	return u.generateTokens(profile)
}

func (u *authUsecase) RefreshToken(refreshToken string) (*authdto.TokenResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, errors.New("invalid refresh token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	storedToken, err := u.profileRepo.FindRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	if storedToken == nil || storedToken.ExpiresAt.Before(u.now()) {
		return nil, errors.New("refresh token expired")
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	profile, err := u.profileRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if profile == nil {
		return nil, errors.New("user not found")
	}

	return u.generateTokens(profile)
}

// Logout drops the refresh token. It succeeds even when the token row
// is already gone so sign-out never fails client-side.
func (u *authUsecase) Logout(refreshToken string) error {
	return u.profileRepo.DeleteRefreshToken(refreshToken)
}

func (u *authUsecase) SetPassword(userID, password string) error {
	profile, err := u.profileRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return errors.New("user not found")
	}

	hashed, err := repository.HashPassword(password)
	if err != nil {
		return err
	}
	profile.Password = hashed
	return u.profileRepo.Update(profile)
}

func (u *authUsecase) UpdateProfile(userID string, req *authdto.UpdateProfileRequest) (*authdomain.Profile, error) {
	profile, err := u.profileRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.New("user not found")
	}

	profile.FullName = req.FullName
	profile.Bio = req.Bio
	profile.AvatarURL = req.AvatarURL
	if err := u.profileRepo.Update(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (u *authUsecase) RegisterFCMToken(userID, token, deviceInfo string) error {
	return u.fcmRepo.SaveToken(userID, token, deviceInfo)
}

func (u *authUsecase) UnregisterFCMToken(token string) error {
	return u.fcmRepo.DeleteToken(token)
}

func (u *authUsecase) IssueSignInCode(userID string, codeType authdomain.SignInCodeType) (string, error) {
	code := &authdomain.SignInCode{
		Code:      repository.NewCode(),
		UserID:    userID,
		Type:      codeType,
		ExpiresAt: u.now().Add(u.config.SignInCodeExpiry),
	}
	if err := u.profileRepo.CreateSignInCode(code); err != nil {
		return "", err
	}
	return code.Code, nil
}

func (u *authUsecase) SetRecoveryMailer(mailer RecoveryMailer) {
	u.mailer = mailer
}

func (u *authUsecase) RequestRecovery(ctx context.Context, email string) error {
	profile, err := u.profileRepo.FindByEmail(email)
	if err != nil {
		return err
	}
	// Unknown addresses are not an error; the endpoint answers the
	// same either way so it cannot probe which addresses exist.
	if profile == nil {
		return nil
	}

	if u.mailer == nil {
		return errors.New("recovery email is not configured")
	}

	code, err := u.IssueSignInCode(profile.ID, authdomain.SignInCodeRecovery)
	if err != nil {
		return err
	}
	return u.mailer.SendRecovery(ctx, email, code)
}

func (u *authUsecase) generateTokens(profile *authdomain.Profile) (*authdto.TokenResponse, error) {
	accessToken, err := u.generateAccessToken(profile)
	if err != nil {
		return nil, err
	}

	refreshToken, err := u.generateRefreshToken(profile)
	if err != nil {
		return nil, err
	}

	refreshTokenEntity := &authdomain.RefreshToken{
		Token:     refreshToken,
		UserID:    profile.ID,
		ExpiresAt: u.now().Add(u.config.JWTRefreshExpiry),
	}
	if err := u.profileRepo.SaveRefreshToken(refreshTokenEntity); err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         profile,
	}, nil
}

func (u *authUsecase) generateAccessToken(profile *authdomain.Profile) (string, error) {
	claims := jwt.MapClaims{
		"user_id": profile.ID,
		"email":   profile.Email,
		"exp":     u.now().Add(u.config.JWTAccessExpiry).Unix(),
		"iat":     u.now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

func (u *authUsecase) generateRefreshToken(profile *authdomain.Profile) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  profile.ID,
		"token_id": uuid.New().String(),
		"exp":      u.now().Add(u.config.JWTRefreshExpiry).Unix(),
		"iat":      u.now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

func (u *authUsecase) ValidateToken(tokenString string) (*authdomain.Profile, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	profile, err := u.profileRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if profile == nil {
		return nil, errors.New("user not found")
	}

	return profile, nil
}
