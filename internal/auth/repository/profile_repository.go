package repository

import (
	"errors"
	"time"

	authdomain "journeyhome-backend/internal/auth/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// profileRepository implements ProfileRepository interface
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new instance of profileRepository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

func (r *profileRepository) Create(profile *authdomain.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = time.Now()
	return r.db.Create(profile).Error
}

func (r *profileRepository) FindByEmail(email string) (*authdomain.Profile, error) {
	var profile authdomain.Profile
	err := r.db.Where("email = ?", email).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindByID(id string) (*authdomain.Profile, error) {
	var profile authdomain.Profile
	err := r.db.Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindAll() ([]authdomain.Profile, error) {
	var profiles []authdomain.Profile
	err := r.db.Order("created_at DESC").Find(&profiles).Error
	return profiles, err
}

func (r *profileRepository) Update(profile *authdomain.Profile) error {
	profile.UpdatedAt = time.Now()
	return r.db.Save(profile).Error
}

func (r *profileRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&authdomain.Profile{}).Error
}

func (r *profileRepository) SaveRefreshToken(token *authdomain.RefreshToken) error {
	// Clean up expired tokens for this user first so multi-device
	// logins do not bloat the table.
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND expires_at < ?", token.UserID, time.Now()).Delete(&authdomain.RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Create(token).Error
	})
}

func (r *profileRepository) FindRefreshToken(token string) (*authdomain.RefreshToken, error) {
	var refreshToken authdomain.RefreshToken
	err := r.db.Where("token = ?", token).First(&refreshToken).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &refreshToken, nil
}

func (r *profileRepository) DeleteRefreshToken(token string) error {
	return r.db.Where("token = ?", token).Delete(&authdomain.RefreshToken{}).Error
}

func (r *profileRepository) DeleteRefreshTokensByUser(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&authdomain.RefreshToken{}).Error
}

func (r *profileRepository) CreateSignInCode(code *authdomain.SignInCode) error {
	code.CreatedAt = time.Now()
	return r.db.Create(code).Error
}

func (r *profileRepository) ConsumeSignInCode(code string) (*authdomain.SignInCode, error) {
	var signInCode authdomain.SignInCode
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("code = ?", code).First(&signInCode).Error; err != nil {
			return err
		}
		return tx.Where("code = ?", code).Delete(&authdomain.SignInCode{}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if signInCode.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	return &signInCode, nil
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// NewCode returns a fresh opaque sign-in code.
func NewCode() string {
	return uuid.New().String()
}
