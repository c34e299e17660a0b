package usecase

import (
	"context"
	"errors"
	"log"

	authdomain "journeyhome-backend/internal/auth/domain"
	authrepo "journeyhome-backend/internal/auth/repository"
	cohortUsecase "journeyhome-backend/internal/cohort/usecase"
	journalrepo "journeyhome-backend/internal/journal/repository"
	notificationrepo "journeyhome-backend/internal/notification/repository"
)

var (
	ErrEmailRequired = errors.New("email is required")
	ErrEmailTaken    = errors.New("a user with this email already exists")
	ErrSelfDelete    = errors.New("you cannot delete yourself")
	ErrUserNotFound  = errors.New("user not found")
)

// InviteRequest is the privileged invite payload.
type InviteRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// CodeIssuer mints one-time sign-in codes; satisfied by the auth usecase.
type CodeIssuer interface {
	IssueSignInCode(userID string, codeType authdomain.SignInCodeType) (string, error)
}

// InviteMailer delivers the invitation email; satisfied by pkg/mailer.
type InviteMailer interface {
	SendInvite(ctx context.Context, email, fullName, code string) error
}

// AdminUsecase defines the privileged user-administration logic.
type AdminUsecase interface {
	InviteUser(ctx context.Context, req *InviteRequest) (*authdomain.Profile, error)
	// DeleteUser removes the target and everything hanging off it.
	// callerID is only used to reject self-deletion.
	DeleteUser(callerID, targetID string) error
	ListUsers() ([]authdomain.Profile, error)
	ChangeRole(userID string, role authdomain.Role) (*authdomain.Profile, error)
}

type adminUsecase struct {
	profileRepo      authrepo.ProfileRepository
	fcmRepo          authrepo.FCMTokenRepository
	journalRepo      journalrepo.JournalRepository
	notificationRepo notificationrepo.NotificationRepository
	cohorts          cohortUsecase.CohortUsecase
	codes            CodeIssuer
	mailer           InviteMailer
}

// NewAdminUsecase creates a new instance of adminUsecase
func NewAdminUsecase(
	profileRepo authrepo.ProfileRepository,
	fcmRepo authrepo.FCMTokenRepository,
	journalRepo journalrepo.JournalRepository,
	notificationRepo notificationrepo.NotificationRepository,
	cohorts cohortUsecase.CohortUsecase,
	codes CodeIssuer,
	mailer InviteMailer,
) AdminUsecase {
	return &adminUsecase{
		profileRepo:      profileRepo,
		fcmRepo:          fcmRepo,
		journalRepo:      journalRepo,
		notificationRepo: notificationRepo,
		cohorts:          cohorts,
		codes:            codes,
		mailer:           mailer,
	}
}

func (u *adminUsecase) InviteUser(ctx context.Context, req *InviteRequest) (*authdomain.Profile, error) {
	if req.Email == "" {
		return nil, ErrEmailRequired
	}

	existing, err := u.profileRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	// Only a completed account blocks the address. A pending profile
	// (no password yet) is re-invitable, so a failed code issue or
	// email send can simply be retried.
	if existing != nil && existing.Password != "" {
		return nil, ErrEmailTaken
	}

	role := authdomain.Role(req.Role)
	if !role.Valid() {
		role = authdomain.RoleParticipant
	}

	profile := existing
	if profile == nil {
		// Pending profile: no password until the invite link is redeemed.
		profile = &authdomain.Profile{
			Email:    req.Email,
			FullName: req.FullName,
			Role:     role,
		}
		if err := u.profileRepo.Create(profile); err != nil {
			return nil, err
		}
	} else {
		profile.FullName = req.FullName
		profile.Role = role
		if err := u.profileRepo.Update(profile); err != nil {
			return nil, err
		}
	}

	code, err := u.codes.IssueSignInCode(profile.ID, authdomain.SignInCodeInvite)
	if err != nil {
		return nil, err
	}

	if err := u.mailer.SendInvite(ctx, req.Email, req.FullName, code); err != nil {
		return nil, err
	}

	log.Printf("[Admin] Invited %s as %s", req.Email, role)
	return profile, nil
}

func (u *adminUsecase) DeleteUser(callerID, targetID string) error {
	if callerID == targetID {
		return ErrSelfDelete
	}

	profile, err := u.profileRepo.FindByID(targetID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrUserNotFound
	}

	// Cascade: sessions, device tokens, memberships, private data,
	// then the profile itself.
	if err := u.profileRepo.DeleteRefreshTokensByUser(targetID); err != nil {
		return err
	}
	if err := u.fcmRepo.DeleteTokensByUserID(targetID); err != nil {
		return err
	}
	if err := u.cohorts.RemoveUserEverywhere(targetID); err != nil {
		return err
	}
	if err := u.journalRepo.DeleteByUser(targetID); err != nil {
		return err
	}
	if err := u.notificationRepo.DeleteByUser(targetID); err != nil {
		return err
	}
	if err := u.profileRepo.Delete(targetID); err != nil {
		return err
	}

	log.Printf("[Admin] Deleted user %s (%s)", targetID, profile.Email)
	return nil
}

func (u *adminUsecase) ListUsers() ([]authdomain.Profile, error) {
	return u.profileRepo.FindAll()
}

func (u *adminUsecase) ChangeRole(userID string, role authdomain.Role) (*authdomain.Profile, error) {
	if !role.Valid() {
		return nil, errors.New("invalid role")
	}

	profile, err := u.profileRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrUserNotFound
	}

	profile.Role = role
	if err := u.profileRepo.Update(profile); err != nil {
		return nil, err
	}
	return profile, nil
}
