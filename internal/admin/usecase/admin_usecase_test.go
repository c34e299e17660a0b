package usecase

import (
	"context"
	"errors"
	"testing"

	authdomain "journeyhome-backend/internal/auth/domain"
	cohortdomain "journeyhome-backend/internal/cohort/domain"
	cohortUsecase "journeyhome-backend/internal/cohort/usecase"
	journaldomain "journeyhome-backend/internal/journal/domain"
	notificationdomain "journeyhome-backend/internal/notification/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfiles struct {
	byID map[string]*authdomain.Profile
}

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{byID: make(map[string]*authdomain.Profile)}
}

func (f *fakeProfiles) Create(profile *authdomain.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	f.byID[profile.ID] = profile
	return nil
}

func (f *fakeProfiles) FindByEmail(email string) (*authdomain.Profile, error) {
	for _, p := range f.byID {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProfiles) FindByID(id string) (*authdomain.Profile, error) {
	return f.byID[id], nil
}

func (f *fakeProfiles) FindAll() ([]authdomain.Profile, error) {
	var out []authdomain.Profile
	for _, p := range f.byID {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProfiles) Update(profile *authdomain.Profile) error {
	f.byID[profile.ID] = profile
	return nil
}

func (f *fakeProfiles) Delete(id string) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeProfiles) SaveRefreshToken(*authdomain.RefreshToken) error { return nil }
func (f *fakeProfiles) FindRefreshToken(string) (*authdomain.RefreshToken, error) {
	return nil, nil
}
func (f *fakeProfiles) DeleteRefreshToken(string) error { return nil }

func (f *fakeProfiles) DeleteRefreshTokensByUser(userID string) error { return nil }

func (f *fakeProfiles) CreateSignInCode(*authdomain.SignInCode) error { return nil }
func (f *fakeProfiles) ConsumeSignInCode(string) (*authdomain.SignInCode, error) {
	return nil, nil
}

type fakeFCMTokens struct {
	deletedUsers []string
}

func (f *fakeFCMTokens) SaveToken(userID, token, deviceInfo string) error { return nil }
func (f *fakeFCMTokens) GetTokensByUserID(string) ([]authdomain.FCMToken, error) {
	return nil, nil
}
func (f *fakeFCMTokens) GetTokensByUserIDs([]string) ([]authdomain.FCMToken, error) {
	return nil, nil
}
func (f *fakeFCMTokens) DeleteToken(string) error { return nil }

func (f *fakeFCMTokens) DeleteTokensByUserID(userID string) error {
	f.deletedUsers = append(f.deletedUsers, userID)
	return nil
}

type fakeJournal struct {
	deletedUsers []string
}

func (f *fakeJournal) Create(*journaldomain.JournalEntry) error { return nil }
func (f *fakeJournal) FindByUser(string) ([]journaldomain.JournalEntry, error) {
	return nil, nil
}
func (f *fakeJournal) FindByIDForUser(string, string) (*journaldomain.JournalEntry, error) {
	return nil, nil
}
func (f *fakeJournal) Update(*journaldomain.JournalEntry) error    { return nil }
func (f *fakeJournal) DeleteForUser(string, string) (int64, error) { return 0, nil }

func (f *fakeJournal) DeleteByUser(userID string) error {
	f.deletedUsers = append(f.deletedUsers, userID)
	return nil
}

type fakeNotifications struct {
	deletedUsers []string
}

func (f *fakeNotifications) CreateBatch([]notificationdomain.Notification) error { return nil }
func (f *fakeNotifications) FindByUser(string) ([]notificationdomain.Notification, error) {
	return nil, nil
}
func (f *fakeNotifications) MarkRead(string, string) (int64, error) { return 0, nil }

func (f *fakeNotifications) DeleteByUser(userID string) error {
	f.deletedUsers = append(f.deletedUsers, userID)
	return nil
}

type fakeCohorts struct {
	removedUsers []string
}

func (f *fakeCohorts) ResolveCohortID(string) (string, error) { return "", nil }
func (f *fakeCohorts) GetMyCohort(string) (*cohortdomain.Cohort, error) {
	return nil, nil
}
func (f *fakeCohorts) MemberIDs(string) ([]string, error) { return nil, nil }
func (f *fakeCohorts) CanModerate(*authdomain.Profile, string) (bool, error) {
	return false, nil
}
func (f *fakeCohorts) ListCohorts() ([]cohortdomain.Cohort, error) { return nil, nil }
func (f *fakeCohorts) CreateCohort(string, *cohortUsecase.CreateCohortRequest) (*cohortdomain.Cohort, error) {
	return nil, nil
}
func (f *fakeCohorts) AddMember(string, *cohortUsecase.AddMemberRequest) (*cohortdomain.CohortMember, error) {
	return nil, nil
}
func (f *fakeCohorts) RemoveMember(string, string) error { return nil }

func (f *fakeCohorts) RemoveUserEverywhere(userID string) error {
	f.removedUsers = append(f.removedUsers, userID)
	return nil
}

type fakeCodeIssuer struct {
	issued []authdomain.SignInCodeType
}

func (f *fakeCodeIssuer) IssueSignInCode(userID string, codeType authdomain.SignInCodeType) (string, error) {
	f.issued = append(f.issued, codeType)
	return "code-" + userID, nil
}

type fakeMailer struct {
	sentTo []string
	codes  []string
	err    error
}

func (f *fakeMailer) SendInvite(_ context.Context, email, fullName, code string) error {
	if f.err != nil {
		return f.err
	}
	f.sentTo = append(f.sentTo, email)
	f.codes = append(f.codes, code)
	return nil
}

type adminFixture struct {
	profiles      *fakeProfiles
	fcm           *fakeFCMTokens
	journal       *fakeJournal
	notifications *fakeNotifications
	cohorts       *fakeCohorts
	codes         *fakeCodeIssuer
	mailer        *fakeMailer
	usecase       AdminUsecase
}

func newAdminFixture() *adminFixture {
	fx := &adminFixture{
		profiles:      newFakeProfiles(),
		fcm:           &fakeFCMTokens{},
		journal:       &fakeJournal{},
		notifications: &fakeNotifications{},
		cohorts:       &fakeCohorts{},
		codes:         &fakeCodeIssuer{},
		mailer:        &fakeMailer{},
	}
	fx.usecase = NewAdminUsecase(fx.profiles, fx.fcm, fx.journal, fx.notifications, fx.cohorts, fx.codes, fx.mailer)
	return fx
}

func TestInviteUserCreatesPendingProfile(t *testing.T) {
	fx := newAdminFixture()

	profile, err := fx.usecase.InviteUser(context.Background(), &InviteRequest{
		Email:    "new@example.com",
		FullName: "New Member",
		Role:     "moderator",
	})

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", profile.Email)
	assert.Equal(t, authdomain.RoleModerator, profile.Role)
	assert.Empty(t, profile.Password, "invited accounts have no password until the link is redeemed")
	assert.Equal(t, []authdomain.SignInCodeType{authdomain.SignInCodeInvite}, fx.codes.issued)
	assert.Equal(t, []string{"new@example.com"}, fx.mailer.sentTo)
	assert.Equal(t, []string{"code-" + profile.ID}, fx.mailer.codes)
}

func TestInviteUserInvalidRoleFallsBackToParticipant(t *testing.T) {
	fx := newAdminFixture()

	profile, err := fx.usecase.InviteUser(context.Background(), &InviteRequest{
		Email: "new@example.com",
		Role:  "superuser",
	})

	require.NoError(t, err)
	assert.Equal(t, authdomain.RoleParticipant, profile.Role)
}

func TestInviteUserRequiresEmail(t *testing.T) {
	fx := newAdminFixture()

	_, err := fx.usecase.InviteUser(context.Background(), &InviteRequest{FullName: "No Email"})

	assert.ErrorIs(t, err, ErrEmailRequired)
	assert.Empty(t, fx.mailer.sentTo)
}

func TestInviteUserDuplicateEmail(t *testing.T) {
	fx := newAdminFixture()
	require.NoError(t, fx.profiles.Create(&authdomain.Profile{
		Email:    "taken@example.com",
		Password: "hashed",
	}))

	_, err := fx.usecase.InviteUser(context.Background(), &InviteRequest{Email: "taken@example.com"})

	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Empty(t, fx.codes.issued)
	assert.Empty(t, fx.mailer.sentTo)
}

func TestInviteUserReinvitesPendingProfile(t *testing.T) {
	fx := newAdminFixture()

	first, err := fx.usecase.InviteUser(context.Background(), &InviteRequest{
		Email:    "new@example.com",
		FullName: "New Member",
	})
	require.NoError(t, err)

	// The link was never redeemed; a second invite reuses the pending
	// profile and mints a fresh code instead of bouncing the address.
	second, err := fx.usecase.InviteUser(context.Background(), &InviteRequest{
		Email:    "new@example.com",
		FullName: "Renamed Member",
		Role:     "moderator",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Renamed Member", second.FullName)
	assert.Equal(t, authdomain.RoleModerator, second.Role)
	assert.Len(t, fx.codes.issued, 2)
	assert.Len(t, fx.mailer.sentTo, 2)
	assert.Len(t, fx.profiles.byID, 1, "re-inviting must not duplicate the profile")
}

func TestInviteUserRetryAfterMailerFailure(t *testing.T) {
	fx := newAdminFixture()
	fx.mailer.err = errors.New("resend: 503")

	_, err := fx.usecase.InviteUser(context.Background(), &InviteRequest{Email: "new@example.com"})
	require.Error(t, err)
	assert.Empty(t, fx.mailer.sentTo)

	// The failed attempt left a pending profile behind; the retry must
	// go through rather than reporting the address as taken.
	fx.mailer.err = nil
	profile, err := fx.usecase.InviteUser(context.Background(), &InviteRequest{Email: "new@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", profile.Email)
	assert.Equal(t, []string{"new@example.com"}, fx.mailer.sentTo)
}

func TestDeleteUserCascades(t *testing.T) {
	fx := newAdminFixture()
	target := &authdomain.Profile{Email: "target@example.com"}
	require.NoError(t, fx.profiles.Create(target))

	err := fx.usecase.DeleteUser("admin-id", target.ID)

	require.NoError(t, err)
	assert.Nil(t, fx.profiles.byID[target.ID])
	assert.Equal(t, []string{target.ID}, fx.fcm.deletedUsers)
	assert.Equal(t, []string{target.ID}, fx.cohorts.removedUsers)
	assert.Equal(t, []string{target.ID}, fx.journal.deletedUsers)
	assert.Equal(t, []string{target.ID}, fx.notifications.deletedUsers)
}

func TestDeleteUserRejectsSelf(t *testing.T) {
	fx := newAdminFixture()
	admin := &authdomain.Profile{Email: "admin@example.com", Role: authdomain.RoleAdmin}
	require.NoError(t, fx.profiles.Create(admin))

	err := fx.usecase.DeleteUser(admin.ID, admin.ID)

	assert.ErrorIs(t, err, ErrSelfDelete)
	assert.NotNil(t, fx.profiles.byID[admin.ID], "self-delete must not mutate anything")
	assert.Empty(t, fx.cohorts.removedUsers)
}

func TestDeleteUserNotFound(t *testing.T) {
	fx := newAdminFixture()

	err := fx.usecase.DeleteUser("admin-id", "ghost")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestChangeRole(t *testing.T) {
	fx := newAdminFixture()
	target := &authdomain.Profile{Email: "target@example.com", Role: authdomain.RoleParticipant}
	require.NoError(t, fx.profiles.Create(target))

	updated, err := fx.usecase.ChangeRole(target.ID, authdomain.RoleModerator)
	require.NoError(t, err)
	assert.Equal(t, authdomain.RoleModerator, updated.Role)

	_, err = fx.usecase.ChangeRole(target.ID, authdomain.Role("nonsense"))
	assert.Error(t, err)

	_, err = fx.usecase.ChangeRole("ghost", authdomain.RoleAdmin)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
