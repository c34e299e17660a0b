package usecase

import (
	"context"
	"testing"
	"time"

	authdomain "journeyhome-backend/internal/auth/domain"
	authdto "journeyhome-backend/internal/auth/dto"
	"journeyhome-backend/internal/auth/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProfileWithPassword(t *testing.T, repo *fakeProfileRepo, id, password string) *authdomain.Profile {
	t.Helper()
	hashed, err := repository.HashPassword(password)
	require.NoError(t, err)
	profile := seedProfile(repo, id, time.Now().Add(-48*time.Hour))
	profile.Password = hashed
	return profile
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeProfileRepo()
	u := newTestUsecase(repo)
	profile := seedProfileWithPassword(t, repo, "user-1", "correct horse")

	resp, err := u.Login(&authdto.LoginRequest{Email: profile.Email, Password: "correct horse"})

	require.NoError(t, err)
	assert.Equal(t, profile.ID, resp.User.ID)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Len(t, repo.refreshTokens, 1)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeProfileRepo()
	u := newTestUsecase(repo)
	profile := seedProfileWithPassword(t, repo, "user-1", "correct horse")

	_, err := u.Login(&authdto.LoginRequest{Email: profile.Email, Password: "battery staple"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, repo.refreshTokens)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := newFakeProfileRepo()
	u := newTestUsecase(repo)

	_, err := u.Login(&authdto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})

	// Same error as a wrong password so login cannot probe which
	// addresses exist.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginPendingInvite(t *testing.T) {
	repo := newFakeProfileRepo()
	u := newTestUsecase(repo)
	profile := seedProfile(repo, "user-1", time.Now())

	_, err := u.Login(&authdto.LoginRequest{Email: profile.Email, Password: "anything"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	assert.Contains(t, err.Error(), "invitation")
}

func TestRefreshTokenRotation(t *testing.T) {
	repo := newFakeProfileRepo()
	u := newTestUsecase(repo)
	profile := seedProfileWithPassword(t, repo, "user-1", "correct horse")

	session, err := u.Login(&authdto.LoginRequest{Email: profile.Email, Password: "correct horse"})
	require.NoError(t, err)

	refreshed, err := u.RefreshToken(session.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, refreshed.User.ID)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefreshTokenRejectedAfterLogout(t *testing.T) {
	repo := newFakeProfileRepo()
	u := newTestUsecase(repo)
	profile := seedProfileWithPassword(t, repo, "user-1", "correct horse")

	session, err := u.Login(&authdto.LoginRequest{Email: profile.Email, Password: "correct horse"})
	require.NoError(t, err)

	require.NoError(t, u.Logout(session.RefreshToken))

	_, err = u.RefreshToken(session.RefreshToken)
	assert.Error(t, err)
}

func TestSetPasswordThenLogin(t *testing.T) {
	repo := newFakeProfileRepo()
	u := newTestUsecase(repo)
	profile := seedProfile(repo, "user-1", time.Now())

	require.NoError(t, u.SetPassword(profile.ID, "fresh password"))

	resp, err := u.Login(&authdto.LoginRequest{Email: profile.Email, Password: "fresh password"})
	require.NoError(t, err)
	assert.Equal(t, profile.ID, resp.User.ID)
}

type recordingRecoveryMailer struct {
	sentTo []string
	codes  []string
}

func (m *recordingRecoveryMailer) SendRecovery(_ context.Context, email, code string) error {
	m.sentTo = append(m.sentTo, email)
	m.codes = append(m.codes, code)
	return nil
}

func TestRequestRecovery(t *testing.T) {
	repo := newFakeProfileRepo()
	u := newTestUsecase(repo)
	mailer := &recordingRecoveryMailer{}
	u.SetRecoveryMailer(mailer)
	profile := seedProfile(repo, "user-1", time.Now().Add(-48*time.Hour))

	require.NoError(t, u.RequestRecovery(context.Background(), profile.Email))

	require.Len(t, mailer.codes, 1)
	assert.Equal(t, []string{profile.Email}, mailer.sentTo)

	// The emailed code resolves through the callback into the
	// set-password flow.
	result := u.ResolveCallback(CallbackParams{Code: mailer.codes[0]})
	assert.Equal(t, StateSessionEstablished, result.State)
	assert.Equal(t, "/auth/set-password", result.Redirect)
}

func TestRequestRecoveryUnknownEmailSilent(t *testing.T) {
	repo := newFakeProfileRepo()
	u := newTestUsecase(repo)
	mailer := &recordingRecoveryMailer{}
	u.SetRecoveryMailer(mailer)

	require.NoError(t, u.RequestRecovery(context.Background(), "nobody@example.com"))
	assert.Empty(t, mailer.sentTo)
	assert.Empty(t, repo.signInCodes)
}

func TestValidateTokenRoundTrip(t *testing.T) {
	repo := newFakeProfileRepo()
	u := newTestUsecase(repo)
	profile := seedProfile(repo, "user-1", time.Now())

	token, err := u.generateAccessToken(profile)
	require.NoError(t, err)

	got, err := u.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, got.ID)

	_, err = u.ValidateToken("garbage")
	assert.Error(t, err)
}
