package usecase

import (
	"testing"

	authdomain "journeyhome-backend/internal/auth/domain"
	cohortdomain "journeyhome-backend/internal/cohort/domain"
	cohortUsecase "journeyhome-backend/internal/cohort/usecase"
	"journeyhome-backend/internal/message/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessageRepo struct {
	messages map[string]*domain.Message
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{messages: make(map[string]*domain.Message)}
}

func (f *fakeMessageRepo) Create(message *domain.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	f.messages[message.ID] = message
	return nil
}

func (f *fakeMessageRepo) FindByID(id string) (*domain.Message, error) {
	return f.messages[id], nil
}

func (f *fakeMessageRepo) FindBroadcasts(cohortID string) ([]domain.Message, error) {
	var out []domain.Message
	for _, m := range f.messages {
		if m.CohortID == cohortID && m.RecipientID == nil &&
			(m.MessageType == domain.TypeAnnouncement || m.MessageType == domain.TypePrompt) {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMessageRepo) FindPrivate(userID string) ([]domain.Message, error) {
	var out []domain.Message
	for _, m := range f.messages {
		if m.MessageType != domain.TypePrivate {
			continue
		}
		if m.SenderID == userID || (m.RecipientID != nil && *m.RecipientID == userID) {
			out = append(out, *m)
		}
	}
	return out, nil
}

// fakeMembership maps users onto cohorts and names who can moderate.
type fakeMembership struct {
	cohortByUser map[string]string
	moderators   map[string]bool
}

func (f *fakeMembership) ResolveCohortID(userID string) (string, error) {
	return f.cohortByUser[userID], nil
}

func (f *fakeMembership) GetMyCohort(string) (*cohortdomain.Cohort, error) { return nil, nil }

func (f *fakeMembership) MemberIDs(cohortID string) ([]string, error) {
	var out []string
	for userID, c := range f.cohortByUser {
		if c == cohortID {
			out = append(out, userID)
		}
	}
	return out, nil
}

func (f *fakeMembership) CanModerate(profile *authdomain.Profile, _ string) (bool, error) {
	return f.moderators[profile.ID], nil
}

func (f *fakeMembership) ListCohorts() ([]cohortdomain.Cohort, error) { return nil, nil }
func (f *fakeMembership) CreateCohort(string, *cohortUsecase.CreateCohortRequest) (*cohortdomain.Cohort, error) {
	return nil, nil
}
func (f *fakeMembership) AddMember(string, *cohortUsecase.AddMemberRequest) (*cohortdomain.CohortMember, error) {
	return nil, nil
}
func (f *fakeMembership) RemoveMember(string, string) error { return nil }
func (f *fakeMembership) RemoveUserEverywhere(string) error { return nil }

type recordingNotifier struct {
	sent []*domain.Message
}

func (r *recordingNotifier) MessageSent(message *domain.Message) {
	r.sent = append(r.sent, message)
}

func participant(id string) *authdomain.Profile {
	return &authdomain.Profile{ID: id, FullName: "User " + id, Role: authdomain.RoleParticipant}
}

func messageFixture() (*fakeMessageRepo, *fakeMembership, MessageUsecase) {
	repo := newFakeMessageRepo()
	membership := &fakeMembership{
		cohortByUser: map[string]string{
			"mod":   "cohort-1",
			"alice": "cohort-1",
			"bob":   "cohort-1",
		},
		moderators: map[string]bool{"mod": true},
	}
	u := NewMessageUsecase(repo, membership)
	return repo, membership, u
}

func rcpt(id string) *string { return &id }

func TestSendAnnouncementAsModerator(t *testing.T) {
	_, _, u := messageFixture()
	notifier := &recordingNotifier{}
	u.SetNotifier(notifier)

	message, err := u.Send(participant("mod"), &SendMessageRequest{
		Content:     "Welcome to week three",
		MessageType: domain.TypeAnnouncement,
	})

	require.NoError(t, err)
	require.NotNil(t, message)
	assert.Equal(t, "cohort-1", message.CohortID)
	assert.Nil(t, message.RecipientID)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, message.ID, notifier.sent[0].ID)
}

func TestSendAnnouncementAsParticipantForbidden(t *testing.T) {
	repo, _, u := messageFixture()

	_, err := u.Send(participant("alice"), &SendMessageRequest{
		Content:     "I declare an announcement",
		MessageType: domain.TypeAnnouncement,
	})

	assert.ErrorIs(t, err, ErrForbidden)
	assert.Empty(t, repo.messages, "a rejected send must not persist anything")
}

func TestSendPrivateRequiresRecipient(t *testing.T) {
	_, _, u := messageFixture()

	_, err := u.Send(participant("alice"), &SendMessageRequest{
		Content:     "psst",
		MessageType: domain.TypePrivate,
	})
	assert.Error(t, err)
}

func TestSendBroadcastRejectsRecipient(t *testing.T) {
	_, _, u := messageFixture()

	_, err := u.Send(participant("mod"), &SendMessageRequest{
		Content:     "targeted announcement",
		MessageType: domain.TypeAnnouncement,
		RecipientID: rcpt("bob"),
	})
	assert.Error(t, err)
}

func TestSendRequiresCohort(t *testing.T) {
	_, _, u := messageFixture()

	_, err := u.Send(participant("stranger"), &SendMessageRequest{
		Content:     "hello?",
		MessageType: domain.TypeGeneral,
	})
	assert.ErrorIs(t, err, ErrNoCohort)
}

func TestPrivateMessageVisibility(t *testing.T) {
	_, _, u := messageFixture()

	_, err := u.Send(participant("alice"), &SendMessageRequest{
		Content:     "just between us",
		MessageType: domain.TypePrivate,
		RecipientID: rcpt("bob"),
	})
	require.NoError(t, err)

	for _, userID := range []string{"alice", "bob"} {
		msgs, err := u.ListPrivate(userID)
		require.NoError(t, err)
		assert.Len(t, msgs, 1, "sender and recipient both see the thread")
	}

	msgs, err := u.ListPrivate("mod")
	require.NoError(t, err)
	assert.Empty(t, msgs, "third parties never see private messages")

	broadcasts, err := u.ListBroadcasts("alice")
	require.NoError(t, err)
	assert.Empty(t, broadcasts, "private messages never leak into the broadcast feed")
}

func TestListBroadcastsWithoutCohort(t *testing.T) {
	_, _, u := messageFixture()

	msgs, err := u.ListBroadcasts("stranger")
	require.NoError(t, err)
	assert.NotNil(t, msgs)
	assert.Empty(t, msgs)
}

func TestGeneralMessageExcludedFromBroadcasts(t *testing.T) {
	_, _, u := messageFixture()

	_, err := u.Send(participant("alice"), &SendMessageRequest{
		Content:     "anyone up for coffee",
		MessageType: domain.TypeGeneral,
	})
	require.NoError(t, err)

	broadcasts, err := u.ListBroadcasts("bob")
	require.NoError(t, err)
	assert.Empty(t, broadcasts)
}
