package mailer

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"github.com/resend/resend-go/v2"
)

// Mailer sends transactional email via the Resend API.
type Mailer struct {
	client *resend.Client
	from   string
	appURL string
}

// NewMailer creates a Mailer with the given API key, default from
// address and the public app URL used to build callback links.
func NewMailer(apiKey, from, appURL string) *Mailer {
	return &Mailer{
		client: resend.NewClient(apiKey),
		from:   from,
		appURL: appURL,
	}
}

// SendInvite emails an invitation containing the one-time callback
// link for the given sign-in code.
func (m *Mailer) SendInvite(ctx context.Context, email, fullName, code string) error {
	link := m.callbackLink(code, "invite")

	name := fullName
	if name == "" {
		name = "there"
	}

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{email},
		Subject: "You're invited to Journey Home",
		Html: fmt.Sprintf(
			`<p>Hi %s,</p>
<p>You've been invited to join Journey Home. Click the link below to
accept the invitation and set up your account:</p>
<p><a href="%s">Accept invitation</a></p>
<p>This link can only be used once and expires in 24 hours.</p>`,
			name, link),
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send invite email: %w", err)
	}

	log.Printf("[Mailer] Invite sent to %s (message %s)", email, sent.Id)
	return nil
}

// SendRecovery emails a password-recovery link.
func (m *Mailer) SendRecovery(ctx context.Context, email, code string) error {
	link := m.callbackLink(code, "recovery")

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{email},
		Subject: "Reset your Journey Home password",
		Html: fmt.Sprintf(
			`<p>Click the link below to reset your password:</p>
<p><a href="%s">Reset password</a></p>
<p>If you did not request this, you can ignore this email.</p>`,
			link),
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send recovery email: %w", err)
	}

	log.Printf("[Mailer] Recovery sent to %s (message %s)", email, sent.Id)
	return nil
}

func (m *Mailer) callbackLink(code, linkType string) string {
	values := url.Values{}
	values.Set("code", code)
	values.Set("type", linkType)
	return m.appURL + "/auth/callback?" + values.Encode()
}
