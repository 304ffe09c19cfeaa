package email

import (
	"context"

	"github.com/pacsflow/pacsflow/internal/config"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
	"github.com/resend/resend-go/v2"
)

// EmailClient wraps the resend client. When email is disabled in the
// configuration the client behaves as a stub: sends are skipped and
// reported as such.
type EmailClient struct {
	client      *resend.Client
	enabled     bool
	fromAddress string
}

// NewEmailClient creates a new email client from the configuration
func NewEmailClient(cfg *config.Configuration) *EmailClient {
	var client *resend.Client
	if cfg.Email.Enabled {
		client = resend.NewClient(cfg.Email.APIKey)
	}
	return &EmailClient{
		client:      client,
		enabled:     cfg.Email.Enabled,
		fromAddress: cfg.Email.FromAddress,
	}
}

// IsEnabled reports whether sends are actually delivered
func (c *EmailClient) IsEnabled() bool {
	return c.enabled
}

// GetFromAddress returns the configured default from address
func (c *EmailClient) GetFromAddress() string {
	return c.fromAddress
}

// SendEmail sends one email and returns the provider message id
func (c *EmailClient) SendEmail(ctx context.Context, from, to, subject, html, text string) (string, error) {
	sent, err := c.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
		Text:    text,
	})
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to send email").
			WithReportableDetails(map[string]interface{}{
				"to":      to,
				"subject": subject,
			}).
			Mark(ierr.ErrHTTPClient)
	}
	return sent.Id, nil
}
