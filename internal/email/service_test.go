package email

import (
	"context"
	"strings"
	"testing"

	"github.com/pacsflow/pacsflow/internal/config"
	"github.com/pacsflow/pacsflow/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDisabledEmailService() *Email {
	cfg := config.GetDefaultConfig()
	cfg.Email.Enabled = false
	return NewEmail(NewEmailClient(cfg), logger.GetLogger())
}

func TestSendEmailDisabled(t *testing.T) {
	s := newDisabledEmailService()

	resp, err := s.SendEmail(context.Background(), SendEmailRequest{
		ToAddress: "admin@example.com",
		Subject:   "Hello",
		Text:      "Hello there",
	})

	// A disabled client is not an error, the response just reports the skip
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "email client is disabled", resp.Error)
}

func TestSendEmailWithTemplateDisabled(t *testing.T) {
	s := newDisabledEmailService()

	resp, err := s.SendEmailWithTemplate(context.Background(), SendEmailWithTemplateRequest{
		ToAddress:    "admin@example.com",
		Subject:      "Welcome to PACSFlow",
		TemplatePath: TemplateTenantWelcome,
		Data:         map[string]interface{}{"tenant_name": "Radiology Clinic"},
	})

	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "email client is disabled", resp.Error)
}

func TestReadTemplate(t *testing.T) {
	s := newDisabledEmailService()

	for _, path := range []string{TemplateTenantWelcome, TemplateSubscriptionExpired} {
		content, err := s.readTemplate(path)
		require.NoError(t, err)
		assert.NotEmpty(t, content)
	}

	_, err := s.readTemplate("nonexistent.html")
	assert.Error(t, err)
}

func TestRenderTemplate(t *testing.T) {
	s := newDisabledEmailService()

	content, err := s.readTemplate(TemplateSubscriptionExpired)
	require.NoError(t, err)

	rendered, err := s.renderTemplate(content, map[string]interface{}{
		"tenant_name": "Radiology Clinic",
		"subdomain":   "clinic-one",
		"plan_name":   "Standard",
		"expired_at":  "March 15, 2026",
	})
	require.NoError(t, err)

	assert.True(t, strings.Contains(rendered, "Hi Radiology Clinic,"))
	assert.True(t, strings.Contains(rendered, "clinic-one.pacsflow.io"))
	assert.True(t, strings.Contains(rendered, "<strong>Standard</strong>"))
	assert.True(t, strings.Contains(rendered, "March 15, 2026"))
}

func TestRenderTemplateEscapesHTML(t *testing.T) {
	s := newDisabledEmailService()

	rendered, err := s.renderTemplate("<p>{{.tenant_name}}</p>", map[string]interface{}{
		"tenant_name": "<script>alert(1)</script>",
	})
	require.NoError(t, err)
	assert.False(t, strings.Contains(rendered, "<script>"))
}
