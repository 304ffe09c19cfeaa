package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/pacsflow/pacsflow/internal/logger"
)

// emailTemplates stores email templates as string constants
var emailTemplates = map[string]string{
	TemplateTenantWelcome: `<!DOCTYPE html>
<html>
<head>
    <meta http-equiv="Content-Type" content="text/html; charset=UTF-8" />
    <title>Welcome to PACSFlow</title>
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif; font-size: 14px; line-height: 1.6; color: #333;">
    <p>Hi {{.tenant_name}},</p>
    <p>Your workspace is ready at <a href="https://{{.subdomain}}.pacsflow.io">{{.subdomain}}.pacsflow.io</a>.</p>

    <p>You are on the <strong>{{.plan_name}}</strong> plan. Sign in with this email address to
    invite your team, configure your DICOM nodes and start receiving studies.</p>

    <p>If anything looks off, just reply to this email.</p>

    <br/>

    <p>Best,<br/>
    The PACSFlow team
    </p>
</body>
</html>`,
	TemplateSubscriptionExpired: `<!DOCTYPE html>
<html>
<head>
    <meta http-equiv="Content-Type" content="text/html; charset=UTF-8" />
    <title>Your PACSFlow subscription has expired</title>
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif; font-size: 14px; line-height: 1.6; color: #333;">
    <p>Hi {{.tenant_name}},</p>
    <p>Your <strong>{{.plan_name}}</strong> subscription expired on {{.expired_at}}.</p>

    <p>Access to <a href="https://{{.subdomain}}.pacsflow.io">{{.subdomain}}.pacsflow.io</a> has been
    suspended. Your data is retained and will be restored as soon as the subscription is renewed.</p>

    <p>Reply to this email if you need help renewing.</p>

    <br/>

    <p>Best,<br/>
    The PACSFlow team
    </p>
</body>
</html>`,
}

// Email handles email operations
type Email struct {
	client *EmailClient
	logger *logger.Logger
}

// NewEmail creates a new email service
func NewEmail(client *EmailClient, logger *logger.Logger) *Email {
	return &Email{
		client: client,
		logger: logger,
	}
}

// SendEmail sends a plain text email
func (s *Email) SendEmail(ctx context.Context, req SendEmailRequest) (*SendEmailResponse, error) {
	if !s.client.IsEnabled() {
		s.logger.Warnw("email client is disabled, skipping email send",
			"to", req.ToAddress,
			"subject", req.Subject,
		)
		return &SendEmailResponse{
			Success: false,
			Error:   "email client is disabled",
		}, nil
	}

	// Prioritize env var from address over request from address
	fromAddress := s.client.GetFromAddress()
	if fromAddress == "" {
		fromAddress = req.FromAddress
	}

	messageID, err := s.client.SendEmail(ctx, fromAddress, req.ToAddress, req.Subject, "", req.Text)
	if err != nil {
		s.logger.Errorw("failed to send email",
			"error", err,
			"to", req.ToAddress,
			"subject", req.Subject,
		)
		return &SendEmailResponse{
			Success: false,
			Error:   err.Error(),
		}, err
	}

	s.logger.Infow("email sent successfully",
		"message_id", messageID,
		"to", req.ToAddress,
		"subject", req.Subject,
	)

	return &SendEmailResponse{
		MessageID: messageID,
		Success:   true,
	}, nil
}

// SendEmailWithTemplate sends an email using an HTML template
func (s *Email) SendEmailWithTemplate(ctx context.Context, req SendEmailWithTemplateRequest) (*SendEmailWithTemplateResponse, error) {
	if !s.client.IsEnabled() {
		s.logger.Warnw("email client is disabled, skipping email send",
			"to", req.ToAddress,
			"subject", req.Subject,
			"template", req.TemplatePath,
		)
		return &SendEmailWithTemplateResponse{
			Success: false,
			Error:   "email client is disabled",
		}, nil
	}

	// Prioritize env var from address over request from address
	fromAddress := s.client.GetFromAddress()
	if fromAddress == "" {
		fromAddress = req.FromAddress
	}

	// Retrieve the template from in-memory store
	htmlContent, err := s.readTemplate(req.TemplatePath)
	if err != nil {
		s.logger.Errorw("failed to read email template",
			"error", err,
			"template", req.TemplatePath,
		)
		return &SendEmailWithTemplateResponse{
			Success: false,
			Error:   err.Error(),
		}, err
	}

	// Render template with data using html/template
	htmlContent, err = s.renderTemplate(htmlContent, req.Data)
	if err != nil {
		s.logger.Errorw("failed to render email template",
			"error", err,
			"template", req.TemplatePath,
		)
		return &SendEmailWithTemplateResponse{
			Success: false,
			Error:   err.Error(),
		}, err
	}

	messageID, err := s.client.SendEmail(ctx, fromAddress, req.ToAddress, req.Subject, htmlContent, "")
	if err != nil {
		s.logger.Errorw("failed to send templated email",
			"error", err,
			"from", fromAddress,
			"to", req.ToAddress,
			"subject", req.Subject,
			"template", req.TemplatePath,
		)
		return &SendEmailWithTemplateResponse{
			Success: false,
			Error:   err.Error(),
		}, err
	}

	s.logger.Infow("templated email sent successfully",
		"message_id", messageID,
		"to", req.ToAddress,
		"subject", req.Subject,
		"template", req.TemplatePath,
	)

	return &SendEmailWithTemplateResponse{
		MessageID: messageID,
		Success:   true,
	}, nil
}

func (s *Email) readTemplate(templatePath string) (string, error) {
	templateContent, exists := emailTemplates[templatePath]
	if !exists {
		return "", fmt.Errorf("template not found: %s", templatePath)
	}

	return templateContent, nil
}

// renderTemplate renders an HTML template using Go's html/template for safe HTML rendering
func (s *Email) renderTemplate(templateContent string, data map[string]interface{}) (string, error) {
	tmpl, err := template.New("email").Parse(templateContent)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
