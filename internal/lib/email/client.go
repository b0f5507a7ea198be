// Package email provides an email sending client.
//
// It uses Resend (resend-go) as the provider and renders HTML bodies
// from embedded templates. When no API key is configured, sends are
// logged and skipped so local environments work without credentials.
package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"

	"github.com/reufer-studio/marketplace-api/internal/config"
)

//go:embed templates/*.html
var templates embed.FS

// Client wraps the Resend client and a logger.
type Client struct {
	client *resend.Client
	from   string
	logger *zerolog.Logger

	// enabled is false when no API key was configured.
	enabled bool
}

// NewClient creates an email Client from config.
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	from := cfg.Integration.EmailFrom
	if from == "" {
		from = "Reufer Studio <orders@reufer.studio>"
	}

	return &Client{
		client:  resend.NewClient(cfg.Integration.ResendAPIKey),
		from:    from,
		logger:  logger,
		enabled: cfg.Integration.ResendAPIKey != "",
	}
}

// SendEmail renders templateName with data and sends it to the recipient.
func (c *Client) SendEmail(to, subject string, templateName Template, data map[string]string) error {
	tmpl, err := template.ParseFS(templates, fmt.Sprintf("templates/%s.html", templateName))
	if err != nil {
		return errors.Wrapf(err, "failed to parse email template %s", templateName)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return errors.Wrapf(err, "failed to execute email template %s", templateName)
	}

	if !c.enabled {
		c.logger.Info().
			Str("to", to).
			Str("subject", subject).
			Str("template", string(templateName)).
			Msg("email sending disabled, skipping")
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    body.String(),
	}

	if _, err := c.client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
