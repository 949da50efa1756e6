package sendgrid

import (
	"context"
	"errors"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/config"
)

// Message describes one outbound transactional email.
type Message struct {
	ToEmail      string
	Subject      string
	PlainBody    string
	HTMLBody     string
	ReplyToName  string
	ReplyToEmail string
}

// Client wraps the SendGrid mail-send API.
type Client struct {
	api      *sendgrid.Client
	fromName string
	from     string
}

// New builds a SendGrid client from config. The API key is required; the
// storefront refuses to start contact delivery without it.
func New(cfg config.SendgridConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("sendgrid api key is required")
	}
	if cfg.DefaultFrom == "" {
		return nil, errors.New("sendgrid from email is required")
	}
	return &Client{
		api:      sendgrid.NewSendClient(cfg.APIKey),
		fromName: cfg.FromName,
		from:     cfg.DefaultFrom,
	}, nil
}

// Send dispatches the message and fails on any non-2xx response.
func (c *Client) Send(ctx context.Context, msg Message) error {
	if c == nil || c.api == nil {
		return errors.New("sendgrid client not initialized")
	}
	if msg.ToEmail == "" {
		return errors.New("recipient email is required")
	}

	from := mail.NewEmail(c.fromName, c.from)
	to := mail.NewEmail("", msg.ToEmail)
	email := mail.NewSingleEmail(from, msg.Subject, to, msg.PlainBody, msg.HTMLBody)
	if msg.ReplyToEmail != "" {
		email.SetReplyTo(mail.NewEmail(msg.ReplyToName, msg.ReplyToEmail))
	}

	resp, err := c.api.SendWithContext(ctx, email)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid send: unexpected status %d", resp.StatusCode)
	}
	return nil
}
