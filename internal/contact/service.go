package contact

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/config"
	pkgerrors "github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/errors"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/logger"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/sendgrid"
)

// Submission is a validated contact form payload.
type Submission struct {
	Name    string `json:"name" validate:"required,min=1,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=1,max=200"`
	Message string `json:"message" validate:"required,min=1,max=5000"`
}

type mailSender interface {
	Send(ctx context.Context, msg sendgrid.Message) error
}

// Service forwards contact form submissions to the boutique inbox.
type Service struct {
	mailer    mailSender
	recipient string
	log       *logger.Logger
}

func NewService(mailer mailSender, cfg config.ContactConfig, log *logger.Logger) *Service {
	return &Service{mailer: mailer, recipient: cfg.Recipient, log: log}
}

// Submit delivers the submission as a transactional email with reply-to
// set to the shopper. Delivery failures are reported, not retried.
func (s *Service) Submit(ctx context.Context, sub Submission) error {
	if s.recipient == "" {
		return pkgerrors.New(pkgerrors.CodeDependency, "contact inbox is not configured")
	}

	msg := sendgrid.Message{
		ToEmail:      s.recipient,
		Subject:      fmt.Sprintf("Contact Form: %s", strings.TrimSpace(sub.Subject)),
		PlainBody:    plainBody(sub),
		HTMLBody:     htmlBody(sub),
		ReplyToName:  sub.Name,
		ReplyToEmail: sub.Email,
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		s.log.Error(ctx, "contact email delivery failed", err)
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "send contact email")
	}

	s.log.Info(ctx, "contact submission delivered")
	return nil
}

func plainBody(sub Submission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", sub.Name)
	fmt.Fprintf(&b, "Email: %s\n", sub.Email)
	fmt.Fprintf(&b, "Subject: %s\n\n", sub.Subject)
	b.WriteString(sub.Message)
	return b.String()
}

func htmlBody(sub Submission) string {
	message := strings.ReplaceAll(html.EscapeString(sub.Message), "\n", "<br>")
	return fmt.Sprintf(
		"<p><strong>Name:</strong> %s<br><strong>Email:</strong> %s<br><strong>Subject:</strong> %s</p><p>%s</p>",
		html.EscapeString(sub.Name),
		html.EscapeString(sub.Email),
		html.EscapeString(sub.Subject),
		message,
	)
}
