package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_notifier.go -package=mocks portfolio-api/internal/service Notifier
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_contact_service.go -package=mocks portfolio-api/internal/service ContactService

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"portfolio-api/internal/contextutil"
	"portfolio-api/internal/telegram"
	"portfolio-api/internal/validation"
)

// Notifier delivers a Markdown-formatted text to the site owner.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// ContactForm is a contact form submission.
type ContactForm struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,min=10,max=20"`
	Message string `json:"message" validate:"required,min=10,max=1000"`
}

// ContactService relays contact form submissions.
type ContactService interface {
	// Submit validates the form and forwards it to the notifier.
	Submit(ctx context.Context, form ContactForm) error
}

type contactService struct {
	notifier Notifier
	now      func() time.Time
	zone     string
}

// NewContactService creates a new ContactService.
func NewContactService(notifier Notifier) ContactService {
	return &contactService{
		notifier: notifier,
		now:      time.Now,
		zone:     ServerTimeZone(),
	}
}

func (s *contactService) Submit(ctx context.Context, form ContactForm) error {
	logger := contextutil.LoggerFromContext(ctx)

	if issues := validation.Struct(form); len(issues) > 0 {
		logger.WarnContext(ctx, "invalid contact form", "issues", len(issues))
		return NewValidationError(issues)
	}

	if err := s.notifier.Notify(ctx, FormatContactMessage(form, s.now(), s.zone)); err != nil {
		logger.ErrorContext(ctx, "failed to deliver contact message", "error", err)
		return WrapError(err, "failed to deliver contact message")
	}

	logger.InfoContext(ctx, "contact message delivered", "message_length", len(form.Message))
	return nil
}

// FormatContactMessage renders a submission as a Telegram Markdown message.
// submittedAt is printed in UTC and zone names the server's time zone.
// User-supplied fields are escaped.
func FormatContactMessage(form ContactForm, submittedAt time.Time, zone string) string {
	field := func(s string) string {
		return telegram.EscapeMarkdown(strings.TrimSpace(s))
	}

	var b strings.Builder
	b.WriteString("🔔 *New Contact Form Submission*\n\n")
	fmt.Fprintf(&b, "👤 *Name:* %s\n", field(form.Name))
	fmt.Fprintf(&b, "📧 *Email:* %s\n", field(form.Email))
	fmt.Fprintf(&b, "📱 *Phone:* %s\n\n", field(form.Phone))
	fmt.Fprintf(&b, "💬 *Message:*\n%s\n\n", field(form.Message))
	fmt.Fprintf(&b, "⏰ *Submitted:* %s\n", submittedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "📍 *Timezone:* %s", zone)
	return b.String()
}

// ServerTimeZone returns the IANA name of the server's time zone: TZ when set,
// else the target of the /etc/localtime link, else the current zone abbreviation.
func ServerTimeZone() string {
	if tz := strings.TrimPrefix(os.Getenv("TZ"), ":"); tz != "" {
		return tz
	}
	if target, err := os.Readlink("/etc/localtime"); err == nil {
		if _, name, ok := strings.Cut(target, "zoneinfo/"); ok && name != "" {
			return name
		}
	}
	name, _ := time.Now().Zone()
	return name
}
