package mail

import (
	"context"
	"log/slog"

	"github.com/Fibidy-Developer/fibidy-blog-app/internal/feature/auth/usecase"
)

// LogNotifier is a Notifier that only logs. It is used in local development
// when no Resend API key is configured, so the reset flow stays exercisable
// without an outbound mail channel.
type LogNotifier struct{}

var _ usecase.Notifier = (*LogNotifier)(nil)

// NewLogNotifier creates a new LogNotifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// SendPasswordReset logs the reset token instead of sending mail.
func (n *LogNotifier) SendPasswordReset(_ context.Context, email, token string) error {
	slog.Info("password reset requested (mail disabled)", "email", email, "token", token)
	return nil
}

// SendPasswordChanged logs the password change notice instead of sending mail.
func (n *LogNotifier) SendPasswordChanged(_ context.Context, email string) error {
	slog.Info("password changed (mail disabled)", "email", email)
	return nil
}
