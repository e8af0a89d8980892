// Package di wires optional infrastructure into the components that consume it.
package di

import (
	"net/http"

	"github.com/Fibidy-Developer/fibidy-blog-app/internal/feature/auth/usecase"
	"github.com/Fibidy-Developer/fibidy-blog-app/internal/platform/mail"
)

// NewNotifier creates a Notifier implementation.
// If a Resend API key is configured, it returns the Resend-backed notifier.
// Otherwise, it falls back to a log-only notifier for local development.
func NewNotifier(cfg mail.Config, client *http.Client) usecase.Notifier {
	if cfg.APIKey == "" {
		return mail.NewLogNotifier()
	}
	return mail.NewResendNotifier(cfg, client)
}
