package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Fibidy-Developer/fibidy-blog-app/internal/feature/auth/usecase"
)

// ResendNotifier はResend APIを通じてメールを送信するNotifier実装です。
type ResendNotifier struct {
	cfg    Config
	client *http.Client
}

// ResendNotifierがNotifierを実装していることをコンパイル時に検証します。
var _ usecase.Notifier = (*ResendNotifier)(nil)

// NewResendNotifier は指定された設定とHTTPクライアントでResendNotifierの新しいインスタンスを生成します。
func NewResendNotifier(cfg Config, client *http.Client) *ResendNotifier {
	return &ResendNotifier{cfg: cfg, client: client}
}

// sendRequest はResend APIの /emails エンドポイントへのリクエストボディです。
type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
	Text    string   `json:"text"`
}

// sendResponse はResend APIのレスポンスです。エラー時はMessageが入ります。
type sendResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// send は1通のメールをResend APIへ送信します。
func (n *ResendNotifier) send(ctx context.Context, req sendRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal mail request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.BaseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Authorization", "Bearer "+n.cfg.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")
	// 再送時の二重配信を防ぐ
	httpReq.Header.Set("Idempotency-Key", uuid.NewString())

	res, err := n.client.Do(httpReq)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	var parsed sendResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		if res.StatusCode >= 400 {
			return fmt.Errorf("resend http %d", res.StatusCode)
		}
		return fmt.Errorf("failed to decode resend response: %w", err)
	}
	if res.StatusCode >= 400 {
		return fmt.Errorf("resend http %d: %s", res.StatusCode, parsed.Message)
	}

	slog.Info("mail sent", "to", req.To, "subject", req.Subject, "id", parsed.ID)
	return nil
}

// SendPasswordReset はリセットリンクを含むメールを送信します。
// リンクの有効期限（15分）を本文に明記します。
func (n *ResendNotifier) SendPasswordReset(ctx context.Context, email, token string) error {
	resetURL := fmt.Sprintf("%s/auth/reset-password?token=%s", n.cfg.FrontendURL, token)

	text := fmt.Sprintf(`Password Reset Request

We received a request to reset your %[1]s password.

To reset your password, please visit: %[2]s

This link will expire in 15 minutes for security reasons.

If you didn't request this password reset, you can safely ignore this email.

Best regards,
The %[1]s Team
`, n.cfg.AppName, resetURL)

	html := fmt.Sprintf(`<p>We received a request to reset your %[1]s password.</p>
<p><a href="%[2]s">Reset your password</a></p>
<p>This link will expire in 15 minutes. If you didn't request this reset, you can safely ignore this email.</p>`,
		n.cfg.AppName, resetURL)

	return n.send(ctx, sendRequest{
		From:    n.cfg.From,
		To:      []string{email},
		Subject: fmt.Sprintf("Reset Your %s Password", n.cfg.AppName),
		HTML:    html,
		Text:    text,
	})
}

// SendPasswordChanged はパスワード変更完了の通知メールを送信します。
func (n *ResendNotifier) SendPasswordChanged(ctx context.Context, email string) error {
	text := fmt.Sprintf(`Your %[1]s account password was successfully changed.

If you didn't make this change, please contact support immediately.

Best regards,
The %[1]s Team
`, n.cfg.AppName)

	return n.send(ctx, sendRequest{
		From:    n.cfg.From,
		To:      []string{email},
		Subject: fmt.Sprintf("Your %s Password Has Been Changed", n.cfg.AppName),
		Text:    text,
	})
}
