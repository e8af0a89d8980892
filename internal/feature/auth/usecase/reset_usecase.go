package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	// resetTokenTTL はリセットトークンの発行から失効までの固定時間です。
	resetTokenTTL = 15 * time.Minute

	// resetTokenBytes はトークンのエントロピー（バイト数）です。
	// hexエンコード後は64文字になります。
	resetTokenBytes = 32
)

// Notifier はリセットリンクや変更通知をユーザーへ帯域外で届けるチャネルを抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/mail）ではなくコンシューマー（usecase）が定義します。
type Notifier interface {
	// SendPasswordReset はリセットトークンを含むメッセージを送信します。
	SendPasswordReset(ctx context.Context, email, token string) error

	// SendPasswordChanged はパスワード変更完了の通知を送信します。
	SendPasswordChanged(ctx context.Context, email string) error
}

// resetUsecase はパスワードリセットのトークンライフサイクルを実装します。
// トークンの発行（issue）・検証（validate）・消費（commit）を担います。
type resetUsecase struct {
	users    UserRepository
	notifier Notifier
	now      func() time.Time
}

// NewResetUsecase はresetUsecaseの新しいインスタンスを生成します。
func NewResetUsecase(users UserRepository, notifier Notifier) *resetUsecase {
	return &resetUsecase{
		users:    users,
		notifier: notifier,
		now:      time.Now,
	}
}

// generateResetToken は暗号論的に安全な乱数からリセットトークンを生成します。
func generateResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// RequestReset はパスワードリセットのトークンを発行し、通知チャネル経由で送信します。
// メールアドレスが未登録の場合も副作用なしでtrueを返します。
// 登録有無を呼び出し元に知らせないための意図的な仕様です（列挙攻撃対策）。
// 通知チャネルの送信失敗はハードエラーとして伝播します。呼び出し元が
// 再試行を判断できるようにするためです。
func (u *resetUsecase) RequestReset(ctx context.Context, email string) (bool, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return true, nil
		}
		return false, fmt.Errorf("failed to look up user: %w", err)
	}

	token, err := generateResetToken()
	if err != nil {
		return false, err
	}
	expiry := u.now().Add(resetTokenTTL)

	// 既存トークンの上書き＝旧トークンの即時無効化
	if err := u.users.SetResetToken(ctx, user.ID, token, expiry); err != nil {
		return false, fmt.Errorf("failed to store reset token: %w", err)
	}

	if err := u.notifier.SendPasswordReset(ctx, user.Email, token); err != nil {
		return false, fmt.Errorf("failed to send reset notification: %w", err)
	}

	return true, nil
}

// ValidateResetToken は提示されたトークンが現在有効かどうかを返します。
// 存在しない・期限切れ・空のトークンはすべてfalseです。
// 内部の検索エラーもfalseとして扱います（fail-closed）。
func (u *resetUsecase) ValidateResetToken(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}

	if _, err := u.users.FindByValidResetToken(ctx, token, u.now()); err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			slog.Warn("reset token lookup failed", "error", err)
		}
		return false
	}
	return true
}

// CommitReset は有効なトークンと新しいパスワードを受け取り、パスワードハッシュの
// 差し替えとトークンのクリアを単一のアトミックな更新で行います。
// 成功したコミットはトークンを消費します（single-use）。同じトークンの再提示は
// 以後ErrTokenInvalidOrExpiredで失敗します。
func (u *resetUsecase) CommitReset(ctx context.Context, token, newPassword string) (bool, error) {
	if token == "" {
		return false, fmt.Errorf("%w: reset token is required", ErrValidation)
	}
	if err := validatePassword(newPassword); err != nil {
		return false, err
	}

	now := u.now()
	user, err := u.users.FindByValidResetToken(ctx, token, now)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return false, ErrTokenInvalidOrExpired
		}
		return false, fmt.Errorf("failed to look up reset token: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	// 条件付きUPDATE。先のFindとの間で別リクエストがトークンを消費した場合、
	// ストアは行なしを報告し、ここでErrTokenInvalidOrExpiredになる
	if err := u.users.ConsumeResetToken(ctx, token, now, string(hashed)); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return false, ErrTokenInvalidOrExpired
		}
		return false, fmt.Errorf("failed to consume reset token: %w", err)
	}

	// 変更完了通知はベストエフォート。失敗してもパスワード変更はロールバックしない
	if err := u.notifier.SendPasswordChanged(ctx, user.Email); err != nil {
		slog.Warn("password changed notification failed", "email", user.Email, "error", err)
	}

	return true, nil
}
