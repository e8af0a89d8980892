package usecase

import (
	"context"
	"time"

	"github.com/Fibidy-Developer/fibidy-blog-app/internal/feature/auth/domain/entity"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、domain.ErrUserAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、domain.ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、domain.ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// SetResetToken はユーザーのリセットトークンと有効期限を上書きします。
	// 既存のトークンは暗黙的に無効化されます（1ユーザーにつき有効なトークンは常に1つ）。
	SetResetToken(ctx context.Context, userID uint, token string, expiry time.Time) error

	// FindByValidResetToken は提示されたトークンと完全一致し、かつ有効期限が
	// nowより厳密に未来であるユーザーを取得します。
	// 該当するユーザーが存在しない場合、domain.ErrUserNotFoundを返します。
	FindByValidResetToken(ctx context.Context, token string, now time.Time) (*entity.User, error)

	// ConsumeResetToken は単一のアトミックな更新で、パスワードハッシュの差し替えと
	// トークン・有効期限のクリアを行います。一致する行がない場合（未知・消費済み・
	// 期限切れ）、domain.ErrUserNotFoundを返します。
	ConsumeResetToken(ctx context.Context, token string, now time.Time, passwordHash string) error
}
