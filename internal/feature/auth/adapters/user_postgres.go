// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/Fibidy-Developer/fibidy-blog-app/internal/feature/auth/domain"
	"github.com/Fibidy-Developer/fibidy-blog-app/internal/feature/auth/domain/entity"
	"github.com/Fibidy-Developer/fibidy-blog-app/internal/feature/auth/usecase"
)

// userPostgres はUserRepositoryインターフェースのPostgreSQL実装です。
// GORMを使用してデータベース操作を行います。
type userPostgres struct {
	db *gorm.DB
}

// userPostgresがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserPostgres は指定されたgorm.DB接続でuserPostgresの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewUserPostgres(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// isUniqueViolation はユニーク制約違反エラーかどうかを判定します。
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return true
	}
	// テストで使用するSQLiteドライバ等、他ドライバ向けのフォールバック
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// Create はユーザーをデータベースに追加します。
// 同じメールアドレスのユーザーが既に存在する場合、domain.ErrUserAlreadyExistsを返します。
func (r *userPostgres) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail はメールアドレスでユーザーを取得します。
// ユーザーが存在しない場合、domain.ErrUserNotFoundを返します。
func (r *userPostgres) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID はIDでユーザーを取得します。
// ユーザーが存在しない場合、domain.ErrUserNotFoundを返します。
func (r *userPostgres) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// SetResetToken はユーザーのリセットトークンと有効期限を上書きします。
// 以前のトークンが残っていても無条件に置き換えます。
func (r *userPostgres) SetResetToken(ctx context.Context, userID uint, token string, expiry time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"reset_token":        token,
			"reset_token_expiry": expiry,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// FindByValidResetToken はトークンが完全一致し、有効期限がnowより厳密に未来で
// あるユーザーを取得します。期限切れのレコードはストレージに残っていても
// ヒットしません。
func (r *userPostgres) FindByValidResetToken(ctx context.Context, token string, now time.Time) (*entity.User, error) {
	var u entity.User
	err := r.db.WithContext(ctx).
		Where("reset_token = ? AND reset_token_expiry > ?", token, now).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// ConsumeResetToken はパスワードハッシュの差し替えとトークン・有効期限のクリアを
// 単一の条件付きUPDATEで行います。行レベルのアトミシティにより、同じトークンの
// 二重消費を防ぎます。一致する行がない場合（未知・消費済み・期限切れ）は
// domain.ErrUserNotFoundを返し、意味づけはusecase層が行います。
func (r *userPostgres) ConsumeResetToken(ctx context.Context, token string, now time.Time, passwordHash string) error {
	res := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("reset_token = ? AND reset_token_expiry > ?", token, now).
		Updates(map[string]any{
			"password":           passwordHash,
			"reset_token":        nil,
			"reset_token_expiry": nil,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
