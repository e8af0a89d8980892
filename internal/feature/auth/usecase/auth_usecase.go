// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Fibidy-Developer/fibidy-blog-app/internal/feature/auth/domain"
	"github.com/Fibidy-Developer/fibidy-blog-app/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 6
)

// JWTGenerator はJWTトークン生成のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type JWTGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みJWTトークンを生成します。
	GenerateToken(userID uint, email string) (string, error)
}

// SignInResult はサインイン成功時にクライアントへ返すデータです。
// パスワードハッシュは含めません。
type SignInResult struct {
	ID          uint
	Name        string
	Avatar      string
	AccessToken string
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users        UserRepository
	jwtGenerator JWTGenerator
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		users:        users,
		jwtGenerator: jwtGenerator,
	}
}

// validatePassword はパスワードがセキュリティ要件を満たしているかチェックします。
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters long", ErrValidation, minPasswordLength)
	}
	return nil
}

// Signup はハッシュ化されたパスワードで新規ユーザーを登録します。
func (u *authUsecase) Signup(ctx context.Context, email, name, password string) error {
	// パスワード強度を検証
	if err := validatePassword(password); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	hash := string(hashed)
	user := &entity.User{Email: email, Name: name, Password: &hash}
	if err := u.users.Create(ctx, user); err != nil {
		// ストアのエラーを呼び出し元向けのエラー種別へ変換する
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return ErrEmailAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// dummyPasswordHash はユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュです。
// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証します。
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// SignIn はユーザーを認証し、成功時にJWTトークン付きのプロフィールを返します。
// ユーザー未検出・外部プロバイダー経由の識別子（ローカルパスワードなし）・
// パスワード不一致のいずれの場合も、同一の汎用エラーを返します。
func (u *authUsecase) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	// メールアドレスでユーザーを検索
	user, err := u.users.FindByEmail(ctx, email)

	// タイミング攻撃防止のため、どの失敗分岐でもbcrypt比較を実行する
	passwordHash := dummyPasswordHash
	if err == nil && user.HasLocalPassword() {
		passwordHash = *user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || user == nil || !user.HasLocalPassword() || compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	// 注入されたジェネレーターを使用してJWTトークンを生成
	token, tokenErr := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if tokenErr != nil {
		return nil, fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return &SignInResult{
		ID:          user.ID,
		Name:        user.Name,
		Avatar:      user.Avatar,
		AccessToken: token,
	}, nil
}

// ResolveUser は検証済みセッションのsubjectをユーザーストアと照合し、
// 最小限のidentityプロジェクションを返します。
// subjectに対応するユーザーが存在しない場合、ErrUserNotFoundを返します。
func (u *authUsecase) ResolveUser(ctx context.Context, id uint) (*entity.Identity, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve user %d: %w", id, err)
	}
	return entity.IdentityOf(user), nil
}
