// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Fibidy-Developer/fibidy-blog-app/internal/feature/auth/transport/http/dto"
	"github.com/Fibidy-Developer/fibidy-blog-app/internal/feature/auth/usecase"
	jwtmw "github.com/Fibidy-Developer/fibidy-blog-app/internal/platform/jwt"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Signup は指定されたメールアドレス・表示名・パスワードで新規ユーザーを登録します。
	Signup(ctx context.Context, email, name, password string) error
	// SignIn はユーザーを認証し、成功時にJWTトークン付きのプロフィールを返します。
	SignIn(ctx context.Context, email, password string) (*usecase.SignInResult, error)
}

// ResetUsecase はパスワードリセットのユースケースを定義します。
type ResetUsecase interface {
	// RequestReset はリセットトークンを発行し、通知チャネルへ渡します。
	RequestReset(ctx context.Context, email string) (bool, error)
	// ValidateResetToken はトークンが現在有効かどうかを返します。
	ValidateResetToken(ctx context.Context, token string) bool
	// CommitReset はトークンを消費してパスワードを差し替えます。
	CommitReset(ctx context.Context, token, newPassword string) (bool, error)
}

// AuthHandler は認証とパスワードリセットのHTTPリクエストを処理します。
type AuthHandler struct {
	auth  AuthUsecase
	reset ResetUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewAuthHandler(auth AuthUsecase, reset ResetUsecase) *AuthHandler {
	return &AuthHandler{auth: auth, reset: reset}
}

// Signup はユーザー登録APIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - メール重複時は409を返却
// - インフラ障害時は500を返却
// - 成功時は201を返却
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	if err := h.auth.Signup(c.Request.Context(), req.Email, req.Name, req.Password); err != nil {
		switch {
		case errors.Is(err, usecase.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			// 重複の詳細は公開しない
			slog.Warn("signup rejected", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "signup failed"})
		default:
			slog.Error("signup error", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
		}
		return
	}
	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "ok"})
}

// SignIn はサインインAPIエンドポイントを処理します。
// 未登録メール・パスワード不一致のどちらでも同一の401レスポンスを返します。
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signin validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	result, err := h.auth.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("signin failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid email or password"})
			return
		}
		slog.Error("signin error", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
		return
	}
	slog.Info("user signin successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.SignInRes{
		ID:          result.ID,
		Name:        result.Name,
		Avatar:      result.Avatar,
		AccessToken: result.AccessToken,
	})
}

// ForgotPassword はリセットトークン発行APIエンドポイントを処理します。
// メールアドレスの登録有無にかかわらず成功レスポンスを返します（列挙攻撃対策）。
// 通知チャネルの送信失敗のみハードエラーとして500を返します。
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("forgot password validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	ok, err := h.reset.RequestReset(c.Request.Context(), req.Email)
	if err != nil {
		slog.Error("forgot password failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to process reset request"})
		return
	}
	slog.Info("forgot password processed", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: ok})
}

// ValidateResetToken はリセットトークン検証APIエンドポイントを処理します。
// トークンが無効な場合もエラーではなく{"valid": false}を返します。
func (h *AuthHandler) ValidateResetToken(c *gin.Context) {
	var req dto.ValidateResetTokenReq
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	valid := h.reset.ValidateResetToken(c.Request.Context(), req.Token)
	c.JSON(http.StatusOK, dto.ValidateResetTokenRes{Valid: valid})
}

// ResetPassword はパスワード再設定APIエンドポイントを処理します。
// - 入力不正（短すぎるパスワード等）は400
// - トークン無効・期限切れは400（"invalid or expired reset token"）
// - 成功時は200
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("reset password validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	ok, err := h.reset.CommitReset(c.Request.Context(), req.Token, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrTokenInvalidOrExpired):
			slog.Warn("reset password rejected", "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid or expired reset token"})
		default:
			slog.Error("reset password failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
		}
		return
	}
	slog.Info("password reset successful", "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: ok})
}

// VerifyToken は検証済みセッションのidentityプロジェクションを返します。
// セッション検証ミドルウェアの通過後にのみ到達します。
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	identity := jwtmw.IdentityFrom(c)
	if identity == nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing bearer token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    identity,
		"message": "token verified",
	})
}
