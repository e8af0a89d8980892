package router

import (
	"github.com/gin-gonic/gin"

	authhandler "github.com/Fibidy-Developer/fibidy-blog-app/internal/feature/auth/transport/handler"
	"github.com/Fibidy-Developer/fibidy-blog-app/internal/platform/config"
	"github.com/Fibidy-Developer/fibidy-blog-app/internal/platform/http/handler"
	jwtmw "github.com/Fibidy-Developer/fibidy-blog-app/internal/platform/jwt"
	"github.com/Fibidy-Developer/fibidy-blog-app/internal/platform/ratelimit"
)

func NewRouter(cfg config.Config, authHandler *authhandler.AuthHandler,
	users jwtmw.UserResolver, limiter *ratelimit.Limiter) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)

	// 認証・リセットフロー（レートリミット適用）
	auth := r.Group("/auth")
	auth.Use(ratelimit.Middleware(limiter))
	{
		// 新規ユーザー登録
		auth.POST("/signup", authHandler.Signup)
		// サインイン（JWT 発行）
		auth.POST("/signin", authHandler.SignIn)
		// リセットトークン発行＋メール送信
		auth.POST("/forgot-password", authHandler.ForgotPassword)
		// トークンの事前検証（リセットフォーム表示用）
		auth.GET("/validate-reset-token", authHandler.ValidateResetToken)
		// トークン消費＋パスワード差し替え
		auth.POST("/reset-password", authHandler.ResetPassword)
	}

	// 認証必須のルート
	// jwtmw.AuthRequired() がセッション検証とsubject解決を行う
	protected := r.Group("/auth")
	protected.Use(jwtmw.AuthRequired(cfg.JWTSecret, users))
	{
		protected.GET("/verify-token", authHandler.VerifyToken)
	}

	return r
}
