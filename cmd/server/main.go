package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"github.com/Fibidy-Developer/fibidy-blog-app/internal/app/di"
	"github.com/Fibidy-Developer/fibidy-blog-app/internal/app/router"
	authadapters "github.com/Fibidy-Developer/fibidy-blog-app/internal/feature/auth/adapters"
	authhandler "github.com/Fibidy-Developer/fibidy-blog-app/internal/feature/auth/transport/handler"
	authusecase "github.com/Fibidy-Developer/fibidy-blog-app/internal/feature/auth/usecase"
	"github.com/Fibidy-Developer/fibidy-blog-app/internal/platform/config"
	infradb "github.com/Fibidy-Developer/fibidy-blog-app/internal/platform/db"
	platformhttp "github.com/Fibidy-Developer/fibidy-blog-app/internal/platform/http"
	jwtmw "github.com/Fibidy-Developer/fibidy-blog-app/internal/platform/jwt"
	"github.com/Fibidy-Developer/fibidy-blog-app/internal/platform/mail"
	infraredis "github.com/Fibidy-Developer/fibidy-blog-app/internal/platform/redis"
)

func main() {
	// 設定は起動時に一度だけ読み込み、以後は不変
	cfg := config.Load()
	mailCfg := mail.LoadConfig()

	// JWT_SECRETチェック（開発中の注意喚起）
	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	db := infradb.OpenDB()

	// Redis（レートリミッタ用。なければリミットなしで起動）
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without rate limiting.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserPostgres(db)

	// 通知チャネル（Resend APIキーがなければログのみ）
	notifier := di.NewNotifier(mailCfg, platformhttp.NewHTTPClient(mailCfg.Timeout))

	// Usecase
	generator := jwtmw.NewGenerator(cfg.JWTSecret, cfg.JWTExpiration)
	authUC := authusecase.NewAuthUsecase(userRepo, generator)
	resetUC := authusecase.NewResetUsecase(userRepo, notifier)

	// Handler
	authH := authhandler.NewAuthHandler(authUC, resetUC)

	// ルータ生成
	r := router.NewRouter(cfg, authH, authUC, di.NewAuthRateLimiter(rdb))

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
