package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"stockmarket_backend/internal/app/router"
	authadapters "stockmarket_backend/internal/feature/auth/adapters"
	authhandler "stockmarket_backend/internal/feature/auth/transport/handler"
	authusecase "stockmarket_backend/internal/feature/auth/usecase"
	stocksadapters "stockmarket_backend/internal/feature/stocks/adapters"
	stockshandler "stockmarket_backend/internal/feature/stocks/transport/handler"
	stocksusecase "stockmarket_backend/internal/feature/stocks/usecase"
	"stockmarket_backend/internal/platform/cache"
	"stockmarket_backend/internal/platform/db"
	jwtmw "stockmarket_backend/internal/platform/jwt"
	infraredis "stockmarket_backend/internal/platform/redis"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// db
	database := db.OpenDB()
	defer db.CloseDB(database)

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// JWT_SECRETチェック（開発中の注意喚起）
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	tokenGen := jwtmw.NewGenerator(secret, jwtmw.TokenTTL)

	// Repository
	userRepo := authadapters.NewUserRepository(database)
	sectorRepo := stocksadapters.NewSectorRepository(database)
	stockRepo := stocksadapters.NewStockRepository(database)

	// 株式一覧をRedisキャッシュでラップ
	cachedStockRepo := cache.NewCachingStockRepository(rdb, 0, stockRepo, "stocks")

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokenGen)
	stockUC := stocksusecase.NewStockUsecase(cachedStockRepo, sectorRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	stockH := stockshandler.NewStockHandler(stockUC)

	// フロントエンドは単一オリジン
	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = "http://localhost:3000"
	}

	// ルータ生成
	r := router.NewRouter(origin, authH, stockH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
