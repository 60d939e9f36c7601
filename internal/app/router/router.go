// Package router wires HTTP routes to their handlers.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "stockmarket_backend/internal/feature/auth/transport/handler"
	stockhandler "stockmarket_backend/internal/feature/stocks/transport/handler"
	"stockmarket_backend/internal/platform/http/handler"
	jwtmw "stockmarket_backend/internal/platform/jwt"
)

// NewRouter registers all API routes on a gin engine.
// allowOrigin is the single front-end origin permitted by CORS.
func NewRouter(allowOrigin string, authH *authhandler.AuthHandler, stockH *stockhandler.StockHandler) *gin.Engine {
	r := gin.Default()

	// CORS追加（ルート登録より前に適用する必要がある）
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{allowOrigin},
		AllowMethods: []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "X-Requested-With", "Content-Type", "Accept",
			"Authorization", "authorization-token", "authorization-userid",
		},
	}))

	// 導通確認用
	r.GET("/healthz", handler.Health)

	api := r.Group("/api")

	// 認証不要
	auth := api.Group("/auth")
	// 新規ユーザー登録
	auth.POST("/register", authH.Register)
	// ログイン（JWT 発行）
	auth.POST("/login", authH.Login)

	// 認証必須のルート
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	me := auth.Group("/")
	me.Use(jwtmw.AuthRequired())
	{
		me.GET("/me", authH.Me)
	}

	stocks := api.Group("/stocks")
	{
		stocks.GET("/sectors", stockH.ListSectors)
		stocks.GET("/stocks", stockH.ListStocks)
		stocks.GET("/stocks/:id", stockH.GetStock)
		stocks.POST("/savestock", stockH.SaveStock)
	}

	return r
}
