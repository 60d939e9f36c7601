// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stockmarket_backend/internal/api"
	"stockmarket_backend/internal/feature/auth/domain/entity"
	"stockmarket_backend/internal/feature/auth/transport/http/dto"
	"stockmarket_backend/internal/feature/auth/usecase"
	jwtmw "stockmarket_backend/internal/platform/jwt"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は指定されたメールアドレス・ユーザー名・パスワードで新規ユーザーを登録します。
	Register(ctx context.Context, email, username, password string) error
	// Login はユーザーを認証し、成功時にJWTトークンとユーザーを返します。
	Login(ctx context.Context, email, password string) (string, *entity.User, error)
	// Profile は認証済みユーザー自身の情報を取得します。
	Profile(ctx context.Context, id uint) (*entity.User, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをRegisterReqにバインド
// - バリデーションエラー時はフィールドごとのメッセージをセミコロンで連結して400を返却
// - メール/ユーザー名重複時はそれぞれ個別のメッセージで400を返却
// - 成功時は201を返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.MessageResponse{Message: validationMessage(err)})
		return
	}
	if err := h.auth.Register(c.Request.Context(), req.Email, req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			c.JSON(http.StatusBadRequest, api.MessageResponse{Message: "user with this email is already registered"})
		case errors.Is(err, usecase.ErrUsernameAlreadyExists):
			c.JSON(http.StatusBadRequest, api.MessageResponse{Message: "user with this username is already registered"})
		default:
			slog.Error("register failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "internal server error"})
		}
		return
	}
	slog.Info("user registered", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.MessageResponse{Message: "user registered"})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginReqにバインド
// - バリデーションエラー時は400を返却
// - 認証失敗時は汎用メッセージで400を返却（メール未登録とパスワード不一致を区別しない）
// - 認証成功時はJWTトークンとユーザー情報付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.MessageResponse{Message: validationMessage(err)})
		return
	}
	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			// ユーザー列挙攻撃を防止するため、失敗理由を公開しない
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.MessageResponse{Message: "invalid email or password"})
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "internal server error"})
		return
	}
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.LoginRes{
		Token: token,
		User: dto.UserInfo{
			ID:       user.ID,
			Username: user.Username,
			IsAdmin:  user.IsAdmin,
		},
	})
}

// Me は認証済みユーザー自身のプロフィールを返すAPIエンドポイントを処理します。
// jwtmw.AuthRequired()ミドルウェアの後段で動作し、コンテキストからユーザーIDを取得します。
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := c.Get(jwtmw.ContextUserID)
	id, isUint := userID.(uint)
	if !ok || !isUint {
		c.JSON(http.StatusUnauthorized, api.MessageResponse{Message: "missing bearer token"})
		return
	}
	user, err := h.auth.Profile(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.MessageResponse{Message: "user not found"})
			return
		}
		slog.Error("profile lookup failed", "error", err, "user_id", id)
		c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.ProfileRes{
		User: dto.ProfileUser{
			ID:       user.ID,
			Email:    user.Email,
			Username: user.Username,
			IsAdmin:  user.IsAdmin,
		},
	})
}
