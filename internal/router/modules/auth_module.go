package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/hirestack/jobboard-api/internal/interface/http"
	"github.com/hirestack/jobboard-api/internal/interface/middleware"
	"github.com/hirestack/jobboard-api/pkg/helpers"
)

// AuthModule wires the signup/login/profile/reset routes.
// Public: POST /api/auth/signup, /api/auth/login, /api/auth/reset/{init,confirm}
// Protected: GET+PATCH /api/auth/profile, POST /api/auth/profile/avatar
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/signup", m.Handler.Signup)
	rg.POST("/auth/login", m.Handler.Login)
	rg.POST("/auth/reset/init", m.Handler.ResetInit)
	rg.POST("/auth/reset/confirm", m.Handler.ResetConfirm)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("/auth/profile", m.Handler.GetProfile)
		auth.PATCH("/auth/profile", m.Handler.UpdateProfile)
		auth.POST("/auth/profile/avatar", m.Handler.UploadAvatar)
	}
}
