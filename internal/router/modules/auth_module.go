package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/limitedhq/limited-api/internal/interface/http"
	"github.com/limitedhq/limited-api/internal/interface/middleware"
	"github.com/limitedhq/limited-api/pkg/helpers"
)

// AuthModule wires account routes.
// Public: POST /api/auth/register, POST /api/auth/token
// Protected: GET /api/auth/me, PUT /api/auth/me
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
	Users   middleware.UserFinder
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager, users middleware.UserFinder) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt, Users: users}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/register", m.Handler.Register)
	auth.POST("/token", m.Handler.Token)

	me := auth.Group("/")
	me.Use(middleware.Auth(m.JWT, m.Users))
	{
		me.GET("/me", m.Handler.Me)
		me.PUT("/me", m.Handler.UpdateMe)
	}
}
