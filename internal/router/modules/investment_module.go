package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/limitedhq/limited-api/internal/interface/http"
	"github.com/limitedhq/limited-api/internal/interface/middleware"
	"github.com/limitedhq/limited-api/pkg/helpers"
)

// InvestmentModule wires investment routes, all bearer-protected.
type InvestmentModule struct {
	Handler *handlers.InvestmentHandler
	JWT     *helpers.JWTManager
	Users   middleware.UserFinder
}

func NewInvestmentModule(h *handlers.InvestmentHandler, jwt *helpers.JWTManager, users middleware.UserFinder) *InvestmentModule {
	return &InvestmentModule{Handler: h, JWT: jwt, Users: users}
}

func (m *InvestmentModule) Register(rg *gin.RouterGroup) {
	authed := rg.Group("/investments")
	authed.Use(middleware.Auth(m.JWT, m.Users))
	{
		authed.POST("", m.Handler.Create)
		authed.GET("", m.Handler.List)
	}
}
