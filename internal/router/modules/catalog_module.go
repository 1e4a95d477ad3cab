package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/limitedhq/limited-api/internal/interface/http"
	"github.com/limitedhq/limited-api/internal/interface/middleware"
	"github.com/limitedhq/limited-api/pkg/helpers"
)

// CatalogModule wires fund, company and deal routes. All of them require a
// bearer token; creates additionally require the fund-manager role.
type CatalogModule struct {
	Handler *handlers.CatalogHandler
	JWT     *helpers.JWTManager
	Users   middleware.UserFinder
}

func NewCatalogModule(h *handlers.CatalogHandler, jwt *helpers.JWTManager, users middleware.UserFinder) *CatalogModule {
	return &CatalogModule{Handler: h, JWT: jwt, Users: users}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	authed := rg.Group("/")
	authed.Use(middleware.Auth(m.JWT, m.Users))
	{
		authed.POST("/funds", middleware.RequireFundManager("funds"), m.Handler.CreateFund)
		authed.GET("/funds", m.Handler.ListFunds)
		authed.GET("/funds/:id", m.Handler.GetFund)

		authed.POST("/companies", middleware.RequireFundManager("companies"), m.Handler.CreateCompany)
		authed.GET("/companies", m.Handler.ListCompanies)
		authed.GET("/companies/:id", m.Handler.GetCompany)

		authed.POST("/deals", middleware.RequireFundManager("deals"), m.Handler.CreateDeal)
		authed.GET("/deals", m.Handler.ListDeals)
		authed.GET("/deals/:id", m.Handler.GetDeal)
	}
}
