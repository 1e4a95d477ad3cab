package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/limitedhq/limited-api/internal/interface/http"
	"github.com/limitedhq/limited-api/internal/interface/middleware"
	"github.com/limitedhq/limited-api/pkg/helpers"
)

// FeaturedModule wires the public homepage aggregate, its authenticated
// variant, and the liveness root.
type FeaturedModule struct {
	Handler *handlers.FeaturedHandler
	JWT     *helpers.JWTManager
	Users   middleware.UserFinder
}

func NewFeaturedModule(h *handlers.FeaturedHandler, jwt *helpers.JWTManager, users middleware.UserFinder) *FeaturedModule {
	return &FeaturedModule{Handler: h, JWT: jwt, Users: users}
}

func (m *FeaturedModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", m.Handler.Root)
	rg.GET("/featured", m.Handler.Featured)
	rg.GET("/featured/protected", middleware.Auth(m.JWT, m.Users), m.Handler.FeaturedProtected)
}
