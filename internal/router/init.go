package router

import (
	"github.com/limitedhq/limited-api/internal/application"
	"github.com/limitedhq/limited-api/internal/container"
	"github.com/limitedhq/limited-api/internal/infrastructure/mongodb"
	handlers "github.com/limitedhq/limited-api/internal/interface/http"
	"github.com/limitedhq/limited-api/internal/router/modules"
)

// InitModules builds all feature modules from the container singletons and
// registers them with the router registry. Called once during startup.
func InitModules(r *Registry) {
	db := container.GetDB()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	funds := mongodb.NewFundRepository(db)
	companies := mongodb.NewCompanyRepository(db)
	deals := mongodb.NewDealRepository(db)
	users := mongodb.NewUserRepository(db)
	investments := mongodb.NewInvestmentRepository(db)

	authSvc := application.NewAuthService(users, jwt, logger)
	catalogSvc := application.NewCatalogService(funds, companies, deals, logger)
	investSvc := application.NewInvestmentService(investments, funds, logger)
	featuredSvc := application.NewFeaturedService(funds, companies, deals, investments)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), jwt, users))
	r.Add(modules.NewCatalogModule(handlers.NewCatalogHandler(catalogSvc, logger), jwt, users))
	r.Add(modules.NewInvestmentModule(handlers.NewInvestmentHandler(investSvc, logger), jwt, users))
	r.Add(modules.NewFeaturedModule(handlers.NewFeaturedHandler(featuredSvc, logger), jwt, users))
}
