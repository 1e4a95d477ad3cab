package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/limitedhq/limited-api/internal/application"
	"github.com/limitedhq/limited-api/internal/interface/middleware"
	"github.com/limitedhq/limited-api/pkg/response"
)

// FeaturedService is the homepage aggregate usecase consumed by the handler.
type FeaturedService interface {
	Featured(ctx context.Context) (*application.FeaturedView, error)
	FeaturedFor(ctx context.Context, userID string) (*application.FeaturedView, error)
}

type FeaturedHandler struct {
	Svc    FeaturedService
	Logger *logrus.Logger
}

func NewFeaturedHandler(svc FeaturedService, logger *logrus.Logger) *FeaturedHandler {
	return &FeaturedHandler{Svc: svc, Logger: logger}
}

// Featured GET /api/featured — public homepage bundle.
func (h *FeaturedHandler) Featured(c *gin.Context) {
	view, err := h.Svc.Featured(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("featured aggregate failed")
		response.Detail(c, http.StatusInternalServerError, "featured aggregate failed")
		return
	}
	c.JSON(http.StatusOK, view)
}

// FeaturedProtected GET /api/featured/protected — the public bundle plus the
// caller's own investments.
func (h *FeaturedHandler) FeaturedProtected(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if u == nil {
		response.AbortUnauthorized(c, "could not validate credentials")
		return
	}
	view, err := h.Svc.FeaturedFor(c.Request.Context(), u.ID)
	if err != nil {
		h.Logger.WithError(err).Error("featured aggregate failed")
		response.Detail(c, http.StatusInternalServerError, "featured aggregate failed")
		return
	}
	c.JSON(http.StatusOK, view)
}

// Root GET /api/ — liveness message.
func (h *FeaturedHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Limited API"})
}
