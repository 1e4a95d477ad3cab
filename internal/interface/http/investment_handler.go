package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/limitedhq/limited-api/internal/application"
	"github.com/limitedhq/limited-api/internal/domain/entity"
	"github.com/limitedhq/limited-api/internal/interface/middleware"
	"github.com/limitedhq/limited-api/pkg/response"
	"github.com/limitedhq/limited-api/pkg/validation"
)

// InvestmentService is the investment usecase consumed by the handler.
type InvestmentService interface {
	Create(ctx context.Context, userID, fundID string, amount int64) (*entity.Investment, error)
	ListForUser(ctx context.Context, userID string) ([]entity.InvestmentWithFund, error)
}

type InvestmentHandler struct {
	Svc    InvestmentService
	Logger *logrus.Logger
}

func NewInvestmentHandler(svc InvestmentService, logger *logrus.Logger) *InvestmentHandler {
	return &InvestmentHandler{Svc: svc, Logger: logger}
}

type createInvestmentRequest struct {
	FundID string `json:"fund_id" binding:"required"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

// Create POST /api/investments
func (h *InvestmentHandler) Create(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if u == nil {
		response.AbortUnauthorized(c, "could not validate credentials")
		return
	}
	var req createInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationDetail(c, validation.ToDetails(err))
		return
	}
	inv, err := h.Svc.Create(c.Request.Context(), u.ID, req.FundID, req.Amount)
	if err != nil {
		var minErr *application.MinimumInvestmentError
		switch {
		case errors.Is(err, application.ErrFundNotFound):
			response.Detail(c, http.StatusNotFound, err.Error())
		case errors.As(err, &minErr):
			response.Detail(c, http.StatusBadRequest, minErr.Error())
		default:
			h.Logger.WithError(err).Error("create investment failed")
			response.Detail(c, http.StatusInternalServerError, "create investment failed")
		}
		return
	}
	c.JSON(http.StatusOK, inv)
}

// List GET /api/investments — the caller's investments joined with fund
// summaries.
func (h *InvestmentHandler) List(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if u == nil {
		response.AbortUnauthorized(c, "could not validate credentials")
		return
	}
	rows, err := h.Svc.ListForUser(c.Request.Context(), u.ID)
	if err != nil {
		h.Logger.WithError(err).Error("list investments failed")
		response.Detail(c, http.StatusInternalServerError, "list investments failed")
		return
	}
	c.JSON(http.StatusOK, rows)
}
