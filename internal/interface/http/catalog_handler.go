package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/limitedhq/limited-api/internal/application"
	"github.com/limitedhq/limited-api/internal/domain/entity"
	"github.com/limitedhq/limited-api/pkg/response"
	"github.com/limitedhq/limited-api/pkg/validation"
)

// CatalogService is the fund/company/deal usecase consumed by the handler.
type CatalogService interface {
	CreateFund(ctx context.Context, in application.CreateFundInput) (*entity.Fund, error)
	GetFund(ctx context.Context, id string) (*entity.Fund, error)
	ListFunds(ctx context.Context) ([]entity.Fund, error)
	CreateCompany(ctx context.Context, in application.CreateCompanyInput) (*entity.Company, error)
	GetCompany(ctx context.Context, id string) (*entity.Company, error)
	ListCompanies(ctx context.Context) ([]entity.Company, error)
	CreateDeal(ctx context.Context, in application.CreateDealInput) (*entity.Deal, error)
	GetDeal(ctx context.Context, id string) (*entity.Deal, error)
	ListDeals(ctx context.Context) ([]entity.Deal, error)
}

type CatalogHandler struct {
	Svc    CatalogService
	Logger *logrus.Logger
}

func NewCatalogHandler(svc CatalogService, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{Svc: svc, Logger: logger}
}

type createFundRequest struct {
	Name            string          `json:"name" binding:"required"`
	Symbol          string          `json:"symbol" binding:"required"`
	Description     string          `json:"description"`
	MinInvestment   int64           `json:"min_investment" binding:"required,gt=0"`
	Carry           string          `json:"carry" binding:"required"`
	ManagementFee   string          `json:"management_fee" binding:"required"`
	FundType        entity.FundType `json:"fund_type" binding:"required,fund_type"`
	GPName          string          `json:"gp_name" binding:"required"`
	TargetCloseDate *time.Time      `json:"target_close_date"`
	Performance     string          `json:"performance"`
}

// CreateFund POST /api/funds
func (h *CatalogHandler) CreateFund(c *gin.Context) {
	var req createFundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationDetail(c, validation.ToDetails(err))
		return
	}
	f, err := h.Svc.CreateFund(c.Request.Context(), application.CreateFundInput{
		Name:            req.Name,
		Symbol:          req.Symbol,
		Description:     req.Description,
		MinInvestment:   req.MinInvestment,
		Carry:           req.Carry,
		ManagementFee:   req.ManagementFee,
		FundType:        req.FundType,
		GPName:          req.GPName,
		TargetCloseDate: req.TargetCloseDate,
		Performance:     req.Performance,
	})
	if err != nil {
		h.Logger.WithError(err).Error("create fund failed")
		response.Detail(c, http.StatusInternalServerError, "create fund failed")
		return
	}
	c.JSON(http.StatusOK, f)
}

// GetFund GET /api/funds/:id
func (h *CatalogHandler) GetFund(c *gin.Context) {
	f, err := h.Svc.GetFund(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrFundNotFound) {
			response.Detail(c, http.StatusNotFound, err.Error())
			return
		}
		h.Logger.WithError(err).Error("get fund failed")
		response.Detail(c, http.StatusInternalServerError, "get fund failed")
		return
	}
	c.JSON(http.StatusOK, f)
}

// ListFunds GET /api/funds
func (h *CatalogHandler) ListFunds(c *gin.Context) {
	funds, err := h.Svc.ListFunds(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list funds failed")
		response.Detail(c, http.StatusInternalServerError, "list funds failed")
		return
	}
	c.JSON(http.StatusOK, funds)
}

type createCompanyRequest struct {
	Name         string        `json:"name" binding:"required"`
	Symbol       string        `json:"symbol" binding:"required"`
	LeadInvestor string        `json:"lead_investor" binding:"required"`
	CoInvestors  []string      `json:"co_investors"`
	Sector       entity.Sector `json:"sector" binding:"required,sector"`
	Valuation    string        `json:"valuation" binding:"required"`
	Round        entity.Round  `json:"round" binding:"required,round"`
	Traction     string        `json:"traction" binding:"required"`
}

// CreateCompany POST /api/companies
func (h *CatalogHandler) CreateCompany(c *gin.Context) {
	var req createCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationDetail(c, validation.ToDetails(err))
		return
	}
	co, err := h.Svc.CreateCompany(c.Request.Context(), application.CreateCompanyInput{
		Name:         req.Name,
		Symbol:       req.Symbol,
		LeadInvestor: req.LeadInvestor,
		CoInvestors:  req.CoInvestors,
		Sector:       req.Sector,
		Valuation:    req.Valuation,
		Round:        req.Round,
		Traction:     req.Traction,
	})
	if err != nil {
		h.Logger.WithError(err).Error("create company failed")
		response.Detail(c, http.StatusInternalServerError, "create company failed")
		return
	}
	c.JSON(http.StatusOK, co)
}

// GetCompany GET /api/companies/:id
func (h *CatalogHandler) GetCompany(c *gin.Context) {
	co, err := h.Svc.GetCompany(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrCompanyNotFound) {
			response.Detail(c, http.StatusNotFound, err.Error())
			return
		}
		h.Logger.WithError(err).Error("get company failed")
		response.Detail(c, http.StatusInternalServerError, "get company failed")
		return
	}
	c.JSON(http.StatusOK, co)
}

// ListCompanies GET /api/companies
func (h *CatalogHandler) ListCompanies(c *gin.Context) {
	companies, err := h.Svc.ListCompanies(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list companies failed")
		response.Detail(c, http.StatusInternalServerError, "list companies failed")
		return
	}
	c.JSON(http.StatusOK, companies)
}

type createDealRequest struct {
	CompanyID   string        `json:"company_id" binding:"required"`
	CompanyName string        `json:"company_name" binding:"required"`
	Symbol      string        `json:"symbol" binding:"required"`
	Sector      entity.Sector `json:"sector" binding:"required,sector"`
	Round       entity.Round  `json:"round" binding:"required,round"`
	Valuation   string        `json:"valuation" binding:"required"`
	Syndicate   string        `json:"syndicate" binding:"required"`
	CoInvestors []string      `json:"co_investors"`
	InvitedDate time.Time     `json:"invited_date" binding:"required"`
	Deadline    time.Time     `json:"deadline" binding:"required"`
}

// CreateDeal POST /api/deals
func (h *CatalogHandler) CreateDeal(c *gin.Context) {
	var req createDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationDetail(c, validation.ToDetails(err))
		return
	}
	d, err := h.Svc.CreateDeal(c.Request.Context(), application.CreateDealInput{
		CompanyID:   req.CompanyID,
		CompanyName: req.CompanyName,
		Symbol:      req.Symbol,
		Sector:      req.Sector,
		Round:       req.Round,
		Valuation:   req.Valuation,
		Syndicate:   req.Syndicate,
		CoInvestors: req.CoInvestors,
		InvitedDate: req.InvitedDate,
		Deadline:    req.Deadline,
	})
	if err != nil {
		h.Logger.WithError(err).Error("create deal failed")
		response.Detail(c, http.StatusInternalServerError, "create deal failed")
		return
	}
	c.JSON(http.StatusOK, d)
}

// GetDeal GET /api/deals/:id
func (h *CatalogHandler) GetDeal(c *gin.Context) {
	d, err := h.Svc.GetDeal(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrDealNotFound) {
			response.Detail(c, http.StatusNotFound, err.Error())
			return
		}
		h.Logger.WithError(err).Error("get deal failed")
		response.Detail(c, http.StatusInternalServerError, "get deal failed")
		return
	}
	c.JSON(http.StatusOK, d)
}

// ListDeals GET /api/deals
func (h *CatalogHandler) ListDeals(c *gin.Context) {
	deals, err := h.Svc.ListDeals(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list deals failed")
		response.Detail(c, http.StatusInternalServerError, "list deals failed")
		return
	}
	c.JSON(http.StatusOK, deals)
}
