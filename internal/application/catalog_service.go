package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/limitedhq/limited-api/internal/domain/entity"
	"github.com/limitedhq/limited-api/internal/domain/repository"
)

// listLimit caps every plain list endpoint.
const listLimit = 1000

// CatalogService owns the fund, company and deal collections. Role checks
// happen in middleware; the service assumes an authorized caller.
type CatalogService struct {
	Funds     repository.FundRepository
	Companies repository.CompanyRepository
	Deals     repository.DealRepository
	Logger    *logrus.Logger
}

func NewCatalogService(funds repository.FundRepository, companies repository.CompanyRepository, deals repository.DealRepository, logger *logrus.Logger) *CatalogService {
	return &CatalogService{Funds: funds, Companies: companies, Deals: deals, Logger: logger}
}

type CreateFundInput struct {
	Name            string
	Symbol          string
	Description     string
	MinInvestment   int64
	Carry           string
	ManagementFee   string
	FundType        entity.FundType
	GPName          string
	TargetCloseDate *time.Time
	Performance     string
}

func (s *CatalogService) CreateFund(ctx context.Context, in CreateFundInput) (*entity.Fund, error) {
	now := time.Now().UTC()
	f := &entity.Fund{
		ID:              uuid.NewString(),
		Name:            in.Name,
		Symbol:          in.Symbol,
		Description:     in.Description,
		MinInvestment:   in.MinInvestment,
		Carry:           in.Carry,
		ManagementFee:   in.ManagementFee,
		Status:          "Active",
		FundType:        in.FundType,
		GPName:          in.GPName,
		TargetCloseDate: in.TargetCloseDate,
		Performance:     in.Performance,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.Funds.Insert(ctx, f); err != nil {
		return nil, err
	}
	s.Logger.WithField("fund_id", f.ID).Info("fund created")
	return f, nil
}

func (s *CatalogService) GetFund(ctx context.Context, id string) (*entity.Fund, error) {
	f, err := s.Funds.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFundNotFound
		}
		return nil, err
	}
	return f, nil
}

func (s *CatalogService) ListFunds(ctx context.Context) ([]entity.Fund, error) {
	return s.Funds.FindAll(ctx, listLimit)
}

type CreateCompanyInput struct {
	Name         string
	Symbol       string
	LeadInvestor string
	CoInvestors  []string
	Sector       entity.Sector
	Valuation    string
	Round        entity.Round
	Traction     string
}

func (s *CatalogService) CreateCompany(ctx context.Context, in CreateCompanyInput) (*entity.Company, error) {
	now := time.Now().UTC()
	c := &entity.Company{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Symbol:       in.Symbol,
		LeadInvestor: in.LeadInvestor,
		CoInvestors:  in.CoInvestors,
		Sector:       in.Sector,
		Valuation:    in.Valuation,
		Round:        in.Round,
		Traction:     in.Traction,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Companies.Insert(ctx, c); err != nil {
		return nil, err
	}
	s.Logger.WithField("company_id", c.ID).Info("company created")
	return c, nil
}

func (s *CatalogService) GetCompany(ctx context.Context, id string) (*entity.Company, error) {
	c, err := s.Companies.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *CatalogService) ListCompanies(ctx context.Context) ([]entity.Company, error) {
	return s.Companies.FindAll(ctx, listLimit)
}

type CreateDealInput struct {
	CompanyID   string
	CompanyName string
	Symbol      string
	Sector      entity.Sector
	Round       entity.Round
	Valuation   string
	Syndicate   string
	CoInvestors []string
	InvitedDate time.Time
	Deadline    time.Time
}

// CreateDeal persists a deal. CompanyID is stored as given; it is not
// validated against the companies collection.
func (s *CatalogService) CreateDeal(ctx context.Context, in CreateDealInput) (*entity.Deal, error) {
	now := time.Now().UTC()
	d := &entity.Deal{
		ID:          uuid.NewString(),
		CompanyID:   in.CompanyID,
		CompanyName: in.CompanyName,
		Symbol:      in.Symbol,
		Sector:      in.Sector,
		Round:       in.Round,
		Valuation:   in.Valuation,
		Syndicate:   in.Syndicate,
		CoInvestors: in.CoInvestors,
		InvitedDate: in.InvitedDate,
		Deadline:    in.Deadline,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Deals.Insert(ctx, d); err != nil {
		return nil, err
	}
	s.Logger.WithField("deal_id", d.ID).Info("deal created")
	return d, nil
}

func (s *CatalogService) GetDeal(ctx context.Context, id string) (*entity.Deal, error) {
	d, err := s.Deals.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDealNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *CatalogService) ListDeals(ctx context.Context) ([]entity.Deal, error) {
	return s.Deals.FindAll(ctx, listLimit)
}
