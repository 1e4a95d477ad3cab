package application

import (
	"context"
	"time"

	"github.com/limitedhq/limited-api/internal/domain/entity"
	"github.com/limitedhq/limited-api/internal/domain/repository"
)

// Homepage aggregate caps. Fixed projections, not configurable.
const (
	featuredFundLimit = 3
	featuredListLimit = 50
)

// FeaturedFund is the public summary shape of a fund.
type FeaturedFund struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Symbol          string          `json:"symbol"`
	MinInvestment   int64           `json:"min_investment"`
	Carry           string          `json:"carry"`
	Description     string          `json:"description,omitempty"`
	TargetCloseDate *time.Time      `json:"target_close_date,omitempty"`
	Performance     string          `json:"performance,omitempty"`
	FundType        entity.FundType `json:"fund_type"`
}

// ListedFund is the operator-facing fund shape on the homepage.
type ListedFund struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Symbol        string          `json:"symbol"`
	MinInvestment int64           `json:"min_investment"`
	Carry         string          `json:"carry"`
	GPName        string          `json:"gp_name"`
	ManagementFee string          `json:"management_fee"`
	Status        string          `json:"status"`
	FundType      entity.FundType `json:"fund_type"`
}

type ListedCompany struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Symbol       string        `json:"symbol"`
	LeadInvestor string        `json:"lead_investor"`
	CoInvestors  []string      `json:"co_investors"`
	Sector       entity.Sector `json:"sector"`
	Valuation    string        `json:"valuation"`
	Round        entity.Round  `json:"round"`
	Traction     string        `json:"traction"`
}

type ListedDeal struct {
	ID          string        `json:"id"`
	CompanyName string        `json:"company_name"`
	Symbol      string        `json:"symbol"`
	Sector      entity.Sector `json:"sector"`
	Round       entity.Round  `json:"round"`
	Valuation   string        `json:"valuation"`
	Syndicate   string        `json:"syndicate"`
	CoInvestors []string      `json:"co_investors"`
	InvitedDate time.Time     `json:"invited_date"`
	Deadline    time.Time     `json:"deadline"`
}

// InvestmentSummary is the slimmed row appended for authenticated callers.
type InvestmentSummary struct {
	ID        string    `json:"id"`
	FundID    string    `json:"fund_id"`
	Amount    int64     `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// FeaturedView is the denormalized homepage bundle. MyInvestments is a
// pointer so the key is present (possibly as an empty list) on the
// authenticated variant and absent on the public one.
type FeaturedView struct {
	FeaturedFunds []FeaturedFund       `json:"featured_funds"`
	AllFunds      []ListedFund         `json:"all_funds"`
	AllCompanies  []ListedCompany      `json:"all_companies"`
	AllDeals      []ListedDeal         `json:"all_deals"`
	MyInvestments *[]InvestmentSummary `json:"my_investments,omitempty"`
}

// FeaturedService assembles the homepage aggregate.
type FeaturedService struct {
	Funds       repository.FundRepository
	Companies   repository.CompanyRepository
	Deals       repository.DealRepository
	Investments repository.InvestmentRepository
}

func NewFeaturedService(funds repository.FundRepository, companies repository.CompanyRepository, deals repository.DealRepository, investments repository.InvestmentRepository) *FeaturedService {
	return &FeaturedService{Funds: funds, Companies: companies, Deals: deals, Investments: investments}
}

// Featured builds the public bundle: first 3 funds in the summary shape plus
// up to 50 funds, companies and deals each.
func (s *FeaturedService) Featured(ctx context.Context) (*FeaturedView, error) {
	featured, err := s.Funds.FindAll(ctx, featuredFundLimit)
	if err != nil {
		return nil, err
	}
	funds, err := s.Funds.FindAll(ctx, featuredListLimit)
	if err != nil {
		return nil, err
	}
	companies, err := s.Companies.FindAll(ctx, featuredListLimit)
	if err != nil {
		return nil, err
	}
	deals, err := s.Deals.FindAll(ctx, featuredListLimit)
	if err != nil {
		return nil, err
	}

	view := &FeaturedView{
		FeaturedFunds: make([]FeaturedFund, 0, len(featured)),
		AllFunds:      make([]ListedFund, 0, len(funds)),
		AllCompanies:  make([]ListedCompany, 0, len(companies)),
		AllDeals:      make([]ListedDeal, 0, len(deals)),
	}
	for _, f := range featured {
		view.FeaturedFunds = append(view.FeaturedFunds, FeaturedFund{
			ID:              f.ID,
			Name:            f.Name,
			Symbol:          f.Symbol,
			MinInvestment:   f.MinInvestment,
			Carry:           f.Carry,
			Description:     f.Description,
			TargetCloseDate: f.TargetCloseDate,
			Performance:     f.Performance,
			FundType:        f.FundType,
		})
	}
	for _, f := range funds {
		view.AllFunds = append(view.AllFunds, ListedFund{
			ID:            f.ID,
			Name:          f.Name,
			Symbol:        f.Symbol,
			MinInvestment: f.MinInvestment,
			Carry:         f.Carry,
			GPName:        f.GPName,
			ManagementFee: f.ManagementFee,
			Status:        f.Status,
			FundType:      f.FundType,
		})
	}
	for _, c := range companies {
		view.AllCompanies = append(view.AllCompanies, ListedCompany{
			ID:           c.ID,
			Name:         c.Name,
			Symbol:       c.Symbol,
			LeadInvestor: c.LeadInvestor,
			CoInvestors:  orEmpty(c.CoInvestors),
			Sector:       c.Sector,
			Valuation:    c.Valuation,
			Round:        c.Round,
			Traction:     c.Traction,
		})
	}
	for _, d := range deals {
		view.AllDeals = append(view.AllDeals, ListedDeal{
			ID:          d.ID,
			CompanyName: d.CompanyName,
			Symbol:      d.Symbol,
			Sector:      d.Sector,
			Round:       d.Round,
			Valuation:   d.Valuation,
			Syndicate:   d.Syndicate,
			CoInvestors: orEmpty(d.CoInvestors),
			InvitedDate: d.InvitedDate,
			Deadline:    d.Deadline,
		})
	}
	return view, nil
}

// FeaturedFor appends the caller's own investments to the public bundle.
// The read is bounded like the other homepage listings.
func (s *FeaturedService) FeaturedFor(ctx context.Context, userID string) (*FeaturedView, error) {
	view, err := s.Featured(ctx)
	if err != nil {
		return nil, err
	}
	invs, err := s.Investments.FindByUser(ctx, userID, featuredListLimit)
	if err != nil {
		return nil, err
	}
	mine := make([]InvestmentSummary, 0, len(invs))
	for _, inv := range invs {
		mine = append(mine, InvestmentSummary{
			ID:        inv.ID,
			FundID:    inv.FundID,
			Amount:    inv.Amount,
			Status:    inv.Status,
			CreatedAt: inv.CreatedAt,
		})
	}
	view.MyInvestments = &mine
	return view, nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
