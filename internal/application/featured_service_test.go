package application

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limitedhq/limited-api/internal/domain/entity"
)

func seedFeaturedStubs(nFunds, nCompanies, nDeals int) (*stubFundRepo, *stubCompanyRepo, *stubDealRepo) {
	funds := &stubFundRepo{}
	for i := 0; i < nFunds; i++ {
		funds.funds = append(funds.funds, entity.Fund{
			ID:            fmt.Sprintf("f%d", i),
			Name:          fmt.Sprintf("Fund %d", i),
			Symbol:        fmt.Sprintf("F%d", i),
			MinInvestment: 10000,
			Carry:         "20%",
			ManagementFee: "2% for 10 years",
			Status:        "Active",
			FundType:      entity.FundTypeVenture,
			GPName:        "GP",
		})
	}
	companies := &stubCompanyRepo{}
	for i := 0; i < nCompanies; i++ {
		companies.companies = append(companies.companies, entity.Company{
			ID:     fmt.Sprintf("c%d", i),
			Name:   fmt.Sprintf("Company %d", i),
			Sector: entity.SectorFinTech,
			Round:  entity.RoundSeed,
		})
	}
	deals := &stubDealRepo{}
	for i := 0; i < nDeals; i++ {
		deals.deals = append(deals.deals, entity.Deal{
			ID:          fmt.Sprintf("d%d", i),
			CompanyID:   fmt.Sprintf("c%d", i),
			CompanyName: fmt.Sprintf("Company %d", i),
			Sector:      entity.SectorFinTech,
			Round:       entity.RoundSeed,
		})
	}
	return funds, companies, deals
}

func TestFeaturedServiceFeatured(t *testing.T) {
	t.Run("caps featured funds at three", func(t *testing.T) {
		funds, companies, deals := seedFeaturedStubs(5, 5, 5)
		svc := NewFeaturedService(funds, companies, deals, &stubInvestmentRepo{})

		view, err := svc.Featured(context.Background())
		require.NoError(t, err)

		assert.Len(t, view.FeaturedFunds, 3)
		assert.Len(t, view.AllFunds, 5)
		assert.Len(t, view.AllCompanies, 5)
		assert.Len(t, view.AllDeals, 5)
		assert.Equal(t, "f0", view.FeaturedFunds[0].ID)
		assert.Nil(t, view.MyInvestments)
	})

	t.Run("caps each listing at fifty", func(t *testing.T) {
		funds, companies, deals := seedFeaturedStubs(60, 55, 51)
		svc := NewFeaturedService(funds, companies, deals, &stubInvestmentRepo{})

		view, err := svc.Featured(context.Background())
		require.NoError(t, err)

		assert.Len(t, view.AllFunds, 50)
		assert.Len(t, view.AllCompanies, 50)
		assert.Len(t, view.AllDeals, 50)
	})

	t.Run("nil co-investors serialize as empty lists", func(t *testing.T) {
		funds, companies, deals := seedFeaturedStubs(1, 1, 1)
		companies.companies[0].CoInvestors = nil
		deals.deals[0].CoInvestors = nil
		svc := NewFeaturedService(funds, companies, deals, &stubInvestmentRepo{})

		view, err := svc.Featured(context.Background())
		require.NoError(t, err)

		assert.NotNil(t, view.AllCompanies[0].CoInvestors)
		assert.Empty(t, view.AllCompanies[0].CoInvestors)
		assert.NotNil(t, view.AllDeals[0].CoInvestors)
	})

	t.Run("empty collections yield empty, non-nil lists", func(t *testing.T) {
		svc := NewFeaturedService(&stubFundRepo{}, &stubCompanyRepo{}, &stubDealRepo{}, &stubInvestmentRepo{})

		view, err := svc.Featured(context.Background())
		require.NoError(t, err)

		assert.NotNil(t, view.FeaturedFunds)
		assert.NotNil(t, view.AllFunds)
		assert.NotNil(t, view.AllCompanies)
		assert.NotNil(t, view.AllDeals)
		assert.Empty(t, view.FeaturedFunds)
	})
}

func TestFeaturedServiceFeaturedFor(t *testing.T) {
	funds, companies, deals := seedFeaturedStubs(2, 1, 1)
	now := time.Now().UTC()
	investments := &stubInvestmentRepo{items: []entity.Investment{
		{ID: "i1", UserID: "u1", FundID: "f0", Amount: 10000, Status: "Pending", CreatedAt: now},
		{ID: "i2", UserID: "u2", FundID: "f1", Amount: 25000, Status: "Pending", CreatedAt: now},
	}}
	svc := NewFeaturedService(funds, companies, deals, investments)

	t.Run("appends only the caller's investments", func(t *testing.T) {
		view, err := svc.FeaturedFor(context.Background(), "u1")
		require.NoError(t, err)

		require.NotNil(t, view.MyInvestments)
		mine := *view.MyInvestments
		require.Len(t, mine, 1)
		assert.Equal(t, "i1", mine[0].ID)
		assert.Equal(t, "f0", mine[0].FundID)
		assert.Equal(t, int64(10000), mine[0].Amount)
		assert.Len(t, view.AllFunds, 2)
	})

	t.Run("zero investments still marks the bundle as personal", func(t *testing.T) {
		view, err := svc.FeaturedFor(context.Background(), "u-without-investments")
		require.NoError(t, err)

		require.NotNil(t, view.MyInvestments)
		assert.Empty(t, *view.MyInvestments)

		// The pointer survives serialization so the key stays in the body.
		raw, err := json.Marshal(view)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"my_investments":[]`)
	})
}
