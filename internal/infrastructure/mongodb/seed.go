package mongodb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/limitedhq/limited-api/internal/domain/entity"
	"github.com/limitedhq/limited-api/internal/domain/repository"
	"github.com/limitedhq/limited-api/pkg/helpers"
)

// SeedStores groups the repositories the seed routine writes to.
type SeedStores struct {
	Funds     repository.FundRepository
	Companies repository.CompanyRepository
	Deals     repository.DealRepository
	Users     repository.UserRepository
}

// Seed populates demo data on first startup. Each collection is checked and
// seeded independently, so partial pre-existing data never blocks the rest.
// Running it against a fully seeded database is a no-op.
func Seed(ctx context.Context, s SeedStores, logger *logrus.Logger) error {
	companies := seedCompanies()

	if n, err := s.Funds.Count(ctx); err != nil {
		return err
	} else if n == 0 {
		for _, f := range seedFunds() {
			if err := s.Funds.Insert(ctx, &f); err != nil {
				return err
			}
		}
		logger.Info("seeded demo funds")
	}

	if n, err := s.Companies.Count(ctx); err != nil {
		return err
	} else if n == 0 {
		for _, c := range companies {
			if err := s.Companies.Insert(ctx, &c); err != nil {
				return err
			}
		}
		logger.Info("seeded demo companies")
	}

	if n, err := s.Deals.Count(ctx); err != nil {
		return err
	} else if n == 0 {
		for _, d := range seedDeals(companies) {
			if err := s.Deals.Insert(ctx, &d); err != nil {
				return err
			}
		}
		logger.Info("seeded demo deals")
	}

	if n, err := s.Users.Count(ctx); err != nil {
		return err
	} else if n == 0 {
		users, err := seedUsers()
		if err != nil {
			return err
		}
		for _, u := range users {
			if err := s.Users.Insert(ctx, &u); err != nil {
				return err
			}
		}
		logger.Info("seeded demo accounts")
	}

	return nil
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func seedFunds() []entity.Fund {
	now := time.Now().UTC()
	base := func(name, symbol, desc string, min int64, carry string, ft entity.FundType, gp string) entity.Fund {
		return entity.Fund{
			ID:            uuid.NewString(),
			Name:          name,
			Symbol:        symbol,
			Description:   desc,
			MinInvestment: min,
			Carry:         carry,
			ManagementFee: "2% for 10 years",
			Status:        "Active",
			FundType:      ft,
			GPName:        gp,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
	}

	f1 := base("Demo Day Funds: Y Combinator W25 Batch", "Y", "Top performing companies from the YC W25 batch", 10000, "20%", entity.FundTypeDemoDay, "Y Combinator")
	f1.Performance = "87% of batches have achieved top decile performance"

	f2 := base("137 Ventures Fund V", "137", "Secondary investments in late-stage private companies", 150000, "20%", entity.FundTypeVenture, "137 Ventures")
	f2.TargetCloseDate = date(2025, time.June, 30)

	f3 := base("Anansi", "AN", "Focused on emerging markets in Southeast Asia", 10000, "20-30%", entity.FundTypeVenture, "Vinay Iyengar")
	f4 := base("Xseed Fund", "XS", "Specializing in B2B enterprise software", 1000000, "20%", entity.FundTypeVenture, "Xseed Capital")
	f5 := base("Sancus Ventures Fund II", "SV", "AI and machine learning focused investments", 1000000, "20%", entity.FundTypeVenture, "Lake Dai")

	return []entity.Fund{f1, f2, f3, f4, f5}
}

func seedCompanies() []entity.Company {
	now := time.Now().UTC()
	base := func(name, symbol, lead string, co []string, sector entity.Sector, valuation string, round entity.Round, traction string) entity.Company {
		return entity.Company{
			ID:           uuid.NewString(),
			Name:         name,
			Symbol:       symbol,
			LeadInvestor: lead,
			CoInvestors:  co,
			Sector:       sector,
			Valuation:    valuation,
			Round:        round,
			Traction:     traction,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}
	return []entity.Company{
		base("Runway", "RW", "Zachary Ginsburg", []string{}, entity.SectorFinTech, "$50M", entity.RoundSeriesA, "10K+ users"),
		base("Spokn", "SP", "Unpopular Ventures", []string{}, entity.SectorCollaboration, "$20M", entity.RoundSeedPlus, "Growing user base"),
		base("Rise Studio", "RS", "Unpopular Ventures", []string{}, entity.SectorBlockchain, "$5M", entity.RoundPreSeed, "Early traction"),
		base("iCapital Network", "IC", "Riverside Ventures", []string{}, entity.SectorInvestment, "$6.08B", entity.RoundLateStage, "Market leader"),
		base("FormityAI", "FAI", "Mana Ventures", []string{"Heal Capital"}, entity.SectorAIML, "$8M", entity.RoundSeed, "Beta launch"),
	}
}

// seedDeals references seeded companies by array position; the company_id is
// a soft reference like every other deal.
func seedDeals(companies []entity.Company) []entity.Deal {
	now := time.Now().UTC()
	base := func(idx int, name, symbol string, sector entity.Sector, round entity.Round, valuation, syndicate string, co []string, invited, deadline *time.Time) entity.Deal {
		return entity.Deal{
			ID:          uuid.NewString(),
			CompanyID:   companies[idx].ID,
			CompanyName: name,
			Symbol:      symbol,
			Sector:      sector,
			Round:       round,
			Valuation:   valuation,
			Syndicate:   syndicate,
			CoInvestors: co,
			InvitedDate: *invited,
			Deadline:    *deadline,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}
	return []entity.Deal{
		base(0, "Airwal", "AIR", entity.SectorAerospace, entity.RoundSeed, "$8.5M", "Flight VC Syndicate", []string{"Unlock VC"}, date(2025, time.February, 26), date(2025, time.March, 18)),
		base(1, "Texas Ranchers Major League Pickleball Team", "TRMLP", entity.SectorMedia, entity.RoundSeriesA, "$23M", "Red Beard Ventures", []string{}, date(2025, time.February, 25), date(2025, time.March, 27)),
		base(2, "Mobot", "MB", entity.SectorRobotics, entity.RoundSeriesAPls, "$47M", "Red Beard Ventures", []string{"Uncorrelated"}, date(2025, time.February, 24), date(2025, time.March, 10)),
		base(3, "Light", "LHT", entity.SectorConsumer, entity.RoundSeriesA, "$80M", "Unwritten Capital", []string{"Shrug Capital"}, date(2025, time.February, 23), date(2025, time.March, 5)),
		base(4, "Hangout FM", "HFM", entity.SectorSocial, entity.RoundSeedPlus, "$30M", "Riverside Ventures", []string{"Founders Fund"}, date(2025, time.February, 23), date(2025, time.March, 5)),
	}
}

func seedUsers() ([]entity.User, error) {
	now := time.Now().UTC()
	base := func(email, first, last, company string, ut entity.UserType, accredited bool, password string) (entity.User, error) {
		hash, err := helpers.HashPassword(password)
		if err != nil {
			return entity.User{}, err
		}
		return entity.User{
			ID:             uuid.NewString(),
			Email:          email,
			FirstName:      first,
			LastName:       last,
			CompanyName:    company,
			UserType:       ut,
			IsAccredited:   accredited,
			Status:         entity.UserStatusVerified,
			HashedPassword: hash,
			CreatedAt:      now,
			UpdatedAt:      now,
		}, nil
	}

	admin, err := base("admin@limited.vc", "Ada", "Admin", "Limited", entity.UserTypeAdmin, true, "admin12345")
	if err != nil {
		return nil, err
	}
	manager, err := base("manager@limited.vc", "Mara", "Manager", "Riverside Ventures", entity.UserTypeFundManager, true, "manager12345")
	if err != nil {
		return nil, err
	}
	lp, err := base("lp@limited.vc", "Liam", "Partner", "", entity.UserTypeLimitedPartner, true, "investor12345")
	if err != nil {
		return nil, err
	}
	return []entity.User{admin, manager, lp}, nil
}
