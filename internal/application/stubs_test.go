package application

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/limitedhq/limited-api/internal/domain/entity"
	"github.com/limitedhq/limited-api/internal/domain/repository"
)

// In-memory repository stubs shared by the service tests.

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type stubUserRepo struct {
	users        map[string]*entity.User
	insertErr    error
	findEmailErr error
}

func newStubUserRepo(users ...*entity.User) *stubUserRepo {
	s := &stubUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *stubUserRepo) Insert(_ context.Context, u *entity.User) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.users[u.ID] = u
	return nil
}

func (s *stubUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if s.findEmailErr != nil {
		return nil, s.findEmailErr
	}
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *stubUserRepo) UpdateFields(_ context.Context, id string, fields map[string]any) error {
	u, ok := s.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "email":
			u.Email = v.(string)
		case "first_name":
			u.FirstName = v.(string)
		case "last_name":
			u.LastName = v.(string)
		case "company_name":
			u.CompanyName = v.(string)
		case "is_accredited":
			u.IsAccredited = v.(bool)
		case "status":
			u.Status = v.(entity.UserStatus)
		}
	}
	return nil
}

func (s *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(s.users)), nil
}

type stubFundRepo struct {
	funds   []entity.Fund
	findErr error
}

func (s *stubFundRepo) Insert(_ context.Context, f *entity.Fund) error {
	s.funds = append(s.funds, *f)
	return nil
}

func (s *stubFundRepo) FindByID(_ context.Context, id string) (*entity.Fund, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	for i := range s.funds {
		if s.funds[i].ID == id {
			return &s.funds[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *stubFundRepo) FindAll(_ context.Context, limit int64) ([]entity.Fund, error) {
	if int64(len(s.funds)) > limit {
		return s.funds[:limit], nil
	}
	return s.funds, nil
}

func (s *stubFundRepo) Count(_ context.Context) (int64, error) {
	return int64(len(s.funds)), nil
}

type stubCompanyRepo struct {
	companies []entity.Company
}

func (s *stubCompanyRepo) Insert(_ context.Context, c *entity.Company) error {
	s.companies = append(s.companies, *c)
	return nil
}

func (s *stubCompanyRepo) FindByID(_ context.Context, id string) (*entity.Company, error) {
	for i := range s.companies {
		if s.companies[i].ID == id {
			return &s.companies[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *stubCompanyRepo) FindAll(_ context.Context, limit int64) ([]entity.Company, error) {
	if int64(len(s.companies)) > limit {
		return s.companies[:limit], nil
	}
	return s.companies, nil
}

func (s *stubCompanyRepo) Count(_ context.Context) (int64, error) {
	return int64(len(s.companies)), nil
}

type stubDealRepo struct {
	deals []entity.Deal
}

func (s *stubDealRepo) Insert(_ context.Context, d *entity.Deal) error {
	s.deals = append(s.deals, *d)
	return nil
}

func (s *stubDealRepo) FindByID(_ context.Context, id string) (*entity.Deal, error) {
	for i := range s.deals {
		if s.deals[i].ID == id {
			return &s.deals[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *stubDealRepo) FindAll(_ context.Context, limit int64) ([]entity.Deal, error) {
	if int64(len(s.deals)) > limit {
		return s.deals[:limit], nil
	}
	return s.deals, nil
}

func (s *stubDealRepo) Count(_ context.Context) (int64, error) {
	return int64(len(s.deals)), nil
}

type stubInvestmentRepo struct {
	items []entity.Investment
	rows  []entity.InvestmentWithFund
}

func (s *stubInvestmentRepo) Insert(_ context.Context, i *entity.Investment) error {
	s.items = append(s.items, *i)
	return nil
}

func (s *stubInvestmentRepo) FindByUser(_ context.Context, userID string, limit int64) ([]entity.Investment, error) {
	out := []entity.Investment{}
	for _, inv := range s.items {
		if inv.UserID == userID && int64(len(out)) < limit {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (s *stubInvestmentRepo) FindByUserWithFunds(_ context.Context, userID string) ([]entity.InvestmentWithFund, error) {
	out := []entity.InvestmentWithFund{}
	for _, r := range s.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

var (
	_ repository.UserRepository       = (*stubUserRepo)(nil)
	_ repository.FundRepository       = (*stubFundRepo)(nil)
	_ repository.CompanyRepository    = (*stubCompanyRepo)(nil)
	_ repository.DealRepository       = (*stubDealRepo)(nil)
	_ repository.InvestmentRepository = (*stubInvestmentRepo)(nil)
)
