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

// InvestmentService owns investment creation and the joined portfolio view.
type InvestmentService struct {
	Investments repository.InvestmentRepository
	Funds       repository.FundRepository
	Logger      *logrus.Logger
}

func NewInvestmentService(investments repository.InvestmentRepository, funds repository.FundRepository, logger *logrus.Logger) *InvestmentService {
	return &InvestmentService{Investments: investments, Funds: funds, Logger: logger}
}

// Create records a pending investment owned by userID. The fund must exist
// and the amount must meet its minimum at creation time; the minimum is not
// re-checked later.
func (s *InvestmentService) Create(ctx context.Context, userID, fundID string, amount int64) (*entity.Investment, error) {
	fund, err := s.Funds.FindByID(ctx, fundID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFundNotFound
		}
		return nil, err
	}
	if amount < fund.MinInvestment {
		return nil, &MinimumInvestmentError{Minimum: fund.MinInvestment}
	}

	now := time.Now().UTC()
	inv := &entity.Investment{
		ID:        uuid.NewString(),
		UserID:    userID,
		FundID:    fundID,
		Amount:    amount,
		Status:    "Pending",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Investments.Insert(ctx, inv); err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"investment_id": inv.ID, "fund_id": fundID}).Info("investment created")
	return inv, nil
}

// ListForUser returns the caller's investments joined with fund summaries.
func (s *InvestmentService) ListForUser(ctx context.Context, userID string) ([]entity.InvestmentWithFund, error) {
	return s.Investments.FindByUserWithFunds(ctx, userID)
}
