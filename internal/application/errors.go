package application

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrFundNotFound       = errors.New("fund not found")
	ErrCompanyNotFound    = errors.New("company not found")
	ErrDealNotFound       = errors.New("deal not found")
)

// MinimumInvestmentError is returned when an investment amount is below the
// fund's minimum at creation time.
type MinimumInvestmentError struct {
	Minimum int64
}

func (e *MinimumInvestmentError) Error() string {
	return fmt.Sprintf("minimum investment for this fund is $%d", e.Minimum)
}
