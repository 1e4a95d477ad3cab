package entity

import "time"

// Investment is a user's commitment to a fund. FundID and UserID are soft
// references; only the minimum-investment rule performs a fund lookup.
type Investment struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	FundID    string    `bson:"fund_id" json:"fund_id"`
	Amount    int64     `bson:"amount" json:"amount"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// InvestmentWithFund is the flattened row produced by joining an investment
// to its fund.
type InvestmentWithFund struct {
	Investment    `bson:",inline"`
	FundName      string `bson:"fund_name" json:"fund_name"`
	FundSymbol    string `bson:"fund_symbol" json:"fund_symbol"`
	MinInvestment int64  `bson:"min_investment" json:"min_investment"`
	Carry         string `bson:"carry" json:"carry"`
}
