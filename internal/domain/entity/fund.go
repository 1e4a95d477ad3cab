package entity

import "time"

// Fund is an investment fund listed on the marketplace.
// IDs are application-assigned UUID strings, immutable once set.
type Fund struct {
	ID              string     `bson:"id" json:"id"`
	Name            string     `bson:"name" json:"name"`
	Symbol          string     `bson:"symbol" json:"symbol"`
	Description     string     `bson:"description,omitempty" json:"description,omitempty"`
	MinInvestment   int64      `bson:"min_investment" json:"min_investment"`
	Carry           string     `bson:"carry" json:"carry"`                   // e.g. "20%" or "20-30%"
	ManagementFee   string     `bson:"management_fee" json:"management_fee"` // e.g. "2% for 10 years"
	Status          string     `bson:"status" json:"status"`
	FundType        FundType   `bson:"fund_type" json:"fund_type"`
	GPName          string     `bson:"gp_name" json:"gp_name"`
	TargetCloseDate *time.Time `bson:"target_close_date,omitempty" json:"target_close_date,omitempty"`
	Performance     string     `bson:"performance,omitempty" json:"performance,omitempty"`
	CreatedAt       time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `bson:"updated_at" json:"updated_at"`
}
