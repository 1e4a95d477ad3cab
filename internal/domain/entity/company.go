package entity

import "time"

// Company is a portfolio company.
type Company struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Symbol       string    `bson:"symbol" json:"symbol"`
	LeadInvestor string    `bson:"lead_investor" json:"lead_investor"`
	CoInvestors  []string  `bson:"co_investors,omitempty" json:"co_investors,omitempty"`
	Sector       Sector    `bson:"sector" json:"sector"`
	Valuation    string    `bson:"valuation" json:"valuation"`
	Round        Round     `bson:"round" json:"round"`
	Traction     string    `bson:"traction" json:"traction"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}
