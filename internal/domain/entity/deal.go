package entity

import "time"

// Deal is a syndicated deal. CompanyID is a soft reference; it is never
// validated against the companies collection.
type Deal struct {
	ID          string    `bson:"id" json:"id"`
	CompanyID   string    `bson:"company_id" json:"company_id"`
	CompanyName string    `bson:"company_name" json:"company_name"`
	Symbol      string    `bson:"symbol" json:"symbol"`
	Sector      Sector    `bson:"sector" json:"sector"`
	Round       Round     `bson:"round" json:"round"`
	Valuation   string    `bson:"valuation" json:"valuation"`
	Syndicate   string    `bson:"syndicate" json:"syndicate"`
	CoInvestors []string  `bson:"co_investors,omitempty" json:"co_investors,omitempty"`
	InvitedDate time.Time `bson:"invited_date" json:"invited_date"`
	Deadline    time.Time `bson:"deadline" json:"deadline"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
