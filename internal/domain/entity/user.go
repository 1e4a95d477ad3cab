package entity

import "time"

// User is the aggregate root for the account domain.
// HashedPassword is a bcrypt hash, persisted but never serialized to JSON.
type User struct {
	ID             string     `bson:"id" json:"id"`
	Email          string     `bson:"email" json:"email"` // stored lowercase
	FirstName      string     `bson:"first_name" json:"first_name"`
	LastName       string     `bson:"last_name" json:"last_name"`
	CompanyName    string     `bson:"company_name,omitempty" json:"company_name,omitempty"`
	UserType       UserType   `bson:"user_type" json:"user_type"`
	IsAccredited   bool       `bson:"is_accredited" json:"is_accredited"`
	Status         UserStatus `bson:"status" json:"status"`
	HashedPassword string     `bson:"hashed_password" json:"-"`
	CreatedAt      time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `bson:"updated_at" json:"updated_at"`
}
