package entity

// Closed categorical value sets. Unrecognized literals are rejected at the
// HTTP boundary via validator aliases (see pkg/validation).

type FundType string

const (
	FundTypeVenture     FundType = "Venture Fund"
	FundTypeDemoDay     FundType = "Demo Day Fund"
	FundTypeGrowth      FundType = "Growth Fund"
	FundTypeEarlyGrowth FundType = "Early Growth Fund"
)

func (t FundType) Valid() bool {
	switch t {
	case FundTypeVenture, FundTypeDemoDay, FundTypeGrowth, FundTypeEarlyGrowth:
		return true
	}
	return false
}

type Round string

const (
	RoundPreSeed    Round = "Pre-Seed"
	RoundSeed       Round = "Seed"
	RoundSeedPlus   Round = "Seed+"
	RoundSeriesA    Round = "Series A"
	RoundSeriesAPls Round = "Series A+"
	RoundLateStage  Round = "Late Stage"
)

func (r Round) Valid() bool {
	switch r {
	case RoundPreSeed, RoundSeed, RoundSeedPlus, RoundSeriesA, RoundSeriesAPls, RoundLateStage:
		return true
	}
	return false
}

type Sector string

const (
	SectorFinTech       Sector = "FinTech"
	SectorAIML          Sector = "AI/ML"
	SectorEnterprise    Sector = "Enterprise Software"
	SectorConsumer      Sector = "Consumer Products"
	SectorBlockchain    Sector = "Blockchain/Crypto"
	SectorAerospace     Sector = "Aerospace"
	SectorRobotics      Sector = "Robotics"
	SectorFitness       Sector = "Fitness"
	SectorSocial        Sector = "Social"
	SectorMedia         Sector = "Media/Entertainment"
	SectorInvestment    Sector = "Investment Platform"
	SectorCollaboration Sector = "Collaboration Tools"
)

func (s Sector) Valid() bool {
	switch s {
	case SectorFinTech, SectorAIML, SectorEnterprise, SectorConsumer,
		SectorBlockchain, SectorAerospace, SectorRobotics, SectorFitness,
		SectorSocial, SectorMedia, SectorInvestment, SectorCollaboration:
		return true
	}
	return false
}

type UserType string

const (
	UserTypeLimitedPartner UserType = "Limited Partner"
	UserTypeFundManager    UserType = "Fund Manager"
	UserTypeAdmin          UserType = "Admin"
)

func (t UserType) Valid() bool {
	switch t {
	case UserTypeLimitedPartner, UserTypeFundManager, UserTypeAdmin:
		return true
	}
	return false
}

// CanManageFunds reports whether the user type may create funds, companies
// and deals.
func (t UserType) CanManageFunds() bool {
	return t == UserTypeFundManager || t == UserTypeAdmin
}

type UserStatus string

const (
	UserStatusPending   UserStatus = "Pending Verification"
	UserStatusVerified  UserStatus = "Verified"
	UserStatusSuspended UserStatus = "Suspended"
)

func (s UserStatus) Valid() bool {
	switch s {
	case UserStatusPending, UserStatusVerified, UserStatusSuspended:
		return true
	}
	return false
}
