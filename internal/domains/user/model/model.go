package model

import "stayledger/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID                    = "id"
	FieldEmail                 = "email"
	FieldFullName              = "full_name"
	FieldPhone                 = "phone"
	FieldTrustScore            = "trust_score"
	FieldLateCancellationCount = "late_cancellation_count"
	FieldPayAtHotelAllowed     = "pay_at_hotel_allowed"
	FieldWalletBalance         = "wallet_balance"
	FieldLoyaltyPoints         = "loyalty_points"
	FieldLifetimePoints        = "lifetime_points"
	FieldTier                  = "tier"
	FieldActive                = "active"
)

const (
	TierBronze   = "BRONZE"
	TierSilver   = "SILVER"
	TierGold     = "GOLD"
	TierPlatinum = "PLATINUM"
)

// Lifetime point thresholds, highest first.
const (
	PlatinumThreshold int64 = 10000
	GoldThreshold     int64 = 5000
	SilverThreshold   int64 = 1000
)

const MaxTrustScore = 100

type User struct {
	ID                    string `db:"id"`
	Email                 string `db:"email"`
	FullName              string `db:"full_name"`
	Phone                 string `db:"phone"`
	TrustScore            int    `db:"trust_score"`
	LateCancellationCount int    `db:"late_cancellation_count"`
	PayAtHotelAllowed     bool   `db:"pay_at_hotel_allowed"`
	WalletBalance         int64  `db:"wallet_balance"`
	LoyaltyPoints         int64  `db:"loyalty_points"`
	LifetimePoints        int64  `db:"lifetime_points"`
	Tier                  string `db:"tier"`
	Active                bool   `db:"active"`
	model.Metadata
}

// TierFor maps lifetime points to a loyalty tier.
func TierFor(lifetimePoints int64) string {
	switch {
	case lifetimePoints >= PlatinumThreshold:
		return TierPlatinum
	case lifetimePoints >= GoldThreshold:
		return TierGold
	case lifetimePoints >= SilverThreshold:
		return TierSilver
	default:
		return TierBronze
	}
}
