package dto

import (
	"stayledger/internal/domains/user/model"
	gDto "stayledger/shared/dto"
)

type UserResponse struct {
	ID                    string `json:"id"`
	Email                 string `json:"email"`
	FullName              string `json:"full_name"`
	Phone                 string `json:"phone,omitempty"`
	TrustScore            int    `json:"trust_score"`
	LateCancellationCount int    `json:"late_cancellation_count"`
	PayAtHotelAllowed     bool   `json:"pay_at_hotel_allowed"`
	WalletBalance         int64  `json:"wallet_balance"`
	LoyaltyPoints         int64  `json:"loyalty_points"`
	LifetimePoints        int64  `json:"lifetime_points"`
	Tier                  string `json:"tier"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.FullName = model.FullName
	r.Phone = model.Phone
	r.TrustScore = model.TrustScore
	r.LateCancellationCount = model.LateCancellationCount
	r.PayAtHotelAllowed = model.PayAtHotelAllowed
	r.WalletBalance = model.WalletBalance
	r.LoyaltyPoints = model.LoyaltyPoints
	r.LifetimePoints = model.LifetimePoints
	r.Tier = model.Tier
	r.Metadata.FromModel(model.Metadata)
}
