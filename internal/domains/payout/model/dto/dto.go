package dto

import (
	"stayledger/internal/domains/payout/model"
	"stayledger/shared"
	"stayledger/shared/constant"
	gDto "stayledger/shared/dto"
	"stayledger/shared/timezone"
)

type CreatePayoutRequest struct {
	Amount int64  `json:"amount" validate:"required,min=1"`
	Note   string `json:"note"   validate:"omitempty,max=255"`
}

type TransitionPayoutRequest struct {
	Status string `json:"status" validate:"required,oneof=APPROVED PROCESSING PAID REJECTED"`
	Note   string `json:"note"   validate:"omitempty,max=255"`
}

type PayoutResponse struct {
	ID         string `json:"id"`
	HotelID    string `json:"hotel_id"`
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
	Note       string `json:"note,omitempty"`
	ReviewedBy string `json:"reviewed_by,omitempty"`
	ReviewedAt string `json:"reviewed_at,omitempty"`
	PaidAt     string `json:"paid_at,omitempty"`
	gDto.Metadata
}

func (r *PayoutResponse) FromModel(m model.PayoutRequest) {
	r.ID = m.ID
	r.HotelID = m.HotelID
	r.Amount = m.Amount
	r.Status = m.Status
	r.Note = m.Note

	if m.ReviewedBy != nil {
		r.ReviewedBy = *m.ReviewedBy
	}

	if m.ReviewedAt != nil {
		r.ReviewedAt = timezone.Format(*m.ReviewedAt, constant.DateFormat)
	}

	if m.PaidAt != nil {
		r.PaidAt = timezone.Format(*m.PaidAt, constant.DateFormat)
	}

	r.Metadata.FromModel(m.Metadata)
}

type GetPayoutsResponse struct {
	Payouts   []PayoutResponse `json:"payouts"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetPayoutsResponse) FromModels(models []model.PayoutRequest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payouts = make([]PayoutResponse, len(models))
	for i, mod := range models {
		r.Payouts[i].FromModel(mod)
	}
}
