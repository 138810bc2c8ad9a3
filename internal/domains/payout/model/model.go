package model

import (
	"slices"
	"time"

	"stayledger/shared/model"
)

const (
	TableName  = "payout_requests"
	EntityName = "payout request"

	FieldID         = "id"
	FieldHotelID    = "hotel_id"
	FieldAmount     = "amount"
	FieldStatus     = "status"
	FieldNote       = "note"
	FieldReviewedBy = "reviewed_by"
	FieldReviewedAt = "reviewed_at"
	FieldPaidAt     = "paid_at"
)

const (
	StatusPending    = "PENDING"
	StatusApproved   = "APPROVED"
	StatusProcessing = "PROCESSING"
	StatusPaid       = "PAID"
	StatusRejected   = "REJECTED"
)

// transitions lists the statuses reachable from each non-terminal status.
var transitions = map[string][]string{
	StatusPending:    {StatusApproved, StatusRejected},
	StatusApproved:   {StatusProcessing, StatusPaid},
	StatusProcessing: {StatusPaid},
}

func CanTransition(from, to string) bool {
	return slices.Contains(transitions[from], to)
}

func Next(from string) []string {
	return transitions[from]
}

type PayoutRequest struct {
	ID         string     `db:"id"`
	HotelID    string     `db:"hotel_id"`
	Amount     int64      `db:"amount"`
	Status     string     `db:"status"`
	Note       string     `db:"note"`
	ReviewedBy *string    `db:"reviewed_by"`
	ReviewedAt *time.Time `db:"reviewed_at"`
	PaidAt     *time.Time `db:"paid_at"`
	model.Metadata
}
