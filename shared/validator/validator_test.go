package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"stayledger/shared/failure"
	"stayledger/shared/validator"

	"github.com/stretchr/testify/assert"
)

type stayRequest struct {
	RoomID     string `json:"room_id"     validate:"required"`
	CheckIn    string `json:"check_in"    validate:"required,datetime=2006-01-02"`
	GuestCount int    `json:"guest_count" validate:"gt=0,lte=10"`
	GuestPhone string `json:"guest_phone" validate:"omitempty,phone"`
	Method     string `json:"payment_method" validate:"omitempty,oneof=PAY_AT_HOTEL WALLET ONLINE"`
	Note       string `validate:"max=5"`
}

func TestValidateStruct(t *testing.T) {
	valid := func() stayRequest {
		return stayRequest{RoomID: "r-1", CheckIn: "2025-01-10", GuestCount: 2, GuestPhone: "+442071838750"}
	}

	tests := []struct {
		name    string
		mutate  func(r *stayRequest)
		wantMsg string
	}{
		{name: "valid", mutate: func(*stayRequest) {}},
		{name: "missing room", mutate: func(r *stayRequest) { r.RoomID = "" }, wantMsg: "room_id is required"},
		{name: "bad date", mutate: func(r *stayRequest) { r.CheckIn = "10/01/2025" }, wantMsg: "check_in must be a date in 2006-01-02 format"},
		{name: "no guests", mutate: func(r *stayRequest) { r.GuestCount = 0 }, wantMsg: "guest_count must be greater than 0"},
		{name: "too many guests", mutate: func(r *stayRequest) { r.GuestCount = 11 }, wantMsg: "guest_count must be less than or equal to 10"},
		{name: "unknown method", mutate: func(r *stayRequest) { r.Method = "CASH" }, wantMsg: "payment_method must be one of PAY_AT_HOTEL WALLET ONLINE"},
		{name: "untagged field keeps go name", mutate: func(r *stayRequest) { r.Note = "too long" }, wantMsg: "Note must be at most 5 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)
			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantMsg)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "decodes and validates",
			body: `{"room_id":"r-1","check_in":"2025-01-10","guest_count":1}`,
		},
		{
			name:    "malformed json",
			body:    `{"room_id":`,
			wantErr: "failed to decode request body",
		},
		{
			name:    "rule failure",
			body:    `{"check_in":"2025-01-10","guest_count":1}`,
			wantErr: "room_id is required",
		},
		{
			name:    "oversized body is cut off",
			body:    `{"room_id":"` + strings.Repeat("x", 2<<20) + `"}`,
			wantErr: "failed to decode request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req stayRequest

			err := validator.Validate(strings.NewReader(tt.body), &req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				assert.Equal(t, "r-1", req.RoomID)

				return
			}

			assert.ErrorContains(t, err, tt.wantErr)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2025-01-10", "datetime=2006-01-02"))
	assert.EqualError(t, validator.ValidateVar("", "required"), " is required")
	assert.NoError(t, validator.ValidateVar("", "empty"))
	assert.Error(t, validator.ValidateVar("x", "empty"))
}

func TestPhoneValidation(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{in: "+442071838750", valid: true},
		{in: "", valid: true},
		{in: "12", valid: false},
		{in: "call me", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := validator.ValidateVar(tt.in, "phone")

			if tt.valid {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, " must be a valid phone number")
		})
	}
}
