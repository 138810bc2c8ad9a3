package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"stayledger/shared/constant"
	"stayledger/shared/dto"
	"stayledger/shared/model"
	"stayledger/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2025, 1, 11, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "desk-1",
		ModifiedBy: "system",
	})

	assert.Equal(t, timezone.Format(createdAt, constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, timezone.Format(modifiedAt, constant.DateFormat), metadata.ModifiedAt)
	assert.Equal(t, "desk-1", metadata.CreatedBy)
	assert.Equal(t, "system", metadata.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		withDefaults bool
		expected     dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    "page=2&limit=20&sort_by=check_in&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "check_in", SortDir: dto.SortDirAsc},
		},
		{
			name:         "defaults",
			withDefaults: true,
			expected:     dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "no defaults leaves zero values",
			expected: dto.QueryParams{},
		},
		{
			name:         "invalid numbers fall back to defaults",
			query:        "page=-1&limit=abc",
			withDefaults: true,
			expected:     dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "limit is capped",
			query:    "limit=5000",
			expected: dto.QueryParams{Limit: constant.MaxValueLimit},
		},
		{
			name:     "unknown sort direction ignored",
			query:    "sort_by=total_amount&sort_dir=sideways",
			expected: dto.QueryParams{SortBy: "total_amount"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/hotels/h-1/bookings?"+tt.query, nil)

			params := dto.QueryParams{}
			params.FromRequest(req, tt.withDefaults)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "eq with table",
			filter:    dto.Eq("bookings", "status", "CONFIRMED"),
			wantWhere: "bookings.status = :status",
			wantArgs:  map[string]any{"status": "CONFIRMED"},
		},
		{
			name:      "strict less",
			filter:    dto.Filter{Field: "check_in", Value: "2025-01-12", Operator: dto.FilterOperatorLess},
			wantWhere: "check_in < :check_in",
			wantArgs:  map[string]any{"check_in": "2025-01-12"},
		},
		{
			name:      "in expands a slice",
			filter:    dto.Filter{Field: "status", Value: []string{"PENDING", "CONFIRMED"}, Operator: dto.FilterOperatorIn},
			wantWhere: "status IN (:status_0, :status_1)",
			wantArgs:  map[string]any{"status_0": "PENDING", "status_1": "CONFIRMED"},
		},
		{
			name:      "in with empty slice matches nothing",
			filter:    dto.Filter{Field: "status", Value: []string{}, Operator: dto.FilterOperatorIn},
			wantWhere: "FALSE",
			wantArgs:  map[string]any{},
		},
		{
			name:      "in with scalar binds it",
			filter:    dto.Filter{Field: "status", Value: "PENDING", Operator: dto.FilterOperatorIn},
			wantWhere: "status = :status",
			wantArgs:  map[string]any{"status": "PENDING"},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Table: "bookings", Field: "cancelled_at", Operator: dto.FilterIsNull},
			wantWhere: "bookings.cancelled_at IS NULL",
			wantArgs:  map[string]any{},
		},
		{
			name:      "unknown operator is dropped",
			filter:    dto.Filter{Field: "status", Value: "x", Operator: "between"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_Overlaps(t *testing.T) {
	group := dto.And(
		dto.Eq("bookings", "room_id", "r-1"),
		dto.Filter{Field: "status", Value: "x", Operator: "between"},
		dto.Overlaps("bookings", "check_in", "check_out", "2025-01-10", "2025-01-12"),
	)

	where, args := group.GetWhereClause()

	assert.Equal(t, "(bookings.room_id = :room_id AND (bookings.check_in < :overlap_check_in AND bookings.check_out > :overlap_check_out))", where)
	assert.Equal(t, map[string]any{
		"room_id":           "r-1",
		"overlap_check_in":  "2025-01-12",
		"overlap_check_out": "2025-01-10",
	}, args)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorOr}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}
