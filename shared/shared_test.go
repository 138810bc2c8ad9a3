package shared_test

import (
	"context"
	"errors"
	"testing"
	"time"
	"unicode/utf8"

	"stayledger/shared"
	"stayledger/shared/cache/mocks"
	"stayledger/shared/constant"
	"stayledger/shared/dto"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total returns 1", total: 0, limit: 10, expected: 1},
		{name: "zero limit returns 1", total: 100, limit: 0, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "division with remainder", total: 101, limit: 10, expected: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Name    string `db:"name"`
		Status  string `db:"status"`
		Skipped string `db:"-"`
		NoTag   string
	}

	result := shared.TransformFields(update{Name: "Deluxe", Skipped: "x", NoTag: "y"}, "owner-1")

	assert.Equal(t, "Deluxe", result["name"])
	assert.NotContains(t, result, "status")
	assert.NotContains(t, result, "-")
	assert.Equal(t, "owner-1", result[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, result[constant.FieldModifiedAt])
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("123", "id", "bookings")

	assert.Equal(t, dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "id", Value: "123", Operator: dto.FilterOperatorEq, Table: "bookings"},
		},
	}, result)
}

func TestFilterByFields(t *testing.T) {
	filter := shared.FilterByFields("bookings", map[string]any{"room_id": "r-1", "hotel_id": "h-1"})
	where, args := filter.GetWhereClause()

	assert.Equal(t, "(bookings.hotel_id = :hotel_id AND bookings.room_id = :room_id)", where)
	assert.Equal(t, map[string]any{"hotel_id": "h-1", "room_id": "r-1"}, args)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{name: "short input", in: "abc", limit: 5, want: "abc"},
		{name: "ascii", in: "abcdef", limit: 4, want: "abcd"},
		{name: "cut before split rune", in: "aéé", limit: 4, want: "aé"},
		{name: "exact rune boundary", in: "aéé", limit: 3, want: "aé"},
		{name: "zero", in: "abc", limit: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shared.Truncate(tt.in, tt.limit)

			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:get:h-1:b-1", shared.BuildCacheKey("booking:get", "h-1", "b-1"))
	assert.Equal(t, "booking:get", shared.BuildCacheKey("booking:get"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	a := shared.FilterByFields("bookings", map[string]any{"hotel_id": "h-1"})
	b := shared.FilterByFields("bookings", map[string]any{"hotel_id": "h-2"})

	keyA := shared.BuildCacheKeyWithQuery("booking:gets", params, a)

	assert.Equal(t, keyA, shared.BuildCacheKeyWithQuery("booking:gets", params, a))
	assert.NotEqual(t, keyA, shared.BuildCacheKeyWithQuery("booking:gets", params, b))
	assert.NotEqual(t, keyA, shared.BuildCacheKeyWithQuery("booking:gets", dto.QueryParams{Page: 2, Limit: 10}, a))
	assert.Contains(t, keyA, "booking:gets:")
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := mocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "booking:gets*").Return(nil)
	shared.InvalidateCaches(context.Background(), mockCache, "booking:gets")

	mockCache.EXPECT().Clear(gomock.Any(), "booking:count*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), mockCache, "booking:count")
}

