package model_test

import (
	"testing"

	"stayledger/internal/domains/user/model"

	"github.com/stretchr/testify/assert"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		points int64
		want   string
	}{
		{0, model.TierBronze},
		{999, model.TierBronze},
		{1000, model.TierSilver},
		{4999, model.TierSilver},
		{5000, model.TierGold},
		{9999, model.TierGold},
		{10000, model.TierPlatinum},
		{250000, model.TierPlatinum},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, model.TierFor(tt.points), "points=%d", tt.points)
	}
}
