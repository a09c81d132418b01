package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateRankLowest(t *testing.T) {
	info := CalculateRank(0)

	assert.Equal(t, "Z", info.Rank)
	assert.Equal(t, 0, info.RankIndex)
	assert.Equal(t, 0, info.Progress)
	require.NotNil(t, info.NextRankLikes)
	assert.Equal(t, 1, *info.NextRankLikes)
	assert.Equal(t, "初心者", info.Name)
	assert.Equal(t, "🔰", info.Icon)
	assert.Equal(t, "#9E9E9E", info.Color)
}

func TestCalculateRankCeiling(t *testing.T) {
	info := CalculateRank(25)

	assert.Equal(t, "A", info.Rank)
	assert.Equal(t, 25, info.RankIndex)
	assert.Equal(t, 100, info.Progress)
	assert.Nil(t, info.NextRankLikes)
	assert.Equal(t, 0, info.CurrentLikes)
	assert.Equal(t, "レジェンド", info.Name)
	assert.Equal(t, "#FFD700", info.Color)
}

func TestCalculateRankPastCeiling(t *testing.T) {
	info := CalculateRank(30)

	assert.Equal(t, "A", info.Rank)
	assert.Equal(t, 5, info.CurrentLikes)
	assert.Nil(t, info.NextRankLikes)
}

func TestCalculateRankNegativeClamped(t *testing.T) {
	assert.Equal(t, CalculateRank(0), CalculateRank(-5))
}

func TestCalculateRankMonotonic(t *testing.T) {
	prev := -1
	for n := 0; n <= 60; n++ {
		info := CalculateRank(n)
		assert.GreaterOrEqual(t, info.RankIndex, prev, "rankIndex regressed at n=%d", n)
		prev = info.RankIndex
	}
}

func TestCalculateRankOneStepPerLike(t *testing.T) {
	// Z..A 逐级上升，每个赞升一级
	assert.Equal(t, "Y", CalculateRank(1).Rank)
	assert.Equal(t, "X", CalculateRank(2).Rank)
	assert.Equal(t, "B", CalculateRank(24).Rank)
}

func TestRankTierBands(t *testing.T) {
	tests := []struct {
		likes int
		name  string
		color string
	}{
		{0, "初心者", "#9E9E9E"},
		{4, "初心者", "#9E9E9E"},
		{5, "中級者", "#50C878"},
		{9, "中級者", "#50C878"},
		{10, "プロ", "#4A90E2"},
		{14, "プロ", "#4A90E2"},
		{15, "エキスパート", "#CD7F32"},
		{19, "エキスパート", "#CD7F32"},
		{20, "マスター", "#C0C0C0"},
		{22, "マスター", "#C0C0C0"},
		{23, "レジェンド", "#FFD700"},
		{100, "レジェンド", "#FFD700"},
	}

	for _, tt := range tests {
		info := CalculateRank(tt.likes)
		assert.Equal(t, tt.name, info.Name, "likes=%d", tt.likes)
		assert.Equal(t, tt.color, info.Color, "likes=%d", tt.likes)
	}
}
