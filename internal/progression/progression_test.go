package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TimeTrader/internal/catalog"
	"TimeTrader/internal/model"
)

func TestXPForLevel(t *testing.T) {
	assert.Equal(t, 100, XPForLevel(1))
	assert.Equal(t, 150, XPForLevel(2))
	assert.Equal(t, 225, XPForLevel(3))
	// floor(100 * 1.5^3) = floor(337.5)
	assert.Equal(t, 337, XPForLevel(4))
}

func TestCalculateLevel(t *testing.T) {
	tests := []struct {
		totalXP   int
		level     int
		remaining int
		xpToNext  int
	}{
		{0, 1, 0, 100},
		{99, 1, 99, 100},
		{100, 2, 0, 150},
		{249, 2, 149, 150},
		{250, 3, 0, 225},
		{475, 4, 0, 337},
	}
	for _, tt := range tests {
		info := CalculateLevel(tt.totalXP)
		assert.Equal(t, tt.level, info.Level, "xp=%d", tt.totalXP)
		assert.Equal(t, tt.remaining, info.Remaining, "xp=%d", tt.totalXP)
		assert.Equal(t, tt.xpToNext, info.XPToNext, "xp=%d", tt.totalXP)
	}
}

func outcomeWith(xp, gold int) model.PlaythroughOutcome {
	return model.PlaythroughOutcome{
		DungeonID:  "tutorial-1",
		XPEarned:   xp,
		GoldEarned: gold,
	}
}

func TestApply_AccumulatesAndLevels(t *testing.T) {
	p := catalog.Default().NewProfile(model.ClassHero)

	res := Apply(p, outcomeWith(60, 100))
	assert.False(t, res.LeveledUp)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 60, p.XP)
	assert.Equal(t, 1100, p.Gold)

	res = Apply(p, outcomeWith(60, 0))
	assert.True(t, res.LeveledUp)
	assert.Equal(t, 1, res.OldLevel)
	assert.Equal(t, 2, res.NewLevel)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 150, p.XPToNextLevel)
}

func TestApply_UnlocksIndicatorsOnce(t *testing.T) {
	p := catalog.Default().NewProfile(model.ClassHero)

	// Jump straight past level 2: candlestick unlocks.
	res := Apply(p, outcomeWith(120, 0))
	require.Equal(t, 2, p.Level)
	assert.Equal(t, []string{"candlestick"}, res.NewlyUnlocked)
	assert.True(t, p.Indicator("candlestick").Unlocked)
	assert.False(t, p.Indicator("candlestick").Equipped)

	// A later settlement at the same level must not report it again.
	res = Apply(p, outcomeWith(10, 0))
	assert.Empty(t, res.NewlyUnlocked)
}

func TestApply_WinRateHalvingAverage(t *testing.T) {
	p := catalog.Default().NewProfile(model.ClassHero)

	out := outcomeWith(50, 0)
	out.WinningSells = 1
	out.TotalSells = 2
	Apply(p, out)
	assert.InDelta(t, 0.25, p.WinRate, 1e-9) // (0 + 0.5) / 2

	out.WinningSells = 2
	Apply(p, out)
	assert.InDelta(t, 0.625, p.WinRate, 1e-9) // (0.25 + 1.0) / 2
}

func TestApply_ZeroSellsLeavesWinRate(t *testing.T) {
	p := catalog.Default().NewProfile(model.ClassHero)
	p.WinRate = 0.75

	out := outcomeWith(50, 0)
	out.TradeCount = 1 // a lone buy, never sold
	Apply(p, out)
	assert.Equal(t, 0.75, p.WinRate)
	assert.Equal(t, 1, p.TotalTrades)
}

func TestApply_CompletionIsIdempotent(t *testing.T) {
	p := catalog.Default().NewProfile(model.ClassHero)

	Apply(p, outcomeWith(50, 0))
	Apply(p, outcomeWith(50, 0))
	assert.Equal(t, []string{"tutorial-1"}, p.CompletedDungeons)
}
