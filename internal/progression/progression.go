package progression

import (
	"math"

	"TimeTrader/internal/model"
)

// XPForLevel returns the XP needed to clear the given level:
// floor(100 * 1.5^(level-1)).
func XPForLevel(level int) int {
	return int(100 * math.Pow(1.5, float64(level-1)))
}

// LevelInfo is the level derived from cumulative XP.
type LevelInfo struct {
	Level     int
	Remaining int
	XPToNext  int
}

// CalculateLevel derives the level from cumulative XP by repeated
// subtraction of per-level thresholds. Levels stay small, so the loop is
// cheaper than getting the closed form right.
func CalculateLevel(totalXP int) LevelInfo {
	level := 1
	remaining := totalXP
	for remaining >= XPForLevel(level) {
		remaining -= XPForLevel(level)
		level++
	}
	return LevelInfo{
		Level:     level,
		Remaining: remaining,
		XPToNext:  XPForLevel(level),
	}
}

// ApplyResult reports what a settlement changed beyond the raw numbers.
type ApplyResult struct {
	LeveledUp     bool
	OldLevel      int
	NewLevel      int
	NewlyUnlocked []string // indicator ids revealed this settlement
}

// Apply folds a settled playthrough outcome into the profile: XP, gold,
// lifetime totals, win rate, level, indicator unlocks and the completion
// record. Deterministic given the outcome.
func Apply(p *model.Profile, out model.PlaythroughOutcome) ApplyResult {
	p.XP += out.XPEarned
	p.Gold += out.GoldEarned
	p.TotalProfit += out.ProfitLoss
	p.TotalTrades += out.TradeCount

	// Halving running average, not a lifetime rate: each settlement halves
	// the weight of all prior history. A run with no sells leaves the rate
	// untouched.
	if out.TotalSells > 0 {
		newRate := float64(out.WinningSells) / float64(out.TotalSells)
		p.WinRate = (p.WinRate + newRate) / 2
	}

	res := ApplyResult{OldLevel: p.Level}

	info := CalculateLevel(p.XP)
	p.Level = info.Level
	p.XPToNextLevel = info.XPToNext
	res.NewLevel = p.Level
	res.LeveledUp = p.Level > res.OldLevel

	for i := range p.Indicators {
		slot := &p.Indicators[i]
		if !slot.Unlocked && slot.RequiredLevel <= p.Level {
			slot.Unlocked = true
			res.NewlyUnlocked = append(res.NewlyUnlocked, slot.ID)
		}
	}

	if !p.HasCompleted(out.DungeonID) {
		p.CompletedDungeons = append(p.CompletedDungeons, out.DungeonID)
	}

	return res
}
