package model

// PlayerClass is the trading archetype assigned once at onboarding.
type PlayerClass string

const (
	ClassHero  PlayerClass = "hero"
	ClassRogue PlayerClass = "rogue"
	ClassSage  PlayerClass = "sage"
)

// IndicatorSlot tracks one unlockable chart indicator on a profile.
// The display metadata lives in the catalog; the profile only carries
// the per-player unlock/equip flags.
type IndicatorSlot struct {
	ID            string `json:"id"`
	RequiredLevel int    `json:"required_level"`
	Unlocked      bool   `json:"unlocked"`
	Equipped      bool   `json:"equipped"`
}

// Profile is the persistent player progression record for a session.
type Profile struct {
	PlayerClass       PlayerClass     `json:"player_class"`
	Level             int             `json:"level"`
	XP                int             `json:"xp"`
	XPToNextLevel     int             `json:"xp_to_next_level"`
	Gold              int             `json:"gold"`
	Indicators        []IndicatorSlot `json:"indicators"`
	CompletedDungeons []string        `json:"completed_dungeons"`
	TotalProfit       float64         `json:"total_profit"`
	TotalTrades       int             `json:"total_trades"`
	WinRate           float64         `json:"win_rate"`
}

// HasCompleted reports whether the dungeon id is already recorded as cleared.
func (p *Profile) HasCompleted(dungeonID string) bool {
	for _, id := range p.CompletedDungeons {
		if id == dungeonID {
			return true
		}
	}
	return false
}

// Indicator returns a pointer to the slot with the given id, or nil.
func (p *Profile) Indicator(id string) *IndicatorSlot {
	for i := range p.Indicators {
		if p.Indicators[i].ID == id {
			return &p.Indicators[i]
		}
	}
	return nil
}
