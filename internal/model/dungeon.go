package model

// Difficulty is the ordered dungeon difficulty scale.
type Difficulty string

const (
	DifficultyEasy      Difficulty = "easy"
	DifficultyNormal    Difficulty = "normal"
	DifficultyHard      Difficulty = "hard"
	DifficultyLegendary Difficulty = "legendary"
)

// Rank returns the position of the difficulty in the easy < normal < hard < legendary
// ordering, or -1 for an unknown value.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyEasy:
		return 0
	case DifficultyNormal:
		return 1
	case DifficultyHard:
		return 2
	case DifficultyLegendary:
		return 3
	}
	return -1
}

// Valid reports whether the difficulty is one of the known values.
func (d Difficulty) Valid() bool { return d.Rank() >= 0 }

// Dungeon is a fixed historical market scenario: a symbol, a date range and
// reward parameters. Catalog data, read-only.
type Dungeon struct {
	ID               string
	Name             string
	Symbol           string
	StartDate        string
	EndDate          string
	Difficulty       Difficulty
	RecommendedLevel int
	XPReward         int
	GoldReward       int
	Description      string
}
