package catalog

import (
	"fmt"

	"TimeTrader/internal/model"
)

// ClassInfo describes one player class, display metadata included.
type ClassInfo struct {
	ID            model.PlayerClass
	Name          string
	JapaneseName  string
	Description   string
	Color         string
	Icon          string
	TradingStyle  string
	InitialSkills []string
}

// Option is one selectable answer in a diagnostic question, with the
// per-class points it awards.
type Option struct {
	Text   string
	Scores map[model.PlayerClass]int
}

// Question is one diagnostic quiz question.
type Question struct {
	ID       int
	Question string
	Options  []Option
}

// IndicatorDef describes one unlockable chart indicator. StartUnlocked and
// StartEquipped seed the initial profile slot state.
type IndicatorDef struct {
	ID            string
	Name          string
	RPGName       string
	Description   string
	RequiredLevel int
	Type          string
	StartUnlocked bool
	StartEquipped bool
}

// Catalog holds all immutable game configuration: classes, diagnostic
// questions, indicator definitions, dungeons and difficulty display tables.
// Loaded once at startup and injected into the components that need lookups.
type Catalog struct {
	classes    []ClassInfo
	questions  []Question
	indicators []IndicatorDef
	dungeons   []model.Dungeon

	difficultyLabels map[model.Difficulty]string
	difficultyColors map[model.Difficulty]string
}

// Classes returns all player classes in fixed order (hero, rogue, sage).
func (c *Catalog) Classes() []ClassInfo { return c.classes }

// Class looks up a class by id.
func (c *Catalog) Class(id model.PlayerClass) (ClassInfo, bool) {
	for _, ci := range c.classes {
		if ci.ID == id {
			return ci, true
		}
	}
	return ClassInfo{}, false
}

// Questions returns the diagnostic quiz questions in order.
func (c *Catalog) Questions() []Question { return c.questions }

// Indicators returns all indicator definitions.
func (c *Catalog) Indicators() []IndicatorDef { return c.indicators }

// Indicator looks up an indicator definition by id.
func (c *Catalog) Indicator(id string) (IndicatorDef, bool) {
	for _, def := range c.indicators {
		if def.ID == id {
			return def, true
		}
	}
	return IndicatorDef{}, false
}

// Dungeons returns the full dungeon list in catalog order.
func (c *Catalog) Dungeons() []model.Dungeon { return c.dungeons }

// Dungeon looks up a dungeon by id.
func (c *Catalog) Dungeon(id string) (model.Dungeon, bool) {
	for _, d := range c.dungeons {
		if d.ID == id {
			return d, true
		}
	}
	return model.Dungeon{}, false
}

// DifficultyLabel returns the display label for a difficulty.
func (c *Catalog) DifficultyLabel(d model.Difficulty) string {
	return c.difficultyLabels[d]
}

// DifficultyColor returns the display color for a difficulty.
func (c *Catalog) DifficultyColor(d model.Difficulty) string {
	return c.difficultyColors[d]
}

// NewProfile creates a fresh profile for the given class, with indicator
// slots seeded from the catalog definitions.
func (c *Catalog) NewProfile(class model.PlayerClass) *model.Profile {
	slots := make([]model.IndicatorSlot, 0, len(c.indicators))
	for _, def := range c.indicators {
		slots = append(slots, model.IndicatorSlot{
			ID:            def.ID,
			RequiredLevel: def.RequiredLevel,
			Unlocked:      def.StartUnlocked,
			Equipped:      def.StartEquipped,
		})
	}
	return &model.Profile{
		PlayerClass:       class,
		Level:             1,
		XP:                0,
		XPToNextLevel:     100,
		Gold:              1000,
		Indicators:        slots,
		CompletedDungeons: []string{},
	}
}

// NormalizeProfile validates a loaded profile's indicator slots against the
// catalog: unknown ids are dropped, missing definitions are added locked, and
// required levels are refreshed from the catalog. Loosely-shaped records from
// older saves are brought back to the fixed shape this way.
func (c *Catalog) NormalizeProfile(p *model.Profile) {
	normalized := make([]model.IndicatorSlot, 0, len(c.indicators))
	for _, def := range c.indicators {
		if slot := p.Indicator(def.ID); slot != nil {
			normalized = append(normalized, model.IndicatorSlot{
				ID:            def.ID,
				RequiredLevel: def.RequiredLevel,
				Unlocked:      slot.Unlocked || def.StartUnlocked,
				Equipped:      slot.Equipped,
			})
		} else {
			normalized = append(normalized, model.IndicatorSlot{
				ID:            def.ID,
				RequiredLevel: def.RequiredLevel,
				Unlocked:      def.StartUnlocked,
				Equipped:      def.StartEquipped,
			})
		}
	}
	p.Indicators = normalized
}

// Validate checks catalog integrity: unique ids, known difficulties and
// positive rewards. Called once at startup.
func (c *Catalog) Validate() error {
	seen := map[string]bool{}
	for _, d := range c.dungeons {
		if seen[d.ID] {
			return fmt.Errorf("duplicate dungeon id %q", d.ID)
		}
		seen[d.ID] = true
		if !d.Difficulty.Valid() {
			return fmt.Errorf("dungeon %q: unknown difficulty %q", d.ID, d.Difficulty)
		}
		if d.XPReward <= 0 || d.GoldReward <= 0 {
			return fmt.Errorf("dungeon %q: rewards must be positive", d.ID)
		}
	}
	seen = map[string]bool{}
	for _, def := range c.indicators {
		if seen[def.ID] {
			return fmt.Errorf("duplicate indicator id %q", def.ID)
		}
		seen[def.ID] = true
		if def.RequiredLevel < 1 {
			return fmt.Errorf("indicator %q: required level must be >= 1", def.ID)
		}
	}
	return nil
}
