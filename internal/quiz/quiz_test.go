package quiz

import (
	"testing"

	"TimeTrader/internal/catalog"
	"TimeTrader/internal/model"
)

func TestAnswer_TalliesScores(t *testing.T) {
	cat := catalog.Default()
	state := model.NewQuizState()

	if err := Answer(cat, state, 0, 0); err != nil {
		t.Fatalf("answer failed: %v", err)
	}
	// First question, first option: hero 3, rogue 0, sage 1.
	if state.Scores[model.ClassHero] != 3 || state.Scores[model.ClassSage] != 1 {
		t.Errorf("unexpected tally: %+v", state.Scores)
	}
	if state.Current != 1 {
		t.Errorf("cursor should advance to 1, got %d", state.Current)
	}
}

func TestAnswer_RangeErrors(t *testing.T) {
	cat := catalog.Default()
	state := model.NewQuizState()

	if err := Answer(cat, state, -1, 0); err == nil {
		t.Error("expected error for negative question id")
	}
	if err := Answer(cat, state, len(cat.Questions()), 0); err == nil {
		t.Error("expected error for out-of-range question id")
	}
	if err := Answer(cat, state, 0, 99); err == nil {
		t.Error("expected error for out-of-range option")
	}
	if state.Current != 0 {
		t.Errorf("failed answers must not advance the cursor, got %d", state.Current)
	}
}

func TestDone(t *testing.T) {
	cat := catalog.Default()
	state := model.NewQuizState()

	for i := range cat.Questions() {
		if Done(cat, state) {
			t.Fatalf("done reported early at question %d", i)
		}
		if err := Answer(cat, state, i, 0); err != nil {
			t.Fatalf("answer %d failed: %v", i, err)
		}
	}
	if !Done(cat, state) {
		t.Error("expected done after the last answer")
	}
}

func TestDetermineClass(t *testing.T) {
	tests := []struct {
		name   string
		scores map[model.PlayerClass]int
		want   model.PlayerClass
	}{
		{"clear sage win", map[model.PlayerClass]int{model.ClassHero: 3, model.ClassRogue: 5, model.ClassSage: 12}, model.ClassSage},
		{"clear rogue win", map[model.PlayerClass]int{model.ClassHero: 3, model.ClassRogue: 9, model.ClassSage: 5}, model.ClassRogue},
		{"three-way tie goes to hero", map[model.PlayerClass]int{model.ClassHero: 5, model.ClassRogue: 5, model.ClassSage: 5}, model.ClassHero},
		{"rogue-sage tie goes to rogue", map[model.PlayerClass]int{model.ClassHero: 1, model.ClassRogue: 7, model.ClassSage: 7}, model.ClassRogue},
		{"empty tally goes to hero", map[model.PlayerClass]int{}, model.ClassHero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := &model.QuizState{Scores: tt.scores}
			if got := DetermineClass(state); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
