// Package quiz implements the onboarding diagnostic: a short questionnaire
// whose per-class scores decide the player's trading archetype.
package quiz

import (
	"fmt"

	"TimeTrader/internal/catalog"
	"TimeTrader/internal/model"
)

// Answer tallies one answered question into the state and advances the
// cursor. The question id indexes the catalog question list; ordering is
// the caller's concern.
func Answer(cat *catalog.Catalog, s *model.QuizState, questionID, optionIndex int) error {
	questions := cat.Questions()
	if questionID < 0 || questionID >= len(questions) {
		return fmt.Errorf("question %d out of range", questionID)
	}
	q := questions[questionID]
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return fmt.Errorf("option %d out of range for question %d", optionIndex, questionID)
	}
	if s.Scores == nil {
		s.Scores = model.NewQuizState().Scores
	}
	for class, points := range q.Options[optionIndex].Scores {
		s.Scores[class] += points
	}
	s.Current++
	return nil
}

// Done reports whether every question has been answered.
func Done(cat *catalog.Catalog, s *model.QuizState) bool {
	return s.Current >= len(cat.Questions())
}

// DetermineClass picks the class with the highest score. Ties resolve in
// hero, rogue, sage order.
func DetermineClass(s *model.QuizState) model.PlayerClass {
	order := []model.PlayerClass{model.ClassHero, model.ClassRogue, model.ClassSage}
	best := order[0]
	for _, class := range order[1:] {
		if s.Scores[class] > s.Scores[best] {
			best = class
		}
	}
	return best
}
