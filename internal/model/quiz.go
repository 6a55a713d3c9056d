package model

// QuizState is the transient diagnostic-quiz tally for a session. It exists
// only between onboarding start and class assignment.
type QuizState struct {
	Scores  map[PlayerClass]int `json:"scores"`
	Current int                 `json:"current_question"`
}

// NewQuizState returns a zeroed tally.
func NewQuizState() *QuizState {
	return &QuizState{
		Scores: map[PlayerClass]int{
			ClassHero:  0,
			ClassRogue: 0,
			ClassSage:  0,
		},
	}
}
