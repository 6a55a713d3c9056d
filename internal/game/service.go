package game

import (
	"fmt"
	"log"
	"time"

	"TimeTrader/internal/catalog"
	"TimeTrader/internal/indicator"
	"TimeTrader/internal/model"
	"TimeTrader/internal/progression"
	"TimeTrader/internal/quiz"
	"TimeTrader/internal/series"
	"TimeTrader/internal/store"
)

// Service is the request/response core of the game: it receives a session
// identifier and an action, applies one transition over the loaded state and
// persists the result. Per-session serialization of concurrent actions is
// the store's concern; the service itself holds no mutable state.
type Service struct {
	catalog      *catalog.Catalog
	provider     series.Provider
	store        store.Store
	startingCash float64
}

// NewService creates a Service over the given collaborators.
func NewService(cat *catalog.Catalog, provider series.Provider, st store.Store) *Service {
	return &Service{
		catalog:      cat,
		provider:     provider,
		store:        st,
		startingCash: StartingCash,
	}
}

// Catalog exposes the injected static tables for display consumers.
func (s *Service) Catalog() *catalog.Catalog { return s.catalog }

// Profile loads the session's profile, normalized against the catalog.
// Returns ErrNoProfile for sessions that haven't finished onboarding.
func (s *Service) Profile(sessionID string) (*model.Profile, error) {
	p, err := s.store.LoadProfile(sessionID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if p == nil {
		return nil, ErrNoProfile
	}
	s.catalog.NormalizeProfile(p)
	return p, nil
}

// AnswerQuiz tallies one diagnostic answer. When the last question is
// answered it assigns the class, creates the profile and clears the tally;
// the created profile is returned, nil otherwise.
func (s *Service) AnswerQuiz(sessionID string, questionID, optionIndex int) (*model.Profile, error) {
	state, err := s.store.LoadQuiz(sessionID)
	if err != nil {
		return nil, fmt.Errorf("load quiz state: %w", err)
	}
	if state == nil {
		state = model.NewQuizState()
	}

	if err := quiz.Answer(s.catalog, state, questionID, optionIndex); err != nil {
		return nil, err
	}

	if !quiz.Done(s.catalog, state) {
		if err := s.store.SaveQuiz(sessionID, state); err != nil {
			return nil, fmt.Errorf("save quiz state: %w", err)
		}
		return nil, nil
	}

	class := quiz.DetermineClass(state)
	profile := s.catalog.NewProfile(class)
	if err := s.store.SaveProfile(sessionID, profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	if err := s.store.DeleteQuiz(sessionID); err != nil {
		log.Printf("[WARN] clear quiz state for %s: %v", sessionID, err)
	}
	return profile, nil
}

// QuizProgress returns the current question index for the session.
func (s *Service) QuizProgress(sessionID string) (int, error) {
	state, err := s.store.LoadQuiz(sessionID)
	if err != nil {
		return 0, fmt.Errorf("load quiz state: %w", err)
	}
	if state == nil {
		return 0, nil
	}
	return state.Current, nil
}

// DungeonStatus is a catalog dungeon annotated with the session's progress.
type DungeonStatus struct {
	model.Dungeon
	Completed bool
	CanEnter  bool
}

// Dungeons returns the dungeon list with completion and entry status for the
// session's profile.
func (s *Service) Dungeons(sessionID string) ([]DungeonStatus, error) {
	profile, err := s.Profile(sessionID)
	if err != nil {
		return nil, err
	}
	list := make([]DungeonStatus, 0, len(s.catalog.Dungeons()))
	for _, d := range s.catalog.Dungeons() {
		list = append(list, DungeonStatus{
			Dungeon:   d,
			Completed: profile.HasCompleted(d.ID),
			CanEnter:  profile.Level >= d.RecommendedLevel,
		})
	}
	return list, nil
}

// EnterDungeon starts a playthrough for the session, discarding any run
// already active. The resolved price series is enriched with indicators
// before the run starts, so every decision day has its derived context.
func (s *Service) EnterDungeon(sessionID, dungeonID string) (*model.Playthrough, error) {
	if _, err := s.Profile(sessionID); err != nil {
		return nil, err
	}

	dungeon, ok := s.catalog.Dungeon(dungeonID)
	if !ok {
		return nil, ErrDungeonNotFound
	}

	start, err := time.Parse(model.DateLayout, dungeon.StartDate)
	if err != nil {
		return nil, fmt.Errorf("dungeon %s start date: %w", dungeonID, err)
	}
	end, err := time.Parse(model.DateLayout, dungeon.EndDate)
	if err != nil {
		return nil, fmt.Errorf("dungeon %s end date: %w", dungeonID, err)
	}

	bars, err := s.provider.Fetch(dungeon.Symbol, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch price series for %s: %w", dungeon.Symbol, err)
	}
	if len(bars) == 0 {
		return nil, ErrEmptyData
	}

	p := NewPlaythrough(dungeonID, indicator.Enrich(bars), s.startingCash)
	if err := s.store.SavePlaythrough(sessionID, p); err != nil {
		return nil, fmt.Errorf("save playthrough: %w", err)
	}
	return p, nil
}

// Playthrough loads the session's active playthrough.
func (s *Service) Playthrough(sessionID string) (*model.Playthrough, error) {
	p, err := s.store.LoadPlaythrough(sessionID)
	if err != nil {
		return nil, fmt.Errorf("load playthrough: %w", err)
	}
	if p == nil {
		return nil, ErrNoPlaythrough
	}
	return p, nil
}

// SubmitTrade executes a buy or sell at the current day's close. The
// returned record is nil for a no-effect action (buy without cash, sell
// without shares); the state is persisted either way.
func (s *Service) SubmitTrade(sessionID string, action model.TradeAction) (*model.Playthrough, *model.TradeRecord, error) {
	p, err := s.Playthrough(sessionID)
	if err != nil {
		return nil, nil, err
	}
	if p.Finished() {
		return nil, nil, ErrRunFinished
	}

	rec := Trade(p, action)
	if err := s.store.SavePlaythrough(sessionID, p); err != nil {
		return nil, nil, fmt.Errorf("save playthrough: %w", err)
	}
	return p, rec, nil
}

// NextDay advances the day cursor. The returned flag reports whether the run
// has reached the end of the series and must be settled.
func (s *Service) NextDay(sessionID string) (*model.Playthrough, bool, error) {
	p, err := s.Playthrough(sessionID)
	if err != nil {
		return nil, false, err
	}
	if p.Finished() {
		return p, true, nil
	}

	finished := AdvanceDay(p)
	if err := s.store.SavePlaythrough(sessionID, p); err != nil {
		return nil, false, fmt.Errorf("save playthrough: %w", err)
	}
	return p, finished, nil
}

// SettleResult is everything the result screen needs from a settlement.
type SettleResult struct {
	Outcome       model.PlaythroughOutcome
	Profile       *model.Profile
	LeveledUp     bool
	OldLevel      int
	NewIndicators []catalog.IndicatorDef
}

// SettleRun liquidates the session's run, folds the outcome into the
// profile and clears the playthrough.
func (s *Service) SettleRun(sessionID string) (*SettleResult, error) {
	profile, err := s.Profile(sessionID)
	if err != nil {
		return nil, err
	}
	p, err := s.Playthrough(sessionID)
	if err != nil {
		return nil, err
	}

	dungeon, ok := s.catalog.Dungeon(p.DungeonID)
	if !ok {
		return nil, ErrDungeonNotFound
	}

	outcome := Settle(p, dungeon, s.startingCash)
	applied := progression.Apply(profile, outcome)

	if err := s.store.SaveProfile(sessionID, profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	if err := s.store.DeletePlaythrough(sessionID); err != nil {
		log.Printf("[WARN] clear playthrough for %s: %v", sessionID, err)
	}

	res := &SettleResult{
		Outcome:   outcome,
		Profile:   profile,
		LeveledUp: applied.LeveledUp,
		OldLevel:  applied.OldLevel,
	}
	for _, id := range applied.NewlyUnlocked {
		if def, ok := s.catalog.Indicator(id); ok {
			res.NewIndicators = append(res.NewIndicators, def)
		}
	}
	return res, nil
}

// ToggleIndicator flips the equipped flag on an unlocked indicator. Locked
// or unknown indicators are a silent no-op, mirroring the trade no-ops.
func (s *Service) ToggleIndicator(sessionID, indicatorID string) (*model.Profile, error) {
	profile, err := s.Profile(sessionID)
	if err != nil {
		return nil, err
	}
	if slot := profile.Indicator(indicatorID); slot != nil && slot.Unlocked {
		slot.Equipped = !slot.Equipped
	}
	if err := s.store.SaveProfile(sessionID, profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return profile, nil
}

// ResetSession wipes every record for the session: profile, playthrough and
// quiz tally. The player starts over from onboarding.
func (s *Service) ResetSession(sessionID string) error {
	return s.store.DeleteSession(sessionID)
}
