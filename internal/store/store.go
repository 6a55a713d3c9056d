// Package store persists per-session game state: the durable player profile,
// the single active playthrough and the transient onboarding quiz tally.
// Records are opaque JSON blobs keyed by session identifier, last-write-wins.
package store

import (
	"encoding/json"
	"log"
	"time"

	"TimeTrader/internal/model"
)

// Record kinds within a session.
const (
	kindProfile     = "profile"
	kindPlaythrough = "playthrough"
	kindQuiz        = "quiz"
)

// Store is the durable mapping from session identifier to game state.
// Load methods return (nil, nil) both for absent records and for records
// that fail to parse: a corrupted blob cannot be recovered, so the game
// fails open to a fresh start.
type Store interface {
	LoadProfile(sessionID string) (*model.Profile, error)
	SaveProfile(sessionID string, p *model.Profile) error

	LoadPlaythrough(sessionID string) (*model.Playthrough, error)
	SavePlaythrough(sessionID string, p *model.Playthrough) error
	DeletePlaythrough(sessionID string) error

	LoadQuiz(sessionID string) (*model.QuizState, error)
	SaveQuiz(sessionID string, s *model.QuizState) error
	DeleteQuiz(sessionID string) error

	// DeleteSession removes every record for the session (full reset).
	DeleteSession(sessionID string) error

	Close() error
}

// Pruner is implemented by stores that need explicit expiry of stale
// sessions. Stores with native TTLs (redis) don't.
type Pruner interface {
	PruneStale(olderThan time.Duration) (int, error)
}

// backend is the raw key-value surface each driver implements.
// get returns (nil, nil) for an absent record.
type backend interface {
	get(sessionID, kind string) ([]byte, error)
	put(sessionID, kind string, data []byte) error
	del(sessionID, kind string) error
	delAll(sessionID string) error
}

// typed adapts a backend into the Store surface, centralizing the JSON
// round-trip and the fail-open handling of malformed records.
type typed struct {
	kv backend
}

func (t typed) load(sessionID, kind string, v interface{}) (bool, error) {
	data, err := t.kv.get(sessionID, kind)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("[WARN] malformed %s record for session %s, treating as absent: %v", kind, sessionID, err)
		return false, nil
	}
	return true, nil
}

func (t typed) save(sessionID, kind string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return t.kv.put(sessionID, kind, data)
}

func (t typed) LoadProfile(sessionID string) (*model.Profile, error) {
	var p model.Profile
	ok, err := t.load(sessionID, kindProfile, &p)
	if !ok || err != nil {
		return nil, err
	}
	return &p, nil
}

func (t typed) SaveProfile(sessionID string, p *model.Profile) error {
	return t.save(sessionID, kindProfile, p)
}

func (t typed) LoadPlaythrough(sessionID string) (*model.Playthrough, error) {
	var p model.Playthrough
	ok, err := t.load(sessionID, kindPlaythrough, &p)
	if !ok || err != nil {
		return nil, err
	}
	return &p, nil
}

func (t typed) SavePlaythrough(sessionID string, p *model.Playthrough) error {
	return t.save(sessionID, kindPlaythrough, p)
}

func (t typed) DeletePlaythrough(sessionID string) error {
	return t.kv.del(sessionID, kindPlaythrough)
}

func (t typed) LoadQuiz(sessionID string) (*model.QuizState, error) {
	var s model.QuizState
	ok, err := t.load(sessionID, kindQuiz, &s)
	if !ok || err != nil {
		return nil, err
	}
	return &s, nil
}

func (t typed) SaveQuiz(sessionID string, s *model.QuizState) error {
	return t.save(sessionID, kindQuiz, s)
}

func (t typed) DeleteQuiz(sessionID string) error {
	return t.kv.del(sessionID, kindQuiz)
}

func (t typed) DeleteSession(sessionID string) error {
	return t.kv.delAll(sessionID)
}
