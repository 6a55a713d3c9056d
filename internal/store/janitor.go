package store

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Janitor periodically prunes sessions that have been idle longer than the
// configured max age, matching the lifetime of the session cookie the web
// layer hands out. Stores without a Pruner (redis expires keys itself) get a
// no-op janitor.
type Janitor struct {
	cron   *cron.Cron
	pruner Pruner
	maxAge time.Duration
}

// NewJanitor registers the prune task on the given cron spec.
func NewJanitor(st Store, spec string, maxAge time.Duration) (*Janitor, error) {
	j := &Janitor{
		cron:   cron.New(cron.WithSeconds()),
		maxAge: maxAge,
	}

	pruner, ok := st.(Pruner)
	if !ok {
		log.Println("[INFO] session store expires entries itself, janitor idle")
		return j, nil
	}
	j.pruner = pruner

	if _, err := j.cron.AddFunc(spec, j.run); err != nil {
		return nil, fmt.Errorf("register prune task: %w", err)
	}
	return j, nil
}

func (j *Janitor) run() {
	n, err := j.pruner.PruneStale(j.maxAge)
	if err != nil {
		log.Printf("[ERROR] prune stale sessions: %v", err)
		return
	}
	if n > 0 {
		log.Printf("[INFO] pruned %d stale session records", n)
	}
}

// Start starts the cron scheduler.
func (j *Janitor) Start() {
	j.cron.Start()
	log.Println("[INFO] session janitor started")
}

// Stop stops the cron scheduler gracefully.
func (j *Janitor) Stop() {
	j.cron.Stop()
	log.Println("[INFO] session janitor stopped")
}
