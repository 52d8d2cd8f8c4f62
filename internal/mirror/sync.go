package mirror

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmpolo/organiserd/internal/model"
)

type State string

const (
	StateIdle     State = "Idle"
	StatePulling  State = "Pulling"
	StateDiffing  State = "Diffing"
	StateApplying State = "Applying"
	StatePushing  State = "Pushing"
)

// TaskSource is the slice of the canonical store the syncer needs.
type TaskSource interface {
	GetAll(ctx context.Context) ([]model.Task, error)
	ToggleCompletion(ctx context.Context, id string) error
}

// Syncer reconciles the canonical store with the external mirror surface.
// The mirror is allowed to flip Completed from false to true and nothing
// else; every other field mismatch is ignored, and mirror records with no
// canonical counterpart are ignored too (the surface cannot create tasks).
//
// Passes are serialized: a trigger arriving while a pass is in flight
// queues behind it rather than interleaving reads and writes on the same
// blob.
type Syncer struct {
	mu      sync.Mutex
	stateMu sync.Mutex
	state   State

	store   TaskSource
	surface Surface
	log     *slog.Logger
}

func NewSyncer(store TaskSource, surface Surface, logger *slog.Logger) *Syncer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Syncer{store: store, surface: surface, log: logger, state: StateIdle}
}

func (s *Syncer) State() State {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	return s.state
}

func (s *Syncer) setState(state State) {
	s.stateMu.Lock()
	s.state = state
	s.stateMu.Unlock()
}

// SyncFromMirror runs one reconciliation pass and reports how many
// completions it applied. A failed mirror read degrades to "nothing to
// reconcile"; only canonical-store failures surface to the caller. Either
// way the syncer ends the pass idle.
func (s *Syncer) SyncFromMirror(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.setState(StateIdle)

	s.setState(StatePulling)
	canonical, err := s.store.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("read canonical tasks: %w", err)
	}
	mirrored, err := s.surface.PullTasks(ctx)
	if err != nil {
		s.log.Warn("mirror pull failed, skipping sync", "err", err)
		return 0, nil
	}

	s.setState(StateDiffing)
	byID := make(map[string]model.Task, len(canonical))
	for _, task := range canonical {
		byID[task.ID] = task
	}
	pending := make([]string, 0)
	for _, mirrorTask := range mirrored {
		task, ok := byID[mirrorTask.ID]
		if !ok {
			continue
		}
		if !task.Completed && mirrorTask.Completed {
			pending = append(pending, mirrorTask.ID)
		}
	}
	if len(pending) == 0 {
		return 0, nil
	}

	s.setState(StateApplying)
	applied := 0
	for _, id := range pending {
		if err := s.store.ToggleCompletion(ctx, id); err != nil {
			return applied, fmt.Errorf("apply mirror completion %s: %w", id, err)
		}
		applied++
	}

	// Each ToggleCompletion already pushed the updated list back out, so
	// both surfaces have converged by the time we get here.
	s.setState(StatePushing)
	s.log.Debug("applied mirror completions", "count", applied)
	return applied, nil
}
