package mirror

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dmpolo/organiserd/internal/model"
)

var ErrUnavailable = errors.New("mirror: surface unavailable")

// FileSurface keeps the mirror copy in one JSON file shared with the
// external surface. Pulling a missing or empty file yields an empty list;
// the surface may simply never have been written.
type FileSurface struct {
	mu   sync.Mutex
	path string
}

func NewFileSurface(path string) (*FileSurface, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("mirror: empty surface path")
	}
	return &FileSurface{path: path}, nil
}

func (f *FileSurface) PullTasks(_ context.Context) ([]model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Task{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if strings.TrimSpace(string(raw)) == "" {
		return []model.Task{}, nil
	}

	var records []record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: parse mirror file: %v", ErrUnavailable, err)
	}

	tasks := make([]model.Task, 0, len(records))
	for _, rec := range records {
		tasks = append(tasks, rec.toTask())
	}
	return tasks, nil
}

func (f *FileSurface) PushTasks(_ context.Context, tasks []model.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	records := make([]record, 0, len(tasks))
	for _, task := range tasks {
		records = append(records, toRecord(task))
	}
	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode mirror tasks: %w", err)
	}

	dir := filepath.Dir(f.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
