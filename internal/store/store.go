package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmpolo/organiserd/internal/model"
	"github.com/dmpolo/organiserd/internal/storage"
)

var ErrNotFound = errors.New("store: task not found")

// tasksKey is the single storage key the whole task list lives under.
const tasksKey = "tasks"

// Pusher receives the full canonical task list after every successful
// mutation. Push failures never roll back or surface; the blob store is
// the source of truth.
type Pusher interface {
	PushTasks(ctx context.Context, tasks []model.Task) error
}

// TaskStore is the authoritative CRUD surface over the persisted task
// list. Every mutation is a load-modify-save cycle against the same blob,
// so mutations are serialized behind mu; overlapping cycles would
// otherwise save from stale snapshots and lose writes.
type TaskStore struct {
	mu     sync.Mutex
	blobs  storage.BlobStore
	mirror Pusher
	log    *slog.Logger
}

func New(blobs storage.BlobStore, mirror Pusher, logger *slog.Logger) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskStore{blobs: blobs, mirror: mirror, log: logger}
}

// taskRecord is the persisted shape. Optional fields are pointers so that
// records written by older builds, or by an external surface that never
// learned about them, default instead of failing to parse.
type taskRecord struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	DueDate     int64     `json:"dueDate"`
	Completed   bool      `json:"completed"`
	Tags        *[]string `json:"tags,omitempty"`
	Order       *int      `json:"order,omitempty"`
}

func (s *TaskStore) load(ctx context.Context) ([]model.Task, error) {
	raw, err := s.blobs.Load(ctx, tasksKey)
	if err != nil {
		if errors.Is(err, storage.ErrNoBlob) {
			return []model.Task{}, nil
		}
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	if len(raw) == 0 {
		return []model.Task{}, nil
	}

	var records []taskRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse tasks: %w", err)
	}

	tasks := make([]model.Task, 0, len(records))
	for _, rec := range records {
		task := model.Task{
			ID:          rec.ID,
			Name:        rec.Name,
			Description: rec.Description,
			DueDate:     rec.DueDate,
			Completed:   rec.Completed,
			Tags:        []string{},
		}
		if rec.Tags != nil && *rec.Tags != nil {
			task.Tags = *rec.Tags
		}
		if rec.Order != nil {
			task.Order = *rec.Order
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (s *TaskStore) save(ctx context.Context, tasks []model.Task) error {
	records := make([]taskRecord, 0, len(tasks))
	for _, task := range tasks {
		records = append(records, taskRecord{
			ID:          task.ID,
			Name:        task.Name,
			Description: task.Description,
			DueDate:     task.DueDate,
			Completed:   task.Completed,
			Tags:        &task.Tags,
			Order:       &task.Order,
		})
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	if err := s.blobs.Save(ctx, tasksKey, payload); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}

func (s *TaskStore) pushMirror(ctx context.Context, tasks []model.Task) {
	if s.mirror == nil {
		return
	}
	if err := s.mirror.PushTasks(ctx, tasks); err != nil {
		s.log.Warn("mirror push failed", "err", err, "tasks", len(tasks))
	}
}

func (s *TaskStore) GetAll(ctx context.Context) ([]model.Task, error) {
	return s.load(ctx)
}

func (s *TaskStore) GetIncomplete(ctx context.Context) ([]model.Task, error) {
	return s.filtered(ctx, false)
}

func (s *TaskStore) GetCompleted(ctx context.Context) ([]model.Task, error) {
	return s.filtered(ctx, true)
}

func (s *TaskStore) filtered(ctx context.Context, completed bool) ([]model.Task, error) {
	tasks, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Completed == completed {
			out = append(out, task)
		}
	}
	return out, nil
}

func (s *TaskStore) GetByID(ctx context.Context, id string) (model.Task, error) {
	tasks, err := s.load(ctx)
	if err != nil {
		return model.Task{}, err
	}
	for _, task := range tasks {
		if task.ID == id {
			return task, nil
		}
	}
	return model.Task{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

func (s *TaskStore) Add(ctx context.Context, task model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.load(ctx)
	if err != nil {
		return err
	}
	tasks = append(tasks, task)
	if err := s.save(ctx, tasks); err != nil {
		return err
	}
	s.pushMirror(ctx, tasks)
	return nil
}

// Update replaces the stored task with the same id wholesale.
func (s *TaskStore) Update(ctx context.Context, task model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.load(ctx)
	if err != nil {
		return err
	}
	index := -1
	for i := range tasks {
		if tasks[i].ID == task.ID {
			index = i
			break
		}
	}
	if index == -1 {
		return fmt.Errorf("%w: %s", ErrNotFound, task.ID)
	}
	tasks[index] = task
	if err := s.save(ctx, tasks); err != nil {
		return err
	}
	s.pushMirror(ctx, tasks)
	return nil
}

// Delete removes the task if present. Deleting an absent id is not an
// error; the resulting list is persisted and pushed either way.
func (s *TaskStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.load(ctx)
	if err != nil {
		return err
	}
	kept := make([]model.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.ID != id {
			kept = append(kept, task)
		}
	}
	if err := s.save(ctx, kept); err != nil {
		return err
	}
	s.pushMirror(ctx, kept)
	return nil
}

func (s *TaskStore) ToggleCompletion(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.load(ctx)
	if err != nil {
		return err
	}
	index := -1
	for i := range tasks {
		if tasks[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	tasks[index].Completed = !tasks[index].Completed
	if err := s.save(ctx, tasks); err != nil {
		return err
	}
	s.pushMirror(ctx, tasks)
	return nil
}

// Reorder reissues the manual order key for the tasks named by orderedIDs.
// Group membership is exact DueDate equality, the same comparison used at
// persistence time; callers must pass ids whose tasks all share dueDate.
// Tasks with the same dueDate that are not referenced keep their previous
// order values.
func (s *TaskStore) Reorder(ctx context.Context, orderedIDs []string, dueDate int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.load(ctx)
	if err != nil {
		return err
	}

	group := make([]model.Task, 0, len(orderedIDs))
	for _, task := range tasks {
		if task.DueDate == dueDate {
			group = append(group, task)
		}
	}

	reordered, err := model.Reorder(group, orderedIDs)
	if err != nil {
		return err
	}

	byID := make(map[string]model.Task, len(reordered))
	for _, task := range reordered {
		byID[task.ID] = task
	}
	for i := range tasks {
		if updated, ok := byID[tasks[i].ID]; ok {
			tasks[i] = updated
		}
	}

	if err := s.save(ctx, tasks); err != nil {
		return err
	}
	s.pushMirror(ctx, tasks)
	return nil
}
