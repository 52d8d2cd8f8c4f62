package model

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("model: task name is required")

// Task is the canonical unit owned by the store. DueDate is milliseconds
// since epoch; Order is meaningful only among incomplete tasks sharing an
// identical DueDate value.
type Task struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	DueDate     int64    `json:"dueDate"`
	Completed   bool     `json:"completed"`
	Tags        []string `json:"tags"`
	Order       int      `json:"order"`
}

// TaskSection is a derived, labeled grouping of tasks. It is recomputed on
// every read and never persisted.
type TaskSection struct {
	Title string
	Tasks []Task
}

// NewTask builds a task with a fresh id and default completion/order state.
// The name must contain at least one non-whitespace character.
func NewTask(name, description string, dueDate int64) (Task, error) {
	if strings.TrimSpace(name) == "" {
		return Task{}, ErrEmptyName
	}
	return Task{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		DueDate:     dueDate,
		Completed:   false,
		Tags:        []string{},
		Order:       0,
	}, nil
}

// NormalizeTags collapses duplicates while keeping first-seen order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" || seen[trimmed] {
			continue
		}
		seen[trimmed] = true
		out = append(out, trimmed)
	}
	return out
}
