package model

import (
	"errors"
	"fmt"
)

var ErrUnknownTaskID = errors.New("model: unknown task id")

// Reorder reissues the manual order key for the tasks named by orderedIDs,
// assigning a dense 1-based sequence in the given order. Only the
// referenced tasks are returned; callers merge them back over the rest of
// the list. An id missing from tasks is a hard error and yields no partial
// result, since it means the caller's snapshot raced a concurrent change.
func Reorder(tasks []Task, orderedIDs []string) ([]Task, error) {
	byID := make(map[string]Task, len(tasks))
	for _, task := range tasks {
		byID[task.ID] = task
	}

	out := make([]Task, 0, len(orderedIDs))
	for i, id := range orderedIDs {
		task, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTaskID, id)
		}
		task.Order = i + 1
		out = append(out, task)
	}
	return out, nil
}
