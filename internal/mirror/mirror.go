package mirror

import (
	"context"

	"github.com/dmpolo/organiserd/internal/model"
)

// record is the reduced projection of a task held by the external surface.
// Due dates travel as epoch seconds on this surface and are converted at
// the boundary; the canonical list keeps milliseconds.
type record struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	DueDate     int64    `json:"dueDate"`
	Completed   bool     `json:"completed"`
	Tags        []string `json:"tags"`
	Order       int      `json:"order"`
}

func toRecord(task model.Task) record {
	return record{
		ID:          task.ID,
		Name:        task.Name,
		Description: task.Description,
		DueDate:     task.DueDate / 1000,
		Completed:   task.Completed,
		Tags:        task.Tags,
		Order:       task.Order,
	}
}

func (r record) toTask() model.Task {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return model.Task{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		DueDate:     r.DueDate * 1000,
		Completed:   r.Completed,
		Tags:        tags,
		Order:       r.Order,
	}
}

// Surface is the transport to the external mirror store. Both calls may
// fail and are treated as recoverable by everything above them.
type Surface interface {
	PullTasks(ctx context.Context) ([]model.Task, error)
	PushTasks(ctx context.Context, tasks []model.Task) error
}
