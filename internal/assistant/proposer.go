package assistant

import (
	"context"
	"strings"
	"time"

	"github.com/dmpolo/organiserd/internal/model"
	"github.com/google/uuid"
)

// Proposal is one candidate task extracted from free text. DueDate is an
// ISO 8601 date ("2006-01-02"); a full RFC 3339 timestamp is also accepted.
type Proposal struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
}

// Proposer turns free text into candidate tasks. Implemented by the OpenAI
// client here and by whatever the tests inject.
type Proposer interface {
	ProposeTasks(ctx context.Context, freeText string) ([]Proposal, error)
}

// MapProposals converts proposals into valid task records: fresh id,
// incomplete, name defaulted when the model returned none. Dates resolve
// to local midnight in now's location; an unparsable date falls back to
// now so the task still lands somewhere visible.
func MapProposals(proposals []Proposal, now time.Time) []model.Task {
	tasks := make([]model.Task, 0, len(proposals))
	for _, p := range proposals {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			name = "Untitled Task"
		}
		tasks = append(tasks, model.Task{
			ID:          uuid.NewString(),
			Name:        name,
			Description: p.Description,
			DueDate:     parseDueDate(p.DueDate, now),
			Completed:   false,
			Tags:        []string{},
			Order:       0,
		})
	}
	return tasks
}

func parseDueDate(value string, now time.Time) int64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return now.UnixMilli()
	}
	if t, err := time.ParseInLocation("2006-01-02", value, now.Location()); err == nil {
		return t.UnixMilli()
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UnixMilli()
	}
	return now.UnixMilli()
}
