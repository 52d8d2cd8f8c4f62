package update

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/dmpolo/organiserd/internal/assistant"
	"github.com/dmpolo/organiserd/internal/model"
	"github.com/dmpolo/organiserd/internal/scheduler"
)

type View string

const (
	ViewUpcoming  View = "Upcoming"
	ViewCompleted View = "Completed"
	ViewAssistant View = "Assistant"
	ViewDetails   View = "Details"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Upcoming  string
	Completed string
	Assistant string
	Quit      string
}

// TaskService is the slice of the canonical store the UI drives.
type TaskService interface {
	GetIncomplete(ctx context.Context) ([]model.Task, error)
	GetCompleted(ctx context.Context) ([]model.Task, error)
	GetByID(ctx context.Context, id string) (model.Task, error)
	Add(ctx context.Context, task model.Task) error
	Update(ctx context.Context, task model.Task) error
	Delete(ctx context.Context, id string) error
	ToggleCompletion(ctx context.Context, id string) error
	Reorder(ctx context.Context, orderedIDs []string, dueDate int64) error
}

type SyncService interface {
	SyncFromMirror(ctx context.Context) (int, error)
}

type ProposeService interface {
	ProposeTasks(ctx context.Context, freeText string) ([]assistant.Proposal, error)
}

type Services struct {
	Tasks    TaskService
	Sync     SyncService
	Proposer ProposeService
	// Refresh, when set, re-groups the list on due times and day rollovers.
	Refresh *scheduler.Engine
	// Now feeds the bucketing engine; tests pin it.
	Now func() time.Time
}

type Model struct {
	CurrentView View
	Upcoming    []model.TaskSection
	Completed   []model.TaskSection
	Detail      *model.Task
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error
	Proposals   []model.Task

	incomplete     []model.Task
	completed      []model.Task
	cursor         int
	quickAdd       textinput.Model
	quickAddActive bool
	editInput      textinput.Model
	editActive     bool
	editField      editField
	editDraft      model.Task
	tagFilter      string
	assistantInput textarea.Model
	assistantBusy  bool
	syncSpinner    spinner.Model
	syncing        bool
	services       Services
}

// taskRef is one visible line in the current tab's sectioned list.
type taskRef struct {
	Section string
	Task    model.Task
}

// editField is the task field the details edit line currently targets.
// Fields are edited in sequence: name, then description, then tags.
type editField int

const (
	editName editField = iota
	editDescription
	editTags
)

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type TasksLoadedMsg struct {
	Incomplete []model.Task
	Completed  []model.Task
}

type MutationDoneMsg struct {
	Info string
}

type SyncFinishedMsg struct {
	Applied int
}

type RefreshDueMsg struct {
	Event scheduler.RefreshEvent
}

type ProposalsReadyMsg struct {
	Tasks []model.Task
}

func NewModel(services Services) Model {
	if services.Now == nil {
		services.Now = time.Now
	}

	quickAdd := textinput.New()
	quickAdd.Placeholder = "task name, or /add name due:2006-01-02 tag:x"
	quickAdd.CharLimit = 200

	edit := textinput.New()
	edit.CharLimit = 500

	input := textarea.New()
	input.Placeholder = "call the plumber tomorrow, buy milk friday..."
	input.SetHeight(4)

	return Model{
		CurrentView: ViewUpcoming,
		Keys: GlobalKeyMap{
			Upcoming:  "1",
			Completed: "2",
			Assistant: "3",
			Quit:      "q",
		},
		quickAdd:       quickAdd,
		editInput:      edit,
		assistantInput: input,
		syncSpinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		services:       services,
	}
}

func (m Model) visibleRefs() []taskRef {
	var sections []model.TaskSection
	switch m.CurrentView {
	case ViewUpcoming:
		sections = m.Upcoming
	case ViewCompleted:
		sections = m.Completed
	default:
		return nil
	}
	refs := make([]taskRef, 0)
	for _, section := range sections {
		for _, task := range section.Tasks {
			refs = append(refs, taskRef{Section: section.Title, Task: task})
		}
	}
	return refs
}

func (m Model) selectedRef() (taskRef, bool) {
	refs := m.visibleRefs()
	if m.cursor < 0 || m.cursor >= len(refs) {
		return taskRef{}, false
	}
	return refs[m.cursor], true
}

func (m *Model) clampCursor() {
	refs := m.visibleRefs()
	if len(refs) == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= len(refs) {
		m.cursor = len(refs) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
