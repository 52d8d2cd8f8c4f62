package update

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmpolo/organiserd/internal/assistant"
	"github.com/dmpolo/organiserd/internal/commands"
	"github.com/dmpolo/organiserd/internal/model"
	"github.com/dmpolo/organiserd/internal/scheduler"
	"github.com/dmpolo/organiserd/internal/views"
)

const opTimeout = 5 * time.Second

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadTasksCmd(), m.syncSpinner.Tick}
	if cmd := m.waitForRefreshCmd(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m Model) waitForRefreshCmd() tea.Cmd {
	engine := m.services.Refresh
	if engine == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-engine.C()
		if !ok {
			return nil
		}
		return RefreshDueMsg{Event: ev}
	}
}

// armRefreshTriggers schedules the next wakeups the grouped list depends
// on: the upcoming local midnight and the nearest future due time.
func (m Model) armRefreshTriggers(incomplete []model.Task) {
	engine := m.services.Refresh
	if engine == nil {
		return
	}
	now := m.services.Now()
	_ = engine.Schedule(scheduler.DayRolloverEvent(now))

	var nextID string
	var nextDue time.Time
	for _, task := range incomplete {
		due := time.UnixMilli(task.DueDate).In(now.Location())
		if !due.After(now) {
			continue
		}
		if nextID == "" || due.Before(nextDue) {
			nextID = task.ID
			nextDue = due
		}
	}
	if nextID != "" {
		_ = engine.Schedule(scheduler.TaskDueEvent(nextID, nextDue))
	}
}

func (m Model) loadTasksCmd() tea.Cmd {
	svc := m.services
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		incomplete, err := svc.Tasks.GetIncomplete(ctx)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		completed, err := svc.Tasks.GetCompleted(ctx)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		return TasksLoadedMsg{Incomplete: incomplete, Completed: completed}
	}
}

func (m Model) toggleCmd(id string) tea.Cmd {
	svc := m.services
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		if err := svc.Tasks.ToggleCompletion(ctx, id); err != nil {
			return AppErrorMsg{Err: err}
		}
		return MutationDoneMsg{Info: "task updated"}
	}
}

func (m Model) deleteCmd(id string) tea.Cmd {
	svc := m.services
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		if err := svc.Tasks.Delete(ctx, id); err != nil {
			return AppErrorMsg{Err: err}
		}
		return MutationDoneMsg{Info: "task deleted"}
	}
}

func (m Model) addCmd(task model.Task) tea.Cmd {
	svc := m.services
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		if err := svc.Tasks.Add(ctx, task); err != nil {
			return AppErrorMsg{Err: err}
		}
		return MutationDoneMsg{Info: fmt.Sprintf("added %q", task.Name)}
	}
}

func (m Model) updateCmd(task model.Task) tea.Cmd {
	svc := m.services
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		if err := svc.Tasks.Update(ctx, task); err != nil {
			return AppErrorMsg{Err: err}
		}
		return MutationDoneMsg{Info: fmt.Sprintf("updated %q", task.Name)}
	}
}

func (m Model) reorderCmd(orderedIDs []string, dueDate int64) tea.Cmd {
	svc := m.services
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		if err := svc.Tasks.Reorder(ctx, orderedIDs, dueDate); err != nil {
			return AppErrorMsg{Err: err}
		}
		return MutationDoneMsg{Info: "order saved"}
	}
}

func (m Model) syncCmd() tea.Cmd {
	svc := m.services
	return func() tea.Msg {
		if svc.Sync == nil {
			return AppErrorMsg{Err: fmt.Errorf("update: sync is not configured")}
		}
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		applied, err := svc.Sync.SyncFromMirror(ctx)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		return SyncFinishedMsg{Applied: applied}
	}
}

func (m Model) proposeCmd(freeText string) tea.Cmd {
	svc := m.services
	now := svc.Now()
	return func() tea.Msg {
		if svc.Proposer == nil {
			return AppErrorMsg{Err: fmt.Errorf("update: assistant is not configured")}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
		defer cancel()
		proposals, err := svc.Proposer.ProposeTasks(ctx, freeText)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		return ProposalsReadyMsg{Tasks: assistant.MapProposals(proposals, now)}
	}
}

func (m Model) acceptProposalsCmd(tasks []model.Task) tea.Cmd {
	svc := m.services
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		for _, task := range tasks {
			if err := svc.Tasks.Add(ctx, task); err != nil {
				return AppErrorMsg{Err: err}
			}
		}
		return MutationDoneMsg{Info: fmt.Sprintf("added %d tasks", len(tasks))}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TasksLoadedMsg:
		m.incomplete = msg.Incomplete
		m.completed = msg.Completed
		m.regroup()
		m.clampCursor()
		if m.Detail != nil {
			m.refreshDetail(msg.Incomplete, msg.Completed)
		}
		m.armRefreshTriggers(msg.Incomplete)
		return m, nil

	case RefreshDueMsg:
		return m, tea.Batch(m.loadTasksCmd(), m.waitForRefreshCmd())

	case MutationDoneMsg:
		m.Status = StatusBar{Text: msg.Info}
		m.LastError = nil
		return m, m.loadTasksCmd()

	case SyncFinishedMsg:
		m.syncing = false
		m.Status = StatusBar{Text: fmt.Sprintf("sync applied %d changes", msg.Applied)}
		return m, m.loadTasksCmd()

	case ProposalsReadyMsg:
		m.assistantBusy = false
		m.Proposals = msg.Tasks
		m.Status = StatusBar{Text: fmt.Sprintf("%d tasks proposed, [y] accept [n] discard", len(msg.Tasks))}
		return m, nil

	case AppErrorMsg:
		m.syncing = false
		m.assistantBusy = false
		m.LastError = msg.Err
		m.Status = StatusBar{Text: "error: " + msg.Err.Error(), IsError: true}
		return m, nil

	case SetStatusMsg:
		m.Status = StatusBar{Text: msg.Text, IsError: msg.IsError}
		return m, nil

	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil

	case SwitchViewMsg:
		m.CurrentView = msg.View
		m.cursor = 0
		return m, nil

	default:
		var cmd tea.Cmd
		m.syncSpinner, cmd = m.syncSpinner.Update(msg)
		return m, cmd
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.quickAddActive {
		return m.handleQuickAddKey(msg)
	}
	if m.editActive {
		return m.handleEditKey(msg)
	}
	if m.CurrentView == ViewAssistant {
		return m.handleAssistantKey(msg)
	}

	switch msg.String() {
	case m.Keys.Quit, "ctrl+c":
		m.Quitting = true
		return m, tea.Quit
	case m.Keys.Upcoming:
		m.CurrentView = ViewUpcoming
		m.cursor = 0
		m.Detail = nil
		return m, nil
	case m.Keys.Completed:
		m.CurrentView = ViewCompleted
		m.cursor = 0
		m.Detail = nil
		return m, nil
	case m.Keys.Assistant:
		m.CurrentView = ViewAssistant
		m.assistantInput.Focus()
		return m, nil
	case "esc":
		if m.CurrentView == ViewDetails {
			m.CurrentView = ViewUpcoming
			m.Detail = nil
		}
		return m, nil
	case "j", "down":
		m.cursor++
		m.clampCursor()
		return m, nil
	case "k", "up":
		m.cursor--
		m.clampCursor()
		return m, nil
	case "J":
		return m.moveSelected(1)
	case "K":
		return m.moveSelected(-1)
	case "enter":
		if ref, ok := m.selectedRef(); ok {
			task := ref.Task
			m.Detail = &task
			m.CurrentView = ViewDetails
		}
		return m, nil
	case " ", "x":
		if ref, ok := m.selectedRef(); ok {
			return m, m.toggleCmd(ref.Task.ID)
		}
		if m.CurrentView == ViewDetails && m.Detail != nil {
			return m, m.toggleCmd(m.Detail.ID)
		}
		return m, nil
	case "d":
		if ref, ok := m.selectedRef(); ok {
			return m, m.deleteCmd(ref.Task.ID)
		}
		if m.CurrentView == ViewDetails && m.Detail != nil {
			id := m.Detail.ID
			m.Detail = nil
			m.CurrentView = ViewUpcoming
			return m, m.deleteCmd(id)
		}
		return m, nil
	case "e":
		if m.CurrentView == ViewDetails && m.Detail != nil {
			m.editActive = true
			m.editField = editName
			m.editDraft = *m.Detail
			m.editInput.SetValue(m.editDraft.Name)
			m.editInput.Focus()
		}
		return m, nil
	case "f":
		if m.CurrentView == ViewUpcoming || m.CurrentView == ViewCompleted {
			m.cycleTagFilter()
		}
		return m, nil
	case "s":
		m.syncing = true
		m.Status = StatusBar{Text: "syncing..."}
		return m, m.syncCmd()
	case "a", "/":
		m.quickAddActive = true
		m.quickAdd.SetValue("")
		m.quickAdd.Focus()
		return m, nil
	case "r":
		return m, m.loadTasksCmd()
	}
	return m, nil
}

func (m Model) handleQuickAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.quickAddActive = false
		m.quickAdd.Blur()
		return m, nil
	case "enter":
		text := m.quickAdd.Value()
		m.quickAddActive = false
		m.quickAdd.Blur()
		return m.runCommand(text)
	}
	var cmd tea.Cmd
	m.quickAdd, cmd = m.quickAdd.Update(msg)
	return m, cmd
}

// handleEditKey walks the details edit line through name, description and
// tags, then persists the draft as a wholesale replacement.
func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editActive = false
		m.editInput.Blur()
		m.Status = StatusBar{Text: "edit cancelled"}
		return m, nil
	case "enter":
		value := m.editInput.Value()
		switch m.editField {
		case editName:
			name := strings.TrimSpace(value)
			if name == "" {
				m.Status = StatusBar{Text: "error: task name is required", IsError: true}
				return m, nil
			}
			m.editDraft.Name = name
			m.editField = editDescription
			m.editInput.SetValue(m.editDraft.Description)
			return m, nil
		case editDescription:
			m.editDraft.Description = strings.TrimSpace(value)
			m.editField = editTags
			m.editInput.SetValue(strings.Join(m.editDraft.Tags, ", "))
			return m, nil
		case editTags:
			m.editDraft.Tags = model.NormalizeTags(splitTags(value))
			m.editActive = false
			m.editInput.Blur()
			draft := m.editDraft
			m.Detail = &draft
			return m, m.updateCmd(draft)
		}
	}
	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

func splitTags(value string) []string {
	parts := strings.Split(value, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func (m Model) handleAssistantKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.Quitting = true
		return m, tea.Quit
	case "esc":
		m.CurrentView = ViewUpcoming
		m.assistantInput.Blur()
		m.Proposals = nil
		return m, nil
	case "ctrl+s":
		text := strings.TrimSpace(m.assistantInput.Value())
		if text == "" {
			m.Status = StatusBar{Text: "error: nothing to extract", IsError: true}
			return m, nil
		}
		m.assistantBusy = true
		m.Status = StatusBar{Text: "asking assistant..."}
		return m, m.proposeCmd(text)
	case "y":
		if len(m.Proposals) > 0 {
			tasks := m.Proposals
			m.Proposals = nil
			m.assistantInput.Reset()
			m.CurrentView = ViewUpcoming
			return m, m.acceptProposalsCmd(tasks)
		}
	case "n":
		if len(m.Proposals) > 0 {
			m.Proposals = nil
			m.Status = StatusBar{Text: "proposals discarded"}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.assistantInput, cmd = m.assistantInput.Update(msg)
	return m, cmd
}

// moveSelected swaps the selected task with its neighbour inside the same
// due-date group and persists the resulting order.
func (m Model) moveSelected(delta int) (tea.Model, tea.Cmd) {
	if m.CurrentView != ViewUpcoming {
		return m, nil
	}
	ref, ok := m.selectedRef()
	if !ok {
		return m, nil
	}

	group := make([]model.Task, 0)
	for _, section := range m.Upcoming {
		for _, task := range section.Tasks {
			if task.DueDate == ref.Task.DueDate {
				group = append(group, task)
			}
		}
	}
	sort.SliceStable(group, func(i, j int) bool { return group[i].Order < group[j].Order })

	pos := -1
	for i, task := range group {
		if task.ID == ref.Task.ID {
			pos = i
			break
		}
	}
	target := pos + delta
	if pos < 0 || target < 0 || target >= len(group) {
		return m, nil
	}
	group[pos], group[target] = group[target], group[pos]

	orderedIDs := make([]string, len(group))
	for i, task := range group {
		orderedIDs[i] = task.ID
	}
	m.cursor += delta
	return m, m.reorderCmd(orderedIDs, ref.Task.DueDate)
}

// runCommand routes quick-add input through the command parser. A bare line
// that is not a command is treated as "/add <line>".
func (m Model) runCommand(text string) (tea.Model, tea.Cmd) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return m, nil
	}
	first := strings.ToLower(strings.Fields(trimmed)[0])
	known := map[string]bool{
		"/add": true, "add": true,
		"/done": true, "done": true,
		"/delete": true, "delete": true,
		"/show": true, "show": true,
		"/sync": true, "sync": true,
	}
	if !known[first] {
		trimmed = "/add " + trimmed
	}

	cmd, err := commands.Parse(trimmed)
	if err != nil {
		m.Status = StatusBar{Text: "error: " + err.Error(), IsError: true}
		m.LastError = err
		return m, nil
	}

	var pending tea.Cmd
	handlers := commands.Handlers{
		Add: func(args commands.AddArgs) (commands.Result, error) {
			task, err := m.buildTask(args)
			if err != nil {
				return commands.Result{}, err
			}
			pending = m.addCmd(task)
			return commands.Result{Message: "adding " + args.Name}, nil
		},
		Done: func(args commands.DoneArgs) (commands.Result, error) {
			id, err := m.resolveTarget(args.Target)
			if err != nil {
				return commands.Result{}, err
			}
			pending = m.toggleCmd(id)
			return commands.Result{Message: "toggling " + args.Target}, nil
		},
		Delete: func(args commands.DeleteArgs) (commands.Result, error) {
			id, err := m.resolveTarget(args.Target)
			if err != nil {
				return commands.Result{}, err
			}
			pending = m.deleteCmd(id)
			return commands.Result{Message: "deleting " + args.Target}, nil
		},
		Show: func(args commands.ShowArgs) (commands.Result, error) {
			switch args.Subject {
			case "completed":
				pending = func() tea.Msg { return SwitchViewMsg{View: ViewCompleted} }
			default:
				pending = func() tea.Msg { return SwitchViewMsg{View: ViewUpcoming} }
			}
			return commands.Result{Message: "showing " + args.Subject}, nil
		},
		Sync: func() (commands.Result, error) {
			pending = m.syncCmd()
			return commands.Result{Message: "sync started"}, nil
		},
	}

	result, err := commands.Execute(cmd, handlers)
	if err != nil {
		m.Status = StatusBar{Text: "error: " + err.Error(), IsError: true}
		m.LastError = err
		return m, nil
	}
	m.Status = StatusBar{Text: result.Message}
	m.LastError = nil
	return m, pending
}

func (m Model) buildTask(args commands.AddArgs) (model.Task, error) {
	due := m.services.Now().UnixMilli()
	if args.Due != "" {
		parsed, err := time.ParseInLocation("2006-01-02", args.Due, m.services.Now().Location())
		if err != nil {
			return model.Task{}, &commands.CommandError{
				Code:    commands.ErrCodeInvalidArgument,
				Message: fmt.Sprintf("bad due date %q, want YYYY-MM-DD", args.Due),
			}
		}
		due = parsed.UnixMilli()
	}
	task, err := model.NewTask(args.Name, "", due)
	if err != nil {
		return model.Task{}, err
	}
	task.Tags = model.NormalizeTags(args.Tags)
	return task, nil
}

// resolveTarget matches an id prefix or an exact case-insensitive name
// against the visible tasks.
func (m Model) resolveTarget(target string) (string, error) {
	all := make([]taskRef, 0)
	for _, section := range m.Upcoming {
		for _, task := range section.Tasks {
			all = append(all, taskRef{Task: task})
		}
	}
	for _, section := range m.Completed {
		for _, task := range section.Tasks {
			all = append(all, taskRef{Task: task})
		}
	}
	lower := strings.ToLower(target)
	for _, ref := range all {
		if strings.HasPrefix(ref.Task.ID, target) || strings.ToLower(ref.Task.Name) == lower {
			return ref.Task.ID, nil
		}
	}
	return "", &commands.CommandError{
		Code:    commands.ErrCodeInvalidArgument,
		Message: fmt.Sprintf("no task matches %q", target),
	}
}

func (m *Model) refreshDetail(incomplete, completed []model.Task) {
	for _, task := range append(incomplete, completed...) {
		if task.ID == m.Detail.ID {
			copied := task
			m.Detail = &copied
			return
		}
	}
	m.Detail = nil
	if m.CurrentView == ViewDetails {
		m.CurrentView = ViewUpcoming
	}
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	data := views.AppData{
		Header:     m.headerLine(),
		StatusLine: m.statusLine(),
		Footer:     m.footerLine(),
	}

	switch m.CurrentView {
	case ViewUpcoming:
		data.Body = views.RenderTaskListPanel(m.listData(m.Upcoming))
	case ViewCompleted:
		data.Body = views.RenderTaskListPanel(m.listData(m.Completed))
	case ViewDetails:
		if m.Detail != nil {
			data.Body = views.RenderDetailPanel(views.DetailPanelData{
				ID:           m.Detail.ID,
				Name:         m.Detail.Name,
				Due:          time.UnixMilli(m.Detail.DueDate).Format("2 Jan 2006"),
				Completed:    m.Detail.Completed,
				Tags:         m.Detail.Tags,
				MarkdownView: views.RenderMarkdown(m.Detail.Description),
			})
		}
	case ViewAssistant:
		data.Body = views.RenderAssistantPanel(views.AssistantPanelData{
			InputView: m.assistantInput.View(),
			Busy:      m.assistantBusy,
			Proposals: proposalItems(m.Proposals),
		})
	}

	if m.quickAddActive {
		data.Body += "\n" + m.quickAdd.View()
	}
	if m.editActive {
		data.Body += "\n" + m.editPrompt() + " " + m.editInput.View()
	}
	return views.RenderApp(data)
}

// regroup rebuilds both tabs' sections from the raw lists, applying the
// active tag filter first so the buckets only see matching tasks.
func (m *Model) regroup() {
	now := m.services.Now()
	m.Upcoming = model.GroupUpcoming(m.filterByTag(m.incomplete), now)
	m.Completed = model.GroupCompleted(m.filterByTag(m.completed), now)
}

func (m Model) filterByTag(tasks []model.Task) []model.Task {
	if m.tagFilter == "" {
		return tasks
	}
	out := make([]model.Task, 0, len(tasks))
	for _, task := range tasks {
		for _, tag := range task.Tags {
			if tag == m.tagFilter {
				out = append(out, task)
				break
			}
		}
	}
	return out
}

// collectTags gathers the distinct tags across both tabs, sorted, so the
// filter cycles in a stable order.
func (m Model) collectTags() []string {
	seen := make(map[string]bool)
	tags := make([]string, 0)
	for _, task := range append(append([]model.Task{}, m.incomplete...), m.completed...) {
		for _, tag := range task.Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	sort.Strings(tags)
	return tags
}

// cycleTagFilter advances the filter through every collected tag and back
// to unfiltered.
func (m *Model) cycleTagFilter() {
	tags := m.collectTags()
	if len(tags) == 0 {
		m.tagFilter = ""
		m.Status = StatusBar{Text: "no tags to filter by"}
		m.regroup()
		return
	}

	next := ""
	if m.tagFilter == "" {
		next = tags[0]
	} else {
		for i, tag := range tags {
			if tag == m.tagFilter && i+1 < len(tags) {
				next = tags[i+1]
				break
			}
		}
	}
	m.tagFilter = next
	if next == "" {
		m.Status = StatusBar{Text: "filter cleared"}
	} else {
		m.Status = StatusBar{Text: "filtering by #" + next}
	}
	m.regroup()
	m.cursor = 0
}

func (m Model) listData(sections []model.TaskSection) views.TaskListPanelData {
	selected, _ := m.selectedRef()
	data := views.TaskListPanelData{Empty: "nothing here yet"}
	for _, section := range sections {
		sd := views.SectionData{Title: section.Title}
		for _, task := range section.Tasks {
			sd.Items = append(sd.Items, views.TaskItemData{
				ID:        task.ID,
				Name:      task.Name,
				DueDate:   time.UnixMilli(task.DueDate),
				Completed: task.Completed,
				Tags:      task.Tags,
				Selected:  task.ID == selected.Task.ID,
			})
		}
		data.Sections = append(data.Sections, sd)
	}
	return data
}

func (m Model) headerLine() string {
	tabs := []string{"[1] Upcoming", "[2] Completed", "[3] Assistant"}
	switch m.CurrentView {
	case ViewUpcoming:
		tabs[0] = "(1) Upcoming"
	case ViewCompleted:
		tabs[1] = "(2) Completed"
	case ViewAssistant:
		tabs[2] = "(3) Assistant"
	}
	line := "organiserd  " + strings.Join(tabs, "  ")
	if m.tagFilter != "" {
		line += "  #" + m.tagFilter
	}
	return line
}

func (m Model) editPrompt() string {
	switch m.editField {
	case editName:
		return "name:"
	case editDescription:
		return "description:"
	default:
		return "tags:"
	}
}

func (m Model) statusLine() string {
	if m.syncing {
		return m.syncSpinner.View() + " syncing..."
	}
	return m.Status.Text
}

func (m Model) footerLine() string {
	switch m.CurrentView {
	case ViewAssistant:
		return "[ctrl+s] extract  [y] accept  [n] discard  [esc] back"
	case ViewDetails:
		return "[e] edit  [x] toggle  [d] delete  [esc] back  [q] quit"
	default:
		return "[j/k] move  [J/K] reorder  [x] done  [d] delete  [a] add  [f] filter  [s] sync  [q] quit"
	}
}

func proposalItems(tasks []model.Task) []views.TaskItemData {
	items := make([]views.TaskItemData, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, views.TaskItemData{
			ID:      task.ID,
			Name:    task.Name,
			DueDate: time.UnixMilli(task.DueDate),
			Tags:    task.Tags,
		})
	}
	return items
}
