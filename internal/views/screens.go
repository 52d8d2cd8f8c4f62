package views

import (
	"fmt"
	"strings"
	"time"
)

type TaskItemData struct {
	ID        string
	Name      string
	DueDate   time.Time
	Completed bool
	Tags      []string
	Selected  bool
}

type SectionData struct {
	Title string
	Items []TaskItemData
}

type TaskListPanelData struct {
	Sections []SectionData
	Empty    string
}

type DetailPanelData struct {
	ID           string
	Name         string
	Due          string
	Completed    bool
	Tags         []string
	MarkdownView string
}

type AssistantPanelData struct {
	InputView string
	Busy      bool
	Proposals []TaskItemData
}

func RenderTaskListPanel(data TaskListPanelData) string {
	if len(data.Sections) == 0 {
		return data.Empty
	}
	var b strings.Builder
	for i, section := range data.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionStyle.Render(section.Title) + "\n")
		for _, item := range section.Items {
			b.WriteString(renderTaskLine(item) + "\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderDetailPanel(data DetailPanelData) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render(data.Name) + "\n")
	b.WriteString(fmt.Sprintf("id: %s\n", data.ID))
	b.WriteString(fmt.Sprintf("due: %s\n", data.Due))
	state := "open"
	if data.Completed {
		state = "completed"
	}
	b.WriteString(fmt.Sprintf("state: %s\n", state))
	if len(data.Tags) > 0 {
		b.WriteString(fmt.Sprintf("tags: %s\n", strings.Join(data.Tags, ", ")))
	}
	if data.MarkdownView != "" {
		b.WriteString("\n" + data.MarkdownView + "\n")
	}
	b.WriteString("\nactions: [space]toggle [d]delete [esc]back")
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderAssistantPanel(data AssistantPanelData) string {
	var b strings.Builder
	b.WriteString("describe your tasks, [ctrl+s] to extract:\n")
	b.WriteString(data.InputView + "\n")
	if data.Busy {
		b.WriteString("\nextracting tasks...\n")
	}
	if len(data.Proposals) > 0 {
		b.WriteString("\n" + sectionStyle.Render("Proposed") + "\n")
		for _, item := range data.Proposals {
			b.WriteString(renderTaskLine(item) + "\n")
		}
		b.WriteString("\nactions: [y]accept all [n]discard")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func renderTaskLine(item TaskItemData) string {
	cursor := " "
	if item.Selected {
		cursor = ">"
	}
	box := "[ ]"
	if item.Completed {
		box = "[x]"
	}
	line := fmt.Sprintf("%s %s %s (%s)", cursor, box, item.Name, item.DueDate.Format("2 Jan"))
	if len(item.Tags) > 0 {
		line += " #" + strings.Join(item.Tags, " #")
	}
	switch {
	case item.Completed:
		return doneStyle.Render(line)
	case item.Selected:
		return selectedStyle.Render(line)
	default:
		return line
	}
}
