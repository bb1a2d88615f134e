package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/tui/theme"
)

// ColumnProps describes one status column
type ColumnProps struct {
	Status models.Status
	Tasks  []*models.Task
	// Username resolves a task's user ID for its card
	Username func(userID int) string
	// Selected marks the column holding the cursor
	Selected bool
	// SelectedTaskIdx is the selected task in this column (-1 if not this column)
	SelectedTaskIdx int
	Width           int
	// Height is the total box height (0 for auto)
	Height       int
	ScrollOffset int
}

// MaxVisibleTasks returns how many cards fit in a column of the given height
func MaxVisibleTasks(height int) int {
	available := height - columnBorderOverhead - headerLines - topIndicatorLines - 1
	return max(available/TaskCardHeight, 1)
}

// RenderColumn renders a complete column with its title and tasks
// This is a pure, reusable component that composes individual task components
//
// Layout:
//
//	{Status label} ({count})
//	▲ (if scrolled down)
//	{Task 1}
//	{Task 2}
//	...
//	▼ (if more tasks below)
func RenderColumn(props ColumnProps) string {
	header := renderColumnHeader(props.Status, len(props.Tasks))

	var content string
	if len(props.Tasks) == 0 {
		content = renderEmptyColumnContent(header)
	} else {
		content = renderColumnWithTasksContent(header, props)
	}

	return applyColumnStyle(content, props.Selected, props.Width, props.Height)
}

// renderColumnHeader renders "{label} ({count})" in the status color
func renderColumnHeader(status models.Status, taskCount int) string {
	return TitleStyle.
		Foreground(lipgloss.Color(theme.StatusColor(status))).
		Render(fmt.Sprintf("%s (%d)", status.Label(), taskCount))
}

// renderScrollIndicator renders text when show is set, otherwise a blank line
func renderScrollIndicator(show bool, text string) string {
	if !show {
		return "\n"
	}
	return IndicatorStyle.Render(text) + "\n"
}

func renderEmptyColumnContent(header string) string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Italic(true).
		Padding(1, 0)
	return header + "\n" + emptyStyle.Render(emptyColumnMessage)
}

func renderColumnWithTasksContent(header string, props ColumnProps) string {
	maxVisible := MaxVisibleTasks(props.Height)
	offset := min(max(props.ScrollOffset, 0), len(props.Tasks)-1)
	endIdx := min(offset+maxVisible, len(props.Tasks))

	username := props.Username
	if username == nil {
		username = func(int) string { return "" }
	}

	var b strings.Builder
	b.WriteString(header + "\n")
	b.WriteString(renderScrollIndicator(offset > 0, moreAboveIndicator))

	cardWidth := max(props.Width-4, 12)
	for i, task := range props.Tasks[offset:endIdx] {
		b.WriteString(RenderTask(TaskCardProps{
			Task:     task,
			Username: username(task.UserID),
			Selected: props.Selected && offset+i == props.SelectedTaskIdx,
			Width:    cardWidth,
		}))
		b.WriteString("\n")
	}

	if endIdx < len(props.Tasks) {
		b.WriteString(IndicatorStyle.Render(moreBelowIndicator))
	}
	return b.String()
}

func applyColumnStyle(content string, selected bool, width int, height int) string {
	style := ColumnStyle
	if selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if width > 0 {
		style = style.Width(width)
	}
	if height > 0 {
		// Subtract 2 for top and bottom borders since .Height() sets content area height
		style = style.Height(height - 2)
	}
	return style.Render(content)
}
