package components

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/tui/theme"
)

// TaskCardProps holds everything a card needs to render
type TaskCardProps struct {
	Task     *models.Task
	Username string
	Selected bool
	Width    int
}

// RenderTask renders a single task as a card
//
//	┏━━━━━━━━━━━━━━━━━━━━━━━━━━━━┓
//	┃ {descrição}                ┃
//	┃ setor │ prioridade         ┃
//	┃ usuário                    ┃
//	┃ data de cadastro │ status  ┃
//	┗━━━━━━━━━━━━━━━━━━━━━━━━━━━━┛
//
// This has a fixed height; long values are truncated to the card width.
func RenderTask(props TaskCardProps) string {
	bg := theme.TaskBg
	border := theme.TaskBorder
	if props.Selected {
		bg = theme.SelectedBg
		border = theme.SelectedBorder
	}

	inner := max(props.Width-cardChrome, 8)
	task := props.Task

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Normal)).
		Background(lipgloss.Color(bg)).
		Render(fit(orPlaceholder(task.Description, "sem descrição"), inner))

	sector := renderField(orPlaceholder(task.Sector, "sem setor"), bg)
	priority := renderField(orPlaceholder(task.Priority, "sem prioridade"), bg)
	user := renderField("👤 "+props.Username, bg)
	created := renderField(task.CreatedAt.DateString(), bg)
	status := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusColor(task.Status))).
		Background(lipgloss.Color(bg)).
		Render(task.Status.Label())

	lines := []string{
		title,
		fitRendered(sector+separator(bg)+priority, inner),
		fitRendered(user, inner),
		fitRendered(created+separator(bg)+status, inner),
	}

	style := TaskStyle.
		Width(props.Width).
		BorderForeground(lipgloss.Color(border)).
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg))

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderField(value string, bg string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Background(lipgloss.Color(bg)).
		Render(value)
}

func separator(bg string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Background(lipgloss.Color(bg)).
		Render(" │ ")
}

// fit truncates plain text to width cells with an ellipsis
func fit(s string, width int) string {
	return truncate.StringWithTail(s, uint(max(width, 1)), "…")
}

// fitRendered truncates styled text, keeping escape sequences intact
func fitRendered(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(max(width, 1)), "…")
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}

// TaskSummaryLine renders a one-line task reference used in dialogs
func TaskSummaryLine(task *models.Task) string {
	return fmt.Sprintf("#%d %s", task.ID, orPlaceholder(task.Description, "sem descrição"))
}
