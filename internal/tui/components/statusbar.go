package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBarProps holds what the bottom bar reports
type StatusBarProps struct {
	Width     int
	Spinner   string // current spinner frame, shown while Pending > 0
	Pending   int
	TaskCount int
	Dropped   int
	Hint      string // short, non-blocking message such as a load failure
}

// RenderStatusBar renders a status bar with left and right aligned text
//
//	⣾ carregando… │ 3 tarefas │ 1 ignorada        ? ajuda
func RenderStatusBar(props StatusBarProps) string {
	var parts []string
	if props.Pending > 0 {
		parts = append(parts, strings.TrimSpace(props.Spinner+" carregando…"))
	}
	parts = append(parts, taskCountLabel(props.TaskCount))
	if props.Dropped > 0 {
		parts = append(parts, fmt.Sprintf("%d com status desconhecido", props.Dropped))
	}
	if props.Hint != "" {
		parts = append(parts, props.Hint)
	}

	leftText := " " + strings.Join(parts, " │ ")
	rightText := "? ajuda "

	gapWidth := max(props.Width-lipgloss.Width(leftText)-lipgloss.Width(rightText), 1)
	line := leftText + strings.Repeat(" ", gapWidth) + rightText

	return StatusBarStyle.Render(fitRendered(line, max(props.Width, 1)))
}

func taskCountLabel(n int) string {
	if n == 1 {
		return "1 tarefa"
	}
	return fmt.Sprintf("%d tarefas", n)
}
