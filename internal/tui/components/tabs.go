package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Tab is one entry of the header tab bar
type Tab struct {
	Label string
	Key   string // shortcut shown before the label, may be empty
}

// RenderTabs renders the header tab bar.
// activeIdx marks the page the board itself stands for; -1 marks none.
// width is the total width to fill with the tab gap.
//
// Layout:
//
//	╭──────────╮ ╭──────────╮               [Notification]
//	│ [U] Tab1 │ │ [M] Tab2 │───────────────
func RenderTabs(tabs []Tab, activeIdx int, width int, notificationContent string) string {
	renderedTabs := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		label := tab.Label
		if tab.Key != "" {
			label = "[" + tab.Key + "] " + label
		}
		if i == activeIdx {
			renderedTabs = append(renderedTabs, ActiveTabStyle.Render(label))
		} else {
			renderedTabs = append(renderedTabs, TabStyle.Render(label))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)

	notificationWidth := lipgloss.Width(notificationContent)
	gapWidth := max(width-lipgloss.Width(row)-notificationWidth-2, 0)
	gap := TabGapStyle.Render(strings.Repeat(" ", gapWidth))

	if notificationContent != "" {
		return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap, notificationContent)
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap)
}

// RenderHeader renders the page title above the tabs
func RenderHeader(title string, width int) string {
	return TitleStyle.Width(max(width, 1)).Align(lipgloss.Center).Render(title)
}
