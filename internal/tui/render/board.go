package render

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/navigation"
	"github.com/thenoetrevino/quadro/internal/tui"
	"github.com/thenoetrevino/quadro/internal/tui/components"
	"github.com/thenoetrevino/quadro/internal/tui/notifications"
)

// Title is the page header
const Title = "Gerenciamento de Tarefas"

// ViewKanbanBoard renders the header, the three status columns and the status bar
func ViewKanbanBoard(m *tui.Model) string {
	width := m.UiState.Width()
	columnHeight := m.UiState.ContentHeight()
	columnWidth := m.UiState.ColumnWidth()

	columns := make([]string, 0, len(models.Statuses()))
	for i, status := range models.Statuses() {
		isSelected := i == m.UiState.SelectedColumn()
		selectedTaskIdx := -1
		if isSelected {
			selectedTaskIdx = m.UiState.SelectedTask()
		}

		columns = append(columns, components.RenderColumn(components.ColumnProps{
			Status:          status,
			Tasks:           m.AppState.Column(status),
			Username:        m.AppState.Username,
			Selected:        isSelected,
			SelectedTaskIdx: selectedTaskIdx,
			Width:           columnWidth,
			Height:          columnHeight,
			ScrollOffset:    m.UiState.TaskScrollOffset(status),
		}))
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	header := components.RenderHeader(Title, width)
	tabBar := components.RenderTabs(headerTabs(m), activeTab(), width, notifications.RenderLatest(m.NotificationState))

	footer := components.RenderStatusBar(components.StatusBarProps{
		Width:     width,
		Spinner:   m.Spinner.View(),
		Pending:   m.AppState.Pending(),
		TaskCount: m.AppState.TotalTaskCount(),
		Dropped:   m.AppState.Dropped(),
		Hint:      m.Hint,
	})

	content := lipgloss.JoinVertical(lipgloss.Left, header, tabBar, board)

	// Constrain content to fit terminal height, leaving room for footer
	contentLines := strings.Split(content, "\n")
	maxContentLines := max(m.UiState.Height()-1, 1)
	if len(contentLines) > maxContentLines {
		contentLines = contentLines[:maxContentLines]
	}
	for len(contentLines) < maxContentLines {
		contentLines = append(contentLines, "")
	}

	return strings.Join(contentLines, "\n") + "\n" + footer
}

// headerTabs builds the tab bar from the web pages linked in the header
func headerTabs(m *tui.Model) []components.Tab {
	km := m.Config.KeyMappings
	keys := map[string]string{
		navigation.RouteRegisterUser: km.RegisterUser,
		navigation.RouteCreateTask:   km.AddTask,
		navigation.RouteManageTasks:  km.ManageTasks,
	}

	routes := navigation.HeaderRoutes()
	tabs := make([]components.Tab, len(routes))
	for i, route := range routes {
		tabs[i] = components.Tab{Label: route.Label, Key: keys[route.Path]}
	}
	return tabs
}

// activeTab returns the index of the tab the board stands for
func activeTab() int {
	for i, route := range navigation.HeaderRoutes() {
		if route.Path == navigation.RouteManageTasks {
			return i
		}
	}
	return -1
}
