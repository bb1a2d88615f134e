package state

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/viewport"
)

// DetailState holds the scrollable detail popup for one task.
type DetailState struct {
	taskID   int
	viewport viewport.Model
}

// NewDetailState creates an empty DetailState.
func NewDetailState() *DetailState {
	return &DetailState{viewport: viewport.New()}
}

// Open shows content for taskID in a viewport of the given size.
func (s *DetailState) Open(taskID int, content string, width, height int) {
	s.taskID = taskID
	s.viewport.SetWidth(max(width, 1))
	s.viewport.SetHeight(max(height, 1))
	s.viewport.SetContent(content)
	s.viewport.GotoTop()
}

// TaskID returns the task being shown, or 0.
func (s *DetailState) TaskID() int {
	return s.taskID
}

// Update forwards scroll keys to the viewport.
func (s *DetailState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return cmd
}

// View renders the visible part of the content.
func (s *DetailState) View() string {
	return s.viewport.View()
}

// Close forgets the task.
func (s *DetailState) Close() {
	s.taskID = 0
	s.viewport.SetContent("")
}
