package state

import "github.com/thenoetrevino/quadro/internal/models"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	StatusPickerMode              // Choosing a new status for the selected task
	DeleteConfirmMode             // Confirming task deletion
	AckMode                       // Blocking acknowledgment after a change
	DetailMode                    // Reading a task's full details
	HelpMode                      // Displaying help screen
)

// String returns the mode name used in logs.
func (m Mode) String() string {
	switch m {
	case NormalMode:
		return "normal"
	case StatusPickerMode:
		return "status_picker"
	case DeleteConfirmMode:
		return "delete_confirm"
	case AckMode:
		return "ack"
	case DetailMode:
		return "detail"
	case HelpMode:
		return "help"
	default:
		return "unknown"
	}
}

// UIState manages the user interface state.
// This includes navigation (column/task selection), per-column scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the selected column in models.Statuses()
	selectedColumn int

	// selectedTask is the index of the selected task within the selected column
	selectedTask int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// taskScrollOffsets tracks the index of the first visible task per column
	taskScrollOffsets map[models.Status]int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:              NormalMode,
		taskScrollOffsets: make(map[models.Status]int),
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index, clamped to the board.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = min(max(index, 0), len(models.Statuses())-1)
}

// SelectedStatus returns the status of the selected column.
func (s *UIState) SelectedStatus() models.Status {
	return models.Statuses()[s.selectedColumn]
}

// SelectedTask returns the index of the currently selected task.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask updates the selected task index.
func (s *UIState) SetSelectedTask(index int) {
	s.selectedTask = max(index, 0)
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the available height for the columns.
// This is terminal height minus header and status bar, ensuring a minimum of 5.
func (s *UIState) ContentHeight() int {
	const headerHeight = 4    // title + tabs
	const statusBarHeight = 2 // status bar + gap line
	return max(s.height-headerHeight-statusBarHeight, 5)
}

// ColumnWidth returns the width of one column so the three fit side by side.
func (s *UIState) ColumnWidth() int {
	const minColumnWidth = 24
	const maxColumnWidth = 48
	columns := len(models.Statuses())
	return min(max((s.width-2)/columns, minColumnWidth), maxColumnWidth)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ResetSelection resets both column and task selection to zero.
func (s *UIState) ResetSelection() {
	s.selectedColumn = 0
	s.selectedTask = 0
	clear(s.taskScrollOffsets)
}

// ClampSelection keeps the selected task inside a column of taskCount tasks.
func (s *UIState) ClampSelection(taskCount int) {
	if taskCount == 0 {
		s.selectedTask = 0
		return
	}
	s.selectedTask = min(s.selectedTask, taskCount-1)
}

// TaskScrollOffset returns the vertical scroll offset for a given column.
// Returns 0 if the column has no scroll offset set.
func (s *UIState) TaskScrollOffset(status models.Status) int {
	return s.taskScrollOffsets[status]
}

// SetTaskScrollOffset updates the vertical scroll offset for a given column.
func (s *UIState) SetTaskScrollOffset(status models.Status, offset int) {
	s.taskScrollOffsets[status] = max(0, offset)
}

// EnsureTaskVisible adjusts the scroll offset to ensure the selected task is visible.
// This should be called after task navigation within a column.
//
// Parameters:
//   - status: the column containing the task
//   - selectedTaskIdx: index of the selected task within the column
//   - visibleCount: number of tasks that can be displayed at once
func (s *UIState) EnsureTaskVisible(status models.Status, selectedTaskIdx int, visibleCount int) {
	visibleCount = max(visibleCount, 1)
	offset := s.TaskScrollOffset(status)

	// If selection is above visible area, scroll up
	if selectedTaskIdx < offset {
		s.taskScrollOffsets[status] = selectedTaskIdx
	}

	// If selection is below visible area, scroll down
	if selectedTaskIdx >= offset+visibleCount {
		s.taskScrollOffsets[status] = selectedTaskIdx - visibleCount + 1
	}
}
