package state

import "github.com/thenoetrevino/quadro/internal/models"

// StatusPickerState manages the status picker modal state.
// The picker only offers the fixed status options, so an arbitrary
// status can never be sent to the server.
type StatusPickerState struct {
	// taskID is the ID of the task being edited
	taskID int

	// current is the task's status when the picker was opened
	current models.Status

	// cursor is the current cursor position in models.StatusOptions
	cursor int
}

// NewStatusPickerState creates a new StatusPickerState with default values.
func NewStatusPickerState() *StatusPickerState {
	return &StatusPickerState{}
}

// Open prepares the picker for a task, with the cursor on its current status.
func (s *StatusPickerState) Open(taskID int, current models.Status) {
	s.taskID = taskID
	s.current = current
	s.cursor = max(current.Index(), 0)
}

// TaskID returns the ID of the task being edited.
func (s *StatusPickerState) TaskID() int {
	return s.taskID
}

// Current returns the status the task had when the picker opened.
func (s *StatusPickerState) Current() models.Status {
	return s.current
}

// Options returns the selectable statuses in display order.
func (s *StatusPickerState) Options() []models.StatusOption {
	return models.StatusOptions
}

// Cursor returns the current cursor position.
func (s *StatusPickerState) Cursor() int {
	return s.cursor
}

// MoveUp moves the cursor up one position if possible.
func (s *StatusPickerState) MoveUp() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// MoveDown moves the cursor down one position if possible.
func (s *StatusPickerState) MoveDown() {
	if s.cursor < len(models.StatusOptions)-1 {
		s.cursor++
	}
}

// Selected returns the status under the cursor.
func (s *StatusPickerState) Selected() models.Status {
	return models.StatusOptions[s.cursor].Value
}

// Unchanged reports whether the selection equals the task's current status.
func (s *StatusPickerState) Unchanged() bool {
	return s.Selected() == s.current
}

// Reset resets all state to default values.
func (s *StatusPickerState) Reset() {
	s.taskID = 0
	s.current = ""
	s.cursor = 0
}
