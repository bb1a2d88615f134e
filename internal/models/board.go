package models

// Board maps every status key to the tasks in that column.
// A Board built with NewBoard always holds all three keys.
type Board map[Status][]*Task

// NewBoard returns a board with three empty columns
func NewBoard() Board {
	board := make(Board, len(StatusOptions))
	for _, opt := range StatusOptions {
		board[opt.Value] = []*Task{}
	}
	return board
}

// Column returns the tasks for status, never nil
func (b Board) Column(status Status) []*Task {
	tasks, ok := b[status]
	if !ok || tasks == nil {
		return []*Task{}
	}
	return tasks
}

// All flattens the board in column order
func (b Board) All() []*Task {
	all := make([]*Task, 0, b.Count())
	for _, opt := range StatusOptions {
		all = append(all, b[opt.Value]...)
	}
	return all
}

// Find returns the task with the given ID from any column, or nil
func (b Board) Find(taskID int) *Task {
	for _, task := range b.All() {
		if task.ID == taskID {
			return task
		}
	}
	return nil
}

// Count returns the number of tasks across all columns
func (b Board) Count() int {
	total := 0
	for _, opt := range StatusOptions {
		total += len(b[opt.Value])
	}
	return total
}
