// Package kanban holds the pure logic behind the kanban view: splitting the
// task list into status columns and resolving usernames for task cards.
package kanban

import "github.com/thenoetrevino/quadro/internal/models"

// Partition splits tasks into the three status columns, keeping server order
// inside each column. Tasks with an unknown status are left out of every
// column; dropped reports how many there were.
func Partition(tasks []*models.Task) (board models.Board, dropped int) {
	board = models.NewBoard()
	for _, task := range tasks {
		if task == nil {
			continue
		}
		if !task.Status.Valid() {
			dropped++
			continue
		}
		board[task.Status] = append(board[task.Status], task)
	}
	return board, dropped
}
