package kanban

import (
	"testing"

	"github.com/thenoetrevino/quadro/internal/models"
)

func taskIDs(tasks []*models.Task) []int {
	ids := make([]int, len(tasks))
	for i, task := range tasks {
		ids[i] = task.ID
	}
	return ids
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TestPartition_Scenario checks the two-task scenario from the board walkthrough.
func TestPartition_Scenario(t *testing.T) {
	tasks := []*models.Task{
		{ID: 1, Status: models.StatusTodo, UserID: 5},
		{ID: 2, Status: models.StatusDone, UserID: 9},
	}

	board, dropped := Partition(tasks)

	if dropped != 0 {
		t.Errorf("dropped = %d, want 0", dropped)
	}
	if got := taskIDs(board.Column(models.StatusTodo)); !equalIDs(got, []int{1}) {
		t.Errorf("a_fazer = %v, want [1]", got)
	}
	if got := board.Column(models.StatusDoing); len(got) != 0 {
		t.Errorf("fazendo = %v, want empty", taskIDs(got))
	}
	if got := taskIDs(board.Column(models.StatusDone)); !equalIDs(got, []int{2}) {
		t.Errorf("pronto = %v, want [2]", got)
	}
}

// TestPartition_ExhaustiveAndDisjoint ensures every known-status task lands in exactly one column.
// Edge case: unknown statuses mixed in with known ones.
func TestPartition_ExhaustiveAndDisjoint(t *testing.T) {
	tasks := []*models.Task{
		{ID: 1, Status: models.StatusDoing},
		{ID: 2, Status: "arquivada"},
		{ID: 3, Status: models.StatusTodo},
		{ID: 4, Status: models.StatusDoing},
		{ID: 5, Status: ""},
		{ID: 6, Status: models.StatusDone},
		{ID: 7, Status: "PRONTO"},
	}

	board, dropped := Partition(tasks)

	if dropped != 3 {
		t.Errorf("dropped = %d, want 3", dropped)
	}

	seen := map[int]int{}
	for _, status := range models.Statuses() {
		for _, task := range board.Column(status) {
			seen[task.ID]++
			if task.Status != status {
				t.Errorf("task %d with status %q placed in column %q", task.ID, task.Status, status)
			}
		}
	}

	for _, task := range tasks {
		count := seen[task.ID]
		if task.Status.Valid() && count != 1 {
			t.Errorf("task %d appears %d times, want 1", task.ID, count)
		}
		if !task.Status.Valid() && count != 0 {
			t.Errorf("task %d with unknown status appears %d times, want 0", task.ID, count)
		}
	}
}

// TestPartition_PreservesServerOrder ensures column order follows response order.
func TestPartition_PreservesServerOrder(t *testing.T) {
	tasks := []*models.Task{
		{ID: 30, Status: models.StatusTodo},
		{ID: 10, Status: models.StatusTodo},
		{ID: 20, Status: models.StatusTodo},
	}

	board, _ := Partition(tasks)

	if got := taskIDs(board.Column(models.StatusTodo)); !equalIDs(got, []int{30, 10, 20}) {
		t.Errorf("a_fazer order = %v, want [30 10 20]", got)
	}
}

// TestPartition_EmptyInput ensures all three columns exist with no tasks.
// Edge case: server returns an empty list.
func TestPartition_EmptyInput(t *testing.T) {
	board, dropped := Partition(nil)

	if dropped != 0 {
		t.Errorf("dropped = %d, want 0", dropped)
	}
	if len(board) != 3 {
		t.Fatalf("board has %d keys, want 3", len(board))
	}
	for _, status := range models.Statuses() {
		tasks, ok := board[status]
		if !ok {
			t.Errorf("board missing key %q", status)
		}
		if len(tasks) != 0 {
			t.Errorf("column %q has %d tasks, want 0", status, len(tasks))
		}
	}
}

// TestPartition_SkipsNilTasks guards against null entries in the response array.
func TestPartition_SkipsNilTasks(t *testing.T) {
	board, dropped := Partition([]*models.Task{nil, {ID: 1, Status: models.StatusDone}})

	if dropped != 0 {
		t.Errorf("dropped = %d, want 0", dropped)
	}
	if board.Count() != 1 {
		t.Errorf("Count() = %d, want 1", board.Count())
	}
}

// TestPartition_Idempotent ensures partitioning the same data twice yields the same board.
func TestPartition_Idempotent(t *testing.T) {
	tasks := []*models.Task{
		{ID: 1, Status: models.StatusTodo},
		{ID: 2, Status: models.StatusDone},
		{ID: 3, Status: models.StatusDoing},
	}

	first, _ := Partition(tasks)
	second, _ := Partition(tasks)

	for _, status := range models.Statuses() {
		if !equalIDs(taskIDs(first.Column(status)), taskIDs(second.Column(status))) {
			t.Errorf("column %q differs between runs", status)
		}
	}
}
