package state

import (
	"testing"

	"github.com/thenoetrevino/quadro/internal/kanban"
	"github.com/thenoetrevino/quadro/internal/models"
)

// TestNewAppState_EmptyBoard ensures a fresh state renders three empty columns.
// Edge case: first frame before any load completes.
func TestNewAppState_EmptyBoard(t *testing.T) {
	s := NewAppState()

	for _, status := range models.Statuses() {
		if col := s.Column(status); col == nil || len(col) != 0 {
			t.Errorf("Column(%q) = %v, want empty non-nil slice", status, col)
		}
	}
	if s.TotalTaskCount() != 0 {
		t.Errorf("TotalTaskCount() = %d, want 0", s.TotalTaskCount())
	}
	if s.UsersLoaded() || s.TasksLoaded() {
		t.Error("nothing should be marked loaded yet")
	}
}

// TestSetUsers_RebuildsIndex ensures usernames resolve from the latest user list only.
func TestSetUsers_RebuildsIndex(t *testing.T) {
	s := NewAppState()
	s.SetUsers([]models.User{{ID: 5, Username: "ana"}})

	if got := s.Username(5); got != "ana" {
		t.Errorf("Username(5) = %q, want ana", got)
	}

	s.SetUsers([]models.User{{ID: 6, Username: "bruno"}})

	if got := s.Username(5); got != kanban.UnassignedUsername {
		t.Errorf("Username(5) after reload = %q, want placeholder", got)
	}
	if !s.UsersLoaded() {
		t.Error("UsersLoaded() = false after SetUsers")
	}
}

// TestUsername_BeforeLoad ensures lookups before the user load are total.
func TestUsername_BeforeLoad(t *testing.T) {
	s := NewAppState()

	if got := s.Username(9); got != kanban.UnassignedUsername {
		t.Errorf("Username(9) = %q, want placeholder", got)
	}
}

// TestSetBoard_Replaces ensures boards are replaced, never merged.
func TestSetBoard_Replaces(t *testing.T) {
	s := NewAppState()
	first := models.NewBoard()
	first[models.StatusTodo] = []*models.Task{{ID: 1, Status: models.StatusTodo}}
	s.SetBoard(first, 2)

	second := models.NewBoard()
	second[models.StatusDone] = []*models.Task{{ID: 2, Status: models.StatusDone}}
	s.SetBoard(second, 0)

	if len(s.Column(models.StatusTodo)) != 0 {
		t.Error("task 1 survived a reload that did not include it")
	}
	if s.TotalTaskCount() != 1 {
		t.Errorf("TotalTaskCount() = %d, want 1", s.TotalTaskCount())
	}
	if s.Dropped() != 0 {
		t.Errorf("Dropped() = %d, want 0", s.Dropped())
	}
}

// TestSetBoard_Nil ensures a nil board is normalized.
func TestSetBoard_Nil(t *testing.T) {
	s := NewAppState()
	s.SetBoard(nil, 0)

	if s.Board() == nil {
		t.Fatal("Board() = nil")
	}
	if len(s.Board()) != len(models.Statuses()) {
		t.Errorf("Board() has %d keys, want %d", len(s.Board()), len(models.Statuses()))
	}
}

// TestPending_NeverNegative ensures unmatched EndRequest calls do not underflow.
func TestPending_NeverNegative(t *testing.T) {
	s := NewAppState()
	s.BeginRequest()
	s.BeginRequest()
	s.EndRequest()

	if s.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", s.Pending())
	}

	s.EndRequest()
	s.EndRequest()

	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", s.Pending())
	}
}
