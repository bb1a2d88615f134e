package board

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/thenoetrevino/quadro/internal/api"
	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/testutil/fakeapi"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// mockAPI records calls and returns canned responses
type mockAPI struct {
	users     []models.User
	tasks     []*models.Task
	listErr   error
	updateErr error
	deleteErr error

	listUsersCalls int
	listTasksCalls int
	updated        []*models.Task
	deleted        []int
}

func (m *mockAPI) ListUsers(ctx context.Context) ([]models.User, error) {
	m.listUsersCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.users, nil
}

func (m *mockAPI) ListTasks(ctx context.Context) ([]*models.Task, error) {
	m.listTasksCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.tasks, nil
}

func (m *mockAPI) UpdateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	m.updated = append(m.updated, task)
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	return task, nil
}

func (m *mockAPI) DeleteTask(ctx context.Context, taskID int) error {
	m.deleted = append(m.deleted, taskID)
	return m.deleteErr
}

func (m *mockAPI) networkCalls() int {
	return m.listUsersCalls + m.listTasksCalls + len(m.updated) + len(m.deleted)
}

func scenarioTasks() []*models.Task {
	return []*models.Task{
		{ID: 1, Description: "Emitir nota", Status: models.StatusTodo, UserID: 5},
		{ID: 2, Description: "Revisar contrato", Sector: "Jurídico", Priority: "alta", Status: models.StatusDone, UserID: 9},
	}
}

// ============================================================================
// LOAD TESTS
// ============================================================================

func TestLoadTasks_Partitions(t *testing.T) {
	mock := &mockAPI{tasks: append(scenarioTasks(), &models.Task{ID: 3, Status: "cancelada"})}
	svc := NewService(mock)

	result, err := svc.LoadTasks(context.Background())
	if err != nil {
		t.Fatalf("LoadTasks() error: %v", err)
	}

	if len(result.Board.Column(models.StatusTodo)) != 1 || result.Board.Column(models.StatusTodo)[0].ID != 1 {
		t.Errorf("a_fazer = %v, want [1]", result.Board.Column(models.StatusTodo))
	}
	if len(result.Board.Column(models.StatusDoing)) != 0 {
		t.Errorf("fazendo should be empty")
	}
	if len(result.Board.Column(models.StatusDone)) != 1 || result.Board.Column(models.StatusDone)[0].ID != 2 {
		t.Errorf("pronto = %v, want [2]", result.Board.Column(models.StatusDone))
	}
	if result.Dropped != 1 {
		t.Errorf("Dropped = %d, want 1", result.Dropped)
	}
}

func TestLoadTasks_Error(t *testing.T) {
	boom := errors.New("connection refused")
	svc := NewService(&mockAPI{listErr: boom})

	result, err := svc.LoadTasks(context.Background())

	if !errors.Is(err, boom) {
		t.Errorf("LoadTasks() error = %v, want wrapped %v", err, boom)
	}
	if result != nil {
		t.Errorf("LoadTasks() result = %v, want nil", result)
	}
}

func TestLoadUsers(t *testing.T) {
	mock := &mockAPI{users: []models.User{{ID: 5, Username: "ana"}}}
	svc := NewService(mock)

	users, err := svc.LoadUsers(context.Background())
	if err != nil {
		t.Fatalf("LoadUsers() error: %v", err)
	}
	if len(users) != 1 || users[0].Username != "ana" {
		t.Errorf("LoadUsers() = %v", users)
	}
}

// ============================================================================
// CHANGE STATUS TESTS
// ============================================================================

// TestChangeStatus_SendsOriginalWithNewStatus checks the PUT body is the original task with only status replaced.
func TestChangeStatus_SendsOriginalWithNewStatus(t *testing.T) {
	mock := &mockAPI{}
	svc := NewService(mock)
	board := models.NewBoard()
	for _, task := range scenarioTasks() {
		board[task.Status] = append(board[task.Status], task)
	}
	original := board.Find(2)

	_, err := svc.ChangeStatus(context.Background(), ChangeStatusRequest{
		Board:     board,
		TaskID:    2,
		NewStatus: models.StatusDoing,
	})
	if err != nil {
		t.Fatalf("ChangeStatus() error: %v", err)
	}

	if len(mock.updated) != 1 {
		t.Fatalf("UpdateTask called %d times, want 1", len(mock.updated))
	}
	sent := mock.updated[0]
	if sent.Status != models.StatusDoing {
		t.Errorf("sent status = %q, want fazendo", sent.Status)
	}
	want := *original
	want.Status = models.StatusDoing
	if sent.ID != want.ID || sent.Description != want.Description || sent.Sector != want.Sector ||
		sent.Priority != want.Priority || sent.UserID != want.UserID || !sent.CreatedAt.Equal(want.CreatedAt.Time) {
		t.Errorf("sent task = %+v, want %+v", sent, want)
	}
	if original.Status != models.StatusDone {
		t.Errorf("board task mutated: status = %q", original.Status)
	}
}

// TestChangeStatus_UnknownTaskMakesNoCalls ensures a missing task aborts before the network.
func TestChangeStatus_UnknownTaskMakesNoCalls(t *testing.T) {
	mock := &mockAPI{}
	svc := NewService(mock)
	board := models.NewBoard()
	board[models.StatusTodo] = scenarioTasks()[:1]

	_, err := svc.ChangeStatus(context.Background(), ChangeStatusRequest{
		Board:     board,
		TaskID:    42,
		NewStatus: models.StatusDone,
	})

	if !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("ChangeStatus() error = %v, want ErrTaskNotFound", err)
	}
	if mock.networkCalls() != 0 {
		t.Errorf("network calls = %d, want 0", mock.networkCalls())
	}
}

func TestChangeStatus_Validation(t *testing.T) {
	board := models.NewBoard()
	board[models.StatusTodo] = scenarioTasks()[:1]

	tests := []struct {
		name    string
		req     ChangeStatusRequest
		wantErr error
	}{
		{"zero id", ChangeStatusRequest{Board: board, TaskID: 0, NewStatus: models.StatusDone}, ErrInvalidTaskID},
		{"negative id", ChangeStatusRequest{Board: board, TaskID: -3, NewStatus: models.StatusDone}, ErrInvalidTaskID},
		{"unknown status", ChangeStatusRequest{Board: board, TaskID: 1, NewStatus: "feito"}, ErrInvalidStatus},
		{"nil board", ChangeStatusRequest{Board: nil, TaskID: 1, NewStatus: models.StatusDone}, ErrTaskNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockAPI{}
			_, err := NewService(mock).ChangeStatus(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if mock.networkCalls() != 0 {
				t.Errorf("network calls = %d, want 0", mock.networkCalls())
			}
		})
	}
}

func TestChangeStatus_APIError(t *testing.T) {
	boom := &api.Error{Method: http.MethodPut, Path: api.TaskPath(1), StatusCode: http.StatusBadRequest}
	mock := &mockAPI{updateErr: boom}
	board := models.NewBoard()
	board[models.StatusTodo] = scenarioTasks()[:1]

	_, err := NewService(mock).ChangeStatus(context.Background(), ChangeStatusRequest{
		Board:     board,
		TaskID:    1,
		NewStatus: models.StatusDoing,
	})

	if api.StatusCode(err) != http.StatusBadRequest {
		t.Errorf("status code = %d, want 400 (err = %v)", api.StatusCode(err), err)
	}
}

// ============================================================================
// DELETE TESTS
// ============================================================================

// TestDeleteTask_NoLocalCheck ensures delete goes to the server even for ids not on the board.
func TestDeleteTask_NoLocalCheck(t *testing.T) {
	mock := &mockAPI{}
	svc := NewService(mock)

	if err := svc.DeleteTask(context.Background(), 99); err != nil {
		t.Fatalf("DeleteTask() error: %v", err)
	}
	if len(mock.deleted) != 1 || mock.deleted[0] != 99 {
		t.Errorf("deleted = %v, want [99]", mock.deleted)
	}
}

func TestDeleteTask_InvalidID(t *testing.T) {
	mock := &mockAPI{}
	if err := NewService(mock).DeleteTask(context.Background(), 0); !errors.Is(err, ErrInvalidTaskID) {
		t.Errorf("DeleteTask(0) error = %v, want ErrInvalidTaskID", err)
	}
	if len(mock.deleted) != 0 {
		t.Error("DeleteTask(0) reached the API")
	}
}

// ============================================================================
// INTEGRATION WITH THE FAKE API
// ============================================================================

func newIntegrationService(t *testing.T) (Service, *fakeapi.Server) {
	t.Helper()
	srv := fakeapi.New(t)
	srv.SetUsers(models.User{ID: 5, Username: "ana"})
	srv.SetTasks(
		fakeapi.TaskRecord(1, models.StatusTodo, 5),
		fakeapi.TaskRecord(2, models.StatusDone, 9),
	)
	client, err := api.NewClient(srv.URL())
	if err != nil {
		t.Fatalf("NewClient() error: %v", err)
	}
	return NewService(client), srv
}

// TestIntegration_ChangeStatusThenReload walks a status change followed by reconciliation.
func TestIntegration_ChangeStatusThenReload(t *testing.T) {
	svc, srv := newIntegrationService(t)
	ctx := context.Background()

	loaded, err := svc.LoadTasks(ctx)
	if err != nil {
		t.Fatalf("LoadTasks() error: %v", err)
	}

	if _, err := svc.ChangeStatus(ctx, ChangeStatusRequest{Board: loaded.Board, TaskID: 2, NewStatus: models.StatusDoing}); err != nil {
		t.Fatalf("ChangeStatus() error: %v", err)
	}
	if srv.Count(http.MethodPut, "/api/tasks/2/") != 1 {
		t.Errorf("expected one PUT to /api/tasks/2/")
	}

	reloaded, err := svc.LoadTasks(ctx)
	if err != nil {
		t.Fatalf("LoadTasks() after update error: %v", err)
	}
	doing := reloaded.Board.Column(models.StatusDoing)
	if len(doing) != 1 || doing[0].ID != 2 {
		t.Errorf("fazendo after reload = %v, want [2]", doing)
	}
	if len(reloaded.Board.Column(models.StatusDone)) != 0 {
		t.Errorf("pronto after reload should be empty")
	}
}

// TestIntegration_LoadIsIdempotent ensures loading twice with unchanged data yields the same board.
func TestIntegration_LoadIsIdempotent(t *testing.T) {
	svc, _ := newIntegrationService(t)
	ctx := context.Background()

	first, err := svc.LoadTasks(ctx)
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.LoadTasks(ctx)
	if err != nil {
		t.Fatal(err)
	}

	for _, status := range models.Statuses() {
		a, b := first.Board.Column(status), second.Board.Column(status)
		if len(a) != len(b) {
			t.Fatalf("column %q sizes differ: %d vs %d", status, len(a), len(b))
		}
		for i := range a {
			if a[i].ID != b[i].ID || a[i].Status != b[i].Status {
				t.Errorf("column %q index %d differs", status, i)
			}
		}
	}
}

// TestIntegration_DeleteUnknownTask ensures a server-side miss surfaces as not found.
func TestIntegration_DeleteUnknownTask(t *testing.T) {
	svc, srv := newIntegrationService(t)

	err := svc.DeleteTask(context.Background(), 99)

	if !api.IsNotFound(err) {
		t.Errorf("DeleteTask(99) error = %v, want not found", err)
	}
	if srv.Count(http.MethodDelete, "/api/tasks/del/99/") != 1 {
		t.Error("DELETE was not issued")
	}
	if len(srv.Tasks()) != 2 {
		t.Errorf("server tasks = %d, want 2", len(srv.Tasks()))
	}
}
