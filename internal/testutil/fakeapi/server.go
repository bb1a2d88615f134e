// Package fakeapi is an in-memory stand-in for the task REST API, served over
// httptest for client, service, TUI and CLI tests.
package fakeapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/thenoetrevino/quadro/internal/models"
)

// Record is a task exactly as the API stores it, including fields the client does not model
type Record map[string]any

// Request is one request seen by the server
type Request struct {
	Method string
	Path   string
	Body   []byte
}

// Server is a running fake API
type Server struct {
	mu       sync.Mutex
	users    []models.User
	tasks    []Record
	requests []Request
	failures map[string]int

	http *httptest.Server
}

// New starts a fake API and stops it when the test ends
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		users:    []models.User{},
		tasks:    []Record{},
		failures: make(map[string]int),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(s.record)

	g := e.Group("/api")
	g.GET("/users/", s.listUsers)
	g.GET("/tasks/", s.listTasks)
	g.PUT("/tasks/:id/", s.updateTask)
	g.DELETE("/tasks/del/:id/", s.deleteTask)

	s.http = httptest.NewServer(e)
	t.Cleanup(s.http.Close)
	return s
}

// URL is the API base URL to hand to api.NewClient
func (s *Server) URL() string {
	return s.http.URL + "/api"
}

// TaskRecord builds a complete task record
func TaskRecord(id int, status models.Status, userID int) Record {
	return Record{
		"id":            id,
		"descricao":     fmt.Sprintf("Tarefa %d", id),
		"setor":         "Financeiro",
		"prioridade":    "media",
		"usuario":       userID,
		"status":        string(status),
		"data_cadastro": "2024-03-01T09:30:00Z",
	}
}

// SetUsers replaces the user list
func (s *Server) SetUsers(users ...models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append([]models.User{}, users...)
}

// SetTasks replaces the task list
func (s *Server) SetTasks(tasks ...Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = make([]Record, 0, len(tasks))
	for _, task := range tasks {
		s.tasks = append(s.tasks, cloneRecord(task))
	}
}

// Tasks returns a copy of the stored tasks
func (s *Server) Tasks() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, 0, len(s.tasks))
	for _, task := range s.tasks {
		out = append(out, cloneRecord(task))
	}
	return out
}

// Fail makes every request matching method and path answer with status
// until ClearFailures is called
func (s *Server) Fail(method, path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+path] = status
}

// ClearFailures removes all injected failures
func (s *Server) ClearFailures() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = make(map[string]int)
}

// Requests returns every request seen so far, in order
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request{}, s.requests...)
}

// Count returns how many requests matched method and path
func (s *Server) Count(method, path string) int {
	count := 0
	for _, req := range s.Requests() {
		if req.Method == method && req.Path == path {
			count++
		}
	}
	return count
}

// ResetRequests forgets recorded requests
func (s *Server) ResetRequests() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

func (s *Server) record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		var body []byte
		if req.Body != nil {
			body, _ = io.ReadAll(req.Body)
			req.Body = io.NopCloser(bytes.NewReader(body))
		}

		s.mu.Lock()
		s.requests = append(s.requests, Request{Method: req.Method, Path: req.URL.Path, Body: body})
		status, failing := s.failures[req.Method+" "+req.URL.Path]
		s.mu.Unlock()

		if failing {
			return c.JSON(status, map[string]string{"detail": "injected failure"})
		}
		return next(c)
	}
}

func (s *Server) listUsers(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, s.users)
}

func (s *Server) listTasks(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, s.tasks)
}

func (s *Server) updateTask(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"detail": "invalid id"})
	}

	var body Record
	if err := json.NewDecoder(c.Request().Body).Decode(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"detail": err.Error()})
	}
	if body == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"detail": "empty body"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, task := range s.tasks {
		if recordID(task) == id {
			body["id"] = id
			s.tasks[i] = body
			return c.JSON(http.StatusOK, body)
		}
	}
	return c.JSON(http.StatusNotFound, map[string]string{"detail": "Not found."})
}

func (s *Server) deleteTask(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"detail": "invalid id"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, task := range s.tasks {
		if recordID(task) == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return c.NoContent(http.StatusNoContent)
		}
	}
	return c.JSON(http.StatusNotFound, map[string]string{"detail": "Not found."})
}

// recordID reads the id whether it was set from Go (int) or decoded from JSON (float64)
func recordID(r Record) int {
	switch id := r["id"].(type) {
	case int:
		return id
	case float64:
		return int(id)
	}
	return 0
}

func cloneRecord(r Record) Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
