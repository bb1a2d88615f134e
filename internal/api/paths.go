package api

import "fmt"

// DefaultBaseURL is where the task API listens in a default install
const DefaultBaseURL = "http://127.0.0.1:8000/api"

// Endpoint paths, relative to the base URL
const (
	UsersPath = "/users/"
	TasksPath = "/tasks/"
)

// TaskPath is the update path for a task
func TaskPath(taskID int) string {
	return fmt.Sprintf("/tasks/%d/", taskID)
}

// DeleteTaskPath is the delete path for a task.
// The API uses a separate del/ prefix for deletes.
func DeleteTaskPath(taskID int) string {
	return fmt.Sprintf("/tasks/del/%d/", taskID)
}
