// Package navigation opens the web pages that sit next to the board:
// task edit, task creation, task management, and user registration.
package navigation

import (
	"errors"
	"fmt"
	"strings"
)

// Client routes served by the web front end
const (
	RouteRegisterUser = "/cadastro-usuarios"
	RouteCreateTask   = "/cadastrar-tarefas"
	RouteManageTasks  = "/gerenciar-tarefas"
	routeEditTask     = "/editar-tarefa/"
)

var ErrInvalidRoute = errors.New("route must start with /")

// EditTaskRoute returns the edit page route for a task
func EditTaskRoute(taskID int) string {
	return fmt.Sprintf("%s%d", routeEditTask, taskID)
}

// Route pairs a page with its tab label in the header
type Route struct {
	Path  string
	Label string
}

// HeaderRoutes lists the pages linked from the board header, in tab order
func HeaderRoutes() []Route {
	return []Route{
		{Path: RouteRegisterUser, Label: "Cadastro de Usuários"},
		{Path: RouteCreateTask, Label: "Cadastro de Tarefas"},
		{Path: RouteManageTasks, Label: "Gerenciar Tarefas"},
	}
}

// Join appends route to base, keeping exactly one slash between them
func Join(base, route string) (string, error) {
	if !strings.HasPrefix(route, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidRoute, route)
	}
	return strings.TrimRight(base, "/") + route, nil
}
