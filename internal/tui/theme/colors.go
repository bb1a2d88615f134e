package theme

import (
	"github.com/thenoetrevino/quadro/internal/config"
	"github.com/thenoetrevino/quadro/internal/models"
)

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Subtle         string
	Normal         string
	Todo           string
	Doing          string
	Done           string
	Success        string
	Delete         string
	SelectedBorder string
	SelectedBg     string
	TaskBorder     string
	TaskBg         string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Subtle = colors.Subtle
	Normal = colors.Normal
	Todo = colors.Todo
	Doing = colors.Doing
	Done = colors.Done
	Success = colors.Success
	Delete = colors.Delete
	SelectedBorder = colors.SelectedBorder
	SelectedBg = colors.SelectedBg
	TaskBorder = colors.TaskBorder
	TaskBg = colors.TaskBackground
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}

// StatusColor returns the header color of a status column
func StatusColor(status models.Status) string {
	switch status {
	case models.StatusTodo:
		return Todo
	case models.StatusDoing:
		return Doing
	case models.StatusDone:
		return Done
	default:
		return Subtle
	}
}
