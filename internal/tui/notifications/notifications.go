// Package notifications renders the inline notices shown in the header.
package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/quadro/internal/tui/state"
	"github.com/thenoetrevino/quadro/internal/tui/theme"
)

type style struct {
	icon       string
	foreground string
	background string
}

func styleFor(level state.NotificationLevel) style {
	switch level {
	case state.LevelWarning:
		return style{icon: "⚠", foreground: theme.WarningFg, background: theme.WarningBg}
	case state.LevelError:
		return style{icon: "✕", foreground: theme.ErrorFg, background: theme.ErrorBg}
	default:
		return style{icon: "🔔", foreground: theme.InfoFg, background: theme.InfoBg}
	}
}

// RenderInline renders a compact single-line notice for the tab bar
func RenderInline(n state.Notification) string {
	s := styleFor(n.Level)
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.foreground)).
		Background(lipgloss.Color(s.background)).
		Padding(0, 1).
		Render(s.icon + " " + n.Message)
}

// RenderLatest renders the newest notice, or "" when there is none
func RenderLatest(ns *state.NotificationState) string {
	n, ok := ns.Latest()
	if !ok {
		return ""
	}
	return RenderInline(n)
}
