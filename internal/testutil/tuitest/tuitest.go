// Package tuitest drives Bubble Tea models synchronously in tests.
package tuitest

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/spinner"
)

// UpdateFunc feeds one message to a model and returns its follow-up command
type UpdateFunc func(tea.Msg) tea.Cmd

// Drain runs cmd and every command it leads to, feeding each resulting
// message back through update until nothing is left.
// Spinner ticks and quit messages are dropped so the loop always ends.
func Drain(update UpdateFunc, cmd tea.Cmd) []tea.Msg {
	var seen []tea.Msg
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		switch msg := next().(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case spinner.TickMsg, tea.QuitMsg:
			seen = append(seen, msg)
		default:
			seen = append(seen, msg)
			queue = append(queue, update(msg))
		}
	}
	return seen
}

// Key builds the key press a terminal would send for key,
// using the names Bubble Tea reports ("enter", "esc", "space", "ctrl+c")
func Key(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	case "space":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeySpace, Text: " "})
	case "up":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyUp})
	case "down":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyDown})
	case "left":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyLeft})
	case "right":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyRight})
	case "ctrl+c":
		return tea.KeyPressMsg(tea.Key{Code: 'c', Mod: tea.ModCtrl})
	}
	r := []rune(key)[0]
	return tea.KeyPressMsg(tea.Key{Code: r, Text: key})
}

// Contains reports whether msgs holds a message of type T
func Contains[T tea.Msg](msgs []tea.Msg) bool {
	for _, msg := range msgs {
		if _, ok := msg.(T); ok {
			return true
		}
	}
	return false
}
