// Package layers provides utility functions for stacking modal dialogs over the board
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	contentWidth := lipgloss.Width(content)
	contentHeight := lipgloss.Height(content)

	x := max((screenWidth-contentWidth)/2, 0)
	y := max((screenHeight-contentHeight)/2, 0)

	return lipgloss.NewLayer(content).X(x).Y(y).Z(1)
}

// Overlay draws modal centered on top of base.
// base is returned unchanged when modal is empty.
func Overlay(base string, modal string, screenWidth int, screenHeight int) string {
	top := CreateCenteredLayer(modal, screenWidth, screenHeight)
	if top == nil {
		return base
	}
	canvas := lipgloss.NewCanvas(lipgloss.NewLayer(base), top)
	return canvas.Render()
}
