package layers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCreateCenteredLayer ensures a layer is created for any non-empty content.
func TestCreateCenteredLayer(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		screenWidth  int
		screenHeight int
	}{
		{"normal screen", "Conteúdo", 120, 40},
		{"narrow screen", "Conteúdo", 60, 20},
		{"content wider than screen", strings.Repeat("x", 100), 80, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotNil(t, CreateCenteredLayer(tt.content, tt.screenWidth, tt.screenHeight))
		})
	}
}

// TestCreateCenteredLayer_Empty ensures empty content produces no layer.
func TestCreateCenteredLayer_Empty(t *testing.T) {
	assert.Nil(t, CreateCenteredLayer("", 120, 40))
}

// TestOverlay ensures the modal text is drawn and an empty modal leaves base untouched.
func TestOverlay(t *testing.T) {
	base := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 40)+"\n", 10), "\n")

	assert.Equal(t, base, Overlay(base, "", 40, 10))
	assert.Contains(t, Overlay(base, "MODAL", 40, 10), "MODAL")
}
