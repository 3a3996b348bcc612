package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "hi")
	s.SetColored(3, 1, '█', core.ColorRed)
	s.SetColored(4, 1, '█', core.ColorRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 2)
	assert.Equal(t, "hi    ", lines[0])
	assert.Equal(t, 6, lipgloss.Width(lines[1]), "escape codes take no columns")
	assert.Contains(t, lines[1], "██")
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		_, ok := colorStyles[c]
		assert.True(t, ok, "color %d", c)
	}
}
