package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/pendulum/internal/physics"
)

func TestCanvasSetAndClear(t *testing.T) {
	c := NewCanvas(2, 1)
	w, h := c.Dots()
	assert.Equal(t, 4, w)
	assert.Equal(t, 4, h)

	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(100, 0)

	assert.True(t, c.IsSet(0, 0))
	assert.True(t, c.IsSet(3, 3))
	assert.False(t, c.IsSet(1, 0))
	assert.Equal(t, rune(0x2801), c.Grid[0][0])
	assert.Equal(t, rune(0x2880), c.Grid[0][1])

	c.Clear()
	assert.Equal(t, string([]rune{0x2800, 0x2800})+"\n", c.String())
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(4, 2)
	c.DrawLine(0, 0, 7, 7)
	for i := 0; i <= 7; i++ {
		assert.True(t, c.IsSet(i, i), "dot %d", i)
	}
	assert.False(t, c.IsSet(7, 0))
}

func TestCanvasDisc(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Disc(3, 3, 1)
	for _, p := range [][2]int{{3, 3}, {2, 3}, {4, 3}, {3, 2}, {3, 4}} {
		assert.True(t, c.IsSet(p[0], p[1]), "%v", p)
	}
	assert.False(t, c.IsSet(2, 2))
}

func TestGetTheme(t *testing.T) {
	assert.Equal(t, "retro", GetTheme("retro").Name)
	assert.Equal(t, ThemeWeb, GetTheme("nope"))
	assert.Equal(t, []string{"web", "retro", "minimal"}, ThemeNames())
}

func TestModelRecordsFrames(t *testing.T) {
	m := NewModel(150, ThemeWeb)

	var tm tea.Model = m
	for i := 1; i <= 3; i++ {
		tm, _ = tm.Update(FrameMsg{Step: i, Time: float64(i) * 0.01, Energy: 2943, Position: physics.BobPosition{X1: 60, X2: 60, Y2: -90}})
	}
	m = tm.(Model)

	assert.Equal(t, 3, m.frame.Step)
	assert.Len(t, m.energy, 3)
	assert.Len(t, m.trail, 3)

	view := m.View()
	assert.Contains(t, view, "DOUBLE PENDULUM")
	assert.Contains(t, view, "2943.000")
	assert.Contains(t, view, "0.03s")
}

func TestModelProjectFitsReach(t *testing.T) {
	m := NewModel(150, ThemeWeb)
	dw, dh := m.canvas.Dots()

	cx, cy := m.project(0, 0)
	assert.Equal(t, dw/2, cx)
	assert.Equal(t, dh/2, cy)

	for _, p := range [][2]float64{{150, 0}, {-150, 0}, {0, 150}, {0, -150}} {
		x, y := m.project(p[0], p[1])
		assert.True(t, x >= 0 && x < dw && y >= 0 && y < dh, "%v projected outside: %d,%d", p, x, y)
	}
}

func TestModelSurvivesNaN(t *testing.T) {
	m := NewModel(150, ThemeWeb)
	nan := physics.BobPosition{}
	nan.X1 = nan.X1 / nan.X1

	tm, _ := m.Update(FrameMsg{Step: 1, Position: nan})
	require.NotPanics(t, func() { _ = tm.View() })
}

func TestModelClampsRunawayPositions(t *testing.T) {
	m := NewModel(150, ThemeWeb)
	dw, _ := m.canvas.Dots()

	x, _ := m.project(1e300, 0)
	assert.Equal(t, dw/2+2*dw, x)
}

func TestModelQuits(t *testing.T) {
	m := NewModel(150, ThemeWeb)

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
	} {
		tm, cmd := m.Update(key)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
		assert.True(t, tm.(Model).stopped)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.Nil(t, cmd)
}

func TestViewHasNoBlankLinesInCanvas(t *testing.T) {
	m := NewModel(150, ThemeMinimal)
	lines := strings.Split(m.canvas.String(), "\n")
	assert.Len(t, lines, canvasHeight+1)
}
