package viz

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/pendulum/internal/driver"
	"github.com/san-kum/pendulum/internal/pendulum"
	"github.com/san-kum/pendulum/internal/physics"
)

const (
	canvasWidth     = 60
	canvasHeight    = 30
	trailLength     = 200
	historyCapacity = 300
)

// FrameMsg carries one simulation step into the Bubble Tea program.
type FrameMsg struct {
	Step     int
	Time     float64
	Position physics.BobPosition
	Energy   float64
}

// Model is the terminal view of one running pendulum.
type Model struct {
	canvas  *Canvas
	styles  styles
	reach   float64
	frame   FrameMsg
	trail   []struct{ x, y int }
	energy  []float64
	stopped bool
}

// NewModel sizes the drawing so a fully stretched pendulum of the given
// reach, in display units, just fits.
func NewModel(reach float64, theme Theme) Model {
	return Model{
		canvas: NewCanvas(canvasWidth, canvasHeight),
		styles: newStyles(theme),
		reach:  reach,
		trail:  make([]struct{ x, y int }, 0, trailLength),
		energy: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.stopped = true
			return m, tea.Quit
		}
	case FrameMsg:
		m.frame = msg
		m.energy = appendBounded(m.energy, msg.Energy, historyCapacity)
		bx, by := m.project(msg.Position.X2, msg.Position.Y2)
		m.trail = append(m.trail, struct{ x, y int }{bx, by})
		if len(m.trail) > trailLength {
			m.trail = m.trail[1:]
		}
	}
	return m, nil
}

func appendBounded(xs []float64, v float64, n int) []float64 {
	xs = append(xs, v)
	if len(xs) > n {
		xs = xs[1:]
	}
	return xs
}

// project maps display coordinates, pivot at the origin and y down, to
// canvas dots with the pivot in the middle.
func (m Model) project(x, y float64) (int, int) {
	dw, dh := m.canvas.Dots()
	cx, cy := dw/2, dh/2
	if m.reach <= 0 || math.IsNaN(x) || math.IsNaN(y) {
		return cx, cy
	}
	k := (float64(min(dw, dh))/2 - 2) / m.reach
	return cx + clampDots(x*k, dw), cy + clampDots(y*k, dh)
}

// clampDots keeps runaway coordinates near the canvas so line drawing
// stays bounded.
func clampDots(v float64, size int) int {
	limit := float64(2 * size)
	return int(math.Round(math.Max(-limit, math.Min(limit, v))))
}

func (m Model) draw() {
	m.canvas.Clear()
	for _, pt := range m.trail {
		m.canvas.Set(pt.x, pt.y)
	}

	pos := m.frame.Position
	ox, oy := m.project(0, 0)
	x1, y1 := m.project(pos.X1, pos.Y1)
	x2, y2 := m.project(pos.X2, pos.Y2)

	m.canvas.Set(ox, oy)
	m.canvas.DrawLine(ox, oy, x1, y1)
	m.canvas.DrawLine(x1, y1, x2, y2)
	m.canvas.Disc(x1, y1, 1)
	m.canvas.Disc(x2, y2, 2)
}

func (m Model) View() string {
	m.draw()
	canvasView := m.styles.canvas.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(m.styles.header.Render("DOUBLE PENDULUM") + "\n")
	if len(m.energy) > 1 {
		chart := asciigraph.Plot(m.energy, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Energy"))
		s.WriteString(m.styles.graph.Render(chart) + "\n")
	}
	row := func(label, value string) {
		s.WriteString(m.styles.label.Render(label) + m.styles.value.Render(value) + "\n")
	}
	row("Step", fmt.Sprintf("%d", m.frame.Step))
	row("Time", fmt.Sprintf("%.2fs", m.frame.Time))
	row("Energy", fmt.Sprintf("%.3f", m.frame.Energy))
	row("Bob 1", fmt.Sprintf("(%.1f, %.1f)", m.frame.Position.X1, m.frame.Position.Y1))
	row("Bob 2", fmt.Sprintf("(%.1f, %.1f)", m.frame.Position.X2, m.frame.Position.Y2))
	s.WriteString(m.styles.help.Render("q: quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, m.styles.stats.Render(s.String()))
}

// Renderer forwards driver frames to a running program.
type Renderer struct {
	program    *tea.Program
	integrator *pendulum.Integrator
}

func NewRenderer(p *tea.Program, in *pendulum.Integrator) *Renderer {
	return &Renderer{program: p, integrator: in}
}

func (r *Renderer) Render(pos physics.BobPosition) error {
	r.program.Send(FrameMsg{
		Step:     r.integrator.Steps(),
		Time:     r.integrator.Time(),
		Position: pos,
		Energy:   r.integrator.Energy(),
	})
	return nil
}

// Run shows the pendulum until the user quits or ctx is done.
func Run(ctx context.Context, in *pendulum.Integrator, interval time.Duration, theme Theme, opts ...tea.ProgramOption) error {
	p := in.Params()
	model := NewModel((p.L1+p.L2)*p.Scale, theme)
	model.frame = FrameMsg{Position: in.Position(), Energy: in.Energy()}

	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	program := tea.NewProgram(model, opts...)

	d := driver.New(in, NewRenderer(program, in), interval)
	if err := d.Start(ctx); err != nil {
		return err
	}
	defer d.Stop()

	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run terminal view: %w", err)
	}
	return nil
}
