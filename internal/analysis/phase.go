package analysis

import (
	"strings"

	"github.com/san-kum/pendulum/internal/dynamo"
)

type Point struct {
	X, Y float64
}

// PhasePortrait pairs two state components of every recorded state, for
// example theta1 against omega1.
func PhasePortrait(states []dynamo.State, xIdx, yIdx int) []Point {
	points := make([]Point, 0, len(states))
	for _, s := range states {
		if xIdx >= len(s) || yIdx >= len(s) {
			return nil
		}
		points = append(points, Point{X: s[xIdx], Y: s[yIdx]})
	}
	return points
}

// PoincareSection records (x[recordX], x[recordY]) each time x[crossIdx]
// crosses threshold upward. Recorded values are linearly interpolated to
// the crossing between the two bracketing states.
func PoincareSection(states []dynamo.State, crossIdx int, threshold float64, recordX, recordY int) []Point {
	var points []Point
	for i := 1; i < len(states); i++ {
		prev, curr := states[i-1], states[i]
		if crossIdx >= len(curr) || recordX >= len(curr) || recordY >= len(curr) {
			return nil
		}
		a, b := prev[crossIdx], curr[crossIdx]
		if !(a < threshold && b >= threshold) {
			continue
		}
		frac := (threshold - a) / (b - a)
		points = append(points, Point{
			X: prev[recordX] + frac*(curr[recordX]-prev[recordX]),
			Y: prev[recordY] + frac*(curr[recordY]-prev[recordY]),
		})
	}
	return points
}

// Scatter plots points on a width x height character grid, with axes
// drawn where zero is in range.
func Scatter(points []Point, width, height int) string {
	if len(points) == 0 || width < 2 || height < 2 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	rangeX, rangeY := maxX-minX, maxY-minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX, rangeY = maxX-minX, maxY-minY

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}

	col := func(x float64) int { return int((x - minX) / rangeX * float64(width-1)) }
	row := func(y float64) int { return height - 1 - int((y-minY)/rangeY*float64(height-1)) }

	if minX <= 0 && maxX >= 0 {
		c := col(0)
		for r := range grid {
			grid[r][c] = '│'
		}
	}
	if minY <= 0 && maxY >= 0 {
		r := row(0)
		for c := range grid[r] {
			grid[r][c] = '─'
		}
	}
	for _, p := range points {
		r, c := row(p.Y), col(p.X)
		if r >= 0 && r < height && c >= 0 && c < width {
			grid[r][c] = '•'
		}
	}

	var sb strings.Builder
	for _, r := range grid {
		sb.WriteString(string(r))
		sb.WriteByte('\n')
	}
	return sb.String()
}
