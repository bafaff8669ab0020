package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/pendulum/internal/physics"
)

// SVGElements returns the four shape elements without the enclosing svg
// tag, for embedding into a page.
func SVGElements(shapes Shapes) string {
	var sb strings.Builder
	for _, l := range shapes.Arms {
		sb.WriteString(fmt.Sprintf(`<line id="%s" x1="%.3f" y1="%.3f" x2="%.3f" y2="%.3f" stroke="%s" stroke-width="%g"/>`+"\n",
			l.ID, l.X1, l.Y1, l.X2, l.Y2, Color, StrokeWidth))
	}
	for _, c := range shapes.Bobs {
		sb.WriteString(fmt.Sprintf(`<circle id="%s" cx="%.3f" cy="%.3f" r="%g" fill="%s"/>`+"\n",
			c.ID, c.CX, c.CY, c.R, Color))
	}
	return sb.String()
}

// SVG returns a standalone document showing the pendulum at pos.
func (s Scene) SVG(pos physics.BobPosition) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		s.Width, s.Height, s.Width, s.Height))
	sb.WriteString(SVGElements(s.Shapes(pos)))
	sb.WriteString("</svg>\n")
	return sb.String()
}

// SVGRenderer writes a full document per frame.
type SVGRenderer struct {
	w     io.Writer
	scene Scene
}

func NewSVGRenderer(w io.Writer, scene Scene) *SVGRenderer {
	return &SVGRenderer{w: w, scene: scene}
}

func (r *SVGRenderer) Render(pos physics.BobPosition) error {
	if _, err := io.WriteString(r.w, r.scene.SVG(pos)); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}
