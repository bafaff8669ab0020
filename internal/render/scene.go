package render

import (
	"github.com/san-kum/pendulum/internal/physics"
)

const (
	DefaultWidth  = 400
	DefaultHeight = 400

	Color       = "#596594"
	StrokeWidth = 2.0
	BobRadius   = 10.0
)

// Element IDs shared by the server-rendered markup and the updates sent
// to the browser.
const (
	IDArm1 = "arm1"
	IDArm2 = "arm2"
	IDBob1 = "bob1"
	IDBob2 = "bob2"
)

type Scene struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func DefaultScene() Scene {
	return Scene{Width: DefaultWidth, Height: DefaultHeight}
}

// Origin is the pivot in canvas coordinates.
func (s Scene) Origin() (float64, float64) {
	return float64(s.Width) / 2, float64(s.Height) / 2
}

type Line struct {
	ID string  `json:"id"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

type Circle struct {
	ID string  `json:"id"`
	CX float64 `json:"cx"`
	CY float64 `json:"cy"`
	R  float64 `json:"r"`
}

// Shapes is one frame: pivot to bob 1, bob 1 to bob 2, and a circle on
// each bob.
type Shapes struct {
	Arms [2]Line   `json:"arms"`
	Bobs [2]Circle `json:"bobs"`
}

func (s Scene) Shapes(pos physics.BobPosition) Shapes {
	ox, oy := s.Origin()
	x1, y1 := ox+pos.X1, oy+pos.Y1
	x2, y2 := ox+pos.X2, oy+pos.Y2

	return Shapes{
		Arms: [2]Line{
			{ID: IDArm1, X1: ox, Y1: oy, X2: x1, Y2: y1},
			{ID: IDArm2, X1: x1, Y1: y1, X2: x2, Y2: y2},
		},
		Bobs: [2]Circle{
			{ID: IDBob1, CX: x1, CY: y1, R: BobRadius},
			{ID: IDBob2, CX: x2, CY: y2, R: BobRadius},
		},
	}
}

// Renderer draws one frame. A non-nil error stops whatever is driving it.
type Renderer interface {
	Render(pos physics.BobPosition) error
}

type RendererFunc func(pos physics.BobPosition) error

func (f RendererFunc) Render(pos physics.BobPosition) error { return f(pos) }
