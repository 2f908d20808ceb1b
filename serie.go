package visualate

import (
	"github.com/midbel/svg"
)

type Serie struct {
	Color string
	Title string

	X      Scaler
	Y      Scaler
	Points []Point
	// Values, when set, holds one value per point mapped through the color
	// scale of the renderer.
	Values []float64

	Renderer Renderer
}

func (s Serie) Render() svg.Element {
	return s.Renderer.Render(s)
}
