package visualate

import (
	"github.com/midbel/svg"
)

var DefaultSize float64 = 6

// PointFunc draws a marker at pos. An empty color gives a marker filled
// with the color inherited from its group.
type PointFunc func(pos svg.Pos, color string) svg.Element

func GetCircle(pos svg.Pos, color string) svg.Element {
	var el svg.Circle
	el.Pos = pos
	el.Fill = svg.NewFill(markerColor(color))
	el.Radius = DefaultSize / 2
	return el.AsElement()
}

func GetSquare(pos svg.Pos, color string) svg.Element {
	half := DefaultSize / 2
	pos.X -= half
	pos.Y -= half

	var el svg.Rect
	el.Pos = pos
	el.Dim = svg.NewDim(DefaultSize, DefaultSize)
	el.Fill = svg.NewFill(markerColor(color))

	return el.AsElement()
}

func GetDiamond(pos svg.Pos, color string) svg.Element {
	half := DefaultSize / 2
	pos.X -= half
	pos.Y -= half

	var el svg.Rect
	el.Pos = pos
	el.Dim = svg.NewDim(DefaultSize, DefaultSize)
	el.Fill = svg.NewFill(markerColor(color))
	el.Transform.RA = 45
	el.Transform.RX = pos.X + half
	el.Transform.RY = pos.Y + half

	return el.AsElement()
}

// GetShape gives the marker registered under name, circle by default.
func GetShape(name string) PointFunc {
	switch name {
	case "square":
		return GetSquare
	case "diamond":
		return GetDiamond
	default:
		return GetCircle
	}
}

func markerColor(color string) string {
	if color == "" {
		return currentColour
	}
	return color
}
