package visualate

import (
	"github.com/midbel/svg"
)

const (
	FontSize      = 12.0
	currentColour = "currentColor"
)

// Font is the text style of a chart element. Family is kept for callers that
// export it but the SVG output only carries size and color.
type Font struct {
	Family string
	Size   float64
	Color  string
}

func DefaultFont() Font {
	return Font{
		Size:  FontSize,
		Color: "black",
	}
}

func (f Font) size() float64 {
	if f.Size <= 0 {
		return FontSize
	}
	return f.Size
}

func (f Font) text(str string, x, y float64) svg.Text {
	txt := svg.NewText(str)
	txt.Font = svg.NewFont(f.size())
	txt.Pos = svg.NewPos(x, y)
	return txt
}

// Line is the stroke style of a chart element.
type Line struct {
	Color   string
	Width   float64
	Opacity float64
	Dashed  bool
}

func (l Line) stroke() svg.Stroke {
	var (
		color = l.Color
		width = l.Width
	)
	if color == "" {
		color = currentColour
	}
	if width <= 0 {
		width = 1
	}
	sk := svg.NewStroke(color, width)
	if l.Opacity > 0 {
		sk.Opacity = l.Opacity
	}
	if l.Dashed {
		sk.DashArray(5)
	}
	return sk
}
