package visualate

import (
	"math"

	"github.com/midbel/slices"
	"github.com/midbel/svg"
)

// TextPosition tells where the title of a serie is written along its line.
type TextPosition int

const (
	TextNone TextPosition = iota
	TextAfter
)

type Renderer interface {
	Render(Serie) svg.Element
}

// PointRenderer draws one marker per point. When the serie carries values
// and a color scale is given, each marker is filled with the color of its
// value along Domain.
type PointRenderer struct {
	Color   string
	Point   PointFunc
	Scale   *ColorScale
	Domain  Domain
	Opacity float64
}

func (r PointRenderer) Render(serie Serie) svg.Element {
	grp := getBaseGroup(r.Color, "scatter")
	grp.Id = serie.Title
	if r.Opacity > 0 {
		grp.Fill.Opacity = r.Opacity
	}
	point := r.Point
	if point == nil {
		point = GetCircle
	}
	colored := r.Scale != nil && len(serie.Values) == len(serie.Points)
	for i, pt := range serie.Points {
		if isMissing(pt) {
			continue
		}
		var (
			x     = serie.X.Scale(pt.X)
			y     = serie.Y.Scale(pt.Y)
			color string
		)
		if colored {
			color = r.Scale.At(r.Domain.Normalize(serie.Values[i]))
		}
		grp.Append(point(svg.NewPos(x, y), color))
	}
	return grp.AsElement()
}

// LinearRenderer joins the points of a serie with straight segments. Missing
// values break the line.
type LinearRenderer struct {
	Line Line
	Text TextPosition
}

func (r LinearRenderer) Render(serie Serie) svg.Element {
	var (
		grp = getBaseGroup(r.Line.Color, "line")
		pat = getBasePath()
		pos svg.Pos
		nan = true
	)
	grp.Id = serie.Title
	pat.Stroke = r.Line.stroke()
	for _, pt := range serie.Points {
		if isMissing(pt) {
			nan = true
			continue
		}
		pos.X = serie.X.Scale(pt.X)
		pos.Y = serie.Y.Scale(pt.Y)
		if nan {
			nan = false
			pat.AbsMoveTo(pos)
		} else {
			pat.AbsLineTo(pos)
		}
	}
	if len(serie.Points) == 0 {
		return grp.AsElement()
	}

	if r.Text == TextAfter && serie.Title != "" {
		pt := slices.Lst(serie.Points)
		txt := getLineText(serie.Title, serie.X.Scale(pt.X), serie.Y.Scale(pt.Y))
		grp.Append(txt.AsElement())
	}
	grp.Append(pat.AsElement())
	return grp.AsElement()
}

// getLineText writes str just below and before the end of a line so that it
// stays inside the plot area.
func getLineText(str string, x, y float64) svg.Text {
	txt := svg.NewText(str)
	txt.Font = svg.NewFont(FontSize)
	txt.Pos = svg.NewPos(x-FontSize*0.4, y+FontSize*0.4)
	txt.Anchor = "end"
	txt.Baseline = "hanging"
	return txt
}

func getBasePath() svg.Path {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Stroke = svg.NewStroke(currentColour, 1)
	pat.Fill = svg.NewFill("none")
	return pat
}

func getBaseGroup(color string, class ...string) svg.Group {
	var g svg.Group
	if color != "" {
		g.Fill = svg.NewFill(color)
		g.Stroke = svg.NewStroke(color, 1)
	}
	g.Class = class
	return g
}

func isMissing(pt Point) bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}
