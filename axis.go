package visualate

import (
	"strconv"

	"github.com/midbel/svg"
)

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

func (o Orientation) Reverse() bool {
	return o == OrientRight || o == OrientTop
}

type Axis interface {
	Render(float64, float64, float64, float64) svg.Element
}

// NumberAxis draws a numeric axis of a given length. The grid lines, when
// enabled, span size pixels across the plot area.
type NumberAxis struct {
	Label string
	Orientation
	Ticks  int
	Scaler Scaler
	Domain []float64
	Format func(float64) string

	Font     Font
	Line     Line
	Grid     Line
	ZeroLine Line

	WithLine       bool
	WithInnerTicks bool
	WithLabelTicks bool
	WithGrid       bool
	WithZero       bool
}

func (a NumberAxis) Render(length, size, left, top float64) svg.Element {
	g := svg.NewGroup(svg.WithTranslate(left, top))
	g.Class = append(g.Class, "axis")

	var (
		data   = a.Domain
		format = a.Format
		stroke = a.Line.stroke()
	)
	if len(data) == 0 {
		data = a.Scaler.Values(a.Ticks)
	}
	if format == nil {
		format = func(f float64) string {
			return strconv.FormatFloat(f, 'f', 2, 64)
		}
	}
	if a.WithGrid {
		grid := a.Grid.stroke()
		for _, f := range data {
			tick := lineTick(a.Orientation, a.offset(f), -size, grid)
			g.Append(tick.AsElement())
		}
	}
	if a.WithZero && a.Scaler.Domain.Min < 0 && a.Scaler.Domain.Max > 0 {
		zero := lineTick(a.Orientation, a.offset(0), -size, a.ZeroLine.stroke())
		g.Append(zero.AsElement())
	}
	if a.WithLine {
		d := domainLine(a.Orientation, length, stroke)
		g.Append(d.AsElement())
	}

	labels := getBaseGroup(a.Font.Color, "ticks")
	labels.Stroke = svg.Stroke{}
	for _, f := range data {
		pos := a.offset(f)
		if a.WithInnerTicks {
			tick := lineTick(a.Orientation, pos, FontSize*0.5, stroke)
			g.Append(tick.AsElement())
		}
		if a.WithLabelTicks {
			text := tickText(a.Orientation, format(f), pos, a.Font)
			labels.Append(text.AsElement())
		}
	}
	g.Append(labels.AsElement())
	if a.Label != "" {
		g.Append(a.drawLabel(length))
	}
	return g.AsElement()
}

func (a NumberAxis) offset(f float64) float64 {
	return a.Scaler.Scale(f) - a.Scaler.Range.Min()
}

func (a NumberAxis) drawLabel(length float64) svg.Element {
	var (
		gap  = a.Font.size() * 3.5
		grp  = getBaseGroup(a.Font.Color, "label")
		text = a.Font.text(a.Label, 0, 0)
	)
	grp.Stroke = svg.Stroke{}
	text.Anchor = "middle"
	text.Baseline = "middle"
	switch {
	case a.Vertical() && !a.Reverse():
		grp.Transform = svg.Translate(-gap, length/2)
		grp.Transform.RA = -90
	case a.Vertical() && a.Reverse():
		grp.Transform = svg.Translate(gap, length/2)
		grp.Transform.RA = 90
	case a.Reverse():
		grp.Transform = svg.Translate(length/2, -gap)
	default:
		grp.Transform = svg.Translate(length/2, gap)
	}
	grp.Append(text.AsElement())
	return grp.AsElement()
}

func domainLine(orient Orientation, length float64, stroke svg.Stroke) svg.Line {
	x, y := length, 0.0
	if orient.Vertical() {
		x, y = y, x
	}
	d := svg.NewLine(svg.NewPos(0, 0), svg.NewPos(x, y))
	d.Stroke = stroke
	return d
}

func lineTick(orient Orientation, offset, size float64, stroke svg.Stroke) svg.Line {
	var (
		pos1 = svg.NewPos(offset, 0)
		pos2 = svg.NewPos(offset, size)
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		pos1.X, pos1.Y = 0, offset
		pos2.X, pos2.Y = -size, offset
	case orient.Vertical() && orient.Reverse():
		pos1.X, pos1.Y = 0, offset
		pos2.X, pos2.Y = size, offset
	case !orient.Vertical() && orient.Reverse():
		pos2.Y = -size
	default:
	}
	tick := svg.NewLine(pos1, pos2)
	tick.Stroke = stroke
	return tick
}

func tickText(orient Orientation, str string, offset float64, font Font) svg.Text {
	var (
		base   = "hanging"
		anchor = "middle"
		x, y   = offset, font.size() * 1.2
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		base = "middle"
		anchor = "end"
		x, y = -y, x
	case orient.Vertical() && orient.Reverse():
		base = "middle"
		anchor = "start"
		x, y = y, x
	case !orient.Vertical() && orient.Reverse():
		base = "auto"
		y = -y
	default:
	}
	text := font.text(str, x, y)
	text.Anchor = anchor
	text.Baseline = base
	return text
}
