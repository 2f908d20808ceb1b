package visualate

import (
	"github.com/midbel/svg"
)

// colorBarSlices is the number of bands used to approximate the gradient of
// a color bar.
const colorBarSlices = 64

// ColorBar draws the legend of a color scale: a vertical gradient going from
// the lowest value at the bottom to the highest at the top, with ticks on its
// right side.
type ColorBar struct {
	Scale  ColorScale
	Domain Domain

	Thickness  float64
	Length     float64
	Background string

	Outline Line
	Border  Line

	Ticks      int
	TickValues []float64
	TickLine   Line
	TickLen    float64
	TickFont   Font
	Outside    bool
	ShowLabels bool
	Format     func(float64) string

	Title     string
	TitleFont Font
	TitleSide string
}

// Width gives the horizontal room taken by the bar and its labels.
func (c ColorBar) Width() float64 {
	w := c.Thickness + c.TickLen
	if c.ShowLabels {
		w += c.TickFont.size() * 4
	}
	return w
}

func (c ColorBar) Render(left, top float64) svg.Element {
	grp := svg.NewGroup(svg.WithTranslate(left, top))
	grp.Class = append(grp.Class, "colorbar")

	if c.Background != "" && c.Background != "none" {
		var bg svg.Rect
		bg.Pos = svg.NewPos(0, 0)
		bg.Dim = svg.NewDim(c.Width(), c.Length)
		bg.Fill = svg.NewFill(c.Background)
		grp.Append(bg.AsElement())
	}

	step := c.Length / colorBarSlices
	for i := 0; i < colorBarSlices; i++ {
		var (
			t  = (float64(i) + 0.5) / colorBarSlices
			el svg.Rect
		)
		el.Pos = svg.NewPos(0, c.Length-float64(i+1)*step)
		el.Dim = svg.NewDim(c.Thickness, step+0.5)
		el.Fill = svg.NewFill(c.Scale.At(t))
		grp.Append(el.AsElement())
	}
	if c.Outline.Width > 0 {
		grp.Append(outline(c.Thickness, c.Length, c.Outline))
	}
	if c.Border.Width > 0 {
		grp.Append(outline(c.Width(), c.Length, c.Border))
	}
	grp.Append(c.drawTicks())
	if c.Title != "" {
		grp.Append(c.drawTitle())
	}
	return grp.AsElement()
}

func (c ColorBar) scaler() Scaler {
	return NumberScaler(c.Domain, NewRange(c.Length, 0))
}

func (c ColorBar) drawTicks() svg.Element {
	var (
		scale  = c.scaler()
		values = c.TickValues
		format = c.Format
		grp    = getBaseGroup(c.TickFont.Color, "ticks")
		stroke = c.TickLine.stroke()
	)
	grp.Stroke = svg.Stroke{}
	if len(values) == 0 {
		values = c.Domain.Values(c.Ticks)
	}
	if format == nil {
		format = NumberFormat{Precision: 2}.Format
	}
	x1, x2 := c.Thickness, c.Thickness+c.TickLen
	if !c.Outside {
		x1, x2 = c.Thickness-c.TickLen, c.Thickness
	}
	for _, v := range values {
		if !c.Domain.Contains(v) {
			continue
		}
		y := scale.Scale(v)
		if c.TickLen > 0 {
			li := svg.NewLine(svg.NewPos(x1, y), svg.NewPos(x2, y))
			li.Stroke = stroke
			grp.Append(li.AsElement())
		}
		if !c.ShowLabels {
			continue
		}
		txt := c.TickFont.text(format(v), c.Thickness+c.TickLen+c.TickFont.size()*0.3, y)
		txt.Anchor = "start"
		txt.Baseline = "middle"
		grp.Append(txt.AsElement())
	}
	return grp.AsElement()
}

func (c ColorBar) drawTitle() svg.Element {
	var (
		grp  = getBaseGroup(c.TitleFont.Color, "title")
		size = c.TitleFont.size()
		text = c.TitleFont.text(c.Title, 0, 0)
	)
	grp.Stroke = svg.Stroke{}
	switch c.TitleSide {
	case "bottom":
		text.Pos = svg.NewPos(c.Thickness/2, c.Length+size*1.5)
		text.Anchor = "middle"
		text.Baseline = "middle"
	case "right":
		grp.Transform = svg.Translate(c.Width()+size, c.Length/2)
		grp.Transform.RA = 90
		text.Anchor = "middle"
	default:
		text.Pos = svg.NewPos(0, -size)
		text.Anchor = "start"
		text.Baseline = "auto"
	}
	grp.Append(text.AsElement())
	return grp.AsElement()
}

func outline(width, height float64, line Line) svg.Element {
	var pat svg.Path
	pat.Fill = svg.NewFill("none")
	pat.Stroke = line.stroke()
	pat.AbsMoveTo(svg.NewPos(0, 0))
	pat.AbsLineTo(svg.NewPos(width, 0))
	pat.AbsLineTo(svg.NewPos(width, height))
	pat.AbsLineTo(svg.NewPos(0, height))
	pat.ClosePath()
	return pat.AsElement()
}
