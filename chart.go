package visualate

import (
	"bufio"
	"io"
	"math"

	"github.com/midbel/svg"
)

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// Anchor places an element given as fractions of the plot area.
type Anchor struct {
	X       float64
	Y       float64
	XAnchor string
	YAnchor string
	XPad    float64
	YPad    float64
}

func (a Anchor) place(c Chart, width, height float64) (float64, float64) {
	var (
		left = c.Padding.Left + a.X*c.DrawingWidth() + a.XPad
		top  = c.Padding.Top + (1-a.Y)*c.DrawingHeight()
	)
	switch a.XAnchor {
	case "right":
		left -= width + 2*a.XPad
	case "center":
		left -= width/2 + a.XPad
	}
	switch a.YAnchor {
	case "bottom":
		top -= height + a.YPad
	case "middle":
		top -= height / 2
	default:
		top += a.YPad
	}
	return left, top
}

type Legend struct {
	Show       bool
	Title      string
	Font       Font
	Background string
	Border     Line
	Horizontal bool
	Anchor
}

type Chart struct {
	Title       string
	TitleFont   Font
	TitleAnchor Anchor

	Width  float64
	Height float64

	Padding
	AutoExpand bool

	Paper string
	Plot  string

	X      Domain
	Y      Domain
	Left   *NumberAxis
	Bottom *NumberAxis

	Legend   Legend
	ColorBar *ColorBar
	BarAt    Anchor
}

func (c Chart) DrawingWidth() float64 {
	return c.Width - c.Padding.Horizontal()
}

func (c Chart) DrawingHeight() float64 {
	return c.Height - c.Padding.Vertical()
}

// Render writes the chart and its series as an SVG document. The scales of
// the series and axis are derived from the domains of the chart once the
// final size of the plot area is known.
func (c Chart) Render(w io.Writer, set ...Serie) error {
	c = c.expand(set)

	el := svg.NewSVG(svg.WithDimension(c.Width, c.Height))
	el.OmitProlog = true

	el.Append(c.drawBackground())
	el.Append(c.drawAxis())

	area := c.getArea()
	for _, s := range set {
		s.X = c.xscale()
		s.Y = c.yscale()
		area.Append(s.Render())
	}
	el.Append(area.AsElement())

	if lg := c.drawLegend(set); lg != nil {
		el.Append(lg)
	}
	if cb := c.drawColorBar(set); cb != nil {
		el.Append(cb)
	}
	if c.Title != "" {
		el.Append(c.drawTitle())
	}

	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func (c Chart) xscale() Scaler {
	return NumberScaler(c.X, NewRange(0, c.DrawingWidth()))
}

func (c Chart) yscale() Scaler {
	return NumberScaler(c.Y, NewRange(c.DrawingHeight(), 0))
}

// expand grows the right padding so that the legend and the color bar fit
// beside the plot area.
func (c Chart) expand(set []Serie) Chart {
	if !c.AutoExpand {
		return c
	}
	var need float64
	if c.Legend.Show && c.Legend.X >= 1 {
		w, _ := c.legendSize(set)
		need += w + c.Legend.XPad + FontSize
	}
	if c.ColorBar != nil && c.BarAt.X >= 1 {
		need += c.ColorBar.Width() + c.BarAt.XPad*2
	}
	if need > c.Padding.Right && need < c.Width/2 {
		c.Padding.Right = need + FontSize
	}
	return c
}

func (c Chart) getArea() svg.Group {
	var g svg.Group
	g.Class = append(g.Class, "area")
	g.Transform = svg.Translate(c.Padding.Left, c.Padding.Top)
	return g
}

func (c Chart) drawBackground() svg.Element {
	g := svg.NewGroup(svg.WithID("background"))
	if c.Paper != "" {
		var rec svg.Rect
		rec.Pos = svg.NewPos(0, 0)
		rec.Dim = svg.NewDim(c.Width, c.Height)
		rec.Fill = svg.NewFill(c.Paper)
		g.Append(rec.AsElement())
	}
	if c.Plot != "" {
		var rec svg.Rect
		rec.Pos = svg.NewPos(c.Padding.Left, c.Padding.Top)
		rec.Dim = svg.NewDim(c.DrawingWidth(), c.DrawingHeight())
		rec.Fill = svg.NewFill(c.Plot)
		g.Append(rec.AsElement())
	}
	return g.AsElement()
}

func (c Chart) drawAxis() svg.Element {
	g := svg.NewGroup(svg.WithID("axis"))
	if c.Left != nil {
		a := *c.Left
		a.Scaler = c.yscale()
		a.Orientation = OrientLeft
		g.Append(a.Render(c.DrawingHeight(), c.DrawingWidth(), c.Padding.Left, c.Padding.Top))
	}
	if c.Bottom != nil {
		a := *c.Bottom
		a.Scaler = c.xscale()
		a.Orientation = OrientBottom
		g.Append(a.Render(c.DrawingWidth(), c.DrawingHeight(), c.Padding.Left, c.Height-c.Padding.Bottom))
	}
	return g.AsElement()
}

func (c Chart) drawTitle() svg.Element {
	var (
		grp  = getBaseGroup(c.TitleFont.Color, "title")
		x    = c.TitleAnchor.X * c.Width
		y    = (1 - c.TitleAnchor.Y) * c.Height
		text = c.TitleFont.text(c.Title, x, y)
	)
	grp.Stroke = svg.Stroke{}
	switch c.TitleAnchor.XAnchor {
	case "left":
		text.Anchor = "start"
	case "right":
		text.Anchor = "end"
	default:
		text.Anchor = "middle"
	}
	switch c.TitleAnchor.YAnchor {
	case "bottom":
		text.Baseline = "auto"
	case "middle":
		text.Baseline = "middle"
	default:
		text.Baseline = "hanging"
	}
	grp.Append(text.AsElement())
	return grp.AsElement()
}

func (c Chart) legendSize(series []Serie) (float64, float64) {
	var (
		size   = c.Legend.Font.size()
		offset = size * 1.4
		width  float64
		height float64
		items  []string
	)
	if c.Legend.Title != "" {
		items = append(items, c.Legend.Title)
	}
	for _, s := range series {
		if s.Title != "" {
			items = append(items, s.Title)
		}
	}
	if len(items) == 0 {
		return 0, 0
	}
	if c.Legend.Horizontal {
		for _, str := range items {
			width += c.legendItemWidth(str)
		}
		return width, offset
	}
	for _, str := range items {
		width = math.Max(width, c.legendItemWidth(str))
		height += offset
	}
	return width, height
}

func (c Chart) legendItemWidth(str string) float64 {
	return float64(len(str))*c.Legend.Font.size()*0.6 + 30
}

func (c Chart) drawLegend(series []Serie) svg.Element {
	if !c.Legend.Show {
		return nil
	}
	var (
		size   = c.Legend.Font.size()
		offset = size * 1.4
		grp    = getBaseGroup(c.Legend.Font.Color, "legend")
		row    float64
		col    float64
	)
	width, height := c.legendSize(series)
	if height == 0 {
		return nil
	}
	grp.Stroke = svg.Stroke{}
	if c.Legend.Background != "" {
		var bg svg.Rect
		bg.Pos = svg.NewPos(-size*0.5, -offset*0.5)
		bg.Dim = svg.NewDim(width+size, height)
		bg.Fill = svg.NewFill(c.Legend.Background)
		grp.Append(bg.AsElement())
	}
	if c.Legend.Border.Width > 0 {
		bd := outline(width+size, height, c.Legend.Border)
		var g svg.Group
		g.Transform = svg.Translate(-size*0.5, -offset*0.5)
		g.Append(bd)
		grp.Append(g.AsElement())
	}
	if c.Legend.Title != "" {
		tx := c.Legend.Font.text(c.Legend.Title, 0, 0)
		tx.Baseline = "middle"
		grp.Append(tx.AsElement())
		row++
		col += c.legendItemWidth(c.Legend.Title)
	}
	for i, s := range series {
		if s.Title == "" {
			continue
		}
		color := s.Color
		if color == "" {
			color = Category10.At(i)
		}
		var g svg.Group
		g.Transform = svg.Translate(0, row*offset)
		if c.Legend.Horizontal {
			g.Transform = svg.Translate(col, 0)
			col += c.legendItemWidth(s.Title)
		}
		li := svg.NewLine(svg.NewPos(0, 0), svg.NewPos(20, 0))
		li.Stroke = svg.NewStroke(color, 2)

		tx := c.Legend.Font.text(s.Title, 30, 0)
		tx.Baseline = "middle"

		g.Append(li.AsElement())
		g.Append(tx.AsElement())
		grp.Append(g.AsElement())
		row++
	}
	left, top := c.Legend.place(c, width, height)
	grp.Transform = svg.Translate(left, top+offset*0.5)
	return grp.AsElement()
}

func (c Chart) drawColorBar(series []Serie) svg.Element {
	if c.ColorBar == nil {
		return nil
	}
	bar := *c.ColorBar
	if bar.Length <= 0 {
		bar.Length = c.DrawingHeight()
	}
	left, top := c.BarAt.place(c, bar.Width(), bar.Length)
	if c.Legend.Show && c.Legend.X >= 1 && c.BarAt.X >= 1 {
		w, _ := c.legendSize(series)
		left += w + c.Legend.XPad
	}
	return bar.Render(left, top)
}
