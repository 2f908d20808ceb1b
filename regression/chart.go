package regression

import (
	"math"

	"github.com/midbel/visualate"
	"github.com/midbel/visualate/canvas"
)

const defaultScale = "viridis"

// newChart turns the layout of a canvas into the settings of an SVG chart.
// Size, margins and axes fall back to their defaults when the canvas has
// none; every other part is only drawn when present.
func newChart(layout canvas.Layout) visualate.Chart {
	var (
		size    = canvas.DefaultSize()
		margins = canvas.DefaultMargins()
		axes    = canvas.DefaultAxes()
		font    = visualate.DefaultFont()
	)
	if layout.Has(canvas.KindSize) {
		size = layout.Size
	}
	if layout.Has(canvas.KindMargins) {
		margins = layout.Margins
	}
	if layout.Has(canvas.KindAxes) {
		axes = layout.Axes
	}
	if layout.Has(canvas.KindFont) {
		font = convertFont(layout.Font)
	}
	ch := visualate.Chart{
		Width:  size.Width,
		Height: size.Height,
		Padding: visualate.Padding{
			Top:    margins.Top + margins.Pad,
			Right:  margins.Right + margins.Pad,
			Bottom: margins.Bottom + margins.Pad,
			Left:   margins.Left + margins.Pad,
		},
		AutoExpand: margins.AutoExpand,
	}
	ch.Left = convertAxis(axes.Y, font)
	ch.Bottom = convertAxis(axes.X, font)

	if layout.Has(canvas.KindTitle) {
		ch.TitleFont = convertFont(layout.Title.Font)
		ch.Title = layout.Title.Text
		ch.TitleAnchor = visualate.Anchor{
			X:       layout.Title.X,
			Y:       layout.Title.Y,
			XAnchor: layout.Title.XAnchor,
			YAnchor: layout.Title.YAnchor,
		}
	}
	if layout.Has(canvas.KindBackground) {
		ch.Paper = layout.Background.PaperColor
		ch.Plot = layout.Background.PlotColor
	}
	if layout.Has(canvas.KindLegend) {
		lg := layout.Legend
		ch.Legend = visualate.Legend{
			Show:       lg.Show,
			Title:      lg.Title,
			Font:       convertFont(lg.Font),
			Background: lg.BgColor,
			Border: visualate.Line{
				Color: lg.BorderColor,
				Width: lg.BorderWidth,
			},
			Horizontal: lg.Orientation == "h",
			Anchor: visualate.Anchor{
				X:       lg.X,
				Y:       lg.Y,
				XAnchor: lg.XAnchor,
				YAnchor: lg.YAnchor,
			},
		}
	}
	return ch
}

func convertFont(f canvas.Font) visualate.Font {
	return visualate.Font{
		Family: f.Family,
		Size:   f.Size,
		Color:  f.Color,
	}
}

func convertAxis(a canvas.Axis, font visualate.Font) *visualate.NumberAxis {
	return &visualate.NumberAxis{
		Label:          a.Title,
		Ticks:          a.Ticks,
		Font:           font,
		Format:         visualate.NumberFormat{Precision: 2, SeparateThousands: true}.Format,
		Line:           visualate.Line{Color: a.LineColor},
		Grid:           visualate.Line{Color: a.GridColor},
		ZeroLine:       visualate.Line{Color: a.ZeroLineColor, Width: a.ZeroLineWidth},
		WithLine:       a.ShowLine,
		WithInnerTicks: a.ShowLine,
		WithLabelTicks: true,
		WithGrid:       a.ShowGrid,
		WithZero:       a.ZeroLine,
	}
}

// colorScale gives the scale the color axis maps values with.
func colorScale(layout canvas.Layout) (visualate.ColorScale, error) {
	name := layout.ColorScaleName()
	if name == "" {
		name = defaultScale
	}
	cs, err := visualate.GetColorScale(name)
	if err != nil {
		return cs, err
	}
	if layout.Has(canvas.KindColorAxisScales) && layout.ColorAxis.Scales.ReverseScale {
		cs = cs.Reverse()
	}
	return cs, nil
}

// colorDomain gives the domain of the color axis: the one of the layout when
// it is not automatic, else the extent of the data.
func colorDomain(layout canvas.Layout, data visualate.Domain) visualate.Domain {
	if !layout.Has(canvas.KindColorAxisDomain) {
		return data
	}
	dom := layout.ColorAxis.Domain
	if !dom.Auto && dom.Max > dom.Min {
		return visualate.NumberDomain(dom.Min, dom.Max)
	}
	if dom.Auto && dom.Mid != 0 {
		var (
			lo = dom.Mid - data.Min
			hi = data.Max - dom.Mid
			d  = lo
		)
		if hi > d {
			d = hi
		}
		return visualate.NumberDomain(dom.Mid-d, dom.Mid+d)
	}
	return data
}

// showColorBar reports whether the layout asks for a color bar. Without any
// color axis settings values are not mapped to colors at all.
func showColorBar(layout canvas.Layout) bool {
	if !layout.Has(canvas.KindColorAxisScales) {
		return false
	}
	return layout.ColorAxis.Scales.ShowScale
}

func newColorBar(layout canvas.Layout, scale visualate.ColorScale, dom visualate.Domain, plotWidth, plotHeight float64) *visualate.ColorBar {
	var (
		bar     = layout.ColorAxis.Bar
		style   = canvas.DefaultColorBarStyle()
		ticks   = canvas.DefaultColorBarTicks()
		tstyle  = canvas.DefaultColorBarTickStyle()
		tfont   = canvas.DefaultColorBarTickFont()
		numbers = canvas.DefaultColorBarNumbers()
	)
	if layout.Has(canvas.KindColorBarStyle) {
		style = bar.Style
	}
	if layout.Has(canvas.KindColorBarTicks) {
		ticks = bar.Ticks
	}
	if layout.Has(canvas.KindColorBarTickStyle) {
		tstyle = bar.TickStyle
	}
	if layout.Has(canvas.KindColorBarTickFont) {
		tfont = bar.TickFont
	}
	if layout.Has(canvas.KindColorBarNumbers) {
		numbers = bar.Numbers
	}
	cb := visualate.ColorBar{
		Scale:      scale,
		Domain:     dom,
		Thickness:  style.Thickness,
		Length:     style.Len,
		Background: style.BgColor,
		Ticks:      ticks.Count - 1,
		TickValues: tickValues(ticks, dom),
		TickLine: visualate.Line{
			Color: tstyle.Color,
			Width: tstyle.Width,
		},
		TickLen:    tstyle.Len,
		TickFont:   convertFont(tfont.Font),
		Outside:    ticks.Placement == "outside",
		ShowLabels: tstyle.ShowLabels,
		Format:     numberFormat(numbers).Format,
	}
	if ticks.Placement == "" {
		cb.TickLen = 0
	}
	if style.ThicknessMode == "fraction" {
		cb.Thickness = style.Thickness * plotWidth
	}
	if style.LenMode != "pixels" {
		cb.Length = style.Len * plotHeight
	}
	if layout.Has(canvas.KindColorBarBoundary) {
		cb.Outline = visualate.Line{
			Color: bar.Boundary.OutlineColor,
			Width: bar.Boundary.OutlineWidth,
		}
		cb.Border = visualate.Line{
			Color: bar.Boundary.BorderColor,
			Width: bar.Boundary.BorderWidth,
		}
	}
	if layout.Has(canvas.KindColorBarTitle) {
		cb.Title = bar.Title.Text
		cb.TitleSide = bar.Title.Side
		cb.TitleFont = convertFont(bar.Title.Font)
	}
	return &cb
}

func colorBarAnchor(layout canvas.Layout) visualate.Anchor {
	pos := canvas.DefaultColorBarPosition()
	if layout.Has(canvas.KindColorBarPosition) {
		pos = layout.ColorAxis.Bar.Position
	}
	return visualate.Anchor{
		X:       pos.X,
		Y:       pos.Y,
		XAnchor: pos.XAnchor,
		YAnchor: pos.YAnchor,
		XPad:    pos.XPad,
		YPad:    pos.YPad,
	}
}

// maxTicks bounds the number of ticks of a linear tick mode when the
// layout gives no count.
const maxTicks = 50

// tickValues gives the explicit tick positions of a linear tick mode, nil
// otherwise. When the step would give more ticks than allowed, the domain is
// split evenly instead.
func tickValues(ticks canvas.ColorBarTicks, dom visualate.Domain) []float64 {
	if ticks.Mode != "linear" || ticks.Step <= 0 {
		return nil
	}
	limit := ticks.Count
	if limit <= 0 {
		limit = maxTicks
	}
	var (
		first = math.Ceil((dom.Min-ticks.Start)/ticks.Step)*ticks.Step + ticks.Start
		count = math.Floor((dom.Max-first)/ticks.Step) + 1
	)
	if math.IsNaN(count) || math.IsInf(count, 0) || count > float64(limit) {
		return dom.Values(limit - 1)
	}
	list := make([]float64, 0, int(math.Max(count, 0)))
	for i := 0; i < int(count); i++ {
		list = append(list, first+float64(i)*ticks.Step)
	}
	return list
}

func numberFormat(n canvas.ColorBarNumbers) visualate.NumberFormat {
	f := visualate.NumberFormat{
		Precision:         n.Precision,
		SeparateThousands: n.SeparateThousands,
		Exponent:          n.ExponentFormat,
		Prefix:            n.Prefix,
		Suffix:            n.Suffix,
	}
	if n.ShowExponent == "none" {
		f.Exponent = visualate.ExponentNone
	}
	return f
}
