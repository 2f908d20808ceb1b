package canvas

// Layout is the aggregated configuration of a canvas, as consumed by a
// rendering backend. Only the parts whose kind is reported by Has have been
// set by a component; the others hold their zero value.
type Layout struct {
	Title      Title
	Legend     Legend
	Margins    Margins
	Size       Size
	Font       Font
	Background Background
	ColorScale ColorScale
	Axes       Axes
	ColorAxis  ColorAxis

	kinds Kind
}

type ColorAxis struct {
	Domain ColorAxisDomain
	Scales ColorAxisScales
	Bar    ColorBar
}

type ColorBar struct {
	Style     ColorBarStyle
	Position  ColorBarPosition
	Boundary  ColorBarBoundary
	Ticks     ColorBarTicks
	TickStyle ColorBarTickStyle
	TickFont  ColorBarTickFont
	Numbers   ColorBarNumbers
	Title     ColorBarTitle
}

// Has reports whether every kind of k has been applied to the layout.
func (l Layout) Has(k Kind) bool {
	return l.kinds.Has(k)
}

func (l Layout) Kinds() Kind {
	return l.kinds
}

// ColorScaleName gives the name of the scale the color axis maps values
// with: the explicit scale of the color axis when set, else the sequential
// scale of the layout.
func (l Layout) ColorScaleName() string {
	if l.ColorAxis.Scales.ColorScale != "" && !l.ColorAxis.Scales.AutoColorScale {
		return l.ColorAxis.Scales.ColorScale
	}
	if l.ColorScale.Sequential != "" {
		return l.ColorScale.Sequential
	}
	return l.ColorAxis.Scales.ColorScale
}

func (l *Layout) mark(k Kind) {
	l.kinds |= k
}
