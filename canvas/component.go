package canvas

// Component is one independent visual concern of a canvas. A component knows
// its kind and how to write itself into a Layout.
type Component interface {
	Kind() Kind
	Apply(*Layout)
}

// placed is implemented by components that know where their keys live in
// the nested backend configuration produced by Canvas.Config.
type placed interface {
	path() []string
}

const (
	DefaultFamily   = "Open Sans, verdana, arial, sans-serif"
	DefaultColor    = "#444"
	DefaultFontSize = 12.0
)

type Font struct {
	Family string  `json:"family" yaml:"family"`
	Size   float64 `json:"size" yaml:"size"`
	Color  string  `json:"color" yaml:"color"`
}

func DefaultFont() Font {
	return Font{
		Family: DefaultFamily,
		Size:   DefaultFontSize,
		Color:  DefaultColor,
	}
}

func (f Font) Kind() Kind           { return KindFont }
func (f Font) Apply(layout *Layout) { layout.Font = f; layout.mark(KindFont) }
func (f Font) path() []string       { return []string{"font"} }

type Title struct {
	Text    string  `json:"text" yaml:"text"`
	Font    Font    `json:"font" yaml:"font"`
	X       float64 `json:"x" yaml:"x"`
	Y       float64 `json:"y" yaml:"y"`
	XAnchor string  `json:"xanchor" yaml:"xanchor"`
	YAnchor string  `json:"yanchor" yaml:"yanchor"`
}

func DefaultTitle() Title {
	t := Title{
		Font:    DefaultFont(),
		X:       0.5,
		Y:       0.9,
		XAnchor: "center",
		YAnchor: "top",
	}
	t.Font.Size = 17
	return t
}

func (t Title) Kind() Kind           { return KindTitle }
func (t Title) Apply(layout *Layout) { layout.Title = t; layout.mark(KindTitle) }
func (t Title) path() []string       { return []string{"title"} }

type Legend struct {
	Show        bool    `json:"showlegend" yaml:"show"`
	Title       string  `json:"title" yaml:"title"`
	BgColor     string  `json:"bgcolor" yaml:"bgcolor"`
	BorderColor string  `json:"bordercolor" yaml:"bordercolor"`
	BorderWidth float64 `json:"borderwidth" yaml:"borderwidth"`
	Font        Font    `json:"font" yaml:"font"`
	Orientation string  `json:"orientation" yaml:"orientation"`
	X           float64 `json:"x" yaml:"x"`
	Y           float64 `json:"y" yaml:"y"`
	XAnchor     string  `json:"xanchor" yaml:"xanchor"`
	YAnchor     string  `json:"yanchor" yaml:"yanchor"`
}

func DefaultLegend() Legend {
	return Legend{
		Show:        true,
		BgColor:     "#fff",
		BorderColor: DefaultColor,
		Font:        DefaultFont(),
		Orientation: "v",
		X:           1.02,
		Y:           1,
		XAnchor:     "left",
		YAnchor:     "top",
	}
}

func (g Legend) Kind() Kind           { return KindLegend }
func (g Legend) Apply(layout *Layout) { layout.Legend = g; layout.mark(KindLegend) }
func (g Legend) path() []string       { return []string{"legend"} }

type Margins struct {
	Left       float64 `json:"l" yaml:"left"`
	Right      float64 `json:"r" yaml:"right"`
	Top        float64 `json:"t" yaml:"top"`
	Bottom     float64 `json:"b" yaml:"bottom"`
	Pad        float64 `json:"pad" yaml:"pad"`
	AutoExpand bool    `json:"autoexpand" yaml:"autoexpand"`
}

func DefaultMargins() Margins {
	return Margins{
		Left:       80,
		Right:      80,
		Top:        100,
		Bottom:     80,
		AutoExpand: true,
	}
}

func (m Margins) Horizontal() float64 {
	return m.Left + m.Right
}

func (m Margins) Vertical() float64 {
	return m.Top + m.Bottom
}

func (m Margins) Kind() Kind           { return KindMargins }
func (m Margins) Apply(layout *Layout) { layout.Margins = m; layout.mark(KindMargins) }
func (m Margins) path() []string       { return []string{"margin"} }

type Size struct {
	Width    float64 `json:"width" yaml:"width"`
	Height   float64 `json:"height" yaml:"height"`
	AutoSize bool    `json:"autosize" yaml:"autosize"`
}

func DefaultSize() Size {
	return Size{
		Width:    700,
		Height:   450,
		AutoSize: true,
	}
}

func (s Size) Kind() Kind           { return KindSize }
func (s Size) Apply(layout *Layout) { layout.Size = s; layout.mark(KindSize) }
func (s Size) path() []string       { return nil }

type Background struct {
	PaperColor string `json:"paper_bgcolor" yaml:"paper"`
	PlotColor  string `json:"plot_bgcolor" yaml:"plot"`
}

func DefaultBackground() Background {
	return Background{
		PaperColor: "#fff",
		PlotColor:  "#e5ecf6",
	}
}

func (b Background) Kind() Kind           { return KindBackground }
func (b Background) Apply(layout *Layout) { layout.Background = b; layout.mark(KindBackground) }
func (b Background) path() []string       { return nil }

// ColorScale names the scales used by default for sequential and diverging
// color mappings.
type ColorScale struct {
	Sequential      string `json:"sequential" yaml:"sequential"`
	SequentialMinus string `json:"sequentialminus" yaml:"sequentialminus"`
	Diverging       string `json:"diverging" yaml:"diverging"`
}

func DefaultColorScale() ColorScale {
	return ColorScale{
		Sequential:      "viridis",
		SequentialMinus: "viridis",
		Diverging:       "rdbu",
	}
}

func (c ColorScale) Kind() Kind           { return KindColorScale }
func (c ColorScale) Apply(layout *Layout) { layout.ColorScale = c; layout.mark(KindColorScale) }
func (c ColorScale) path() []string       { return []string{"colorscale"} }

type Axis struct {
	Title         string  `json:"title" yaml:"title"`
	Ticks         int     `json:"nticks" yaml:"ticks"`
	ShowLine      bool    `json:"showline" yaml:"showline"`
	LineColor     string  `json:"linecolor" yaml:"linecolor"`
	ShowGrid      bool    `json:"showgrid" yaml:"showgrid"`
	GridColor     string  `json:"gridcolor" yaml:"gridcolor"`
	ZeroLine      bool    `json:"zeroline" yaml:"zeroline"`
	ZeroLineColor string  `json:"zerolinecolor" yaml:"zerolinecolor"`
	ZeroLineWidth float64 `json:"zerolinewidth" yaml:"zerolinewidth"`
}

func defaultAxis() Axis {
	return Axis{
		Ticks:         7,
		ShowLine:      true,
		LineColor:     DefaultColor,
		ShowGrid:      true,
		GridColor:     "#fff",
		ZeroLine:      true,
		ZeroLineColor: DefaultColor,
		ZeroLineWidth: 1,
	}
}

// Axes configures the x and y axis of the plot area.
type Axes struct {
	X Axis `json:"xaxis" yaml:"x"`
	Y Axis `json:"yaxis" yaml:"y"`
}

func DefaultAxes() Axes {
	return Axes{
		X: defaultAxis(),
		Y: defaultAxis(),
	}
}

func (a Axes) Kind() Kind           { return KindAxes }
func (a Axes) Apply(layout *Layout) { layout.Axes = a; layout.mark(KindAxes) }
func (a Axes) path() []string       { return nil }

type ColorAxisDomain struct {
	Auto bool    `json:"cauto" yaml:"auto"`
	Min  float64 `json:"cmin" yaml:"min"`
	Max  float64 `json:"cmax" yaml:"max"`
	Mid  float64 `json:"cmid" yaml:"mid"`
}

func DefaultColorAxisDomain() ColorAxisDomain {
	return ColorAxisDomain{
		Auto: true,
	}
}

func (d ColorAxisDomain) Kind() Kind { return KindColorAxisDomain }
func (d ColorAxisDomain) Apply(layout *Layout) {
	layout.ColorAxis.Domain = d
	layout.mark(KindColorAxisDomain)
}
func (d ColorAxisDomain) path() []string { return []string{"coloraxis"} }

type ColorAxisScales struct {
	ColorScale     string `json:"colorscale" yaml:"colorscale"`
	AutoColorScale bool   `json:"autocolorscale" yaml:"autocolorscale"`
	ReverseScale   bool   `json:"reversescale" yaml:"reversescale"`
	ShowScale      bool   `json:"showscale" yaml:"showscale"`
}

func DefaultColorAxisScales() ColorAxisScales {
	return ColorAxisScales{
		AutoColorScale: true,
		ShowScale:      true,
	}
}

func (s ColorAxisScales) Kind() Kind { return KindColorAxisScales }
func (s ColorAxisScales) Apply(layout *Layout) {
	layout.ColorAxis.Scales = s
	layout.mark(KindColorAxisScales)
}
func (s ColorAxisScales) path() []string { return []string{"coloraxis"} }

var colorbarPath = []string{"coloraxis", "colorbar"}

type ColorBarStyle struct {
	ThicknessMode string  `json:"thicknessmode" yaml:"thicknessmode"`
	Thickness     float64 `json:"thickness" yaml:"thickness"`
	LenMode       string  `json:"lenmode" yaml:"lenmode"`
	Len           float64 `json:"len" yaml:"len"`
	BgColor       string  `json:"bgcolor" yaml:"bgcolor"`
}

func DefaultColorBarStyle() ColorBarStyle {
	return ColorBarStyle{
		ThicknessMode: "pixels",
		Thickness:     30,
		LenMode:       "fraction",
		Len:           1,
		BgColor:       "none",
	}
}

func (s ColorBarStyle) Kind() Kind { return KindColorBarStyle }
func (s ColorBarStyle) Apply(layout *Layout) {
	layout.ColorAxis.Bar.Style = s
	layout.mark(KindColorBarStyle)
}
func (s ColorBarStyle) path() []string { return colorbarPath }

type ColorBarPosition struct {
	X       float64 `json:"x" yaml:"x"`
	XAnchor string  `json:"xanchor" yaml:"xanchor"`
	XPad    float64 `json:"xpad" yaml:"xpad"`
	Y       float64 `json:"y" yaml:"y"`
	YAnchor string  `json:"yanchor" yaml:"yanchor"`
	YPad    float64 `json:"ypad" yaml:"ypad"`
}

func DefaultColorBarPosition() ColorBarPosition {
	return ColorBarPosition{
		X:       1.02,
		XAnchor: "left",
		XPad:    10,
		Y:       0.5,
		YAnchor: "middle",
		YPad:    10,
	}
}

func (p ColorBarPosition) Kind() Kind { return KindColorBarPosition }
func (p ColorBarPosition) Apply(layout *Layout) {
	layout.ColorAxis.Bar.Position = p
	layout.mark(KindColorBarPosition)
}
func (p ColorBarPosition) path() []string { return colorbarPath }

type ColorBarBoundary struct {
	OutlineColor string  `json:"outlinecolor" yaml:"outlinecolor"`
	OutlineWidth float64 `json:"outlinewidth" yaml:"outlinewidth"`
	BorderColor  string  `json:"bordercolor" yaml:"bordercolor"`
	BorderWidth  float64 `json:"borderwidth" yaml:"borderwidth"`
}

func DefaultColorBarBoundary() ColorBarBoundary {
	return ColorBarBoundary{
		OutlineColor: DefaultColor,
		OutlineWidth: 1,
		BorderColor:  DefaultColor,
	}
}

func (b ColorBarBoundary) Kind() Kind { return KindColorBarBoundary }
func (b ColorBarBoundary) Apply(layout *Layout) {
	layout.ColorAxis.Bar.Boundary = b
	layout.mark(KindColorBarBoundary)
}
func (b ColorBarBoundary) path() []string { return colorbarPath }

// ColorBarTicks controls how many ticks are drawn along the color bar and
// where they are placed.
type ColorBarTicks struct {
	Mode      string  `json:"tickmode" yaml:"mode"`
	Count     int     `json:"nticks" yaml:"count"`
	Start     float64 `json:"tick0" yaml:"start"`
	Step      float64 `json:"dtick" yaml:"step"`
	Placement string  `json:"ticks" yaml:"placement"`
}

func DefaultColorBarTicks() ColorBarTicks {
	return ColorBarTicks{
		Mode:      "auto",
		Count:     5,
		Step:      1,
		Placement: "outside",
	}
}

func (t ColorBarTicks) Kind() Kind { return KindColorBarTicks }
func (t ColorBarTicks) Apply(layout *Layout) {
	layout.ColorAxis.Bar.Ticks = t
	layout.mark(KindColorBarTicks)
}
func (t ColorBarTicks) path() []string { return colorbarPath }

type ColorBarTickStyle struct {
	Len        float64 `json:"ticklen" yaml:"len"`
	Width      float64 `json:"tickwidth" yaml:"width"`
	Color      string  `json:"tickcolor" yaml:"color"`
	ShowLabels bool    `json:"showticklabels" yaml:"showlabels"`
	Angle      float64 `json:"tickangle" yaml:"angle"`
}

func DefaultColorBarTickStyle() ColorBarTickStyle {
	return ColorBarTickStyle{
		Len:        5,
		Width:      1,
		Color:      DefaultColor,
		ShowLabels: true,
	}
}

func (s ColorBarTickStyle) Kind() Kind { return KindColorBarTickStyle }
func (s ColorBarTickStyle) Apply(layout *Layout) {
	layout.ColorAxis.Bar.TickStyle = s
	layout.mark(KindColorBarTickStyle)
}
func (s ColorBarTickStyle) path() []string { return colorbarPath }

type ColorBarTickFont struct {
	Font `yaml:",inline"`
}

func DefaultColorBarTickFont() ColorBarTickFont {
	return ColorBarTickFont{
		Font: DefaultFont(),
	}
}

func (f ColorBarTickFont) Kind() Kind { return KindColorBarTickFont }
func (f ColorBarTickFont) Apply(layout *Layout) {
	layout.ColorAxis.Bar.TickFont = f
	layout.mark(KindColorBarTickFont)
}
func (f ColorBarTickFont) path() []string { return []string{"coloraxis", "colorbar", "tickfont"} }

// ColorBarNumbers drives the formatting of the tick labels of the color bar.
type ColorBarNumbers struct {
	SeparateThousands bool   `json:"separatethousands" yaml:"separatethousands"`
	ExponentFormat    string `json:"exponentformat" yaml:"exponentformat"`
	ShowExponent      string `json:"showexponent" yaml:"showexponent"`
	Precision         int    `json:"precision" yaml:"precision"`
	Prefix            string `json:"tickprefix" yaml:"prefix"`
	Suffix            string `json:"ticksuffix" yaml:"suffix"`
}

func DefaultColorBarNumbers() ColorBarNumbers {
	return ColorBarNumbers{
		SeparateThousands: true,
		ExponentFormat:    "B",
		ShowExponent:      "all",
		Precision:         2,
	}
}

func (n ColorBarNumbers) Kind() Kind { return KindColorBarNumbers }
func (n ColorBarNumbers) Apply(layout *Layout) {
	layout.ColorAxis.Bar.Numbers = n
	layout.mark(KindColorBarNumbers)
}
func (n ColorBarNumbers) path() []string { return colorbarPath }

type ColorBarTitle struct {
	Text string `json:"text" yaml:"text"`
	Side string `json:"side" yaml:"side"`
	Font Font   `json:"font" yaml:"font"`
}

func DefaultColorBarTitle() ColorBarTitle {
	return ColorBarTitle{
		Side: "top",
		Font: DefaultFont(),
	}
}

func (t ColorBarTitle) Kind() Kind { return KindColorBarTitle }
func (t ColorBarTitle) Apply(layout *Layout) {
	layout.ColorAxis.Bar.Title = t
	layout.mark(KindColorBarTitle)
}
func (t ColorBarTitle) path() []string { return []string{"coloraxis", "colorbar", "title"} }
