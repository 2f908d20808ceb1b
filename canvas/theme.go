package canvas

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/midbel/visualate"
)

var ErrTheme = errors.New("invalid theme")

// Theme carries one value per component kind. Themes decoded from a file
// start from the default components, so a file only lists what it changes.
type Theme struct {
	Name       string     `yaml:"name"`
	Title      Title      `yaml:"title"`
	Legend     Legend     `yaml:"legend"`
	Margins    Margins    `yaml:"margins"`
	Size       Size       `yaml:"size"`
	Font       Font       `yaml:"font"`
	Background Background `yaml:"background"`
	ColorScale ColorScale `yaml:"colorscale"`
	Axes       Axes       `yaml:"axes"`
	ColorAxis  struct {
		Domain ColorAxisDomain `yaml:"domain"`
		Scales ColorAxisScales `yaml:"scales"`
		Bar    struct {
			Style     ColorBarStyle     `yaml:"style"`
			Position  ColorBarPosition  `yaml:"position"`
			Boundary  ColorBarBoundary  `yaml:"boundary"`
			Ticks     ColorBarTicks     `yaml:"ticks"`
			TickStyle ColorBarTickStyle `yaml:"tickstyle"`
			TickFont  ColorBarTickFont  `yaml:"tickfont"`
			Numbers   ColorBarNumbers   `yaml:"numbers"`
			Title     ColorBarTitle     `yaml:"title"`
		} `yaml:"colorbar"`
	} `yaml:"coloraxis"`
}

func LightTheme() Theme {
	var t Theme
	t.Name = "light"
	t.Title = DefaultTitle()
	t.Legend = DefaultLegend()
	t.Margins = DefaultMargins()
	t.Size = DefaultSize()
	t.Font = DefaultFont()
	t.Background = DefaultBackground()
	t.ColorScale = DefaultColorScale()
	t.Axes = DefaultAxes()
	t.ColorAxis.Domain = DefaultColorAxisDomain()
	t.ColorAxis.Scales = DefaultColorAxisScales()
	t.ColorAxis.Bar.Style = DefaultColorBarStyle()
	t.ColorAxis.Bar.Position = DefaultColorBarPosition()
	t.ColorAxis.Bar.Boundary = DefaultColorBarBoundary()
	t.ColorAxis.Bar.Ticks = DefaultColorBarTicks()
	t.ColorAxis.Bar.TickStyle = DefaultColorBarTickStyle()
	t.ColorAxis.Bar.TickFont = DefaultColorBarTickFont()
	t.ColorAxis.Bar.Numbers = DefaultColorBarNumbers()
	t.ColorAxis.Bar.Title = DefaultColorBarTitle()
	return t
}

func DarkTheme() Theme {
	const (
		ink   = "#f2f5fa"
		paper = "#111111"
		plot  = "#283442"
		grid  = "#506784"
	)
	t := LightTheme()
	t.Name = "dark"
	t.Title.Font.Color = ink
	t.Legend.BgColor = paper
	t.Legend.BorderColor = grid
	t.Legend.Font.Color = ink
	t.Font.Color = ink
	t.Background.PaperColor = paper
	t.Background.PlotColor = plot
	t.ColorScale.Sequential = "plasma"
	t.ColorScale.SequentialMinus = "plasma"
	for _, a := range []*Axis{&t.Axes.X, &t.Axes.Y} {
		a.LineColor = grid
		a.GridColor = grid
		a.ZeroLineColor = ink
	}
	t.ColorAxis.Bar.Boundary.OutlineColor = grid
	t.ColorAxis.Bar.Boundary.BorderColor = grid
	t.ColorAxis.Bar.TickStyle.Color = ink
	t.ColorAxis.Bar.TickFont.Color = ink
	t.ColorAxis.Bar.Title.Font.Color = ink
	return t
}

// Themes gives the built-in themes by name.
func Themes() map[string]Theme {
	return map[string]Theme{
		"light": LightTheme(),
		"dark":  DarkTheme(),
	}
}

// DecodeTheme reads a YAML theme on top of the light theme. Keys that do not
// match a component option and unknown color scales are rejected.
func DecodeTheme(r io.Reader) (Theme, error) {
	t := LightTheme()
	t.Name = ""

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return t, nil
		}
		return t, fmt.Errorf("%w: %s", ErrTheme, err)
	}
	if err := checkScales(t); err != nil {
		return t, err
	}
	return t, nil
}

func checkScales(t Theme) error {
	names := []string{
		t.ColorScale.Sequential,
		t.ColorScale.SequentialMinus,
		t.ColorScale.Diverging,
		t.ColorAxis.Scales.ColorScale,
	}
	for _, n := range names {
		if n == "" {
			continue
		}
		if _, err := visualate.GetColorScale(n); err != nil {
			return fmt.Errorf("%w: %s", ErrTheme, err)
		}
	}
	return nil
}

func LoadTheme(file string) (Theme, error) {
	r, err := os.Open(file)
	if err != nil {
		return Theme{}, err
	}
	defer r.Close()

	t, err := DecodeTheme(r)
	if err != nil {
		return t, fmt.Errorf("%s: %w", file, err)
	}
	return t, nil
}

// ThemeCanvasBuilder builds canvas made of the components of a theme. It is
// not safe for concurrent use.
type ThemeCanvasBuilder struct {
	theme  Theme
	canvas *Canvas
	logger *slog.Logger
}

func NewThemeCanvasBuilder(theme Theme) *ThemeCanvasBuilder {
	b := ThemeCanvasBuilder{
		theme:  theme,
		logger: slog.Default().With(slog.String("module", "canvas"), slog.String("theme", theme.Name)),
	}
	b.Reset()
	return &b
}

func (b *ThemeCanvasBuilder) Theme() Theme {
	return b.theme
}

func (b *ThemeCanvasBuilder) Reset() {
	b.canvas = NewCanvas()
}

func (b *ThemeCanvasBuilder) Build() *Canvas {
	return b.canvas.Clone()
}

func (b *ThemeCanvasBuilder) BuildTitle()      { b.add(b.theme.Title) }
func (b *ThemeCanvasBuilder) BuildLegend()     { b.add(b.theme.Legend) }
func (b *ThemeCanvasBuilder) BuildMargins()    { b.add(b.theme.Margins) }
func (b *ThemeCanvasBuilder) BuildSize()       { b.add(b.theme.Size) }
func (b *ThemeCanvasBuilder) BuildFont()       { b.add(b.theme.Font) }
func (b *ThemeCanvasBuilder) BuildBackground() { b.add(b.theme.Background) }
func (b *ThemeCanvasBuilder) BuildColorScale() { b.add(b.theme.ColorScale) }
func (b *ThemeCanvasBuilder) BuildAxes()       { b.add(b.theme.Axes) }

func (b *ThemeCanvasBuilder) BuildColorAxisDomain()   { b.add(b.theme.ColorAxis.Domain) }
func (b *ThemeCanvasBuilder) BuildColorAxisScales()   { b.add(b.theme.ColorAxis.Scales) }
func (b *ThemeCanvasBuilder) BuildColorBarStyle()     { b.add(b.theme.ColorAxis.Bar.Style) }
func (b *ThemeCanvasBuilder) BuildColorBarPosition()  { b.add(b.theme.ColorAxis.Bar.Position) }
func (b *ThemeCanvasBuilder) BuildColorBarBoundary()  { b.add(b.theme.ColorAxis.Bar.Boundary) }
func (b *ThemeCanvasBuilder) BuildColorBarTicks()     { b.add(b.theme.ColorAxis.Bar.Ticks) }
func (b *ThemeCanvasBuilder) BuildColorBarTickStyle() { b.add(b.theme.ColorAxis.Bar.TickStyle) }
func (b *ThemeCanvasBuilder) BuildColorBarTickFont()  { b.add(b.theme.ColorAxis.Bar.TickFont) }
func (b *ThemeCanvasBuilder) BuildColorBarNumbers()   { b.add(b.theme.ColorAxis.Bar.Numbers) }
func (b *ThemeCanvasBuilder) BuildColorBarTitle()     { b.add(b.theme.ColorAxis.Bar.Title) }

func (b *ThemeCanvasBuilder) add(comp Component) {
	b.logger.Debug("component added", slog.String("kind", comp.Kind().String()))
	b.canvas.Add(comp)
}
