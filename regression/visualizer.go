package regression

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/midbel/visualate"
	"github.com/midbel/visualate/canvas"
)

type Option func(*visualizer)

// WithCanvas gives the canvas whose components drive the look of the plot.
func WithCanvas(c *canvas.Canvas) Option {
	return func(v *visualizer) {
		if c != nil {
			v.canvas = c
		}
	}
}

func WithTitle(str string) Option {
	return func(v *visualizer) {
		v.title = str
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(v *visualizer) {
		if logger != nil {
			v.logger = logger.With("module", "regression")
		}
	}
}

type visualizer struct {
	model  Model
	canvas *canvas.Canvas
	title  string
	logger *slog.Logger

	fitted bool
	scored bool
}

func newVisualizer(model Model, options ...Option) visualizer {
	v := visualizer{
		model:  model,
		logger: slog.Default().With("module", "regression"),
	}
	for _, o := range options {
		o(&v)
	}
	if v.canvas == nil {
		d := canvas.NewDirector(canvas.NewDefaultCanvasBuilder().WithLogger(v.logger))
		v.canvas = d.Construct()
	}
	return v
}

// Canvas gives the canvas the plot is rendered with.
func (v *visualizer) Canvas() *canvas.Canvas {
	return v.canvas
}

// fit fits the model and returns its predictions on the same samples. Any
// previous score is forgotten.
func (v *visualizer) fit(X mat.Matrix, y []float64) ([]float64, float64, error) {
	rows, _ := X.Dims()
	if rows != len(y) {
		return nil, 0, fmt.Errorf("%w: %d samples but %d targets", ErrDimension, rows, len(y))
	}
	v.fitted = false
	v.scored = false
	if err := v.model.Fit(X, y); err != nil {
		return nil, 0, fmt.Errorf("fit %s: %w", modelName(v.model), err)
	}
	pred, sc, err := v.evaluate(X, y)
	if err != nil {
		return nil, 0, err
	}
	v.fitted = true
	v.logger.Debug("model fitted", "model", modelName(v.model), "samples", rows, "score", sc)
	return pred, sc, nil
}

// score predicts the target of the given samples with the fitted model.
func (v *visualizer) score(X mat.Matrix, y []float64) ([]float64, float64, error) {
	if !v.fitted {
		return nil, 0, ErrNotFitted
	}
	v.scored = false
	pred, sc, err := v.evaluate(X, y)
	if err != nil {
		return nil, 0, err
	}
	v.scored = true
	v.logger.Debug("model scored", "model", modelName(v.model), "samples", len(y), "score", sc)
	return pred, sc, nil
}

func (v *visualizer) evaluate(X mat.Matrix, y []float64) ([]float64, float64, error) {
	pred, err := predict(v.model, X, y)
	if err != nil {
		return nil, 0, err
	}
	sc, err := score(v.model, X, y, pred)
	if err != nil {
		return nil, 0, err
	}
	return pred, sc, nil
}

func (v *visualizer) ready() error {
	if !v.fitted {
		return ErrNotFitted
	}
	if !v.scored {
		return ErrNotScored
	}
	return nil
}

// prepare builds the chart from the layout of the canvas. The given title
// and axis labels are used when neither the options nor the canvas give one.
func (v *visualizer) prepare(title, xlabel, ylabel string) (visualate.Chart, canvas.Layout) {
	var (
		layout = v.canvas.Layout()
		ch     = newChart(layout)
	)
	if v.title != "" && !layout.Has(canvas.KindTitle) {
		t := canvas.DefaultTitle()
		ch.TitleFont = convertFont(t.Font)
		ch.TitleAnchor = visualate.Anchor{
			X:       t.X,
			Y:       t.Y,
			XAnchor: t.XAnchor,
			YAnchor: t.YAnchor,
		}
	}
	switch {
	case v.title != "":
		ch.Title = v.title
	case layout.Has(canvas.KindTitle) && ch.Title == "":
		ch.Title = title
	}
	if ch.Bottom.Label == "" {
		ch.Bottom.Label = xlabel
	}
	if ch.Left.Label == "" {
		ch.Left.Label = ylabel
	}
	return ch, layout
}

func (v *visualizer) save(file string, render func(io.Writer) error) error {
	w, err := os.Create(file)
	if err != nil {
		return err
	}
	defer w.Close()
	if err := render(w); err != nil {
		return err
	}
	v.logger.Info("plot saved", "file", file)
	return w.Close()
}

// group is a set of samples drawn with the same marker.
type group struct {
	Title  string
	X      []float64
	Y      []float64
	Values []float64
	Shape  string
}

// scatter turns groups into series. When the layout shows a color bar, the
// markers are colored by their value and the color bar is attached to the
// chart.
func scatter(ch *visualate.Chart, layout canvas.Layout, groups ...group) ([]visualate.Serie, error) {
	var (
		scale *visualate.ColorScale
		dom   visualate.Domain
	)
	if showColorBar(layout) {
		var all [][]float64
		for _, g := range groups {
			all = append(all, g.Values)
		}
		data, err := visualate.DomainOf(all...)
		if err != nil {
			return nil, err
		}
		cs, err := colorScale(layout)
		if err != nil {
			return nil, err
		}
		scale = &cs
		dom = colorDomain(layout, data)
		ch.ColorBar = newColorBar(layout, cs, dom, ch.DrawingWidth(), ch.DrawingHeight())
		ch.BarAt = colorBarAnchor(layout)
	}
	var list []visualate.Serie
	for i, g := range groups {
		s := visualate.Serie{
			Title:  g.Title,
			Color:  visualate.Category10.At(i),
			Points: visualate.PointsOf(g.X, g.Y),
			Values: g.Values,
			Renderer: visualate.PointRenderer{
				Color:   visualate.Category10.At(i),
				Point:   visualate.GetShape(g.Shape),
				Scale:   scale,
				Domain:  dom,
				Opacity: 0.8,
			},
		}
		list = append(list, s)
	}
	return list, nil
}

// line gives a serie joining two points, drawn dashed and labeled with its
// title at its end.
func line(title, color string, from, to visualate.Point) visualate.Serie {
	return visualate.Serie{
		Title:  title,
		Color:  color,
		Points: []visualate.Point{from, to},
		Renderer: visualate.LinearRenderer{
			Line: visualate.Line{
				Color:  color,
				Width:  1,
				Dashed: true,
			},
			Text: visualate.TextAfter,
		},
	}
}

func absolute(values []float64) []float64 {
	list := make([]float64, len(values))
	for i := range values {
		list[i] = math.Abs(values[i])
	}
	return list
}
