package regression

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/midbel/visualate"
)

// PredictionError plots the predicted target of the test samples against
// their actual target, with the identity line and the line best fitting the
// predictions.
type PredictionError struct {
	visualizer

	actual    []float64
	predicted []float64
	r2        float64
}

func NewPredictionError(model Model, options ...Option) *PredictionError {
	return &PredictionError{
		visualizer: newVisualizer(model, options...),
	}
}

func (p *PredictionError) Fit(X mat.Matrix, y []float64) error {
	p.reset()
	_, _, err := p.fit(X, y)
	return err
}

func (p *PredictionError) Score(X mat.Matrix, y []float64) (float64, error) {
	p.reset()
	pred, sc, err := p.score(X, y)
	if err != nil {
		return 0, err
	}
	p.actual = append(p.actual[:0], y...)
	p.predicted = pred
	p.r2 = sc
	return sc, nil
}

func (p *PredictionError) reset() {
	p.actual = p.actual[:0]
	p.predicted = nil
	p.r2 = 0
}

// BestFit gives the intercept and the slope of the least squares line of the
// predicted values against the actual ones.
func (p *PredictionError) BestFit() (float64, float64, error) {
	if err := p.ready(); err != nil {
		return 0, 0, err
	}
	alpha, beta := stat.LinearRegression(p.actual, p.predicted, nil, false)
	return alpha, beta, nil
}

func (p *PredictionError) Render(w io.Writer) error {
	alpha, beta, err := p.BestFit()
	if err != nil {
		return err
	}
	title := fmt.Sprintf("Prediction Error for %s Model", modelName(p.model))
	ch, layout := p.prepare(title, "y", "ŷ")

	dom, err := visualate.DomainOf(p.actual, p.predicted)
	if err != nil {
		return err
	}
	dom = dom.Pad(0.05)
	ch.X = dom
	ch.Y = dom

	errs := make([]float64, len(p.actual))
	for i := range p.actual {
		errs[i] = p.actual[i] - p.predicted[i]
	}
	set, err := scatter(&ch, layout, group{
		Title:  fmt.Sprintf("R² = %.3f", p.r2),
		X:      p.actual,
		Y:      p.predicted,
		Values: absolute(errs),
		Shape:  "circle",
	})
	if err != nil {
		return err
	}
	if ch.ColorBar != nil && ch.ColorBar.Title == "" {
		ch.ColorBar.Title = "|error|"
	}
	var (
		identity = line("identity", zeroColor(ch), visualate.NumberPoint(dom.Min, dom.Min), visualate.NumberPoint(dom.Max, dom.Max))
		best     = line("best fit", visualate.Category10.At(1), bestFitPoint(dom.Min, alpha, beta), bestFitPoint(dom.Max, alpha, beta))
	)
	set = append(set, identity, best)

	p.logger.Debug("render prediction error", "samples", len(p.actual), "intercept", alpha, "slope", beta)
	return ch.Render(w, set...)
}

func (p *PredictionError) Save(file string) error {
	return p.save(file, p.Render)
}

func bestFitPoint(x, alpha, beta float64) visualate.Point {
	return visualate.NumberPoint(x, alpha+beta*x)
}
