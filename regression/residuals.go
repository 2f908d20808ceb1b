package regression

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"

	"github.com/midbel/visualate"
)

type sample struct {
	Predicted []float64
	Residuals []float64
	Score     float64
}

func makeSample(pred, y []float64, score float64) sample {
	s := sample{
		Predicted: pred,
		Residuals: make([]float64, len(y)),
		Score:     score,
	}
	for i := range y {
		s.Residuals[i] = y[i] - pred[i]
	}
	return s
}

// Residuals plots the difference between the observed and the predicted
// target against the predicted value, for the train and the test samples.
type Residuals struct {
	visualizer

	train sample
	test  sample
}

func NewResiduals(model Model, options ...Option) *Residuals {
	return &Residuals{
		visualizer: newVisualizer(model, options...),
	}
}

// Fit fits the model on the train samples and keeps their residuals.
func (r *Residuals) Fit(X mat.Matrix, y []float64) error {
	r.train, r.test = sample{}, sample{}
	pred, sc, err := r.fit(X, y)
	if err != nil {
		return err
	}
	r.train = makeSample(pred, y, sc)
	return nil
}

// Score keeps the residuals of the test samples and gives the score of the
// model on them.
func (r *Residuals) Score(X mat.Matrix, y []float64) (float64, error) {
	r.test = sample{}
	pred, sc, err := r.score(X, y)
	if err != nil {
		return 0, err
	}
	r.test = makeSample(pred, y, sc)
	return sc, nil
}

func (r *Residuals) TrainScore() float64 {
	return r.train.Score
}

func (r *Residuals) TestScore() float64 {
	return r.test.Score
}

func (r *Residuals) Render(w io.Writer) error {
	if err := r.ready(); err != nil {
		return err
	}
	title := fmt.Sprintf("Residuals for %s Model", modelName(r.model))
	ch, layout := r.prepare(title, "Predicted Value", "Residuals")

	xdom, err := visualate.DomainOf(r.train.Predicted, r.test.Predicted)
	if err != nil {
		return err
	}
	ydom, err := visualate.DomainOf(r.train.Residuals, r.test.Residuals)
	if err != nil {
		return err
	}
	ch.X = xdom.Pad(0.05)
	ch.Y = ydom.Symmetric().Pad(0.1)

	set, err := scatter(&ch, layout,
		group{
			Title:  fmt.Sprintf("Train R² = %.3f", r.train.Score),
			X:      r.train.Predicted,
			Y:      r.train.Residuals,
			Values: absolute(r.train.Residuals),
			Shape:  "circle",
		},
		group{
			Title:  fmt.Sprintf("Test R² = %.3f", r.test.Score),
			X:      r.test.Predicted,
			Y:      r.test.Residuals,
			Values: absolute(r.test.Residuals),
			Shape:  "diamond",
		},
	)
	if err != nil {
		return err
	}
	if ch.ColorBar != nil && ch.ColorBar.Title == "" {
		ch.ColorBar.Title = "|residual|"
	}
	zero := line("", zeroColor(ch), visualate.NumberPoint(ch.X.Min, 0), visualate.NumberPoint(ch.X.Max, 0))
	set = append(set, zero)

	r.logger.Debug("render residuals", "train", len(r.train.Residuals), "test", len(r.test.Residuals))
	return ch.Render(w, set...)
}

// Save renders the plot into the given file.
func (r *Residuals) Save(file string) error {
	return r.save(file, r.Render)
}

func zeroColor(ch visualate.Chart) string {
	if ch.Left != nil && ch.Left.ZeroLine.Color != "" {
		return ch.Left.ZeroLine.Color
	}
	return "#444"
}
