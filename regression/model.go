// Package regression draws diagnostic plots of regression models: residuals
// against predicted values and prediction error against actual values.
//
// A plot owns a model and a canvas. The canvas gives the visual settings of
// the chart while the model gives the data: the plot fits the model on a
// train set, scores it on a test set then renders both as SVG.
package regression

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrNotFitted = errors.New("visualizer not fitted")
	ErrNotScored = errors.New("visualizer not scored")
	ErrDimension = errors.New("dimension mismatch")
)

// Model is anything that can be fitted on labeled samples and then predict
// the target of new samples.
type Model interface {
	Fit(X mat.Matrix, y []float64) error
	Predict(X mat.Matrix) ([]float64, error)
}

// Scorer is implemented by models that compute their own score. Models
// without it are scored with the coefficient of determination.
type Scorer interface {
	Score(X mat.Matrix, y []float64) (float64, error)
}

func predict(m Model, X mat.Matrix, y []float64) ([]float64, error) {
	rows, _ := X.Dims()
	if rows != len(y) {
		return nil, fmt.Errorf("%w: %d samples but %d targets", ErrDimension, rows, len(y))
	}
	pred, err := m.Predict(X)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}
	if len(pred) != len(y) {
		return nil, fmt.Errorf("%w: %d predictions but %d targets", ErrDimension, len(pred), len(y))
	}
	return pred, nil
}

func score(m Model, X mat.Matrix, y, pred []float64) (float64, error) {
	if s, ok := m.(Scorer); ok {
		v, err := s.Score(X, y)
		if err != nil {
			return 0, fmt.Errorf("score: %w", err)
		}
		return v, nil
	}
	return stat.RSquaredFrom(pred, y, nil), nil
}

// modelName gives the bare type name of a model.
func modelName(m Model) string {
	str := fmt.Sprintf("%T", m)
	str = strings.TrimLeft(str, "*")
	if i := strings.LastIndex(str, "."); i >= 0 {
		str = str[i+1:]
	}
	return str
}
