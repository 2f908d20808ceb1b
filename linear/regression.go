// Package linear provides an ordinary least squares regression that can be
// handed to the diagnostic plots of the regression package.
package linear

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrNotFitted = errors.New("model not fitted")
	ErrDimension = errors.New("dimension mismatch")
	ErrEmpty     = errors.New("no sample")
	ErrSingular  = errors.New("singular design")
)

// Regression fits y = X·w + b by least squares.
type Regression struct {
	FitIntercept bool

	coef      []float64
	intercept float64
	cond      float64
	fitted    bool
}

func New() *Regression {
	return &Regression{
		FitIntercept: true,
	}
}

func (r *Regression) Fit(X mat.Matrix, y []float64) error {
	rows, cols := X.Dims()
	if rows == 0 || cols == 0 {
		return ErrEmpty
	}
	if rows != len(y) {
		return fmt.Errorf("%w: %d samples but %d targets", ErrDimension, rows, len(y))
	}
	offset := 0
	if r.FitIntercept {
		offset = 1
	}
	design := mat.NewDense(rows, cols+offset, nil)
	for i := 0; i < rows; i++ {
		if offset > 0 {
			design.Set(i, 0, 1)
		}
		for j := 0; j < cols; j++ {
			design.Set(i, j+offset, X.At(i, j))
		}
	}
	var (
		beta   mat.VecDense
		target = mat.NewVecDense(rows, append([]float64(nil), y...))
	)
	r.fitted = false
	r.cond = 0
	if err := beta.SolveVec(design, target); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return fmt.Errorf("least squares: %w", err)
		}
		r.cond = float64(cond)
	}
	if math.IsInf(r.cond, 0) || beta.Len() != cols+offset {
		return fmt.Errorf("%w: condition number %g", ErrSingular, r.cond)
	}
	for i := 0; i < beta.Len(); i++ {
		if v := beta.AtVec(i); math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: condition number %g", ErrSingular, r.cond)
		}
	}
	r.intercept = 0
	if offset > 0 {
		r.intercept = beta.AtVec(0)
	}
	r.coef = make([]float64, cols)
	for j := range r.coef {
		r.coef[j] = beta.AtVec(j + offset)
	}
	r.fitted = true
	return nil
}

func (r *Regression) Predict(X mat.Matrix) ([]float64, error) {
	if !r.fitted {
		return nil, ErrNotFitted
	}
	rows, cols := X.Dims()
	if cols != len(r.coef) {
		return nil, fmt.Errorf("%w: %d features but model has %d", ErrDimension, cols, len(r.coef))
	}
	var (
		out  = make([]float64, rows)
		coef = mat.NewVecDense(cols, r.coef)
		res  mat.VecDense
	)
	res.MulVec(X, coef)
	for i := range out {
		out[i] = res.AtVec(i) + r.intercept
	}
	return out, nil
}

// Score gives the coefficient of determination of the predictions made
// for X against y.
func (r *Regression) Score(X mat.Matrix, y []float64) (float64, error) {
	pred, err := r.Predict(X)
	if err != nil {
		return 0, err
	}
	if len(pred) != len(y) {
		return 0, fmt.Errorf("%w: %d predictions but %d targets", ErrDimension, len(pred), len(y))
	}
	return stat.RSquaredFrom(pred, y, nil), nil
}

func (r *Regression) Coefficients() []float64 {
	return append([]float64(nil), r.coef...)
}

func (r *Regression) Intercept() float64 {
	return r.intercept
}

// Condition gives the condition number of the last fit when it was too large
// for the solution to be accurate, zero otherwise.
func (r *Regression) Condition() float64 {
	return r.cond
}

func (r *Regression) Fitted() bool {
	return r.fitted
}
