package linear_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/midbel/visualate/linear"
)

func TestRegressionFit(t *testing.T) {
	var (
		X = mat.NewDense(5, 2, []float64{
			1, 0,
			2, 1,
			3, 0,
			4, 1,
			5, 3,
		})
		y = make([]float64, 5)
	)
	for i := range y {
		y[i] = 2*X.At(i, 0) - 3*X.At(i, 1) + 1
	}
	m := linear.New()
	require.NoError(t, m.Fit(X, y))
	require.True(t, m.Fitted())

	coef := m.Coefficients()
	require.Len(t, coef, 2)
	require.InDelta(t, 2, coef[0], 1e-9)
	require.InDelta(t, -3, coef[1], 1e-9)
	require.InDelta(t, 1, m.Intercept(), 1e-9)

	pred, err := m.Predict(mat.NewDense(1, 2, []float64{10, 2}))
	require.NoError(t, err)
	require.InDelta(t, 15, pred[0], 1e-9)

	score, err := m.Score(X, y)
	require.NoError(t, err)
	require.InDelta(t, 1, score, 1e-9)
}

func TestRegressionWithoutIntercept(t *testing.T) {
	var (
		X = mat.NewDense(3, 1, []float64{1, 2, 3})
		y = []float64{2, 4, 6}
		m = linear.New()
	)
	m.FitIntercept = false
	require.NoError(t, m.Fit(X, y))
	require.InDelta(t, 2, m.Coefficients()[0], 1e-9)
	require.Zero(t, m.Intercept())
}

func TestRegressionErrors(t *testing.T) {
	m := linear.New()
	_, err := m.Predict(mat.NewDense(1, 1, []float64{1}))
	require.ErrorIs(t, err, linear.ErrNotFitted)

	err = m.Fit(mat.NewDense(2, 1, []float64{1, 2}), []float64{1})
	require.ErrorIs(t, err, linear.ErrDimension)

	require.NoError(t, m.Fit(mat.NewDense(3, 1, []float64{1, 2, 3}), []float64{1, 2, 3}))
	_, err = m.Predict(mat.NewDense(1, 2, []float64{1, 2}))
	require.ErrorIs(t, err, linear.ErrDimension)

	_, err = m.Score(mat.NewDense(2, 1, []float64{1, 2}), []float64{1, 2, 3})
	require.ErrorIs(t, err, linear.ErrDimension)
}

func TestRegressionIllConditioned(t *testing.T) {
	var (
		scale = []float64{3, 1, 4, 1, 5, 9, 2, 6}
		X     = mat.NewDense(len(scale), 2, nil)
		y     = make([]float64, len(scale))
	)
	for i, a := range scale {
		x := float64(i + 1)
		X.Set(i, 0, x)
		X.Set(i, 1, a*1e-20)
		y[i] = 1 + 2*x + 0.5*a
	}
	m := linear.New()
	require.NoError(t, m.Fit(X, y), "a badly scaled feature still gives a solution")
	assert.True(t, m.Fitted())
	assert.Greater(t, m.Condition(), 1e10)

	pred, err := m.Predict(X)
	require.NoError(t, err)
	assert.InDeltaSlice(t, y, pred, 1e-6)
}
