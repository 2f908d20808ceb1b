// Package dataset loads numeric samples and prepares them for fitting:
// standard scaling and seeded train/test splits.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrEmpty     = errors.New("no sample")
	ErrDimension = errors.New("dimension mismatch")
	ErrNotFitted = errors.New("scaler not fitted")
)

// Dataset holds a matrix of features and the target of each sample.
type Dataset struct {
	Features []string
	Target   string
	X        *mat.Dense
	Y        []float64
}

func (d Dataset) Len() int {
	return len(d.Y)
}

// ReadError reports a value that could not be read from a CSV row.
type ReadError struct {
	Line   int
	Column int
	Err    error
}

func (e ReadError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Err)
}

func (e ReadError) Unwrap() error {
	return e.Err
}

func Load(file string, target int) (Dataset, error) {
	r, err := os.Open(file)
	if err != nil {
		return Dataset{}, err
	}
	defer r.Close()

	ds, err := LoadCSV(r, target)
	if err != nil {
		return ds, fmt.Errorf("%s: %w", file, err)
	}
	return ds, nil
}

// LoadCSV reads a header line then rows of numbers. The column at index
// target gives the target; a negative index counts from the last column.
func LoadCSV(r io.Reader, target int) (Dataset, error) {
	var (
		rs   = csv.NewReader(r)
		ds   Dataset
		data []float64
	)
	rs.TrimLeadingSpace = true
	head, err := rs.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return ds, ErrEmpty
		}
		return ds, err
	}
	if target < 0 {
		target += len(head)
	}
	if target < 0 || target >= len(head) || len(head) < 2 {
		return ds, fmt.Errorf("%w: target column %d out of %d columns", ErrDimension, target, len(head))
	}
	for i, h := range head {
		h = strings.TrimSpace(h)
		if i == target {
			ds.Target = h
			continue
		}
		ds.Features = append(ds.Features, h)
	}
	for line := 2; ; line++ {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return ds, err
		}
		for i := range row {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
			if err != nil {
				return ds, ReadError{Line: line, Column: i, Err: err}
			}
			if i == target {
				ds.Y = append(ds.Y, v)
				continue
			}
			data = append(data, v)
		}
	}
	if len(ds.Y) == 0 {
		return ds, ErrEmpty
	}
	ds.X = mat.NewDense(len(ds.Y), len(ds.Features), data)
	return ds, nil
}

// StandardScaler centers each feature on its mean and scales it to unit
// variance. Features with no variance are only centered.
type StandardScaler struct {
	Mean []float64
	Std  []float64
}

func (s *StandardScaler) Fit(X mat.Matrix) error {
	rows, cols := X.Dims()
	if rows == 0 {
		return ErrEmpty
	}
	s.Mean = make([]float64, cols)
	s.Std = make([]float64, cols)
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, X)
		s.Mean[j], s.Std[j] = stat.PopMeanStdDev(col, nil)
	}
	return nil
}

func (s *StandardScaler) Transform(X mat.Matrix) (*mat.Dense, error) {
	if s.Mean == nil {
		return nil, ErrNotFitted
	}
	rows, cols := X.Dims()
	if cols != len(s.Mean) {
		return nil, fmt.Errorf("%w: %d features but scaler has %d", ErrDimension, cols, len(s.Mean))
	}
	out := mat.NewDense(rows, cols, nil)
	out.Apply(func(i, j int, v float64) float64 {
		v -= s.Mean[j]
		if s.Std[j] > 0 {
			v /= s.Std[j]
		}
		return v
	}, X)
	return out, nil
}

func (s *StandardScaler) FitTransform(X mat.Matrix) (*mat.Dense, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// Split is the result of partitioning a dataset in a train and a test set.
type Split struct {
	TrainX *mat.Dense
	TestX  *mat.Dense
	TrainY []float64
	TestY  []float64
}

// TrainTestSplit shuffles the samples with the given seed and keeps a ratio
// of them for testing. Both sets get at least one sample.
func TrainTestSplit(X mat.Matrix, y []float64, ratio float64, seed int64) (Split, error) {
	var sp Split
	rows, cols := X.Dims()
	if rows != len(y) {
		return sp, fmt.Errorf("%w: %d samples but %d targets", ErrDimension, rows, len(y))
	}
	if rows < 2 {
		return sp, ErrEmpty
	}
	if ratio <= 0 || ratio >= 1 {
		return sp, fmt.Errorf("test ratio %g not in (0, 1)", ratio)
	}
	test := int(float64(rows)*ratio + 0.5)
	if test < 1 {
		test = 1
	}
	if test >= rows {
		test = rows - 1
	}
	perm := rand.New(rand.NewSource(seed)).Perm(rows)

	sp.TestX = mat.NewDense(test, cols, nil)
	sp.TrainX = mat.NewDense(rows-test, cols, nil)
	for i, p := range perm {
		dst, at := sp.TrainX, i-test
		if i < test {
			dst, at = sp.TestX, i
			sp.TestY = append(sp.TestY, y[p])
		} else {
			sp.TrainY = append(sp.TrainY, y[p])
		}
		for j := 0; j < cols; j++ {
			dst.Set(at, j, X.At(p, j))
		}
	}
	return sp, nil
}
