package visualate

import (
	"errors"
	"math"
)

var ErrEmptyDomain = errors.New("empty domain")

// Domain is the extent of the values drawn along one dimension.
type Domain struct {
	Min float64
	Max float64
}

func NumberDomain(f, t float64) Domain {
	if f > t {
		f, t = t, f
	}
	return Domain{
		Min: f,
		Max: t,
	}
}

// DomainOf computes the smallest domain holding every finite value of the
// given sets.
func DomainOf(values ...[]float64) (Domain, error) {
	var (
		dom   = Domain{Min: math.Inf(1), Max: math.Inf(-1)}
		found bool
	)
	for _, vs := range values {
		for _, v := range vs {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			dom.Min = math.Min(dom.Min, v)
			dom.Max = math.Max(dom.Max, v)
			found = true
		}
	}
	if !found {
		return Domain{}, ErrEmptyDomain
	}
	return dom, nil
}

// Pad widens the domain by ratio of its extent on both sides. A domain made
// of a single value is widened by one unit.
func (d Domain) Pad(ratio float64) Domain {
	ext := d.Extend()
	if ext == 0 {
		return Domain{Min: d.Min - 1, Max: d.Max + 1}
	}
	return Domain{
		Min: d.Min - ext*ratio,
		Max: d.Max + ext*ratio,
	}
}

// Symmetric centers the domain on zero.
func (d Domain) Symmetric() Domain {
	m := math.Max(math.Abs(d.Min), math.Abs(d.Max))
	return Domain{Min: -m, Max: m}
}

func (d Domain) Diff(v float64) float64 {
	return v - d.Min
}

func (d Domain) Extend() float64 {
	return d.Max - d.Min
}

func (d Domain) Contains(v float64) bool {
	return v >= d.Min && v <= d.Max
}

// Values splits the domain in c steps, both ends included.
func (d Domain) Values(c int) []float64 {
	if c <= 0 {
		return []float64{d.Min, d.Max}
	}
	var (
		all  = make([]float64, c)
		step = d.Extend() / float64(c)
	)
	for i := 0; i < c; i++ {
		all[i] = d.Min + float64(i)*step
	}
	all = append(all, d.Max)
	return all
}

// Normalize maps v to [0, 1] along the domain.
func (d Domain) Normalize(v float64) float64 {
	ext := d.Extend()
	if ext == 0 {
		return 0
	}
	t := d.Diff(v) / ext
	return math.Max(0, math.Min(1, t))
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return math.Max(r.F, r.T)
}

func (r Range) Min() float64 {
	return math.Min(r.F, r.T)
}

// Scaler maps values of a domain onto a range of pixels. A range going from
// high to low gives a reversed scale, as needed for vertical axis.
type Scaler struct {
	Range
	Domain
}

func NumberScaler(dom Domain, rg Range) Scaler {
	return Scaler{
		Range:  rg,
		Domain: dom,
	}
}

func (s Scaler) Scale(v float64) float64 {
	return s.F + s.Diff(v)*s.Space()
}

func (s Scaler) Space() float64 {
	ext := s.Extend()
	if ext == 0 {
		return 0
	}
	return s.Len() / ext
}

func (s Scaler) Max() float64 {
	return s.Range.Max()
}

func (s Scaler) Min() float64 {
	return s.Range.Min()
}
