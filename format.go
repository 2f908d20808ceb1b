package visualate

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	ExponentNone  = "none"
	ExponentLower = "e"
	ExponentUpper = "E"
	ExponentPower = "power"
	ExponentSI    = "SI"
	ExponentB     = "B"
)

// NumberFormat describes how tick values are turned into labels.
type NumberFormat struct {
	Precision         int
	SeparateThousands bool
	Exponent          string
	Prefix            string
	Suffix            string
}

// exponentThreshold is the magnitude from which values are written with an
// exponent, unless the format asks for none.
const exponentThreshold = 1e4

func (f NumberFormat) Format(v float64) string {
	var str string
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		str = strconv.FormatFloat(v, 'f', -1, 64)
	case f.Exponent == "" || f.Exponent == ExponentNone || math.Abs(v) < exponentThreshold:
		str = f.formatFixed(v)
	default:
		str = f.formatExponent(v)
	}
	return f.Prefix + str + f.Suffix
}

func (f NumberFormat) formatFixed(v float64) string {
	if f.SeparateThousands {
		return humanize.CommafWithDigits(v, f.Precision)
	}
	return strconv.FormatFloat(v, 'f', f.Precision, 64)
}

func (f NumberFormat) formatExponent(v float64) string {
	switch f.Exponent {
	case ExponentLower:
		return strconv.FormatFloat(v, 'e', f.Precision, 64)
	case ExponentUpper:
		return strconv.FormatFloat(v, 'E', f.Precision, 64)
	case ExponentPower:
		exp := math.Floor(math.Log10(math.Abs(v)))
		man := v / math.Pow(10, exp)
		return strconv.FormatFloat(man, 'f', f.Precision, 64) + "×10^" + strconv.Itoa(int(exp))
	case ExponentSI:
		return strings.TrimSpace(humanize.SIWithDigits(v, f.Precision, ""))
	case ExponentB:
		str := strings.TrimSpace(humanize.SIWithDigits(v, f.Precision, ""))
		return strings.Replace(str, "G", "B", 1)
	default:
		return f.formatFixed(v)
	}
}
