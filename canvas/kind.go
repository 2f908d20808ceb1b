package canvas

import (
	"math/bits"
	"strings"
)

// Kind identifies the visual concern a Component configures. Kinds are bit
// flags so that a set of kinds can be carried in a single value.
type Kind uint32

const (
	KindTitle Kind = 1 << iota
	KindLegend
	KindMargins
	KindSize
	KindFont
	KindBackground
	KindColorScale
	KindAxes
	KindColorAxisDomain
	KindColorAxisScales
	KindColorBarStyle
	KindColorBarPosition
	KindColorBarBoundary
	KindColorBarTicks
	KindColorBarTickStyle
	KindColorBarTickFont
	KindColorBarNumbers
	KindColorBarTitle
)

const (
	KindNone Kind = 0

	KindColorBar = KindColorBarStyle | KindColorBarPosition | KindColorBarBoundary |
		KindColorBarTicks | KindColorBarTickStyle | KindColorBarTickFont |
		KindColorBarNumbers | KindColorBarTitle
	KindColorAxis = KindColorAxisDomain | KindColorAxisScales | KindColorBar

	KindBasic = KindTitle | KindLegend | KindMargins | KindSize | KindFont |
		KindBackground | KindAxes
	KindAll = KindBasic | KindColorScale | KindColorAxis
)

// AllKinds lists every kind in the order a Director builds them.
var AllKinds = []Kind{
	KindTitle,
	KindLegend,
	KindMargins,
	KindSize,
	KindFont,
	KindBackground,
	KindColorScale,
	KindAxes,
	KindColorAxisDomain,
	KindColorAxisScales,
	KindColorBarStyle,
	KindColorBarPosition,
	KindColorBarBoundary,
	KindColorBarTicks,
	KindColorBarTickStyle,
	KindColorBarTickFont,
	KindColorBarNumbers,
	KindColorBarTitle,
}

var kindNames = map[Kind]string{
	KindTitle:             "title",
	KindLegend:            "legend",
	KindMargins:           "margins",
	KindSize:              "size",
	KindFont:              "font",
	KindBackground:        "background",
	KindColorScale:        "color-scale",
	KindAxes:              "axes",
	KindColorAxisDomain:   "color-axis-domain",
	KindColorAxisScales:   "color-axis-scales",
	KindColorBarStyle:     "color-bar-style",
	KindColorBarPosition:  "color-bar-position",
	KindColorBarBoundary:  "color-bar-boundary",
	KindColorBarTicks:     "color-bar-ticks",
	KindColorBarTickStyle: "color-bar-tick-style",
	KindColorBarTickFont:  "color-bar-tick-font",
	KindColorBarNumbers:   "color-bar-numbers",
	KindColorBarTitle:     "color-bar-title",
}

// ParseKind returns the kind registered under name.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return KindNone, false
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	if k == KindNone {
		return "none"
	}
	var parts []string
	for _, x := range AllKinds {
		if k.Has(x) {
			parts = append(parts, kindNames[x])
		}
	}
	return strings.Join(parts, "|")
}

// Has reports whether all the kinds of other are set in k.
func (k Kind) Has(other Kind) bool {
	return other != KindNone && k&other == other
}

// Count gives the number of single kinds set in k.
func (k Kind) Count() int {
	return bits.OnesCount32(uint32(k))
}

// Split breaks a set of kinds into its single kinds, in canonical order.
func (k Kind) Split() []Kind {
	var list []Kind
	for _, x := range AllKinds {
		if k.Has(x) {
			list = append(list, x)
		}
	}
	return list
}
