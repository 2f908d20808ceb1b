package visualate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

type Palette []string

var Category10 Palette

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
}

func (p Palette) At(i int) string {
	if len(p) == 0 {
		return currentColour
	}
	return p[i%len(p)]
}

func splitColorString(str string) []string {
	var arr []string
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}

// ColorScale maps a position in [0, 1] onto a color, blending its equally
// spaced stops in the Lab color space.
type ColorScale struct {
	Name  string
	stops []colorful.Color
}

var scales = map[string]string{
	"viridis": "4401544828783e4a8931688e26828e1f9e8a35b7796dcd59b4de2cfde725",
	"plasma":  "0d088746039f7201a89c179ebd3786d8576bed6925fb9f3afdca26f0f921",
	"blues":   "f7fbffdeebf7c6dbef9ecae16baed64292c62171b508519c08306b",
	"greys":   "ffffffd9d9d9bdbdbd969696737373525252252525000000",
	"rdbu":    "67001fb2182bd6604df4a582fddbc7f7f7f7d1e5f092c5de4393c32166ac053061",
	"reds":    "fff5f0fee0d2fcbba1fc9272fb6a4aef3b2ccb181d99000d",
}

// ScaleNames lists, sorted, the names accepted by GetColorScale.
func ScaleNames() []string {
	list := make([]string, 0, len(scales))
	for n := range scales {
		list = append(list, n)
	}
	sort.Strings(list)
	return list
}

func GetColorScale(name string) (ColorScale, error) {
	str, ok := scales[strings.ToLower(name)]
	if !ok {
		return ColorScale{}, fmt.Errorf("%s: unknown color scale (use one of %s)", name, strings.Join(ScaleNames(), ", "))
	}
	return NewColorScale(strings.ToLower(name), splitColorString(str)...)
}

func NewColorScale(name string, colors ...string) (ColorScale, error) {
	if len(colors) == 0 {
		return ColorScale{}, fmt.Errorf("%s: color scale without colors", name)
	}
	cs := ColorScale{
		Name:  name,
		stops: make([]colorful.Color, 0, len(colors)),
	}
	for _, str := range colors {
		c, err := colorful.Hex(str)
		if err != nil {
			return ColorScale{}, fmt.Errorf("%s: %w", name, err)
		}
		cs.stops = append(cs.stops, c)
	}
	return cs, nil
}

func (c ColorScale) Len() int {
	return len(c.stops)
}

func (c ColorScale) Reverse() ColorScale {
	x := ColorScale{
		Name:  c.Name,
		stops: make([]colorful.Color, len(c.stops)),
	}
	for i := range c.stops {
		x.stops[len(c.stops)-1-i] = c.stops[i]
	}
	return x
}

// At gives the color found at t. Values outside [0, 1] are clamped.
func (c ColorScale) At(t float64) string {
	switch {
	case len(c.stops) == 0:
		return currentColour
	case len(c.stops) == 1 || t <= 0:
		return c.stops[0].Hex()
	case t >= 1:
		return c.stops[len(c.stops)-1].Hex()
	}
	var (
		pos  = t * float64(len(c.stops)-1)
		idx  = int(pos)
		frac = pos - float64(idx)
	)
	return c.stops[idx].BlendLab(c.stops[idx+1], frac).Clamped().Hex()
}
