package visualate

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleChart() Chart {
	return Chart{
		Title:       "sample",
		TitleFont:   DefaultFont(),
		TitleAnchor: Anchor{X: 0.5, Y: 0.95},
		Width:       640,
		Height:      480,
		Padding: Padding{
			Top:    60,
			Right:  40,
			Bottom: 60,
			Left:   60,
		},
		AutoExpand: true,
		Paper:      "#fff",
		Plot:       "#eee",
		X:          NumberDomain(0, 10),
		Y:          NumberDomain(-5, 5),
		Left: &NumberAxis{
			Ticks:          5,
			WithLine:       true,
			WithLabelTicks: true,
			WithGrid:       true,
			WithZero:       true,
		},
		Bottom: &NumberAxis{
			Label:          "x",
			Ticks:          5,
			WithLine:       true,
			WithInnerTicks: true,
			WithLabelTicks: true,
		},
		Legend: Legend{
			Show:   true,
			Font:   DefaultFont(),
			Anchor: Anchor{X: 1.02, Y: 1},
		},
	}
}

func TestChartRender(t *testing.T) {
	var (
		ch  = sampleChart()
		buf bytes.Buffer
	)
	scale, err := GetColorScale("viridis")
	require.NoError(t, err)

	ch.ColorBar = &ColorBar{
		Scale:      scale,
		Domain:     NumberDomain(0, 5),
		Thickness:  20,
		Ticks:      5,
		TickLen:    5,
		ShowLabels: true,
		Outside:    true,
		Outline:    Line{Color: "black", Width: 1},
		Title:      "|r|",
	}
	ch.BarAt = Anchor{X: 1.02, Y: 0.5, YAnchor: "middle", XPad: 10}

	points := []Point{
		NumberPoint(1, 2),
		NumberPoint(2, -1),
		NumberPoint(3, math.NaN()),
		NumberPoint(4, 4),
	}
	set := []Serie{
		{
			Title:  "train",
			Points: points,
			Values: []float64{2, 1, 0, 4},
			Renderer: PointRenderer{
				Scale:  &scale,
				Domain: NumberDomain(0, 5),
				Point:  GetShape("diamond"),
			},
		},
		{
			Title:    "zero",
			Color:    "black",
			Points:   []Point{NumberPoint(0, 0), NumberPoint(10, 0)},
			Renderer: LinearRenderer{Line: Line{Color: "black", Dashed: true}, Text: TextAfter},
		},
	}
	require.NoError(t, ch.Render(&buf, set...))
	assert.Contains(t, buf.String(), "svg")
	assert.Contains(t, buf.String(), "sample")
}

func TestChartExpand(t *testing.T) {
	ch := sampleChart()
	ch.Legend.Font.Size = 12
	set := []Serie{
		{Title: "a rather long legend entry"},
	}
	got := ch.expand(set)
	assert.Greater(t, got.Padding.Right, ch.Padding.Right)
	assert.Less(t, got.DrawingWidth(), ch.DrawingWidth())

	ch.AutoExpand = false
	assert.Equal(t, ch.Padding, ch.expand(set).Padding)
}

func TestChartLegendSize(t *testing.T) {
	ch := sampleChart()
	w, h := ch.legendSize(nil)
	assert.Zero(t, w)
	assert.Zero(t, h)

	set := []Serie{{Title: "abc"}, {Title: ""}, {Title: "abcdef"}}
	w, h = ch.legendSize(set)
	assert.InDelta(t, 6*FontSize*0.6+30, w, 1e-9)
	assert.InDelta(t, 2*FontSize*1.4, h, 1e-9)

	ch.Legend.Horizontal = true
	w, h = ch.legendSize(set)
	assert.InDelta(t, 9*FontSize*0.6+60, w, 1e-9)
	assert.InDelta(t, FontSize*1.4, h, 1e-9)
}

func TestAnchorPlace(t *testing.T) {
	ch := sampleChart()
	left, top := Anchor{X: 0, Y: 1}.place(ch, 10, 10)
	assert.Equal(t, ch.Padding.Left, left)
	assert.Equal(t, ch.Padding.Top, top)

	left, top = Anchor{X: 1, Y: 0, XAnchor: "right", YAnchor: "bottom"}.place(ch, 10, 20)
	assert.Equal(t, ch.Width-ch.Padding.Right-10, left)
	assert.Equal(t, ch.Height-ch.Padding.Bottom-20, top)
}

func TestLineTitle(t *testing.T) {
	ch := sampleChart()
	ch.Legend.Show = false

	line := Serie{
		Title:    "identity",
		Points:   []Point{NumberPoint(0, -5), NumberPoint(10, 5)},
		Renderer: LinearRenderer{Line: Line{Color: "black"}, Text: TextAfter},
	}
	var buf bytes.Buffer
	require.NoError(t, ch.Render(&buf, line))
	assert.Contains(t, buf.String(), "identity")

	line.Renderer = LinearRenderer{Line: Line{Color: "black"}}
	buf.Reset()
	require.NoError(t, ch.Render(&buf, line))
	assert.NotContains(t, buf.String(), "identity")
}
