package regression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/midbel/visualate"
	"github.com/midbel/visualate/canvas"
)

func layoutOf(comps ...canvas.Component) canvas.Layout {
	c := canvas.NewCanvas()
	for _, comp := range comps {
		c.Add(comp)
	}
	return c.Layout()
}

func TestNewChartDefaults(t *testing.T) {
	ch := newChart(layoutOf())
	assert.Equal(t, 700.0, ch.Width)
	assert.Equal(t, 450.0, ch.Height)
	assert.Empty(t, ch.Title)
	assert.False(t, ch.Legend.Show)
	assert.Empty(t, ch.Paper)
	require.NotNil(t, ch.Left)
	require.NotNil(t, ch.Bottom)
	assert.Equal(t, 7, ch.Left.Ticks)
}

func TestNewChartFromLayout(t *testing.T) {
	var (
		size    = canvas.Size{Width: 300, Height: 200}
		margins = canvas.Margins{Left: 10, Right: 20, Top: 30, Bottom: 40, Pad: 5}
		title   = canvas.DefaultTitle()
	)
	title.Text = "chart"
	ch := newChart(layoutOf(size, margins, title, canvas.DefaultLegend(), canvas.DefaultBackground()))

	assert.Equal(t, 300.0, ch.Width)
	assert.Equal(t, visualate.Padding{Top: 35, Right: 25, Bottom: 45, Left: 15}, ch.Padding)
	assert.False(t, ch.AutoExpand)
	assert.Equal(t, "chart", ch.Title)
	assert.Equal(t, 17.0, ch.TitleFont.Size)
	assert.True(t, ch.Legend.Show)
	assert.Equal(t, "#e5ecf6", ch.Plot)
}

func TestColorScaleFromLayout(t *testing.T) {
	cs, err := colorScale(layoutOf())
	require.NoError(t, err)
	assert.Equal(t, "viridis", cs.Name)

	scales := canvas.DefaultColorAxisScales()
	scales.AutoColorScale = false
	scales.ColorScale = "reds"
	scales.ReverseScale = true
	cs, err = colorScale(layoutOf(scales))
	require.NoError(t, err)

	reds, err := visualate.GetColorScale("reds")
	require.NoError(t, err)
	assert.Equal(t, reds.At(0), cs.At(1))

	scales.ColorScale = "unknown"
	_, err = colorScale(layoutOf(scales))
	require.Error(t, err)
}

func TestColorDomain(t *testing.T) {
	data := visualate.NumberDomain(1, 4)
	assert.Equal(t, data, colorDomain(layoutOf(), data))
	assert.Equal(t, data, colorDomain(layoutOf(canvas.DefaultColorAxisDomain()), data))

	fixed := canvas.ColorAxisDomain{Min: 0, Max: 10}
	assert.Equal(t, visualate.NumberDomain(0, 10), colorDomain(layoutOf(fixed), data))

	centered := canvas.ColorAxisDomain{Auto: true, Mid: 2}
	assert.Equal(t, visualate.NumberDomain(0, 4), colorDomain(layoutOf(centered), data))
}

func TestShowColorBar(t *testing.T) {
	assert.False(t, showColorBar(layoutOf()))
	assert.True(t, showColorBar(layoutOf(canvas.DefaultColorAxisScales())))

	hidden := canvas.DefaultColorAxisScales()
	hidden.ShowScale = false
	assert.False(t, showColorBar(layoutOf(hidden)))
}

func TestNewColorBar(t *testing.T) {
	var (
		dom    = visualate.NumberDomain(0, 5)
		layout = layoutOf(canvas.DefaultColorAxisScales())
	)
	cs, err := colorScale(layout)
	require.NoError(t, err)

	cb := newColorBar(layout, cs, dom, 500, 300)
	assert.Equal(t, 30.0, cb.Thickness)
	assert.Equal(t, 300.0, cb.Length)
	assert.Equal(t, 4, cb.Ticks)
	assert.True(t, cb.Outside)
	assert.Empty(t, cb.Title)

	style := canvas.DefaultColorBarStyle()
	style.ThicknessMode = "fraction"
	style.Thickness = 0.1
	style.LenMode = "pixels"
	style.Len = 120
	bt := canvas.DefaultColorBarTitle()
	bt.Text = "value"
	layout = layoutOf(canvas.DefaultColorAxisScales(), style, bt)

	cb = newColorBar(layout, cs, dom, 500, 300)
	assert.Equal(t, 50.0, cb.Thickness)
	assert.Equal(t, 120.0, cb.Length)
	assert.Equal(t, "value", cb.Title)
}

func TestTickValues(t *testing.T) {
	dom := visualate.NumberDomain(0, 5)
	assert.Nil(t, tickValues(canvas.DefaultColorBarTicks(), dom))

	ticks := canvas.ColorBarTicks{Mode: "linear", Start: 0.5, Step: 2}
	assert.Equal(t, []float64{0.5, 2.5, 4.5}, tickValues(ticks, dom))

	ticks.Step = 0
	assert.Nil(t, tickValues(ticks, dom))

	wide := visualate.NumberDomain(0, 250000)
	ticks = canvas.ColorBarTicks{Mode: "linear", Step: 1, Count: 5}
	got := tickValues(ticks, wide)
	assert.Len(t, got, 5)
	assert.Equal(t, wide.Values(4), got)

	ticks.Count = 0
	assert.Len(t, tickValues(ticks, wide), maxTicks)

	huge := visualate.NumberDomain(1e17, 1e17+1e6)
	ticks = canvas.ColorBarTicks{Mode: "linear", Step: 1, Count: 5}
	assert.Len(t, tickValues(ticks, huge), 5)
}

func TestNumberFormat(t *testing.T) {
	f := numberFormat(canvas.DefaultColorBarNumbers())
	assert.Equal(t, visualate.ExponentB, f.Exponent)
	assert.Equal(t, 2, f.Precision)

	n := canvas.DefaultColorBarNumbers()
	n.ShowExponent = "none"
	n.Prefix = "$"
	f = numberFormat(n)
	assert.Equal(t, visualate.ExponentNone, f.Exponent)
	assert.Equal(t, "$", f.Prefix)
}

func TestModelName(t *testing.T) {
	assert.Equal(t, "meanModel", modelName(&meanModel{}))
}

type meanModel struct{}

func (meanModel) Fit(_ mat.Matrix, _ []float64) error {
	return nil
}

func (meanModel) Predict(X mat.Matrix) ([]float64, error) {
	rows, _ := X.Dims()
	return make([]float64, rows), nil
}
