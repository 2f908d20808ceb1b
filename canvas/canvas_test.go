package canvas_test

import (
	"bytes"
	stdjson "encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midbel/visualate/canvas"
)

func TestCanvasAddReplace(t *testing.T) {
	c := canvas.NewCanvas()
	c.Add(canvas.DefaultTitle())
	c.Add(canvas.DefaultMargins())
	c.Add(canvas.DefaultLegend())

	m := canvas.DefaultMargins()
	m.Left = 10
	c.Add(m)

	require.Equal(t, 3, c.Len())
	list := c.Components()
	require.Equal(t, canvas.KindMargins, list[1].Kind(), "replaced component keeps its position")

	got, ok := c.Get(canvas.KindMargins)
	require.True(t, ok)
	require.Equal(t, 10.0, got.(canvas.Margins).Left, "latest component wins")
	require.Equal(t, 10.0, c.Layout().Margins.Left)
}

func TestCanvasAddNil(t *testing.T) {
	c := canvas.NewCanvas()
	c.Add(nil)
	require.True(t, c.Empty())
}

func TestCanvasRemove(t *testing.T) {
	c := canvas.NewDirector(canvas.NewDefaultCanvasBuilder()).Construct()
	c.Remove(canvas.KindColorAxis)

	require.Equal(t, 8, c.Len())
	require.False(t, c.Has(canvas.KindColorBarTitle))
	require.True(t, c.Has(canvas.KindColorScale))

	_, ok := c.Get(canvas.KindColorAxisDomain)
	require.False(t, ok)
}

func TestCanvasClone(t *testing.T) {
	c := canvas.NewCanvas()
	c.Add(canvas.DefaultSize())

	x := c.Clone()
	x.Add(canvas.DefaultFont())
	c.Components()[0] = canvas.DefaultTitle()

	require.Equal(t, 1, c.Len())
	require.Equal(t, 2, x.Len())
	require.True(t, c.Has(canvas.KindSize))
}

func TestCanvasLayout(t *testing.T) {
	var (
		c     = canvas.NewCanvas()
		title = canvas.DefaultTitle()
		tick  = canvas.DefaultColorBarTickFont()
	)
	title.Text = "residuals"
	tick.Size = 9
	c.Add(title)
	c.Add(tick)

	layout := c.Layout()
	assert.True(t, layout.Has(canvas.KindTitle))
	assert.True(t, layout.Has(canvas.KindColorBarTickFont))
	assert.False(t, layout.Has(canvas.KindLegend))

	want := canvas.Layout{
		Title: title,
	}
	want.ColorAxis.Bar.TickFont = tick
	opts := cmp.Options{
		cmp.Comparer(func(a, b canvas.Layout) bool {
			return a.Title == b.Title && a.ColorAxis == b.ColorAxis && a.Legend == b.Legend
		}),
	}
	if diff := cmp.Diff(want, layout, opts); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestCanvasConfig(t *testing.T) {
	c := canvas.NewDirector(canvas.NewDefaultCanvasBuilder()).Construct()
	cfg, err := c.Config()
	require.NoError(t, err)

	assert.Equal(t, 700.0, cfg["width"])
	assert.Equal(t, 450.0, cfg["height"])
	assert.Equal(t, "#fff", cfg["paper_bgcolor"])
	assert.Contains(t, cfg, "xaxis")
	assert.Contains(t, cfg, "yaxis")

	margin, ok := cfg["margin"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 80.0, margin["l"])
	assert.Equal(t, 100.0, margin["t"])

	axis, ok := cfg["coloraxis"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, axis["cauto"])
	assert.Equal(t, true, axis["showscale"])

	bar, ok := axis["colorbar"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 30.0, bar["thickness"])
	assert.Equal(t, "outside", bar["ticks"])
	assert.Equal(t, true, bar["separatethousands"])

	title, ok := bar["title"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "top", title["side"])

	font, ok := bar["tickfont"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 12.0, font["size"])
}

func TestCanvasWriteConfig(t *testing.T) {
	b := canvas.NewDefaultCanvasBuilder()
	b.BuildTitle()
	b.BuildColorBarTitle()

	var buf bytes.Buffer
	require.NoError(t, canvas.Drain(b).WriteConfig(&buf))
	require.True(t, stdjson.Valid(buf.Bytes()))

	var cfg map[string]any
	require.NoError(t, stdjson.Unmarshal(buf.Bytes(), &cfg))
	require.Len(t, cfg, 2)
	require.Contains(t, cfg, "title")
	require.Contains(t, cfg, "coloraxis")
}

func TestLayoutColorScaleName(t *testing.T) {
	var layout canvas.Layout
	canvas.DefaultColorScale().Apply(&layout)
	canvas.DefaultColorAxisScales().Apply(&layout)
	require.Equal(t, "viridis", layout.ColorScaleName())

	scales := canvas.DefaultColorAxisScales()
	scales.AutoColorScale = false
	scales.ColorScale = "greys"
	scales.Apply(&layout)
	require.Equal(t, "greys", layout.ColorScaleName())
}
