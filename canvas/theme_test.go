package canvas_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midbel/visualate/canvas"
)

func TestLoadTheme(t *testing.T) {
	theme, err := canvas.LoadTheme("testdata/ocean.yaml")
	require.NoError(t, err)

	assert.Equal(t, "ocean", theme.Name)
	assert.Equal(t, "Residuals", theme.Title.Text)
	assert.Equal(t, "#0b3954", theme.Title.Font.Color)
	assert.Equal(t, 17.0, theme.Title.Font.Size, "unset keys keep their default")
	assert.Equal(t, 900.0, theme.Size.Width)
	assert.Equal(t, "blues", theme.ColorScale.Sequential)
	assert.Equal(t, 8, theme.ColorAxis.Bar.Ticks.Count)
	assert.Equal(t, "outside", theme.ColorAxis.Bar.Ticks.Placement)
	assert.Equal(t, 10.0, theme.ColorAxis.Bar.TickFont.Size)
	assert.Equal(t, canvas.DefaultFamily, theme.ColorAxis.Bar.TickFont.Family)
	assert.Equal(t, "|residual|", theme.ColorAxis.Bar.Title.Text)
}

func TestLoadThemeUnknownKey(t *testing.T) {
	_, err := canvas.LoadTheme("testdata/broken.yaml")
	require.ErrorIs(t, err, canvas.ErrTheme)
}

func TestLoadThemeMissingFile(t *testing.T) {
	_, err := canvas.LoadTheme("testdata/missing.yaml")
	require.Error(t, err)
}

func TestDecodeThemeEmpty(t *testing.T) {
	theme, err := canvas.DecodeTheme(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, canvas.DefaultMargins(), theme.Margins)
	assert.Equal(t, canvas.DefaultColorBarNumbers(), theme.ColorAxis.Bar.Numbers)
}

func TestThemeBuilder(t *testing.T) {
	theme, err := canvas.DecodeTheme(strings.NewReader("margins:\n  left: 12\n"))
	require.NoError(t, err)

	c := canvas.NewDirector(canvas.NewThemeCanvasBuilder(theme)).Construct()
	require.Equal(t, 18, c.Len())

	layout := c.Layout()
	assert.Equal(t, 12.0, layout.Margins.Left)
	assert.Equal(t, canvas.DefaultMargins().Right, layout.Margins.Right)
}

func TestDarkTheme(t *testing.T) {
	var (
		dark  = canvas.NewDirector(canvas.NewThemeCanvasBuilder(canvas.DarkTheme())).Construct().Layout()
		light = canvas.NewDirector(canvas.NewDefaultCanvasBuilder()).Construct().Layout()
	)
	assert.Equal(t, light.Kinds(), dark.Kinds())
	assert.NotEqual(t, light.Background, dark.Background)
	assert.Equal(t, "plasma", dark.ColorScaleName())
	assert.Equal(t, light.Margins, dark.Margins)
}

func TestThemes(t *testing.T) {
	all := canvas.Themes()
	require.Len(t, all, 2)
	for name, theme := range all {
		assert.Equal(t, name, theme.Name)
	}
}

func TestDecodeThemeUnknownScale(t *testing.T) {
	_, err := canvas.DecodeTheme(strings.NewReader("colorscale:\n  sequential: nope\n"))
	require.ErrorIs(t, err, canvas.ErrTheme)
	assert.Contains(t, err.Error(), "nope")

	_, err = canvas.DecodeTheme(strings.NewReader("coloraxis:\n  scales:\n    colorscale: nope\n"))
	require.ErrorIs(t, err, canvas.ErrTheme)

	theme, err := canvas.DecodeTheme(strings.NewReader("colorscale:\n  diverging: rdbu\n"))
	require.NoError(t, err)
	assert.Equal(t, "rdbu", theme.ColorScale.Diverging)
}
