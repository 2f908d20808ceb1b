package canvas_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/midbel/visualate/canvas"
)

func TestDirectorConstruct(t *testing.T) {
	var (
		b = canvas.NewDefaultCanvasBuilder()
		d = canvas.NewDirector(b)
	)
	c := d.Construct()
	require.Equal(t, 18, c.Len())
	require.Equal(t, canvas.KindAll, c.Kinds())
	require.True(t, b.Build().Empty(), "builder left empty")

	list := c.Components()
	for i, k := range canvas.AllKinds {
		require.Equal(t, k, list[i].Kind())
	}
}

func TestDirectorConstructBasic(t *testing.T) {
	c := canvas.NewDirector(canvas.NewDefaultCanvasBuilder()).ConstructBasic()
	require.Equal(t, 7, c.Len())
	require.Equal(t, canvas.KindBasic, c.Kinds())
	require.False(t, c.Has(canvas.KindColorScale))
}

func TestDirectorConstructKinds(t *testing.T) {
	b := canvas.NewDefaultCanvasBuilder()
	b.BuildLegend()

	d := canvas.NewDirector(b)
	c := d.ConstructKinds(canvas.KindColorBar)
	require.Equal(t, 8, c.Len())
	require.False(t, c.Has(canvas.KindLegend), "director resets the builder first")

	c = d.ConstructKinds(canvas.KindNone)
	require.True(t, c.Empty())
}
