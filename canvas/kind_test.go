package canvas_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/midbel/visualate/canvas"
)

func TestKind(t *testing.T) {
	assert.Len(t, canvas.AllKinds, 18)
	assert.Equal(t, 18, canvas.KindAll.Count())
	assert.Equal(t, 10, canvas.KindColorAxis.Count())

	seen := make(map[string]bool)
	for _, k := range canvas.AllKinds {
		name := k.String()
		assert.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true

		got, ok := canvas.ParseKind(name)
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}
	_, ok := canvas.ParseKind("frame")
	assert.False(t, ok)

	assert.Equal(t, "none", canvas.KindNone.String())
	assert.Equal(t, "title|legend", (canvas.KindLegend | canvas.KindTitle).String())
	assert.Equal(t, []canvas.Kind{canvas.KindTitle, canvas.KindAxes}, (canvas.KindAxes | canvas.KindTitle).Split())
	assert.False(t, canvas.KindAll.Has(canvas.KindNone))
}
