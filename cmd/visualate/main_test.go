package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midbel/visualate/canvas"
)

func TestParseKinds(t *testing.T) {
	k, err := parseKinds(nil)
	require.NoError(t, err)
	assert.Equal(t, canvas.KindAll, k)

	k, err = parseKinds([]string{"basic", "colorbar"})
	require.NoError(t, err)
	assert.Equal(t, canvas.KindBasic|canvas.KindColorBar, k)

	k, err = parseKinds([]string{"title", "color-bar-tick-font"})
	require.NoError(t, err)
	assert.Equal(t, canvas.KindTitle|canvas.KindColorBarTickFont, k)

	_, err = parseKinds([]string{"nope"})
	require.Error(t, err)
}
