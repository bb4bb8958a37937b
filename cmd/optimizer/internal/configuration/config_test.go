package configuration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWidths(t *testing.T) {
	widths, err := ParseWidths("480, 800,,1200 ")
	require.NoError(t, err)
	assert.Equal(t, []int{480, 800, 1200}, widths)

	widths, err = ParseWidths("")
	require.NoError(t, err)
	assert.Empty(t, widths)

	_, err = ParseWidths("480,wide")
	assert.Error(t, err)

	_, err = ParseWidths("-10")
	assert.Error(t, err)
}
