package dicomimage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToGrayscale_Monochrome1Inversion(t *testing.T) {
	raw := []byte{0, 64, 192, 255}
	gray, err := toGrayscale(raw, 2, 2, 1, 8, "MONOCHROME1")
	require.NoError(t, err)
	assert.Equal(t, []byte{255, 191, 63, 0}, gray)
}

func TestToGrayscale_Monochrome2PassThrough(t *testing.T) {
	raw := []byte{0, 64, 192, 255}
	gray, err := toGrayscale(raw, 2, 2, 1, 8, "MONOCHROME2")
	require.NoError(t, err)
	assert.Equal(t, raw, gray)
}

func TestToGrayscale_SixteenBitAutoWindow(t *testing.T) {
	raw := []byte{0xE8, 0x03, 0xA0, 0x0F} // little-endian 1000, 4000
	gray, err := toGrayscale(raw, 2, 1, 1, 16, "MONOCHROME2")
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 255}, gray)
}

func TestToGrayscale_SixteenBitDegenerateRange(t *testing.T) {
	raw := []byte{0xF4, 0x01, 0xF4, 0x01} // little-endian 500, 500
	gray, err := toGrayscale(raw, 2, 1, 1, 16, "MONOCHROME2")
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0}, gray)
}

func TestToRGB_ReplicatesGrayscale(t *testing.T) {
	rgb := toRGB([]byte{10, 20})
	assert.Equal(t, []byte{10, 10, 10, 20, 20, 20}, rgb)
}
