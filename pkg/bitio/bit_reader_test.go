package bitio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitReader_ByteStuffingCollapse(t *testing.T) {
	br := NewBitReader([]byte{0xFF, 0x00, 0xAB})

	v, err := br.ReadBits(8)
	require.NoError(t, err)
	assert.Equal(t, 0xFF, v)

	v, err = br.ReadBits(8)
	require.NoError(t, err)
	assert.Equal(t, 0xAB, v)
}

func TestBitReader_SplitReads(t *testing.T) {
	br := NewBitReader([]byte{0b10110011, 0b11001100})

	v, err := br.ReadBits(4)
	require.NoError(t, err)
	assert.Equal(t, 0b1011, v)

	v, err = br.ReadBits(8)
	require.NoError(t, err)
	assert.Equal(t, 0b00111100, v)
}

func TestBitReader_RestartMarkerSwallowed(t *testing.T) {
	br := NewBitReader([]byte{0xAB, 0xFF, 0xD2, 0xCD})

	v, err := br.ReadBits(8)
	require.NoError(t, err)
	assert.Equal(t, 0xAB, v)

	v, err = br.ReadBits(8)
	require.NoError(t, err)
	assert.Equal(t, 0xCD, v)
}

func TestBitReader_NonRestartMarkerEndsSegment(t *testing.T) {
	br := NewBitReader([]byte{0xAB, 0xFF, 0xD9})

	v, err := br.ReadBits(8)
	require.NoError(t, err)
	assert.Equal(t, 0xAB, v)

	_, err = br.ReadBits(8)
	assert.ErrorIs(t, err, ErrEndOfStream)

	peek, ok := br.PeekByte()
	require.True(t, ok)
	assert.Equal(t, byte(0xFF), peek)
}

func TestBitReader_ReadBitsZero(t *testing.T) {
	br := NewBitReader([]byte{0x00})
	v, err := br.ReadBits(0)
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestBitReader_SkipBytesAfterAlign(t *testing.T) {
	br := NewBitReader([]byte{0xAB, 0xFF, 0xD2, 0xCD})

	_, err := br.ReadBits(4)
	require.NoError(t, err)

	require.NoError(t, br.SkipBytes(2))
	v, err := br.ReadBits(8)
	require.NoError(t, err)
	assert.Equal(t, 0xCD, v)
}
