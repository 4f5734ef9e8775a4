package jpeglossless

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhealth/dcmjpeg/pkg/bitio"
)

func TestBuildHuffmanTable_RejectsCountMismatch(t *testing.T) {
	var counts [16]byte
	counts[0] = 2
	_, err := BuildHuffmanTable(counts, []byte{1})
	assert.ErrorIs(t, err, ErrInvalidHuffmanTable)
}

func TestHuffmanTable_DecodeFourSymbols(t *testing.T) {
	var counts [16]byte
	counts[1] = 4 // four 2-bit codes
	values := []byte{0, 4, 5, 7}
	ht, err := BuildHuffmanTable(counts, values)
	require.NoError(t, err)

	// Canonical codes: 00->0, 01->4, 10->5, 11->7.
	br := bitio.NewBitReader([]byte{0b00_01_10_11})
	for _, want := range values {
		got, err := ht.Decode(br)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestHuffmanTable_DecodeInvalidCodeIsFatal(t *testing.T) {
	var counts [16]byte
	counts[0] = 1 // one 1-bit code
	values := []byte{0}
	ht, err := BuildHuffmanTable(counts, values)
	require.NoError(t, err)

	// minCode[1]=0, maxCode[1]=0: the only valid 1-bit code is "0". Feed 16
	// bits that never settle into that code, exhausting every length without
	// a match.
	br := bitio.NewBitReader([]byte{0xFE, 0x7F})
	_, err = ht.Decode(br)
	assert.ErrorIs(t, err, ErrInvalidHuffmanCode)
}
