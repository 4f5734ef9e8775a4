// Package jpeglossless implements a from-scratch JPEG Lossless (ITU-T T.81
// Annex H, SOF3/Huffman) decoder: marker scanning, Huffman table
// construction, bit-level entropy decoding, predictor reconstruction, and
// 8-bit output conversion.
package jpeglossless

import (
	"errors"

	"github.com/quillhealth/dcmjpeg/pkg/bitio"
)

// Error kinds for the JPEG Lossless decoder, matching the flat taxonomy used
// across the decoding pipeline.
var (
	ErrInvalidMarker                = errors.New("jpeglossless: invalid marker")
	ErrUnsupportedFormat             = errors.New("jpeglossless: not a SOF3 (lossless Huffman) frame")
	ErrArithmeticCodingNotSupported = errors.New("jpeglossless: arithmetic coding is not supported")
	ErrInvalidFrameHeader            = errors.New("jpeglossless: invalid frame header")
	ErrInvalidScanHeader             = errors.New("jpeglossless: invalid scan header")
	ErrInvalidHuffmanTable           = errors.New("jpeglossless: invalid Huffman table")
	ErrInvalidHuffmanCode            = errors.New("jpeglossless: invalid Huffman code")
	ErrInvalidCategory               = errors.New("jpeglossless: invalid SSSS category")
	ErrUnexpectedEndOfData           = errors.New("jpeglossless: unexpected end of data before scan")

	// ErrEndOfStream is bitio's entropy-stream sentinel, re-exported so callers
	// never need to import pkg/bitio just to classify a scan-decode failure.
	ErrEndOfStream = bitio.ErrEndOfStream
)
