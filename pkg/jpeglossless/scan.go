package jpeglossless

import (
	"github.com/quillhealth/dcmjpeg/pkg/bitio"
)

// decodeScan runs the entropy-coded raster-order decode loop from the
// current marker-scanner position to the end of the supplied buffer and
// reconstructs the 8-bit output raster. Any entropy-stream failure is fatal:
// a partially decoded image is never returned.
func decodeScan(r *bitio.ByteReader, frame *frameHeader, sos *scanHeader, dcTables [4]*HuffmanTable, restartInterval int) (*DecodedImage, error) {
	br := bitio.NewBitReader(r.Rest())

	height, width := frame.height, frame.width
	nf := len(frame.components)
	v0 := initialPredictionValue(frame.precision, sos.pointTrans)

	tables := make([]*HuffmanTable, nf)
	for c, comp := range frame.components {
		ht := dcTables[comp.dcTableIndex]
		if ht == nil {
			return nil, ErrInvalidHuffmanTable
		}
		tables[c] = ht
	}

	samples := make([]int32, height*width*nf)
	mcus := 0

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if restartInterval > 0 && mcus > 0 && mcus%restartInterval == 0 {
				if err := swallowRestartMarker(br); err != nil {
					return nil, err
				}
			}
			mcus++

			for c := 0; c < nf; c++ {
				ssss, err := tables[c].Decode(br)
				if err != nil {
					return nil, err
				}
				if ssss > 16 {
					return nil, ErrInvalidCategory
				}

				bits := 0
				if ssss > 0 {
					v, err := br.ReadBits(int(ssss))
					if err != nil {
						return nil, err
					}
					bits = v
				}
				diff := decodeDifference(int(ssss), bits)

				var pred int
				switch {
				case x == 0 && y == 0:
					pred = v0
				case y == 0:
					pred = predict(1, sampleAt(samples, width, nf, x-1, y, c), 0, 0)
				case x == 0:
					pred = predict(2, 0, sampleAt(samples, width, nf, x, y-1, c), 0)
				default:
					ra := sampleAt(samples, width, nf, x-1, y, c)
					rb := sampleAt(samples, width, nf, x, y-1, c)
					rc := sampleAt(samples, width, nf, x-1, y-1, c)
					pred = predict(sos.predictor, ra, rb, rc)
				}

				samples[(y*width+x)*nf+c] = int32(pred + diff)
			}
		}
	}

	return toDecodedImage(samples, width, height, nf, frame.precision), nil
}

func sampleAt(samples []int32, width, nf, x, y, c int) int {
	return int(samples[(y*width+x)*nf+c])
}

// swallowRestartMarker aligns to the next byte boundary and, if a restart
// marker is present there, consumes its 2 bytes. A missing marker at a
// restart boundary is tolerated rather than treated as fatal, since the
// MCU count alone is enough to keep decoding in sync.
func swallowRestartMarker(br *bitio.BitReader) error {
	br.AlignToByte()
	b, ok := br.PeekByte()
	if !ok || b != 0xFF {
		return nil
	}
	return br.SkipBytes(2)
}

// toDecodedImage converts the reconstructed 32-bit samples to an 8-bit
// raster. Precision <= 8 clamps directly into [0, 255]; precision > 8
// rescales the observed [min, max] range into [0, 255] (an all-equal range
// maps to 0).
func toDecodedImage(samples []int32, width, height, channels, precision int) *DecodedImage {
	out := make([]byte, len(samples))

	if precision <= 8 {
		for i, s := range samples {
			out[i] = clamp8(s)
		}
		return &DecodedImage{Data: out, Width: width, Height: height, Channels: channels}
	}

	min, max := samples[0], samples[0]
	for _, s := range samples {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	span := max - min
	for i, s := range samples {
		if span == 0 {
			out[i] = 0
			continue
		}
		out[i] = byte((int64(s-min) * 255) / int64(span))
	}
	return &DecodedImage{Data: out, Width: width, Height: height, Channels: channels}
}

func clamp8(v int32) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
