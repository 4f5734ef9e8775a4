package jpeglossless

import (
	"log/slog"

	"github.com/quillhealth/dcmjpeg/pkg/bitio"
)

// DecodedImage is the JPEG Lossless decoder's output: 8-bit samples
// interleaved by component.
type DecodedImage struct {
	Data    []byte
	Width   int
	Height  int
	Channels int
}

type componentInfo struct {
	id            byte
	hSampling     byte
	vSampling     byte
	quantTableID  byte
	dcTableIndex  byte
}

type frameHeader struct {
	precision  int
	height     int
	width      int
	components []componentInfo
}

type scanHeader struct {
	predictor   int
	pointTrans  int
}

// Decode parses a complete JPEG Lossless bitstream (SOI..EOI) and returns
// the reconstructed 8-bit raster.
func Decode(data []byte) (*DecodedImage, error) {
	r := bitio.NewByteReader(data, false) // JPEG segment lengths are big-endian

	if err := expectMarker(r, markerSOI); err != nil {
		return nil, err
	}

	var frame *frameHeader
	dcTables := [4]*HuffmanTable{}
	restartInterval := 0

	for {
		code, err := nextMarkerCode(r)
		if err != nil {
			return nil, err
		}

		switch {
		case isSOF(code):
			if !isLosslessSOF(code) {
				return nil, ErrUnsupportedFormat
			}
			if isArithmeticSOF(code) {
				return nil, ErrArithmeticCodingNotSupported
			}
			frame, err = parseSOF(r)
			if err != nil {
				return nil, err
			}
			slog.Debug("jpeglossless: parsed frame header",
				slog.Int("width", frame.width), slog.Int("height", frame.height),
				slog.Int("precision", frame.precision), slog.Int("components", len(frame.components)))

		case code == markerDHT:
			if err := parseDHT(r, &dcTables); err != nil {
				return nil, err
			}

		case code == markerDRI:
			ri, err := parseDRI(r)
			if err != nil {
				return nil, err
			}
			restartInterval = ri

		case code == markerSOS:
			if frame == nil {
				return nil, ErrInvalidScanHeader
			}
			sos, err := parseSOS(r, frame)
			if err != nil {
				return nil, err
			}
			return decodeScan(r, frame, sos, dcTables, restartInterval)

		case code == markerEOI:
			return nil, ErrUnexpectedEndOfData

		default:
			if hasLength(code) {
				if err := skipSegment(r); err != nil {
					return nil, err
				}
			}
		}
	}
}

func expectMarker(r *bitio.ByteReader, want byte) error {
	b0, err := r.ReadU8()
	if err != nil {
		return err
	}
	b1, err := r.ReadU8()
	if err != nil {
		return err
	}
	if b0 != 0xFF || b1 != want {
		return ErrInvalidMarker
	}
	return nil
}

// nextMarkerCode reads past any 0xFF fill-byte run and returns the marker
// code that follows.
func nextMarkerCode(r *bitio.ByteReader) (byte, error) {
	b, err := r.ReadU8()
	if err != nil {
		return 0, err
	}
	if b != 0xFF {
		return 0, ErrInvalidMarker
	}
	for {
		code, err := r.ReadU8()
		if err != nil {
			return 0, err
		}
		if code == 0xFF {
			continue // fill byte
		}
		return code, nil
	}
}

func skipSegment(r *bitio.ByteReader) error {
	length, err := r.ReadU16()
	if err != nil {
		return err
	}
	if length < 2 {
		return ErrInvalidMarker
	}
	return r.Skip(int(length) - 2)
}

func parseSOF(r *bitio.ByteReader) (*frameHeader, error) {
	if _, err := r.ReadU16(); err != nil { // segment length, unused
		return nil, ErrInvalidFrameHeader
	}
	precision, err := r.ReadU8()
	if err != nil {
		return nil, ErrInvalidFrameHeader
	}
	height, err := r.ReadU16()
	if err != nil {
		return nil, ErrInvalidFrameHeader
	}
	width, err := r.ReadU16()
	if err != nil {
		return nil, ErrInvalidFrameHeader
	}
	nf, err := r.ReadU8()
	if err != nil || nf == 0 || nf > 4 {
		return nil, ErrInvalidFrameHeader
	}

	comps := make([]componentInfo, nf)
	for i := 0; i < int(nf); i++ {
		id, err := r.ReadU8()
		if err != nil {
			return nil, ErrInvalidFrameHeader
		}
		sampling, err := r.ReadU8()
		if err != nil {
			return nil, ErrInvalidFrameHeader
		}
		quant, err := r.ReadU8()
		if err != nil {
			return nil, ErrInvalidFrameHeader
		}
		comps[i] = componentInfo{
			id:           id,
			hSampling:    sampling >> 4,
			vSampling:    sampling & 0x0F,
			quantTableID: quant, // unused: lossless has no quantization
		}
	}

	return &frameHeader{
		precision:  int(precision),
		height:     int(height),
		width:      int(width),
		components: comps,
	}, nil
}

func parseDHT(r *bitio.ByteReader, dcTables *[4]*HuffmanTable) error {
	length, err := r.ReadU16()
	if err != nil {
		return ErrInvalidHuffmanTable
	}
	end := r.Pos() + int(length) - 2

	for r.Pos() < end {
		info, err := r.ReadU8()
		if err != nil {
			return ErrInvalidHuffmanTable
		}
		class := info >> 4
		id := info & 0x0F

		var counts [16]byte
		for i := range counts {
			b, err := r.ReadU8()
			if err != nil {
				return ErrInvalidHuffmanTable
			}
			counts[i] = b
		}
		sum := 0
		for _, c := range counts {
			sum += int(c)
		}
		values, err := r.ReadBytes(sum)
		if err != nil {
			return ErrInvalidHuffmanTable
		}

		if class != 0 {
			// AC tables are not used by SOF3 lossless; parsed to keep the
			// segment cursor correct, then discarded.
			continue
		}
		if id > 3 {
			return ErrInvalidHuffmanTable
		}
		ht, err := BuildHuffmanTable(counts, append([]byte(nil), values...))
		if err != nil {
			return err
		}
		dcTables[id] = ht
	}
	return nil
}

func parseDRI(r *bitio.ByteReader) (int, error) {
	if _, err := r.ReadU16(); err != nil { // segment length, always 4
		return 0, ErrInvalidMarker
	}
	ri, err := r.ReadU16()
	if err != nil {
		return 0, ErrInvalidMarker
	}
	return int(ri), nil
}

func parseSOS(r *bitio.ByteReader, frame *frameHeader) (*scanHeader, error) {
	if _, err := r.ReadU16(); err != nil { // segment length
		return nil, ErrInvalidScanHeader
	}
	ns, err := r.ReadU8()
	if err != nil || int(ns) != len(frame.components) {
		return nil, ErrInvalidScanHeader
	}
	for i := 0; i < int(ns); i++ {
		selector, err := r.ReadU8()
		if err != nil {
			return nil, ErrInvalidScanHeader
		}
		tableMapping, err := r.ReadU8()
		if err != nil {
			return nil, ErrInvalidScanHeader
		}
		dcID := tableMapping >> 4
		for j := range frame.components {
			if frame.components[j].id == selector {
				frame.components[j].dcTableIndex = dcID
			}
		}
	}

	predictor, err := r.ReadU8()
	if err != nil || predictor > 7 {
		return nil, ErrInvalidScanHeader
	}
	if _, err := r.ReadU8(); err != nil { // Se, ignored for lossless
		return nil, ErrInvalidScanHeader
	}
	ahAl, err := r.ReadU8()
	if err != nil {
		return nil, ErrInvalidScanHeader
	}

	return &scanHeader{predictor: int(predictor), pointTrans: int(ahAl & 0x0F)}, nil
}
