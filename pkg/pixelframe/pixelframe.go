// Package pixelframe reconstructs compressed frame byte streams from the
// encapsulated item sequence that follows an undefined-length PixelData
// element.
package pixelframe

import (
	"errors"

	"github.com/quillhealth/dcmjpeg/pkg/bitio"
)

// ErrInvalidPixelData is returned when a stream claims encapsulation but no
// frames could be extracted.
var ErrInvalidPixelData = errors.New("pixelframe: no frames extracted from encapsulated pixel data")

const (
	itemTagGroup      = 0xFFFE
	itemTagElement    = 0xE000
	delimiterElement  = 0xE0DD
)

// ExtractFrames walks value, the raw bytes of an undefined-length PixelData
// element, and returns a view into each encapsulated frame. The views borrow
// directly from value; they must not outlive it.
func ExtractFrames(value []byte) ([][]byte, error) {
	r := bitio.NewByteReader(value, true)

	if looksLikeOffsetTable(r) {
		if err := skipItem(r); err != nil {
			return nil, err
		}
	}

	var frames [][]byte
	for {
		if r.Remaining() < 8 {
			break
		}
		group, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		element, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		length, err := r.ReadU32()
		if err != nil {
			return nil, err
		}

		if group == itemTagGroup && element == delimiterElement {
			break
		}
		if group != itemTagGroup || element != itemTagElement {
			// A non-item, non-delimiter tag inside the sequence: stop.
			break
		}
		if length > uint32(r.Remaining()) {
			break
		}
		if length == 0 {
			// An empty item (other than a leading offset table, already
			// skipped above) contributes no frame; keep scanning.
			continue
		}
		frame, err := r.ReadBytes(int(length))
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}

	if len(frames) == 0 {
		return nil, ErrInvalidPixelData
	}
	return frames, nil
}

// looksLikeOffsetTable reports whether the next 8 bytes are an item tag
// whose length is nonzero and a multiple of 4 — the shape of a basic offset
// table, as opposed to the first real frame item.
func looksLikeOffsetTable(r *bitio.ByteReader) bool {
	if r.Remaining() < 8 {
		return false
	}
	start := r.Pos()
	defer r.SetPos(start)

	group, err := r.ReadU16()
	if err != nil || group != itemTagGroup {
		return false
	}
	element, err := r.ReadU16()
	if err != nil || element != itemTagElement {
		return false
	}
	length, err := r.ReadU32()
	if err != nil {
		return false
	}
	return length != 0 && length%4 == 0
}

func skipItem(r *bitio.ByteReader) error {
	if _, err := r.ReadU16(); err != nil {
		return err
	}
	if _, err := r.ReadU16(); err != nil {
		return err
	}
	length, err := r.ReadU32()
	if err != nil {
		return err
	}
	return r.Skip(int(length))
}
