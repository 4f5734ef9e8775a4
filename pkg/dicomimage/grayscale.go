package dicomimage

import "encoding/binary"

// toGrayscale converts raw interleaved samples to one 8-bit value per pixel,
// per spec.md §4.7: 8-bit mono copies through, 16-bit mono auto-windows,
// 3-channel applies the standard luma weights. MONOCHROME1 inverts the
// result afterward.
func toGrayscale(raw []byte, width, height, channels, bitsAllocated int, photometric string) ([]byte, error) {
	n := width * height
	gray := make([]byte, n)

	switch {
	case channels == 1 && bitsAllocated == 8:
		copy(gray, raw[:n])

	case channels == 1 && bitsAllocated > 8:
		samples := make([]int32, n)
		for i := 0; i < n; i++ {
			samples[i] = int32(binary.LittleEndian.Uint16(raw[i*2 : i*2+2]))
		}
		autoWindow(samples, gray)

	case channels == 3 && bitsAllocated == 8:
		for i := 0; i < n; i++ {
			r := int(raw[i*3])
			g := int(raw[i*3+1])
			b := int(raw[i*3+2])
			gray[i] = byte((299*r + 587*g + 114*b + 500) / 1000)
		}

	default:
		return nil, ErrUnsupportedSampleLayout
	}

	if photometric == "MONOCHROME1" {
		for i, v := range gray {
			gray[i] = 255 - v
		}
	}
	return gray, nil
}

// autoWindow rescales samples into [0,255] by their observed [min,max]
// range, writing into out. A degenerate (all-equal) range maps to 0.
func autoWindow(samples []int32, out []byte) {
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
}

// toRGB replicates a grayscale raster into three interleaved channels.
func toRGB(gray []byte) []byte {
	rgb := make([]byte, len(gray)*3)
	for i, v := range gray {
		rgb[i*3] = v
		rgb[i*3+1] = v
		rgb[i*3+2] = v
	}
	return rgb
}
