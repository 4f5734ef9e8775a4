package cmd

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/quillhealth/dcmjpeg/internal/trace"
	"github.com/quillhealth/dcmjpeg/pkg/dicom"
	"github.com/quillhealth/dcmjpeg/pkg/dicomimage"
	"github.com/quillhealth/dcmjpeg/pkg/jpeglossless"
)

// NewDecodeCmd decodes a DICOM file's first pixel-data frame to a raw
// 8-bit grayscale or RGB file, printing the resulting dimensions.
func NewDecodeCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "decode a DICOM file's pixel data to raw 8-bit samples",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			rgb, _ := cmd.Flags().GetBool("rgb")
			return runDecode(ctx, args[0], out, rgb)
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringP("out", "o", "", "output path for the raw sample file (default: <input>.raw)")
	pf.Bool("rgb", false, "emit 3-channel RGB instead of single-channel grayscale")
	return cmd
}

func runDecode(ctx context.Context, path, outPath string, asRGB bool) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	traceID := trace.DecodeTraceID(raw)
	slog.DebugContext(ctx, "decoding DICOM file", slog.String("path", path), slog.String("trace", traceID))

	_, ds, err := dicom.Parse(raw)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	result, err := dicomimage.Normalize(ds, decodeBaselineJPEG)
	if err != nil {
		return fmt.Errorf("normalizing pixel data: %w", err)
	}

	samples := result.Gray
	if asRGB {
		samples = result.RGB
	}

	if outPath == "" {
		outPath = path + ".raw"
	}
	if err := os.WriteFile(outPath, samples, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	fmt.Printf("decoded %dx%d -> %s (%d bytes)\n", result.Width, result.Height, outPath, len(samples))
	return nil
}

// decodeBaselineJPEG is the concrete baseline-JPEG delegate the CLI wires
// in, using the standard library's codec as spec.md §4.7 assumes any real
// caller would.
func decodeBaselineJPEG(data []byte) (*jpeglossless.DecodedImage, error) {
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if _, ok := img.(*image.Gray); ok {
		out := make([]byte, width*height)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				r, _, _, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				out[y*width+x] = byte(r >> 8)
			}
		}
		return &jpeglossless.DecodedImage{Data: out, Width: width, Height: height, Channels: 1}, nil
	}

	out := make([]byte, width*height*3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			idx := (y*width + x) * 3
			out[idx] = byte(r >> 8)
			out[idx+1] = byte(g >> 8)
			out[idx+2] = byte(b >> 8)
		}
	}
	return &jpeglossless.DecodedImage{Data: out, Width: width, Height: height, Channels: 3}, nil
}
