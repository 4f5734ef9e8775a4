package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quillhealth/dcmjpeg/pkg/dicom"
	"github.com/quillhealth/dcmjpeg/pkg/metadata"
)

// NewMetadataCmd prints a DICOM file's projected metadata record.
func NewMetadataCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metadata [file]",
		Short: "print a DICOM file's metadata as JSON or text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			return runMetadata(args[0], format)
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringP("format", "f", "json", "output format (text|json)")
	return cmd
}

func runMetadata(path, format string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	_, ds, err := dicom.Parse(raw)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	if format == "text" {
		fmt.Println(ds.String())
		return nil
	}

	record := metadata.Project(ds)
	out, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshaling metadata: %w", err)
	}
	os.Stdout.Write(out)
	fmt.Println()
	return nil
}
