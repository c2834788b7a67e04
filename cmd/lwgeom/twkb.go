package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beetlebugorg/lwgeom/pkg/geom"
)

func newTWKBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "twkb",
		Short: "Encode or decode the compact TWKB wire format",
	}
	cmd.AddCommand(newTWKBEncodeCmd())
	cmd.AddCommand(newTWKBDecodeCmd())
	return cmd
}

func newTWKBEncodeCmd() *cobra.Command {
	var bf buildFlags
	var precision, precisionZ, precisionM int
	var includeBBox, includeSize bool

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a geometry into TWKB as hex",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := bf.build()
			if err != nil {
				return err
			}
			buf, err := geom.EncodeTWKB(g, geom.TWKBOptions{
				Precision:   precision,
				PrecisionZ:  precisionZ,
				PrecisionM:  precisionM,
				IncludeBBox: includeBBox,
				IncludeSize: includeSize,
			})
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(buf))
			return nil
		},
	}
	addBuildFlags(cmd, &bf)
	cmd.Flags().IntVar(&precision, "precision", 0, "decimal digits of XY precision")
	cmd.Flags().IntVar(&precisionZ, "precision-z", 0, "decimal digits of Z precision")
	cmd.Flags().IntVar(&precisionM, "precision-m", 0, "decimal digits of M precision")
	cmd.Flags().BoolVar(&includeBBox, "bbox", false, "include a bounding box section")
	cmd.Flags().BoolVar(&includeSize, "size", false, "include a size section")
	return cmd
}

func newTWKBDecodeCmd() *cobra.Command {
	var hexInput string

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a TWKB hex string and summarize it",
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := hex.DecodeString(hexInput)
			if err != nil {
				return fmt.Errorf("invalid hex input: %w", err)
			}
			g, err := geom.DecodeTWKB(buf)
			if err != nil {
				return err
			}
			printSummary(g)
			return nil
		},
	}
	cmd.Flags().StringVar(&hexInput, "hex", "", "hex-encoded TWKB geometry (required)")
	cmd.MarkFlagRequired("hex")
	return cmd
}
