package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beetlebugorg/lwgeom/pkg/geom"
)

func newBBoxCmd() *cobra.Command {
	var hexInput string
	var isTWKB bool

	cmd := &cobra.Command{
		Use:   "bbox",
		Short: "Compute the bounding box of a serialized or TWKB geometry",
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := hex.DecodeString(hexInput)
			if err != nil {
				return fmt.Errorf("invalid hex input: %w", err)
			}
			var g *geom.Geometry
			if isTWKB {
				g, err = geom.DecodeTWKB(buf)
			} else {
				g, err = geom.Deserialize(buf)
			}
			if err != nil {
				return err
			}
			box, err := g.BoundingBox()
			if err != nil {
				return err
			}
			fmt.Println(box.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&hexInput, "hex", "", "hex-encoded geometry (required)")
	cmd.Flags().BoolVar(&isTWKB, "twkb", false, "interpret the hex input as TWKB rather than the serialized form")
	cmd.MarkFlagRequired("hex")
	return cmd
}
