package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beetlebugorg/lwgeom/pkg/geom"
)

func newDecodeCmd() *cobra.Command {
	var hexInput string

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a serialized wire format hex string and summarize it",
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := hex.DecodeString(hexInput)
			if err != nil {
				return fmt.Errorf("invalid hex input: %w", err)
			}
			g, err := geom.Deserialize(buf)
			if err != nil {
				return err
			}
			printSummary(g)
			return nil
		},
	}
	cmd.Flags().StringVar(&hexInput, "hex", "", "hex-encoded serialized geometry (required)")
	cmd.MarkFlagRequired("hex")
	return cmd
}

func printSummary(g *geom.Geometry) {
	fmt.Printf("type: %s\n", g.TypeName())
	fmt.Printf("srid: %d\n", g.SRID())
	fmt.Printf("empty: %v\n", g.IsEmpty())
	fmt.Printf("vertices: %d\n", g.NumPoints())
}
