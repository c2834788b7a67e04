package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beetlebugorg/lwgeom/pkg/geom"
)

func newEncodeCmd() *cobra.Command {
	var bf buildFlags
	var withBBox bool

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a geometry into the serialized wire format as hex",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := bf.build()
			if err != nil {
				return err
			}
			buf, err := geom.Serialize(g, withBBox)
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(buf))
			return nil
		},
	}
	addBuildFlags(cmd, &bf)
	cmd.Flags().BoolVar(&withBBox, "bbox", false, "include a computed bounding box in the envelope")
	return cmd
}

func addBuildFlags(cmd *cobra.Command, bf *buildFlags) {
	cmd.Flags().StringVar(&bf.typeName, "type", "point", "geometry type: point, linestring, circularstring, triangle, polygon")
	cmd.Flags().StringVar(&bf.points, "points", "", "semicolon-separated coordinates, e.g. \"0,0;1,1\"")
	cmd.Flags().StringVar(&bf.rings, "rings", "", "pipe-separated rings of semicolon-separated coordinates, for --type polygon")
	cmd.Flags().Int32Var(&bf.srid, "srid", 0, "spatial reference identifier")
	cmd.Flags().BoolVar(&bf.hasZ, "z", false, "coordinates include a Z ordinate")
	cmd.Flags().BoolVar(&bf.hasM, "m", false, "coordinates include an M ordinate")
}
