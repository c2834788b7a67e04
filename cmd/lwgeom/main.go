// The lwgeom command line tool encodes and decodes geometries in the
// serialized and TWKB wire formats, and reports bounding boxes, fronting
// the pkg/geom library the way golang-debug/cmd/viewcore fronts gocore.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lwgeom",
		Short: "Inspect and convert geometry wire formats",
	}
	root.AddCommand(newEncodeCmd())
	root.AddCommand(newDecodeCmd())
	root.AddCommand(newTWKBCmd())
	root.AddCommand(newBBoxCmd())
	return root
}
