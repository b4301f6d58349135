package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phanxgames/arbor"
)

func newDumpCmd(root *rootOptions) *cobra.Command {
	var (
		width, height int
		paint         bool
	)
	cmd := &cobra.Command{
		Use:   "dump LAYOUT",
		Short: "Lay a description out and print the geometry of every node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadScene(args[0], root)
			if err != nil {
				return err
			}
			buf := arbor.NewCommandBuffer(s.size(width, height))
			s.ui.Frame(buf)

			out := cmd.OutOrStdout()
			if err := s.ui.Dump(out, s.ui.Root()); err != nil {
				return err
			}
			if !paint {
				return nil
			}
			for _, c := range buf.Fills() {
				r := c.Rect
				if _, err := fmt.Fprintf(out, "fill (%g,%g %gx%g) %s\n",
					r.Origin.X, r.Origin.Y, r.Size.Width, r.Size.Height, c.Color.Hex()); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "surface width (default: from the layout, else 640)")
	cmd.Flags().IntVar(&height, "height", 0, "surface height (default: from the layout, else 480)")
	cmd.Flags().BoolVar(&paint, "paint", false, "also print the fill commands of the frame")
	return cmd
}
