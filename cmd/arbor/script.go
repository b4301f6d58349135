package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/phanxgames/arbor"
)

func newScriptCmd(root *rootOptions) *cobra.Command {
	var width, height int
	cmd := &cobra.Command{
		Use:   "script LAYOUT SCRIPT",
		Short: "Replay a JSON input script headlessly and print the events it raised",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadScene(args[0], root)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			runner, err := arbor.LoadTestScript(data)
			if err != nil {
				return fmt.Errorf("%s: %w", args[1], err)
			}

			out := cmd.OutOrStdout()
			s.trace(out)
			runner.Screenshot = func(label string) {
				fmt.Fprintf(out, "screenshot %q skipped (headless)\n", label)
			}

			buf := arbor.NewCommandBuffer(s.size(width, height))
			frames := runner.RunHeadless(s.ui, buf)
			fmt.Fprintf(out, "%d frames\n", frames)
			return s.ui.Dump(out, s.ui.Root())
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "surface width (default: from the layout, else 640)")
	cmd.Flags().IntVar(&height, "height", 0, "surface height (default: from the layout, else 480)")
	return cmd
}

// trace registers listeners that print every event raised on a built node
// and every application command.
func (s *scene) trace(out io.Writer) {
	ids := make([]arbor.ID, 0, len(s.built.Kinds))
	for id := range s.built.Kinds {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		name := s.name(id)
		arbor.AddListener(s.ui, id, func(payload any, ctx *arbor.ListenerCtx) {
			fmt.Fprintf(out, "event #%d %s: %+v\n", ctx.ID, name, payload)
		})
	}
	s.ui.SetCommandListener(func(cmd uint32, ctx *arbor.ListenerCtx) {
		fmt.Fprintf(out, "command %d\n", cmd)
	})
}
