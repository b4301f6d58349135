package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/arbor"
)

func newRunCmd(root *rootOptions) *cobra.Command {
	var (
		script        string
		screenshotDir string
		showFPS       bool
	)
	cmd := &cobra.Command{
		Use:   "run LAYOUT",
		Short: "Open a layout in a window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadScene(args[0], root)
			if err != nil {
				return err
			}
			bg, err := s.doc.BackgroundColor()
			if err != nil {
				return err
			}
			size := s.size(0, 0)
			cfg := arbor.RunConfig{
				Title:         s.doc.Title,
				Width:         int(size.Width),
				Height:        int(size.Height),
				ClearColor:    bg,
				ScreenshotDir: screenshotDir,
				ShowFPS:       showFPS,
			}
			if cfg.Title == "" {
				cfg.Title = args[0]
			}
			if script != "" {
				data, err := os.ReadFile(script)
				if err != nil {
					return err
				}
				if cfg.Script, err = arbor.LoadTestScript(data); err != nil {
					return fmt.Errorf("%s: %w", script, err)
				}
			}
			if root.debug {
				s.trace(cmd.ErrOrStderr())
			}
			return arbor.Run(s.ui, cfg)
		},
	}
	cmd.Flags().StringVar(&script, "script", "", "JSON input script to replay; the window closes when it ends")
	cmd.Flags().StringVar(&screenshotDir, "screenshots", "", "directory for script screenshots (default \"screenshots\")")
	cmd.Flags().BoolVar(&showFPS, "fps", false, "draw an FPS counter")
	return cmd
}
