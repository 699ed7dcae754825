package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/phanxgames/spriteframe"
)

func newRenderCmd(g *globals) *cobra.Command {
	var (
		scriptPath string
		out        string
	)

	cmd := &cobra.Command{
		Use:   "render [image...]",
		Short: "Place images headlessly and export the frame as PNG",
		Long: `Adds every image as a sprite, optionally replays an interaction script
against them, and writes what lies inside the frame to a PNG file. No window
or GPU is needed.`,
		Example: `  # Auto-fit one image and export it
  spriteframe render photo.jpg --out frame.png

  # Move and resize with a script first
  spriteframe render a.png b.png --script layout.json --out poster.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := g.newEditor(args)
			if err != nil {
				return err
			}
			script, err := loadScript(scriptPath)
			if err != nil {
				return err
			}
			if script != nil {
				if err := script.Play(ed); err != nil {
					return err
				}
				slog.Debug("script played", "path", scriptPath, "events", script.Len())
			}
			if err := spriteframe.ExportFile(ed, out); err != nil {
				return err
			}
			slog.Info("frame exported", "path", out, "frame", g.cfg.Frame(), "sprites", len(ed.Sprites()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&scriptPath, "script", "s", "", "JSON interaction script to replay before export")
	cmd.Flags().StringVarP(&out, "out", "o", "frame.png", "output PNG path")

	return cmd
}
