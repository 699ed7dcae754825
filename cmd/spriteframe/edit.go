package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/phanxgames/spriteframe"
)

func newEditCmd(g *globals) *cobra.Command {
	var scriptPath string

	cmd := &cobra.Command{
		Use:   "edit [image...]",
		Short: "Open the editor window",
		Long: `Opens a window with the frame centered. Images given as arguments, and
files dropped onto the window, are added as sprites.

Drag a sprite to move it, drag its edges or corners to resize it.
Esc clears the selection, Ctrl+S exports the frame as PNG, Ctrl+Q quits.`,
		Example: `  # Start with two images
  spriteframe edit background.png logo.webp

  # Replay a recorded interaction in the window
  spriteframe edit photo.jpg --script demo.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := g.newEditor(args)
			if err != nil {
				return err
			}
			script, err := loadScript(scriptPath)
			if err != nil {
				return err
			}

			cfg := g.cfg
			rc := spriteframe.DefaultRunConfig()
			rc.Title = cfg.WindowTitle
			rc.Width, rc.Height = cfg.WindowWidth, cfg.WindowHeight
			rc.Canvas = cfg.CanvasColor()
			rc.Style = cfg.Style()
			rc.Dim = cfg.Dim
			rc.Zoom = cfg.Zoom
			rc.ShowStatus = cfg.ShowStatus
			rc.ExportDir = cfg.ExportDir
			rc.Script = script
			rc.OnError = func(err error) {
				slog.Warn("editor", "err", err)
			}

			slog.Info("opening editor", "frame", cfg.Frame(), "sprites", len(ed.Sprites()))
			return spriteframe.Run(ed, rc)
		},
	}

	cmd.Flags().StringVarP(&scriptPath, "script", "s", "", "JSON interaction script stepped once per frame")

	return cmd
}
