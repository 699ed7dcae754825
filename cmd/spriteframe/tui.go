package main

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/phanxgames/spriteframe/term"
)

func newTUICmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui [image...]",
		Short: "Run the editor in the terminal",
		Long: `Runs the editor in the terminal using half-block pixels. Needs a terminal
with mouse reporting and true color. Space clears the selection; q, Esc or
Ctrl+C quits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := g.newEditor(args)
			if err != nil {
				return err
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("init terminal: %w", err)
			}
			defer screen.Fini()

			cfg := g.cfg
			opts := term.DefaultOptions()
			opts.Style = cfg.Style()
			opts.Style.SelectionLineWidth = 1
			opts.Style.HandleRadius = cfg.HandleRadius * cfg.TermHandleScale
			opts.Canvas = cfg.CanvasColor()
			opts.Dim = cfg.Dim
			opts.Zoom = cfg.TermZoom
			opts.StatusLine = cfg.ShowStatus
			opts.Logger = slog.Default()

			return term.Run(cmd.Context(), screen, ed, opts)
		},
	}

	return cmd
}
