package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/phanxgames/spriteframe"
	"github.com/phanxgames/spriteframe/internal/config"
)

// globals is shared by every subcommand once the root pre-run has loaded it.
type globals struct {
	configPath string
	logLevel   string
	debug      bool

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	cmd := &cobra.Command{
		Use:   "spriteframe",
		Short: "Place and resize images inside a fixed frame",
		Long: `spriteframe is a sprite placement editor. Images are auto-fit into a frame
and can then be moved and resized with the pointer. Sprites outside the frame
stay visible but dimmed; only what lies inside the frame is exported.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
			return g.load(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "YAML config file")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable engine debug diagnostics on stderr")

	cmd.AddCommand(
		newEditCmd(g),
		newTUICmd(g),
		newRenderCmd(g),
	)

	return cmd
}

func (g *globals) load(cmd *cobra.Command) error {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = g.logLevel
	}
	if g.debug {
		cfg.Debug = true
	}
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	spriteframe.SetDebugMode(cfg.Debug)
	g.cfg = cfg
	return nil
}

// newEditor builds an editor from the config and adds every image in paths
// as a sprite, in order.
func (g *globals) newEditor(paths []string) (*spriteframe.Editor, error) {
	ed := g.cfg.NewEditor()
	for _, p := range paths {
		img, err := spriteframe.LoadImageFile(p)
		if err != nil {
			return nil, err
		}
		s := ed.AddSprite(img)
		slog.Debug("sprite added", "path", p, "id", s.ID, "rect", fmt.Sprint(s.Rect))
	}
	return ed, nil
}

// loadScript returns nil when path is empty.
func loadScript(path string) (*spriteframe.Script, error) {
	if path == "" {
		return nil, nil
	}
	return spriteframe.LoadScriptFile(path)
}
