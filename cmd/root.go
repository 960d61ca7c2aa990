package cmd

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/patience/internal/config"
	"github.com/arcanaland/patience/internal/render"
	"github.com/arcanaland/patience/internal/table"
)

// cfg is loaded before any subcommand runs
var cfg *config.Config

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "patience",
	Short: "Klondike solitaire in the terminal",
	Long: `Patience deals and plays Klondike solitaire with a keyboard cursor.
Games are dealt from a seed, so any position can be replayed from the seed
and the list of moves that led to it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return err
		}

		levelName := cfg.LogLevel
		if cmd.Flags().Changed("log-level") {
			levelName, _ = cmd.Flags().GetString("log-level")
		}
		level, err := config.ParseLogLevel(levelName)
		if err != nil {
			return err
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().Uint64("seed", 0, "Deal the game from this seed instead of the configured or a random one")
	RootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// gameSeed picks the --seed flag, then the configured seed, then a random one
func gameSeed(cmd *cobra.Command) uint64 {
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		return seed
	}
	if cfg != nil && cfg.Seed != nil {
		return *cfg.Seed
	}
	return rand.Uint64()
}

// newTable deals a game using the flags and config of cmd
func newTable(cmd *cobra.Command) *table.Table {
	seed := gameSeed(cmd)
	drawCount := table.DefaultDrawCount
	if cfg != nil {
		drawCount = cfg.DrawCount
	}
	slog.Debug("dealing", "seed", seed, "draw_count", drawCount)
	return table.New(seed, table.WithDrawCount(drawCount), table.WithLogger(slog.Default()))
}

// renderOptions sizes the board to the terminal and applies the colour setting
func renderOptions() render.Options {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80 // Default if we can't get terminal width
	}

	useColor := !color.NoColor
	if cfg != nil {
		switch cfg.Color {
		case config.ColorAlways:
			useColor = true
		case config.ColorNever:
			useColor = false
		}
	}
	return render.Options{Width: width, Color: useColor}
}

func printTable(t *table.Table) {
	fmt.Printf("seed %d\n\n", t.Seed())
	fmt.Print(render.Table(t, renderOptions()))
}
