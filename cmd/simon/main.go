// simon is a terminal rendition of the classic Simon memory game, played
// against a cycle-accurate simulation of the original hardware.
//
// Usage:
//
//	simon play               - Play in the current terminal
//	simon serve              - Start SSH server for remote play
//	simon scores             - Show high scores
//	simon trace              - Run the circuit headless and log pin activity
//
// Global flags:
//
//	--fps <rate>    - Host frame rate (default: 60)
//	--db <path>     - Scores database path (default: ~/.simon/scores.db)
//	--config <path> - Custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/arcadeworks/simon-tui/internal/games/simon"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
	flagConfig string
	flagTPM    uint16
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "simon",
	Short: "Simon Says - a hardware-accurate memory game for your terminal",
	Long: `Simon plays the classic color-memory game by simulating the original
digital circuit tick for tick: the same shift-register sequences, the
same millisecond timing, the same seven-segment score display.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  trace    - Run the circuit headless and log its behavior

Examples:
  simon play
  simon play --invert
  simon serve --ssh :2222
  simon scores
  simon trace --millis 3000 --press 600:0`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Host frame rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.simon/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Uint16Var(&flagTPM, "ticks-per-milli", 0, "Simulated clock ticks per millisecond (0 = from config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(traceCmd)
}
