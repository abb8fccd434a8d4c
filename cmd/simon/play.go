package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadeworks/simon-tui/internal/audio"
	"github.com/arcadeworks/simon-tui/internal/config"
	"github.com/arcadeworks/simon-tui/internal/core"
	"github.com/arcadeworks/simon-tui/internal/platform/tui"
	"github.com/arcadeworks/simon-tui/internal/registry"
	"github.com/arcadeworks/simon-tui/internal/storage"
)

var (
	flagNoAudio bool
	flagInvert  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Simon in the terminal",
	Long: `Start the game in the current terminal.

Controls:
  1-4 / hjkl - Press a color pad
  M          - Mute/unmute
  R          - Reset the circuit
  Q/Ctrl+C   - Quit

Examples:
  simon play
  simon play --no-audio
  simon play --invert                # Common-anode display polarity
  simon play --config ./my-simon.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable sound output")
	playCmd.Flags().BoolVar(&flagInvert, "invert", false, "Invert seven-segment polarity")
}

func runPlay(cmd *cobra.Command, args []string) {
	simonCfg, err := config.LoadSimon(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagInvert {
		simonCfg.Display.SegmentInvert = true
	}
	if flagTPM != 0 {
		simonCfg.Clock.TicksPerMilli = flagTPM
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:       width,
		ScreenH:       height,
		TickRate:      flagFPS,
		TicksPerMilli: simonCfg.Clock.TicksPerMilli,
		SegInvert:     simonCfg.Display.SegmentInvert,
		HoldMillis:    simonCfg.Input.HoldMillis,
	}

	game, err := registry.Create("simon")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Set up audio
	var speaker *audio.Speaker
	if simonCfg.Audio.Enabled && !flagNoAudio {
		speaker = audio.NewSpeaker(simonCfg.Audio.SampleRate)
		if audioErr := speaker.Initialize(); audioErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", audioErr)
			speaker = nil
		}
	}

	// Run the game
	runErr := tui.Run(game, store, speaker, cfg)

	if speaker != nil {
		speaker.Cleanup()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
