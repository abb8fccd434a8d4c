package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/arcadeworks/simon-tui/internal/config"
	"github.com/arcadeworks/simon-tui/internal/sim"
)

var (
	flagTraceMillis int
	flagTracePress  []string
	flagTraceSeed   string
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Run the circuit headless and log pin activity",
	Long: `Run the simulated circuit without a UI for a fixed number of
simulated milliseconds, logging every state transition, LED change and
tone change. Useful for inspecting timing behavior and for replaying a
recorded game seed.

Presses are given as <millis>:<pad> pairs, pad 0-3. Each press holds the
button line for the configured hold duration.

With --seed, the sequence generator is loaded with the given value when
the game starts, reproducing the color sequence of a recorded run.

Examples:
  simon trace --millis 3000 --press 600:0
  simon trace --millis 10000 --press 600:0 --press 2000:2
  simon trace --seed 2048FAFA --press 600:0`,
	Args: cobra.NoArgs,
	Run:  runTrace,
}

func init() {
	traceCmd.Flags().IntVar(&flagTraceMillis, "millis", 5000, "Simulated milliseconds to run")
	traceCmd.Flags().StringArrayVar(&flagTracePress, "press", nil, "Button press as <millis>:<pad>")
	traceCmd.Flags().StringVar(&flagTraceSeed, "seed", "", "Hex seed to load into the sequence generator")
}

type tracePress struct {
	at  int // simulated millisecond
	pad int
}

func parsePresses(specs []string) ([]tracePress, error) {
	presses := make([]tracePress, 0, len(specs))
	for _, spec := range specs {
		at, pad, found := strings.Cut(spec, ":")
		if !found {
			return nil, fmt.Errorf("invalid press %q, want <millis>:<pad>", spec)
		}
		ms, err := strconv.Atoi(at)
		if err != nil || ms < 0 {
			return nil, fmt.Errorf("invalid press time in %q", spec)
		}
		p, err := strconv.Atoi(pad)
		if err != nil || p < 0 || p > 3 {
			return nil, fmt.Errorf("invalid pad in %q, want 0-3", spec)
		}
		presses = append(presses, tracePress{at: ms, pad: p})
	}
	sort.Slice(presses, func(i, j int) bool { return presses[i].at < presses[j].at })
	return presses, nil
}

func runTrace(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "trace",
	})

	simonCfg, err := config.LoadSimon(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagTPM != 0 {
		simonCfg.Clock.TicksPerMilli = flagTPM
	}

	presses, err := parsePresses(flagTracePress)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var seed uint64
	haveSeed := false
	if flagTraceSeed != "" {
		seed, err = strconv.ParseUint(strings.TrimPrefix(flagTraceSeed, "0x"), 16, 32)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid seed %q\n", flagTraceSeed)
			os.Exit(1)
		}
		haveSeed = true
	}

	tpm := simonCfg.Clock.TicksPerMilli
	holdTicks := simonCfg.Input.HoldMillis * int(tpm)
	circuit := sim.NewCircuit(tpm)

	logger.Info("starting", "ticks_per_milli", tpm, "millis", flagTraceMillis)

	var (
		prevState = circuit.Controller().State()
		prevLED   uint8
		prevTone  uint16
		prevScore int
		heldPad   uint8
		heldLeft  int
		pressIdx  int
	)

	for ms := 0; ms < flagTraceMillis; ms++ {
		for pressIdx < len(presses) && presses[pressIdx].at == ms {
			heldPad = 1 << presses[pressIdx].pad
			heldLeft = holdTicks
			logger.Info("press", "ms", ms, "pad", presses[pressIdx].pad)
			pressIdx++
		}

		for t := 0; t < int(tpm); t++ {
			var btn uint8
			if heldLeft > 0 {
				btn = heldPad
				heldLeft--
			}
			circuit.Tick(sim.Inputs{Button: btn, SegInvert: simonCfg.Display.SegmentInvert})

			state := circuit.Controller().State()
			if state != prevState {
				logger.Info("state", "ms", ms, "from", prevState, "to", state,
					"score", circuit.Score())
				if haveSeed && state == sim.StateInit {
					// Generator holds the loaded value until the game
					// captures its seed at the end of the init phase.
					circuit.Generator().Tick(sim.LFSRControl{LoadEnable: true, LoadValue: uint32(seed)})
					logger.Info("seed loaded", "seed", fmt.Sprintf("%08X", uint32(seed)))
				}
				prevState = state
			}
			if led := circuit.Controller().LED(); led != prevLED {
				logger.Info("led", "ms", ms, "value", fmt.Sprintf("%04b", led))
				prevLED = led
			}
			if tone := circuit.Controller().ToneFreq(); tone != prevTone {
				logger.Info("tone", "ms", ms, "hz", tone)
				prevTone = tone
			}
			if score := circuit.Score(); score != prevScore {
				logger.Info("score", "ms", ms, "value", score)
				prevScore = score
			}
		}
	}

	logger.Info("done",
		"state", circuit.Controller().State(),
		"score", circuit.Score(),
		"seed", fmt.Sprintf("%08X", circuit.Controller().Seed()),
		"ticks", circuit.Ticks(),
	)
}
