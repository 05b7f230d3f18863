package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"image/png"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/go-drift/marquee/pkg/animation"
	"github.com/go-drift/marquee/pkg/controller"
	"github.com/go-drift/marquee/pkg/errors"
	"github.com/go-drift/marquee/pkg/input"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Run the controller in real time",
		Long: `Run the animation controller against an in-memory panel in real time.

The tick timer fires at the configured timebase period. Lines typed on
stdin press the buttons:

  reset          press the reset button
  mode           press the mode button
  tick [n]       fire the timer interrupt n times
  preset <ticks> load the tick counter
  status         print mode, cursor and elapsed time
  quit           stop the simulator

Flags:
  -config FILE   Config file (default: marquee.yaml if present)
  -cycles N      Stop after N animations (default: run until interrupted)
  -out DIR       Write a PNG of every finished animation to DIR
  -v             Log every cycle and error stack traces
  -no-console    Do not read button presses from stdin`,
		Usage: "marquee run [-config FILE] [-cycles N] [-out DIR] [-v] [-no-console]",
		Run:   runRun,
	})
}

type runOptions struct {
	configPath string
	cycles     int
	outDir     string
	verbose    bool
	noConsole  bool
}

func parseRunArgs(args []string) (runOptions, error) {
	var opts runOptions
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !strings.HasPrefix(arg, "-") {
			return opts, fmt.Errorf("unexpected argument %q", arg)
		}
		needValue := func() (string, error) {
			if hasValue {
				return value, nil
			}
			if i+1 >= len(args) {
				return "", fmt.Errorf("-%s requires a value", name)
			}
			i++
			return args[i], nil
		}
		switch name {
		case "config", "c":
			v, err := needValue()
			if err != nil {
				return opts, err
			}
			opts.configPath = v
		case "cycles", "n":
			v, err := needValue()
			if err != nil {
				return opts, err
			}
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return opts, fmt.Errorf("-cycles must be a non-negative integer (got %q)", v)
			}
			opts.cycles = n
		case "out", "o":
			v, err := needValue()
			if err != nil {
				return opts, err
			}
			opts.outDir = v
		case "v", "verbose":
			opts.verbose = true
		case "no-console":
			opts.noConsole = true
		default:
			return opts, fmt.Errorf("unknown flag %q", arg)
		}
	}
	return opts, nil
}

func runRun(args []string) error {
	opts, err := parseRunArgs(args)
	if err != nil {
		return fmt.Errorf("%w\n\nUsage: marquee run [-config FILE] [-cycles N] [-out DIR] [-v]", err)
	}

	r, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	prev := errors.SetHandler(&errors.LogHandler{Verbose: opts.verbose})
	defer errors.SetHandler(prev)

	if opts.outDir != "" {
		if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger := log.New(os.Stderr, "", log.LstdFlags)
	indicator := input.IndicatorFunc(func(on bool) {
		if opts.verbose {
			logger.Printf("indicator=%t", on)
		}
	})

	sim := newSimulator(r, animation.SleepPacer{}, indicator)

	timer := input.NewTimer(r.Timebase.Period(), sim.handler.Tick)
	timer.Start(ctx)
	defer timer.Stop()

	if !opts.noConsole {
		console := NewConsole(sim.handler, sim.state, stdout)
		go func() {
			if err := console.Serve(os.Stdin); stderrors.Is(err, errQuit) {
				cancel()
			}
		}()
	}

	var writeErr error
	sim.ctrl.OnCycle = func(c controller.Cycle) {
		if opts.verbose {
			logger.Printf("cycle=%d animation=%s mode=%s restarted=%t panicked=%t elapsed=%s",
				c.Seq, c.Animation.Name, c.Mode, c.Restarted, c.Panicked, sim.clock)
		}
		if opts.outDir != "" && writeErr == nil {
			path := filepath.Join(opts.outDir, snapshotName(c.Seq, c.Animation.Name))
			writeErr = writePNG(path, sim.surface)
			if writeErr != nil {
				cancel()
			}
		}
		sim.surface.Forget()
	}

	fmt.Fprintf(stdout, "marquee: %s variant, %d animations, %s mode, tick %s\n",
		r.Variant, sim.library.Len(), sim.state.Mode(), r.Timebase.Period())

	if opts.cycles > 0 {
		err = sim.ctrl.RunCycles(ctx, opts.cycles)
	} else {
		err = sim.ctrl.Run(ctx)
	}
	if writeErr != nil {
		return writeErr
	}
	if err != nil && !stderrors.Is(err, context.Canceled) {
		return err
	}
	fmt.Fprintf(stdout, "marquee: %d cycles, uptime %s\n", sim.ctrl.Cycles(), sim.clock.Elapsed())
	return nil
}

func writePNG(path string, c *capture) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, c.Final()); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
