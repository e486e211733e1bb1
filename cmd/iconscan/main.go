// iconscan runs a scene headless and reports which interactable icon the
// observer's selector shows over time.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/felipedpaulasantos/MyShooterScenarios/internal/dashboard"
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/engine"
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/interaction"
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/log"
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/world"

	_ "github.com/felipedpaulasantos/MyShooterScenarios/internal/scripts"
)

type options struct {
	scene     string
	config    string
	preset    string
	observer  string
	ticks     int
	dt        float64
	width     int
	height    int
	logLevel  string
	dashboard string
	realtime  bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "iconscan: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("iconscan", flag.ContinueOnError)
	fs.StringVar(&o.scene, "scene", "assets/scenes/demo.json", "scene file to load")
	fs.StringVar(&o.config, "config", "", "selector YAML config (overrides the scene's selector settings)")
	fs.StringVar(&o.preset, "preset", "", "selector preset: default, strict-center, pawn-forward")
	fs.StringVar(&o.observer, "observer", "Player", "name of the object that owns the selector")
	fs.IntVar(&o.ticks, "ticks", 100, "number of world steps to run")
	fs.Float64Var(&o.dt, "dt", 0.05, "seconds per step")
	fs.IntVar(&o.width, "width", 0, "viewport width (0 keeps the scene's)")
	fs.IntVar(&o.height, "height", 0, "viewport height (0 keeps the scene's)")
	fs.StringVar(&o.logLevel, "log-level", "info", "debug, info, warn, error")
	fs.StringVar(&o.dashboard, "dashboard", "", "serve the telemetry dashboard on this address, e.g. :8090")
	fs.BoolVar(&o.realtime, "realtime", false, "sleep dt between steps (implied by -dashboard)")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.ticks < 0 || o.dt <= 0 {
		return o, fmt.Errorf("ticks must be >= 0 and dt > 0")
	}
	if o.config != "" && o.preset != "" {
		return o, fmt.Errorf("-config and -preset are exclusive")
	}
	return o, nil
}

// selectorConfig picks the config source: file, preset, or the scene's own.
func selectorConfig(o options, current interaction.Config) (interaction.Config, error) {
	switch {
	case o.config != "":
		return interaction.LoadConfig(o.config)
	case o.preset != "":
		return interaction.Preset(o.preset)
	}
	return current, nil
}

func run(ctx context.Context, args []string, out io.Writer) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}
	log.Init(o.logLevel)

	w := world.New()
	if err := w.LoadScene(o.scene); err != nil {
		return err
	}
	if o.width > 0 && o.height > 0 {
		w.SetViewportSize(float32(o.width), float32(o.height))
	}

	observer := w.Scene.FindByName(o.observer)
	if observer == nil {
		return fmt.Errorf("observer %q not found in %s", o.observer, o.scene)
	}
	sel := engine.GetComponent[*interaction.IconSelector](observer)
	if sel == nil {
		sel = interaction.NewIconSelector(interaction.DefaultConfig())
		observer.AddComponent(sel)
	}
	cfg, err := selectorConfig(o, sel.Config)
	if err != nil {
		return err
	}
	sel.Config = cfg
	sel.Logger = log.With("observer", observer.Name)

	changes := 0
	sel.OnSelectionChanged.AddListener(func(c interaction.SelectionChange) {
		changes++
		fmt.Fprintf(out, "scan %d: %s -> %s (score %.2f)\n",
			scanCount(sel), nameOf(c.Previous), nameOf(c.Current), c.Score)
	})

	var server *dashboard.Server
	if o.dashboard != "" {
		server = dashboard.NewServer(o.dashboard)
		server.Watch(sel)
		server.StartAsync()
		defer server.Shutdown()
		o.realtime = true
	}

	w.Start()

	var tick <-chan time.Time
	if o.realtime {
		ticker := time.NewTicker(time.Duration(o.dt * float64(time.Second)))
		defer ticker.Stop()
		tick = ticker.C
	}

	ticks := 0
loop:
	for ticks < o.ticks {
		if server != nil {
			server.ApplyPending(sel)
		}
		w.Update(float32(o.dt))
		ticks++

		if tick == nil {
			if ctx.Err() != nil {
				break
			}
			continue
		}
		select {
		case <-ctx.Done():
			break loop
		case <-tick:
		}
	}

	fmt.Fprintf(out, "ran %d ticks (%.2fs), %d scans, %d selection changes, best: %s (score %.2f)\n",
		ticks, float64(ticks)*o.dt, scanCount(sel), changes, nameOf(sel.CurrentBest()), sel.CurrentBestScore())
	return nil
}

func scanCount(sel *interaction.IconSelector) uint64 {
	if r := sel.LastReport(); r != nil {
		return r.Seq
	}
	return 0
}

func nameOf(g *engine.GameObject) string {
	if g == nil {
		return "<none>"
	}
	return g.Name
}
