// icondemo opens a window on a scene and lets you walk around while the
// icon selector picks which interactable to highlight.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/felipedpaulasantos/MyShooterScenarios/internal/game"
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/log"

	_ "github.com/felipedpaulasantos/MyShooterScenarios/internal/scripts"
)

func main() {
	scene := flag.String("scene", "assets/scenes/demo.json", "scene file to load")
	config := flag.String("config", "", "selector YAML config (overrides the scene's)")
	observer := flag.String("observer", "Player", "name of the object that owns the selector")
	logLevel := flag.String("log-level", "info", "debug, info, warn, error")
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			if _, err := os.Stat(filepath.Join(execDir, "assets")); err == nil {
				os.Chdir(execDir)
			}
		}
	}

	log.Init(*logLevel)

	g, err := game.New(game.Options{
		ScenePath:  *scene,
		ConfigPath: *config,
		Observer:   *observer,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "icondemo: %v\n", err)
		os.Exit(1)
	}
	g.Run()
}
