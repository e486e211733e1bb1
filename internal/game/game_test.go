package game

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/felipedpaulasantos/MyShooterScenarios/internal/engine"
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/interaction"
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/scripts"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const demoScene = `{
  "objects": [
    {
      "name": "Player",
      "components": [
        {"type": "Camera", "isMain": true, "near": 1, "far": 100000},
        {"type": "Script", "name": "LookController", "props": {"eyeHeight": 0}}
      ]
    },
    {
      "name": "Crate",
      "position": [500, 0, 0],
      "components": [
        {"type": "BoxCollider", "size": [50, 50, 50]},
        {"type": "Script", "name": "IconMarker", "props": {"label": "Crate"}}
      ]
    }
  ]
}`

const pickupScene = `{
  "objects": [
    {
      "name": "Player",
      "components": [
        {"type": "Camera", "isMain": true, "near": 1, "far": 100000},
        {"type": "Script", "name": "LookController", "props": {"eyeHeight": 0}},
        {"type": "Script", "name": "IconSelector", "props": {"filterMode": "dynamic", "componentName": "InteractableWidget"}}
      ]
    },
    {
      "name": "Medkit",
      "position": [400, 0, 0],
      "components": [
        {"type": "BoxCollider", "size": [20, 20, 20]},
        {"type": "Script", "name": "Pickup", "props": {"item": "Medkit", "showDistance": 100}},
        {"type": "Script", "name": "InteractableWidget", "props": {"text": "Take"}}
      ]
    }
  ]
}`

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return newSceneGame(t, demoScene)
}

func newSceneGame(t *testing.T, scene string) *Game {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, []byte(scene), 0644); err != nil {
		t.Fatal(err)
	}
	g, err := New(Options{ScenePath: path})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestNewEquipsObserver(t *testing.T) {
	g := newTestGame(t)
	if g.Player == nil || g.Player.Name != "Player" {
		t.Fatal("expected the Player observer")
	}
	if g.Selector == nil || g.look == nil {
		t.Fatal("expected a selector and a look controller on the observer")
	}

	g.World.Start()
	g.World.Update(0.2)
	if best := g.Selector.CurrentBest(); best == nil || best.Name != "Crate" {
		t.Fatalf("expected Crate selected, got %v", best)
	}
	if !strings.Contains(g.status, "Crate") {
		t.Errorf("expected status to mention the selection, got %q", g.status)
	}
	if anchor, ok := g.Selector.CurrentIconLocation(); !ok || anchor.X != 500 {
		t.Errorf("expected the icon anchored on the crate, got %v %v", anchor, ok)
	}
}

func TestInteractCollectsSelectedPickup(t *testing.T) {
	g := newSceneGame(t, pickupScene)
	if g.interact() {
		t.Fatal("nothing is selected before the first scan")
	}

	g.World.Start()
	g.World.Update(0.2)
	medkit := g.World.Scene.FindByName("Medkit")
	if g.Selector.CurrentBest() != medkit {
		t.Fatalf("expected Medkit selected, got %v", g.Selector.CurrentBest())
	}
	pickup := engine.GetComponent[*scripts.Pickup](medkit)

	if !g.interact() {
		t.Fatal("expected the selected pickup collected")
	}
	if !pickup.Collected() || g.World.Scene.FindByUID(medkit.UID) != nil {
		t.Error("collected pickup should leave the scene")
	}
	if g.Selector.CurrentBest() != nil {
		t.Errorf("expected no selection after collecting, got %v", g.Selector.CurrentBest())
	}
	if g.status != "collected Medkit" {
		t.Errorf("unexpected status %q", g.status)
	}
	if g.interact() {
		t.Error("a second interact has nothing to collect")
	}
}

func TestInteractIgnoresNonPickups(t *testing.T) {
	g := newTestGame(t)
	g.World.Start()
	g.World.Update(0.2)
	if g.Selector.CurrentBest() == nil {
		t.Fatal("expected Crate selected")
	}
	if g.interact() {
		t.Error("a crate is not collectable")
	}
	if g.World.Scene.FindByName("Crate") == nil {
		t.Error("interact must not remove a non-pickup")
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(Options{ScenePath: filepath.Join(t.TempDir(), "missing.json")}); err == nil {
		t.Error("expected an error for a missing scene")
	}

	path := filepath.Join(t.TempDir(), "scene.json")
	os.WriteFile(path, []byte(demoScene), 0644)
	if _, err := New(Options{ScenePath: path, Observer: "Nobody"}); err == nil {
		t.Error("expected an error for a missing observer")
	}

	cfg := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(cfg, []byte("position_score_mode: sideways\n"), 0644)
	if _, err := New(Options{ScenePath: path, ConfigPath: cfg}); err == nil {
		t.Error("expected an error for a bad selector config")
	}
}

func TestMoveDelta(t *testing.T) {
	forward := rl.Vector3{X: 1}
	right := rl.Vector3{Z: 1}

	d := MoveDelta(forward, right, MoveInput{Forward: 1}, 400, 0.5)
	if d.X != 200 || d.Z != 0 {
		t.Errorf("expected 200 forward, got %v", d)
	}

	d = MoveDelta(forward, right, MoveInput{Forward: 1, Right: 1}, 400, 0.5)
	if l := rl.Vector3Length(d); math.Abs(float64(l-200)) > 0.01 {
		t.Errorf("diagonal should not be faster, got length %v", l)
	}

	if d := MoveDelta(forward, right, MoveInput{}, 400, 0.5); d != (rl.Vector3{}) {
		t.Errorf("expected no movement without input, got %v", d)
	}

	// Pitch must not lift the walker off the ground
	d = MoveDelta(rl.Vector3{X: 1, Y: 1}, right, MoveInput{Forward: 1}, 100, 1)
	if d.Y != 0 {
		t.Errorf("expected horizontal movement, got %v", d)
	}
}

func TestAxis(t *testing.T) {
	if axis(true, false) != 1 || axis(false, true) != -1 || axis(true, true) != 0 || axis(false, false) != 0 {
		t.Error("unexpected axis values")
	}
}

func TestPanelAppliesEdits(t *testing.T) {
	g := newTestGame(t)
	p := g.panel

	row := rowFor(t, p, "minForwardDot")
	if !p.Apply(row, float32(0.5)) {
		t.Fatal("expected the edit to apply")
	}
	if v, _ := p.Value(row); v != 0.5 {
		t.Errorf("expected 0.5, got %v", v)
	}

	row = rowFor(t, p, "maxCandidatesToScore")
	p.Apply(row, float32(7.6))
	if g.Selector.Config.MaxCandidatesToScore != 8 {
		t.Errorf("expected integer rows to round, got %d", g.Selector.Config.MaxCandidatesToScore)
	}

	row = rowFor(t, p, "requireLineOfSight")
	p.Apply(row, false)
	if _, on := p.Value(row); on || g.Selector.Config.RequireLineOfSight {
		t.Error("expected line of sight off")
	}
}

func TestPanelRejectsInvalidEdits(t *testing.T) {
	g := newTestGame(t)
	p := g.panel
	before := g.Selector.Config

	if p.Apply(TuningRow{Prop: "positionWeight", Label: "Position weight"}, float32(5000)) {
		t.Fatal("weights breaking dominance must be rejected")
	}
	if g.Selector.Config != before {
		t.Error("a rejected edit must leave the config untouched")
	}
	if p.rejected != "Position weight" {
		t.Errorf("expected the rejection recorded, got %q", p.rejected)
	}

	p.Apply(rowFor(t, p, "minForwardDot"), float32(0.2))
	if p.rejected != "" {
		t.Error("a good edit should clear the rejection")
	}
}

func TestPanelDisableAndModeCycle(t *testing.T) {
	g := newTestGame(t)
	p := g.panel
	g.World.Start()
	g.World.Update(0.2)

	p.Apply(rowFor(t, p, "enabled"), false)
	if g.Selector.Enabled() || g.Selector.CurrentBest() != nil {
		t.Error("expected the selector disabled with nothing shown")
	}

	if !p.CyclePositionMode() || g.Selector.Config.PositionScoreMode != interaction.PawnForward {
		t.Errorf("expected PawnForward, got %v", g.Selector.Config.PositionScoreMode)
	}
	p.CyclePositionMode()
	if g.Selector.Config.PositionScoreMode != interaction.ScreenCenter {
		t.Errorf("expected the cycle to wrap, got %v", g.Selector.Config.PositionScoreMode)
	}
}

func TestEveryRowIsAKnownProp(t *testing.T) {
	known := map[string]bool{"enabled": true}
	for _, name := range interaction.ConfigPropNames() {
		known[name] = true
	}
	p := NewPanel(interaction.NewIconSelector(interaction.DefaultConfig()))
	for _, row := range p.Rows() {
		if !known[row.Prop] {
			t.Errorf("row %q edits an unknown property", row.Prop)
		}
		if !row.Toggle && row.Min >= row.Max {
			t.Errorf("row %q has an empty slider range", row.Prop)
		}
	}
}

func rowFor(t *testing.T, p *Panel, prop string) TuningRow {
	t.Helper()
	for _, row := range p.Rows() {
		if row.Prop == prop {
			return row
		}
	}
	t.Fatalf("no row for %s", prop)
	return TuningRow{}
}
