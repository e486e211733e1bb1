package interaction

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/felipedpaulasantos/MyShooterScenarios/internal/engine"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.ScanInterval != 0.1 || c.MaxScanDistance != 5000 || c.MaxCandidatesToScore != 32 {
		t.Errorf("unexpected scan defaults %+v", c)
	}
	if c.MinForwardDotToConsider != 0.15 || !c.RequireLineOfSight || c.MinSwitchScoreDelta != 0.05 {
		t.Errorf("unexpected filter defaults %+v", c)
	}
	if c.PositionScoreMode != ScreenCenter || c.ScreenCenterMaxNormalizedDistance != 0.35 || !c.RejectOffScreenInPawnForwardMode {
		t.Errorf("unexpected position defaults %+v", c)
	}
	if c.Filter.PresenceFunc != "GetMinimumDistanceToShowIcon" || c.Filter.VisibilityFunc != "SetWidgetVisibility" {
		t.Errorf("unexpected filter names %+v", c.Filter)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestSanitizeClamps(t *testing.T) {
	c := Config{
		ScanInterval:                      0,
		MaxScanDistance:                   -1,
		MaxCandidatesToScore:              0,
		MinForwardDotToConsider:           3,
		ScreenCenterMaxNormalizedDistance: -2,
		MinSwitchScoreDelta:               -1,
		Debug:                             DebugConfig{MaxCandidatesToLog: 0, DrawDuration: -1},
	}
	c.Sanitize()

	if c.ScanInterval != 0.01 || c.MaxScanDistance != 0 || c.MaxCandidatesToScore != 1 {
		t.Errorf("scan values not clamped: %+v", c)
	}
	if c.MinForwardDotToConsider != 1 || c.ScreenCenterMaxNormalizedDistance != 0 || c.MinSwitchScoreDelta != 0 {
		t.Errorf("ranges not clamped: %+v", c)
	}
	if c.Debug.MaxCandidatesToLog != 1 || c.Debug.DrawDuration != 0 {
		t.Errorf("debug values not clamped: %+v", c.Debug)
	}
}

func TestValidateWeights(t *testing.T) {
	cases := []Weights{
		{Visibility: 100, Position: 100, Distance: 10},
		{Visibility: 1000, Position: 10, Distance: 10},
		{Visibility: 1000, Position: 100, Distance: -1},
	}
	for _, w := range cases {
		c := DefaultConfig()
		c.Weights = w
		if err := c.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("weights %+v: expected ErrInvalidConfig, got %v", w, err)
		}
	}
}

func TestParseConfigYAML(t *testing.T) {
	data := []byte(`
scan_interval: 0.25
max_scan_distance: 1200
position_score_mode: pawn_forward
min_switch_score_delta: 2
filter:
  mode: dynamic
  component_name: InteractableWidget
debug:
  scoring: true
`)
	c, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if c.ScanInterval != 0.25 || c.MaxScanDistance != 1200 || c.MinSwitchScoreDelta != 2 {
		t.Errorf("values not decoded: %+v", c)
	}
	if c.PositionScoreMode != PawnForward || c.Filter.Mode != FilterDynamic {
		t.Errorf("modes not decoded: %v %v", c.PositionScoreMode, c.Filter.Mode)
	}
	if c.Filter.ComponentName != "InteractableWidget" || !c.Debug.Scoring {
		t.Errorf("nested values not decoded: %+v", c)
	}
	if c.MaxCandidatesToScore != 32 || c.Filter.VisibilityFunc != "SetWidgetVisibility" {
		t.Error("unset keys should keep their defaults")
	}
}

func TestParseConfigErrors(t *testing.T) {
	if _, err := ParseConfig([]byte("position_score_mode: sideways\n")); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for a bad mode, got %v", err)
	}
	if _, err := ParseConfig([]byte("weights: {visibility: 1, position: 1, distance: 1}\n")); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for bad weights, got %v", err)
	}
	if _, err := ParseConfig([]byte("scan_interval: [1, 2\n")); err == nil {
		t.Error("expected a parse error")
	}
}

func TestLoadAndSaveConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "selector.yaml")

	want := StrictCenterConfig()
	want.Filter.Mode = FilterDynamic
	if err := SaveConfig(path, want); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got != want {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected a wrapped not-exist error, got %v", err)
	}

	if err := os.WriteFile(path, []byte("filter: {mode: telepathy}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestPresets(t *testing.T) {
	for _, name := range []string{"", "default", "strict_center", "PawnForward"} {
		c, err := Preset(name)
		if err != nil {
			t.Errorf("Preset(%q): %v", name, err)
			continue
		}
		if err := c.Validate(); err != nil {
			t.Errorf("Preset(%q) does not validate: %v", name, err)
		}
	}
	if c, _ := Preset("pawn_forward"); c.PositionScoreMode != PawnForward {
		t.Error("pawn_forward preset should use PawnForward")
	}
	if _, err := Preset("chaos"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestConfigProps(t *testing.T) {
	c := DefaultConfig()
	props := c.Props()
	if props["positionScoreMode"] != "ScreenCenter" || props["maxCandidatesToScore"] != 32 {
		t.Errorf("unexpected props %v", props)
	}
	if len(props) != len(ConfigPropNames()) {
		t.Errorf("expected %d props, got %d", len(ConfigPropNames()), len(props))
	}

	if !c.ApplyProp("maxScanDistance", 800.0) || c.MaxScanDistance != 800 {
		t.Errorf("maxScanDistance not applied: %v", c.MaxScanDistance)
	}
	if !c.ApplyProp("positionScoreMode", "PawnForward") || c.PositionScoreMode != PawnForward {
		t.Error("positionScoreMode not applied")
	}
	if !c.ApplyProp("minForwardDot", 5.0) || c.MinForwardDotToConsider != 1 {
		t.Errorf("applied values should be sanitized, got %v", c.MinForwardDotToConsider)
	}
	if c.ApplyProp("requireLineOfSight", "yes") {
		t.Error("wrong value type should be refused")
	}
	if c.ApplyProp("nope", 1.0) {
		t.Error("unknown prop should be refused")
	}

	back := ConfigFromProps(DefaultConfig(), c.Props())
	if back != c {
		t.Errorf("props round trip mismatch:\n got %+v\nwant %+v", back, c)
	}
}

func TestIconSelectorScript(t *testing.T) {
	comp := engine.CreateScript("IconSelector", map[string]any{
		"preset":          "pawn_forward",
		"maxScanDistance": 900.0,
		"enabled":         false,
	})
	s, ok := comp.(*IconSelector)
	if !ok {
		t.Fatalf("expected *IconSelector, got %T", comp)
	}
	if s.Config.PositionScoreMode != PawnForward || s.Config.MaxScanDistance != 900 || s.Enabled() {
		t.Errorf("props not applied: %+v enabled=%v", s.Config, s.Enabled())
	}

	if !engine.ApplyScriptProperty(s, "minSwitchScoreDelta", 3.0) || s.Config.MinSwitchScoreDelta != 3 {
		t.Error("live property edit failed")
	}
	if engine.ApplyScriptProperty(s, "visibilityWeight", 1.0) {
		t.Error("an edit that breaks weight dominance should be refused")
	}

	name, props, ok := engine.SerializeScript(s)
	if !ok || name != "IconSelector" || props["maxScanDistance"] != float32(900) {
		t.Errorf("unexpected serialization %q %v", name, props)
	}
}

func TestIconMarkerScript(t *testing.T) {
	comp := engine.CreateScript("IconMarker", map[string]any{"label": "Loot", "minDistance": 150.0, "iconOffsetY": 40.0})
	m, ok := comp.(*IconMarker)
	if !ok {
		t.Fatalf("expected *IconMarker, got %T", comp)
	}
	if m.Label != "Loot" || m.MinDistance != 150 || m.IconOffset.Y != 40 {
		t.Errorf("props not applied: %+v", m)
	}
	if !engine.ApplyScriptProperty(m, "minDistance", 10.0) || m.MinDistance != 10 {
		t.Error("live edit failed")
	}
}

func TestIconMarkerState(t *testing.T) {
	m := NewIconMarker("")
	g := engine.NewGameObject("Chest")
	g.AddComponent(m)
	changes := 0
	m.OnVisibilityChanged.AddListener(func(bool) { changes++ })

	m.SetIconVisibilityWithDistance(true, 12)
	m.SetIconVisibilityWithDistance(true, 10)
	m.SetIconVisibility(false)
	m.SetIconVisibility(false)

	shows, hides := m.Calls()
	if shows != 2 || hides != 2 {
		t.Errorf("expected 2 shows / 2 hides, got %d / %d", shows, hides)
	}
	if changes != 2 {
		t.Errorf("expected 2 visibility changes, got %d", changes)
	}
	if m.IsIconVisible() || m.IconDistance() != 0 {
		t.Error("marker should be hidden with zero distance")
	}
	if m.DisplayName() != "Chest" {
		t.Errorf("expected object name fallback, got %q", m.DisplayName())
	}
}

func TestShippedConfigMatchesDefaults(t *testing.T) {
	c, err := LoadConfig(filepath.Join("..", "..", "assets", "config", "selector.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if c != DefaultConfig() {
		t.Errorf("shipped config drifted from the defaults:\n got %+v\nwant %+v", c, DefaultConfig())
	}
}
