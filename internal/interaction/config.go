package interaction

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration breaks a selector invariant.
var ErrInvalidConfig = errors.New("invalid selector config")

// PositionScoreMode selects how the position term of a score is computed.
type PositionScoreMode int

const (
	// ScreenCenter prefers candidates projected close to the viewport center.
	ScreenCenter PositionScoreMode = iota
	// PawnForward prefers candidates aligned with the view forward vector.
	PawnForward
)

func (m PositionScoreMode) String() string {
	switch m {
	case ScreenCenter:
		return "ScreenCenter"
	case PawnForward:
		return "PawnForward"
	}
	return fmt.Sprintf("PositionScoreMode(%d)", int(m))
}

// ParsePositionScoreMode accepts "ScreenCenter"/"screen_center" and "PawnForward"/"pawn_forward".
func ParsePositionScoreMode(s string) (PositionScoreMode, error) {
	switch normalizeName(s) {
	case "screencenter":
		return ScreenCenter, nil
	case "pawnforward":
		return PawnForward, nil
	}
	return ScreenCenter, fmt.Errorf("%w: unknown position score mode %q", ErrInvalidConfig, s)
}

func (m PositionScoreMode) MarshalYAML() (any, error) {
	return m.String(), nil
}

func (m *PositionScoreMode) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParsePositionScoreMode(node.Value)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// FilterMode selects how candidates are recognized as interactable.
type FilterMode int

const (
	// FilterInterface requires a component implementing Interactable.
	FilterInterface FilterMode = iota
	// FilterDynamic looks up named methods on components at runtime.
	FilterDynamic
)

func (m FilterMode) String() string {
	switch m {
	case FilterInterface:
		return "Interface"
	case FilterDynamic:
		return "Dynamic"
	}
	return fmt.Sprintf("FilterMode(%d)", int(m))
}

func ParseFilterMode(s string) (FilterMode, error) {
	switch normalizeName(s) {
	case "interface":
		return FilterInterface, nil
	case "dynamic":
		return FilterDynamic, nil
	}
	return FilterInterface, fmt.Errorf("%w: unknown filter mode %q", ErrInvalidConfig, s)
}

func (m FilterMode) MarshalYAML() (any, error) {
	return m.String(), nil
}

func (m *FilterMode) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseFilterMode(node.Value)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func normalizeName(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), "_", "")
	return strings.ToLower(strings.ReplaceAll(s, "-", ""))
}

// Weights combine the three score terms. Visibility must outweigh the
// best possible position+distance sum, and position must outweigh distance.
type Weights struct {
	Visibility float32 `yaml:"visibility" json:"visibility"`
	Position   float32 `yaml:"position" json:"position"`
	Distance   float32 `yaml:"distance" json:"distance"`
}

// FilterConfig describes the candidate filter. Function names only matter in dynamic mode.
type FilterConfig struct {
	Mode                        FilterMode `yaml:"mode" json:"mode"`
	PresenceFunc                string     `yaml:"presence_func" json:"presenceFunc"`
	MinDistanceFunc             string     `yaml:"min_distance_func" json:"minDistanceFunc"`
	IconLocationFunc            string     `yaml:"icon_location_func" json:"iconLocationFunc"`
	VisibilityFunc              string     `yaml:"visibility_func" json:"visibilityFunc"`
	ComponentName               string     `yaml:"component_name" json:"componentName"`
	RequirePresence             bool       `yaml:"require_presence" json:"requirePresence"`
	AllowAnyVisibilityComponent bool       `yaml:"allow_any_visibility_component" json:"allowAnyVisibilityComponent"`
}

type DebugConfig struct {
	Scoring            bool    `yaml:"scoring" json:"scoring"`
	Draw               bool    `yaml:"draw" json:"draw"`
	MaxCandidatesToLog int     `yaml:"max_candidates_to_log" json:"maxCandidatesToLog"`
	DrawDuration       float32 `yaml:"draw_duration" json:"drawDuration"`
}

// Config holds every selector tunable.
type Config struct {
	ScanInterval                      float32           `yaml:"scan_interval" json:"scanInterval"`
	MaxScanDistance                   float32           `yaml:"max_scan_distance" json:"maxScanDistance"`
	MaxCandidatesToScore              int               `yaml:"max_candidates_to_score" json:"maxCandidatesToScore"`
	MinForwardDotToConsider           float32           `yaml:"min_forward_dot" json:"minForwardDot"`
	RequireLineOfSight                bool              `yaml:"require_line_of_sight" json:"requireLineOfSight"`
	PositionScoreMode                 PositionScoreMode `yaml:"position_score_mode" json:"positionScoreMode"`
	ScreenCenterMaxNormalizedDistance float32           `yaml:"screen_center_max_normalized_distance" json:"screenCenterMaxNormalizedDistance"`
	RejectOffScreenInPawnForwardMode  bool              `yaml:"reject_off_screen_in_pawn_forward_mode" json:"rejectOffScreenInPawnForwardMode"`
	MinSwitchScoreDelta               float32           `yaml:"min_switch_score_delta" json:"minSwitchScoreDelta"`
	Weights                           Weights           `yaml:"weights" json:"weights"`
	Filter                            FilterConfig      `yaml:"filter" json:"filter"`
	Debug                             DebugConfig       `yaml:"debug" json:"debug"`
}

func DefaultConfig() Config {
	return Config{
		ScanInterval:                      0.1,
		MaxScanDistance:                   5000,
		MaxCandidatesToScore:              32,
		MinForwardDotToConsider:           0.15,
		RequireLineOfSight:                true,
		PositionScoreMode:                 ScreenCenter,
		ScreenCenterMaxNormalizedDistance: 0.35,
		RejectOffScreenInPawnForwardMode:  true,
		MinSwitchScoreDelta:               0.05,
		Weights: Weights{
			Visibility: 1000,
			Position:   100,
			Distance:   10,
		},
		Filter: FilterConfig{
			Mode:                        FilterInterface,
			PresenceFunc:                "GetMinimumDistanceToShowIcon",
			MinDistanceFunc:             "GetMinimumDistanceToShowIcon",
			IconLocationFunc:            "GetIconWorldLocation",
			VisibilityFunc:              "SetWidgetVisibility",
			RequirePresence:             true,
			AllowAnyVisibilityComponent: true,
		},
		Debug: DebugConfig{
			MaxCandidatesToLog: 10,
			DrawDuration:       0.15,
		},
	}
}

// StrictCenterConfig only shows icons for candidates near the crosshair.
func StrictCenterConfig() Config {
	c := DefaultConfig()
	c.ScreenCenterMaxNormalizedDistance = 0.15
	c.MinForwardDotToConsider = 0.5
	c.MinSwitchScoreDelta = 1
	return c
}

// PawnForwardConfig scores by forward alignment instead of screen position.
func PawnForwardConfig() Config {
	c := DefaultConfig()
	c.PositionScoreMode = PawnForward
	return c
}

// Preset returns a named configuration: "default", "strict_center" or "pawn_forward".
func Preset(name string) (Config, error) {
	switch normalizeName(name) {
	case "", "default":
		return DefaultConfig(), nil
	case "strictcenter":
		return StrictCenterConfig(), nil
	case "pawnforward":
		return PawnForwardConfig(), nil
	}
	return Config{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidConfig, name)
}

// Sanitize clamps every tunable into its editable range.
func (c *Config) Sanitize() {
	if c.ScanInterval < 0.01 {
		c.ScanInterval = 0.01
	}
	if c.MaxScanDistance < 0 {
		c.MaxScanDistance = 0
	}
	if c.MaxCandidatesToScore < 1 {
		c.MaxCandidatesToScore = 1
	}
	c.MinForwardDotToConsider = clampf(c.MinForwardDotToConsider, -1, 1)
	c.ScreenCenterMaxNormalizedDistance = clampf(c.ScreenCenterMaxNormalizedDistance, 0, 1)
	if c.MinSwitchScoreDelta < 0 {
		c.MinSwitchScoreDelta = 0
	}
	if c.Debug.MaxCandidatesToLog < 1 {
		c.Debug.MaxCandidatesToLog = 1
	}
	if c.Debug.DrawDuration < 0 {
		c.Debug.DrawDuration = 0
	}
}

// Validate checks the invariants Sanitize cannot repair.
func (c Config) Validate() error {
	w := c.Weights
	if w.Visibility < 0 || w.Position < 0 || w.Distance < 0 {
		return fmt.Errorf("%w: weights must be non-negative", ErrInvalidConfig)
	}
	if w.Visibility <= w.Position+w.Distance {
		return fmt.Errorf("%w: visibility weight %.2f must exceed position+distance %.2f",
			ErrInvalidConfig, w.Visibility, w.Position+w.Distance)
	}
	if w.Position <= w.Distance {
		return fmt.Errorf("%w: position weight %.2f must exceed distance weight %.2f",
			ErrInvalidConfig, w.Position, w.Distance)
	}
	if c.PositionScoreMode != ScreenCenter && c.PositionScoreMode != PawnForward {
		return fmt.Errorf("%w: unknown position score mode %d", ErrInvalidConfig, c.PositionScoreMode)
	}
	if c.Filter.Mode == FilterDynamic && c.Filter.VisibilityFunc == "" {
		return fmt.Errorf("%w: dynamic filter needs a visibility function name", ErrInvalidConfig)
	}
	return nil
}

// ParseConfig decodes YAML on top of the defaults, then sanitizes and validates.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	c.Sanitize()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	c, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return c, nil
}

// SaveConfig writes c as YAML.
func SaveConfig(path string, c Config) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
