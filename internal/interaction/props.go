package interaction

import (
	"sort"

	"github.com/felipedpaulasantos/MyShooterScenarios/internal/engine"
)

// configProp maps one flat scene/tuning property onto a Config field.
type configProp struct {
	get func(c *Config) any
	set func(c *Config, props map[string]any, key string) bool
}

func floatProp(field func(c *Config) *float32) configProp {
	return configProp{
		get: func(c *Config) any { return *field(c) },
		set: func(c *Config, props map[string]any, key string) bool {
			if !isNumber(props[key]) {
				return false
			}
			*field(c) = engine.PropFloat(props, key, *field(c))
			return true
		},
	}
}

func intProp(field func(c *Config) *int) configProp {
	return configProp{
		get: func(c *Config) any { return *field(c) },
		set: func(c *Config, props map[string]any, key string) bool {
			if !isNumber(props[key]) {
				return false
			}
			*field(c) = int(engine.PropFloat(props, key, float32(*field(c))))
			return true
		},
	}
}

func boolProp(field func(c *Config) *bool) configProp {
	return configProp{
		get: func(c *Config) any { return *field(c) },
		set: func(c *Config, props map[string]any, key string) bool {
			v, ok := props[key].(bool)
			if ok {
				*field(c) = v
			}
			return ok
		},
	}
}

func stringProp(field func(c *Config) *string) configProp {
	return configProp{
		get: func(c *Config) any { return *field(c) },
		set: func(c *Config, props map[string]any, key string) bool {
			v, ok := props[key].(string)
			if ok {
				*field(c) = v
			}
			return ok
		},
	}
}

var configProps = map[string]configProp{
	"scanInterval":                      floatProp(func(c *Config) *float32 { return &c.ScanInterval }),
	"maxScanDistance":                   floatProp(func(c *Config) *float32 { return &c.MaxScanDistance }),
	"maxCandidatesToScore":              intProp(func(c *Config) *int { return &c.MaxCandidatesToScore }),
	"minForwardDot":                     floatProp(func(c *Config) *float32 { return &c.MinForwardDotToConsider }),
	"requireLineOfSight":                boolProp(func(c *Config) *bool { return &c.RequireLineOfSight }),
	"screenCenterMaxNormalizedDistance": floatProp(func(c *Config) *float32 { return &c.ScreenCenterMaxNormalizedDistance }),
	"rejectOffScreenInPawnForwardMode":  boolProp(func(c *Config) *bool { return &c.RejectOffScreenInPawnForwardMode }),
	"minSwitchScoreDelta":               floatProp(func(c *Config) *float32 { return &c.MinSwitchScoreDelta }),
	"visibilityWeight":                  floatProp(func(c *Config) *float32 { return &c.Weights.Visibility }),
	"positionWeight":                    floatProp(func(c *Config) *float32 { return &c.Weights.Position }),
	"distanceWeight":                    floatProp(func(c *Config) *float32 { return &c.Weights.Distance }),
	"presenceFunc":                      stringProp(func(c *Config) *string { return &c.Filter.PresenceFunc }),
	"minDistanceFunc":                   stringProp(func(c *Config) *string { return &c.Filter.MinDistanceFunc }),
	"iconLocationFunc":                  stringProp(func(c *Config) *string { return &c.Filter.IconLocationFunc }),
	"visibilityFunc":                    stringProp(func(c *Config) *string { return &c.Filter.VisibilityFunc }),
	"componentName":                     stringProp(func(c *Config) *string { return &c.Filter.ComponentName }),
	"requirePresence":                   boolProp(func(c *Config) *bool { return &c.Filter.RequirePresence }),
	"allowAnyVisibilityComponent":       boolProp(func(c *Config) *bool { return &c.Filter.AllowAnyVisibilityComponent }),
	"debugScoring":                      boolProp(func(c *Config) *bool { return &c.Debug.Scoring }),
	"debugDraw":                         boolProp(func(c *Config) *bool { return &c.Debug.Draw }),
	"debugMaxCandidatesToLog":           intProp(func(c *Config) *int { return &c.Debug.MaxCandidatesToLog }),
	"debugDrawDuration":                 floatProp(func(c *Config) *float32 { return &c.Debug.DrawDuration }),
	"positionScoreMode": {
		get: func(c *Config) any { return c.PositionScoreMode.String() },
		set: func(c *Config, props map[string]any, key string) bool {
			s, ok := props[key].(string)
			if !ok {
				return false
			}
			m, err := ParsePositionScoreMode(s)
			if err != nil {
				return false
			}
			c.PositionScoreMode = m
			return true
		},
	},
	"filterMode": {
		get: func(c *Config) any { return c.Filter.Mode.String() },
		set: func(c *Config, props map[string]any, key string) bool {
			s, ok := props[key].(string)
			if !ok {
				return false
			}
			m, err := ParseFilterMode(s)
			if err != nil {
				return false
			}
			c.Filter.Mode = m
			return true
		},
	},
}

// ConfigPropNames returns every flat property name, sorted.
func ConfigPropNames() []string {
	names := make([]string, 0, len(configProps))
	for name := range configProps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Props flattens c into scene-file props.
func (c Config) Props() map[string]any {
	props := make(map[string]any, len(configProps))
	for name, p := range configProps {
		props[name] = p.get(&c)
	}
	return props
}

// ApplyProp sets a single flat property and re-sanitizes.
// It returns false for unknown names or values of the wrong type.
func (c *Config) ApplyProp(name string, value any) bool {
	p, ok := configProps[name]
	if !ok {
		return false
	}
	if !p.set(c, map[string]any{name: value}, name) {
		return false
	}
	c.Sanitize()
	return true
}

// ConfigFromProps overlays scene-file props on base. Unknown keys are ignored.
func ConfigFromProps(base Config, props map[string]any) Config {
	c := base
	for name, p := range configProps {
		if _, ok := props[name]; ok {
			p.set(&c, props, name)
		}
	}
	c.Sanitize()
	return c
}

func isNumber(v any) bool {
	switch v.(type) {
	case float64, float32, int:
		return true
	}
	return false
}
