package interaction

import (
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/engine"
)

func init() {
	engine.RegisterScriptWithApplier("IconSelector", iconSelectorFactory, iconSelectorSerializer, iconSelectorApplier)
	engine.RegisterScriptWithApplier("IconMarker", iconMarkerFactory, iconMarkerSerializer, iconMarkerApplier)
}

// iconSelectorFactory accepts an optional "preset" plus any flat Config prop.
func iconSelectorFactory(props map[string]any) engine.Component {
	base, err := Preset(engine.PropString(props, "preset", "default"))
	if err != nil {
		base = DefaultConfig()
	}
	s := NewIconSelector(ConfigFromProps(base, props))
	s.enabled = engine.PropBool(props, "enabled", true)
	return s
}

func iconSelectorSerializer(c engine.Component) map[string]any {
	s, ok := c.(*IconSelector)
	if !ok {
		return nil
	}
	props := s.Config.Props()
	props["enabled"] = s.enabled
	return props
}

func iconSelectorApplier(c engine.Component, propName string, value any) bool {
	s, ok := c.(*IconSelector)
	if !ok {
		return false
	}
	switch propName {
	case "enabled":
		v, ok := value.(bool)
		if ok {
			s.SetEnabled(v)
		}
		return ok
	case "scanInterval":
		next := s.Config
		if !next.ApplyProp(propName, value) {
			return false
		}
		s.SetScanInterval(next.ScanInterval)
		return true
	}
	next := s.Config
	if !next.ApplyProp(propName, value) || next.Validate() != nil {
		return false
	}
	s.Config = next
	return true
}

func iconMarkerFactory(props map[string]any) engine.Component {
	m := NewIconMarker(engine.PropString(props, "label", ""))
	m.MinDistance = engine.PropFloat(props, "minDistance", 0)
	m.IconOffset.X = engine.PropFloat(props, "iconOffsetX", 0)
	m.IconOffset.Y = engine.PropFloat(props, "iconOffsetY", 0)
	m.IconOffset.Z = engine.PropFloat(props, "iconOffsetZ", 0)
	return m
}

func iconMarkerSerializer(c engine.Component) map[string]any {
	m, ok := c.(*IconMarker)
	if !ok {
		return nil
	}
	return map[string]any{
		"label":       m.Label,
		"minDistance": m.MinDistance,
		"iconOffsetX": m.IconOffset.X,
		"iconOffsetY": m.IconOffset.Y,
		"iconOffsetZ": m.IconOffset.Z,
	}
}

func iconMarkerApplier(c engine.Component, propName string, value any) bool {
	m, ok := c.(*IconMarker)
	if !ok {
		return false
	}
	props := map[string]any{propName: value}
	switch propName {
	case "label":
		v, ok := value.(string)
		if ok {
			m.Label = v
		}
		return ok
	case "minDistance":
		m.MinDistance = engine.PropFloat(props, propName, m.MinDistance)
	case "iconOffsetX":
		m.IconOffset.X = engine.PropFloat(props, propName, m.IconOffset.X)
	case "iconOffsetY":
		m.IconOffset.Y = engine.PropFloat(props, propName, m.IconOffset.Y)
	case "iconOffsetZ":
		m.IconOffset.Z = engine.PropFloat(props, propName, m.IconOffset.Z)
	default:
		return false
	}
	return true
}
