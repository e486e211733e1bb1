package components

import "github.com/felipedpaulasantos/MyShooterScenarios/internal/engine"

func init() {
	engine.RegisterScript("Orbiter", orbiterFactory, orbiterSerializer)
	engine.RegisterScript("Rotator", rotatorFactory, rotatorSerializer)
	engine.RegisterScriptWithApplier("LookController", lookControllerFactory, lookControllerSerializer, lookControllerApplier)
	engine.RegisterScript("LocalControl", localControlFactory, localControlSerializer)
}

func orbiterFactory(props map[string]any) engine.Component {
	o := &Orbiter{
		Radius:    engine.PropFloat(props, "radius", 2),
		Speed:     engine.PropFloat(props, "speed", 1),
		BobHeight: engine.PropFloat(props, "bobHeight", 0),
		Phase:     engine.PropFloat(props, "phase", 0),
	}
	if c, ok := props["center"].([]any); ok && len(c) == 3 {
		o.Center.X = toFloat(c[0])
		o.Center.Y = toFloat(c[1])
		o.Center.Z = toFloat(c[2])
	}
	return o
}

func orbiterSerializer(c engine.Component) map[string]any {
	o, ok := c.(*Orbiter)
	if !ok {
		return nil
	}
	return map[string]any{
		"center":    []float32{o.Center.X, o.Center.Y, o.Center.Z},
		"radius":    o.Radius,
		"speed":     o.Speed,
		"bobHeight": o.BobHeight,
		"phase":     o.Phase,
	}
}

// Rotator is a simple script that spins an object around the Y axis.
type Rotator struct {
	engine.BaseComponent
	Speed float32
}

func (r *Rotator) Update(deltaTime float32) {
	g := r.GetGameObject()
	if g == nil {
		return
	}
	g.Transform.Rotation.Y += r.Speed * deltaTime
	if g.Transform.Rotation.Y > 360 {
		g.Transform.Rotation.Y -= 360
	}
}

func rotatorFactory(props map[string]any) engine.Component {
	return &Rotator{Speed: engine.PropFloat(props, "speed", 90)}
}

func rotatorSerializer(c engine.Component) map[string]any {
	r, ok := c.(*Rotator)
	if !ok {
		return nil
	}
	return map[string]any{
		"speed": r.Speed,
	}
}

func lookControllerFactory(props map[string]any) engine.Component {
	l := NewLookController()
	l.Yaw = engine.PropFloat(props, "yaw", 0)
	l.Pitch = engine.PropFloat(props, "pitch", 0)
	l.LookSpeed = engine.PropFloat(props, "lookSpeed", l.LookSpeed)
	l.EyeHeight = engine.PropFloat(props, "eyeHeight", l.EyeHeight)
	return l
}

func lookControllerSerializer(c engine.Component) map[string]any {
	l, ok := c.(*LookController)
	if !ok {
		return nil
	}
	return map[string]any{
		"yaw":       l.Yaw,
		"pitch":     l.Pitch,
		"lookSpeed": l.LookSpeed,
		"eyeHeight": l.EyeHeight,
	}
}

func lookControllerApplier(c engine.Component, propName string, value any) bool {
	l, ok := c.(*LookController)
	if !ok {
		return false
	}
	props := map[string]any{propName: value}
	switch propName {
	case "yaw":
		l.Yaw = engine.PropFloat(props, propName, l.Yaw)
	case "pitch":
		l.Pitch = engine.PropFloat(props, propName, l.Pitch)
	case "lookSpeed":
		l.LookSpeed = engine.PropFloat(props, propName, l.LookSpeed)
	case "eyeHeight":
		l.EyeHeight = engine.PropFloat(props, propName, l.EyeHeight)
	default:
		return false
	}
	return true
}

func localControlFactory(props map[string]any) engine.Component {
	return NewLocalControl(engine.PropBool(props, "local", true))
}

func localControlSerializer(c engine.Component) map[string]any {
	l, ok := c.(*LocalControl)
	if !ok {
		return nil
	}
	return map[string]any{"local": l.Local}
}

func toFloat(v any) float32 {
	switch n := v.(type) {
	case float64:
		return float32(n)
	case float32:
		return n
	case int:
		return float32(n)
	}
	return 0
}
