package interaction

import (
	"log/slog"
	"reflect"

	"github.com/felipedpaulasantos/MyShooterScenarios/internal/engine"
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Filter decides whether an object is interactable and, if so, how to drive it.
type Filter interface {
	Resolve(g *engine.GameObject) (Binding, bool)
}

// NewFilter builds the filter described by cfg.
func NewFilter(cfg FilterConfig) Filter {
	if cfg.Mode == FilterDynamic {
		return NewDynamicFilter(cfg)
	}
	return InterfaceFilter{}
}

// InterfaceFilter accepts objects carrying a component that implements Interactable.
type InterfaceFilter struct{}

func (InterfaceFilter) Resolve(g *engine.GameObject) (Binding, bool) {
	if g == nil {
		return Binding{}, false
	}
	it := engine.FindComponent[Interactable](g)
	if it == nil {
		return Binding{}, false
	}

	b := Binding{
		Object:      g,
		minDistance: it.MinimumDistanceToShowIcon,
	}
	if loc, ok := it.(IconLocator); ok {
		b.iconLocation = func() (rl.Vector3, bool) { return loc.IconWorldLocation(), true }
	} else if loc := engine.FindComponent[IconLocator](g); loc != nil {
		b.iconLocation = func() (rl.Vector3, bool) { return loc.IconWorldLocation(), true }
	}
	if r, ok := it.(DistanceIconReceiver); ok {
		b.setVisible = r.SetIconVisibilityWithDistance
	} else {
		b.setVisible = func(visible bool, _ float32) { it.SetIconVisibility(visible) }
	}
	return b, true
}

var vector3Type = reflect.TypeOf(rl.Vector3{})

// DynamicFilter discovers interactables by method name, for script components
// that do not implement Interactable. Minimum distance and icon location are
// looked up on any component of the object; visibility is driven through a
// single "widget" component.
type DynamicFilter struct {
	Config FilterConfig
	Logger *slog.Logger
}

func NewDynamicFilter(cfg FilterConfig) *DynamicFilter {
	return &DynamicFilter{Config: cfg, Logger: log.With("component", "DynamicFilter")}
}

func (f *DynamicFilter) Resolve(g *engine.GameObject) (Binding, bool) {
	if g == nil {
		return Binding{}, false
	}
	if f.Config.RequirePresence && !f.HasPresence(g) {
		return Binding{}, false
	}
	widget := f.WidgetComponent(g)
	if widget == nil {
		return Binding{}, false
	}

	b := Binding{Object: g}
	if m, ok := findMethod(g, f.Config.MinDistanceFunc); ok {
		b.minDistance = func() float32 { return callFloat(m) }
	}
	if m, ok := findMethod(g, f.Config.IconLocationFunc); ok {
		b.iconLocation = func() (rl.Vector3, bool) { return callVector(m) }
	}
	if m, ok := methodByName(widget, f.Config.VisibilityFunc); ok {
		b.setVisible = f.bindVisibility(widget, m)
	}
	return b, true
}

// HasPresence reports whether any component exposes the presence method.
func (f *DynamicFilter) HasPresence(g *engine.GameObject) bool {
	_, ok := findMethod(g, f.Config.PresenceFunc)
	return ok
}

// WidgetComponent returns the component that receives visibility calls.
// A configured ComponentName wins; otherwise the first component exposing
// the visibility method is used when allowed.
func (f *DynamicFilter) WidgetComponent(g *engine.GameObject) engine.Component {
	if g == nil {
		return nil
	}
	if f.Config.ComponentName != "" {
		for _, c := range g.Components() {
			if componentName(c) == f.Config.ComponentName {
				return c
			}
		}
		return nil
	}
	if !f.Config.AllowAnyVisibilityComponent {
		return nil
	}
	for _, c := range g.Components() {
		if _, ok := methodByName(c, f.Config.VisibilityFunc); ok {
			return c
		}
	}
	return nil
}

// bindVisibility maps (visible, distance) onto the method's first bool and
// first float parameter. Other parameters receive zero values.
func (f *DynamicFilter) bindVisibility(widget engine.Component, m reflect.Value) func(bool, float32) {
	t := m.Type()
	boolIdx, distIdx := -1, -1
	for i := 0; i < t.NumIn(); i++ {
		switch t.In(i).Kind() {
		case reflect.Bool:
			if boolIdx < 0 {
				boolIdx = i
			}
		case reflect.Float32, reflect.Float64:
			if distIdx < 0 {
				distIdx = i
			}
		}
	}
	if boolIdx < 0 || distIdx < 0 {
		f.logger().Warn("visibility parameter bind failed",
			"component", componentName(widget),
			"func", f.Config.VisibilityFunc,
			"bool", boolIdx >= 0,
			"distance", distIdx >= 0)
	}

	return func(visible bool, distance float32) {
		args := make([]reflect.Value, t.NumIn())
		for i := range args {
			args[i] = reflect.Zero(t.In(i))
		}
		if boolIdx >= 0 {
			args[boolIdx] = reflect.ValueOf(visible).Convert(t.In(boolIdx))
		}
		if distIdx >= 0 {
			args[distIdx] = reflect.ValueOf(float64(distance)).Convert(t.In(distIdx))
		}
		m.Call(args)
	}
}

func (f *DynamicFilter) logger() *slog.Logger {
	if f.Logger != nil {
		return f.Logger
	}
	return log.L()
}

// componentName is the registered script name, falling back to the Go type name.
func componentName(c engine.Component) string {
	if name := engine.ScriptName(c); name != "" {
		return name
	}
	t := reflect.TypeOf(c)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

func findMethod(g *engine.GameObject, name string) (reflect.Value, bool) {
	if g == nil || name == "" {
		return reflect.Value{}, false
	}
	for _, c := range g.Components() {
		if m, ok := methodByName(c, name); ok {
			return m, true
		}
	}
	return reflect.Value{}, false
}

func methodByName(c engine.Component, name string) (reflect.Value, bool) {
	if c == nil || name == "" {
		return reflect.Value{}, false
	}
	m := reflect.ValueOf(c).MethodByName(name)
	if !m.IsValid() || m.Type().IsVariadic() {
		return reflect.Value{}, false
	}
	return m, true
}

// callFloat calls a no-argument method returning float32 or float64.
func callFloat(m reflect.Value) float32 {
	t := m.Type()
	if t.NumIn() != 0 || t.NumOut() < 1 {
		return 0
	}
	switch t.Out(0).Kind() {
	case reflect.Float32, reflect.Float64:
		return float32(m.Call(nil)[0].Float())
	}
	return 0
}

// callVector calls a no-argument method returning rl.Vector3.
func callVector(m reflect.Value) (rl.Vector3, bool) {
	t := m.Type()
	if t.NumIn() != 0 || t.NumOut() < 1 || t.Out(0) != vector3Type {
		return rl.Vector3{}, false
	}
	return m.Call(nil)[0].Interface().(rl.Vector3), true
}
