package scripts

import (
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/engine"
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/log"
)

// InteractableWidget is the world-space prompt attached to a scripted item.
type InteractableWidget struct {
	engine.BaseComponent
	Text string

	visible  bool
	distance float64
	toggles  int
}

// SetWidgetVisibility is called by a dynamic-mode selector.
func (w *InteractableWidget) SetWidgetVisibility(visible bool, distance float64) {
	if visible != w.visible {
		w.toggles++
		log.Debug("widget visibility", "object", w.ownerName(), "visible", visible, "distance", distance)
	}
	w.visible = visible
	w.distance = distance
}

func (w *InteractableWidget) IsShowing() bool {
	return w.visible
}

// Distance is the last observer distance passed with a show.
func (w *InteractableWidget) Distance() float64 {
	return w.distance
}

// Toggles counts visibility changes.
func (w *InteractableWidget) Toggles() int {
	return w.toggles
}

func (w *InteractableWidget) ownerName() string {
	if g := w.GetGameObject(); g != nil {
		return g.Name
	}
	return ""
}

func init() {
	engine.RegisterScript("InteractableWidget", widgetFactory, widgetSerializer)
}

func widgetFactory(props map[string]any) engine.Component {
	return &InteractableWidget{Text: engine.PropString(props, "text", "")}
}

func widgetSerializer(c engine.Component) map[string]any {
	w, ok := c.(*InteractableWidget)
	if !ok {
		return nil
	}
	return map[string]any{"text": w.Text}
}
