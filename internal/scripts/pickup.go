package scripts

import (
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/engine"
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Pickup is an item the player can collect.
type Pickup struct {
	engine.BaseComponent
	// Item name shown on the widget
	Item string
	// Icon hides when the observer is closer than this
	ShowDistance float64
	// Icon anchor above the object origin
	IconHeight float32
	// Internal state
	collected bool
}

func (p *Pickup) GetMinimumDistanceToShowIcon() float64 {
	return p.ShowDistance
}

func (p *Pickup) GetIconWorldLocation() rl.Vector3 {
	g := p.GetGameObject()
	if g == nil {
		return rl.Vector3{}
	}
	pos := g.WorldPosition()
	pos.Y += p.IconHeight
	return pos
}

// Collect removes the pickup from the world. Returns false if already collected.
func (p *Pickup) Collect() bool {
	if p.collected {
		return false
	}
	p.collected = true
	log.Info("collected", "item", p.Item)

	// Destroy this object
	g := p.GetGameObject()
	if g != nil && g.Scene != nil && g.Scene.World != nil {
		g.Scene.World.Destroy(g)
	}
	return true
}

func (p *Pickup) Collected() bool {
	return p.collected
}

func init() {
	engine.RegisterScript("Pickup", pickupFactory, pickupSerializer)
}

func pickupFactory(props map[string]any) engine.Component {
	return &Pickup{
		Item:         engine.PropString(props, "item", "Item"),
		ShowDistance: float64(engine.PropFloat(props, "showDistance", 0)),
		IconHeight:   engine.PropFloat(props, "iconHeight", 0),
	}
}

func pickupSerializer(c engine.Component) map[string]any {
	p, ok := c.(*Pickup)
	if !ok {
		return nil
	}
	return map[string]any{
		"item":         p.Item,
		"showDistance": p.ShowDistance,
		"iconHeight":   p.IconHeight,
	}
}
