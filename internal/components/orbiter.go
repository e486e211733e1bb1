package components

import (
	"math"

	"github.com/felipedpaulasantos/MyShooterScenarios/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Orbiter moves its object in a horizontal circle around Center with a
// small vertical bob. Used to keep candidates moving in demo scenes.
type Orbiter struct {
	engine.BaseComponent
	Center    rl.Vector3
	Radius    float32
	Speed     float32 // radians per second
	BobHeight float32
	Phase     float32
	time      float32
}

func NewOrbiter(center rl.Vector3, radius, speed float32) *Orbiter {
	return &Orbiter{
		Center:    center,
		Radius:    radius,
		Speed:     speed,
		BobHeight: 0,
	}
}

func (o *Orbiter) Update(deltaTime float32) {
	g := o.GetGameObject()
	if g == nil {
		return
	}

	o.time += deltaTime

	t := o.time*o.Speed + o.Phase
	offset := rl.Vector3{
		X: float32(math.Cos(float64(t))) * o.Radius,
		Y: float32(math.Sin(float64(t*2))) * o.BobHeight,
		Z: float32(math.Sin(float64(t))) * o.Radius,
	}

	g.Transform.Position = rl.Vector3Add(o.Center, offset)
}
