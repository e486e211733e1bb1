package components

import (
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (b *BoxCollider) GetCenter() rl.Vector3 {
	g := b.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), b.Offset)
}

// GetWorldSize returns Size scaled by the object's world scale, always positive.
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	scale := b.GetGameObject().WorldScale()
	return rl.Vector3{
		X: abs(b.Size.X * scale.X),
		Y: abs(b.Size.Y * scale.Y),
		Z: abs(b.Size.Z * scale.Z),
	}
}

// GetBounds returns the world-space axis-aligned min and max corners.
func (b *BoxCollider) GetBounds() (min, max rl.Vector3) {
	center := b.GetCenter()
	size := b.GetWorldSize()
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return rl.Vector3Subtract(center, half), rl.Vector3Add(center, half)
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
