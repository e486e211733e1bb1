package components

import (
	"math"

	"github.com/felipedpaulasantos/MyShooterScenarios/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LookController owns the observer's yaw/pitch and eye height.
// It never reads input on its own; callers feed it mouse deltas.
type LookController struct {
	engine.BaseComponent
	Yaw       float32 // degrees, 0 = +X
	Pitch     float32 // degrees, clamped to ±89
	LookSpeed float32
	EyeHeight float32
}

func NewLookController() *LookController {
	return &LookController{
		LookSpeed: 0.1,
		EyeHeight: 1.6,
	}
}

// ApplyMouseDelta turns the view by a mouse movement in pixels.
func (l *LookController) ApplyMouseDelta(delta rl.Vector2) {
	l.Yaw += delta.X * l.LookSpeed
	l.Pitch -= delta.Y * l.LookSpeed

	// Clamp pitch
	if l.Pitch > 89 {
		l.Pitch = 89
	}
	if l.Pitch < -89 {
		l.Pitch = -89
	}
}

// GetDirections returns the horizontal forward and right vectors.
func (l *LookController) GetDirections() (forward, right rl.Vector3) {
	yawRad := float64(l.Yaw) * math.Pi / 180
	forward = rl.Vector3{
		X: float32(math.Cos(yawRad)),
		Y: 0,
		Z: float32(math.Sin(yawRad)),
	}
	right = rl.Vector3{
		X: float32(-math.Sin(yawRad)),
		Y: 0,
		Z: float32(math.Cos(yawRad)),
	}
	return
}

func (l *LookController) GetLookDirection() (x, y, z float32) {
	d := directionFromAngles(l.Yaw, l.Pitch)
	return d.X, d.Y, d.Z
}

func (l *LookController) GetEyeHeight() float32 {
	return l.EyeHeight
}

// directionFromAngles converts yaw/pitch in degrees to a unit vector.
func directionFromAngles(yaw, pitch float32) rl.Vector3 {
	yawRad := float64(yaw) * math.Pi / 180
	pitchRad := float64(pitch) * math.Pi / 180
	return rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
}
