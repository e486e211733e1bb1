package components

import (
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Camera struct {
	engine.BaseComponent
	FOV        float32
	Near       float32
	Far        float32
	Projection rl.CameraProjection
	IsMain     bool // If true, this is the active game camera
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        45.0,
		Near:       0.1,
		Far:        1000.0,
		Projection: rl.CameraPerspective,
		IsMain:     false,
	}
}

// ViewPoint implements engine.Viewpoint.
func (c *Camera) ViewPoint() (location, forward rl.Vector3) {
	g := c.GetGameObject()
	if g == nil {
		return rl.Vector3{}, rl.Vector3{X: 1}
	}

	eyePos := g.WorldPosition()

	// Look for any LookProvider component on this object or parents
	var lookProvider engine.LookProvider
	for obj := g; obj != nil; obj = obj.Parent {
		if lp := engine.FindComponent[engine.LookProvider](obj); lp != nil {
			lookProvider = lp
			break
		}
	}

	if lookProvider == nil {
		rot := g.WorldRotation()
		return eyePos, directionFromAngles(rot.Y, rot.X)
	}

	// A child camera already carries its local offset; on the controller
	// object itself the eye sits EyeHeight above the feet.
	if g.Parent == nil || engine.FindComponent[engine.LookProvider](g) != nil {
		eyePos.Y += lookProvider.GetEyeHeight()
	}
	x, y, z := lookProvider.GetLookDirection()
	return eyePos, rl.Vector3Normalize(rl.Vector3{X: x, Y: y, Z: z})
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	eyePos, forward := c.ViewPoint()
	return rl.Camera3D{
		Position:   eyePos,
		Target:     rl.Vector3Add(eyePos, forward),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}
