package interaction

import (
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// View is the observer state shared by every score in one scan.
type View struct {
	Location       rl.Vector3 `json:"location"`
	Forward        rl.Vector3 `json:"forward"`
	ViewportSize   rl.Vector2 `json:"viewportSize"`
	ViewportCenter rl.Vector2 `json:"viewportCenter"`
}

// ResolveView reads the observer viewpoint from a Viewpoint component on the
// owner (or its children), falling back to the world's main camera.
func ResolveView(owner *engine.GameObject, world engine.WorldAccess) (View, bool) {
	if world == nil {
		return View{}, false
	}

	var location, forward rl.Vector3
	if vp, ok := engine.FindComponentInChildren[engine.Viewpoint](owner); ok {
		location, forward = vp.ViewPoint()
	} else {
		var found bool
		location, forward, found = world.MainViewPoint()
		if !found {
			return View{}, false
		}
	}
	if rl.Vector3LengthSqr(forward) == 0 {
		return View{}, false
	}

	size := world.ViewportSize()
	return View{
		Location:       location,
		Forward:        rl.Vector3Normalize(forward),
		ViewportSize:   size,
		ViewportCenter: rl.Vector2Scale(size, 0.5),
	}, true
}
