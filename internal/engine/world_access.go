package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// RaycastResult holds information about a raycast hit.
// Defined here to avoid circular imports with physics package.
type RaycastResult struct {
	GameObject *GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// WorldAccess provides components with access to world-level operations
// without creating circular import dependencies.
type WorldAccess interface {
	GetCollidableObjects() []*GameObject
	SpawnObject(g *GameObject)
	Destroy(g *GameObject)
	Raycast(origin, direction rl.Vector3, maxDistance float32) (RaycastResult, bool)

	// LineTrace traces the segment from -> to and returns the closest hit,
	// skipping any object that is (or lives under) one of ignore.
	LineTrace(from, to rl.Vector3, ignore ...*GameObject) (RaycastResult, bool)

	// OverlapSphere returns objects whose colliders touch the sphere,
	// closest first. ignore and its children are skipped.
	OverlapSphere(center rl.Vector3, radius float32, ignore *GameObject) []*GameObject

	// ViewportSize is the render target size in pixels.
	ViewportSize() rl.Vector2

	// WorldToScreen projects a world point through the main camera.
	// ok is false when the point is behind the camera or there is no camera.
	WorldToScreen(point rl.Vector3) (screen rl.Vector2, ok bool)

	// MainViewPoint is the fallback observer viewpoint (the main camera).
	MainViewPoint() (location, forward rl.Vector3, ok bool)
}
