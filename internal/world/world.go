package world

import (
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/components"
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/engine"
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 720
)

// World owns the scene and its collision queries. It needs no window, so the
// same world drives the headless runner, the demo and the tests.
type World struct {
	Scene        *engine.Scene
	PhysicsWorld *physics.PhysicsWorld
	Viewport     rl.Vector2
}

func New() *World {
	w := &World{
		Scene:        engine.NewScene("Main"),
		PhysicsWorld: physics.NewPhysicsWorld(),
		Viewport:     rl.Vector2{X: DefaultViewportWidth, Y: DefaultViewportHeight},
	}
	w.Scene.World = w
	return w
}

// SetViewportSize updates the render target size used for projection.
func (w *World) SetViewportSize(width, height float32) {
	w.Viewport = rl.Vector2{X: width, Y: height}
}

// AddObject adds g and its descendants to the scene and registers colliders.
func (w *World) AddObject(g *engine.GameObject) {
	if g == nil {
		return
	}
	if g.Scene != w.Scene {
		w.Scene.AddGameObject(g)
	}
	w.PhysicsWorld.AddObject(g)
	for _, child := range g.Children {
		w.AddObject(child)
	}
}

func (w *World) Start() {
	w.Scene.Start()
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// GetCollidableObjects returns all GameObjects that have a box or sphere collider
func (w *World) GetCollidableObjects() []*engine.GameObject {
	return w.PhysicsWorld.Objects()
}

// SpawnObject adds g at runtime and starts it.
func (w *World) SpawnObject(g *engine.GameObject) {
	w.AddObject(g)
	startTree(g)
}

func startTree(g *engine.GameObject) {
	g.Start()
	for _, child := range g.Children {
		startTree(child)
	}
}

// Destroy removes g and its descendants. Components see OnDestroy.
func (w *World) Destroy(g *engine.GameObject) {
	if g == nil {
		return
	}
	w.unregister(g)
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
	w.Scene.RemoveGameObject(g)
}

func (w *World) unregister(g *engine.GameObject) {
	w.PhysicsWorld.RemoveObject(g)
	for _, child := range g.Children {
		w.unregister(child)
	}
}

func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32) (engine.RaycastResult, bool) {
	hit, ok := w.PhysicsWorld.Raycast(origin, direction, maxDistance)
	return toResult(hit), ok
}

func (w *World) LineTrace(from, to rl.Vector3, ignore ...*engine.GameObject) (engine.RaycastResult, bool) {
	hit, ok := w.PhysicsWorld.LineTrace(from, to, ignore...)
	return toResult(hit), ok
}

func (w *World) OverlapSphere(center rl.Vector3, radius float32, ignore *engine.GameObject) []*engine.GameObject {
	return w.PhysicsWorld.OverlapSphere(center, radius, ignore)
}

func toResult(hit physics.RaycastHit) engine.RaycastResult {
	return engine.RaycastResult{
		GameObject: hit.GameObject,
		Point:      hit.Point,
		Normal:     hit.Normal,
		Distance:   hit.Distance,
	}
}

func (w *World) ViewportSize() rl.Vector2 {
	return w.Viewport
}

// MainCamera returns the first active camera flagged IsMain, falling back to
// the first active camera in the scene.
func (w *World) MainCamera() *components.Camera {
	var fallback *components.Camera
	for _, g := range w.Scene.GameObjects {
		if !activeInHierarchy(g) {
			continue
		}
		cam := engine.GetComponent[*components.Camera](g)
		if cam == nil {
			continue
		}
		if cam.IsMain {
			return cam
		}
		if fallback == nil {
			fallback = cam
		}
	}
	return fallback
}

func (w *World) MainViewPoint() (location, forward rl.Vector3, ok bool) {
	cam := w.MainCamera()
	if cam == nil {
		return rl.Vector3{}, rl.Vector3{}, false
	}
	location, forward = cam.ViewPoint()
	return location, forward, true
}

// WorldToScreen projects point through the main camera.
func (w *World) WorldToScreen(point rl.Vector3) (rl.Vector2, bool) {
	cam := w.MainCamera()
	if cam == nil {
		return rl.Vector2{}, false
	}
	return Project(point, cam.GetRaylibCamera(), cam.Near, cam.Far, w.Viewport)
}

// CameraFrustum returns the main camera's frustum for culling.
func (w *World) CameraFrustum() (Frustum, bool) {
	cam := w.MainCamera()
	if cam == nil || w.Viewport.Y <= 0 {
		return Frustum{}, false
	}
	aspect := w.Viewport.X / w.Viewport.Y
	return ExtractFrustum(cam.GetRaylibCamera(), aspect, cam.Near, cam.Far), true
}

func activeInHierarchy(g *engine.GameObject) bool {
	for obj := g; obj != nil; obj = obj.Parent {
		if !obj.Active {
			return false
		}
	}
	return true
}
