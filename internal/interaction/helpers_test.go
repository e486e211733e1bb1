package interaction

import (
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// fakeWorld is a scriptable engine.WorldAccess. The observer sits at eye
// looking down +X; LineTrace hits whatever is registered in blockers for the
// traced end point.
type fakeWorld struct {
	eye      rl.Vector3
	noView   bool
	viewport rl.Vector2
	objects  []*engine.GameObject
	blockers map[rl.Vector3]*engine.GameObject
	traces   int
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{
		viewport: rl.Vector2{X: 1280, Y: 720},
		blockers: map[rl.Vector3]*engine.GameObject{},
	}
}

func (w *fakeWorld) GetCollidableObjects() []*engine.GameObject { return w.objects }

func (w *fakeWorld) SpawnObject(g *engine.GameObject) { w.objects = append(w.objects, g) }

func (w *fakeWorld) Destroy(g *engine.GameObject) { w.remove(g) }

func (w *fakeWorld) Raycast(origin, direction rl.Vector3, maxDistance float32) (engine.RaycastResult, bool) {
	return engine.RaycastResult{}, false
}

func (w *fakeWorld) LineTrace(from, to rl.Vector3, ignore ...*engine.GameObject) (engine.RaycastResult, bool) {
	w.traces++
	if hit, ok := w.blockers[to]; ok {
		return engine.RaycastResult{GameObject: hit, Point: to, Distance: rl.Vector3Distance(from, to)}, true
	}
	return engine.RaycastResult{}, false
}

func (w *fakeWorld) OverlapSphere(center rl.Vector3, radius float32, ignore *engine.GameObject) []*engine.GameObject {
	var out []*engine.GameObject
	for _, g := range w.objects {
		if g != ignore {
			out = append(out, g)
		}
	}
	return out
}

func (w *fakeWorld) ViewportSize() rl.Vector2 { return w.viewport }

func (w *fakeWorld) WorldToScreen(p rl.Vector3) (rl.Vector2, bool) {
	rel := rl.Vector3Subtract(p, w.eye)
	if rel.X <= 0 {
		return rl.Vector2{}, false
	}
	f := w.viewport.X / 2
	return rl.Vector2{
		X: w.viewport.X/2 + rel.Z/rel.X*f,
		Y: w.viewport.Y/2 - rel.Y/rel.X*f,
	}, true
}

func (w *fakeWorld) MainViewPoint() (location, forward rl.Vector3, ok bool) {
	if w.noView {
		return rl.Vector3{}, rl.Vector3{}, false
	}
	return w.eye, rl.Vector3{X: 1}, true
}

func (w *fakeWorld) remove(g *engine.GameObject) {
	for i, o := range w.objects {
		if o == g {
			w.objects = append(w.objects[:i], w.objects[i+1:]...)
			return
		}
	}
}

type visCall struct {
	visible  bool
	distance float32
}

// recorder is an Interactable that keeps every visibility call.
type recorder struct {
	engine.BaseComponent
	minDist float32
	calls   []visCall
}

func (r *recorder) MinimumDistanceToShowIcon() float32 { return r.minDist }

func (r *recorder) SetIconVisibility(visible bool) {
	r.SetIconVisibilityWithDistance(visible, 0)
}

func (r *recorder) SetIconVisibilityWithDistance(visible bool, distance float32) {
	r.calls = append(r.calls, visCall{visible, distance})
}

func (r *recorder) shows() int {
	n := 0
	for _, c := range r.calls {
		if c.visible {
			n++
		}
	}
	return n
}

func (r *recorder) hides() int {
	return len(r.calls) - r.shows()
}

func (r *recorder) last() (visCall, bool) {
	if len(r.calls) == 0 {
		return visCall{}, false
	}
	return r.calls[len(r.calls)-1], true
}

func (r *recorder) reset() {
	r.calls = nil
}

type harness struct {
	scene *engine.Scene
	world *fakeWorld
	pawn  *engine.GameObject
	sel   *IconSelector
}

func newHarness(cfg Config) *harness {
	h := &harness{
		scene: engine.NewScene("test"),
		world: newFakeWorld(),
		pawn:  engine.NewGameObject("Pawn"),
	}
	h.scene.World = h.world
	h.sel = NewIconSelector(cfg)
	h.pawn.AddComponent(h.sel)
	h.scene.AddGameObject(h.pawn)
	return h
}

func (h *harness) add(name string, pos rl.Vector3, minDist float32) (*engine.GameObject, *recorder) {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	r := &recorder{minDist: minDist}
	g.AddComponent(r)
	h.scene.AddGameObject(g)
	h.world.objects = append(h.world.objects, g)
	return g, r
}

type fixedView struct {
	engine.BaseComponent
	location rl.Vector3
	forward  rl.Vector3
}

func (v *fixedView) ViewPoint() (location, forward rl.Vector3) {
	return v.location, v.forward
}

type remoteControl struct {
	engine.BaseComponent
	local bool
}

func (r *remoteControl) IsLocallyControlled() bool { return r.local }
