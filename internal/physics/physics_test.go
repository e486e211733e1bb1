package physics

import (
	"math"
	"testing"

	"github.com/felipedpaulasantos/MyShooterScenarios/internal/components"
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func boxAt(name string, pos, size rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	g.AddComponent(components.NewBoxCollider(size))
	return g
}

func sphereAt(name string, pos rl.Vector3, radius float32) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	g.AddComponent(components.NewSphereCollider(radius))
	return g
}

func TestAddObjectRequiresCollider(t *testing.T) {
	p := NewPhysicsWorld()
	p.AddObject(engine.NewGameObject("Empty"))
	box := boxAt("Box", rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1})
	p.AddObject(box)
	p.AddObject(box)

	if len(p.Objects()) != 1 {
		t.Fatalf("expected 1 object, got %d", len(p.Objects()))
	}

	p.RemoveObject(box)
	if len(p.Objects()) != 0 {
		t.Errorf("expected 0 objects after remove, got %d", len(p.Objects()))
	}
}

func TestRaycastHitsClosest(t *testing.T) {
	p := NewPhysicsWorld()
	near := boxAt("Near", rl.Vector3{X: 5}, rl.Vector3{X: 1, Y: 1, Z: 1})
	far := sphereAt("Far", rl.Vector3{X: 10}, 1)
	p.AddObject(far)
	p.AddObject(near)

	hit, ok := p.Raycast(rl.Vector3{}, rl.Vector3{X: 1}, 100)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.GameObject != near {
		t.Errorf("expected Near, got %s", hit.GameObject.Name)
	}
	if math.Abs(float64(hit.Distance-4.5)) > 1e-4 {
		t.Errorf("expected distance 4.5, got %v", hit.Distance)
	}
	if hit.Normal.X != -1 {
		t.Errorf("expected -X normal, got %+v", hit.Normal)
	}
}

func TestRaycastRespectsMaxDistance(t *testing.T) {
	p := NewPhysicsWorld()
	p.AddObject(sphereAt("Far", rl.Vector3{X: 10}, 1))

	if _, ok := p.Raycast(rl.Vector3{}, rl.Vector3{X: 1}, 5); ok {
		t.Error("hit beyond max distance")
	}
	if _, ok := p.Raycast(rl.Vector3{}, rl.Vector3{}, 50); ok {
		t.Error("zero direction should never hit")
	}
}

func TestLineTraceIgnoresSubtree(t *testing.T) {
	p := NewPhysicsWorld()
	pawn := boxAt("Pawn", rl.Vector3{}, rl.Vector3{X: 1, Y: 2, Z: 1})
	weapon := boxAt("Weapon", rl.Vector3{X: 0.8}, rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5})
	pawn.AddChild(weapon)
	target := sphereAt("Target", rl.Vector3{X: 10}, 0.5)
	p.AddObject(pawn)
	p.AddObject(weapon)
	p.AddObject(target)

	hit, ok := p.LineTrace(rl.Vector3{}, rl.Vector3{X: 10}, pawn)
	if !ok || hit.GameObject != target {
		t.Fatalf("expected to hit Target, got %v %v", ok, hit.GameObject)
	}

	hit, ok = p.LineTrace(rl.Vector3{}, rl.Vector3{X: 10})
	if !ok || hit.GameObject == target {
		t.Errorf("without ignore the pawn should block, got %v", hit.GameObject)
	}
}

func TestLineTraceStopsAtSegmentEnd(t *testing.T) {
	p := NewPhysicsWorld()
	p.AddObject(boxAt("Wall", rl.Vector3{X: 8}, rl.Vector3{X: 1, Y: 5, Z: 5}))

	if _, ok := p.LineTrace(rl.Vector3{}, rl.Vector3{X: 5}); ok {
		t.Error("wall beyond the segment end should not block")
	}
	if _, ok := p.LineTrace(rl.Vector3{X: 1}, rl.Vector3{X: 1}); ok {
		t.Error("zero-length trace should not hit")
	}
}

func TestRaycastSkipsInactive(t *testing.T) {
	p := NewPhysicsWorld()
	wall := boxAt("Wall", rl.Vector3{X: 5}, rl.Vector3{X: 1, Y: 1, Z: 1})
	p.AddObject(wall)
	wall.SetActive(false)

	if _, ok := p.Raycast(rl.Vector3{}, rl.Vector3{X: 1}, 100); ok {
		t.Error("inactive object should not block")
	}
}

func TestOverlapSphereOrderedByDistance(t *testing.T) {
	p := NewPhysicsWorld()
	observer := sphereAt("Observer", rl.Vector3{}, 0.5)
	a := boxAt("A", rl.Vector3{X: 8}, rl.Vector3{X: 1, Y: 1, Z: 1})
	b := sphereAt("B", rl.Vector3{Z: 3}, 0.5)
	outside := sphereAt("Outside", rl.Vector3{Y: 30}, 1)
	edge := boxAt("Edge", rl.Vector3{X: -10.4}, rl.Vector3{X: 1, Y: 1, Z: 1})
	for _, g := range []*engine.GameObject{observer, a, outside, edge, b} {
		p.AddObject(g)
	}

	got := p.OverlapSphere(rl.Vector3{}, 10, observer)
	if len(got) != 3 {
		t.Fatalf("expected 3 overlaps, got %d", len(got))
	}
	if got[0] != b || got[1] != a || got[2] != edge {
		t.Errorf("unexpected order: %s, %s, %s", got[0].Name, got[1].Name, got[2].Name)
	}
}

func TestAABBSphere(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})
	if !box.Contains(rl.Vector3{X: 0.5}) {
		t.Error("expected point inside")
	}
	if !box.IntersectsSphere(rl.Vector3{X: 1.5}, 0.6) {
		t.Error("expected sphere touching the +X face")
	}
	if box.IntersectsSphere(rl.Vector3{X: 2, Y: 2}, 1) {
		t.Error("corner sphere should miss")
	}
}
