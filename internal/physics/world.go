package physics

import (
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/components"
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/engine"
)

// PhysicsWorld tracks every object that carries a collider and answers
// spatial queries against them. It does not simulate motion.
type PhysicsWorld struct {
	objects []*engine.GameObject
}

func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{}
}

// AddObject registers g if it has a box or sphere collider.
func (p *PhysicsWorld) AddObject(g *engine.GameObject) {
	if g == nil || !HasCollider(g) {
		return
	}
	for _, existing := range p.objects {
		if existing == g {
			return
		}
	}
	p.objects = append(p.objects, g)
}

// RemoveObject unregisters g. Unknown objects are ignored.
func (p *PhysicsWorld) RemoveObject(g *engine.GameObject) {
	for i, existing := range p.objects {
		if existing == g {
			p.objects = append(p.objects[:i], p.objects[i+1:]...)
			return
		}
	}
}

// Objects returns the registered collidable objects.
func (p *PhysicsWorld) Objects() []*engine.GameObject {
	return p.objects
}

func HasCollider(g *engine.GameObject) bool {
	return engine.GetComponent[*components.BoxCollider](g) != nil ||
		engine.GetComponent[*components.SphereCollider](g) != nil
}

// ignored reports whether obj is inactive or belongs to one of the ignored sub-trees.
func ignored(obj *engine.GameObject, ignore []*engine.GameObject) bool {
	for o := obj; o != nil; o = o.Parent {
		if !o.Active {
			return true
		}
	}
	for _, ig := range ignore {
		if ig != nil && (obj == ig || obj.IsDescendantOf(ig)) {
			return true
		}
	}
	return false
}
