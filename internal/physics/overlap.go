package physics

import (
	"sort"

	"github.com/felipedpaulasantos/MyShooterScenarios/internal/components"
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlapSphere returns every collidable object whose collider touches the
// sphere, closest collider center first. Objects in the ignored sub-tree are skipped.
func (p *PhysicsWorld) OverlapSphere(center rl.Vector3, radius float32, ignore *engine.GameObject) []*engine.GameObject {
	type overlap struct {
		obj    *engine.GameObject
		distSq float32
	}
	var found []overlap

	for _, obj := range p.objects {
		if ignored(obj, []*engine.GameObject{ignore}) {
			continue
		}
		if box := engine.GetComponent[*components.BoxCollider](obj); box != nil {
			min, max := box.GetBounds()
			if (AABB{Min: min, Max: max}).IntersectsSphere(center, radius) {
				found = append(found, overlap{obj, rl.Vector3DistanceSqr(box.GetCenter(), center)})
				continue
			}
		}
		if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil {
			r := sphere.GetWorldRadius() + radius
			d := rl.Vector3DistanceSqr(sphere.GetCenter(), center)
			if d <= r*r {
				found = append(found, overlap{obj, d})
			}
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].distSq < found[j].distSq
	})

	result := make([]*engine.GameObject, len(found))
	for i, f := range found {
		result[i] = f.obj
	}
	return result
}
