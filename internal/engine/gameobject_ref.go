package engine

// GameObjectRef is a weak reference to a GameObject by UID.
// It never keeps the object alive: once the object leaves its scene,
// Get returns nil. Use it for anything held across frames.
//
// Example:
//
//	type MyScript struct {
//	    engine.BaseComponent
//	    Target engine.GameObjectRef
//	}
//
//	func (s *MyScript) Update(dt float32) {
//	    if target := s.Target.Get(s.GetGameObject().Scene); target != nil {
//	        // Use the target...
//	    }
//	}
type GameObjectRef struct {
	UID uint64 // UID of the referenced GameObject (0 = none)
}

// RefTo returns a reference to g (empty for nil).
func RefTo(g *GameObject) GameObjectRef {
	var r GameObjectRef
	r.Set(g)
	return r
}

// Get resolves the reference to the actual GameObject.
// Returns nil if the reference is empty (UID = 0) or if the GameObject doesn't exist.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

// IsValid returns true if the reference points to something (UID != 0).
// Note: This doesn't check if the GameObject actually exists in the scene.
func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}

// Alive reports whether the referenced object is still in scene.
func (r GameObjectRef) Alive(scene *Scene) bool {
	return r.Get(scene) != nil
}

// Is reports whether the reference points at g.
func (r GameObjectRef) Is(g *GameObject) bool {
	if g == nil {
		return r.UID == 0
	}
	return r.UID == g.UID
}

// Set sets the reference to point to the given GameObject.
// Pass nil to clear the reference.
func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.UID = 0
	} else {
		r.UID = g.UID
	}
}

// Clear clears the reference (sets UID to 0).
func (r *GameObjectRef) Clear() {
	r.UID = 0
}
