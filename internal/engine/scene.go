package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject
	World       WorldAccess
	Timers      *TimerManager
	uidMap      map[uint64]*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		Timers:      NewTimerManager(),
		uidMap:      make(map[uint64]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.uidMap[g.UID] = g
}

// RemoveGameObject removes g and all of its children from the scene.
// Components get OnDestroy before the object becomes unreachable by UID.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for _, child := range g.Children {
		if child.Scene == s {
			s.RemoveGameObject(child)
		}
	}
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			break
		}
	}
	if _, ok := s.uidMap[g.UID]; !ok {
		return
	}
	g.destroy()
	delete(s.uidMap, g.UID)
	g.Scene = nil
}

// FindByUID does an O(1) lookup. Returns nil once the object was removed.
func (s *Scene) FindByUID(uid uint64) *GameObject {
	if s == nil || s.uidMap == nil {
		return nil
	}
	return s.uidMap[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

// Update ticks every object, then fires due timers.
func (s *Scene) Update(deltaTime float32) {
	// Copy so components may spawn or destroy objects mid-frame
	objects := append([]*GameObject(nil), s.GameObjects...)
	for _, g := range objects {
		if g.Scene != s || !g.isActiveInHierarchy() {
			continue
		}
		g.Update(deltaTime)
	}
	if s.Timers != nil {
		s.Timers.Tick(deltaTime)
	}
}

func (g *GameObject) isActiveInHierarchy() bool {
	for obj := g; obj != nil; obj = obj.Parent {
		if !obj.Active {
			return false
		}
	}
	return true
}
