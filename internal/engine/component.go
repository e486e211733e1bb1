package engine

import rl "github.com/gen2brain/raylib-go/raylib"

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// EnableHandler is implemented by components that react to GameObject.SetActive.
type EnableHandler interface {
	OnEnable()
	OnDisable()
}

// DestroyHandler is implemented by components that need cleanup when their
// GameObject leaves the scene.
type DestroyHandler interface {
	OnDestroy()
}

// LookProvider is implemented by components that control camera look direction.
// Used by Camera and other components that need to follow a look direction.
type LookProvider interface {
	GetLookDirection() (x, y, z float32)
	GetEyeHeight() float32
}

// Viewpoint is implemented by components that can act as the observer's eye.
type Viewpoint interface {
	ViewPoint() (location, forward rl.Vector3)
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
