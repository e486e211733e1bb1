// Package interaction picks the single best interactable near an observer
// and tells it to show its icon while every other candidate hides its own.
package interaction

import (
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Interactable is implemented by components that own an interaction icon.
type Interactable interface {
	MinimumDistanceToShowIcon() float32
	SetIconVisibility(visible bool)
}

// IconLocator overrides where the icon (and the visibility trace) aims.
type IconLocator interface {
	IconWorldLocation() rl.Vector3
}

// DistanceIconReceiver receives the observer distance along with visibility.
// When implemented it is called instead of SetIconVisibility.
type DistanceIconReceiver interface {
	SetIconVisibilityWithDistance(visible bool, distance float32)
}

// Binding is a resolved interactable: the candidate object plus the calls the
// selector makes on it. Missing calls fall back to safe defaults.
type Binding struct {
	Object *engine.GameObject

	minDistance  func() float32
	iconLocation func() (rl.Vector3, bool)
	setVisible   func(visible bool, distance float32)
}

func (b Binding) IsValid() bool {
	return b.Object != nil
}

// MinimumDistance returns the closest the observer may be before the icon hides. Never negative.
func (b Binding) MinimumDistance() float32 {
	if b.minDistance == nil {
		return 0
	}
	if d := b.minDistance(); d > 0 {
		return d
	}
	return 0
}

// IconLocation returns the icon anchor, defaulting to the object's world position.
func (b Binding) IconLocation() rl.Vector3 {
	if b.iconLocation != nil {
		if loc, ok := b.iconLocation(); ok {
			return loc
		}
	}
	if b.Object == nil {
		return rl.Vector3{}
	}
	return b.Object.WorldPosition()
}

// SetVisible shows or hides the icon. Hiding always passes a zero distance.
func (b Binding) SetVisible(visible bool, distance float32) {
	if b.setVisible == nil {
		return
	}
	if !visible {
		distance = 0
	}
	b.setVisible(visible, distance)
}
