package interaction

import (
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// IconMarker is the stock Interactable: it records whether its icon is shown
// and how far away the observer was when it was last shown.
type IconMarker struct {
	engine.BaseComponent
	Label       string
	MinDistance float32
	IconOffset  rl.Vector3 // added to the object's world position

	OnVisibilityChanged engine.EventWithArg[bool]

	visible  bool
	distance float32
	shows    int
	hides    int
}

func NewIconMarker(label string) *IconMarker {
	return &IconMarker{Label: label}
}

func (m *IconMarker) MinimumDistanceToShowIcon() float32 {
	return m.MinDistance
}

func (m *IconMarker) SetIconVisibility(visible bool) {
	m.SetIconVisibilityWithDistance(visible, 0)
}

func (m *IconMarker) SetIconVisibilityWithDistance(visible bool, distance float32) {
	if visible {
		m.shows++
		m.distance = distance
	} else {
		m.hides++
		m.distance = 0
	}
	if m.visible != visible {
		m.visible = visible
		m.OnVisibilityChanged.Invoke(visible)
	}
}

func (m *IconMarker) IconWorldLocation() rl.Vector3 {
	g := m.GetGameObject()
	if g == nil {
		return m.IconOffset
	}
	return rl.Vector3Add(g.WorldPosition(), m.IconOffset)
}

func (m *IconMarker) IsIconVisible() bool {
	return m.visible
}

// IconDistance is the observer distance passed with the last show, 0 while hidden.
func (m *IconMarker) IconDistance() float32 {
	return m.distance
}

// Calls returns how many show and hide requests the marker has received.
func (m *IconMarker) Calls() (shows, hides int) {
	return m.shows, m.hides
}

// DisplayName is the label, or the object name when no label is set.
func (m *IconMarker) DisplayName() string {
	if m.Label != "" {
		return m.Label
	}
	if g := m.GetGameObject(); g != nil {
		return g.Name
	}
	return ""
}
