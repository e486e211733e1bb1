// Package audio plays short positional cues when the selected interactable
// changes.
package audio

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Listener represents the audio listener position and orientation
type Listener struct {
	Position rl.Vector3
	Forward  rl.Vector3
	Right    rl.Vector3
}

// Spatialize returns volume in [0, volume] and pan in [0, 1] (0 = left) for a
// sound at position heard by l.
func Spatialize(l Listener, position rl.Vector3, volume, maxDistance float32) (float32, float32) {
	toSource := rl.Vector3Subtract(position, l.Position)
	distance := rl.Vector3Length(toSource)

	// Linear falloff
	var v float32
	if distance < maxDistance {
		v = volume * (1.0 - distance/maxDistance)
	}

	pan := float32(0.5)
	if distance > 0.001 {
		direction := rl.Vector3Scale(toSource, 1.0/distance)
		rightDot := rl.Vector3DotProduct(direction, l.Right)
		pan = clamp01(0.5 + rightDot*0.5)

		// Sounds behind are slightly quieter
		frontDot := rl.Vector3DotProduct(direction, l.Forward)
		if frontDot < 0 {
			v *= 0.7 + 0.3*float32(math.Abs(float64(frontDot)))
		}
	}
	return v, pan
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
