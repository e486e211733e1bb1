package game

import rl "github.com/gen2brain/raylib-go/raylib"

// MoveInput is the walk intent for one frame, each axis in [-1, 1].
type MoveInput struct {
	Forward float32
	Right   float32
}

func axis(positive, negative bool) float32 {
	var v float32
	if positive {
		v++
	}
	if negative {
		v--
	}
	return v
}

// MoveDelta turns input into a horizontal displacement. Diagonals are not
// faster than straight moves.
func MoveDelta(forward, right rl.Vector3, in MoveInput, speed, deltaTime float32) rl.Vector3 {
	dir := rl.Vector3Add(rl.Vector3Scale(forward, in.Forward), rl.Vector3Scale(right, in.Right))
	dir.Y = 0
	if rl.Vector3Length(dir) < 1e-6 {
		return rl.Vector3{}
	}
	return rl.Vector3Scale(rl.Vector3Normalize(dir), speed*deltaTime)
}
