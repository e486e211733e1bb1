package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// minClipW rejects points at or behind the camera plane.
const minClipW = 1e-6

// viewProjection builds the combined view and projection matrix the same way
// raylib's BeginMode3D does. VP = P * V.
func viewProjection(camera rl.Camera3D, aspect, near, far float32) rl.Matrix {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)

	var proj rl.Matrix
	if camera.Projection == rl.CameraOrthographic {
		halfH := camera.Fovy / 2.0
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, near, far)
	} else {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, near, far)
	}
	return rl.MatrixMultiply(view, proj)
}

// Project maps a world point to pixel coordinates for a viewport of the given
// size, origin top-left. ok is false for points behind the camera or an
// empty viewport. Points outside the viewport still project.
func Project(point rl.Vector3, camera rl.Camera3D, near, far float32, viewport rl.Vector2) (rl.Vector2, bool) {
	if viewport.X <= 0 || viewport.Y <= 0 {
		return rl.Vector2{}, false
	}
	vp := viewProjection(camera, viewport.X/viewport.Y, near, far)

	clip := rl.QuaternionTransform(rl.Quaternion{X: point.X, Y: point.Y, Z: point.Z, W: 1}, vp)
	if clip.W <= minClipW {
		return rl.Vector2{}, false
	}

	ndcX := clip.X / clip.W
	ndcY := clip.Y / clip.W
	return rl.Vector2{
		X: (ndcX + 1) / 2 * viewport.X,
		Y: (1 - ndcY) / 2 * viewport.Y,
	}, true
}
