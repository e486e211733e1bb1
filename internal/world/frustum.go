package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frustum represents the 6 planes of a view frustum for culling
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane represents a plane in 3D space (ax + by + cz + d = 0)
type Plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum extracts frustum planes from the camera's view-projection matrix
// Uses the Gribb/Hartmann method for plane extraction
func ExtractFrustum(camera rl.Camera3D, aspect, near, far float32) Frustum {
	vp := viewProjection(camera, aspect, near, far)
	rows := [4][4]float32{
		{vp.M0, vp.M4, vp.M8, vp.M12},
		{vp.M1, vp.M5, vp.M9, vp.M13},
		{vp.M2, vp.M6, vp.M10, vp.M14},
		{vp.M3, vp.M7, vp.M11, vp.M15},
	}

	var f Frustum
	for i := 0; i < 3; i++ {
		// row4 + row(i) then row4 - row(i)
		f.planes[i*2] = planeFromRow(rows[3], rows[i], 1)
		f.planes[i*2+1] = planeFromRow(rows[3], rows[i], -1)
	}
	return f
}

func planeFromRow(w, r [4]float32, sign float32) Plane {
	return normalizePlane(Plane{
		normal: rl.Vector3{
			X: w[0] + sign*r[0],
			Y: w[1] + sign*r[1],
			Z: w[2] + sign*r[2],
		},
		distance: w[3] + sign*r[3],
	})
}

// normalizePlane normalizes a plane equation
func normalizePlane(p Plane) Plane {
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return Plane{
		normal:   rl.Vector3Scale(p.normal, 1.0/length),
		distance: p.distance / length,
	}
}

func (p Plane) signedDistance(point rl.Vector3) float32 {
	return rl.Vector3DotProduct(p.normal, point) + p.distance
}

// ContainsSphere tests if a sphere is inside or intersects the frustum
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for i := range f.planes {
		if f.planes[i].signedDistance(center) < -radius {
			return false
		}
	}
	return true
}

// ContainsPoint tests if a point is inside the frustum
func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	for i := range f.planes {
		if f.planes[i].signedDistance(point) < 0 {
			return false
		}
	}
	return true
}

// ContainsBox tests an axis-aligned box against the frustum using the
// corner furthest along each plane normal.
func (f *Frustum) ContainsBox(min, max rl.Vector3) bool {
	for i := range f.planes {
		p := f.planes[i]
		corner := min
		if p.normal.X >= 0 {
			corner.X = max.X
		}
		if p.normal.Y >= 0 {
			corner.Y = max.Y
		}
		if p.normal.Z >= 0 {
			corner.Z = max.Z
		}
		if p.signedDistance(corner) < 0 {
			return false
		}
	}
	return true
}
