// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import "github.com/gogpu/rive/scene"

// meshSeamScale enlarges every mesh triangle about its centroid so that
// neighbouring triangles overlap and no background shows through seams.
const meshSeamScale = 1.03

// SimplexAffineMapping returns the affine transform taking the source
// triangle (a, b, c) onto the destination triangle (d, e, f).
//
// Collinear source points make the determinant zero; the result then has
// non-finite coefficients. Callers that cannot rule this out should check
// the result with [scene.Affine.IsFinite].
func SimplexAffineMapping(from, to [3]scene.Point) scene.Affine {
	a, b, c := from[0], from[1], from[2]
	d, e, f := to[0], to[1], to[2]

	detRecip := 1 / (a.X*b.Y + b.X*c.Y + c.X*a.Y - a.X*c.Y - b.X*a.Y - c.X*b.Y)

	// p and q are the images of the x and y basis vectors, t the
	// translation.
	px := (d.X*(b.Y-c.Y) - e.X*(a.Y-c.Y) + f.X*(a.Y-b.Y)) * detRecip
	py := (d.Y*(b.Y-c.Y) - e.Y*(a.Y-c.Y) + f.Y*(a.Y-b.Y)) * detRecip

	qx := (e.X*(a.X-c.X) - d.X*(b.X-c.X) - f.X*(a.X-b.X)) * detRecip
	qy := (e.Y*(a.X-c.X) - d.Y*(b.X-c.X) - f.Y*(a.X-b.X)) * detRecip

	tx := (d.X*(b.X*c.Y-b.Y*c.X) - e.X*(a.X*c.Y-a.Y*c.X) + f.X*(a.X*b.Y-a.Y*b.X)) * detRecip
	ty := (d.Y*(b.X*c.Y-b.Y*c.X) - e.Y*(a.X*c.Y-a.Y*c.X) + f.Y*(a.X*b.Y-a.Y*b.X)) * detRecip

	return scene.Affine{
		A: px, B: qx, C: tx,
		D: py, E: qy, F: ty,
	}
}

// mapUVsToTriangle maps image pixel space onto a triangle given its
// normalized texture coordinates.
func mapUVsToTriangle(points, uvs [3]scene.Point, width, height int) scene.Affine {
	w, h := float32(width), float32(height)
	from := [3]scene.Point{
		{X: uvs[0].X * w, Y: uvs[0].Y * h},
		{X: uvs[1].X * w, Y: uvs[1].Y * h},
		{X: uvs[2].X * w, Y: uvs[2].Y * h},
	}
	return SimplexAffineMapping(from, points)
}

// trianglePath returns the outline of a triangle.
func trianglePath(p [3]scene.Point) *scene.Path {
	return scene.NewPath().
		MoveTo(p[0].X, p[0].Y).
		LineTo(p[1].X, p[1].Y).
		LineTo(p[2].X, p[2].Y).
		LineTo(p[0].X, p[0].Y)
}

func centroid(p [3]scene.Point) scene.Point {
	return scene.Point{
		X: (p[0].X + p[1].X + p[2].X) / 3,
		Y: (p[0].Y + p[1].Y + p[2].Y) / 3,
	}
}
