// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"github.com/gogpu/rive/internal/logger"
	"github.com/gogpu/rive/renderer"
	"github.com/gogpu/rive/scene"
)

// Renderer records engine draw calls into a scene.
//
// It keeps a transform stack and a parallel stack of clip flags. Both
// always hold at least one entry. A Renderer is not safe for concurrent
// use.
type Renderer struct {
	scene      *scene.Scene
	transforms []scene.Affine
	clips      []bool
}

// NewRenderer returns a Renderer drawing into s. A nil s gets a new scene.
func NewRenderer(s *scene.Scene) *Renderer {
	if s == nil {
		s = scene.NewScene()
	}
	return &Renderer{
		scene:      s,
		transforms: []scene.Affine{scene.IdentityAffine()},
		clips:      []bool{false},
	}
}

// Scene returns the scene being recorded.
func (r *Renderer) Scene() *scene.Scene {
	return r.scene
}

// Reset clears the scene and the state stacks for the next frame.
func (r *Renderer) Reset() {
	r.scene.Reset()
	r.transforms = append(r.transforms[:0], scene.IdentityAffine())
	r.clips = append(r.clips[:0], false)
}

// Depth returns the number of state levels.
func (r *Renderer) Depth() int {
	return len(r.transforms)
}

// Current returns the top-of-stack transform.
func (r *Renderer) Current() scene.Affine {
	return r.transforms[len(r.transforms)-1]
}

// ClipActive reports whether the current state level has a clip.
func (r *Renderer) ClipActive() bool {
	return r.clips[len(r.clips)-1]
}

// StatePush implements renderer.Renderer.
func (r *Renderer) StatePush() {
	r.transforms = append(r.transforms, r.Current())
	r.clips = append(r.clips, false)
}

// StatePop implements renderer.Renderer. Popping the last level leaves a
// fresh identity level.
func (r *Renderer) StatePop() {
	r.transforms = r.transforms[:len(r.transforms)-1]
	clipped := r.clips[len(r.clips)-1]
	r.clips = r.clips[:len(r.clips)-1]
	if clipped {
		r.scene.PopLayer()
	}

	if len(r.transforms) == 0 {
		r.transforms = append(r.transforms, scene.IdentityAffine())
		r.clips = append(r.clips, false)
	}
}

// Transform implements renderer.Renderer.
func (r *Renderer) Transform(t renderer.Mat2D) {
	top := &r.transforms[len(r.transforms)-1]
	*top = top.Multiply(sceneAffine(t))
}

// SetClip implements renderer.Renderer. A level holds at most one clip,
// so an existing one is closed first.
func (r *Renderer) SetClip(path renderer.Path) {
	p, ok := path.(*Path)
	if !ok {
		logger.Get().Warn("backend: SetClip with foreign path", "type", typeName(path))
		return
	}
	if r.ClipActive() {
		r.scene.PopLayer()
	}
	r.scene.PushLayer(scene.BlendClip, 1, r.Current(), p.path)
	r.clips[len(r.clips)-1] = true
}

// DrawPath implements renderer.Renderer. Paints with a blend mode other
// than SrcOver are drawn inside a layer bounded by the path.
func (r *Renderer) DrawPath(path renderer.Path, paint renderer.Paint) {
	p, ok := path.(*Path)
	pt, ok2 := paint.(*Paint)
	if !ok || !ok2 {
		logger.Get().Warn("backend: DrawPath with foreign resources",
			"path", typeName(path), "paint", typeName(paint))
		return
	}

	t := r.Current()
	skipBlending := pt.blend == renderer.SrcOver
	if !skipBlending {
		r.scene.PushLayer(sceneBlend(pt.blend), 1, t, p.path.Bounds())
	}

	if pt.stroke == nil {
		r.scene.Fill(p.rule, t, pt.brush, nil, p.path)
	} else {
		r.scene.Stroke(pt.Stroke(), t, pt.brush, nil, p.path)
	}

	if !skipBlending {
		r.scene.PopLayer()
	}
}

// DrawImage implements renderer.Renderer. The image is centered on the
// current origin. A layer is used only when blending or opacity applies.
func (r *Renderer) DrawImage(image renderer.Image, blend renderer.BlendMode, opacity float32) {
	img, ok := image.(*Image)
	if !ok {
		logger.Get().Warn("backend: DrawImage with foreign image", "type", typeName(image))
		return
	}

	w, h := float32(img.Width()), float32(img.Height())
	t := r.Current().PreTranslate(-w/2, -h/2)

	skipBlending := blend == renderer.SrcOver && opacity == 1
	if !skipBlending {
		r.scene.PushLayer(sceneBlend(blend), opacity, t, scene.NewRect(0, 0, w, h))
	}

	r.scene.DrawImage(img.img, t)

	if !skipBlending {
		r.scene.PopLayer()
	}
}

// DrawImageMesh implements renderer.Renderer. Each index triple is filled
// as a triangle sampling image through the UV mapping of its corners.
// Triangles referencing vertices out of range are skipped.
func (r *Renderer) DrawImageMesh(image renderer.Image, vertices, uvs, indices renderer.Buffer, blend renderer.BlendMode, opacity float32) {
	img, ok := image.(*Image)
	vb, ok2 := vertices.(*Buffer)
	ub, ok3 := uvs.(*Buffer)
	ib, ok4 := indices.(*Buffer)
	if !ok || !ok2 || !ok3 || !ok4 {
		logger.Get().Warn("backend: DrawImageMesh with foreign resources",
			"image", typeName(image), "vertices", typeName(vertices),
			"uvs", typeName(uvs), "indices", typeName(indices))
		return
	}

	verts := vb.Points()
	coords := ub.Points()
	idx := ib.Indices()
	brush := scene.ImageBrush(img.img)
	mix := sceneBlend(blend)
	skipBlending := blend == renderer.SrcOver && opacity == 1

	for i := 0; i+3 <= len(idx); i += 3 {
		tri := [3]int{int(idx[i]), int(idx[i+1]), int(idx[i+2])}
		if !inRange(tri, len(verts)) || !inRange(tri, len(coords)) {
			logger.Get().Warn("backend: mesh index out of range", "triangle", i/3)
			continue
		}
		points := [3]scene.Point{verts[tri[0]], verts[tri[1]], verts[tri[2]]}
		uv := [3]scene.Point{coords[tri[0]], coords[tri[1]], coords[tri[2]]}

		c := centroid(points)
		path := trianglePath(points)
		t := r.Current().PreScaleAbout(meshSeamScale, c.X, c.Y)
		brushTransform := mapUVsToTriangle(points, uv, img.Width(), img.Height())

		if !skipBlending {
			r.scene.PushLayer(mix, opacity, t, path.Bounds())
		}
		r.scene.Fill(scene.FillNonZero, t, brush, &brushTransform, path)
		if !skipBlending {
			r.scene.PopLayer()
		}
	}
}

func inRange(tri [3]int, n int) bool {
	return tri[0] < n && tri[1] < n && tri[2] < n
}
