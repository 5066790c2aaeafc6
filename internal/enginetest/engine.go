// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package enginetest

import (
	"encoding/binary"
	"fmt"
	"iter"
	"math"
	"sync"

	"github.com/gogpu/rive/ffi"
	"github.com/gogpu/rive/renderer"
)

// TextValueRunTypeID is the component type id of text runs.
const TextValueRunTypeID = 135

var _ ffi.Engine = (*Engine)(nil)

// Engine is an in-memory ffi.Engine. It is safe for concurrent use.
type Engine struct {
	mu         sync.Mutex
	last       uintptr
	objects    map[uintptr]any
	violations []string
}

// New returns an empty Engine.
func New() *Engine {
	return &Engine{objects: make(map[uintptr]any)}
}

// Violations returns the ownership and contract violations seen so far.
func (e *Engine) Violations() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.violations...)
}

// Files returns the number of live files.
func (e *Engine) Files() int { return countLive[*file](e) }

// Artboards returns the number of live artboard instances.
func (e *Engine) Artboards() int { return countLive[*artboard](e) }

// Scenes returns the number of live animations and state machines.
func (e *Engine) Scenes() int { return countLive[*animation](e) + countLive[*stateMachine](e) }

func countLive[T any](e *Engine) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, o := range e.objects {
		if _, ok := o.(T); ok {
			n++
		}
	}
	return n
}

func (e *Engine) violate(format string, args ...any) {
	e.violations = append(e.violations, fmt.Sprintf(format, args...))
}

func (e *Engine) add(o any) uintptr {
	e.last++
	e.objects[e.last] = o
	return e.last
}

func get[T any](e *Engine, op string, id uintptr) (T, bool) {
	o, ok := e.objects[id].(T)
	if !ok {
		e.violate("%s: invalid object %d", op, id)
	}
	return o, ok
}

type shapeRes struct {
	def                      *ShapeDef
	path, paint, clip, image ffi.Handle
	vertices, uvs, indices   ffi.Handle
}

type file struct {
	doc       *Document
	d         *ffi.Dispatch
	shapes    [][]shapeRes
	factory   uintptr
	artboards int
}

type factory struct {
	file uintptr
}

type artboard struct {
	file       *file
	fileID     uintptr
	def        *ArtboardDef
	shapes     []shapeRes
	components []uintptr
	offset     renderer.Point
	scenes     int
}

type component struct {
	def  *ComponentDef
	text string
}

type animation struct {
	ab       *artboard
	def      *AnimationDef
	time     float32
	forwards bool
	loop     ffi.Loop
	didLoop  bool
}

type stateMachine struct {
	ab       *artboard
	def      *StateMachineDef
	inputs   []uintptr
	pending  []EventDef
	reported []uintptr
	changed  bool
}

type input struct {
	sm      *stateMachine
	def     *InputDef
	boolean bool
	number  float32
}

type event struct {
	def   EventDef
	delay float32
}

// FileNew implements ffi.Engine.
func (e *Engine) FileNew(data []byte, d *ffi.Dispatch) (ffi.File, ffi.Factory, ffi.FileResult) {
	doc, result := decode(data)
	if result != ffi.Success {
		return 0, 0, result
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	f := &file{doc: doc, d: d}
	for i := range doc.Artboards {
		ab := &doc.Artboards[i]
		res := make([]shapeRes, len(ab.Shapes))
		for j := range ab.Shapes {
			res[j] = buildShape(d, &ab.Shapes[j])
		}
		f.shapes = append(f.shapes, res)
	}
	id := e.add(f)
	f.factory = e.add(&factory{file: id})
	return ffi.File(id), ffi.Factory(f.factory), ffi.Success
}

func segments(segs []Segment) iter.Seq[renderer.Command] {
	return func(yield func(renderer.Command) bool) {
		for _, s := range segs {
			if !yield(renderer.Command{Verb: s.Verb, Points: s.Points}) {
				return
			}
		}
	}
}

func buildShape(d *ffi.Dispatch, def *ShapeDef) shapeRes {
	r := shapeRes{def: def}
	if len(def.Clip) > 0 {
		r.clip = d.PathNew(segments(def.Clip), renderer.NonZero)
	}
	if len(def.Image) > 0 {
		r.image = d.ImageDecode(def.Image)
		if m := def.Mesh; m != nil {
			r.vertices = pointBuffer(d, renderer.VertexBuffer, m.Vertices)
			r.uvs = pointBuffer(d, renderer.VertexBuffer, m.UVs)
			r.indices = indexBuffer(d, m.Indices)
		}
		return r
	}

	r.path = d.PathNew(segments(def.Path), def.FillRule)
	r.paint = d.PaintDefault()
	if def.Stroke > 0 {
		d.PaintSetStyle(r.paint, renderer.Stroke)
		d.PaintSetThickness(r.paint, def.Stroke)
		d.PaintSetJoin(r.paint, def.Join)
		d.PaintSetCap(r.paint, def.Cap)
	} else {
		d.PaintSetStyle(r.paint, renderer.Fill)
	}
	d.PaintSetColor(r.paint, def.Color)
	if def.Blend != 0 {
		d.PaintSetBlendMode(r.paint, def.Blend)
	}
	if g := def.Gradient; g != nil {
		var gh ffi.Handle
		if g.Radial {
			gh = d.GradientNewRadial(g.Start.X, g.Start.Y, g.Radius, g.Colors, g.Stops)
		} else {
			gh = d.GradientNewLinear(g.Start.X, g.Start.Y, g.End.X, g.End.Y, g.Colors, g.Stops)
		}
		d.PaintSetGradient(r.paint, gh)
		d.GradientRelease(gh)
	}
	return r
}

func pointBuffer(d *ffi.Dispatch, typ renderer.BufferType, pts []renderer.Point) ffi.Handle {
	h := d.BufferNew(typ, renderer.MappedOnceAtInitialization, len(pts)*8)
	data := d.BufferMap(h)
	for i, p := range pts {
		binary.NativeEndian.PutUint32(data[i*8:], math.Float32bits(p.X))
		binary.NativeEndian.PutUint32(data[i*8+4:], math.Float32bits(p.Y))
	}
	d.BufferUnmap(h)
	return h
}

func indexBuffer(d *ffi.Dispatch, indices []uint16) ffi.Handle {
	h := d.BufferNew(renderer.IndexBuffer, renderer.MappedOnceAtInitialization, len(indices)*2)
	data := d.BufferMap(h)
	for i, v := range indices {
		binary.NativeEndian.PutUint16(data[i*2:], v)
	}
	d.BufferUnmap(h)
	return h
}

func (r *shapeRes) release(d *ffi.Dispatch) {
	if r.path != 0 {
		d.PathRelease(r.path)
	}
	if r.paint != 0 {
		d.PaintRelease(r.paint)
	}
	if r.clip != 0 {
		d.PathRelease(r.clip)
	}
	if r.image != 0 {
		d.ImageRelease(r.image)
	}
	for _, b := range []ffi.Handle{r.vertices, r.uvs, r.indices} {
		if b != 0 {
			d.BufferRelease(b)
		}
	}
}

// FileRelease implements ffi.Engine.
func (e *Engine) FileRelease(f ffi.File, fac ffi.Factory) {
	e.mu.Lock()
	defer e.mu.Unlock()

	fl, ok := get[*file](e, "file_release", uintptr(f))
	if !ok {
		return
	}
	if fl.artboards > 0 {
		e.violate("file_release: %d artboards still alive", fl.artboards)
	}
	if uintptr(fac) != fl.factory {
		e.violate("file_release: factory %d does not belong to file %d", fac, f)
	}
	for _, shapes := range fl.shapes {
		for i := range shapes {
			shapes[i].release(fl.d)
		}
	}
	delete(e.objects, uintptr(f))
	delete(e.objects, fl.factory)
}

func pick(index *uint, n int) (int, bool) {
	i := 0
	if index != nil {
		i = int(*index) //nolint:gosec // bounded below
	}
	return i, i >= 0 && i < n
}

func (e *Engine) newArtboard(f *file, fid uintptr, i int) ffi.Artboard {
	def := &f.doc.Artboards[i]
	ab := &artboard{file: f, fileID: fid, def: def, shapes: f.shapes[i]}
	for j := range def.Components {
		c := &def.Components[j]
		ab.components = append(ab.components, e.add(&component{def: c, text: c.Text}))
	}
	f.artboards++
	return ffi.Artboard(e.add(ab))
}

// InstantiateArtboard implements ffi.Engine.
func (e *Engine) InstantiateArtboard(f ffi.File, index *uint) (ffi.Artboard, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	fl, ok := get[*file](e, "instantiate_artboard", uintptr(f))
	if !ok {
		return 0, false
	}
	i, ok := pick(index, len(fl.doc.Artboards))
	if !ok {
		return 0, false
	}
	return e.newArtboard(fl, uintptr(f), i), true
}

// InstantiateArtboardByName implements ffi.Engine.
func (e *Engine) InstantiateArtboardByName(f ffi.File, name []byte) (ffi.Artboard, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	fl, ok := get[*file](e, "instantiate_artboard_by_name", uintptr(f))
	if !ok {
		return 0, false
	}
	for i := range fl.doc.Artboards {
		if fl.doc.Artboards[i].Name == string(name) {
			return e.newArtboard(fl, uintptr(f), i), true
		}
	}
	return 0, false
}

// ArtboardRelease implements ffi.Engine.
func (e *Engine) ArtboardRelease(a ffi.Artboard) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ab, ok := get[*artboard](e, "artboard_release", uintptr(a))
	if !ok {
		return
	}
	if ab.scenes > 0 {
		e.violate("artboard_release: %d scenes still alive", ab.scenes)
	}
	if _, ok := e.objects[ab.fileID]; !ok {
		e.violate("artboard_release: file released before artboard")
	}
	for _, c := range ab.components {
		delete(e.objects, c)
	}
	ab.file.artboards--
	delete(e.objects, uintptr(a))
}

// ArtboardComponentCount implements ffi.Engine.
func (e *Engine) ArtboardComponentCount(a ffi.Artboard) uint {
	e.mu.Lock()
	defer e.mu.Unlock()

	ab, ok := get[*artboard](e, "artboard_component_count", uintptr(a))
	if !ok {
		return 0
	}
	return uint(len(ab.components))
}

// ArtboardComponent implements ffi.Engine.
func (e *Engine) ArtboardComponent(a ffi.Artboard, index uint) ffi.Component {
	e.mu.Lock()
	defer e.mu.Unlock()

	ab, ok := get[*artboard](e, "artboard_get_component", uintptr(a))
	if !ok || index >= uint(len(ab.components)) {
		return 0
	}
	return ffi.Component(ab.components[index])
}

// ArtboardTransforms implements ffi.Engine. The artboard is scaled to fit
// inside the viewport and centered.
func (e *Engine) ArtboardTransforms(a ffi.Artboard, width, height uint32) (view, inverse [6]float32) {
	e.mu.Lock()
	defer e.mu.Unlock()

	view = [6]float32{1, 0, 0, 1, 0, 0}
	inverse = view
	ab, ok := get[*artboard](e, "artboard_instance_transforms", uintptr(a))
	if !ok || ab.def.Width <= 0 || ab.def.Height <= 0 || width == 0 || height == 0 {
		return view, inverse
	}

	w, h := float32(width), float32(height)
	s := min(w/ab.def.Width, h/ab.def.Height)
	tx := (w - ab.def.Width*s) / 2
	ty := (h - ab.def.Height*s) / 2
	view = [6]float32{s, 0, 0, s, tx, ty}
	inverse = [6]float32{1 / s, 0, 0, 1 / s, -tx / s, -ty / s}
	return view, inverse
}

// ComponentTypeID implements ffi.Engine.
func (e *Engine) ComponentTypeID(c ffi.Component) uint16 {
	e.mu.Lock()
	defer e.mu.Unlock()

	comp, ok := get[*component](e, "component_type_id", uintptr(c))
	if !ok {
		return 0
	}
	return comp.def.TypeID
}

// ComponentName implements ffi.Engine.
func (e *Engine) ComponentName(c ffi.Component) []byte {
	e.mu.Lock()
	defer e.mu.Unlock()

	comp, ok := get[*component](e, "component_name", uintptr(c))
	if !ok {
		return nil
	}
	return []byte(comp.def.Name)
}

func (e *Engine) textRun(op string, c ffi.Component) (*component, bool) {
	comp, ok := get[*component](e, op, uintptr(c))
	if ok && comp.def.TypeID != TextValueRunTypeID {
		e.violate("%s: component %q is not a text run", op, comp.def.Name)
		return nil, false
	}
	return comp, ok
}

// TextValueRunText implements ffi.Engine.
func (e *Engine) TextValueRunText(c ffi.Component) []byte {
	e.mu.Lock()
	defer e.mu.Unlock()

	comp, ok := e.textRun("text_value_run_get_text", c)
	if !ok {
		return nil
	}
	return []byte(comp.text)
}

// TextValueRunSetText implements ffi.Engine.
func (e *Engine) TextValueRunSetText(c ffi.Component, text []byte) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if comp, ok := e.textRun("text_value_run_set_text", c); ok {
		comp.text = string(text)
	}
}
