// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build (linux || darwin) && (amd64 || arm64)

package ffi

import (
	"bytes"
	"fmt"
	"iter"
	"runtime"
	"slices"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/gogpu/rive/internal/logger"
	"github.com/gogpu/rive/renderer"
)

// Open loads the native engine from the shared library at path.
//
// Strings and event properties cross the boundary as pointer/length
// pairs read through the *_raw accessors, since a purego binding cannot
// export symbols for the engine to call.
func Open(path string) (Engine, error) {
	lib, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnavailable, path, err)
	}

	n := newNative(lib)
	n.build = func(t *table) {
		t.fill(n)
		t.pinner.Pin(t)
	}
	for _, s := range n.symbols() {
		sym, err := purego.Dlsym(lib, s.name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: missing %s: %w", ErrUnavailable, path, s.name, err)
		}
		purego.RegisterFunc(s.fn, sym)
	}
	logger.Get().Debug("ffi: native engine loaded", "path", path)
	return n, nil
}

type symbol struct {
	fn   any
	name string
}

type native struct {
	lib uintptr

	fileNew                          func(data unsafe.Pointer, n uintptr, entries unsafe.Pointer, result *uint32, factory *uintptr) uintptr
	fileRelease                      func(file, factory uintptr)
	instantiateArtboard              func(file uintptr, index *uintptr, out *uintptr)
	instantiateArtboardByName        func(file uintptr, name unsafe.Pointer, n uintptr, out *uintptr)
	artboardRelease                  func(a uintptr)
	artboardComponentCount           func(a uintptr) uintptr
	artboardComponent                func(a, index uintptr) uintptr
	artboardTransforms               func(a uintptr, width, height uint32, view, inverse *float32)
	componentTypeID                  func(c uintptr) uint16
	componentName                    func(c uintptr, data *unsafe.Pointer, n *uintptr)
	textValueRunText                 func(c uintptr, data *unsafe.Pointer, n *uintptr)
	textValueRunSetText              func(c uintptr, data unsafe.Pointer, n uintptr)
	instantiateLinearAnimation       func(a uintptr, index *uintptr, out *uintptr)
	instantiateLinearAnimationByName func(a uintptr, name unsafe.Pointer, n uintptr, out *uintptr)
	linearAnimationTime              func(la uintptr) float32
	linearAnimationSetTime           func(la uintptr, t float32)
	linearAnimationIsForwards        func(la uintptr) bool
	linearAnimationSetIsForwards     func(la uintptr, forwards bool)
	linearAnimationAdvance           func(la uintptr, elapsed float32) bool
	linearAnimationApply             func(la uintptr, mix float32)
	linearAnimationDidLoop           func(la uintptr) bool
	linearAnimationSetLoop           func(la uintptr, loop uint32)
	linearAnimationIsDone            func(la uintptr) bool
	instantiateStateMachine          func(a uintptr, index *uintptr, out *uintptr)
	instantiateStateMachineByName    func(a uintptr, name unsafe.Pointer, n uintptr, out *uintptr)
	stateMachineEventCount           func(sm uintptr) uintptr
	stateMachineEvent                func(sm, index uintptr, event *uintptr, delay *float32)
	eventName                        func(e uintptr, data *unsafe.Pointer, n *uintptr)
	eventPropertyCount               func(e uintptr) uintptr
	eventProperty                    func(e, index uintptr, key *unsafe.Pointer, keyLen *uintptr, tag *uint32, b *bool, number *float32, str *unsafe.Pointer, strLen *uintptr)
	stateMachineInputCount           func(sm uintptr) uintptr
	stateMachineInput                func(sm, index uintptr, tag *uint32, input *uintptr)
	stateMachineBool                 func(sm uintptr, name unsafe.Pointer, n uintptr) uintptr
	stateMachineNumber               func(sm uintptr, name unsafe.Pointer, n uintptr) uintptr
	stateMachineTrigger              func(sm uintptr, name unsafe.Pointer, n uintptr) uintptr
	inputName                        func(in uintptr, data *unsafe.Pointer, n *uintptr)
	boolGet                          func(in uintptr) bool
	boolSet                          func(in uintptr, v bool)
	numberGet                        func(in uintptr) float32
	numberSet                        func(in uintptr, v float32)
	triggerFire                      func(in uintptr)
	sceneRelease                     func(s uintptr)
	sceneName                        func(s uintptr, data *unsafe.Pointer, n *uintptr)
	sceneWidth                       func(s uintptr) float32
	sceneHeight                      func(s uintptr) float32
	sceneLoop                        func(s uintptr) uint32
	sceneIsTranslucent               func(s uintptr) bool
	sceneDuration                    func(s uintptr) float32
	sceneAdvanceAndApply             func(s uintptr, elapsed float32) bool
	sceneDraw                        func(s, r uintptr, entries unsafe.Pointer)
	scenePointerDown                 func(s uintptr, x, y float32)
	scenePointerMove                 func(s uintptr, x, y float32)
	scenePointerUp                   func(s uintptr, x, y float32)
	commandsNext                     func(commands unsafe.Pointer, verb *uint8, points *unsafe.Pointer)

	// build fills a new table with callbacks and pins it.
	build func(*table)

	mu     sync.Mutex
	tables map[*Dispatch]*table
	files  map[File]*table
	free   []*table
}

func newNative(lib uintptr) *native {
	return &native{
		lib:    lib,
		tables: make(map[*Dispatch]*table),
		files:  make(map[File]*table),
	}
}

func (n *native) symbols() []symbol {
	return []symbol{
		{&n.fileNew, "rive_rs_file_new"},
		{&n.fileRelease, "rive_rs_file_release"},
		{&n.instantiateArtboard, "rive_rs_instantiate_artboard"},
		{&n.instantiateArtboardByName, "rive_rs_instantiate_artboard_by_name"},
		{&n.artboardRelease, "rive_rs_artboard_instance_release"},
		{&n.artboardComponentCount, "rive_rs_artboard_component_count"},
		{&n.artboardComponent, "rive_rs_artboard_get_component"},
		{&n.artboardTransforms, "rive_rs_artboard_instance_transforms"},
		{&n.componentTypeID, "rive_rs_component_type_id"},
		{&n.componentName, "rive_rs_component_name"},
		{&n.textValueRunText, "rive_rs_text_value_run_get_text"},
		{&n.textValueRunSetText, "rive_rs_text_value_run_set_text"},
		{&n.instantiateLinearAnimation, "rive_rs_instantiate_linear_animation"},
		{&n.instantiateLinearAnimationByName, "rive_rs_instantiate_linear_animation_by_name"},
		{&n.linearAnimationTime, "rive_rs_linear_animation_time"},
		{&n.linearAnimationSetTime, "rive_rs_linear_animation_set_time"},
		{&n.linearAnimationIsForwards, "rive_rs_linear_animation_is_forwards"},
		{&n.linearAnimationSetIsForwards, "rive_rs_linear_animation_set_is_forwards"},
		{&n.linearAnimationAdvance, "rive_rs_linear_animation_advance"},
		{&n.linearAnimationApply, "rive_rs_linear_animation_apply"},
		{&n.linearAnimationDidLoop, "rive_rs_linear_animation_did_loop"},
		{&n.linearAnimationSetLoop, "rive_rs_linear_animation_set_loop"},
		{&n.linearAnimationIsDone, "rive_rs_linear_animation_is_done"},
		{&n.instantiateStateMachine, "rive_rs_instantiate_state_machine"},
		{&n.instantiateStateMachineByName, "rive_rs_instantiate_state_machine_by_name"},
		{&n.stateMachineEventCount, "rive_rs_state_machine_event_count"},
		{&n.stateMachineEvent, "rive_rs_state_machine_get_event"},
		{&n.eventName, "rive_rs_event_name_raw"},
		{&n.eventPropertyCount, "rive_rs_event_property_count"},
		{&n.eventProperty, "rive_rs_event_property_raw"},
		{&n.stateMachineInputCount, "rive_rs_state_machine_input_count"},
		{&n.stateMachineInput, "rive_rs_state_machine_get_input"},
		{&n.stateMachineBool, "rive_rs_state_machine_get_bool"},
		{&n.stateMachineNumber, "rive_rs_state_machine_get_number"},
		{&n.stateMachineTrigger, "rive_rs_state_machine_get_trigger"},
		{&n.inputName, "rive_rs_input_name"},
		{&n.boolGet, "rive_rs_bool_get"},
		{&n.boolSet, "rive_rs_bool_set"},
		{&n.numberGet, "rive_rs_number_get"},
		{&n.numberSet, "rive_rs_number_set"},
		{&n.triggerFire, "rive_rs_trigger_fire"},
		{&n.sceneRelease, "rive_rs_scene_release"},
		{&n.sceneName, "rive_rs_scene_name_raw"},
		{&n.sceneWidth, "rive_rs_scene_width"},
		{&n.sceneHeight, "rive_rs_scene_height"},
		{&n.sceneLoop, "rive_rs_scene_loop"},
		{&n.sceneIsTranslucent, "rive_rs_scene_is_translucent"},
		{&n.sceneDuration, "rive_rs_scene_duration"},
		{&n.sceneAdvanceAndApply, "rive_rs_scene_advance_and_apply"},
		{&n.sceneDraw, "rive_rs_scene_draw"},
		{&n.scenePointerDown, "rive_rs_scene_pointer_down"},
		{&n.scenePointerMove, "rive_rs_scene_pointer_move"},
		{&n.scenePointerUp, "rive_rs_scene_pointer_up"},
		{&n.commandsNext, "rive_rs_commands_next_raw"},
	}
}

// cBytes copies n bytes of engine memory.
func cBytes(p unsafe.Pointer, n uintptr) []byte {
	if p == nil || n == 0 {
		return nil
	}
	return bytes.Clone(unsafe.Slice((*byte)(p), n))
}

func readString(fn func(uintptr, *unsafe.Pointer, *uintptr), obj uintptr) []byte {
	var data unsafe.Pointer
	var n uintptr
	fn(obj, &data, &n)
	return cBytes(data, n)
}

func indexPtr(index *uint) *uintptr {
	if index == nil {
		return nil
	}
	i := uintptr(*index)
	return &i
}

func (n *native) FileNew(data []byte, d *Dispatch) (File, Factory, FileResult) {
	t := n.acquire(d)
	var result uint32
	var factory uintptr
	file := n.fileNew(unsafe.Pointer(unsafe.SliceData(data)), uintptr(len(data)), unsafe.Pointer(&t.entries), &result, &factory)
	runtime.KeepAlive(data)
	if FileResult(result) != Success || file == 0 {
		n.release(t)
		return File(file), Factory(factory), FileResult(result)
	}
	n.bind(File(file), t)
	return File(file), Factory(factory), FileResult(result)
}

func (n *native) FileRelease(f File, factory Factory) {
	n.fileRelease(uintptr(f), uintptr(factory))
	n.unbind(f)
}

func (n *native) InstantiateArtboard(f File, index *uint) (Artboard, bool) {
	var out uintptr
	n.instantiateArtboard(uintptr(f), indexPtr(index), &out)
	return Artboard(out), out != 0
}

func (n *native) InstantiateArtboardByName(f File, name []byte) (Artboard, bool) {
	var out uintptr
	n.instantiateArtboardByName(uintptr(f), unsafe.Pointer(unsafe.SliceData(name)), uintptr(len(name)), &out)
	return Artboard(out), out != 0
}

func (n *native) ArtboardRelease(a Artboard) { n.artboardRelease(uintptr(a)) }

func (n *native) ArtboardComponentCount(a Artboard) uint {
	return uint(n.artboardComponentCount(uintptr(a)))
}

func (n *native) ArtboardComponent(a Artboard, index uint) Component {
	return Component(n.artboardComponent(uintptr(a), uintptr(index)))
}

func (n *native) ArtboardTransforms(a Artboard, width, height uint32) (view, inverse [6]float32) {
	n.artboardTransforms(uintptr(a), width, height, &view[0], &inverse[0])
	return view, inverse
}

func (n *native) ComponentTypeID(c Component) uint16 { return n.componentTypeID(uintptr(c)) }

func (n *native) ComponentName(c Component) []byte {
	return readString(n.componentName, uintptr(c))
}

func (n *native) TextValueRunText(c Component) []byte {
	return readString(n.textValueRunText, uintptr(c))
}

func (n *native) TextValueRunSetText(c Component, text []byte) {
	n.textValueRunSetText(uintptr(c), unsafe.Pointer(unsafe.SliceData(text)), uintptr(len(text)))
}

func (n *native) InstantiateLinearAnimation(a Artboard, index *uint) (LinearAnimation, bool) {
	var out uintptr
	n.instantiateLinearAnimation(uintptr(a), indexPtr(index), &out)
	return LinearAnimation(out), out != 0
}

func (n *native) InstantiateLinearAnimationByName(a Artboard, name []byte) (LinearAnimation, bool) {
	var out uintptr
	n.instantiateLinearAnimationByName(uintptr(a), unsafe.Pointer(unsafe.SliceData(name)), uintptr(len(name)), &out)
	return LinearAnimation(out), out != 0
}

func (n *native) LinearAnimationTime(la LinearAnimation) float32 {
	return n.linearAnimationTime(uintptr(la))
}

func (n *native) LinearAnimationSetTime(la LinearAnimation, seconds float32) {
	n.linearAnimationSetTime(uintptr(la), seconds)
}

func (n *native) LinearAnimationIsForwards(la LinearAnimation) bool {
	return n.linearAnimationIsForwards(uintptr(la))
}

func (n *native) LinearAnimationSetIsForwards(la LinearAnimation, forwards bool) {
	n.linearAnimationSetIsForwards(uintptr(la), forwards)
}

func (n *native) LinearAnimationAdvance(la LinearAnimation, elapsed float32) bool {
	return n.linearAnimationAdvance(uintptr(la), elapsed)
}

func (n *native) LinearAnimationApply(la LinearAnimation, mix float32) {
	n.linearAnimationApply(uintptr(la), mix)
}

func (n *native) LinearAnimationDidLoop(la LinearAnimation) bool {
	return n.linearAnimationDidLoop(uintptr(la))
}

func (n *native) LinearAnimationSetLoop(la LinearAnimation, loop Loop) {
	n.linearAnimationSetLoop(uintptr(la), uint32(loop))
}

func (n *native) LinearAnimationIsDone(la LinearAnimation) bool {
	return n.linearAnimationIsDone(uintptr(la))
}

func (n *native) InstantiateStateMachine(a Artboard, index *uint) (StateMachine, bool) {
	var out uintptr
	n.instantiateStateMachine(uintptr(a), indexPtr(index), &out)
	return StateMachine(out), out != 0
}

func (n *native) InstantiateStateMachineByName(a Artboard, name []byte) (StateMachine, bool) {
	var out uintptr
	n.instantiateStateMachineByName(uintptr(a), unsafe.Pointer(unsafe.SliceData(name)), uintptr(len(name)), &out)
	return StateMachine(out), out != 0
}

func (n *native) StateMachineEventCount(sm StateMachine) uint {
	return uint(n.stateMachineEventCount(uintptr(sm)))
}

func (n *native) StateMachineEvent(sm StateMachine, index uint) (Event, float32) {
	var e uintptr
	var delay float32
	n.stateMachineEvent(uintptr(sm), uintptr(index), &e, &delay)
	return Event(e), delay
}

func (n *native) EventName(e Event) []byte {
	return readString(n.eventName, uintptr(e))
}

func (n *native) EventPropertyCount(e Event) uint {
	return uint(n.eventPropertyCount(uintptr(e)))
}

func (n *native) EventProperty(e Event, index uint) RawProperty {
	var (
		key, str       unsafe.Pointer
		keyLen, strLen uintptr
		tag            uint32
		b              bool
		number         float32
	)
	n.eventProperty(uintptr(e), uintptr(index), &key, &keyLen, &tag, &b, &number, &str, &strLen)
	return RawProperty{
		Key:    cBytes(key, keyLen),
		Tag:    PropertyTag(tag),
		Bool:   b,
		Number: number,
		String: cBytes(str, strLen),
	}
}

func (n *native) StateMachineInputCount(sm StateMachine) uint {
	return uint(n.stateMachineInputCount(uintptr(sm)))
}

func (n *native) StateMachineInput(sm StateMachine, index uint) (InputTag, Input) {
	var tag uint32
	var in uintptr
	n.stateMachineInput(uintptr(sm), uintptr(index), &tag, &in)
	return InputTag(tag), Input(in)
}

func (n *native) StateMachineBool(sm StateMachine, name []byte) (Input, bool) {
	in := n.stateMachineBool(uintptr(sm), unsafe.Pointer(unsafe.SliceData(name)), uintptr(len(name)))
	return Input(in), in != 0
}

func (n *native) StateMachineNumber(sm StateMachine, name []byte) (Input, bool) {
	in := n.stateMachineNumber(uintptr(sm), unsafe.Pointer(unsafe.SliceData(name)), uintptr(len(name)))
	return Input(in), in != 0
}

func (n *native) StateMachineTrigger(sm StateMachine, name []byte) (Input, bool) {
	in := n.stateMachineTrigger(uintptr(sm), unsafe.Pointer(unsafe.SliceData(name)), uintptr(len(name)))
	return Input(in), in != 0
}

func (n *native) InputName(in Input) []byte {
	return readString(n.inputName, uintptr(in))
}

func (n *native) BoolGet(in Input) bool         { return n.boolGet(uintptr(in)) }
func (n *native) BoolSet(in Input, v bool)      { n.boolSet(uintptr(in), v) }
func (n *native) NumberGet(in Input) float32    { return n.numberGet(uintptr(in)) }
func (n *native) NumberSet(in Input, v float32) { n.numberSet(uintptr(in), v) }
func (n *native) TriggerFire(in Input)          { n.triggerFire(uintptr(in)) }

func (n *native) SceneRelease(s Scene) { n.sceneRelease(uintptr(s)) }

func (n *native) SceneName(s Scene) []byte {
	return readString(n.sceneName, uintptr(s))
}

func (n *native) SceneWidth(s Scene) float32             { return n.sceneWidth(uintptr(s)) }
func (n *native) SceneHeight(s Scene) float32            { return n.sceneHeight(uintptr(s)) }
func (n *native) SceneLoop(s Scene) Loop                 { return Loop(n.sceneLoop(uintptr(s))) }
func (n *native) SceneIsTranslucent(s Scene) bool        { return n.sceneIsTranslucent(uintptr(s)) }
func (n *native) SceneDuration(s Scene) float32          { return n.sceneDuration(uintptr(s)) }
func (n *native) ScenePointerDown(s Scene, x, y float32) { n.scenePointerDown(uintptr(s), x, y) }
func (n *native) ScenePointerMove(s Scene, x, y float32) { n.scenePointerMove(uintptr(s), x, y) }
func (n *native) ScenePointerUp(s Scene, x, y float32)   { n.scenePointerUp(uintptr(s), x, y) }

func (n *native) SceneAdvanceAndApply(s Scene, elapsed float32) bool {
	return n.sceneAdvanceAndApply(uintptr(s), elapsed)
}

func (n *native) SceneDraw(s Scene, r Handle, d *Dispatch) {
	t := n.bound(d)
	if t == nil {
		logger.Get().Warn("ffi: draw with a dispatch that has no live file")
		return
	}
	n.sceneDraw(uintptr(s), uintptr(r), unsafe.Pointer(&t.entries))
}

// commands reads count commands from an engine path iterator.
func (n *native) commands(it unsafe.Pointer, count uintptr) iter.Seq[renderer.Command] {
	return func(yield func(renderer.Command) bool) {
		for range count {
			var verb uint8
			var pts unsafe.Pointer
			n.commandsNext(it, &verb, &pts)

			v := renderer.Verb(verb)
			var points []renderer.Point
			if k := v.PointCount(); k > 0 && pts != nil {
				// Line and Cubic carry the previous point first.
				off := 1
				if v == renderer.Move {
					off = 0
				}
				all := unsafe.Slice((*renderer.Point)(pts), off+k)
				points = slices.Clone(all[off:])
			}
			if !yield(renderer.Command{Verb: v, Points: points}) {
				return
			}
		}
	}
}

const entryCount = 36

// table is the engine-facing renderer table of one Dispatch. purego
// callbacks cannot be released, so a table whose files are all released
// goes to a free list and is rebound to the next Dispatch that needs one.
type table struct {
	entries [entryCount]uintptr
	pinner  runtime.Pinner
	d       atomic.Pointer[Dispatch]
	files   int // guarded by native.mu

	mu     sync.Mutex
	mapped map[Handle]*runtime.Pinner
}

func (t *table) dispatch() *Dispatch {
	return t.d.Load()
}

// acquire returns the table bound to d, binding a free or new one if
// there is none, and counts one more file on it.
func (n *native) acquire(d *Dispatch) *table {
	n.mu.Lock()
	defer n.mu.Unlock()

	t, ok := n.tables[d]
	if !ok {
		if k := len(n.free); k > 0 {
			t = n.free[k-1]
			n.free = n.free[:k-1]
		} else {
			t = &table{mapped: make(map[Handle]*runtime.Pinner)}
			n.build(t)
		}
		t.d.Store(d)
		n.tables[d] = t
	}
	t.files++
	return t
}

// release drops one file from t and frees the table when it was the last.
func (n *native) release(t *table) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.releaseLocked(t)
}

func (n *native) releaseLocked(t *table) {
	t.files--
	if t.files > 0 {
		return
	}
	delete(n.tables, t.dispatch())
	t.d.Store(nil)
	t.mu.Lock()
	for h, p := range t.mapped {
		p.Unpin()
		delete(t.mapped, h)
	}
	t.mu.Unlock()
	n.free = append(n.free, t)
}

func (n *native) bind(f File, t *table) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.files[f] = t
}

func (n *native) unbind(f File) {
	n.mu.Lock()
	defer n.mu.Unlock()
	t, ok := n.files[f]
	if !ok {
		return
	}
	delete(n.files, f)
	n.releaseLocked(t)
}

// bound returns the table bound to d, or nil.
func (n *native) bound(d *Dispatch) *table {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.tables[d]
}

func (t *table) unpin(h Handle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if p, ok := t.mapped[h]; ok {
		p.Unpin()
		delete(t.mapped, h)
	}
}

// fill builds the callbacks in the engine's table order. Every callback
// returns a uintptr; the engine ignores it for void entries.
func (t *table) fill(n *native) {
	cb := purego.NewCallback
	e := &t.entries

	e[0] = cb(func(typ, flags, size uintptr) uintptr {
		return uintptr(t.dispatch().BufferNew(renderer.BufferType(uint8(typ)), renderer.BufferFlags(uint32(flags)), int(size)))
	})
	e[1] = cb(func(b uintptr) uintptr {
		t.unpin(Handle(b))
		t.dispatch().BufferRelease(Handle(b))
		return 0
	})
	e[2] = cb(func(b uintptr) uintptr {
		data := t.dispatch().BufferMap(Handle(b))
		if len(data) == 0 {
			return 0
		}
		p := new(runtime.Pinner)
		p.Pin(&data[0])
		t.mu.Lock()
		if old, ok := t.mapped[Handle(b)]; ok {
			old.Unpin()
		}
		t.mapped[Handle(b)] = p
		t.mu.Unlock()
		return uintptr(unsafe.Pointer(&data[0]))
	})
	e[3] = cb(func(b uintptr) uintptr {
		t.dispatch().BufferUnmap(Handle(b))
		t.unpin(Handle(b))
		return 0
	})
	e[4] = cb(func() uintptr { return uintptr(t.dispatch().PathDefault()) })
	e[5] = cb(func(commands unsafe.Pointer, count, rule uintptr) uintptr {
		return uintptr(t.dispatch().PathNew(n.commands(commands, count), renderer.FillRule(uint8(rule))))
	})
	e[6] = cb(func(p uintptr) uintptr { t.dispatch().PathRelease(Handle(p)); return 0 })
	e[7] = cb(func(p uintptr) uintptr { t.dispatch().PathReset(Handle(p)); return 0 })
	e[8] = cb(func(p, from uintptr, m unsafe.Pointer) uintptr {
		t.dispatch().PathExtend(Handle(p), Handle(from), renderer.Mat2D(*(*[6]float32)(m)))
		return 0
	})
	e[9] = cb(func(p, rule uintptr) uintptr {
		t.dispatch().PathSetFillRule(Handle(p), renderer.FillRule(uint8(rule)))
		return 0
	})
	e[10] = cb(func(p uintptr, x, y float32) uintptr { t.dispatch().PathMoveTo(Handle(p), x, y); return 0 })
	e[11] = cb(func(p uintptr, x, y float32) uintptr { t.dispatch().PathLineTo(Handle(p), x, y); return 0 })
	e[12] = cb(func(p uintptr, ox, oy, ix, iy, x, y float32) uintptr {
		t.dispatch().PathCubicTo(Handle(p), ox, oy, ix, iy, x, y)
		return 0
	})
	e[13] = cb(func(p uintptr) uintptr { t.dispatch().PathClose(Handle(p)); return 0 })
	e[14] = cb(func() uintptr { return uintptr(t.dispatch().PaintDefault()) })
	e[15] = cb(func(p uintptr) uintptr { t.dispatch().PaintRelease(Handle(p)); return 0 })
	e[16] = cb(func(p, style uintptr) uintptr {
		t.dispatch().PaintSetStyle(Handle(p), renderer.PaintStyle(uint8(style)))
		return 0
	})
	e[17] = cb(func(p, color uintptr) uintptr {
		t.dispatch().PaintSetColor(Handle(p), renderer.ARGB(uint32(color)))
		return 0
	})
	e[18] = cb(func(p uintptr, thickness float32) uintptr {
		t.dispatch().PaintSetThickness(Handle(p), thickness)
		return 0
	})
	e[19] = cb(func(p, join uintptr) uintptr {
		t.dispatch().PaintSetJoin(Handle(p), renderer.StrokeJoin(uint8(join)))
		return 0
	})
	e[20] = cb(func(p, c uintptr) uintptr {
		t.dispatch().PaintSetCap(Handle(p), renderer.StrokeCap(uint8(c)))
		return 0
	})
	e[21] = cb(func(p, mode uintptr) uintptr {
		t.dispatch().PaintSetBlendMode(Handle(p), renderer.BlendMode(uint8(mode)))
		return 0
	})
	e[22] = cb(func(p, g uintptr) uintptr { t.dispatch().PaintSetGradient(Handle(p), Handle(g)); return 0 })
	e[23] = cb(func(p uintptr) uintptr { t.dispatch().PaintInvalidateStroke(Handle(p)); return 0 })
	e[24] = cb(func(sx, sy, ex, ey float32, colors, stops unsafe.Pointer, count uintptr) uintptr {
		c, s := gradientStops(colors, stops, count)
		return uintptr(t.dispatch().GradientNewLinear(sx, sy, ex, ey, c, s))
	})
	e[25] = cb(func(cx, cy, radius float32, colors, stops unsafe.Pointer, count uintptr) uintptr {
		c, s := gradientStops(colors, stops, count)
		return uintptr(t.dispatch().GradientNewRadial(cx, cy, radius, c, s))
	})
	e[26] = cb(func(g uintptr) uintptr { t.dispatch().GradientRelease(Handle(g)); return 0 })
	e[27] = cb(func(data unsafe.Pointer, size uintptr) uintptr {
		return uintptr(t.dispatch().ImageDecode(cBytes(data, size)))
	})
	e[28] = cb(func(img uintptr) uintptr { t.dispatch().ImageRelease(Handle(img)); return 0 })
	e[29] = cb(func(r uintptr) uintptr { t.dispatch().RendererStatePush(Handle(r)); return 0 })
	e[30] = cb(func(r uintptr) uintptr { t.dispatch().RendererStatePop(Handle(r)); return 0 })
	e[31] = cb(func(r uintptr, m unsafe.Pointer) uintptr {
		t.dispatch().RendererTransform(Handle(r), renderer.Mat2D(*(*[6]float32)(m)))
		return 0
	})
	e[32] = cb(func(r, path uintptr) uintptr { t.dispatch().RendererSetClip(Handle(r), Handle(path)); return 0 })
	e[33] = cb(func(r, path, paint uintptr) uintptr {
		t.dispatch().RendererDrawPath(Handle(r), Handle(path), Handle(paint))
		return 0
	})
	e[34] = cb(func(r, img, blend uintptr, opacity float32) uintptr {
		t.dispatch().RendererDrawImage(Handle(r), Handle(img), renderer.BlendMode(uint8(blend)), opacity)
		return 0
	})
	e[35] = cb(func(r, img, vertices, uvs, indices, blend uintptr, opacity float32) uintptr {
		t.dispatch().RendererDrawImageMesh(Handle(r), Handle(img), Handle(vertices), Handle(uvs), Handle(indices),
			renderer.BlendMode(uint8(blend)), opacity)
		return 0
	})
}

func gradientStops(colors, stops unsafe.Pointer, count uintptr) ([]renderer.ARGB, []float32) {
	if count == 0 || colors == nil || stops == nil {
		return nil, nil
	}
	return slices.Clone(unsafe.Slice((*renderer.ARGB)(colors), count)),
		slices.Clone(unsafe.Slice((*float32)(stops), count))
}
