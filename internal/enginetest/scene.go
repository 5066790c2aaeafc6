// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package enginetest

import (
	"math"

	"github.com/gogpu/rive/ffi"
	"github.com/gogpu/rive/renderer"
)

// sceneObj is the behavior shared by animations and state machines.
type sceneObj interface {
	artboard() *artboard
	name() string
	loopMode() ffi.Loop
	duration() float32
	advanceAndApply(e *Engine, elapsed float32) bool
	pointerDown(x, y float32)
}

func (a *animation) artboard() *artboard      { return a.ab }
func (a *animation) name() string             { return a.def.Name }
func (a *animation) loopMode() ffi.Loop       { return a.loop }
func (a *animation) duration() float32        { return a.def.Duration }
func (a *animation) pointerDown(_, _ float32) {}

func (a *animation) advanceAndApply(_ *Engine, elapsed float32) bool {
	keepGoing := a.advance(elapsed)
	a.apply(1)
	return keepGoing
}

func (a *animation) atEnd() bool {
	if a.forwards {
		return a.time >= a.def.Duration
	}
	return a.time <= 0
}

// advance moves the time cursor. A one-shot animation that is already at
// its end reports false.
func (a *animation) advance(elapsed float32) bool {
	a.didLoop = false
	dur := a.def.Duration
	prev := a.time
	if a.forwards {
		a.time += elapsed
	} else {
		a.time -= elapsed
	}

	switch a.loop {
	case ffi.LoopLoop:
		if dur > 0 && (a.time >= dur || a.time < 0) {
			a.time = float32(math.Mod(float64(a.time), float64(dur)))
			if a.time < 0 {
				a.time += dur
			}
			a.didLoop = true
		}
	case ffi.LoopPingPong:
		switch {
		case a.time > dur:
			a.time = max(2*dur-a.time, 0)
			a.forwards = false
			a.didLoop = true
		case a.time < 0:
			a.time = min(-a.time, dur)
			a.forwards = true
			a.didLoop = true
		}
	default:
		a.time = min(max(a.time, 0), dur)
		if a.atEnd() {
			return a.time != prev
		}
	}
	return true
}

func (a *animation) apply(mix float32) {
	a.ab.offset = renderer.Point{
		X: a.def.Velocity.X * a.time * mix,
		Y: a.def.Velocity.Y * a.time * mix,
	}
}

func (s *stateMachine) artboard() *artboard { return s.ab }
func (s *stateMachine) name() string        { return s.def.Name }
func (s *stateMachine) loopMode() ffi.Loop  { return ffi.LoopOneShot }
func (s *stateMachine) duration() float32   { return -1 }

// advanceAndApply replaces the reported events with the pending ones. It
// reports whether any input, pointer or event changed the machine.
func (s *stateMachine) advanceAndApply(e *Engine, _ float32) bool {
	for _, id := range s.reported {
		delete(e.objects, id)
	}
	s.reported = s.reported[:0]
	for _, ev := range s.pending {
		s.reported = append(s.reported, e.add(&event{def: ev, delay: ev.Delay}))
	}
	s.pending = s.pending[:0]

	changed := s.changed || len(s.reported) > 0
	s.changed = false
	return changed
}

func (s *stateMachine) pointerDown(x, y float32) {
	for _, l := range s.def.Listeners {
		if x >= l.Rect[0] && y >= l.Rect[1] && x <= l.Rect[2] && y <= l.Rect[3] {
			s.pending = append(s.pending, l.Events...)
			s.changed = true
		}
	}
}

func (e *Engine) scene(op string, s ffi.Scene) (sceneObj, bool) {
	o, ok := e.objects[uintptr(s)].(sceneObj)
	if !ok {
		e.violate("%s: invalid scene %d", op, s)
	}
	return o, ok
}

func (e *Engine) newAnimation(ab *artboard, def *AnimationDef) ffi.LinearAnimation {
	ab.scenes++
	return ffi.LinearAnimation(e.add(&animation{ab: ab, def: def, forwards: true, loop: def.Loop}))
}

func (e *Engine) newStateMachine(ab *artboard, def *StateMachineDef) ffi.StateMachine {
	sm := &stateMachine{ab: ab, def: def, changed: true}
	for i := range def.Inputs {
		in := &def.Inputs[i]
		sm.inputs = append(sm.inputs, e.add(&input{sm: sm, def: in, boolean: in.Bool, number: in.Number}))
	}
	ab.scenes++
	return ffi.StateMachine(e.add(sm))
}

// InstantiateLinearAnimation implements ffi.Engine.
func (e *Engine) InstantiateLinearAnimation(a ffi.Artboard, index *uint) (ffi.LinearAnimation, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ab, ok := get[*artboard](e, "instantiate_linear_animation", uintptr(a))
	if !ok {
		return 0, false
	}
	i, ok := pick(index, len(ab.def.Animations))
	if !ok {
		return 0, false
	}
	return e.newAnimation(ab, &ab.def.Animations[i]), true
}

// InstantiateLinearAnimationByName implements ffi.Engine.
func (e *Engine) InstantiateLinearAnimationByName(a ffi.Artboard, name []byte) (ffi.LinearAnimation, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ab, ok := get[*artboard](e, "instantiate_linear_animation_by_name", uintptr(a))
	if !ok {
		return 0, false
	}
	for i := range ab.def.Animations {
		if ab.def.Animations[i].Name == string(name) {
			return e.newAnimation(ab, &ab.def.Animations[i]), true
		}
	}
	return 0, false
}

func (e *Engine) animation(op string, la ffi.LinearAnimation) (*animation, bool) {
	return get[*animation](e, op, uintptr(la))
}

// LinearAnimationTime implements ffi.Engine.
func (e *Engine) LinearAnimationTime(la ffi.LinearAnimation) float32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if a, ok := e.animation("linear_animation_time", la); ok {
		return a.time
	}
	return 0
}

// LinearAnimationSetTime implements ffi.Engine.
func (e *Engine) LinearAnimationSetTime(la ffi.LinearAnimation, seconds float32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if a, ok := e.animation("linear_animation_set_time", la); ok {
		a.time = seconds
	}
}

// LinearAnimationIsForwards implements ffi.Engine.
func (e *Engine) LinearAnimationIsForwards(la ffi.LinearAnimation) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	a, ok := e.animation("linear_animation_is_forwards", la)
	return ok && a.forwards
}

// LinearAnimationSetIsForwards implements ffi.Engine.
func (e *Engine) LinearAnimationSetIsForwards(la ffi.LinearAnimation, forwards bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if a, ok := e.animation("linear_animation_set_is_forwards", la); ok {
		a.forwards = forwards
	}
}

// LinearAnimationAdvance implements ffi.Engine.
func (e *Engine) LinearAnimationAdvance(la ffi.LinearAnimation, elapsed float32) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	a, ok := e.animation("linear_animation_advance", la)
	return ok && a.advance(elapsed)
}

// LinearAnimationApply implements ffi.Engine.
func (e *Engine) LinearAnimationApply(la ffi.LinearAnimation, mix float32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if a, ok := e.animation("linear_animation_apply", la); ok {
		a.apply(mix)
	}
}

// LinearAnimationDidLoop implements ffi.Engine.
func (e *Engine) LinearAnimationDidLoop(la ffi.LinearAnimation) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	a, ok := e.animation("linear_animation_did_loop", la)
	return ok && a.didLoop
}

// LinearAnimationSetLoop implements ffi.Engine.
func (e *Engine) LinearAnimationSetLoop(la ffi.LinearAnimation, loop ffi.Loop) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if a, ok := e.animation("linear_animation_set_loop", la); ok {
		a.loop = loop
	}
}

// LinearAnimationIsDone implements ffi.Engine.
func (e *Engine) LinearAnimationIsDone(la ffi.LinearAnimation) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	a, ok := e.animation("linear_animation_is_done", la)
	return ok && a.loop == ffi.LoopOneShot && a.atEnd()
}

// InstantiateStateMachine implements ffi.Engine.
func (e *Engine) InstantiateStateMachine(a ffi.Artboard, index *uint) (ffi.StateMachine, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ab, ok := get[*artboard](e, "instantiate_state_machine", uintptr(a))
	if !ok {
		return 0, false
	}
	i, ok := pick(index, len(ab.def.StateMachines))
	if !ok {
		return 0, false
	}
	return e.newStateMachine(ab, &ab.def.StateMachines[i]), true
}

// InstantiateStateMachineByName implements ffi.Engine.
func (e *Engine) InstantiateStateMachineByName(a ffi.Artboard, name []byte) (ffi.StateMachine, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ab, ok := get[*artboard](e, "instantiate_state_machine_by_name", uintptr(a))
	if !ok {
		return 0, false
	}
	for i := range ab.def.StateMachines {
		if ab.def.StateMachines[i].Name == string(name) {
			return e.newStateMachine(ab, &ab.def.StateMachines[i]), true
		}
	}
	return 0, false
}

func (e *Engine) stateMachine(op string, sm ffi.StateMachine) (*stateMachine, bool) {
	return get[*stateMachine](e, op, uintptr(sm))
}

// StateMachineEventCount implements ffi.Engine.
func (e *Engine) StateMachineEventCount(sm ffi.StateMachine) uint {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.stateMachine("state_machine_event_count", sm)
	if !ok {
		return 0
	}
	return uint(len(s.reported))
}

// StateMachineEvent implements ffi.Engine.
func (e *Engine) StateMachineEvent(sm ffi.StateMachine, index uint) (ffi.Event, float32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.stateMachine("state_machine_get_event", sm)
	if !ok || index >= uint(len(s.reported)) {
		return 0, 0
	}
	id := s.reported[index]
	return ffi.Event(id), e.objects[id].(*event).delay
}

// EventName implements ffi.Engine.
func (e *Engine) EventName(ev ffi.Event) []byte {
	e.mu.Lock()
	defer e.mu.Unlock()
	o, ok := get[*event](e, "event_name", uintptr(ev))
	if !ok {
		return nil
	}
	return []byte(o.def.Name)
}

// EventPropertyCount implements ffi.Engine.
func (e *Engine) EventPropertyCount(ev ffi.Event) uint {
	e.mu.Lock()
	defer e.mu.Unlock()
	o, ok := get[*event](e, "event_property_count", uintptr(ev))
	if !ok {
		return 0
	}
	return uint(len(o.def.Properties))
}

// EventProperty implements ffi.Engine.
func (e *Engine) EventProperty(ev ffi.Event, index uint) ffi.RawProperty {
	e.mu.Lock()
	defer e.mu.Unlock()
	o, ok := get[*event](e, "event_property", uintptr(ev))
	if !ok || index >= uint(len(o.def.Properties)) {
		return ffi.RawProperty{}
	}
	p := o.def.Properties[index]
	key := []byte(p.Key)
	if p.RawKey != nil {
		key = append([]byte(nil), p.RawKey...)
	}
	return ffi.RawProperty{
		Key:    key,
		Tag:    p.Tag,
		Bool:   p.Bool,
		Number: p.Number,
		String: []byte(p.String),
	}
}

// StateMachineInputCount implements ffi.Engine.
func (e *Engine) StateMachineInputCount(sm ffi.StateMachine) uint {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.stateMachine("state_machine_input_count", sm)
	if !ok {
		return 0
	}
	return uint(len(s.inputs))
}

// StateMachineInput implements ffi.Engine.
func (e *Engine) StateMachineInput(sm ffi.StateMachine, index uint) (ffi.InputTag, ffi.Input) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.stateMachine("state_machine_get_input", sm)
	if !ok || index >= uint(len(s.inputs)) {
		return 0, 0
	}
	id := s.inputs[index]
	return e.objects[id].(*input).def.Tag, ffi.Input(id)
}

func (e *Engine) inputByName(op string, sm ffi.StateMachine, tag ffi.InputTag, name []byte) (ffi.Input, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.stateMachine(op, sm)
	if !ok {
		return 0, false
	}
	for _, id := range s.inputs {
		in := e.objects[id].(*input)
		if in.def.Tag == tag && in.def.Name == string(name) {
			return ffi.Input(id), true
		}
	}
	return 0, false
}

// StateMachineBool implements ffi.Engine.
func (e *Engine) StateMachineBool(sm ffi.StateMachine, name []byte) (ffi.Input, bool) {
	return e.inputByName("state_machine_get_bool", sm, ffi.InputBool, name)
}

// StateMachineNumber implements ffi.Engine.
func (e *Engine) StateMachineNumber(sm ffi.StateMachine, name []byte) (ffi.Input, bool) {
	return e.inputByName("state_machine_get_number", sm, ffi.InputNumber, name)
}

// StateMachineTrigger implements ffi.Engine.
func (e *Engine) StateMachineTrigger(sm ffi.StateMachine, name []byte) (ffi.Input, bool) {
	return e.inputByName("state_machine_get_trigger", sm, ffi.InputTrigger, name)
}

func (e *Engine) input(op string, in ffi.Input, tag ffi.InputTag) (*input, bool) {
	i, ok := get[*input](e, op, uintptr(in))
	if ok && i.def.Tag != tag {
		e.violate("%s: input %q has the wrong kind", op, i.def.Name)
		return nil, false
	}
	return i, ok
}

// InputName implements ffi.Engine.
func (e *Engine) InputName(in ffi.Input) []byte {
	e.mu.Lock()
	defer e.mu.Unlock()
	i, ok := get[*input](e, "input_name", uintptr(in))
	if !ok {
		return nil
	}
	return []byte(i.def.Name)
}

// BoolGet implements ffi.Engine.
func (e *Engine) BoolGet(in ffi.Input) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	i, ok := e.input("bool_get", in, ffi.InputBool)
	return ok && i.boolean
}

// BoolSet implements ffi.Engine.
func (e *Engine) BoolSet(in ffi.Input, v bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if i, ok := e.input("bool_set", in, ffi.InputBool); ok && i.boolean != v {
		i.boolean = v
		i.sm.changed = true
	}
}

// NumberGet implements ffi.Engine.
func (e *Engine) NumberGet(in ffi.Input) float32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if i, ok := e.input("number_get", in, ffi.InputNumber); ok {
		return i.number
	}
	return 0
}

// NumberSet implements ffi.Engine.
func (e *Engine) NumberSet(in ffi.Input, v float32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if i, ok := e.input("number_set", in, ffi.InputNumber); ok && i.number != v {
		i.number = v
		i.sm.changed = true
	}
}

// TriggerFire implements ffi.Engine.
func (e *Engine) TriggerFire(in ffi.Input) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if i, ok := e.input("trigger_fire", in, ffi.InputTrigger); ok {
		i.sm.pending = append(i.sm.pending, i.def.Fires...)
		i.sm.changed = true
	}
}

// SceneRelease implements ffi.Engine.
func (e *Engine) SceneRelease(s ffi.Scene) {
	e.mu.Lock()
	defer e.mu.Unlock()

	o, ok := e.scene("scene_release", s)
	if !ok {
		return
	}
	if _, ok := e.objects[o.artboard().fileID]; !ok {
		e.violate("scene_release: file released before scene")
	}
	if sm, ok := o.(*stateMachine); ok {
		for _, id := range sm.inputs {
			delete(e.objects, id)
		}
		for _, id := range sm.reported {
			delete(e.objects, id)
		}
	}
	o.artboard().scenes--
	delete(e.objects, uintptr(s))
}

// SceneName implements ffi.Engine.
func (e *Engine) SceneName(s ffi.Scene) []byte {
	e.mu.Lock()
	defer e.mu.Unlock()
	if o, ok := e.scene("scene_name", s); ok {
		return []byte(o.name())
	}
	return nil
}

// SceneWidth implements ffi.Engine.
func (e *Engine) SceneWidth(s ffi.Scene) float32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if o, ok := e.scene("scene_width", s); ok {
		return o.artboard().def.Width
	}
	return 0
}

// SceneHeight implements ffi.Engine.
func (e *Engine) SceneHeight(s ffi.Scene) float32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if o, ok := e.scene("scene_height", s); ok {
		return o.artboard().def.Height
	}
	return 0
}

// SceneLoop implements ffi.Engine.
func (e *Engine) SceneLoop(s ffi.Scene) ffi.Loop {
	e.mu.Lock()
	defer e.mu.Unlock()
	if o, ok := e.scene("scene_loop", s); ok {
		return o.loopMode()
	}
	return ffi.LoopOneShot
}

// SceneIsTranslucent implements ffi.Engine.
func (e *Engine) SceneIsTranslucent(s ffi.Scene) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	o, ok := e.scene("scene_is_translucent", s)
	return ok && o.artboard().def.Translucent
}

// SceneDuration implements ffi.Engine.
func (e *Engine) SceneDuration(s ffi.Scene) float32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if o, ok := e.scene("scene_duration", s); ok {
		return o.duration()
	}
	return -1
}

// SceneAdvanceAndApply implements ffi.Engine.
func (e *Engine) SceneAdvanceAndApply(s ffi.Scene, elapsed float32) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	o, ok := e.scene("scene_advance_and_apply", s)
	return ok && o.advanceAndApply(e, elapsed)
}

// ScenePointerDown implements ffi.Engine. x and y are in artboard space.
func (e *Engine) ScenePointerDown(s ffi.Scene, x, y float32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if o, ok := e.scene("scene_pointer_down", s); ok {
		o.pointerDown(x, y)
	}
}

// ScenePointerMove implements ffi.Engine.
func (e *Engine) ScenePointerMove(s ffi.Scene, _, _ float32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scene("scene_pointer_move", s)
}

// ScenePointerUp implements ffi.Engine.
func (e *Engine) ScenePointerUp(s ffi.Scene, _, _ float32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scene("scene_pointer_up", s)
}

// SceneDraw implements ffi.Engine. Each shape is drawn in its own state
// level with its clip and translation applied.
func (e *Engine) SceneDraw(s ffi.Scene, r ffi.Handle, d *ffi.Dispatch) {
	e.mu.Lock()
	o, ok := e.scene("scene_draw", s)
	if !ok {
		e.mu.Unlock()
		return
	}
	ab := o.artboard()
	if d != ab.file.d {
		e.violate("scene_draw: dispatch differs from the one the file was loaded with")
	}
	offset := ab.offset
	shapes := ab.shapes
	e.mu.Unlock()

	for i := range shapes {
		sh := &shapes[i]
		def := sh.def
		d.RendererStatePush(r)
		d.RendererTransform(r, renderer.Mat2D{1, 0, 0, 1, offset.X + def.Translate.X, offset.Y + def.Translate.Y})
		if sh.clip != 0 {
			d.RendererSetClip(r, sh.clip)
		}

		blend := def.Blend
		if blend == 0 {
			blend = renderer.SrcOver
		}
		opacity := def.Opacity
		if opacity == 0 {
			opacity = 1
		}
		switch {
		case sh.image != 0 && sh.vertices != 0:
			d.RendererDrawImageMesh(r, sh.image, sh.vertices, sh.uvs, sh.indices, blend, opacity)
		case sh.image != 0:
			d.RendererDrawImage(r, sh.image, blend, opacity)
		case sh.path != 0:
			d.RendererDrawPath(r, sh.path, sh.paint)
		}
		d.RendererStatePop(r)
	}
}
