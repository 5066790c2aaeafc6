// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package enginetest provides an in-memory ffi.Engine for tests.
//
// The engine plays a small fixture format instead of real animation
// files: a "RIVE" magic, a major version byte, a little-endian uint32
// body length and a JSON [Document]. It creates and draws its resources
// through the ffi.Dispatch it is given, exactly like the native engine,
// and records ownership violations so tests can assert on them.
package enginetest

import (
	"encoding/binary"
	"encoding/json"

	"github.com/gogpu/rive/ffi"
	"github.com/gogpu/rive/renderer"
)

// Version is the only major version the engine imports.
const Version = 7

const headerSize = 4 + 1 + 4

var magic = [4]byte{'R', 'I', 'V', 'E'}

// Document is the content of a fixture file.
type Document struct {
	Artboards []ArtboardDef `json:"artboards"`
}

// ArtboardDef describes an artboard.
type ArtboardDef struct {
	Name          string            `json:"name"`
	Width         float32           `json:"width"`
	Height        float32           `json:"height"`
	Translucent   bool              `json:"translucent,omitempty"`
	Shapes        []ShapeDef        `json:"shapes,omitempty"`
	Components    []ComponentDef    `json:"components,omitempty"`
	Animations    []AnimationDef    `json:"animations,omitempty"`
	StateMachines []StateMachineDef `json:"stateMachines,omitempty"`
}

// Segment is one path command.
type Segment struct {
	Verb   renderer.Verb    `json:"verb"`
	Points []renderer.Point `json:"points,omitempty"`
}

// GradientDef describes a gradient fill.
type GradientDef struct {
	Radial bool            `json:"radial,omitempty"`
	Start  renderer.Point  `json:"start"`
	End    renderer.Point  `json:"end"`
	Radius float32         `json:"radius,omitempty"`
	Colors []renderer.ARGB `json:"colors"`
	Stops  []float32       `json:"stops"`
}

// MeshDef describes a textured triangle mesh.
type MeshDef struct {
	Vertices []renderer.Point `json:"vertices"`
	UVs      []renderer.Point `json:"uvs"`
	Indices  []uint16         `json:"indices"`
}

// ShapeDef describes one drawable. A shape with Image set draws the
// image, or the mesh when Mesh is also set; otherwise it draws Path.
type ShapeDef struct {
	Path      []Segment           `json:"path,omitempty"`
	FillRule  renderer.FillRule   `json:"fillRule,omitempty"`
	Color     renderer.ARGB       `json:"color,omitempty"`
	Stroke    float32             `json:"stroke,omitempty"`
	Join      renderer.StrokeJoin `json:"join,omitempty"`
	Cap       renderer.StrokeCap  `json:"cap,omitempty"`
	Blend     renderer.BlendMode  `json:"blend,omitempty"`
	Gradient  *GradientDef        `json:"gradient,omitempty"`
	Clip      []Segment           `json:"clip,omitempty"`
	Image     []byte              `json:"image,omitempty"`
	Mesh      *MeshDef            `json:"mesh,omitempty"`
	Opacity   float32             `json:"opacity,omitempty"`
	Translate renderer.Point      `json:"translate"`
}

// ComponentDef describes a named component. TypeID 135 is a text run
// whose value is Text.
type ComponentDef struct {
	Name   string `json:"name"`
	TypeID uint16 `json:"typeId"`
	Text   string `json:"text,omitempty"`
}

// AnimationDef describes a linear animation that translates the
// artboard content by Velocity units per second.
type AnimationDef struct {
	Name     string         `json:"name"`
	Duration float32        `json:"duration"`
	Loop     ffi.Loop       `json:"loop"`
	Velocity renderer.Point `json:"velocity"`
}

// PropertyDef is an event property.
type PropertyDef struct {
	Key    string          `json:"key"`
	Tag    ffi.PropertyTag `json:"tag"`
	Bool   bool            `json:"bool,omitempty"`
	Number float32         `json:"number,omitempty"`
	String string          `json:"string,omitempty"`
	// RawKey overrides Key with arbitrary bytes, for invalid UTF-8 tests.
	RawKey []byte          `json:"rawKey,omitempty"`
}

// EventDef describes an event reported by a state machine.
type EventDef struct {
	Name       string        `json:"name"`
	Delay      float32       `json:"delay,omitempty"`
	Properties []PropertyDef `json:"properties,omitempty"`
}

// InputDef describes a state machine input. Firing a trigger reports
// Fires on the next advance.
type InputDef struct {
	Name   string       `json:"name"`
	Tag    ffi.InputTag `json:"tag"`
	Bool   bool         `json:"bool,omitempty"`
	Number float32      `json:"number,omitempty"`
	Fires  []EventDef   `json:"fires,omitempty"`
}

// ListenerDef reports Events when the pointer goes down inside Rect,
// given in artboard space as min x, min y, max x, max y.
type ListenerDef struct {
	Rect   [4]float32 `json:"rect"`
	Events []EventDef `json:"events"`
}

// StateMachineDef describes a state machine.
type StateMachineDef struct {
	Name      string        `json:"name"`
	Inputs    []InputDef    `json:"inputs,omitempty"`
	Listeners []ListenerDef `json:"listeners,omitempty"`
}

// Encode serializes doc as a fixture file of the supported version.
func Encode(doc Document) []byte {
	return EncodeVersion(doc, Version)
}

// EncodeVersion serializes doc with the given major version.
func EncodeVersion(doc Document, major uint8) []byte {
	body, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	out := make([]byte, headerSize, headerSize+len(body))
	copy(out, magic[:])
	out[4] = major
	binary.LittleEndian.PutUint32(out[5:], uint32(len(body))) //nolint:gosec // fixtures are small
	return append(out, body...)
}

// decode parses a fixture file.
func decode(data []byte) (*Document, ffi.FileResult) {
	if len(data) < headerSize || [4]byte(data[:4]) != magic {
		return nil, ffi.Malformed
	}
	if data[4] != Version {
		return nil, ffi.UnsupportedVersion
	}
	n := binary.LittleEndian.Uint32(data[5:])
	body := data[headerSize:]
	if uint64(n) != uint64(len(body)) {
		return nil, ffi.Malformed
	}
	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, ffi.Malformed
	}
	return &doc, ffi.Success
}
