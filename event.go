// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rive

import (
	"fmt"
	"time"

	"github.com/gogpu/rive/ffi"
)

// Event is an event reported by a state machine.
type Event struct {
	Name string

	// Delay is how long after the start of the advance the event fired.
	Delay time.Duration

	Properties map[string]Property
}

// Property is an event property value: a BoolProperty, NumberProperty or
// StringProperty.
type Property interface {
	isProperty()
}

// BoolProperty is a boolean event property.
type BoolProperty bool

// NumberProperty is a numeric event property.
type NumberProperty float32

// StringProperty is a text event property.
type StringProperty string

func (BoolProperty) isProperty()   {}
func (NumberProperty) isProperty() {}
func (StringProperty) isProperty() {}

func propertyValue(p ffi.RawProperty) (Property, error) {
	switch p.Tag {
	case ffi.PropertyBool:
		return BoolProperty(p.Bool), nil
	case ffi.PropertyNumber:
		return NumberProperty(p.Number), nil
	case ffi.PropertyString:
		s, err := ffi.String(p.String)
		if err != nil {
			return nil, err
		}
		return StringProperty(s), nil
	default:
		return nil, fmt.Errorf("rive: unknown property tag %d", p.Tag)
	}
}
