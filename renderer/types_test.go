// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package renderer

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestMat2DMul(t *testing.T) {
	translate := Mat2D{1, 0, 0, 1, 10, 20}
	scale := Mat2D{2, 0, 0, 3, 0, 0}

	// Scale first, then translate.
	x, y := translate.Mul(scale).Apply(1, 1)
	if x != 12 || y != 23 {
		t.Errorf("translate*scale maps (1,1) to (%v,%v), want (12,23)", x, y)
	}
	x, y = scale.Mul(translate).Apply(1, 1)
	if x != 22 || y != 63 {
		t.Errorf("scale*translate maps (1,1) to (%v,%v), want (22,63)", x, y)
	}
	if Identity.Mul(scale) != scale {
		t.Error("Identity.Mul(m) != m")
	}
}

func TestMat2DInvert(t *testing.T) {
	m := Mat2D{0.5, 0.25, -1, 2, 3, -4}
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Invert() ok = false")
	}
	x, y := inv.Apply(m.Apply(5, 7))
	if !near(x, 5) || !near(y, 7) {
		t.Errorf("inv(m(5,7)) = (%v,%v), want (5,7)", x, y)
	}
	if _, ok := (Mat2D{}).Invert(); ok {
		t.Error("Invert() of zero matrix ok = true")
	}
}

func TestARGB(t *testing.T) {
	r, g, b, a := ARGB(0xff102030).RGBA()
	if r != 0x10 || g != 0x20 || b != 0x30 || a != 0xff {
		t.Errorf("RGBA() = %x %x %x %x", r, g, b, a)
	}
}

func TestVerbPointCount(t *testing.T) {
	tests := []struct {
		verb Verb
		want int
	}{
		{Move, 1}, {Line, 1}, {Cubic, 3}, {Close, 0}, {Verb(9), 0},
	}
	for _, tt := range tests {
		if got := tt.verb.PointCount(); got != tt.want {
			t.Errorf("%v.PointCount() = %d, want %d", tt.verb, got, tt.want)
		}
	}
}

func TestBlendModeValid(t *testing.T) {
	if !Multiply.IsValid() || BlendMode(4).IsValid() {
		t.Error("IsValid() mismatch")
	}
	if Luminosity.String() != "Luminosity" || BlendMode(1).String() != unknownStr {
		t.Error("String() mismatch")
	}
}
