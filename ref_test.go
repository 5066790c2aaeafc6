// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rive

import "testing"

func TestRefFreesOnLastRelease(t *testing.T) {
	freed := 0
	var r ref
	r.init(func() { freed++ })
	r.retain()
	r.retain()

	for i := range 2 {
		r.release()
		if freed != 0 {
			t.Fatalf("freed after release %d, want after the last", i+1)
		}
	}
	r.release()
	if freed != 1 {
		t.Errorf("freed = %d, want 1", freed)
	}
}

func TestRefOverRelease(t *testing.T) {
	var r ref
	r.init(func() {})
	r.release()

	defer func() {
		if recover() == nil {
			t.Error("release() past zero did not panic")
		}
	}()
	r.release()
}

type countingReleaser struct{ n int }

func (c *countingReleaser) release() { c.n++ }

func TestCloserCloseOnce(t *testing.T) {
	type owner struct{ closer }
	cr := &countingReleaser{}
	o := &owner{}
	track(o, &o.closer, cr)

	o.close()
	o.close()
	if cr.n != 1 {
		t.Errorf("releases = %d, want 1", cr.n)
	}

	defer func() {
		if r := recover(); r != ErrClosed {
			t.Errorf("check() after close panicked with %v, want %v", r, ErrClosed)
		}
	}()
	o.check()
}

func TestPick(t *testing.T) {
	byIndex := func(i *uint) (string, bool) {
		if i == nil {
			return "default", true
		}
		return "index", *i < 2
	}
	byName := func(name []byte) (string, bool) {
		return string(name), len(name) > 0
	}
	tests := []struct {
		h    Handle
		want string
		ok   bool
	}{
		{Default(), "default", true},
		{Index(1), "index", true},
		{Index(2), "index", false},
		{Name("walk"), "walk", true},
		{Name(""), "", false},
	}
	for _, tt := range tests {
		got, ok := pick(tt.h, byIndex, byName)
		if got != tt.want || ok != tt.ok {
			t.Errorf("pick(%v) = %q, %v, want %q, %v", tt.h, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRefRetainAfterFree(t *testing.T) {
	var r ref
	r.init(func() {})
	r.release()

	defer func() {
		if recover() == nil {
			t.Error("retain() of a freed reference did not panic")
		}
	}()
	r.retain()
}
