/*
   Copyright (c) 2024, Richard Cornwell
   SPDX-License-Identifier: MIT
*/

package srcpos

import "testing"

func TestPushAndCursorReplayInOrder(t *testing.T) {
	h := NewHandler()
	h.Push(0, Position{File: "a.s", Line: 1})
	h.Push(4, Position{File: "a.s", Line: 2})
	h.Push(12, Position{File: "a.s", Line: 4})

	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}

	c := h.Cursor()
	wantOff := []uint64{0, 4, 12}
	wantLine := []uint64{1, 2, 4}
	for i := range wantOff {
		if !c.HasNext() {
			t.Fatalf("cursor exhausted early at index %d", i)
		}
		off, pos := c.Next()
		if off != wantOff[i] {
			t.Errorf("entry %d offset = %d, want %d", i, off, wantOff[i])
		}
		if pos.Line != wantLine[i] {
			t.Errorf("entry %d line = %d, want %d", i, pos.Line, wantLine[i])
		}
	}
	if c.HasNext() {
		t.Error("cursor should be exhausted after 3 entries")
	}
}

func TestPushPanicsOnDecreasingOffset(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Push with a decreasing offset should panic")
		}
	}()
	h := NewHandler()
	h.Push(8, Position{File: "a.s", Line: 1})
	h.Push(4, Position{File: "a.s", Line: 2})
}

func TestFindReturnsMostRecentAtOrBefore(t *testing.T) {
	h := NewHandler()
	h.Push(0, Position{File: "a.s", Line: 1})
	h.Push(8, Position{File: "a.s", Line: 3})

	pos, ok := h.Find(4)
	if !ok || pos.Line != 1 {
		t.Errorf("Find(4) = %+v, %v; want line 1", pos, ok)
	}
	pos, ok = h.Find(100)
	if !ok || pos.Line != 3 {
		t.Errorf("Find(100) = %+v, %v; want line 3", pos, ok)
	}
	if _, ok := NewHandler().Find(0); ok {
		t.Error("Find on an empty handler should report not found")
	}
}

func TestReset(t *testing.T) {
	h := NewHandler()
	h.Push(0, Position{File: "a.s", Line: 1})
	h.Reset()
	if h.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", h.Len())
	}
	h.Push(0, Position{File: "b.s", Line: 1})
	if h.Len() != 1 {
		t.Errorf("Len() after re-push = %d, want 1", h.Len())
	}
}
