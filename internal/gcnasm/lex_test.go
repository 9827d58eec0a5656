/*
   Copyright (c) 2024, Richard Cornwell
   SPDX-License-Identifier: MIT
*/

package gcnasm

import "testing"

func TestLineGetWord(t *testing.T) {
	l := newLine("  v_mov_b32  v0, v1 // comment")
	word := l.getWord()
	if word != "v_mov_b32" {
		t.Errorf("getWord() = %q, want v_mov_b32", word)
	}
	rest := l.rest()
	if rest != "v0, v1 " {
		t.Errorf("rest() = %q, want %q", rest, "v0, v1 ")
	}
}

func TestLineStripsComments(t *testing.T) {
	l := newLine("s_nop 0 ; trailing remark")
	if l.rest() != "s_nop 0 " {
		t.Errorf("rest() = %q", l.rest())
	}
}

func TestSplitTopLevel(t *testing.T) {
	got := splitTopLevel("v0, s[0:3], hwreg(6, 0, 1)", ',')
	want := []string{"v0", "s[0:3]", "hwreg(6, 0, 1)"}
	if len(got) != len(want) {
		t.Fatalf("splitTopLevel len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("part %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFieldsRespectsBrackets(t *testing.T) {
	got := fields("quad_perm:[0,1,2,3] bound_ctrl")
	want := []string{"quad_perm:[0,1,2,3]", "bound_ctrl"}
	if len(got) != len(want) {
		t.Fatalf("fields len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("field %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseIntLiteral(t *testing.T) {
	cases := []struct {
		tok  string
		want int64
		ok   bool
	}{
		{"0x1F", 31, true},
		{"42", 42, true},
		{"-7", -7, true},
		{"bogus", 0, false},
	}
	for _, c := range cases {
		v, ok := parseIntLiteral(c.tok)
		if ok != c.ok || (ok && v != c.want) {
			t.Errorf("parseIntLiteral(%q) = (%d, %v), want (%d, %v)", c.tok, v, ok, c.want, c.ok)
		}
	}
}

func TestSplitKeyValue(t *testing.T) {
	key, val, ok := splitKeyValue("offset:4")
	if !ok || key != "offset" || val != "4" {
		t.Errorf("splitKeyValue(offset:4) = (%q, %q, %v)", key, val, ok)
	}
	if _, _, ok := splitKeyValue("glc"); ok {
		t.Errorf("splitKeyValue(glc) reported a value")
	}
}
