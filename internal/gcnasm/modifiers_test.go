/*
   Copyright (c) 2024, Richard Cornwell
   SPDX-License-Identifier: MIT
*/

package gcnasm

import "testing"

func TestParseModifiersFlagsAndValues(t *testing.T) {
	m, err := parseModifiers([]string{"glc", "slc", "offset:4"})
	if err != nil {
		t.Fatalf("parseModifiers: %v", err)
	}
	if !m.GLC || !m.SLC || m.Offset != 4 {
		t.Errorf("parseModifiers = %+v", m)
	}
}

func TestParseModifiersIndexedFlags(t *testing.T) {
	m, err := parseModifiers([]string{"neg1", "abs0", "opsel2"})
	if err != nil {
		t.Fatalf("parseModifiers: %v", err)
	}
	if !m.Neg[1] || !m.Abs[0] || !m.OpSel[2] {
		t.Errorf("parseModifiers = %+v", m)
	}
}

func TestParseModifiersDFmtByName(t *testing.T) {
	m, err := parseModifiers([]string{"dfmt:32"})
	if err != nil {
		t.Fatalf("parseModifiers: %v", err)
	}
	if m.DFmt != mtbufDFmtByName["32"] {
		t.Errorf("dfmt = %d", m.DFmt)
	}
}

func TestParseModifiersRejectsUnknown(t *testing.T) {
	if _, err := parseModifiers([]string{"bogus"}); err == nil {
		t.Error("parseModifiers(bogus) should fail")
	}
}
