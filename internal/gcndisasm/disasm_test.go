/*
   Copyright (c) 2024, Richard Cornwell
   SPDX-License-Identifier: MIT
*/

package gcndisasm

import (
	"strings"
	"testing"

	"github.com/gcntools/gcnasm/internal/gcnarch"
	"github.com/gcntools/gcnasm/internal/gcnasm"
	"github.com/gcntools/gcnasm/internal/gcncatalog"
)

func assembleCode(t *testing.T, src string) []uint32 {
	t.Helper()
	as := gcnasm.New(gcnarch.GCN_1_2, "<test>")
	res, err := as.Assemble(src)
	if err != nil {
		t.Fatalf("Assemble: %v (diagnostics: %v)", err, res.Diagnostics)
	}
	return res.Code
}

func TestScanAndFormatSOP1(t *testing.T) {
	code := assembleCode(t, "s_mov_b32 s1, s2\n")
	d := New(code, gcnarch.GCN_1_2, nil)
	scan, err := d.Scan()
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(scan.Bounds) != 1 || scan.Bounds[0].Family != gcncatalog.SOP1 {
		t.Fatalf("Scan bounds = %+v", scan.Bounds)
	}
	lines := d.Format(scan, Options{})
	if len(lines) != 1 || lines[0] != "s_mov_b32 s1, s2" {
		t.Errorf("Format = %v, want [s_mov_b32 s1, s2]", lines)
	}
}

func TestScanAndFormatSOP2(t *testing.T) {
	code := assembleCode(t, "s_add_u32 s0, s1, s2\n")
	d := New(code, gcnarch.GCN_1_2, nil)
	scan, err := d.Scan()
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	lines := d.Format(scan, Options{})
	if len(lines) != 1 || lines[0] != "s_add_u32 s0, s1, s2" {
		t.Errorf("Format = %v, want [s_add_u32 s0, s1, s2]", lines)
	}
}

func TestScanAndFormatVOP1AndVOP2(t *testing.T) {
	code := assembleCode(t, "v_mov_b32 v0, v1\nv_add_f32 v2, v0, v1\n")
	d := New(code, gcnarch.GCN_1_2, nil)
	scan, err := d.Scan()
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	lines := d.Format(scan, Options{})
	if len(lines) != 2 {
		t.Fatalf("Format returned %d lines, want 2: %v", len(lines), lines)
	}
	if lines[0] != "v_mov_b32 v0, v1" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "v_add_f32 v2, v0, v1" {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestScanDiscoversBranchLabel(t *testing.T) {
	code := assembleCode(t, "s_branch target\ns_nop 0\ntarget:\ns_nop 0\n")
	d := New(code, gcnarch.GCN_1_2, nil)
	scan, err := d.Scan()
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(scan.Labels) != 1 || scan.Labels[0].Offset != 8 {
		t.Fatalf("Scan labels = %+v, want one label at offset 8", scan.Labels)
	}
	lines := d.Format(scan, Options{})
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "s_branch "+scan.Labels[0].Name) {
		t.Errorf("Format should reference the discovered label by name: %v", lines)
	}
	if !strings.HasPrefix(lines[2], scan.Labels[0].Name+":") {
		t.Errorf("Format should print the label definition before the targeted instruction: %v", lines)
	}
}

func TestScanReportsTruncatedInstruction(t *testing.T) {
	// A lone SMEM word0 on GCN_1_2 (two-word family) with no second word.
	code := assembleCode(t, "s_load_dword s0, s[2:3], 0x0\n")
	truncated := code[:1]
	d := New(truncated, gcnarch.GCN_1_2, nil)
	_, err := d.Scan()
	if err == nil {
		t.Error("Scan should report an error for a truncated final instruction")
	}
}

func TestFormatOptionsPrefixes(t *testing.T) {
	code := assembleCode(t, "s_mov_b32 s1, s2\n")
	d := New(code, gcnarch.GCN_1_2, nil)
	scan, err := d.Scan()
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	lines := d.Format(scan, Options{HexPrefix: true, CodePosPrefix: true})
	if len(lines) != 1 {
		t.Fatalf("Format returned %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "00000000: ") {
		t.Errorf("line should carry a code-position prefix: %q", lines[0])
	}
	if !strings.Contains(lines[0], "s_mov_b32 s1, s2") {
		t.Errorf("line should still contain the disassembled text: %q", lines[0])
	}
}
