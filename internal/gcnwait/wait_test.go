/*
   Copyright (c) 2024, Richard Cornwell
   SPDX-License-Identifier: MIT
*/

package gcnwait

import (
	"testing"

	"github.com/gcntools/gcnasm/internal/gcnarch"
)

func TestEncodeDecodeImm16RoundTrip(t *testing.T) {
	w := Waits{VMCnt: 2, ExpCnt: 1, LGKMCnt: 3}
	imm := EncodeImm16(gcnarch.GCN_1_2, w)
	got := DecodeImm16(gcnarch.GCN_1_2, imm)
	if got != w {
		t.Errorf("round trip = %+v, want %+v", got, w)
	}
}

func TestEncodeImm16NoWaitBecomesMaxField(t *testing.T) {
	w := Waits{VMCnt: NoWait, ExpCnt: NoWait, LGKMCnt: NoWait}
	imm := EncodeImm16(gcnarch.GCN_1_2, w)
	got := DecodeImm16(gcnarch.GCN_1_2, imm)
	if got.VMCnt != NoWait || got.ExpCnt != NoWait || got.LGKMCnt != NoWait {
		t.Errorf("all-NoWait round trip = %+v", got)
	}
}

func TestEncodeImm16WidensLGKMOnGCN15(t *testing.T) {
	w := Waits{VMCnt: 0, ExpCnt: 0, LGKMCnt: 20}
	imm := EncodeImm16(gcnarch.GCN_1_5, w)
	got := DecodeImm16(gcnarch.GCN_1_5, imm)
	if got.LGKMCnt != 20 {
		t.Errorf("GCN_1_5 lgkmcnt round trip = %d, want 20", got.LGKMCnt)
	}
}

func TestStreamCursorInterleavesDelayedAndWait(t *testing.T) {
	s := NewStream()
	s.EmitDelayed(DelayedOp{Offset: 0, Class: ClassVMLoad, RW: 2})
	s.EmitWait(WaitInstr{Offset: 4, Waits: Waits{VMCnt: 0, ExpCnt: NoWait, LGKMCnt: NoWait}})
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}

	c := s.Cursor()
	_, _, isWait := c.NextInstr()
	if isWait {
		t.Error("first record should be a DelayedOp")
	}
	_, w, isWait := c.NextInstr()
	if !isWait || w.Waits.VMCnt != 0 {
		t.Errorf("second record = %+v, %v", w, isWait)
	}
	if c.HasNext() {
		t.Error("cursor should be exhausted after 2 records")
	}
}
