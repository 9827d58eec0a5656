/*
   Copyright (c) 2024, Richard Cornwell
   SPDX-License-Identifier: MIT
*/

package gcncodec

import "github.com/gcntools/gcnasm/internal/gcnarch"

// DPP and SDWA are per-lane operand suffixes attached to VOP1/VOP2/VOPC
// instructions (§6): when present, SRC0 carries a literal-space marker
// (0xFF=literal, 0xF9=SDWA/0xFA=DPP pre-GCN1.5, 0xE9/0xEA on GCN 1.5) and a
// second word holds the suffix's own bitfields.
const (
	SrcLiteral = 0xFF
)

// DPPMarker and SDWAMarker return the SRC0 field value that signals a
// trailing DPP or SDWA suffix word for arch (§4.2, §6).
func DPPMarker(arch gcnarch.Arch) int {
	_, dpp := gcnarch.SDWALiteralMarkers(arch)
	return int(dpp)
}

func SDWAMarker(arch gcnarch.Arch) int {
	sdwa, _ := gcnarch.SDWALiteralMarkers(arch)
	return int(sdwa)
}

// DPP holds a parsed DPP control suffix (§6).
type DPP struct {
	Ctrl      int
	BankMask  int
	RowMask   int
	BoundCtrl bool
}

var (
	fDPPCtrl      = field{8, 9}
	fDPPBoundCtrl = field{23, 1}
	fDPPBankMask  = field{4, 4}
	fDPPRowMask   = field{0, 4}
)

// EncodeDPP packs a DPP suffix word.
func EncodeDPP(d DPP) uint32 {
	var w uint32
	put(&w, fDPPCtrl, d.Ctrl)
	if d.BoundCtrl {
		put(&w, fDPPBoundCtrl, 1)
	}
	put(&w, fDPPBankMask, d.BankMask)
	put(&w, fDPPRowMask, d.RowMask)
	return w
}

// DecodeDPP is the inverse of EncodeDPP.
func DecodeDPP(w uint32) DPP {
	return DPP{
		Ctrl:      get(w, fDPPCtrl),
		BoundCtrl: get(w, fDPPBoundCtrl) != 0,
		BankMask:  get(w, fDPPBankMask),
		RowMask:   get(w, fDPPRowMask),
	}
}

// DPP control-value ranges and names (§6).
const (
	DPPQuadPermMax  = 0xFF
	DPPRowShlBase   = 0x101
	DPPRowShrBase   = 0x111
	DPPRowRorBase   = 0x121
	DPPWaveShl      = 0x130
	DPPWaveRol      = 0x134
	DPPWaveShr      = 0x138
	DPPWaveRor      = 0x13C
	DPPRowMirror    = 0x140
	DPPRowHalfMirror = 0x141
	DPPRowBCast15   = 0x142
	DPPRowBCast31   = 0x143
)

// SelKind enumerates SDWA byte/word/dword selectors (§6).
type SelKind int

const (
	SelByte0 SelKind = iota
	SelByte1
	SelByte2
	SelByte3
	SelWord0
	SelWord1
	SelDWord
	SelInvalid
)

// DstUnused enumerates SDWA dst_unused behavior (§6).
type DstUnused int

const (
	DstPad DstUnused = iota
	DstSext
	DstPreserve
	DstUnusedInvalid
)

// SDWA holds a parsed SDWA suffix (§6).
type SDWA struct {
	DstSel    SelKind
	DstUnused DstUnused
	Src0Sel   SelKind
	Src1Sel   SelKind
	Sext0     bool
	Sext1     bool
	Neg0      bool
	Neg1      bool
	Abs0      bool
	Abs1      bool
}

var (
	fSDWADstSel    = field{29, 3}
	fSDWADstUnused = field{27, 2}
	fSDWASrc0Sel   = field{3, 3}
	fSDWASrc0Sext  = field{6, 1}
	fSDWASrc0Neg   = field{7, 1}
	fSDWASrc0Abs   = field{8, 1}
	fSDWASrc1Sel   = field{19, 3}
	fSDWASrc1Sext  = field{22, 1}
	fSDWASrc1Neg   = field{23, 1}
	fSDWASrc1Abs   = field{24, 1}
)

func b(v bool) int {
	if v {
		return 1
	}
	return 0
}

// EncodeSDWA packs an SDWA suffix word.
func EncodeSDWA(s SDWA) uint32 {
	var w uint32
	put(&w, fSDWADstSel, int(s.DstSel))
	put(&w, fSDWADstUnused, int(s.DstUnused))
	put(&w, fSDWASrc0Sel, int(s.Src0Sel))
	put(&w, fSDWASrc0Sext, b(s.Sext0))
	put(&w, fSDWASrc0Neg, b(s.Neg0))
	put(&w, fSDWASrc0Abs, b(s.Abs0))
	put(&w, fSDWASrc1Sel, int(s.Src1Sel))
	put(&w, fSDWASrc1Sext, b(s.Sext1))
	put(&w, fSDWASrc1Neg, b(s.Neg1))
	put(&w, fSDWASrc1Abs, b(s.Abs1))
	return w
}

// DecodeSDWA is the inverse of EncodeSDWA.
func DecodeSDWA(w uint32) SDWA {
	return SDWA{
		DstSel:    SelKind(get(w, fSDWADstSel)),
		DstUnused: DstUnused(get(w, fSDWADstUnused)),
		Src0Sel:   SelKind(get(w, fSDWASrc0Sel)),
		Sext0:     get(w, fSDWASrc0Sext) != 0,
		Neg0:      get(w, fSDWASrc0Neg) != 0,
		Abs0:      get(w, fSDWASrc0Abs) != 0,
		Src1Sel:   SelKind(get(w, fSDWASrc1Sel)),
		Sext1:     get(w, fSDWASrc1Sext) != 0,
		Neg1:      get(w, fSDWASrc1Neg) != 0,
		Abs1:      get(w, fSDWASrc1Abs) != 0,
	}
}

func (k SelKind) String() string {
	switch k {
	case SelByte0:
		return "byte0"
	case SelByte1:
		return "byte1"
	case SelByte2:
		return "byte2"
	case SelByte3:
		return "byte3"
	case SelWord0:
		return "word0"
	case SelWord1:
		return "word1"
	case SelDWord:
		return "dword"
	default:
		return "invalid"
	}
}

func (d DstUnused) String() string {
	switch d {
	case DstPad:
		return "pad"
	case DstSext:
		return "sext"
	case DstPreserve:
		return "preserve"
	default:
		return "invalid"
	}
}
