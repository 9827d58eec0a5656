/*
   Copyright (c) 2024, Richard Cornwell
   SPDX-License-Identifier: MIT
*/

package gcnasm

import (
	"fmt"
	"strings"

	"github.com/gcntools/gcnasm/internal/gcncodec"
	"github.com/gcntools/gcnasm/internal/gcnerr"
)

var mtbufDFmtByName = invertNames(gcncodec.MTBUFDFmtNames)
var mtbufNFmtByName = invertNames(gcncodec.MTBUFNFmtNames)

func invertNames(names []string) map[string]int {
	m := make(map[string]int, len(names))
	for i, n := range names {
		m[n] = i
	}
	return m
}

// parseModifiers reads the space-separated modifier tokens trailing an
// instruction's operand list (bareword flags and "key:value" pairs) into a
// Modifiers value. Unknown keys are reported as ErrInvalidModifier rather
// than silently ignored, since a typo'd modifier should never assemble
// clean.
func parseModifiers(tokens []string) (gcncodec.Modifiers, error) {
	var m gcncodec.Modifiers
	for _, tok := range tokens {
		key, val, hasVal := splitKeyValue(tok)
		key = strings.ToLower(key)
		switch key {
		case "glc":
			m.GLC = true
		case "slc":
			m.SLC = true
		case "tfe":
			m.TFE = true
		case "lwe":
			m.LWE = true
		case "da":
			m.DA = true
		case "d16":
			m.D16 = true
		case "unorm":
			m.UNORM = true
		case "gds":
			m.GDS = true
		case "offen":
			m.OffEn = true
		case "idxen":
			m.IdxEn = true
		case "lds":
			m.LDS = true
		case "clamp":
			m.Clamp = true
		case "vm":
			m.VM = true
		case "done":
			m.Done = true
		case "compr":
			m.Compr = true
		case "imm":
			m.IMM = true
		case "neg0", "neg1", "neg2":
			m.Neg[key[3]-'0'] = true
		case "abs0", "abs1", "abs2":
			m.Abs[key[3]-'0'] = true
		case "opsel0", "opsel1", "opsel2", "opsel3":
			m.OpSel[key[5]-'0'] = true
		case "opselhi0", "opselhi1", "opselhi2":
			m.OpSelHi[key[7]-'0'] = true
		case "flat":
			m.Seg = 0
		case "global":
			m.Seg = 2
		case "scratch":
			m.Seg = 1
		case "offset", "offset0":
			n, err := parseModInt(val)
			if err != nil {
				return m, err
			}
			m.Offset = n
		case "offset1":
			n, err := parseModInt(val)
			if err != nil {
				return m, err
			}
			m.Offset1 = n
		case "dmask":
			n, err := parseModInt(val)
			if err != nil {
				return m, err
			}
			m.DMask = n
		case "omod":
			n, err := parseModInt(val)
			if err != nil {
				return m, err
			}
			m.OMod = n
		case "dfmt":
			if n, ok := mtbufDFmtByName[val]; ok {
				m.DFmt = n
			} else if n, err := parseModInt(val); err == nil {
				m.DFmt = n
			} else {
				return m, fmt.Errorf("%w: dfmt %q", gcnerr.ErrInvalidModifier, val)
			}
		case "nfmt":
			if n, ok := mtbufNFmtByName[val]; ok {
				m.NFmt = n
			} else if n, err := parseModInt(val); err == nil {
				m.NFmt = n
			} else {
				return m, fmt.Errorf("%w: nfmt %q", gcnerr.ErrInvalidModifier, val)
			}
		default:
			if !hasVal {
				return m, fmt.Errorf("%w: %q", gcnerr.ErrInvalidModifier, tok)
			}
			return m, fmt.Errorf("%w: %q", gcnerr.ErrInvalidModifier, key)
		}
	}
	return m, nil
}

func parseModInt(s string) (int, error) {
	v, ok := parseIntLiteral(s)
	if !ok {
		return 0, fmt.Errorf("%w: bad integer %q", gcnerr.ErrInvalidModifier, s)
	}
	return int(v), nil
}
