/*
   Copyright (c) 2024, Richard Cornwell

   Permission is hereby granted, free of charge, to any person obtaining a
   copy of this software and associated documentation files (the "Software"),
   to deal in the Software without restriction, including without limitation
   the rights to use, copy, modify, merge, publish, distribute, sublicense,
   and/or sell copies of the Software, and to permit persons to whom the
   Software is furnished to do so, subject to the following conditions:

   The above copyright notice and this permission notice shall be included in
   all copies or substantial portions of the Software.

   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.  IN NO EVENT SHALL
   RICHARD CORNWELL BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
   IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
   CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*/

package gcncatalog

import "github.com/gcntools/gcnasm/internal/gcnarch"

// defaultRows is the static catalog (§4.1, §9): a representative subset of
// the mnemonics a GCN assembler handles, covering every family named in
// §3. Opcode numbers here are this codec's own, internally consistent
// per-family numbering (see DESIGN.md) rather than a historical vendor
// encoding, assigned densely from zero per family.
var defaultRows = buildRows()

func buildRows() []Entry {
	all := gcnarch.MaskAll()
	from12 := gcnarch.MaskFrom(gcnarch.GCN_1_2)
	from14 := gcnarch.MaskFrom(gcnarch.GCN_1_4)

	rows := []Entry{
		// SOP1
		{Mnemonic: "s_mov_b32", Family: SOP1, Opcode: 0, ArchMask: all},
		{Mnemonic: "s_mov_b64", Family: SOP1, Opcode: 1, Flags: RegDst64 | RegSrc064, ArchMask: all},
		{Mnemonic: "s_cmov_b32", Family: SOP1, Opcode: 2, ArchMask: all},
		{Mnemonic: "s_cmov_b64", Family: SOP1, Opcode: 3, Flags: RegDst64 | RegSrc064, ArchMask: all},
		{Mnemonic: "s_not_b32", Family: SOP1, Opcode: 4, ArchMask: all},
		{Mnemonic: "s_not_b64", Family: SOP1, Opcode: 5, Flags: RegDst64 | RegSrc064, ArchMask: all},
		{Mnemonic: "s_wqm_b32", Family: SOP1, Opcode: 6, ArchMask: all},
		{Mnemonic: "s_wqm_b64", Family: SOP1, Opcode: 7, Flags: RegDst64 | RegSrc064, ArchMask: all},
		{Mnemonic: "s_brev_b32", Family: SOP1, Opcode: 8, ArchMask: all},
		{Mnemonic: "s_brev_b64", Family: SOP1, Opcode: 9, Flags: RegDst64 | RegSrc064, ArchMask: all},
		{Mnemonic: "s_bcnt0_i32_b32", Family: SOP1, Opcode: 10, ArchMask: all},
		{Mnemonic: "s_bcnt0_i32_b64", Family: SOP1, Opcode: 11, Flags: RegSrc064, ArchMask: all},
		{Mnemonic: "s_bcnt1_i32_b32", Family: SOP1, Opcode: 12, ArchMask: all},
		{Mnemonic: "s_bcnt1_i32_b64", Family: SOP1, Opcode: 13, Flags: RegSrc064, ArchMask: all},
		{Mnemonic: "s_ff0_i32_b32", Family: SOP1, Opcode: 14, ArchMask: all},
		{Mnemonic: "s_ff1_i32_b32", Family: SOP1, Opcode: 15, ArchMask: all},
		{Mnemonic: "s_flbit_i32_b32", Family: SOP1, Opcode: 16, ArchMask: all},
		{Mnemonic: "s_flbit_i32", Family: SOP1, Opcode: 17, ArchMask: all},
		{Mnemonic: "s_sext_i32_i8", Family: SOP1, Opcode: 18, ArchMask: all},
		{Mnemonic: "s_sext_i32_i16", Family: SOP1, Opcode: 19, ArchMask: all},
		{Mnemonic: "s_abs_i32", Family: SOP1, Opcode: 20, ArchMask: all},
		{Mnemonic: "s_getpc_b64", Family: SOP1, Opcode: 21, Flags: RegDst64, ArchMask: all},
		{Mnemonic: "s_setpc_b64", Family: SOP1, Opcode: 22, Flags: RegSrc064, ArchMask: all},
		{Mnemonic: "s_swappc_b64", Family: SOP1, Opcode: 23, Flags: RegDst64 | RegSrc064, ArchMask: all},
		{Mnemonic: "s_rfe_b64", Family: SOP1, Opcode: 24, Flags: RegSrc064, ArchMask: all},
		{Mnemonic: "s_and_saveexec_b64", Family: SOP1, Opcode: 25, Flags: RegDst64 | RegSrc064, ArchMask: all},
		{Mnemonic: "s_or_saveexec_b64", Family: SOP1, Opcode: 26, Flags: RegDst64 | RegSrc064, ArchMask: all},
		{Mnemonic: "s_xor_saveexec_b64", Family: SOP1, Opcode: 27, Flags: RegDst64 | RegSrc064, ArchMask: all},
		{Mnemonic: "s_quadmask_b32", Family: SOP1, Opcode: 28, ArchMask: all},
		{Mnemonic: "s_quadmask_b64", Family: SOP1, Opcode: 29, Flags: RegDst64 | RegSrc064, ArchMask: all},
		{Mnemonic: "s_movrels_b32", Family: SOP1, Opcode: 30, ArchMask: all},
		{Mnemonic: "s_movreld_b32", Family: SOP1, Opcode: 31, ArchMask: all},
		{Mnemonic: "s_cbranch_join", Family: SOP1, Opcode: 32, ArchMask: all},
		{Mnemonic: "s_set_gpr_idx_idx", Family: SOP1, Opcode: 33, ArchMask: from12},
		{Mnemonic: "s_andn2_saveexec_b64", Family: SOP1, Opcode: 34, Flags: RegDst64 | RegSrc064, ArchMask: from12},
		{Mnemonic: "s_orn2_saveexec_b64", Family: SOP1, Opcode: 35, Flags: RegDst64 | RegSrc064, ArchMask: from12},
		{Mnemonic: "s_bitreplicate_b64_b32", Family: SOP1, Opcode: 36, Flags: RegDst64, ArchMask: from14},

		// SOP2
		{Mnemonic: "s_add_u32", Family: SOP2, Opcode: 0, ArchMask: all},
		{Mnemonic: "s_sub_u32", Family: SOP2, Opcode: 1, ArchMask: all},
		{Mnemonic: "s_add_i32", Family: SOP2, Opcode: 2, ArchMask: all},
		{Mnemonic: "s_sub_i32", Family: SOP2, Opcode: 3, ArchMask: all},
		{Mnemonic: "s_addc_u32", Family: SOP2, Opcode: 4, ArchMask: all},
		{Mnemonic: "s_subb_u32", Family: SOP2, Opcode: 5, ArchMask: all},
		{Mnemonic: "s_min_i32", Family: SOP2, Opcode: 6, ArchMask: all},
		{Mnemonic: "s_min_u32", Family: SOP2, Opcode: 7, ArchMask: all},
		{Mnemonic: "s_max_i32", Family: SOP2, Opcode: 8, ArchMask: all},
		{Mnemonic: "s_max_u32", Family: SOP2, Opcode: 9, ArchMask: all},
		{Mnemonic: "s_cselect_b32", Family: SOP2, Opcode: 10, ArchMask: all},
		{Mnemonic: "s_cselect_b64", Family: SOP2, Opcode: 11, Flags: RegDst64 | RegSrc064 | RegSrc164, ArchMask: all},
		{Mnemonic: "s_and_b32", Family: SOP2, Opcode: 12, ArchMask: all},
		{Mnemonic: "s_and_b64", Family: SOP2, Opcode: 13, Flags: RegDst64 | RegSrc064 | RegSrc164, ArchMask: all},
		{Mnemonic: "s_or_b32", Family: SOP2, Opcode: 14, ArchMask: all},
		{Mnemonic: "s_or_b64", Family: SOP2, Opcode: 15, Flags: RegDst64 | RegSrc064 | RegSrc164, ArchMask: all},
		{Mnemonic: "s_xor_b32", Family: SOP2, Opcode: 16, ArchMask: all},
		{Mnemonic: "s_xor_b64", Family: SOP2, Opcode: 17, Flags: RegDst64 | RegSrc064 | RegSrc164, ArchMask: all},
		{Mnemonic: "s_andn2_b32", Family: SOP2, Opcode: 18, ArchMask: all},
		{Mnemonic: "s_orn2_b32", Family: SOP2, Opcode: 19, ArchMask: all},
		{Mnemonic: "s_nand_b32", Family: SOP2, Opcode: 20, ArchMask: all},
		{Mnemonic: "s_nor_b32", Family: SOP2, Opcode: 21, ArchMask: all},
		{Mnemonic: "s_xnor_b32", Family: SOP2, Opcode: 22, ArchMask: all},
		{Mnemonic: "s_lshl_b32", Family: SOP2, Opcode: 23, ArchMask: all},
		{Mnemonic: "s_lshl_b64", Family: SOP2, Opcode: 24, Flags: RegDst64 | RegSrc064, ArchMask: all},
		{Mnemonic: "s_lshr_b32", Family: SOP2, Opcode: 25, ArchMask: all},
		{Mnemonic: "s_lshr_b64", Family: SOP2, Opcode: 26, Flags: RegDst64 | RegSrc064, ArchMask: all},
		{Mnemonic: "s_ashr_i32", Family: SOP2, Opcode: 27, ArchMask: all},
		{Mnemonic: "s_ashr_i64", Family: SOP2, Opcode: 28, Flags: RegDst64 | RegSrc064, ArchMask: all},
		{Mnemonic: "s_bfm_b32", Family: SOP2, Opcode: 29, ArchMask: all},
		{Mnemonic: "s_bfm_b64", Family: SOP2, Opcode: 30, Flags: RegDst64, ArchMask: all},
		{Mnemonic: "s_mul_i32", Family: SOP2, Opcode: 31, ArchMask: all},
		{Mnemonic: "s_bfe_u32", Family: SOP2, Opcode: 32, ArchMask: all},
		{Mnemonic: "s_bfe_i32", Family: SOP2, Opcode: 33, ArchMask: all},
		{Mnemonic: "s_bfe_u64", Family: SOP2, Opcode: 34, Flags: RegDst64 | RegSrc064, ArchMask: all},
		{Mnemonic: "s_bfe_i64", Family: SOP2, Opcode: 35, Flags: RegDst64 | RegSrc064, ArchMask: all},
		{Mnemonic: "s_absdiff_i32", Family: SOP2, Opcode: 36, ArchMask: all},
		{Mnemonic: "s_lshl1_add_u32", Family: SOP2, Opcode: 37, ArchMask: from12},
		{Mnemonic: "s_lshl2_add_u32", Family: SOP2, Opcode: 38, ArchMask: from12},
		{Mnemonic: "s_lshl3_add_u32", Family: SOP2, Opcode: 39, ArchMask: from12},
		{Mnemonic: "s_lshl4_add_u32", Family: SOP2, Opcode: 40, ArchMask: from12},
		{Mnemonic: "s_pack_ll_b32_b16", Family: SOP2, Opcode: 41, ArchMask: from14},
		{Mnemonic: "s_pack_lh_b32_b16", Family: SOP2, Opcode: 42, ArchMask: from14},
		{Mnemonic: "s_pack_hh_b32_b16", Family: SOP2, Opcode: 43, ArchMask: from14},

		// SOPC
		{Mnemonic: "s_cmp_eq_i32", Family: SOPC, Opcode: 0, ArchMask: all},
		{Mnemonic: "s_cmp_lg_i32", Family: SOPC, Opcode: 1, ArchMask: all},
		{Mnemonic: "s_cmp_gt_i32", Family: SOPC, Opcode: 2, ArchMask: all},
		{Mnemonic: "s_cmp_ge_i32", Family: SOPC, Opcode: 3, ArchMask: all},
		{Mnemonic: "s_cmp_lt_i32", Family: SOPC, Opcode: 4, ArchMask: all},
		{Mnemonic: "s_cmp_le_i32", Family: SOPC, Opcode: 5, ArchMask: all},
		{Mnemonic: "s_cmp_eq_u32", Family: SOPC, Opcode: 6, ArchMask: all},
		{Mnemonic: "s_cmp_lg_u32", Family: SOPC, Opcode: 7, ArchMask: all},
		{Mnemonic: "s_cmp_gt_u32", Family: SOPC, Opcode: 8, ArchMask: all},
		{Mnemonic: "s_cmp_ge_u32", Family: SOPC, Opcode: 9, ArchMask: all},
		{Mnemonic: "s_cmp_lt_u32", Family: SOPC, Opcode: 10, ArchMask: all},
		{Mnemonic: "s_cmp_le_u32", Family: SOPC, Opcode: 11, ArchMask: all},
		{Mnemonic: "s_bitcmp0_b32", Family: SOPC, Opcode: 12, ArchMask: all},
		{Mnemonic: "s_bitcmp1_b32", Family: SOPC, Opcode: 13, ArchMask: all},
		{Mnemonic: "s_bitcmp0_b64", Family: SOPC, Opcode: 14, Flags: RegSrc064, ArchMask: all},
		{Mnemonic: "s_bitcmp1_b64", Family: SOPC, Opcode: 15, Flags: RegSrc064, ArchMask: all},
		{Mnemonic: "s_setvskip", Family: SOPC, Opcode: 16, ArchMask: all},
		{Mnemonic: "s_set_gpr_idx_on", Family: SOPC, Opcode: 17, ArchMask: from12},
		{Mnemonic: "s_cmp_eq_u64", Family: SOPC, Opcode: 18, Flags: RegSrc064 | RegSrc164, ArchMask: from14},
		{Mnemonic: "s_cmp_lg_u64", Family: SOPC, Opcode: 19, Flags: RegSrc064 | RegSrc164, ArchMask: from14},

		// SOPP
		{Mnemonic: "s_nop", Family: SOPP, Opcode: 0, ArchMask: all},
		{Mnemonic: "s_endpgm", Family: SOPP, Opcode: 1, ArchMask: all},
		{Mnemonic: "s_branch", Family: SOPP, Opcode: 2, ArchMask: all},
		{Mnemonic: "s_cbranch_scc0", Family: SOPP, Opcode: 4, ArchMask: all},
		{Mnemonic: "s_cbranch_scc1", Family: SOPP, Opcode: 5, ArchMask: all},
		{Mnemonic: "s_cbranch_vccz", Family: SOPP, Opcode: 6, ArchMask: all},
		{Mnemonic: "s_cbranch_vccnz", Family: SOPP, Opcode: 7, ArchMask: all},
		{Mnemonic: "s_cbranch_execz", Family: SOPP, Opcode: 8, ArchMask: all},
		{Mnemonic: "s_cbranch_execnz", Family: SOPP, Opcode: 9, ArchMask: all},
		{Mnemonic: "s_barrier", Family: SOPP, Opcode: 10, ArchMask: all},
		{Mnemonic: "s_waitcnt", Family: SOPP, Opcode: 12, ArchMask: all},
		{Mnemonic: "s_sethalt", Family: SOPP, Opcode: 13, ArchMask: all},
		{Mnemonic: "s_sleep", Family: SOPP, Opcode: 14, ArchMask: all},
		{Mnemonic: "s_setprio", Family: SOPP, Opcode: 15, ArchMask: all},
		{Mnemonic: "s_sendmsg", Family: SOPP, Opcode: 16, ArchMask: all},
		{Mnemonic: "s_sendmsghalt", Family: SOPP, Opcode: 17, ArchMask: all},
		{Mnemonic: "s_trap", Family: SOPP, Opcode: 18, ArchMask: all},
		{Mnemonic: "s_icache_inv", Family: SOPP, Opcode: 19, ArchMask: all},
		{Mnemonic: "s_incperflevel", Family: SOPP, Opcode: 20, ArchMask: all},
		{Mnemonic: "s_decperflevel", Family: SOPP, Opcode: 21, ArchMask: all},
		{Mnemonic: "s_ttracedata", Family: SOPP, Opcode: 22, ArchMask: all},
		{Mnemonic: "s_cbranch_cdbgsys", Family: SOPP, Opcode: 23, ArchMask: from12},
		{Mnemonic: "s_cbranch_cdbguser", Family: SOPP, Opcode: 24, ArchMask: from12},
		{Mnemonic: "s_cbranch_cdbgsys_or_user", Family: SOPP, Opcode: 25, ArchMask: from12},
		{Mnemonic: "s_cbranch_cdbgsys_and_user", Family: SOPP, Opcode: 26, ArchMask: from12},
		{Mnemonic: "s_endpgm_saved", Family: SOPP, Opcode: 27, ArchMask: from12},
		{Mnemonic: "s_set_gpr_idx_off", Family: SOPP, Opcode: 28, ArchMask: from12},
		{Mnemonic: "s_set_gpr_idx_mode", Family: SOPP, Opcode: 29, ArchMask: from12},

		// SOPK
		{Mnemonic: "s_movk_i32", Family: SOPK, Opcode: 0, ArchMask: all},
		{Mnemonic: "s_cmovk_i32", Family: SOPK, Opcode: 1, ArchMask: all},
		{Mnemonic: "s_cmpk_eq_i32", Family: SOPK, Opcode: 2, ArchMask: all},
		{Mnemonic: "s_cmpk_lg_i32", Family: SOPK, Opcode: 3, ArchMask: all},
		{Mnemonic: "s_cmpk_gt_i32", Family: SOPK, Opcode: 4, ArchMask: all},
		{Mnemonic: "s_cmpk_ge_i32", Family: SOPK, Opcode: 5, ArchMask: all},
		{Mnemonic: "s_cmpk_lt_i32", Family: SOPK, Opcode: 6, ArchMask: all},
		{Mnemonic: "s_cmpk_le_i32", Family: SOPK, Opcode: 7, ArchMask: all},
		{Mnemonic: "s_cmpk_eq_u32", Family: SOPK, Opcode: 8, ArchMask: all},
		{Mnemonic: "s_cmpk_lg_u32", Family: SOPK, Opcode: 9, ArchMask: all},
		{Mnemonic: "s_cmpk_gt_u32", Family: SOPK, Opcode: 10, ArchMask: all},
		{Mnemonic: "s_cmpk_ge_u32", Family: SOPK, Opcode: 11, ArchMask: all},
		{Mnemonic: "s_cmpk_lt_u32", Family: SOPK, Opcode: 12, ArchMask: all},
		{Mnemonic: "s_cmpk_le_u32", Family: SOPK, Opcode: 13, ArchMask: all},
		{Mnemonic: "s_addk_i32", Family: SOPK, Opcode: 14, ArchMask: all},
		{Mnemonic: "s_mulk_i32", Family: SOPK, Opcode: 15, ArchMask: all},
		{Mnemonic: "s_cbranch_i_fork", Family: SOPK, Opcode: 16, ArchMask: all},
		{Mnemonic: "s_getreg_b32", Family: SOPK, Opcode: 17, Flags: SOPKImmDst, ArchMask: all},
		{Mnemonic: "s_setreg_b32", Family: SOPK, Opcode: 18, Flags: SOPKImmSreg, ArchMask: all},
		{Mnemonic: "s_setreg_imm32_b32", Family: SOPK, Opcode: 19, Flags: SOPKImmSreg | SOPKImmRel, ArchMask: all},
		{Mnemonic: "s_call_b64", Family: SOPK, Opcode: 20, Flags: RegDst64, ArchMask: from14},

		// SMRD/SMEM
		{Mnemonic: "s_load_dword", Family: SMRD, Opcode: 0, ArchMask: all},
		{Mnemonic: "s_load_dwordx2", Family: SMRD, Opcode: 1, Flags: RegDst64, ArchMask: all},
		{Mnemonic: "s_load_dwordx4", Family: SMRD, Opcode: 2, ArchMask: all},
		{Mnemonic: "s_load_dwordx8", Family: SMRD, Opcode: 3, ArchMask: all},
		{Mnemonic: "s_load_dwordx16", Family: SMRD, Opcode: 4, ArchMask: all},
		{Mnemonic: "s_buffer_load_dword", Family: SMRD, Opcode: 8, ArchMask: all},
		{Mnemonic: "s_buffer_load_dwordx2", Family: SMRD, Opcode: 9, Flags: RegDst64, ArchMask: all},
		{Mnemonic: "s_buffer_load_dwordx4", Family: SMRD, Opcode: 10, ArchMask: all},
		{Mnemonic: "s_buffer_load_dwordx8", Family: SMRD, Opcode: 11, ArchMask: all},
		{Mnemonic: "s_buffer_load_dwordx16", Family: SMRD, Opcode: 12, ArchMask: all},
		{Mnemonic: "s_store_dword", Family: SMRD, Opcode: 16, ArchMask: from12},
		{Mnemonic: "s_store_dwordx2", Family: SMRD, Opcode: 17, Flags: RegDst64, ArchMask: from12},
		{Mnemonic: "s_store_dwordx4", Family: SMRD, Opcode: 18, ArchMask: from12},
		{Mnemonic: "s_buffer_store_dword", Family: SMRD, Opcode: 24, ArchMask: from12},
		{Mnemonic: "s_buffer_store_dwordx2", Family: SMRD, Opcode: 25, Flags: RegDst64, ArchMask: from12},
		{Mnemonic: "s_buffer_store_dwordx4", Family: SMRD, Opcode: 26, ArchMask: from12},
		{Mnemonic: "s_memtime", Family: SMRD, Opcode: 30, Flags: RegDst64, ArchMask: all},
		{Mnemonic: "s_memrealtime", Family: SMRD, Opcode: 31, Flags: RegDst64, ArchMask: from12},
		{Mnemonic: "s_dcache_inv", Family: SMRD, Opcode: 32, ArchMask: all},
		{Mnemonic: "s_dcache_wb", Family: SMRD, Opcode: 33, ArchMask: from12},

		// VOP1
		{Mnemonic: "v_nop", Family: VOP1, Opcode: 0, ArchMask: all},
		{Mnemonic: "v_mov_b32", Family: VOP1, Opcode: 1, ArchMask: all},
		{Mnemonic: "v_readfirstlane_b32", Family: VOP1, Opcode: 2, ArchMask: all},
		{Mnemonic: "v_cvt_i32_f64", Family: VOP1, Opcode: 3, Flags: RegSrc064, ArchMask: all},
		{Mnemonic: "v_cvt_f64_i32", Family: VOP1, Opcode: 4, Flags: RegDst64, ArchMask: all},
		{Mnemonic: "v_cvt_f32_i32", Family: VOP1, Opcode: 5, ArchMask: all},
		{Mnemonic: "v_cvt_f32_u32", Family: VOP1, Opcode: 6, ArchMask: all},
		{Mnemonic: "v_cvt_u32_f32", Family: VOP1, Opcode: 7, ArchMask: all},
		{Mnemonic: "v_cvt_i32_f32", Family: VOP1, Opcode: 8, ArchMask: all},
		{Mnemonic: "v_cvt_f16_f32", Family: VOP1, Opcode: 10, ArchMask: all},
		{Mnemonic: "v_cvt_f32_f16", Family: VOP1, Opcode: 11, ArchMask: all},
		{Mnemonic: "v_cvt_f32_f64", Family: VOP1, Opcode: 14, Flags: RegSrc064, ArchMask: all},
		{Mnemonic: "v_cvt_f64_f32", Family: VOP1, Opcode: 15, Flags: RegDst64, ArchMask: all},
		{Mnemonic: "v_cvt_f32_ubyte0", Family: VOP1, Opcode: 17, ArchMask: all},
		{Mnemonic: "v_fract_f32", Family: VOP1, Opcode: 32, ArchMask: all},
		{Mnemonic: "v_trunc_f32", Family: VOP1, Opcode: 33, ArchMask: all},
		{Mnemonic: "v_ceil_f32", Family: VOP1, Opcode: 34, ArchMask: all},
		{Mnemonic: "v_rndne_f32", Family: VOP1, Opcode: 35, ArchMask: all},
		{Mnemonic: "v_floor_f32", Family: VOP1, Opcode: 36, ArchMask: all},
		{Mnemonic: "v_exp_f32", Family: VOP1, Opcode: 37, ArchMask: all},
		{Mnemonic: "v_log_f32", Family: VOP1, Opcode: 39, ArchMask: all},
		{Mnemonic: "v_rcp_f32", Family: VOP1, Opcode: 42, ArchMask: all},
		{Mnemonic: "v_rcp_iflag_f32", Family: VOP1, Opcode: 43, ArchMask: all},
		{Mnemonic: "v_rsq_f32", Family: VOP1, Opcode: 44, ArchMask: all},
		{Mnemonic: "v_rcp_f64", Family: VOP1, Opcode: 45, Flags: RegDst64 | RegSrc064, ArchMask: all},
		{Mnemonic: "v_rsq_f64", Family: VOP1, Opcode: 47, Flags: RegDst64 | RegSrc064, ArchMask: all},
		{Mnemonic: "v_sqrt_f32", Family: VOP1, Opcode: 49, ArchMask: all},
		{Mnemonic: "v_sqrt_f64", Family: VOP1, Opcode: 50, Flags: RegDst64 | RegSrc064, ArchMask: all},
		{Mnemonic: "v_sin_f32", Family: VOP1, Opcode: 53, ArchMask: all},
		{Mnemonic: "v_cos_f32", Family: VOP1, Opcode: 54, ArchMask: all},
		{Mnemonic: "v_not_b32", Family: VOP1, Opcode: 55, ArchMask: all},
		{Mnemonic: "v_bfrev_b32", Family: VOP1, Opcode: 56, ArchMask: all},
		{Mnemonic: "v_ffbh_u32", Family: VOP1, Opcode: 57, ArchMask: all},
		{Mnemonic: "v_ffbl_b32", Family: VOP1, Opcode: 58, ArchMask: all},
		{Mnemonic: "v_ffbh_i32", Family: VOP1, Opcode: 59, ArchMask: all},
		{Mnemonic: "v_frexp_exp_i32_f64", Family: VOP1, Opcode: 60, Flags: RegSrc064, ArchMask: all},
		{Mnemonic: "v_frexp_mant_f64", Family: VOP1, Opcode: 61, Flags: RegDst64 | RegSrc064, ArchMask: all},
		{Mnemonic: "v_clrexcp", Family: VOP1, Opcode: 63, ArchMask: all},
		{Mnemonic: "v_cvt_f16_u16", Family: VOP1, Opcode: 80, ArchMask: from12},
		{Mnemonic: "v_cvt_f16_i16", Family: VOP1, Opcode: 81, ArchMask: from12},
		{Mnemonic: "v_cvt_u16_f16", Family: VOP1, Opcode: 82, ArchMask: from12},
		{Mnemonic: "v_cvt_i16_f16", Family: VOP1, Opcode: 83, ArchMask: from12},
		{Mnemonic: "v_rcp_f16", Family: VOP1, Opcode: 84, ArchMask: from12},
		{Mnemonic: "v_sqrt_f16", Family: VOP1, Opcode: 85, ArchMask: from12},
		{Mnemonic: "v_rsq_f16", Family: VOP1, Opcode: 86, ArchMask: from12},
		{Mnemonic: "v_log_f16", Family: VOP1, Opcode: 87, ArchMask: from12},
		{Mnemonic: "v_exp_f16", Family: VOP1, Opcode: 88, ArchMask: from12},
		{Mnemonic: "v_frexp_mant_f16", Family: VOP1, Opcode: 89, ArchMask: from12},
		{Mnemonic: "v_frexp_exp_i16_f16", Family: VOP1, Opcode: 90, ArchMask: from12},
		{Mnemonic: "v_floor_f16", Family: VOP1, Opcode: 91, ArchMask: from12},
		{Mnemonic: "v_ceil_f16", Family: VOP1, Opcode: 92, ArchMask: from12},
		{Mnemonic: "v_trunc_f16", Family: VOP1, Opcode: 93, ArchMask: from12},
		{Mnemonic: "v_rndne_f16", Family: VOP1, Opcode: 94, ArchMask: from12},
		{Mnemonic: "v_fract_f16", Family: VOP1, Opcode: 95, ArchMask: from12},
		{Mnemonic: "v_swap_b32", Family: VOP1, Opcode: 96, ArchMask: from14},
		{Mnemonic: "v_swaprel_b32", Family: VOP1, Opcode: 97, ArchMask: from14},

		// VOP2
		{Mnemonic: "v_cndmask_b32", Family: VOP2, Opcode: 0, ArchMask: all},
		{Mnemonic: "v_add_f32", Family: VOP2, Opcode: 1, ArchMask: all},
		{Mnemonic: "v_sub_f32", Family: VOP2, Opcode: 2, ArchMask: all},
		{Mnemonic: "v_subrev_f32", Family: VOP2, Opcode: 3, ArchMask: all},
		{Mnemonic: "v_mul_legacy_f32", Family: VOP2, Opcode: 4, ArchMask: all},
		{Mnemonic: "v_mul_f32", Family: VOP2, Opcode: 5, ArchMask: all},
		{Mnemonic: "v_mul_i32_i24", Family: VOP2, Opcode: 6, ArchMask: all},
		{Mnemonic: "v_mul_hi_i32_i24", Family: VOP2, Opcode: 7, ArchMask: all},
		{Mnemonic: "v_mul_u32_u24", Family: VOP2, Opcode: 8, ArchMask: all},
		{Mnemonic: "v_mul_hi_u32_u24", Family: VOP2, Opcode: 9, ArchMask: all},
		{Mnemonic: "v_min_f32", Family: VOP2, Opcode: 10, ArchMask: all},
		{Mnemonic: "v_max_f32", Family: VOP2, Opcode: 11, ArchMask: all},
		{Mnemonic: "v_min_i32", Family: VOP2, Opcode: 12, ArchMask: all},
		{Mnemonic: "v_max_i32", Family: VOP2, Opcode: 13, ArchMask: all},
		{Mnemonic: "v_min_u32", Family: VOP2, Opcode: 14, ArchMask: all},
		{Mnemonic: "v_max_u32", Family: VOP2, Opcode: 15, ArchMask: all},
		{Mnemonic: "v_lshrrev_b32", Family: VOP2, Opcode: 16, ArchMask: all},
		{Mnemonic: "v_ashrrev_i32", Family: VOP2, Opcode: 17, ArchMask: all},
		{Mnemonic: "v_lshlrev_b32", Family: VOP2, Opcode: 18, ArchMask: all},
		{Mnemonic: "v_and_b32", Family: VOP2, Opcode: 19, ArchMask: all},
		{Mnemonic: "v_or_b32", Family: VOP2, Opcode: 20, ArchMask: all},
		{Mnemonic: "v_xor_b32", Family: VOP2, Opcode: 21, ArchMask: all},
		{Mnemonic: "v_mac_f32", Family: VOP2, Opcode: 22, ArchMask: all},
		{Mnemonic: "v_madmk_f32", Family: VOP2, Opcode: 23, ArchMask: all},
		{Mnemonic: "v_madak_f32", Family: VOP2, Opcode: 24, ArchMask: all},
		{Mnemonic: "v_add_u32", Family: VOP2, Opcode: 25, ArchMask: all},
		{Mnemonic: "v_sub_u32", Family: VOP2, Opcode: 26, ArchMask: all},
		{Mnemonic: "v_subrev_u32", Family: VOP2, Opcode: 27, ArchMask: all},
		{Mnemonic: "v_addc_u32", Family: VOP2, Opcode: 28, Flags: DS2VCC, ArchMask: all},
		{Mnemonic: "v_subb_u32", Family: VOP2, Opcode: 29, Flags: DS2VCC, ArchMask: all},
		{Mnemonic: "v_subbrev_u32", Family: VOP2, Opcode: 30, Flags: DS2VCC, ArchMask: all},
		{Mnemonic: "v_ldexp_f32", Family: VOP2, Opcode: 31, ArchMask: all},
		{Mnemonic: "v_cvt_pkaccum_u8_f32", Family: VOP2, Opcode: 32, ArchMask: all},
		{Mnemonic: "v_cvt_pknorm_i16_f32", Family: VOP2, Opcode: 33, ArchMask: all},
		{Mnemonic: "v_cvt_pknorm_u16_f32", Family: VOP2, Opcode: 34, ArchMask: all},
		{Mnemonic: "v_cvt_pkrtz_f16_f32", Family: VOP2, Opcode: 35, ArchMask: all},
		{Mnemonic: "v_cvt_pk_u16_u32", Family: VOP2, Opcode: 36, ArchMask: all},
		{Mnemonic: "v_cvt_pk_i16_i32", Family: VOP2, Opcode: 37, ArchMask: all},
		{Mnemonic: "v_add_f16", Family: VOP2, Opcode: 38, ArchMask: from12},
		{Mnemonic: "v_sub_f16", Family: VOP2, Opcode: 39, ArchMask: from12},
		{Mnemonic: "v_subrev_f16", Family: VOP2, Opcode: 40, ArchMask: from12},
		{Mnemonic: "v_mul_f16", Family: VOP2, Opcode: 41, ArchMask: from12},
		{Mnemonic: "v_mac_f16", Family: VOP2, Opcode: 42, ArchMask: from12},
		{Mnemonic: "v_madmk_f16", Family: VOP2, Opcode: 43, ArchMask: from12},
		{Mnemonic: "v_madak_f16", Family: VOP2, Opcode: 44, ArchMask: from12},
		{Mnemonic: "v_add_u16", Family: VOP2, Opcode: 45, ArchMask: from12},
		{Mnemonic: "v_sub_u16", Family: VOP2, Opcode: 46, ArchMask: from12},
		{Mnemonic: "v_subrev_u16", Family: VOP2, Opcode: 47, ArchMask: from12},
		{Mnemonic: "v_mul_lo_u16", Family: VOP2, Opcode: 48, ArchMask: from12},
		{Mnemonic: "v_lshlrev_b16", Family: VOP2, Opcode: 49, ArchMask: from12},
		{Mnemonic: "v_lshrrev_b16", Family: VOP2, Opcode: 50, ArchMask: from12},
		{Mnemonic: "v_ashrrev_i16", Family: VOP2, Opcode: 51, ArchMask: from12},
		{Mnemonic: "v_max_f16", Family: VOP2, Opcode: 52, ArchMask: from12},
		{Mnemonic: "v_min_f16", Family: VOP2, Opcode: 53, ArchMask: from12},
		{Mnemonic: "v_max_u16", Family: VOP2, Opcode: 54, ArchMask: from12},
		{Mnemonic: "v_max_i16", Family: VOP2, Opcode: 55, ArchMask: from12},
		{Mnemonic: "v_min_u16", Family: VOP2, Opcode: 56, ArchMask: from12},
		{Mnemonic: "v_min_i16", Family: VOP2, Opcode: 57, ArchMask: from12},
		{Mnemonic: "v_ldexp_f16", Family: VOP2, Opcode: 58, ArchMask: from12},

		// VOPC -- a representative cross-section; full §6 naming pattern is
		// v_cmp[x]_<op>_<type>, op in {eq,lg,gt,ge,lt,le,o,u} and variants.
		{Mnemonic: "v_cmp_eq_f32", Family: VOPC, Opcode: 2, Flags: VOPCDefaultVCC, ArchMask: all},
		{Mnemonic: "v_cmp_le_f32", Family: VOPC, Opcode: 3, Flags: VOPCDefaultVCC, ArchMask: all},
		{Mnemonic: "v_cmp_gt_f32", Family: VOPC, Opcode: 4, Flags: VOPCDefaultVCC, ArchMask: all},
		{Mnemonic: "v_cmp_lg_f32", Family: VOPC, Opcode: 5, Flags: VOPCDefaultVCC, ArchMask: all},
		{Mnemonic: "v_cmp_ge_f32", Family: VOPC, Opcode: 6, Flags: VOPCDefaultVCC, ArchMask: all},
		{Mnemonic: "v_cmp_o_f32", Family: VOPC, Opcode: 7, Flags: VOPCDefaultVCC, ArchMask: all},
		{Mnemonic: "v_cmp_u_f32", Family: VOPC, Opcode: 8, Flags: VOPCDefaultVCC, ArchMask: all},
		{Mnemonic: "v_cmp_lt_f32", Family: VOPC, Opcode: 1, Flags: VOPCDefaultVCC, ArchMask: all},
		{Mnemonic: "v_cmpx_eq_f32", Family: VOPC, Opcode: 18, ArchMask: all},
		{Mnemonic: "v_cmpx_lt_f32", Family: VOPC, Opcode: 17, ArchMask: all},
		{Mnemonic: "v_cmp_eq_i32", Family: VOPC, Opcode: 66, Flags: VOPCDefaultVCC, ArchMask: all},
		{Mnemonic: "v_cmp_lt_i32", Family: VOPC, Opcode: 65, Flags: VOPCDefaultVCC, ArchMask: all},
		{Mnemonic: "v_cmp_le_i32", Family: VOPC, Opcode: 67, Flags: VOPCDefaultVCC, ArchMask: all},
		{Mnemonic: "v_cmp_gt_i32", Family: VOPC, Opcode: 68, Flags: VOPCDefaultVCC, ArchMask: all},
		{Mnemonic: "v_cmp_ge_i32", Family: VOPC, Opcode: 70, Flags: VOPCDefaultVCC, ArchMask: all},
		{Mnemonic: "v_cmp_ne_i32", Family: VOPC, Opcode: 69, Flags: VOPCDefaultVCC, ArchMask: all},
		{Mnemonic: "v_cmp_eq_u32", Family: VOPC, Opcode: 194, Flags: VOPCDefaultVCC, ArchMask: all},
		{Mnemonic: "v_cmp_lt_u32", Family: VOPC, Opcode: 193, Flags: VOPCDefaultVCC, ArchMask: all},
		{Mnemonic: "v_cmp_gt_u32", Family: VOPC, Opcode: 196, Flags: VOPCDefaultVCC, ArchMask: all},
		{Mnemonic: "v_cmp_ge_u32", Family: VOPC, Opcode: 198, Flags: VOPCDefaultVCC, ArchMask: all},
		{Mnemonic: "v_cmp_ne_u32", Family: VOPC, Opcode: 197, Flags: VOPCDefaultVCC, ArchMask: all},
		{Mnemonic: "v_cmpx_gt_u32", Family: VOPC, Opcode: 132, ArchMask: all},
		{Mnemonic: "v_cmp_class_f32", Family: VOPC, Opcode: 136, Flags: VOPCDefaultVCC, ArchMask: all},

		// VOP3A -- promoted VALU forms plus extended-opcode-only instructions.
		{Mnemonic: "v_mad_legacy_f32", Family: VOP3A, Opcode: 320, ArchMask: all},
		{Mnemonic: "v_mad_f32", Family: VOP3A, Opcode: 321, ArchMask: all},
		{Mnemonic: "v_mad_i32_i24", Family: VOP3A, Opcode: 322, ArchMask: all},
		{Mnemonic: "v_mad_u32_u24", Family: VOP3A, Opcode: 323, ArchMask: all},
		{Mnemonic: "v_cubeid_f32", Family: VOP3A, Opcode: 324, ArchMask: all},
		{Mnemonic: "v_cubesc_f32", Family: VOP3A, Opcode: 325, ArchMask: all},
		{Mnemonic: "v_cubetc_f32", Family: VOP3A, Opcode: 326, ArchMask: all},
		{Mnemonic: "v_cubema_f32", Family: VOP3A, Opcode: 327, ArchMask: all},
		{Mnemonic: "v_bfe_u32", Family: VOP3A, Opcode: 328, ArchMask: all},
		{Mnemonic: "v_bfe_i32", Family: VOP3A, Opcode: 329, ArchMask: all},
		{Mnemonic: "v_bfi_b32", Family: VOP3A, Opcode: 330, ArchMask: all},
		{Mnemonic: "v_fma_f32", Family: VOP3A, Opcode: 331, ArchMask: all},
		{Mnemonic: "v_fma_f64", Family: VOP3A, Opcode: 332, Flags: RegDst64 | RegSrc064 | RegSrc164, ArchMask: all},
		{Mnemonic: "v_lerp_u8", Family: VOP3A, Opcode: 333, ArchMask: all},
		{Mnemonic: "v_alignbit_b32", Family: VOP3A, Opcode: 334, ArchMask: all},
		{Mnemonic: "v_alignbyte_b32", Family: VOP3A, Opcode: 335, ArchMask: all},
		{Mnemonic: "v_min3_f32", Family: VOP3A, Opcode: 336, ArchMask: all},
		{Mnemonic: "v_min3_i32", Family: VOP3A, Opcode: 337, ArchMask: all},
		{Mnemonic: "v_min3_u32", Family: VOP3A, Opcode: 338, ArchMask: all},
		{Mnemonic: "v_max3_f32", Family: VOP3A, Opcode: 339, ArchMask: all},
		{Mnemonic: "v_max3_i32", Family: VOP3A, Opcode: 340, ArchMask: all},
		{Mnemonic: "v_max3_u32", Family: VOP3A, Opcode: 341, ArchMask: all},
		{Mnemonic: "v_med3_f32", Family: VOP3A, Opcode: 342, ArchMask: all},
		{Mnemonic: "v_med3_i32", Family: VOP3A, Opcode: 343, ArchMask: all},
		{Mnemonic: "v_med3_u32", Family: VOP3A, Opcode: 344, ArchMask: all},
		{Mnemonic: "v_sad_u8", Family: VOP3A, Opcode: 345, ArchMask: all},
		{Mnemonic: "v_sad_u16", Family: VOP3A, Opcode: 347, ArchMask: all},
		{Mnemonic: "v_sad_u32", Family: VOP3A, Opcode: 348, ArchMask: all},
		{Mnemonic: "v_cvt_pk_u8_f32", Family: VOP3A, Opcode: 349, ArchMask: all},
		{Mnemonic: "v_div_fixup_f32", Family: VOP3A, Opcode: 350, ArchMask: all},
		{Mnemonic: "v_div_fixup_f64", Family: VOP3A, Opcode: 351, Flags: RegDst64 | RegSrc064 | RegSrc164, ArchMask: all},
		{Mnemonic: "v_div_fmas_f32", Family: VOP3A, Opcode: 358, ArchMask: all},
		{Mnemonic: "v_div_fmas_f64", Family: VOP3A, Opcode: 359, Flags: RegDst64 | RegSrc064 | RegSrc164, ArchMask: all},
		{Mnemonic: "v_msad_u8", Family: VOP3A, Opcode: 360, ArchMask: all},
		{Mnemonic: "v_qsad_pk_u16_u8", Family: VOP3A, Opcode: 361, Flags: RegDst64 | RegSrc064, ArchMask: all},
		{Mnemonic: "v_mqsad_pk_u16_u8", Family: VOP3A, Opcode: 362, Flags: RegDst64 | RegSrc064, ArchMask: all},
		{Mnemonic: "v_mqsad_u32_u8", Family: VOP3A, Opcode: 363, ArchMask: all},
		{Mnemonic: "v_mad_u64_u32", Family: VOP3A, Opcode: 364, Flags: RegDst64 | RegSrc164 | VOP3BExtraSdst, ArchMask: all},
		{Mnemonic: "v_mad_i64_i32", Family: VOP3A, Opcode: 365, Flags: RegDst64 | RegSrc164 | VOP3BExtraSdst, ArchMask: all},
		{Mnemonic: "v_perm_b32", Family: VOP3A, Opcode: 372, ArchMask: from12},
		{Mnemonic: "v_interp_p1_f32_e64", Family: VOP3A, Opcode: 393, ArchMask: from12},
		{Mnemonic: "v_interp_p2_f32_e64", Family: VOP3A, Opcode: 394, ArchMask: from12},
		{Mnemonic: "v_add_i32_e64", Family: VOP3A, Opcode: 395, ArchMask: from12},
		{Mnemonic: "v_sub_i32_e64", Family: VOP3A, Opcode: 396, ArchMask: from12},

		// VOP3B -- vop2/vop3a variants with a carried scalar-destination.
		{Mnemonic: "v_add_co_u32", Family: VOP3B, Opcode: 25, Flags: VOP3BExtraSdst, ArchMask: from12},
		{Mnemonic: "v_sub_co_u32", Family: VOP3B, Opcode: 26, Flags: VOP3BExtraSdst, ArchMask: from12},
		{Mnemonic: "v_subrev_co_u32", Family: VOP3B, Opcode: 27, Flags: VOP3BExtraSdst, ArchMask: from12},
		{Mnemonic: "v_addc_co_u32", Family: VOP3B, Opcode: 28, Flags: VOP3BExtraSdst, ArchMask: from12},
		{Mnemonic: "v_subb_co_u32", Family: VOP3B, Opcode: 29, Flags: VOP3BExtraSdst, ArchMask: from12},
		{Mnemonic: "v_div_scale_f32", Family: VOP3B, Opcode: 356, Flags: VOP3BExtraSdst, ArchMask: all},
		{Mnemonic: "v_div_scale_f64", Family: VOP3B, Opcode: 357, Flags: RegDst64 | RegSrc064 | RegSrc164 | VOP3BExtraSdst, ArchMask: all},

		// VOP3P -- packed fp16/i16 SIMD ops.
		{Mnemonic: "v_pk_mad_i16", Family: VOP3P, Opcode: 0, ArchMask: from14},
		{Mnemonic: "v_pk_mul_lo_u16", Family: VOP3P, Opcode: 1, ArchMask: from14},
		{Mnemonic: "v_pk_add_i16", Family: VOP3P, Opcode: 2, ArchMask: from14},
		{Mnemonic: "v_pk_sub_i16", Family: VOP3P, Opcode: 3, ArchMask: from14},
		{Mnemonic: "v_pk_max_i16", Family: VOP3P, Opcode: 5, ArchMask: from14},
		{Mnemonic: "v_pk_min_i16", Family: VOP3P, Opcode: 6, ArchMask: from14},
		{Mnemonic: "v_pk_mad_u16", Family: VOP3P, Opcode: 7, ArchMask: from14},
		{Mnemonic: "v_pk_add_u16", Family: VOP3P, Opcode: 9, ArchMask: from14},
		{Mnemonic: "v_pk_sub_u16", Family: VOP3P, Opcode: 10, ArchMask: from14},
		{Mnemonic: "v_pk_max_u16", Family: VOP3P, Opcode: 12, ArchMask: from14},
		{Mnemonic: "v_pk_min_u16", Family: VOP3P, Opcode: 13, ArchMask: from14},
		{Mnemonic: "v_pk_fma_f16", Family: VOP3P, Opcode: 14, ArchMask: from14},
		{Mnemonic: "v_pk_add_f16", Family: VOP3P, Opcode: 15, ArchMask: from14},
		{Mnemonic: "v_pk_mul_f16", Family: VOP3P, Opcode: 16, ArchMask: from14},
		{Mnemonic: "v_pk_min_f16", Family: VOP3P, Opcode: 17, ArchMask: from14},
		{Mnemonic: "v_pk_max_f16", Family: VOP3P, Opcode: 18, ArchMask: from14},

		// VINTRP
		{Mnemonic: "v_interp_p1_f32", Family: VINTRP, Opcode: 0, ArchMask: all},
		{Mnemonic: "v_interp_p2_f32", Family: VINTRP, Opcode: 1, ArchMask: all},
		{Mnemonic: "v_interp_mov_f32", Family: VINTRP, Opcode: 2, ArchMask: all},

		// DS
		{Mnemonic: "ds_add_u32", Family: DS, Opcode: 0, ArchMask: all},
		{Mnemonic: "ds_sub_u32", Family: DS, Opcode: 1, ArchMask: all},
		{Mnemonic: "ds_and_b32", Family: DS, Opcode: 5, ArchMask: all},
		{Mnemonic: "ds_or_b32", Family: DS, Opcode: 6, ArchMask: all},
		{Mnemonic: "ds_xor_b32", Family: DS, Opcode: 7, ArchMask: all},
		{Mnemonic: "ds_min_i32", Family: DS, Opcode: 3, ArchMask: all},
		{Mnemonic: "ds_max_i32", Family: DS, Opcode: 4, ArchMask: all},
		{Mnemonic: "ds_write_b32", Family: DS, Opcode: 13, ArchMask: all},
		{Mnemonic: "ds_write2_b32", Family: DS, Opcode: 14, ArchMask: all},
		{Mnemonic: "ds_write_b8", Family: DS, Opcode: 30, ArchMask: all},
		{Mnemonic: "ds_write_b16", Family: DS, Opcode: 31, ArchMask: all},
		{Mnemonic: "ds_add_rtn_u32", Family: DS, Opcode: 32, ArchMask: all},
		{Mnemonic: "ds_write_b64", Family: DS, Opcode: 77, Flags: DS2VCC, ArchMask: all},
		{Mnemonic: "ds_write2_b64", Family: DS, Opcode: 78, Flags: DS2VCC, ArchMask: all},
		{Mnemonic: "ds_read_b32", Family: DS, Opcode: 54, ArchMask: all},
		{Mnemonic: "ds_read2_b32", Family: DS, Opcode: 55, ArchMask: all},
		{Mnemonic: "ds_read_i8", Family: DS, Opcode: 58, ArchMask: all},
		{Mnemonic: "ds_read_u8", Family: DS, Opcode: 59, ArchMask: all},
		{Mnemonic: "ds_read_i16", Family: DS, Opcode: 60, ArchMask: all},
		{Mnemonic: "ds_read_u16", Family: DS, Opcode: 61, ArchMask: all},
		{Mnemonic: "ds_read_b64", Family: DS, Opcode: 118, Flags: DS2VCC, ArchMask: all},
		{Mnemonic: "ds_read2_b64", Family: DS, Opcode: 119, Flags: DS2VCC, ArchMask: all},
		{Mnemonic: "ds_swizzle_b32", Family: DS, Opcode: 53, ArchMask: all},
		{Mnemonic: "ds_gws_init", Family: DS, Opcode: 25, Flags: GDS, ArchMask: all},
		{Mnemonic: "ds_gws_sema_v", Family: DS, Opcode: 26, Flags: GDS, ArchMask: all},
		{Mnemonic: "ds_gws_barrier", Family: DS, Opcode: 29, Flags: GDS, ArchMask: all},
		{Mnemonic: "ds_nop", Family: DS, Opcode: 20, ArchMask: from12},

		// MUBUF
		{Mnemonic: "buffer_load_format_x", Family: MUBUF, Opcode: 0, ArchMask: all},
		{Mnemonic: "buffer_load_format_xy", Family: MUBUF, Opcode: 1, ArchMask: all},
		{Mnemonic: "buffer_load_format_xyz", Family: MUBUF, Opcode: 2, ArchMask: all},
		{Mnemonic: "buffer_load_format_xyzw", Family: MUBUF, Opcode: 3, ArchMask: all},
		{Mnemonic: "buffer_store_format_x", Family: MUBUF, Opcode: 4, ArchMask: all},
		{Mnemonic: "buffer_store_format_xyzw", Family: MUBUF, Opcode: 7, ArchMask: all},
		{Mnemonic: "buffer_load_format_d16_x", Family: MUBUF, Opcode: 8, Flags: MUBUFD16, ArchMask: from12},
		{Mnemonic: "buffer_load_ubyte", Family: MUBUF, Opcode: 16, ArchMask: all},
		{Mnemonic: "buffer_load_sbyte", Family: MUBUF, Opcode: 17, ArchMask: all},
		{Mnemonic: "buffer_load_ushort", Family: MUBUF, Opcode: 18, ArchMask: all},
		{Mnemonic: "buffer_load_sshort", Family: MUBUF, Opcode: 19, ArchMask: all},
		{Mnemonic: "buffer_load_dword", Family: MUBUF, Opcode: 20, ArchMask: all},
		{Mnemonic: "buffer_load_dwordx2", Family: MUBUF, Opcode: 21, ArchMask: all},
		{Mnemonic: "buffer_load_dwordx3", Family: MUBUF, Opcode: 22, ArchMask: from14},
		{Mnemonic: "buffer_load_dwordx4", Family: MUBUF, Opcode: 23, ArchMask: all},
		{Mnemonic: "buffer_store_byte", Family: MUBUF, Opcode: 24, ArchMask: all},
		{Mnemonic: "buffer_store_short", Family: MUBUF, Opcode: 26, ArchMask: all},
		{Mnemonic: "buffer_store_dword", Family: MUBUF, Opcode: 28, ArchMask: all},
		{Mnemonic: "buffer_store_dwordx2", Family: MUBUF, Opcode: 29, ArchMask: all},
		{Mnemonic: "buffer_store_dwordx4", Family: MUBUF, Opcode: 31, ArchMask: all},
		{Mnemonic: "buffer_atomic_swap", Family: MUBUF, Opcode: 48, ArchMask: all},
		{Mnemonic: "buffer_atomic_add", Family: MUBUF, Opcode: 50, ArchMask: all},
		{Mnemonic: "buffer_atomic_sub", Family: MUBUF, Opcode: 51, ArchMask: all},
		{Mnemonic: "buffer_atomic_cmpswap", Family: MUBUF, Opcode: 49, ArchMask: all},
		{Mnemonic: "buffer_wbinvl1", Family: MUBUF, Opcode: 61, ArchMask: all},

		// MTBUF
		{Mnemonic: "tbuffer_load_format_x", Family: MTBUF, Opcode: 0, ArchMask: all},
		{Mnemonic: "tbuffer_load_format_xy", Family: MTBUF, Opcode: 1, ArchMask: all},
		{Mnemonic: "tbuffer_load_format_xyz", Family: MTBUF, Opcode: 2, ArchMask: all},
		{Mnemonic: "tbuffer_load_format_xyzw", Family: MTBUF, Opcode: 3, ArchMask: all},
		{Mnemonic: "tbuffer_store_format_x", Family: MTBUF, Opcode: 4, ArchMask: all},
		{Mnemonic: "tbuffer_store_format_xy", Family: MTBUF, Opcode: 5, ArchMask: all},
		{Mnemonic: "tbuffer_store_format_xyz", Family: MTBUF, Opcode: 6, ArchMask: all},
		{Mnemonic: "tbuffer_store_format_xyzw", Family: MTBUF, Opcode: 7, ArchMask: all},

		// MIMG
		{Mnemonic: "image_load", Family: MIMG, Opcode: 0, ArchMask: all},
		{Mnemonic: "image_load_mip", Family: MIMG, Opcode: 1, ArchMask: all},
		{Mnemonic: "image_store", Family: MIMG, Opcode: 8, ArchMask: all},
		{Mnemonic: "image_store_mip", Family: MIMG, Opcode: 9, ArchMask: all},
		{Mnemonic: "image_get_resinfo", Family: MIMG, Opcode: 14, ArchMask: all},
		{Mnemonic: "image_atomic_swap", Family: MIMG, Opcode: 16, ArchMask: all},
		{Mnemonic: "image_atomic_add", Family: MIMG, Opcode: 18, ArchMask: all},
		{Mnemonic: "image_sample", Family: MIMG, Opcode: 32, Flags: MIMGSample, ArchMask: all},
		{Mnemonic: "image_sample_cl", Family: MIMG, Opcode: 33, Flags: MIMGSample, ArchMask: all},
		{Mnemonic: "image_sample_d", Family: MIMG, Opcode: 36, Flags: MIMGSample, ArchMask: all},
		{Mnemonic: "image_sample_l", Family: MIMG, Opcode: 38, Flags: MIMGSample, ArchMask: all},
		{Mnemonic: "image_sample_b", Family: MIMG, Opcode: 39, Flags: MIMGSample, ArchMask: all},
		{Mnemonic: "image_sample_c", Family: MIMG, Opcode: 40, Flags: MIMGSample, ArchMask: all},
		{Mnemonic: "image_sample_c_l", Family: MIMG, Opcode: 46, Flags: MIMGSample, ArchMask: all},
		{Mnemonic: "image_gather4", Family: MIMG, Opcode: 64, Flags: MIMGSample | MIMGVdata4, ArchMask: all},
		{Mnemonic: "image_get_lod", Family: MIMG, Opcode: 60, Flags: MIMGSample, ArchMask: all},

		// EXP -- single wire mnemonic, the target/modifiers select behavior.
		{Mnemonic: "exp", Family: EXP, Opcode: 0, ArchMask: all},

		// FLAT
		{Mnemonic: "flat_load_ubyte", Family: FLAT, Opcode: 8, ArchMask: all},
		{Mnemonic: "flat_load_sbyte", Family: FLAT, Opcode: 9, ArchMask: all},
		{Mnemonic: "flat_load_ushort", Family: FLAT, Opcode: 10, ArchMask: all},
		{Mnemonic: "flat_load_sshort", Family: FLAT, Opcode: 11, ArchMask: all},
		{Mnemonic: "flat_load_dword", Family: FLAT, Opcode: 12, ArchMask: all},
		{Mnemonic: "flat_load_dwordx2", Family: FLAT, Opcode: 13, ArchMask: all},
		{Mnemonic: "flat_load_dwordx3", Family: FLAT, Opcode: 14, ArchMask: from14},
		{Mnemonic: "flat_load_dwordx4", Family: FLAT, Opcode: 15, ArchMask: all},
		{Mnemonic: "flat_store_byte", Family: FLAT, Opcode: 24, ArchMask: all},
		{Mnemonic: "flat_store_short", Family: FLAT, Opcode: 26, ArchMask: all},
		{Mnemonic: "flat_store_dword", Family: FLAT, Opcode: 28, ArchMask: all},
		{Mnemonic: "flat_store_dwordx2", Family: FLAT, Opcode: 29, ArchMask: all},
		{Mnemonic: "flat_store_dwordx4", Family: FLAT, Opcode: 31, ArchMask: all},
		{Mnemonic: "flat_atomic_swap", Family: FLAT, Opcode: 48, ArchMask: all},
		{Mnemonic: "flat_atomic_add", Family: FLAT, Opcode: 50, ArchMask: all},
		{Mnemonic: "flat_atomic_cmpswap", Family: FLAT, Opcode: 49, ArchMask: all},
		// global_* and scratch_* are not distinct opcodes: they are the same
		// FLAT opcode with Mods.Seg set to FLAT_GLOBAL/FLAT_SCRATCH (§6), so
		// they are not given their own catalog rows here (that would make
		// the reverse (family,opcode,arch) slot ambiguous). gcnasm's parser
		// resolves a "global_"/"scratch_" mnemonic to the matching "flat_"
		// entry and sets Mods.Seg directly; gcndisasm derives the printed
		// prefix from the decoded Seg field rather than from the catalog
		// entry's mnemonic.
	}

	return rows
}
