// Package compressed implements the RV64 C extension: 16 bit compressed instruction encodings.
//
// Compressed words are handled in two ways. Expand maps any halfword to its bit exact standard
// 32 bit equivalent (or the InvalidExpansion sentinel), so the standard decoder can be reused
// as is. DecodeQuadrant decodes the quadrant 0 load/store forms directly into instructions and
// is kept as a cross check of the expander.
//
// Which compressed forms are legal, reserved or HINTs is data, not code: see Forms.
package compressed

import "github.com/Manu343726/rvdecode/pkg/utils"

// Compressed register fields are 3 bits wide and address x8 to x15
const RegisterPrimeOffset = 8

// Stack pointer register, implicit base of the C.*SP forms
const SP = 2

// Link register, implicit destination of C.JALR
const RA = 1

// Returns the quadrant of a compressed instruction, bits [1:0]
func Quadrant(hw uint16) uint16 {
	return utils.Field(hw, 0, 2)
}

// Returns the funct3 field of a compressed instruction, bits [15:13]
func Funct3(hw uint16) uint16 {
	return utils.Field(hw, 13, 3)
}

// Full width rd/rs1 field, bits [11:7]
func Rd(hw uint16) uint32 {
	return uint32(utils.Field(hw, 7, 5))
}

// Full width rs2 field, bits [6:2]
func Rs2(hw uint16) uint32 {
	return uint32(utils.Field(hw, 2, 5))
}

// rd' / rs2' field, bits [4:2], mapped to x8-x15
func RdPrime(hw uint16) uint32 {
	return uint32(utils.Field(hw, 2, 3)) + RegisterPrimeOffset
}

// rs1' / rd' field of the CB/CA/CL/CS formats, bits [9:7], mapped to x8-x15
func Rs1Prime(hw uint16) uint32 {
	return uint32(utils.Field(hw, 7, 3)) + RegisterPrimeOffset
}

// funct2 field of the C.SRLI/C.SRAI/C.ANDI group, bits [11:10]
func Funct2(hw uint16) uint16 {
	return utils.Field(hw, 10, 2)
}

// Second funct2 field of the register-register arithmetic forms, bits [6:5]
func ArithFunct2(hw uint16) uint16 {
	return utils.Field(hw, 5, 2)
}

// Returns bit 12, which splits several funct3 groups in two
func Bit12(hw uint16) uint16 {
	return utils.Field(hw, 12, 1)
}

// Places width bits of hw starting at bit into position dest of the result
func place(hw uint16, bit int, width int, dest int) uint32 {
	return uint32(utils.Field(hw, bit, width)) << dest
}

// CIW (C.ADDI4SPN) immediate: nzuimm[5:4|9:6|2|3] at bits [12:11|10:7|6|5]. Unsigned, scaled by 4.
func ImmCIW(hw uint16) uint32 {
	return place(hw, 11, 2, 4) |
		place(hw, 7, 4, 6) |
		place(hw, 6, 1, 2) |
		place(hw, 5, 1, 3)
}

// CL/CS word immediate (C.LW, C.SW): uimm[5:3] at [12:10], uimm[2] at [6], uimm[6] at [5]
func ImmCLW(hw uint16) uint32 {
	return place(hw, 10, 3, 3) |
		place(hw, 6, 1, 2) |
		place(hw, 5, 1, 6)
}

// CL/CS doubleword immediate (C.LD, C.SD, C.FLD, C.FSD): uimm[5:3] at [12:10], uimm[7:6] at [6:5]
func ImmCLD(hw uint16) uint32 {
	return place(hw, 10, 3, 3) |
		place(hw, 5, 2, 6)
}

// CI immediate (C.ADDI, C.ADDIW, C.LI, C.ANDI): imm[5] at [12], imm[4:0] at [6:2], sign extended
func ImmCI(hw uint16) int64 {
	return utils.SignExtend(place(hw, 12, 1, 5)|place(hw, 2, 5, 0), 6)
}

// CI shift amount (C.SLLI, C.SRLI, C.SRAI): shamt[5] at [12], shamt[4:0] at [6:2]. Unsigned.
func ShamtCI(hw uint16) uint32 {
	return place(hw, 12, 1, 5) | place(hw, 2, 5, 0)
}

// C.LUI immediate: nzimm[17] at [12], nzimm[16:12] at [6:2], sign extended from bit 17
func ImmCLUI(hw uint16) int64 {
	return utils.SignExtend(place(hw, 12, 1, 17)|place(hw, 2, 5, 12), 18)
}

// C.ADDI16SP immediate: nzimm[9] at [12], nzimm[4|6|8:7|5] at [6|5|4:3|2], sign extended.
// Always a multiple of 16.
func ImmCADDI16SP(hw uint16) int64 {
	imm := place(hw, 12, 1, 9) |
		place(hw, 6, 1, 4) |
		place(hw, 5, 1, 6) |
		place(hw, 3, 2, 7) |
		place(hw, 2, 1, 5)
	return utils.SignExtend(imm, 10)
}

// C.LWSP immediate: uimm[5] at [12], uimm[4:2] at [6:4], uimm[7:6] at [3:2]
func ImmCLWSP(hw uint16) uint32 {
	return place(hw, 12, 1, 5) |
		place(hw, 4, 3, 2) |
		place(hw, 2, 2, 6)
}

// C.LDSP/C.FLDSP immediate: uimm[5] at [12], uimm[4:3] at [6:5], uimm[8:6] at [4:2]
func ImmCLDSP(hw uint16) uint32 {
	return place(hw, 12, 1, 5) |
		place(hw, 5, 2, 3) |
		place(hw, 2, 3, 6)
}

// C.SWSP immediate: uimm[5:2] at [12:9], uimm[7:6] at [8:7]
func ImmCSWSP(hw uint16) uint32 {
	return place(hw, 9, 4, 2) |
		place(hw, 7, 2, 6)
}

// C.SDSP/C.FSDSP immediate: uimm[5:3] at [12:10], uimm[8:6] at [9:7]
func ImmCSDSP(hw uint16) uint32 {
	return place(hw, 10, 3, 3) |
		place(hw, 7, 3, 6)
}

// CJ offset (C.J): offset[11|4|9:8|10|6|7|3:1|5] at [12|11|10:9|8|7|6|5:3|2], sign extended
func ImmCJ(hw uint16) int64 {
	imm := place(hw, 12, 1, 11) |
		place(hw, 11, 1, 4) |
		place(hw, 9, 2, 8) |
		place(hw, 8, 1, 10) |
		place(hw, 7, 1, 6) |
		place(hw, 6, 1, 7) |
		place(hw, 3, 3, 1) |
		place(hw, 2, 1, 5)
	return utils.SignExtend(imm, 12)
}

// CB branch offset (C.BEQZ, C.BNEZ): offset[8|4:3] at [12:10], offset[7:6|2:1|5] at [6:2], sign extended
func ImmCB(hw uint16) int64 {
	imm := place(hw, 12, 1, 8) |
		place(hw, 10, 2, 3) |
		place(hw, 5, 2, 6) |
		place(hw, 3, 2, 1) |
		place(hw, 2, 1, 5)
	return utils.SignExtend(imm, 9)
}
