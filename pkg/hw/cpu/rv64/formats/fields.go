// Package formats implements the RV64 standard (32 bit) instruction encoding formats.
//
// Every format is a carrier type wrapping the raw instruction word. Carriers never store
// decoded fields: register indices, immediates, shift amounts, CSR addresses and fence masks
// are computed on demand from the word, so a carrier is always a faithful reflection of the
// bits it was built from.
//
// The field extraction formulas are also exported as plain functions over uint32 so they can
// be tested against the ISA bit layout tables in isolation.
package formats

import "github.com/Manu343726/rvdecode/pkg/utils"

// Returns the major opcode, bits [6:0]
func Opcode(word uint32) MajorOpcode {
	return MajorOpcode(utils.Field(word, 0, 7))
}

// Returns the destination register index, bits [11:7]
func Rd(word uint32) uint32 {
	return utils.Field(word, 7, 5)
}

// Returns the funct3 sub-opcode, bits [14:12]
func Funct3(word uint32) uint32 {
	return utils.Field(word, 12, 3)
}

// Returns the first source register index, bits [19:15]
func Rs1(word uint32) uint32 {
	return utils.Field(word, 15, 5)
}

// Returns the second source register index, bits [24:20]
func Rs2(word uint32) uint32 {
	return utils.Field(word, 20, 5)
}

// Returns the funct7 sub-opcode, bits [31:25]
func Funct7(word uint32) uint32 {
	return utils.Field(word, 25, 7)
}

// Returns the funct6 sub-opcode of RV64 immediate shifts, bits [31:26]
func Funct6(word uint32) uint32 {
	return utils.Field(word, 26, 6)
}

// Returns the funct12 field of SYSTEM instructions, bits [31:20]
func Funct12(word uint32) uint32 {
	return utils.Field(word, 20, 12)
}

// I-type immediate: bits [31:20], sign extended from bit 11
func ImmI(word uint32) int64 {
	return utils.SignExtend(utils.Field(word, 20, 12), 12)
}

// S-type immediate: {bits [31:25], bits [11:7]}, sign extended from bit 11
func ImmS(word uint32) int64 {
	imm := utils.Field(word, 25, 7)<<5 | utils.Field(word, 7, 5)
	return utils.SignExtend(imm, 12)
}

// B-type immediate. The offset is stored as imm[12|10:5|4:1|11] at word bits [31|30:25|11:8|7].
// Bit 0 is always zero and the result is sign extended from bit 12.
func ImmB(word uint32) int64 {
	imm := utils.Field(word, 31, 1)<<12 | // imm[12]    <= [31]
		utils.Field(word, 7, 1)<<11 | // imm[11]    <= [7]
		utils.Field(word, 25, 6)<<5 | // imm[10:5]  <= [30:25]
		utils.Field(word, 8, 4)<<1 // imm[4:1]   <= [11:8]
	return utils.SignExtend(imm, 13)
}

// U-type immediate: bits [31:12] left in place, lower 12 bits zero. Unsigned.
func ImmU(word uint32) uint32 {
	return word &^ utils.AllOnes[uint32](12)
}

// J-type immediate. The offset is stored as imm[20|10:1|11|19:12] at word bits [31|30:21|20|19:12].
// Bit 0 is always zero and the result is sign extended from bit 20.
func ImmJ(word uint32) int64 {
	imm := utils.Field(word, 31, 1)<<20 | // imm[20]    <= [31]
		utils.Field(word, 12, 8)<<12 | // imm[19:12] <= [19:12]
		utils.Field(word, 20, 1)<<11 | // imm[11]    <= [20]
		utils.Field(word, 21, 10)<<1 // imm[10:1]  <= [30:21]
	return utils.SignExtend(imm, 21)
}

// Shift amount of 64 bit wide shifts, bits [25:20]
func Shamt6(word uint32) uint32 {
	return utils.Field(word, 20, 6)
}

// Shift amount of 32 bit narrowed (*W) shifts, bits [24:20]
func Shamt5(word uint32) uint32 {
	return utils.Field(word, 20, 5)
}

// CSR address, bits [31:20]. Unsigned.
func Csr(word uint32) uint32 {
	return utils.Field(word, 20, 12)
}

// CSR immediate, the 5 bit unsigned value stored in the rs1 field
func Zimm(word uint32) uint32 {
	return utils.Field(word, 15, 5)
}

// Returns true if the word uses the standard 32 bit instruction length encoding (bits [1:0] == 11)
func IsStandard(word uint32) bool {
	return utils.Field(word, 0, 2) == 0b11
}
