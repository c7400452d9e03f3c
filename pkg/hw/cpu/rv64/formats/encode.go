package formats

import "github.com/Manu343726/rvdecode/pkg/utils"

// Encoders build standard instruction words from their fields. They are the inverse of the
// field extraction functions: immediates are truncated to the width of the format.

// Encodes an R-type instruction
func EncodeR(opcode MajorOpcode, rd, funct3, rs1, rs2, funct7 uint32) uint32 {
	var word uint32
	view := utils.CreateBitView(&word)
	view.Write(uint32(opcode), 0, 7)
	view.Write(rd, 7, 5)
	view.Write(funct3, 12, 3)
	view.Write(rs1, 15, 5)
	view.Write(rs2, 20, 5)
	view.Write(funct7, 25, 7)
	return word
}

// Encodes an I-type instruction
func EncodeI(opcode MajorOpcode, rd, funct3, rs1 uint32, imm int64) uint32 {
	var word uint32
	view := utils.CreateBitView(&word)
	view.Write(uint32(opcode), 0, 7)
	view.Write(rd, 7, 5)
	view.Write(funct3, 12, 3)
	view.Write(rs1, 15, 5)
	view.Write(uint32(imm), 20, 12)
	return word
}

// Encodes an S-type instruction
func EncodeS(opcode MajorOpcode, funct3, rs1, rs2 uint32, imm int64) uint32 {
	immBits := uint32(imm)

	var word uint32
	view := utils.CreateBitView(&word)
	view.Write(uint32(opcode), 0, 7)
	view.Write(immBits, 7, 5)
	view.Write(funct3, 12, 3)
	view.Write(rs1, 15, 5)
	view.Write(rs2, 20, 5)
	view.Write(immBits>>5, 25, 7)
	return word
}

// Encodes a B-type instruction. Bit 0 of the offset is dropped.
func EncodeB(opcode MajorOpcode, funct3, rs1, rs2 uint32, imm int64) uint32 {
	immBits := uint32(imm)

	var word uint32
	view := utils.CreateBitView(&word)
	view.Write(uint32(opcode), 0, 7)
	view.Write(immBits>>11, 7, 1)  // imm[11]
	view.Write(immBits>>1, 8, 4)   // imm[4:1]
	view.Write(funct3, 12, 3)
	view.Write(rs1, 15, 5)
	view.Write(rs2, 20, 5)
	view.Write(immBits>>5, 25, 6)  // imm[10:5]
	view.Write(immBits>>12, 31, 1) // imm[12]
	return word
}

// Encodes a U-type instruction. The lower 12 bits of imm are dropped.
func EncodeU(opcode MajorOpcode, rd uint32, imm uint32) uint32 {
	var word uint32
	view := utils.CreateBitView(&word)
	view.Write(uint32(opcode), 0, 7)
	view.Write(rd, 7, 5)
	view.Write(imm>>12, 12, 20)
	return word
}

// Encodes a J-type instruction. Bit 0 of the offset is dropped.
func EncodeJ(opcode MajorOpcode, rd uint32, imm int64) uint32 {
	immBits := uint32(imm)

	var word uint32
	view := utils.CreateBitView(&word)
	view.Write(uint32(opcode), 0, 7)
	view.Write(rd, 7, 5)
	view.Write(immBits>>12, 12, 8) // imm[19:12]
	view.Write(immBits>>11, 20, 1) // imm[11]
	view.Write(immBits>>1, 21, 10) // imm[10:1]
	view.Write(immBits>>20, 31, 1) // imm[20]
	return word
}
