package compressed

import (
	"github.com/Manu343726/rvdecode/pkg/hw/cpu/rv64/formats"
	"github.com/Manu343726/rvdecode/pkg/hw/cpu/rv64/instructions"
	"github.com/Manu343726/rvdecode/pkg/utils"
)

// Decodes a compressed halfword directly into an instruction, without going through Expand.
//
// Only the quadrant 0 integer load and store forms (C.LW, C.LD, C.SW, C.SD) are supported.
// The all zero halfword decodes to the Illegal variant. Every other encoding, including
// quadrant 3, fails with ErrUnimplemented.
func DecodeQuadrant(hw uint16) (instructions.Instruction, error) {
	if hw == 0 {
		return instructions.Illegal{Raw: formats.Raw(0)}, nil
	}

	switch Quadrant(hw) {
	case 0b00:
		return decodeQuadrant0(hw)
	default:
		return nil, utils.MakeError(instructions.ErrUnimplemented, "compressed 0x%04x: quadrant %d", hw, Quadrant(hw))
	}
}

func decodeQuadrant0(hw uint16) (instructions.Instruction, error) {
	rs1 := uint32(hw>>7&0x7) + RegisterPrimeOffset
	rdOrRs2 := uint32(hw>>2&0x7) + RegisterPrimeOffset

	// uimm[5:3] lives at bits [12:10] in every form below
	uimm53 := uint32(hw >> 10 & 0x7)

	switch Funct3(hw) {
	case 0b010: // C.LW: lw rd', uimm[6:2](rs1')
		uimm := uimm53<<3 | uint32(hw>>6&0x1)<<2 | uint32(hw>>5&0x1)<<6
		return instructions.Lw{IType: formats.IType(uimm<<20 | rs1<<15 | 0b010<<12 | rdOrRs2<<7 | 0b0000011)}, nil
	case 0b011: // C.LD: ld rd', uimm[7:3](rs1')
		uimm := uimm53<<3 | uint32(hw>>5&0x3)<<6
		return instructions.Ld{IType: formats.IType(uimm<<20 | rs1<<15 | 0b011<<12 | rdOrRs2<<7 | 0b0000011)}, nil
	case 0b110: // C.SW: sw rs2', uimm[6:2](rs1')
		uimm := uimm53<<3 | uint32(hw>>6&0x1)<<2 | uint32(hw>>5&0x1)<<6
		return instructions.Sw{SType: formats.SType(uimm>>5<<25 | rdOrRs2<<20 | rs1<<15 | 0b010<<12 | (uimm&0x1f)<<7 | 0b0100011)}, nil
	case 0b111: // C.SD: sd rs2', uimm[7:3](rs1')
		uimm := uimm53<<3 | uint32(hw>>5&0x3)<<6
		return instructions.Sd{SType: formats.SType(uimm>>5<<25 | rdOrRs2<<20 | rs1<<15 | 0b011<<12 | (uimm&0x1f)<<7 | 0b0100011)}, nil
	default:
		return nil, utils.MakeError(instructions.ErrUnimplemented, "compressed 0x%04x: quadrant 0 funct3 %03b", hw, Funct3(hw))
	}
}
