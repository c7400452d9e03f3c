package compressed

import "github.com/Manu343726/rvdecode/pkg/hw/cpu/rv64/formats"

// Returned by Expand when a halfword has no standard equivalent. All ones is not a legal
// standard instruction (it is the start of the longest instruction length encoding).
const InvalidExpansion uint32 = 0xffffffff

// Returns the standard 32 bit instruction word equivalent to a compressed halfword.
//
// Reserved encodings, HINTs and halfwords with no mapping (including the all zero halfword and
// quadrant 3) return InvalidExpansion. Callers must check for it before decoding the result.
func Expand(hw uint16) uint32 {
	form := Classify(hw)
	if form == nil || form.Policy != Policy_Legal {
		return InvalidExpansion
	}

	return form.Expand(hw)
}

// Quadrant 0

func expandAddi4spn(hw uint16) uint32 {
	return formats.EncodeI(formats.MajorOpcode_OP_IMM, RdPrime(hw), 0b000, SP, int64(ImmCIW(hw)))
}

func expandFld(hw uint16) uint32 {
	return formats.EncodeI(formats.MajorOpcode_LOAD_FP, RdPrime(hw), 0b011, Rs1Prime(hw), int64(ImmCLD(hw)))
}

func expandLw(hw uint16) uint32 {
	return formats.EncodeI(formats.MajorOpcode_LOAD, RdPrime(hw), 0b010, Rs1Prime(hw), int64(ImmCLW(hw)))
}

func expandLd(hw uint16) uint32 {
	return formats.EncodeI(formats.MajorOpcode_LOAD, RdPrime(hw), 0b011, Rs1Prime(hw), int64(ImmCLD(hw)))
}

func expandFsd(hw uint16) uint32 {
	return formats.EncodeS(formats.MajorOpcode_STORE_FP, 0b011, Rs1Prime(hw), RdPrime(hw), int64(ImmCLD(hw)))
}

func expandSw(hw uint16) uint32 {
	return formats.EncodeS(formats.MajorOpcode_STORE, 0b010, Rs1Prime(hw), RdPrime(hw), int64(ImmCLW(hw)))
}

func expandSd(hw uint16) uint32 {
	return formats.EncodeS(formats.MajorOpcode_STORE, 0b011, Rs1Prime(hw), RdPrime(hw), int64(ImmCLD(hw)))
}

// Quadrant 1

func expandAddi(hw uint16) uint32 {
	return formats.EncodeI(formats.MajorOpcode_OP_IMM, Rd(hw), 0b000, Rd(hw), ImmCI(hw))
}

func expandAddiw(hw uint16) uint32 {
	return formats.EncodeI(formats.MajorOpcode_OP_IMM_32, Rd(hw), 0b000, Rd(hw), ImmCI(hw))
}

func expandLi(hw uint16) uint32 {
	return formats.EncodeI(formats.MajorOpcode_OP_IMM, Rd(hw), 0b000, 0, ImmCI(hw))
}

func expandAddi16sp(hw uint16) uint32 {
	return formats.EncodeI(formats.MajorOpcode_OP_IMM, SP, 0b000, SP, ImmCADDI16SP(hw))
}

func expandLui(hw uint16) uint32 {
	return formats.EncodeU(formats.MajorOpcode_LUI, Rd(hw), uint32(ImmCLUI(hw)))
}

func expandSrli(hw uint16) uint32 {
	return formats.EncodeI(formats.MajorOpcode_OP_IMM, Rs1Prime(hw), 0b101, Rs1Prime(hw), int64(ShamtCI(hw)))
}

// SRAI is SRLI with bit 30 set
func expandSrai(hw uint16) uint32 {
	return formats.EncodeI(formats.MajorOpcode_OP_IMM, Rs1Prime(hw), 0b101, Rs1Prime(hw), int64(0x400|ShamtCI(hw)))
}

func expandAndi(hw uint16) uint32 {
	return formats.EncodeI(formats.MajorOpcode_OP_IMM, Rs1Prime(hw), 0b111, Rs1Prime(hw), ImmCI(hw))
}

// Register-register forms operating on rd' = rd' op rs2'
func expandArith(funct3 uint32, funct7 uint32, word bool) func(uint16) uint32 {
	opcode := formats.MajorOpcode_OP
	if word {
		opcode = formats.MajorOpcode_OP_32
	}

	return func(hw uint16) uint32 {
		return formats.EncodeR(opcode, Rs1Prime(hw), funct3, Rs1Prime(hw), RdPrime(hw), funct7)
	}
}

func expandJ(hw uint16) uint32 {
	return formats.EncodeJ(formats.MajorOpcode_JAL, 0, ImmCJ(hw))
}

// Compares rs1' against x0
func expandBranch(funct3 uint32) func(uint16) uint32 {
	return func(hw uint16) uint32 {
		return formats.EncodeB(formats.MajorOpcode_BRANCH, funct3, Rs1Prime(hw), 0, ImmCB(hw))
	}
}

// Quadrant 2

func expandSlli(hw uint16) uint32 {
	return formats.EncodeI(formats.MajorOpcode_OP_IMM, Rd(hw), 0b001, Rd(hw), int64(ShamtCI(hw)))
}

func expandFldsp(hw uint16) uint32 {
	return formats.EncodeI(formats.MajorOpcode_LOAD_FP, Rd(hw), 0b011, SP, int64(ImmCLDSP(hw)))
}

func expandLwsp(hw uint16) uint32 {
	return formats.EncodeI(formats.MajorOpcode_LOAD, Rd(hw), 0b010, SP, int64(ImmCLWSP(hw)))
}

func expandLdsp(hw uint16) uint32 {
	return formats.EncodeI(formats.MajorOpcode_LOAD, Rd(hw), 0b011, SP, int64(ImmCLDSP(hw)))
}

func expandJr(hw uint16) uint32 {
	return formats.EncodeI(formats.MajorOpcode_JALR, 0, 0b000, Rd(hw), 0)
}

func expandMv(hw uint16) uint32 {
	return formats.EncodeR(formats.MajorOpcode_OP, Rd(hw), 0b000, 0, Rs2(hw), 0)
}

func expandEbreak(uint16) uint32 {
	return formats.EncodeI(formats.MajorOpcode_SYSTEM, 0, 0b000, 0, 1)
}

func expandJalr(hw uint16) uint32 {
	return formats.EncodeI(formats.MajorOpcode_JALR, RA, 0b000, Rd(hw), 0)
}

func expandAdd(hw uint16) uint32 {
	return formats.EncodeR(formats.MajorOpcode_OP, Rd(hw), 0b000, Rd(hw), Rs2(hw), 0)
}

func expandFsdsp(hw uint16) uint32 {
	return formats.EncodeS(formats.MajorOpcode_STORE_FP, 0b011, SP, Rs2(hw), int64(ImmCSDSP(hw)))
}

func expandSwsp(hw uint16) uint32 {
	return formats.EncodeS(formats.MajorOpcode_STORE, 0b010, SP, Rs2(hw), int64(ImmCSWSP(hw)))
}

func expandSdsp(hw uint16) uint32 {
	return formats.EncodeS(formats.MajorOpcode_STORE, 0b011, SP, Rs2(hw), int64(ImmCSDSP(hw)))
}
