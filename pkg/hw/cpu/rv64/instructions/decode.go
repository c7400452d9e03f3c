package instructions

import (
	"github.com/Manu343726/rvdecode/pkg/hw/cpu/rv64/formats"
	"github.com/Manu343726/rvdecode/pkg/utils"
)

// Fixed encodings of the SYSTEM instructions without operands
const (
	word_ECALL  uint32 = 0x00000073
	word_EBREAK uint32 = 0x00100073
	word_URET   uint32 = 0x00200073
	word_SRET   uint32 = 0x10200073
	word_MRET   uint32 = 0x30200073
	word_WFI    uint32 = 0x10500073
)

const (
	funct7_BASE       = 0b0000000
	funct7_ALT        = 0b0100000
	funct7_MULDIV     = 0b0000001
	funct7_SFENCE_VMA = 0b0001001
	funct6_SRAI       = 0b010000
	funct3_FENCE      = 0b000
	funct3_FENCE_I    = 0b001
)

// Decodes a standard 32 bit instruction word.
//
// The all zero word decodes to the Illegal variant. Compressed encodings (low bits other than 11)
// and undefined encodings inside implemented opcodes fail with ErrIllegal. Encodings that belong
// to extensions not implemented here fail with ErrUnimplemented.
func Decode(word uint32) (Instruction, error) {
	if word == 0 {
		return Illegal{formats.Raw(word)}, nil
	}

	if !formats.IsStandard(word) {
		return nil, utils.MakeError(ErrIllegal, "0x%08x is a compressed encoding, expand it first", word)
	}

	switch opcode := formats.Opcode(word); opcode {
	case formats.MajorOpcode_LUI:
		return Lui{formats.UType(word)}, nil
	case formats.MajorOpcode_AUIPC:
		return Auipc{formats.UType(word)}, nil
	case formats.MajorOpcode_JAL:
		return Jal{formats.JType(word)}, nil
	case formats.MajorOpcode_JALR:
		if formats.Funct3(word) != 0 {
			return nil, illegal(word)
		}
		return Jalr{formats.IType(word)}, nil
	case formats.MajorOpcode_BRANCH:
		return decodeBranch(word)
	case formats.MajorOpcode_LOAD:
		return decodeLoad(word)
	case formats.MajorOpcode_STORE:
		return decodeStore(word)
	case formats.MajorOpcode_OP_IMM:
		return decodeOpImm(word)
	case formats.MajorOpcode_OP_IMM_32:
		return decodeOpImm32(word)
	case formats.MajorOpcode_OP:
		return decodeOp(word)
	case formats.MajorOpcode_OP_32:
		return decodeOp32(word)
	case formats.MajorOpcode_MISC_MEM:
		return decodeMiscMem(word)
	case formats.MajorOpcode_SYSTEM:
		return decodeSystem(word)
	case formats.MajorOpcode_LOAD_FP,
		formats.MajorOpcode_STORE_FP,
		formats.MajorOpcode_MADD,
		formats.MajorOpcode_MSUB,
		formats.MajorOpcode_NMSUB,
		formats.MajorOpcode_NMADD,
		formats.MajorOpcode_OP_FP:
		return nil, utils.MakeError(ErrUnimplemented, "0x%08x: floating point (%v)", word, opcode)
	case formats.MajorOpcode_AMO:
		return nil, utils.MakeError(ErrUnimplemented, "0x%08x: atomics (%v)", word, opcode)
	default:
		return nil, utils.MakeError(ErrUnimplemented, "0x%08x: opcode %v", word, opcode)
	}
}

func illegal(word uint32) error {
	return utils.MakeError(ErrIllegal, "0x%08x (opcode %v, funct3 %03b, funct7 %07b)", word, formats.Opcode(word), formats.Funct3(word), formats.Funct7(word))
}

func decodeBranch(word uint32) (Instruction, error) {
	b := formats.BType(word)

	switch formats.Funct3(word) {
	case 0b000:
		return Beq{b}, nil
	case 0b001:
		return Bne{b}, nil
	case 0b100:
		return Blt{b}, nil
	case 0b101:
		return Bge{b}, nil
	case 0b110:
		return Bltu{b}, nil
	case 0b111:
		return Bgeu{b}, nil
	default:
		return nil, illegal(word)
	}
}

func decodeLoad(word uint32) (Instruction, error) {
	i := formats.IType(word)

	switch formats.Funct3(word) {
	case 0b000:
		return Lb{i}, nil
	case 0b001:
		return Lh{i}, nil
	case 0b010:
		return Lw{i}, nil
	case 0b011:
		return Ld{i}, nil
	case 0b100:
		return Lbu{i}, nil
	case 0b101:
		return Lhu{i}, nil
	case 0b110:
		return Lwu{i}, nil
	default:
		return nil, illegal(word)
	}
}

func decodeStore(word uint32) (Instruction, error) {
	s := formats.SType(word)

	switch formats.Funct3(word) {
	case 0b000:
		return Sb{s}, nil
	case 0b001:
		return Sh{s}, nil
	case 0b010:
		return Sw{s}, nil
	case 0b011:
		return Sd{s}, nil
	default:
		return nil, illegal(word)
	}
}

func decodeOpImm(word uint32) (Instruction, error) {
	i := formats.IType(word)
	shift := formats.ShiftType(word)

	switch formats.Funct3(word) {
	case 0b000:
		return Addi{i}, nil
	case 0b010:
		return Slti{i}, nil
	case 0b011:
		return Sltiu{i}, nil
	case 0b100:
		return Xori{i}, nil
	case 0b110:
		return Ori{i}, nil
	case 0b111:
		return Andi{i}, nil
	case 0b001:
		if formats.Funct6(word) == 0 {
			return Slli{shift}, nil
		}
	case 0b101:
		switch formats.Funct6(word) {
		case 0:
			return Srli{shift}, nil
		case funct6_SRAI:
			return Srai{shift}, nil
		}
	}

	return nil, illegal(word)
}

func decodeOpImm32(word uint32) (Instruction, error) {
	shift := formats.ShiftWType(word)

	switch formats.Funct3(word) {
	case 0b000:
		return Addiw{formats.IType(word)}, nil
	case 0b001:
		if formats.Funct7(word) == funct7_BASE {
			return Slliw{shift}, nil
		}
	case 0b101:
		switch formats.Funct7(word) {
		case funct7_BASE:
			return Srliw{shift}, nil
		case funct7_ALT:
			return Sraiw{shift}, nil
		}
	}

	return nil, illegal(word)
}

func decodeOp(word uint32) (Instruction, error) {
	r := formats.RType(word)

	switch formats.Funct7(word) {
	case funct7_BASE:
		switch formats.Funct3(word) {
		case 0b000:
			return Add{r}, nil
		case 0b001:
			return Sll{r}, nil
		case 0b010:
			return Slt{r}, nil
		case 0b011:
			return Sltu{r}, nil
		case 0b100:
			return Xor{r}, nil
		case 0b101:
			return Srl{r}, nil
		case 0b110:
			return Or{r}, nil
		case 0b111:
			return And{r}, nil
		}
	case funct7_ALT:
		switch formats.Funct3(word) {
		case 0b000:
			return Sub{r}, nil
		case 0b101:
			return Sra{r}, nil
		}
	case funct7_MULDIV:
		switch formats.Funct3(word) {
		case 0b000:
			return Mul{r}, nil
		case 0b001:
			return Mulh{r}, nil
		case 0b010:
			return Mulhsu{r}, nil
		case 0b011:
			return Mulhu{r}, nil
		case 0b100:
			return Div{r}, nil
		case 0b101:
			return Divu{r}, nil
		case 0b110:
			return Rem{r}, nil
		case 0b111:
			return Remu{r}, nil
		}
	}

	return nil, illegal(word)
}

func decodeOp32(word uint32) (Instruction, error) {
	r := formats.RType(word)

	switch formats.Funct7(word) {
	case funct7_BASE:
		switch formats.Funct3(word) {
		case 0b000:
			return Addw{r}, nil
		case 0b001:
			return Sllw{r}, nil
		case 0b101:
			return Srlw{r}, nil
		}
	case funct7_ALT:
		switch formats.Funct3(word) {
		case 0b000:
			return Subw{r}, nil
		case 0b101:
			return Sraw{r}, nil
		}
	case funct7_MULDIV:
		switch formats.Funct3(word) {
		case 0b000:
			return Mulw{r}, nil
		case 0b100:
			return Divw{r}, nil
		case 0b101:
			return Divuw{r}, nil
		case 0b110:
			return Remw{r}, nil
		case 0b111:
			return Remuw{r}, nil
		}
	}

	return nil, illegal(word)
}

// Unused fence fields (rd, rs1, fm values other than TSO) are ignored
func decodeMiscMem(word uint32) (Instruction, error) {
	switch formats.Funct3(word) {
	case funct3_FENCE:
		return Fence{formats.FenceType(word)}, nil
	case funct3_FENCE_I:
		return FenceI{formats.IType(word)}, nil
	default:
		return nil, illegal(word)
	}
}

func decodeSystem(word uint32) (Instruction, error) {
	switch formats.Funct3(word) {
	case 0b000:
		return decodePrivileged(word)
	case 0b001:
		return Csrrw{formats.CsrType(word)}, nil
	case 0b010:
		return Csrrs{formats.CsrType(word)}, nil
	case 0b011:
		return Csrrc{formats.CsrType(word)}, nil
	case 0b101:
		return Csrrwi{formats.CsrIType(word)}, nil
	case 0b110:
		return Csrrsi{formats.CsrIType(word)}, nil
	case 0b111:
		return Csrrci{formats.CsrIType(word)}, nil
	default:
		// funct3 100 holds the hypervisor virtual machine loads and stores
		return nil, utils.MakeError(ErrUnimplemented, "0x%08x: hypervisor memory access", word)
	}
}

func decodePrivileged(word uint32) (Instruction, error) {
	i := formats.IType(word)

	switch word {
	case word_ECALL:
		return Ecall{i}, nil
	case word_EBREAK:
		return Ebreak{i}, nil
	case word_URET:
		return Uret{i}, nil
	case word_SRET:
		return Sret{i}, nil
	case word_MRET:
		return Mret{i}, nil
	case word_WFI:
		return Wfi{i}, nil
	}

	if formats.Funct7(word) == funct7_SFENCE_VMA && formats.Rd(word) == 0 {
		return SfenceVma{formats.RType(word)}, nil
	}

	return nil, illegal(word)
}
