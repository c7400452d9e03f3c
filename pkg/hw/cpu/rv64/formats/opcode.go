package formats

import "fmt"

// Represents the 7 bit major opcode of a standard instruction
type MajorOpcode uint32

const (
	MajorOpcode_LOAD      MajorOpcode = 0b0000011
	MajorOpcode_LOAD_FP   MajorOpcode = 0b0000111
	MajorOpcode_CUSTOM_0  MajorOpcode = 0b0001011
	MajorOpcode_MISC_MEM  MajorOpcode = 0b0001111
	MajorOpcode_OP_IMM    MajorOpcode = 0b0010011
	MajorOpcode_AUIPC     MajorOpcode = 0b0010111
	MajorOpcode_OP_IMM_32 MajorOpcode = 0b0011011
	MajorOpcode_STORE     MajorOpcode = 0b0100011
	MajorOpcode_STORE_FP  MajorOpcode = 0b0100111
	MajorOpcode_CUSTOM_1  MajorOpcode = 0b0101011
	MajorOpcode_AMO       MajorOpcode = 0b0101111
	MajorOpcode_OP        MajorOpcode = 0b0110011
	MajorOpcode_LUI       MajorOpcode = 0b0110111
	MajorOpcode_OP_32     MajorOpcode = 0b0111011
	MajorOpcode_MADD      MajorOpcode = 0b1000011
	MajorOpcode_MSUB      MajorOpcode = 0b1000111
	MajorOpcode_NMSUB     MajorOpcode = 0b1001011
	MajorOpcode_NMADD     MajorOpcode = 0b1001111
	MajorOpcode_OP_FP     MajorOpcode = 0b1010011
	MajorOpcode_CUSTOM_2  MajorOpcode = 0b1011011
	MajorOpcode_BRANCH    MajorOpcode = 0b1100011
	MajorOpcode_JALR      MajorOpcode = 0b1100111
	MajorOpcode_JAL       MajorOpcode = 0b1101111
	MajorOpcode_SYSTEM    MajorOpcode = 0b1110011
	MajorOpcode_CUSTOM_3  MajorOpcode = 0b1111011
)

var majorOpcodeNames = map[MajorOpcode]string{
	MajorOpcode_LOAD:      "LOAD",
	MajorOpcode_LOAD_FP:   "LOAD-FP",
	MajorOpcode_CUSTOM_0:  "custom-0",
	MajorOpcode_MISC_MEM:  "MISC-MEM",
	MajorOpcode_OP_IMM:    "OP-IMM",
	MajorOpcode_AUIPC:     "AUIPC",
	MajorOpcode_OP_IMM_32: "OP-IMM-32",
	MajorOpcode_STORE:     "STORE",
	MajorOpcode_STORE_FP:  "STORE-FP",
	MajorOpcode_CUSTOM_1:  "custom-1",
	MajorOpcode_AMO:       "AMO",
	MajorOpcode_OP:        "OP",
	MajorOpcode_LUI:       "LUI",
	MajorOpcode_OP_32:     "OP-32",
	MajorOpcode_MADD:      "MADD",
	MajorOpcode_MSUB:      "MSUB",
	MajorOpcode_NMSUB:     "NMSUB",
	MajorOpcode_NMADD:     "NMADD",
	MajorOpcode_OP_FP:     "OP-FP",
	MajorOpcode_CUSTOM_2:  "custom-2",
	MajorOpcode_BRANCH:    "BRANCH",
	MajorOpcode_JALR:      "JALR",
	MajorOpcode_JAL:       "JAL",
	MajorOpcode_SYSTEM:    "SYSTEM",
	MajorOpcode_CUSTOM_3:  "custom-3",
}

func (op MajorOpcode) String() string {
	if name, ok := majorOpcodeNames[op]; ok {
		return name
	}

	return fmt.Sprintf("reserved(%#09b)", uint32(op))
}
