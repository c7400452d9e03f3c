package instructions

// Opcode to mnemonic table. Mnemonics follow the names used by host side records
// (no dots, upper case).
var Opcodes OpCodesDescriptor = NewOpCodesDescriptor(
	map[OpCode]string{
		OpCode_LUI:        "LUI",
		OpCode_AUIPC:      "AUIPC",
		OpCode_JAL:        "JAL",
		OpCode_JALR:       "JALR",
		OpCode_BEQ:        "BEQ",
		OpCode_BNE:        "BNE",
		OpCode_BLT:        "BLT",
		OpCode_BGE:        "BGE",
		OpCode_BLTU:       "BLTU",
		OpCode_BGEU:       "BGEU",
		OpCode_LB:         "LB",
		OpCode_LH:         "LH",
		OpCode_LW:         "LW",
		OpCode_LD:         "LD",
		OpCode_LBU:        "LBU",
		OpCode_LHU:        "LHU",
		OpCode_LWU:        "LWU",
		OpCode_SB:         "SB",
		OpCode_SH:         "SH",
		OpCode_SW:         "SW",
		OpCode_SD:         "SD",
		OpCode_ADDI:       "ADDI",
		OpCode_SLTI:       "SLTI",
		OpCode_SLTIU:      "SLTIU",
		OpCode_XORI:       "XORI",
		OpCode_ORI:        "ORI",
		OpCode_ANDI:       "ANDI",
		OpCode_SLLI:       "SLLI",
		OpCode_SRLI:       "SRLI",
		OpCode_SRAI:       "SRAI",
		OpCode_ADD:        "ADD",
		OpCode_SUB:        "SUB",
		OpCode_SLL:        "SLL",
		OpCode_SLT:        "SLT",
		OpCode_SLTU:       "SLTU",
		OpCode_XOR:        "XOR",
		OpCode_SRL:        "SRL",
		OpCode_SRA:        "SRA",
		OpCode_OR:         "OR",
		OpCode_AND:        "AND",
		OpCode_MUL:        "MUL",
		OpCode_MULH:       "MULH",
		OpCode_MULHSU:     "MULHSU",
		OpCode_MULHU:      "MULHU",
		OpCode_DIV:        "DIV",
		OpCode_DIVU:       "DIVU",
		OpCode_REM:        "REM",
		OpCode_REMU:       "REMU",
		OpCode_ADDIW:      "ADDIW",
		OpCode_SLLIW:      "SLLIW",
		OpCode_SRLIW:      "SRLIW",
		OpCode_SRAIW:      "SRAIW",
		OpCode_ADDW:       "ADDW",
		OpCode_SUBW:       "SUBW",
		OpCode_SLLW:       "SLLW",
		OpCode_SRLW:       "SRLW",
		OpCode_SRAW:       "SRAW",
		OpCode_MULW:       "MULW",
		OpCode_DIVW:       "DIVW",
		OpCode_DIVUW:      "DIVUW",
		OpCode_REMW:       "REMW",
		OpCode_REMUW:      "REMUW",
		OpCode_FENCE:      "FENCE",
		OpCode_FENCE_I:    "FENCEI",
		OpCode_ECALL:      "ECALL",
		OpCode_EBREAK:     "EBREAK",
		OpCode_URET:       "URET",
		OpCode_SRET:       "SRET",
		OpCode_MRET:       "MRET",
		OpCode_WFI:        "WFI",
		OpCode_SFENCE_VMA: "SFENCEVMA",
		OpCode_CSRRW:      "CSRRW",
		OpCode_CSRRS:      "CSRRS",
		OpCode_CSRRC:      "CSRRC",
		OpCode_CSRRWI:     "CSRRWI",
		OpCode_CSRRSI:     "CSRRSI",
		OpCode_CSRRCI:     "CSRRCI",
		OpCode_ILLEGAL:    "ILLEGAL",
	},
)
