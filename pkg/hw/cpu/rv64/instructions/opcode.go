package instructions

// Identifies the operation of a decoded instruction
type OpCode uint

const (
	// Upper immediate

	// Load upper immediate into rd
	OpCode_LUI OpCode = iota
	// Add upper immediate to pc, save into rd
	OpCode_AUIPC

	// Jumps

	// Jump to pc relative offset, link into rd
	OpCode_JAL
	// Jump to rs1 plus offset, link into rd
	OpCode_JALR

	// Conditional branches

	// Branch if rs1 == rs2
	OpCode_BEQ
	// Branch if rs1 != rs2
	OpCode_BNE
	// Branch if rs1 < rs2 (signed)
	OpCode_BLT
	// Branch if rs1 >= rs2 (signed)
	OpCode_BGE
	// Branch if rs1 < rs2 (unsigned)
	OpCode_BLTU
	// Branch if rs1 >= rs2 (unsigned)
	OpCode_BGEU

	// Loads

	// Load sign extended byte
	OpCode_LB
	// Load sign extended halfword
	OpCode_LH
	// Load sign extended word
	OpCode_LW
	// Load doubleword
	OpCode_LD
	// Load zero extended byte
	OpCode_LBU
	// Load zero extended halfword
	OpCode_LHU
	// Load zero extended word
	OpCode_LWU

	// Stores

	// Store byte
	OpCode_SB
	// Store halfword
	OpCode_SH
	// Store word
	OpCode_SW
	// Store doubleword
	OpCode_SD

	// Register-immediate operations

	OpCode_ADDI
	// Set rd if rs1 < imm (signed)
	OpCode_SLTI
	// Set rd if rs1 < imm (unsigned)
	OpCode_SLTIU
	OpCode_XORI
	OpCode_ORI
	OpCode_ANDI
	// Logical left shift by immediate
	OpCode_SLLI
	// Logical right shift by immediate
	OpCode_SRLI
	// Arithmetic right shift by immediate
	OpCode_SRAI

	// Register-register operations

	OpCode_ADD
	OpCode_SUB
	OpCode_SLL
	OpCode_SLT
	OpCode_SLTU
	OpCode_XOR
	OpCode_SRL
	OpCode_SRA
	OpCode_OR
	OpCode_AND

	// Multiply and divide

	// Lower 64 bits of rs1 * rs2
	OpCode_MUL
	// Upper 64 bits of signed rs1 * signed rs2
	OpCode_MULH
	// Upper 64 bits of signed rs1 * unsigned rs2
	OpCode_MULHSU
	// Upper 64 bits of unsigned rs1 * unsigned rs2
	OpCode_MULHU
	OpCode_DIV
	OpCode_DIVU
	OpCode_REM
	OpCode_REMU

	// 32 bit register-immediate operations

	OpCode_ADDIW
	OpCode_SLLIW
	OpCode_SRLIW
	OpCode_SRAIW

	// 32 bit register-register operations

	OpCode_ADDW
	OpCode_SUBW
	OpCode_SLLW
	OpCode_SRLW
	OpCode_SRAW
	OpCode_MULW
	OpCode_DIVW
	OpCode_DIVUW
	OpCode_REMW
	OpCode_REMUW

	// Fences

	// Orders memory and I/O accesses
	OpCode_FENCE
	// Synchronizes instruction and data streams
	OpCode_FENCE_I

	// System

	// Environment call
	OpCode_ECALL
	// Environment breakpoint
	OpCode_EBREAK
	// Return from user mode trap
	OpCode_URET
	// Return from supervisor mode trap
	OpCode_SRET
	// Return from machine mode trap
	OpCode_MRET
	// Wait for interrupt
	OpCode_WFI
	// Supervisor address translation fence
	OpCode_SFENCE_VMA
	// Atomic read/write CSR
	OpCode_CSRRW
	// Atomic read and set bits in CSR
	OpCode_CSRRS
	// Atomic read and clear bits in CSR
	OpCode_CSRRC
	OpCode_CSRRWI
	OpCode_CSRRSI
	OpCode_CSRRCI

	// Reserved

	// The reserved all zero instruction word
	OpCode_ILLEGAL

	// Total opcodes implemented
	TOTAL_OPCODES
)

// Returns the mnemonic of the instruction opcode
func (op OpCode) String() string {
	return Opcodes.Mnemonic(op)
}
