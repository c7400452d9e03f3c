package instructions

// Implements an operation over every instruction variant. Adding a variant adds a method here,
// so every consumer stops compiling until it handles the new instruction.
type Visitor interface {
	// Upper immediate
	VisitLui(Lui)
	VisitAuipc(Auipc)

	// Jumps
	VisitJal(Jal)
	VisitJalr(Jalr)

	// Conditional branches
	VisitBeq(Beq)
	VisitBne(Bne)
	VisitBlt(Blt)
	VisitBge(Bge)
	VisitBltu(Bltu)
	VisitBgeu(Bgeu)

	// Loads
	VisitLb(Lb)
	VisitLh(Lh)
	VisitLw(Lw)
	VisitLd(Ld)
	VisitLbu(Lbu)
	VisitLhu(Lhu)
	VisitLwu(Lwu)

	// Stores
	VisitSb(Sb)
	VisitSh(Sh)
	VisitSw(Sw)
	VisitSd(Sd)

	// Register-immediate operations
	VisitAddi(Addi)
	VisitSlti(Slti)
	VisitSltiu(Sltiu)
	VisitXori(Xori)
	VisitOri(Ori)
	VisitAndi(Andi)
	VisitSlli(Slli)
	VisitSrli(Srli)
	VisitSrai(Srai)

	// Register-register operations
	VisitAdd(Add)
	VisitSub(Sub)
	VisitSll(Sll)
	VisitSlt(Slt)
	VisitSltu(Sltu)
	VisitXor(Xor)
	VisitSrl(Srl)
	VisitSra(Sra)
	VisitOr(Or)
	VisitAnd(And)

	// Multiply and divide
	VisitMul(Mul)
	VisitMulh(Mulh)
	VisitMulhsu(Mulhsu)
	VisitMulhu(Mulhu)
	VisitDiv(Div)
	VisitDivu(Divu)
	VisitRem(Rem)
	VisitRemu(Remu)

	// 32 bit register-immediate operations
	VisitAddiw(Addiw)
	VisitSlliw(Slliw)
	VisitSrliw(Srliw)
	VisitSraiw(Sraiw)

	// 32 bit register-register operations
	VisitAddw(Addw)
	VisitSubw(Subw)
	VisitSllw(Sllw)
	VisitSrlw(Srlw)
	VisitSraw(Sraw)
	VisitMulw(Mulw)
	VisitDivw(Divw)
	VisitDivuw(Divuw)
	VisitRemw(Remw)
	VisitRemuw(Remuw)

	// Fences
	VisitFence(Fence)
	VisitFenceI(FenceI)

	// System
	VisitEcall(Ecall)
	VisitEbreak(Ebreak)
	VisitUret(Uret)
	VisitSret(Sret)
	VisitMret(Mret)
	VisitWfi(Wfi)
	VisitSfenceVma(SfenceVma)
	VisitCsrrw(Csrrw)
	VisitCsrrs(Csrrs)
	VisitCsrrc(Csrrc)
	VisitCsrrwi(Csrrwi)
	VisitCsrrsi(Csrrsi)
	VisitCsrrci(Csrrci)

	// Reserved
	VisitIllegal(Illegal)
}
