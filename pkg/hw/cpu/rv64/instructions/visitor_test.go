package instructions

// Records the opcode of the Visit method called, so tests can check every variant dispatches
// to its own method
type recordingVisitor struct {
	visited OpCode
	calls   int
}

func (v *recordingVisitor) VisitLui(Lui)             { v.record(OpCode_LUI) }
func (v *recordingVisitor) VisitAuipc(Auipc)         { v.record(OpCode_AUIPC) }
func (v *recordingVisitor) VisitJal(Jal)             { v.record(OpCode_JAL) }
func (v *recordingVisitor) VisitJalr(Jalr)           { v.record(OpCode_JALR) }
func (v *recordingVisitor) VisitBeq(Beq)             { v.record(OpCode_BEQ) }
func (v *recordingVisitor) VisitBne(Bne)             { v.record(OpCode_BNE) }
func (v *recordingVisitor) VisitBlt(Blt)             { v.record(OpCode_BLT) }
func (v *recordingVisitor) VisitBge(Bge)             { v.record(OpCode_BGE) }
func (v *recordingVisitor) VisitBltu(Bltu)           { v.record(OpCode_BLTU) }
func (v *recordingVisitor) VisitBgeu(Bgeu)           { v.record(OpCode_BGEU) }
func (v *recordingVisitor) VisitLb(Lb)               { v.record(OpCode_LB) }
func (v *recordingVisitor) VisitLh(Lh)               { v.record(OpCode_LH) }
func (v *recordingVisitor) VisitLw(Lw)               { v.record(OpCode_LW) }
func (v *recordingVisitor) VisitLd(Ld)               { v.record(OpCode_LD) }
func (v *recordingVisitor) VisitLbu(Lbu)             { v.record(OpCode_LBU) }
func (v *recordingVisitor) VisitLhu(Lhu)             { v.record(OpCode_LHU) }
func (v *recordingVisitor) VisitLwu(Lwu)             { v.record(OpCode_LWU) }
func (v *recordingVisitor) VisitSb(Sb)               { v.record(OpCode_SB) }
func (v *recordingVisitor) VisitSh(Sh)               { v.record(OpCode_SH) }
func (v *recordingVisitor) VisitSw(Sw)               { v.record(OpCode_SW) }
func (v *recordingVisitor) VisitSd(Sd)               { v.record(OpCode_SD) }
func (v *recordingVisitor) VisitAddi(Addi)           { v.record(OpCode_ADDI) }
func (v *recordingVisitor) VisitSlti(Slti)           { v.record(OpCode_SLTI) }
func (v *recordingVisitor) VisitSltiu(Sltiu)         { v.record(OpCode_SLTIU) }
func (v *recordingVisitor) VisitXori(Xori)           { v.record(OpCode_XORI) }
func (v *recordingVisitor) VisitOri(Ori)             { v.record(OpCode_ORI) }
func (v *recordingVisitor) VisitAndi(Andi)           { v.record(OpCode_ANDI) }
func (v *recordingVisitor) VisitSlli(Slli)           { v.record(OpCode_SLLI) }
func (v *recordingVisitor) VisitSrli(Srli)           { v.record(OpCode_SRLI) }
func (v *recordingVisitor) VisitSrai(Srai)           { v.record(OpCode_SRAI) }
func (v *recordingVisitor) VisitAdd(Add)             { v.record(OpCode_ADD) }
func (v *recordingVisitor) VisitSub(Sub)             { v.record(OpCode_SUB) }
func (v *recordingVisitor) VisitSll(Sll)             { v.record(OpCode_SLL) }
func (v *recordingVisitor) VisitSlt(Slt)             { v.record(OpCode_SLT) }
func (v *recordingVisitor) VisitSltu(Sltu)           { v.record(OpCode_SLTU) }
func (v *recordingVisitor) VisitXor(Xor)             { v.record(OpCode_XOR) }
func (v *recordingVisitor) VisitSrl(Srl)             { v.record(OpCode_SRL) }
func (v *recordingVisitor) VisitSra(Sra)             { v.record(OpCode_SRA) }
func (v *recordingVisitor) VisitOr(Or)               { v.record(OpCode_OR) }
func (v *recordingVisitor) VisitAnd(And)             { v.record(OpCode_AND) }
func (v *recordingVisitor) VisitMul(Mul)             { v.record(OpCode_MUL) }
func (v *recordingVisitor) VisitMulh(Mulh)           { v.record(OpCode_MULH) }
func (v *recordingVisitor) VisitMulhsu(Mulhsu)       { v.record(OpCode_MULHSU) }
func (v *recordingVisitor) VisitMulhu(Mulhu)         { v.record(OpCode_MULHU) }
func (v *recordingVisitor) VisitDiv(Div)             { v.record(OpCode_DIV) }
func (v *recordingVisitor) VisitDivu(Divu)           { v.record(OpCode_DIVU) }
func (v *recordingVisitor) VisitRem(Rem)             { v.record(OpCode_REM) }
func (v *recordingVisitor) VisitRemu(Remu)           { v.record(OpCode_REMU) }
func (v *recordingVisitor) VisitAddiw(Addiw)         { v.record(OpCode_ADDIW) }
func (v *recordingVisitor) VisitSlliw(Slliw)         { v.record(OpCode_SLLIW) }
func (v *recordingVisitor) VisitSrliw(Srliw)         { v.record(OpCode_SRLIW) }
func (v *recordingVisitor) VisitSraiw(Sraiw)         { v.record(OpCode_SRAIW) }
func (v *recordingVisitor) VisitAddw(Addw)           { v.record(OpCode_ADDW) }
func (v *recordingVisitor) VisitSubw(Subw)           { v.record(OpCode_SUBW) }
func (v *recordingVisitor) VisitSllw(Sllw)           { v.record(OpCode_SLLW) }
func (v *recordingVisitor) VisitSrlw(Srlw)           { v.record(OpCode_SRLW) }
func (v *recordingVisitor) VisitSraw(Sraw)           { v.record(OpCode_SRAW) }
func (v *recordingVisitor) VisitMulw(Mulw)           { v.record(OpCode_MULW) }
func (v *recordingVisitor) VisitDivw(Divw)           { v.record(OpCode_DIVW) }
func (v *recordingVisitor) VisitDivuw(Divuw)         { v.record(OpCode_DIVUW) }
func (v *recordingVisitor) VisitRemw(Remw)           { v.record(OpCode_REMW) }
func (v *recordingVisitor) VisitRemuw(Remuw)         { v.record(OpCode_REMUW) }
func (v *recordingVisitor) VisitFence(Fence)         { v.record(OpCode_FENCE) }
func (v *recordingVisitor) VisitFenceI(FenceI)       { v.record(OpCode_FENCE_I) }
func (v *recordingVisitor) VisitEcall(Ecall)         { v.record(OpCode_ECALL) }
func (v *recordingVisitor) VisitEbreak(Ebreak)       { v.record(OpCode_EBREAK) }
func (v *recordingVisitor) VisitUret(Uret)           { v.record(OpCode_URET) }
func (v *recordingVisitor) VisitSret(Sret)           { v.record(OpCode_SRET) }
func (v *recordingVisitor) VisitMret(Mret)           { v.record(OpCode_MRET) }
func (v *recordingVisitor) VisitWfi(Wfi)             { v.record(OpCode_WFI) }
func (v *recordingVisitor) VisitSfenceVma(SfenceVma) { v.record(OpCode_SFENCE_VMA) }
func (v *recordingVisitor) VisitCsrrw(Csrrw)         { v.record(OpCode_CSRRW) }
func (v *recordingVisitor) VisitCsrrs(Csrrs)         { v.record(OpCode_CSRRS) }
func (v *recordingVisitor) VisitCsrrc(Csrrc)         { v.record(OpCode_CSRRC) }
func (v *recordingVisitor) VisitCsrrwi(Csrrwi)       { v.record(OpCode_CSRRWI) }
func (v *recordingVisitor) VisitCsrrsi(Csrrsi)       { v.record(OpCode_CSRRSI) }
func (v *recordingVisitor) VisitCsrrci(Csrrci)       { v.record(OpCode_CSRRCI) }
func (v *recordingVisitor) VisitIllegal(Illegal)     { v.record(OpCode_ILLEGAL) }

func (v *recordingVisitor) record(op OpCode) {
	v.visited = op
	v.calls++
}
