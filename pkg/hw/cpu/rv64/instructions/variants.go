package instructions

import "github.com/Manu343726/rvdecode/pkg/hw/cpu/rv64/formats"

// Upper immediate

type Lui struct{ formats.UType }

func (Lui) OpCode() OpCode     { return OpCode_LUI }
func (i Lui) Accept(v Visitor) { v.VisitLui(i) }
func (Lui) sealed()            {}

type Auipc struct{ formats.UType }

func (Auipc) OpCode() OpCode     { return OpCode_AUIPC }
func (i Auipc) Accept(v Visitor) { v.VisitAuipc(i) }
func (Auipc) sealed()            {}

// Jumps

type Jal struct{ formats.JType }

func (Jal) OpCode() OpCode     { return OpCode_JAL }
func (i Jal) Accept(v Visitor) { v.VisitJal(i) }
func (Jal) sealed()            {}

type Jalr struct{ formats.IType }

func (Jalr) OpCode() OpCode     { return OpCode_JALR }
func (i Jalr) Accept(v Visitor) { v.VisitJalr(i) }
func (Jalr) sealed()            {}

// Conditional branches

type Beq struct{ formats.BType }

func (Beq) OpCode() OpCode     { return OpCode_BEQ }
func (i Beq) Accept(v Visitor) { v.VisitBeq(i) }
func (Beq) sealed()            {}

type Bne struct{ formats.BType }

func (Bne) OpCode() OpCode     { return OpCode_BNE }
func (i Bne) Accept(v Visitor) { v.VisitBne(i) }
func (Bne) sealed()            {}

type Blt struct{ formats.BType }

func (Blt) OpCode() OpCode     { return OpCode_BLT }
func (i Blt) Accept(v Visitor) { v.VisitBlt(i) }
func (Blt) sealed()            {}

type Bge struct{ formats.BType }

func (Bge) OpCode() OpCode     { return OpCode_BGE }
func (i Bge) Accept(v Visitor) { v.VisitBge(i) }
func (Bge) sealed()            {}

type Bltu struct{ formats.BType }

func (Bltu) OpCode() OpCode     { return OpCode_BLTU }
func (i Bltu) Accept(v Visitor) { v.VisitBltu(i) }
func (Bltu) sealed()            {}

type Bgeu struct{ formats.BType }

func (Bgeu) OpCode() OpCode     { return OpCode_BGEU }
func (i Bgeu) Accept(v Visitor) { v.VisitBgeu(i) }
func (Bgeu) sealed()            {}

// Loads

type Lb struct{ formats.IType }

func (Lb) OpCode() OpCode     { return OpCode_LB }
func (i Lb) Accept(v Visitor) { v.VisitLb(i) }
func (Lb) sealed()            {}

type Lh struct{ formats.IType }

func (Lh) OpCode() OpCode     { return OpCode_LH }
func (i Lh) Accept(v Visitor) { v.VisitLh(i) }
func (Lh) sealed()            {}

type Lw struct{ formats.IType }

func (Lw) OpCode() OpCode     { return OpCode_LW }
func (i Lw) Accept(v Visitor) { v.VisitLw(i) }
func (Lw) sealed()            {}

type Ld struct{ formats.IType }

func (Ld) OpCode() OpCode     { return OpCode_LD }
func (i Ld) Accept(v Visitor) { v.VisitLd(i) }
func (Ld) sealed()            {}

type Lbu struct{ formats.IType }

func (Lbu) OpCode() OpCode     { return OpCode_LBU }
func (i Lbu) Accept(v Visitor) { v.VisitLbu(i) }
func (Lbu) sealed()            {}

type Lhu struct{ formats.IType }

func (Lhu) OpCode() OpCode     { return OpCode_LHU }
func (i Lhu) Accept(v Visitor) { v.VisitLhu(i) }
func (Lhu) sealed()            {}

type Lwu struct{ formats.IType }

func (Lwu) OpCode() OpCode     { return OpCode_LWU }
func (i Lwu) Accept(v Visitor) { v.VisitLwu(i) }
func (Lwu) sealed()            {}

// Stores

type Sb struct{ formats.SType }

func (Sb) OpCode() OpCode     { return OpCode_SB }
func (i Sb) Accept(v Visitor) { v.VisitSb(i) }
func (Sb) sealed()            {}

type Sh struct{ formats.SType }

func (Sh) OpCode() OpCode     { return OpCode_SH }
func (i Sh) Accept(v Visitor) { v.VisitSh(i) }
func (Sh) sealed()            {}

type Sw struct{ formats.SType }

func (Sw) OpCode() OpCode     { return OpCode_SW }
func (i Sw) Accept(v Visitor) { v.VisitSw(i) }
func (Sw) sealed()            {}

type Sd struct{ formats.SType }

func (Sd) OpCode() OpCode     { return OpCode_SD }
func (i Sd) Accept(v Visitor) { v.VisitSd(i) }
func (Sd) sealed()            {}

// Register-immediate operations

type Addi struct{ formats.IType }

func (Addi) OpCode() OpCode     { return OpCode_ADDI }
func (i Addi) Accept(v Visitor) { v.VisitAddi(i) }
func (Addi) sealed()            {}

type Slti struct{ formats.IType }

func (Slti) OpCode() OpCode     { return OpCode_SLTI }
func (i Slti) Accept(v Visitor) { v.VisitSlti(i) }
func (Slti) sealed()            {}

type Sltiu struct{ formats.IType }

func (Sltiu) OpCode() OpCode     { return OpCode_SLTIU }
func (i Sltiu) Accept(v Visitor) { v.VisitSltiu(i) }
func (Sltiu) sealed()            {}

type Xori struct{ formats.IType }

func (Xori) OpCode() OpCode     { return OpCode_XORI }
func (i Xori) Accept(v Visitor) { v.VisitXori(i) }
func (Xori) sealed()            {}

type Ori struct{ formats.IType }

func (Ori) OpCode() OpCode     { return OpCode_ORI }
func (i Ori) Accept(v Visitor) { v.VisitOri(i) }
func (Ori) sealed()            {}

type Andi struct{ formats.IType }

func (Andi) OpCode() OpCode     { return OpCode_ANDI }
func (i Andi) Accept(v Visitor) { v.VisitAndi(i) }
func (Andi) sealed()            {}

type Slli struct{ formats.ShiftType }

func (Slli) OpCode() OpCode     { return OpCode_SLLI }
func (i Slli) Accept(v Visitor) { v.VisitSlli(i) }
func (Slli) sealed()            {}

type Srli struct{ formats.ShiftType }

func (Srli) OpCode() OpCode     { return OpCode_SRLI }
func (i Srli) Accept(v Visitor) { v.VisitSrli(i) }
func (Srli) sealed()            {}

type Srai struct{ formats.ShiftType }

func (Srai) OpCode() OpCode     { return OpCode_SRAI }
func (i Srai) Accept(v Visitor) { v.VisitSrai(i) }
func (Srai) sealed()            {}

// Register-register operations

type Add struct{ formats.RType }

func (Add) OpCode() OpCode     { return OpCode_ADD }
func (i Add) Accept(v Visitor) { v.VisitAdd(i) }
func (Add) sealed()            {}

type Sub struct{ formats.RType }

func (Sub) OpCode() OpCode     { return OpCode_SUB }
func (i Sub) Accept(v Visitor) { v.VisitSub(i) }
func (Sub) sealed()            {}

type Sll struct{ formats.RType }

func (Sll) OpCode() OpCode     { return OpCode_SLL }
func (i Sll) Accept(v Visitor) { v.VisitSll(i) }
func (Sll) sealed()            {}

type Slt struct{ formats.RType }

func (Slt) OpCode() OpCode     { return OpCode_SLT }
func (i Slt) Accept(v Visitor) { v.VisitSlt(i) }
func (Slt) sealed()            {}

type Sltu struct{ formats.RType }

func (Sltu) OpCode() OpCode     { return OpCode_SLTU }
func (i Sltu) Accept(v Visitor) { v.VisitSltu(i) }
func (Sltu) sealed()            {}

type Xor struct{ formats.RType }

func (Xor) OpCode() OpCode     { return OpCode_XOR }
func (i Xor) Accept(v Visitor) { v.VisitXor(i) }
func (Xor) sealed()            {}

type Srl struct{ formats.RType }

func (Srl) OpCode() OpCode     { return OpCode_SRL }
func (i Srl) Accept(v Visitor) { v.VisitSrl(i) }
func (Srl) sealed()            {}

type Sra struct{ formats.RType }

func (Sra) OpCode() OpCode     { return OpCode_SRA }
func (i Sra) Accept(v Visitor) { v.VisitSra(i) }
func (Sra) sealed()            {}

type Or struct{ formats.RType }

func (Or) OpCode() OpCode     { return OpCode_OR }
func (i Or) Accept(v Visitor) { v.VisitOr(i) }
func (Or) sealed()            {}

type And struct{ formats.RType }

func (And) OpCode() OpCode     { return OpCode_AND }
func (i And) Accept(v Visitor) { v.VisitAnd(i) }
func (And) sealed()            {}

// Multiply and divide

type Mul struct{ formats.RType }

func (Mul) OpCode() OpCode     { return OpCode_MUL }
func (i Mul) Accept(v Visitor) { v.VisitMul(i) }
func (Mul) sealed()            {}

type Mulh struct{ formats.RType }

func (Mulh) OpCode() OpCode     { return OpCode_MULH }
func (i Mulh) Accept(v Visitor) { v.VisitMulh(i) }
func (Mulh) sealed()            {}

type Mulhsu struct{ formats.RType }

func (Mulhsu) OpCode() OpCode     { return OpCode_MULHSU }
func (i Mulhsu) Accept(v Visitor) { v.VisitMulhsu(i) }
func (Mulhsu) sealed()            {}

type Mulhu struct{ formats.RType }

func (Mulhu) OpCode() OpCode     { return OpCode_MULHU }
func (i Mulhu) Accept(v Visitor) { v.VisitMulhu(i) }
func (Mulhu) sealed()            {}

type Div struct{ formats.RType }

func (Div) OpCode() OpCode     { return OpCode_DIV }
func (i Div) Accept(v Visitor) { v.VisitDiv(i) }
func (Div) sealed()            {}

type Divu struct{ formats.RType }

func (Divu) OpCode() OpCode     { return OpCode_DIVU }
func (i Divu) Accept(v Visitor) { v.VisitDivu(i) }
func (Divu) sealed()            {}

type Rem struct{ formats.RType }

func (Rem) OpCode() OpCode     { return OpCode_REM }
func (i Rem) Accept(v Visitor) { v.VisitRem(i) }
func (Rem) sealed()            {}

type Remu struct{ formats.RType }

func (Remu) OpCode() OpCode     { return OpCode_REMU }
func (i Remu) Accept(v Visitor) { v.VisitRemu(i) }
func (Remu) sealed()            {}

// 32 bit register-immediate operations

type Addiw struct{ formats.IType }

func (Addiw) OpCode() OpCode     { return OpCode_ADDIW }
func (i Addiw) Accept(v Visitor) { v.VisitAddiw(i) }
func (Addiw) sealed()            {}

type Slliw struct{ formats.ShiftWType }

func (Slliw) OpCode() OpCode     { return OpCode_SLLIW }
func (i Slliw) Accept(v Visitor) { v.VisitSlliw(i) }
func (Slliw) sealed()            {}

type Srliw struct{ formats.ShiftWType }

func (Srliw) OpCode() OpCode     { return OpCode_SRLIW }
func (i Srliw) Accept(v Visitor) { v.VisitSrliw(i) }
func (Srliw) sealed()            {}

type Sraiw struct{ formats.ShiftWType }

func (Sraiw) OpCode() OpCode     { return OpCode_SRAIW }
func (i Sraiw) Accept(v Visitor) { v.VisitSraiw(i) }
func (Sraiw) sealed()            {}

// 32 bit register-register operations

type Addw struct{ formats.RType }

func (Addw) OpCode() OpCode     { return OpCode_ADDW }
func (i Addw) Accept(v Visitor) { v.VisitAddw(i) }
func (Addw) sealed()            {}

type Subw struct{ formats.RType }

func (Subw) OpCode() OpCode     { return OpCode_SUBW }
func (i Subw) Accept(v Visitor) { v.VisitSubw(i) }
func (Subw) sealed()            {}

type Sllw struct{ formats.RType }

func (Sllw) OpCode() OpCode     { return OpCode_SLLW }
func (i Sllw) Accept(v Visitor) { v.VisitSllw(i) }
func (Sllw) sealed()            {}

type Srlw struct{ formats.RType }

func (Srlw) OpCode() OpCode     { return OpCode_SRLW }
func (i Srlw) Accept(v Visitor) { v.VisitSrlw(i) }
func (Srlw) sealed()            {}

type Sraw struct{ formats.RType }

func (Sraw) OpCode() OpCode     { return OpCode_SRAW }
func (i Sraw) Accept(v Visitor) { v.VisitSraw(i) }
func (Sraw) sealed()            {}

type Mulw struct{ formats.RType }

func (Mulw) OpCode() OpCode     { return OpCode_MULW }
func (i Mulw) Accept(v Visitor) { v.VisitMulw(i) }
func (Mulw) sealed()            {}

type Divw struct{ formats.RType }

func (Divw) OpCode() OpCode     { return OpCode_DIVW }
func (i Divw) Accept(v Visitor) { v.VisitDivw(i) }
func (Divw) sealed()            {}

type Divuw struct{ formats.RType }

func (Divuw) OpCode() OpCode     { return OpCode_DIVUW }
func (i Divuw) Accept(v Visitor) { v.VisitDivuw(i) }
func (Divuw) sealed()            {}

type Remw struct{ formats.RType }

func (Remw) OpCode() OpCode     { return OpCode_REMW }
func (i Remw) Accept(v Visitor) { v.VisitRemw(i) }
func (Remw) sealed()            {}

type Remuw struct{ formats.RType }

func (Remuw) OpCode() OpCode     { return OpCode_REMUW }
func (i Remuw) Accept(v Visitor) { v.VisitRemuw(i) }
func (Remuw) sealed()            {}

// Fences

type Fence struct{ formats.FenceType }

func (Fence) OpCode() OpCode     { return OpCode_FENCE }
func (i Fence) Accept(v Visitor) { v.VisitFence(i) }
func (Fence) sealed()            {}

type FenceI struct{ formats.IType }

func (FenceI) OpCode() OpCode     { return OpCode_FENCE_I }
func (i FenceI) Accept(v Visitor) { v.VisitFenceI(i) }
func (FenceI) sealed()            {}

// System

type Ecall struct{ formats.IType }

func (Ecall) OpCode() OpCode     { return OpCode_ECALL }
func (i Ecall) Accept(v Visitor) { v.VisitEcall(i) }
func (Ecall) sealed()            {}

type Ebreak struct{ formats.IType }

func (Ebreak) OpCode() OpCode     { return OpCode_EBREAK }
func (i Ebreak) Accept(v Visitor) { v.VisitEbreak(i) }
func (Ebreak) sealed()            {}

type Uret struct{ formats.IType }

func (Uret) OpCode() OpCode     { return OpCode_URET }
func (i Uret) Accept(v Visitor) { v.VisitUret(i) }
func (Uret) sealed()            {}

type Sret struct{ formats.IType }

func (Sret) OpCode() OpCode     { return OpCode_SRET }
func (i Sret) Accept(v Visitor) { v.VisitSret(i) }
func (Sret) sealed()            {}

type Mret struct{ formats.IType }

func (Mret) OpCode() OpCode     { return OpCode_MRET }
func (i Mret) Accept(v Visitor) { v.VisitMret(i) }
func (Mret) sealed()            {}

type Wfi struct{ formats.IType }

func (Wfi) OpCode() OpCode     { return OpCode_WFI }
func (i Wfi) Accept(v Visitor) { v.VisitWfi(i) }
func (Wfi) sealed()            {}

type SfenceVma struct{ formats.RType }

func (SfenceVma) OpCode() OpCode     { return OpCode_SFENCE_VMA }
func (i SfenceVma) Accept(v Visitor) { v.VisitSfenceVma(i) }
func (SfenceVma) sealed()            {}

type Csrrw struct{ formats.CsrType }

func (Csrrw) OpCode() OpCode     { return OpCode_CSRRW }
func (i Csrrw) Accept(v Visitor) { v.VisitCsrrw(i) }
func (Csrrw) sealed()            {}

type Csrrs struct{ formats.CsrType }

func (Csrrs) OpCode() OpCode     { return OpCode_CSRRS }
func (i Csrrs) Accept(v Visitor) { v.VisitCsrrs(i) }
func (Csrrs) sealed()            {}

type Csrrc struct{ formats.CsrType }

func (Csrrc) OpCode() OpCode     { return OpCode_CSRRC }
func (i Csrrc) Accept(v Visitor) { v.VisitCsrrc(i) }
func (Csrrc) sealed()            {}

type Csrrwi struct{ formats.CsrIType }

func (Csrrwi) OpCode() OpCode     { return OpCode_CSRRWI }
func (i Csrrwi) Accept(v Visitor) { v.VisitCsrrwi(i) }
func (Csrrwi) sealed()            {}

type Csrrsi struct{ formats.CsrIType }

func (Csrrsi) OpCode() OpCode     { return OpCode_CSRRSI }
func (i Csrrsi) Accept(v Visitor) { v.VisitCsrrsi(i) }
func (Csrrsi) sealed()            {}

type Csrrci struct{ formats.CsrIType }

func (Csrrci) OpCode() OpCode     { return OpCode_CSRRCI }
func (i Csrrci) Accept(v Visitor) { v.VisitCsrrci(i) }
func (Csrrci) sealed()            {}

// Reserved

type Illegal struct{ formats.Raw }

func (Illegal) OpCode() OpCode     { return OpCode_ILLEGAL }
func (i Illegal) Accept(v Visitor) { v.VisitIllegal(i) }
func (Illegal) sealed()            {}
