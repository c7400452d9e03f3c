// Package transcript maps decoded instructions to flat host side records (mnemonic, immediates
// and the registers each instruction reads and writes) and renders them as assembly text.
package transcript

import (
	"fmt"
	"strings"

	"github.com/Manu343726/rvdecode/pkg/hw/cpu/rv64/formats"
	"github.com/Manu343726/rvdecode/pkg/hw/cpu/rv64/instructions"
	"github.com/Manu343726/rvdecode/pkg/utils"
)

// Register file a register access refers to
type RegisterClass string

const (
	RegisterClass_Int RegisterClass = "int"
	RegisterClass_Csr RegisterClass = "csr"
)

// A register read or written by an instruction
type Register struct {
	Class RegisterClass `yaml:"class" json:"class"`
	Index uint32        `yaml:"index" json:"index"`
}

func Int(index uint32) Register { return Register{Class: RegisterClass_Int, Index: index} }
func Csr(index uint32) Register { return Register{Class: RegisterClass_Csr, Index: index} }

func (r Register) String() string {
	return fmt.Sprintf("(%v, %v)", r.Class, r.Index)
}

// Predecessor and successor sets of a FENCE
type PredSucc struct {
	Pred uint32 `yaml:"pred" json:"pred"`
	Succ uint32 `yaml:"succ" json:"succ"`
}

// Flat description of a decoded instruction. Optional fields are nil when the instruction has
// no such operand. Read and Write keep the operand order of the instruction.
type Record struct {
	Name     string     `yaml:"name" json:"name"`
	Imm      *int64     `yaml:"imm,omitempty" json:"imm,omitempty"`
	Zimm     *uint32    `yaml:"zimm,omitempty" json:"zimm,omitempty"`
	Shamt    *uint32    `yaml:"shamt,omitempty" json:"shamt,omitempty"`
	PredSucc *PredSucc  `yaml:"pred_succ,omitempty" json:"pred_succ,omitempty"`
	Read     []Register `yaml:"read_reg,omitempty" json:"read_reg,omitempty"`
	Write    []Register `yaml:"write_reg,omitempty" json:"write_reg,omitempty"`
}

func (r *Record) String() string {
	var builder strings.Builder

	builder.WriteString(r.Name)

	if r.Imm != nil {
		fmt.Fprintf(&builder, " imm=%v", *r.Imm)
	}
	if r.Zimm != nil {
		fmt.Fprintf(&builder, " zimm=%v", *r.Zimm)
	}
	if r.Shamt != nil {
		fmt.Fprintf(&builder, " shamt=%v", *r.Shamt)
	}
	if r.PredSucc != nil {
		fmt.Fprintf(&builder, " pred=%04b succ=%04b", r.PredSucc.Pred, r.PredSucc.Succ)
	}
	if len(r.Read) > 0 {
		fmt.Fprintf(&builder, " read=[%v]", utils.FormatSlice(r.Read, ", "))
	}
	if len(r.Write) > 0 {
		fmt.Fprintf(&builder, " write=[%v]", utils.FormatSlice(r.Write, ", "))
	}

	return builder.String()
}

// Builds the record of a decoded instruction
func Transcribe(inst instructions.Instruction) Record {
	t := transcriber{}
	inst.Accept(&t)
	return t.record
}

type transcriber struct {
	record Record
}

func (t *transcriber) named(i instructions.Instruction) *Record {
	t.record = Record{Name: i.OpCode().String()}
	return &t.record
}

func (t *transcriber) upper(i instructions.Instruction, c formats.UType) {
	r := t.named(i)
	// Recorded as the unsigned 32 bit field value
	r.Imm = ptr(int64(c.Imm()))
	r.Write = []Register{Int(c.Rd())}
}

func (t *transcriber) jump(i instructions.Instruction, c formats.JType) {
	r := t.named(i)
	r.Imm = ptr(c.Imm())
	r.Write = []Register{Int(c.Rd())}
}

func (t *transcriber) immediate(i instructions.Instruction, c formats.IType) {
	r := t.named(i)
	r.Imm = ptr(c.Imm())
	r.Read = []Register{Int(c.Rs1())}
	r.Write = []Register{Int(c.Rd())}
}

func (t *transcriber) branch(i instructions.Instruction, c formats.BType) {
	r := t.named(i)
	r.Imm = ptr(c.Imm())
	r.Read = []Register{Int(c.Rs1()), Int(c.Rs2())}
}

func (t *transcriber) store(i instructions.Instruction, c formats.SType) {
	r := t.named(i)
	r.Imm = ptr(c.Imm())
	r.Read = []Register{Int(c.Rs1()), Int(c.Rs2())}
}

func (t *transcriber) shift(i instructions.Instruction, rd, rs1, shamt uint32) {
	r := t.named(i)
	r.Shamt = ptr(shamt)
	r.Read = []Register{Int(rs1)}
	r.Write = []Register{Int(rd)}
}

func (t *transcriber) register(i instructions.Instruction, c formats.RType) {
	r := t.named(i)
	r.Read = []Register{Int(c.Rs1()), Int(c.Rs2())}
	r.Write = []Register{Int(c.Rd())}
}

func (t *transcriber) fence(i instructions.Instruction, c formats.FenceType) {
	r := t.named(i)
	r.PredSucc = &PredSucc{Pred: c.Pred(), Succ: c.Succ()}
}

// xRET reads the exception pc and status of its privilege level and writes the status back
func (t *transcriber) trapReturn(i instructions.Instruction, epc, status uint32) {
	r := t.named(i)
	r.Read = []Register{Csr(epc), Csr(status)}
	r.Write = []Register{Csr(status)}
}

func (t *transcriber) csr(i instructions.Instruction, c formats.CsrType) {
	r := t.named(i)
	r.Read = []Register{Csr(c.Csr()), Int(c.Rs1())}
	r.Write = []Register{Csr(c.Csr()), Int(c.Rd())}
}

func (t *transcriber) csrImmediate(i instructions.Instruction, c formats.CsrIType) {
	r := t.named(i)
	r.Zimm = ptr(c.Zimm())
	r.Read = []Register{Csr(c.Csr())}
	r.Write = []Register{Csr(c.Csr()), Int(c.Rd())}
}

func ptr[T any](value T) *T {
	return &value
}

func (t *transcriber) VisitLui(i instructions.Lui)             { t.upper(i, i.UType) }
func (t *transcriber) VisitAuipc(i instructions.Auipc)         { t.upper(i, i.UType) }
func (t *transcriber) VisitJal(i instructions.Jal)             { t.jump(i, i.JType) }
func (t *transcriber) VisitJalr(i instructions.Jalr)           { t.immediate(i, i.IType) }
func (t *transcriber) VisitBeq(i instructions.Beq)             { t.branch(i, i.BType) }
func (t *transcriber) VisitBne(i instructions.Bne)             { t.branch(i, i.BType) }
func (t *transcriber) VisitBlt(i instructions.Blt)             { t.branch(i, i.BType) }
func (t *transcriber) VisitBge(i instructions.Bge)             { t.branch(i, i.BType) }
func (t *transcriber) VisitBltu(i instructions.Bltu)           { t.branch(i, i.BType) }
func (t *transcriber) VisitBgeu(i instructions.Bgeu)           { t.branch(i, i.BType) }
func (t *transcriber) VisitLb(i instructions.Lb)               { t.immediate(i, i.IType) }
func (t *transcriber) VisitLh(i instructions.Lh)               { t.immediate(i, i.IType) }
func (t *transcriber) VisitLw(i instructions.Lw)               { t.immediate(i, i.IType) }
func (t *transcriber) VisitLd(i instructions.Ld)               { t.immediate(i, i.IType) }
func (t *transcriber) VisitLbu(i instructions.Lbu)             { t.immediate(i, i.IType) }
func (t *transcriber) VisitLhu(i instructions.Lhu)             { t.immediate(i, i.IType) }
func (t *transcriber) VisitLwu(i instructions.Lwu)             { t.immediate(i, i.IType) }
func (t *transcriber) VisitSb(i instructions.Sb)               { t.store(i, i.SType) }
func (t *transcriber) VisitSh(i instructions.Sh)               { t.store(i, i.SType) }
func (t *transcriber) VisitSw(i instructions.Sw)               { t.store(i, i.SType) }
func (t *transcriber) VisitSd(i instructions.Sd)               { t.store(i, i.SType) }
func (t *transcriber) VisitAddi(i instructions.Addi)           { t.immediate(i, i.IType) }
func (t *transcriber) VisitSlti(i instructions.Slti)           { t.immediate(i, i.IType) }
func (t *transcriber) VisitSltiu(i instructions.Sltiu)         { t.immediate(i, i.IType) }
func (t *transcriber) VisitXori(i instructions.Xori)           { t.immediate(i, i.IType) }
func (t *transcriber) VisitOri(i instructions.Ori)             { t.immediate(i, i.IType) }
func (t *transcriber) VisitAndi(i instructions.Andi)           { t.immediate(i, i.IType) }
func (t *transcriber) VisitSlli(i instructions.Slli)           { t.shift(i, i.Rd(), i.Rs1(), i.Shamt()) }
func (t *transcriber) VisitSrli(i instructions.Srli)           { t.shift(i, i.Rd(), i.Rs1(), i.Shamt()) }
func (t *transcriber) VisitSrai(i instructions.Srai)           { t.shift(i, i.Rd(), i.Rs1(), i.Shamt()) }
func (t *transcriber) VisitAdd(i instructions.Add)             { t.register(i, i.RType) }
func (t *transcriber) VisitSub(i instructions.Sub)             { t.register(i, i.RType) }
func (t *transcriber) VisitSll(i instructions.Sll)             { t.register(i, i.RType) }
func (t *transcriber) VisitSlt(i instructions.Slt)             { t.register(i, i.RType) }
func (t *transcriber) VisitSltu(i instructions.Sltu)           { t.register(i, i.RType) }
func (t *transcriber) VisitXor(i instructions.Xor)             { t.register(i, i.RType) }
func (t *transcriber) VisitSrl(i instructions.Srl)             { t.register(i, i.RType) }
func (t *transcriber) VisitSra(i instructions.Sra)             { t.register(i, i.RType) }
func (t *transcriber) VisitOr(i instructions.Or)               { t.register(i, i.RType) }
func (t *transcriber) VisitAnd(i instructions.And)             { t.register(i, i.RType) }
func (t *transcriber) VisitMul(i instructions.Mul)             { t.register(i, i.RType) }
func (t *transcriber) VisitMulh(i instructions.Mulh)           { t.register(i, i.RType) }
func (t *transcriber) VisitMulhsu(i instructions.Mulhsu)       { t.register(i, i.RType) }
func (t *transcriber) VisitMulhu(i instructions.Mulhu)         { t.register(i, i.RType) }
func (t *transcriber) VisitDiv(i instructions.Div)             { t.register(i, i.RType) }
func (t *transcriber) VisitDivu(i instructions.Divu)           { t.register(i, i.RType) }
func (t *transcriber) VisitRem(i instructions.Rem)             { t.register(i, i.RType) }
func (t *transcriber) VisitRemu(i instructions.Remu)           { t.register(i, i.RType) }
func (t *transcriber) VisitAddiw(i instructions.Addiw)         { t.immediate(i, i.IType) }
func (t *transcriber) VisitSlliw(i instructions.Slliw)         { t.shift(i, i.Rd(), i.Rs1(), i.Shamt()) }
func (t *transcriber) VisitSrliw(i instructions.Srliw)         { t.shift(i, i.Rd(), i.Rs1(), i.Shamt()) }
func (t *transcriber) VisitSraiw(i instructions.Sraiw)         { t.shift(i, i.Rd(), i.Rs1(), i.Shamt()) }
func (t *transcriber) VisitAddw(i instructions.Addw)           { t.register(i, i.RType) }
func (t *transcriber) VisitSubw(i instructions.Subw)           { t.register(i, i.RType) }
func (t *transcriber) VisitSllw(i instructions.Sllw)           { t.register(i, i.RType) }
func (t *transcriber) VisitSrlw(i instructions.Srlw)           { t.register(i, i.RType) }
func (t *transcriber) VisitSraw(i instructions.Sraw)           { t.register(i, i.RType) }
func (t *transcriber) VisitMulw(i instructions.Mulw)           { t.register(i, i.RType) }
func (t *transcriber) VisitDivw(i instructions.Divw)           { t.register(i, i.RType) }
func (t *transcriber) VisitDivuw(i instructions.Divuw)         { t.register(i, i.RType) }
func (t *transcriber) VisitRemw(i instructions.Remw)           { t.register(i, i.RType) }
func (t *transcriber) VisitRemuw(i instructions.Remuw)         { t.register(i, i.RType) }
func (t *transcriber) VisitFence(i instructions.Fence)         { t.fence(i, i.FenceType) }
func (t *transcriber) VisitFenceI(i instructions.FenceI)       { t.named(i) }
func (t *transcriber) VisitEcall(i instructions.Ecall)         { t.named(i) }
func (t *transcriber) VisitEbreak(i instructions.Ebreak)       { t.named(i) }
func (t *transcriber) VisitUret(i instructions.Uret)           { t.trapReturn(i, Csr_UEPC, Csr_USTATUS) }
func (t *transcriber) VisitSret(i instructions.Sret)           { t.trapReturn(i, Csr_SEPC, Csr_SSTATUS) }
func (t *transcriber) VisitMret(i instructions.Mret)           { t.trapReturn(i, Csr_MEPC, Csr_MSTATUS) }
func (t *transcriber) VisitWfi(i instructions.Wfi)             { t.named(i) }
func (t *transcriber) VisitSfenceVma(i instructions.SfenceVma) { t.register(i, i.RType) }
func (t *transcriber) VisitCsrrw(i instructions.Csrrw)         { t.csr(i, i.CsrType) }
func (t *transcriber) VisitCsrrs(i instructions.Csrrs)         { t.csr(i, i.CsrType) }
func (t *transcriber) VisitCsrrc(i instructions.Csrrc)         { t.csr(i, i.CsrType) }
func (t *transcriber) VisitCsrrwi(i instructions.Csrrwi)       { t.csrImmediate(i, i.CsrIType) }
func (t *transcriber) VisitCsrrsi(i instructions.Csrrsi)       { t.csrImmediate(i, i.CsrIType) }
func (t *transcriber) VisitCsrrci(i instructions.Csrrci)       { t.csrImmediate(i, i.CsrIType) }
func (t *transcriber) VisitIllegal(i instructions.Illegal)     { t.named(i) }
