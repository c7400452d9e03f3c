package transcript

import (
	"fmt"
	"strings"

	"github.com/Manu343726/rvdecode/pkg/hw/cpu/rv64/formats"
	"github.com/Manu343726/rvdecode/pkg/hw/cpu/rv64/instructions"
	"github.com/fatih/color"
)

// Assembler mnemonics that differ from the lower case opcode name
var assemblerMnemonics = map[instructions.OpCode]string{
	instructions.OpCode_FENCE_I:    "fence.i",
	instructions.OpCode_SFENCE_VMA: "sfence.vma",
	instructions.OpCode_ILLEGAL:    "unimp",
}

// Returns the assembler mnemonic of an opcode ("addi", "fence.i")
func AssemblerMnemonic(op instructions.OpCode) string {
	if mnemonic, ok := assemblerMnemonics[op]; ok {
		return mnemonic
	}

	return strings.ToLower(op.String())
}

// Renders instructions as assembly text, using ABI register names
type Formatter struct {
	mnemonic  *color.Color
	register  *color.Color
	immediate *color.Color
}

// Returns a formatter that highlights mnemonics, registers and immediates with ANSI colors when
// colored is true, regardless of the output being a terminal
func NewFormatter(colored bool) *Formatter {
	f := &Formatter{
		mnemonic:  color.New(color.FgYellow, color.Bold),
		register:  color.New(color.FgGreen),
		immediate: color.New(color.FgCyan),
	}

	for _, c := range []*color.Color{f.mnemonic, f.register, f.immediate} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return f
}

var plainFormatter = NewFormatter(false)

// Renders an instruction as plain assembly text
func Format(inst instructions.Instruction) string {
	return plainFormatter.Format(inst)
}

func (f *Formatter) Format(inst instructions.Instruction) string {
	p := printer{formatter: f}
	inst.Accept(&p)
	return p.text
}

type printer struct {
	formatter *Formatter
	text      string
}

func (p *printer) reg(index uint32) string {
	return p.formatter.register.Sprint(RegisterName(index))
}

func (p *printer) imm(value any) string {
	return p.formatter.immediate.Sprint(value)
}

func (p *printer) emit(i instructions.Instruction, operands ...string) {
	p.text = p.formatter.mnemonic.Sprint(AssemblerMnemonic(i.OpCode()))

	if len(operands) > 0 {
		p.text += " " + strings.Join(operands, ", ")
	}
}

func (p *printer) bare(i instructions.Instruction) {
	p.emit(i)
}

func (p *printer) upper(i instructions.Instruction, c formats.UType) {
	p.emit(i, p.reg(c.Rd()), p.imm(fmt.Sprintf("%#x", c.Imm()>>12)))
}

func (p *printer) jump(i instructions.Instruction, c formats.JType) {
	p.emit(i, p.reg(c.Rd()), p.imm(c.Imm()))
}

// rd/rs2, offset(base)
func (p *printer) memory(i instructions.Instruction, reg uint32, offset int64, base uint32) {
	p.emit(i, p.reg(reg), fmt.Sprintf("%v(%v)", p.imm(offset), p.reg(base)))
}

func (p *printer) immediate(i instructions.Instruction, c formats.IType) {
	p.emit(i, p.reg(c.Rd()), p.reg(c.Rs1()), p.imm(c.Imm()))
}

func (p *printer) branch(i instructions.Instruction, c formats.BType) {
	p.emit(i, p.reg(c.Rs1()), p.reg(c.Rs2()), p.imm(c.Imm()))
}

func (p *printer) shift(i instructions.Instruction, rd, rs1, shamt uint32) {
	p.emit(i, p.reg(rd), p.reg(rs1), p.imm(shamt))
}

func (p *printer) registers(i instructions.Instruction, registers ...uint32) {
	operands := make([]string, len(registers))
	for n, register := range registers {
		operands[n] = p.reg(register)
	}

	p.emit(i, operands...)
}

func (p *printer) fence(i instructions.Instruction, c formats.FenceType) {
	p.emit(i, p.imm(fenceSet(c.Pred())), p.imm(fenceSet(c.Succ())))
}

func (p *printer) csr(i instructions.Instruction, c formats.CsrType) {
	p.emit(i, p.reg(c.Rd()), p.imm(CsrName(c.Csr())), p.reg(c.Rs1()))
}

func (p *printer) csrImmediate(i instructions.Instruction, c formats.CsrIType) {
	p.emit(i, p.reg(c.Rd()), p.imm(CsrName(c.Csr())), p.imm(c.Zimm()))
}

// Device input, device output, memory reads, memory writes
func fenceSet(set uint32) string {
	var builder strings.Builder

	for bit, name := range "iorw" {
		if set&(0b1000>>bit) != 0 {
			builder.WriteRune(name)
		}
	}

	if builder.Len() == 0 {
		return "0"
	}

	return builder.String()
}

func (p *printer) VisitLui(i instructions.Lui)             { p.upper(i, i.UType) }
func (p *printer) VisitAuipc(i instructions.Auipc)         { p.upper(i, i.UType) }
func (p *printer) VisitJal(i instructions.Jal)             { p.jump(i, i.JType) }
func (p *printer) VisitJalr(i instructions.Jalr)           { p.memory(i, i.Rd(), i.Imm(), i.Rs1()) }
func (p *printer) VisitBeq(i instructions.Beq)             { p.branch(i, i.BType) }
func (p *printer) VisitBne(i instructions.Bne)             { p.branch(i, i.BType) }
func (p *printer) VisitBlt(i instructions.Blt)             { p.branch(i, i.BType) }
func (p *printer) VisitBge(i instructions.Bge)             { p.branch(i, i.BType) }
func (p *printer) VisitBltu(i instructions.Bltu)           { p.branch(i, i.BType) }
func (p *printer) VisitBgeu(i instructions.Bgeu)           { p.branch(i, i.BType) }
func (p *printer) VisitLb(i instructions.Lb)               { p.memory(i, i.Rd(), i.Imm(), i.Rs1()) }
func (p *printer) VisitLh(i instructions.Lh)               { p.memory(i, i.Rd(), i.Imm(), i.Rs1()) }
func (p *printer) VisitLw(i instructions.Lw)               { p.memory(i, i.Rd(), i.Imm(), i.Rs1()) }
func (p *printer) VisitLd(i instructions.Ld)               { p.memory(i, i.Rd(), i.Imm(), i.Rs1()) }
func (p *printer) VisitLbu(i instructions.Lbu)             { p.memory(i, i.Rd(), i.Imm(), i.Rs1()) }
func (p *printer) VisitLhu(i instructions.Lhu)             { p.memory(i, i.Rd(), i.Imm(), i.Rs1()) }
func (p *printer) VisitLwu(i instructions.Lwu)             { p.memory(i, i.Rd(), i.Imm(), i.Rs1()) }
func (p *printer) VisitSb(i instructions.Sb)               { p.memory(i, i.Rs2(), i.Imm(), i.Rs1()) }
func (p *printer) VisitSh(i instructions.Sh)               { p.memory(i, i.Rs2(), i.Imm(), i.Rs1()) }
func (p *printer) VisitSw(i instructions.Sw)               { p.memory(i, i.Rs2(), i.Imm(), i.Rs1()) }
func (p *printer) VisitSd(i instructions.Sd)               { p.memory(i, i.Rs2(), i.Imm(), i.Rs1()) }
func (p *printer) VisitAddi(i instructions.Addi)           { p.immediate(i, i.IType) }
func (p *printer) VisitSlti(i instructions.Slti)           { p.immediate(i, i.IType) }
func (p *printer) VisitSltiu(i instructions.Sltiu)         { p.immediate(i, i.IType) }
func (p *printer) VisitXori(i instructions.Xori)           { p.immediate(i, i.IType) }
func (p *printer) VisitOri(i instructions.Ori)             { p.immediate(i, i.IType) }
func (p *printer) VisitAndi(i instructions.Andi)           { p.immediate(i, i.IType) }
func (p *printer) VisitSlli(i instructions.Slli)           { p.shift(i, i.Rd(), i.Rs1(), i.Shamt()) }
func (p *printer) VisitSrli(i instructions.Srli)           { p.shift(i, i.Rd(), i.Rs1(), i.Shamt()) }
func (p *printer) VisitSrai(i instructions.Srai)           { p.shift(i, i.Rd(), i.Rs1(), i.Shamt()) }
func (p *printer) VisitAdd(i instructions.Add)             { p.registers(i, i.Rd(), i.Rs1(), i.Rs2()) }
func (p *printer) VisitSub(i instructions.Sub)             { p.registers(i, i.Rd(), i.Rs1(), i.Rs2()) }
func (p *printer) VisitSll(i instructions.Sll)             { p.registers(i, i.Rd(), i.Rs1(), i.Rs2()) }
func (p *printer) VisitSlt(i instructions.Slt)             { p.registers(i, i.Rd(), i.Rs1(), i.Rs2()) }
func (p *printer) VisitSltu(i instructions.Sltu)           { p.registers(i, i.Rd(), i.Rs1(), i.Rs2()) }
func (p *printer) VisitXor(i instructions.Xor)             { p.registers(i, i.Rd(), i.Rs1(), i.Rs2()) }
func (p *printer) VisitSrl(i instructions.Srl)             { p.registers(i, i.Rd(), i.Rs1(), i.Rs2()) }
func (p *printer) VisitSra(i instructions.Sra)             { p.registers(i, i.Rd(), i.Rs1(), i.Rs2()) }
func (p *printer) VisitOr(i instructions.Or)               { p.registers(i, i.Rd(), i.Rs1(), i.Rs2()) }
func (p *printer) VisitAnd(i instructions.And)             { p.registers(i, i.Rd(), i.Rs1(), i.Rs2()) }
func (p *printer) VisitMul(i instructions.Mul)             { p.registers(i, i.Rd(), i.Rs1(), i.Rs2()) }
func (p *printer) VisitMulh(i instructions.Mulh)           { p.registers(i, i.Rd(), i.Rs1(), i.Rs2()) }
func (p *printer) VisitMulhsu(i instructions.Mulhsu)       { p.registers(i, i.Rd(), i.Rs1(), i.Rs2()) }
func (p *printer) VisitMulhu(i instructions.Mulhu)         { p.registers(i, i.Rd(), i.Rs1(), i.Rs2()) }
func (p *printer) VisitDiv(i instructions.Div)             { p.registers(i, i.Rd(), i.Rs1(), i.Rs2()) }
func (p *printer) VisitDivu(i instructions.Divu)           { p.registers(i, i.Rd(), i.Rs1(), i.Rs2()) }
func (p *printer) VisitRem(i instructions.Rem)             { p.registers(i, i.Rd(), i.Rs1(), i.Rs2()) }
func (p *printer) VisitRemu(i instructions.Remu)           { p.registers(i, i.Rd(), i.Rs1(), i.Rs2()) }
func (p *printer) VisitAddiw(i instructions.Addiw)         { p.immediate(i, i.IType) }
func (p *printer) VisitSlliw(i instructions.Slliw)         { p.shift(i, i.Rd(), i.Rs1(), i.Shamt()) }
func (p *printer) VisitSrliw(i instructions.Srliw)         { p.shift(i, i.Rd(), i.Rs1(), i.Shamt()) }
func (p *printer) VisitSraiw(i instructions.Sraiw)         { p.shift(i, i.Rd(), i.Rs1(), i.Shamt()) }
func (p *printer) VisitAddw(i instructions.Addw)           { p.registers(i, i.Rd(), i.Rs1(), i.Rs2()) }
func (p *printer) VisitSubw(i instructions.Subw)           { p.registers(i, i.Rd(), i.Rs1(), i.Rs2()) }
func (p *printer) VisitSllw(i instructions.Sllw)           { p.registers(i, i.Rd(), i.Rs1(), i.Rs2()) }
func (p *printer) VisitSrlw(i instructions.Srlw)           { p.registers(i, i.Rd(), i.Rs1(), i.Rs2()) }
func (p *printer) VisitSraw(i instructions.Sraw)           { p.registers(i, i.Rd(), i.Rs1(), i.Rs2()) }
func (p *printer) VisitMulw(i instructions.Mulw)           { p.registers(i, i.Rd(), i.Rs1(), i.Rs2()) }
func (p *printer) VisitDivw(i instructions.Divw)           { p.registers(i, i.Rd(), i.Rs1(), i.Rs2()) }
func (p *printer) VisitDivuw(i instructions.Divuw)         { p.registers(i, i.Rd(), i.Rs1(), i.Rs2()) }
func (p *printer) VisitRemw(i instructions.Remw)           { p.registers(i, i.Rd(), i.Rs1(), i.Rs2()) }
func (p *printer) VisitRemuw(i instructions.Remuw)         { p.registers(i, i.Rd(), i.Rs1(), i.Rs2()) }
func (p *printer) VisitFence(i instructions.Fence)         { p.fence(i, i.FenceType) }
func (p *printer) VisitFenceI(i instructions.FenceI)       { p.bare(i) }
func (p *printer) VisitEcall(i instructions.Ecall)         { p.bare(i) }
func (p *printer) VisitEbreak(i instructions.Ebreak)       { p.bare(i) }
func (p *printer) VisitUret(i instructions.Uret)           { p.bare(i) }
func (p *printer) VisitSret(i instructions.Sret)           { p.bare(i) }
func (p *printer) VisitMret(i instructions.Mret)           { p.bare(i) }
func (p *printer) VisitWfi(i instructions.Wfi)             { p.bare(i) }
func (p *printer) VisitSfenceVma(i instructions.SfenceVma) { p.registers(i, i.Rs1(), i.Rs2()) }
func (p *printer) VisitCsrrw(i instructions.Csrrw)         { p.csr(i, i.CsrType) }
func (p *printer) VisitCsrrs(i instructions.Csrrs)         { p.csr(i, i.CsrType) }
func (p *printer) VisitCsrrc(i instructions.Csrrc)         { p.csr(i, i.CsrType) }
func (p *printer) VisitCsrrwi(i instructions.Csrrwi)       { p.csrImmediate(i, i.CsrIType) }
func (p *printer) VisitCsrrsi(i instructions.Csrrsi)       { p.csrImmediate(i, i.CsrIType) }
func (p *printer) VisitCsrrci(i instructions.Csrrci)       { p.csrImmediate(i, i.CsrIType) }
func (p *printer) VisitIllegal(i instructions.Illegal)     { p.bare(i) }
