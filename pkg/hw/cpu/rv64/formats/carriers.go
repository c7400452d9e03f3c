package formats

import "fmt"

// R-type: register-register operations
type RType uint32

func (i RType) Word() uint32 { return uint32(i) }
func (i RType) Rd() uint32   { return Rd(uint32(i)) }
func (i RType) Rs1() uint32  { return Rs1(uint32(i)) }
func (i RType) Rs2() uint32  { return Rs2(uint32(i)) }

func (i RType) String() string {
	return fmt.Sprintf("RType(0x%08x)", uint32(i))
}

// I-type: register-immediate operations, loads, JALR and SYSTEM
type IType uint32

func (i IType) Word() uint32 { return uint32(i) }
func (i IType) Rd() uint32   { return Rd(uint32(i)) }
func (i IType) Rs1() uint32  { return Rs1(uint32(i)) }
func (i IType) Imm() int64   { return ImmI(uint32(i)) }

func (i IType) String() string {
	return fmt.Sprintf("IType(0x%08x)", uint32(i))
}

// S-type: stores
type SType uint32

func (i SType) Word() uint32 { return uint32(i) }
func (i SType) Rs1() uint32  { return Rs1(uint32(i)) }
func (i SType) Rs2() uint32  { return Rs2(uint32(i)) }
func (i SType) Imm() int64   { return ImmS(uint32(i)) }

func (i SType) String() string {
	return fmt.Sprintf("SType(0x%08x)", uint32(i))
}

// B-type: conditional branches
type BType uint32

func (i BType) Word() uint32 { return uint32(i) }
func (i BType) Rs1() uint32  { return Rs1(uint32(i)) }
func (i BType) Rs2() uint32  { return Rs2(uint32(i)) }
func (i BType) Imm() int64   { return ImmB(uint32(i)) }

func (i BType) String() string {
	return fmt.Sprintf("BType(0x%08x)", uint32(i))
}

// U-type: LUI and AUIPC
type UType uint32

func (i UType) Word() uint32 { return uint32(i) }
func (i UType) Rd() uint32   { return Rd(uint32(i)) }
func (i UType) Imm() uint32  { return ImmU(uint32(i)) }

func (i UType) String() string {
	return fmt.Sprintf("UType(0x%08x)", uint32(i))
}

// J-type: JAL
type JType uint32

func (i JType) Word() uint32 { return uint32(i) }
func (i JType) Rd() uint32   { return Rd(uint32(i)) }
func (i JType) Imm() int64   { return ImmJ(uint32(i)) }

func (i JType) String() string {
	return fmt.Sprintf("JType(0x%08x)", uint32(i))
}

// Immediate shifts on 64 bit registers (6 bit shift amount)
type ShiftType uint32

func (i ShiftType) Word() uint32  { return uint32(i) }
func (i ShiftType) Rd() uint32    { return Rd(uint32(i)) }
func (i ShiftType) Rs1() uint32   { return Rs1(uint32(i)) }
func (i ShiftType) Shamt() uint32 { return Shamt6(uint32(i)) }

func (i ShiftType) String() string {
	return fmt.Sprintf("ShiftType(0x%08x)", uint32(i))
}

// Immediate shifts narrowed to 32 bits, the *W forms (5 bit shift amount)
type ShiftWType uint32

func (i ShiftWType) Word() uint32  { return uint32(i) }
func (i ShiftWType) Rd() uint32    { return Rd(uint32(i)) }
func (i ShiftWType) Rs1() uint32   { return Rs1(uint32(i)) }
func (i ShiftWType) Shamt() uint32 { return Shamt5(uint32(i)) }

func (i ShiftWType) String() string {
	return fmt.Sprintf("ShiftWType(0x%08x)", uint32(i))
}

// FENCE: predecessor/successor ordering masks
type FenceType uint32

func (i FenceType) Word() uint32 { return uint32(i) }
func (i FenceType) Rd() uint32   { return Rd(uint32(i)) }
func (i FenceType) Rs1() uint32  { return Rs1(uint32(i)) }

// Fence mode, bits [31:28]
func (i FenceType) Fm() uint32 { return (uint32(i) >> 28) & 0xf }

// Predecessor set (I, O, R, W), bits [27:24]
func (i FenceType) Pred() uint32 { return (uint32(i) >> 24) & 0xf }

// Successor set (I, O, R, W), bits [23:20]
func (i FenceType) Succ() uint32 { return (uint32(i) >> 20) & 0xf }

func (i FenceType) String() string {
	return fmt.Sprintf("FenceType(0x%08x)", uint32(i))
}

// CSR access with a register source
type CsrType uint32

func (i CsrType) Word() uint32 { return uint32(i) }
func (i CsrType) Rd() uint32   { return Rd(uint32(i)) }
func (i CsrType) Rs1() uint32  { return Rs1(uint32(i)) }
func (i CsrType) Csr() uint32  { return Csr(uint32(i)) }

func (i CsrType) String() string {
	return fmt.Sprintf("CsrType(0x%08x)", uint32(i))
}

// CSR access with a 5 bit unsigned immediate source in place of rs1
type CsrIType uint32

func (i CsrIType) Word() uint32 { return uint32(i) }
func (i CsrIType) Rd() uint32   { return Rd(uint32(i)) }
func (i CsrIType) Zimm() uint32 { return Zimm(uint32(i)) }
func (i CsrIType) Csr() uint32  { return Csr(uint32(i)) }

func (i CsrIType) String() string {
	return fmt.Sprintf("CsrIType(0x%08x)", uint32(i))
}

// Raw word with no fields, carried by encodings that have none (the illegal all zero word)
type Raw uint32

func (i Raw) Word() uint32 { return uint32(i) }

func (i Raw) String() string {
	return fmt.Sprintf("Raw(0x%08x)", uint32(i))
}
