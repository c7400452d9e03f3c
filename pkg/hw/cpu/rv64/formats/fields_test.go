package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardFields(t *testing.T) {
	// ld a0, 0(a1)
	word := uint32(0x0005b503)

	assert.Equal(t, MajorOpcode_LOAD, Opcode(word))
	assert.Equal(t, uint32(10), Rd(word))
	assert.Equal(t, uint32(0b011), Funct3(word))
	assert.Equal(t, uint32(11), Rs1(word))
	assert.Equal(t, int64(0), ImmI(word))
	assert.True(t, IsStandard(word))
	assert.False(t, IsStandard(0x6188))
}

func TestImmI(t *testing.T) {
	// addi a0, zero, -1025
	assert.Equal(t, int64(-1025), ImmI(0xbff00513))
	assert.Equal(t, int64(-1), IType(0xfff00013).Imm())
	assert.Equal(t, int64(2047), IType(0x7ff00013).Imm())
	assert.Equal(t, int64(-2048), IType(0x80000013).Imm())
}

func TestImmS(t *testing.T) {
	// sd s0, 232(a1)
	s := SType(0x0e85b423)
	assert.Equal(t, int64(232), s.Imm())
	assert.Equal(t, uint32(11), s.Rs1())
	assert.Equal(t, uint32(8), s.Rs2())

	assert.Equal(t, int64(-1), ImmS(EncodeS(MajorOpcode_STORE, 0b011, 2, 1, -1)))
	assert.Equal(t, int64(-2048), ImmS(EncodeS(MajorOpcode_STORE, 0b011, 2, 1, -2048)))
}

func TestImmB(t *testing.T) {
	t.Run("extremes", func(t *testing.T) {
		for _, offset := range []int64{-4096, -4094, -2, 0, 2, 2046, 2048, 4094} {
			word := EncodeB(MajorOpcode_BRANCH, 0b000, 1, 2, offset)
			assert.Equal(t, offset, ImmB(word), "offset %d", offset)
			assert.Equal(t, uint32(1), Rs1(word))
			assert.Equal(t, uint32(2), Rs2(word))
		}
	})

	t.Run("known encodings", func(t *testing.T) {
		// beq zero, zero, -4096
		assert.Equal(t, int64(-4096), ImmB(0x80000063))
		// bne a0, a1, 8
		assert.Equal(t, int64(8), BType(0x00b51463).Imm())
	})
}

func TestImmJ(t *testing.T) {
	t.Run("extremes", func(t *testing.T) {
		for _, offset := range []int64{-1048576, -1048574, -2048, -2, 0, 2, 2048, 1048574} {
			word := EncodeJ(MajorOpcode_JAL, 1, offset)
			assert.Equal(t, offset, ImmJ(word), "offset %d", offset)
			assert.Equal(t, uint32(1), Rd(word))
		}
	})

	t.Run("known encodings", func(t *testing.T) {
		// jal zero, -1048576
		assert.Equal(t, int64(-1048576), ImmJ(0x8000006f))
		// jal ra, 16
		assert.Equal(t, int64(16), JType(0x010000ef).Imm())
	})
}

func TestImmU(t *testing.T) {
	// lui a0, 0xfffff
	u := UType(0xfffff537)
	assert.Equal(t, uint32(0xfffff000), u.Imm())
	assert.Equal(t, uint32(10), u.Rd())
	assert.Equal(t, uint32(0x12345000), ImmU(EncodeU(MajorOpcode_AUIPC, 3, 0x12345678)))
}

func TestShiftAmounts(t *testing.T) {
	// srai a0, a0, 63
	assert.Equal(t, uint32(63), ShiftType(0x43f55513).Shamt())
	// sraiw a0, a0, 31
	assert.Equal(t, uint32(31), ShiftWType(0x41f5551b).Shamt())
}

func TestFenceFields(t *testing.T) {
	// fence iorw, iorw
	f := FenceType(0x0ff0000f)
	assert.Equal(t, uint32(0xf), f.Pred())
	assert.Equal(t, uint32(0xf), f.Succ())
	assert.Equal(t, uint32(0), f.Fm())

	// fence.tso
	tso := FenceType(0x8330000f)
	assert.Equal(t, uint32(0b1000), tso.Fm())
	assert.Equal(t, uint32(0b0011), tso.Pred())
	assert.Equal(t, uint32(0b0011), tso.Succ())
}

func TestCsrFields(t *testing.T) {
	// csrrw a0, mstatus, a1
	csr := CsrType(0x30059573)
	assert.Equal(t, uint32(0x300), csr.Csr())
	assert.Equal(t, uint32(11), csr.Rs1())
	assert.Equal(t, uint32(10), csr.Rd())

	// csrrsi zero, mie, 8
	csri := CsrIType(0x30446073)
	assert.Equal(t, uint32(0x304), csri.Csr())
	assert.Equal(t, uint32(8), csri.Zimm())
	assert.Equal(t, uint32(0), csri.Rd())

	// CSR addresses above 0x7ff are not sign extended
	assert.Equal(t, uint32(0xc00), Csr(0xc0002573))
}

func TestEncodeRoundTrip(t *testing.T) {
	// add a0, a1, a2
	assert.Equal(t, uint32(0x00c58533), EncodeR(MajorOpcode_OP, 10, 0b000, 11, 12, 0))
	// sub a0, a1, a2
	assert.Equal(t, uint32(0x40c58533), EncodeR(MajorOpcode_OP, 10, 0b000, 11, 12, 0b0100000))
	// addi a0, zero, -1025
	assert.Equal(t, uint32(0xbff00513), EncodeI(MajorOpcode_OP_IMM, 10, 0b000, 0, -1025))
	// ld a0, 0(a1)
	assert.Equal(t, uint32(0x0005b503), EncodeI(MajorOpcode_LOAD, 10, 0b011, 11, 0))
	// sd s0, 232(a1)
	assert.Equal(t, uint32(0x0e85b423), EncodeS(MajorOpcode_STORE, 0b011, 11, 8, 232))
}

func TestMajorOpcodeString(t *testing.T) {
	assert.Equal(t, "OP-IMM", MajorOpcode_OP_IMM.String())
	assert.Equal(t, "SYSTEM", Opcode(0x00000073).String())
	assert.Contains(t, MajorOpcode(0b1110111).String(), "reserved")
}
