package compressed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterFields(t *testing.T) {
	// c.ld a0, 0(a1)
	hw := uint16(0x6188)
	assert.Equal(t, uint16(0), Quadrant(hw))
	assert.Equal(t, uint16(0b011), Funct3(hw))
	assert.Equal(t, uint32(11), Rs1Prime(hw))
	assert.Equal(t, uint32(10), RdPrime(hw))

	// c.add a0, a1
	hw = 0x952e
	assert.Equal(t, uint16(2), Quadrant(hw))
	assert.Equal(t, uint32(10), Rd(hw))
	assert.Equal(t, uint32(11), Rs2(hw))
	assert.Equal(t, uint16(1), Bit12(hw))
}

func TestUnsignedImmediates(t *testing.T) {
	t.Run("CIW", func(t *testing.T) {
		assert.Equal(t, uint32(16), ImmCIW(0x0808))
		assert.Equal(t, uint32(1020), ImmCIW(0x1fe0))
		assert.Equal(t, uint32(0), ImmCIW(0x0004))
	})

	t.Run("CL word", func(t *testing.T) {
		assert.Equal(t, uint32(64), ImmCLW(0x43b0))
		assert.Equal(t, uint32(124), ImmCLW(0x5c60))
	})

	t.Run("CL doubleword", func(t *testing.T) {
		assert.Equal(t, uint32(0), ImmCLD(0x6188))
		assert.Equal(t, uint32(232), ImmCLD(0x75e0))
		assert.Equal(t, uint32(248), ImmCLD(0x7c60))
	})

	t.Run("stack pointer relative", func(t *testing.T) {
		assert.Equal(t, uint32(8), ImmCLDSP(0x60a2))
		assert.Equal(t, uint32(504), ImmCLDSP(0x70fe))
		assert.Equal(t, uint32(0), ImmCLWSP(0x4502))
		assert.Equal(t, uint32(252), ImmCLWSP(0x507e))
		assert.Equal(t, uint32(4), ImmCSWSP(0xc22a))
		assert.Equal(t, uint32(252), ImmCSWSP(0xdf82))
		assert.Equal(t, uint32(8), ImmCSDSP(0xe406))
		assert.Equal(t, uint32(504), ImmCSDSP(0xff82))
	})

	t.Run("shift amount", func(t *testing.T) {
		assert.Equal(t, uint32(1), ShamtCI(0x8005))
		assert.Equal(t, uint32(63), ShamtCI(0x947d))
	})
}

func TestSignedImmediates(t *testing.T) {
	t.Run("CI", func(t *testing.T) {
		assert.Equal(t, int64(1), ImmCI(0x0505))
		assert.Equal(t, int64(-1), ImmCI(0x557d))
		assert.Equal(t, int64(-32), ImmCI(0x1001))
		assert.Equal(t, int64(31), ImmCI(0x007d))
	})

	t.Run("C.LUI", func(t *testing.T) {
		assert.Equal(t, int64(0x1000), ImmCLUI(0x6505))
		assert.Equal(t, int64(-4096), ImmCLUI(0x757d))
		assert.Equal(t, int64(-131072), ImmCLUI(0x7501))
		assert.Equal(t, int64(0x1f000), ImmCLUI(0x657d))
	})

	t.Run("C.ADDI16SP", func(t *testing.T) {
		assert.Equal(t, int64(-64), ImmCADDI16SP(0x7139))
		assert.Equal(t, int64(-512), ImmCADDI16SP(0x7101))
		assert.Equal(t, int64(496), ImmCADDI16SP(0x617d))
		assert.Equal(t, int64(0), ImmCADDI16SP(0x6101))
	})

	t.Run("C.J extremes", func(t *testing.T) {
		assert.Equal(t, int64(-2048), ImmCJ(0xb001))
		assert.Equal(t, int64(2046), ImmCJ(0xaffd))
		assert.Equal(t, int64(-2), ImmCJ(0xbffd))
		assert.Equal(t, int64(0), ImmCJ(0xa001))
	})

	t.Run("CB extremes", func(t *testing.T) {
		assert.Equal(t, int64(-256), ImmCB(0xd001))
		assert.Equal(t, int64(254), ImmCB(0xcc7d))
		assert.Equal(t, int64(-2), ImmCB(0xfc7d))
		assert.Equal(t, int64(0), ImmCB(0xc001))
	})
}
