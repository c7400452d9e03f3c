package compressed

import (
	"sync"
	"testing"

	"github.com/Manu343726/rvdecode/pkg/hw/cpu/rv64/formats"
	"github.com/Manu343726/rvdecode/pkg/hw/cpu/rv64/instructions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	cases := []struct {
		name     string
		hw       uint16
		expected uint32
	}{
		{"c.addi4spn a0, sp, 16", 0x0808, 0x01010513},
		{"c.fld fa0, 8(a1)", 0x2588, 0x0085b507},
		{"c.lw a2, 64(a5)", 0x43b0, 0x0407a603},
		{"c.ld a0, 0(a1)", 0x6188, 0x0005b503},
		{"c.ld s0, 232(a1)", 0x75e0, 0x0e85b403},
		{"c.fsd fa0, 0(a1)", 0xa188, 0x00a5b027},
		{"c.sw a2, 64(a5)", 0xc3b0, 0x04c7a023},
		{"c.sd a0, 0(a1)", 0xe188, 0x00a5b023},
		{"c.sd s0, 232(a1)", 0xf5e0, 0x0e85b423},
		{"c.nop", 0x0001, 0x00000013},
		{"c.addi a0, 1", 0x0505, 0x00150513},
		{"c.addiw a0, -1", 0x357d, 0xfff5051b},
		{"c.li a0, -1", 0x557d, 0xfff00513},
		{"c.addi16sp sp, -64", 0x7139, 0xfc010113},
		{"c.lui a0, 0x1", 0x6505, 0x00001537},
		{"c.lui a0, 0xfffff", 0x757d, 0xfffff537},
		{"c.srli s0, 1", 0x8005, 0x00145413},
		{"c.srai s0, 63", 0x947d, 0x43f45413},
		{"c.andi s0, -1", 0x987d, 0xfff47413},
		{"c.sub s0, s1", 0x8c05, 0x40940433},
		{"c.xor s0, s1", 0x8c25, 0x00944433},
		{"c.or s0, s1", 0x8c45, 0x00946433},
		{"c.and s0, s1", 0x8c65, 0x00947433},
		{"c.subw s0, s1", 0x9c05, 0x4094043b},
		{"c.addw s0, s1", 0x9c25, 0x0094043b},
		{"c.j 0", 0xa001, 0x0000006f},
		{"c.j -2", 0xbffd, 0xfffff06f},
		{"c.beqz s0, 0", 0xc001, 0x00040063},
		{"c.bnez s0, -2", 0xfc7d, 0xfe041fe3},
		{"c.slli a0, 1", 0x0506, 0x00151513},
		{"c.fldsp fa0, 8(sp)", 0x2522, 0x00813507},
		{"c.lwsp a0, 0(sp)", 0x4502, 0x00012503},
		{"c.ldsp ra, 8(sp)", 0x60a2, 0x00813083},
		{"c.jr ra", 0x8082, 0x00008067},
		{"c.mv a0, a1", 0x852e, 0x00b00533},
		{"c.ebreak", 0x9002, 0x00100073},
		{"c.jalr a0", 0x9502, 0x000500e7},
		{"c.add a0, a1", 0x952e, 0x00b50533},
		{"c.fsdsp fa0, 8(sp)", 0xa42a, 0x00a13427},
		{"c.swsp a0, 4(sp)", 0xc22a, 0x00a12223},
		{"c.sdsp ra, 8(sp)", 0xe406, 0x00113423},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Expand(tc.hw), "expected 0x%08x, got 0x%08x", tc.expected, Expand(tc.hw))
		})
	}
}

func TestExpandRejects(t *testing.T) {
	cases := []struct {
		name     string
		hw       uint16
		mnemonic string
		policy   Policy
	}{
		{"all zero halfword", 0x0000, "C.ILLEGAL", Policy_Reserved},
		{"c.addi4spn with nzuimm=0", 0x0004, "C.ADDI4SPN", Policy_Reserved},
		{"quadrant 0 funct3 100", 0x8000, "reserved", Policy_Reserved},
		{"c.nop with imm!=0", 0x0005, "C.NOP", Policy_Hint},
		{"c.addi with nzimm=0", 0x0501, "C.ADDI", Policy_Hint},
		{"c.addiw with rd=0", 0x2001, "C.ADDIW", Policy_Reserved},
		{"c.li with rd=0", 0x4005, "C.LI", Policy_Hint},
		{"c.addi16sp with nzimm=0", 0x6101, "C.ADDI16SP", Policy_Reserved},
		{"c.lui with nzimm=0", 0x6501, "C.LUI", Policy_Reserved},
		{"c.lui with rd=0", 0x6005, "C.LUI", Policy_Hint},
		{"c.srli with shamt=0", 0x8001, "C.SRLI", Policy_Hint},
		{"c.srai with shamt=0", 0x8401, "C.SRAI", Policy_Hint},
		{"quadrant 1 arith bit12=1 funct2=10", 0x9c45, "reserved", Policy_Reserved},
		{"quadrant 1 arith bit12=1 funct2=11", 0x9c65, "reserved", Policy_Reserved},
		{"c.slli with rd=0", 0x0006, "C.SLLI", Policy_Hint},
		{"c.slli with shamt=0", 0x0502, "C.SLLI", Policy_Hint},
		{"c.lwsp with rd=0", 0x4002, "C.LWSP", Policy_Reserved},
		{"c.ldsp with rd=0", 0x6002, "C.LDSP", Policy_Reserved},
		{"c.jr with rs1=0", 0x8002, "C.JR", Policy_Reserved},
		{"c.mv with rd=0", 0x802e, "C.MV", Policy_Hint},
		{"c.add with rd=0", 0x902e, "C.ADD", Policy_Hint},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, InvalidExpansion, Expand(tc.hw))

			form := Classify(tc.hw)
			require.NotNil(t, form)
			assert.Equal(t, tc.mnemonic, form.Mnemonic)
			assert.Equal(t, tc.policy, form.Policy)
		})
	}
}

func TestExpandNoMapping(t *testing.T) {
	for _, hw := range []uint16{0x0003, 0x0007, 0x7fff, 0xffff} {
		assert.Nil(t, Classify(hw))
		assert.Equal(t, InvalidExpansion, Expand(hw))
	}
}

// Every halfword either expands to the sentinel or to a standard word the decoder accepts.
// Expanded floating point forms are rejected as unimplemented.
func TestExpandSweep(t *testing.T) {
	floatingPoint := map[string]bool{"C.FLD": true, "C.FSD": true, "C.FLDSP": true, "C.FSDSP": true}

	for i := 0; i <= 0xffff; i++ {
		hw := uint16(i)
		word := Expand(hw)
		form := Classify(hw)

		if word == InvalidExpansion {
			assert.True(t, form == nil || form.Policy != Policy_Legal, "0x%04x: legal form %v expanded to the sentinel", hw, form)
			continue
		}

		require.NotNil(t, form)
		require.Equal(t, Policy_Legal, form.Policy)
		require.True(t, formats.IsStandard(word), "0x%04x expanded to non standard word 0x%08x", hw, word)

		inst, err := instructions.Decode(word)
		if floatingPoint[form.Mnemonic] {
			assert.ErrorIs(t, err, instructions.ErrUnimplemented, "0x%04x (%v)", hw, form)
			continue
		}

		if assert.NoError(t, err, "0x%04x (%v) expanded to 0x%08x", hw, form, word) {
			assert.NotEqual(t, instructions.OpCode_ILLEGAL, inst.OpCode())
		}
	}
}

func TestExpandIsPure(t *testing.T) {
	var reference [1 << 16]uint32
	for i := range reference {
		reference[i] = Expand(uint16(i))
	}

	var wg sync.WaitGroup

	for worker := 0; worker < 4; worker++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range reference {
				if got := Expand(uint16(i)); got != reference[i] {
					t.Errorf("0x%04x: expanded to 0x%08x, previously 0x%08x", i, got, reference[i])
					return
				}
			}
		}()
	}

	wg.Wait()
}
