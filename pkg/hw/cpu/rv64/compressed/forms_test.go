package compressed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEveryGroupHasForms(t *testing.T) {
	for quadrant := uint16(0); quadrant < 3; quadrant++ {
		for funct3 := uint16(0); funct3 < 8; funct3++ {
			assert.NotEmpty(t, Group(quadrant, funct3), "Q%d funct3=%03b has no forms", quadrant, funct3)
		}
	}

	assert.Empty(t, Group(3, 0))
}

func TestEveryHalfwordIsClassified(t *testing.T) {
	for i := 0; i <= 0xffff; i++ {
		hw := uint16(i)

		form := Classify(hw)
		if Quadrant(hw) == 0b11 {
			assert.Nil(t, form)
			continue
		}

		if assert.NotNil(t, form, "0x%04x", hw) {
			assert.Equal(t, Quadrant(hw), form.Quadrant)
			assert.Equal(t, Funct3(hw), form.Funct3)
		}
	}
}

func TestEveryFormIsReachable(t *testing.T) {
	reached := make(map[*Form]bool)

	for i := 0; i <= 0xffff; i++ {
		if form := Classify(uint16(i)); form != nil {
			reached[form] = true
		}
	}

	for i := range Forms {
		assert.True(t, reached[&Forms[i]], "%v is shadowed by a previous form", &Forms[i])
	}
}

func TestFormsPolicies(t *testing.T) {
	for i := range Forms {
		form := &Forms[i]

		if form.Policy == Policy_Legal {
			assert.NotNil(t, form.Expand, "%v", form)
		} else {
			assert.Nil(t, form.Expand, "%v", form)
		}
	}

	assert.Equal(t, "legal", Policy_Legal.String())
	assert.Equal(t, "reserved", Policy_Reserved.String())
	assert.Equal(t, "hint", Policy_Hint.String())
}

func TestHasMapping(t *testing.T) {
	assert.True(t, HasMapping(0x0000))
	assert.True(t, HasMapping(0x6188))
	assert.False(t, HasMapping(0x8000))
	assert.False(t, HasMapping(0x9ffc))
	assert.False(t, HasMapping(0x0003))
	assert.True(t, HasMapping(0xa188))
	assert.True(t, HasMapping(0x9002))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, "C.NOP", Classify(0x0001).Mnemonic)
	assert.Equal(t, Policy_Legal, Classify(0x0001).Policy)
	assert.Equal(t, "C.ADDI16SP", Classify(0x7139).Mnemonic)
	assert.Equal(t, "C.LUI", Classify(0x6505).Mnemonic)
	assert.Equal(t, "C.EBREAK", Classify(0x9002).Mnemonic)
	assert.Equal(t, "C.JALR", Classify(0x9502).Mnemonic)
	assert.Equal(t, "C.MV", Classify(0x852e).Mnemonic)
	assert.Equal(t, "C.SUBW", Classify(0x9c05).Mnemonic)
}
