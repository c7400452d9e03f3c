package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterName(t *testing.T) {
	assert.Equal(t, "zero", RegisterName(0))
	assert.Equal(t, "a0", RegisterName(10))
	assert.Equal(t, "s11", RegisterName(27))
	assert.Equal(t, "t6", RegisterName(31))
	assert.Equal(t, "x32", RegisterName(32))
}

func TestParseRegister(t *testing.T) {
	for i := uint32(0); i < 32; i++ {
		index, err := ParseRegister(RegisterName(i))
		require.NoError(t, err)
		assert.Equal(t, i, index)
	}

	index, err := ParseRegister("X10")
	require.NoError(t, err)
	assert.Equal(t, uint32(10), index)

	index, err = ParseRegister("fp")
	require.NoError(t, err)
	assert.Equal(t, uint32(8), index)

	_, err = ParseRegister("q7")
	assert.Error(t, err)
}

func TestCsrNames(t *testing.T) {
	assert.Equal(t, "mstatus", CsrName(Csr_MSTATUS))
	assert.Equal(t, "cycle", CsrName(0xc00))
	assert.Equal(t, "0x7c0", CsrName(0x7c0))

	address, ok := CsrAddress("MEPC")
	assert.True(t, ok)
	assert.Equal(t, Csr_MEPC, address)

	_, ok = CsrAddress("nope")
	assert.False(t, ok)
}
