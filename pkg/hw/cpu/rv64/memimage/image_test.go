package memimage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageReadWrite(t *testing.T) {
	image := New(64, Options{})
	assert.Equal(t, DefaultBase, image.Base())
	assert.Equal(t, uint64(64), image.Capacity())

	require.NoError(t, image.Write(DefaultBase+4, []byte{0x03, 0xb5, 0x05, 0x00}))

	word, err := image.Read32(DefaultBase + 4)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x0005b503), word)

	half, err := image.Read16(DefaultBase + 6)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0005), half)

	b, err := image.Read8(DefaultBase + 5)
	require.NoError(t, err)
	assert.Equal(t, uint8(0xb5), b)
}

func TestImageBounds(t *testing.T) {
	image := New(16, Options{Base: 0x1000})

	_, err := image.Read32(0xffc)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = image.Read32(0x100d)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = image.Read32(0x100c)
	assert.NoError(t, err)

	assert.ErrorIs(t, image.Write(0x1008, make([]byte, 9)), ErrOutOfBounds)
	assert.ErrorIs(t, image.Write(0x1000, make([]byte, 17)), ErrOutOfBounds)
	assert.NoError(t, image.Write(0x1000, make([]byte, 16)))
}

func TestImageAddressMask(t *testing.T) {
	image := New(16, Options{})
	require.NoError(t, image.Write(DefaultBase, []byte{0xaa}))

	// Bits above the decoded address space are ignored
	b, err := image.Read8(DefaultBase | 0xff00_0000_0000_0000)
	require.NoError(t, err)
	assert.Equal(t, uint8(0xaa), b)
}

func TestFetch(t *testing.T) {
	image := New(10, Options{})

	// c.ld a0, 0(a1); ld a0, 0(a1); c.li a0, -1; c.nop
	require.NoError(t, image.Write(DefaultBase, []byte{
		0x88, 0x61,
		0x03, 0xb5, 0x05, 0x00,
		0x7d, 0x55,
		0x01, 0x00,
	}))

	cases := []struct {
		address uint64
		word    uint32
		length  int
	}{
		{DefaultBase, 0x6188, 2},
		{DefaultBase + 2, 0x0005b503, 4},
		{DefaultBase + 6, 0x557d, 2},
		{DefaultBase + 8, 0x0001, 2},
	}

	for _, tc := range cases {
		word, length, err := image.Fetch(tc.address)
		require.NoError(t, err)
		assert.Equal(t, tc.word, word, "0x%x", tc.address)
		assert.Equal(t, tc.length, length, "0x%x", tc.address)
	}

	_, _, err := image.Fetch(DefaultBase + 1)
	assert.ErrorIs(t, err, ErrUnalignedAccess)

	_, _, err = image.Fetch(DefaultBase + 10)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestFetchTruncatedStandardInstruction(t *testing.T) {
	image := New(4, Options{})
	require.NoError(t, image.Write(DefaultBase+2, []byte{0x13, 0x00}))

	_, _, err := image.Fetch(DefaultBase + 2)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}
