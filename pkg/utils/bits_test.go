package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllOnes(t *testing.T) {
	assert.Equal(t, uint32(0), AllOnes[uint32](0))
	assert.Equal(t, uint32(0x1f), AllOnes[uint32](5))
	assert.Equal(t, uint32(0xffffffff), AllOnes[uint32](32))
	assert.Equal(t, uint16(0xffff), AllOnes[uint16](40))
}

func TestField(t *testing.T) {
	assert.Equal(t, uint32(0x33), Field(uint32(0x00c58533), 0, 7))
	assert.Equal(t, uint32(10), Field(uint32(0x00c58533), 7, 5))
	assert.Equal(t, uint16(0b11), Field(uint16(0x6188), 13, 3))
}

func TestSignExtend(t *testing.T) {
	assert.Equal(t, int64(-1), SignExtend(uint32(0xfff), 12))
	assert.Equal(t, int64(2047), SignExtend(uint32(0x7ff), 12))
	assert.Equal(t, int64(-2048), SignExtend(uint32(0x800), 12))
	assert.Equal(t, int64(-4096), SignExtend(uint32(0x1000), 13))
	assert.Equal(t, int64(-32), SignExtend(uint16(0x20), 6))
	assert.Equal(t, int64(-1), SignExtend(uint32(0xffffffff), 32))
}

func TestBitView(t *testing.T) {
	var word uint32
	view := CreateBitView(&word)

	view.Write(0x13, 0, 7)
	view.Write(10, 7, 5)
	assert.Equal(t, uint32(0x513), view.Value())
	assert.Equal(t, uint32(10), view.Read(7, 5))

	// Bits not fitting in the range are dropped
	view.Write(0xff, 12, 3)
	assert.Equal(t, uint32(0x7), view.Read(12, 3))

	view.Replace(0b010, 12, 3)
	assert.Equal(t, uint32(0b010), view.Read(12, 3))

	view.SetBit(31)
	assert.True(t, view.Test(31))
	view.ClearBit(31)
	assert.False(t, view.Test(31))

	view.SetBits(20, 12)
	assert.Equal(t, uint32(0xfff), view.Read(20, 12))
	view.ClearBits(20, 12)
	assert.Equal(t, uint32(0), view.Read(20, 12))

	assert.Equal(t, 32, view.SizeofBits())
}

func TestMakeError(t *testing.T) {
	sentinel := errors.New("sentinel")

	err := MakeError(sentinel, "value %v at 0x%x", 42, 16)
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, "sentinel: value 42 at 0x10", err.Error())

	err = MakeError(sentinel, "no arguments")
	assert.Equal(t, "sentinel: no arguments", err.Error())
}
