// Package memimage implements the flat memory an instruction stream is fetched from, optionally
// populated from a RISC-V ELF64 executable.
package memimage

import (
	"encoding/binary"
	"errors"
	"io"
	"log/slog"

	"github.com/Manu343726/rvdecode/pkg/hw/cpu/rv64/formats"
	"github.com/Manu343726/rvdecode/pkg/utils"
)

var (
	ErrOutOfBounds     = errors.New("address out of bounds")
	ErrUnalignedAccess = errors.New("unaligned access")
	ErrNotRiscV        = errors.New("not a RISC-V ELF64 little endian executable")
)

const (
	// Physical address of the first byte of memory
	DefaultBase uint64 = 0x80000000
	// Bits of the address space actually decoded by the memory
	AddressMask uint64 = 0x7f_ffff_ffff
	// Default host-target interface address, used when the executable has no .tohost section
	DefaultToHost uint64 = 0x80001000
)

type Options struct {
	// Physical address the memory starts at. Zero means DefaultBase.
	Base uint64
	// Logger for loading progress. Nil discards the logs.
	Logger *slog.Logger
}

func (o Options) base() uint64 {
	if o.Base == 0 {
		return DefaultBase
	}

	return o.Base
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return o.Logger
}

// Little endian byte addressable memory covering [Base, Base+Capacity)
type Image struct {
	base   uint64
	memory []byte

	// Address of the first instruction to execute
	Entry uint64
	// Address of the host-target interface word
	ToHost uint64
	// Function symbols by address
	Symbols map[uint64]string

	logger *slog.Logger
}

// Creates a zero filled memory of capacity bytes
func New(capacity uint64, options Options) *Image {
	base := options.base()

	return &Image{
		base:    base,
		memory:  make([]byte, capacity),
		Entry:   base,
		ToHost:  DefaultToHost,
		Symbols: make(map[uint64]string),
		logger:  options.logger(),
	}
}

func (m *Image) Base() uint64     { return m.base }
func (m *Image) Capacity() uint64 { return uint64(len(m.memory)) }

// Returns the [address, address+size) slice of the backing memory
func (m *Image) slice(address uint64, size uint64) ([]byte, error) {
	physical := address & AddressMask

	offset := physical - m.base

	if physical < m.base || size > m.Capacity() || offset > m.Capacity()-size {
		return nil, utils.MakeError(ErrOutOfBounds, "[0x%x, 0x%x) is outside [0x%x, 0x%x)", address, address+size, m.base, m.base+m.Capacity())
	}

	return m.memory[offset : offset+size], nil
}

// Copies data into memory starting at address
func (m *Image) Write(address uint64, data []byte) error {
	dest, err := m.slice(address, uint64(len(data)))
	if err != nil {
		return err
	}

	copy(dest, data)
	return nil
}

func (m *Image) Read8(address uint64) (uint8, error) {
	data, err := m.slice(address, 1)
	if err != nil {
		return 0, err
	}

	return data[0], nil
}

func (m *Image) Read16(address uint64) (uint16, error) {
	data, err := m.slice(address, 2)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint16(data), nil
}

func (m *Image) Read32(address uint64) (uint32, error) {
	data, err := m.slice(address, 4)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(data), nil
}

// Fetches the instruction at address, returning its raw encoding and its length in bytes.
// Compressed instructions are returned in the lower 16 bits of the word.
//
// Instructions are 16 bit aligned. A compressed instruction at the very end of memory can be
// fetched even though there is no room for a full word after it.
func (m *Image) Fetch(address uint64) (uint32, int, error) {
	if address%2 != 0 {
		return 0, 0, utils.MakeError(ErrUnalignedAccess, "instruction fetch from 0x%x", address)
	}

	low, err := m.Read16(address)
	if err != nil {
		return 0, 0, err
	}

	if !formats.IsStandard(uint32(low)) {
		return uint32(low), 2, nil
	}

	word, err := m.Read32(address)
	if err != nil {
		return 0, 0, err
	}

	return word, 4, nil
}

// Returns the name of the function symbol at address, if any
func (m *Image) SymbolAt(address uint64) (string, bool) {
	name, ok := m.Symbols[address]
	return name, ok
}
