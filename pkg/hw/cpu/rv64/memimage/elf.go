package memimage

import (
	"debug/elf"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Manu343726/rvdecode/pkg/utils"
)

// Name of the section holding the host-target interface word of riscv-tests binaries
const ToHostSection = ".tohost"

// Loads a RISC-V ELF64 executable into a memory of capacity bytes
func LoadELF(path string, capacity uint64, options Options) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return LoadELFReader(f, capacity, options)
}

// Loads a RISC-V ELF64 executable read from r.
//
// Every PROGBITS section with contents that lives at or above the memory base is copied into
// memory. The entry point comes from the ELF header and the tohost address from the .tohost
// section, falling back to DefaultToHost.
func LoadELFReader(r io.ReaderAt, capacity uint64, options Options) (*Image, error) {
	elfFile, err := elf.NewFile(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ELF file: %w", err)
	}
	defer elfFile.Close()

	if elfFile.Class != elf.ELFCLASS64 {
		return nil, utils.MakeError(ErrNotRiscV, "expected 64-bit ELF file, got %v", elfFile.Class)
	}
	if elfFile.Data != elf.ELFDATA2LSB {
		return nil, utils.MakeError(ErrNotRiscV, "expected little-endian ELF file, got %v", elfFile.Data)
	}
	if elfFile.Machine != elf.EM_RISCV {
		return nil, utils.MakeError(ErrNotRiscV, "expected RISC-V machine, got %v", elfFile.Machine)
	}

	image := New(capacity, options)
	image.Entry = elfFile.Entry

	if tohost := elfFile.Section(ToHostSection); tohost != nil {
		image.ToHost = tohost.Addr
	}

	for _, section := range elfFile.Sections {
		if section.Type != elf.SHT_PROGBITS {
			continue
		}

		if section.Addr < image.base || section.Offset == 0 || section.Size == 0 {
			image.logger.Debug("skipping section", "name", section.Name, "addr", fmt.Sprintf("0x%x", section.Addr), "size", section.Size)
			continue
		}

		data, err := section.Data()
		if err != nil {
			return nil, fmt.Errorf("failed to read section %v: %w", section.Name, err)
		}

		if err := image.Write(section.Addr, data); err != nil {
			return nil, fmt.Errorf("failed to load section %v: %w", section.Name, err)
		}

		image.logger.Debug("loaded section", "name", section.Name, "addr", fmt.Sprintf("0x%x", section.Addr), "size", section.Size)
	}

	if err := image.loadSymbols(elfFile); err != nil {
		return nil, err
	}

	image.logger.Info("loaded ELF image",
		"entry", fmt.Sprintf("0x%x", image.Entry),
		"tohost", fmt.Sprintf("0x%x", image.ToHost),
		"symbols", len(image.Symbols))

	return image, nil
}

func (m *Image) loadSymbols(elfFile *elf.File) error {
	symbols, err := elfFile.Symbols()
	if errors.Is(err, elf.ErrNoSymbols) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read symbols: %w", err)
	}

	for _, symbol := range symbols {
		if elf.ST_TYPE(symbol.Info) != elf.STT_FUNC || symbol.Name == "" {
			continue
		}

		m.Symbols[symbol.Value] = symbol.Name
	}

	return nil
}
