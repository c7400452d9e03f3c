// Package elftest builds minimal RISC-V ELF64 executables in memory for tests.
package elftest

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
)

type Section struct {
	Name  string
	Kind  elf.SectionType
	Flags elf.SectionFlag
	Addr  uint64
	Data  []byte
	Link  uint32
	Info  uint32
	Entry uint64
}

type Symbol struct {
	Name    string
	Kind    elf.SymType
	Section uint16
	Value   uint64
}

// Returns an executable .text section at addr holding the given instruction words
func Text(addr uint64, words ...uint32) Section {
	return Section{Name: ".text", Kind: elf.SHT_PROGBITS, Flags: elf.SHF_ALLOC | elf.SHF_EXECINSTR, Addr: addr, Data: Words(words...)}
}

// Builds an ELF64 little endian executable with the given sections. Section indices start at 1,
// the section header string table is appended last.
func Build(machine elf.Machine, entry uint64, sections []Section) []byte {
	const (
		headerSize        = 64
		sectionHeaderSize = 64
	)

	shstrtab := []byte{0}
	names := make([]uint32, len(sections)+1)
	for i, section := range sections {
		names[i] = uint32(len(shstrtab))
		shstrtab = append(shstrtab, []byte(section.Name+"\x00")...)
	}
	names[len(sections)] = uint32(len(shstrtab))
	shstrtab = append(shstrtab, []byte(".shstrtab\x00")...)

	all := append(append([]Section{}, sections...), Section{Name: ".shstrtab", Kind: elf.SHT_STRTAB, Data: shstrtab})

	var body bytes.Buffer
	offsets := make([]uint64, len(all))
	for i, section := range all {
		offsets[i] = uint64(headerSize + body.Len())
		body.Write(section.Data)
	}
	for body.Len()%8 != 0 {
		body.WriteByte(0)
	}

	sectionHeadersOffset := uint64(headerSize + body.Len())

	header := make([]byte, headerSize)
	copy(header, []byte{0x7f, 'E', 'L', 'F', byte(elf.ELFCLASS64), byte(elf.ELFDATA2LSB), byte(elf.EV_CURRENT)})
	binary.LittleEndian.PutUint16(header[16:], uint16(elf.ET_EXEC))
	binary.LittleEndian.PutUint16(header[18:], uint16(machine))
	binary.LittleEndian.PutUint32(header[20:], uint32(elf.EV_CURRENT))
	binary.LittleEndian.PutUint64(header[24:], entry)
	binary.LittleEndian.PutUint64(header[40:], sectionHeadersOffset)
	binary.LittleEndian.PutUint16(header[52:], headerSize)
	binary.LittleEndian.PutUint16(header[58:], sectionHeaderSize)
	binary.LittleEndian.PutUint16(header[60:], uint16(len(all)+1))
	binary.LittleEndian.PutUint16(header[62:], uint16(len(all)))

	var out bytes.Buffer
	out.Write(header)
	out.Write(body.Bytes())

	// Null section
	out.Write(make([]byte, sectionHeaderSize))

	for i, section := range all {
		sh := make([]byte, sectionHeaderSize)
		binary.LittleEndian.PutUint32(sh[0:], names[i])
		binary.LittleEndian.PutUint32(sh[4:], uint32(section.Kind))
		binary.LittleEndian.PutUint64(sh[8:], uint64(section.Flags))
		binary.LittleEndian.PutUint64(sh[16:], section.Addr)
		binary.LittleEndian.PutUint64(sh[24:], offsets[i])
		binary.LittleEndian.PutUint64(sh[32:], uint64(len(section.Data)))
		binary.LittleEndian.PutUint32(sh[40:], section.Link)
		binary.LittleEndian.PutUint32(sh[44:], section.Info)
		binary.LittleEndian.PutUint64(sh[48:], 1)
		binary.LittleEndian.PutUint64(sh[56:], section.Entry)
		out.Write(sh)
	}

	return out.Bytes()
}

// Builds a .symtab/.strtab pair. The string table must be placed right after the symbol table.
func Symbols(symtabIndex uint32, symbols []Symbol) (Section, Section) {
	strtab := []byte{0}
	symtab := make([]byte, elf.Sym64Size)

	for _, symbol := range symbols {
		entry := make([]byte, elf.Sym64Size)
		binary.LittleEndian.PutUint32(entry[0:], uint32(len(strtab)))
		entry[4] = elf.ST_INFO(elf.STB_GLOBAL, symbol.Kind)
		binary.LittleEndian.PutUint16(entry[6:], symbol.Section)
		binary.LittleEndian.PutUint64(entry[8:], symbol.Value)
		symtab = append(symtab, entry...)
		strtab = append(strtab, []byte(symbol.Name+"\x00")...)
	}

	return Section{Name: ".symtab", Kind: elf.SHT_SYMTAB, Data: symtab, Link: symtabIndex + 1, Info: 1, Entry: elf.Sym64Size},
		Section{Name: ".strtab", Kind: elf.SHT_STRTAB, Data: strtab}
}

// Encodes words little endian
func Words(values ...uint32) []byte {
	data := make([]byte, 4*len(values))
	for i, value := range values {
		binary.LittleEndian.PutUint32(data[4*i:], value)
	}

	return data
}
