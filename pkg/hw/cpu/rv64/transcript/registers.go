package transcript

import (
	"fmt"
	"strings"

	"github.com/Manu343726/rvdecode/pkg/utils"
)

// Integer register names as defined by the standard calling convention
var abiNames = [32]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

// Returns the ABI name of an integer register, or xN if out of range
func RegisterName(index uint32) string {
	if index < uint32(len(abiNames)) {
		return abiNames[index]
	}

	return fmt.Sprintf("x%d", index)
}

// Parses an integer register either by ABI name ("a0"), by number ("x10") or by the frame
// pointer alias "fp"
func ParseRegister(name string) (uint32, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	if name == "fp" {
		return 8, nil
	}

	for i, abiName := range abiNames {
		if abiName == name || fmt.Sprintf("x%d", i) == name {
			return uint32(i), nil
		}
	}

	return 0, fmt.Errorf("unknown register '%v'", name)
}

// Addresses of the control and status registers known by name
const (
	Csr_USTATUS    uint32 = 0x000
	Csr_FFLAGS     uint32 = 0x001
	Csr_FRM        uint32 = 0x002
	Csr_FCSR       uint32 = 0x003
	Csr_UIE        uint32 = 0x004
	Csr_UTVEC      uint32 = 0x005
	Csr_USCRATCH   uint32 = 0x040
	Csr_UEPC       uint32 = 0x041
	Csr_UCAUSE     uint32 = 0x042
	Csr_UTVAL      uint32 = 0x043
	Csr_UIP        uint32 = 0x044
	Csr_SSTATUS    uint32 = 0x100
	Csr_SIE        uint32 = 0x104
	Csr_STVEC      uint32 = 0x105
	Csr_SCOUNTEREN uint32 = 0x106
	Csr_SSCRATCH   uint32 = 0x140
	Csr_SEPC       uint32 = 0x141
	Csr_SCAUSE     uint32 = 0x142
	Csr_STVAL      uint32 = 0x143
	Csr_SIP        uint32 = 0x144
	Csr_SATP       uint32 = 0x180
	Csr_MSTATUS    uint32 = 0x300
	Csr_MISA       uint32 = 0x301
	Csr_MEDELEG    uint32 = 0x302
	Csr_MIDELEG    uint32 = 0x303
	Csr_MIE        uint32 = 0x304
	Csr_MTVEC      uint32 = 0x305
	Csr_MCOUNTEREN uint32 = 0x306
	Csr_MSCRATCH   uint32 = 0x340
	Csr_MEPC       uint32 = 0x341
	Csr_MCAUSE     uint32 = 0x342
	Csr_MTVAL      uint32 = 0x343
	Csr_MIP        uint32 = 0x344
	Csr_MCYCLE     uint32 = 0xb00
	Csr_MINSTRET   uint32 = 0xb02
	Csr_CYCLE      uint32 = 0xc00
	Csr_TIME       uint32 = 0xc01
	Csr_INSTRET    uint32 = 0xc02
	Csr_MVENDORID  uint32 = 0xf11
	Csr_MARCHID    uint32 = 0xf12
	Csr_MIMPID     uint32 = 0xf13
	Csr_MHARTID    uint32 = 0xf14
)

var csrNames = map[uint32]string{
	Csr_USTATUS:    "ustatus",
	Csr_FFLAGS:     "fflags",
	Csr_FRM:        "frm",
	Csr_FCSR:       "fcsr",
	Csr_UIE:        "uie",
	Csr_UTVEC:      "utvec",
	Csr_USCRATCH:   "uscratch",
	Csr_UEPC:       "uepc",
	Csr_UCAUSE:     "ucause",
	Csr_UTVAL:      "utval",
	Csr_UIP:        "uip",
	Csr_SSTATUS:    "sstatus",
	Csr_SIE:        "sie",
	Csr_STVEC:      "stvec",
	Csr_SCOUNTEREN: "scounteren",
	Csr_SSCRATCH:   "sscratch",
	Csr_SEPC:       "sepc",
	Csr_SCAUSE:     "scause",
	Csr_STVAL:      "stval",
	Csr_SIP:        "sip",
	Csr_SATP:       "satp",
	Csr_MSTATUS:    "mstatus",
	Csr_MISA:       "misa",
	Csr_MEDELEG:    "medeleg",
	Csr_MIDELEG:    "mideleg",
	Csr_MIE:        "mie",
	Csr_MTVEC:      "mtvec",
	Csr_MCOUNTEREN: "mcounteren",
	Csr_MSCRATCH:   "mscratch",
	Csr_MEPC:       "mepc",
	Csr_MCAUSE:     "mcause",
	Csr_MTVAL:      "mtval",
	Csr_MIP:        "mip",
	Csr_MCYCLE:     "mcycle",
	Csr_MINSTRET:   "minstret",
	Csr_CYCLE:      "cycle",
	Csr_TIME:       "time",
	Csr_INSTRET:    "instret",
	Csr_MVENDORID:  "mvendorid",
	Csr_MARCHID:    "marchid",
	Csr_MIMPID:     "mimpid",
	Csr_MHARTID:    "mhartid",
}

var csrAddresses = utils.InvertedMap(csrNames)

// Returns the name of a CSR, or its address in hex if it has no known name
func CsrName(address uint32) string {
	if name, ok := csrNames[address]; ok {
		return name
	}

	return utils.FormatUintHex(uint64(address), 3)
}

// Returns the address of a CSR given its name
func CsrAddress(name string) (uint32, bool) {
	address, ok := csrAddresses[strings.ToLower(name)]
	return address, ok
}
