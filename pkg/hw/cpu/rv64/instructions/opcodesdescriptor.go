package instructions

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Manu343726/rvdecode/pkg/utils"
)

// Contains information about an instruction opcode
type OpCodeDescriptor struct {
	OpCode   OpCode
	Mnemonic string
}

func (d *OpCodeDescriptor) String() string {
	return fmt.Sprintf("%v (code: %v)", d.Mnemonic, uint(d.OpCode))
}

// Returns information about the implemented opcodes
type OpCodesDescriptor struct {
	mnemonics         map[OpCode]string
	mnemonicsToOpCode map[string]OpCode
}

func (d *OpCodesDescriptor) Descriptor(op OpCode) *OpCodeDescriptor {
	return &OpCodeDescriptor{
		OpCode:   op,
		Mnemonic: d.Mnemonic(op),
	}
}

// Returns the descriptors of all implemented opcodes, sorted by opcode
func (d *OpCodesDescriptor) AllOpCodes() []*OpCodeDescriptor {
	opcodes := utils.Keys(d.mnemonics)
	slices.Sort(opcodes)
	return utils.Map(opcodes, d.Descriptor)
}

// Number of opcodes implemented
func (d *OpCodesDescriptor) TotalOpCodes() int {
	return len(d.mnemonics)
}

// Returns the mnemonic string representation of the opcode
func (d *OpCodesDescriptor) Mnemonic(op OpCode) string {
	if mnemonic, hasOpCode := d.mnemonics[op]; hasOpCode {
		return mnemonic
	}

	return fmt.Sprintf("OpCode(%d)", uint(op))
}

var ErrInvalidOpCode error = errors.New("invalid instruction opcode")

// Returns the opcode corresponding to the given mnemonic. Dotted assembler spellings
// (fence.i, sfence.vma) are accepted too.
func (d *OpCodesDescriptor) ParseOpCode(mnemonic string) (OpCode, error) {
	key := strings.ReplaceAll(strings.ToUpper(mnemonic), ".", "")

	if opcode, hasOpCode := d.mnemonicsToOpCode[key]; hasOpCode {
		return opcode, nil
	} else {
		return 0, utils.MakeError(ErrInvalidOpCode, "'%v'", mnemonic)
	}
}

// Initializes an opcodes descriptor with all the opcodes in the given opcode -> mnemonic map
func NewOpCodesDescriptor(mnemonics map[OpCode]string) OpCodesDescriptor {
	for i, opCode := range utils.Iota(int(TOTAL_OPCODES), func(i int) OpCode { return OpCode(i) }) {
		if _, hasOpCode := mnemonics[opCode]; !hasOpCode {
			panic(fmt.Sprintf("missing entry for opcode %v in mnemonics table. Make sure you've added all OpCode -> Mnemonic entries in the NewOpCodesDescriptor() call", i))
		}
	}

	d := OpCodesDescriptor{
		mnemonics:         mnemonics,
		mnemonicsToOpCode: utils.InvertedMap(mnemonics),
	}

	if d.TotalOpCodes() != int(TOTAL_OPCODES) || len(d.mnemonicsToOpCode) != int(TOTAL_OPCODES) {
		panic("duplicated entry in opcode mnemonics table??? Make sure every OpCode has its own Mnemonic in the NewOpCodesDescriptor() call")
	}
	return d
}
