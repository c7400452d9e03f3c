// Package instructions models decoded RV64IMC + Zicsr instructions.
//
// An Instruction is a closed set of variants, one Go type per operation. Each variant embeds
// exactly one encoding format carrier from the formats package, so its fields (registers,
// immediates, shift amounts, CSR addresses) are always read from the original word.
//
// The set is sealed: only types in this package implement Instruction. Code that needs to
// handle every operation implements Visitor instead of type switching, so adding an operation
// is a compile error at every consumer until it is handled.
package instructions

import "fmt"

// A decoded instruction
type Instruction interface {
	// Returns the operation implemented by the instruction
	OpCode() OpCode
	// Returns the 32 bit standard encoding the instruction was decoded from
	Word() uint32
	// Calls the Visitor method matching the instruction variant
	Accept(v Visitor)

	sealed()
}

// Returns a short human readable description of the instruction (mnemonic and encoding)
func Describe(i Instruction) string {
	return fmt.Sprintf("%v(0x%08x)", i.OpCode(), i.Word())
}

// Returns true if both instructions are the same operation decoded from the same word
func Equal(a, b Instruction) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.OpCode() == b.OpCode() && a.Word() == b.Word()
}
