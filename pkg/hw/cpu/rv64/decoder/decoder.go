// Package decoder is the entry point of the instruction decoder: it selects between the standard
// and compressed encodings of a fetched word and returns the decoded instruction with its length.
package decoder

import (
	"fmt"
	"strings"

	"github.com/Manu343726/rvdecode/pkg/hw/cpu/rv64/compressed"
	"github.com/Manu343726/rvdecode/pkg/hw/cpu/rv64/formats"
	"github.com/Manu343726/rvdecode/pkg/hw/cpu/rv64/instructions"
	"github.com/Manu343726/rvdecode/pkg/utils"
)

// Selects how compressed instructions are decoded
type Strategy uint

const (
	// Expand the halfword to its standard equivalent and decode that
	Strategy_ExpandThenDecode Strategy = iota
	// Decode the halfword directly. Only covers the quadrant 0 load/store forms.
	Strategy_QuadrantDecode
)

var strategyNames = map[Strategy]string{
	Strategy_ExpandThenDecode: "expand",
	Strategy_QuadrantDecode:   "quadrant",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Strategy(%d)", uint(s))
}

// Parses a strategy from its name ("expand" or "quadrant")
func ParseStrategy(name string) (Strategy, error) {
	strategies := utils.InvertedMap(strategyNames)

	if strategy, ok := strategies[strings.ToLower(name)]; ok {
		return strategy, nil
	}

	return 0, fmt.Errorf("unknown compressed decoding strategy '%v', expected one of: %v", name, utils.FormatSlice(utils.Values(strategyNames), ", "))
}

// Length in bytes of standard and compressed instructions
const (
	StandardLength   = 4
	CompressedLength = 2
)

// Decodes instruction words. The zero value uses Strategy_ExpandThenDecode. Decoders hold no
// mutable state and can be shared between goroutines.
type Decoder struct {
	strategy Strategy
}

func New(strategy Strategy) *Decoder {
	return &Decoder{
		strategy: strategy,
	}
}

func (d *Decoder) Strategy() Strategy {
	return d.strategy
}

// Returns the length in bytes of the instruction starting with the given word (2 or 4)
func Length(word uint32) int {
	if formats.IsStandard(word) {
		return StandardLength
	}

	return CompressedLength
}

// Decodes the instruction at the beginning of word, returning it together with its length in
// bytes. Compressed instructions only use the lower 16 bits of word.
func (d *Decoder) Decode(word uint32) (instructions.Instruction, int, error) {
	if formats.IsStandard(word) {
		inst, err := instructions.Decode(word)
		return inst, StandardLength, err
	}

	inst, err := d.DecodeCompressed(uint16(word))
	return inst, CompressedLength, err
}

// Decodes a compressed halfword.
//
// The all zero halfword decodes to the Illegal variant. Reserved encodings fail with
// ErrIllegal. HINTs, floating point forms and encodings without a standard equivalent fail
// with ErrUnimplemented.
func (d *Decoder) DecodeCompressed(hw uint16) (instructions.Instruction, error) {
	switch d.strategy {
	case Strategy_QuadrantDecode:
		return compressed.DecodeQuadrant(hw)
	default:
		return expandThenDecode(hw)
	}
}

func expandThenDecode(hw uint16) (instructions.Instruction, error) {
	if hw == 0 {
		return instructions.Illegal{Raw: formats.Raw(0)}, nil
	}

	word := compressed.Expand(hw)
	if word != compressed.InvalidExpansion {
		return instructions.Decode(word)
	}

	if !compressed.HasMapping(hw) {
		return nil, utils.MakeError(instructions.ErrUnimplemented, "compressed 0x%04x has no standard equivalent", hw)
	}

	form := compressed.Classify(hw)

	switch {
	case form.Policy == compressed.Policy_Reserved:
		return nil, utils.MakeError(instructions.ErrIllegal, "compressed 0x%04x: %v", hw, form)
	default:
		return nil, utils.MakeError(instructions.ErrUnimplemented, "compressed 0x%04x: %v", hw, form)
	}
}

var defaultDecoder = New(Strategy_ExpandThenDecode)

// Decodes a word with the default expand-then-decode strategy
func Decode(word uint32) (instructions.Instruction, int, error) {
	return defaultDecoder.Decode(word)
}
