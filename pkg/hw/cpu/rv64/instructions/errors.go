package instructions

import "errors"

// Closed set of reasons a word cannot be decoded
type DecodingError uint

const (
	// The encoding is defined by the ISA but belongs to an extension this decoder does not
	// implement (floating point, atomics, custom opcode space, longer instruction lengths)
	DecodingError_Unimplemented DecodingError = iota
	// The encoding is reserved or undefined
	DecodingError_Illegal
)

func (e DecodingError) Error() string {
	switch e {
	case DecodingError_Unimplemented:
		return "unimplemented instruction"
	case DecodingError_Illegal:
		return "illegal instruction"
	default:
		panic("unreachable")
	}
}

// Returns the name of the error kind as reported to host side records
func (e DecodingError) Name() string {
	switch e {
	case DecodingError_Unimplemented:
		return "Unimplemented"
	case DecodingError_Illegal:
		return "Illegal"
	default:
		panic("unreachable")
	}
}

var (
	ErrUnimplemented error = DecodingError_Unimplemented
	ErrIllegal       error = DecodingError_Illegal
)

// Returns the decoding error kind wrapped by err, if any
func DecodingErrorOf(err error) (DecodingError, bool) {
	var kind DecodingError
	if errors.As(err, &kind) {
		return kind, true
	}

	return 0, false
}
