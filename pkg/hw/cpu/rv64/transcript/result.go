package transcript

import (
	"fmt"

	"github.com/Manu343726/rvdecode/pkg/hw/cpu/rv64/decoder"
	"github.com/Manu343726/rvdecode/pkg/hw/cpu/rv64/instructions"
)

// Outcome of decoding one word: either an instruction record or the name of the decoding error
type Result struct {
	Word        uint32  `yaml:"word" json:"word"`
	Length      int     `yaml:"length" json:"length"`
	Inst        *Record `yaml:"inst,omitempty" json:"inst,omitempty"`
	DecodeError *string `yaml:"decode_error,omitempty" json:"decode_error,omitempty"`
}

func (r Result) String() string {
	if r.Inst != nil {
		return fmt.Sprintf("0x%08x: %v", r.Word, r.Inst)
	}
	if r.DecodeError != nil {
		return fmt.Sprintf("0x%08x: error: %v", r.Word, *r.DecodeError)
	}

	return fmt.Sprintf("0x%08x: <empty>", r.Word)
}

// Decodes a word with the default decoder and transcribes the result
func DecodeWord(word uint32) Result {
	return DecodeWith(decoder.New(decoder.Strategy_ExpandThenDecode), word)
}

func DecodeWith(d *decoder.Decoder, word uint32) Result {
	inst, length, err := d.Decode(word)
	return FromDecode(word, inst, length, err)
}

// Builds the result of an already decoded word
func FromDecode(word uint32, inst instructions.Instruction, length int, err error) Result {
	result := Result{
		Word:   word,
		Length: length,
	}

	if err != nil {
		result.DecodeError = ptr(ErrorName(err))
		return result
	}

	record := Transcribe(inst)
	result.Inst = &record
	return result
}

// Returns the DecodingError kind name ("Unimplemented", "Illegal") of a decoding error, or the
// error message for any other error
func ErrorName(err error) string {
	if kind, ok := instructions.DecodingErrorOf(err); ok {
		return kind.Name()
	}

	return err.Error()
}
