package transcript

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/Manu343726/rvdecode/pkg/hw/cpu/rv64/decoder"
	"github.com/Manu343726/rvdecode/pkg/hw/cpu/rv64/instructions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDecodeWord(t *testing.T) {
	t.Run("standard", func(t *testing.T) {
		result := DecodeWord(0xbff00513)
		assert.Equal(t, 4, result.Length)
		assert.Nil(t, result.DecodeError)
		require.NotNil(t, result.Inst)
		assert.Equal(t, "ADDI", result.Inst.Name)
	})

	t.Run("compressed", func(t *testing.T) {
		result := DecodeWord(0x6188)
		assert.Equal(t, 2, result.Length)
		require.NotNil(t, result.Inst)
		assert.Equal(t, "LD", result.Inst.Name)
		assert.Equal(t, []Register{Int(11)}, result.Inst.Read)
		assert.Equal(t, []Register{Int(10)}, result.Inst.Write)
	})

	t.Run("all zero halfword", func(t *testing.T) {
		result := DecodeWord(0)
		assert.Equal(t, 2, result.Length)
		require.NotNil(t, result.Inst)
		assert.Equal(t, "ILLEGAL", result.Inst.Name)
	})

	t.Run("unimplemented", func(t *testing.T) {
		result := DecodeWord(0x00053507) // fld fa0, 0(a0)
		assert.Nil(t, result.Inst)
		require.NotNil(t, result.DecodeError)
		assert.Equal(t, "Unimplemented", *result.DecodeError)
	})

	t.Run("reserved compressed", func(t *testing.T) {
		result := DecodeWord(0x0004)
		assert.Nil(t, result.Inst)
		require.NotNil(t, result.DecodeError)
		assert.Equal(t, "Illegal", *result.DecodeError)
	})
}

func TestDecodeWithStrategy(t *testing.T) {
	result := DecodeWith(decoder.New(decoder.Strategy_QuadrantDecode), 0x8082)
	require.NotNil(t, result.DecodeError)
	assert.Equal(t, "Unimplemented", *result.DecodeError)

	result = DecodeWith(decoder.New(decoder.Strategy_ExpandThenDecode), 0x8082)
	require.NotNil(t, result.Inst)
	assert.Equal(t, "JALR", result.Inst.Name)
}

func TestErrorName(t *testing.T) {
	assert.Equal(t, "Illegal", ErrorName(instructions.ErrIllegal))
	assert.Equal(t, "something else", ErrorName(errors.New("something else")))
}

func TestResultSerialization(t *testing.T) {
	result := DecodeWord(0xbff00513)

	t.Run("yaml", func(t *testing.T) {
		out, err := yaml.Marshal(result)
		require.NoError(t, err)

		assert.YAMLEq(t, `
word: 3220178195
length: 4
inst:
  name: ADDI
  imm: -1025
  read_reg:
    - class: int
      index: 0
  write_reg:
    - class: int
      index: 10
`, string(out))
	})

	t.Run("json", func(t *testing.T) {
		out, err := json.Marshal(result)
		require.NoError(t, err)

		assert.JSONEq(t, `{
			"word": 3220178195,
			"length": 4,
			"inst": {
				"name": "ADDI",
				"imm": -1025,
				"read_reg": [{"class": "int", "index": 0}],
				"write_reg": [{"class": "int", "index": 10}]
			}
		}`, string(out))
	})

	t.Run("error", func(t *testing.T) {
		out, err := json.Marshal(DecodeWord(0x0004))
		require.NoError(t, err)
		assert.JSONEq(t, `{"word": 4, "length": 2, "decode_error": "Illegal"}`, string(out))
	})
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "0xbff00513: ADDI imm=-1025 read=[(int, 0)] write=[(int, 10)]", DecodeWord(0xbff00513).String())
	assert.Equal(t, "0x00000004: error: Illegal", DecodeWord(0x0004).String())
}
