package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsciiFrame(t *testing.T) {
	cases := []struct {
		name     string
		fields   []AsciiFrameField
		width    int
		layout   AsciiFrameUnitLayout
		leftpad  int
		expected string
	}{
		{
			name:     "no fields",
			fields:   []AsciiFrameField{},
			width:    16,
			layout:   AsciiFrameUnitLayout_RightToLeft,
			leftpad:  0,
			expected: ""+
				`15            0
+-------------+
|  (unused)   |
+-------------+
 <- 16 bits -> 
`,
		},
		{
			name:     "compressed wide immediate",
			fields:   []AsciiFrameField{{Name: "op", Begin: 0, Width: 2}, {Name: "rd'", Begin: 2, Width: 3}, {Name: "imm", Begin: 5, Width: 8}, {Name: "funct3", Begin: 13, Width: 3}},
			width:    16,
			layout:   AsciiFrameUnitLayout_RightToLeft,
			leftpad:  0,
			expected: ""+
				`15           12           4            1            0
+------------+------------+------------+------------+
|   funct3   |    imm     |    rd'     |     op     |
+------------+------------+------------+------------+
 <- 3 bits -> <- 8 bits -> <- 3 bits -> <- 2 bits -> 
`,
		},
		{
			name:     "immediate left to right",
			fields:   []AsciiFrameField{{Name: "opcode", Begin: 0, Width: 7}, {Name: "rd", Begin: 7, Width: 5}, {Name: "funct3", Begin: 12, Width: 3}, {Name: "rs1", Begin: 15, Width: 5}, {Name: "imm[11:0]", Begin: 20, Width: 12}},
			width:    32,
			layout:   AsciiFrameUnitLayout_LeftToRight,
			leftpad:  0,
			expected: ""+
				`0            7            12           15           20            31
+------------+------------+------------+------------+-------------+
|   opcode   |     rd     |   funct3   |    rs1     |  imm[11:0]  |
+------------+------------+------------+------------+-------------+
 <- 7 bits -> <- 5 bits -> <- 3 bits -> <- 5 bits -> <- 12 bits -> 
`,
		},
		{
			name:     "unused bits between fields",
			fields:   []AsciiFrameField{{Name: "opcode", Begin: 0, Width: 7}, {Name: "csr", Begin: 20, Width: 12}},
			width:    32,
			layout:   AsciiFrameUnitLayout_RightToLeft,
			leftpad:  0,
			expected: ""+
				`31            19            6            0
+-------------+-------------+------------+
|     csr     |  (unused)   |   opcode   |
+-------------+-------------+------------+
 <- 12 bits -> <- 13 bits -> <- 7 bits -> 
`,
		},
		{
			name:     "left padding",
			fields:   []AsciiFrameField{{Name: "op", Begin: 0, Width: 2}, {Name: "jump target", Begin: 2, Width: 11}, {Name: "funct3", Begin: 13, Width: 3}},
			width:    16,
			layout:   AsciiFrameUnitLayout_RightToLeft,
			leftpad:  2,
			expected: ""+
				`  15           12            1            0
  +------------+-------------+------------+
  |   funct3   | jump target |     op     |
  +------------+-------------+------------+
   <- 3 bits -> <- 11 bits -> <- 2 bits -> 
`,
		},
		{
			name:     "name wider than its field",
			fields:   []AsciiFrameField{{Name: "imm[20|10:1|11|19:12]", Begin: 12, Width: 20}},
			width:    32,
			layout:   AsciiFrameUnitLayout_RightToLeft,
			leftpad:  0,
			expected: ""+
				`31                      11            0
+-----------------------+-------------+
| imm[20|10:1|11|19:12] |  (unused)   |
+-----------------------+-------------+
 <------ 20 bits ------> <- 12 bits -> 
`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := AsciiFrame(tc.fields, tc.width, "bits", tc.layout, tc.leftpad)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestAsciiFrameFieldUnits(t *testing.T) {
	rd := AsciiFrameField{Name: "rd", Begin: 7, Width: 5}

	assert.Equal(t, 11, rd.TopUnit())
	assert.Equal(t, 12, rd.PastTopUnit())
}

func TestAsciiFrameErrors(t *testing.T) {
	t.Run("overlapping fields", func(t *testing.T) {
		fields := []AsciiFrameField{
			{Name: "rs1", Begin: 15, Width: 5},
			{Name: "imm[11:0]", Begin: 19, Width: 12},
		}

		_, err := AsciiFrame(fields, 32, "bits", AsciiFrameUnitLayout_RightToLeft, 0)
		assert.ErrorIs(t, err, ErrOverlappingFields)
	})

	t.Run("unsorted fields", func(t *testing.T) {
		fields := []AsciiFrameField{
			{Name: "rd", Begin: 7, Width: 5},
			{Name: "opcode", Begin: 0, Width: 7},
		}

		_, err := AsciiFrame(fields, 32, "bits", AsciiFrameUnitLayout_RightToLeft, 0)
		assert.ErrorIs(t, err, ErrOverlappingFields)
	})

	t.Run("field out of frame", func(t *testing.T) {
		fields := []AsciiFrameField{
			{Name: "funct3", Begin: 13, Width: 6},
		}

		_, err := AsciiFrame(fields, 16, "bits", AsciiFrameUnitLayout_RightToLeft, 0)
		assert.ErrorIs(t, err, ErrFieldOutOfFrame)
	})
}
