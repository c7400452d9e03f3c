package compressed

import (
	"testing"

	"github.com/Manu343726/rvdecode/pkg/hw/cpu/rv64/formats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutsCoverTheHalfword(t *testing.T) {
	for _, layout := range Layouts {
		t.Run(layout.Name, func(t *testing.T) {
			next := 0
			for _, field := range layout.Fields {
				assert.Equal(t, next, field.Begin, "field %v", field.Name)
				next = field.PastTopUnit()
			}
			assert.Equal(t, 16, next)

			_, err := layout.Draw(2)
			assert.NoError(t, err)
		})
	}
}

func TestCJLayout(t *testing.T) {
	layout, ok := formats.FindLayout(Layouts, "cj")
	require.True(t, ok)

	diagram, err := layout.Draw(0)
	require.NoError(t, err)
	assert.Contains(t, diagram, "|   funct3   |")
	assert.Contains(t, diagram, " jump target ")
	assert.Contains(t, diagram, "<- 11 bits ->")
}
