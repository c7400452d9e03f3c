// Package isa documents the implemented subset of the instruction set: opcodes, encoding layouts
// and the compressed encoding table.
package isa

import (
	"fmt"
	"strings"

	"github.com/Manu343726/rvdecode/pkg/hw/cpu/rv64/compressed"
	"github.com/Manu343726/rvdecode/pkg/hw/cpu/rv64/formats"
	"github.com/Manu343726/rvdecode/pkg/hw/cpu/rv64/instructions"
	"github.com/Manu343726/rvdecode/pkg/utils"
)

// Contains implementation information about the decoder
type Descriptor struct {
	// Information about instruction opcodes
	OpCodes *instructions.OpCodesDescriptor
	// Standard 32 bit encoding formats
	Layouts []formats.Layout
	// Compressed 16 bit encoding formats
	CompressedLayouts []formats.Layout
	// Compressed encoding table
	Forms []compressed.Form
}

// Default columns of the compressed forms table
var DefaultFormColumns = []string{"Quadrant", "Funct3", "Mnemonic", "Policy", "Condition"}

func writeLayouts(builder *strings.Builder, title string, layouts []formats.Layout, leftpad int) error {
	leftpadStr := strings.Repeat(" ", leftpad)

	builder.WriteString(leftpadStr)
	builder.WriteString(title)
	builder.WriteString(":\n\n")

	for i := range layouts {
		diagram, err := layouts[i].Draw(leftpad + 2)
		if err != nil {
			return fmt.Errorf("drawing %v layout: %w", layouts[i].Name, err)
		}

		builder.WriteString(fmt.Sprintf("%v  %v:\n\n", leftpadStr, &layouts[i]))
		builder.WriteString(diagram)
		builder.WriteString("\n\n")
	}

	return nil
}

// Documents the opcodes implemented
func (d *Descriptor) OpCodesDocumentation(leftpad int) string {
	leftpadStr := strings.Repeat(" ", leftpad)

	var builder strings.Builder

	builder.WriteString(leftpadStr)
	builder.WriteString(fmt.Sprintf("total supported opcodes: %v\n\n", d.OpCodes.TotalOpCodes()))

	for _, opCode := range d.OpCodes.AllOpCodes() {
		builder.WriteString(fmt.Sprintf("%v - %v\n", leftpadStr, opCode))
	}

	return builder.String()
}

// Documents the standard encoding formats
func (d *Descriptor) LayoutsDocumentation(leftpad int) (string, error) {
	var builder strings.Builder

	if err := writeLayouts(&builder, "Standard formats", d.Layouts, leftpad); err != nil {
		return "", err
	}

	return builder.String(), nil
}

// Documents the compressed encoding formats
func (d *Descriptor) CompressedLayoutsDocumentation(leftpad int) (string, error) {
	var builder strings.Builder

	if err := writeLayouts(&builder, "Compressed formats", d.CompressedLayouts, leftpad); err != nil {
		return "", err
	}

	return builder.String(), nil
}

// Renders the compressed encoding table as tab separated rows. Columns name fields or
// parameterless methods of compressed.Form.
func (d *Descriptor) FormsTable(columns []string) (string, error) {
	if len(columns) == 0 {
		columns = DefaultFormColumns
	}

	forms := make([]any, len(d.Forms))
	for i := range d.Forms {
		forms[i] = &d.Forms[i]
	}

	cells := make([][]any, len(columns))
	for i, column := range columns {
		values, err := utils.MapMember(column, forms)
		if err != nil {
			return "", fmt.Errorf("compressed forms table: %w", err)
		}

		cells[i] = values
	}

	var builder strings.Builder
	builder.WriteString(strings.Join(columns, "\t"))
	builder.WriteString("\n")

	for row := range forms {
		builder.WriteString(utils.FormatSlice(utils.Map(utils.Indices(len(columns)), func(column int) any { return cells[column][row] }), "\t"))
		builder.WriteString("\n")
	}

	return builder.String(), nil
}

// Dumps the whole description as one big multiline string
func (d *Descriptor) Documentation(leftpad int) (string, error) {
	leftpadStr := strings.Repeat(" ", leftpad)

	var builder strings.Builder

	builder.WriteString(leftpadStr)
	builder.WriteString("Opcodes:\n\n")
	builder.WriteString(d.OpCodesDocumentation(leftpad))
	builder.WriteString("\n")

	layouts, err := d.LayoutsDocumentation(leftpad)
	if err != nil {
		return "", err
	}
	builder.WriteString(layouts)

	compressedLayouts, err := d.CompressedLayoutsDocumentation(leftpad)
	if err != nil {
		return "", err
	}
	builder.WriteString(compressedLayouts)

	forms, err := d.FormsTable(nil)
	if err != nil {
		return "", err
	}
	builder.WriteString(leftpadStr)
	builder.WriteString("Compressed encoding table:\n\n")
	builder.WriteString(forms)

	return builder.String(), nil
}

var RV64 Descriptor = Descriptor{
	OpCodes:           &instructions.Opcodes,
	Layouts:           formats.Layouts,
	CompressedLayouts: compressed.Layouts,
	Forms:             compressed.Forms,
}
