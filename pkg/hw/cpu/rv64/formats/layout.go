package formats

import (
	"fmt"
	"strings"

	"github.com/Manu343726/rvdecode/pkg/utils"
)

// Bit layout of an instruction encoding format, fields sorted from the least significant bit
type Layout struct {
	Name   string
	Width  int
	Fields []utils.AsciiFrameField
}

// Draws the layout as an ascii diagram, most significant bit first
func (l *Layout) Draw(leftpad int) (string, error) {
	return utils.AsciiFrame(l.Fields, l.Width, "bits", utils.AsciiFrameUnitLayout_RightToLeft, leftpad)
}

func (l *Layout) String() string {
	return fmt.Sprintf("%v (%v bits)", l.Name, l.Width)
}

func field(name string, begin int, width int) utils.AsciiFrameField {
	return utils.AsciiFrameField{Name: name, Begin: begin, Width: width}
}

var (
	opcodeField = field("opcode", 0, 7)
	rdField     = field("rd", 7, 5)
	funct3Field = field("funct3", 12, 3)
	rs1Field    = field("rs1", 15, 5)
	rs2Field    = field("rs2", 20, 5)
)

// Layouts of the standard 32 bit formats
var Layouts = []Layout{
	{Name: "R", Width: 32, Fields: []utils.AsciiFrameField{opcodeField, rdField, funct3Field, rs1Field, rs2Field, field("funct7", 25, 7)}},
	{Name: "I", Width: 32, Fields: []utils.AsciiFrameField{opcodeField, rdField, funct3Field, rs1Field, field("imm[11:0]", 20, 12)}},
	{Name: "S", Width: 32, Fields: []utils.AsciiFrameField{opcodeField, field("imm[4:0]", 7, 5), funct3Field, rs1Field, rs2Field, field("imm[11:5]", 25, 7)}},
	{Name: "B", Width: 32, Fields: []utils.AsciiFrameField{opcodeField, field("imm[4:1|11]", 7, 5), funct3Field, rs1Field, rs2Field, field("imm[12|10:5]", 25, 7)}},
	{Name: "U", Width: 32, Fields: []utils.AsciiFrameField{opcodeField, rdField, field("imm[31:12]", 12, 20)}},
	{Name: "J", Width: 32, Fields: []utils.AsciiFrameField{opcodeField, rdField, field("imm[20|10:1|11|19:12]", 12, 20)}},
	{Name: "Shift", Width: 32, Fields: []utils.AsciiFrameField{opcodeField, rdField, funct3Field, rs1Field, field("shamt", 20, 6), field("funct6", 26, 6)}},
	{Name: "ShiftW", Width: 32, Fields: []utils.AsciiFrameField{opcodeField, rdField, funct3Field, rs1Field, field("shamt", 20, 5), field("funct7", 25, 7)}},
	{Name: "Fence", Width: 32, Fields: []utils.AsciiFrameField{opcodeField, rdField, funct3Field, rs1Field, field("succ", 20, 4), field("pred", 24, 4), field("fm", 28, 4)}},
	{Name: "Csr", Width: 32, Fields: []utils.AsciiFrameField{opcodeField, rdField, funct3Field, rs1Field, field("csr", 20, 12)}},
	{Name: "CsrI", Width: 32, Fields: []utils.AsciiFrameField{opcodeField, rdField, funct3Field, field("uimm", 15, 5), field("csr", 20, 12)}},
}

// Finds a layout by name (case insensitive) in a set of layouts
func FindLayout(layouts []Layout, name string) (*Layout, bool) {
	for i := range layouts {
		if strings.EqualFold(layouts[i].Name, name) {
			return &layouts[i], true
		}
	}

	return nil, false
}
