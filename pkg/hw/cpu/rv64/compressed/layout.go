package compressed

import (
	"github.com/Manu343726/rvdecode/pkg/hw/cpu/rv64/formats"
	"github.com/Manu343726/rvdecode/pkg/utils"
)

func field(name string, begin int, width int) utils.AsciiFrameField {
	return utils.AsciiFrameField{Name: name, Begin: begin, Width: width}
}

var (
	opField     = field("op", 0, 2)
	funct3Field = field("funct3", 13, 3)
)

// Layouts of the 16 bit compressed formats
var Layouts = []formats.Layout{
	{Name: "CR", Width: 16, Fields: []utils.AsciiFrameField{opField, field("rs2", 2, 5), field("rd/rs1", 7, 5), field("funct4", 12, 4)}},
	{Name: "CI", Width: 16, Fields: []utils.AsciiFrameField{opField, field("imm", 2, 5), field("rd/rs1", 7, 5), field("imm", 12, 1), funct3Field}},
	{Name: "CSS", Width: 16, Fields: []utils.AsciiFrameField{opField, field("rs2", 2, 5), field("imm", 7, 6), funct3Field}},
	{Name: "CIW", Width: 16, Fields: []utils.AsciiFrameField{opField, field("rd'", 2, 3), field("imm", 5, 8), funct3Field}},
	{Name: "CL", Width: 16, Fields: []utils.AsciiFrameField{opField, field("rd'", 2, 3), field("imm", 5, 2), field("rs1'", 7, 3), field("imm", 10, 3), funct3Field}},
	{Name: "CS", Width: 16, Fields: []utils.AsciiFrameField{opField, field("rs2'", 2, 3), field("imm", 5, 2), field("rs1'", 7, 3), field("imm", 10, 3), funct3Field}},
	{Name: "CA", Width: 16, Fields: []utils.AsciiFrameField{opField, field("rs2'", 2, 3), field("funct2", 5, 2), field("rd'/rs1'", 7, 3), field("funct6", 10, 6)}},
	{Name: "CB", Width: 16, Fields: []utils.AsciiFrameField{opField, field("offset", 2, 5), field("rs1'", 7, 3), field("offset", 10, 3), funct3Field}},
	{Name: "CJ", Width: 16, Fields: []utils.AsciiFrameField{opField, field("jump target", 2, 11), funct3Field}},
}
