package compressed

import "fmt"

// How a compressed encoding must be treated
type Policy uint

const (
	// The encoding maps to a standard instruction
	Policy_Legal Policy = iota
	// The encoding is reserved by the ISA and must not be executed
	Policy_Reserved
	// The encoding is a software HINT. HINTs are not implemented
	Policy_Hint
)

func (p Policy) String() string {
	switch p {
	case Policy_Legal:
		return "legal"
	case Policy_Reserved:
		return "reserved"
	case Policy_Hint:
		return "hint"
	default:
		return fmt.Sprintf("Policy(%d)", uint(p))
	}
}

// One case of the compressed encoding table
type Form struct {
	// Assembler name of the form
	Mnemonic string
	Quadrant uint16
	Funct3   uint16
	Policy   Policy
	// Human readable condition selecting this case within its (Quadrant, Funct3) group
	Condition string
	// Returns true if the halfword belongs to this case. Nil matches every halfword of the group.
	Match func(hw uint16) bool
	// Builds the equivalent standard instruction word. Only set for legal forms.
	Expand func(hw uint16) uint32
}

func (f *Form) String() string {
	if f.Condition == "" {
		return fmt.Sprintf("Q%d funct3=%03b %v (%v)", f.Quadrant, f.Funct3, f.Mnemonic, f.Policy)
	}

	return fmt.Sprintf("Q%d funct3=%03b %v [%v] (%v)", f.Quadrant, f.Funct3, f.Mnemonic, f.Condition, f.Policy)
}

func (f *Form) matches(hw uint16) bool {
	return f.Match == nil || f.Match(hw)
}

const (
	quadrants = 3
	groups    = 8
)

// Forms indexed by quadrant and funct3, in table order
var formsIndex [quadrants][groups][]*Form

func init() {
	for i := range Forms {
		form := &Forms[i]

		if form.Quadrant >= quadrants || form.Funct3 >= groups {
			panic(fmt.Sprintf("compressed form %v out of range", form))
		}
		if (form.Policy == Policy_Legal) != (form.Expand != nil) {
			panic(fmt.Sprintf("compressed form %v: only legal forms have an expansion", form))
		}

		formsIndex[form.Quadrant][form.Funct3] = append(formsIndex[form.Quadrant][form.Funct3], form)
	}
}

// Returns the table case a compressed halfword belongs to, or nil if the encoding has no
// mapping at all (quadrant 3 is the standard 32 bit encoding space)
func Classify(hw uint16) *Form {
	quadrant := Quadrant(hw)
	if quadrant >= quadrants {
		return nil
	}

	for _, form := range formsIndex[quadrant][Funct3(hw)] {
		if form.matches(hw) {
			return form
		}
	}

	return nil
}

// Reports whether the halfword belongs to a group the C extension assigns instructions to.
// Quadrant 3 and the quadrant 0 funct3=100 group have no mapping at all.
func HasMapping(hw uint16) bool {
	quadrant := Quadrant(hw)
	return quadrant < quadrants && !(quadrant == 0 && Funct3(hw) == 0b100)
}

// Returns the forms of a (quadrant, funct3) group, in matching order
func Group(quadrant uint16, funct3 uint16) []*Form {
	if quadrant >= quadrants || funct3 >= groups {
		return nil
	}

	return formsIndex[quadrant][funct3]
}

func rdIsZero(hw uint16) bool    { return Rd(hw) == 0 }
func rs2IsZero(hw uint16) bool   { return Rs2(hw) == 0 }
func immCIIsZero(hw uint16) bool { return ImmCI(hw) == 0 }
func shamtIsZero(hw uint16) bool { return ShamtCI(hw) == 0 }

func all(predicates ...func(uint16) bool) func(uint16) bool {
	return func(hw uint16) bool {
		for _, predicate := range predicates {
			if !predicate(hw) {
				return false
			}
		}

		return true
	}
}

func funct2Is(funct2 uint16) func(uint16) bool {
	return func(hw uint16) bool { return Funct2(hw) == funct2 }
}

func arithIs(bit12 uint16, funct2 uint16) func(uint16) bool {
	return func(hw uint16) bool {
		return Funct2(hw) == 0b11 && Bit12(hw) == bit12 && ArithFunct2(hw) == funct2
	}
}

func bit12Is(bit uint16) func(uint16) bool {
	return func(hw uint16) bool { return Bit12(hw) == bit }
}

func rdIs(register uint32) func(uint16) bool {
	return func(hw uint16) bool { return Rd(hw) == register }
}

// RV64C encoding table. Within a (Quadrant, Funct3) group cases are matched in order, so
// reserved and HINT carve-outs precede the general form they restrict.
var Forms = []Form{
	// Quadrant 0

	{Mnemonic: "C.ILLEGAL", Quadrant: 0, Funct3: 0b000, Policy: Policy_Reserved, Condition: "all zero halfword",
		Match: func(hw uint16) bool { return hw == 0 }},
	{Mnemonic: "C.ADDI4SPN", Quadrant: 0, Funct3: 0b000, Policy: Policy_Reserved, Condition: "nzuimm=0",
		Match: func(hw uint16) bool { return ImmCIW(hw) == 0 }},
	{Mnemonic: "C.ADDI4SPN", Quadrant: 0, Funct3: 0b000, Policy: Policy_Legal, Expand: expandAddi4spn},
	{Mnemonic: "C.FLD", Quadrant: 0, Funct3: 0b001, Policy: Policy_Legal, Expand: expandFld},
	{Mnemonic: "C.LW", Quadrant: 0, Funct3: 0b010, Policy: Policy_Legal, Expand: expandLw},
	{Mnemonic: "C.LD", Quadrant: 0, Funct3: 0b011, Policy: Policy_Legal, Expand: expandLd},
	{Mnemonic: "reserved", Quadrant: 0, Funct3: 0b100, Policy: Policy_Reserved},
	{Mnemonic: "C.FSD", Quadrant: 0, Funct3: 0b101, Policy: Policy_Legal, Expand: expandFsd},
	{Mnemonic: "C.SW", Quadrant: 0, Funct3: 0b110, Policy: Policy_Legal, Expand: expandSw},
	{Mnemonic: "C.SD", Quadrant: 0, Funct3: 0b111, Policy: Policy_Legal, Expand: expandSd},

	// Quadrant 1

	{Mnemonic: "C.NOP", Quadrant: 1, Funct3: 0b000, Policy: Policy_Legal, Condition: "rd=0, imm=0",
		Match: all(rdIsZero, immCIIsZero), Expand: expandAddi},
	{Mnemonic: "C.NOP", Quadrant: 1, Funct3: 0b000, Policy: Policy_Hint, Condition: "rd=0, imm!=0",
		Match: rdIsZero},
	{Mnemonic: "C.ADDI", Quadrant: 1, Funct3: 0b000, Policy: Policy_Hint, Condition: "nzimm=0",
		Match: immCIIsZero},
	{Mnemonic: "C.ADDI", Quadrant: 1, Funct3: 0b000, Policy: Policy_Legal, Expand: expandAddi},
	{Mnemonic: "C.ADDIW", Quadrant: 1, Funct3: 0b001, Policy: Policy_Reserved, Condition: "rd=0",
		Match: rdIsZero},
	{Mnemonic: "C.ADDIW", Quadrant: 1, Funct3: 0b001, Policy: Policy_Legal, Expand: expandAddiw},
	{Mnemonic: "C.LI", Quadrant: 1, Funct3: 0b010, Policy: Policy_Hint, Condition: "rd=0",
		Match: rdIsZero},
	{Mnemonic: "C.LI", Quadrant: 1, Funct3: 0b010, Policy: Policy_Legal, Expand: expandLi},
	{Mnemonic: "C.ADDI16SP", Quadrant: 1, Funct3: 0b011, Policy: Policy_Reserved, Condition: "rd=2, nzimm=0",
		Match: all(rdIs(SP), func(hw uint16) bool { return ImmCADDI16SP(hw) == 0 })},
	{Mnemonic: "C.ADDI16SP", Quadrant: 1, Funct3: 0b011, Policy: Policy_Legal, Condition: "rd=2",
		Match: rdIs(SP), Expand: expandAddi16sp},
	{Mnemonic: "C.LUI", Quadrant: 1, Funct3: 0b011, Policy: Policy_Reserved, Condition: "nzimm=0",
		Match: func(hw uint16) bool { return ImmCLUI(hw) == 0 }},
	{Mnemonic: "C.LUI", Quadrant: 1, Funct3: 0b011, Policy: Policy_Hint, Condition: "rd=0",
		Match: rdIsZero},
	{Mnemonic: "C.LUI", Quadrant: 1, Funct3: 0b011, Policy: Policy_Legal, Expand: expandLui},
	{Mnemonic: "C.SRLI", Quadrant: 1, Funct3: 0b100, Policy: Policy_Hint, Condition: "shamt=0",
		Match: all(funct2Is(0b00), shamtIsZero)},
	{Mnemonic: "C.SRLI", Quadrant: 1, Funct3: 0b100, Policy: Policy_Legal,
		Match: funct2Is(0b00), Expand: expandSrli},
	{Mnemonic: "C.SRAI", Quadrant: 1, Funct3: 0b100, Policy: Policy_Hint, Condition: "shamt=0",
		Match: all(funct2Is(0b01), shamtIsZero)},
	{Mnemonic: "C.SRAI", Quadrant: 1, Funct3: 0b100, Policy: Policy_Legal,
		Match: funct2Is(0b01), Expand: expandSrai},
	{Mnemonic: "C.ANDI", Quadrant: 1, Funct3: 0b100, Policy: Policy_Legal,
		Match: funct2Is(0b10), Expand: expandAndi},
	{Mnemonic: "C.SUB", Quadrant: 1, Funct3: 0b100, Policy: Policy_Legal,
		Match: arithIs(0, 0b00), Expand: expandArith(0b000, 0b0100000, false)},
	{Mnemonic: "C.XOR", Quadrant: 1, Funct3: 0b100, Policy: Policy_Legal,
		Match: arithIs(0, 0b01), Expand: expandArith(0b100, 0b0000000, false)},
	{Mnemonic: "C.OR", Quadrant: 1, Funct3: 0b100, Policy: Policy_Legal,
		Match: arithIs(0, 0b10), Expand: expandArith(0b110, 0b0000000, false)},
	{Mnemonic: "C.AND", Quadrant: 1, Funct3: 0b100, Policy: Policy_Legal,
		Match: arithIs(0, 0b11), Expand: expandArith(0b111, 0b0000000, false)},
	{Mnemonic: "C.SUBW", Quadrant: 1, Funct3: 0b100, Policy: Policy_Legal,
		Match: arithIs(1, 0b00), Expand: expandArith(0b000, 0b0100000, true)},
	{Mnemonic: "C.ADDW", Quadrant: 1, Funct3: 0b100, Policy: Policy_Legal,
		Match: arithIs(1, 0b01), Expand: expandArith(0b000, 0b0000000, true)},
	{Mnemonic: "reserved", Quadrant: 1, Funct3: 0b100, Policy: Policy_Reserved, Condition: "bit12=1, funct2=10|11",
		Match: all(funct2Is(0b11), bit12Is(1))},
	{Mnemonic: "C.J", Quadrant: 1, Funct3: 0b101, Policy: Policy_Legal, Expand: expandJ},
	{Mnemonic: "C.BEQZ", Quadrant: 1, Funct3: 0b110, Policy: Policy_Legal, Expand: expandBranch(0b000)},
	{Mnemonic: "C.BNEZ", Quadrant: 1, Funct3: 0b111, Policy: Policy_Legal, Expand: expandBranch(0b001)},

	// Quadrant 2

	{Mnemonic: "C.SLLI", Quadrant: 2, Funct3: 0b000, Policy: Policy_Hint, Condition: "rd=0",
		Match: rdIsZero},
	{Mnemonic: "C.SLLI", Quadrant: 2, Funct3: 0b000, Policy: Policy_Hint, Condition: "shamt=0",
		Match: shamtIsZero},
	{Mnemonic: "C.SLLI", Quadrant: 2, Funct3: 0b000, Policy: Policy_Legal, Expand: expandSlli},
	{Mnemonic: "C.FLDSP", Quadrant: 2, Funct3: 0b001, Policy: Policy_Legal, Expand: expandFldsp},
	{Mnemonic: "C.LWSP", Quadrant: 2, Funct3: 0b010, Policy: Policy_Reserved, Condition: "rd=0",
		Match: rdIsZero},
	{Mnemonic: "C.LWSP", Quadrant: 2, Funct3: 0b010, Policy: Policy_Legal, Expand: expandLwsp},
	{Mnemonic: "C.LDSP", Quadrant: 2, Funct3: 0b011, Policy: Policy_Reserved, Condition: "rd=0",
		Match: rdIsZero},
	{Mnemonic: "C.LDSP", Quadrant: 2, Funct3: 0b011, Policy: Policy_Legal, Expand: expandLdsp},
	{Mnemonic: "C.JR", Quadrant: 2, Funct3: 0b100, Policy: Policy_Reserved, Condition: "bit12=0, rs1=0, rs2=0",
		Match: all(bit12Is(0), rs2IsZero, rdIsZero)},
	{Mnemonic: "C.JR", Quadrant: 2, Funct3: 0b100, Policy: Policy_Legal, Condition: "bit12=0, rs2=0",
		Match: all(bit12Is(0), rs2IsZero), Expand: expandJr},
	{Mnemonic: "C.MV", Quadrant: 2, Funct3: 0b100, Policy: Policy_Hint, Condition: "bit12=0, rd=0",
		Match: all(bit12Is(0), rdIsZero)},
	{Mnemonic: "C.MV", Quadrant: 2, Funct3: 0b100, Policy: Policy_Legal, Condition: "bit12=0",
		Match: bit12Is(0), Expand: expandMv},
	{Mnemonic: "C.EBREAK", Quadrant: 2, Funct3: 0b100, Policy: Policy_Legal, Condition: "bit12=1, rs1=0, rs2=0",
		Match: all(bit12Is(1), rs2IsZero, rdIsZero), Expand: expandEbreak},
	{Mnemonic: "C.JALR", Quadrant: 2, Funct3: 0b100, Policy: Policy_Legal, Condition: "bit12=1, rs2=0",
		Match: all(bit12Is(1), rs2IsZero), Expand: expandJalr},
	{Mnemonic: "C.ADD", Quadrant: 2, Funct3: 0b100, Policy: Policy_Hint, Condition: "bit12=1, rd=0",
		Match: all(bit12Is(1), rdIsZero)},
	{Mnemonic: "C.ADD", Quadrant: 2, Funct3: 0b100, Policy: Policy_Legal, Condition: "bit12=1",
		Match: bit12Is(1), Expand: expandAdd},
	{Mnemonic: "C.FSDSP", Quadrant: 2, Funct3: 0b101, Policy: Policy_Legal, Expand: expandFsdsp},
	{Mnemonic: "C.SWSP", Quadrant: 2, Funct3: 0b110, Policy: Policy_Legal, Expand: expandSwsp},
	{Mnemonic: "C.SDSP", Quadrant: 2, Funct3: 0b111, Policy: Policy_Legal, Expand: expandSdsp},
}
