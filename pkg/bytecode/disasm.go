package bytecode

import (
	"fmt"
	"io"
)

// Disassembler renders chunks as human-readable mnemonics. It is a
// pure consumer of compiled code, used for diagnostics and tests only;
// the VM never goes through it.
type Disassembler struct {
	w io.Writer
}

// NewDisassembler constructs a disassembler that writes to w
func NewDisassembler(w io.Writer) *Disassembler {
	return &Disassembler{w: w}
}

// Chunk dumps every instruction in the chunk under a banner
func (d *Disassembler) Chunk(c *Chunk, name string) {
	fmt.Fprintf(d.w, "== %s ==\n", name)

	for offset := 0; offset < len(c.Code); {
		offset = d.Instruction(c, offset)
	}
}

// Instruction writes a one-line rendering of the instruction at offset,
// resolving constant operands and jump targets, and returns the offset
// of the next instruction.
func (d *Disassembler) Instruction(c *Chunk, offset int) int {
	fmt.Fprintf(d.w, "%04d ", offset)
	if offset > 0 && c.Lines[offset] == c.Lines[offset-1] {
		fmt.Fprintf(d.w, "   | ")
	} else {
		fmt.Fprintf(d.w, "%4d ", c.Lines[offset])
	}

	switch op := c.Code[offset]; op {
	case OpNil, OpTrue, OpFalse, OpPop, OpEqual, OpGreater, OpLess,
		OpAdd, OpSubtract, OpMultiply, OpDivide, OpNot, OpNegate,
		OpPrint, OpReturn:
		return d.simpleInstruction(c, offset)
	case OpConstant, OpGetGlobal, OpDefineGlobal, OpSetGlobal:
		return d.constantInstruction(c, offset)
	case OpGetLocal, OpSetLocal:
		return d.byteInstruction(c, offset)
	case OpJump, OpJumpIfFalse:
		return d.jumpInstruction(c, offset, 1)
	case OpLoop:
		return d.jumpInstruction(c, offset, -1)
	default:
		fmt.Fprintf(d.w, "unknown opcode %d\n", op)
		return offset + 1
	}
}

func (d *Disassembler) simpleInstruction(c *Chunk, offset int) int {
	fmt.Fprintf(d.w, "%s\n", OpName(c.Code[offset]))
	return offset + 1
}

func (d *Disassembler) constantInstruction(c *Chunk, offset int) int {
	constant := c.Code[offset+1]
	fmt.Fprintf(d.w, "%-16s %4d '%s'\n", OpName(c.Code[offset]), constant, c.Consts[constant])
	return offset + 2
}

func (d *Disassembler) byteInstruction(c *Chunk, offset int) int {
	slot := c.Code[offset+1]
	fmt.Fprintf(d.w, "%-16s %4d\n", OpName(c.Code[offset]), slot)
	return offset + 2
}

func (d *Disassembler) jumpInstruction(c *Chunk, offset, sign int) int {
	jump := int(c.Code[offset+1])<<8 | int(c.Code[offset+2])
	fmt.Fprintf(d.w, "%-16s %4d -> %d\n", OpName(c.Code[offset]), offset, offset+3+sign*jump)
	return offset + 3
}
