package bytecode

import "math"

// MaxConstants is the hard limit on constant pool entries per chunk:
// constant operands are a single byte.
const MaxConstants = math.MaxUint8 + 1

// Chunk is the compiled-program artifact: an append-only bytecode
// buffer, its constant pool, and a parallel line table carrying one
// source line per bytecode byte for diagnostics.
type Chunk struct {
	Code   []byte
	Consts []Value
	Lines  []int
}

// New creates an empty chunk
func New() *Chunk {
	return &Chunk{
		Code:   make([]byte, 0),
		Consts: make([]Value, 0),
		Lines:  make([]int, 0),
	}
}

// Write appends one byte and records its source line
func (c *Chunk) Write(b byte, line int) {
	c.Code = append(c.Code, b)
	c.Lines = append(c.Lines, line)
}

// AddConstant appends a value to the constant pool and returns its
// index. The caller is responsible for checking the index fits in an
// operand byte.
func (c *Chunk) AddConstant(v Value) int {
	c.Consts = append(c.Consts, v)
	return len(c.Consts) - 1
}

// PatchUint16 overwrites the two bytes at offset with a big-endian
// displacement. This is the sole mutation of previously written code,
// used exclusively for jump backpatching.
func (c *Chunk) PatchUint16(offset int, v uint16) {
	c.Code[offset] = byte((v >> 8) & 0xFF)
	c.Code[offset+1] = byte(v & 0xFF)
}

// Size reports the current byte length of the code buffer
func (c *Chunk) Size() int {
	return len(c.Code)
}
