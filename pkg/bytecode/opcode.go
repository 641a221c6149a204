package bytecode

// Opcodes. Every instruction is one opcode byte followed by zero, one
// or two operand bytes; jump and loop displacements are unsigned 16-bit
// big-endian.
const (
	OpConstant     byte = iota // push consts[next byte]
	OpNil                      // push nil
	OpTrue                     // push true
	OpFalse                    // push false
	OpPop                      // discard top of stack
	OpGetLocal                 // push stack slot = next byte
	OpSetLocal                 // overwrite stack slot = next byte with top (not popped)
	OpGetGlobal                // push globals[consts[next byte]]
	OpDefineGlobal             // bind consts[next byte] to popped value
	OpSetGlobal                // overwrite existing global with top (not popped)
	OpEqual                    // pop two, push equality
	OpGreater                  // pop two numbers, push comparison
	OpLess                     // pop two numbers, push comparison
	OpAdd                      // pop two numbers or two strings, push sum/concat
	OpSubtract                 // pop two numbers, push difference
	OpMultiply                 // pop two numbers, push product
	OpDivide                   // pop two numbers, push quotient
	OpNot                      // push logical negation of popped value
	OpNegate                   // numeric negation of top of stack
	OpPrint                    // pop and print
	OpJump                     // ip += next two bytes
	OpJumpIfFalse              // ip += next two bytes when top (peeked) is falsey
	OpLoop                     // ip -= next two bytes
	OpReturn                   // terminate the run
)

var opNames = [...]string{
	OpConstant:     "OP_CONSTANT",
	OpNil:          "OP_NIL",
	OpTrue:         "OP_TRUE",
	OpFalse:        "OP_FALSE",
	OpPop:          "OP_POP",
	OpGetLocal:     "OP_GET_LOCAL",
	OpSetLocal:     "OP_SET_LOCAL",
	OpGetGlobal:    "OP_GET_GLOBAL",
	OpDefineGlobal: "OP_DEFINE_GLOBAL",
	OpSetGlobal:    "OP_SET_GLOBAL",
	OpEqual:        "OP_EQUAL",
	OpGreater:      "OP_GREATER",
	OpLess:         "OP_LESS",
	OpAdd:          "OP_ADD",
	OpSubtract:     "OP_SUBTRACT",
	OpMultiply:     "OP_MULTIPLY",
	OpDivide:       "OP_DIVIDE",
	OpNot:          "OP_NOT",
	OpNegate:       "OP_NEGATE",
	OpPrint:        "OP_PRINT",
	OpJump:         "OP_JUMP",
	OpJumpIfFalse:  "OP_JUMP_IF_FALSE",
	OpLoop:         "OP_LOOP",
	OpReturn:       "OP_RETURN",
}

// OpName returns the mnemonic for an opcode byte
func OpName(op byte) string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "OP_UNKNOWN"
}
