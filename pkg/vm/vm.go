package vm

import (
	"errors"
	"fmt"
	"io"
	"os"

	"glox/pkg/bytecode"
)

// stackMax is the fixed operand stack capacity. Slot operands are a
// single byte, so no valid chunk can address past it.
const stackMax = 256

// ErrRuntime is the failure status of a run. Concrete diagnostics wrap
// it; errors.Is picks it out at the entry boundary.
var ErrRuntime = errors.New("runtime error")

type Option func(*VM)

// WithOutput sets the writer print statements go to (default os.Stdout)
func WithOutput(w io.Writer) Option {
	return func(vm *VM) { vm.out = w }
}

// VM executes one chunk at a time against a fixed-capacity operand
// stack and a process-wide globals table. Instances are fully
// independent and share nothing.
type VM struct {
	chunk *bytecode.Chunk
	ip    int

	stack [stackMax]bytecode.Value
	top   int

	globals map[string]bytecode.Value

	out io.Writer
}

// New creates a VM with an empty globals table
func New(opts ...Option) *VM {
	vm := &VM{
		globals: make(map[string]bytecode.Value),
		out:     os.Stdout,
	}
	for _, o := range opts {
		o(vm)
	}
	return vm
}

// Interpret runs a compiled chunk to its Return instruction. A nil
// return is the Ok status; a runtime fault halts execution immediately
// and returns an error wrapping ErrRuntime. Side effects performed
// before the fault (prints, global mutations) are not rolled back.
func (vm *VM) Interpret(chunk *bytecode.Chunk) error {
	vm.chunk = chunk
	vm.ip = 0
	vm.top = 0
	return vm.run()
}

func (vm *VM) run() error {
	for {
		switch instruction := vm.readByte(); instruction {
		case bytecode.OpConstant:
			vm.push(vm.readConstant())
		case bytecode.OpNil:
			vm.push(bytecode.Nil())
		case bytecode.OpTrue:
			vm.push(bytecode.Boolean(true))
		case bytecode.OpFalse:
			vm.push(bytecode.Boolean(false))
		case bytecode.OpPop:
			vm.pop()
		case bytecode.OpGetLocal:
			slot := int(vm.readByte())
			vm.push(vm.stack[slot])
		case bytecode.OpSetLocal:
			slot := int(vm.readByte())
			vm.stack[slot] = vm.peek(0)
		case bytecode.OpGetGlobal:
			name := vm.readString()
			value, ok := vm.globals[name]
			if !ok {
				return vm.runtimeError("Undefined variable '%s'.", name)
			}
			vm.push(value)
		case bytecode.OpDefineGlobal:
			name := vm.readString()
			vm.globals[name] = vm.pop()
		case bytecode.OpSetGlobal:
			name := vm.readString()
			if _, ok := vm.globals[name]; !ok {
				return vm.runtimeError("Undefined variable '%s'.", name)
			}
			vm.globals[name] = vm.peek(0)
		case bytecode.OpEqual:
			rhs := vm.pop()
			lhs := vm.pop()
			vm.push(bytecode.Boolean(lhs.Equal(rhs)))
		case bytecode.OpAdd:
			if vm.peek(0).Kind == bytecode.KindString && vm.peek(1).Kind == bytecode.KindString {
				rhs := vm.pop()
				lhs := vm.pop()
				vm.push(bytecode.String(lhs.Str + rhs.Str))
				break
			}
			if err := vm.binaryOp(instruction, "Operands must be two numbers or two strings."); err != nil {
				return err
			}
		case bytecode.OpGreater, bytecode.OpLess, bytecode.OpSubtract,
			bytecode.OpMultiply, bytecode.OpDivide:
			if err := vm.binaryOp(instruction, "Operands must be numbers."); err != nil {
				return err
			}
		case bytecode.OpNot:
			vm.push(bytecode.Boolean(vm.pop().Falsey()))
		case bytecode.OpNegate:
			if vm.peek(0).Kind != bytecode.KindNumber {
				return vm.runtimeError("Operand must be a number.")
			}
			vm.push(bytecode.Number(-vm.pop().Num))
		case bytecode.OpPrint:
			fmt.Fprintln(vm.out, vm.pop())
		case bytecode.OpJump:
			vm.ip += int(vm.readShort())
		case bytecode.OpJumpIfFalse:
			offset := int(vm.readShort())
			if vm.peek(0).Falsey() {
				vm.ip += offset
			}
		case bytecode.OpLoop:
			vm.ip -= int(vm.readShort())
		case bytecode.OpReturn:
			return nil
		default:
			return vm.runtimeError("Unknown opcode %d.", instruction)
		}
	}
}

func (vm *VM) readByte() byte {
	vm.ip++
	return vm.chunk.Code[vm.ip-1]
}

func (vm *VM) readShort() uint16 {
	big := vm.readByte()
	small := vm.readByte()
	return uint16(big)<<8 | uint16(small)
}

func (vm *VM) readConstant() bytecode.Value {
	return vm.chunk.Consts[vm.readByte()]
}

func (vm *VM) readString() string {
	return vm.readConstant().Str
}

func (vm *VM) push(v bytecode.Value) {
	vm.stack[vm.top] = v
	vm.top++
}

func (vm *VM) pop() bytecode.Value {
	vm.top--
	return vm.stack[vm.top]
}

func (vm *VM) peek(distance int) bytecode.Value {
	return vm.stack[vm.top-1-distance]
}

func (vm *VM) binaryOp(op byte, message string) error {
	if vm.peek(0).Kind != bytecode.KindNumber || vm.peek(1).Kind != bytecode.KindNumber {
		return vm.runtimeError("%s", message)
	}
	rhs := vm.pop().Num
	lhs := vm.pop().Num
	vm.push(binaryOps[op](lhs, rhs))
	return nil
}

var binaryOps = map[byte]func(a, b float64) bytecode.Value{
	bytecode.OpGreater:  func(a, b float64) bytecode.Value { return bytecode.Boolean(a > b) },
	bytecode.OpLess:     func(a, b float64) bytecode.Value { return bytecode.Boolean(a < b) },
	bytecode.OpAdd:      func(a, b float64) bytecode.Value { return bytecode.Number(a + b) },
	bytecode.OpSubtract: func(a, b float64) bytecode.Value { return bytecode.Number(a - b) },
	bytecode.OpMultiply: func(a, b float64) bytecode.Value { return bytecode.Number(a * b) },
	bytecode.OpDivide:   func(a, b float64) bytecode.Value { return bytecode.Number(a / b) },
}

// runtimeError halts the run with a diagnostic carrying the source line
// of the faulting instruction.
func (vm *VM) runtimeError(format string, a ...any) error {
	line := 0
	if vm.ip > 0 && vm.ip <= len(vm.chunk.Lines) {
		line = vm.chunk.Lines[vm.ip-1]
	}
	return fmt.Errorf("%w: [line %d] %s", ErrRuntime, line, fmt.Sprintf(format, a...))
}
