package bytecode_test

import (
	"glox/pkg/bytecode"
	"testing"
)

func TestWriteTracksLines(t *testing.T) {
	chunk := bytecode.New()
	chunk.Write(bytecode.OpNil, 1)
	chunk.Write(bytecode.OpPop, 1)
	chunk.Write(bytecode.OpReturn, 3)

	if chunk.Size() != 3 {
		t.Errorf("Size: expected 3, got %d", chunk.Size())
	}
	if len(chunk.Lines) != len(chunk.Code) {
		t.Fatalf("Line table length %d does not match code length %d", len(chunk.Lines), len(chunk.Code))
	}

	expectedLines := []int{1, 1, 3}
	for i, line := range expectedLines {
		if chunk.Lines[i] != line {
			t.Errorf("Line %d: expected %d, got %d", i, line, chunk.Lines[i])
		}
	}
}

func TestAddConstant(t *testing.T) {
	chunk := bytecode.New()

	first := chunk.AddConstant(bytecode.Number(1))
	second := chunk.AddConstant(bytecode.Number(1))
	third := chunk.AddConstant(bytecode.String("a"))

	if first != 0 || second != 1 || third != 2 {
		t.Errorf("Indices: expected 0, 1, 2, got %d, %d, %d", first, second, third)
	}
	if len(chunk.Consts) != 3 {
		t.Errorf("Pool size: expected 3, got %d", len(chunk.Consts))
	}
}

func TestPatchUint16(t *testing.T) {
	chunk := bytecode.New()
	chunk.Write(bytecode.OpJump, 1)
	chunk.Write(0xFF, 1)
	chunk.Write(0xFF, 1)

	chunk.PatchUint16(1, 0x1234)

	if chunk.Code[1] != 0x12 || chunk.Code[2] != 0x34 {
		t.Errorf("Patched operand: expected 12 34, got %02x %02x", chunk.Code[1], chunk.Code[2])
	}
	if chunk.Code[0] != bytecode.OpJump {
		t.Errorf("Opcode was clobbered: got %d", chunk.Code[0])
	}
}

func TestOpName(t *testing.T) {
	tests := []struct {
		op       byte
		expected string
	}{
		{bytecode.OpConstant, "OP_CONSTANT"},
		{bytecode.OpJumpIfFalse, "OP_JUMP_IF_FALSE"},
		{bytecode.OpReturn, "OP_RETURN"},
	}

	for _, test := range tests {
		if got := bytecode.OpName(test.op); got != test.expected {
			t.Errorf("OpName(%d): expected %s, got %s", test.op, test.expected, got)
		}
	}
}
