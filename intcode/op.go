package intcode

import "fmt"

type OpCode int

const (
	OpAdd         OpCode = 1
	OpMultiply    OpCode = 2
	OpInput       OpCode = 3
	OpOutput      OpCode = 4
	OpJumpIfTrue  OpCode = 5
	OpJumpIfFalse OpCode = 6
	OpLessThan    OpCode = 7
	OpEquals      OpCode = 8
	OpHalt        OpCode = 99
)

// Arity returns the number of operand cells following the instruction word.
// Unknown opcodes report -1.
func (o OpCode) Arity() int {
	switch o {
	case OpHalt:
		return 0
	case OpAdd, OpMultiply, OpLessThan, OpEquals:
		return 3
	case OpInput, OpOutput:
		return 1
	case OpJumpIfTrue, OpJumpIfFalse:
		return 2
	}
	return -1
}

// writes reports whether argument n (0-indexed) is a write target.
func (o OpCode) writes(n int) bool {
	switch o {
	case OpAdd, OpMultiply, OpLessThan, OpEquals:
		return n == 2
	case OpInput:
		return n == 0
	}
	return false
}

func (o OpCode) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpMultiply:
		return "mul"
	case OpInput:
		return "in"
	case OpOutput:
		return "out"
	case OpJumpIfTrue:
		return "jnz"
	case OpJumpIfFalse:
		return "jz"
	case OpLessThan:
		return "lt"
	case OpEquals:
		return "eq"
	case OpHalt:
		return "halt"
	}
	return fmt.Sprintf("op(%d)", int(o))
}
