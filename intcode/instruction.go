package intcode

import (
	"fmt"
	"strings"
)

// Instruction is decoded from live memory on every step and never cached,
// since programs may rewrite their own code.
type Instruction struct {
	Op   OpCode
	Args []Arg
}

// Size is the number of cells the instruction occupies.
func (i Instruction) Size() int {
	return 1 + len(i.Args)
}

func (i Instruction) String() string {
	var b strings.Builder
	b.WriteString(i.Op.String())
	for n, arg := range i.Args {
		if i.Op.writes(n) {
			b.WriteString(" ->")
		}
		b.WriteString(" ")
		b.WriteString(arg.String())
	}
	return b.String()
}

var modeDivisors = [...]int{100, 1000, 10000}

// Decode reads the instruction at ip. Only the operand cells used by the
// opcode are read and mode-checked.
func Decode(memory []int, ip int) (inst Instruction, err error) {
	if ip < 0 || ip >= len(memory) {
		return inst, fmt.Errorf("decode at %d: %w", ip, ErrOutOfBounds)
	}
	word := memory[ip]

	op := OpCode(word % 100)
	arity := op.Arity()
	if arity < 0 {
		return inst, fmt.Errorf("decode at %d: word %d: %w", ip, word, ErrUnknownOpcode)
	}
	if ip+arity >= len(memory) {
		return inst, fmt.Errorf("decode at %d: %s operands: %w", ip, op, ErrOutOfBounds)
	}

	inst.Op = op
	if arity > 0 {
		inst.Args = make([]Arg, arity)
	}
	for n := range arity {
		mode := Mode((word / modeDivisors[n]) % 10)
		switch mode {
		case ModePositional, ModeImmediate:
		default:
			return inst, fmt.Errorf("decode at %d: word %d argument %d: %w", ip, word, n+1, ErrUnknownMode)
		}
		if mode == ModeImmediate && op.writes(n) {
			return inst, fmt.Errorf("decode at %d: word %d argument %d: %w", ip, word, n+1, ErrImmediateWrite)
		}
		inst.Args[n] = Arg{
			Mode:  mode,
			Value: memory[ip+1+n],
		}
	}

	return inst, nil
}
