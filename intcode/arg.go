package intcode

import "fmt"

type Mode int

const (
	ModePositional Mode = 0
	ModeImmediate  Mode = 1
)

type Arg struct {
	Mode  Mode
	Value int
}

func Positional(addr int) Arg {
	return Arg{
		Mode:  ModePositional,
		Value: addr,
	}
}

func Immediate(value int) Arg {
	return Arg{
		Mode:  ModeImmediate,
		Value: value,
	}
}

// read resolves the argument as an operand: the literal for immediate mode,
// the memory cell for positional mode.
func (a Arg) read(memory []int) (int, error) {
	switch a.Mode {
	case ModeImmediate:
		return a.Value, nil
	case ModePositional:
		if a.Value < 0 || a.Value >= len(memory) {
			return 0, fmt.Errorf("read address %d: %w", a.Value, ErrOutOfBounds)
		}
		return memory[a.Value], nil
	}
	return 0, fmt.Errorf("mode %d: %w", a.Mode, ErrUnknownMode)
}

// target resolves the argument as a write address.
func (a Arg) target(memory []int) (int, error) {
	if a.Mode != ModePositional {
		return 0, ErrImmediateWrite
	}
	if a.Value < 0 || a.Value >= len(memory) {
		return 0, fmt.Errorf("write address %d: %w", a.Value, ErrOutOfBounds)
	}
	return a.Value, nil
}

func (a Arg) String() string {
	if a.Mode == ModeImmediate {
		return fmt.Sprintf("#%d", a.Value)
	}
	return fmt.Sprintf("[%d]", a.Value)
}
