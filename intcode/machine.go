package intcode

import (
	"fmt"
	"slices"
)

type Outcome int

const (
	Continued Outcome = iota
	Stalled
	Halted
)

func (o Outcome) String() string {
	switch o {
	case Continued:
		return "continued"
	case Stalled:
		return "stalled"
	case Halted:
		return "halted"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// TraceFunc is called with each decoded instruction before it executes,
// including input instructions that then stall.
type TraceFunc func(ip int, inst Instruction)

type Machine struct {
	memory   []int
	ip       int
	consumed int
	halted   bool
	output   []int
	trace    TraceFunc
}

// NewMachine returns a machine running a private copy of program.
func NewMachine(program []int) *Machine {
	return &Machine{
		memory: slices.Clone(program),
	}
}

func (m *Machine) Trace(fn TraceFunc) {
	m.trace = fn
}

func (m *Machine) IP() int {
	return m.ip
}

func (m *Machine) Halted() bool {
	return m.halted
}

// Consumed returns how many input values have been read.
func (m *Machine) Consumed() int {
	return m.consumed
}

// Output returns every value produced so far. The slice is shared with the
// machine and only grows.
func (m *Machine) Output() []int {
	return m.output
}

func (m *Machine) Memory() []int {
	return slices.Clone(m.memory)
}

func (m *Machine) Load(addr int) (int, error) {
	if addr < 0 || addr >= len(m.memory) {
		return 0, fmt.Errorf("load %d: %w", addr, ErrOutOfBounds)
	}
	return m.memory[addr], nil
}

// Store writes v to addr. It is meant for patching memory before a run.
func (m *Machine) Store(addr int, v int) error {
	if addr < 0 || addr >= len(m.memory) {
		return fmt.Errorf("store %d: %w", addr, ErrOutOfBounds)
	}
	m.memory[addr] = v
	return nil
}

// Step decodes and executes one instruction. Input is read from input
// starting at the machine's own cursor; when the cursor has reached the end
// of input the step does nothing and reports Stalled, so the same
// instruction is retried on the next call.
func (m *Machine) Step(input []int) (Outcome, error) {
	if m.halted {
		return Halted, ErrHalted
	}
	inst, err := Decode(m.memory, m.ip)
	if err != nil {
		return Continued, err
	}
	if m.trace != nil {
		m.trace(m.ip, inst)
	}
	return m.execute(inst, input)
}

// Steps steps the machine until it halts, stalls, or faults, yielding every
// outcome.
func (m *Machine) Steps(input []int) func(yield func(Outcome, error) bool) {
	return func(yield func(Outcome, error) bool) {
		for {
			outcome, err := m.Step(input)
			if !yield(outcome, err) {
				return
			}
			if err != nil || outcome != Continued {
				return
			}
		}
	}
}

// Run executes until halt with all input supplied up front and returns the
// values output during this call. Stalling means input was insufficient and
// is reported as ErrInputStarved.
func (m *Machine) Run(input []int) ([]int, error) {
	start := len(m.output)
	for outcome, err := range m.Steps(input) {
		if err != nil {
			return m.output[start:], err
		}
		if outcome == Stalled {
			return m.output[start:], fmt.Errorf("at %d after %d values: %w", m.ip, m.consumed, ErrInputStarved)
		}
	}
	return m.output[start:], nil
}

// RunProgram runs a fresh machine over program and returns all its output.
func RunProgram(program []int, input []int) ([]int, error) {
	return NewMachine(program).Run(input)
}
