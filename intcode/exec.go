package intcode

import "fmt"

func (m *Machine) execute(inst Instruction, input []int) (Outcome, error) {
	switch inst.Op {

	case OpHalt:
		m.halted = true
		return Halted, nil

	case OpAdd, OpMultiply, OpLessThan, OpEquals:
		x, err := inst.Args[0].read(m.memory)
		if err != nil {
			return Continued, m.fault(inst, err)
		}
		y, err := inst.Args[1].read(m.memory)
		if err != nil {
			return Continued, m.fault(inst, err)
		}
		z, err := inst.Args[2].target(m.memory)
		if err != nil {
			return Continued, m.fault(inst, err)
		}
		var result int
		switch inst.Op {
		case OpAdd:
			result = x + y
		case OpMultiply:
			result = x * y
		case OpLessThan:
			if x < y {
				result = 1
			}
		case OpEquals:
			if x == y {
				result = 1
			}
		}
		m.memory[z] = result

	case OpInput:
		if m.consumed >= len(input) {
			return Stalled, nil
		}
		z, err := inst.Args[0].target(m.memory)
		if err != nil {
			return Continued, m.fault(inst, err)
		}
		m.memory[z] = input[m.consumed]
		m.consumed++

	case OpOutput:
		x, err := inst.Args[0].read(m.memory)
		if err != nil {
			return Continued, m.fault(inst, err)
		}
		m.output = append(m.output, x)

	case OpJumpIfTrue, OpJumpIfFalse:
		x, err := inst.Args[0].read(m.memory)
		if err != nil {
			return Continued, m.fault(inst, err)
		}
		y, err := inst.Args[1].read(m.memory)
		if err != nil {
			return Continued, m.fault(inst, err)
		}
		if (x != 0) == (inst.Op == OpJumpIfTrue) {
			m.ip = y
			return Continued, nil
		}

	default:
		return Continued, m.fault(inst, ErrUnknownOpcode)
	}

	m.ip += inst.Size()
	return Continued, nil
}

func (m *Machine) fault(inst Instruction, err error) error {
	return fmt.Errorf("execute %q at %d: %w", inst, m.ip, err)
}
