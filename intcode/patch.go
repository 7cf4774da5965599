package intcode

import (
	"context"
	"errors"
	"fmt"
)

// Patch replaces one memory cell before a run.
type Patch struct {
	Addr  int
	Value int
}

func (p Patch) String() string {
	return fmt.Sprintf("%d=%d", p.Addr, p.Value)
}

// Patch applies patches in order.
func (m *Machine) Patch(patches ...Patch) error {
	for _, p := range patches {
		if err := m.Store(p.Addr, p.Value); err != nil {
			return fmt.Errorf("patch %s: %w", p, err)
		}
	}
	return nil
}

// RunPatched copies program, applies patches, and runs it to halt on input.
// The machine is returned even on error so its memory can be inspected.
func RunPatched(program []int, patches []Patch, input []int) (*Machine, error) {
	m := NewMachine(program)
	if err := m.Patch(patches...); err != nil {
		return m, err
	}
	_, err := m.Run(input)
	return m, err
}

// NounVerb writes noun to address 1 and verb to address 2, runs program with
// no input and returns the value left at address 0.
func NounVerb(program []int, noun int, verb int) (int, error) {
	m, err := RunPatched(program, []Patch{
		{Addr: 1, Value: noun},
		{Addr: 2, Value: verb},
	}, nil)
	if err != nil {
		return 0, err
	}
	return m.Load(0)
}

// SearchNounVerb tries every noun and verb in [0, limit), noun major, and
// returns the first pair whose NounVerb result equals target. A pair that
// makes the program touch memory outside the image counts as a miss.
func SearchNounVerb(ctx context.Context, program []int, target int, limit int) (noun int, verb int, err error) {
	for noun = range limit {
		if err := ctx.Err(); err != nil {
			return 0, 0, err
		}
		for verb = range limit {
			got, err := NounVerb(program, noun, verb)
			if errors.Is(err, ErrOutOfBounds) {
				continue
			}
			if err != nil {
				return 0, 0, fmt.Errorf("noun %d verb %d: %w", noun, verb, err)
			}
			if got == target {
				return noun, verb, nil
			}
		}
	}
	return 0, 0, fmt.Errorf("target %d: %w", target, ErrNoNounVerb)
}
