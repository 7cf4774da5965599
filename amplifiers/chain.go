package amplifiers

import (
	"fmt"

	"github.com/reusee/intcode/intcode"
)

// Chain runs one fresh machine per phase in series without feedback. Each
// machine runs to halt on [phase, signal] and its last output becomes the
// next signal.
func Chain(program []int, phases []int, seed int) (int, error) {
	if len(phases) == 0 {
		return 0, ErrNoPhases
	}
	signal := seed
	for i, phase := range phases {
		out, err := intcode.RunProgram(program, []int{phase, signal})
		if err != nil {
			return 0, fmt.Errorf("amplifier %s: %w", Name(i), err)
		}
		if len(out) == 0 {
			return 0, fmt.Errorf("amplifier %s: %w", Name(i), ErrNoOutput)
		}
		signal = out[len(out)-1]
	}
	return signal, nil
}

// RunChain runs the five amplifier series with seed signal 0.
func RunChain(program []int, phases [5]int) (int, error) {
	return Chain(program, phases[:], 0)
}
