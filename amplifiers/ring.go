package amplifiers

import (
	"context"
	"errors"
	"fmt"

	"github.com/reusee/intcode/intcode"
)

var (
	ErrNoPhases    = errors.New("no phase settings")
	ErrNoOutput    = errors.New("amplifier produced no output")
	ErrUnknownMode = errors.New("unknown mode")
)

// Ring runs amplifiers connected output to input in a cycle, the last one
// feeding the first. All amplifiers are stepped in turn on the calling
// goroutine, one instruction each per tick, so queue hand-off needs no
// synchronization.
type Ring struct {
	machines []*intcode.Machine
	queues   [][]int
	live     []bool
	numLive  int
	ticks    int
}

// NewRing creates one machine per phase, each with its own copy of program.
// Every queue starts with the machine's phase; the first queue also gets seed.
func NewRing(program []int, phases []int, seed int) (*Ring, error) {
	if len(phases) == 0 {
		return nil, ErrNoPhases
	}
	r := &Ring{
		machines: make([]*intcode.Machine, len(phases)),
		queues:   make([][]int, len(phases)),
		live:     make([]bool, len(phases)),
		numLive:  len(phases),
	}
	for i, phase := range phases {
		r.machines[i] = intcode.NewMachine(program)
		r.queues[i] = []int{phase}
		r.live[i] = true
	}
	r.queues[0] = append(r.queues[0], seed)
	return r, nil
}

// Name is the conventional amplifier label: A, B, C and so on.
func Name(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return fmt.Sprintf("amp%d", i)
}

func (r *Ring) Len() int {
	return len(r.machines)
}

func (r *Ring) Machine(i int) *intcode.Machine {
	return r.machines[i]
}

// Queue returns every value delivered to amplifier i so far, consumed or not.
func (r *Ring) Queue(i int) []int {
	return r.queues[i]
}

func (r *Ring) Live() int {
	return r.numLive
}

func (r *Ring) Ticks() int {
	return r.ticks
}

// Trace installs fn on every machine of the ring.
func (r *Ring) Trace(fn func(amp int, ip int, inst intcode.Instruction)) {
	for i, m := range r.machines {
		m.Trace(func(ip int, inst intcode.Instruction) {
			fn(i, ip, inst)
		})
	}
}

// Tick steps each live machine once, in ring order, forwarding the values it
// output during the step to its successor. It returns how many machines are
// still live.
func (r *Ring) Tick() (int, error) {
	r.ticks++
	for i, m := range r.machines {
		if !r.live[i] {
			continue
		}
		before := len(m.Output())
		outcome, err := m.Step(r.queues[i])
		if err != nil {
			return r.numLive, fmt.Errorf("amplifier %s: %w", Name(i), err)
		}
		if produced := m.Output()[before:]; len(produced) > 0 {
			next := (i + 1) % len(r.machines)
			r.queues[next] = append(r.queues[next], produced...)
		}
		if outcome == intcode.Halted {
			r.live[i] = false
			r.numLive--
		}
	}
	return r.numLive, nil
}

// Run ticks until every machine has halted and returns the last value output
// by the last machine. ctx is checked between ticks; a program that never
// halts runs until ctx is done.
func (r *Ring) Run(ctx context.Context) (int, error) {
	for r.numLive > 0 {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if _, err := r.Tick(); err != nil {
			return 0, err
		}
	}
	return r.Signal()
}

// Signal is the last value output by the last machine.
func (r *Ring) Signal() (int, error) {
	out := r.machines[len(r.machines)-1].Output()
	if len(out) == 0 {
		return 0, ErrNoOutput
	}
	return out[len(out)-1], nil
}

// RunPipeline runs the five amplifier feedback loop with seed signal 0.
func RunPipeline(program []int, phases [5]int) (int, error) {
	ring, err := NewRing(program, phases[:], 0)
	if err != nil {
		return 0, err
	}
	return ring.Run(context.Background())
}
