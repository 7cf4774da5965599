package amplifiers

import (
	"context"
	"testing"

	"github.com/reusee/intcode/intcode"
	"github.com/stretchr/testify/require"
)

var feedbackProgram = []int{
	3, 26, 1001, 26, -4, 26, 3, 27, 1002, 27, 2, 27, 1, 27, 26, 27, 4, 27,
	1001, 28, -1, 28, 1005, 28, 6, 99, 0, 0, 5,
}

var feedbackProgram2 = []int{
	3, 52, 1001, 52, -5, 52, 3, 53, 1, 52, 56, 54, 1007, 54, 5, 55, 1005, 55,
	26, 1001, 54, -5, 54, 1105, 1, 12, 1, 53, 54, 53, 1008, 54, 0, 55, 1001,
	55, 1, 55, 2, 53, 55, 53, 4, 53, 1001, 56, -1, 56, 1005, 56, 6, 99, 0, 0,
	0, 0, 10,
}

func TestRunPipeline(t *testing.T) {
	signal, err := RunPipeline(feedbackProgram, [5]int{9, 8, 7, 6, 5})
	require.NoError(t, err)
	require.Equal(t, 139629729, signal)

	signal, err = RunPipeline(feedbackProgram2, [5]int{9, 7, 8, 5, 6})
	require.NoError(t, err)
	require.Equal(t, 18216, signal)
}

func TestRunPipelineLeavesProgram(t *testing.T) {
	program := append([]int(nil), feedbackProgram...)
	_, err := RunPipeline(program, [5]int{9, 8, 7, 6, 5})
	require.NoError(t, err)
	require.Equal(t, feedbackProgram, program)
}

func TestRingTick(t *testing.T) {
	// read one value, echo it, halt
	echo := []int{3, 0, 4, 0, 99}
	ring, err := NewRing(echo, []int{1, 2, 3}, 0)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, ring.Queue(0))
	require.Equal(t, []int{2}, ring.Queue(1))

	live, err := ring.Tick()
	require.NoError(t, err)
	require.Equal(t, 3, live)
	for i := range ring.Len() {
		require.Equal(t, 1, ring.Machine(i).Consumed())
	}

	live, err = ring.Tick()
	require.NoError(t, err)
	require.Equal(t, 3, live)
	require.Equal(t, []int{1, 0, 3}, ring.Queue(0))
	require.Equal(t, []int{2, 1}, ring.Queue(1))
	require.Equal(t, []int{3, 2}, ring.Queue(2))

	live, err = ring.Tick()
	require.NoError(t, err)
	require.Equal(t, 0, live)

	signal, err := ring.Signal()
	require.NoError(t, err)
	require.Equal(t, 3, signal)
	require.Equal(t, 3, ring.Ticks())

	// halted machines are skipped
	live, err = ring.Tick()
	require.NoError(t, err)
	require.Equal(t, 0, live)
}

func TestRingStalledMachinesWait(t *testing.T) {
	ring, err := NewRing(feedbackProgram, []int{9, 8, 7, 6, 5}, 0)
	require.NoError(t, err)

	sawStall := false
	for ring.Live() > 0 {
		before := ring.Machine(4).IP()
		_, err := ring.Tick()
		require.NoError(t, err)
		if !ring.Machine(4).Halted() && ring.Machine(4).IP() == before {
			sawStall = true
		}
	}
	require.True(t, sawStall)

	signal, err := ring.Signal()
	require.NoError(t, err)
	require.Equal(t, 139629729, signal)

	// E's final output is left unread in A's queue
	require.Equal(t, len(ring.Queue(0)), ring.Machine(0).Consumed()+1)
}

func TestRingTrace(t *testing.T) {
	ring, err := NewRing([]int{3, 0, 4, 0, 99}, []int{1, 2}, 0)
	require.NoError(t, err)
	counts := make(map[int]int)
	ring.Trace(func(amp int, ip int, inst intcode.Instruction) {
		counts[amp]++
	})
	_, err = ring.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, map[int]int{0: 3, 1: 3}, counts)
}

func TestRingErrors(t *testing.T) {
	_, err := NewRing(feedbackProgram, nil, 0)
	require.ErrorIs(t, err, ErrNoPhases)

	ring, err := NewRing([]int{99}, []int{1}, 0)
	require.NoError(t, err)
	_, err = ring.Run(context.Background())
	require.ErrorIs(t, err, ErrNoOutput)

	ring, err = NewRing([]int{3, 0, 42}, []int{1, 2}, 0)
	require.NoError(t, err)
	_, err = ring.Run(context.Background())
	require.ErrorIs(t, err, intcode.ErrUnknownOpcode)
	require.ErrorContains(t, err, "amplifier A")

	// jumps to itself forever
	ring, err = NewRing([]int{1105, 1, 0}, []int{1}, 0)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ring.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestName(t *testing.T) {
	require.Equal(t, "A", Name(0))
	require.Equal(t, "E", Name(4))
	require.Equal(t, "amp26", Name(26))
}
