package amplifiers

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/reusee/intcode/syncs"
	"github.com/stretchr/testify/require"
)

func TestPermutations(t *testing.T) {
	seen := make(map[string]bool)
	for perm := range Permutations([]int{0, 1, 2, 3, 4}) {
		key := fmt.Sprint(perm)
		require.False(t, seen[key], key)
		seen[key] = true
		sorted := slices.Sorted(slices.Values(perm))
		require.Equal(t, []int{0, 1, 2, 3, 4}, sorted)
	}
	require.Len(t, seen, 120)

	n := 0
	for range Permutations([]int{1, 2, 3}) {
		n++
		if n == 2 {
			break
		}
	}
	require.Equal(t, 2, n)
}

func TestSearch(t *testing.T) {
	for _, concurrency := range []int{1, 4} {
		t.Run(fmt.Sprint(concurrency), func(t *testing.T) {
			for _, c := range chainCases {
				result, err := Search(
					context.Background(),
					c.program,
					[]int{0, 1, 2, 3, 4},
					0,
					ModeChain,
					syncs.NewSemaphore(concurrency),
					nil,
				)
				require.NoError(t, err)
				require.Equal(t, c.signal, result.Signal)
				require.Equal(t, c.phases[:], result.Phases)
			}

			result, err := Search(
				context.Background(),
				feedbackProgram,
				[]int{5, 6, 7, 8, 9},
				0,
				ModeFeedback,
				syncs.NewSemaphore(concurrency),
				nil,
			)
			require.NoError(t, err)
			require.Equal(t, 139629729, result.Signal)
			require.Equal(t, []int{9, 8, 7, 6, 5}, result.Phases)

			result, err = Search(
				context.Background(),
				feedbackProgram2,
				[]int{5, 6, 7, 8, 9},
				0,
				ModeFeedback,
				syncs.NewSemaphore(concurrency),
				nil,
			)
			require.NoError(t, err)
			require.Equal(t, 18216, result.Signal)
			require.Equal(t, []int{9, 7, 8, 5, 6}, result.Phases)
		})
	}
}

func TestSearchEach(t *testing.T) {
	n := 0
	_, err := Search(
		context.Background(),
		chainCases[0].program,
		[]int{0, 1, 2},
		0,
		ModeChain,
		syncs.NewSemaphore(1),
		func(ctx context.Context, phases []int, signal int) {
			n++
		},
	)
	require.NoError(t, err)
	require.Equal(t, 6, n)
}

func TestSearchErrors(t *testing.T) {
	_, err := Search(context.Background(), feedbackProgram, nil, 0, ModeFeedback, syncs.NewSemaphore(1), nil)
	require.ErrorIs(t, err, ErrNoPhases)

	_, err = Search(context.Background(), []int{42}, []int{0, 1}, 0, ModeChain, syncs.NewSemaphore(2), nil)
	require.Error(t, err)
	require.ErrorContains(t, err, "unknown opcode")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Search(ctx, feedbackProgram, []int{5, 6}, 0, ModeFeedback, syncs.NewSemaphore(1), nil)
	require.True(t, errors.Is(err, context.Canceled))

	_, err = Amplify(context.Background(), feedbackProgram, []int{5}, 0, Mode(0))
	require.ErrorIs(t, err, ErrUnknownMode)
}
