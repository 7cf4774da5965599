package amplifiers

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/reusee/intcode/syncs"
)

type Mode int

const (
	ModeChain Mode = iota + 1
	ModeFeedback
)

func (m Mode) String() string {
	switch m {
	case ModeChain:
		return "chain"
	case ModeFeedback:
		return "feedback"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Amplify runs program through len(phases) amplifiers in the given mode.
func Amplify(ctx context.Context, program []int, phases []int, seed int, mode Mode) (int, error) {
	switch mode {
	case ModeChain:
		return Chain(program, phases, seed)
	case ModeFeedback:
		ring, err := NewRing(program, phases, seed)
		if err != nil {
			return 0, err
		}
		return ring.Run(ctx)
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
}

type Result struct {
	Signal int
	Phases []int
}

// Permutations yields every ordering of values, in the order produced by
// Heap's algorithm. The yielded slice is reused between iterations.
func Permutations(values []int) func(yield func([]int) bool) {
	return func(yield func([]int) bool) {
		perm := slices.Clone(values)
		n := len(perm)
		counters := make([]int, n)
		if !yield(perm) {
			return
		}
		for i := 1; i < n; {
			if counters[i] < i {
				if i%2 == 0 {
					perm[0], perm[i] = perm[i], perm[0]
				} else {
					perm[counters[i]], perm[i] = perm[i], perm[counters[i]]
				}
				if !yield(perm) {
					return
				}
				counters[i]++
				i = 1
			} else {
				counters[i] = 0
				i++
			}
		}
	}
}

// Search tries every ordering of phaseSet and returns the one giving the
// highest signal. Ties go to the ordering generated first. Each candidate
// runs on its own goroutine, at most cap(sem) at a time; every ring still
// steps its machines cooperatively on that one goroutine.
func Search(
	ctx context.Context,
	program []int,
	phaseSet []int,
	seed int,
	mode Mode,
	sem syncs.Semaphore,
	each func(ctx context.Context, phases []int, signal int),
) (best Result, err error) {
	if len(phaseSet) == 0 {
		return best, ErrNoPhases
	}

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		bestIndex = -1
	)

	index := 0
	for perm := range Permutations(phaseSet) {
		if err := sem.AcquireContext(ctx); err != nil {
			break
		}
		phases := slices.Clone(perm)
		i := index
		index++
		wg.Go(func() {
			defer sem.Release()
			signal, err := Amplify(ctx, program, phases, seed, mode)
			if err != nil {
				cancel(fmt.Errorf("phases %v: %w", phases, err))
				return
			}
			if each != nil {
				each(ctx, phases, signal)
			}
			mu.Lock()
			defer mu.Unlock()
			if bestIndex < 0 ||
				signal > best.Signal ||
				signal == best.Signal && i < bestIndex {
				best = Result{
					Signal: signal,
					Phases: phases,
				}
				bestIndex = i
			}
		})
	}
	wg.Wait()

	if err := context.Cause(ctx); err != nil {
		return Result{}, err
	}
	return best, nil
}
