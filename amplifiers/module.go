package amplifiers

import (
	"context"
	"fmt"
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/intcode"
	"github.com/reusee/intcode/intcodeconfigs"
	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/syncs"
)

type Module struct {
	dscope.Module
	Configs intcodeconfigs.Module
	Logs    logs.Module
}

// Run runs program through one amplifier per phase, seeded with the
// configured seed signal.
type Run func(ctx context.Context, program []int, phases []int, mode Mode) (int, error)

func (Module) Run(
	logger logs.Logger,
	seed intcodeconfigs.Seed,
) Run {
	return func(ctx context.Context, program []int, phases []int, mode Mode) (int, error) {
		switch mode {
		case ModeChain:
			signal, err := Chain(program, phases, int(seed))
			if err != nil {
				return 0, logs.WrapSpan(ctx, err)
			}
			logger.InfoContext(ctx, "chain done",
				"phases", phases,
				"signal", signal,
			)
			return signal, nil
		case ModeFeedback:
		default:
			return 0, logs.WrapSpan(ctx, fmt.Errorf("%w: %s", ErrUnknownMode, mode))
		}

		ring, err := NewRing(program, phases, int(seed))
		if err != nil {
			return 0, logs.WrapSpan(ctx, err)
		}
		if logger.Enabled(ctx, logs.LevelTrace) {
			ring.Trace(func(amp int, ip int, inst intcode.Instruction) {
				logger.Log(logs.WithMachine(ctx, Name(amp)), logs.LevelTrace, "step",
					"ip", ip,
					"inst", inst.String(),
				)
			})
		}

		started := time.Now()
		signal, err := ring.Run(ctx)
		if err != nil {
			return 0, logs.WrapSpan(ctx, err)
		}
		for i := range ring.Len() {
			m := ring.Machine(i)
			logger.DebugContext(logs.WithMachine(ctx, Name(i)), "halted",
				"ip", m.IP(),
				"consumed", m.Consumed(),
				"outputs", len(m.Output()),
			)
		}
		logger.InfoContext(ctx, "feedback done",
			"phases", phases,
			"signal", signal,
			"ticks", ring.Ticks(),
			"duration", time.Since(started),
		)
		return signal, nil
	}
}

// SearchPhases finds the ordering of the configured phase set that gives the
// highest signal in mode.
type SearchPhases func(ctx context.Context, program []int, mode Mode) (Result, error)

func (Module) SearchPhases(
	logger logs.Logger,
	newSpan logs.NewSpan,
	concurrency intcodeconfigs.SearchConcurrency,
	sets intcodeconfigs.PhaseSets,
	seed intcodeconfigs.Seed,
) SearchPhases {
	return func(ctx context.Context, program []int, mode Mode) (Result, error) {
		ctx, _ = newSpan(ctx, "search")

		phaseSet := sets.Chain[:]
		if mode == ModeFeedback {
			phaseSet = sets.Feedback[:]
		}
		logger.InfoContext(ctx, "search",
			"mode", mode.String(),
			"phases", phaseSet,
			"concurrency", int(concurrency),
		)

		result, err := Search(
			ctx,
			program,
			phaseSet,
			int(seed),
			mode,
			syncs.NewSemaphore(int(concurrency)),
			func(ctx context.Context, phases []int, signal int) {
				logger.DebugContext(ctx, "candidate",
					"phases", phases,
					"signal", signal,
				)
			},
		)
		if err != nil {
			return Result{}, logs.WrapSpan(ctx, err)
		}

		logger.InfoContext(ctx, "search done",
			"signal", result.Signal,
			"phases", result.Phases,
		)
		return result, nil
	}
}
