package intcodeconfigs

import (
	"runtime"

	"github.com/reusee/intcode/cmds"
	"github.com/reusee/intcode/configs"
	"github.com/reusee/intcode/modes"
	"github.com/reusee/intcode/vars"
)

type SearchConcurrency int

var searchConcurrencyFlag = cmds.Var[int]("-search-concurrency")

// SearchConcurrency comes from the flag, then the config, then the mode
// default: one in development so logs stay ordered, GOMAXPROCS otherwise.
func (Module) SearchConcurrency(
	loader configs.Loader,
	mode modes.Mode,
) SearchConcurrency {
	def := runtime.GOMAXPROCS(0)
	if mode == modes.ModeDevelopment {
		def = 1
	}
	return SearchConcurrency(vars.FirstNonZero(
		*searchConcurrencyFlag,
		configs.First[int](loader, "search_concurrency"),
		def,
	))
}

type Seed int

// nil until the word is given, so an explicit zero still wins over the config
var seedFlag = cmds.Var[*int]("-seed")

func (Module) Seed(
	loader configs.Loader,
) Seed {
	if *seedFlag != nil {
		return Seed(**seedFlag)
	}
	return Seed(configs.First[int](loader, "seed"))
}

// PhaseSets are the phase values tried by the chain and feedback searches.
type PhaseSets struct {
	Chain    [5]int
	Feedback [5]int
}

func (Module) PhaseSets(
	loader configs.Loader,
) PhaseSets {
	var sets PhaseSets
	copy(sets.Chain[:], configs.FirstOr(loader, "phases.chain", []int{0, 1, 2, 3, 4}))
	copy(sets.Feedback[:], configs.FirstOr(loader, "phases.feedback", []int{5, 6, 7, 8, 9}))
	return sets
}
