package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/amplifiers"
	"github.com/reusee/intcode/cmds"
	"github.com/reusee/intcode/configs"
	"github.com/reusee/intcode/debugs"
	"github.com/reusee/intcode/intcode"
	"github.com/reusee/intcode/intcodeconfigs"
	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/modes"
	"github.com/reusee/intcode/programs"
	"github.com/reusee/intcode/vars"
)

var (
	fileFlag   = cmds.Var[string]("file")
	inputFlag  = cmds.Collect[int]("input")
	phasesFlag = cmds.Var[[]int]("phases")
	evalFlag   = cmds.Collect[string]("eval")
	tapFlag    = cmds.Switch("-tap")
	patchFlag  = cmds.Var[[]string]("patch")
	peekFlag   = cmds.Collect[int]("peek")
	limitFlag  = cmds.Var[int]("noun-verb-limit")
)

var nounVerbTarget int

type action func(ctx context.Context, scope dscope.Scope, program []int) error

var selected action

func define(name string, desc string, fn action) {
	cmds.Define(name, cmds.Func(func() {
		selected = fn
	}).Desc(desc))
}

func init() {
	cmds.Describe("file", "program file, comma separated integers")
	cmds.Describe("input", "append one input value for run")
	cmds.Describe("phases", "phase settings for chain and feedback")
	cmds.Describe("eval", "starlark expression evaluated on the machine after run")
	cmds.Describe("-tap", "open a starlark REPL on the machine after run")
	cmds.Describe("patch", "memory cells to overwrite before run, as addr=value,...")
	cmds.Describe("peek", "print one memory cell after run")
	cmds.Describe("noun-verb-limit", "upper bound, exclusive, of noun and verb for search-noun-verb")
	define("run", "run the program on the given inputs and print its output", runMachine)
	define("disasm", "print a linear disassembly of the program", disassemble)
	define("chain", "run amplifiers in series with the given phases", amplify(amplifiers.ModeChain))
	define("feedback", "run amplifiers in a feedback loop with the given phases", amplify(amplifiers.ModeFeedback))
	define("search-chain", "find the series phase order giving the highest signal", search(amplifiers.ModeChain))
	define("search-feedback", "find the feedback phase order giving the highest signal", search(amplifiers.ModeFeedback))
	cmds.Define("search-noun-verb", cmds.Func(func(target int) {
		nounVerbTarget = target
		selected = searchNounVerb
	}).Desc("find the noun and verb that leave target at address 0"))
}

func main() {
	cmds.Execute(os.Args[1:])

	if *fileFlag == "" {
		fmt.Fprintln(os.Stderr, "Error: program is required (use 'file path/to/program')")
		os.Exit(1)
	}
	if selected == nil {
		selected = runMachine
	}

	program, err := programs.Load(*fileFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	scope := dscope.New(
		new(intcodeconfigs.Module),
		new(amplifiers.Module),
		new(debugs.Module),
		modes.ForProduction(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var failed bool
	scope.Call(func(
		logger logs.Logger,
		loader configs.Loader,
	) {
		if err := loader.Err(); err != nil {
			logger.Error("config", "error", err)
			failed = true
			return
		}
		if err := selected(ctx, scope, program); err != nil {
			logger.Error("failed", "file", *fileFlag, "error", err)
			failed = true
		}
	})
	if failed {
		stop()
		os.Exit(1)
	}
}

func runMachine(ctx context.Context, scope dscope.Scope, program []int) (err error) {
	scope.Call(func(
		logger logs.Logger,
		eval debugs.Eval,
		tap debugs.Tap,
	) {
		var patches []intcode.Patch
		patches, err = programs.ParsePatches(*patchFlag)
		if err != nil {
			return
		}
		m := intcode.NewMachine(program)
		if err = m.Patch(patches...); err != nil {
			return
		}
		if logger.Enabled(ctx, logs.LevelTrace) {
			m.Trace(func(ip int, inst intcode.Instruction) {
				logger.Log(ctx, logs.LevelTrace, "step",
					"ip", ip,
					"inst", inst.String(),
				)
			})
		}

		out, runErr := m.Run(*inputFlag)
		for _, v := range out {
			fmt.Println(v)
		}

		// inspect the machine even when it faulted
		for _, addr := range *peekFlag {
			v, loadErr := m.Load(addr)
			if loadErr != nil {
				logger.Error("peek", "error", loadErr)
				continue
			}
			fmt.Printf("[%d] = %d\n", addr, v)
		}
		globals := debugs.MachineGlobals(m)
		for _, expr := range *evalFlag {
			value, err := eval(ctx, expr, globals)
			if err != nil {
				logger.Error("eval", "expr", expr, "error", err)
				continue
			}
			fmt.Printf("%s = %s\n", expr, value)
		}
		if *tapFlag {
			tap(ctx, "machine", globals)
		}

		err = runErr
	})
	return
}

func disassemble(ctx context.Context, scope dscope.Scope, program []int) error {
	for ip, inst := range intcode.Disassemble(program) {
		fmt.Printf("%5d  %s\n", ip, inst)
	}
	return nil
}

func amplify(mode amplifiers.Mode) action {
	return func(ctx context.Context, scope dscope.Scope, program []int) (err error) {
		if len(*phasesFlag) == 0 {
			return fmt.Errorf("phases required (use 'phases 9,8,7,6,5')")
		}
		scope.Call(func(
			run amplifiers.Run,
		) {
			var signal int
			signal, err = run(ctx, program, *phasesFlag, mode)
			if err != nil {
				return
			}
			fmt.Println(signal)
		})
		return
	}
}

func search(mode amplifiers.Mode) action {
	return func(ctx context.Context, scope dscope.Scope, program []int) (err error) {
		scope.Call(func(
			searchPhases amplifiers.SearchPhases,
		) {
			var result amplifiers.Result
			result, err = searchPhases(ctx, program, mode)
			if err != nil {
				return
			}
			fmt.Printf("%d %v\n", result.Signal, result.Phases)
		})
		return
	}
}

func searchNounVerb(ctx context.Context, scope dscope.Scope, program []int) (err error) {
	scope.Call(func(
		logger logs.Logger,
	) {
		limit := vars.FirstNonZero(*limitFlag, 100)
		logger.InfoContext(ctx, "search noun verb",
			"target", nounVerbTarget,
			"limit", limit,
		)
		var noun, verb int
		noun, verb, err = intcode.SearchNounVerb(ctx, program, nounVerbTarget, limit)
		if err != nil {
			return
		}
		logger.InfoContext(ctx, "search noun verb done",
			"noun", noun,
			"verb", verb,
		)
		fmt.Println(100*noun + verb)
	})
	return
}
