package debugs

import (
	"context"

	"github.com/reusee/intcode/logs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Eval evaluates one starlark expression against globals.
type Eval func(ctx context.Context, expr string, globals map[string]any) (starlark.Value, error)

func (Module) Eval(
	logger logs.Logger,
) Eval {
	return func(ctx context.Context, expr string, globals map[string]any) (starlark.Value, error) {
		thread := &starlark.Thread{
			Name: "eval",
		}
		value, err := starlark.EvalOptions(
			&syntax.FileOptions{},
			thread,
			"<expr>",
			expr,
			toStringDict(globals),
		)
		if err != nil {
			return nil, logs.WrapSpan(ctx, err)
		}
		logger.DebugContext(ctx, "eval",
			"expr", expr,
			"value", value.String(),
		)
		return value, nil
	}
}
