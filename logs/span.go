package logs

import "context"

// Span identifies one unit of work, such as a single ring run inside a phase
// search. It is carried in the context and attached to every record.
type Span string

type spanKey struct{}

var SpanKey spanKey

type machineKey struct{}

// WithMachine names the machine the context belongs to. Records logged with
// the context carry it as "machine".
func WithMachine(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, machineKey{}, name)
}

func machineFrom(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(machineKey{}).(string)
	return name, ok
}
