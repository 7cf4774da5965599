package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan annotates err with the span and machine carried by ctx, if any.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	var notes []error
	if v := ctx.Value(SpanKey); v != nil {
		notes = append(notes, fmt.Errorf("span: %s", v.(Span)))
	}
	if name, ok := machineFrom(ctx); ok {
		notes = append(notes, fmt.Errorf("machine: %s", name))
	}
	if len(notes) == 0 {
		return err
	}
	return errors.Join(append([]error{err}, notes...)...)
}
