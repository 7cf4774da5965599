package cmds

import (
	"fmt"
	"reflect"
	"strings"
)

type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// Params describes the words the command consumes, for usage output.
// Optional arguments are bracketed.
func (c *Command) Params() []string {
	if !c.Func.IsValid() {
		return nil
	}
	typ := c.Func.Type()
	ret := make([]string, 0, typ.NumIn())
	for i := range typ.NumIn() {
		ret = append(ret, paramName(typ.In(i)))
	}
	return ret
}

func paramName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Pointer:
		return "[" + strings.Trim(paramName(t.Elem()), "<>") + "]"
	case reflect.Slice:
		return "<" + strings.Trim(paramName(t.Elem()), "<>") + ",...>"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "<int>"
	}
	return "<" + t.Kind().String() + ">"
}

func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)

	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}

	fnType := fnValue.Type()
	if fnType.IsVariadic() {
		panic(fmt.Errorf("variadic function not supported: %T", fn))
	}
	numRets := fnType.NumOut()
	if numRets >= 2 {
		panic(fmt.Errorf("must return 0 or 1 value"))
	}
	if numRets == 1 && fnType.Out(0) != errorType {
		panic(fmt.Errorf("must return error"))
	}

	return &Command{
		Func: fnValue,
	}
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
