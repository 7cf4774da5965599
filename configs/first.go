package configs

import (
	"errors"
)

// First decodes the value at path from the first file defining it, or
// returns the zero value. Decode failures panic.
func First[T any](loader Loader, path string) T {
	var zero T
	return FirstOr(loader, path, zero)
}

func FirstOr[T any](loader Loader, path string, fallback T) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return fallback
		}
		panic(err)
	}
	return value
}
