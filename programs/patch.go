package programs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/reusee/intcode/intcode"
)

var ErrBadPatch = errors.New("patch must be addr=value")

// ParsePatches reads words of the form addr=value.
func ParsePatches(words []string) ([]intcode.Patch, error) {
	patches := make([]intcode.Patch, 0, len(words))
	for _, word := range words {
		addrText, valueText, ok := strings.Cut(strings.TrimSpace(word), "=")
		if !ok {
			return nil, fmt.Errorf("%q: %w", word, ErrBadPatch)
		}
		addr, err := strconv.Atoi(strings.TrimSpace(addrText))
		if err != nil {
			return nil, fmt.Errorf("%q: %w", word, errors.Join(ErrBadPatch, err))
		}
		value, err := strconv.Atoi(strings.TrimSpace(valueText))
		if err != nil {
			return nil, fmt.Errorf("%q: %w", word, errors.Join(ErrBadPatch, err))
		}
		patches = append(patches, intcode.Patch{Addr: addr, Value: value})
	}
	return patches, nil
}
