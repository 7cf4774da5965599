package programs

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var (
	ErrEmpty     = errors.New("empty program")
	ErrEmptyCell = errors.New("empty cell")
)

// Parse reads comma separated signed decimal integers. Surrounding
// whitespace, including a trailing newline, is ignored.
func Parse(text string) ([]int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmpty
	}
	cells := strings.Split(text, ",")
	program := make([]int, 0, len(cells))
	for i, cell := range cells {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			return nil, fmt.Errorf("cell %d: %w", i, ErrEmptyCell)
		}
		v, err := strconv.Atoi(cell)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		program = append(program, v)
	}
	return program, nil
}

func Load(path string) ([]int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	program, err := Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return program, nil
}

// Format renders a program the way Parse reads it.
func Format(program []int) string {
	var b strings.Builder
	for i, v := range program {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
