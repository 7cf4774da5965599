package logs

import (
	"io"
	"os"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Writer receives text log output. Tests fork it to capture records.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
