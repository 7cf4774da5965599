package modes

import (
	"bytes"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/logs"
)

type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

func (m ModuleForTest) Mode() Mode {
	return ModeDevelopment
}

// LogWriter sends log output to the test log. Fork it over logs.Writer.
func LogWriter(t *testing.T) logs.Writer {
	return testWriter{t: t}
}

type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(bytes.TrimRight(p, "\n")))
	return len(p), nil
}
