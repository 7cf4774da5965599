package debugs

import (
	"slices"
	"strconv"
	"strings"

	"github.com/reusee/intcode/intcode"
)

// MachineGlobals exposes a machine's state to starlark: memory, ip, output,
// halted and consumed as values, and disasm() returning the listing of the
// current memory.
func MachineGlobals(m *intcode.Machine) map[string]any {
	memory := m.Memory()
	return map[string]any{
		"memory":   memory,
		"ip":       m.IP(),
		"output":   slices.Clone(m.Output()),
		"halted":   m.Halted(),
		"consumed": m.Consumed(),
		"disasm": func() string {
			var b strings.Builder
			for ip, inst := range intcode.Disassemble(memory) {
				b.WriteString(strconv.Itoa(ip))
				b.WriteString(": ")
				b.WriteString(inst.String())
				b.WriteString("\n")
			}
			return b.String()
		},
	}
}
