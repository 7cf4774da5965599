package intcode

// Disassemble walks memory linearly from address 0, yielding each decodable
// instruction with its address. Data cells mixed into code are decoded as
// if they were instructions; the walk stops at the first cell that does not
// decode.
func Disassemble(memory []int) func(yield func(int, Instruction) bool) {
	return func(yield func(int, Instruction) bool) {
		for ip := 0; ip < len(memory); {
			inst, err := Decode(memory, ip)
			if err != nil {
				return
			}
			if !yield(ip, inst) {
				return
			}
			ip += inst.Size()
		}
	}
}
