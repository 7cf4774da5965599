package intcode

import "errors"

var (
	ErrUnknownOpcode  = errors.New("unknown opcode")
	ErrUnknownMode    = errors.New("unknown parameter mode")
	ErrImmediateWrite = errors.New("write target in immediate mode")
	ErrOutOfBounds    = errors.New("address out of bounds")
	ErrInputStarved   = errors.New("input exhausted")
	ErrHalted         = errors.New("machine halted")
	ErrNoNounVerb     = errors.New("no noun and verb produce the target")
)
