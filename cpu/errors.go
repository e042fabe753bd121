package cpu

import "fmt"

// InvalidAddressMode is returned when an instruction's operation handler
// is given an AddrResult shape it cannot act on (e.g. a branch handler
// receiving something other than KindRelative).
type InvalidAddressMode struct {
	Reason string
}

func (e InvalidAddressMode) Error() string {
	return fmt.Sprintf("cpu: invalid address mode: %s", e.Reason)
}

// InvalidOperation is returned when a family handler is dispatched an
// Operation it doesn't recognize. This should only happen if the
// opcode table and the dispatch switch in Step drift apart.
type InvalidOperation struct {
	Reason string
}

func (e InvalidOperation) Error() string {
	return fmt.Sprintf("cpu: invalid operation: %s", e.Reason)
}

// UnknownOpcode is returned by Step when the byte at PC has no entry in
// the opcode table, i.e. it's an illegal/undocumented opcode.
type UnknownOpcode struct {
	Opcode byte
}

func (e UnknownOpcode) Error() string {
	return fmt.Sprintf("cpu: unknown opcode 0x%02X", e.Opcode)
}
