package bitset128

import (
	"fmt"
	"log/slog"
)

// Uint128 is a raw 128-bit unsigned integer split into two 64-bit halves.
//
// It is the interchange format for FromRaw and BitSet.Raw.
type Uint128 struct {
	Lo uint64 // bits [0,63]
	Hi uint64 // bits [64,127]
}

// IsZero reports whether the value is 0.
func (u Uint128) IsZero() bool {
	return u.Lo == 0 && u.Hi == 0
}

// String renders the value as 0x followed by 32 hex digits.
func (u Uint128) String() string {
	return fmt.Sprintf("0x%016x%016x", u.Hi, u.Lo)
}

// LogValue implements slog.LogValuer.
func (u Uint128) LogValue() slog.Value {
	return slog.StringValue(u.String())
}
