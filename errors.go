package bitset128

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned (or carried by a panic) when a bit
	// position lies outside [0, capacity).
	ErrIndexOutOfRange = errors.New("bitset128: index out of range")
)

// IndexError indicates a bit position outside the capacity of a set.
//
// It unwraps to ErrIndexOutOfRange, so errors.Is works on recovered panics.
type IndexError struct {
	Index    uint
	Capacity uint
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("bitset128: index %d out of range [0,%d)", e.Index, e.Capacity)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

func checkIndex(i, capacity uint) error {
	if i >= capacity {
		return &IndexError{Index: i, Capacity: capacity}
	}
	return nil
}

// mustIndex panics on an out-of-range position.
func mustIndex(i, capacity uint) {
	if i >= capacity {
		panic(&IndexError{Index: i, Capacity: capacity})
	}
}
