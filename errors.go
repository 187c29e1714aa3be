package pagesim

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCapacity is returned when a simulation is asked to run
	// with fewer than one frame.
	ErrInvalidCapacity = errors.New("frame capacity must be positive")
	// ErrUnknownPolicy is returned for a Kind outside FIFO, LRU and Optimal.
	ErrUnknownPolicy = errors.New("unknown replacement policy")
)

func checkCapacity(capacity int) error {
	if capacity <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	return nil
}
