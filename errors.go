package intset

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is returned when a value is not a valid element,
	// i.e. outside [1, MaxElement].
	ErrDomain = errors.New("value out of domain")

	// ErrNotFound is returned when an operation references an absent element.
	ErrNotFound = errors.New("element not found")

	// ErrEmpty is returned by First, Last and PopMax on an empty set.
	// It wraps ErrNotFound.
	ErrEmpty = fmt.Errorf("%w: set is empty", ErrNotFound)
)

// DomainError indicates a value that cannot be an element.
//
// errors.Is(err, ErrDomain) reports true for it.
type DomainError struct {
	Op    string
	Value int
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("intset: %s %d: value out of domain [1, %d]", e.Op, e.Value, MaxElement)
}

func (e *DomainError) Unwrap() error { return ErrDomain }

// LookupError indicates a request for an element the set does not hold.
//
// errors.Is(err, ErrNotFound) reports true for it.
type LookupError struct {
	Op    string
	Value int
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("intset: %s %d: element not found", e.Op, e.Value)
}

func (e *LookupError) Unwrap() error { return ErrNotFound }

func checkElement(op string, n int) error {
	if n < 1 {
		return &DomainError{Op: op, Value: n}
	}
	return nil
}
