package avl

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("avl: index out of bounds")
	// ErrInvalidTree signals a structural invariant violation found by Check.
	ErrInvalidTree = errors.New("avl: invalid tree structure")
)

func assertf(condition bool, msg string, args ...any) {
	if !condition {
		panic(fmt.Sprintf(msg, args...))
	}
}
