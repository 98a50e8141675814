package arraymap

import "errors"

var (
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("arraymap: index out of bounds")
)

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
