package sortedmap

// MapError is an error type for the sortedmap module
type MapError string

func (e MapError) Error() string {
	return string(e)
}

// ErrMapCompleted signals that a builder has already completed a map and
// it's illegal to stage further entries.
const ErrMapCompleted = MapError("forbidden to stage entries; map has been completed")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = MapError("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
