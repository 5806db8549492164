package lab

import "errors"

var (
	// ErrInvalidTransition indicates an operation was invoked while the
	// sequencer was not in the stage the operation requires.
	ErrInvalidTransition = errors.New("invalid stage transition")

	// ErrUnknownSpecimen indicates a selection named an identity that is not
	// in the catalog.
	ErrUnknownSpecimen = errors.New("unknown specimen")
)
