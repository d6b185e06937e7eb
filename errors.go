package panorama

import "errors"

var (
	// ErrDegenerateReference is returned when a relative rectangle is
	// computed against a reference with zero width or height.
	ErrDegenerateReference = errors.New("degenerate reference rectangle")

	// ErrMissingResource is returned by a Library when neither the requested
	// file nor the library default can be loaded.
	ErrMissingResource = errors.New("missing resource")

	// ErrUnresolvedReference is returned when an id does not name a
	// registered entity.
	ErrUnresolvedReference = errors.New("unresolved reference")

	// ErrUnknownTransition is returned when a persisted transition name
	// names neither a built-in transition nor a registered custom one.
	ErrUnknownTransition = errors.New("unknown transition")

	// ErrQuit is returned from Engine.Update when the player quits.
	ErrQuit = errors.New("quit")
)
