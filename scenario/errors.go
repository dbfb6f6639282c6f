package scenario

import "errors"

var (
	// ErrInvalidScript indicates a script that cannot be run as written.
	ErrInvalidScript = errors.New("scenario: invalid script")

	// ErrExpectation indicates a step whose outcome differed from what the script expected.
	ErrExpectation = errors.New("scenario: expectation failed")

	// ErrUnknownScript indicates a built-in script name that does not exist.
	ErrUnknownScript = errors.New("scenario: unknown built-in script")
)
