package assistant

import "errors"

// Domain-specific errors for the assistant package.
var (
	ErrEmptyQuestion = errors.New("question is empty")
	ErrNoContext     = errors.New("no context rows available")
	ErrGeneration    = errors.New("failed to generate response")
)
