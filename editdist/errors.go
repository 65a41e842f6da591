package editdist

import (
	"errors"
	"fmt"
)

// Sentinel error kinds (§7).
var (
	// ErrBoundExceeded is returned when ErrorOnBoundExceed is set in Config
	// and the true distance exceeds the caller-supplied bound. By default
	// (ErrorOnBoundExceed false) the bound value is returned instead and no
	// error is raised.
	ErrBoundExceeded = errors.New("editdist: bound exceeded")

	// ErrMalformedUTF8 is returned by the UTF-8 variants when an input is
	// not well-formed UTF-8. No codepoint is invented; the caller decides
	// how to proceed.
	ErrMalformedUTF8 = errors.New("editdist: malformed utf-8 input")

	// ErrInvalidArgument is returned when a scratch buffer is smaller than
	// ScratchSize (or AffineScratchSize, for the affine variant) requires.
	ErrInvalidArgument = errors.New("editdist: invalid argument")
)

// DistanceError wraps one of the sentinel errors above with the operation
// that produced it, following the teacher's CompileError/BuildError
// wrap-with-context idiom.
type DistanceError struct {
	Op  string
	Err error
}

func (e *DistanceError) Error() string {
	return fmt.Sprintf("editdist: %s: %v", e.Op, e.Err)
}

func (e *DistanceError) Unwrap() error {
	return e.Err
}
