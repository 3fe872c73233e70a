package pdffer

import (
	"errors"
	"fmt"
)

// Sentinel errors for template lifecycle and factory operations.
// All use prefix "pdffer:" for identification. Callers should use errors.Is/errors.As.
var (
	ErrMissingPayload   = errors.New("pdffer: no payload has been set on the template")
	ErrPayloadFormat    = errors.New("pdffer: payload representation cannot be converted to the payload type")
	ErrPayloadInvalid   = errors.New("pdffer: payload failed template validation")
	ErrNoRenderer       = errors.New("pdffer: template has no renderer configured")
	ErrRender           = errors.New("pdffer: document rendering failed")
	ErrTemplateNotFound = errors.New("pdffer: template not found in factory")
)

// PayloadFormatError wraps a conversion failure with the offending input:
// Map when SetPayloadFromMap failed (possibly a nil map), Text when
// SetPayloadFromText failed. Use errors.Is(err, ErrPayloadFormat) and
// errors.As(err, &formatErr) to inspect.
type PayloadFormatError struct {
	Map  map[string]any
	Text string
	Err  error

	// fromMap records which entry point failed, so a nil map is still
	// reported as a map failure.
	fromMap bool
}

// Error implements error.
func (e *PayloadFormatError) Error() string {
	if e.fromMap {
		return fmt.Sprintf("pdffer: cannot convert map payload: %v", e.Err)
	}
	return fmt.Sprintf("pdffer: cannot convert text payload: %v", e.Err)
}

// Unwrap returns the underlying mapper failure for errors.Is/errors.As.
func (e *PayloadFormatError) Unwrap() error { return e.Err }

// Is reports ErrPayloadFormat so callers can match without errors.As.
func (e *PayloadFormatError) Is(target error) bool { return target == ErrPayloadFormat }

// Source returns the representation that caused the failure: the map if the
// failure came from SetPayloadFromMap, otherwise the text.
func (e *PayloadFormatError) Source() any {
	if e.fromMap {
		return e.Map
	}
	return e.Text
}

// Compile-time check that PayloadFormatError implements error.
var _ error = (*PayloadFormatError)(nil)
