package cose

import "errors"

// Decoding errors. Call sites wrap these with field context via
// fmt.Errorf("%w: ...") so errors.Is still matches the class.
var (
	// ErrInvalidMap reports input that is not a definite-length CBOR map.
	ErrInvalidMap = errors.New("cose: not a definite-length CBOR map")

	// ErrTruncated reports a map header claiming more entries than the
	// input could possibly hold.
	ErrTruncated = errors.New("cose: truncated key record")

	// ErrFieldOrder reports a known field appearing out of canonical
	// order or more than once.
	ErrFieldOrder = errors.New("cose: key fields out of canonical order")

	// ErrMissingField reports a field the key type requires but the
	// record does not carry.
	ErrMissingField = errors.New("cose: missing required field")

	// ErrInvalidValue reports a field value outside the registry, or one
	// that does not match the key type's fixed constants.
	ErrInvalidValue = errors.New("cose: invalid field value")

	// ErrPayloadSize reports a byte payload whose length does not fit
	// the key type's fixed buffer.
	ErrPayloadSize = errors.New("cose: payload size mismatch")

	// ErrUnsupportedKey reports an operation not defined for the given
	// key type, such as thumbprints of symmetric keys.
	ErrUnsupportedKey = errors.New("cose: unsupported key type")
)
