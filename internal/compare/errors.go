package compare

import "fmt"

// Kind classifies a comparison failure so callers can branch on the
// category instead of matching message strings.
type Kind int

const (
	// KindMalformedLocator means the remote URI could not be parsed.
	KindMalformedLocator Kind = iota + 1
	// KindLocalRead means the local file could not be read or decoded.
	KindLocalRead
	// KindRemoteRead means the remote object could not be fetched or decoded.
	KindRemoteRead
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMalformedLocator:
		return "malformed locator"
	case KindLocalRead:
		return "local read error"
	case KindRemoteRead:
		return "remote read error"
	default:
		return fmt.Sprintf("unknown kind %d", int(k))
	}
}

// Error is a comparison failure tagged with its category.
// It wraps the underlying cause.
type Error struct {
	Kind Kind
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying cause for errors.Is/As matching.
func (e *Error) Unwrap() error {
	return e.Err
}
