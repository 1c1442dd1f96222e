package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrStationNotFound  = errors.New("station not found")
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrMissingField     = errors.New("missing required field")
	ErrInvalidURL       = errors.New("invalid url")
	ErrBodyTooLarge     = errors.New("response body too large")
)

// ErrorKind classifies a failed fetch-and-parse cycle.
//
// The set is closed: every failure is mapped to one of these at the boundary
// where it happens. There is no catch-all kind.
type ErrorKind string

const (
	KindStationNotFound  ErrorKind = "station_not_found"
	KindTransport        ErrorKind = "transport"
	KindIO               ErrorKind = "io"
	KindMalformedPayload ErrorKind = "malformed_payload"
	KindInvalidTimestamp ErrorKind = "invalid_timestamp"
)

// Kinds lists every ErrorKind in a stable order.
func Kinds() []ErrorKind {
	return []ErrorKind{
		KindStationNotFound,
		KindTransport,
		KindIO,
		KindMalformedPayload,
		KindInvalidTimestamp,
	}
}

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op     string
	Kind   ErrorKind
	URL    string // Optional: request URL
	Status int    // Optional: HTTP status when one was received
	Err    error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.URL != "" {
		base += fmt.Sprintf(" (url=%s)", e.URL)
	}
	if e.Status != 0 {
		base += fmt.Sprintf(" (status=%d)", e.Status)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// KindOf returns the kind of the outermost OpError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind, true
	}
	return "", false
}

// IsParseFailure reports whether err came from decoding a payload rather than fetching it.
func IsParseFailure(err error) bool {
	return IsKind(err, KindMalformedPayload) || IsKind(err, KindInvalidTimestamp)
}

// ConfigError reports a problem with the configuration file. It never carries an ErrorKind.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Path != "" {
		return fmt.Sprintf("config (path=%s): %v", e.Path, e.Err)
	}
	return fmt.Sprintf("config: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
