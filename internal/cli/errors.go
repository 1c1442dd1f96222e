package cli

import (
	"errors"
	"fmt"

	"github.com/rsuth/clisurf/internal/domain"
)

// userError carries the message shown on stderr while keeping the cause inspectable.
type userError struct {
	msg string
	err error
}

func (e *userError) Error() string { return e.msg }
func (e *userError) Unwrap() error { return e.err }

// describe maps err to a distinct message per failure kind.
func describe(station string, err error) error {
	var ce *domain.ConfigError
	if errors.As(err, &ce) {
		return &userError{msg: fmt.Sprintf("invalid configuration: %v", ce), err: err}
	}

	kind, ok := domain.KindOf(err)
	if !ok {
		return err
	}

	var msg string
	switch kind {
	case domain.KindStationNotFound:
		msg = fmt.Sprintf("station %q not found", station)
	case domain.KindTransport:
		msg = fmt.Sprintf("could not reach the swell service: %v", rootCause(err))
	case domain.KindIO:
		msg = fmt.Sprintf("failed to read the swell service response: %v", rootCause(err))
	case domain.KindMalformedPayload:
		msg = fmt.Sprintf("unexpected data for station %q: %v", station, rootCause(err))
	case domain.KindInvalidTimestamp:
		msg = fmt.Sprintf("invalid reading time for station %q: %v", station, rootCause(err))
	default:
		msg = err.Error()
	}
	return &userError{msg: msg, err: err}
}

// rootCause strips OpError layers so messages show the underlying failure only.
func rootCause(err error) error {
	for {
		var oe *domain.OpError
		if !errors.As(err, &oe) || oe.Err == nil {
			return err
		}
		err = oe.Err
	}
}
