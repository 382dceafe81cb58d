package oeis

import (
	"errors"
	"fmt"
)

var (
	ErrProtocol      = errors.New("unexpected OEIS response")
	ErrMalformedData = errors.New("malformed OEIS data field")
)

// ProtocolError reports a response that is not a list of records.
type ProtocolError struct {
	Status int // HTTP status, 0 when the body was the problem
	Detail string
}

func (e *ProtocolError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%v: HTTP %d: %s", ErrProtocol, e.Status, e.Detail)
	}
	return fmt.Sprintf("%v: %s", ErrProtocol, e.Detail)
}

func (e *ProtocolError) Unwrap() error { return ErrProtocol }

// DataError reports a term of a record's data field that is not an integer.
type DataError struct {
	ID    string
	Index int
	Text  string
}

func (e *DataError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%v: unable to parse %q (term %d of %s) as integer", ErrMalformedData, e.Text, e.Index, e.ID)
	}
	return fmt.Sprintf("%v: unable to parse %q (term %d) as integer", ErrMalformedData, e.Text, e.Index)
}

func (e *DataError) Unwrap() error { return ErrMalformedData }
