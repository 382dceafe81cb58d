package sequence

import (
	"errors"
	"fmt"
)

var (
	ErrNoModel        = errors.New("no model could explain the prefix")
	ErrDegenerate     = errors.New("degenerate generation request")
	ErrPrefixNotFound = errors.New("prefix not found in candidate data")
	ErrDataExhausted  = errors.New("candidate data exhausted before bound")
	ErrTooManyTerms   = errors.New("too many terms")
)

// NoModelError is returned when neither model fits a prefix.
type NoModelError struct {
	Prefix []int64
}

func (e *NoModelError) Error() string {
	return fmt.Sprintf("%v %v", ErrNoModel, e.Prefix)
}

func (e *NoModelError) Unwrap() error { return ErrNoModel }

// GenerateError is returned when an affine model is asked for a range it
// cannot produce.
type GenerateError struct {
	Model  Affine
	Start  int64
	End    int64
	Reason string
}

func (e *GenerateError) Error() string {
	return fmt.Sprintf("%v: %s (a=%d b=%d start=%d end=%d)", ErrDegenerate, e.Reason, e.Model.A, e.Model.B, e.Start, e.End)
}

func (e *GenerateError) Unwrap() error { return ErrDegenerate }

// MatchError is returned when a candidate cannot reproduce the prefix or
// does not reach the bound.
type MatchError struct {
	Err    error
	Prefix []int64
	End    int64
	Data   []int64
}

func (e *MatchError) Error() string {
	if errors.Is(e.Err, ErrDataExhausted) {
		return fmt.Sprintf("%v: upper bound %d, data %v", e.Err, e.End, e.Data)
	}
	return fmt.Sprintf("%v: prefix %v, data %v", e.Err, e.Prefix, e.Data)
}

func (e *MatchError) Unwrap() error { return e.Err }

// LimitError is returned when a sequence would have more terms than an
// Inferrer allows.
type LimitError struct {
	Terms uint64
	Limit int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("%v: expansion has %d terms, limit is %d", ErrTooManyTerms, e.Terms, e.Limit)
}

func (e *LimitError) Unwrap() error { return ErrTooManyTerms }
