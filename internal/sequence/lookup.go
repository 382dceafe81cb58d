package sequence

import (
	"context"
	"slices"
)

// Candidate is one record returned by a Database.
type Candidate struct {
	// ID names the record in its database, e.g. "A000079". It may be empty.
	ID string
	// Data holds the record's known terms in order.
	Data []int64
	// Truncated reports that the record continues with a positive term
	// outside the int64 range. Such a term is above any bound.
	Truncated bool
}

// Database looks up records whose data contains key. Results are ordered
// by relevance. An empty result is not an error.
type Database interface {
	Lookup(ctx context.Context, key []int64) ([]Candidate, error)
}

// InferLookup queries db once and picks the first candidate. ok is false
// when the database has no match.
func InferLookup(ctx context.Context, db Database, prefix []int64) (Candidate, bool, error) {
	candidates, err := db.Lookup(ctx, prefix)
	if err != nil {
		return Candidate{}, false, err
	}
	if len(candidates) == 0 {
		return Candidate{}, false, nil
	}
	return candidates[0], true, nil
}

func (Candidate) Kind() Kind { return KindLookup }

// Generate copies the candidate's data from the first window equal to
// prefix up to, but excluding, the first term >= end.
func (c Candidate) Generate(prefix []int64, end int64) ([]int64, error) {
	start := c.indexOf(prefix)
	if start < 0 {
		return nil, &MatchError{Err: ErrPrefixNotFound, Prefix: prefix, End: end, Data: c.Data}
	}
	for i, x := range c.Data[start:] {
		if x >= end {
			return slices.Clone(c.Data[start : start+i]), nil
		}
	}
	if c.Truncated {
		return slices.Clone(c.Data[start:]), nil
	}
	return nil, &MatchError{Err: ErrDataExhausted, Prefix: prefix, End: end, Data: c.Data}
}

func (c Candidate) indexOf(prefix []int64) int {
	for i := 0; i+len(prefix) <= len(c.Data); i++ {
		if slices.Equal(c.Data[i:i+len(prefix)], prefix) {
			return i
		}
	}
	return -1
}
