package expand

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/samcharles93/intseq/internal/format"
	"github.com/samcharles93/intseq/internal/logger"
	"github.com/samcharles93/intseq/internal/oeis"
	"github.com/samcharles93/intseq/internal/parser"
	"github.com/samcharles93/intseq/internal/sequence"
)

// fakeDatabase answers lookups from a table keyed by the OEIS query string.
type fakeDatabase map[string][]sequence.Candidate

func (f fakeDatabase) Lookup(_ context.Context, key []int64) ([]sequence.Candidate, error) {
	return f[oeis.Query(key)], nil
}

var testDB = fakeDatabase{
	"1,2,4,8":   {{ID: "A000079", Data: []int64{1, 2, 4, 8, 16, 32}}},
	"-4,-9,4":   {{ID: "A999999", Data: []int64{7, -4, -9, 4, 11, 20, 31}}},
	"0,1,1,2,3": {{ID: "A000045", Data: []int64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144}}},
	"2,3,5,7":   {{ID: "A000040", Data: []int64{2, 3, 5, 7, 11, 13}}},
}

func newTestExpander() *Expander {
	return New(testDB, logger.Discard())
}

func TestExpand(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		in     string
		model  sequence.Kind
		source string
		want   []int64
	}{
		{name: "bare range", in: "1..5", model: sequence.KindAffine, want: []int64{1, 2, 3, 4}},
		{name: "inclusive", in: "3, 6..=12", model: sequence.KindAffine, want: []int64{3, 6, 9, 12}},
		{name: "progression", in: "57, 64, 71, 78, 85..100", model: sequence.KindAffine, want: []int64{57, 64, 71, 78, 85, 92, 99}},
		{name: "inclusive off lattice", in: "0, 5..=12", model: sequence.KindAffine, want: []int64{0, 5, 10}},
		{name: "powers of two", in: "1, 2, 4, 8..20", model: sequence.KindLookup, source: "A000079", want: []int64{1, 2, 4, 8, 16}},
		{name: "negative prefix", in: "-4, -9, 4..26", model: sequence.KindLookup, source: "A999999", want: []int64{-4, -9, 4, 11, 20}},
		{name: "fibonacci", in: "0, 1, 1, 2, 3..100", model: sequence.KindLookup, source: "A000045", want: []int64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89}},
		{name: "single element prefix", in: "7..=9", model: sequence.KindAffine, want: []int64{7, 8, 9}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res, err := newTestExpander().Expand(context.Background(), tc.in)
			if err != nil {
				t.Fatalf("Expand(%q): %v", tc.in, err)
			}
			if res.Model != tc.model || res.Source != tc.source {
				t.Fatalf("Expand(%q): model %v source %q, want %v %q", tc.in, res.Model, res.Source, tc.model, tc.source)
			}
			if diff := cmp.Diff(tc.want, res.Terms); diff != "" {
				t.Fatalf("Expand(%q) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}

func TestExpandInclusiveEndsOnBound(t *testing.T) {
	t.Parallel()

	e := newTestExpander()
	for _, in := range []string{"2, 4..=20", "5, 10, 15..=50", "-6, -3..=9"} {
		res, err := e.Expand(context.Background(), in)
		if err != nil {
			t.Fatalf("Expand(%q): %v", in, err)
		}
		last := res.Terms[len(res.Terms)-1]
		if last != res.Request.End-1 {
			t.Fatalf("Expand(%q): last term %d, want %d", in, last, res.Request.End-1)
		}
	}
}

func TestExpandIdempotent(t *testing.T) {
	t.Parallel()

	e := newTestExpander()
	for _, in := range []string{"1, 2, 4, 8..20", "57, 64, 71, 78, 85..100"} {
		first, err := e.Expand(context.Background(), in)
		if err != nil {
			t.Fatal(err)
		}
		second, err := e.Expand(context.Background(), in)
		if err != nil {
			t.Fatal(err)
		}
		if first.Literal(format.Array) != second.Literal(format.Array) {
			t.Fatalf("Expand(%q) is not idempotent: %s vs %s", in, first.Literal(format.Array), second.Literal(format.Array))
		}
	}
}

func TestExpandErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want error
	}{
		{name: "syntax", in: "1, 2, 3", want: parser.ErrSyntax},
		{name: "literal", in: "1, 2x..5", want: parser.ErrMalformedLiteral},
		{name: "no model", in: "1, 3, 9..100", want: sequence.ErrNoModel},
		{name: "data exhausted", in: "2, 3, 5, 7..100", want: sequence.ErrDataExhausted},
		{name: "zero slope", in: "4, 4..10", want: sequence.ErrDegenerate},
		{name: "decreasing", in: "10, 8..0", want: sequence.ErrDegenerate},
		{name: "default term limit", in: "0..9223372036854775807", want: sequence.ErrTooManyTerms},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := newTestExpander().Expand(context.Background(), tc.in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("Expand(%q): expected %v, got %v", tc.in, tc.want, err)
			}
		})
	}
}

func TestExpandOffline(t *testing.T) {
	t.Parallel()

	e := New(nil, logger.Discard())
	if _, err := e.Expand(context.Background(), "1, 2, 4, 8..20"); !errors.Is(err, sequence.ErrNoModel) {
		t.Fatalf("expected ErrNoModel offline, got %v", err)
	}
	res, err := e.Expand(context.Background(), "1..4")
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Literal(format.Array); got != "[1,2,3]" {
		t.Fatalf("got %s", got)
	}
}

func TestExpandMaxTerms(t *testing.T) {
	t.Parallel()

	e := New(nil, logger.Discard())
	if e.Inferrer.MaxTerms != DefaultMaxTerms {
		t.Fatalf("MaxTerms = %d, want %d", e.Inferrer.MaxTerms, DefaultMaxTerms)
	}
	e.Inferrer.MaxTerms = 3
	if _, err := e.Expand(context.Background(), "1..5"); !errors.Is(err, sequence.ErrTooManyTerms) {
		t.Fatalf("expected ErrTooManyTerms, got %v", err)
	}
	res, err := e.Expand(context.Background(), "1..=3")
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Literal(format.Array); got != "[1,2,3]" {
		t.Fatalf("got %s", got)
	}
}
