// Package expand runs the full pipeline from range notation text to the
// generated terms.
package expand

import (
	"context"
	"fmt"

	"github.com/samcharles93/intseq/internal/format"
	"github.com/samcharles93/intseq/internal/logger"
	"github.com/samcharles93/intseq/internal/parser"
	"github.com/samcharles93/intseq/internal/sequence"
)

// Result is one completed expansion.
type Result struct {
	Input   string
	Request parser.Request
	Model   sequence.Kind
	// Source names the database record for lookup models.
	Source string
	Terms  []int64
}

// Literal renders the terms in style.
func (r Result) Literal(style format.Style) string {
	return format.Format(r.Terms, style)
}

// Expander ties the parser to an Inferrer.
type Expander struct {
	Inferrer *sequence.Inferrer
}

// DefaultMaxTerms is the sequence length limit New installs.
const DefaultMaxTerms = 1 << 20

// New returns an Expander querying db when no affine model fits. A nil db
// restricts it to affine progressions. Sequences longer than
// DefaultMaxTerms are rejected; set Inferrer.MaxTerms to change that.
func New(db sequence.Database, log logger.Logger) *Expander {
	return &Expander{Inferrer: &sequence.Inferrer{DB: db, Log: log, MaxTerms: DefaultMaxTerms}}
}

// Expand parses src and generates the sequence it denotes.
func (e *Expander) Expand(ctx context.Context, src string) (Result, error) {
	req, err := parser.ParseString(src)
	if err != nil {
		return Result{}, err
	}
	return e.ExpandRequest(ctx, src, req)
}

// ExpandRequest generates the sequence for an already parsed request.
func (e *Expander) ExpandRequest(ctx context.Context, src string, req parser.Request) (Result, error) {
	log := logger.FromContext(ctx)
	log.Debug("parsed sequence", "prefix", req.Prefix, "end", req.End, "inclusive", req.Inclusive)

	inf := e.Inferrer
	if inf == nil {
		inf = &sequence.Inferrer{}
	}
	m, terms, err := inf.InferAndGenerate(ctx, req.Prefix, req.End)
	if err != nil {
		return Result{}, fmt.Errorf("expand %q: %w", src, err)
	}

	res := Result{
		Input:   src,
		Request: req,
		Model:   m.Kind(),
		Terms:   terms,
	}
	if c, ok := m.(sequence.Candidate); ok {
		res.Source = c.ID
	}
	log.Debug("expanded sequence", "model", res.Model, "source", res.Source, "terms", len(terms))
	return res, nil
}
