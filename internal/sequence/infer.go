package sequence

import (
	"context"

	"github.com/samcharles93/intseq/internal/logger"
)

// Inferrer picks a model for a prefix. A nil DB disables lookups, so only
// affine progressions can be explained.
type Inferrer struct {
	DB  Database
	Log logger.Logger
	// MaxTerms bounds the length of a generated sequence. Zero means no
	// limit.
	MaxTerms int
}

// Infer tries the affine model first and only queries the database when it
// does not fit.
func (inf *Inferrer) Infer(ctx context.Context, prefix []int64) (Model, error) {
	log := inf.logger(ctx)

	if m, ok := InferAffine(prefix); ok {
		log.Debug("affine model fits", "a", m.A, "b", m.B)
		return m, nil
	}
	if inf.DB == nil {
		log.Debug("prefix is not affine and lookups are disabled", "prefix", prefix)
		return nil, &NoModelError{Prefix: prefix}
	}

	c, ok, err := InferLookup(ctx, inf.DB, prefix)
	if err != nil {
		return nil, err
	}
	if !ok {
		log.Debug("database returned no candidates", "prefix", prefix)
		return nil, &NoModelError{Prefix: prefix}
	}
	log.Debug("using database candidate", "terms", len(c.Data), "truncated", c.Truncated)
	return c, nil
}

// InferAndGenerate infers a model for prefix and generates the terms below end.
func (inf *Inferrer) InferAndGenerate(ctx context.Context, prefix []int64, end int64) (Model, []int64, error) {
	m, err := inf.Infer(ctx, prefix)
	if err != nil {
		return nil, nil, err
	}
	// Affine ranges are checked before generating so a huge bound never
	// gets allocated.
	if a, ok := m.(Affine); ok && inf.MaxTerms > 0 {
		if n := a.Count(prefix[0], end); n > uint64(inf.MaxTerms) {
			return m, nil, &LimitError{Terms: n, Limit: inf.MaxTerms}
		}
	}
	seq, err := m.Generate(prefix, end)
	if err != nil {
		return m, nil, err
	}
	if inf.MaxTerms > 0 && len(seq) > inf.MaxTerms {
		return m, nil, &LimitError{Terms: uint64(len(seq)), Limit: inf.MaxTerms}
	}
	return m, seq, nil
}

func (inf *Inferrer) logger(ctx context.Context) logger.Logger {
	if inf.Log != nil {
		return inf.Log
	}
	return logger.FromContext(ctx)
}
