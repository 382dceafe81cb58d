package sequence

// Affine is the progression term(i) = A*i + B.
type Affine struct {
	A int64
	B int64
}

// InferAffine fits an affine progression to prefix. A single term yields
// the consecutive integers starting at it. Prefixes that are not exactly
// affine, or whose terms overflow int64, do not fit.
func InferAffine(prefix []int64) (Affine, bool) {
	switch len(prefix) {
	case 0:
		return Affine{}, false
	case 1:
		return Affine{A: 1, B: prefix[0]}, true
	}
	b := prefix[0]
	a, ok := subInt64(prefix[1], b)
	if !ok {
		return Affine{}, false
	}
	m := Affine{A: a, B: b}
	for i, x := range prefix {
		term, ok := m.term(int64(i))
		if !ok || term != x {
			return Affine{}, false
		}
	}
	return m, true
}

func (Affine) Kind() Kind { return KindAffine }

// Generate starts the progression at the first prefix term.
func (m Affine) Generate(prefix []int64, end int64) ([]int64, error) {
	start := m.B
	if len(prefix) > 0 {
		start = prefix[0]
	}
	return m.Range(start, end)
}

// Range returns start, start+A, ... while the value is below end. start
// must lie on the progression and must not exceed end.
func (m Affine) Range(start, end int64) ([]int64, error) {
	fail := func(reason string) error {
		return &GenerateError{Model: m, Start: start, End: end, Reason: reason}
	}
	if start > end {
		return nil, fail("start exceeds bound")
	}
	offset, ok := subInt64(start, m.B)
	if !ok {
		return nil, fail("start is off the progression")
	}
	if m.A == 0 {
		if offset != 0 {
			return nil, fail("start is off the progression")
		}
	} else if offset%m.A != 0 {
		return nil, fail("start is off the progression")
	}
	if start == end {
		return []int64{}, nil
	}
	if m.A == 0 {
		return nil, fail("zero slope over a non-empty range")
	}
	if m.A < 0 {
		return nil, fail("negative slope never reaches the bound")
	}

	seq := make([]int64, 0, expectedLen(start, end, m.A))
	for cur := start; cur < end; {
		seq = append(seq, cur)
		next, ok := addInt64(cur, m.A)
		if !ok {
			break
		}
		cur = next
	}
	return seq, nil
}

// Count reports how many terms Range(start, end) produces when it
// succeeds. Requests Range rejects count as zero.
func (m Affine) Count(start, end int64) uint64 {
	if start >= end || m.A <= 0 {
		return 0
	}
	span := uint64(end) - uint64(start)
	n := span / uint64(m.A)
	if span%uint64(m.A) != 0 {
		n++
	}
	return n
}

func (m Affine) term(i int64) (int64, bool) {
	ai, ok := mulInt64(m.A, i)
	if !ok {
		return 0, false
	}
	return addInt64(ai, m.B)
}

// expectedLen estimates the output length for preallocation, capped so a
// huge bound does not allocate up front.
func expectedLen(start, end, step int64) int {
	const maxPrealloc = 1 << 16
	span, ok := subInt64(end, start)
	if !ok {
		return maxPrealloc
	}
	n := span/step + 1
	if n > maxPrealloc {
		return maxPrealloc
	}
	return int(n)
}
