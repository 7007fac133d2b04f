package furigana

import (
	"context"
	"iter"
	"slices"
)

type options struct {
	maxResults int
	foldKana   bool
	tracer     *SearchTracer
}

// Option configures a segmentation.
type Option func(*options)

// WithMaxResults stops the search after n mappings. The search space grows
// combinatorially with runs of kanji, so callers handling untrusted input
// should set a cap. n <= 0 means unlimited.
func WithMaxResults(n int) Option {
	return func(o *options) {
		o.maxResults = n
	}
}

// WithKanaFolding lets the kana of the word match the reading regardless of
// script, e.g. 離れる with ハナレル.
func WithKanaFolding() Option {
	return func(o *options) {
		o.foldKana = true
	}
}

// WithTracer logs search events through t.
func WithTracer(t *SearchTracer) Option {
	return func(o *options) {
		o.tracer = t
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// search is the state of one depth-first walk over the reading.
type search struct {
	ctx     context.Context
	word    Word
	reading []rune
	// minRest[i] is the least number of reading characters word[i:] can
	// consume: one per character, kana exactly one and the rest at least one.
	minRest []int
	opts    options
	path    Mapping
	emitted int
}

func newSearch(ctx context.Context, word Word, reading []rune, opts options) *search {
	minRest := make([]int, len(word)+1)
	for i := len(word) - 1; i >= 0; i-- {
		minRest[i] = minRest[i+1] + 1
	}
	return &search{
		ctx:     ctx,
		word:    word,
		reading: reading,
		minRest: minRest,
		opts:    opts,
		path:    make(Mapping, 0, len(word)),
	}
}

// walk assigns a reading to word[wi] starting at reading[ri] and recurses.
// It returns false once the enumeration must stop.
func (s *search) walk(wi, ri int, yield func(Mapping) bool) bool {
	if s.ctx.Err() != nil {
		return false
	}
	if wi == len(s.word) {
		if ri != len(s.reading) {
			s.opts.tracer.pruned(s.word, wi, "reading left over")
			return true
		}
		s.emitted++
		m := slices.Clone(s.path)
		s.opts.tracer.candidate(s.word, m)
		if !yield(m) {
			return false
		}
		return s.opts.maxResults <= 0 || s.emitted < s.opts.maxResults
	}

	c := s.word[wi]
	if c.Kind == KindKana {
		if ri >= len(s.reading) || !s.kanaMatch(c.Rune, s.reading[ri]) {
			s.opts.tracer.pruned(s.word, wi, "kana mismatch")
			return true
		}
		return s.descend(c, wi, ri, 1, yield)
	}

	for n := 1; ri+n+s.minRest[wi+1] <= len(s.reading); n++ {
		if !s.descend(c, wi, ri, n, yield) {
			return false
		}
	}
	return true
}

func (s *search) descend(c Char, wi, ri, n int, yield func(Mapping) bool) bool {
	s.path = append(s.path, newPart(c, string(s.reading[ri:ri+n])))
	ok := s.walk(wi+1, ri+n, yield)
	s.path = s.path[:len(s.path)-1]
	return ok
}

func (s *search) kanaMatch(want, got rune) bool {
	if s.opts.foldKana {
		return kanaEqual(want, got)
	}
	return want == got
}

// enumerate returns the lazy sequence of mappings. Each range over it starts
// a fresh search.
func enumerate(ctx context.Context, word Word, reading []rune, opts options) iter.Seq[Mapping] {
	return func(yield func(Mapping) bool) {
		s := newSearch(ctx, word, reading, opts)
		s.walk(0, 0, yield)
		opts.tracer.done(word, s.emitted)
	}
}
