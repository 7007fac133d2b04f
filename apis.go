// Package furigana maps the reading of a Japanese word onto its characters.
//
// Segment enumerates every way a reading can be split across a word, kana
// matching themselves and every other character taking a non-empty part of
// the reading. SegmentGraded additionally scores each split against known
// per-character readings (e.g. from KANJIDIC2) and sorts the splits so that
// the most plausible one comes first.
//
// The search is exhaustive and grows combinatorially with runs of kanji that
// have no kana between them: split text into words or short clauses first.
package furigana

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

var (
	Logger = zerolog.Nop()
	// Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).With().Timestamp().Logger()

	// ErrInvalidArgument is wrapped by every input validation error.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEmptyInput is returned when the word or the reading is empty.
	ErrEmptyInput = fmt.Errorf("%w: empty word or reading", ErrInvalidArgument)
	// ErrNoCandidates is returned when asking for the best of no mappings.
	ErrNoCandidates = fmt.Errorf("%w: no candidate mappings", ErrInvalidArgument)
)

// Segment returns all ways to map reading onto word. The sequence is lazy
// and may be ranged over several times; it is empty when the kana of the
// word cannot be found in the reading.
func Segment(word, reading string, opts ...Option) (iter.Seq[Mapping], error) {
	return SegmentWithContext(context.Background(), word, reading, opts...)
}

// SegmentWithContext is Segment with cooperative cancellation: the sequence
// ends early once ctx is done.
func SegmentWithContext(ctx context.Context, word, reading string, opts ...Option) (iter.Seq[Mapping], error) {
	if word == "" || reading == "" {
		return nil, fmt.Errorf("segment %q as %q: %w", word, reading, ErrEmptyInput)
	}
	if !utf8.ValidString(word) || !utf8.ValidString(reading) {
		return nil, fmt.Errorf("segment %q as %q: %w: invalid UTF-8", word, reading, ErrInvalidArgument)
	}
	o := buildOptions(opts)
	Logger.Debug().Msgf("segmenting %s (%s), max results %d", word, reading, o.maxResults)
	return enumerate(ctx, NewWord(word), []rune(reading), o), nil
}

// SegmentGraded returns all mappings of reading onto word sorted by accuracy
// against dict, best first.
func SegmentGraded(word, reading string, dict ReadingDictionary, opts ...Option) ([]Graded, error) {
	return SegmentGradedWithContext(context.Background(), word, reading, dict, opts...)
}

// SegmentGradedWithContext is SegmentGraded with cancellation. A cancelled
// search returns ctx.Err() rather than a partial ranking.
func SegmentGradedWithContext(ctx context.Context, word, reading string, dict ReadingDictionary, opts ...Option) ([]Graded, error) {
	seq, err := SegmentWithContext(ctx, word, reading, opts...)
	if err != nil {
		return nil, err
	}
	ranked := NewGrader(dict).Rank(seq)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("segment %q as %q: %w", word, reading, err)
	}
	Logger.Debug().Msgf("graded %d candidates for %s", len(ranked), word)
	return ranked, nil
}
