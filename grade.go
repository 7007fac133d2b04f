package furigana

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"unicode/utf8"
)

// Grader scores mappings against known per-character readings.
// It is safe for concurrent use.
type Grader struct {
	dict  ReadingDictionary
	rules []Rule
}

// GraderOption configures a Grader.
type GraderOption func(*Grader)

// WithRules replaces the alternation rule table.
func WithRules(rules ...Rule) GraderOption {
	return func(g *Grader) {
		g.rules = slices.Clone(rules)
	}
}

// WithExtraRules appends rules after the current table.
func WithExtraRules(rules ...Rule) GraderOption {
	return func(g *Grader) {
		g.rules = append(g.rules, rules...)
	}
}

// NewGrader returns a grader over dict, which may be nil. Rule accuracies
// are clamped strictly between AccuracyUnknown and AccuracyExact.
func NewGrader(dict ReadingDictionary, opts ...GraderOption) *Grader {
	g := &Grader{dict: dict, rules: DefaultRules()}
	for _, opt := range opts {
		opt(g)
	}
	for i, r := range g.rules {
		clamped := min(max(r.Accuracy, AccuracyUnknown+1), AccuracyExact-1)
		if clamped != r.Accuracy {
			Logger.Debug().Msgf("rule %q: accuracy %d clamped to %d", r.Name, r.Accuracy, clamped)
			g.rules[i].Accuracy = clamped
		}
	}
	return g
}

// Score returns the accuracy of m.
func (g *Grader) Score(m Mapping) Accuracy {
	return g.Grade(m).Accuracy
}

// Grade scores every segment of m and sums the result.
func (g *Grader) Grade(m Mapping) Graded {
	graded := Graded{
		Mapping:  m,
		Verdicts: make([]Verdict, len(m)),
	}
	var previousBase, previousKana rune
	for i, seg := range m {
		at := Position{Index: i, Len: len(m)}
		var v Verdict
		switch {
		case seg.Char.Kind == KindKana:
			v = Verdict{Status: StatusKana, Accuracy: AccuracyExact}
		case isKanaRepeat(seg.Char.Rune):
			v = judgeKanaRepeat(previousKana, seg.Char.Rune, seg.Reading)
		case seg.Char.Rune == iterationMark && previousBase != 0:
			// 々 repeats the character before it
			v = g.judge(previousBase, seg.Reading, at)
		default:
			v = g.judge(seg.Char.Rune, seg.Reading, at)
			previousBase = seg.Char.Rune
		}
		graded.Verdicts[i] = v
		graded.Accuracy += v.Accuracy
		previousKana, _ = utf8.DecodeLastRuneInString(ToHiragana(seg.Reading))
	}
	return graded
}

// judgeKanaRepeat grades ゝ/ヽ, which repeat the kana read before them, and
// ゞ/ヾ, which repeat it voiced: いすゞ いすず.
func judgeKanaRepeat(previous, mark rune, reading string) Verdict {
	if previous == 0 || previous == utf8.RuneError {
		return Verdict{Status: StatusUnknown, Accuracy: AccuracyUnknown}
	}
	actual := ToHiragana(reading)
	plain := actual == string(previous)
	voicedForm := utf8.RuneCountInString(actual) == 1 &&
		strings.ContainsRune(voiced[previous], []rune(actual)[0])

	switch {
	case plain && !isVoicedRepeat(mark), voicedForm && isVoicedRepeat(mark):
		return Verdict{Status: StatusExact, Accuracy: AccuracyExact}
	case plain, voicedForm:
		return Verdict{Status: StatusAlternation, Rule: "iteration", Accuracy: AccuracyAlternation}
	}
	return Verdict{Status: StatusInaccurate, Accuracy: AccuracyInaccurate}
}

// judge applies the layered policy: exact match, then the first rule that
// matches, then inaccurate.
func (g *Grader) judge(r rune, reading string, at Position) Verdict {
	entries, ok := g.dict.Lookup(r)
	if !ok {
		entries, ok = builtinReadings(r)
	}
	if !ok {
		return Verdict{Status: StatusUnknown, Accuracy: AccuracyUnknown}
	}

	actual := ToHiragana(reading)
	known := make([]KnownReading, 0, len(entries))
	for _, e := range entries {
		k := parseKnown(e)
		if k.Full == "" {
			continue
		}
		if actual == k.Stem || actual == k.Full {
			return Verdict{Status: StatusExact, Accuracy: AccuracyExact}
		}
		known = append(known, k)
	}

	for _, rule := range g.rules {
		for _, k := range known {
			if rule.Match(k, actual, at) {
				return Verdict{Status: StatusAlternation, Rule: rule.Name, Accuracy: rule.Accuracy}
			}
		}
	}
	return Verdict{Status: StatusInaccurate, Accuracy: AccuracyInaccurate}
}

// Rank grades every mapping of seq and sorts them by accuracy, best first.
// Ties keep their enumeration order.
func (g *Grader) Rank(seq iter.Seq[Mapping]) []Graded {
	var ranked []Graded
	for m := range seq {
		ranked = append(ranked, g.Grade(m))
	}
	slices.SortStableFunc(ranked, func(a, b Graded) int {
		return int(b.Accuracy) - int(a.Accuracy)
	})
	return ranked
}

// Best returns the most accurate mapping of seq, the earliest one on ties.
func (g *Grader) Best(seq iter.Seq[Mapping]) (Graded, error) {
	var (
		best  Graded
		found bool
	)
	for m := range seq {
		graded := g.Grade(m)
		if !found || graded.Accuracy > best.Accuracy {
			best, found = graded, true
		}
	}
	if !found {
		return Graded{}, fmt.Errorf("best: %w", ErrNoCandidates)
	}
	return best, nil
}

// Score grades m against dict with the default rules.
func Score(m Mapping, dict ReadingDictionary) Accuracy {
	return NewGrader(dict).Score(m)
}

// Rank sorts mappings by accuracy against dict, best first.
func Rank(mappings []Mapping, dict ReadingDictionary) []Graded {
	return NewGrader(dict).Rank(slices.Values(mappings))
}

// Best returns the most accurate of mappings. An empty slice is an error.
func Best(mappings []Mapping, dict ReadingDictionary) (Graded, error) {
	return NewGrader(dict).Best(slices.Values(mappings))
}
