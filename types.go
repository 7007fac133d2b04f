package furigana

import "strings"

// Kind tells whether a character is read literally or needs a reading.
type Kind int

const (
	KindBase Kind = iota // kanji, digits, latin letters, punctuation...
	KindKana             // hiragana and katakana, read as written
)

func (k Kind) String() string {
	if k == KindKana {
		return "kana"
	}
	return "base"
}

// Char is a single character of a word with its classification.
type Char struct {
	Rune rune
	Kind Kind
}

// NewChar classifies r.
func NewChar(r rune) Char {
	return Char{Rune: r, Kind: Classify(r)}
}

// Word is a written word, one Char per Unicode scalar, in reading order.
type Word []Char

// NewWord splits s into classified characters.
func NewWord(s string) Word {
	word := make(Word, 0, len(s)/3)
	for _, r := range s {
		word = append(word, NewChar(r))
	}
	return word
}

func (w Word) String() string {
	var b strings.Builder
	for _, c := range w {
		b.WriteRune(c.Rune)
	}
	return b.String()
}

// Part pairs one character of the word with the slice of the reading
// assigned to it.
type Part struct {
	Char    Char   `json:"-"`
	Text    string `json:"text"`
	Reading string `json:"reading"`
}

func newPart(c Char, reading string) Part {
	return Part{Char: c, Text: string(c.Rune), Reading: reading}
}

// Furigana returns the annotation to print above the character. Kana never
// need one.
func (s Part) Furigana() string {
	if s.Char.Kind == KindKana {
		return ""
	}
	return s.Reading
}

// Mapping assigns a slice of the reading to every character of a word.
// Concatenating the segment readings gives back the full reading.
type Mapping []Part

// Word returns the written form.
func (m Mapping) Word() string {
	var b strings.Builder
	for _, s := range m {
		b.WriteRune(s.Char.Rune)
	}
	return b.String()
}

// Reading returns the concatenated reading.
func (m Mapping) Reading() string {
	var b strings.Builder
	for _, s := range m {
		b.WriteString(s.Reading)
	}
	return b.String()
}

// FuriganaParts returns the annotation of every character, "" for kana.
func (m Mapping) FuriganaParts() (parts []string) {
	for _, s := range m {
		parts = append(parts, s.Furigana())
	}
	return
}

// String renders the mapping as HTML ruby markup.
func (m Mapping) String() string {
	return Render(m)
}

// ReadingDictionary maps a character to its known readings, e.g. as listed
// in KANJIDIC2. It is owned by the caller and never modified by the grader.
type ReadingDictionary map[rune][]string

// Add appends readings for r.
func (d ReadingDictionary) Add(r rune, readings ...string) {
	d[r] = append(d[r], readings...)
}

// Lookup returns the readings known for r.
func (d ReadingDictionary) Lookup(r rune) ([]string, bool) {
	readings, ok := d[r]
	return readings, ok && len(readings) > 0
}

// Accuracy is a relative plausibility score, only meaningful when comparing
// mappings of the same word. Higher is better.
type Accuracy int

const (
	AccuracyInaccurate  Accuracy = -2
	AccuracyUnknown     Accuracy = 0
	AccuracyAlternation Accuracy = 1
	AccuracyExact       Accuracy = 2
)

// Status describes how a segment's reading relates to the known readings.
type Status int

const (
	StatusKana        Status = iota // kana, correct by construction
	StatusExact                     // identical to a known reading
	StatusAlternation               // a known reading after a sound change
	StatusInaccurate                // no known reading fits
	StatusUnknown                   // nothing is known about the character
)

// String provides human-readable status descriptions
func (s Status) String() string {
	return map[Status]string{
		StatusKana:        "Kana (read as written)",
		StatusExact:       "Exact (known reading)",
		StatusAlternation: "Alternation (known reading with sound change)",
		StatusInaccurate:  "Inaccurate (no known reading fits)",
		StatusUnknown:     "Unknown (no reading data)",
	}[s]
}

// Verdict is the grading of a single segment.
type Verdict struct {
	Status   Status   `json:"status"`
	Rule     string   `json:"rule,omitempty"` // alternation rule that matched
	Accuracy Accuracy `json:"accuracy"`
}

// Graded is a mapping along with its accuracy against a dictionary.
type Graded struct {
	Mapping  Mapping   `json:"mapping"`
	Accuracy Accuracy  `json:"accuracy"`
	Verdicts []Verdict `json:"verdicts"`
}
