package furigana

import (
	"strings"
	"unicode/utf8"
)

// Position locates a segment inside its word, for rules that only apply at
// morpheme boundaries.
type Position struct {
	Index int
	Len   int
}

// First reports whether the segment starts the word.
func (p Position) First() bool { return p.Index == 0 }

// Last reports whether the segment ends the word.
func (p Position) Last() bool { return p.Index == p.Len-1 }

// Rule recognizes a sound change between a known reading and the reading
// actually assigned to a character. Both strings are in hiragana. The known
// reading is dot-free, Stem holds the part before an okurigana marker.
type Rule struct {
	Name     string
	Accuracy Accuracy
	Match    func(known KnownReading, actual string, at Position) bool
}

// KnownReading is a dictionary reading split at its okurigana marker:
// "た.べる" gives Stem "た" and Full "たべる".
type KnownReading struct {
	Stem string
	Full string
}

// HasOkurigana reports whether the dictionary entry marked okurigana.
func (k KnownReading) HasOkurigana() bool {
	return k.Stem != k.Full
}

// parseKnown normalizes a KANJIDIC style entry: "-" marks a prefix or
// suffix form and "." separates the okurigana.
func parseKnown(s string) KnownReading {
	s = ToHiragana(strings.Trim(s, "-"))
	stem, okurigana, _ := strings.Cut(s, ".")
	return KnownReading{Stem: stem, Full: stem + okurigana}
}

// DefaultRules returns the alternation rules tried, in order, when a
// reading is not an exact match. Lexicalized readings such as 大人 おとな
// are out of their reach.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "rendaku", Accuracy: AccuracyAlternation, Match: matchRendaku},
		{Name: "gemination", Accuracy: AccuracyAlternation, Match: matchGemination},
		{Name: "long-vowel", Accuracy: AccuracyAlternation, Match: matchLongVowel},
		{Name: "okurigana", Accuracy: AccuracyAlternation, Match: matchOkurigana},
	}
}

var voiced = map[rune]string{
	'か': "が", 'き': "ぎ", 'く': "ぐ", 'け': "げ", 'こ': "ご",
	'さ': "ざ", 'し': "じ", 'す': "ず", 'せ': "ぜ", 'そ': "ぞ",
	'た': "だ", 'ち': "ぢじ", 'つ': "づず", 'て': "で", 'と': "ど",
	'は': "ばぱ", 'ひ': "びぴ", 'ふ': "ぶぷ", 'へ': "べぺ", 'ほ': "ぼぽ",
}

// matchRendaku: the first consonant is voiced at a morpheme boundary, 花火
// はな+び. Never at the start of a word.
func matchRendaku(known KnownReading, actual string, at Position) bool {
	if at.First() {
		return false
	}
	for _, k := range known.forms() {
		kr, kn := utf8.DecodeRuneInString(k)
		ar, an := utf8.DecodeRuneInString(actual)
		if kn == 0 || an == 0 {
			continue
		}
		if strings.ContainsRune(voiced[kr], ar) && k[kn:] == actual[an:] {
			return true
		}
	}
	return false
}

// matchGemination: a final く/ち/つ/き becomes っ before the next character,
// 格好 かく+こう -> かっこう. Never at the end of a word.
func matchGemination(known KnownReading, actual string, at Position) bool {
	if at.Last() || !strings.HasSuffix(actual, "っ") {
		return false
	}
	head := strings.TrimSuffix(actual, "っ")
	for _, k := range known.forms() {
		kr, kn := utf8.DecodeLastRuneInString(k)
		if kn == 0 {
			continue
		}
		switch kr {
		case 'く', 'ち', 'つ', 'き':
			if k[:len(k)-kn] == head {
				return true
			}
		}
	}
	return false
}

// matchLongVowel: the readings agree once vowel extensions are collapsed,
// covering ー spellings and contractions like こう -> こ.
func matchLongVowel(known KnownReading, actual string, _ Position) bool {
	a := collapseLongVowels(actual)
	for _, k := range known.forms() {
		if collapseLongVowels(k) == a {
			return true
		}
	}
	return false
}

// matchOkurigana: the reading is cut where the okurigana starts, 話し
// with はなす read はな, or the okurigana of a marked entry is partially
// absorbed into the character, 話 はな.す read はなし.
func matchOkurigana(known KnownReading, actual string, _ Position) bool {
	if actual == "" {
		return false
	}
	if len(actual) < len(known.Full) && strings.HasPrefix(known.Full, actual) {
		return true
	}
	if !known.HasOkurigana() {
		return false
	}
	return len(actual) > len(known.Stem) &&
		strings.HasPrefix(actual, known.Stem) &&
		utf8.RuneCountInString(actual) <= utf8.RuneCountInString(known.Full)
}

// forms lists the spellings a rule may compare against.
func (k KnownReading) forms() []string {
	if k.HasOkurigana() {
		return []string{k.Stem, k.Full}
	}
	return []string{k.Full}
}

func collapseLongVowels(s string) string {
	var b strings.Builder
	var prev rune
	for _, r := range s {
		if prev != 0 && extends(prev, r) {
			continue
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}
