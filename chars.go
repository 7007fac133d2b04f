package furigana

import (
	"strings"
	"unicode"
)

const (
	hiraganaFirst = 0x3040
	hiraganaLast  = 0x309F
	katakanaFirst = 0x30A0
	katakanaLast  = 0x30FF

	// offset between a katakana and its hiragana counterpart
	kanaTableDistance = 0x60

	prolongedSoundMark = 'ー'
	iterationMark      = '々'
)

// kana iteration marks and the voiced variants
const (
	hiraganaRepeat       = 'ゝ'
	hiraganaRepeatVoiced = 'ゞ'
	katakanaRepeat       = 'ヽ'
	katakanaRepeatVoiced = 'ヾ'
)

// IsHiragana reports whether r is in the hiragana block.
func IsHiragana(r rune) bool {
	return r >= hiraganaFirst && r <= hiraganaLast
}

// IsKatakana reports whether r is in the katakana block.
func IsKatakana(r rune) bool {
	return r >= katakanaFirst && r <= katakanaLast
}

// Classify returns the Kind of r. Kana are read literally, everything else
// needs a reading assigned from outside.
func Classify(r rune) Kind {
	switch r {
	case 'ヶ', 'ヵ':
		// counters that look like katakana but are read か/が/こ
		return KindBase
	case '・', '゠', '゛', '゜', 'ゟ', 'ヿ',
		hiraganaRepeat, hiraganaRepeatVoiced, katakanaRepeat, katakanaRepeatVoiced:
		// marks and ligatures of the kana blocks, not read as written
		return KindBase
	}
	if IsHiragana(r) || IsKatakana(r) {
		return KindKana
	}
	return KindBase
}

// IsKana reports whether every character of s is kana. Empty strings are not.
func IsKana(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if Classify(r) != KindKana {
			return false
		}
	}
	return true
}

func isKanaRepeat(r rune) bool {
	switch r {
	case hiraganaRepeat, hiraganaRepeatVoiced, katakanaRepeat, katakanaRepeatVoiced:
		return true
	}
	return false
}

func isVoicedRepeat(r rune) bool {
	return r == hiraganaRepeatVoiced || r == katakanaRepeatVoiced
}

// ContainsKanjis checks if a string contains any kanji characters
func ContainsKanjis(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}

// foldRune maps katakana to hiragana, leaving anything else untouched.
func foldRune(r rune) rune {
	// ァ..ヶ have hiragana counterparts, ー and the dots do not
	if r >= 'ァ' && r <= 'ヶ' {
		return r - kanaTableDistance
	}
	return r
}

// ToHiragana converts the katakana of s to hiragana.
func ToHiragana(s string) string {
	return strings.Map(foldRune, s)
}

// kanaEqual compares two kana ignoring the hiragana/katakana distinction.
func kanaEqual(a, b rune) bool {
	return a == b || foldRune(a) == foldRune(b)
}

var vowelRows = map[byte]string{
	'a': "あかがさざただなはばぱまやらわぁゃゎ",
	'i': "いきぎしじちぢにひびぴみりぃ",
	'u': "うくぐすずつづぬふぶぷむゆるぅゅゔ",
	'e': "えけげせぜてでねへべぺめれぇ",
	'o': "おこごそぞとどのほぼぽもよろをぉょ",
}

var vowelOf = func() map[rune]byte {
	m := make(map[rune]byte)
	for v, row := range vowelRows {
		for _, r := range row {
			m[r] = v
		}
	}
	return m
}()

// extends reports whether next lengthens the vowel of prev, the way ー does
// in katakana: おかあさん, こう, せい, ゆう.
func extends(prev, next rune) bool {
	prev, next = foldRune(prev), foldRune(next)
	if next == prolongedSoundMark {
		_, ok := vowelOf[prev]
		return ok
	}
	switch vowelOf[prev] {
	case 'a':
		return next == 'あ'
	case 'i':
		return next == 'い'
	case 'u':
		return next == 'う'
	case 'e':
		return next == 'え' || next == 'い'
	case 'o':
		return next == 'お' || next == 'う'
	}
	return false
}
