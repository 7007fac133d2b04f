package furigana

import (
	"html"
	"strings"
)

// Format selects how a mapping is rendered.
type Format int

const (
	FormatHTML    Format = iota // <ruby>物<rt>もの</rt>...</ruby>
	FormatBracket               // 物[もの]の怪[け]
)

// ParseFormat accepts "html" and "bracket".
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(s) {
	case "html", "ruby":
		return FormatHTML, true
	case "bracket", "anki":
		return FormatBracket, true
	}
	return FormatHTML, false
}

func (f Format) String() string {
	if f == FormatBracket {
		return "bracket"
	}
	return "html"
}

// Render prints the word with its furigana using HTML ruby tags. Every
// character gets its own <rt>, left empty for kana.
func Render(m Mapping) string {
	var b strings.Builder
	b.WriteString("<ruby>")
	for _, seg := range m {
		b.WriteString(html.EscapeString(string(seg.Char.Rune)))
		b.WriteString("<rt>")
		b.WriteString(html.EscapeString(seg.Furigana()))
		b.WriteString("</rt>")
	}
	b.WriteString("</ruby>")
	return b.String()
}

// RenderBracket prints the word with the furigana of each base character
// in brackets after it: 物[もの]の怪[け].
func RenderBracket(m Mapping) string {
	var b strings.Builder
	for _, seg := range m {
		b.WriteRune(seg.Char.Rune)
		if f := seg.Furigana(); f != "" {
			b.WriteString("[" + f + "]")
		}
	}
	return b.String()
}

// RenderAs renders m in format f.
func RenderAs(m Mapping, f Format) string {
	if f == FormatBracket {
		return RenderBracket(m)
	}
	return Render(m)
}
