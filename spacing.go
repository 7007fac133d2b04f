package furigana

import (
	"strings"

	"github.com/tassa-yoniso-manasi-karoto/translitkit/common"
)

// JoinWithSpacingRule joins string slices using intelligent spacing rules
func JoinWithSpacingRule(tokens []string) string {
	return JoinRendered(tokens, tokens)
}

// RenderAll renders consecutive words and joins them. Spacing is decided
// on the written words, not on the markup, so that punctuation sticks to
// its neighbours in both formats. HTML output is never spaced.
func RenderAll(mappings []Mapping, f Format) string {
	rendered := make([]string, len(mappings))
	words := make([]string, len(mappings))
	for i, m := range mappings {
		rendered[i] = RenderAs(m, f)
		words[i] = m.Word()
	}
	if f == FormatHTML {
		return strings.Join(rendered, "")
	}
	return JoinRendered(rendered, words)
}

// JoinRendered writes parts, separating parts[i-1] and parts[i] with a
// space when the spacing rule asks for one between words[i-1] and words[i].
// Both slices must have the same length.
func JoinRendered(parts, words []string) string {
	if len(parts) == 0 {
		return ""
	}

	var builder strings.Builder
	builder.WriteString(parts[0])
	for i := 1; i < len(parts); i++ {
		if common.DefaultSpacingRule(words[i-1], words[i]) {
			builder.WriteRune(' ')
		}
		builder.WriteString(parts[i])
	}
	return builder.String()
}
