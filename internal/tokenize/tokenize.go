// Package tokenize splits running text into words with their readings using
// the kagome morphological analyzer and its IPA dictionary.
package tokenize

import (
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// IPA feature holding the katakana reading
const readingFeature = 7

// Unit is one word of the text.
type Unit struct {
	Surface string
	Reading string // katakana, empty when unknown to the dictionary
}

// Tokenizer wraps a kagome tokenizer.
type Tokenizer struct {
	t *tokenizer.Tokenizer
}

// New builds a tokenizer over the embedded IPA dictionary.
func New() (*Tokenizer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("failed to create tokenizer: %w", err)
	}
	return &Tokenizer{t: t}, nil
}

// Units splits text in reading order. Whitespace is kept as a unit of its
// own so the text can be rebuilt.
func (tk *Tokenizer) Units(text string) (units []Unit) {
	for _, token := range tk.t.Tokenize(text) {
		if token.Class == tokenizer.DUMMY {
			continue
		}
		unit := Unit{Surface: token.Surface}
		if strings.TrimSpace(token.Surface) != "" {
			features := token.Features()
			if len(features) > readingFeature && features[readingFeature] != "*" {
				unit.Reading = features[readingFeature]
			}
		}
		units = append(units, unit)
	}
	return
}
