// Package annotate adds furigana to running text: the text is split into
// words by the tokenizer and each word's reading is mapped onto its
// characters with the best graded segmentation.
package annotate

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	furigana "github.com/tassa-yoniso-manasi-karoto/go-furigana"
	"github.com/tassa-yoniso-manasi-karoto/go-furigana/internal/tokenize"
)

// DefaultMaxResults bounds the candidates considered per word.
const DefaultMaxResults = 10000

// Word is one annotated word of the text.
type Word struct {
	Surface string           `json:"surface"`
	Reading string           `json:"reading,omitempty"` // hiragana
	Best    *furigana.Graded `json:"best,omitempty"`

	// Whole is set when no segmentation fits and the reading is attached to
	// the word as a whole.
	Whole bool `json:"whole,omitempty"`
}

// Render prints the word in format f.
func (w Word) Render(f furigana.Format) string {
	switch {
	case w.Best != nil:
		return furigana.RenderAs(w.Best.Mapping, f)
	case w.Whole && f == furigana.FormatBracket:
		return w.Surface + "[" + w.Reading + "]"
	case w.Whole:
		return "<ruby>" + html.EscapeString(w.Surface) + "<rt>" + html.EscapeString(w.Reading) + "</rt></ruby>"
	case f == furigana.FormatHTML:
		return html.EscapeString(w.Surface)
	}
	return w.Surface
}

// Render joins the rendering of words.
func Render(words []Word, f furigana.Format) string {
	parts := make([]string, len(words))
	surfaces := make([]string, len(words))
	for i, w := range words {
		parts[i] = w.Render(f)
		surfaces[i] = w.Surface
	}
	if f == furigana.FormatHTML {
		return strings.Join(parts, "")
	}
	return furigana.JoinRendered(parts, surfaces)
}

// Annotator annotates text against a reading dictionary.
type Annotator struct {
	tok  *tokenize.Tokenizer
	dict furigana.ReadingDictionary
	opts []furigana.Option
}

// New returns an annotator. dict may be nil, in which case words with
// several possible segmentations get the first one found.
func New(tok *tokenize.Tokenizer, dict furigana.ReadingDictionary, opts ...furigana.Option) *Annotator {
	base := []furigana.Option{
		furigana.WithKanaFolding(),
		furigana.WithMaxResults(DefaultMaxResults),
	}
	return &Annotator{
		tok:  tok,
		dict: dict,
		opts: append(base, opts...),
	}
}

// Annotate splits text into words and picks the best segmentation of each
// word written with kanji.
func (a *Annotator) Annotate(ctx context.Context, text string) ([]Word, error) {
	var words []Word
	for _, unit := range a.tok.Units(text) {
		w, err := a.word(ctx, unit)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, nil
}

func (a *Annotator) word(ctx context.Context, unit tokenize.Unit) (Word, error) {
	w := Word{Surface: unit.Surface}
	// only kanji get furigana in running text
	if !furigana.ContainsKanjis(unit.Surface) || !furigana.IsKana(unit.Reading) {
		return w, nil
	}
	w.Reading = furigana.ToHiragana(unit.Reading)

	ranked, err := furigana.SegmentGradedWithContext(ctx, unit.Surface, w.Reading, a.dict, a.opts...)
	if err != nil {
		if errors.Is(err, furigana.ErrInvalidArgument) {
			return w, nil
		}
		return w, fmt.Errorf("annotate %q: %w", unit.Surface, err)
	}
	if len(ranked) == 0 {
		furigana.Logger.Debug().Msgf("no segmentation of %s fits %s", unit.Surface, w.Reading)
		w.Whole = true
		return w, nil
	}
	w.Best = &ranked[0]
	return w, nil
}
