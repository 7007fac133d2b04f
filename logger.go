package furigana

import (
	"github.com/rs/zerolog"
)

// SearchTracer writes the segmentation search to Logger. A nil tracer is
// valid and silent.
type SearchTracer struct {
	Prefix     string
	ShowWord   bool
	ShowPruned bool
	Level      zerolog.Level
}

func NewSearchTracer() *SearchTracer {
	return &SearchTracer{
		Prefix:     "segmenter",
		ShowWord:   true,
		ShowPruned: false,
		Level:      zerolog.DebugLevel,
	}
}

func (t *SearchTracer) event(word Word, typ string) *zerolog.Event {
	event := Logger.WithLevel(t.Level)
	if t.ShowWord {
		event = event.Str("word", word.String())
	}
	if t.Prefix != "" {
		event = event.Str("component", t.Prefix)
	}
	return event.Str("type", typ)
}

func (t *SearchTracer) candidate(word Word, m Mapping) {
	if t == nil {
		return
	}
	t.event(word, "candidate").
		Strs("furigana", m.FuriganaParts()).
		Msg(RenderBracket(m))
}

func (t *SearchTracer) pruned(word Word, at int, reason string) {
	if t == nil || !t.ShowPruned {
		return
	}
	t.event(word, "pruned").
		Int("position", at).
		Msg(reason)
}

func (t *SearchTracer) done(word Word, count int) {
	if t == nil {
		return
	}
	t.event(word, "done").
		Int("candidates", count).
		Msg("search finished")
}
