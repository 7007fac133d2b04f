package furigana

import (
	"context"
	"errors"
	"iter"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readings flattens mappings to their per-character readings for comparison.
func readings(seq iter.Seq[Mapping]) (all [][]string) {
	for m := range seq {
		var parts []string
		for _, s := range m {
			parts = append(parts, s.Reading)
		}
		all = append(all, parts)
	}
	return
}

func mustSegment(t *testing.T, word, reading string, opts ...Option) iter.Seq[Mapping] {
	t.Helper()
	seq, err := Segment(word, reading, opts...)
	require.NoError(t, err)
	return seq
}

func TestSegmentEmptyInput(t *testing.T) {
	tests := []struct {
		name    string
		word    string
		reading string
	}{
		{name: "empty word", word: "", reading: "もののけ"},
		{name: "empty reading", word: "物の怪", reading: ""},
		{name: "both empty", word: "", reading: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := Segment(tt.word, tt.reading)
			assert.Nil(t, seq)
			assert.ErrorIs(t, err, ErrEmptyInput)
			assert.ErrorIs(t, err, ErrInvalidArgument)

			_, err = SegmentGraded(tt.word, tt.reading, nil)
			assert.ErrorIs(t, err, ErrEmptyInput)
		})
	}
}

func TestSegmentInvalidUTF8(t *testing.T) {
	_, err := Segment("\xff", "ね")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSegmentExhaustive(t *testing.T) {
	tests := []struct {
		name     string
		word     string
		reading  string
		expected [][]string
	}{
		{
			name:    "kana between kanji",
			word:    "物の怪",
			reading: "もののけ",
			expected: [][]string{
				{"も", "の", "のけ"},
				{"もの", "の", "け"},
			},
		},
		{
			name:    "kanji run",
			word:    "日本語",
			reading: "にほんご",
			expected: [][]string{
				{"に", "ほ", "んご"},
				{"に", "ほん", "ご"},
				{"にほ", "ん", "ご"},
			},
		},
		{
			name:     "single kanji",
			word:     "猫",
			reading:  "ねこ",
			expected: [][]string{{"ねこ"}},
		},
		{
			name:     "okurigana",
			word:     "離れる",
			reading:  "はなれる",
			expected: [][]string{{"はな", "れ", "る"}},
		},
		{
			name:    "latin then katakana",
			word:    "CDプレイヤー",
			reading: "シーディープレイヤー",
			expected: [][]string{
				{"シ", "ーディー", "プ", "レ", "イ", "ヤ", "ー"},
				{"シー", "ディー", "プ", "レ", "イ", "ヤ", "ー"},
				{"シーデ", "ィー", "プ", "レ", "イ", "ヤ", "ー"},
				{"シーディ", "ー", "プ", "レ", "イ", "ヤ", "ー"},
			},
		},
		{
			name:     "kana iteration mark",
			word:     "いすゞ",
			reading:  "いすず",
			expected: [][]string{{"い", "す", "ず"}},
		},
		{
			name:     "kana not in reading",
			word:     "物の怪",
			reading:  "もんけ",
			expected: nil,
		},
		{
			name:     "reading too short",
			word:     "日本語",
			reading:  "にほ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := readings(mustSegment(t, tt.word, tt.reading))
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Segment(%s, %s) mismatch (-want +got):\n%s", tt.word, tt.reading, diff)
			}
		})
	}
}

func TestSegmentInvariants(t *testing.T) {
	pairs := [][2]string{
		{"物の怪", "もののけ"},
		{"日本語", "にほんご"},
		{"一ヶ月", "いっかげつ"},
		{"花火", "はなび"},
		{"取り組む", "とりくむ"},
		{"東京都", "とうきょうと"},
		{"お茶", "おちゃ"},
	}

	for _, p := range pairs {
		t.Run(p[0], func(t *testing.T) {
			word, reading := p[0], p[1]
			count := 0
			for m := range mustSegment(t, word, reading) {
				count++
				assert.Equal(t, reading, m.Reading(), "segments must concatenate to the reading")
				assert.Equal(t, word, m.Word())
				require.Len(t, m, len([]rune(word)))
				for _, s := range m {
					if s.Char.Kind == KindKana {
						assert.Equal(t, string(s.Char.Rune), s.Reading, "kana read as written")
						assert.Empty(t, s.Furigana())
					} else {
						assert.NotEmpty(t, s.Reading)
					}
				}
			}
			assert.Positive(t, count)
		})
	}
}

func TestSegmentKanaRigidity(t *testing.T) {
	got := readings(mustSegment(t, "ねこ", "ねこ"))
	assert.Equal(t, [][]string{{"ね", "こ"}}, got)

	assert.Empty(t, readings(mustSegment(t, "ねこ", "いぬ")))
	assert.Empty(t, readings(mustSegment(t, "ねこ", "ねこね")))
	assert.Empty(t, readings(mustSegment(t, "ねこ", "ネコ")))
}

func TestSegmentKanaFolding(t *testing.T) {
	assert.Empty(t, readings(mustSegment(t, "離れる", "ハナレル")))

	got := readings(mustSegment(t, "離れる", "ハナレル", WithKanaFolding()))
	assert.Equal(t, [][]string{{"ハナ", "レ", "ル"}}, got)
}

func TestSegmentDeterministic(t *testing.T) {
	seq := mustSegment(t, "一ヶ月", "いっかげつ")
	first := readings(seq)
	second := readings(seq)
	assert.Equal(t, first, second, "ranging twice reruns the same search")

	third := readings(mustSegment(t, "一ヶ月", "いっかげつ"))
	assert.Equal(t, first, third)
	assert.Len(t, first, 6)
}

func TestSegmentMaxResults(t *testing.T) {
	got := readings(mustSegment(t, "日本語", "にほんご", WithMaxResults(2)))
	assert.Equal(t, [][]string{{"に", "ほ", "んご"}, {"に", "ほん", "ご"}}, got)

	all := readings(mustSegment(t, "日本語", "にほんご", WithMaxResults(0)))
	assert.Len(t, all, 3)
}

func TestSegmentStopsEarly(t *testing.T) {
	seen := 0
	for range mustSegment(t, "日本語", "にほんご") {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}

func TestSegmentMappingsAreIndependent(t *testing.T) {
	var all []Mapping
	for m := range mustSegment(t, "物の怪", "もののけ") {
		all = append(all, m)
	}
	require.Len(t, all, 2)
	all[0][0].Reading = "changed"
	assert.Equal(t, "もの", all[1][0].Reading)
}

func TestSegmentWithContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	seq, err := SegmentWithContext(ctx, "日本語", "にほんご")
	require.NoError(t, err)
	assert.Empty(t, slices.Collect(seq))

	_, err = SegmentGradedWithContext(ctx, "日本語", "にほんご", nil)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestSegmentCombinatorialGrowth(t *testing.T) {
	// 8 kanji over 12 kana: C(11, 7) = 330 compositions
	word := strings.Repeat("字", 8)
	reading := strings.Repeat("じ", 12)
	count := 0
	for range mustSegment(t, word, reading) {
		count++
	}
	assert.Equal(t, 330, count)

	capped := slices.Collect(mustSegment(t, word, reading, WithMaxResults(10)))
	assert.Len(t, capped, 10)
}
