package furigana

// readings of characters that dictionaries like KANJIDIC2 do not cover
var builtin = map[rune][]string{
	'ヶ': {"か", "が", "こ"},
	'ヵ': {"か", "が", "こ"},
	'〆': {"しめ"},

	'0': {"ぜろ", "れい"},
	'1': {"いち", "いっ", "ひと"},
	'2': {"に", "ふた"},
	'3': {"さん", "みっ"},
	'4': {"よん", "し", "よっ", "よ"},
	'5': {"ご", "いつ"},
	'6': {"ろく", "ろっ", "むっ"},
	'7': {"なな", "しち"},
	'8': {"はち", "はっ", "やっ"},
	'9': {"きゅう", "く", "ここの"},

	'A': {"えー"}, 'B': {"びー"}, 'C': {"しー"}, 'D': {"でぃー"},
	'E': {"いー"}, 'F': {"えふ"}, 'G': {"じー"}, 'H': {"えいち", "えっち"},
	'I': {"あい"}, 'J': {"じぇー"}, 'K': {"けー"}, 'L': {"える"},
	'M': {"えむ"}, 'N': {"えぬ"}, 'O': {"おー"}, 'P': {"ぴー"},
	'Q': {"きゅー"}, 'R': {"あーる"}, 'S': {"えす"}, 'T': {"てぃー"},
	'U': {"ゆー"}, 'V': {"ぶい"}, 'W': {"だぶりゅー", "だぶるゆー"}, 'X': {"えっくす"},
	'Y': {"わい"}, 'Z': {"ぜっと", "ずぃー"},
}

// builtinReadings folds full width and lower case forms onto the table.
func builtinReadings(r rune) ([]string, bool) {
	switch {
	case r >= '０' && r <= '９':
		r = r - '０' + '0'
	case r >= 'Ａ' && r <= 'Ｚ':
		r = r - 'Ａ' + 'A'
	case r >= 'ａ' && r <= 'ｚ':
		r = r - 'ａ' + 'A'
	case r >= 'a' && r <= 'z':
		r = r - 'a' + 'A'
	}
	readings, ok := builtin[r]
	return readings, ok
}
