package kanjidic

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	furigana "github.com/tassa-yoniso-manasi-karoto/go-furigana"
)

// Columns locates the fields of a CSV kanji table. Reading columns hold
// ";" separated lists.
type Columns struct {
	Kanji    int
	Readings []int
	Header   bool // first record is a header
}

// DefaultColumns fits the heisig-kanjis.csv layout: kanji first, on'yomi in
// column 6 and kun'yomi in column 7.
var DefaultColumns = Columns{
	Kanji:    0,
	Readings: []int{6, 7},
	Header:   true,
}

// LoadCSV reads a kanji table into a dictionary. Records with a kanji cell
// that is not a single character are skipped.
func LoadCSV(r io.Reader, cols Columns) (furigana.ReadingDictionary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	if cols.Header {
		if _, err := reader.Read(); err != nil {
			return nil, fmt.Errorf("failed to read CSV header: %w", err)
		}
	}

	dict := make(furigana.ReadingDictionary)
	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}
		if cols.Kanji >= len(record) {
			return nil, fmt.Errorf("record %d: no kanji column %d", line, cols.Kanji)
		}

		literal := strings.TrimSpace(record[cols.Kanji])
		if utf8.RuneCountInString(literal) != 1 {
			continue
		}
		kanji, _ := utf8.DecodeRuneInString(literal)

		for _, col := range cols.Readings {
			if col >= len(record) {
				continue
			}
			for _, reading := range strings.Split(record[col], ";") {
				if reading = strings.TrimSpace(reading); reading != "" {
					dict.Add(kanji, reading)
				}
			}
		}
	}

	Logger.Debug().Msgf("kanji table loaded: %d characters", len(dict))
	return dict, nil
}
