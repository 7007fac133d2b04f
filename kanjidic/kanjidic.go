// Package kanjidic loads per-character readings into a
// furigana.ReadingDictionary, from KANJIDIC2 XML or from CSV kanji tables.
package kanjidic

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"

	furigana "github.com/tassa-yoniso-manasi-karoto/go-furigana"
)

// DefaultFile is where DefaultPath looks for the dictionary, relative to
// the XDG data directories.
const DefaultFile = "furigana/kanjidic2.xml"

var Logger = zerolog.Nop()

// Options selects which readings are kept.
type Options struct {
	// Nanori adds the readings only used in names.
	Nanori bool
}

type character struct {
	Literal        string `xml:"literal"`
	ReadingMeaning struct {
		RMGroup []struct {
			Reading []struct {
				Value string `xml:",chardata"`
				Type  string `xml:"r_type,attr"`
			} `xml:"reading"`
		} `xml:"rmgroup"`
		Nanori []string `xml:"nanori"`
	} `xml:"reading_meaning"`
}

// LoadXML streams a KANJIDIC2 document and collects the ja_on and ja_kun
// readings of every character.
func LoadXML(r io.Reader, opts Options) (furigana.ReadingDictionary, error) {
	dict := make(furigana.ReadingDictionary)
	d := xml.NewDecoder(r)
	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse kanjidic2: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "character" {
			continue
		}

		var c character
		if err := d.DecodeElement(&c, &se); err != nil {
			return nil, fmt.Errorf("failed to decode character: %w", err)
		}
		if utf8.RuneCountInString(c.Literal) != 1 {
			Logger.Debug().Msgf("skipping literal %q", c.Literal)
			continue
		}
		kanji, _ := utf8.DecodeRuneInString(c.Literal)
		for _, group := range c.ReadingMeaning.RMGroup {
			for _, reading := range group.Reading {
				if reading.Type == "ja_on" || reading.Type == "ja_kun" {
					dict.Add(kanji, strings.TrimSpace(reading.Value))
				}
			}
		}
		if opts.Nanori {
			dict.Add(kanji, c.ReadingMeaning.Nanori...)
		}
	}

	Logger.Debug().Msgf("kanjidic2 loaded: %d characters", len(dict))
	return dict, nil
}

// Open loads the file at path, as CSV when its extension is .csv and as
// KANJIDIC2 XML otherwise.
func Open(path string, opts Options) (furigana.ReadingDictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return LoadCSV(f, DefaultColumns)
	}
	return LoadXML(f, opts)
}

// DefaultPath returns the KANJIDIC2 file found in the XDG data directories,
// e.g. ~/.local/share/furigana/kanjidic2.xml.
func DefaultPath() (string, error) {
	path, err := xdg.SearchDataFile(DefaultFile)
	if err != nil {
		return "", fmt.Errorf("failed to locate %s: %w", DefaultFile, err)
	}
	return path, nil
}
