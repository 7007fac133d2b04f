package kanjidic

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<kanjidic2>
<header><file_version>4</file_version></header>
<character>
<literal>物</literal>
<reading_meaning>
<rmgroup>
<reading r_type="pinyin">wu4</reading>
<reading r_type="korean_h">물</reading>
<reading r_type="ja_on">ブツ</reading>
<reading r_type="ja_on">モツ</reading>
<reading r_type="ja_kun">もの</reading>
<reading r_type="ja_kun">もの-</reading>
<meaning>thing</meaning>
</rmgroup>
</reading_meaning>
</character>
<character>
<literal>食</literal>
<reading_meaning>
<rmgroup>
<reading r_type="ja_on">ショク</reading>
<reading r_type="ja_kun">た.べる</reading>
</rmgroup>
<nanori>あき</nanori>
<nanori>け</nanori>
</reading_meaning>
</character>
<character>
<literal>𠀋</literal>
<reading_meaning>
<rmgroup>
<reading r_type="ja_on">ジョウ</reading>
</rmgroup>
</reading_meaning>
</character>
<character>
<literal>亜亜</literal>
</character>
</kanjidic2>`

func TestLoadXML(t *testing.T) {
	dict, err := LoadXML(strings.NewReader(sampleXML), Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"ブツ", "モツ", "もの", "もの-"}, dict['物'])
	assert.Equal(t, []string{"ショク", "た.べる"}, dict['食'])
	assert.Equal(t, []string{"ジョウ"}, dict['𠀋'], "characters outside the BMP are single runes")
	assert.Len(t, dict, 3)
}

func TestLoadXMLNanori(t *testing.T) {
	dict, err := LoadXML(strings.NewReader(sampleXML), Options{Nanori: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"ショク", "た.べる", "あき", "け"}, dict['食'])
}

func TestLoadXMLMalformed(t *testing.T) {
	_, err := LoadXML(strings.NewReader("<kanjidic2><character><literal>物</literal>"), Options{})
	assert.Error(t, err)
}

const sampleCSV = `kanji,id,keyword,strokes,frame,lesson,on,kun
物,1,thing,8,1,1,ブツ;モツ,もの
怪,2,suspicious,8,2,1,カイ;ケ,あや.しい
部首,3,radical,11,3,1,ブ,
亜,4,Asia,7,4,1,ア,
`

func TestLoadCSV(t *testing.T) {
	dict, err := LoadCSV(strings.NewReader(sampleCSV), DefaultColumns)
	require.NoError(t, err)

	assert.Equal(t, []string{"ブツ", "モツ", "もの"}, dict['物'])
	assert.Equal(t, []string{"カイ", "ケ", "あや.しい"}, dict['怪'])
	assert.Equal(t, []string{"ア"}, dict['亜'])
	assert.NotContains(t, dict, '部')
	assert.Len(t, dict, 3)
}

func TestLoadCSVColumns(t *testing.T) {
	input := "猫|ねこ\n犬|いぬ;ケン\n"
	r := strings.NewReader(strings.ReplaceAll(input, "|", ","))
	dict, err := LoadCSV(r, Columns{Kanji: 0, Readings: []int{1, 5}})
	require.NoError(t, err)
	assert.Equal(t, []string{"ねこ"}, dict['猫'])
	assert.Equal(t, []string{"いぬ", "ケン"}, dict['犬'])
}

func TestLoadCSVErrors(t *testing.T) {
	_, err := LoadCSV(strings.NewReader(""), DefaultColumns)
	assert.Error(t, err, "missing header")

	_, err = LoadCSV(strings.NewReader("物\n"), Columns{Kanji: 2})
	assert.ErrorContains(t, err, "no kanji column")

	_, err = LoadCSV(strings.NewReader("\"物,ブツ\n"), Columns{Kanji: 0})
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "kanji.CSV")
	require.NoError(t, os.WriteFile(csvPath, []byte(sampleCSV), 0o644))
	dict, err := Open(csvPath, Options{})
	require.NoError(t, err)
	assert.Contains(t, dict, '怪')

	xmlPath := filepath.Join(dir, "kanjidic2.xml")
	require.NoError(t, os.WriteFile(xmlPath, []byte(sampleXML), 0o644))
	dict, err = Open(xmlPath, Options{Nanori: true})
	require.NoError(t, err)
	assert.Contains(t, dict['食'], "あき")

	_, err = Open(filepath.Join(dir, "missing.xml"), Options{})
	assert.ErrorContains(t, err, "failed to open dictionary")
}
