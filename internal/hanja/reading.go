package hanja

import (
	gopinyin "github.com/mozillazg/go-pinyin"
)

// Reader converts characters to Mandarin readings with tone marks.
type Reader struct {
	args gopinyin.Args
}

// NewReader creates a reader returning every known reading.
func NewReader() *Reader {
	args := gopinyin.NewArgs()
	args.Style = gopinyin.Tone // zhōng
	args.Heteronym = true
	return &Reader{args: args}
}

// Readings returns all readings for a single character, most common first.
func (r *Reader) Readings(char string) []string {
	result := gopinyin.Pinyin(char, r.args)
	if len(result) == 0 {
		return nil
	}
	return result[0]
}

var toneMarks = map[rune]int{
	'ā': 1, 'á': 2, 'ǎ': 3, 'à': 4,
	'ē': 1, 'é': 2, 'ě': 3, 'è': 4,
	'ī': 1, 'í': 2, 'ǐ': 3, 'ì': 4,
	'ō': 1, 'ó': 2, 'ǒ': 3, 'ò': 4,
	'ū': 1, 'ú': 2, 'ǔ': 3, 'ù': 4,
	'ǖ': 1, 'ǘ': 2, 'ǚ': 3, 'ǜ': 4,
}

// Tone returns the tone number (1-4) of a tone-marked syllable, 5 for the
// neutral tone and 0 for an empty string.
func Tone(syllable string) int {
	if syllable == "" {
		return 0
	}
	for _, r := range syllable {
		if t, ok := toneMarks[r]; ok {
			return t
		}
	}
	return 5
}
