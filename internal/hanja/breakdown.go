package hanja

import "unicode"

// Glyph describes one character of a hanja name.
type Glyph struct {
	Char       string
	Pinyin     []string // Mandarin readings, most common first
	Tone       int      // Tone of the first reading
	Definition string   // English gloss, empty when not in the dictionary
	Structure  string   // IDS layout, e.g. "left-right"
	Components []string
	Hint       string // Etymology hint
}

// Breaker produces glyph breakdowns. The dictionary is optional.
type Breaker struct {
	dict   *Dictionary
	reader *Reader
}

// NewBreaker creates a Breaker. dict may be nil.
func NewBreaker(dict *Dictionary) *Breaker {
	return &Breaker{dict: dict, reader: NewReader()}
}

// Breakdown returns one Glyph per Han character in name. Other runes,
// including Hangul and spaces, are skipped.
func (b *Breaker) Breakdown(name string) []Glyph {
	var glyphs []Glyph
	for _, r := range name {
		if !unicode.Is(unicode.Han, r) {
			continue
		}
		char := string(r)

		g := Glyph{Char: char, Pinyin: b.reader.Readings(char)}
		if len(g.Pinyin) > 0 {
			g.Tone = Tone(g.Pinyin[0])
		}

		if entry := b.dict.Lookup(char); entry != nil {
			g.Definition = entry.Definition
			g.Structure = Structure(entry.Decomposition)
			g.Components = Components(entry.Decomposition)
			if len(g.Pinyin) == 0 {
				g.Pinyin = entry.Pinyin
				if len(g.Pinyin) > 0 {
					g.Tone = Tone(g.Pinyin[0])
				}
			}
			if entry.Etymology != nil {
				g.Hint = entry.Etymology.Hint
			}
		}

		glyphs = append(glyphs, g)
	}
	return glyphs
}
