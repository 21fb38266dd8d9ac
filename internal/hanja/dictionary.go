// Package hanja looks up the Chinese characters behind hanja names using
// Make Me a Hanzi data and Mandarin readings.
package hanja

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// Entry is a single line of the Make Me a Hanzi dictionary.
type Entry struct {
	Character     string     `json:"character"`
	Definition    string     `json:"definition"`
	Pinyin        []string   `json:"pinyin"`
	Decomposition string     `json:"decomposition"`
	Etymology     *Etymology `json:"etymology,omitempty"`
	Radical       string     `json:"radical"`
}

// Etymology from Make Me a Hanzi.
type Etymology struct {
	Type     string `json:"type"`               // pictophonetic, pictographic, ideographic
	Semantic string `json:"semantic,omitempty"` // meaning component
	Phonetic string `json:"phonetic,omitempty"` // sound component
	Hint     string `json:"hint,omitempty"`
}

// Dictionary holds character data keyed by character. A nil *Dictionary
// is an empty dictionary.
type Dictionary struct {
	entries map[string]*Entry
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		entries: make(map[string]*Entry),
	}
}

// LoadFromFile loads a Make Me a Hanzi dictionary.txt / dictionary.jsonl file.
func (d *Dictionary) LoadFromFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening dictionary file: %w", err)
	}
	defer file.Close()

	return d.Load(file)
}

// Load reads one JSON object per line. Blank and malformed lines are skipped.
func (d *Dictionary) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var entry Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil || entry.Character == "" {
			continue
		}

		d.entries[entry.Character] = &entry
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading dictionary: %w", err)
	}

	return nil
}

// Lookup returns the entry for a character, or nil.
func (d *Dictionary) Lookup(char string) *Entry {
	if d == nil {
		return nil
	}
	return d.entries[char]
}

// Size returns the number of entries in the dictionary.
func (d *Dictionary) Size() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// idsChars maps Ideographic Description Sequence operators to the layout
// they describe.
var idsChars = map[rune]string{
	'⿰': "left-right",
	'⿱': "top-bottom",
	'⿲': "left-mid-right",
	'⿳': "top-mid-bottom",
	'⿴': "surround",
	'⿵': "surround-top",
	'⿶': "surround-bottom",
	'⿷': "surround-left",
	'⿸': "surround-upper-left",
	'⿹': "surround-upper-right",
	'⿺': "surround-lower-left",
	'⿻': "overlaid",
}

// Components extracts the component characters from an IDS decomposition.
func Components(decomposition string) []string {
	if decomposition == "" || decomposition == "？" {
		return nil
	}

	var components []string
	for _, r := range decomposition {
		if _, isIDS := idsChars[r]; isIDS || r == '？' {
			continue
		}
		if unicode.Is(unicode.Han, r) || isRadical(r) {
			components = append(components, string(r))
		}
	}

	return components
}

// isRadical reports CJK Radicals Supplement and Kangxi Radicals runes.
func isRadical(r rune) bool {
	return (r >= 0x2E80 && r <= 0x2EFF) || (r >= 0x2F00 && r <= 0x2FDF)
}

// Structure names the outermost layout of a decomposition: "simple" when
// there is no IDS operator, "unknown" when there is no decomposition.
func Structure(decomposition string) string {
	if decomposition == "" || decomposition == "？" {
		return "unknown"
	}

	for _, r := range decomposition {
		if desc, ok := idsChars[r]; ok {
			return desc
		}
	}

	return "simple"
}

// FormatDecomposition returns e.g. "left-right: 氵 + 閏".
func FormatDecomposition(decomposition string) string {
	components := Components(decomposition)
	if len(components) == 0 {
		return ""
	}
	return fmt.Sprintf("%s: %s", Structure(decomposition), strings.Join(components, " + "))
}
