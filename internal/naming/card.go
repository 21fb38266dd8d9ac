package naming

import (
	"fmt"
	"strings"
)

// Disclaimer is shown under every list of suggestions.
const Disclaimer = "이 이름들은 AI에 의해 생성되었습니다. 실제 작명 시 전문가의 조언을 받는 것이 좋습니다."

// Field is a key/value pair for display.
type Field struct {
	Key   string
	Value string
}

// Card is the display form of a NameRecord. Rendering is lossy: the
// text produced from a card is not meant to be parsed again.
type Card struct {
	Index   int // 1-based position in the result set
	Hangul  string
	Hanja   string
	Meaning string
	Trait   string
	Extra   []Field
}

// NewCard builds the card for the record at 1-based position index.
func NewCard(index int, r NameRecord) Card {
	c := Card{
		Index:   index,
		Hangul:  r.Hangul(),
		Hanja:   r.Hanja(),
		Meaning: r.Meaning(),
		Trait:   r.Trait(),
	}
	for _, k := range r.ExtraKeys() {
		c.Extra = append(c.Extra, Field{Key: k, Value: r[k]})
	}
	return c
}

// Cards converts a result set in order.
func Cards(rs ResultSet) []Card {
	cards := make([]Card, 0, len(rs))
	for i, r := range rs {
		cards = append(cards, NewCard(i+1, r))
	}
	return cards
}

// Title is the card heading.
func (c Card) Title() string {
	return fmt.Sprintf("추천 이름 %d: %s", c.Index, c.Hangul)
}

// HasHanja reports whether the hanja section should be shown.
func (c Card) HasHanja() bool {
	return strings.TrimSpace(c.Hanja) != ""
}

// Body returns the labelled body lines. The hanja line is left out
// entirely for pure-Korean names; meaning and trait are always present,
// possibly empty.
func (c Card) Body() []Field {
	var fields []Field
	if c.HasHanja() {
		fields = append(fields, Field{Key: "한자", Value: c.Hanja})
	}
	fields = append(fields,
		Field{Key: "의미", Value: c.Meaning},
		Field{Key: "특징", Value: c.Trait},
	)
	return append(fields, c.Extra...)
}

// Text renders the card as plain text, used by the CLI and the clipboard.
func (c Card) Text() string {
	var sb strings.Builder
	sb.WriteString(c.Title())
	for _, f := range c.Body() {
		fmt.Fprintf(&sb, "\n  %s: %s", f.Key, f.Value)
	}
	return sb.String()
}
