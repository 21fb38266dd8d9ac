// Package naming provides the core types for Korean baby-name suggestions.
package naming

import "sort"

// Gender selects which child the names are for.
type Gender string

const (
	GenderBoy  Gender = "boy"  // 남자아이
	GenderGirl Gender = "girl" // 여자아이
)

// Label returns the Korean wording used in prompts and forms.
func (g Gender) Label() string {
	switch g {
	case GenderBoy:
		return "남자아이"
	case GenderGirl:
		return "여자아이"
	default:
		return string(g)
	}
}

// Style selects the overall naming style.
type Style string

const (
	StyleTrendy  Style = "trendy"  // Recent (post-2020) naming trends
	StyleClassic Style = "classic" // Traditional, classic names
)

// Label returns the Korean wording used in prompts and forms.
func (s Style) Label() string {
	switch s {
	case StyleTrendy:
		return "최신 트렌드"
	case StyleClassic:
		return "전통적인 스타일"
	default:
		return string(s)
	}
}

// Length is the desired number of syllables in the given name.
// The zero value means no preference.
type Length string

const (
	LengthAny   Length = ""
	LengthOne   Length = "1" // 외자
	LengthTwo   Length = "2" // 두 글자
	LengthThree Length = "3" // 세 글자
)

// Label returns the Korean wording used in prompts and forms.
func (l Length) Label() string {
	switch l {
	case LengthOne:
		return "외자"
	case LengthTwo:
		return "두 글자"
	case LengthThree:
		return "세 글자"
	default:
		return "상관없음"
	}
}

// Format identifies which prompt was sent and therefore which parser
// must read the answer. It is always chosen by the caller.
type Format string

const (
	FormatText Format = "text" // Numbered "key: value" blocks separated by blank lines
	FormatJSON Format = "json" // A JSON array of flat objects
)

// Genders, Styles, Lengths and Formats list the accepted values in display order.
var (
	Genders = []Gender{GenderBoy, GenderGirl}
	Styles  = []Style{StyleTrendy, StyleClassic}
	Lengths = []Length{LengthAny, LengthOne, LengthTwo, LengthThree}
	Formats = []Format{FormatJSON, FormatText}
)

// Request holds everything the user chose on the form.
type Request struct {
	Surname  string `json:"surname" yaml:"surname"`
	Gender   Gender `json:"gender" yaml:"gender"`
	Style    Style  `json:"style" yaml:"style"`
	Length   Length `json:"length,omitempty" yaml:"length,omitempty"`
	Dollimja string `json:"dollimja,omitempty" yaml:"dollimja,omitempty"` // Syllable shared by siblings of one generation
}

// Recognized record keys, exactly as the prompts ask the model to write them.
const (
	KeyHangul  = "이름(한글)"
	KeyHanja   = "이름(한자)"
	KeyMeaning = "의미"
	KeyTrait   = "특징"
)

// NameRecord is one suggested name. It is an open mapping: keys the
// model invents are kept alongside the recognized ones.
type NameRecord map[string]string

// Hangul returns the name in Korean script.
func (r NameRecord) Hangul() string { return r[KeyHangul] }

// Hanja returns the name in Chinese-derived characters, or "" for a
// pure-Korean name.
func (r NameRecord) Hanja() string { return r[KeyHanja] }

// Meaning returns the meaning description.
func (r NameRecord) Meaning() string { return r[KeyMeaning] }

// Trait returns the trait or trend description.
func (r NameRecord) Trait() string { return r[KeyTrait] }

// ExtraKeys returns the unrecognized keys in sorted order.
func (r NameRecord) ExtraKeys() []string {
	var keys []string
	for k := range r {
		switch k {
		case KeyHangul, KeyHanja, KeyMeaning, KeyTrait:
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ResultSet is the ordered list of records from one request.
// Nominally five entries, but callers must not rely on that.
type ResultSet []NameRecord
