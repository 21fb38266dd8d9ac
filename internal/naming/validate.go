package naming

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Field names used in validation errors.
const (
	FieldSurname  = "surname"
	FieldDollimja = "dollimja"
	FieldGender   = "gender"
	FieldStyle    = "style"
	FieldLength   = "length"
	FieldFormat   = "format"
)

// EmptyInputError reports a required field left blank.
type EmptyInputError struct {
	Field string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// InputValidationError reports a field whose value is not acceptable,
// most often because it contains a non-Korean character.
type InputValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InputValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// NormalizeKorean trims s and composes any decomposed jamo into
// precomposed syllables.
func NormalizeKorean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// IsKorean reports whether every rune in s is Hangul. The empty string
// is not Korean.
func IsKorean(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.Is(unicode.Hangul, r) {
			return false
		}
	}
	return true
}

// Normalize returns a copy of req with the text fields normalized and
// the option fields defaulted.
func Normalize(req Request) Request {
	req.Surname = NormalizeKorean(req.Surname)
	req.Dollimja = NormalizeKorean(req.Dollimja)
	if req.Gender == "" {
		req.Gender = GenderBoy
	}
	if req.Style == "" {
		req.Style = StyleTrendy
	}
	return req
}

// Validate checks a normalized request.
func Validate(req Request) error {
	if req.Surname == "" {
		return &EmptyInputError{Field: FieldSurname}
	}
	if !IsKorean(req.Surname) {
		return &InputValidationError{Field: FieldSurname, Value: req.Surname, Reason: "contains non-Korean characters"}
	}
	if req.Dollimja != "" && !IsKorean(req.Dollimja) {
		return &InputValidationError{Field: FieldDollimja, Value: req.Dollimja, Reason: "contains non-Korean characters"}
	}
	if !slices.Contains(Genders, req.Gender) {
		return &InputValidationError{Field: FieldGender, Value: string(req.Gender), Reason: "unknown gender"}
	}
	if !slices.Contains(Styles, req.Style) {
		return &InputValidationError{Field: FieldStyle, Value: string(req.Style), Reason: "unknown style"}
	}
	if !slices.Contains(Lengths, req.Length) {
		return &InputValidationError{Field: FieldLength, Value: string(req.Length), Reason: "unknown length"}
	}
	return nil
}

// ParseFormat converts a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatJSON, nil
	}
	if !slices.Contains(Formats, f) {
		return "", &InputValidationError{Field: FieldFormat, Value: s, Reason: "must be json or text"}
	}
	return f, nil
}

// Warning reports whether err should be shown as a warning rather than
// an error: the request was never sent.
func Warning(err error) bool {
	var empty *EmptyInputError
	var invalid *InputValidationError
	return errors.As(err, &empty) || errors.As(err, &invalid)
}

// UserMessage turns an input error into the Korean message shown in
// the form. Errors outside the input taxonomy get a generic message
// followed by the error text.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var empty *EmptyInputError
	if errors.As(err, &empty) {
		return "성씨를 입력해주세요."
	}

	var invalid *InputValidationError
	if errors.As(err, &invalid) {
		switch invalid.Field {
		case FieldSurname:
			return "성씨는 한글로만 입력해주세요."
		case FieldDollimja:
			return "돌림자는 한글로만 입력해주세요."
		default:
			return "입력값을 확인해주세요: " + invalid.Field
		}
	}

	return "이름을 생성하지 못했습니다: " + err.Error()
}
