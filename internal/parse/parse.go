// Package parse turns the language model's raw answer into name records.
//
// There is one strategy per prompt format. The caller always says which
// format it asked for; the text is never inspected to guess.
package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/f3rmion/ireum/internal/naming"
)

var (
	// ErrNoJSONArray is returned when the answer holds no [...] pair.
	ErrNoJSONArray = errors.New("no JSON array found in response")

	// ErrUnknownFormat is returned for a format without a parser.
	ErrUnknownFormat = errors.New("unknown response format")
)

// Error reports that a response could not be turned into records.
// Err carries the underlying decode diagnostic.
type Error struct {
	Format naming.Format
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("parsing %s response: %v", e.Format, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

var (
	blankLine    = regexp.MustCompile(`\n\s*\n`)
	numberPrefix = regexp.MustCompile(`^\d+\.`)
)

// Parse reads raw with the strategy matching format. On failure the
// returned set is always empty.
func Parse(format naming.Format, raw string) (naming.ResultSet, error) {
	switch format {
	case naming.FormatText:
		return Text(raw), nil
	case naming.FormatJSON:
		return JSON(raw)
	default:
		return nil, &Error{Format: format, Err: ErrUnknownFormat}
	}
}

// Text parses the free-text answer: blocks separated by blank lines, one
// "key: value" pair per line. Lines without a colon are skipped and
// blocks without any pair are dropped. It never fails.
func Text(raw string) naming.ResultSet {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")

	var records naming.ResultSet
	for _, block := range blankLine.Split(raw, -1) {
		record := naming.NameRecord{}
		for _, line := range strings.Split(strings.TrimSpace(block), "\n") {
			key, value, ok := strings.Cut(line, ":")
			if !ok {
				continue
			}
			record[cleanKey(key)] = cleanValue(value)
		}
		if len(record) > 0 {
			records = append(records, record)
		}
	}
	return records
}

// cleanKey strips markdown emphasis, the "<number>." prefix and
// surrounding whitespace. Emphasis may wrap the number too.
func cleanKey(key string) string {
	key = strings.TrimSpace(strings.Trim(strings.TrimSpace(key), "*"))
	key = numberPrefix.ReplaceAllString(key, "")
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(key), "*"))
}

func cleanValue(value string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(value), "*"))
}

// JSON parses an answer holding a JSON array of flat objects, possibly
// wrapped in prose or a code fence. The substring from the first '[' to
// the last ']' is decoded as a whole: one bad entry fails the batch.
func JSON(raw string) (naming.ResultSet, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start < 0 || end < start {
		return nil, &Error{Format: naming.FormatJSON, Err: ErrNoJSONArray}
	}

	var entries []map[string]any
	if err := json.Unmarshal([]byte(raw[start:end+1]), &entries); err != nil {
		return nil, &Error{Format: naming.FormatJSON, Err: err}
	}

	records := make(naming.ResultSet, 0, len(entries))
	for i, entry := range entries {
		if entry == nil {
			return nil, &Error{Format: naming.FormatJSON, Err: fmt.Errorf("entry %d is null", i)}
		}
		record := make(naming.NameRecord, len(entry))
		for k, v := range entry {
			s, err := stringValue(v)
			if err != nil {
				return nil, &Error{Format: naming.FormatJSON, Err: fmt.Errorf("entry %d key %q: %w", i, k, err)}
			}
			record[k] = s
		}
		records = append(records, record)
	}
	return records, nil
}

// stringValue flattens a decoded JSON value. Scalars become their text
// form and null becomes empty; nested values are kept as compact JSON.
func stringValue(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
