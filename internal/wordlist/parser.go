package wordlist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrNoWordObjects is returned when a text contains no object-shaped candidates at all.
var ErrNoWordObjects = errors.New("no valid word objects found")

// DecodeError reports a candidate object that is not valid JSON.
// A single bad candidate fails the whole parse.
type DecodeError struct {
	// Index is the zero-based position of the candidate in the text.
	Index int
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode word object #%d: %v", e.Index+1, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Parser decodes word lists.
type Parser struct {
	DefaultLevel string
}

// NewParser returns a Parser that fills missing levels with defaultLevel,
// or with DefaultLevel when defaultLevel is empty.
func NewParser(defaultLevel string) *Parser {
	if defaultLevel == "" {
		defaultLevel = DefaultLevel
	}
	return &Parser{DefaultLevel: defaultLevel}
}

// Parse decodes text with the default parser.
func Parse(text string) ([]Entry, error) {
	return NewParser("").Parse(text)
}

// Parse splits text into candidate objects and decodes every one of them.
// Either all candidates decode and the entries keep their input order,
// or an error is returned and no entries at all.
func (p *Parser) Parse(text string) ([]Entry, error) {
	candidates := SplitObjects(text)
	if len(candidates) == 0 {
		return nil, ErrNoWordObjects
	}

	entries := make([]Entry, 0, len(candidates))
	for i, candidate := range candidates {
		r, err := decodeRecord(candidate)
		if err != nil {
			return nil, &DecodeError{Index: i, Err: err}
		}
		entries = append(entries, r.toEntry(p.DefaultLevel))
	}
	return entries, nil
}

func decodeRecord(candidate string) (record, error) {
	decoder := json.NewDecoder(strings.NewReader(candidate))
	decoder.UseNumber()

	var r record
	if err := decoder.Decode(&r); err != nil {
		return nil, fmt.Errorf("json.Decode > %w", err)
	}
	// A candidate holds exactly one object.
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after object")
	}
	return r, nil
}

// SplitObjects returns the object-shaped substrings of text in order.
//
// An object runs from a '{' to the nearest '}' that is followed, after optional
// whitespace, by another '{' or by the end of the text. Braces inside a candidate
// are not balanced: a nested object only survives because the decode step is a
// full JSON decode. The last object does not need a trailing separator.
func SplitObjects(text string) []string {
	var candidates []string

	pos := 0
	for pos < len(text) {
		start := strings.IndexByte(text[pos:], '{')
		if start < 0 {
			break
		}
		start += pos

		end := closingBrace(text, start+1)
		if end < 0 {
			// No later start can find a boundary either.
			break
		}
		candidates = append(candidates, strings.TrimSpace(text[start:end+1]))
		pos = end + 1
	}
	return candidates
}

// closingBrace returns the index of the first '}' at or after from that ends an object.
func closingBrace(text string, from int) int {
	for i := from; i < len(text); i++ {
		if text[i] != '}' {
			continue
		}
		if endsObject(text[i+1:]) {
			return i
		}
	}
	return -1
}

func endsObject(rest string) bool {
	rest = strings.TrimLeftFunc(rest, isSeparatorSpace)
	if rest == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return r == '{'
}

// isSeparatorSpace reports the whitespace allowed between objects: Unicode white space
// and the byte order mark, without NEL (U+0085).
func isSeparatorSpace(r rune) bool {
	return r == '\uFEFF' || (unicode.IsSpace(r) && r != '\u0085')
}
