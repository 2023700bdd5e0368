package wordlist

import (
	"encoding/json"
	"strconv"
)

// DefaultLevel is used when a record has no level of its own.
const DefaultLevel = "4级"

// Entry is a single vocabulary item decoded from a word list.
// Entries are immutable once a load has produced them.
type Entry struct {
	HeadTerm          string
	Level             string
	Phonetic          string
	AlternatePhonetic string
	PartOfSpeech      string
	Definition        string
	Phrases           []Pair
	Sentences         []Pair
}

// Pair is a text with its translation, used for both phrases and example sentences.
type Pair struct {
	Text        string
	Translation string
}

// record is a decoded candidate object. Word lists come in two shapes:
// the nested one under content.word.content and a flat one with top-level fields,
// so values are looked up by path instead of through a fixed struct.
type record map[string]any

var wordContentPath = []any{"content", "word", "content"}

func (r record) toEntry(defaultLevel string) Entry {
	content := lookup(map[string]any(r), wordContentPath...)

	return Entry{
		HeadTerm: firstNonEmpty(
			text(r["headWord"]),
			text(r["word"]),
		),
		Level: firstNonEmpty(
			text(r["level"]),
			defaultLevel,
		),
		Phonetic: firstNonEmpty(
			text(lookup(content, "usphone")),
			text(r["phonetic"]),
		),
		AlternatePhonetic: text(lookup(content, "ukphone")),
		PartOfSpeech: firstNonEmpty(
			text(lookup(content, "syno", "synos", 0, "pos")),
			text(r["pos"]),
		),
		Definition: firstNonEmpty(
			text(lookup(content, "trans", 0, "tranCn")),
			text(r["def"]),
		),
		Phrases:   pairs(lookup(content, "phrase", "phrases"), "pContent", "pCn"),
		Sentences: pairs(lookup(content, "sentence", "sentences"), "sContent", "sCn"),
	}
}

// lookup walks v along path. String elements index objects and int elements index arrays.
// A missing key, an out of range index or a value of the wrong kind yields nil.
func lookup(v any, path ...any) any {
	for _, p := range path {
		switch key := p.(type) {
		case string:
			m, ok := v.(map[string]any)
			if !ok {
				return nil
			}
			v = m[key]
		case int:
			a, ok := v.([]any)
			if !ok || key < 0 || key >= len(a) {
				return nil
			}
			v = a[key]
		default:
			return nil
		}
	}
	return v
}

// text renders a scalar JSON value as a string.
// Objects, arrays and null are treated as absent.
func text(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case json.Number:
		return value.String()
	case bool:
		return strconv.FormatBool(value)
	default:
		return ""
	}
}

func pairs(v any, textKey, translationKey string) []Pair {
	items, ok := v.([]any)
	if !ok || len(items) == 0 {
		return nil
	}

	result := make([]Pair, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		result = append(result, Pair{
			Text:        text(m[textKey]),
			Translation: text(m[translationKey]),
		})
	}
	return result
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
