// Package wordbook holds the loaded word sequence and the cursor into it.
package wordbook

import (
	"errors"
	"math/rand"
	"time"

	"golang.org/x/text/cases"

	"github.com/at-ishikawa/wordcard/internal/wordlist"
)

var (
	ErrOutOfRange = errors.New("index out of range")
	ErrNotFound   = errors.New("head term not found")
)

// Repository owns an ordered sequence of entries and a cursor into it.
// The cursor satisfies 0 <= cursor < Len() while the repository is not empty.
type Repository struct {
	entries []wordlist.Entry
	cursor  int
	rand    *rand.Rand
}

type Option func(*Repository)

// WithRand sets the random source used by RandomJump.
func WithRand(r *rand.Rand) Option {
	return func(repo *Repository) {
		repo.rand = r
	}
}

func NewRepository(options ...Option) *Repository {
	repo := &Repository{}
	for _, option := range options {
		option(repo)
	}
	if repo.rand == nil {
		repo.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return repo
}

// Load replaces the whole sequence and moves the cursor to the first entry.
func (r *Repository) Load(entries []wordlist.Entry) {
	r.entries = append([]wordlist.Entry(nil), entries...)
	r.cursor = 0
}

func (r *Repository) Len() int {
	return len(r.entries)
}

// Cursor returns the current index. It is inactive for an empty repository.
func (r *Repository) Cursor() (int, bool) {
	if len(r.entries) == 0 {
		return 0, false
	}
	return r.cursor, true
}

func (r *Repository) Current() (wordlist.Entry, bool) {
	if len(r.entries) == 0 {
		return wordlist.Entry{}, false
	}
	return r.entries[r.cursor], true
}

// Advance moves to the next entry and reports whether the cursor moved.
func (r *Repository) Advance() bool {
	if r.cursor >= len(r.entries)-1 {
		return false
	}
	r.cursor++
	return true
}

// Retreat moves to the previous entry and reports whether the cursor moved.
func (r *Repository) Retreat() bool {
	if len(r.entries) == 0 || r.cursor == 0 {
		return false
	}
	r.cursor--
	return true
}

func (r *Repository) JumpTo(index int) error {
	if index < 0 || index >= len(r.entries) {
		return ErrOutOfRange
	}
	r.cursor = index
	return nil
}

// FindByHeadTerm returns the index of the first entry whose head term equals term
// under Unicode case folding. The cursor is not moved.
func (r *Repository) FindByHeadTerm(term string) (int, error) {
	folder := cases.Fold()
	want := folder.String(term)
	for i, entry := range r.entries {
		if entry.HeadTerm == "" {
			continue
		}
		if folder.String(entry.HeadTerm) == want {
			return i, nil
		}
	}
	return -1, ErrNotFound
}

// RandomJump moves to a uniformly chosen entry other than the current one.
// It does nothing when there are fewer than two entries.
func (r *Repository) RandomJump() bool {
	if len(r.entries) <= 1 {
		return false
	}

	next := r.cursor
	for next == r.cursor {
		next = r.rand.Intn(len(r.entries))
	}
	r.cursor = next
	return true
}

func (r *Repository) IsFirst() bool {
	return len(r.entries) > 0 && r.cursor == 0
}

func (r *Repository) IsLast() bool {
	return len(r.entries) > 0 && r.cursor == len(r.entries)-1
}
