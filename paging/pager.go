package paging

import (
	"iter"
	"slices"

	"github.com/ncobase/pager/ecode"
)

const (
	// DefaultPageSize is used when no page size is given
	DefaultPageSize = 15
	// BeforeFirst is the cursor position before the first page
	BeforeFirst = -1
)

// ErrInvalidPageSize is returned when a page size is not positive
var ErrInvalidPageSize = ecode.New(ecode.ParamErr, ecode.FieldMustBePositive("page size"))

// Pager partitions a snapshot of items into fixed-size pages.
// The page index is built eagerly on Init so every lookup is O(1).
//
// A Pager is not safe for concurrent use.
type Pager[T any] struct {
	items  []T
	pages  [][]T
	size   int
	cursor int
}

// New creates a pager over items. size defaults to DefaultPageSize.
func New[T any](items []T, size ...int) (*Pager[T], error) {
	p := &Pager[T]{}
	if err := p.Init(items, size...); err != nil {
		return nil, err
	}
	return p, nil
}

// Init replaces the snapshot, rebuilds the page index and rewinds the cursor.
// On error the pager keeps its previous state.
func (p *Pager[T]) Init(items []T, size ...int) error {
	n := DefaultPageSize
	if len(size) > 0 {
		n = size[0]
	}
	if n <= 0 {
		return ErrInvalidPageSize
	}

	p.items = slices.Clone(items)
	p.size = n
	p.cursor = BeforeFirst
	p.pages = buildIndex(p.items, n)
	return nil
}

// buildIndex slices items into ceil(len/size) pages.
// Each page is capacity-capped so appends never spill into the next page.
// size may be as large as math.MaxInt, so no sum here may exceed len(items).
func buildIndex[T any](items []T, size int) [][]T {
	total := len(items) / size
	if len(items)%size != 0 {
		total++
	}
	pages := make([][]T, total)
	for page := range total {
		lo := page * size
		hi := lo + min(size, len(items)-lo)
		pages[page] = items[lo:hi:hi]
	}
	return pages
}

// HasMore reports whether Next would return another page
func (p *Pager[T]) HasMore() bool {
	return p.cursor+1 >= 0 && p.cursor+1 < len(p.pages)
}

// Next advances the cursor and returns the page under it.
// Once exhausted it returns nil and leaves the cursor where it is.
func (p *Pager[T]) Next() []T {
	if !p.HasMore() {
		return nil
	}
	p.cursor++
	return p.pages[p.cursor]
}

// Current returns the page under the cursor
func (p *Pager[T]) Current() []T {
	return p.Get(p.cursor)
}

// Cursor returns the last visited page, BeforeFirst after Init or Rewind
func (p *Pager[T]) Cursor() int {
	return p.cursor
}

// ResetCursor moves the cursor to page without validating it.
// The following Next returns page+1.
func (p *Pager[T]) ResetCursor(page int) {
	p.cursor = page
}

// Rewind moves the cursor back before the first page
func (p *Pager[T]) Rewind() {
	p.cursor = BeforeFirst
}

// Get returns the items of page, or nil when the page does not exist
func (p *Pager[T]) Get(page int) []T {
	if page < 0 || page >= len(p.pages) {
		return nil
	}
	return p.pages[page]
}

// All returns the snapshot taken by the last Init
func (p *Pager[T]) All() []T {
	return p.items[:len(p.items):len(p.items)]
}

// Pages iterates the page index in order without moving the cursor
func (p *Pager[T]) Pages() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for i, page := range p.pages {
			if !yield(i, page) {
				return
			}
		}
	}
}

// TotalPages returns the number of pages
func (p *Pager[T]) TotalPages() int {
	return len(p.pages)
}

// PageSize returns the configured page size
func (p *Pager[T]) PageSize() int {
	return p.size
}

// Len returns the number of items in the snapshot
func (p *Pager[T]) Len() int {
	return len(p.items)
}
