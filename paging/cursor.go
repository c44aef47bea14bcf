package paging

import (
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/ncobase/pager/ecode"
)

const cursorPrefix = "page:"

// ErrInvalidCursor is returned when a cursor token cannot be decoded
var ErrInvalidCursor = ecode.New(ecode.ParamErr, ecode.FieldIsInvalid("cursor"))

// Params holds the pagination parameters of a request
type Params struct {
	Cursor string `json:"cursor" form:"cursor"`
}

// Result holds one page and the token of the page after it
type Result[T any] struct {
	Items       []T    `json:"items"`
	Page        int    `json:"page"`
	Total       int    `json:"total"`
	TotalPages  int    `json:"total_pages"`
	NextCursor  string `json:"next,omitempty"`
	HasNextPage bool   `json:"has_next"`
}

// NormalizePageSize clamps a requested page size.
// Non-positive sizes fall back to DefaultPageSize; maxSize <= 0 disables the upper bound.
func NormalizePageSize(size, maxSize int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if maxSize > 0 && size > maxSize {
		size = maxSize
	}
	return size
}

// EncodeCursor encodes a page number to an opaque cursor token
func EncodeCursor(page int) string {
	return base64.RawURLEncoding.EncodeToString([]byte(cursorPrefix + strconv.Itoa(page)))
}

// DecodeCursor decodes a cursor token to a page number. The empty token is page 0.
func DecodeCursor(cursor string) (int, error) {
	if cursor == "" {
		return 0, nil
	}
	b, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return 0, ErrInvalidCursor
	}
	raw, ok := strings.CutPrefix(string(b), cursorPrefix)
	if !ok {
		return 0, ErrInvalidCursor
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 0 {
		return 0, ErrInvalidCursor
	}
	return page, nil
}

// Paginate returns the page addressed by params.Cursor.
// It reads the page index directly and leaves the pager cursor untouched.
// A cursor past the last page yields an empty result, not an error.
func Paginate[T any](p *Pager[T], params Params) (*Result[T], error) {
	page, err := DecodeCursor(params.Cursor)
	if err != nil {
		return nil, err
	}

	items := p.Get(page)
	if items == nil {
		items = make([]T, 0)
	}

	result := &Result[T]{
		Items:      items,
		Page:       page,
		Total:      p.Len(),
		TotalPages: p.TotalPages(),
	}
	if page < p.TotalPages()-1 {
		result.HasNextPage = true
		result.NextCursor = EncodeCursor(page + 1)
	}
	return result, nil
}
