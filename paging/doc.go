// Package paging provides an in-memory pagination engine that splits an
// ordered collection into fixed-size pages.
//
// The page index is built once, eagerly, when the pager is initialized.
// Random access and cursor traversal afterwards are plain lookups.
//
// # Basic Usage
//
//	p, err := paging.New(items, 20)
//	if err != nil {
//	    return err // paging.ErrInvalidPageSize
//	}
//
//	for p.HasMore() {
//	    render(p.Next())
//	}
//
// Omitting the size uses DefaultPageSize (15).
//
// # Cursor
//
// The cursor names the last visited page. It starts at BeforeFirst, so the
// first Next returns page 0. Once the last page has been returned, Next
// returns nil and the cursor stays put. ResetCursor accepts any value;
// positions outside the index simply produce empty pages.
//
//	p.ResetCursor(3)
//	page := p.Next() // page 4
//	p.Rewind()       // back to BeforeFirst
//
// # Random Access
//
//	p.Get(2)     // items of page 2, nil when out of range
//	p.All()      // the snapshot taken at initialization
//	p.Pages()    // iter.Seq2 over the whole index
//
// # Snapshots
//
// Init copies the input slice, so later changes to the caller's slice are
// not visible through the pager. Slices returned by Get, Next and All are
// views into that snapshot and must be treated as read-only. Their
// capacity is capped, so appending to one never overwrites another page.
//
// # Re-initialization
//
// Changing the data or the page size requires a full Init, which discards
// the previous index and rewinds the cursor:
//
//	if err := p.Init(newItems, 50); err != nil {
//	    return err
//	}
//
// # Cursor Tokens
//
// For APIs the package encodes page numbers as opaque tokens:
//
//	res, err := paging.Paginate(p, paging.Params{Cursor: r.URL.Query().Get("cursor")})
//	// {"items": [...], "page": 0, "next": "...", "has_next": true}
//
// Paginate does not move the pager cursor.
package paging
