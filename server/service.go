package server

import (
	"context"
	"sync"

	"github.com/ncobase/pager/config"
	"github.com/ncobase/pager/logging/logger"
	"github.com/ncobase/pager/paging"
)

// State describes the pager position
type State struct {
	Cursor     int  `json:"cursor"`
	HasMore    bool `json:"has_more"`
	TotalPages int  `json:"total_pages"`
	PageSize   int  `json:"page_size"`
	Total      int  `json:"total"`
}

// Page is a single page lookup
type Page struct {
	Page    int   `json:"page"`
	Items   []any `json:"items"`
	HasMore bool  `json:"has_more"`
}

// Collection serializes access to one shared pager
type Collection struct {
	mu     sync.Mutex
	pager  *paging.Pager[any]
	cfg    *config.Config
	logger *logger.Logger
}

// NewCollection creates an empty collection paged with the configured size
func NewCollection(cfg *config.Config, l *logger.Logger) (*Collection, error) {
	p, err := paging.New[any](nil, cfg.GetPaging().PageSize)
	if err != nil {
		return nil, err
	}
	return &Collection{pager: p, cfg: cfg, logger: l}, nil
}

// Load re-initializes the pager. size 0 selects the configured default and
// sizes above the configured maximum are clamped.
func (c *Collection) Load(ctx context.Context, items []any, size int) (State, error) {
	pc := c.cfg.GetPaging()
	switch {
	case size == 0:
		size = pc.PageSize
	case size > 0:
		if clamped := paging.NormalizePageSize(size, pc.MaxPageSize); clamped != size {
			c.logger.Warnf(ctx, "page size %d exceeds maximum, using %d", size, clamped)
			size = clamped
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.pager.Init(items, size); err != nil {
		c.logger.Warnf(ctx, "rejected page size %d: %v", size, err)
		return State{}, err
	}
	c.logger.Infof(ctx, "loaded %d items into %d pages of %d", c.pager.Len(), c.pager.TotalPages(), size)
	return c.state(), nil
}

// State returns the current pager state
func (c *Collection) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state()
}

func (c *Collection) state() State {
	return State{
		Cursor:     c.pager.Cursor(),
		HasMore:    c.pager.HasMore(),
		TotalPages: c.pager.TotalPages(),
		PageSize:   c.pager.PageSize(),
		Total:      c.pager.Len(),
	}
}

// All returns the loaded snapshot
func (c *Collection) All() []any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return nonNil(c.pager.All())
}

// Get returns one page without moving the cursor
func (c *Collection) Get(page int) Page {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Page{
		Page:    page,
		Items:   nonNil(c.pager.Get(page)),
		HasMore: page+1 >= 0 && page+1 < c.pager.TotalPages(),
	}
}

// Paginate resolves a cursor token
func (c *Collection) Paginate(params paging.Params) (*paging.Result[any], error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return paging.Paginate(c.pager, params)
}

// Next advances the cursor
func (c *Collection) Next() Page {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := c.pager.Next()
	return Page{
		Page:    c.pager.Cursor(),
		Items:   nonNil(items),
		HasMore: c.pager.HasMore(),
	}
}

// ResetCursor moves the cursor without validation
func (c *Collection) ResetCursor(page int) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pager.ResetCursor(page)
	return c.state()
}

func nonNil(items []any) []any {
	if items == nil {
		return make([]any, 0)
	}
	return items
}
