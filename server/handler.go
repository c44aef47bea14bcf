package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/pager/ecode"
	"github.com/ncobase/pager/logging/logger"
	"github.com/ncobase/pager/net/resp"
	"github.com/ncobase/pager/paging"
)

// LoadRequest is the body of PUT /items
type LoadRequest struct {
	Items    []any `json:"items" binding:"required"`
	PageSize int   `json:"page_size"`
}

// CursorRequest is the body of PUT /cursor
type CursorRequest struct {
	Page *int `json:"page" binding:"required"`
}

// Handler handles HTTP requests against a collection.
type Handler struct {
	collection *Collection
	logger     *logger.Logger
}

// NewHandler creates a new handler.
func NewHandler(collection *Collection, l *logger.Logger) *Handler {
	return &Handler{collection: collection, logger: l}
}

// RegisterRoutes registers the pager routes on r.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.PUT("/items", h.Load)
	r.GET("/items", h.All)
	r.GET("/pages", h.Paginate)
	r.GET("/pages/:page", h.Get)
	r.GET("/cursor", h.State)
	r.PUT("/cursor", h.ResetCursor)
	r.POST("/cursor/next", h.Next)
}

// Load replaces the collection and page size.
func (h *Handler) Load(c *gin.Context) {
	var req LoadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c.Writer, resp.BadRequest(ecode.FieldIsInvalid("request body"), err.Error()))
		return
	}

	state, err := h.collection.Load(c.Request.Context(), req.Items, req.PageSize)
	if err != nil {
		resp.Fail(c.Writer, resp.FromError(err))
		return
	}
	resp.Success(c.Writer, state)
}

// All returns the whole snapshot.
func (h *Handler) All(c *gin.Context) {
	resp.Success(c.Writer, map[string]any{"items": h.collection.All()})
}

// Get returns one page by number. Missing pages are empty, not 404.
func (h *Handler) Get(c *gin.Context) {
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil {
		resp.Fail(c.Writer, resp.BadRequest(ecode.FieldIsInvalid("page")))
		return
	}
	resp.Success(c.Writer, h.collection.Get(page))
}

// Paginate returns the page addressed by the cursor query parameter.
func (h *Handler) Paginate(c *gin.Context) {
	var params paging.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		resp.Fail(c.Writer, resp.BadRequest(ecode.FieldIsInvalid("query"), err.Error()))
		return
	}

	result, err := h.collection.Paginate(params)
	if err != nil {
		h.logger.Debugf(c.Request.Context(), "invalid cursor %q", params.Cursor)
		resp.Fail(c.Writer, resp.FromError(err))
		return
	}
	resp.Success(c.Writer, result)
}

// State returns the cursor state.
func (h *Handler) State(c *gin.Context) {
	resp.Success(c.Writer, h.collection.State())
}

// ResetCursor moves the cursor.
func (h *Handler) ResetCursor(c *gin.Context) {
	var req CursorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c.Writer, resp.BadRequest(ecode.FieldIsRequired("page"), err.Error()))
		return
	}
	resp.Success(c.Writer, h.collection.ResetCursor(*req.Page))
}

// Next advances the cursor and returns the page reached.
func (h *Handler) Next(c *gin.Context) {
	resp.WithStatusCode(c.Writer, http.StatusOK, h.collection.Next())
}
