package api

import (
	"context"
	"net/http"
	"strconv"

	"quoteflow/internal/domain/actor"
	reqdto "quoteflow/internal/handler/dto/request"
	resdto "quoteflow/internal/handler/dto/response"
	"quoteflow/internal/handler/httperr"
	"quoteflow/internal/handler/middleware"
	"quoteflow/internal/usecase/commands"
	"quoteflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RequestHandler struct {
	cmds   commands.RequestCommands
	q      queries.RequestQueries
	quotes queries.QuoteQueries
}

func NewRequestHandler(cmds commands.RequestCommands, q queries.RequestQueries, quotes queries.QuoteQueries) *RequestHandler {
	return &RequestHandler{cmds: cmds, q: q, quotes: quotes}
}

// @Summary Create request draft
// @Description Create a draft customer request; drafts may be partial
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CustomerRequestPayload true "Request draft"
// @Success 201 {object} resdto.RequestResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /requests [post]
func (h *RequestHandler) Create(c *gin.Context) {
	act, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized")
		return
	}
	var req reqdto.CustomerRequestPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	result, err := h.cmds.CreateDraft(c.Request.Context(), act, req.ToInput())
	if err != nil {
		abortForError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), act, result.RequestID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load request")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRequestView(view))
}

// @Summary Update request draft
// @Description Replace the content of a draft request
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.CustomerRequestPayload true "Request content"
// @Success 200 {object} resdto.RequestResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /requests/{id} [put]
func (h *RequestHandler) Update(c *gin.Context) {
	act, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id")
		return
	}
	var req reqdto.CustomerRequestPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	if err := h.cmds.UpdateDraft(c.Request.Context(), act, id, req.ToInput()); err != nil {
		abortForError(c, err)
		return
	}
	h.respondWithRequest(c, id)
}

// @Summary Submit request
// @Description Freeze the draft and make it visible for vendor matching
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.RequestResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /requests/{id}/submit [post]
func (h *RequestHandler) Submit(c *gin.Context) {
	h.transition(c, h.cmds.Submit)
}

// @Summary Reopen request draft
// @Description Revert a submitted request to draft while no vendor has responded
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.RequestResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /requests/{id}/reopen [post]
func (h *RequestHandler) Reopen(c *gin.Context) {
	h.transition(c, h.cmds.ReopenDraft)
}

// @Summary Cancel request
// @Description Cancel a request; outstanding quotes are invalidated on their next read
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.RequestResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /requests/{id}/cancel [post]
func (h *RequestHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cmds.Cancel)
}

// @Summary Match vendor
// @Description Pair a vendor with a submitted request, opening the slot the vendor quotes into
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.MatchVendorRequest true "Vendor to match"
// @Success 201 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /requests/{id}/match [post]
func (h *RequestHandler) Match(c *gin.Context) {
	act, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id")
		return
	}
	var req reqdto.MatchVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	result, err := h.cmds.MatchVendor(c.Request.Context(), act, id, req.VendorID)
	if err != nil {
		abortForError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"quoteRequestId": result.QuoteRequestID})
}

// @Summary Get request
// @Description Get a request by ID; matched vendors see it too
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.RequestResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /requests/{id} [get]
func (h *RequestHandler) Get(c *gin.Context) {
	act, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), act, id)
	if err != nil {
		abortForError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}

// @Summary List requests
// @Description List the caller's requests, newest first
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param after query string false "Keyset cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.RequestListResponse
// @Failure 401 {object} map[string]string
// @Router /requests [get]
func (h *RequestHandler) List(c *gin.Context) {
	act, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized")
		return
	}

	var after *queries.Cursor
	if v := c.Query("after"); v != "" {
		after = &queries.Cursor{After: v}
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, next, err := h.q.ListByCustomer(c.Request.Context(), act, after, limit)
	if err != nil {
		abortForError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestListItems(items, next))
}

// @Summary List quotes for request
// @Description List all quotes against a request that are visible to the caller
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.QuoteListResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /requests/{id}/quotes [get]
func (h *RequestHandler) Quotes(c *gin.Context) {
	act, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id")
		return
	}
	items, err := h.quotes.ListForRequest(c.Request.Context(), act, id)
	if err != nil {
		abortForError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteListItems(items, nil))
}

func (h *RequestHandler) transition(c *gin.Context, fn func(ctx context.Context, act actor.Actor, id uuid.UUID) error) {
	act, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id")
		return
	}
	if err := fn(c.Request.Context(), act, id); err != nil {
		abortForError(c, err)
		return
	}
	h.respondWithRequest(c, id)
}

func (h *RequestHandler) respondWithRequest(c *gin.Context, id uuid.UUID) {
	act, _ := middleware.GetActor(c)
	view, err := h.q.GetByID(c.Request.Context(), act, id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load request")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}
