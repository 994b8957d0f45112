package api

import (
	"errors"
	"net/http"
	"strconv"

	"quoteflow/internal/domain/actor"
	"quoteflow/internal/domain/quote"
	reqdto "quoteflow/internal/handler/dto/request"
	resdto "quoteflow/internal/handler/dto/response"
	"quoteflow/internal/handler/httperr"
	"quoteflow/internal/handler/middleware"
	"quoteflow/internal/pkg/errs"
	"quoteflow/internal/usecase/commands"
	"quoteflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QuoteHandler struct {
	cmds commands.QuoteCommands
	conv commands.ConversionCommands
	q    queries.QuoteQueries
}

func NewQuoteHandler(cmds commands.QuoteCommands, conv commands.ConversionCommands, q queries.QuoteQueries) *QuoteHandler {
	return &QuoteHandler{cmds: cmds, conv: conv, q: q}
}

var errNoActor = errors.New("actor missing from context")

// @Summary Create quote draft
// @Description Create a draft quote against a matched quote request
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateQuoteRequest true "Quote draft"
// @Success 201 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	act, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized")
		return
	}
	var req reqdto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	result, err := h.cmds.CreateDraft(c.Request.Context(), act, req.QuoteRequestID, req.ToInput())
	if err != nil {
		abortForError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), act, result.QuoteID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load quote")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromQuoteView(view))
}

// @Summary Update quote draft
// @Description Replace the content of a draft quote
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Param request body reqdto.QuoteContentRequest true "Quote content"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /quotes/{id} [put]
func (h *QuoteHandler) Update(c *gin.Context) {
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
	var req reqdto.QuoteContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	if err := h.cmds.UpdateDraft(c.Request.Context(), act, id, req.ToInput()); err != nil {
		abortForError(c, err)
		return
	}
	h.respondWithQuote(c, act, id, http.StatusOK)
}

// @Summary Send quote
// @Description Send a draft quote to the customer, starting its validity window
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /quotes/{id}/send [post]
func (h *QuoteHandler) Send(c *gin.Context) {
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
	if err := h.cmds.Send(c.Request.Context(), act, id); err != nil {
		abortForError(c, err)
		return
	}
	h.respondWithQuote(c, act, id, http.StatusOK)
}

// @Summary Respond to quote
// @Description Record the customer decision: accept converts into a booking, decline ends the quote, request_changes sends it back with a note
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Param request body reqdto.RespondToQuoteRequest true "Decision"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /quotes/{id}/respond [post]
func (h *QuoteHandler) Respond(c *gin.Context) {
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
	var req reqdto.RespondToQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}

	decision := quote.Decision(req.Decision)
	if decision == quote.DecisionAccept {
		result, err := h.conv.AcceptAndBook(c.Request.Context(), act, id, req.Location)
		if err != nil {
			abortForError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"quoteId":   result.QuoteID,
			"bookingId": result.BookingID,
			"status":    quote.StatusConverted.String(),
		})
		return
	}

	if err := h.cmds.Respond(c.Request.Context(), act, id, decision, req.Note); err != nil {
		abortForError(c, err)
		return
	}
	h.respondWithQuote(c, act, id, http.StatusOK)
}

// @Summary Revise quote
// @Description Replace the quote content and re-enter the awaiting-decision state
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Param request body reqdto.QuoteContentRequest true "New content"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /quotes/{id}/revise [post]
func (h *QuoteHandler) Revise(c *gin.Context) {
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
	var req reqdto.QuoteContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	if err := h.cmds.Revise(c.Request.Context(), act, id, req.ToInput()); err != nil {
		abortForError(c, err)
		return
	}
	h.respondWithQuote(c, act, id, http.StatusOK)
}

// @Summary Withdraw quote
// @Description Retract a quote the customer has not yet decided on
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /quotes/{id}/withdraw [post]
func (h *QuoteHandler) Withdraw(c *gin.Context) {
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
	if err := h.cmds.Withdraw(c.Request.Context(), act, id); err != nil {
		abortForError(c, err)
		return
	}
	h.respondWithQuote(c, act, id, http.StatusOK)
}

// @Summary Get quote
// @Description Get a quote by ID, with effective status and urgency for the caller
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quotes/{id} [get]
func (h *QuoteHandler) Get(c *gin.Context) {
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
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

// @Summary List quotes
// @Description List the caller's quotes, newest first. Vendors see their own pipeline, customers their received quotes
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param after query string false "Keyset cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.QuoteListResponse
// @Failure 401 {object} map[string]string
// @Router /quotes [get]
func (h *QuoteHandler) List(c *gin.Context) {
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

	var (
		items []*queries.QuoteListItem
		next  *queries.Cursor
		err   error
	)
	if act.IsVendor() {
		items, next, err = h.q.ListByVendor(c.Request.Context(), act, after, limit)
	} else {
		items, next, err = h.q.ListByCustomer(c.Request.Context(), act, after, limit)
	}
	if err != nil {
		abortForError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteListItems(items, next))
}

// @Summary Quote revision history
// @Description List superseded revisions of a quote, oldest first, with any change-request notes
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Success 200 {array} resdto.QuoteRevisionResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quotes/{id}/revisions [get]
func (h *QuoteHandler) Revisions(c *gin.Context) {
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
	views, err := h.q.RevisionHistory(c.Request.Context(), act, id)
	if err != nil {
		abortForError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteRevisionViews(views))
}

func (h *QuoteHandler) respondWithQuote(c *gin.Context, act actor.Actor, id uuid.UUID, status int) {
	view, err := h.q.GetByID(c.Request.Context(), act, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotAuthorized) {
			// Transition succeeded but the new state is no longer visible to
			// the caller; acknowledge without a body.
			c.Status(http.StatusNoContent)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load quote")
		return
	}
	c.JSON(status, resdto.FromQuoteView(view))
}
