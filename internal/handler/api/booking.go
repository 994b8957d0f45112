package api

import (
	"net/http"
	"strconv"

	resdto "quoteflow/internal/handler/dto/response"
	"quoteflow/internal/handler/httperr"
	"quoteflow/internal/handler/middleware"
	"quoteflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	q queries.BookingQueries
}

func NewBookingHandler(q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{q: q}
}

// @Summary Get booking
// @Description Get a booking by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
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
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description List the caller's bookings, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	act, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	views, err := h.q.ListByActor(c.Request.Context(), act, limit)
	if err != nil {
		abortForError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}
