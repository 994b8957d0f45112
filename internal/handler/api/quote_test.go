//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"quoteflow/internal/domain/actor"
	"quoteflow/internal/handler/api"
	resdto "quoteflow/internal/handler/dto/response"
	"quoteflow/internal/pkg/errs"
	"quoteflow/internal/usecase/commands"
	"quoteflow/internal/usecase/queries"
	"quoteflow/tests/common/builder"
	"quoteflow/tests/common/httptest"
	"quoteflow/tests/common/testutil"
	commandsmock "quoteflow/tests/mock/commands"
	queriesmock "quoteflow/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QuoteHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockCommands    *commandsmock.MockQuoteCommands
	mockConversions *commandsmock.MockConversionCommands
	mockQueries     *queriesmock.MockQuoteQueries
	handler         *api.QuoteHandler
}

func (s *QuoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockQuoteCommands(s.mockCtrl)
	s.mockConversions = commandsmock.NewMockConversionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockQuoteQueries(s.mockCtrl)
	s.handler = api.NewQuoteHandler(s.mockCommands, s.mockConversions, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("actor", actor.Actor{ID: uuid.New(), Role: actor.RoleVendor})
		c.Next()
	}

	// Setup routes
	s.router.POST("/quotes", authMiddleware, s.handler.Create)
	s.router.GET("/quotes", authMiddleware, s.handler.List)
	s.router.GET("/quotes/:id", authMiddleware, s.handler.Get)
	s.router.PUT("/quotes/:id", authMiddleware, s.handler.Update)
	s.router.POST("/quotes/:id/send", authMiddleware, s.handler.Send)
	s.router.POST("/quotes/:id/respond", authMiddleware, s.handler.Respond)
	s.router.POST("/quotes/:id/revise", authMiddleware, s.handler.Revise)
	s.router.POST("/quotes/:id/withdraw", authMiddleware, s.handler.Withdraw)
	s.router.GET("/quotes/:id/revisions", authMiddleware, s.handler.Revisions)
}

func (s *QuoteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuoteHandlerSuite(t *testing.T) {
	suite.Run(t, new(QuoteHandlerTestSuite))
}

type testCaseQuote struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *QuoteHandlerTestSuite) TestCreate() {
	url := "/quotes"

	reqBody := builder.NewQuoteBuilder().BuildCreateRequestDTO()
	returnView := builder.NewQuoteBuilder().BuildView("draft")
	expectedResult := &commands.CreateQuoteResult{QuoteID: returnView.ID}

	bound := []testCaseQuote{
		{name: "deposit boundary OK (0)", mutate: testutil.Field("deposit_percent", 0), expectCode: http.StatusCreated},
		{name: "deposit boundary OK (100)", mutate: testutil.Field("deposit_percent", 100), expectCode: http.StatusCreated},
		{name: "deposit boundary invalid (101)", mutate: testutil.Field("deposit_percent", 101), expectCode: http.StatusBadRequest},
		{name: "deposit boundary invalid (-1)", mutate: testutil.Field("deposit_percent", -1), expectCode: http.StatusBadRequest},
		{name: "unknown validity duration", mutate: testutil.Field("validity_duration", "90_days"), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseQuote{
		{name: "missing field: quote_request_id (required)", mutate: testutil.Field("quote_request_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: line_items (required)", mutate: testutil.Field("line_items", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: validity_duration (required)", mutate: testutil.Field("validity_duration", nil), expectCode: http.StatusBadRequest},
	}

	empty := []testCaseQuote{
		{name: "empty line_items", mutate: testutil.Field("line_items", []any{}), expectCode: http.StatusBadRequest},
	}

	allValidationTestCases := [][]testCaseQuote{bound, missing, empty}

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().CreateDraft(gomock.Any(), gomock.Any(), reqBody.QuoteRequestID, gomock.Any()).
			Return(expectedResult, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal("draft", response.Status)
		s.Equal(returnView.Total, response.Total)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().CreateDraft(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
							Return(expectedResult, nil).Times(1)
						s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), returnView.ID).
							Return(returnView, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "unknown quote request", commandsError: errs.ErrQuoteRequestNotFound, expectedStatus: http.StatusNotFound},
			{name: "slot already has an active quote", commandsError: errs.ErrConflict, expectedStatus: http.StatusConflict},
			{name: "matched to another vendor", commandsError: errs.ErrNotAuthorized, expectedStatus: http.StatusForbidden},
			{name: "cancelled request", commandsError: errs.ErrInvalidState, expectedStatus: http.StatusConflict},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateDraft(gomock.Any(), gomock.Any(), reqBody.QuoteRequestID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// ================================================================================
// TestSend
// ================================================================================

func (s *QuoteHandlerTestSuite) TestSend() {
	quoteID := uuid.New()
	url := "/quotes/" + quoteID.String() + "/send"

	returnView := builder.NewQuoteBuilder().BuildView("sent")
	returnView.ID = quoteID

	s.Run("success: returns 200 OK with the sent quote", func() {
		s.mockCommands.EXPECT().Send(gomock.Any(), gomock.Any(), quoteID).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), quoteID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("sent", response.Status)
		s.NotNil(response.ExpiresAt)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotes/invalid-uuid/send", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "quote not found", commandsError: errs.ErrQuoteNotFound, expectedStatus: http.StatusNotFound},
			{name: "already sent", commandsError: errs.ErrInvalidState, expectedStatus: http.StatusConflict},
			{name: "lost a concurrent update", commandsError: errs.ErrConflict, expectedStatus: http.StatusConflict},
			{name: "not the owning vendor", commandsError: errs.ErrNotAuthorized, expectedStatus: http.StatusForbidden},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Send(gomock.Any(), gomock.Any(), quoteID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// ================================================================================
// TestRespond
// ================================================================================

func (s *QuoteHandlerTestSuite) TestRespond() {
	quoteID := uuid.New()
	url := "/quotes/" + quoteID.String() + "/respond"

	s.Run("success: accept converts into a booking", func() {
		bookingID := uuid.New()
		s.mockConversions.EXPECT().AcceptAndBook(gomock.Any(), gomock.Any(), quoteID, (*string)(nil)).
			Return(&commands.AcceptAndBookResult{QuoteID: quoteID, BookingID: bookingID}, nil).Times(1)

		body := map[string]any{"decision": "accept"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")

		var response map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(quoteID.String(), response["quoteId"])
		s.Equal(bookingID.String(), response["bookingId"])
		s.Equal("converted", response["status"])
	})

	s.Run("success: accept forwards the location override", func() {
		location := "Rooftop Terrace"
		s.mockConversions.EXPECT().AcceptAndBook(gomock.Any(), gomock.Any(), quoteID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ actor.Actor, _ uuid.UUID, loc *string) (*commands.AcceptAndBookResult, error) {
				s.Require().NotNil(loc)
				s.Equal(location, *loc)
				return &commands.AcceptAndBookResult{QuoteID: quoteID, BookingID: uuid.New()}, nil
			}).Times(1)

		body := map[string]any{"decision": "accept", "location": location}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: decline goes through the respond command", func() {
		returnView := builder.NewQuoteBuilder().BuildView("declined")
		returnView.ID = quoteID

		s.mockCommands.EXPECT().Respond(gomock.Any(), gomock.Any(), quoteID, gomock.Any(), "").
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), quoteID).
			Return(returnView, nil).Times(1)

		body := map[string]any{"decision": "decline"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("declined", response.Status)
	})

	s.Run("success: request_changes carries the note", func() {
		returnView := builder.NewQuoteBuilder().BuildView("changes_requested")
		returnView.ID = quoteID

		s.mockCommands.EXPECT().Respond(gomock.Any(), gomock.Any(), quoteID, gomock.Any(), "Add teardown").
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), quoteID).
			Return(returnView, nil).Times(1)

		body := map[string]any{"decision": "request_changes", "note": "Add teardown"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for unknown decision", func() {
		body := map[string]any{"decision": "maybe"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 410 Gone for an expired quote", func() {
		s.mockConversions.EXPECT().AcceptAndBook(gomock.Any(), gomock.Any(), quoteID, (*string)(nil)).
			Return(nil, errs.ErrExpired).Times(1)

		body := map[string]any{"decision": "accept"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusGone, "expired")
	})

	s.Run("error: 410 Gone when already converted", func() {
		s.mockConversions.EXPECT().AcceptAndBook(gomock.Any(), gomock.Any(), quoteID, (*string)(nil)).
			Return(nil, errs.ErrAlreadyConverted).Times(1)

		body := map[string]any{"decision": "accept"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusGone, "already converted")
	})

	s.Run("error: 400 Bad Request when the note is missing", func() {
		s.mockCommands.EXPECT().Respond(gomock.Any(), gomock.Any(), quoteID, gomock.Any(), "").
			Return(errs.ErrValidation).Times(1)

		body := map[string]any{"decision": "request_changes"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestRevise
// ================================================================================

func (s *QuoteHandlerTestSuite) TestRevise() {
	quoteID := uuid.New()
	url := "/quotes/" + quoteID.String() + "/revise"

	reqBody := builder.NewQuoteBuilder().BuildCreateRequestDTO().QuoteContentRequest
	returnView := builder.NewQuoteBuilder().BuildView("revised")
	returnView.ID = quoteID
	returnView.Revision = 1

	s.Run("success: returns 200 OK with the revised quote", func() {
		s.mockCommands.EXPECT().Revise(gomock.Any(), gomock.Any(), quoteID, gomock.Any()).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), quoteID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(1, response.Revision)
		s.Equal("revised", response.Status)
	})

	s.Run("error: 400 Bad Request on invalid content", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("line_items", []any{}))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "declined quote cannot be revised", commandsError: errs.ErrInvalidState, expectedStatus: http.StatusConflict},
			{name: "expired quote", commandsError: errs.ErrExpired, expectedStatus: http.StatusGone},
			{name: "not the owning vendor", commandsError: errs.ErrNotAuthorized, expectedStatus: http.StatusForbidden},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Revise(gomock.Any(), gomock.Any(), quoteID, gomock.Any()).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// ================================================================================
// TestWithdraw
// ================================================================================

func (s *QuoteHandlerTestSuite) TestWithdraw() {
	quoteID := uuid.New()
	url := "/quotes/" + quoteID.String() + "/withdraw"

	returnView := builder.NewQuoteBuilder().BuildView("withdrawn")
	returnView.ID = quoteID

	s.Run("success: returns 200 OK with the withdrawn quote", func() {
		s.mockCommands.EXPECT().Withdraw(gomock.Any(), gomock.Any(), quoteID).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), quoteID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 409 Conflict once the customer accepted", func() {
		s.mockCommands.EXPECT().Withdraw(gomock.Any(), gomock.Any(), quoteID).
			Return(errs.ErrInvalidState).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("error: 410 Gone once converted", func() {
		s.mockCommands.EXPECT().Withdraw(gomock.Any(), gomock.Any(), quoteID).
			Return(errs.ErrAlreadyConverted).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusGone, "")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *QuoteHandlerTestSuite) TestGet() {
	quoteID := uuid.New()
	url := "/quotes/" + quoteID.String()

	returnView := builder.NewQuoteBuilder().BuildView("sent")
	returnView.ID = quoteID
	returnView.TimeRemaining = "days"

	s.Run("success: returns 200 OK with QuoteResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), quoteID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(quoteID, response.ID)
		s.Equal("days", response.TimeRemaining)
		s.Equal(returnView.Total, response.Total)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quotes/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing quote", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), quoteID).
			Return(nil, errs.ErrQuoteNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 403 Forbidden for another vendor's draft", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), quoteID).
			Return(nil, errs.ErrNotAuthorized).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *QuoteHandlerTestSuite) TestList() {
	url := "/quotes"

	items := []*queries.QuoteListItem{
		builder.NewQuoteBuilder().BuildListItem("sent"),
		builder.NewQuoteBuilder().BuildListItem("accepted"),
	}

	s.Run("success: vendors list their pipeline", func() {
		s.mockQueries.EXPECT().ListByVendor(gomock.Any(), gomock.Any(), (*queries.Cursor)(nil), 20).
			Return(items, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		listed, ok := response["items"].([]any)
		s.True(ok)
		s.Equal(len(items), len(listed))
	})

	s.Run("success: pagination parameters pass through", func() {
		nextCursor := &queries.Cursor{After: "next_cursor456"}
		s.mockQueries.EXPECT().ListByVendor(gomock.Any(), gomock.Any(), &queries.Cursor{After: "cursor123"}, 10).
			Return(items[:1], nextCursor, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=10&after=cursor123", nil, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("next_cursor456", response["nextCursor"])
	})

	s.Run("success: customers list received quotes", func() {
		customerRouter := gin.New()
		customerAuth := func(c *gin.Context) {
			c.Set("actor", actor.Actor{ID: uuid.New(), Role: actor.RoleCustomer})
			c.Next()
		}
		customerRouter.GET("/quotes", customerAuth, s.handler.List)

		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), gomock.Any(), (*queries.Cursor)(nil), 20).
			Return(items, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), customerRouter, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for a garbled cursor", func() {
		s.mockQueries.EXPECT().ListByVendor(gomock.Any(), gomock.Any(), &queries.Cursor{After: "garbage"}, 20).
			Return(nil, nil, errs.ErrValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=garbage", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

// ================================================================================
// TestRevisions
// ================================================================================

func (s *QuoteHandlerTestSuite) TestRevisions() {
	quoteID := uuid.New()
	url := "/quotes/" + quoteID.String() + "/revisions"

	note := "Add teardown"
	views := []*queries.QuoteRevisionView{
		{Revision: 0, Total: 600, Status: "changes_requested", DecisionNote: &note},
		{Revision: 1, Total: 900, Status: "revised"},
	}

	s.Run("success: returns revisions oldest first", func() {
		s.mockQueries.EXPECT().RevisionHistory(gomock.Any(), gomock.Any(), quoteID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.QuoteRevisionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal(0, response[0].Revision)
		s.Require().NotNil(response[0].DecisionNote)
		s.Equal(note, *response[0].DecisionNote)
		s.Nil(response[1].DecisionNote)
	})

	s.Run("error: 404 Not Found for missing quote", func() {
		s.mockQueries.EXPECT().RevisionHistory(gomock.Any(), gomock.Any(), quoteID).
			Return(nil, errs.ErrQuoteNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
