package editEvent

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"clubFinance/internal/http-server/handlers/event/editEvent/mocks"
	"clubFinance/internal/lib/logger/handlers/slogdiscard"
	"clubFinance/internal/lifecycle"
	"clubFinance/internal/models"
	"clubFinance/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	newCost := int64(2100)

	testCases := []struct {
		name           string
		url            string
		requestBody    string
		mockSetup      func(mock *mocks.EventEditor)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Cost edit",
			url:         "/events/9",
			requestBody: `{"actor": "treasurer", "total_cost": 2100}`,
			mockSetup: func(mock *mocks.EventEditor) {
				mock.On("EditEvent", 9, models.EventUpdate{TotalCost: &newCost}, "treasurer").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "No fields to edit",
			url:            "/events/9",
			requestBody:    `{"actor": "treasurer"}`,
			mockSetup:      func(mock *mocks.EventEditor) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"at least one field must be edited"}`,
		},
		{
			name:        "Locked event",
			url:         "/events/9",
			requestBody: `{"actor": "treasurer", "total_cost": 2100}`,
			mockSetup: func(mock *mocks.EventEditor) {
				mock.On("EditEvent", 9, models.EventUpdate{TotalCost: &newCost}, "treasurer").Return(
					fmt.Errorf("%w: cannot edit a locked event", lifecycle.ErrGuardViolation))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"transition not permitted: cannot edit a locked event"}`,
		},
		{
			name:        "Event not found",
			url:         "/events/9",
			requestBody: `{"actor": "treasurer", "total_cost": 2100}`,
			mockSetup: func(mock *mocks.EventEditor) {
				mock.On("EditEvent", 9, models.EventUpdate{TotalCost: &newCost}, "treasurer").Return(storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockEditor := mocks.NewEventEditor(t)
			tc.mockSetup(mockEditor)

			router := chi.NewRouter()
			router.Patch("/events/{id}", New(logger, mockEditor))

			req, err := http.NewRequest("PATCH", tc.url, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
