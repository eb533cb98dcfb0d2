package createEvent

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clubFinance/internal/http-server/handlers/event/createEvent/mocks"
	"clubFinance/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	date := time.Now().Add(72 * time.Hour).UTC().Truncate(time.Second)
	deadline := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)

	validBody := fmt.Sprintf(`{
		"title": "Friday turf",
		"date": %q,
		"total_cost": 2000,
		"duration_minutes": 90,
		"deadline": %q
	}`, date.Format(time.RFC3339), deadline.Format(time.RFC3339))

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(mock *mocks.EventCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: validBody,
			mockSetup: func(mock *mocks.EventCreator) {
				mock.On("CreateEvent", "Friday turf", date, int64(2000), 90, deadline).Return(123, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","event_id":123}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name: "Missing title",
			requestBody: fmt.Sprintf(`{
				"date": %q,
				"total_cost": 2000,
				"duration_minutes": 90,
				"deadline": %q
			}`, date.Format(time.RFC3339), deadline.Format(time.RFC3339)),
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Title")
			},
		},
		{
			name: "Non-positive total cost",
			requestBody: fmt.Sprintf(`{
				"title": "Friday turf",
				"date": %q,
				"total_cost": -500,
				"duration_minutes": 90,
				"deadline": %q
			}`, date.Format(time.RFC3339), deadline.Format(time.RFC3339)),
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "TotalCost")
			},
		},
		{
			name: "Date in the past",
			requestBody: fmt.Sprintf(`{
				"title": "Friday turf",
				"date": "2020-01-01T18:00:00Z",
				"total_cost": 2000,
				"duration_minutes": 90,
				"deadline": %q
			}`, deadline.Format(time.RFC3339)),
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"event date must be in the future"}`,
		},
		{
			name: "Deadline after event date",
			requestBody: fmt.Sprintf(`{
				"title": "Friday turf",
				"date": %q,
				"total_cost": 2000,
				"duration_minutes": 90,
				"deadline": %q
			}`, deadline.Format(time.RFC3339), date.Format(time.RFC3339)),
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"deadline must be before the event date"}`,
		},
		{
			name:        "Internal server error",
			requestBody: validBody,
			mockSetup: func(mock *mocks.EventCreator) {
				mock.On("CreateEvent", "Friday turf", date, int64(2000), 90, deadline).Return(0, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to add event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewEventCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest("POST", "/events", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestResponseOK(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()

	responseOK(rr, req, 456)

	assert.Equal(t, http.StatusOK, rr.Code)

	var actualResponse EventResponse
	err := json.Unmarshal(rr.Body.Bytes(), &actualResponse)
	require.NoError(t, err)

	assert.Equal(t, "OK", actualResponse.Status)
	assert.Equal(t, "", actualResponse.Error)
	assert.Equal(t, 456, actualResponse.EventId)
}
