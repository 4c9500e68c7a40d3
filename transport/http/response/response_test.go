package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"propbook/shared/failure"
	"propbook/transport/http/response"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithJSON(recorder, http.StatusOK, map[string]bool{"is_valid": true})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"is_valid":true}`, recorder.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "bad request",
			err:      failure.MissingRequiredFields,
			wantCode: http.StatusBadRequest,
			wantBody: `{"success":false,"message":"Missing required fields."}`,
		},
		{
			name:     "not found",
			err:      failure.BookingNotFound,
			wantCode: http.StatusNotFound,
			wantBody: `{"success":false,"message":"Booking not found."}`,
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"success":false,"message":"boom"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			response.WithError(recorder, tt.err)

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.JSONEq(t, tt.wantBody, recorder.Body.String())
		})
	}
}

func TestCannedResponses(t *testing.T) {
	recorder := httptest.NewRecorder()
	response.WithRequestLimitExceeded(recorder)
	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.JSONEq(t, `{"success":false,"message":"REQUEST LIMIT EXCEEDED"}`, recorder.Body.String())

	recorder = httptest.NewRecorder()
	response.WithPreparingShutdown(recorder)
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.JSONEq(t, `{"success":false,"message":"SERVER PREPARING TO SHUT DOWN"}`, recorder.Body.String())
}
