package booking_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"propbook/config"
	"propbook/infras/kafka"
	"propbook/infras/metrics"
	"propbook/infras/otel/mocks"
	"propbook/internal/domains/booking/repository"
	"propbook/internal/domains/booking/service"
	"propbook/internal/handlers/booking"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Name = "propbook"

	otel := mocks.NewOtel()
	svc := service.New(repository.New(otel), kafka.New(cfg), metrics.New(cfg), otel)
	handler := booking.New(svc, otel)

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func do(t *testing.T, router http.Handler, method, path, body string) (int, map[string]any) {
	t.Helper()

	var request *http.Request
	if body == "" {
		request = httptest.NewRequest(method, path, nil)
	} else {
		request = httptest.NewRequest(method, path, strings.NewReader(body))
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	res := map[string]any{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))

	return recorder.Code, res
}

const createBob = `{"name":"Bob","phone_number":"9876543210","property":"PropA","date":"25-12-2030"}`

func TestHandler_CreateBooking(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantBody map[string]any
	}{
		{
			name:     "all fields present",
			body:     createBob,
			wantCode: http.StatusOK,
			wantBody: map[string]any{"success": true, "booking_id": "BN000001"},
		},
		{
			name:     "missing phone number",
			body:     `{"name":"Bob","property":"PropA","date":"25-12-2030"}`,
			wantCode: http.StatusBadRequest,
			wantBody: map[string]any{"success": false, "message": "Missing required fields."},
		},
		{
			name:     "empty name",
			body:     `{"name":"","phone_number":"9876543210","property":"PropA","date":"25-12-2030"}`,
			wantCode: http.StatusBadRequest,
			wantBody: map[string]any{"success": false, "message": "Missing required fields."},
		},
		{
			name:     "no body",
			wantCode: http.StatusBadRequest,
			wantBody: map[string]any{"success": false, "message": "Missing required fields."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := do(t, newRouter(t), http.MethodPost, "/create-booking", tt.body)

			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestHandler_CreateBooking_MalformedBody(t *testing.T) {
	code, body := do(t, newRouter(t), http.MethodPost, "/create-booking", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["message"])
}

func TestHandler_CreateBooking_AcceptsInvalidPhone(t *testing.T) {
	code, body := do(t, newRouter(t), http.MethodPost, "/create-booking",
		`{"name":"Al","phone_number":"abc","property":"P","date":"01-01-2000"}`)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "BN000001", body["booking_id"])
}

func TestHandler_BookingLifecycle(t *testing.T) {
	router := newRouter(t)

	_, body := do(t, router, http.MethodPost, "/create-booking", createBob)
	assert.Equal(t, "BN000001", body["booking_id"])

	_, body = do(t, router, http.MethodPost, "/create-booking", createBob)
	assert.Equal(t, "BN000002", body["booking_id"])

	code, body := do(t, router, http.MethodPost, "/update-booking", `{"booking_id":"BN000001","new_date":"01-01-2031"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"success": true, "booking_id": "BN000001", "new_date": "01-01-2031"}, body)

	code, body = do(t, router, http.MethodGet, "/bookings/BN000001", "")
	require.Equal(t, http.StatusOK, code)

	record, ok := body["booking"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "01-01-2031", record["date"])
	assert.Equal(t, "Bob", record["name"])

	code, body = do(t, router, http.MethodPost, "/cancel-booking", `{"booking_id":"BN000001"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"success": true, "booking_id": "BN000001"}, body)

	code, body = do(t, router, http.MethodPost, "/cancel-booking", `{"booking_id":"BN000001"}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, map[string]any{"success": false, "message": "Booking not found."}, body)

	code, body = do(t, router, http.MethodPost, "/update-booking", `{"booking_id":"BN000001","new_date":"02-01-2031"}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, map[string]any{"success": false, "message": "Booking not found or missing new date."}, body)

	code, body = do(t, router, http.MethodGet, "/bookings", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["total"])

	code, body = do(t, router, http.MethodGet, "/bookings/BN000001", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Booking not found.", body["message"])
}

func TestHandler_UpdateBooking_MissingNewDate(t *testing.T) {
	router := newRouter(t)

	do(t, router, http.MethodPost, "/create-booking", createBob)

	code, body := do(t, router, http.MethodPost, "/update-booking", `{"booking_id":"BN000001"}`)

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, map[string]any{"success": false, "message": "Booking not found or missing new date."}, body)
}

func TestHandler_CancelBooking_EmptyStore(t *testing.T) {
	code, body := do(t, newRouter(t), http.MethodPost, "/cancel-booking", `{"booking_id":"BN999999"}`)

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, map[string]any{"success": false, "message": "Booking not found."}, body)
}

func TestHandler_CreateBooking_NonStringFields(t *testing.T) {
	router := newRouter(t)

	code, body := do(t, router, http.MethodPost, "/create-booking",
		`{"name":"Bob","phone_number":9876543210,"property":"PropA","date":"25-12-2030"}`)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"success": true, "booking_id": "BN000001"}, body)

	code, body = do(t, router, http.MethodGet, "/bookings/BN000001", "")
	require.Equal(t, http.StatusOK, code)

	record, ok := body["booking"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "9876543210", record["phone_number"])

	code, body = do(t, router, http.MethodPost, "/create-booking",
		`{"name":"Bob","phone_number":0,"property":"PropA","date":"25-12-2030"}`)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, map[string]any{"success": false, "message": "Missing required fields."}, body)
}

func TestHandler_NumericBookingID(t *testing.T) {
	router := newRouter(t)

	do(t, router, http.MethodPost, "/create-booking", createBob)

	code, body := do(t, router, http.MethodPost, "/update-booking", `{"booking_id":1,"new_date":"01-01-2031"}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, map[string]any{"success": false, "message": "Booking not found or missing new date."}, body)

	code, body = do(t, router, http.MethodPost, "/cancel-booking", `{"booking_id":1}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, map[string]any{"success": false, "message": "Booking not found."}, body)

	code, _ = do(t, router, http.MethodGet, "/bookings/BN000001", "")
	assert.Equal(t, http.StatusOK, code)
}

func TestHandler_RejectionsAreNotLoggedAsErrors(t *testing.T) {
	var buf bytes.Buffer

	previous := log.Logger
	log.Logger = zerolog.New(&buf)

	t.Cleanup(func() { log.Logger = previous })

	router := newRouter(t)

	do(t, router, http.MethodPost, "/create-booking", `{}`)
	do(t, router, http.MethodPost, "/update-booking", `{"booking_id":"BN000404","new_date":"01-01-2031"}`)
	do(t, router, http.MethodPost, "/cancel-booking", `{"booking_id":"BN000404"}`)

	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.NotContains(t, buf.String(), `"level":"error"`)
}
