package dto_test

import (
	"encoding/json"
	"propbook/internal/domains/booking/model"
	"propbook/internal/domains/booking/model/dto"
	"propbook/shared/validator"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingFields_ToModel(t *testing.T) {
	now := time.Date(2030, time.January, 2, 10, 0, 0, 0, time.UTC)
	req := dto.CreateBookingRequest{
		Name:        "Bob",
		PhoneNumber: "9876543210",
		Property:    "PropA",
		Date:        "25-12-2030",
	}

	fields := req.Fields()
	booking := fields.ToModel(now)

	assert.Empty(t, booking.ID)
	assert.Equal(t, "Bob", booking.Name)
	assert.Equal(t, "9876543210", booking.PhoneNumber)
	assert.Equal(t, "PropA", booking.Property)
	assert.Equal(t, "25-12-2030", booking.Date)
	assert.Equal(t, now, booking.CreatedAt)
	assert.Equal(t, now, booking.ModifiedAt)
}

func TestCreateBookingRequest_Fields(t *testing.T) {
	var req dto.CreateBookingRequest

	body := `{"name":"Bob","phone_number":9876543210,"property":"PropA","date":""}`
	require.NoError(t, validator.Decode(strings.NewReader(body), &req))

	fields := req.Fields()

	assert.Equal(t, "Bob", fields.Name)
	assert.Equal(t, "9876543210", fields.PhoneNumber)
	assert.Equal(t, "PropA", fields.Property)
	assert.Empty(t, fields.Date)
}

func TestBookingIDs_OnlyStringsMatch(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		wantID string
	}{
		{name: "string id", body: `{"booking_id":"BN000001"}`, wantID: "BN000001"},
		{name: "numeric id", body: `{"booking_id":1}`, wantID: ""},
		{name: "missing id", body: `{}`, wantID: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var update dto.UpdateBookingRequest
			require.NoError(t, validator.Decode(strings.NewReader(tt.body), &update))
			assert.Equal(t, tt.wantID, update.ID())

			var cancel dto.CancelBookingRequest
			require.NoError(t, validator.Decode(strings.NewReader(tt.body), &cancel))
			assert.Equal(t, tt.wantID, cancel.ID())
		})
	}
}

func TestUpdateBookingRequest_Date(t *testing.T) {
	assert.Equal(t, "01-01-2031", (&dto.UpdateBookingRequest{NewDate: "01-01-2031"}).Date())
	assert.Equal(t, "20310101", (&dto.UpdateBookingRequest{NewDate: json.Number("20310101")}).Date())
	assert.Empty(t, (&dto.UpdateBookingRequest{NewDate: false}).Date())
	assert.Empty(t, (&dto.UpdateBookingRequest{}).Date())
}

func TestResponses_WireFormat(t *testing.T) {
	created, err := json.Marshal(dto.CreateBookingResponse{Success: true, BookingID: "BN000001"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"booking_id":"BN000001"}`, string(created))

	updated, err := json.Marshal(dto.UpdateBookingResponse{Success: true, BookingID: "BN000001", NewDate: "01-01-2031"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"booking_id":"BN000001","new_date":"01-01-2031"}`, string(updated))

	cancelled, err := json.Marshal(dto.CancelBookingResponse{Success: true, BookingID: "BN000001"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"booking_id":"BN000001"}`, string(cancelled))
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	created := time.Date(2030, time.January, 2, 10, 0, 0, 0, time.UTC)
	models := []model.Booking{
		{ID: "BN000001", Name: "Bob", PhoneNumber: "9876543210", Property: "PropA", Date: "25-12-2030", CreatedAt: created, ModifiedAt: created},
		{ID: "BN000002", Name: "Eve", PhoneNumber: "9876543211", Property: "PropB", Date: "26-12-2030", CreatedAt: created, ModifiedAt: created},
	}

	var res dto.GetBookingsResponse
	res.FromModels(models)

	assert.True(t, res.Success)
	assert.Equal(t, 2, res.Total)
	require.Len(t, res.Bookings, 2)
	assert.Equal(t, "BN000002", res.Bookings[1].BookingID)
	assert.Equal(t, "PropB", res.Bookings[1].Property)
	assert.NotEmpty(t, res.Bookings[0].CreatedAt)
}

func TestGetBookingsResponse_EmptyListIsNotNull(t *testing.T) {
	var res dto.GetBookingsResponse
	res.FromModels(nil)

	body, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"bookings":[],"total":0}`, string(body))
}
