package dto

import (
	"propbook/internal/domains/booking/model"
	"propbook/shared/constant"
	"propbook/shared/timezone"
	"propbook/shared/validator"
	"time"
)

// CreateBookingRequest accepts any JSON value for each field. A field is
// present when it is truthy; its text form is what gets stored.
type CreateBookingRequest struct {
	Name        any `json:"name"`
	PhoneNumber any `json:"phone_number"`
	Property    any `json:"property"`
	Date        any `json:"date"`
}

// Fields returns the text form of every field, empty for falsy values.
func (c *CreateBookingRequest) Fields() CreateBookingFields {
	return CreateBookingFields{
		Name:        validator.Text(c.Name),
		PhoneNumber: validator.Text(c.PhoneNumber),
		Property:    validator.Text(c.Property),
		Date:        validator.Text(c.Date),
	}
}

type CreateBookingFields struct {
	Name        string `json:"name"         validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Property    string `json:"property"     validate:"required"`
	Date        string `json:"date"         validate:"required"`
}

func (c *CreateBookingFields) ToModel(now time.Time) model.Booking {
	return model.Booking{
		Name:        c.Name,
		PhoneNumber: c.PhoneNumber,
		Property:    c.Property,
		Date:        c.Date,
		CreatedAt:   now,
		ModifiedAt:  now,
	}
}

type CreateBookingResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"booking_id"`
}

type UpdateBookingRequest struct {
	BookingID any `json:"booking_id"`
	NewDate   any `json:"new_date"`
}

// ID returns the booking id, or an empty string when it is not a JSON string.
func (u *UpdateBookingRequest) ID() string {
	return bookingID(u.BookingID)
}

// Date returns the text form of new_date, empty when it is falsy.
func (u *UpdateBookingRequest) Date() string {
	return validator.Text(u.NewDate)
}

type UpdateBookingResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"booking_id"`
	NewDate   string `json:"new_date"`
}

type CancelBookingRequest struct {
	BookingID any `json:"booking_id"`
}

// ID returns the booking id, or an empty string when it is not a JSON string.
func (c *CancelBookingRequest) ID() string {
	return bookingID(c.BookingID)
}

// Identifiers are always minted as strings, so no other JSON type can match one.
func bookingID(value any) string {
	id, _ := value.(string)

	return id
}

type CancelBookingResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"booking_id"`
}

type BookingResponse struct {
	BookingID   string `json:"booking_id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Property    string `json:"property"`
	Date        string `json:"date"`
	CreatedAt   string `json:"created_at"`
	ModifiedAt  string `json:"modified_at"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.BookingID = model.ID
	r.Name = model.Name
	r.PhoneNumber = model.PhoneNumber
	r.Property = model.Property
	r.Date = model.Date
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.TimestampFormat)
	r.ModifiedAt = timezone.Format(model.ModifiedAt, constant.TimestampFormat)
}

type GetBookingResponse struct {
	Success bool            `json:"success"`
	Booking BookingResponse `json:"booking"`
}

type GetBookingsResponse struct {
	Success  bool              `json:"success"`
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.Success = true
	r.Total = len(models)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
