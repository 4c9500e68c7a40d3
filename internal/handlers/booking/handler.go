package booking

import (
	"net/http"
	"propbook/infras/otel"
	"propbook/internal/domains/booking/model/dto"
	"propbook/internal/domains/booking/service"
	"propbook/shared/constant"
	"propbook/shared/validator"
	"propbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/create-booking", handler.CreateBooking)
	router.Post("/update-booking", handler.UpdateBooking)
	router.Post("/cancel-booking", handler.CancelBooking)

	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
	})
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 200 {object} dto.CreateBookingResponse
// @Failure 400 {object} response.Error
// @Router /create-booking [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to decode request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking " + res.BookingID + " created")

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateBooking changes the date of an existing booking.
// @Summary Update a booking date
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} dto.UpdateBookingResponse
// @Failure 404 {object} response.Error
// @Router /update-booking [post]
func (handler *Handler) UpdateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	req := dto.UpdateBookingRequest{}

	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to decode request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Update(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking " + res.BookingID + " updated")

	response.WithJSON(writer, http.StatusOK, res)
}

// CancelBooking removes a booking permanently.
// @Summary Cancel a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CancelBookingRequest true "Cancel Booking Request"
// @Success 200 {object} dto.CancelBookingResponse
// @Failure 404 {object} response.Error
// @Router /cancel-booking [post]
func (handler *Handler) CancelBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	req := dto.CancelBookingRequest{}

	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to decode request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Cancel(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking " + res.BookingID + " cancelled")

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBookings lists every booking currently held.
// @Summary List bookings
// @Tags Booking
// @Produce json
// @Success 200 {object} dto.GetBookingsResponse
// @Router /bookings [get]
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBookingByID retrieves a booking by its identifier.
// @Summary Get a booking by ID
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.GetBookingResponse
// @Failure 404 {object} response.Error
// @Router /bookings/{id} [get]
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
