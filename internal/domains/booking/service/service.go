package service

import (
	"context"
	"errors"
	"fmt"
	"propbook/infras/kafka"
	"propbook/infras/metrics"
	"propbook/infras/otel"
	"propbook/internal/domains/booking/model"
	"propbook/internal/domains/booking/model/dto"
	"propbook/internal/domains/booking/repository"
	"propbook/shared/constant"
	"propbook/shared/failure"
	"propbook/shared/timezone"
	"propbook/shared/validator"

	"github.com/rs/zerolog/log"
)

// Booking implements the booking lifecycle. It never validates field
// contents; callers run the field validators before creating a booking.
type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest) (dto.UpdateBookingResponse, error)
	Cancel(ctx context.Context, req dto.CancelBookingRequest) (dto.CancelBookingResponse, error)
	Get(ctx context.Context, id string) (dto.GetBookingResponse, error)
	GetAll(ctx context.Context) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo    repository.Booking
	kafka   kafka.Client
	metrics *metrics.Metrics
	otel    otel.Otel
}

func New(repo repository.Booking, kafka kafka.Client, metrics *metrics.Metrics, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:    repo,
		kafka:   kafka,
		metrics: metrics,
		otel:    otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() {
		scope.TraceIfError(err)
		s.metrics.ObserveBooking(metrics.OperationCreate, err)
	}()

	fields := req.Fields()

	if err = validator.ValidateStruct(&fields); err != nil {
		log.Warn().Err(err).Msg("booking request is missing required fields")

		return res, failure.MissingRequiredFields
	}

	id, err := s.repo.Insert(ctx, fields.ToModel(timezone.Now()))
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	scope.SetAttribute("booking.id", id)
	log.Info().Str("booking_id", id).Str("property", fields.Property).Msg("booking created")

	s.refreshActiveBookings(ctx)
	s.publish(ctx, model.Event{
		Type:      model.EventCreated,
		BookingID: id,
		Property:  fields.Property,
		Date:      fields.Date,
	})

	return dto.CreateBookingResponse{Success: true, BookingID: id}, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest) (res dto.UpdateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() {
		scope.TraceIfError(err)
		s.metrics.ObserveBooking(metrics.OperationUpdate, err)
	}()

	id, newDate := req.ID(), req.Date()
	scope.SetAttribute("booking.id", id)

	if err = validator.ValidateVar(id, "required"); err != nil {
		log.Warn().Err(err).Msg("booking update has no usable booking id")

		return res, failure.BookingNotFoundOrMissingDate
	}

	if err = validator.ValidateVar(newDate, "required"); err != nil {
		log.Warn().Err(err).Str("booking_id", id).Msg("booking update has no new date")

		return res, failure.BookingNotFoundOrMissingDate
	}

	booking, err := s.repo.UpdateDate(ctx, id, newDate)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn().Str("booking_id", id).Msg("booking to update not found")

			return res, failure.BookingNotFoundOrMissingDate
		}

		log.Error().Err(err).Msg("failed to update booking")

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	log.Info().Str("booking_id", booking.ID).Str("new_date", booking.Date).Msg("booking date updated")

	s.publish(ctx, model.Event{
		Type:      model.EventUpdated,
		BookingID: booking.ID,
		Property:  booking.Property,
		Date:      booking.Date,
	})

	return dto.UpdateBookingResponse{Success: true, BookingID: booking.ID, NewDate: booking.Date}, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, req dto.CancelBookingRequest) (res dto.CancelBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer func() {
		scope.TraceIfError(err)
		s.metrics.ObserveBooking(metrics.OperationCancel, err)
	}()

	id := req.ID()
	scope.SetAttribute("booking.id", id)

	booking, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn().Str("booking_id", id).Msg("booking to cancel not found")

			return res, failure.BookingNotFound
		}

		log.Error().Err(err).Msg("failed to cancel booking")

		return res, fmt.Errorf("failed to cancel booking: %w", err)
	}

	log.Info().Str("booking_id", booking.ID).Msg("booking cancelled")

	s.refreshActiveBookings(ctx)
	s.publish(ctx, model.Event{
		Type:      model.EventCancelled,
		BookingID: booking.ID,
		Property:  booking.Property,
	})

	return dto.CancelBookingResponse{Success: true, BookingID: booking.ID}, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GetBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return res, failure.BookingNotFound
		}

		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	res.Success = true
	res.Booking.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings)

	return res, nil
}

func (s *serviceImpl) refreshActiveBookings(ctx context.Context) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return
	}

	s.metrics.ActiveBookings.Set(float64(count))
}

// publish emits a lifecycle event. Publishing failures are logged and never
// fail the operation that triggered them.
func (s *serviceImpl) publish(ctx context.Context, event model.Event) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()

	event.OccurredAt = timezone.Now()
	scope.SetAttribute("event.type", event.Type)

	err := s.kafka.SendMessages(context.WithoutCancel(ctx), kafka.Message{Key: event.BookingID, Value: event})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("event", event.Type).Str("booking_id", event.BookingID).Msg("failed to publish booking event")
	}
}
