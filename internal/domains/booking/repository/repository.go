package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"propbook/infras/otel"
	"propbook/internal/domains/booking/model"
	"propbook/shared/constant"
	"propbook/shared/timezone"
	"sort"
	"sync"
)

var ErrNotFound = errors.New("repository: booking not found")

// Booking is the keyed collection of bookings held in process memory.
type Booking interface {
	// Insert mints a new identifier for booking, stores it and returns the identifier.
	Insert(ctx context.Context, booking model.Booking) (string, error)
	Get(ctx context.Context, id string) (model.Booking, error)
	GetAll(ctx context.Context) ([]model.Booking, error)
	Count(ctx context.Context) (int, error)
	// UpdateDate replaces the date of an existing booking and leaves every other field alone.
	UpdateDate(ctx context.Context, id, date string) (model.Booking, error)
	Delete(ctx context.Context, id string) (model.Booking, error)
}

type repositoryImpl struct {
	mu           sync.RWMutex
	records      map[string]model.Booking
	nextSequence int
	otel         otel.Otel
}

func New(otel otel.Otel) Booking {
	return &repositoryImpl{
		records:      make(map[string]model.Booking),
		nextSequence: 1,
		otel:         otel,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, booking model.Booking) (string, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Insert")
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Sequence numbers are never handed out twice, even after a cancellation.
	booking.ID = model.FormatID(r.nextSequence)
	r.nextSequence++

	r.records[booking.ID] = booking

	scope.SetAttribute("booking.id", booking.ID)

	return booking.ID, nil
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (model.Booking, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Get")
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.records[id]
	if !ok {
		return model.Booking{}, ErrNotFound
	}

	return booking, nil
}

func (r *repositoryImpl) GetAll(ctx context.Context) ([]model.Booking, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()

	r.mu.RLock()
	bookings := make([]model.Booking, 0, len(r.records))

	for _, booking := range r.records {
		bookings = append(bookings, booking)
	}
	r.mu.RUnlock()

	// Order by sequence: identifiers grow past six digits after BN999999.
	sort.Slice(bookings, func(i, j int) bool {
		if len(bookings[i].ID) != len(bookings[j].ID) {
			return len(bookings[i].ID) < len(bookings[j].ID)
		}

		return bookings[i].ID < bookings[j].ID
	})

	return bookings, nil
}

func (r *repositoryImpl) Count(ctx context.Context) (int, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Count")
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.records), nil
}

func (r *repositoryImpl) UpdateDate(ctx context.Context, id, date string) (model.Booking, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".UpdateDate")
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.records[id]
	if !ok {
		return model.Booking{}, ErrNotFound
	}

	booking.Date = date
	booking.ModifiedAt = timezone.Now()
	r.records[id] = booking

	return booking, nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) (model.Booking, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Delete")
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.records[id]
	if !ok {
		return model.Booking{}, ErrNotFound
	}

	delete(r.records, id)

	return booking, nil
}
