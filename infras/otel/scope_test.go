package otel_test

import (
	"context"
	"errors"
	"propbook/infras/otel"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestScope_RecordsAttributesAndErrors(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "booking.Create")
	scope := otel.NewScope(span)

	scope.SetAttributes(map[string]any{
		"booking.id":    "BN000001",
		"booking.count": 1,
		"valid":         true,
	})
	scope.AddEvent("Booking created")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("store failure"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	got := spans[0]
	assert.Equal(t, "booking.Create", got.Name())
	assert.Equal(t, codes.Error, got.Status().Code)
	assert.Equal(t, "store failure", got.Status().Description)
	assert.Len(t, got.Attributes(), 3)

	eventNames := []string{}
	for _, event := range got.Events() {
		eventNames = append(eventNames, event.Name)
	}

	assert.Contains(t, eventNames, "Booking created")
}
