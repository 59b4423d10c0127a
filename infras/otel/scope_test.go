package otel_test

import (
	"context"
	"errors"
	"testing"

	"guesthouse/infras/otel"
	"guesthouse/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func record(t *testing.T, fn func(scope otel.Scope)) trace.ReadOnlySpan {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "booking.Approve")
	scope := otel.NewScope(span)

	fn(scope)
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	return spans[0]
}

func TestScope_TraceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus codes.Code
	}{
		{name: "conflict is an expected outcome", err: failure.Conflict("room is already booked for an overlapping stay"), wantStatus: codes.Unset},
		{name: "validation failure", err: failure.ValidationField("check_out", "must be after check_in"), wantStatus: codes.Unset},
		{name: "unexpected error", err: errors.New("connection reset"), wantStatus: codes.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span := record(t, func(scope otel.Scope) {
				scope.TraceError(tt.err)
			})

			assert.Equal(t, tt.wantStatus, span.Status().Code)
			require.Len(t, span.Events(), 1)
			assert.Equal(t, "exception", span.Events()[0].Name)
		})
	}
}

func TestScope_TraceIfError(t *testing.T) {
	span := record(t, func(scope otel.Scope) {
		scope.TraceIfError(nil)
	})

	assert.Empty(t, span.Events())
	assert.Equal(t, codes.Unset, span.Status().Code)
}

func TestScope_SetAttributes(t *testing.T) {
	span := record(t, func(scope otel.Scope) {
		scope.SetAttributes(map[string]any{
			"room_number": "F03",
			"nights":      2,
			"total_price": int64(800),
			"ac":          true,
		})
	})

	attrs := map[string]string{}
	for _, kv := range span.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}

	assert.Equal(t, "F03", attrs["room_number"])
	assert.Equal(t, "2", attrs["nights"])
	assert.Equal(t, "800", attrs["total_price"])
	assert.Equal(t, "true", attrs["ac"])
}
