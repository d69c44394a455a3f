package ctxutil

import (
	"context"
	"testing"

	"github.com/zututors/zututors-backend/internal/domain"
)

func TestCallerRoundTrip(t *testing.T) {
	t.Parallel()

	want := Caller{Kind: domain.KindTutor, ID: 42}
	ctx := WithCaller(context.Background(), want)

	got, ok := CallerFromCtx(ctx)
	if !ok {
		t.Fatal("caller should be present")
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestCallerFromCtx_Absent(t *testing.T) {
	t.Parallel()

	if _, ok := CallerFromCtx(context.Background()); ok {
		t.Error("empty context must not yield a caller")
	}
}

func TestCallerFromCtx_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		caller Caller
	}{
		{"zero id", Caller{Kind: domain.KindStudent, ID: 0}},
		{"unknown kind", Caller{Kind: domain.KindUnknown, ID: 7}},
		{"empty kind", Caller{ID: 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := WithCaller(context.Background(), tt.caller)
			if _, ok := CallerFromCtx(ctx); ok {
				t.Errorf("caller %+v should be rejected", tt.caller)
			}
		})
	}
}

func TestRequestIDRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")
	if got := RequestIDFromCtx(ctx); got != "req-123" {
		t.Errorf("got %q, want req-123", got)
	}
	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Errorf("absent id should be empty, got %q", got)
	}
}
