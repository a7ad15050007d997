package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorClassifiers(t *testing.T) {
	wrap := func(err error) error { return fmt.Errorf("update order K7M2QX9P: %w", err) }

	tests := []struct {
		name     string
		classify func(error) bool
		match    []error
		reject   []error
	}{
		{
			name:     "version conflict",
			classify: IsVersionConflict,
			match:    []error{ErrOrderVersionConflict, wrap(ErrOrderVersionConflict), errors.Join(errors.New("retry"), ErrOrderVersionConflict)},
			reject:   []error{nil, ErrOrderNotFound, ErrIdempotencyHashMismatch},
		},
		{
			name:     "idempotency conflict",
			classify: IsIdempotencyConflict,
			match:    []error{ErrIdempotencyKeyAlreadyExists, ErrIdempotencyHashMismatch, wrap(ErrIdempotencyHashMismatch)},
			reject:   []error{nil, ErrIdempotencyKeyNotFound, ErrOrderVersionConflict},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, err := range tc.match {
				if !tc.classify(err) {
					t.Errorf("expected match for %v", err)
				}
			}
			for _, err := range tc.reject {
				if tc.classify(err) {
					t.Errorf("unexpected match for %v", err)
				}
			}
		})
	}
}

func TestInsufficientStockErrorMatching(t *testing.T) {
	stockErr := &InsufficientStockError{ProductID: 7, Size: 42, Requested: 2, Available: 1}
	wrapped := fmt.Errorf("checkout: %w", &LineError{Line: 3, Err: stockErr})

	if !errors.Is(wrapped, ErrInsufficientStock) {
		t.Fatal("expected wrapped error to match ErrInsufficientStock")
	}

	var lineErr *LineError
	if !errors.As(wrapped, &lineErr) || lineErr.Line != 3 {
		t.Fatalf("expected line error with line 3, got %v", lineErr)
	}

	var got *InsufficientStockError
	if !errors.As(wrapped, &got) {
		t.Fatal("expected InsufficientStockError in chain")
	}
	if got.Requested != 2 || got.Available != 1 {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestIsPromoRejection(t *testing.T) {
	for _, err := range []error{ErrCodeInactive, ErrCodeExpired, ErrCodeExhausted, ErrPromoNotFound} {
		if !IsPromoRejection(fmt.Errorf("redeem: %w", err)) {
			t.Fatalf("expected %v to be a promo rejection", err)
		}
	}
	if IsPromoRejection(errors.New("connection reset")) {
		t.Fatal("infrastructure error must not be a promo rejection")
	}
}
