package domain

import (
	"errors"
	"reflect"
	"testing"
)

func TestSizeSet(t *testing.T) {
	s, err := NewSizeSet(42, 1, 64, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := s.Sizes(); !reflect.DeepEqual(got, []int{1, 42, 64}) {
		t.Fatalf("Sizes() = %v", got)
	}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	if !s.Has(64) || s.Has(43) || s.Has(0) || s.Has(65) {
		t.Fatalf("unexpected membership for %s", s)
	}

	s = s.Without(42)
	if s.Has(42) {
		t.Fatal("size 42 must be removed")
	}
	if restored := SizeSetFromBits(s.Bits()); restored != s {
		t.Fatalf("round trip through bits changed the set: %s vs %s", restored, s)
	}
	if s.String() != "{1,64}" {
		t.Fatalf("String() = %q", s.String())
	}
}

func TestNewSizeSetRejectsOutOfRange(t *testing.T) {
	for _, size := range []int{0, -1, 65} {
		if _, err := NewSizeSet(size); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("size %d: expected ErrInvalidSize, got %v", size, err)
		}
	}
}
