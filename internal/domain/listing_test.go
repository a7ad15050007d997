package domain

import (
	"errors"
	"testing"
)

func TestStatusFilterMatch(t *testing.T) {
	active, err := ParseStatusFilter("ACTIVE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if active.Match(OrderStatusCompleted) || active.Match(OrderStatusCanceled) || active.Match(OrderStatusReturned) {
		t.Fatal("active filter must exclude terminal statuses")
	}
	if !active.Match(OrderStatusShipped) {
		t.Fatal("active filter must include shipped")
	}

	single, err := ParseStatusFilter("paid")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !single.Match(OrderStatusPaid) || single.Match(OrderStatusCreated) {
		t.Fatal("single status filter mismatch")
	}

	all, _ := ParseStatusFilter("")
	if all != FilterAll || !all.Match(OrderStatusReturned) {
		t.Fatal("empty filter must behave as all")
	}

	if _, err := ParseStatusFilter("weird"); !errors.Is(err, ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestParseSortOrder(t *testing.T) {
	if s, err := ParseSortOrder(""); err != nil || s != SortNewest {
		t.Fatalf("default sort = %q, %v", s, err)
	}
	if s, err := ParseSortOrder("Total_Desc"); err != nil || s != SortTotalDesc {
		t.Fatalf("sort = %q, %v", s, err)
	}
	if _, err := ParseSortOrder("random"); !errors.Is(err, ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestOrderQueryNormalize(t *testing.T) {
	q := OrderQuery{PageIndex: -3, PageSize: 1000}.Normalize()
	if q.PageIndex != 0 || q.PageSize != MaxPageSize || q.Filter != FilterAll || q.Sort != SortNewest {
		t.Fatalf("unexpected normalized query: %+v", q)
	}

	q = OrderQuery{PageIndex: 2}.Normalize()
	if q.PageSize != DefaultPageSize || q.Offset() != 2*DefaultPageSize {
		t.Fatalf("unexpected paging: %+v offset=%d", q, q.Offset())
	}

	if (OrderQuery{}).CacheKey() != (OrderQuery{Filter: FilterAll, Sort: SortNewest, PageSize: DefaultPageSize}).CacheKey() {
		t.Fatal("equivalent queries must share a cache key")
	}
}

func TestNewOrderStats(t *testing.T) {
	stats := NewOrderStats(map[OrderStatus]int{
		OrderStatusCreated:   2,
		OrderStatusPaid:      1,
		OrderStatusCompleted: 3,
		OrderStatusCanceled:  1,
	})
	if stats.Total != 7 || stats.Active != 3 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if stats.ByStatus[OrderStatusShipped] != 0 {
		t.Fatal("missing statuses must be present with zero")
	}
	if len(stats.ByStatus) != len(OrderStatuses()) {
		t.Fatalf("expected all statuses, got %d", len(stats.ByStatus))
	}
}
