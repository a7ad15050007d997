package domain

import (
	"fmt"
	"strings"
)

const (
	// DefaultPageSize используется, если размер страницы не задан.
	DefaultPageSize = 20
	// MaxPageSize ограничивает размер страницы сверху.
	MaxPageSize = 100
)

// StatusFilter — фильтр выборки заказов: all, active или конкретный статус.
type StatusFilter string

const (
	FilterAll    StatusFilter = "all"
	FilterActive StatusFilter = "active"
)

// ParseStatusFilter разбирает фильтр; пустая строка означает all.
func ParseStatusFilter(raw string) (StatusFilter, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch v {
	case "", string(FilterAll):
		return FilterAll, nil
	case string(FilterActive):
		return FilterActive, nil
	}
	if OrderStatus(v).Valid() {
		return StatusFilter(v), nil
	}
	return "", fmt.Errorf("%w: unknown filter %q", ErrInvalidQuery, raw)
}

// Match сообщает, проходит ли статус через фильтр.
func (f StatusFilter) Match(status OrderStatus) bool {
	switch f {
	case "", FilterAll:
		return true
	case FilterActive:
		return !status.Terminal()
	default:
		return OrderStatus(f) == status
	}
}

// SortOrder — порядок выдачи заказов.
type SortOrder string

const (
	SortNewest    SortOrder = "newest"
	SortOldest    SortOrder = "oldest"
	SortTotalDesc SortOrder = "total_desc"
	SortTotalAsc  SortOrder = "total_asc"
)

// ParseSortOrder разбирает сортировку; пустая строка означает newest.
func ParseSortOrder(raw string) (SortOrder, error) {
	switch v := SortOrder(strings.ToLower(strings.TrimSpace(raw))); v {
	case "":
		return SortNewest, nil
	case SortNewest, SortOldest, SortTotalDesc, SortTotalAsc:
		return v, nil
	default:
		return "", fmt.Errorf("%w: unknown sort %q", ErrInvalidQuery, raw)
	}
}

// OrderQuery — параметры постраничной выборки. PageIndex считается с нуля.
type OrderQuery struct {
	Filter     StatusFilter
	Sort       SortOrder
	PageIndex  int
	PageSize   int
	CustomerID string
}

// Normalize подставляет значения по умолчанию и ограничивает размер страницы.
func (q OrderQuery) Normalize() OrderQuery {
	if q.Filter == "" {
		q.Filter = FilterAll
	}
	if q.Sort == "" {
		q.Sort = SortNewest
	}
	if q.PageIndex < 0 {
		q.PageIndex = 0
	}
	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	return q
}

// Offset — количество пропускаемых записей.
func (q OrderQuery) Offset() int {
	return q.PageIndex * q.PageSize
}

// CacheKey — детерминированный ключ запроса для кэша выборок.
func (q OrderQuery) CacheKey() string {
	q = q.Normalize()
	return fmt.Sprintf("f=%s:s=%s:p=%d:n=%d:c=%s", q.Filter, q.Sort, q.PageIndex, q.PageSize, q.CustomerID)
}

// OrderPage — страница заказов и общее число подходящих под фильтр.
type OrderPage struct {
	Orders []Order
	Total  int
}

// OrderStats — количество заказов по статусам.
type OrderStats struct {
	ByStatus map[OrderStatus]int
	Active   int
	Total    int
}

// NewOrderStats собирает статистику из счётчиков по статусам.
func NewOrderStats(byStatus map[OrderStatus]int) OrderStats {
	stats := OrderStats{ByStatus: make(map[OrderStatus]int, len(orderStatuses))}
	for _, st := range orderStatuses {
		stats.ByStatus[st] = 0
	}
	for st, n := range byStatus {
		stats.ByStatus[st] += n
		stats.Total += n
		if !st.Terminal() {
			stats.Active += n
		}
	}
	return stats
}
