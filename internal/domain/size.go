package domain

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

const (
	// MinSize и MaxSize задают диапазон размеров, помещающихся в SizeSet.
	MinSize = 1
	MaxSize = 64
)

// SizeSet — набор продаваемых размеров товара. Размер n хранится в бите n-1,
// поэтому в БД набор лежит одним BIGINT.
type SizeSet uint64

// ValidSize проверяет, что размер помещается в SizeSet.
func ValidSize(size int) bool {
	return size >= MinSize && size <= MaxSize
}

// NewSizeSet собирает набор из списка размеров.
func NewSizeSet(sizes ...int) (SizeSet, error) {
	var s SizeSet
	for _, size := range sizes {
		if !ValidSize(size) {
			return 0, fmt.Errorf("%w: %d", ErrInvalidSize, size)
		}
		s = s.With(size)
	}
	return s, nil
}

// SizeSetFromBits восстанавливает набор из сохранённой маски.
func SizeSetFromBits(mask uint64) SizeSet { return SizeSet(mask) }

// Bits возвращает компактное представление для хранения.
func (s SizeSet) Bits() uint64 { return uint64(s) }

// Has сообщает, входит ли размер в набор.
func (s SizeSet) Has(size int) bool {
	if !ValidSize(size) {
		return false
	}
	return s&(1<<uint(size-1)) != 0
}

// With возвращает набор с добавленным размером. Размеры вне диапазона игнорируются.
func (s SizeSet) With(size int) SizeSet {
	if !ValidSize(size) {
		return s
	}
	return s | 1<<uint(size-1)
}

// Without возвращает набор без указанного размера.
func (s SizeSet) Without(size int) SizeSet {
	if !ValidSize(size) {
		return s
	}
	return s &^ (1 << uint(size-1))
}

// Len — количество размеров в наборе.
func (s SizeSet) Len() int { return bits.OnesCount64(uint64(s)) }

// Sizes возвращает размеры по возрастанию.
func (s SizeSet) Sizes() []int {
	out := make([]int, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		out = append(out, bits.TrailingZeros64(rest)+1)
	}
	return out
}

func (s SizeSet) String() string {
	sizes := s.Sizes()
	parts := make([]string, len(sizes))
	for i, size := range sizes {
		parts[i] = strconv.Itoa(size)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
