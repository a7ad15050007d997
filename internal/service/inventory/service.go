// Package inventory проверяет наличие товара и принимает складские поступления.
package inventory

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// Service сочетает складской учёт с каталогом: размеры проверяются по набору
// продаваемых размеров товара, сумма считается только по ним.
type Service struct {
	ledger     domain.StockLedger
	catalog    domain.Catalog
	thresholds domain.AvailabilityThresholds
	logger     *log.Entry
}

// NewService создаёт сервис наличия. Нулевые пороги заменяются значениями по умолчанию.
func NewService(ledger domain.StockLedger, catalog domain.Catalog, thresholds domain.AvailabilityThresholds, logger *log.Entry) (*Service, error) {
	if thresholds == (domain.AvailabilityThresholds{}) {
		thresholds = domain.DefaultAvailabilityThresholds()
	}
	if !thresholds.Valid() {
		return nil, fmt.Errorf("invalid availability thresholds: low=%d in_stock=%d", thresholds.LowStock, thresholds.InStock)
	}
	if logger == nil {
		logger = log.WithField("component", "inventory")
	}
	return &Service{
		ledger:     ledger,
		catalog:    catalog,
		thresholds: thresholds,
		logger:     logger,
	}, nil
}

// Thresholds возвращает действующие пороги.
func (s *Service) Thresholds() domain.AvailabilityThresholds {
	return s.thresholds
}

func (s *Service) sellableProduct(ctx context.Context, productID int64, size int) (domain.Product, error) {
	product, err := s.catalog.Product(ctx, productID)
	if err != nil {
		return domain.Product{}, err
	}
	if !product.Sizes.Has(size) {
		return domain.Product{}, fmt.Errorf("%w: size %d is not sellable for product %d", domain.ErrInvalidSize, size, productID)
	}
	return product, nil
}

// CheckStock возвращает остаток по продаваемому размеру.
func (s *Service) CheckStock(ctx context.Context, productID int64, size int) (int, error) {
	if _, err := s.sellableProduct(ctx, productID, size); err != nil {
		return 0, err
	}
	return s.ledger.GetQuantity(ctx, productID, size)
}

// SizeQuantities возвращает остатки только по продаваемым размерам.
// Размер без записи на складе даёт 0.
func (s *Service) SizeQuantities(ctx context.Context, productID int64) (map[int]int, error) {
	product, err := s.catalog.Product(ctx, productID)
	if err != nil {
		return nil, err
	}
	stored, err := s.ledger.Quantities(ctx, productID)
	if err != nil {
		return nil, err
	}

	out := make(map[int]int, product.Sizes.Len())
	for _, size := range product.Sizes.Sizes() {
		out[size] = stored[size]
	}
	return out, nil
}

// Availability сводит остатки продаваемых размеров в статус наличия.
func (s *Service) Availability(ctx context.Context, productID int64) (domain.AvailabilityStatus, error) {
	quantities, err := s.SizeQuantities(ctx, productID)
	if err != nil {
		return "", err
	}
	total := 0
	for _, qty := range quantities {
		total += qty
	}
	return s.thresholds.Classify(total), nil
}

// ReceiveStock оприходует поставку.
func (s *Service) ReceiveStock(ctx context.Context, productID int64, size, quantity int, purchasePriceMinor int64) error {
	if quantity < 0 || purchasePriceMinor < 0 {
		return domain.ErrInvalidAmount
	}
	if _, err := s.sellableProduct(ctx, productID, size); err != nil {
		return err
	}
	if err := s.ledger.Add(ctx, productID, size, quantity, purchasePriceMinor); err != nil {
		return err
	}
	s.logger.WithFields(log.Fields{
		"product_id": productID,
		"size":       size,
		"quantity":   quantity,
	}).Info("stock received")
	return nil
}

// SetStock перезаписывает остаток по итогам инвентаризации.
func (s *Service) SetStock(ctx context.Context, productID int64, size, quantity int, purchasePriceMinor int64) error {
	if quantity < 0 || purchasePriceMinor < 0 {
		return domain.ErrInvalidAmount
	}
	if _, err := s.sellableProduct(ctx, productID, size); err != nil {
		return err
	}
	if err := s.ledger.Set(ctx, productID, size, quantity, purchasePriceMinor); err != nil {
		return err
	}
	s.logger.WithFields(log.Fields{
		"product_id": productID,
		"size":       size,
		"quantity":   quantity,
	}).Info("stock set")
	return nil
}

// WriteOff списывает товар вне заказа (брак, потеря).
func (s *Service) WriteOff(ctx context.Context, productID int64, size, quantity int) (int, error) {
	if quantity <= 0 {
		return 0, domain.ErrInvalidAmount
	}
	if _, err := s.sellableProduct(ctx, productID, size); err != nil {
		return 0, err
	}
	return s.ledger.Reduce(ctx, productID, size, quantity)
}
