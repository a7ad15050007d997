package app

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/metrics"
	"github.com/vladislavdragonenkov/storefront/internal/service/checkout"
	"github.com/vladislavdragonenkov/storefront/internal/service/events"
	"github.com/vladislavdragonenkov/storefront/internal/service/inventory"
	"github.com/vladislavdragonenkov/storefront/internal/service/lifecycle"
	"github.com/vladislavdragonenkov/storefront/internal/service/promo"
)

// services — прикладной слой поверх хранилищ.
type services struct {
	inventory   *inventory.Service
	promos      *promo.Registry
	recorder    *events.Recorder
	lifecycle   *lifecycle.Service
	coordinator *checkout.Coordinator
}

// buildServices связывает сервисы с хранилищами из deps.
func buildServices(cfg Config, deps *runtimeDependencies, m *metrics.CheckoutMetrics, logger *log.Entry) (*services, error) {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	inv, err := inventory.NewService(deps.ledger, deps.catalog, domain.AvailabilityThresholds{
		LowStock: cfg.LowStockThreshold,
		InStock:  cfg.InStockThreshold,
	}, logger.WithField("component", "inventory"))
	if err != nil {
		return nil, fmt.Errorf("inventory service: %w", err)
	}

	promos := promo.NewRegistry(deps.promos, m, logger.WithField("component", "promo"))
	recorder := events.NewRecorder(deps.outbox, deps.timeline, m, logger.WithField("component", "events"))

	coordinator, err := checkout.NewCoordinator(checkout.Dependencies{
		Ledger:      deps.ledger,
		Catalog:     deps.catalog,
		Orders:      deps.orders,
		Promo:       promos,
		Events:      recorder,
		Idempotency: deps.idempotency,
		Baskets:     deps.baskets,
		Metrics:     m,
		Logger:      logger.WithField("component", "checkout"),
	}, checkout.Config{
		Timeout:             cfg.CheckoutTimeout,
		CompensationTimeout: cfg.CompensationTimeout,
		PromoPolicy:         cfg.PromoPolicy,
		IdempotencyTTL:      cfg.IdempotencyTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("checkout coordinator: %w", err)
	}

	return &services{
		inventory:   inv,
		promos:      promos,
		recorder:    recorder,
		lifecycle:   lifecycle.NewService(deps.orders, deps.timeline, recorder, m, logger.WithField("component", "lifecycle")),
		coordinator: coordinator,
	}, nil
}
