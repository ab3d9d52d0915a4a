package economics

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/usbtypec1/car-wash-project-api-server/internal/metrics"
	"github.com/usbtypec1/car-wash-project-api-server/internal/models"
)

// PriceSource loads the current staff service prices.
type PriceSource interface {
	GetServicePrices(ctx context.Context) ([]models.ServicePrice, error)
}

// PriceCatalog is a read-through view of the staff service prices. All prices
// are loaded on first lookup and reused afterwards, so one catalog should live
// no longer than a single request or report.
type PriceCatalog struct {
	source PriceSource
	prices map[models.ServiceType]int
}

func NewPriceCatalog(source PriceSource) *PriceCatalog {
	return &PriceCatalog{source: source}
}

// GetPrice returns the price of the service or a PriceNotFound error when no
// price is set for it.
func (c *PriceCatalog) GetPrice(ctx context.Context, service models.ServiceType) (int, error) {
	if c.prices == nil {
		if err := c.load(ctx); err != nil {
			return 0, err
		}
	}

	price, ok := c.prices[service]
	if !ok {
		return 0, models.NewPriceNotFoundError(service)
	}
	return price, nil
}

func (c *PriceCatalog) load(ctx context.Context) error {
	prices, err := c.source.GetServicePrices(ctx)
	if err != nil {
		return fmt.Errorf("failed to load service prices: %w", err)
	}

	c.prices = make(map[models.ServiceType]int, len(prices))
	for _, p := range prices {
		c.prices[p.Service] = p.Price
	}
	return nil
}

func (s *Service) GetServicePrices(ctx context.Context) ([]models.ServicePrice, error) {
	return s.storage.GetServicePrices(ctx)
}

func (s *Service) GetServicePrice(ctx context.Context, service models.ServiceType) (*models.ServicePrice, error) {
	if !service.Valid() {
		return nil, models.ErrUnknownServiceType
	}
	return s.storage.GetServicePrice(ctx, service)
}

// SetServicePrice creates or overwrites the single price record of service.
func (s *Service) SetServicePrice(ctx context.Context, service models.ServiceType, price int) (*models.ServicePrice, error) {
	if !service.Valid() {
		return nil, models.ErrUnknownServiceType
	}
	if price < models.MinServicePrice || price > models.MaxServicePrice {
		return nil, models.ErrInvalidServicePrice
	}

	result, err := s.storage.UpsertServicePrice(ctx, service, price)
	if err != nil {
		return nil, err
	}

	metrics.ServicePriceUpdates.WithLabelValues(string(service)).Inc()
	slog.Info("staff service price updated",
		slog.String("service", string(service)),
		slog.Int("price", price),
	)

	return result, nil
}
