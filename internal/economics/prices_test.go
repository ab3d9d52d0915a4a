package economics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/usbtypec1/car-wash-project-api-server/internal/models"
)

func TestPriceCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("loads prices once", func(t *testing.T) {
		store := newFakeStorage()
		store.setPrices(map[models.ServiceType]int{
			models.ServiceUrgentWash:   250,
			models.ServiceItemDryClean: 40,
		})
		catalog := NewPriceCatalog(store)

		price, err := catalog.GetPrice(ctx, models.ServiceUrgentWash)
		require.NoError(t, err)
		assert.Equal(t, 250, price)

		price, err = catalog.GetPrice(ctx, models.ServiceItemDryClean)
		require.NoError(t, err)
		assert.Equal(t, 40, price)

		assert.Equal(t, 1, store.priceLoads)
	})

	t.Run("missing price", func(t *testing.T) {
		catalog := NewPriceCatalog(newFakeStorage())

		_, err := catalog.GetPrice(ctx, models.ServiceVanTransfer)
		assert.True(t, errors.Is(err, models.ErrPriceNotFound))
		assert.Equal(t, models.KindNotFound, models.KindOf(err))
	})

	t.Run("load error", func(t *testing.T) {
		store := newFakeStorage()
		store.pricesLoadError = assert.AnError
		catalog := NewPriceCatalog(store)

		_, err := catalog.GetPrice(ctx, models.ServiceVanTransfer)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestServiceSetServicePrice(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		service models.ServiceType
		price   int
		wantErr error
	}{
		{"minimal price", models.ServiceVanTransfer, models.MinServicePrice, nil},
		{"maximal price", models.ServiceVanTransfer, models.MaxServicePrice, nil},
		{"zero price", models.ServiceVanTransfer, 0, models.ErrInvalidServicePrice},
		{"price too high", models.ServiceVanTransfer, models.MaxServicePrice + 1, models.ErrInvalidServicePrice},
		{"unknown service", models.ServiceType("car_polishing"), 100, models.ErrUnknownServiceType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(ServiceOpts{Storage: newFakeStorage()})

			price, err := svc.SetServicePrice(ctx, tt.service, tt.price)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.price, price.Price)
		})
	}
}

func TestServiceSetServicePriceIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newFakeStorage()
	svc := NewService(ServiceOpts{Storage: store})

	first, err := svc.SetServicePrice(ctx, models.ServiceUrgentWash, 300)
	require.NoError(t, err)

	second, err := svc.SetServicePrice(ctx, models.ServiceUrgentWash, 300)
	require.NoError(t, err)

	prices, err := svc.GetServicePrices(ctx)
	require.NoError(t, err)
	require.Len(t, prices, 1)

	assert.Equal(t, 300, second.Price)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
}

func TestServiceGetServicePrice(t *testing.T) {
	ctx := context.Background()
	store := newFakeStorage()
	store.setPrices(map[models.ServiceType]int{models.ServiceVanTransfer: 500})
	svc := NewService(ServiceOpts{Storage: store})

	price, err := svc.GetServicePrice(ctx, models.ServiceVanTransfer)
	require.NoError(t, err)
	assert.Equal(t, 500, price.Price)

	_, err = svc.GetServicePrice(ctx, models.ServiceUrgentWash)
	assert.True(t, errors.Is(err, models.ErrPriceNotFound))

	_, err = svc.GetServicePrice(ctx, models.ServiceType("car_polishing"))
	assert.Equal(t, models.ErrUnknownServiceType, err)
}
