package economics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/usbtypec1/car-wash-project-api-server/internal/models"
)

var testTransferPrices = TransferPrices{
	ExtraShiftCarTransfer: 150,
	UrgentCarTransfer:     200,
	DryCleaningItem:       50,
	UnderPlanCarTransfer:  100,
}

func TestComputeWashedCarsTotalCost(t *testing.T) {
	tests := []struct {
		name  string
		input ShiftTransferInput
		want  int
	}{
		{
			name: "under plan uses flat rates",
			input: ShiftTransferInput{
				PreliminaryTotalCost: 9999,
				ComfortCarsCount:     2,
				BusinessCarsCount:    1,
				UrgentCarsCount:      3,
			},
			want: 100*3 + 200*3,
		},
		{
			name: "plan met uses preliminary cost",
			input: ShiftTransferInput{
				PreliminaryTotalCost: 9999,
				ComfortCarsCount:     2,
				BusinessCarsCount:    1,
				UrgentCarsCount:      4,
			},
			want: 9999,
		},
		{
			name: "six planned cars are under plan",
			input: ShiftTransferInput{
				PreliminaryTotalCost: 5000,
				ComfortCarsCount:     6,
			},
			want: 100 * 6,
		},
		{
			name: "six planned and one urgent meet the plan",
			input: ShiftTransferInput{
				PreliminaryTotalCost: 5000,
				ComfortCarsCount:     6,
				UrgentCarsCount:      1,
			},
			want: 5000,
		},
		{
			name: "extra shift ignores threshold",
			input: ShiftTransferInput{
				PreliminaryTotalCost: 9999,
				ComfortCarsCount:     5,
				BusinessCarsCount:    3,
				VansCount:            2,
				UrgentCarsCount:      1,
				IsExtraShift:         true,
			},
			want: 150*10 + 200*1,
		},
		{
			name: "extra shift with few cars",
			input: ShiftTransferInput{
				PreliminaryTotalCost: 9999,
				VansCount:            1,
				IsExtraShift:         true,
			},
			want: 150,
		},
		{
			name: "dry cleaning is always paid",
			input: ShiftTransferInput{
				PreliminaryTotalCost:  7000,
				ComfortCarsCount:      7,
				DryCleaningItemsCount: 3,
			},
			want: 7000 + 50*3,
		},
		{
			name:  "empty shift",
			input: ShiftTransferInput{},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeWashedCarsTotalCost(tt.input, testTransferPrices))
		})
	}
}

func TestLoadTransferPrices(t *testing.T) {
	ctx := context.Background()

	t.Run("all prices present", func(t *testing.T) {
		store := newFakeStorage()
		store.setPrices(map[models.ServiceType]int{
			models.ServiceCarTransporterExtraShift:    150,
			models.ServiceUrgentWash:                  200,
			models.ServiceItemDryClean:                50,
			models.ServiceUnderPlanPlannedCarTransfer: 100,
		})

		prices, err := LoadTransferPrices(ctx, NewPriceCatalog(store))
		require.NoError(t, err)
		assert.Equal(t, testTransferPrices, prices)
	})

	t.Run("missing price", func(t *testing.T) {
		store := newFakeStorage()
		store.setPrices(map[models.ServiceType]int{
			models.ServiceCarTransporterExtraShift: 150,
			models.ServiceUrgentWash:               200,
		})

		_, err := LoadTransferPrices(ctx, NewPriceCatalog(store))
		assert.True(t, errors.Is(err, models.ErrPriceNotFound))
	})
}

func TestCarTransferPrice(t *testing.T) {
	ctx := context.Background()
	store := newFakeStorage()
	store.setPrices(map[models.ServiceType]int{
		models.ServiceComfortClassCarTransfer:  300,
		models.ServiceBusinessClassCarTransfer: 400,
		models.ServiceVanTransfer:              500,
		models.ServiceCarTransporterExtraShift: 150,
		models.ServiceUrgentWash:               200,
	})
	catalog := NewPriceCatalog(store)

	tests := []struct {
		name     string
		carClass models.CarClass
		washType models.WashType
		isExtra  bool
		want     int
	}{
		{"planned comfort", models.CarClassComfort, models.WashTypePlanned, false, 300},
		{"planned business", models.CarClassBusiness, models.WashTypePlanned, false, 400},
		{"planned van", models.CarClassVan, models.WashTypePlanned, false, 500},
		{"planned on extra shift", models.CarClassVan, models.WashTypePlanned, true, 150},
		{"urgent", models.CarClassBusiness, models.WashTypeUrgent, false, 200},
		{"urgent on extra shift", models.CarClassComfort, models.WashTypeUrgent, true, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CarTransferPrice(ctx, catalog, tt.carClass, tt.washType, tt.isExtra)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown car class", func(t *testing.T) {
		_, err := CarTransferPrice(ctx, catalog, models.CarClass("truck"), models.WashTypePlanned, false)
		assert.True(t, errors.Is(err, models.ErrUnknownCarClass))
	})
}
