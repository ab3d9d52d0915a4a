package economics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/usbtypec1/car-wash-project-api-server/internal/models"
)

func TestServiceCreateCarWashAdjustments(t *testing.T) {
	ctx := context.Background()
	day := models.NewDate(2025, 1, 1)

	tests := []struct {
		name    string
		create  func(*Service, context.Context, models.CarWashAdjustmentCreateInput) (*models.CarWashAdjustment, error)
		stored  func(*fakeStorage) []models.CarWashAdjustment
		input   models.CarWashAdjustmentCreateInput
		wantErr error
	}{
		{
			name:   "penalty",
			create: (*Service).CreateCarWashPenalty,
			stored: func(f *fakeStorage) []models.CarWashAdjustment { return f.carWashPenalties },
			input:  models.CarWashAdjustmentCreateInput{CarWashID: 3, Reason: "some reason", Amount: 1000, Date: day},
		},
		{
			name:   "surcharge",
			create: (*Service).CreateCarWashSurcharge,
			stored: func(f *fakeStorage) []models.CarWashAdjustment { return f.carWashSurcharges },
			input:  models.CarWashAdjustmentCreateInput{CarWashID: 3, Reason: "some reason", Amount: 1000, Date: day},
		},
		{
			name:    "penalty for unknown car wash",
			create:  (*Service).CreateCarWashPenalty,
			stored:  func(f *fakeStorage) []models.CarWashAdjustment { return f.carWashPenalties },
			input:   models.CarWashAdjustmentCreateInput{CarWashID: 5345345, Reason: "some reason", Amount: 1000, Date: day},
			wantErr: models.ErrCarWashNotFound,
		},
		{
			name:    "surcharge for unknown car wash",
			create:  (*Service).CreateCarWashSurcharge,
			stored:  func(f *fakeStorage) []models.CarWashAdjustment { return f.carWashSurcharges },
			input:   models.CarWashAdjustmentCreateInput{CarWashID: 5345345, Reason: "some reason", Amount: 1000, Date: day},
			wantErr: models.ErrCarWashNotFound,
		},
		{
			name:    "missing date",
			create:  (*Service).CreateCarWashSurcharge,
			stored:  func(f *fakeStorage) []models.CarWashAdjustment { return f.carWashSurcharges },
			input:   models.CarWashAdjustmentCreateInput{CarWashID: 3, Reason: "some reason", Amount: 1000},
			wantErr: models.ErrDateRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStorage()
			store.carWashes[3] = models.CarWash{ID: 3, Name: "North"}
			svc := NewService(ServiceOpts{Storage: store})

			got, err := tt.create(svc, ctx, tt.input)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Empty(t, tt.stored(store))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(1), got.ID)
			assert.Equal(t, int64(3), got.CarWashID)
			assert.Equal(t, "some reason", got.Reason)
			assert.Equal(t, 1000, got.Amount)
			assert.Equal(t, day, got.Date)
			assert.False(t, got.CreatedAt.IsZero())
			assert.Equal(t, []models.CarWashAdjustment{*got}, tt.stored(store))
		})
	}
}

func TestServiceGetCarWashAdjustments(t *testing.T) {
	ctx := context.Background()
	from := models.NewDate(2025, 1, 1)
	to := models.NewDate(2025, 1, 31)

	store := newFakeStorage()
	store.carWashPenalties = []models.CarWashAdjustment{
		{ID: 1, CarWashID: 3, Amount: 100, Date: models.NewDate(2024, 12, 31)},
		{ID: 2, CarWashID: 3, Amount: 200, Date: from},
		{ID: 3, CarWashID: 4, Amount: 300, Date: to},
	}
	store.carWashSurcharges = []models.CarWashAdjustment{
		{ID: 1, CarWashID: 4, Amount: 50, Date: models.NewDate(2025, 1, 15)},
	}
	svc := NewService(ServiceOpts{Storage: store})

	t.Run("penalties within period", func(t *testing.T) {
		penalties, err := svc.GetCarWashPenalties(ctx, models.CarWashAdjustmentsFilter{From: from, To: to})
		require.NoError(t, err)
		require.Len(t, penalties, 2)
		assert.Equal(t, int64(2), penalties[0].ID)
		assert.Equal(t, int64(3), penalties[1].ID)
	})

	t.Run("penalties of selected car washes", func(t *testing.T) {
		filter := models.CarWashAdjustmentsFilter{CarWashIDs: []int64{4}, From: from, To: to}
		penalties, err := svc.GetCarWashPenalties(ctx, filter)
		require.NoError(t, err)
		require.Len(t, penalties, 1)
		assert.Equal(t, int64(4), penalties[0].CarWashID)
		assert.Equal(t, filter, store.lastCarWashFilter)
	})

	t.Run("surcharges", func(t *testing.T) {
		surcharges, err := svc.GetCarWashSurcharges(ctx, models.CarWashAdjustmentsFilter{From: from, To: to})
		require.NoError(t, err)
		assert.Len(t, surcharges, 1)
	})

	t.Run("reversed period", func(t *testing.T) {
		_, err := svc.GetCarWashSurcharges(ctx, models.CarWashAdjustmentsFilter{From: to, To: from})
		assert.Equal(t, models.ErrInvalidPeriod, err)
	})
}

func TestServiceDeleteCarWashAdjustments(t *testing.T) {
	ctx := context.Background()
	store := newFakeStorage()
	store.carWashPenalties = []models.CarWashAdjustment{{ID: 1, CarWashID: 3}}
	svc := NewService(ServiceOpts{Storage: store})

	require.NoError(t, svc.DeleteCarWashPenalty(ctx, 1))
	assert.Empty(t, store.carWashPenalties)
	assert.Equal(t, models.ErrCarWashPenaltyNotFound, svc.DeleteCarWashPenalty(ctx, 1))
	assert.Equal(t, models.ErrCarWashSurchargeNotFound, svc.DeleteCarWashSurcharge(ctx, 9))
}
