package economics

import (
	"context"
	"log/slog"

	"github.com/usbtypec1/car-wash-project-api-server/internal/metrics"
	"github.com/usbtypec1/car-wash-project-api-server/internal/models"
)

const (
	adjustmentPenalty   = "penalty"
	adjustmentSurcharge = "surcharge"
)

// CreateCarWashPenalty fines a car wash for a day of work.
func (s *Service) CreateCarWashPenalty(ctx context.Context, input models.CarWashAdjustmentCreateInput) (*models.CarWashAdjustment, error) {
	return s.createCarWashAdjustment(ctx, adjustmentPenalty, input, s.storage.CreateCarWashPenalty)
}

func (s *Service) CreateCarWashSurcharge(ctx context.Context, input models.CarWashAdjustmentCreateInput) (*models.CarWashAdjustment, error) {
	return s.createCarWashAdjustment(ctx, adjustmentSurcharge, input, s.storage.CreateCarWashSurcharge)
}

func (s *Service) GetCarWashPenalties(ctx context.Context, filter models.CarWashAdjustmentsFilter) ([]models.CarWashAdjustment, error) {
	if err := validatePeriod(filter.From, filter.To); err != nil {
		return nil, err
	}
	return s.storage.GetCarWashPenalties(ctx, filter)
}

func (s *Service) GetCarWashSurcharges(ctx context.Context, filter models.CarWashAdjustmentsFilter) ([]models.CarWashAdjustment, error) {
	if err := validatePeriod(filter.From, filter.To); err != nil {
		return nil, err
	}
	return s.storage.GetCarWashSurcharges(ctx, filter)
}

func (s *Service) DeleteCarWashPenalty(ctx context.Context, penaltyID int64) error {
	return s.storage.DeleteCarWashPenalty(ctx, penaltyID)
}

func (s *Service) DeleteCarWashSurcharge(ctx context.Context, surchargeID int64) error {
	return s.storage.DeleteCarWashSurcharge(ctx, surchargeID)
}

func (s *Service) createCarWashAdjustment(
	ctx context.Context,
	kind string,
	input models.CarWashAdjustmentCreateInput,
	create func(context.Context, *models.CarWashAdjustment) error,
) (*models.CarWashAdjustment, error) {
	if input.Date.IsZero() {
		return nil, models.ErrDateRequired
	}

	if _, err := s.storage.GetCarWashByID(ctx, input.CarWashID); err != nil {
		return nil, err
	}

	adjustment := models.CarWashAdjustment{
		CarWashID: input.CarWashID,
		Reason:    input.Reason,
		Amount:    input.Amount,
		Date:      input.Date,
	}
	if err := create(ctx, &adjustment); err != nil {
		return nil, err
	}

	metrics.CarWashAdjustmentsCreated.WithLabelValues(kind).Inc()
	slog.Info("car wash "+kind+" created",
		slog.Int64("id", adjustment.ID),
		slog.Int64("car_wash_id", adjustment.CarWashID),
		slog.Int("amount", adjustment.Amount),
		slog.String("date", adjustment.Date.String()),
	)

	return &adjustment, nil
}
