package drivers

import (
	"context"
	"fmt"

	"github.com/usbtypec1/car-wash-project-api-server/internal/models"
)

const (
	carWashPenaltiesTable  = "car_wash_penalties"
	carWashSurchargesTable = "car_wash_surcharges"
)

func (s *PostgresStorage) CreateCarWashPenalty(ctx context.Context, penalty *models.CarWashAdjustment) error {
	return s.createCarWashAdjustment(ctx, carWashPenaltiesTable, penalty)
}

func (s *PostgresStorage) GetCarWashPenalties(ctx context.Context, filter models.CarWashAdjustmentsFilter) ([]models.CarWashAdjustment, error) {
	return s.getCarWashAdjustments(ctx, carWashPenaltiesTable, filter)
}

func (s *PostgresStorage) DeleteCarWashPenalty(ctx context.Context, penaltyID int64) error {
	return s.deleteByID(ctx, carWashPenaltiesTable, penaltyID, models.ErrCarWashPenaltyNotFound)
}

func (s *PostgresStorage) CreateCarWashSurcharge(ctx context.Context, surcharge *models.CarWashAdjustment) error {
	return s.createCarWashAdjustment(ctx, carWashSurchargesTable, surcharge)
}

func (s *PostgresStorage) GetCarWashSurcharges(ctx context.Context, filter models.CarWashAdjustmentsFilter) ([]models.CarWashAdjustment, error) {
	return s.getCarWashAdjustments(ctx, carWashSurchargesTable, filter)
}

func (s *PostgresStorage) DeleteCarWashSurcharge(ctx context.Context, surchargeID int64) error {
	return s.deleteByID(ctx, carWashSurchargesTable, surchargeID, models.ErrCarWashSurchargeNotFound)
}

// createCarWashAdjustment reports ErrCarWashNotFound when the car wash
// disappears between the caller's check and the insert.
func (s *PostgresStorage) createCarWashAdjustment(ctx context.Context, table string, adjustment *models.CarWashAdjustment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (car_wash_id, reason, amount, date, created_at)
		VALUES ($1, $2, $3, $4, now())
		RETURNING id, created_at
	`, table)

	err := s.getExecutor(ctx).QueryRowContext(ctx, query,
		adjustment.CarWashID,
		adjustment.Reason,
		adjustment.Amount,
		adjustment.Date,
	).Scan(&adjustment.ID, &adjustment.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.ErrCarWashNotFound
		}
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}

	return nil
}

func (s *PostgresStorage) getCarWashAdjustments(ctx context.Context, table string, filter models.CarWashAdjustmentsFilter) ([]models.CarWashAdjustment, error) {
	where, args := periodFilter("date", "car_wash_id", filter.From, filter.To, filter.CarWashIDs)
	query := fmt.Sprintf(`
		SELECT id, car_wash_id, reason, amount, date, created_at
		FROM %s`, table) + where + `
		ORDER BY date, id`

	rows, err := s.getExecutor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	adjustments := []models.CarWashAdjustment{}
	for rows.Next() {
		var adjustment models.CarWashAdjustment
		if err := rows.Scan(
			&adjustment.ID,
			&adjustment.CarWashID,
			&adjustment.Reason,
			&adjustment.Amount,
			&adjustment.Date,
			&adjustment.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		adjustments = append(adjustments, adjustment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return adjustments, nil
}
