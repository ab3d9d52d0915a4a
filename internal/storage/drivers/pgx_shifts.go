package drivers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/usbtypec1/car-wash-project-api-server/internal/models"
)

const shiftColumns = `
	s.id, s.staff_id, st.full_name, s.date, s.car_wash_id,
	s.is_extra, s.is_test, s.started_at, s.finished_at, s.created_at
`

func scanShift(row interface{ Scan(...interface{}) error }, shift *models.Shift) error {
	var (
		carWashID  sql.NullInt64
		startedAt  sql.NullTime
		finishedAt sql.NullTime
	)
	if err := row.Scan(
		&shift.ID,
		&shift.StaffID,
		&shift.StaffFullName,
		&shift.Date,
		&carWashID,
		&shift.IsExtra,
		&shift.IsTest,
		&startedAt,
		&finishedAt,
		&shift.CreatedAt,
	); err != nil {
		return err
	}
	if carWashID.Valid {
		shift.CarWashID = &carWashID.Int64
	}
	if startedAt.Valid {
		shift.StartedAt = &startedAt.Time
	}
	if finishedAt.Valid {
		shift.FinishedAt = &finishedAt.Time
	}
	return nil
}

func dateStrings(dates []models.Date) []string {
	result := make([]string, 0, len(dates))
	for _, d := range dates {
		result = append(result, d.String())
	}
	return result
}

func (s *PostgresStorage) GetShiftByID(ctx context.Context, shiftID int64) (*models.Shift, error) {
	query := `SELECT ` + shiftColumns + `
		FROM shifts s
		JOIN staff st ON st.id = s.staff_id
		WHERE s.id = $1
	`

	var shift models.Shift
	err := scanShift(s.getExecutor(ctx).QueryRowContext(ctx, query, shiftID), &shift)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift by id: %w", err)
	}

	return &shift, nil
}

// GetActiveShift returns the staff member's started and not yet finished shift.
func (s *PostgresStorage) GetActiveShift(ctx context.Context, staffID int64) (*models.Shift, error) {
	query := `SELECT ` + shiftColumns + `
		FROM shifts s
		JOIN staff st ON st.id = s.staff_id
		WHERE s.staff_id = $1
		  AND s.started_at IS NOT NULL
		  AND s.finished_at IS NULL
		ORDER BY s.date DESC
		LIMIT 1
	`

	var shift models.Shift
	err := scanShift(s.getExecutor(ctx).QueryRowContext(ctx, query, staffID), &shift)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get active shift: %w", err)
	}

	return &shift, nil
}

func (s *PostgresStorage) GetShiftsForPeriod(ctx context.Context, from, to models.Date, staffIDs []int64) ([]models.Shift, error) {
	where, args := periodFilter("s.date", "s.staff_id", from, to, staffIDs)
	query := `SELECT ` + shiftColumns + `
		FROM shifts s
		JOIN staff st ON st.id = s.staff_id` + where + `
		ORDER BY s.date, s.id`

	rows, err := s.getExecutor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []models.Shift
	for rows.Next() {
		var shift models.Shift
		if err := scanShift(rows, &shift); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return shifts, nil
}

func (s *PostgresStorage) GetExistingShiftDates(ctx context.Context, staffID int64, dates []models.Date) ([]models.Date, error) {
	query := `
		SELECT date
		FROM shifts
		WHERE staff_id = $1
		  AND date = ANY($2::date[])
		  AND NOT is_test
	`

	rows, err := s.getExecutor(ctx).QueryContext(ctx, query, staffID, pq.Array(dateStrings(dates)))
	if err != nil {
		return nil, fmt.Errorf("failed to query shift dates: %w", err)
	}
	defer rows.Close()

	var existing []models.Date
	for rows.Next() {
		var date models.Date
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("failed to scan shift date: %w", err)
		}
		existing = append(existing, date)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return existing, nil
}

func (s *PostgresStorage) GetExistingShifts(ctx context.Context, shifts []models.StaffIDAndDate) ([]models.StaffIDAndDate, error) {
	query := `
		SELECT staff_id, date
		FROM shifts
		WHERE NOT is_test
		  AND (staff_id, date) IN (
			SELECT * FROM unnest($1::bigint[], $2::date[])
		  )
	`

	staffIDs := make([]int64, 0, len(shifts))
	dates := make([]models.Date, 0, len(shifts))
	for _, shift := range shifts {
		staffIDs = append(staffIDs, shift.StaffID)
		dates = append(dates, shift.Date)
	}

	rows, err := s.getExecutor(ctx).QueryContext(ctx, query, pq.Array(staffIDs), pq.Array(dateStrings(dates)))
	if err != nil {
		return nil, fmt.Errorf("failed to query existing shifts: %w", err)
	}
	defer rows.Close()

	var existing []models.StaffIDAndDate
	for rows.Next() {
		var shift models.StaffIDAndDate
		if err := rows.Scan(&shift.StaffID, &shift.Date); err != nil {
			return nil, fmt.Errorf("failed to scan existing shift: %w", err)
		}
		existing = append(existing, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return existing, nil
}

// CreateShifts inserts shifts one by one and returns them with ids and
// creation timestamps filled in.
func (s *PostgresStorage) CreateShifts(ctx context.Context, shifts []models.Shift) ([]models.Shift, error) {
	query := `
		INSERT INTO shifts (staff_id, date, is_extra, is_test, created_at)
		VALUES ($1, $2, $3, $4, now())
		RETURNING id, created_at
	`

	created := make([]models.Shift, 0, len(shifts))
	for _, shift := range shifts {
		err := s.getExecutor(ctx).QueryRowContext(ctx, query,
			shift.StaffID,
			shift.Date,
			shift.IsExtra,
			shift.IsTest,
		).Scan(&shift.ID, &shift.CreatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, models.NewShiftAlreadyExistsError([]models.Date{shift.Date})
			}
			return nil, fmt.Errorf("failed to create shift: %w", err)
		}
		created = append(created, shift)
	}

	return created, nil
}

func (s *PostgresStorage) DeleteTestShifts(ctx context.Context, staffID int64) error {
	query := `
		DELETE FROM shifts
		WHERE staff_id = $1 AND is_test
	`

	if _, err := s.getExecutor(ctx).ExecContext(ctx, query, staffID); err != nil {
		return fmt.Errorf("failed to delete test shifts: %w", err)
	}

	return nil
}

func (s *PostgresStorage) StartShift(ctx context.Context, shiftID, carWashID int64) error {
	query := `
		UPDATE shifts
		SET started_at = now(), car_wash_id = $2
		WHERE id = $1
	`

	result, err := s.getExecutor(ctx).ExecContext(ctx, query, shiftID, carWashID)
	if err != nil {
		return fmt.Errorf("failed to start shift: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrShiftNotFound
	}

	return nil
}

// FinishShift stamps finished_at once; finishing an already finished shift is
// a no-op.
func (s *PostgresStorage) FinishShift(ctx context.Context, shiftID int64) error {
	query := `
		UPDATE shifts
		SET finished_at = now()
		WHERE id = $1 AND finished_at IS NULL
	`

	if _, err := s.getExecutor(ctx).ExecContext(ctx, query, shiftID); err != nil {
		return fmt.Errorf("failed to finish shift: %w", err)
	}

	return nil
}

func (s *PostgresStorage) HasFinishedShift(ctx context.Context, staffID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM shifts
			WHERE staff_id = $1 AND finished_at IS NOT NULL
		)
	`

	var exists bool
	if err := s.getExecutor(ctx).QueryRowContext(ctx, query, staffID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check finished shifts: %w", err)
	}

	return exists, nil
}

// ReplaceShiftFinishPhotos deletes the shift's finish photos and stores the
// given ones. Callers run it inside a transaction.
func (s *PostgresStorage) ReplaceShiftFinishPhotos(ctx context.Context, shiftID int64, fileIDs []string) error {
	exec := s.getExecutor(ctx)

	if _, err := exec.ExecContext(ctx, `DELETE FROM shift_finish_photos WHERE shift_id = $1`, shiftID); err != nil {
		return fmt.Errorf("failed to delete shift finish photos: %w", err)
	}

	for _, fileID := range fileIDs {
		_, err := exec.ExecContext(ctx,
			`INSERT INTO shift_finish_photos (shift_id, file_id, created_at) VALUES ($1, $2, now())`,
			shiftID, fileID,
		)
		if err != nil {
			return fmt.Errorf("failed to create shift finish photo: %w", err)
		}
	}

	return nil
}

// GetShiftSummary counts the shift's transferred cars per car wash. Cars
// without a car wash form their own group, listed last.
func (s *PostgresStorage) GetShiftSummary(ctx context.Context, shiftID int64) ([]models.ShiftCarWashSummary, error) {
	query := `
		SELECT c.car_wash_id, COALESCE(cw.name, ''),
		       COUNT(*) FILTER (WHERE c.car_class = 'comfort'),
		       COUNT(*) FILTER (WHERE c.car_class = 'business'),
		       COUNT(*) FILTER (WHERE c.car_class = 'van'),
		       COUNT(*) FILTER (WHERE c.wash_type = 'planned'),
		       COUNT(*) FILTER (WHERE c.wash_type = 'urgent'),
		       COALESCE(SUM(a.dry_cleaning), 0),
		       COALESCE(SUM(a.trunk_vacuum), 0),
		       COUNT(*),
		       COUNT(*) FILTER (WHERE c.windshield_washer_refilled_bottle_percentage > 0)
		FROM cars_to_wash c
		LEFT JOIN car_washes cw ON cw.id = c.car_wash_id
		LEFT JOIN (
			SELECT cs.car_id,
			       SUM(cs.count) FILTER (WHERE cws.is_dry_cleaning) AS dry_cleaning,
			       SUM(cs.count) FILTER (WHERE cs.service_id = $2::uuid) AS trunk_vacuum
			FROM car_to_wash_additional_services cs
			JOIN car_wash_services cws ON cws.id = cs.service_id
			GROUP BY cs.car_id
		) a ON a.car_id = c.id
		WHERE c.shift_id = $1
		GROUP BY c.car_wash_id, cw.name
		ORDER BY c.car_wash_id NULLS LAST
	`

	rows, err := s.getExecutor(ctx).QueryContext(ctx, query, shiftID, models.TrunkVacuumServiceID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query shift summary: %w", err)
	}
	defer rows.Close()

	summaries := []models.ShiftCarWashSummary{}
	for rows.Next() {
		var (
			summary   models.ShiftCarWashSummary
			carWashID sql.NullInt64
		)
		if err := rows.Scan(
			&carWashID,
			&summary.CarWashName,
			&summary.ComfortCarsCount,
			&summary.BusinessCarsCount,
			&summary.VansCount,
			&summary.PlannedCarsCount,
			&summary.UrgentCarsCount,
			&summary.DryCleaningCount,
			&summary.TrunkVacuumCount,
			&summary.TotalCarsCount,
			&summary.RefilledCarsCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift summary: %w", err)
		}
		if carWashID.Valid {
			summary.CarWashID = &carWashID.Int64
		}
		summary.NotRefilledCarsCount = summary.TotalCarsCount - summary.RefilledCarsCount
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return summaries, nil
}

func (s *PostgresStorage) DeleteShift(ctx context.Context, shiftID int64) error {
	return s.deleteByID(ctx, "shifts", shiftID, models.ErrShiftNotFound)
}

func (s *PostgresStorage) IsMonthAvailable(ctx context.Context, month, year int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM available_dates
			WHERE month = $1 AND year = $2
		)
	`

	var exists bool
	if err := s.getExecutor(ctx).QueryRowContext(ctx, query, month, year).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check available month: %w", err)
	}

	return exists, nil
}
