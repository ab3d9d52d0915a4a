package drivers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/usbtypec1/car-wash-project-api-server/internal/models"
)

const staffColumns = `id, full_name, car_sharing_phone_number, console_phone_number, created_at, banned_at`

func scanStaff(row interface{ Scan(...interface{}) error }, staff *models.StaffItem) error {
	var bannedAt sql.NullTime
	if err := row.Scan(
		&staff.ID,
		&staff.FullName,
		&staff.CarSharingPhoneNumber,
		&staff.ConsolePhoneNumber,
		&staff.CreatedAt,
		&bannedAt,
	); err != nil {
		return err
	}
	if bannedAt.Valid {
		staff.BannedAt = &bannedAt.Time
	}
	return nil
}

// GetStaff returns staff ordered by full name. A nil staffIDs means all staff.
func (s *PostgresStorage) GetStaff(ctx context.Context, staffIDs []int64) ([]models.StaffItem, error) {
	query := `SELECT ` + staffColumns + ` FROM staff`

	var args []interface{}
	if staffIDs != nil {
		query += ` WHERE id = ANY($1)`
		args = append(args, pq.Array(staffIDs))
	}
	query += ` ORDER BY full_name`

	rows, err := s.getExecutor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff: %w", err)
	}
	defer rows.Close()

	staffList := []models.StaffItem{}
	for rows.Next() {
		var staff models.StaffItem
		if err := scanStaff(rows, &staff); err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		staffList = append(staffList, staff)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return staffList, nil
}

func (s *PostgresStorage) GetStaffByID(ctx context.Context, staffID int64) (*models.StaffItem, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE id = $1`

	var staff models.StaffItem
	err := scanStaff(s.getExecutor(ctx).QueryRowContext(ctx, query, staffID), &staff)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to get staff by id: %w", err)
	}

	return &staff, nil
}

func (s *PostgresStorage) GetExistingStaffIDs(ctx context.Context, staffIDs []int64) ([]int64, error) {
	query := `
		SELECT id
		FROM staff
		WHERE id = ANY($1)
	`

	rows, err := s.getExecutor(ctx).QueryContext(ctx, query, pq.Array(staffIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to query staff ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan staff id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return ids, nil
}

// GetStaffWithoutShiftsForMonth lists active staff that have no real shift in
// the month: either no shifts at all or a single test shift.
func (s *PostgresStorage) GetStaffWithoutShiftsForMonth(ctx context.Context, month, year int) ([]models.StaffIDAndName, error) {
	query := `
		SELECT st.id, st.full_name
		FROM staff st
		WHERE st.banned_at IS NULL
		  AND NOT EXISTS (
			SELECT 1 FROM shifts s
			WHERE s.staff_id = st.id
			  AND NOT s.is_test
			  AND EXTRACT(MONTH FROM s.date) = $1
			  AND EXTRACT(YEAR FROM s.date) = $2
		  )
		  AND (
			SELECT COUNT(*) FROM shifts s
			WHERE s.staff_id = st.id
			  AND s.is_test
			  AND EXTRACT(MONTH FROM s.date) = $1
			  AND EXTRACT(YEAR FROM s.date) = $2
		  ) <= 1
		ORDER BY st.full_name
	`

	rows, err := s.getExecutor(ctx).QueryContext(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff without shifts: %w", err)
	}
	defer rows.Close()

	staffList := []models.StaffIDAndName{}
	for rows.Next() {
		var staff models.StaffIDAndName
		if err := rows.Scan(&staff.ID, &staff.FullName); err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		staffList = append(staffList, staff)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return staffList, nil
}
