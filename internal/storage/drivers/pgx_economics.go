package drivers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/usbtypec1/car-wash-project-api-server/internal/models"
)

func (s *PostgresStorage) GetServicePrices(ctx context.Context) ([]models.ServicePrice, error) {
	query := `
		SELECT service, price, created_at, updated_at
		FROM staff_service_prices
		ORDER BY service
	`

	rows, err := s.getExecutor(ctx).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query service prices: %w", err)
	}
	defer rows.Close()

	prices := []models.ServicePrice{}
	for rows.Next() {
		var price models.ServicePrice
		if err := rows.Scan(&price.Service, &price.Price, &price.CreatedAt, &price.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan service price: %w", err)
		}
		prices = append(prices, price)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return prices, nil
}

func (s *PostgresStorage) GetServicePrice(ctx context.Context, service models.ServiceType) (*models.ServicePrice, error) {
	query := `
		SELECT service, price, created_at, updated_at
		FROM staff_service_prices
		WHERE service = $1
	`

	var price models.ServicePrice
	err := s.getExecutor(ctx).QueryRowContext(ctx, query, service).Scan(
		&price.Service,
		&price.Price,
		&price.CreatedAt,
		&price.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.NewPriceNotFoundError(service)
		}
		return nil, fmt.Errorf("failed to get service price: %w", err)
	}

	return &price, nil
}

// UpsertServicePrice keeps a single row per service: a repeated call only
// overwrites price and bumps updated_at.
func (s *PostgresStorage) UpsertServicePrice(ctx context.Context, service models.ServiceType, price int) (*models.ServicePrice, error) {
	query := `
		INSERT INTO staff_service_prices (service, price, created_at, updated_at)
		VALUES ($1, $2, now(), now())
		ON CONFLICT (service) DO UPDATE
		SET price = EXCLUDED.price, updated_at = now()
		RETURNING service, price, created_at, updated_at
	`

	var result models.ServicePrice
	err := s.getExecutor(ctx).QueryRowContext(ctx, query, service, price).Scan(
		&result.Service,
		&result.Price,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert service price: %w", err)
	}

	return &result, nil
}

func (s *PostgresStorage) CountStaffPenalties(ctx context.Context, staffID int64, reason string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM penalties
		WHERE staff_id = $1 AND reason = $2
	`

	var count int
	if err := s.getExecutor(ctx).QueryRowContext(ctx, query, staffID, reason).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count staff penalties: %w", err)
	}

	return count, nil
}

func (s *PostgresStorage) CreatePenalty(ctx context.Context, penalty *models.Penalty) error {
	query := `
		INSERT INTO penalties (shift_id, staff_id, reason, amount, consequence, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING id, created_at
	`

	var consequence sql.NullString
	if penalty.Consequence != nil {
		consequence = sql.NullString{String: string(*penalty.Consequence), Valid: true}
	}

	err := s.getExecutor(ctx).QueryRowContext(ctx, query,
		penalty.ShiftID,
		penalty.StaffID,
		penalty.Reason,
		penalty.Amount,
		consequence,
	).Scan(&penalty.ID, &penalty.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create penalty: %w", err)
	}

	return nil
}

func (s *PostgresStorage) DeletePenalty(ctx context.Context, penaltyID int64) error {
	return s.deleteByID(ctx, "penalties", penaltyID, models.ErrPenaltyNotFound)
}

// GetPenaltiesPage returns newest penalties first. One extra row is fetched to
// tell whether the list continues past this page.
func (s *PostgresStorage) GetPenaltiesPage(ctx context.Context, filter models.PenaltiesFilter) (*models.PenaltiesPage, error) {
	query := `
		SELECT p.id, p.shift_id, p.staff_id, p.reason, p.amount, p.consequence,
		       p.created_at, st.full_name, s.date
		FROM penalties p
		JOIN staff st ON st.id = p.staff_id
		JOIN shifts s ON s.id = p.shift_id
	`

	args := []interface{}{filter.Limit + 1, filter.Offset}
	if filter.StaffIDs != nil {
		query += ` WHERE p.staff_id = ANY($3)`
		args = append(args, pq.Array(filter.StaffIDs))
	}
	query += ` ORDER BY p.created_at DESC, p.id DESC LIMIT $1 OFFSET $2`

	rows, err := s.getExecutor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query penalties: %w", err)
	}
	defer rows.Close()

	penalties := []models.PenaltyItem{}
	for rows.Next() {
		var (
			item        models.PenaltyItem
			consequence sql.NullString
		)
		if err := rows.Scan(
			&item.ID,
			&item.ShiftID,
			&item.StaffID,
			&item.Reason,
			&item.Amount,
			&consequence,
			&item.CreatedAt,
			&item.StaffFullName,
			&item.ShiftDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan penalty: %w", err)
		}
		if consequence.Valid {
			c := models.PenaltyConsequence(consequence.String)
			item.Consequence = &c
		}
		penalties = append(penalties, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	page := &models.PenaltiesPage{IsEndOfListReached: len(penalties) <= filter.Limit}
	if !page.IsEndOfListReached {
		penalties = penalties[:filter.Limit]
	}
	page.Penalties = penalties

	return page, nil
}

func (s *PostgresStorage) GetPenaltiesForPeriod(ctx context.Context, staffIDs []int64, from, to models.Date) ([]models.StaffAmountsForPeriod, error) {
	return s.getAmountsForPeriod(ctx, "penalties", staffIDs, from, to)
}

func (s *PostgresStorage) CreateSurcharge(ctx context.Context, surcharge *models.Surcharge) error {
	query := `
		INSERT INTO surcharges (shift_id, staff_id, reason, amount, created_at)
		VALUES ($1, $2, $3, $4, now())
		RETURNING id, created_at
	`

	err := s.getExecutor(ctx).QueryRowContext(ctx, query,
		surcharge.ShiftID,
		surcharge.StaffID,
		surcharge.Reason,
		surcharge.Amount,
	).Scan(&surcharge.ID, &surcharge.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create surcharge: %w", err)
	}

	return nil
}

func (s *PostgresStorage) DeleteSurcharge(ctx context.Context, surchargeID int64) error {
	return s.deleteByID(ctx, "surcharges", surchargeID, models.ErrSurchargeNotFound)
}

func (s *PostgresStorage) GetSurchargesForPeriod(ctx context.Context, staffIDs []int64, from, to models.Date) ([]models.StaffAmountsForPeriod, error) {
	return s.getAmountsForPeriod(ctx, "surcharges", staffIDs, from, to)
}

// getAmountsForPeriod sums penalty or surcharge amounts per staff and shift
// date. Staff keep the order of their first row.
func (s *PostgresStorage) getAmountsForPeriod(ctx context.Context, table string, staffIDs []int64, from, to models.Date) ([]models.StaffAmountsForPeriod, error) {
	where, args := periodFilter("s.date", "t.staff_id", from, to, staffIDs)
	query := fmt.Sprintf(`
		SELECT t.staff_id, s.date, SUM(t.amount)
		FROM %s t
		JOIN shifts s ON s.id = t.shift_id`, table) + where + `
		GROUP BY t.staff_id, s.date
		ORDER BY t.staff_id, s.date`

	rows, err := s.getExecutor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s for period: %w", table, err)
	}
	defer rows.Close()

	var (
		result []models.StaffAmountsForPeriod
		index  = make(map[int64]int)
	)
	for rows.Next() {
		var (
			staffID int64
			item    models.ShiftDateAmount
		)
		if err := rows.Scan(&staffID, &item.ShiftDate, &item.TotalAmount); err != nil {
			return nil, fmt.Errorf("failed to scan %s amount: %w", table, err)
		}
		i, ok := index[staffID]
		if !ok {
			i = len(result)
			index[staffID] = i
			result = append(result, models.StaffAmountsForPeriod{StaffID: staffID})
		}
		result[i].Items = append(result[i].Items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return result, nil
}
