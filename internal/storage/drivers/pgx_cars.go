package drivers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/usbtypec1/car-wash-project-api-server/internal/models"
)

func (s *PostgresStorage) GetCarWashByID(ctx context.Context, carWashID int64) (*models.CarWash, error) {
	query := `
		SELECT id, name, comfort_class_car_washing_price, business_class_car_washing_price,
		       van_washing_price, windshield_washer_price_per_bottle, created_at, updated_at
		FROM car_washes
		WHERE id = $1
	`

	var carWash models.CarWash
	err := s.getExecutor(ctx).QueryRowContext(ctx, query, carWashID).Scan(
		&carWash.ID,
		&carWash.Name,
		&carWash.ComfortClassPrice,
		&carWash.BusinessClassPrice,
		&carWash.VanPrice,
		&carWash.WindshieldWasherPrice,
		&carWash.CreatedAt,
		&carWash.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrCarWashNotFound
		}
		return nil, fmt.Errorf("failed to get car wash by id: %w", err)
	}

	return &carWash, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		result = append(result, id.String())
	}
	return result
}

// GetCarWashServices returns the car wash's services among serviceIDs.
// Unknown ids are silently skipped.
func (s *PostgresStorage) GetCarWashServices(ctx context.Context, carWashID int64, serviceIDs []uuid.UUID) ([]models.CarWashService, error) {
	query := `
		SELECT id, car_wash_id, name, price, is_dry_cleaning
		FROM car_wash_services
		WHERE car_wash_id = $1
		  AND id = ANY($2::uuid[])
	`

	rows, err := s.getExecutor(ctx).QueryContext(ctx, query, carWashID, pq.Array(uuidStrings(serviceIDs)))
	if err != nil {
		return nil, fmt.Errorf("failed to query car wash services: %w", err)
	}
	defer rows.Close()

	var services []models.CarWashService
	for rows.Next() {
		var service models.CarWashService
		if err := rows.Scan(
			&service.ID,
			&service.CarWashID,
			&service.Name,
			&service.Price,
			&service.IsDryCleaning,
		); err != nil {
			return nil, fmt.Errorf("failed to scan car wash service: %w", err)
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return services, nil
}

// CreateCarToWash stores the car and its additional services. Callers run it
// inside a transaction.
func (s *PostgresStorage) CreateCarToWash(ctx context.Context, car *models.CarToWash) error {
	exec := s.getExecutor(ctx)

	query := `
		INSERT INTO cars_to_wash (
			shift_id, car_wash_id, number, car_class, wash_type,
			windshield_washer_refilled_bottle_percentage, transfer_price,
			washing_price, windshield_washer_price, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
		RETURNING id, created_at
	`

	err := exec.QueryRowContext(ctx, query,
		car.ShiftID,
		car.CarWashID,
		car.Number,
		car.CarClass,
		car.WashType,
		car.WindshieldWasherPercentage,
		car.TransferPrice,
		car.WashingPrice,
		car.WindshieldWasherPrice,
	).Scan(&car.ID, &car.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrCarToWashAlreadyExists
		}
		return fmt.Errorf("failed to create car to wash: %w", err)
	}

	for _, service := range car.AdditionalServices {
		_, err := exec.ExecContext(ctx, `
			INSERT INTO car_to_wash_additional_services (car_id, service_id, count, price)
			VALUES ($1, $2, $3, $4)`,
			car.ID, service.ID, service.Count, service.Price,
		)
		if err != nil {
			return fmt.Errorf("failed to create car to wash additional service: %w", err)
		}
	}

	return nil
}

func (s *PostgresStorage) GetCarToWashByID(ctx context.Context, carID int64) (*models.CarToWash, error) {
	exec := s.getExecutor(ctx)

	query := `
		SELECT id, shift_id, car_wash_id, number, car_class, wash_type,
		       windshield_washer_refilled_bottle_percentage, transfer_price,
		       washing_price, windshield_washer_price, created_at
		FROM cars_to_wash
		WHERE id = $1
	`

	var (
		car       models.CarToWash
		carWashID sql.NullInt64
	)
	err := exec.QueryRowContext(ctx, query, carID).Scan(
		&car.ID,
		&car.ShiftID,
		&carWashID,
		&car.Number,
		&car.CarClass,
		&car.WashType,
		&car.WindshieldWasherPercentage,
		&car.TransferPrice,
		&car.WashingPrice,
		&car.WindshieldWasherPrice,
		&car.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.NewCarToWashNotFoundError(carID)
		}
		return nil, fmt.Errorf("failed to get car to wash by id: %w", err)
	}
	if carWashID.Valid {
		car.CarWashID = &carWashID.Int64
	}
	car.WindshieldWasherRefilledBottles = models.RefilledBottlesCount(car.WindshieldWasherPercentage)

	rows, err := exec.QueryContext(ctx, `
		SELECT a.service_id, cws.name, a.count, a.price, cws.is_dry_cleaning
		FROM car_to_wash_additional_services a
		JOIN car_wash_services cws ON cws.id = a.service_id
		WHERE a.car_id = $1
		ORDER BY cws.name`, carID)
	if err != nil {
		return nil, fmt.Errorf("failed to query car to wash additional services: %w", err)
	}
	defer rows.Close()

	car.AdditionalServices = []models.CarToWashAdditionalService{}
	for rows.Next() {
		var service models.CarToWashAdditionalService
		if err := rows.Scan(
			&service.ID,
			&service.Name,
			&service.Count,
			&service.Price,
			&service.IsDryCleaning,
		); err != nil {
			return nil, fmt.Errorf("failed to scan car to wash additional service: %w", err)
		}
		car.AdditionalServices = append(car.AdditionalServices, service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return &car, nil
}

func (s *PostgresStorage) GetTransferredCarsForPeriod(ctx context.Context, from, to models.Date, staffIDs []int64) ([]models.TransferredCar, error) {
	where, args := periodFilter("s.date", "s.staff_id", from, to, staffIDs)
	query := `
		SELECT c.id, c.shift_id, c.car_class, c.wash_type, c.transfer_price
		FROM cars_to_wash c
		JOIN shifts s ON s.id = c.shift_id` + where + `
		ORDER BY c.shift_id, c.id`

	rows, err := s.getExecutor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transferred cars: %w", err)
	}
	defer rows.Close()

	var cars []models.TransferredCar
	for rows.Next() {
		var car models.TransferredCar
		if err := rows.Scan(
			&car.ID,
			&car.ShiftID,
			&car.CarClass,
			&car.WashType,
			&car.TransferPrice,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transferred car: %w", err)
		}
		cars = append(cars, car)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return cars, nil
}

// GetShiftsDryCleaningItems counts dry cleaning items per shift and staff
// member.
func (s *PostgresStorage) GetShiftsDryCleaningItems(ctx context.Context, from, to models.Date, staffIDs []int64) ([]models.ShiftDryCleaningItems, error) {
	where, args := periodFilter("s.date", "s.staff_id", from, to, staffIDs)
	query := `
		SELECT s.staff_id, s.id, SUM(a.count)
		FROM car_to_wash_additional_services a
		JOIN car_wash_services cws ON cws.id = a.service_id
		JOIN cars_to_wash c ON c.id = a.car_id
		JOIN shifts s ON s.id = c.shift_id` + where + `
		  AND cws.is_dry_cleaning
		GROUP BY s.staff_id, s.id`

	rows, err := s.getExecutor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query dry cleaning items: %w", err)
	}
	defer rows.Close()

	var items []models.ShiftDryCleaningItems
	for rows.Next() {
		var item models.ShiftDryCleaningItems
		if err := rows.Scan(&item.StaffID, &item.ShiftID, &item.ItemsCount); err != nil {
			return nil, fmt.Errorf("failed to scan dry cleaning items: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return items, nil
}

// GetCarsToWashForPeriod loads the cars washed at the given car washes within
// the period together with their additional services, ordered by shift date.
func (s *PostgresStorage) GetCarsToWashForPeriod(ctx context.Context, from, to models.Date, carWashIDs []int64) ([]models.CarToWashDTO, error) {
	exec := s.getExecutor(ctx)

	where, args := periodFilter("s.date", "c.car_wash_id", from, to, carWashIDs)
	query := `
		SELECT c.id, s.date, c.car_class,
		       c.windshield_washer_refilled_bottle_percentage,
		       c.washing_price, c.windshield_washer_price
		FROM cars_to_wash c
		JOIN shifts s ON s.id = c.shift_id` + where + `
		ORDER BY s.date, c.id`

	rows, err := exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query cars to wash: %w", err)
	}
	defer rows.Close()

	var (
		cars   []models.CarToWashDTO
		carIDs []int64
		index  = make(map[int64]int)
	)
	for rows.Next() {
		var (
			car        models.CarToWashDTO
			percentage int
		)
		if err := rows.Scan(
			&car.ID,
			&car.ShiftDate,
			&car.CarClass,
			&percentage,
			&car.WashingPrice,
			&car.WindshieldWasherPrice,
		); err != nil {
			return nil, fmt.Errorf("failed to scan car to wash: %w", err)
		}
		car.WindshieldWasherRefilledBottleCount = models.RefilledBottlesCount(percentage)
		index[car.ID] = len(cars)
		cars = append(cars, car)
		carIDs = append(carIDs, car.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	if len(cars) == 0 {
		return cars, nil
	}

	serviceRows, err := exec.QueryContext(ctx, `
		SELECT a.car_id, a.service_id, cws.name, a.count, a.price * a.count
		FROM car_to_wash_additional_services a
		JOIN car_wash_services cws ON cws.id = a.service_id
		WHERE a.car_id = ANY($1)
		ORDER BY a.car_id, a.id`, pq.Array(carIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to query cars to wash additional services: %w", err)
	}
	defer serviceRows.Close()

	for serviceRows.Next() {
		var (
			carID   int64
			service models.CarToWashAdditionalServiceDTO
		)
		if err := serviceRows.Scan(
			&carID,
			&service.ID,
			&service.Name,
			&service.Count,
			&service.TotalPrice,
		); err != nil {
			return nil, fmt.Errorf("failed to scan car to wash additional service: %w", err)
		}
		if i, ok := index[carID]; ok {
			cars[i].AdditionalServices = append(cars[i].AdditionalServices, service)
		}
	}

	if err := serviceRows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return cars, nil
}
