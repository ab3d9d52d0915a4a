package economics

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/usbtypec1/car-wash-project-api-server/internal/metrics"
	"github.com/usbtypec1/car-wash-project-api-server/internal/models"
)

// CreateCarToWash records a car transferred during the staff member's active
// shift. Transfer, washing, windshield washer and additional service prices
// are snapshotted so later price changes do not rewrite history.
func (s *Service) CreateCarToWash(ctx context.Context, input models.CarToWashCreateInput) (*models.CarToWash, error) {
	shift, err := s.storage.GetActiveShift(ctx, input.StaffID)
	if err != nil {
		return nil, err
	}

	transferPrice, err := CarTransferPrice(ctx, NewPriceCatalog(s.storage), input.CarClass, input.WashType, shift.IsExtra)
	if err != nil {
		return nil, err
	}

	car := &models.CarToWash{
		ShiftID:                         shift.ID,
		CarWashID:                       shift.CarWashID,
		Number:                          input.Number,
		CarClass:                        input.CarClass,
		WashType:                        input.WashType,
		WindshieldWasherPercentage:      input.WindshieldWasherPercentage,
		WindshieldWasherRefilledBottles: models.RefilledBottlesCount(input.WindshieldWasherPercentage),
		TransferPrice:                   transferPrice,
		AdditionalServices:              []models.CarToWashAdditionalService{},
	}

	if shift.CarWashID != nil {
		carWash, err := s.storage.GetCarWashByID(ctx, *shift.CarWashID)
		if err != nil {
			return nil, err
		}
		if car.WashingPrice, err = carWash.WashingPrice(input.CarClass); err != nil {
			return nil, err
		}
		car.WindshieldWasherPrice = carWash.WindshieldWasherPrice * car.WindshieldWasherRefilledBottles
	}

	if car.AdditionalServices, err = s.resolveAdditionalServices(ctx, shift.CarWashID, input.AdditionalServices); err != nil {
		return nil, err
	}

	err = s.storage.WithTransaction(ctx, func(ctx context.Context) error {
		return s.storage.CreateCarToWash(ctx, car)
	})
	if err != nil {
		return nil, err
	}

	metrics.CarsTransferred.WithLabelValues(string(car.CarClass)).Inc()
	slog.Info("car to wash created",
		slog.Int64("car_id", car.ID),
		slog.Int64("shift_id", car.ShiftID),
		slog.String("number", car.Number),
		slog.Int("transfer_price", car.TransferPrice),
	)

	return car, nil
}

// resolveAdditionalServices prices the requested services of the car wash.
// Services the car wash does not offer are rejected.
func (s *Service) resolveAdditionalServices(ctx context.Context, carWashID *int64, inputs []models.AdditionalServiceInput) ([]models.CarToWashAdditionalService, error) {
	result := make([]models.CarToWashAdditionalService, 0, len(inputs))
	if len(inputs) == 0 {
		return result, nil
	}

	ids := make([]uuid.UUID, 0, len(inputs))
	for _, input := range inputs {
		ids = append(ids, input.ID)
	}

	var available []models.CarWashService
	if carWashID != nil {
		var err error
		if available, err = s.storage.GetCarWashServices(ctx, *carWashID, ids); err != nil {
			return nil, err
		}
	}

	byID := make(map[uuid.UUID]models.CarWashService, len(available))
	for _, service := range available {
		byID[service.ID] = service
	}

	var missing []string
	for _, input := range inputs {
		service, ok := byID[input.ID]
		if !ok {
			missing = append(missing, input.ID.String())
			continue
		}
		result = append(result, models.CarToWashAdditionalService{
			ID:            service.ID,
			Name:          service.Name,
			Count:         input.Count,
			Price:         service.Price,
			IsDryCleaning: service.IsDryCleaning,
		})
	}
	if len(missing) > 0 {
		return nil, models.NewServiceNotFoundError(carWashID, missing)
	}

	return result, nil
}

func (s *Service) GetCarToWash(ctx context.Context, carID int64) (*models.CarToWash, error) {
	return s.storage.GetCarToWashByID(ctx, carID)
}
