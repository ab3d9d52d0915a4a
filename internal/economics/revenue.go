package economics

import (
	"context"

	"github.com/google/uuid"
	"github.com/usbtypec1/car-wash-project-api-server/internal/metrics"
	"github.com/usbtypec1/car-wash-project-api-server/internal/models"
)

// GetCarWashesSalesReport groups the cars washed at the given car washes by
// shift date. Dates keep the order the cars are loaded in.
func (s *Service) GetCarWashesSalesReport(ctx context.Context, carWashIDs []int64, from, to models.Date) ([]models.CarWashSalesReportItem, error) {
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}

	cars, err := s.storage.GetCarsToWashForPeriod(ctx, from, to, carWashIDs)
	if err != nil {
		return nil, err
	}

	report, err := GroupCarsToWashByShiftDate(cars)
	if err != nil {
		return nil, err
	}

	metrics.ReportsBuilt.WithLabelValues("car_washes_sales").Inc()
	return report, nil
}

// CarToWashTotalCost is what the car wash earns for a car: washing, windshield
// washer refill and every additional service.
func CarToWashTotalCost(car models.CarToWashDTO) int {
	total := car.WashingPrice + car.WindshieldWasherPrice
	for _, service := range car.AdditionalServices {
		total += service.TotalPrice
	}
	return total
}

func GroupCarsToWashByShiftDate(cars []models.CarToWashDTO) ([]models.CarWashSalesReportItem, error) {
	result := []models.CarWashSalesReportItem{}
	index := make(map[models.Date]int)
	services := make(map[models.Date]*serviceMerger)

	for _, car := range cars {
		i, ok := index[car.ShiftDate]
		if !ok {
			i = len(result)
			index[car.ShiftDate] = i
			result = append(result, models.CarWashSalesReportItem{ShiftDate: car.ShiftDate})
			services[car.ShiftDate] = newServiceMerger()
		}
		item := &result[i]

		switch car.CarClass {
		case models.CarClassComfort:
			item.ComfortCarsWashedCount++
		case models.CarClassBusiness:
			item.BusinessCarsWashedCount++
		case models.CarClassVan:
			item.VanCarsWashedCount++
		default:
			return nil, models.NewUnknownCarClassError(car.CarClass)
		}

		item.WindshieldWasherRefilledBottleCount += car.WindshieldWasherRefilledBottleCount
		item.TotalCost += CarToWashTotalCost(car)
		services[car.ShiftDate].add(car.AdditionalServices...)
	}

	for i := range result {
		result[i].AdditionalServices = services[result[i].ShiftDate].result()
	}

	return result, nil
}

// serviceMerger sums additional services with the same id, keeping the order
// in which ids were first seen.
type serviceMerger struct {
	order []uuid.UUID
	byID  map[uuid.UUID]models.CarToWashAdditionalServiceDTO
}

func newServiceMerger() *serviceMerger {
	return &serviceMerger{byID: make(map[uuid.UUID]models.CarToWashAdditionalServiceDTO)}
}

func (m *serviceMerger) add(services ...models.CarToWashAdditionalServiceDTO) {
	for _, service := range services {
		merged, ok := m.byID[service.ID]
		if !ok {
			m.order = append(m.order, service.ID)
			m.byID[service.ID] = service
			continue
		}
		merged.Count += service.Count
		merged.TotalPrice += service.TotalPrice
		m.byID[service.ID] = merged
	}
}

func (m *serviceMerger) result() []models.CarToWashAdditionalServiceDTO {
	result := make([]models.CarToWashAdditionalServiceDTO, 0, len(m.order))
	for _, id := range m.order {
		result = append(result, m.byID[id])
	}
	return result
}
