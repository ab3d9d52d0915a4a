package economics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/usbtypec1/car-wash-project-api-server/internal/models"
)

// fakeStorage keeps just enough state in memory for the economics services.
type fakeStorage struct {
	Storage

	now time.Time

	staff       []models.StaffItem
	shifts      map[int64]models.Shift
	activeShift *models.Shift

	prices          map[models.ServiceType]models.ServicePrice
	priceLoads      int
	pricesLoadError error

	penaltyCounts map[string]int
	countCalls    int
	penalties     []models.Penalty
	surcharges    []models.Surcharge

	carWashPenalties  []models.CarWashAdjustment
	carWashSurcharges []models.CarWashAdjustment
	lastCarWashFilter models.CarWashAdjustmentsFilter

	periodShifts        []models.Shift
	transferredCars     []models.TransferredCar
	dryCleaningItems    []models.ShiftDryCleaningItems
	penaltiesForPeriod  []models.StaffAmountsForPeriod
	surchargesForPeriod []models.StaffAmountsForPeriod

	carWashes       map[int64]models.CarWash
	carWashServices []models.CarWashService
	carsForPeriod   []models.CarToWashDTO
	createdCars     []*models.CarToWash
	transactions    int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		now:           time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		shifts:        make(map[int64]models.Shift),
		prices:        make(map[models.ServiceType]models.ServicePrice),
		penaltyCounts: make(map[string]int),
		carWashes:     make(map[int64]models.CarWash),
	}
}

func (f *fakeStorage) tick() time.Time {
	f.now = f.now.Add(time.Minute)
	return f.now
}

func (f *fakeStorage) setPrices(prices map[models.ServiceType]int) {
	for service, price := range prices {
		f.prices[service] = models.ServicePrice{Service: service, Price: price}
	}
}

func (f *fakeStorage) GetStaff(_ context.Context, staffIDs []int64) ([]models.StaffItem, error) {
	if staffIDs == nil {
		return f.staff, nil
	}
	wanted := make(map[int64]bool, len(staffIDs))
	for _, id := range staffIDs {
		wanted[id] = true
	}
	result := []models.StaffItem{}
	for _, staff := range f.staff {
		if wanted[staff.ID] {
			result = append(result, staff)
		}
	}
	return result, nil
}

func (f *fakeStorage) GetShiftByID(_ context.Context, shiftID int64) (*models.Shift, error) {
	shift, ok := f.shifts[shiftID]
	if !ok {
		return nil, models.ErrShiftNotFound
	}
	return &shift, nil
}

func (f *fakeStorage) GetActiveShift(_ context.Context, staffID int64) (*models.Shift, error) {
	if f.activeShift == nil || f.activeShift.StaffID != staffID {
		return nil, models.ErrShiftNotFound
	}
	return f.activeShift, nil
}

func (f *fakeStorage) GetShiftsForPeriod(_ context.Context, _, _ models.Date, _ []int64) ([]models.Shift, error) {
	return f.periodShifts, nil
}

func (f *fakeStorage) GetServicePrices(_ context.Context) ([]models.ServicePrice, error) {
	f.priceLoads++
	if f.pricesLoadError != nil {
		return nil, f.pricesLoadError
	}
	result := make([]models.ServicePrice, 0, len(f.prices))
	for _, price := range f.prices {
		result = append(result, price)
	}
	return result, nil
}

func (f *fakeStorage) GetServicePrice(_ context.Context, service models.ServiceType) (*models.ServicePrice, error) {
	price, ok := f.prices[service]
	if !ok {
		return nil, models.NewPriceNotFoundError(service)
	}
	return &price, nil
}

func (f *fakeStorage) UpsertServicePrice(_ context.Context, service models.ServiceType, price int) (*models.ServicePrice, error) {
	now := f.tick()
	record, ok := f.prices[service]
	if !ok {
		record = models.ServicePrice{Service: service, CreatedAt: now}
	}
	record.Price = price
	record.UpdatedAt = now
	f.prices[service] = record
	return &record, nil
}

func (f *fakeStorage) CountStaffPenalties(_ context.Context, _ int64, reason string) (int, error) {
	f.countCalls++
	return f.penaltyCounts[reason], nil
}

func (f *fakeStorage) CreatePenalty(_ context.Context, penalty *models.Penalty) error {
	penalty.ID = int64(len(f.penalties) + 1)
	penalty.CreatedAt = f.tick()
	f.penalties = append(f.penalties, *penalty)
	return nil
}

func (f *fakeStorage) DeletePenalty(_ context.Context, penaltyID int64) error {
	for i, penalty := range f.penalties {
		if penalty.ID == penaltyID {
			f.penalties = append(f.penalties[:i], f.penalties[i+1:]...)
			return nil
		}
	}
	return models.ErrPenaltyNotFound
}

func (f *fakeStorage) GetPenaltiesPage(_ context.Context, _ models.PenaltiesFilter) (*models.PenaltiesPage, error) {
	page := &models.PenaltiesPage{Penalties: []models.PenaltyItem{}, IsEndOfListReached: true}
	for _, penalty := range f.penalties {
		page.Penalties = append(page.Penalties, models.PenaltyItem{Penalty: penalty})
	}
	return page, nil
}

func (f *fakeStorage) GetPenaltiesForPeriod(_ context.Context, _ []int64, _, _ models.Date) ([]models.StaffAmountsForPeriod, error) {
	return f.penaltiesForPeriod, nil
}

func (f *fakeStorage) CreateSurcharge(_ context.Context, surcharge *models.Surcharge) error {
	surcharge.ID = int64(len(f.surcharges) + 1)
	surcharge.CreatedAt = f.tick()
	f.surcharges = append(f.surcharges, *surcharge)
	return nil
}

func (f *fakeStorage) DeleteSurcharge(_ context.Context, surchargeID int64) error {
	for i, surcharge := range f.surcharges {
		if surcharge.ID == surchargeID {
			f.surcharges = append(f.surcharges[:i], f.surcharges[i+1:]...)
			return nil
		}
	}
	return models.ErrSurchargeNotFound
}

func (f *fakeStorage) GetSurchargesForPeriod(_ context.Context, _ []int64, _, _ models.Date) ([]models.StaffAmountsForPeriod, error) {
	return f.surchargesForPeriod, nil
}

func (f *fakeStorage) CreateCarWashPenalty(_ context.Context, penalty *models.CarWashAdjustment) error {
	penalty.ID = int64(len(f.carWashPenalties) + 1)
	penalty.CreatedAt = f.tick()
	f.carWashPenalties = append(f.carWashPenalties, *penalty)
	return nil
}

func (f *fakeStorage) GetCarWashPenalties(_ context.Context, filter models.CarWashAdjustmentsFilter) ([]models.CarWashAdjustment, error) {
	f.lastCarWashFilter = filter
	return filterAdjustments(f.carWashPenalties, filter), nil
}

func (f *fakeStorage) DeleteCarWashPenalty(_ context.Context, penaltyID int64) error {
	for i, penalty := range f.carWashPenalties {
		if penalty.ID == penaltyID {
			f.carWashPenalties = append(f.carWashPenalties[:i], f.carWashPenalties[i+1:]...)
			return nil
		}
	}
	return models.ErrCarWashPenaltyNotFound
}

func (f *fakeStorage) CreateCarWashSurcharge(_ context.Context, surcharge *models.CarWashAdjustment) error {
	surcharge.ID = int64(len(f.carWashSurcharges) + 1)
	surcharge.CreatedAt = f.tick()
	f.carWashSurcharges = append(f.carWashSurcharges, *surcharge)
	return nil
}

func (f *fakeStorage) GetCarWashSurcharges(_ context.Context, filter models.CarWashAdjustmentsFilter) ([]models.CarWashAdjustment, error) {
	f.lastCarWashFilter = filter
	return filterAdjustments(f.carWashSurcharges, filter), nil
}

func (f *fakeStorage) DeleteCarWashSurcharge(_ context.Context, surchargeID int64) error {
	for i, surcharge := range f.carWashSurcharges {
		if surcharge.ID == surchargeID {
			f.carWashSurcharges = append(f.carWashSurcharges[:i], f.carWashSurcharges[i+1:]...)
			return nil
		}
	}
	return models.ErrCarWashSurchargeNotFound
}

func filterAdjustments(all []models.CarWashAdjustment, filter models.CarWashAdjustmentsFilter) []models.CarWashAdjustment {
	var wanted map[int64]bool
	if filter.CarWashIDs != nil {
		wanted = make(map[int64]bool, len(filter.CarWashIDs))
		for _, id := range filter.CarWashIDs {
			wanted[id] = true
		}
	}

	result := []models.CarWashAdjustment{}
	for _, a := range all {
		if a.Date.Before(filter.From.Time) || a.Date.After(filter.To.Time) {
			continue
		}
		if wanted != nil && !wanted[a.CarWashID] {
			continue
		}
		result = append(result, a)
	}
	return result
}

func (f *fakeStorage) GetCarWashByID(_ context.Context, carWashID int64) (*models.CarWash, error) {
	carWash, ok := f.carWashes[carWashID]
	if !ok {
		return nil, models.ErrCarWashNotFound
	}
	return &carWash, nil
}

func (f *fakeStorage) GetCarWashServices(_ context.Context, carWashID int64, serviceIDs []uuid.UUID) ([]models.CarWashService, error) {
	wanted := make(map[uuid.UUID]bool, len(serviceIDs))
	for _, id := range serviceIDs {
		wanted[id] = true
	}
	var result []models.CarWashService
	for _, service := range f.carWashServices {
		if service.CarWashID == carWashID && wanted[service.ID] {
			result = append(result, service)
		}
	}
	return result, nil
}

func (f *fakeStorage) CreateCarToWash(_ context.Context, car *models.CarToWash) error {
	car.ID = int64(len(f.createdCars) + 1)
	car.CreatedAt = f.tick()
	f.createdCars = append(f.createdCars, car)
	return nil
}

func (f *fakeStorage) GetCarToWashByID(_ context.Context, carID int64) (*models.CarToWash, error) {
	for _, car := range f.createdCars {
		if car.ID == carID {
			return car, nil
		}
	}
	return nil, models.NewCarToWashNotFoundError(carID)
}

func (f *fakeStorage) GetTransferredCarsForPeriod(_ context.Context, _, _ models.Date, _ []int64) ([]models.TransferredCar, error) {
	return f.transferredCars, nil
}

func (f *fakeStorage) GetShiftsDryCleaningItems(_ context.Context, _, _ models.Date, _ []int64) ([]models.ShiftDryCleaningItems, error) {
	return f.dryCleaningItems, nil
}

func (f *fakeStorage) GetCarsToWashForPeriod(_ context.Context, _, _ models.Date, _ []int64) ([]models.CarToWashDTO, error) {
	return f.carsForPeriod, nil
}

func (f *fakeStorage) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	f.transactions++
	return fn(ctx)
}

type sentMessage struct {
	chatID int64
	text   string
}

type fakeNotifier struct {
	sent []sentMessage
	err  error
}

func (n *fakeNotifier) Notify(_ context.Context, chatID int64, text string) error {
	n.sent = append(n.sent, sentMessage{chatID: chatID, text: text})
	return n.err
}
