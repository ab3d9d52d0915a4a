// Package economics turns shift and car transfer records into money: staff
// service prices, penalties and surcharges, shift compensation and car wash
// revenue reports.
package economics

import (
	"context"

	"github.com/google/uuid"
	"github.com/usbtypec1/car-wash-project-api-server/internal/models"
	"github.com/usbtypec1/car-wash-project-api-server/internal/notify"
)

// Storage is the data access the economics services need.
type Storage interface {
	GetStaff(ctx context.Context, staffIDs []int64) ([]models.StaffItem, error)

	GetShiftByID(ctx context.Context, shiftID int64) (*models.Shift, error)
	GetActiveShift(ctx context.Context, staffID int64) (*models.Shift, error)
	GetShiftsForPeriod(ctx context.Context, from, to models.Date, staffIDs []int64) ([]models.Shift, error)

	GetServicePrices(ctx context.Context) ([]models.ServicePrice, error)
	GetServicePrice(ctx context.Context, service models.ServiceType) (*models.ServicePrice, error)
	UpsertServicePrice(ctx context.Context, service models.ServiceType, price int) (*models.ServicePrice, error)

	CountStaffPenalties(ctx context.Context, staffID int64, reason string) (int, error)
	CreatePenalty(ctx context.Context, penalty *models.Penalty) error
	DeletePenalty(ctx context.Context, penaltyID int64) error
	GetPenaltiesPage(ctx context.Context, filter models.PenaltiesFilter) (*models.PenaltiesPage, error)
	GetPenaltiesForPeriod(ctx context.Context, staffIDs []int64, from, to models.Date) ([]models.StaffAmountsForPeriod, error)
	CreateSurcharge(ctx context.Context, surcharge *models.Surcharge) error
	DeleteSurcharge(ctx context.Context, surchargeID int64) error
	GetSurchargesForPeriod(ctx context.Context, staffIDs []int64, from, to models.Date) ([]models.StaffAmountsForPeriod, error)

	CreateCarWashPenalty(ctx context.Context, penalty *models.CarWashAdjustment) error
	GetCarWashPenalties(ctx context.Context, filter models.CarWashAdjustmentsFilter) ([]models.CarWashAdjustment, error)
	DeleteCarWashPenalty(ctx context.Context, penaltyID int64) error
	CreateCarWashSurcharge(ctx context.Context, surcharge *models.CarWashAdjustment) error
	GetCarWashSurcharges(ctx context.Context, filter models.CarWashAdjustmentsFilter) ([]models.CarWashAdjustment, error)
	DeleteCarWashSurcharge(ctx context.Context, surchargeID int64) error

	GetCarWashByID(ctx context.Context, carWashID int64) (*models.CarWash, error)
	GetCarWashServices(ctx context.Context, carWashID int64, serviceIDs []uuid.UUID) ([]models.CarWashService, error)
	CreateCarToWash(ctx context.Context, car *models.CarToWash) error
	GetCarToWashByID(ctx context.Context, carID int64) (*models.CarToWash, error)
	GetTransferredCarsForPeriod(ctx context.Context, from, to models.Date, staffIDs []int64) ([]models.TransferredCar, error)
	GetShiftsDryCleaningItems(ctx context.Context, from, to models.Date, staffIDs []int64) ([]models.ShiftDryCleaningItems, error)
	GetCarsToWashForPeriod(ctx context.Context, from, to models.Date, carWashIDs []int64) ([]models.CarToWashDTO, error)

	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}

type Service struct {
	storage  Storage
	notifier notify.Notifier
}

type ServiceOpts struct {
	Storage  Storage
	Notifier notify.Notifier
}

func NewService(opts ServiceOpts) *Service {
	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.NopNotifier{}
	}
	return &Service{
		storage:  opts.Storage,
		notifier: notifier,
	}
}

func validatePeriod(from, to models.Date) error {
	if from.After(to.Time) {
		return models.ErrInvalidPeriod
	}
	return nil
}
