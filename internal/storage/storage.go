package storage

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/usbtypec1/car-wash-project-api-server/internal/models"
	"github.com/usbtypec1/car-wash-project-api-server/internal/storage/drivers"
)

var (
	PgxDriverType = "postgres"
)

type Storage interface {
	// Staff operations
	GetStaff(ctx context.Context, staffIDs []int64) ([]models.StaffItem, error)
	GetStaffByID(ctx context.Context, staffID int64) (*models.StaffItem, error)
	GetExistingStaffIDs(ctx context.Context, staffIDs []int64) ([]int64, error)
	GetStaffWithoutShiftsForMonth(ctx context.Context, month, year int) ([]models.StaffIDAndName, error)

	// Shift operations
	GetShiftByID(ctx context.Context, shiftID int64) (*models.Shift, error)
	GetActiveShift(ctx context.Context, staffID int64) (*models.Shift, error)
	GetShiftsForPeriod(ctx context.Context, from, to models.Date, staffIDs []int64) ([]models.Shift, error)
	GetExistingShiftDates(ctx context.Context, staffID int64, dates []models.Date) ([]models.Date, error)
	GetExistingShifts(ctx context.Context, shifts []models.StaffIDAndDate) ([]models.StaffIDAndDate, error)
	CreateShifts(ctx context.Context, shifts []models.Shift) ([]models.Shift, error)
	DeleteTestShifts(ctx context.Context, staffID int64) error
	StartShift(ctx context.Context, shiftID, carWashID int64) error
	FinishShift(ctx context.Context, shiftID int64) error
	HasFinishedShift(ctx context.Context, staffID int64) (bool, error)
	ReplaceShiftFinishPhotos(ctx context.Context, shiftID int64, fileIDs []string) error
	GetShiftSummary(ctx context.Context, shiftID int64) ([]models.ShiftCarWashSummary, error)
	DeleteShift(ctx context.Context, shiftID int64) error
	IsMonthAvailable(ctx context.Context, month, year int) (bool, error)

	// Service price operations
	GetServicePrices(ctx context.Context) ([]models.ServicePrice, error)
	GetServicePrice(ctx context.Context, service models.ServiceType) (*models.ServicePrice, error)
	UpsertServicePrice(ctx context.Context, service models.ServiceType, price int) (*models.ServicePrice, error)

	// Penalty and surcharge operations
	CountStaffPenalties(ctx context.Context, staffID int64, reason string) (int, error)
	CreatePenalty(ctx context.Context, penalty *models.Penalty) error
	DeletePenalty(ctx context.Context, penaltyID int64) error
	GetPenaltiesPage(ctx context.Context, filter models.PenaltiesFilter) (*models.PenaltiesPage, error)
	GetPenaltiesForPeriod(ctx context.Context, staffIDs []int64, from, to models.Date) ([]models.StaffAmountsForPeriod, error)
	CreateSurcharge(ctx context.Context, surcharge *models.Surcharge) error
	DeleteSurcharge(ctx context.Context, surchargeID int64) error
	GetSurchargesForPeriod(ctx context.Context, staffIDs []int64, from, to models.Date) ([]models.StaffAmountsForPeriod, error)

	// Car wash penalty and surcharge operations
	CreateCarWashPenalty(ctx context.Context, penalty *models.CarWashAdjustment) error
	GetCarWashPenalties(ctx context.Context, filter models.CarWashAdjustmentsFilter) ([]models.CarWashAdjustment, error)
	DeleteCarWashPenalty(ctx context.Context, penaltyID int64) error
	CreateCarWashSurcharge(ctx context.Context, surcharge *models.CarWashAdjustment) error
	GetCarWashSurcharges(ctx context.Context, filter models.CarWashAdjustmentsFilter) ([]models.CarWashAdjustment, error)
	DeleteCarWashSurcharge(ctx context.Context, surchargeID int64) error

	// Car operations
	GetCarWashByID(ctx context.Context, carWashID int64) (*models.CarWash, error)
	GetCarWashServices(ctx context.Context, carWashID int64, serviceIDs []uuid.UUID) ([]models.CarWashService, error)
	CreateCarToWash(ctx context.Context, car *models.CarToWash) error
	GetCarToWashByID(ctx context.Context, carID int64) (*models.CarToWash, error)
	GetTransferredCarsForPeriod(ctx context.Context, from, to models.Date, staffIDs []int64) ([]models.TransferredCar, error)
	GetShiftsDryCleaningItems(ctx context.Context, from, to models.Date, staffIDs []int64) ([]models.ShiftDryCleaningItems, error)
	GetCarsToWashForPeriod(ctx context.Context, from, to models.Date, carWashIDs []int64) ([]models.CarToWashDTO, error)

	WithTransaction(ctx context.Context, fn func(context.Context) error) error

	// Automigrate and etc.
	Migrate(mpath string) error
}

type StorageOpts struct {
	Database   *sql.DB
	DriverType string
	DriverPath string
}

func NewStorage(opts StorageOpts) Storage {
	switch opts.DriverType {
	case PgxDriverType:
		return drivers.NewPostgresStorage(opts.Database, opts.DriverPath)
	}
	return nil
}
