// Package shifts schedules, starts and finishes staff shifts.
package shifts

import (
	"context"
	"errors"
	"log/slog"

	"github.com/usbtypec1/car-wash-project-api-server/internal/models"
)

type Storage interface {
	GetStaffByID(ctx context.Context, staffID int64) (*models.StaffItem, error)
	GetExistingStaffIDs(ctx context.Context, staffIDs []int64) ([]int64, error)
	GetStaffWithoutShiftsForMonth(ctx context.Context, month, year int) ([]models.StaffIDAndName, error)

	GetShiftByID(ctx context.Context, shiftID int64) (*models.Shift, error)
	GetActiveShift(ctx context.Context, staffID int64) (*models.Shift, error)
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

	GetCarWashByID(ctx context.Context, carWashID int64) (*models.CarWash, error)

	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}

type Service struct {
	storage Storage
}

func NewService(storage Storage) *Service {
	return &Service{storage: storage}
}

// CreateRegularShifts schedules shifts on the given dates. Nothing is created
// when any date already has a non-test shift.
func (s *Service) CreateRegularShifts(ctx context.Context, staffID int64, dates []models.Date) (*models.ShiftsCreateResult, error) {
	staff, err := s.storage.GetStaffByID(ctx, staffID)
	if err != nil {
		return nil, err
	}

	dates = uniqueDates(dates)

	var created []models.Shift
	err = s.storage.WithTransaction(ctx, func(ctx context.Context) error {
		conflicts, err := s.storage.GetExistingShiftDates(ctx, staffID, dates)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return models.NewShiftAlreadyExistsError(conflicts)
		}

		toCreate := make([]models.Shift, 0, len(dates))
		for _, date := range dates {
			toCreate = append(toCreate, models.Shift{StaffID: staffID, Date: date})
		}

		created, err = s.storage.CreateShifts(ctx, toCreate)
		return err
	})
	if err != nil {
		return nil, err
	}

	result := &models.ShiftsCreateResult{
		StaffID:       staff.ID,
		StaffFullName: staff.FullName,
		Shifts:        make([]models.ShiftItem, 0, len(created)),
	}
	for _, shift := range created {
		result.Shifts = append(result.Shifts, models.ShiftItem{ID: shift.ID, Date: shift.Date})
	}

	slog.Info("regular shifts created",
		slog.Int64("staff_id", staffID),
		slog.Int("count", len(created)),
	)

	return result, nil
}

// CreateExtraShifts creates extra shifts for every requested pair whose staff
// exists and who has no shift on that date yet. Unknown staff and conflicting
// pairs are reported back instead of failing the whole request.
func (s *Service) CreateExtraShifts(ctx context.Context, requested []models.StaffIDAndDate) (*models.ExtraShiftsCreateResult, error) {
	result := &models.ExtraShiftsCreateResult{
		MissingStaffIDs: []int64{},
		CreatedShifts:   []models.Shift{},
		ConflictShifts:  []models.StaffIDAndDate{},
	}

	err := s.storage.WithTransaction(ctx, func(ctx context.Context) error {
		staffIDs := make([]int64, 0, len(requested))
		seen := make(map[int64]bool, len(requested))
		for _, r := range requested {
			if !seen[r.StaffID] {
				seen[r.StaffID] = true
				staffIDs = append(staffIDs, r.StaffID)
			}
		}

		existingIDs, err := s.storage.GetExistingStaffIDs(ctx, staffIDs)
		if err != nil {
			return err
		}
		existing := make(map[int64]bool, len(existingIDs))
		for _, id := range existingIDs {
			existing[id] = true
		}

		var ofExistingStaff []models.StaffIDAndDate
		for _, id := range staffIDs {
			if !existing[id] {
				result.MissingStaffIDs = append(result.MissingStaffIDs, id)
			}
		}
		for _, r := range requested {
			if existing[r.StaffID] {
				ofExistingStaff = append(ofExistingStaff, r)
			}
		}
		if len(ofExistingStaff) == 0 {
			return nil
		}

		conflicts, err := s.storage.GetExistingShifts(ctx, ofExistingStaff)
		if err != nil {
			return err
		}
		conflicting := make(map[models.StaffIDAndDate]bool, len(conflicts))
		for _, c := range conflicts {
			conflicting[c] = true
		}

		var toCreate []models.Shift
		for _, r := range ofExistingStaff {
			if conflicting[r] {
				result.ConflictShifts = append(result.ConflictShifts, r)
				continue
			}
			toCreate = append(toCreate, models.Shift{StaffID: r.StaffID, Date: r.Date, IsExtra: true})
		}
		if len(toCreate) == 0 {
			return nil
		}

		created, err := s.storage.CreateShifts(ctx, toCreate)
		if err != nil {
			return err
		}
		result.CreatedShifts = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("extra shifts created",
		slog.Int("created", len(result.CreatedShifts)),
		slog.Int("conflicts", len(result.ConflictShifts)),
		slog.Int("missing_staff", len(result.MissingStaffIDs)),
	)

	return result, nil
}

// CreateTestShift replaces any previous test shift of the staff member.
func (s *Service) CreateTestShift(ctx context.Context, staffID int64, date models.Date) (*models.TestShiftCreateResult, error) {
	staff, err := s.storage.GetStaffByID(ctx, staffID)
	if err != nil {
		return nil, err
	}

	var shift models.Shift
	err = s.storage.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.storage.DeleteTestShifts(ctx, staffID); err != nil {
			return err
		}

		created, err := s.storage.CreateShifts(ctx, []models.Shift{{StaffID: staffID, Date: date, IsTest: true}})
		if err != nil {
			return err
		}
		shift = created[0]
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &models.TestShiftCreateResult{
		StaffID:       staff.ID,
		StaffFullName: staff.FullName,
		ShiftID:       shift.ID,
		ShiftDate:     shift.Date,
	}, nil
}

// StartShift binds the shift to a car wash and marks it started. A staff
// member can have only one started and unfinished shift.
func (s *Service) StartShift(ctx context.Context, shiftID, carWashID int64) (*models.Shift, error) {
	shift, err := s.storage.GetShiftByID(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	if shift.IsFinished() {
		return nil, models.ErrShiftAlreadyFinished
	}
	if shift.IsStarted() {
		return nil, models.ErrStaffHasActiveShift
	}

	active, err := s.storage.GetActiveShift(ctx, shift.StaffID)
	switch {
	case err == nil && active != nil:
		return nil, models.ErrStaffHasActiveShift
	case err != nil && !errors.Is(err, models.ErrShiftNotFound):
		return nil, err
	}

	if _, err := s.storage.GetCarWashByID(ctx, carWashID); err != nil {
		return nil, err
	}

	if err := s.storage.StartShift(ctx, shiftID, carWashID); err != nil {
		return nil, err
	}

	slog.Info("shift started",
		slog.Int64("shift_id", shiftID),
		slog.Int64("staff_id", shift.StaffID),
		slog.Int64("car_wash_id", carWashID),
	)

	return s.storage.GetShiftByID(ctx, shiftID)
}

// FinishShift stamps the finish time, replaces the finish photos and
// summarizes the transferred cars per car wash. IsFirstShift tells whether
// the staff member had never finished a shift before this one.
func (s *Service) FinishShift(ctx context.Context, shiftID int64, photoFileIDs []string) (*models.ShiftFinishResult, error) {
	if photoFileIDs == nil {
		photoFileIDs = []string{}
	}

	var result *models.ShiftFinishResult
	err := s.storage.WithTransaction(ctx, func(ctx context.Context) error {
		shift, err := s.storage.GetShiftByID(ctx, shiftID)
		if err != nil {
			return err
		}

		hasFinished, err := s.storage.HasFinishedShift(ctx, shift.StaffID)
		if err != nil {
			return err
		}

		if err := s.storage.FinishShift(ctx, shiftID); err != nil {
			return err
		}
		if err := s.storage.ReplaceShiftFinishPhotos(ctx, shiftID, photoFileIDs); err != nil {
			return err
		}

		carWashes, err := s.storage.GetShiftSummary(ctx, shiftID)
		if err != nil {
			return err
		}
		if carWashes == nil {
			carWashes = []models.ShiftCarWashSummary{}
		}
		for i := range carWashes {
			if carWashes[i].CarWashID == nil {
				carWashes[i].CarWashName = models.UnselectedCarWashName
			}
		}

		result = &models.ShiftFinishResult{
			ShiftID:            shift.ID,
			StaffID:            shift.StaffID,
			StaffFullName:      shift.StaffFullName,
			CarWashes:          carWashes,
			IsFirstShift:       !hasFinished,
			FinishPhotoFileIDs: photoFileIDs,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("shift finished",
		slog.Int64("shift_id", result.ShiftID),
		slog.Int64("staff_id", result.StaffID),
		slog.Bool("is_first_shift", result.IsFirstShift),
	)

	return result, nil
}

func (s *Service) DeleteShift(ctx context.Context, shiftID int64) error {
	return s.storage.DeleteShift(ctx, shiftID)
}

// GetDeadSouls lists active staff that have not worked in the month: no
// shifts at all or only a single test shift.
func (s *Service) GetDeadSouls(ctx context.Context, month, year int) (*models.DeadSoulsForMonth, error) {
	available, err := s.storage.IsMonthAvailable(ctx, month, year)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, models.NewMonthNotAvailableError(month, year)
	}

	staffList, err := s.storage.GetStaffWithoutShiftsForMonth(ctx, month, year)
	if err != nil {
		return nil, err
	}

	return &models.DeadSoulsForMonth{
		Month:     month,
		Year:      year,
		StaffList: staffList,
	}, nil
}

func uniqueDates(dates []models.Date) []models.Date {
	seen := make(map[models.Date]bool, len(dates))
	result := make([]models.Date, 0, len(dates))
	for _, d := range dates {
		if !seen[d] {
			seen[d] = true
			result = append(result, d)
		}
	}
	return result
}
