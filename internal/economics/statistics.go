package economics

import (
	"context"
	"log/slog"

	"github.com/usbtypec1/car-wash-project-api-server/internal/metrics"
	"github.com/usbtypec1/car-wash-project-api-server/internal/models"
)

// GetStaffShiftsStatistics builds one entry per staff member with the
// statistics of each of their shifts within the period. A nil staffIDs
// selects all staff. Staff without shifts get an empty list.
//
// The report is all or nothing: a missing transfer price fails it.
func (s *Service) GetStaffShiftsStatistics(ctx context.Context, staffIDs []int64, from, to models.Date) ([]models.StaffShiftsStatistics, error) {
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}

	staffList, err := s.storage.GetStaff(ctx, staffIDs)
	if err != nil {
		return nil, err
	}

	penalties, err := s.storage.GetPenaltiesForPeriod(ctx, staffIDs, from, to)
	if err != nil {
		return nil, err
	}

	surcharges, err := s.storage.GetSurchargesForPeriod(ctx, staffIDs, from, to)
	if err != nil {
		return nil, err
	}

	shiftsStatistics, err := s.getShiftsStatistics(ctx, staffIDs, from, to)
	if err != nil {
		return nil, err
	}

	byStaff := make(map[int64][]models.ShiftStatistics)
	for _, st := range shiftsStatistics {
		byStaff[st.StaffID] = append(byStaff[st.StaffID], st)
	}

	penaltiesByStaff := amountsByStaff(penalties)
	surchargesByStaff := amountsByStaff(surcharges)

	result := make([]models.StaffShiftsStatistics, 0, len(staffList))
	for _, staff := range staffList {
		result = append(result, mergeStaffShiftsStatistics(
			staff,
			byStaff[staff.ID],
			penaltiesByStaff[staff.ID],
			surchargesByStaff[staff.ID],
		))
	}

	metrics.ReportsBuilt.WithLabelValues("staff_shifts_statistics").Inc()
	slog.Debug("staff shifts statistics built",
		slog.Int("staff_count", len(result)),
		slog.Int("shifts_count", len(shiftsStatistics)),
	)

	return result, nil
}

// getShiftsStatistics computes statistics for every shift in the period,
// including shifts without any cars.
func (s *Service) getShiftsStatistics(ctx context.Context, staffIDs []int64, from, to models.Date) ([]models.ShiftStatistics, error) {
	shifts, err := s.storage.GetShiftsForPeriod(ctx, from, to, staffIDs)
	if err != nil {
		return nil, err
	}
	if len(shifts) == 0 {
		return nil, nil
	}

	cars, err := s.storage.GetTransferredCarsForPeriod(ctx, from, to, staffIDs)
	if err != nil {
		return nil, err
	}

	dryCleaning, err := s.storage.GetShiftsDryCleaningItems(ctx, from, to, staffIDs)
	if err != nil {
		return nil, err
	}

	prices, err := LoadTransferPrices(ctx, NewPriceCatalog(s.storage))
	if err != nil {
		return nil, err
	}

	carsByShift := make(map[int64][]models.TransferredCar)
	for _, car := range cars {
		carsByShift[car.ShiftID] = append(carsByShift[car.ShiftID], car)
	}

	type shiftStaffKey struct {
		shiftID int64
		staffID int64
	}
	dryCleaningByShift := make(map[shiftStaffKey]int, len(dryCleaning))
	for _, item := range dryCleaning {
		dryCleaningByShift[shiftStaffKey{item.ShiftID, item.StaffID}] += item.ItemsCount
	}

	result := make([]models.ShiftStatistics, 0, len(shifts))
	for _, shift := range shifts {
		input := ShiftTransferInput{
			IsExtraShift:          shift.IsExtra,
			DryCleaningItemsCount: dryCleaningByShift[shiftStaffKey{shift.ID, shift.StaffID}],
		}
		for _, car := range carsByShift[shift.ID] {
			input.PreliminaryTotalCost += car.TransferPrice
			switch car.WashType {
			case models.WashTypeUrgent:
				input.UrgentCarsCount++
			case models.WashTypePlanned:
				switch car.CarClass {
				case models.CarClassComfort:
					input.ComfortCarsCount++
				case models.CarClassBusiness:
					input.BusinessCarsCount++
				case models.CarClassVan:
					input.VansCount++
				}
			}
		}

		result = append(result, models.ShiftStatistics{
			StaffID:                        shift.StaffID,
			ShiftID:                        shift.ID,
			ShiftDate:                      shift.Date,
			WashedCarsTotalCost:            ComputeWashedCarsTotalCost(input, prices),
			PlannedComfortCarsWashedCount:  input.ComfortCarsCount,
			PlannedBusinessCarsWashedCount: input.BusinessCarsCount,
			PlannedVansWashedCount:         input.VansCount,
			UrgentCarsWashedCount:          input.UrgentCarsCount,
			DryCleaningItemsCount:          input.DryCleaningItemsCount,
			IsExtraShift:                   shift.IsExtra,
		})
	}

	return result, nil
}

func amountsByStaff(items []models.StaffAmountsForPeriod) map[int64]map[models.Date]int {
	result := make(map[int64]map[models.Date]int, len(items))
	for _, item := range items {
		byDate := result[item.StaffID]
		if byDate == nil {
			byDate = make(map[models.Date]int, len(item.Items))
			result[item.StaffID] = byDate
		}
		for _, amount := range item.Items {
			byDate[amount.ShiftDate] += amount.TotalAmount
		}
	}
	return result
}

// mergeStaffShiftsStatistics attaches penalty and surcharge totals to shifts
// by shift date. Dates without any default to zero.
func mergeStaffShiftsStatistics(
	staff models.StaffItem,
	shiftsStatistics []models.ShiftStatistics,
	penalties map[models.Date]int,
	surcharges map[models.Date]int,
) models.StaffShiftsStatistics {
	merged := make([]models.ShiftStatisticsWithPenaltyAndSurcharge, 0, len(shiftsStatistics))
	for _, st := range shiftsStatistics {
		merged = append(merged, models.ShiftStatisticsWithPenaltyAndSurcharge{
			ShiftStatistics: st,
			PenaltyAmount:   penalties[st.ShiftDate],
			SurchargeAmount: surcharges[st.ShiftDate],
		})
	}
	return models.StaffShiftsStatistics{
		Staff:            staff,
		ShiftsStatistics: merged,
	}
}
