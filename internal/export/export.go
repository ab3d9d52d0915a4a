// Package export renders reports as XLSX workbooks.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/usbtypec1/car-wash-project-api-server/internal/models"
	"github.com/xuri/excelize/v2"
)

const (
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	statisticsSheet = "Statistics"
	salesSheet      = "Sales"
	dateLayout      = "02.01.2006"
)

var statisticsHeaders = []string{
	"Staff ID",
	"Staff",
	"Shift ID",
	"Date",
	"Extra shift",
	"Planned comfort",
	"Planned business",
	"Planned vans",
	"Urgent",
	"Dry cleaning items",
	"Washed cars total cost",
	"Penalty",
	"Surcharge",
}

var salesHeaders = []string{
	"Date",
	"Comfort",
	"Business",
	"Vans",
	"Windshield washer bottles",
	"Additional services",
	"Total cost",
}

// StaffShiftsStatistics writes one row per shift. Staff members without
// shifts get a single row with their name only.
func StaffShiftsStatistics(report []models.StaffShiftsStatistics) (*bytes.Buffer, error) {
	f, err := newWorkbook(statisticsSheet, statisticsHeaders)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	row := 2
	for _, staff := range report {
		if len(staff.ShiftsStatistics) == 0 {
			if err := setRow(f, statisticsSheet, row, []any{staff.Staff.ID, staff.Staff.FullName}); err != nil {
				return nil, err
			}
			row++
			continue
		}

		for _, shift := range staff.ShiftsStatistics {
			values := []any{
				staff.Staff.ID,
				staff.Staff.FullName,
				shift.ShiftID,
				shift.ShiftDate.Format(dateLayout),
				yesNo(shift.IsExtraShift),
				shift.PlannedComfortCarsWashedCount,
				shift.PlannedBusinessCarsWashedCount,
				shift.PlannedVansWashedCount,
				shift.UrgentCarsWashedCount,
				shift.DryCleaningItemsCount,
				shift.WashedCarsTotalCost,
				shift.PenaltyAmount,
				shift.SurchargeAmount,
			}
			if err := setRow(f, statisticsSheet, row, values); err != nil {
				return nil, err
			}
			row++
		}
	}

	return f.WriteToBuffer()
}

// CarWashesSales writes one row per shift date.
func CarWashesSales(report []models.CarWashSalesReportItem) (*bytes.Buffer, error) {
	f, err := newWorkbook(salesSheet, salesHeaders)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	for i, item := range report {
		values := []any{
			item.ShiftDate.Format(dateLayout),
			item.ComfortCarsWashedCount,
			item.BusinessCarsWashedCount,
			item.VanCarsWashedCount,
			item.WindshieldWasherRefilledBottleCount,
			formatServices(item.AdditionalServices),
			item.TotalCost,
		}
		if err := setRow(f, salesSheet, i+2, values); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}

func newWorkbook(sheet string, headers []string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	values := make([]any, 0, len(headers))
	for _, h := range headers {
		values = append(values, h)
	}
	if err := setRow(f, sheet, 1, values); err != nil {
		return nil, err
	}

	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}
	return f, nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}

func formatServices(services []models.CarToWashAdditionalServiceDTO) string {
	parts := make([]string, 0, len(services))
	for _, s := range services {
		parts = append(parts, fmt.Sprintf("%s x%d", s.Name, s.Count))
	}
	return strings.Join(parts, ", ")
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
