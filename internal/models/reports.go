package models

type ShiftStatistics struct {
	StaffID                        int64 `json:"staff_id"`
	ShiftID                        int64 `json:"shift_id"`
	ShiftDate                      Date  `json:"shift_date"`
	WashedCarsTotalCost            int   `json:"washed_cars_total_cost"`
	PlannedComfortCarsWashedCount  int   `json:"planned_comfort_cars_washed_count"`
	PlannedBusinessCarsWashedCount int   `json:"planned_business_cars_washed_count"`
	PlannedVansWashedCount         int   `json:"planned_vans_washed_count"`
	UrgentCarsWashedCount          int   `json:"urgent_cars_washed_count"`
	DryCleaningItemsCount          int   `json:"dry_cleaning_items_count"`
	IsExtraShift                   bool  `json:"is_extra_shift"`
}

type ShiftStatisticsWithPenaltyAndSurcharge struct {
	ShiftStatistics
	PenaltyAmount   int `json:"penalty_amount"`
	SurchargeAmount int `json:"surcharge_amount"`
}

type StaffShiftsStatistics struct {
	Staff            StaffItem                                `json:"staff"`
	ShiftsStatistics []ShiftStatisticsWithPenaltyAndSurcharge `json:"shifts_statistics"`
}

type CarWashSalesReportItem struct {
	ShiftDate                           Date                            `json:"shift_date"`
	ComfortCarsWashedCount              int                             `json:"comfort_cars_washed_count"`
	BusinessCarsWashedCount             int                             `json:"business_cars_washed_count"`
	VanCarsWashedCount                  int                             `json:"van_cars_washed_count"`
	WindshieldWasherRefilledBottleCount int                             `json:"windshield_washer_refilled_bottle_count"`
	TotalCost                           int                             `json:"total_cost"`
	AdditionalServices                  []CarToWashAdditionalServiceDTO `json:"additional_services"`
}
