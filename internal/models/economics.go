package models

import (
	"time"
)

type ServiceType string

const (
	ServiceComfortClassCarTransfer     ServiceType = "comfort_class_car_transfer"
	ServiceBusinessClassCarTransfer    ServiceType = "business_class_car_transfer"
	ServiceVanTransfer                 ServiceType = "van_transfer"
	ServiceCarTransporterExtraShift    ServiceType = "car_transporter_extra_shift"
	ServiceUrgentWash                  ServiceType = "urgent_wash"
	ServiceItemDryClean                ServiceType = "item_dry_clean"
	ServiceUnderPlanPlannedCarTransfer ServiceType = "under_plan_planned_car_transfer"
)

var ServiceTypes = []ServiceType{
	ServiceComfortClassCarTransfer,
	ServiceBusinessClassCarTransfer,
	ServiceVanTransfer,
	ServiceCarTransporterExtraShift,
	ServiceUrgentWash,
	ServiceItemDryClean,
	ServiceUnderPlanPlannedCarTransfer,
}

func (s ServiceType) Valid() bool {
	for _, t := range ServiceTypes {
		if s == t {
			return true
		}
	}
	return false
}

const (
	MinServicePrice = 1
	MaxServicePrice = 1_000_000
)

type ServicePrice struct {
	Service   ServiceType `json:"service" db:"service"`
	Price     int         `json:"price" db:"price"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`
}

type PenaltyReason string

const (
	PenaltyReasonNotShowingUp PenaltyReason = "not_showing_up"
	PenaltyReasonEarlyLeave   PenaltyReason = "early_leave"
	PenaltyReasonLateReport   PenaltyReason = "late_report"
)

type PenaltyConsequence string

const (
	PenaltyConsequenceWarn      PenaltyConsequence = "warn"
	PenaltyConsequenceDismissal PenaltyConsequence = "dismissal"
)

type Penalty struct {
	ID          int64               `json:"id" db:"id"`
	ShiftID     int64               `json:"shift_id" db:"shift_id"`
	StaffID     int64               `json:"staff_id" db:"staff_id"`
	Reason      string              `json:"reason" db:"reason"`
	Amount      int                 `json:"amount" db:"amount"`
	Consequence *PenaltyConsequence `json:"consequence" db:"consequence"`
	CreatedAt   time.Time           `json:"created_at" db:"created_at"`
}

type PenaltyCreateInput struct {
	ShiftID int64  `json:"shift_id" binding:"required"`
	Reason  string `json:"reason" binding:"required,max=255"`
	Amount  *int   `json:"amount" binding:"omitempty,min=0"`
}

type SurchargeCreateInput struct {
	ShiftID int64  `json:"shift_id" binding:"required"`
	Reason  string `json:"reason" binding:"required,max=255"`
	Amount  int    `json:"amount" binding:"required,min=1"`
}

// PenaltyItem is a penalty joined with its staff name and shift date.
type PenaltyItem struct {
	Penalty
	StaffFullName string `json:"staff_full_name" db:"full_name"`
	ShiftDate     Date   `json:"shift_date" db:"date"`
}

type PenaltiesPage struct {
	Penalties          []PenaltyItem `json:"penalties"`
	IsEndOfListReached bool          `json:"is_end_of_list_reached"`
}

type PenaltiesFilter struct {
	StaffIDs []int64
	Limit    int
	Offset   int
}

type Surcharge struct {
	ID        int64     `json:"id" db:"id"`
	ShiftID   int64     `json:"shift_id" db:"shift_id"`
	StaffID   int64     `json:"staff_id" db:"staff_id"`
	Reason    string    `json:"reason" db:"reason"`
	Amount    int       `json:"amount" db:"amount"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type SurchargeItem struct {
	Surcharge
	StaffFullName string `json:"staff_full_name" db:"full_name"`
	ShiftDate     Date   `json:"shift_date" db:"date"`
}

// ShiftDateAmount is the total of penalties (or surcharges) for one shift date.
type ShiftDateAmount struct {
	ShiftDate   Date `json:"shift_date"`
	TotalAmount int  `json:"total_amount"`
}

// StaffAmountsForPeriod groups per-date totals by staff member.
type StaffAmountsForPeriod struct {
	StaffID int64             `json:"staff_id"`
	Items   []ShiftDateAmount `json:"items"`
}

// CarWashAdjustment is a penalty or a surcharge charged to a car wash for a
// day of work rather than to a staff member.
type CarWashAdjustment struct {
	ID        int64     `json:"id" db:"id"`
	CarWashID int64     `json:"car_wash_id" db:"car_wash_id"`
	Reason    string    `json:"reason" db:"reason"`
	Amount    int       `json:"amount" db:"amount"`
	Date      Date      `json:"date" db:"date"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CarWashAdjustmentCreateInput struct {
	CarWashID int64  `json:"car_wash_id" binding:"required"`
	Reason    string `json:"reason" binding:"required,max=255"`
	Amount    int    `json:"amount" binding:"required,min=1"`
	Date      Date   `json:"date"`
}

// CarWashAdjustmentsFilter selects adjustments dated within [From, To].
// A nil CarWashIDs matches every car wash.
type CarWashAdjustmentsFilter struct {
	CarWashIDs []int64
	From       Date
	To         Date
}
