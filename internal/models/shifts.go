package models

import (
	"time"

	"github.com/google/uuid"
)

// TrunkVacuumServiceID is the additional service counted as trunk vacuuming
// in shift summaries.
var TrunkVacuumServiceID = uuid.MustParse("8d263cb9-f11c-456e-b055-ee89655682f1")

// UnselectedCarWashName labels cars transferred without a car wash.
const UnselectedCarWashName = "not selected"

type StaffItem struct {
	ID                    int64      `json:"id" db:"id"`
	FullName              string     `json:"full_name" db:"full_name"`
	CarSharingPhoneNumber string     `json:"car_sharing_phone_number" db:"car_sharing_phone_number"`
	ConsolePhoneNumber    string     `json:"console_phone_number" db:"console_phone_number"`
	CreatedAt             time.Time  `json:"created_at" db:"created_at"`
	BannedAt              *time.Time `json:"banned_at" db:"banned_at"`
}

type StaffIDAndName struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
}

// Shift is a shift joined with its staff member's name.
type Shift struct {
	ID            int64      `json:"id" db:"id"`
	StaffID       int64      `json:"staff_id" db:"staff_id"`
	StaffFullName string     `json:"staff_full_name" db:"full_name"`
	Date          Date       `json:"date" db:"date"`
	CarWashID     *int64     `json:"car_wash_id" db:"car_wash_id"`
	IsExtra       bool       `json:"is_extra" db:"is_extra"`
	IsTest        bool       `json:"is_test" db:"is_test"`
	StartedAt     *time.Time `json:"started_at" db:"started_at"`
	FinishedAt    *time.Time `json:"finished_at" db:"finished_at"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}

func (s Shift) IsStarted() bool {
	return s.StartedAt != nil
}

func (s Shift) IsFinished() bool {
	return s.FinishedAt != nil
}

type StaffIDAndDate struct {
	StaffID int64 `json:"staff_id" binding:"required"`
	Date    Date  `json:"date"`
}

type ShiftItem struct {
	ID   int64 `json:"id"`
	Date Date  `json:"date"`
}

type ShiftsCreateResult struct {
	StaffID       int64       `json:"staff_id"`
	StaffFullName string      `json:"staff_full_name"`
	Shifts        []ShiftItem `json:"shifts"`
}

type ExtraShiftsCreateResult struct {
	MissingStaffIDs []int64          `json:"missing_staff_ids"`
	CreatedShifts   []Shift          `json:"created_shifts"`
	ConflictShifts  []StaffIDAndDate `json:"conflict_shifts"`
}

type TestShiftCreateResult struct {
	StaffID       int64  `json:"staff_id"`
	StaffFullName string `json:"staff_full_name"`
	ShiftID       int64  `json:"shift_id"`
	ShiftDate     Date   `json:"shift_date"`
}

// ShiftCarWashSummary counts the cars a shift transferred to one car wash.
// CarWashID is nil for cars transferred before a car wash was chosen.
type ShiftCarWashSummary struct {
	CarWashID            *int64 `json:"car_wash_id"`
	CarWashName          string `json:"car_wash_name"`
	ComfortCarsCount     int    `json:"comfort_cars_count"`
	BusinessCarsCount    int    `json:"business_cars_count"`
	VansCount            int    `json:"vans_count"`
	PlannedCarsCount     int    `json:"planned_cars_count"`
	UrgentCarsCount      int    `json:"urgent_cars_count"`
	DryCleaningCount     int    `json:"dry_cleaning_count"`
	TrunkVacuumCount     int    `json:"trunk_vacuum_count"`
	TotalCarsCount       int    `json:"total_cars_count"`
	RefilledCarsCount    int    `json:"refilled_cars_count"`
	NotRefilledCarsCount int    `json:"not_refilled_cars_count"`
}

type ShiftFinishResult struct {
	ShiftID            int64                 `json:"shift_id"`
	StaffID            int64                 `json:"staff_id"`
	StaffFullName      string                `json:"staff_full_name"`
	CarWashes          []ShiftCarWashSummary `json:"car_washes"`
	IsFirstShift       bool                  `json:"is_first_shift"`
	FinishPhotoFileIDs []string              `json:"finish_photo_file_ids"`
}

type DeadSoulsForMonth struct {
	Month     int              `json:"month"`
	Year      int              `json:"year"`
	StaffList []StaffIDAndName `json:"staff_list"`
}
