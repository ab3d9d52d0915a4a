package models

import (
	"time"

	"github.com/google/uuid"
)

type CarClass string

const (
	CarClassComfort  CarClass = "comfort"
	CarClassBusiness CarClass = "business"
	CarClassVan      CarClass = "van"
)

func (c CarClass) Valid() bool {
	switch c {
	case CarClassComfort, CarClassBusiness, CarClassVan:
		return true
	}
	return false
}

type WashType string

const (
	WashTypePlanned WashType = "planned"
	WashTypeUrgent  WashType = "urgent"
)

type CarWash struct {
	ID                    int64     `json:"id" db:"id"`
	Name                  string    `json:"name" db:"name"`
	ComfortClassPrice     int       `json:"comfort_class_car_washing_price" db:"comfort_class_car_washing_price"`
	BusinessClassPrice    int       `json:"business_class_car_washing_price" db:"business_class_car_washing_price"`
	VanPrice              int       `json:"van_washing_price" db:"van_washing_price"`
	WindshieldWasherPrice int       `json:"windshield_washer_price_per_bottle" db:"windshield_washer_price_per_bottle"`
	CreatedAt             time.Time `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time `json:"updated_at" db:"updated_at"`
}

// WashingPrice returns the car wash's price for the given class.
func (w *CarWash) WashingPrice(class CarClass) (int, error) {
	switch class {
	case CarClassComfort:
		return w.ComfortClassPrice, nil
	case CarClassBusiness:
		return w.BusinessClassPrice, nil
	case CarClassVan:
		return w.VanPrice, nil
	}
	return 0, NewUnknownCarClassError(class)
}

type CarWashService struct {
	ID            uuid.UUID `json:"id" db:"id"`
	CarWashID     int64     `json:"car_wash_id" db:"car_wash_id"`
	Name          string    `json:"name" db:"name"`
	Price         int       `json:"price" db:"price"`
	IsDryCleaning bool      `json:"is_dry_cleaning" db:"is_dry_cleaning"`
}

type AdditionalServiceInput struct {
	ID    uuid.UUID `json:"id" binding:"required"`
	Count int       `json:"count" binding:"required,min=1"`
}

type CarToWashCreateInput struct {
	StaffID                    int64                    `json:"staff_id" binding:"required"`
	Number                     string                   `json:"number" binding:"required,max=20"`
	CarClass                   CarClass                 `json:"car_class" binding:"required,oneof=comfort business van"`
	WashType                   WashType                 `json:"wash_type" binding:"required,oneof=planned urgent"`
	WindshieldWasherPercentage int                      `json:"windshield_washer_refilled_bottle_percentage" binding:"min=0,max=1000"`
	AdditionalServices         []AdditionalServiceInput `json:"additional_services" binding:"unique=ID,dive"`
}

type CarToWashAdditionalService struct {
	ID            uuid.UUID `json:"id" db:"service_id"`
	Name          string    `json:"name" db:"name"`
	Count         int       `json:"count" db:"count"`
	Price         int       `json:"price" db:"price"`
	IsDryCleaning bool      `json:"is_dry_cleaning" db:"is_dry_cleaning"`
}

func (s CarToWashAdditionalService) TotalPrice() int {
	return s.Price * s.Count
}

// CarToWash is a car transferred during a shift. All *Price fields are
// snapshots taken at creation time.
type CarToWash struct {
	ID                              int64                        `json:"id" db:"id"`
	ShiftID                         int64                        `json:"shift_id" db:"shift_id"`
	CarWashID                       *int64                       `json:"car_wash_id" db:"car_wash_id"`
	Number                          string                       `json:"number" db:"number"`
	CarClass                        CarClass                     `json:"car_class" db:"car_class"`
	WashType                        WashType                     `json:"wash_type" db:"wash_type"`
	WindshieldWasherPercentage      int                          `json:"windshield_washer_refilled_bottle_percentage" db:"windshield_washer_refilled_bottle_percentage"`
	WindshieldWasherRefilledBottles int                          `json:"windshield_washer_refilled_bottle_count" db:"windshield_washer_refilled_bottle_count"`
	TransferPrice                   int                          `json:"transfer_price" db:"transfer_price"`
	WashingPrice                    int                          `json:"washing_price" db:"washing_price"`
	WindshieldWasherPrice           int                          `json:"windshield_washer_price" db:"windshield_washer_price"`
	AdditionalServices              []CarToWashAdditionalService `json:"additional_services"`
	CreatedAt                       time.Time                    `json:"created_at" db:"created_at"`
}

// RefilledBottlesCount converts a refill percentage into whole bottles,
// rounding half up.
func RefilledBottlesCount(percentage int) int {
	if percentage <= 0 {
		return 0
	}
	return (percentage + 50) / 100
}

// TransferredCar is the slice of a CarToWash the shift statistics need.
type TransferredCar struct {
	ID            int64    `db:"id"`
	ShiftID       int64    `db:"shift_id"`
	CarClass      CarClass `db:"car_class"`
	WashType      WashType `db:"wash_type"`
	TransferPrice int      `db:"transfer_price"`
}

type ShiftDryCleaningItems struct {
	StaffID    int64 `db:"staff_id"`
	ShiftID    int64 `db:"shift_id"`
	ItemsCount int   `db:"items_count"`
}

type CarToWashAdditionalServiceDTO struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Count      int       `json:"count"`
	TotalPrice int       `json:"total_price"`
}

// CarToWashDTO is a car to wash joined with its shift date, as used by the
// sales report.
type CarToWashDTO struct {
	ID                                  int64                           `json:"id"`
	ShiftDate                           Date                            `json:"shift_date"`
	CarClass                            CarClass                        `json:"car_class"`
	WindshieldWasherRefilledBottleCount int                             `json:"windshield_washer_refilled_bottle_count"`
	WashingPrice                        int                             `json:"washing_price"`
	WindshieldWasherPrice               int                             `json:"windshield_washer_price"`
	AdditionalServices                  []CarToWashAdditionalServiceDTO `json:"additional_services"`
}
