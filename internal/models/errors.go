package models

import (
	"errors"
	"fmt"
	"sort"
)

type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNotFound
	KindConflict
	KindValidation
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindValidation:
		return "validation"
	}
	return "unknown"
}

// Error is a domain error. Two errors match with errors.Is when their codes
// are equal, so sentinels below can be compared against errors that carry
// extra details.
type Error struct {
	Kind    ErrorKind
	Code    string
	Message string
	Details map[string]any
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

func newError(kind ErrorKind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

var (
	ErrShiftNotFound            = newError(KindNotFound, "shift_not_found", "shift not found")
	ErrStaffNotFound            = newError(KindNotFound, "staff_not_found", "staff not found")
	ErrPenaltyNotFound          = newError(KindNotFound, "penalty_not_found", "penalty not found")
	ErrSurchargeNotFound        = newError(KindNotFound, "surcharge_not_found", "surcharge not found")
	ErrCarWashPenaltyNotFound   = newError(KindNotFound, "car_wash_penalty_not_found", "car wash penalty not found")
	ErrCarWashSurchargeNotFound = newError(KindNotFound, "car_wash_surcharge_not_found", "car wash surcharge not found")
	ErrCarToWashNotFound        = newError(KindNotFound, "car_to_wash_not_found", "car to wash not found")
	ErrCarWashNotFound          = newError(KindNotFound, "car_wash_not_found", "car wash not found")
	ErrPriceNotFound            = newError(KindNotFound, "staff_service_price_not_found", "staff service price not found")
	ErrServiceNotFound          = newError(KindNotFound, "car_wash_service_not_found", "car wash service not found")

	ErrShiftAlreadyExists     = newError(KindConflict, "shift_already_exists", "shift already exists")
	ErrStaffHasActiveShift    = newError(KindConflict, "staff_has_active_shift", "staff has active shift")
	ErrShiftAlreadyFinished   = newError(KindConflict, "shift_already_finished", "shift already finished")
	ErrMonthNotAvailable      = newError(KindConflict, "month_not_available", "month not available")
	ErrCarToWashAlreadyExists = newError(KindConflict, "car_to_wash_already_exists", "car with this number is already transferred in the shift")

	ErrInvalidPenaltyConsequence = newError(KindValidation, "invalid_penalty_consequence", "invalid penalty consequence")
	ErrUnknownCarClass           = newError(KindValidation, "unknown_car_class", "unknown car class")
	ErrInvalidServicePrice       = newError(KindValidation, "invalid_service_price", "service price must be between 1 and 1000000")
	ErrUnknownServiceType        = newError(KindValidation, "unknown_service_type", "unknown service type")
	ErrInvalidPeriod             = newError(KindValidation, "invalid_period", "from_date must not be after to_date")
	ErrDateRequired              = newError(KindValidation, "date_required", "date is required")
)

// KindOf returns the kind of the first domain error in err's chain.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func withDetails(base *Error, message string, details map[string]any) *Error {
	return &Error{Kind: base.Kind, Code: base.Code, Message: message, Details: details}
}

func NewPriceNotFoundError(service ServiceType) *Error {
	return withDetails(ErrPriceNotFound,
		fmt.Sprintf("staff service price %q not found", service),
		map[string]any{"service": service})
}

func NewShiftAlreadyExistsError(conflictDates []Date) *Error {
	dates := make([]string, 0, len(conflictDates))
	for _, d := range conflictDates {
		dates = append(dates, d.String())
	}
	sort.Strings(dates)
	return withDetails(ErrShiftAlreadyExists,
		fmt.Sprintf("shift already exists on dates %v", dates),
		map[string]any{"conflict_dates": dates})
}

func NewMonthNotAvailableError(month, year int) *Error {
	return withDetails(ErrMonthNotAvailable,
		fmt.Sprintf("month %d.%d is not available", month, year),
		map[string]any{"month": month, "year": year})
}

func NewUnknownCarClassError(carClass CarClass) *Error {
	return withDetails(ErrUnknownCarClass,
		fmt.Sprintf("unknown car class: %s", carClass),
		map[string]any{"car_class": carClass})
}

func NewInvalidPenaltyConsequenceError(reason string) *Error {
	return withDetails(ErrInvalidPenaltyConsequence,
		fmt.Sprintf("no penalty rules for reason %q", reason),
		map[string]any{"reason": reason})
}

func NewCarToWashNotFoundError(id int64) *Error {
	return withDetails(ErrCarToWashNotFound,
		fmt.Sprintf("car to wash %d not found", id),
		map[string]any{"car_to_wash_id": id})
}

func NewServiceNotFoundError(carWashID *int64, serviceIDs []string) *Error {
	return withDetails(ErrServiceNotFound,
		fmt.Sprintf("car wash services %v not found", serviceIDs),
		map[string]any{"car_wash_id": carWashID, "service_ids": serviceIDs})
}
