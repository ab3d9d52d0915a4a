package economics

import (
	"context"

	"github.com/usbtypec1/car-wash-project-api-server/internal/models"
)

// UnderPlanThreshold is the number of cars per shift below which planned cars
// are paid at the flat under-plan rate.
const UnderPlanThreshold = 7

// TransferPrices are the catalog prices shift compensation depends on.
type TransferPrices struct {
	ExtraShiftCarTransfer int
	UrgentCarTransfer     int
	DryCleaningItem       int
	UnderPlanCarTransfer  int
}

// ShiftTransferInput describes the cars transferred during one shift.
// Comfort, business and van counts cover planned cars only.
type ShiftTransferInput struct {
	PreliminaryTotalCost  int
	ComfortCarsCount      int
	BusinessCarsCount     int
	VansCount             int
	UrgentCarsCount       int
	IsExtraShift          bool
	DryCleaningItemsCount int
}

// LoadTransferPrices resolves every price ComputeWashedCarsTotalCost needs,
// failing on the first one missing from the catalog.
func LoadTransferPrices(ctx context.Context, catalog *PriceCatalog) (TransferPrices, error) {
	var (
		prices TransferPrices
		err    error
	)

	lookups := []struct {
		service models.ServiceType
		dst     *int
	}{
		{models.ServiceCarTransporterExtraShift, &prices.ExtraShiftCarTransfer},
		{models.ServiceUrgentWash, &prices.UrgentCarTransfer},
		{models.ServiceItemDryClean, &prices.DryCleaningItem},
		{models.ServiceUnderPlanPlannedCarTransfer, &prices.UnderPlanCarTransfer},
	}
	for _, l := range lookups {
		if *l.dst, err = catalog.GetPrice(ctx, l.service); err != nil {
			return TransferPrices{}, err
		}
	}

	return prices, nil
}

// ComputeWashedCarsTotalCost returns what the staff member earns for the cars
// transferred during one shift.
//
// Dry cleaning items are always paid per item. On an extra shift every planned
// car is paid at the extra-shift rate. On a regular shift with fewer than
// UnderPlanThreshold cars in total (planned and urgent together) planned cars
// are paid at the under-plan rate. In both cases urgent cars are paid at the
// urgent rate. Otherwise the plan is met and the preliminary total, the sum of
// the per-car transfer prices, is used instead.
func ComputeWashedCarsTotalCost(in ShiftTransferInput, prices TransferPrices) int {
	dryCleaningCost := prices.DryCleaningItem * in.DryCleaningItemsCount
	plannedCount := in.ComfortCarsCount + in.BusinessCarsCount + in.VansCount
	urgentCost := prices.UrgentCarTransfer * in.UrgentCarsCount

	if in.IsExtraShift {
		return dryCleaningCost + prices.ExtraShiftCarTransfer*plannedCount + urgentCost
	}

	if plannedCount+in.UrgentCarsCount < UnderPlanThreshold {
		return dryCleaningCost + prices.UnderPlanCarTransfer*plannedCount + urgentCost
	}

	return dryCleaningCost + in.PreliminaryTotalCost
}

// CarTransferPrice is the price snapshotted on a car when it is transferred.
func CarTransferPrice(ctx context.Context, catalog *PriceCatalog, carClass models.CarClass, washType models.WashType, isExtraShift bool) (int, error) {
	if washType == models.WashTypeUrgent {
		return catalog.GetPrice(ctx, models.ServiceUrgentWash)
	}
	if isExtraShift {
		return catalog.GetPrice(ctx, models.ServiceCarTransporterExtraShift)
	}

	switch carClass {
	case models.CarClassComfort:
		return catalog.GetPrice(ctx, models.ServiceComfortClassCarTransfer)
	case models.CarClassBusiness:
		return catalog.GetPrice(ctx, models.ServiceBusinessClassCarTransfer)
	case models.CarClassVan:
		return catalog.GetPrice(ctx, models.ServiceVanTransfer)
	}
	return 0, models.NewUnknownCarClassError(carClass)
}
