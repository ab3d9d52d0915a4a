package economics

import (
	"context"
	"log/slog"
	"math"

	"github.com/usbtypec1/car-wash-project-api-server/internal/metrics"
	"github.com/usbtypec1/car-wash-project-api-server/internal/models"
	"github.com/usbtypec1/car-wash-project-api-server/internal/notify"
)

// penaltyRule applies when the staff member already has at most maxCount
// penalties with the same reason.
type penaltyRule struct {
	maxCount    int
	amount      int
	consequence models.PenaltyConsequence
}

var penaltyRules = map[models.PenaltyReason][]penaltyRule{
	models.PenaltyReasonEarlyLeave: {
		{maxCount: math.MaxInt, amount: 1000},
	},
	models.PenaltyReasonLateReport: {
		{maxCount: 0, amount: 0, consequence: models.PenaltyConsequenceWarn},
		{maxCount: 1, amount: 100},
		{maxCount: math.MaxInt, amount: 300},
	},
	models.PenaltyReasonNotShowingUp: {
		{maxCount: 0, amount: 500},
		{maxCount: 1, amount: 1000},
		{maxCount: 2, amount: 1000, consequence: models.PenaltyConsequenceDismissal},
		{maxCount: math.MaxInt, amount: 0, consequence: models.PenaltyConsequenceDismissal},
	},
}

type PenaltyOutcome struct {
	Amount      int
	Consequence *models.PenaltyConsequence
}

// HasPenaltyRules reports whether penalties with this reason can be priced
// automatically.
func HasPenaltyRules(reason string) bool {
	_, ok := penaltyRules[models.PenaltyReason(reason)]
	return ok
}

// ComputePenalty prices a penalty given how many penalties with the same
// reason the staff member already has. Rules are checked in ascending order
// and the first one whose threshold is not exceeded wins.
func ComputePenalty(reason string, previousCount int) (PenaltyOutcome, error) {
	rules, ok := penaltyRules[models.PenaltyReason(reason)]
	if !ok {
		return PenaltyOutcome{}, models.NewInvalidPenaltyConsequenceError(reason)
	}

	for _, rule := range rules {
		if previousCount > rule.maxCount {
			continue
		}
		outcome := PenaltyOutcome{Amount: rule.amount}
		if rule.consequence != "" {
			consequence := rule.consequence
			outcome.Consequence = &consequence
		}
		return outcome, nil
	}

	return PenaltyOutcome{}, models.NewInvalidPenaltyConsequenceError(reason)
}

// CreatePenalty penalizes the staff member of the shift. Without an explicit
// amount the penalty is escalated from the staff's history; an explicit amount
// is stored as is and carries no consequence.
func (s *Service) CreatePenalty(ctx context.Context, input models.PenaltyCreateInput) (*models.PenaltyItem, error) {
	shift, err := s.storage.GetShiftByID(ctx, input.ShiftID)
	if err != nil {
		return nil, err
	}

	penalty := models.Penalty{
		ShiftID: shift.ID,
		StaffID: shift.StaffID,
		Reason:  input.Reason,
	}

	if input.Amount != nil {
		penalty.Amount = *input.Amount
	} else {
		if !HasPenaltyRules(input.Reason) {
			return nil, models.NewInvalidPenaltyConsequenceError(input.Reason)
		}

		count, err := s.storage.CountStaffPenalties(ctx, shift.StaffID, input.Reason)
		if err != nil {
			return nil, err
		}

		outcome, err := ComputePenalty(input.Reason, count)
		if err != nil {
			return nil, err
		}
		penalty.Amount = outcome.Amount
		penalty.Consequence = outcome.Consequence
	}

	if err := s.storage.CreatePenalty(ctx, &penalty); err != nil {
		return nil, err
	}

	metrics.PenaltiesCreated.WithLabelValues(penaltyReasonLabel(input.Reason)).Inc()
	slog.Info("penalty created",
		slog.Int64("penalty_id", penalty.ID),
		slog.Int64("staff_id", penalty.StaffID),
		slog.String("reason", penalty.Reason),
		slog.Int("amount", penalty.Amount),
	)

	s.notifyStaff(ctx, shift.StaffID, notify.PenaltyText(input.Reason))

	return &models.PenaltyItem{
		Penalty:       penalty,
		StaffFullName: shift.StaffFullName,
		ShiftDate:     shift.Date,
	}, nil
}

func (s *Service) DeletePenalty(ctx context.Context, penaltyID int64) error {
	return s.storage.DeletePenalty(ctx, penaltyID)
}

func (s *Service) GetPenalties(ctx context.Context, filter models.PenaltiesFilter) (*models.PenaltiesPage, error) {
	return s.storage.GetPenaltiesPage(ctx, filter)
}

func (s *Service) CreateSurcharge(ctx context.Context, input models.SurchargeCreateInput) (*models.SurchargeItem, error) {
	shift, err := s.storage.GetShiftByID(ctx, input.ShiftID)
	if err != nil {
		return nil, err
	}

	surcharge := models.Surcharge{
		ShiftID: shift.ID,
		StaffID: shift.StaffID,
		Reason:  input.Reason,
		Amount:  input.Amount,
	}
	if err := s.storage.CreateSurcharge(ctx, &surcharge); err != nil {
		return nil, err
	}

	metrics.SurchargesCreated.Inc()
	slog.Info("surcharge created",
		slog.Int64("surcharge_id", surcharge.ID),
		slog.Int64("staff_id", surcharge.StaffID),
		slog.Int("amount", surcharge.Amount),
	)

	s.notifyStaff(ctx, shift.StaffID, notify.SurchargeText(input.Reason, input.Amount))

	return &models.SurchargeItem{
		Surcharge:     surcharge,
		StaffFullName: shift.StaffFullName,
		ShiftDate:     shift.Date,
	}, nil
}

func (s *Service) DeleteSurcharge(ctx context.Context, surchargeID int64) error {
	return s.storage.DeleteSurcharge(ctx, surchargeID)
}

// notifyStaff never fails the caller: the penalty or surcharge is already
// stored by the time the message is sent.
func (s *Service) notifyStaff(ctx context.Context, staffID int64, text string) {
	if err := s.notifier.Notify(ctx, staffID, text); err != nil {
		metrics.NotificationsFailed.Inc()
		slog.Warn("failed to notify staff",
			slog.Int64("staff_id", staffID),
			slog.String("error", err.Error()),
		)
	}
}

// penaltyReasonLabel keeps metric cardinality bounded for free-form reasons.
func penaltyReasonLabel(reason string) string {
	if HasPenaltyRules(reason) {
		return reason
	}
	return "other"
}
