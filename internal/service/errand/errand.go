package errand

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"

	"errandgo/internal/entities"
	"errandgo/internal/pkg/factory/price_estimate"
	"errandgo/internal/pkg/geo"
)

const (
	nightStartHour = 22
	nightEndHour   = 6

	rushMorningStart = 7
	rushMorningEnd   = 9
	rushEveningStart = 17
	rushEveningEnd   = 19
)

type Errand struct {
	repository    Repository
	activeRepo    ActiveErrandRepository
	feeConfigRepo FeeConfigRepository
	priceFactory  PriceFactory
	events        EventGateway
	txManager     TxManager
}

func New(
	repository Repository,
	activeRepo ActiveErrandRepository,
	feeConfigRepo FeeConfigRepository,
	priceFactory PriceFactory,
	events EventGateway,
	txManager TxManager,
) *Errand {
	return &Errand{
		repository:    repository,
		activeRepo:    activeRepo,
		feeConfigRepo: feeConfigRepo,
		priceFactory:  priceFactory,
		events:        events,
		txManager:     txManager,
	}
}

type CreateParams struct {
	ClientID         int64
	Category         entities.ErrandCategory
	PickupLocation   string
	DeliveryLocation string
	Weight           string
	DeliveryTime     string
	Details          string
	Pricing          price_estimate.Input

	// Optional coordinates and weight for the minimum fee floor.
	PickupLat   *float64
	PickupLon   *float64
	DeliveryLat *float64
	DeliveryLon *float64
	WeightKg    float64
	VehicleType *entities.VehicleType
}

func (s *Errand) CreateErrand(ctx context.Context, params CreateParams) (*entities.Errand, error) {
	if params.ClientID == 0 || params.PickupLocation == "" {
		return nil, ErrMissingRequiredFields
	}
	if !isValidCategory(params.Category) {
		return nil, ErrInvalidCategory
	}

	estimate, err := s.priceFactory.Estimate(params.Category, params.Pricing)
	if err != nil {
		return nil, fmt.Errorf("estimate price: %w", err)
	}

	minimumFee, err := s.calculateMinimumFee(ctx, params)
	if err != nil {
		return nil, err
	}

	status := entities.ErrandPending
	created, err := s.repository.Create(ctx, entities.ErrandModify{
		ClientID:             &params.ClientID,
		Category:             &params.Category,
		PickupLocation:       &params.PickupLocation,
		DeliveryLocation:     &params.DeliveryLocation,
		Weight:               &params.Weight,
		DeliveryTime:         &params.DeliveryTime,
		Details:              &params.Details,
		PriceEstimate:        &estimate,
		CalculatedMinimumFee: minimumFee,
		Status:               &status,
	})
	if err != nil {
		return nil, fmt.Errorf("create errand: %w", err)
	}

	s.publishQuiet(ctx, created, nil)

	return created, nil
}

// GetErrand returns one errand. It is visible to its client, to the assigned
// runner, and to any runner while it is still open for offers.
func (s *Errand) GetErrand(ctx context.Context, id, viewerID int64, role entities.UserRoleType) (*entities.Errand, error) {
	errand, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get errand: %w", err)
	}

	if errand.ClientID == viewerID {
		return errand, nil
	}

	if role == entities.RoleRunner {
		if errand.Status == entities.ErrandPending {
			return errand, nil
		}

		active, err := s.activeRepo.GetByErrandID(ctx, id)
		if err != nil && !errors.Is(err, ErrActiveErrandNotFound) {
			return nil, fmt.Errorf("get active errand: %w", err)
		}
		if err == nil && active.RunnerID == viewerID {
			return errand, nil
		}
	}

	return nil, ErrForbidden
}

func (s *Errand) ListErrands(ctx context.Context, clientID int64) ([]entities.Errand, error) {
	errands, err := s.repository.ListByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list errands: %w", err)
	}
	return errands, nil
}

func (s *Errand) ListCompletedErrands(ctx context.Context, clientID int64) ([]entities.Errand, error) {
	errands, err := s.repository.ListCompletedByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list completed errands: %w", err)
	}
	return errands, nil
}

func (s *Errand) StatusCounts(ctx context.Context, clientID int64) (entities.ErrandStatusCounts, error) {
	counts, err := s.repository.StatusCounts(ctx, clientID)
	if err != nil {
		return entities.ErrandStatusCounts{}, fmt.Errorf("status counts: %w", err)
	}
	return counts, nil
}

// CompleteErrand closes the assignment and cascades the errand to completed.
// Only the assigned runner may do this.
func (s *Errand) CompleteErrand(ctx context.Context, activeErrandID, runnerID int64) (*entities.Errand, error) {
	var completed *entities.Errand

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		active, err := s.activeRepo.GetByID(ctx, activeErrandID)
		if err != nil {
			return fmt.Errorf("get active errand: %w", err)
		}

		if active.RunnerID != runnerID {
			return ErrForbidden
		}

		if _, err := s.activeRepo.Complete(ctx, active.ID, runnerID); err != nil {
			return fmt.Errorf("complete active errand: %w", err)
		}

		completedStatus := entities.ErrandCompleted
		completed, err = s.repository.Update(ctx, entities.ErrandModify{
			ID:     &active.ErrandID,
			Status: &completedStatus,
		})
		if err != nil {
			return fmt.Errorf("update errand status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishQuiet(ctx, completed, &runnerID)

	return completed, nil
}

// calculateMinimumFee derives the floor price from distance, weight, time of
// day and vehicle when coordinates were supplied. A missing fee config means
// no floor, not a failure.
func (s *Errand) calculateMinimumFee(ctx context.Context, params CreateParams) (*float64, error) {
	if params.PickupLat == nil || params.PickupLon == nil ||
		params.DeliveryLat == nil || params.DeliveryLon == nil {
		return nil, nil
	}

	cfg, err := s.feeConfigRepo.GetLatest(ctx)
	if err != nil {
		if errors.Is(err, ErrFeeConfigNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fee config: %w", err)
	}

	distanceKm := geo.HaversineKm(*params.PickupLat, *params.PickupLon, *params.DeliveryLat, *params.DeliveryLon)
	fee := cfg.BaseFee + cfg.PerKmFee*distanceKm + cfg.PerKgFee*params.WeightKg

	hour := time.Now().Hour()
	if hour >= nightStartHour || hour < nightEndHour {
		fee *= cfg.NightMultiplier
	} else if (hour >= rushMorningStart && hour < rushMorningEnd) ||
		(hour >= rushEveningStart && hour < rushEveningEnd) {
		fee *= cfg.RushHourMultiplier
	}

	if params.VehicleType != nil {
		if multiplier, ok := cfg.VehicleMultipliers[params.VehicleType.String()]; ok {
			fee *= multiplier
		}
	}

	return pointer.To(fee), nil
}

// publishQuiet emits the lifecycle event after the database change has
// already committed. The notifications worker turns these into user-facing
// notifications; a publish failure must not undo a committed errand.
func (s *Errand) publishQuiet(ctx context.Context, errand *entities.Errand, runnerID *int64) {
	_ = s.events.PublishStatusChanged(ctx, entities.ErrandEvent{
		ErrandID:   errand.ID,
		ClientID:   errand.ClientID,
		RunnerID:   runnerID,
		Category:   errand.Category,
		Status:     errand.Status,
		OccurredAt: time.Now().UTC(),
	})
}
