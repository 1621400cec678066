package runner

import (
	"context"
	"fmt"
	"time"

	"errandgo/internal/entities"
)

type Runner struct {
	repository  ProfileRepository
	errandRepo  ErrandRepository
	userService UserService
	txManager   TxManager
}

func New(
	repository ProfileRepository,
	errandRepo ErrandRepository,
	userService UserService,
	txManager TxManager,
) *Runner {
	return &Runner{
		repository:  repository,
		errandRepo:  errandRepo,
		userService: userService,
		txManager:   txManager,
	}
}

// RegisterRunner creates the runner profile and promotes the user to the
// runner role in one transaction.
func (s *Runner) RegisterRunner(ctx context.Context, profileModify entities.RunnerProfileModify) (*entities.RunnerProfile, error) {
	if profileModify.UserID == nil ||
		profileModify.DateOfBirth == nil ||
		profileModify.Address == nil ||
		profileModify.IDNumber == nil ||
		profileModify.VehicleType == nil ||
		profileModify.City == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidVehicleType(profileModify.VehicleType.String()) {
		return nil, ErrInvalidVehicleType
	}

	age, ok := ageAt(*profileModify.DateOfBirth, time.Now())
	if !ok || age < minRunnerAge {
		return nil, ErrUnderage
	}

	var profile *entities.RunnerProfile
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		created, err := s.repository.CreateProfile(ctx, profileModify)
		if err != nil {
			return fmt.Errorf("create runner profile: %w", err)
		}

		runnerRole := entities.RoleRunner
		_, err = s.userService.UpdateUser(ctx, entities.UserModify{
			ID:   profileModify.UserID,
			Role: &runnerRole,
		})
		if err != nil {
			return fmt.Errorf("promote user to runner: %w", err)
		}

		profile = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *Runner) GetProfile(ctx context.Context, userID int64) (*entities.RunnerProfile, error) {
	profile, err := s.repository.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get runner profile: %w", err)
	}
	return profile, nil
}

func (s *Runner) UpdateProfile(ctx context.Context, profileModify entities.RunnerProfileModify) (*entities.RunnerProfile, error) {
	if profileModify.UserID == nil {
		return nil, ErrMissingRequiredFields
	}
	if profileModify.VehicleType != nil && !isValidVehicleType(profileModify.VehicleType.String()) {
		return nil, ErrInvalidVehicleType
	}

	profile, err := s.repository.UpdateProfile(ctx, profileModify)
	if err != nil {
		return nil, fmt.Errorf("update runner profile: %w", err)
	}
	return profile, nil
}

// RunnersForErrand lists runners working in the city the errand is picked up
// from, together with their track record.
func (s *Runner) RunnersForErrand(ctx context.Context, errandID int64) ([]entities.RunnerListing, error) {
	errand, err := s.errandRepo.GetByID(ctx, errandID)
	if err != nil {
		return nil, fmt.Errorf("get errand: %w", err)
	}

	city := cityFromLocation(errand.PickupLocation)
	listings, err := s.repository.ListByCity(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("list runners by city: %w", err)
	}
	return listings, nil
}

// AvailableErrands lists open errands in the runner's registered city,
// annotated with the runner's own offers.
func (s *Runner) AvailableErrands(ctx context.Context, runnerID int64) ([]entities.AvailableErrand, error) {
	profile, err := s.repository.GetProfileByUserID(ctx, runnerID)
	if err != nil {
		return nil, fmt.Errorf("get runner profile: %w", err)
	}

	available, err := s.errandRepo.ListPendingByCity(ctx, profile.City, runnerID)
	if err != nil {
		return nil, fmt.Errorf("list pending errands: %w", err)
	}
	return available, nil
}
