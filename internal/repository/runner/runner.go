package runner

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"errandgo/internal/entities"
	"errandgo/internal/repository"
	runnersvc "errandgo/internal/service/runner"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const profileColumns = "id, user_id, date_of_birth, address, id_number, vehicle_type, city, preferred_routes, license_photo, id_photo, created_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) CreateProfile(ctx context.Context, profileModifyEntity entities.RunnerProfileModify) (*entities.RunnerProfile, error) {
	profileModifyModel := FromDomainModify(&profileModifyEntity)

	query := `INSERT INTO runner_profiles (user_id, date_of_birth, address, id_number, vehicle_type, city, preferred_routes, license_photo, id_photo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + profileColumns

	var profileModel RunnerProfileDB
	err := r.querier.QueryRow(
		ctx,
		query,
		profileModifyModel.UserID,
		profileModifyModel.DateOfBirth,
		profileModifyModel.Address,
		profileModifyModel.IDNumber,
		profileModifyModel.VehicleType,
		profileModifyModel.City,
		profileModifyModel.PreferredRoutes,
		profileModifyModel.LicensePhoto,
		profileModifyModel.IDPhoto,
	).Scan(
		&profileModel.ID,
		&profileModel.UserID,
		&profileModel.DateOfBirth,
		&profileModel.Address,
		&profileModel.IDNumber,
		&profileModel.VehicleType,
		&profileModel.City,
		&profileModel.PreferredRoutes,
		&profileModel.LicensePhoto,
		&profileModel.IDPhoto,
		&profileModel.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, runnersvc.ErrProfileExists
		}
		return nil, fmt.Errorf("unexpected runner repository create profile error: %w", err)
	}

	return ToDomain(&profileModel), nil
}

func (r *Repository) GetProfileByUserID(ctx context.Context, userID int64) (*entities.RunnerProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM runner_profiles WHERE user_id = $1`

	var profileModel RunnerProfileDB
	err := r.querier.QueryRow(ctx, query, userID).Scan(
		&profileModel.ID,
		&profileModel.UserID,
		&profileModel.DateOfBirth,
		&profileModel.Address,
		&profileModel.IDNumber,
		&profileModel.VehicleType,
		&profileModel.City,
		&profileModel.PreferredRoutes,
		&profileModel.LicensePhoto,
		&profileModel.IDPhoto,
		&profileModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, runnersvc.ErrProfileNotFound
		}
		return nil, fmt.Errorf("unexpected runner repository get profile error: %w", err)
	}

	return ToDomain(&profileModel), nil
}

func (r *Repository) UpdateProfile(ctx context.Context, profileModifyEntity entities.RunnerProfileModify) (*entities.RunnerProfile, error) {
	profileModifyModel := FromDomainModify(&profileModifyEntity)

	builder := qb.
		Update("runner_profiles")

	if profileModifyModel.DateOfBirth != nil {
		builder = builder.Set("date_of_birth", profileModifyModel.DateOfBirth)
	}
	if profileModifyModel.Address != nil {
		builder = builder.Set("address", profileModifyModel.Address)
	}
	if profileModifyModel.IDNumber != nil {
		builder = builder.Set("id_number", profileModifyModel.IDNumber)
	}
	if profileModifyModel.VehicleType != nil {
		builder = builder.Set("vehicle_type", profileModifyModel.VehicleType)
	}
	if profileModifyModel.City != nil {
		builder = builder.Set("city", profileModifyModel.City)
	}
	if profileModifyModel.PreferredRoutes != nil {
		builder = builder.Set("preferred_routes", profileModifyModel.PreferredRoutes)
	}
	if profileModifyModel.LicensePhoto != nil {
		builder = builder.Set("license_photo", profileModifyModel.LicensePhoto)
	}
	if profileModifyModel.IDPhoto != nil {
		builder = builder.Set("id_photo", profileModifyModel.IDPhoto)
	}

	builder = builder.
		Where(sq.Eq{"user_id": profileModifyModel.UserID}).
		Suffix("RETURNING " + profileColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected runner repository update profile error: %w", err)
	}

	var profileModel RunnerProfileDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&profileModel.ID,
		&profileModel.UserID,
		&profileModel.DateOfBirth,
		&profileModel.Address,
		&profileModel.IDNumber,
		&profileModel.VehicleType,
		&profileModel.City,
		&profileModel.PreferredRoutes,
		&profileModel.LicensePhoto,
		&profileModel.IDPhoto,
		&profileModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, runnersvc.ErrProfileNotFound
		}
		return nil, fmt.Errorf("unexpected runner repository update profile error: %w", err)
	}

	return ToDomain(&profileModel), nil
}

// ListByCity returns runners whose registered city matches the requested one
// by substring, annotated with their work aggregates.
func (r *Repository) ListByCity(ctx context.Context, city string) ([]entities.RunnerListing, error) {
	query := `
	SELECT
		u.id, u.full_name, u.username, u.email, u.phone,
		p.id, p.user_id, p.date_of_birth, p.address, p.id_number, p.vehicle_type, p.city, p.preferred_routes, p.license_photo, p.id_photo, p.created_at,
		COUNT(ae.id),
		COUNT(ae.id) FILTER (WHERE ae.status = 'completed'),
		COALESCE((SELECT AVG(rt.stars) FROM ratings rt WHERE rt.to_user_id = u.id), 0)
	FROM users u
	JOIN runner_profiles p ON p.user_id = u.id
	LEFT JOIN active_errands ae ON ae.runner_id = u.id
	WHERE u.role = 'runner' AND p.city ILIKE '%' || $1 || '%'
	GROUP BY u.id, p.id
	ORDER BY u.id`

	rows, err := r.querier.Query(ctx, query, city)
	if err != nil {
		return nil, fmt.Errorf("unexpected runner repository list by city error: %w", err)
	}
	defer rows.Close()

	listingModels := make([]RunnerListingDB, 0, 8)
	for rows.Next() {
		var listingModel RunnerListingDB
		err := rows.Scan(
			&listingModel.UserID,
			&listingModel.FullName,
			&listingModel.Username,
			&listingModel.Email,
			&listingModel.Phone,
			&listingModel.Profile.ID,
			&listingModel.Profile.UserID,
			&listingModel.Profile.DateOfBirth,
			&listingModel.Profile.Address,
			&listingModel.Profile.IDNumber,
			&listingModel.Profile.VehicleType,
			&listingModel.Profile.City,
			&listingModel.Profile.PreferredRoutes,
			&listingModel.Profile.LicensePhoto,
			&listingModel.Profile.IDPhoto,
			&listingModel.Profile.CreatedAt,
			&listingModel.TotalErrands,
			&listingModel.CompletedErrands,
			&listingModel.AverageRating,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected runner repository list by city error: %w", err)
		}
		listingModels = append(listingModels, listingModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected runner repository list by city error: %w", err)
	}

	return ToListingDomainList(listingModels), nil
}

// Aggregates returns a runner's total assignments, completed assignments and
// average incoming rating.
func (r *Repository) Aggregates(ctx context.Context, runnerID int64) (total, completed int64, averageRating float64, err error) {
	query := `
	SELECT
		COUNT(DISTINCT ae.id),
		COUNT(DISTINCT ae.id) FILTER (WHERE ae.status = 'completed'),
		COALESCE((SELECT AVG(stars) FROM ratings WHERE to_user_id = $1), 0)
	FROM active_errands ae
	WHERE ae.runner_id = $1`

	err = r.querier.QueryRow(ctx, query, runnerID).Scan(&total, &completed, &averageRating)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("unexpected runner repository aggregates error: %w", err)
	}
	return total, completed, averageRating, nil
}
