package errand

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"errandgo/internal/entities"
	errandsvc "errandgo/internal/service/errand"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const errandColumns = "id, client_id, category, pickup_location, delivery_location, weight, delivery_time, details, price_estimate, agreed_price, calculated_minimum_fee, status, created_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, errandModifyEntity entities.ErrandModify) (*entities.Errand, error) {
	errandModifyModel := FromDomainModify(&errandModifyEntity)

	query := `INSERT INTO errands (client_id, category, pickup_location, delivery_location, weight, delivery_time, details, price_estimate, calculated_minimum_fee, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + errandColumns

	var errandModel ErrandDB
	err := r.querier.QueryRow(
		ctx,
		query,
		errandModifyModel.ClientID,
		errandModifyModel.Category,
		errandModifyModel.PickupLocation,
		errandModifyModel.DeliveryLocation,
		errandModifyModel.Weight,
		errandModifyModel.DeliveryTime,
		errandModifyModel.Details,
		errandModifyModel.PriceEstimate,
		errandModifyModel.CalculatedMinimumFee,
		errandModifyModel.Status,
	).Scan(scanTargets(&errandModel)...)
	if err != nil {
		return nil, fmt.Errorf("unexpected errand repository create error: %w", err)
	}

	return ToDomain(&errandModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Errand, error) {
	query := `SELECT ` + errandColumns + ` FROM errands WHERE id = $1`

	var errandModel ErrandDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&errandModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errandsvc.ErrErrandNotFound
		}
		return nil, fmt.Errorf("unexpected errand repository getbyid error: %w", err)
	}

	return ToDomain(&errandModel), nil
}

func (r *Repository) Update(ctx context.Context, errandModifyEntity entities.ErrandModify) (*entities.Errand, error) {
	errandModifyModel := FromDomainModify(&errandModifyEntity)

	builder := qb.
		Update("errands")

	if errandModifyModel.PickupLocation != nil {
		builder = builder.Set("pickup_location", errandModifyModel.PickupLocation)
	}
	if errandModifyModel.DeliveryLocation != nil {
		builder = builder.Set("delivery_location", errandModifyModel.DeliveryLocation)
	}
	if errandModifyModel.Weight != nil {
		builder = builder.Set("weight", errandModifyModel.Weight)
	}
	if errandModifyModel.DeliveryTime != nil {
		builder = builder.Set("delivery_time", errandModifyModel.DeliveryTime)
	}
	if errandModifyModel.Details != nil {
		builder = builder.Set("details", errandModifyModel.Details)
	}
	if errandModifyModel.PriceEstimate != nil {
		builder = builder.Set("price_estimate", errandModifyModel.PriceEstimate)
	}
	if errandModifyModel.AgreedPrice != nil {
		builder = builder.Set("agreed_price", errandModifyModel.AgreedPrice)
	}
	if errandModifyModel.CalculatedMinimumFee != nil {
		builder = builder.Set("calculated_minimum_fee", errandModifyModel.CalculatedMinimumFee)
	}
	if errandModifyModel.Status != nil {
		builder = builder.Set("status", errandModifyModel.Status)
	}

	builder = builder.
		Where(sq.Eq{"id": errandModifyModel.ID}).
		Suffix("RETURNING " + errandColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected errand repository update error: %w", err)
	}

	var errandModel ErrandDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanTargets(&errandModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errandsvc.ErrErrandNotFound
		}
		return nil, fmt.Errorf("unexpected errand repository update error: %w", err)
	}

	return ToDomain(&errandModel), nil
}

// AcceptPending flips a pending errand to accepted with the agreed price. The
// status guard in the WHERE clause is what makes two concurrent accepts safe:
// exactly one of them matches the row.
func (r *Repository) AcceptPending(ctx context.Context, errandID int64, agreedPrice float64) error {
	query := `UPDATE errands
		SET status = 'accepted', agreed_price = $2
		WHERE id = $1 AND status = 'pending'`

	result, err := r.querier.Exec(ctx, query, errandID, agreedPrice)
	if err != nil {
		return fmt.Errorf("unexpected errand repository accept error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return errandsvc.ErrErrandNotAcceptable
	}
	return nil
}

func (r *Repository) ListByClient(ctx context.Context, clientID int64) ([]entities.Errand, error) {
	query := `SELECT ` + errandColumns + ` FROM errands WHERE client_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, clientID)
}

func (r *Repository) ListCompletedByClient(ctx context.Context, clientID int64) ([]entities.Errand, error) {
	query := `SELECT ` + errandColumns + ` FROM errands WHERE client_id = $1 AND status = 'completed' ORDER BY created_at DESC`
	return r.list(ctx, query, clientID)
}

func (r *Repository) StatusCounts(ctx context.Context, clientID int64) (entities.ErrandStatusCounts, error) {
	query := `
	SELECT
		COUNT(*) FILTER (WHERE status = 'pending'),
		COUNT(*) FILTER (WHERE status = 'accepted'),
		COUNT(*) FILTER (WHERE status = 'completed')
	FROM errands
	WHERE client_id = $1`

	var counts entities.ErrandStatusCounts
	err := r.querier.QueryRow(ctx, query, clientID).Scan(&counts.Pending, &counts.Ongoing, &counts.Completed)
	if err != nil {
		return entities.ErrandStatusCounts{}, fmt.Errorf("unexpected errand repository status counts error: %w", err)
	}
	return counts, nil
}

// ListPendingByCity returns open errands whose pickup location matches the
// runner's city, each annotated with that runner's own offer when one exists.
func (r *Repository) ListPendingByCity(ctx context.Context, city string, runnerID int64) ([]entities.AvailableErrand, error) {
	query := `
	SELECT
		e.id, e.client_id, e.category, e.pickup_location, e.delivery_location, e.weight, e.delivery_time, e.details, e.price_estimate, e.agreed_price, e.calculated_minimum_fee, e.status, e.created_at,
		u.full_name, u.username, u.phone,
		n.status
	FROM errands e
	JOIN users u ON u.id = e.client_id
	LEFT JOIN negotiations n ON n.errand_id = e.id AND n.runner_id = $2
	WHERE e.status = 'pending' AND e.pickup_location ILIKE '%' || $1 || '%'
	ORDER BY e.created_at DESC`

	rows, err := r.querier.Query(ctx, query, city, runnerID)
	if err != nil {
		return nil, fmt.Errorf("unexpected errand repository list pending error: %w", err)
	}
	defer rows.Close()

	availableModels := make([]AvailableErrandDB, 0, 8)
	for rows.Next() {
		var availableModel AvailableErrandDB
		targets := scanTargets(&availableModel.Errand)
		targets = append(targets,
			&availableModel.ClientFullName,
			&availableModel.ClientUsername,
			&availableModel.ClientPhone,
			&availableModel.OfferStatus,
		)
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("unexpected errand repository list pending error: %w", err)
		}
		availableModels = append(availableModels, availableModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected errand repository list pending error: %w", err)
	}

	return ToAvailableDomainList(availableModels), nil
}

func (r *Repository) list(ctx context.Context, query string, args ...interface{}) ([]entities.Errand, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected errand repository list error: %w", err)
	}
	defer rows.Close()

	errandModels := make([]ErrandDB, 0, 8)
	for rows.Next() {
		var errandModel ErrandDB
		if err := rows.Scan(scanTargets(&errandModel)...); err != nil {
			return nil, fmt.Errorf("unexpected errand repository list error: %w", err)
		}
		errandModels = append(errandModels, errandModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected errand repository list error: %w", err)
	}

	return ToDomainList(errandModels), nil
}

func scanTargets(e *ErrandDB) []interface{} {
	return []interface{}{
		&e.ID,
		&e.ClientID,
		&e.Category,
		&e.PickupLocation,
		&e.DeliveryLocation,
		&e.Weight,
		&e.DeliveryTime,
		&e.Details,
		&e.PriceEstimate,
		&e.AgreedPrice,
		&e.CalculatedMinimumFee,
		&e.Status,
		&e.CreatedAt,
	}
}
