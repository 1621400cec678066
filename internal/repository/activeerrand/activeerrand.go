package activeerrand

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"errandgo/internal/entities"
	"errandgo/internal/repository"
	errandsvc "errandgo/internal/service/errand"
	negotiationsvc "errandgo/internal/service/negotiation"
)

const activeColumns = "id, errand_id, runner_id, start_time, end_time, estimated_duration, status, created_at"

// earningsExpr is what a completed errand actually paid: the accepted offer
// when one exists, otherwise the original estimate.
const earningsExpr = "COALESCE(n.offer_price, e.price_estimate)"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, activeModifyEntity entities.ActiveErrandModify) (*entities.ActiveErrand, error) {
	activeModifyModel := FromDomainModify(&activeModifyEntity)

	query := `INSERT INTO active_errands (errand_id, runner_id, start_time, estimated_duration, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + activeColumns

	var activeModel ActiveErrandDB
	err := r.querier.QueryRow(
		ctx,
		query,
		activeModifyModel.ErrandID,
		activeModifyModel.RunnerID,
		activeModifyModel.StartTime,
		activeModifyModel.EstimatedDuration,
		activeModifyModel.Status,
	).Scan(scanTargets(&activeModel)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, negotiationsvc.ErrErrandAlreadyAccepted
		}
		return nil, fmt.Errorf("unexpected active errand repository create error: %w", err)
	}

	return ToDomain(&activeModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.ActiveErrand, error) {
	query := `SELECT ` + activeColumns + ` FROM active_errands WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *Repository) GetByErrandID(ctx context.Context, errandID int64) (*entities.ActiveErrand, error) {
	query := `SELECT ` + activeColumns + ` FROM active_errands WHERE errand_id = $1`
	return r.getOne(ctx, query, errandID)
}

// Complete closes an ongoing assignment. The runner and status guards keep a
// repeat call or a foreign runner from touching the row.
func (r *Repository) Complete(ctx context.Context, id, runnerID int64) (*entities.ActiveErrand, error) {
	query := `UPDATE active_errands
		SET status = 'completed', end_time = NOW()
		WHERE id = $1 AND runner_id = $2 AND status = 'ongoing'
		RETURNING ` + activeColumns

	var activeModel ActiveErrandDB
	err := r.querier.QueryRow(ctx, query, id, runnerID).Scan(scanTargets(&activeModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errandsvc.ErrActiveErrandNotFound
		}
		return nil, fmt.Errorf("unexpected active errand repository complete error: %w", err)
	}

	return ToDomain(&activeModel), nil
}

func (r *Repository) TotalEarnings(ctx context.Context, runnerID int64) (float64, error) {
	query := `
	SELECT COALESCE(SUM(` + earningsExpr + `), 0)
	FROM active_errands ae
	JOIN errands e ON e.id = ae.errand_id
	LEFT JOIN negotiations n ON n.errand_id = e.id AND n.status = 'accepted'
	WHERE ae.runner_id = $1 AND ae.status = 'completed'`

	var total float64
	err := r.querier.QueryRow(ctx, query, runnerID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("unexpected active errand repository total earnings error: %w", err)
	}
	return total, nil
}

func (r *Repository) EarningsBetween(ctx context.Context, runnerID int64, from, to time.Time) (float64, error) {
	query := `
	SELECT COALESCE(SUM(` + earningsExpr + `), 0)
	FROM active_errands ae
	JOIN errands e ON e.id = ae.errand_id
	LEFT JOIN negotiations n ON n.errand_id = e.id AND n.status = 'accepted'
	WHERE ae.runner_id = $1 AND ae.status = 'completed'
	  AND ae.end_time >= $2 AND ae.end_time < $3`

	var total float64
	err := r.querier.QueryRow(ctx, query, runnerID, from, to).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("unexpected active errand repository earnings between error: %w", err)
	}
	return total, nil
}

// EarningsBuckets groups a runner's completed earnings since a cutoff by day
// or month. The truncation unit is interpolated from a fixed set, never from
// user input.
func (r *Repository) EarningsBuckets(ctx context.Context, runnerID int64, since time.Time, unit string) ([]entities.EarningsBucket, error) {
	if unit != "day" && unit != "month" {
		return nil, fmt.Errorf("unsupported earnings bucket unit: %s", unit)
	}

	query := `
	SELECT date_trunc('` + unit + `', ae.end_time), SUM(` + earningsExpr + `)
	FROM active_errands ae
	JOIN errands e ON e.id = ae.errand_id
	LEFT JOIN negotiations n ON n.errand_id = e.id AND n.status = 'accepted'
	WHERE ae.runner_id = $1 AND ae.status = 'completed' AND ae.end_time >= $2
	GROUP BY 1
	ORDER BY 1`

	rows, err := r.querier.Query(ctx, query, runnerID, since)
	if err != nil {
		return nil, fmt.Errorf("unexpected active errand repository earnings buckets error: %w", err)
	}
	defer rows.Close()

	buckets := make([]entities.EarningsBucket, 0, 8)
	for rows.Next() {
		var bucket entities.EarningsBucket
		if err := rows.Scan(&bucket.PeriodStart, &bucket.Amount); err != nil {
			return nil, fmt.Errorf("unexpected active errand repository earnings buckets error: %w", err)
		}
		buckets = append(buckets, bucket)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected active errand repository earnings buckets error: %w", err)
	}

	return buckets, nil
}

// Wallet splits completed earnings at the payout hold cutoff: payouts whose
// completion is older than the cutoff are available, the rest are pending.
func (r *Repository) Wallet(ctx context.Context, runnerID int64, cutoff time.Time) (entities.Wallet, error) {
	query := `
	SELECT
		COALESCE(SUM(` + earningsExpr + `) FILTER (WHERE ae.end_time < $2), 0),
		COALESCE(SUM(` + earningsExpr + `) FILTER (WHERE ae.end_time >= $2), 0)
	FROM active_errands ae
	JOIN errands e ON e.id = ae.errand_id
	LEFT JOIN negotiations n ON n.errand_id = e.id AND n.status = 'accepted'
	WHERE ae.runner_id = $1 AND ae.status = 'completed'`

	var wallet entities.Wallet
	err := r.querier.QueryRow(ctx, query, runnerID, cutoff).Scan(&wallet.Available, &wallet.Pending)
	if err != nil {
		return entities.Wallet{}, fmt.Errorf("unexpected active errand repository wallet error: %w", err)
	}
	return wallet, nil
}

func (r *Repository) ListCompletedRecords(ctx context.Context, runnerID int64) ([]entities.CompletedErrandRecord, error) {
	query := `
	SELECT
		e.id, e.client_id, e.category, e.pickup_location, e.delivery_location, e.weight, e.delivery_time, e.details, e.price_estimate, e.agreed_price, e.calculated_minimum_fee, e.status, e.created_at,
		` + earningsExpr + `,
		ae.end_time
	FROM active_errands ae
	JOIN errands e ON e.id = ae.errand_id
	LEFT JOIN negotiations n ON n.errand_id = e.id AND n.status = 'accepted'
	WHERE ae.runner_id = $1 AND ae.status = 'completed'
	ORDER BY ae.end_time DESC`

	rows, err := r.querier.Query(ctx, query, runnerID)
	if err != nil {
		return nil, fmt.Errorf("unexpected active errand repository completed records error: %w", err)
	}
	defer rows.Close()

	recordModels := make([]CompletedRecordDB, 0, 8)
	for rows.Next() {
		var recordModel CompletedRecordDB
		err := rows.Scan(
			&recordModel.ErrandID,
			&recordModel.ClientID,
			&recordModel.Category,
			&recordModel.PickupLocation,
			&recordModel.DeliveryLocation,
			&recordModel.Weight,
			&recordModel.DeliveryTime,
			&recordModel.Details,
			&recordModel.PriceEstimate,
			&recordModel.AgreedPrice,
			&recordModel.CalculatedMinimumFee,
			&recordModel.Status,
			&recordModel.CreatedAt,
			&recordModel.Earnings,
			&recordModel.EndTime,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected active errand repository completed records error: %w", err)
		}
		recordModels = append(recordModels, recordModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected active errand repository completed records error: %w", err)
	}

	return ToCompletedRecordDomainList(recordModels), nil
}

func (r *Repository) getOne(ctx context.Context, query string, arg interface{}) (*entities.ActiveErrand, error) {
	var activeModel ActiveErrandDB
	err := r.querier.QueryRow(ctx, query, arg).Scan(scanTargets(&activeModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errandsvc.ErrActiveErrandNotFound
		}
		return nil, fmt.Errorf("unexpected active errand repository get error: %w", err)
	}

	return ToDomain(&activeModel), nil
}

func scanTargets(a *ActiveErrandDB) []interface{} {
	return []interface{}{
		&a.ID,
		&a.ErrandID,
		&a.RunnerID,
		&a.StartTime,
		&a.EndTime,
		&a.EstimatedDuration,
		&a.Status,
		&a.CreatedAt,
	}
}
