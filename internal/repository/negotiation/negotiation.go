package negotiation

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"errandgo/internal/entities"
	"errandgo/internal/repository"
	negotiationsvc "errandgo/internal/service/negotiation"
)

const negotiationColumns = "id, errand_id, runner_id, offer_price, status, created_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, negotiationModifyEntity entities.NegotiationModify) (*entities.Negotiation, error) {
	negotiationModifyModel := FromDomainModify(&negotiationModifyEntity)

	query := `INSERT INTO negotiations (errand_id, runner_id, offer_price, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + negotiationColumns

	var negotiationModel NegotiationDB
	err := r.querier.QueryRow(
		ctx,
		query,
		negotiationModifyModel.ErrandID,
		negotiationModifyModel.RunnerID,
		negotiationModifyModel.OfferPrice,
		negotiationModifyModel.Status,
	).Scan(
		&negotiationModel.ID,
		&negotiationModel.ErrandID,
		&negotiationModel.RunnerID,
		&negotiationModel.OfferPrice,
		&negotiationModel.Status,
		&negotiationModel.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, negotiationsvc.ErrAlreadyOffered
		}
		return nil, fmt.Errorf("unexpected negotiation repository create error: %w", err)
	}

	return ToDomain(&negotiationModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Negotiation, error) {
	query := `SELECT ` + negotiationColumns + ` FROM negotiations WHERE id = $1`

	var negotiationModel NegotiationDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&negotiationModel.ID,
		&negotiationModel.ErrandID,
		&negotiationModel.RunnerID,
		&negotiationModel.OfferPrice,
		&negotiationModel.Status,
		&negotiationModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, negotiationsvc.ErrNegotiationNotFound
		}
		return nil, fmt.Errorf("unexpected negotiation repository getbyid error: %w", err)
	}

	return ToDomain(&negotiationModel), nil
}

func (r *Repository) SetStatus(ctx context.Context, id int64, status entities.NegotiationStatusType) error {
	query := `UPDATE negotiations SET status = $2 WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id, status.String())
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return negotiationsvc.ErrErrandAlreadyAccepted
		}
		return fmt.Errorf("unexpected negotiation repository set status error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return negotiationsvc.ErrNegotiationNotFound
	}
	return nil
}

// RejectOthers marks every other pending offer on the errand rejected once one
// offer has won.
func (r *Repository) RejectOthers(ctx context.Context, errandID, acceptedID int64) error {
	query := `UPDATE negotiations
		SET status = 'rejected'
		WHERE errand_id = $1 AND id != $2 AND status = 'pending'`

	_, err := r.querier.Exec(ctx, query, errandID, acceptedID)
	if err != nil {
		return fmt.Errorf("unexpected negotiation repository reject others error: %w", err)
	}
	return nil
}

func (r *Repository) ListByErrand(ctx context.Context, errandID int64) ([]entities.Negotiation, error) {
	query := `SELECT ` + negotiationColumns + ` FROM negotiations WHERE errand_id = $1 ORDER BY created_at`

	rows, err := r.querier.Query(ctx, query, errandID)
	if err != nil {
		return nil, fmt.Errorf("unexpected negotiation repository list error: %w", err)
	}
	defer rows.Close()

	negotiationModels := make([]NegotiationDB, 0, 8)
	for rows.Next() {
		var negotiationModel NegotiationDB
		err := rows.Scan(
			&negotiationModel.ID,
			&negotiationModel.ErrandID,
			&negotiationModel.RunnerID,
			&negotiationModel.OfferPrice,
			&negotiationModel.Status,
			&negotiationModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected negotiation repository list error: %w", err)
		}
		negotiationModels = append(negotiationModels, negotiationModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected negotiation repository list error: %w", err)
	}

	return ToDomainList(negotiationModels), nil
}
