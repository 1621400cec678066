package feeconfig

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"errandgo/internal/entities"
	errandsvc "errandgo/internal/service/errand"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetLatest returns the newest fee configuration. Vehicle multipliers are
// stored as a JSONB column.
func (r *Repository) GetLatest(ctx context.Context) (*entities.FeeConfig, error) {
	query := `
	SELECT id, base_fee, per_km_fee, per_kg_fee, night_multiplier, rush_hour_multiplier, vehicle_multipliers, created_at
	FROM fee_configs
	ORDER BY created_at DESC
	LIMIT 1`

	var cfg entities.FeeConfig
	var multipliersRaw []byte
	err := r.querier.QueryRow(ctx, query).Scan(
		&cfg.ID,
		&cfg.BaseFee,
		&cfg.PerKmFee,
		&cfg.PerKgFee,
		&cfg.NightMultiplier,
		&cfg.RushHourMultiplier,
		&multipliersRaw,
		&cfg.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errandsvc.ErrFeeConfigNotFound
		}
		return nil, fmt.Errorf("unexpected fee config repository get error: %w", err)
	}

	if err := json.Unmarshal(multipliersRaw, &cfg.VehicleMultipliers); err != nil {
		return nil, fmt.Errorf("unexpected fee config repository unmarshal error: %w", err)
	}
	return &cfg, nil
}
