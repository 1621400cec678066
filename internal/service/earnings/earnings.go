package earnings

import (
	"context"
	"fmt"
	"sort"
	"time"

	"errandgo/internal/entities"
)

const (
	weeklyDays    = 7
	monthlyMonths = 6

	// Completed payouts stay pending for a week before they become payable.
	payoutHoldWindow = 7 * 24 * time.Hour
)

type Earnings struct {
	activeRepo ActiveErrandRepository
	runnerRepo RunnerRepository
}

func New(activeRepo ActiveErrandRepository, runnerRepo RunnerRepository) *Earnings {
	return &Earnings{
		activeRepo: activeRepo,
		runnerRepo: runnerRepo,
	}
}

// Summary is the runner dashboard header: lifetime and today's earnings plus
// the completion and rating aggregates.
func (s *Earnings) Summary(ctx context.Context, runnerID int64) (*entities.EarningsSummary, error) {
	total, err := s.activeRepo.TotalEarnings(ctx, runnerID)
	if err != nil {
		return nil, fmt.Errorf("total earnings: %w", err)
	}

	now := time.Now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	today, err := s.activeRepo.EarningsBetween(ctx, runnerID, midnight, now)
	if err != nil {
		return nil, fmt.Errorf("today's earnings: %w", err)
	}

	_, completed, averageRating, err := s.runnerRepo.Aggregates(ctx, runnerID)
	if err != nil {
		return nil, fmt.Errorf("runner aggregates: %w", err)
	}

	return &entities.EarningsSummary{
		Total:          total,
		Today:          today,
		CompletedCount: completed,
		AverageRating:  averageRating,
	}, nil
}

// Weekly returns seven daily buckets ending today, zero-filled for days
// without completions.
func (s *Earnings) Weekly(ctx context.Context, runnerID int64) ([]entities.EarningsBucket, error) {
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -(weeklyDays - 1))

	buckets, err := s.activeRepo.EarningsBuckets(ctx, runnerID, start, "day")
	if err != nil {
		return nil, fmt.Errorf("weekly earnings: %w", err)
	}

	filled := make([]entities.EarningsBucket, 0, weeklyDays)
	for i := 0; i < weeklyDays; i++ {
		day := start.AddDate(0, 0, i)
		filled = append(filled, entities.EarningsBucket{PeriodStart: day, Amount: amountFor(buckets, day)})
	}
	return filled, nil
}

// Monthly returns six monthly buckets ending with the current month.
func (s *Earnings) Monthly(ctx context.Context, runnerID int64) ([]entities.EarningsBucket, error) {
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, -(monthlyMonths - 1), 0)

	buckets, err := s.activeRepo.EarningsBuckets(ctx, runnerID, start, "month")
	if err != nil {
		return nil, fmt.Errorf("monthly earnings: %w", err)
	}

	filled := make([]entities.EarningsBucket, 0, monthlyMonths)
	for i := 0; i < monthlyMonths; i++ {
		month := start.AddDate(0, i, 0)
		filled = append(filled, entities.EarningsBucket{PeriodStart: month, Amount: amountFor(buckets, month)})
	}
	return filled, nil
}

func (s *Earnings) Wallet(ctx context.Context, runnerID int64) (entities.Wallet, error) {
	cutoff := time.Now().UTC().Add(-payoutHoldWindow)
	wallet, err := s.activeRepo.Wallet(ctx, runnerID, cutoff)
	if err != nil {
		return entities.Wallet{}, fmt.Errorf("wallet: %w", err)
	}
	return wallet, nil
}

// History lists a runner's completed errands with their payouts, narrowed or
// reordered by the requested filter.
func (s *Earnings) History(ctx context.Context, runnerID int64, filter entities.HistoryFilter) ([]entities.CompletedErrandRecord, error) {
	records, err := s.activeRepo.ListCompletedRecords(ctx, runnerID)
	if err != nil {
		return nil, fmt.Errorf("completed records: %w", err)
	}

	now := time.Now().UTC()
	switch filter {
	case entities.FilterAll, "":
		return records, nil
	case entities.FilterToday:
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		return filterSince(records, midnight), nil
	case entities.FilterWeek:
		return filterSince(records, now.AddDate(0, 0, -7)), nil
	case entities.FilterMonth:
		return filterSince(records, now.AddDate(0, -1, 0)), nil
	case entities.FilterHighEarning:
		sorted := append([]entities.CompletedErrandRecord(nil), records...)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Earnings > sorted[j].Earnings
		})
		return sorted, nil
	default:
		return nil, ErrInvalidFilter
	}
}

func filterSince(records []entities.CompletedErrandRecord, since time.Time) []entities.CompletedErrandRecord {
	filtered := make([]entities.CompletedErrandRecord, 0, len(records))
	for _, record := range records {
		if !record.EndTime.Before(since) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

func amountFor(buckets []entities.EarningsBucket, period time.Time) float64 {
	for _, bucket := range buckets {
		if bucket.PeriodStart.Equal(period) {
			return bucket.Amount
		}
	}
	return 0
}
