package runner_dashboard_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"errandgo/internal/entities"
	"errandgo/internal/handlers/rest/dto"
	authmw "errandgo/internal/pkg/middlewares/auth"
	"errandgo/internal/service/earnings"
	"errandgo/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	session, ok := authmw.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	runnerID := session.UserID

	summary, err := h.service.Summary(r.Context(), runnerID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	weekly, err := h.service.Weekly(r.Context(), runnerID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	monthly, err := h.service.Monthly(r.Context(), runnerID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	wallet, err := h.service.Wallet(r.Context(), runnerID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	filter := entities.HistoryFilter(r.URL.Query().Get("filter"))
	history, err := h.service.History(r.Context(), runnerID, filter)
	if err != nil {
		switch {
		case errors.Is(err, earnings.ErrInvalidFilter):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.RunnerDashboard{
		TotalEarnings:   summary.Total,
		TodayEarnings:   summary.Today,
		CompletedCount:  summary.CompletedCount,
		AverageRating:   summary.AverageRating,
		WeeklyEarnings:  fromBuckets(weekly),
		MonthlyEarnings: fromBuckets(monthly),
		Wallet: dto.Wallet{
			Available: wallet.Available,
			Pending:   wallet.Pending,
		},
		History: fromHistory(history),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func fromBuckets(buckets []entities.EarningsBucket) []dto.EarningsBucket {
	out := make([]dto.EarningsBucket, len(buckets))
	for i, bucket := range buckets {
		out[i] = dto.EarningsBucket{
			PeriodStart: dto.TimeRFC3339(bucket.PeriodStart),
			Amount:      bucket.Amount,
		}
	}
	return out
}

func fromHistory(records []entities.CompletedErrandRecord) []dto.CompletedErrandRecord {
	out := make([]dto.CompletedErrandRecord, len(records))
	for i, record := range records {
		out[i] = dto.CompletedErrandRecord{
			Errand:   dto.FromErrand(&record.Errand),
			Earnings: record.Earnings,
			EndTime:  dto.TimeRFC3339(record.EndTime),
		}
	}
	return out
}
