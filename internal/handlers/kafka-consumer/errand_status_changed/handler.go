package errand_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"errandgo/internal/entities"
	"errandgo/pkg/logger"
)

type Handler struct {
	notifications            NotificationService
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, notifications NotificationService, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		notifications:            notifications,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

// statusChangedEvent mirrors the producer's wire form.
type statusChangedEvent struct {
	ErrandID   int64     `json:"errand_id"`
	ClientID   int64     `json:"client_id"`
	RunnerID   *int64    `json:"runner_id,omitempty"`
	Category   string    `json:"category"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("errand.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("errand.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles a single Kafka message. It returns true when
// ConsumeClaim should stop (context cancelled); false to keep consuming.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("errand.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("errand", event.ErrandID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("errand.status.changed processing")

	err = h.notifyParties(ctx, event)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			msgLog.With(
				logger.NewField("error", err),
			).Warn("errand.status.changed handler context cancelled, message will be reprocessed")
			return true
		}

		msgLog.With(
			logger.NewField("error", err),
		).Warn("errand.status.changed handler failed to notify")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("errand.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}

func (h *Handler) notifyParties(ctx context.Context, event statusChangedEvent) error {
	category := categoryLabel(event.Category)

	switch entities.ErrandStatusType(event.Status) {
	case entities.ErrandPending:
		_, err := h.notifications.Notify(ctx, event.ClientID,
			fmt.Sprintf("Your %s errand has been posted. Runners in your area can now make offers.", category))
		return err

	case entities.ErrandAccepted:
		_, err := h.notifications.Notify(ctx, event.ClientID,
			fmt.Sprintf("A runner has accepted your %s errand. You can chat with them now.", category))
		if err != nil {
			return err
		}
		if event.RunnerID != nil {
			_, err = h.notifications.Notify(ctx, *event.RunnerID,
				fmt.Sprintf("You accepted the %s errand. It is now in your active errands.", category))
		}
		return err

	case entities.ErrandCompleted:
		_, err := h.notifications.Notify(ctx, event.ClientID,
			fmt.Sprintf("Your %s errand has been completed. Please rate your runner.", category))
		if err != nil {
			return err
		}
		if event.RunnerID != nil {
			_, err = h.notifications.Notify(ctx, *event.RunnerID,
				fmt.Sprintf("You completed the %s errand. Your earnings have been updated.", category))
		}
		return err

	default:
		h.log.With(
			logger.NewField("status", event.Status),
		).Warn("errand.status.changed handler unknown status")
		return nil
	}
}

func categoryLabel(category string) string {
	return strings.ReplaceAll(category, "_", " ")
}
