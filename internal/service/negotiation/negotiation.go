package negotiation

import (
	"context"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"

	"errandgo/internal/entities"
)

type Negotiation struct {
	repository    Repository
	errandRepo    ErrandRepository
	activeRepo    ActiveErrandRepository
	chatService   ChatService
	notifications NotificationService
	events        EventGateway
	txManager     TxManager
}

func New(
	repository Repository,
	errandRepo ErrandRepository,
	activeRepo ActiveErrandRepository,
	chatService ChatService,
	notifications NotificationService,
	events EventGateway,
	txManager TxManager,
) *Negotiation {
	return &Negotiation{
		repository:    repository,
		errandRepo:    errandRepo,
		activeRepo:    activeRepo,
		chatService:   chatService,
		notifications: notifications,
		events:        events,
		txManager:     txManager,
	}
}

// SubmitOffer records a runner's counter-price on a pending errand.
func (s *Negotiation) SubmitOffer(ctx context.Context, errandID, runnerID int64, offerPrice float64) (*entities.Negotiation, error) {
	if offerPrice <= 0 {
		return nil, ErrInvalidPrice
	}

	errand, err := s.errandRepo.GetByID(ctx, errandID)
	if err != nil {
		return nil, fmt.Errorf("get errand: %w", err)
	}
	if errand.Status != entities.ErrandPending {
		return nil, ErrErrandNotPending
	}

	pending := entities.NegotiationPending
	offer, err := s.repository.Create(ctx, entities.NegotiationModify{
		ErrandID:   &errandID,
		RunnerID:   &runnerID,
		OfferPrice: &offerPrice,
		Status:     &pending,
	})
	if err != nil {
		return nil, fmt.Errorf("create negotiation: %w", err)
	}

	// Offers have no lifecycle event, so the client is notified directly.
	_, _ = s.notifications.Notify(ctx, errand.ClientID,
		fmt.Sprintf("New offer of $%.2f on your '%s' errand.", offerPrice, errand.Category))

	return offer, nil
}

// AcceptOffer is the client accepting one runner's offer. The whole
// transition runs in one transaction; the conditional update on the errand
// status guarantees only one offer can ever win.
func (s *Negotiation) AcceptOffer(ctx context.Context, negotiationID, clientID int64) (*entities.Assignment, error) {
	var (
		assignment *entities.Assignment
		errand     *entities.Errand
	)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		offer, err := s.repository.GetByID(ctx, negotiationID)
		if err != nil {
			return fmt.Errorf("get negotiation: %w", err)
		}

		errand, err = s.errandRepo.GetByID(ctx, offer.ErrandID)
		if err != nil {
			return fmt.Errorf("get errand: %w", err)
		}
		if errand.ClientID != clientID {
			return ErrForbidden
		}

		assignment, err = s.accept(ctx, errand, offer)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.finishAcceptance(ctx, errand, assignment)
	return assignment, nil
}

// DirectAccept is the runner taking a pending errand without prior
// negotiation, either at their own price or at the client's estimate. It
// creates an already-accepted negotiation so earnings aggregation sees the
// agreed price the same way in both flows.
func (s *Negotiation) DirectAccept(ctx context.Context, errandID, runnerID int64, offerPrice *float64) (*entities.Assignment, error) {
	var (
		assignment *entities.Assignment
		errand     *entities.Errand
	)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		errand, err = s.errandRepo.GetByID(ctx, errandID)
		if err != nil {
			return fmt.Errorf("get errand: %w", err)
		}

		price := errand.PriceEstimate
		if offerPrice != nil {
			if *offerPrice <= 0 {
				return ErrInvalidPrice
			}
			price = *offerPrice
		}

		accepted := entities.NegotiationAccepted
		offer, err := s.repository.Create(ctx, entities.NegotiationModify{
			ErrandID:   &errandID,
			RunnerID:   &runnerID,
			OfferPrice: &price,
			Status:     &accepted,
		})
		if err != nil {
			return fmt.Errorf("create accepted negotiation: %w", err)
		}

		assignment, err = s.accept(ctx, errand, offer)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.finishAcceptance(ctx, errand, assignment)
	return assignment, nil
}

func (s *Negotiation) ListByErrand(ctx context.Context, errandID, requesterID int64) ([]entities.Negotiation, error) {
	errand, err := s.errandRepo.GetByID(ctx, errandID)
	if err != nil {
		return nil, fmt.Errorf("get errand: %w", err)
	}
	if errand.ClientID != requesterID {
		return nil, ErrForbidden
	}

	offers, err := s.repository.ListByErrand(ctx, errandID)
	if err != nil {
		return nil, fmt.Errorf("list negotiations: %w", err)
	}
	return offers, nil
}

// accept performs the shared acceptance steps inside the caller's
// transaction: win the errand row, mark the offer, reject the rest, open the
// active errand and its chat.
func (s *Negotiation) accept(ctx context.Context, errand *entities.Errand, offer *entities.Negotiation) (*entities.Assignment, error) {
	if err := s.errandRepo.AcceptPending(ctx, errand.ID, offer.OfferPrice); err != nil {
		return nil, fmt.Errorf("accept errand: %w", err)
	}

	if offer.Status != entities.NegotiationAccepted {
		if err := s.repository.SetStatus(ctx, offer.ID, entities.NegotiationAccepted); err != nil {
			return nil, fmt.Errorf("mark negotiation accepted: %w", err)
		}
	}
	if err := s.repository.RejectOthers(ctx, errand.ID, offer.ID); err != nil {
		return nil, fmt.Errorf("reject other offers: %w", err)
	}

	startTime := time.Now().UTC()
	ongoing := entities.ActiveOngoing
	active, err := s.activeRepo.Create(ctx, entities.ActiveErrandModify{
		ErrandID:  &errand.ID,
		RunnerID:  &offer.RunnerID,
		StartTime: &startTime,
		Status:    &ongoing,
	})
	if err != nil {
		return nil, fmt.Errorf("create active errand: %w", err)
	}

	if _, err := s.chatService.CreateForAssignment(ctx, errand.ID, errand.ClientID, offer.RunnerID); err != nil {
		return nil, fmt.Errorf("create chat: %w", err)
	}

	return &entities.Assignment{
		ErrandID:       errand.ID,
		RunnerID:       offer.RunnerID,
		ActiveErrandID: active.ID,
		AgreedPrice:    offer.OfferPrice,
		StartTime:      startTime,
	}, nil
}

// finishAcceptance emits the post-commit side effects. The notifications
// worker picks up the event and notifies both parties.
func (s *Negotiation) finishAcceptance(ctx context.Context, errand *entities.Errand, assignment *entities.Assignment) {
	_ = s.events.PublishStatusChanged(ctx, entities.ErrandEvent{
		ErrandID:   errand.ID,
		ClientID:   errand.ClientID,
		RunnerID:   pointer.To(assignment.RunnerID),
		Category:   errand.Category,
		Status:     entities.ErrandAccepted,
		OccurredAt: time.Now().UTC(),
	})
}
