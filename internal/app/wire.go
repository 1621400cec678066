//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	eventsGateway "errandgo/internal/gateway/kafka/errandevents"
	"errandgo/internal/handlers/kafka-consumer/errand_status_changed"
	"errandgo/internal/handlers/rest/active_errand_complete_post"
	"errandgo/internal/handlers/rest/errand_accept_post"
	"errandgo/internal/handlers/rest/errand_chat_get"
	"errandgo/internal/handlers/rest/errand_chat_post"
	"errandgo/internal/handlers/rest/errand_get"
	"errandgo/internal/handlers/rest/errand_post"
	"errandgo/internal/handlers/rest/errand_runners_get"
	"errandgo/internal/handlers/rest/errands_available_get"
	"errandgo/internal/handlers/rest/errands_completed_get"
	"errandgo/internal/handlers/rest/errands_get"
	"errandgo/internal/handlers/rest/feedback_post"
	"errandgo/internal/handlers/rest/feedback_summary_get"
	"errandgo/internal/handlers/rest/negotiation_accept_post"
	"errandgo/internal/handlers/rest/negotiation_post"
	"errandgo/internal/handlers/rest/notification_read_post"
	"errandgo/internal/handlers/rest/notifications_get"
	"errandgo/internal/handlers/rest/profile_get"
	"errandgo/internal/handlers/rest/profile_put"
	"errandgo/internal/handlers/rest/rating_post"
	"errandgo/internal/handlers/rest/ratings_get"
	"errandgo/internal/handlers/rest/runner_dashboard_get"
	"errandgo/internal/handlers/rest/runner_profile_post"
	"errandgo/internal/handlers/rest/runner_profile_put"
	"errandgo/internal/handlers/rest/signin_post"
	"errandgo/internal/handlers/rest/signout_post"
	"errandgo/internal/handlers/rest/signup_post"
	"errandgo/internal/handlers/tasks/notification_cleanup"
	"errandgo/internal/pkg/config"
	"errandgo/internal/pkg/factory/price_estimate"
	"errandgo/internal/pkg/session"
	"errandgo/internal/pkg/uploads"

	activeErrandRepo "errandgo/internal/repository/activeerrand"
	chatRepo "errandgo/internal/repository/chat"
	errandRepo "errandgo/internal/repository/errand"
	feeConfigRepo "errandgo/internal/repository/feeconfig"
	feedbackRepo "errandgo/internal/repository/feedback"
	negotiationRepo "errandgo/internal/repository/negotiation"
	notificationRepo "errandgo/internal/repository/notification"
	ratingRepo "errandgo/internal/repository/rating"
	runnerRepo "errandgo/internal/repository/runner"
	userRepo "errandgo/internal/repository/user"

	authService "errandgo/internal/service/auth"
	chatService "errandgo/internal/service/chat"
	earningsService "errandgo/internal/service/earnings"
	errandService "errandgo/internal/service/errand"
	feedbackService "errandgo/internal/service/feedback"
	negotiationService "errandgo/internal/service/negotiation"
	notificationService "errandgo/internal/service/notification"
	ratingService "errandgo/internal/service/rating"
	runnerService "errandgo/internal/service/runner"

	"errandgo/pkg/background"
	"errandgo/pkg/logger"
	"errandgo/pkg/querier"
	"errandgo/pkg/tx"
)

type (
	CleanupInterval time.Duration
)

type Application struct {
	ServiceAuth         ServiceAuth
	ServiceRunner       ServiceRunner
	ServiceErrand       ServiceErrand
	ServiceNegotiation  ServiceNegotiation
	ServiceEarnings     ServiceEarnings
	ServiceChat         ServiceChat
	ServiceRating       ServiceRating
	ServiceNotification ServiceNotification
	ServiceFeedback     ServiceFeedback
	SessionStore        *session.Store
	UploadStore         *uploads.Store
	BackgroundWorkers   *background.Worker
}

type ServiceAuth interface {
	signup_post.Service
	signin_post.Service
	signout_post.Service
	profile_get.Service
	profile_put.Service
}

type ServiceRunner interface {
	runner_profile_post.Service
	runner_profile_put.Service
	errands_available_get.Service
	errand_runners_get.Service
}

type ServiceErrand interface {
	errand_post.Service
	errands_get.Service
	errand_get.Service
	errands_completed_get.Service
	active_errand_complete_post.Service
}

type ServiceNegotiation interface {
	negotiation_post.Service
	negotiation_accept_post.Service
	errand_accept_post.Service
	errand_get.NegotiationService
}

type ServiceEarnings interface {
	runner_dashboard_get.Service
}

type ServiceChat interface {
	errand_chat_get.Service
	errand_chat_post.Service
}

type ServiceRating interface {
	rating_post.Service
	ratings_get.Service
}

type ServiceNotification interface {
	notifications_get.Service
	notification_read_post.Service
}

type ServiceFeedback interface {
	feedback_post.Service
	feedback_summary_get.Service
}

// InitializeApplication wires the HTTP service (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideCleanupInterval,
		provideSessionStore,
		provideUploadStore,
		price_estimate.New,
		provideEventGateway,

		provideUserRepository,
		provideRunnerRepository,
		provideErrandRepository,
		provideNegotiationRepository,
		provideActiveErrandRepository,
		provideChatRepository,
		provideRatingRepository,
		provideNotificationRepository,
		provideFeedbackRepository,
		provideFeeConfigRepository,

		provideServiceAuth,
		provideServiceRunner,
		provideServiceErrand,
		provideServiceNegotiation,
		provideServiceEarnings,
		provideServiceChat,
		provideServiceRating,
		provideServiceNotification,
		provideServiceFeedback,

		provideNotificationCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceAuth), new(*authService.Auth)),
		wire.Bind(new(ServiceRunner), new(*runnerService.Runner)),
		wire.Bind(new(ServiceErrand), new(*errandService.Errand)),
		wire.Bind(new(ServiceNegotiation), new(*negotiationService.Negotiation)),
		wire.Bind(new(ServiceEarnings), new(*earningsService.Earnings)),
		wire.Bind(new(ServiceChat), new(*chatService.Chat)),
		wire.Bind(new(ServiceRating), new(*ratingService.Rating)),
		wire.Bind(new(ServiceNotification), new(*notificationService.Notification)),
		wire.Bind(new(ServiceFeedback), new(*feedbackService.Feedback)),

		wire.Bind(new(authService.UserRepository), new(*userRepo.Repository)),
		wire.Bind(new(authService.SessionStore), new(*session.Store)),

		wire.Bind(new(runnerService.ProfileRepository), new(*runnerRepo.Repository)),
		wire.Bind(new(runnerService.ErrandRepository), new(*errandRepo.Repository)),
		wire.Bind(new(runnerService.UserService), new(*authService.Auth)),
		wire.Bind(new(runnerService.TxManager), new(*tx.Manager)),

		wire.Bind(new(errandService.Repository), new(*errandRepo.Repository)),
		wire.Bind(new(errandService.ActiveErrandRepository), new(*activeErrandRepo.Repository)),
		wire.Bind(new(errandService.FeeConfigRepository), new(*feeConfigRepo.Repository)),
		wire.Bind(new(errandService.PriceFactory), new(*price_estimate.PriceFactory)),
		wire.Bind(new(errandService.EventGateway), new(*eventsGateway.Gateway)),
		wire.Bind(new(errandService.TxManager), new(*tx.Manager)),

		wire.Bind(new(negotiationService.Repository), new(*negotiationRepo.Repository)),
		wire.Bind(new(negotiationService.ErrandRepository), new(*errandRepo.Repository)),
		wire.Bind(new(negotiationService.ActiveErrandRepository), new(*activeErrandRepo.Repository)),
		wire.Bind(new(negotiationService.ChatService), new(*chatService.Chat)),
		wire.Bind(new(negotiationService.NotificationService), new(*notificationService.Notification)),
		wire.Bind(new(negotiationService.EventGateway), new(*eventsGateway.Gateway)),
		wire.Bind(new(negotiationService.TxManager), new(*tx.Manager)),

		wire.Bind(new(earningsService.ActiveErrandRepository), new(*activeErrandRepo.Repository)),
		wire.Bind(new(earningsService.RunnerRepository), new(*runnerRepo.Repository)),

		wire.Bind(new(chatService.Repository), new(*chatRepo.Repository)),
		wire.Bind(new(chatService.NotificationService), new(*notificationService.Notification)),

		wire.Bind(new(ratingService.Repository), new(*ratingRepo.Repository)),
		wire.Bind(new(ratingService.ErrandRepository), new(*errandRepo.Repository)),
		wire.Bind(new(ratingService.ActiveErrandRepository), new(*activeErrandRepo.Repository)),
		wire.Bind(new(ratingService.NotificationService), new(*notificationService.Notification)),

		wire.Bind(new(notificationService.Repository), new(*notificationRepo.Repository)),

		wire.Bind(new(feedbackService.Repository), new(*feedbackRepo.Repository)),

		wire.Bind(new(notification_cleanup.Service), new(*notificationService.Notification)),
	)
	return &Application{}, nil
}

type NotificationsWorkerApp struct {
	Handler *errand_status_changed.Handler
}

// InitializeNotificationsWorkerApp wires the Kafka worker
// (cmd/worker-notifications).
func InitializeNotificationsWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*NotificationsWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideNotificationRepository,
		provideServiceNotification,
		provideStatusChangedHandler,

		wire.Bind(new(notificationService.Repository), new(*notificationRepo.Repository)),
		wire.Bind(new(errand_status_changed.NotificationService), new(*notificationService.Notification)),

		wire.Struct(new(NotificationsWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideCleanupInterval(cfg *config.Config) CleanupInterval {
	return CleanupInterval(cfg.Tasks.NotificationCleanupInterval)
}

func provideSessionStore(client *goredis.Client, cfg *config.Config) *session.Store {
	return session.NewStore(client, cfg.Session.TTL)
}

func provideUploadStore(cfg *config.Config) (*uploads.Store, error) {
	return uploads.NewStore(cfg.Uploads.Dir)
}

func provideEventGateway(producer sarama.SyncProducer, cfg *config.Config) *eventsGateway.Gateway {
	return eventsGateway.New(producer, cfg.Kafka.Topic)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideRunnerRepository(querier *querier.Querier) *runnerRepo.Repository {
	return runnerRepo.New(querier)
}

func provideErrandRepository(querier *querier.Querier) *errandRepo.Repository {
	return errandRepo.New(querier)
}

func provideNegotiationRepository(querier *querier.Querier) *negotiationRepo.Repository {
	return negotiationRepo.New(querier)
}

func provideActiveErrandRepository(querier *querier.Querier) *activeErrandRepo.Repository {
	return activeErrandRepo.New(querier)
}

func provideChatRepository(querier *querier.Querier) *chatRepo.Repository {
	return chatRepo.New(querier)
}

func provideRatingRepository(querier *querier.Querier) *ratingRepo.Repository {
	return ratingRepo.New(querier)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

func provideFeedbackRepository(querier *querier.Querier) *feedbackRepo.Repository {
	return feedbackRepo.New(querier)
}

func provideFeeConfigRepository(querier *querier.Querier) *feeConfigRepo.Repository {
	return feeConfigRepo.New(querier)
}

func provideServiceAuth(
	repository authService.UserRepository,
	sessions authService.SessionStore,
) *authService.Auth {
	return authService.New(repository, sessions)
}

func provideServiceRunner(
	repository runnerService.ProfileRepository,
	errandRepository runnerService.ErrandRepository,
	userService runnerService.UserService,
	txManager runnerService.TxManager,
) *runnerService.Runner {
	return runnerService.New(repository, errandRepository, userService, txManager)
}

func provideServiceErrand(
	repository errandService.Repository,
	activeRepository errandService.ActiveErrandRepository,
	feeConfigRepository errandService.FeeConfigRepository,
	priceFactory errandService.PriceFactory,
	events errandService.EventGateway,
	txManager errandService.TxManager,
) *errandService.Errand {
	return errandService.New(
		repository,
		activeRepository,
		feeConfigRepository,
		priceFactory,
		events,
		txManager,
	)
}

func provideServiceNegotiation(
	repository negotiationService.Repository,
	errandRepository negotiationService.ErrandRepository,
	activeRepository negotiationService.ActiveErrandRepository,
	chat negotiationService.ChatService,
	notifications negotiationService.NotificationService,
	events negotiationService.EventGateway,
	txManager negotiationService.TxManager,
) *negotiationService.Negotiation {
	return negotiationService.New(
		repository,
		errandRepository,
		activeRepository,
		chat,
		notifications,
		events,
		txManager,
	)
}

func provideServiceEarnings(
	activeRepository earningsService.ActiveErrandRepository,
	runnerRepository earningsService.RunnerRepository,
) *earningsService.Earnings {
	return earningsService.New(activeRepository, runnerRepository)
}

func provideServiceChat(
	repository chatService.Repository,
	notifications chatService.NotificationService,
) *chatService.Chat {
	return chatService.New(repository, notifications)
}

func provideServiceRating(
	repository ratingService.Repository,
	errandRepository ratingService.ErrandRepository,
	activeRepository ratingService.ActiveErrandRepository,
	notifications ratingService.NotificationService,
) *ratingService.Rating {
	return ratingService.New(repository, errandRepository, activeRepository, notifications)
}

func provideServiceNotification(repository notificationService.Repository) *notificationService.Notification {
	return notificationService.New(repository)
}

func provideServiceFeedback(repository feedbackService.Repository) *feedbackService.Feedback {
	return feedbackService.New(repository)
}

func provideStatusChangedHandler(
	log logger.Logger,
	notifications errand_status_changed.NotificationService,
	cfg *config.Config,
) *errand_status_changed.Handler {
	return errand_status_changed.New(log, notifications, cfg.Kafka.Handlers.ErrandStatusChanged.ProcessTimeout)
}

func provideNotificationCleanupTask(
	log logger.Logger,
	notifications notification_cleanup.Service,
	interval CleanupInterval,
) *notification_cleanup.NotificationCleanup {
	return notification_cleanup.NewNotificationCleanup(log, notifications, time.Duration(interval))
}

func provideTaskList(
	notificationCleanupTask *notification_cleanup.NotificationCleanup,
) []background.Task {
	return []background.Task{
		notificationCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
