package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"sos/config"
	deliverycontext "sos/internal/delivery/context"
	"sos/internal/domain/entity"
	domainerrors "sos/internal/domain/errors"
	"sos/internal/domain/repository"
	"sos/internal/domain/service"
	"sos/internal/errors"
	"sos/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

// triggerRun is the in-flight state of one Trigger call.
type triggerRun struct {
	state   entity.TriggerState
	created bool
	aborted bool
	cancel  context.CancelFunc
}

// alertOrchestrator implements the AlertUsecase interface.
type alertOrchestrator struct {
	location     usecase.LocationUsecase
	notification usecase.NotificationUsecase
	store        usecase.AlertStore
	dispatch     usecase.DispatchUsecase
	deliveryLogs repository.DeliveryLogRepository
	clock        service.Clock
	sleep        service.Sleeper
	validate     *validator.Validate
	normalizer   *phoneNormalizer
	logger       *slog.Logger

	fallbackMaxAge  time.Duration
	interSendDelay  time.Duration
	dispatchEnabled bool

	mu   sync.Mutex
	runs map[string]*triggerRun
}

// AlertOrchestratorParams holds dependencies for the alert orchestrator, injected by Fx.
type AlertOrchestratorParams struct {
	fx.In

	Config       *config.Config
	Location     usecase.LocationUsecase
	Notification usecase.NotificationUsecase
	Store        usecase.AlertStore
	Dispatch     usecase.DispatchUsecase
	DeliveryLogs repository.DeliveryLogRepository
	Clock        service.Clock
	Sleeper      service.Sleeper `optional:"true"`
	Logger       *slog.Logger
}

// NewAlertOrchestrator is the constructor for alertOrchestrator.
func NewAlertOrchestrator(params AlertOrchestratorParams) usecase.AlertUsecase {
	params.Config.ApplyDefaults()

	sleep := params.Sleeper
	if sleep == nil {
		sleep = service.Sleep
	}

	return &alertOrchestrator{
		location:        params.Location,
		notification:    params.Notification,
		store:           params.Store,
		dispatch:        params.Dispatch,
		deliveryLogs:    params.DeliveryLogs,
		clock:           params.Clock,
		sleep:           sleep,
		validate:        validator.New(),
		normalizer:      newPhoneNormalizer(params.Config.Notification.DefaultCountryCode),
		logger:          params.Logger,
		fallbackMaxAge:  params.Config.Location.FallbackMaxAge,
		interSendDelay:  params.Config.Notification.InterSendDelay,
		dispatchEnabled: params.Config.Dispatch.Enabled,
		runs:            make(map[string]*triggerRun),
	}
}

// Trigger runs one SOS alert from location to dispatch and returns its summary.
// Per-contact failures are recorded in the alert, never returned.
func (o *alertOrchestrator) Trigger(ctx context.Context, input *usecase.TriggerInput) (*entity.AlertSummary, error) {
	if err := o.validateInput(input); err != nil {
		return nil, err
	}

	ownerID := input.Caller.OwnerID
	logger := deliverycontext.GetLoggerOrDefault(ctx, o.logger).With(slog.String("owner_id", ownerID))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	run := &triggerRun{state: entity.TriggerStateIdle, cancel: cancel}
	if !o.register(ownerID, run) {
		return nil, errors.WithStack(domainerrors.ErrActiveAlertExists.WithDetails("an SOS trigger is already in progress"))
	}
	defer o.unregister(ownerID, run)

	summary := &entity.AlertSummary{TotalCount: len(input.Contacts)}

	o.setState(run, entity.TriggerStateLocating)
	position, usedCache, err := o.locate(ctx, logger, input)
	if err != nil {
		return nil, o.fail(run, logger, err, "Failed to locate caller")
	}
	summary.Position = position
	summary.UsedCachedPosition = usedCache

	o.setState(run, entity.TriggerStateCreating)
	alertID, err := o.store.Create(ctx, o.newAlert(input, position), usecase.CreateOptions{ReplaceActive: input.ReplaceActive})
	if err != nil {
		return nil, o.fail(run, logger, err, "Failed to create alert")
	}
	summary.AlertID = alertID
	logger = logger.With(slog.String("alert_id", alertID.String()))

	// From here on only an explicit status change stops the run.
	workCtx := context.WithoutCancel(ctx)
	if o.markCreated(run) {
		logger.Info("Trigger was aborted while the alert was being created")
		if err := o.store.UpdateStatus(workCtx, ownerID, entity.AlertStatusCancelled); err != nil {
			logger.Error("Failed to cancel aborted alert", slog.Any("error", err))
		}
	}

	o.setState(run, entity.TriggerStateNotifying)
	o.notifyContacts(workCtx, logger, input, alertID, position, summary)

	if !summary.Cancelled && o.stopped(workCtx, logger, ownerID, alertID) {
		summary.Cancelled = true
	}

	if o.dispatchEnabled && !summary.Cancelled {
		o.setState(run, entity.TriggerStateDispatching)
		result := o.dispatch.Notify(workCtx, position, input.Caller)
		summary.DispatchSuccess = result.Success
		summary.DispatchID = result.DispatchID
		summary.DispatchError = result.Error
	}

	summary.State = entity.TriggerStateCompleted
	if summary.Cancelled {
		summary.State = entity.TriggerStateCancelled
	}
	o.setState(run, summary.State)

	logger.Info("SOS trigger finished",
		slog.String("state", string(summary.State)),
		slog.Int("sent", summary.SentCount),
		slog.Int("total", summary.TotalCount),
		slog.Bool("dispatch_success", summary.DispatchSuccess),
	)

	return summary, nil
}

// Cancel aborts an in-flight trigger that has not created its alert yet,
// otherwise marks the owner's alert cancelled. In-flight sends still complete.
func (o *alertOrchestrator) Cancel(ctx context.Context, ownerID string) error {
	o.mu.Lock()
	run, ok := o.runs[ownerID]
	if ok && !run.created {
		run.aborted = true
		run.cancel()
		o.mu.Unlock()

		deliverycontext.GetLoggerOrDefault(ctx, o.logger).Info("Aborted in-flight SOS trigger", slog.String("owner_id", ownerID))

		return nil
	}
	o.mu.Unlock()

	return o.store.UpdateStatus(ctx, ownerID, entity.AlertStatusCancelled)
}

// Resolve marks the owner's active alert resolved.
func (o *alertOrchestrator) Resolve(ctx context.Context, ownerID string) error {
	return o.store.UpdateStatus(ctx, ownerID, entity.AlertStatusResolved)
}

// GetAlert returns the owner's most recent alert.
func (o *alertOrchestrator) GetAlert(ctx context.Context, ownerID string) (*entity.Alert, error) {
	alert, err := o.store.Get(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, errors.WithStack(domainerrors.ErrAlertNotFound)
	}

	return alert, nil
}

// ListDeliveries returns the send outcomes recorded for the owner's current alert.
func (o *alertOrchestrator) ListDeliveries(ctx context.Context, ownerID string) ([]*entity.DeliveryLog, error) {
	alert, err := o.GetAlert(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	logs, err := o.deliveryLogs.FindDeliveryLogsByAlert(ctx, alert.ID)
	if err != nil {
		return nil, domainerrors.NewStoreError(errors.WithStack(err), "list delivery logs")
	}

	return logs, nil
}

// TriggerState reports the state of the owner's in-flight trigger.
func (o *alertOrchestrator) TriggerState(ownerID string) (entity.TriggerState, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	run, ok := o.runs[ownerID]
	if !ok {
		return entity.TriggerStateIdle, false
	}

	return run.state, true
}

// Subscribe passes through to the alert store.
func (o *alertOrchestrator) Subscribe(ctx context.Context, ownerID string, onChange usecase.AlertChangeFunc) (func(), error) {
	return o.store.Subscribe(ctx, ownerID, onChange)
}

func (o *alertOrchestrator) validateInput(input *usecase.TriggerInput) error {
	if input == nil {
		return domainerrors.NewConfigurationError("trigger input is required")
	}
	if err := o.validate.Struct(input); err != nil {
		return domainerrors.NewConfigurationError(err.Error())
	}
	if strings.TrimSpace(input.Message) == "" {
		return domainerrors.NewConfigurationError("message must not be blank")
	}
	// Contact records are matched by phone, so each number may appear once.
	seen := make(map[string]string, len(input.Contacts))
	for idx, contact := range input.Contacts {
		phone := strings.TrimSpace(contact.Phone)
		if phone == "" {
			return domainerrors.NewConfigurationError("contact " + contact.Name + " has no phone number")
		}
		input.Contacts[idx].Phone = phone

		key := phone
		if normalized, err := o.normalizer.Normalize(phone); err == nil {
			key = normalized
		}
		if other, ok := seen[key]; ok {
			return domainerrors.NewConfigurationError("contacts " + other + " and " + contact.Name + " share phone number " + key)
		}
		seen[key] = contact.Name
	}

	return nil
}

func (o *alertOrchestrator) locate(ctx context.Context, logger *slog.Logger, input *usecase.TriggerInput) (entity.Position, bool, error) {
	ownerID := input.Caller.OwnerID

	position, err := o.location.Resolve(ctx, ownerID, input.LocationBudget)
	if err == nil {
		return *position, false, nil
	}
	if ctx.Err() != nil {
		return entity.Position{}, false, err
	}

	if cached, ok := o.location.LastKnown(ctx, ownerID, o.fallbackMaxAge); ok {
		logger.Warn("Location failed, using last known position", slog.Any("error", err))

		return *cached, true, nil
	}

	return entity.Position{}, false, err
}

func (o *alertOrchestrator) newAlert(input *usecase.TriggerInput, position entity.Position) *entity.Alert {
	contacts := make([]entity.Contact, len(input.Contacts))
	for idx, info := range input.Contacts {
		contacts[idx] = entity.NewPendingContact(info)
	}

	return &entity.Alert{
		OwnerID:    input.Caller.OwnerID,
		OwnerName:  input.Caller.DisplayName,
		OwnerPhone: input.Caller.Phone,
		Position:   position,
		Message:    input.Message,
		Status:     entity.AlertStatusActive,
		CreatedAt:  o.clock.Now(),
		Contacts:   contacts,
	}
}

// notifyContacts sends to each contact in order, re-reading the alert before each one.
func (o *alertOrchestrator) notifyContacts(
	ctx context.Context,
	logger *slog.Logger,
	input *usecase.TriggerInput,
	alertID uuid.UUID,
	position entity.Position,
	summary *entity.AlertSummary,
) {
	ownerID := input.Caller.OwnerID
	locationText := position.LocationText()

	for idx, contact := range input.Contacts {
		if o.stopped(ctx, logger, ownerID, alertID) {
			logger.Info("Alert ended, stopping notifications", slog.Int("remaining", len(input.Contacts)-idx))
			summary.Cancelled = true

			return
		}

		outcome := o.notification.Send(ctx, contact, input.Message, locationText)
		if outcome.Sent {
			summary.SentCount++
		}

		update := entity.ContactUpdate{
			Phone:     contact.Phone,
			Status:    outcome.Status(),
			MessageID: outcome.MessageID,
			Provider:  outcome.Provider,
			Error:     outcome.Reason,
			Attempts:  outcome.Attempts,
			At:        o.clock.Now(),
		}
		if err := o.store.UpdateContactStatus(ctx, ownerID, update); err != nil {
			logger.Error("Failed to record contact status",
				slog.String("contact", contact.Name),
				slog.Any("error", err),
			)
		}

		o.recordDelivery(ctx, logger, alertID, ownerID, contact, outcome, update.At)

		if idx < len(input.Contacts)-1 {
			if err := o.sleep(ctx, o.interSendDelay); err != nil {
				logger.Warn("Inter-send delay interrupted", slog.Any("error", err))
			}
		}
	}
}

// stopped reports whether the alert was ended or replaced since this trigger created it.
// A failed read is logged and treated as still running.
func (o *alertOrchestrator) stopped(ctx context.Context, logger *slog.Logger, ownerID string, alertID uuid.UUID) bool {
	current, err := o.store.Get(ctx, ownerID)
	if err != nil {
		logger.Warn("Failed to re-read alert", slog.Any("error", err))

		return false
	}

	return current == nil || current.ID != alertID || current.Status.IsTerminal()
}

func (o *alertOrchestrator) recordDelivery(
	ctx context.Context,
	logger *slog.Logger,
	alertID uuid.UUID,
	ownerID string,
	contact entity.ContactInfo,
	outcome *entity.SendOutcome,
	at time.Time,
) {
	if o.deliveryLogs == nil {
		return
	}

	phone := outcome.Phone
	if phone == "" {
		phone = contact.Phone
	}

	entry := &entity.DeliveryLog{
		AlertID:      alertID,
		OwnerID:      ownerID,
		ContactName:  contact.Name,
		ContactPhone: phone,
		Status:       string(outcome.Status()),
		Provider:     outcome.Provider,
		MessageID:    outcome.MessageID,
		ErrorMessage: outcome.Reason,
		RetryCount:   max(outcome.Attempts-1, 0),
		SentAt:       at,
	}
	if err := o.deliveryLogs.CreateDeliveryLog(ctx, entry); err != nil {
		logger.Warn("Failed to write delivery log", slog.Any("error", err))
	}
}

func (o *alertOrchestrator) fail(run *triggerRun, logger *slog.Logger, err error, msg string) error {
	if o.isAborted(run) {
		o.setState(run, entity.TriggerStateCancelled)

		return errors.WithStack(domainerrors.ErrTriggerAborted)
	}

	o.setState(run, entity.TriggerStateFailed)
	logger.Error(msg, slog.Any("error", err))

	return err
}

func (o *alertOrchestrator) register(ownerID string, run *triggerRun) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, busy := o.runs[ownerID]; busy {
		return false
	}
	o.runs[ownerID] = run

	return true
}

func (o *alertOrchestrator) unregister(ownerID string, run *triggerRun) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.runs[ownerID] == run {
		delete(o.runs, ownerID)
	}
}

func (o *alertOrchestrator) setState(run *triggerRun, state entity.TriggerState) {
	o.mu.Lock()
	defer o.mu.Unlock()

	run.state = state
}

// markCreated records that the alert exists and reports whether an abort raced with creation.
func (o *alertOrchestrator) markCreated(run *triggerRun) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	run.created = true

	return run.aborted
}

func (o *alertOrchestrator) isAborted(run *triggerRun) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	return run.aborted
}
