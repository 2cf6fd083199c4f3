package impl

import (
	"context"
	"log/slog"
	"sync"

	"sos/config"
	deliverycontext "sos/internal/delivery/context"
	"sos/internal/domain/entity"
	domainerrors "sos/internal/domain/errors"
	"sos/internal/domain/repository"
	"sos/internal/domain/service"
	"sos/internal/errors"
	"sos/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// alertStore implements the AlertStore interface on top of a document repository keyed by owner.
type alertStore struct {
	repo       repository.AlertRepository
	publisher  service.EventPublisher
	normalizer *phoneNormalizer
	clock      service.Clock
	logger     *slog.Logger

	locks keyedMutex

	subMu       sync.Mutex
	subscribers map[string]map[uint64]*subscriber
	nextSubID   uint64
}

// AlertStoreParams holds dependencies for the alert store, injected by Fx.
type AlertStoreParams struct {
	fx.In

	Config    *config.Config
	Repo      repository.AlertRepository
	Publisher service.EventPublisher
	Clock     service.Clock
	Logger    *slog.Logger
}

// NewAlertStore is the constructor for alertStore.
func NewAlertStore(params AlertStoreParams) usecase.AlertStore {
	params.Config.ApplyDefaults()

	return &alertStore{
		repo:        params.Repo,
		publisher:   params.Publisher,
		normalizer:  newPhoneNormalizer(params.Config.Notification.DefaultCountryCode),
		clock:       params.Clock,
		logger:      params.Logger,
		subscribers: make(map[string]map[uint64]*subscriber),
	}
}

// Create stores a new active alert. An active alert for the same owner is rejected unless
// ReplaceActive is set; a terminal alert is always overwritten.
func (s *alertStore) Create(ctx context.Context, alert *entity.Alert, opts usecase.CreateOptions) (uuid.UUID, error) {
	if alert == nil || alert.OwnerID == "" {
		return uuid.Nil, domainerrors.NewConfigurationError("alert owner is required")
	}

	unlock := s.locks.Lock(alert.OwnerID)
	defer unlock()

	current, err := s.load(ctx, alert.OwnerID)
	if err != nil {
		return uuid.Nil, err
	}

	now := s.clock.Now()

	var replaced *entity.Alert
	if current.IsActive() {
		if !opts.ReplaceActive {
			return uuid.Nil, errors.WithStack(domainerrors.ErrActiveAlertExists)
		}
		replaced = current.Clone()
		replaced.Status = entity.AlertStatusCancelled
		replaced.UpdatedAt = now
	}

	next := alert.Clone()
	if next.ID == uuid.Nil {
		next.ID, err = uuid.NewV7()
		if err != nil {
			return uuid.Nil, errors.Wrap(err, "generate alert id")
		}
	}
	next.Status = entity.AlertStatusActive
	if next.CreatedAt.IsZero() {
		next.CreatedAt = now
	}
	next.UpdatedAt = now
	for idx := range next.Contacts {
		if next.Contacts[idx].NotificationStatus == "" {
			next.Contacts[idx].NotificationStatus = entity.NotificationStatusPending
		}
	}

	if err := s.save(ctx, next, "create alert"); err != nil {
		return uuid.Nil, err
	}

	if replaced != nil {
		s.publish(ctx, replaced, entity.AlertChangeReplaced)
	}
	s.notify(next)
	s.publish(ctx, next, entity.AlertChangeCreated)

	return next.ID, nil
}

// Get returns the owner's alert, or nil when there is none.
func (s *alertStore) Get(ctx context.Context, ownerID string) (*entity.Alert, error) {
	return s.load(ctx, ownerID)
}

// UpdateStatus transitions the alert. Repeating the current status is a no-op success.
func (s *alertStore) UpdateStatus(ctx context.Context, ownerID string, status entity.AlertStatus) error {
	if !status.IsValid() {
		return domainerrors.ErrInvalidAlertStatus.WithDetails(string(status))
	}

	unlock := s.locks.Lock(ownerID)
	defer unlock()

	current, err := s.load(ctx, ownerID)
	if err != nil {
		return err
	}
	if current == nil {
		return errors.WithStack(domainerrors.ErrAlertNotFound)
	}
	if current.Status == status {
		return nil
	}
	if current.Status.IsTerminal() {
		return errors.WithStack(domainerrors.ErrAlertTerminal.WithDetails(string(current.Status)))
	}

	next := current.Clone()
	next.Status = status
	next.UpdatedAt = s.clock.Now()

	if err := s.save(ctx, next, "update alert status"); err != nil {
		return err
	}

	s.notify(next)
	s.publish(ctx, next, entity.AlertChangeStatus)

	return nil
}

// UpdateContactStatus records a notification outcome on the contact with the given phone.
// The phone may be given raw or normalised; an unknown phone is ignored.
func (s *alertStore) UpdateContactStatus(ctx context.Context, ownerID string, update entity.ContactUpdate) error {
	if !update.Status.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown notification status " + string(update.Status))
	}

	unlock := s.locks.Lock(ownerID)
	defer unlock()

	current, err := s.load(ctx, ownerID)
	if err != nil {
		return err
	}
	if current == nil {
		return errors.WithStack(domainerrors.ErrAlertNotFound)
	}

	idx := s.matchContact(current, update.Phone)
	if idx < 0 {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("No contact matches status update",
			slog.String("owner_id", ownerID),
			slog.String("alert_id", current.ID.String()),
		)

		return nil
	}

	now := s.clock.Now()
	if update.At.IsZero() {
		update.At = now
	}

	next := current.Clone()
	next.Contacts[idx].Apply(update)
	next.UpdatedAt = now

	if err := s.save(ctx, next, "update contact status"); err != nil {
		return err
	}

	s.notify(next)
	s.publish(ctx, next, entity.AlertChangeContactStatus)

	return nil
}

// Subscribe hands onChange the current snapshot before returning, then one snapshot per
// mutation in mutation order. Each subscriber is fed by its own goroutine so a slow
// callback never blocks writers. The subscription ends on unsubscribe or when ctx is done.
func (s *alertStore) Subscribe(ctx context.Context, ownerID string, onChange usecase.AlertChangeFunc) (func(), error) {
	if onChange == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("onChange callback is required")
	}

	sub := newSubscriber(onChange)

	unlock := s.locks.Lock(ownerID)
	snapshot, err := s.load(ctx, ownerID)
	if err != nil {
		unlock()

		return nil, err
	}
	id := s.addSubscriber(ownerID, sub)
	unlock()

	onChange(snapshot)
	go sub.run()

	var once sync.Once
	release := func() {
		once.Do(func() {
			s.removeSubscriber(ownerID, id)
			sub.close()
		})
	}
	stop := context.AfterFunc(ctx, release)

	return func() {
		stop()
		release()
	}, nil
}

func (s *alertStore) load(ctx context.Context, ownerID string) (*entity.Alert, error) {
	alert, err := s.repo.FindAlertByOwner(ctx, ownerID)
	if err != nil {
		return nil, s.storeError(err, "load alert")
	}

	return alert, nil
}

func (s *alertStore) save(ctx context.Context, alert *entity.Alert, action string) error {
	if err := s.repo.SaveAlert(ctx, alert); err != nil {
		return s.storeError(err, action)
	}

	return nil
}

func (s *alertStore) storeError(err error, action string) error {
	var storeErr *domainerrors.StoreError
	if errors.As(err, &storeErr) {
		return err
	}

	return domainerrors.NewStoreError(errors.WithStack(err), action)
}

func (s *alertStore) matchContact(alert *entity.Alert, phone string) int {
	if idx := alert.FindContact(phone); idx >= 0 {
		return idx
	}

	normalized, err := s.normalizer.Normalize(phone)
	if err != nil {
		return -1
	}
	for idx, contact := range alert.Contacts {
		if candidate, err := s.normalizer.Normalize(contact.Phone); err == nil && candidate == normalized {
			return idx
		}
	}

	return -1
}

// publish emits the change event. Failures are logged and never fail the mutation.
func (s *alertStore) publish(ctx context.Context, alert *entity.Alert, change entity.AlertChange) {
	if s.publisher == nil {
		return
	}

	event := entity.NewAlertEvent(alert, change, s.clock.Now())
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := s.publisher.PublishAlertEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Failed to publish alert event",
			slog.String("owner_id", alert.OwnerID),
			slog.String("alert_id", event.AlertID),
			slog.String("change", string(change)),
			slog.Any("error", err),
		)
	}
}

// notify queues a snapshot for every subscriber of the owner. Called with the owner lock held.
func (s *alertStore) notify(alert *entity.Alert) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for _, sub := range s.subscribers[alert.OwnerID] {
		sub.push(alert.Clone())
	}
}

func (s *alertStore) addSubscriber(ownerID string, sub *subscriber) uint64 {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	s.nextSubID++
	if s.subscribers[ownerID] == nil {
		s.subscribers[ownerID] = make(map[uint64]*subscriber)
	}
	s.subscribers[ownerID][s.nextSubID] = sub

	return s.nextSubID
}

func (s *alertStore) removeSubscriber(ownerID string, id uint64) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	delete(s.subscribers[ownerID], id)
	if len(s.subscribers[ownerID]) == 0 {
		delete(s.subscribers, ownerID)
	}
}

// subscriber is an unbounded, ordered mailbox drained by a single goroutine.
type subscriber struct {
	onChange usecase.AlertChangeFunc

	mu      sync.Mutex
	pending []*entity.Alert
	closed  bool

	wake chan struct{}
	done chan struct{}
}

func newSubscriber(onChange usecase.AlertChangeFunc) *subscriber {
	return &subscriber{
		onChange: onChange,
		wake:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

func (s *subscriber) push(alert *entity.Alert) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return
	}
	s.pending = append(s.pending, alert)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *subscriber) run() {
	for {
		select {
		case <-s.done:
			return
		case <-s.wake:
		}

		for {
			s.mu.Lock()
			if s.closed || len(s.pending) == 0 {
				s.mu.Unlock()

				break
			}
			next := s.pending[0]
			s.pending[0] = nil
			s.pending = s.pending[1:]
			s.mu.Unlock()

			s.onChange(next)
		}
	}
}

func (s *subscriber) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.pending = nil
	close(s.done)
}

// keyedMutex serialises writers per key and forgets keys nobody holds.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

type keyedLock struct {
	sync.Mutex
	refs int
}

// Lock blocks until key is free and returns its unlock function.
func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*keyedLock)
	}
	lock, ok := k.locks[key]
	if !ok {
		lock = &keyedLock{}
		k.locks[key] = lock
	}
	lock.refs++
	k.mu.Unlock()

	lock.Lock()

	return func() {
		lock.Unlock()

		k.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
