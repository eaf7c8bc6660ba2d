package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/hdngo/thesisdesk/internal/adapter"
	"github.com/hdngo/thesisdesk/internal/logger"
	"github.com/hdngo/thesisdesk/internal/notify"
)

// ErrActionUnsupported is returned when an action is invoked on a store
// whose entity has no service binding for it.
var ErrActionUnsupported = errors.New("action not supported for this entity")

// Record is the only thing the store layer requires of an entity: a
// unique string identifier.
type Record interface {
	RecordID() string
}

// Flags are the per-operation busy indicators driving loading/disabled
// UI states. Each flag is set for the duration of exactly one async
// operation and always cleared on completion, success or failure.
type Flags struct {
	Fetching  bool
	Creating  bool
	Updating  bool
	Deleting  bool
	Toggling  bool
	Importing bool
}

// Failure is the single-slot error state: only the most recent failure
// is retained, and every new attempt overwrites it.
type Failure struct {
	Message    string
	StatusCode int
	At         time.Time
}

// Bindings wires a store to its entity's remote operations. A nil
// binding marks the operation as unsupported for the entity and makes
// the matching action return ErrActionUnsupported.
type Bindings[T Record] struct {
	List           func(ctx context.Context) ([]T, error)
	ListBySemester func(ctx context.Context, semesterID string) ([]T, error)
	Create         func(ctx context.Context, payload T) (T, error)
	CreateMany     func(ctx context.Context, payload []T) ([]T, error)
	Update         func(ctx context.Context, id string, patch T) (T, error)
	Delete         func(ctx context.Context, id string) error
	Toggle         func(ctx context.Context, id string, enabled bool) (T, error)
}

// Matcher decides whether a record matches the current search query.
type Matcher[T Record] func(record T, query string) bool

// Store is the in-memory cache for one entity type.
type Store[T Record] struct {
	entity   string
	svc      Bindings[T]
	matcher  Matcher[T]
	notifier notify.Notifier
	log      *logger.Logger

	mu             sync.RWMutex
	items          []T
	filtered       []T
	query          string
	lastSemesterID string
	fetched        bool
	flags          Flags
	lastErr        *Failure
}

// Option customises a Store at construction time.
type Option[T Record] func(*Store[T])

// WithMatcher installs the search matcher used to compute the filtered
// view.
func WithMatcher[T Record](m Matcher[T]) Option[T] {
	return func(s *Store[T]) { s.matcher = m }
}

// WithNotifier installs the notification sink. Defaults to a no-op.
func WithNotifier[T Record](n notify.Notifier) Option[T] {
	return func(s *Store[T]) { s.notifier = n }
}

// WithLogger installs the logger. Defaults to a no-op.
func WithLogger[T Record](l *logger.Logger) Option[T] {
	return func(s *Store[T]) { s.log = l }
}

// New constructs an empty Store for the named entity with the given
// service bindings.
func New[T Record](entity string, svc Bindings[T], opts ...Option[T]) *Store[T] {
	s := &Store[T]{
		entity:   entity,
		svc:      svc,
		notifier: notify.Nop(),
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Entity returns the entity name the store was created with.
func (s *Store[T]) Entity() string { return s.entity }

// ── actions ─────────────────────────────────────────────────────────────────

// FetchAll replaces the collection with the server's full record list.
func (s *Store[T]) FetchAll(ctx context.Context) error {
	if s.svc.List == nil {
		return ErrActionUnsupported
	}

	s.begin(func(f *Flags) { f.Fetching = true })
	defer s.end(func(f *Flags) { f.Fetching = false })

	items, err := s.svc.List(ctx)
	if err != nil {
		s.fail("fetch", err)
		return err
	}

	s.mu.Lock()
	s.items = items
	s.lastSemesterID = ""
	s.fetched = true
	s.refilterLocked()
	s.mu.Unlock()

	return nil
}

// FetchBySemester loads the records belonging to semesterID. When the
// cached collection already belongs to that semester and force is
// false, no network call is issued — callers needing freshness pass
// force explicitly. A conflict marking the semester as closed for
// enrollment is downgraded to an empty successful result: the expected
// state outside the enrollment window is "no data", not an error.
func (s *Store[T]) FetchBySemester(ctx context.Context, semesterID string, force bool) error {
	if s.svc.ListBySemester == nil {
		return ErrActionUnsupported
	}

	s.mu.RLock()
	cached := s.fetched && s.lastSemesterID == semesterID
	s.mu.RUnlock()
	if cached && !force {
		return nil
	}

	s.begin(func(f *Flags) { f.Fetching = true })
	defer s.end(func(f *Flags) { f.Fetching = false })

	items, err := s.svc.ListBySemester(ctx, semesterID)
	if err != nil {
		if errors.Is(err, adapter.ErrSemesterClosed) {
			s.mu.Lock()
			s.items = nil
			s.lastSemesterID = semesterID
			s.fetched = true
			s.refilterLocked()
			s.mu.Unlock()
			return nil
		}
		s.fail("fetch by semester", err)
		return err
	}

	s.mu.Lock()
	s.items = items
	s.lastSemesterID = semesterID
	s.fetched = true
	s.refilterLocked()
	s.mu.Unlock()

	return nil
}

// Create sends the payload to the server and prepends the returned
// record to the collection.
func (s *Store[T]) Create(ctx context.Context, payload T) error {
	if s.svc.Create == nil {
		return ErrActionUnsupported
	}

	s.begin(func(f *Flags) { f.Creating = true })
	defer s.end(func(f *Flags) { f.Creating = false })

	created, err := s.svc.Create(ctx, payload)
	if err != nil {
		s.fail("create", err)
		return err
	}

	s.mu.Lock()
	s.items = append([]T{created}, s.items...)
	s.refilterLocked()
	s.mu.Unlock()

	s.notifier.Success("Success", s.entity+" created")
	return nil
}

// CreateMany batch-imports the payload and prepends all returned
// records, preserving the server's order.
func (s *Store[T]) CreateMany(ctx context.Context, payload []T) error {
	if s.svc.CreateMany == nil {
		return ErrActionUnsupported
	}

	s.begin(func(f *Flags) { f.Importing = true })
	defer s.end(func(f *Flags) { f.Importing = false })

	created, err := s.svc.CreateMany(ctx, payload)
	if err != nil {
		s.fail("import", err)
		return err
	}

	s.mu.Lock()
	s.items = append(append([]T(nil), created...), s.items...)
	s.refilterLocked()
	s.mu.Unlock()

	s.notifier.Success("Success", s.entity+" imported")
	return nil
}

// Update sends the patch to the server and replaces the record matching
// id in place. No other record is altered.
func (s *Store[T]) Update(ctx context.Context, id string, patch T) error {
	if s.svc.Update == nil {
		return ErrActionUnsupported
	}

	s.begin(func(f *Flags) { f.Updating = true })
	defer s.end(func(f *Flags) { f.Updating = false })

	updated, err := s.svc.Update(ctx, id, patch)
	if err != nil {
		s.fail("update", err)
		return err
	}

	s.replaceInPlace(id, updated)
	s.notifier.Success("Success", s.entity+" updated")
	return nil
}

// Delete removes the record matching id from the collection after the
// server confirms the deletion.
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	if s.svc.Delete == nil {
		return ErrActionUnsupported
	}

	s.begin(func(f *Flags) { f.Deleting = true })
	defer s.end(func(f *Flags) { f.Deleting = false })

	if err := s.svc.Delete(ctx, id); err != nil {
		s.fail("delete", err)
		return err
	}

	s.mu.Lock()
	kept := s.items[:0:0]
	for _, it := range s.items {
		if it.RecordID() != id {
			kept = append(kept, it)
		}
	}
	s.items = kept
	s.refilterLocked()
	s.mu.Unlock()

	s.notifier.Success("Success", s.entity+" deleted")
	return nil
}

// Toggle flips the entity's boolean field (active, completed, ...) and
// replaces the record in place, keeping its array position.
func (s *Store[T]) Toggle(ctx context.Context, id string, enabled bool) error {
	if s.svc.Toggle == nil {
		return ErrActionUnsupported
	}

	s.begin(func(f *Flags) { f.Toggling = true })
	defer s.end(func(f *Flags) { f.Toggling = false })

	updated, err := s.svc.Toggle(ctx, id, enabled)
	if err != nil {
		s.fail("toggle", err)
		return err
	}

	s.replaceInPlace(id, updated)
	s.notifier.Success("Success", s.entity+" updated")
	return nil
}

// ── state access ────────────────────────────────────────────────────────────

// Items returns a copy of the full collection.
func (s *Store[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]T(nil), s.items...)
}

// Filtered returns a copy of the derived filtered view.
func (s *Store[T]) Filtered() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]T(nil), s.filtered...)
}

// Search sets the query and recomputes the filtered view.
func (s *Store[T]) Search(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
	s.refilterLocked()
}

// Flags returns the current busy flags.
func (s *Store[T]) Flags() Flags {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flags
}

// LastFailure returns a copy of the most recent failure, or nil after a
// clean attempt.
func (s *Store[T]) LastFailure() *Failure {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastErr == nil {
		return nil
	}
	f := *s.lastErr
	return &f
}

// Reset clears the collection, the derived view, and all bookkeeping.
// Called on logout.
func (s *Store[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.filtered = nil
	s.query = ""
	s.lastSemesterID = ""
	s.fetched = false
	s.flags = Flags{}
	s.lastErr = nil
}

// ── internals ───────────────────────────────────────────────────────────────

func (s *Store[T]) begin(set func(*Flags)) {
	s.mu.Lock()
	set(&s.flags)
	s.lastErr = nil
	s.mu.Unlock()
}

func (s *Store[T]) end(clear func(*Flags)) {
	s.mu.Lock()
	clear(&s.flags)
	s.mu.Unlock()
}

func (s *Store[T]) replaceInPlace(id string, record T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].RecordID() == id {
			s.items[i] = record
			break
		}
	}
	s.refilterLocked()
}

// refilterLocked recomputes the derived view from the full list and the
// current query. Caller must hold the write lock.
func (s *Store[T]) refilterLocked() {
	if s.matcher == nil || s.query == "" {
		s.filtered = append([]T(nil), s.items...)
		return
	}

	out := make([]T, 0, len(s.items))
	for _, it := range s.items {
		if s.matcher(it, s.query) {
			out = append(out, it)
		}
	}
	s.filtered = out
}

func (s *Store[T]) fail(op string, err error) {
	status := adapter.StatusOf(err)
	message := adapter.MessageOf(err)

	s.mu.Lock()
	s.lastErr = &Failure{Message: message, StatusCode: status, At: time.Now()}
	s.mu.Unlock()

	s.notifier.Error(notify.ErrorTitle(status), message)
	s.log.Err(err).Str("entity", s.entity).Str("op", op).Msg("store action failed")
}
