package manualsync

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/skynet2/expense-tracker-sync/pkg/common"
	"github.com/skynet2/expense-tracker-sync/pkg/database"
	"github.com/skynet2/expense-tracker-sync/pkg/duplicatecleaner"
	"github.com/skynet2/expense-tracker-sync/pkg/transcoder"
)

const (
	stateIdle       = int32(0)
	stateInProgress = int32(1)
)

// Manager runs user triggered sync operations for one signed-in session. Only one
// operation runs at a time; a concurrent call fails with common.ErrSyncInProgress
// instead of waiting.
type Manager struct {
	cfg     Config
	state   atomic.Int32
	ledger  *duplicatecleaner.Ledger
	cleaner *duplicatecleaner.Cleaner
	lanes   []lane
	tracked LocalStores
	unhook  func()

	mu     sync.Mutex
	status Status
}

func NewManager(ctx context.Context, cfg Config) (*Manager, error) {
	if cfg.Settings == nil {
		return nil, errors.New("settings store is required")
	}

	if cfg.Local.Expenses == nil || cfg.Local.Categories == nil || cfg.Local.Tags == nil ||
		cfg.Local.Wallets == nil || cfg.Local.Budgets == nil || cfg.Local.Transfers == nil ||
		cfg.Local.Recurring == nil {
		return nil, errors.New("every local store is required")
	}

	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	if cfg.NewID == nil {
		cfg.NewID = uuid.NewString
	}

	if cfg.Ledger == nil {
		cfg.Ledger = duplicatecleaner.NewLedger(cfg.Settings, cfg.Session.UserID, cfg.Clock)
	}

	m := &Manager{
		cfg:     cfg,
		ledger:  cfg.Ledger,
		cleaner: duplicatecleaner.NewCleaner(cfg.Local.Expenses, cfg.Ledger),
	}

	expenses := newLane(transcoder.Expenses, LocalStore[database.Expense](cfg.Local.Expenses), cfg.Remote.Expenses)
	expenses.readAll = func(ctx context.Context) ([]database.Expense, error) {
		return cfg.Local.Expenses.GetAllIncludingDeleted(ctx, "")
	}

	byEntity := map[database.EntityType]lane{
		database.EntityCategories: newLane(transcoder.Categories, cfg.Local.Categories, cfg.Remote.Categories),
		database.EntityTags:       newLane(transcoder.Tags, cfg.Local.Tags, cfg.Remote.Tags),
		database.EntityWallets:    newLane(transcoder.Wallets, cfg.Local.Wallets, cfg.Remote.Wallets),
		database.EntityBudgets:    newLane(transcoder.Budgets, cfg.Local.Budgets, cfg.Remote.Budgets),
		database.EntityRecurring:  newLane(transcoder.Recurring, cfg.Local.Recurring, cfg.Remote.Recurring),
		database.EntityTransfers:  newLane(transcoder.Transfers, cfg.Local.Transfers, cfg.Remote.Transfers),
		database.EntityExpenses:   expenses,
	}

	for _, entity := range database.DependencyOrder {
		m.lanes = append(m.lanes, byEntity[entity])
	}

	m.tracked = m.trackLocal()

	if err := m.loadStatus(ctx); err != nil {
		return nil, err
	}

	if cfg.ExitHook != nil {
		m.unhook = cfg.ExitHook.OnExitAttempt(m.InProgress)
	}

	return m, nil
}

// Close releases the exit hook. The manager must not be used afterwards.
func (m *Manager) Close() {
	if m.unhook != nil {
		m.unhook()
		m.unhook = nil
	}
}

func (m *Manager) InProgress() bool {
	return m.state.Load() == stateInProgress
}

// Local returns the local stores wrapped so that every successful write marks the
// session as having unsynced changes.
func (m *Manager) Local() LocalStores {
	return m.tracked
}

func (m *Manager) Ledger() *duplicatecleaner.Ledger {
	return m.ledger
}

func (m *Manager) begin() error {
	if !m.state.CompareAndSwap(stateIdle, stateInProgress) {
		return common.ErrSyncInProgress
	}

	return nil
}

func (m *Manager) end() {
	m.state.Store(stateIdle)
}

func (m *Manager) requireCloud() error {
	if m.cfg.Connectivity == nil || !m.cfg.Connectivity.IsOnline() {
		return common.ErrOffline
	}

	if m.cfg.Session.UserID == "" {
		return common.ErrUnauthenticated
	}

	return nil
}

func skipNone(database.EntityType, string, bool) bool {
	return false
}

// skipper builds the ledger filter used when writing into the local store. With override
// set nothing is skipped.
func (m *Manager) skipper(ctx context.Context, override bool) skipFunc {
	if override {
		return skipNone
	}

	suppressed, err := m.ledger.Suppressed(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Err(err).Msg("failed to read cleaned duplicate ledger")
		m.recordError(ctx, operationStatus, err)

		return skipNone
	}

	return func(entity database.EntityType, id string, deleted bool) bool {
		if entity != database.EntityExpenses || deleted {
			return false
		}

		_, ok := suppressed[id]

		return ok
	}
}

// releaseRestored forgets ledger entries whose expense is active again locally. An
// override write is an explicit restore, so the id must not stay suppressed.
func (m *Manager) releaseRestored(ctx context.Context) {
	lg := zerolog.Ctx(ctx)

	suppressed, err := m.ledger.Suppressed(ctx)
	if err != nil {
		lg.Err(err).Msg("failed to read cleaned duplicate ledger")
		m.recordError(ctx, operationStatus, err)

		return
	}

	for id := range suppressed {
		item, getErr := m.cfg.Local.Expenses.GetByID(ctx, id, "")
		if getErr != nil {
			lg.Err(getErr).Str("id", id).Msg("failed to read restored expense")
			continue
		}

		if item == nil || item.Lifecycle.IsDeleted() {
			continue
		}

		if forgetErr := m.ledger.Forget(ctx, id); forgetErr != nil {
			lg.Err(forgetErr).Str("id", id).Msg("failed to forget restored expense")
			m.recordError(ctx, operationStatus, forgetErr)

			continue
		}

		lg.Info().Str("id", id).Msg("restored expense removed from cleaned duplicate ledger")
	}
}

func newResult(operation string) *Result {
	return &Result{
		Operation: operation,
		Stats:     map[database.EntityType]*TypeStats{},
	}
}

func (m *Manager) now() time.Time {
	return m.cfg.Clock().UTC()
}

func (m *Manager) statusKey() string {
	return statusKeyPrefix + m.cfg.Session.UserID
}

func (m *Manager) loadStatus(ctx context.Context) error {
	raw, err := m.cfg.Settings.Load(ctx, m.statusKey())
	if err != nil {
		return errors.Wrap(err, "load sync status")
	}

	status := Status{}
	if len(raw) > 0 {
		if err = json.Unmarshal(raw, &status); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("ignoring unreadable sync status")
			status = Status{}
		}
	}

	if status.LocalDataCount == nil {
		status.LocalDataCount = map[database.EntityType]int{}
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()

	return nil
}

// updateStatus applies fn under the lock and persists the result.
func (m *Manager) updateStatus(ctx context.Context, fn func(s *Status)) {
	m.mu.Lock()
	fn(&m.status)
	raw, err := json.Marshal(m.status)
	m.mu.Unlock()

	if err == nil {
		err = m.cfg.Settings.Save(ctx, m.statusKey(), raw)
	}

	if err != nil {
		zerolog.Ctx(ctx).Err(err).Msg("failed to persist sync status")
	}
}

// recordError appends to the bounded error list, newest last.
func (m *Manager) recordError(ctx context.Context, operation string, err error) {
	m.updateStatus(ctx, func(s *Status) {
		s.Errors = append(s.Errors, StatusError{
			At:        m.now(),
			Operation: operation,
			Message:   err.Error(),
		})

		if len(s.Errors) > maxStatusErrors {
			s.Errors = s.Errors[len(s.Errors)-maxStatusErrors:]
		}
	})
}

func (m *Manager) recordResultErrors(ctx context.Context, res *Result) {
	for _, msg := range res.Errors {
		m.recordError(ctx, res.Operation, errors.New(msg))
	}

	for entity, st := range res.Stats {
		if st.Error != "" {
			m.recordError(ctx, res.Operation, errors.Newf("%s: %s", entity, st.Error))
		}
	}
}

func (m *Manager) markLocalChange(ctx context.Context) {
	m.mu.Lock()
	already := m.status.HasLocalChanges
	m.mu.Unlock()

	if already {
		return
	}

	m.updateStatus(ctx, func(s *Status) {
		s.HasLocalChanges = true
	})
}

// Status returns a copy of the cached status without touching the stores.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	status := m.status
	status.SyncInProgress = m.InProgress()
	status.LocalDataCount = make(map[database.EntityType]int, len(m.status.LocalDataCount))

	for k, v := range m.status.LocalDataCount {
		status.LocalDataCount[k] = v
	}

	status.Errors = append([]StatusError{}, m.status.Errors...)

	return status
}
