package service_manager

import (
	"NYA_Service_Dashboard/internal/dashboard-server/model"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/juju/clock"
	"go.uber.org/zap"
)

const AutoSyncInterval = 5 * time.Minute

type Manager interface {
	Load(ctx context.Context) error
	// Services returns the visible services: every service whose isActive is not false.
	Services() []model.Service
	AllServices() []model.Service
	IsLoading() bool
	AddService(ctx context.Context, patch model.ServicePatch) (model.Service, error)
	UpdateService(ctx context.Context, id string, patch model.ServicePatch) error
	DeleteService(ctx context.Context, id string) error
	ToggleService(ctx context.Context, id string) error
	// RefreshServiceStatus syncs with Uptime Kuma and falls back to the heuristic.
	// An empty id refreshes every service.
	RefreshServiceStatus(ctx context.Context, id string) error
	// SyncWithUptimeKuma reports false when Uptime Kuma is not configured or cannot be read.
	SyncWithUptimeKuma(ctx context.Context) (bool, error)
	StartAutoSync()
	Close()
}

type manager struct {
	store     StoreClient
	storage   LocalStorage
	kuma      UptimeKumaClient
	heuristic *Heuristic
	settings  Settings
	clock     clock.Clock
	logger    *zap.Logger
	newID     func() string

	mu      sync.RWMutex
	all     []model.Service
	loading int // operations in flight

	syncOnce  sync.Once
	closeOnce sync.Once
	cancel    context.CancelFunc
	done      chan struct{}
}

// statusUpdate is the result of one sync for one service.
type statusUpdate struct {
	id     string
	status string
	uptime float64
}

// Load reads the local cache and then, when a store is configured, replaces it with the store's list.
// The cached services stay in place if the store cannot be reached.
func (m *manager) Load(ctx context.Context) error {
	defer m.startLoading()()

	m.mu.Lock()
	cached, err := m.readCache()
	if err != nil {
		m.logger.Warn("ignoring unreadable services cache", zap.Error(err))
	} else {
		m.all = cached
	}
	m.mu.Unlock()

	if m.store == nil {
		return nil
	}
	services, err := m.store.ListServices(ctx)
	if err != nil {
		return fmt.Errorf("Manager.Load: %w", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.commitLocked(services)
}

func (m *manager) Services() []model.Service {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return model.VisibleServices(m.all)
}

func (m *manager) AllServices() []model.Service {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]model.Service{}, m.all...)
}

func (m *manager) IsLoading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading > 0
}

// startLoading marks an operation as in flight until the returned func is called.
func (m *manager) startLoading() func() {
	m.mu.Lock()
	m.loading++
	m.mu.Unlock()
	return func() {
		m.mu.Lock()
		m.loading--
		m.mu.Unlock()
	}
}

// AddService creates the service on the store and keeps the record it returns.
// Without a store the defaults are filled in locally under a fresh id.
func (m *manager) AddService(ctx context.Context, patch model.ServicePatch) (model.Service, error) {
	var service model.Service
	if m.store != nil {
		created, err := m.store.CreateService(ctx, patch)
		if err != nil {
			return model.Service{}, fmt.Errorf("Manager.AddService: %w", err)
		}
		service = created
	} else {
		if patch.Name == nil || *patch.Name == "" || patch.URL == nil || *patch.URL == "" {
			return model.Service{}, fmt.Errorf("Manager.AddService: %w: name and url are required", ErrValidation)
		}
		service = model.NewService(m.newID(), patch)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	next := append(append([]model.Service{}, m.all...), service)
	if err := m.commitLocked(next); err != nil {
		return model.Service{}, fmt.Errorf("Manager.AddService: %w", err)
	}
	return service, nil
}

// UpdateService merges patch into the service. Unknown ids are ignored.
func (m *manager) UpdateService(ctx context.Context, id string, patch model.ServicePatch) error {
	if _, ok := m.get(id); !ok {
		return nil
	}
	if m.store == nil {
		m.mu.Lock()
		defer m.mu.Unlock()
		i := indexOf(m.all, id)
		if i < 0 {
			return nil
		}
		next := append([]model.Service{}, m.all...)
		next[i] = patch.Apply(next[i])
		if err := m.commitLocked(next); err != nil {
			return fmt.Errorf("Manager.UpdateService: %w", err)
		}
		return nil
	}

	updated, err := m.store.UpdateService(ctx, id, patch)
	if errors.Is(err, ErrNotFound) {
		m.drop(id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("Manager.UpdateService: %w", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	i := indexOf(m.all, id)
	if i < 0 {
		return nil
	}
	next := append([]model.Service{}, m.all...)
	next[i] = updated
	return m.commitLocked(next)
}

// DeleteService removes the service. Unknown ids are ignored.
func (m *manager) DeleteService(ctx context.Context, id string) error {
	if _, ok := m.get(id); !ok {
		return nil
	}
	if m.store != nil {
		err := m.store.DeleteService(ctx, id)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return fmt.Errorf("Manager.DeleteService: %w", err)
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.commitLocked(without(m.all, id)); err != nil {
		return fmt.Errorf("Manager.DeleteService: %w", err)
	}
	return nil
}

// ToggleService flips isActive. A missing flag counts as active.
func (m *manager) ToggleService(ctx context.Context, id string) error {
	service, ok := m.get(id)
	if !ok {
		return nil
	}
	active := !service.Active()
	if err := m.UpdateService(ctx, id, model.ServicePatch{IsActive: &active}); err != nil {
		return fmt.Errorf("Manager.ToggleService: %w", err)
	}
	return nil
}

func (m *manager) RefreshServiceStatus(ctx context.Context, id string) error {
	defer m.startLoading()()

	if m.kuma != nil {
		ok, err := m.syncWithUptimeKuma(ctx, id)
		if ok {
			return err
		}
		m.logger.Warn("uptime kuma sync failed, using status heuristic", zap.Error(err))
	}

	var updates []statusUpdate
	for _, s := range m.AllServices() {
		if id != "" && s.ID != id {
			continue
		}
		status, uptime := m.heuristic.Next(s.UptimePercentage)
		updates = append(updates, statusUpdate{id: s.ID, status: status, uptime: uptime})
	}
	if err := m.applyStatus(ctx, updates); err != nil {
		return fmt.Errorf("Manager.RefreshServiceStatus: %w", err)
	}
	return nil
}

func (m *manager) SyncWithUptimeKuma(ctx context.Context) (bool, error) {
	if m.kuma == nil {
		return false, nil
	}
	defer m.startLoading()()
	return m.syncWithUptimeKuma(ctx, "")
}

// syncWithUptimeKuma applies the Uptime Kuma status to monitored services. It reports false only when the
// monitors could not be read; a failure to push one service does not stop the others.
func (m *manager) syncWithUptimeKuma(ctx context.Context, id string) (bool, error) {
	monitors, err := m.kuma.GetMonitors(ctx)
	if err != nil {
		return false, fmt.Errorf("Manager.SyncWithUptimeKuma: %w", err)
	}

	var updates []statusUpdate
	for _, s := range m.AllServices() {
		if !s.IsMonitored || (id != "" && s.ID != id) {
			continue
		}
		monitor, ok := MatchMonitor(s, monitors)
		if !ok {
			m.logger.Debug("no uptime kuma monitor for service", zap.String("service_id", s.ID), zap.String("service_name", s.Name))
			continue
		}
		updates = append(updates, statusUpdate{
			id:     s.ID,
			status: monitor.Status,
			uptime: m.heuristic.Adjust(monitor.Status, s.UptimePercentage),
		})
	}
	if err = m.applyStatus(ctx, updates); err != nil {
		return true, fmt.Errorf("Manager.SyncWithUptimeKuma: %w", err)
	}
	return true, nil
}

// applyStatus writes status and uptime together onto the current records, leaving their other fields alone.
// With a store every update is pushed first and only the accepted ones are applied.
func (m *manager) applyStatus(ctx context.Context, updates []statusUpdate) error {
	var errs []error
	accepted := make([]statusUpdate, 0, len(updates))
	var gone []string
	for _, u := range updates {
		if m.store == nil {
			accepted = append(accepted, u)
			continue
		}
		status, uptime := u.status, u.uptime
		saved, err := m.store.UpdateService(ctx, u.id, model.ServicePatch{Status: &status, UptimePercentage: &uptime})
		if errors.Is(err, ErrNotFound) {
			gone = append(gone, u.id)
			continue
		}
		if err != nil {
			m.logger.Error("failed to push service status", zap.String("service_id", u.id), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		accepted = append(accepted, statusUpdate{id: u.id, status: saved.Status, uptime: saved.UptimePercentage})
	}
	if len(accepted) == 0 && len(gone) == 0 {
		return errors.Join(errs...)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	next := append([]model.Service{}, m.all...)
	for _, id := range gone {
		next = without(next, id)
	}
	for _, u := range accepted {
		if i := indexOf(next, u.id); i >= 0 {
			next[i].Status = u.status
			next[i].UptimePercentage = model.ClampUptime(u.uptime)
		}
	}
	if err := m.commitLocked(next); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// StartAutoSync refreshes every service each AutoSyncInterval until Close, if the settings enable it.
func (m *manager) StartAutoSync() {
	if !m.settings.AutoSync {
		return
	}
	m.syncOnce.Do(func() {
		ctx, cancel := context.WithCancel(context.Background())
		m.cancel = cancel
		m.done = make(chan struct{})
		go m.autoSync(ctx)
	})
}

func (m *manager) autoSync(ctx context.Context) {
	defer close(m.done)
	m.logger.Info("auto sync started", zap.Duration("interval", AutoSyncInterval))
	for {
		select {
		case <-ctx.Done():
			m.logger.Info("auto sync stopped")
			return
		case <-m.clock.After(AutoSyncInterval):
			if err := m.RefreshServiceStatus(ctx, ""); err != nil {
				m.logger.Error("auto sync failed", zap.Error(err))
			}
		}
	}
}

// Close stops the auto sync and waits for a running refresh to finish.
func (m *manager) Close() {
	m.closeOnce.Do(func() {
		m.syncOnce.Do(func() {})
		if m.cancel != nil {
			m.cancel()
			<-m.done
		}
	})
}

func (m *manager) get(id string) (model.Service, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i := indexOf(m.all, id); i >= 0 {
		return m.all[i], true
	}
	return model.Service{}, false
}

// drop removes a record the store no longer has.
func (m *manager) drop(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.commitLocked(without(m.all, id)); err != nil {
		m.logger.Error("failed to drop stale service", zap.String("service_id", id), zap.Error(err))
	}
}

// commitLocked writes next to the cache and makes it the current list. Without a store a failed write
// keeps the old list. With a store the failure is only logged.
func (m *manager) commitLocked(next []model.Service) error {
	if err := m.writeCache(next); err != nil {
		if m.store == nil {
			return err
		}
		m.logger.Error("failed to write services cache", zap.Error(err))
	}
	m.all = next
	return nil
}

func (m *manager) readCache() ([]model.Service, error) {
	b, ok, err := m.storage.Get(ServicesKey)
	if err != nil || !ok {
		return []model.Service{}, err
	}
	var services []model.Service
	if err = json.Unmarshal(b, &services); err != nil {
		if rmErr := m.storage.Remove(ServicesKey); rmErr != nil {
			m.logger.Warn("failed to remove unreadable services cache", zap.Error(rmErr))
		}
		return []model.Service{}, fmt.Errorf("Manager.readCache: %w", err)
	}
	if services == nil {
		services = []model.Service{}
	}
	return services, nil
}

func (m *manager) writeCache(services []model.Service) error {
	b, err := json.Marshal(services)
	if err != nil {
		return fmt.Errorf("Manager.writeCache: %w", err)
	}
	if err = m.storage.Set(ServicesKey, b); err != nil {
		return fmt.Errorf("Manager.writeCache: %w", err)
	}
	return nil
}

func indexOf(services []model.Service, id string) int {
	for i, s := range services {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func without(services []model.Service, id string) []model.Service {
	next := make([]model.Service, 0, len(services))
	for _, s := range services {
		if s.ID != id {
			next = append(next, s)
		}
	}
	return next
}

// NewManager builds a manager. store may be nil for a purely local cache and kuma nil when Uptime Kuma
// is not configured.
func NewManager(store StoreClient, storage LocalStorage, kuma UptimeKumaClient, heuristic *Heuristic, settings Settings, clk clock.Clock, logger *zap.Logger) Manager {
	if heuristic == nil {
		heuristic = NewHeuristic(nil)
	}
	return &manager{
		store:     store,
		storage:   storage,
		kuma:      kuma,
		heuristic: heuristic,
		settings:  settings,
		clock:     clk,
		logger:    logger,
		newID:     uuid.NewString,
		all:       []model.Service{},
	}
}
