package service_manager

import (
	"NYA_Service_Dashboard/internal/dashboard-server/model"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func cachedServices() []model.Service {
	return []model.Service{
		{ID: "1", Name: "Jellyfin", URL: "https://jellyfin.lan", Status: model.ServiceStatusUp, UptimePercentage: 99.5, IsActive: boolPtr(true), IsMonitored: true, MonitorID: "3"},
		{ID: "2", Name: "Nextcloud", URL: "https://cloud.lan", Status: model.ServiceStatusUp, UptimePercentage: 90, IsMonitored: true},
		{ID: "3", Name: "Legacy", URL: "https://legacy.lan", Status: model.ServiceStatusDown, UptimePercentage: 80, IsActive: boolPtr(false)},
	}
}

func seedCache(t *testing.T, storage LocalStorage, services []model.Service) {
	b, err := json.Marshal(services)
	require.NoError(t, err)
	require.NoError(t, storage.Set(ServicesKey, b))
}

func readCache(t *testing.T, storage LocalStorage) []model.Service {
	b, ok, err := storage.Get(ServicesKey)
	require.NoError(t, err)
	require.True(t, ok)
	var services []model.Service
	require.NoError(t, json.Unmarshal(b, &services))
	return services
}

type testDeps struct {
	store     StoreClient
	kuma      UptimeKumaClient
	draws     []float64
	settings  Settings
	storage   LocalStorage
	clock     *testclock.Clock
	preloaded []model.Service
}

func newTestManager(t *testing.T, deps testDeps) *manager {
	if deps.storage == nil {
		deps.storage = NewFileStorage(t.TempDir())
	}
	if deps.clock == nil {
		deps.clock = testclock.NewClock(time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC))
	}
	var heuristic *Heuristic
	if deps.draws != nil {
		heuristic = NewHeuristic(sequence(deps.draws...))
	}
	m := NewManager(deps.store, deps.storage, deps.kuma, heuristic, deps.settings, deps.clock, zap.NewNop()).(*manager)
	if deps.preloaded != nil {
		m.all = deps.preloaded
	}
	return m
}

func TestManager_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serverServices := []model.Service{
		{ID: "10", Name: "Grafana", URL: "https://g.example.com", Status: model.ServiceStatusUnknown},
	}

	testCases := []struct {
		name             string
		useStore         bool
		cache            []byte
		setupMocks       func(store *MockStoreClient)
		expectedErr      error
		expectedServices []model.Service
	}{
		{
			name:             "Local mode reads the cache",
			cache:            mustJSON(t, cachedServices()),
			expectedServices: cachedServices(),
		},
		{
			name:     "Store list replaces the cache",
			useStore: true,
			cache:    mustJSON(t, cachedServices()),
			setupMocks: func(store *MockStoreClient) {
				store.EXPECT().ListServices(gomock.Any()).Return(serverServices, nil)
			},
			expectedServices: serverServices,
		},
		{
			name:     "Store unavailable keeps the cache",
			useStore: true,
			cache:    mustJSON(t, cachedServices()),
			setupMocks: func(store *MockStoreClient) {
				store.EXPECT().ListServices(gomock.Any()).Return(nil, ErrStoreUnavailable)
			},
			expectedErr:      ErrStoreUnavailable,
			expectedServices: cachedServices(),
		},
		{
			name:             "Corrupt cache starts empty",
			cache:            []byte("[{broken"),
			expectedServices: []model.Service{},
		},
		{
			name:             "Missing cache starts empty",
			expectedServices: []model.Service{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			storage := NewFileStorage(t.TempDir())
			if tc.cache != nil {
				require.NoError(t, storage.Set(ServicesKey, tc.cache))
			}
			deps := testDeps{storage: storage}
			if tc.useStore {
				store := NewMockStoreClient(ctrl)
				tc.setupMocks(store)
				deps.store = store
			}
			m := newTestManager(t, deps)

			err := m.Load(context.Background())

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.expectedServices, m.AllServices())
			assert.False(t, m.IsLoading())
		})
	}
}

func TestManager_LoadWritesStoreListToCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockStoreClient(ctrl)
	store.EXPECT().ListServices(gomock.Any()).Return(cachedServices(), nil)
	storage := NewFileStorage(t.TempDir())
	m := newTestManager(t, testDeps{store: store, storage: storage})

	require.NoError(t, m.Load(context.Background()))

	assert.Equal(t, cachedServices(), readCache(t, storage))
}

func TestManager_IsLoading(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockStoreClient(ctrl)
	m := newTestManager(t, testDeps{store: store})
	store.EXPECT().ListServices(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]model.Service, error) {
		assert.True(t, m.IsLoading())
		return []model.Service{}, nil
	})

	require.NoError(t, m.Load(context.Background()))
	assert.False(t, m.IsLoading())
}

func TestManager_IsLoadingDuringStatusUpdates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	kuma := NewMockUptimeKumaClient(ctrl)
	m := newTestManager(t, testDeps{kuma: kuma, draws: []float64{0}, preloaded: cachedServices()})
	kuma.EXPECT().GetMonitors(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]Monitor, error) {
		assert.True(t, m.IsLoading())
		return []Monitor{{ID: "3", Status: model.ServiceStatusUp}}, nil
	}).Times(2)

	ok, err := m.SyncWithUptimeKuma(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, m.IsLoading())

	require.NoError(t, m.RefreshServiceStatus(context.Background(), "1"))
	assert.False(t, m.IsLoading())
}

func TestManager_LoadRemovesCorruptCache(t *testing.T) {
	storage := NewFileStorage(t.TempDir())
	require.NoError(t, storage.Set(ServicesKey, []byte("[{broken")))
	m := newTestManager(t, testDeps{storage: storage})

	require.NoError(t, m.Load(context.Background()))

	_, ok, err := storage.Get(ServicesKey)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, m.AllServices())
}

func TestManager_Services(t *testing.T) {
	m := newTestManager(t, testDeps{preloaded: cachedServices()})

	visible := m.Services()

	require.Len(t, visible, 2)
	assert.Equal(t, "1", visible[0].ID)
	assert.Equal(t, "2", visible[1].ID)
	assert.Len(t, m.AllServices(), 3)
}

func TestManager_VisibleFollowsMutations(t *testing.T) {
	m := newTestManager(t, testDeps{preloaded: cachedServices()})
	ctx := context.Background()

	added, err := m.AddService(ctx, model.ServicePatch{Name: strPtr("Grafana"), URL: strPtr("https://g.example.com")})
	require.NoError(t, err)
	require.NoError(t, m.ToggleService(ctx, "1"))
	require.NoError(t, m.ToggleService(ctx, "3"))
	require.NoError(t, m.UpdateService(ctx, added.ID, model.ServicePatch{IsActive: boolPtr(false)}))
	require.NoError(t, m.DeleteService(ctx, "2"))

	var expected []model.Service
	for _, s := range m.AllServices() {
		if s.IsActive == nil || *s.IsActive {
			expected = append(expected, s)
		}
	}
	assert.Equal(t, expected, m.Services())
	require.Len(t, expected, 1)
	assert.Equal(t, "3", expected[0].ID)
}

func TestManager_AddService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	created := model.Service{ID: "1714557600000", Name: "Grafana", URL: "https://g.example.com", Status: model.ServiceStatusUnknown, IsActive: boolPtr(true)}
	patch := model.ServicePatch{Name: strPtr("Grafana"), URL: strPtr("https://g.example.com")}

	testCases := []struct {
		name        string
		setupMocks  func(store *MockStoreClient)
		expectedErr error
		expectedLen int
	}{
		{
			name: "Success",
			setupMocks: func(store *MockStoreClient) {
				store.EXPECT().CreateService(gomock.Any(), patch).Return(created, nil)
			},
			expectedLen: 4,
		},
		{
			name: "Forbidden",
			setupMocks: func(store *MockStoreClient) {
				store.EXPECT().CreateService(gomock.Any(), patch).Return(model.Service{}, &StoreError{Op: "StoreClient.CreateService", StatusCode: http.StatusForbidden})
			},
			expectedErr: ErrForbidden,
			expectedLen: 3,
		},
		{
			name: "Store unavailable",
			setupMocks: func(store *MockStoreClient) {
				store.EXPECT().CreateService(gomock.Any(), patch).Return(model.Service{}, ErrStoreUnavailable)
			},
			expectedErr: ErrStoreUnavailable,
			expectedLen: 3,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := NewMockStoreClient(ctrl)
			tc.setupMocks(store)
			m := newTestManager(t, testDeps{store: store, preloaded: cachedServices()})

			service, err := m.AddService(context.Background(), patch)

			all := m.AllServices()
			assert.Len(t, all, tc.expectedLen)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Equal(t, cachedServices(), all)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, created, service)
			assert.Equal(t, created, all[3])
		})
	}
}

func TestManager_AddServiceLocal(t *testing.T) {
	storage := NewFileStorage(t.TempDir())
	m := newTestManager(t, testDeps{storage: storage})

	service, err := m.AddService(context.Background(), model.ServicePatch{
		Name:        strPtr("Grafana"),
		URL:         strPtr("https://g.example.com"),
		Description: strPtr("Dashboards"),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, service.ID)
	assert.Equal(t, model.ServiceStatusUnknown, service.Status)
	assert.Equal(t, 0.0, service.UptimePercentage)
	assert.True(t, service.Active())
	assert.False(t, service.IsMonitored)
	assert.Equal(t, "Dashboards", service.Description)
	assert.Equal(t, []model.Service{service}, readCache(t, storage))

	other, err := m.AddService(context.Background(), model.ServicePatch{Name: strPtr("Grafana"), URL: strPtr("https://g.example.com")})
	require.NoError(t, err)
	assert.NotEqual(t, service.ID, other.ID)

	_, err = m.AddService(context.Background(), model.ServicePatch{Name: strPtr("No url")})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Len(t, m.AllServices(), 2)
}

func TestManager_AddServiceLocalCacheFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := NewMockLocalStorage(ctrl)
	storage.EXPECT().Set(ServicesKey, gomock.Any()).Return(errors.New("disk full"))
	m := newTestManager(t, testDeps{storage: storage, preloaded: cachedServices()})

	_, err := m.AddService(context.Background(), model.ServicePatch{Name: strPtr("Grafana"), URL: strPtr("https://g.example.com")})

	assert.Error(t, err)
	assert.Equal(t, cachedServices(), m.AllServices())
}

func TestManager_UpdateService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	patch := model.ServicePatch{Name: strPtr("Jellyfin Media")}
	updated := cachedServices()[0]
	updated.Name = "Jellyfin Media"

	testCases := []struct {
		name             string
		id               string
		setupMocks       func(store *MockStoreClient)
		expectedErr      error
		expectedServices func() []model.Service
	}{
		{
			name: "Success",
			id:   "1",
			setupMocks: func(store *MockStoreClient) {
				store.EXPECT().UpdateService(gomock.Any(), "1", patch).Return(updated, nil)
			},
			expectedServices: func() []model.Service {
				s := cachedServices()
				s[0] = updated
				return s
			},
		},
		{
			name:             "Unknown id is a no-op",
			id:               "999",
			setupMocks:       func(store *MockStoreClient) {},
			expectedServices: cachedServices,
		},
		{
			name: "Deleted on the store drops the local copy",
			id:   "1",
			setupMocks: func(store *MockStoreClient) {
				store.EXPECT().UpdateService(gomock.Any(), "1", patch).Return(model.Service{}, &StoreError{StatusCode: http.StatusNotFound})
			},
			expectedServices: func() []model.Service {
				return cachedServices()[1:]
			},
		},
		{
			name: "Unauthorized leaves services unchanged",
			id:   "1",
			setupMocks: func(store *MockStoreClient) {
				store.EXPECT().UpdateService(gomock.Any(), "1", patch).Return(model.Service{}, &StoreError{StatusCode: http.StatusUnauthorized})
			},
			expectedErr:      ErrUnauthorized,
			expectedServices: cachedServices,
		},
		{
			name: "Store unavailable leaves services unchanged",
			id:   "1",
			setupMocks: func(store *MockStoreClient) {
				store.EXPECT().UpdateService(gomock.Any(), "1", patch).Return(model.Service{}, ErrStoreUnavailable)
			},
			expectedErr:      ErrStoreUnavailable,
			expectedServices: cachedServices,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := NewMockStoreClient(ctrl)
			tc.setupMocks(store)
			m := newTestManager(t, testDeps{store: store, preloaded: cachedServices()})

			err := m.UpdateService(context.Background(), tc.id, patch)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.expectedServices(), m.AllServices())
		})
	}
}

func TestManager_UpdateServiceLocal(t *testing.T) {
	m := newTestManager(t, testDeps{preloaded: cachedServices()})

	require.NoError(t, m.UpdateService(context.Background(), "2", model.ServicePatch{
		Description: strPtr("Files"),
		MonitorID:   func() *model.MonitorID { id := model.MonitorID("4"); return &id }(),
	}))
	require.NoError(t, m.UpdateService(context.Background(), "999", model.ServicePatch{Name: strPtr("Ghost")}))

	expected := cachedServices()
	expected[1].Description = "Files"
	expected[1].MonitorID = "4"
	assert.Equal(t, expected, m.AllServices())
}

func TestManager_DeleteService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	testCases := []struct {
		name        string
		id          string
		setupMocks  func(store *MockStoreClient)
		expectedErr error
		expectedLen int
	}{
		{
			name: "Success",
			id:   "2",
			setupMocks: func(store *MockStoreClient) {
				store.EXPECT().DeleteService(gomock.Any(), "2").Return(nil)
			},
			expectedLen: 2,
		},
		{
			name:        "Unknown id is a no-op",
			id:          "999",
			setupMocks:  func(store *MockStoreClient) {},
			expectedLen: 3,
		},
		{
			name: "Already deleted on the store",
			id:   "2",
			setupMocks: func(store *MockStoreClient) {
				store.EXPECT().DeleteService(gomock.Any(), "2").Return(&StoreError{StatusCode: http.StatusNotFound})
			},
			expectedLen: 2,
		},
		{
			name: "Internal error leaves services unchanged",
			id:   "2",
			setupMocks: func(store *MockStoreClient) {
				store.EXPECT().DeleteService(gomock.Any(), "2").Return(&StoreError{StatusCode: http.StatusInternalServerError, Message: "Failed to delete service"})
			},
			expectedErr: ErrStoreIO,
			expectedLen: 3,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := NewMockStoreClient(ctrl)
			tc.setupMocks(store)
			m := newTestManager(t, testDeps{store: store, preloaded: cachedServices()})

			err := m.DeleteService(context.Background(), tc.id)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Len(t, m.AllServices(), tc.expectedLen)
			if tc.expectedLen == 2 {
				assert.Equal(t, -1, indexOf(m.AllServices(), tc.id))
			}
		})
	}
}

func TestManager_ToggleService(t *testing.T) {
	t.Run("Missing flag counts as active", func(t *testing.T) {
		m := newTestManager(t, testDeps{preloaded: cachedServices()})

		require.NoError(t, m.ToggleService(context.Background(), "2"))

		service, ok := m.get("2")
		require.True(t, ok)
		require.NotNil(t, service.IsActive)
		assert.False(t, *service.IsActive)
	})
	t.Run("Toggling twice restores the flag", func(t *testing.T) {
		m := newTestManager(t, testDeps{preloaded: cachedServices()})
		before := m.AllServices()

		for _, id := range []string{"1", "2", "3"} {
			require.NoError(t, m.ToggleService(context.Background(), id))
			require.NoError(t, m.ToggleService(context.Background(), id))
		}

		after := m.AllServices()
		for i := range before {
			assert.Equal(t, before[i].Active(), after[i].Active())
		}
	})
	t.Run("Store receives only isActive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := NewMockStoreClient(ctrl)
		toggled := cachedServices()[2]
		toggled.IsActive = boolPtr(true)
		store.EXPECT().UpdateService(gomock.Any(), "3", model.ServicePatch{IsActive: boolPtr(true)}).Return(toggled, nil)
		m := newTestManager(t, testDeps{store: store, preloaded: cachedServices()})

		require.NoError(t, m.ToggleService(context.Background(), "3"))

		assert.Len(t, m.Services(), 3)
	})
	t.Run("Unknown id is a no-op", func(t *testing.T) {
		m := newTestManager(t, testDeps{preloaded: cachedServices()})

		assert.NoError(t, m.ToggleService(context.Background(), "999"))
		assert.Equal(t, cachedServices(), m.AllServices())
	})
}

func TestManager_RefreshServiceStatusHeuristic(t *testing.T) {
	// per service: outcome draw, then step draw
	draws := []float64{
		0.1, 0.99, // 1: up 99.5 -> 100
		0.75, 0.5, // 2: degraded 90 -> 89.5
		0.95, 0.5, // 3: down 80 -> 77.5
	}

	t.Run("All services", func(t *testing.T) {
		storage := NewFileStorage(t.TempDir())
		m := newTestManager(t, testDeps{draws: draws, storage: storage, preloaded: cachedServices()})

		require.NoError(t, m.RefreshServiceStatus(context.Background(), ""))

		expected := cachedServices()
		expected[0].Status, expected[0].UptimePercentage = model.ServiceStatusUp, 100
		expected[1].Status, expected[1].UptimePercentage = model.ServiceStatusDegraded, 89.5
		expected[2].Status, expected[2].UptimePercentage = model.ServiceStatusDown, 77.5
		assert.Equal(t, expected, m.AllServices())
		assert.Equal(t, expected, readCache(t, storage))
	})
	t.Run("Single service", func(t *testing.T) {
		m := newTestManager(t, testDeps{draws: []float64{0.95, 0.5}, preloaded: cachedServices()})

		require.NoError(t, m.RefreshServiceStatus(context.Background(), "2"))

		expected := cachedServices()
		expected[1].Status, expected[1].UptimePercentage = model.ServiceStatusDown, 87.5
		assert.Equal(t, expected, m.AllServices())
	})
}

func TestManager_RefreshServiceStatusPushesToStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockStoreClient(ctrl)
	m := newTestManager(t, testDeps{store: store, draws: []float64{0.1, 0.99, 0.75, 0.5, 0.95, 0.5}, preloaded: cachedServices()})

	saved := cachedServices()[0]
	// a rename made elsewhere must not be pulled in by a status push
	saved.Name = "Renamed on server"
	saved.Status, saved.UptimePercentage = model.ServiceStatusUp, 100
	store.EXPECT().UpdateService(gomock.Any(), "1", model.ServicePatch{Status: strPtr(model.ServiceStatusUp), UptimePercentage: floatPtr(100)}).Return(saved, nil)
	store.EXPECT().UpdateService(gomock.Any(), "2", model.ServicePatch{Status: strPtr(model.ServiceStatusDegraded), UptimePercentage: floatPtr(89.5)}).Return(model.Service{}, ErrStoreUnavailable)
	store.EXPECT().UpdateService(gomock.Any(), "3", gomock.Any()).Return(model.Service{}, &StoreError{StatusCode: http.StatusNotFound})

	err := m.RefreshServiceStatus(context.Background(), "")

	assert.ErrorIs(t, err, ErrStoreUnavailable)
	expected := cachedServices()[:2]
	expected[0].Status, expected[0].UptimePercentage = model.ServiceStatusUp, 100
	assert.Equal(t, expected, m.AllServices())
}

func TestManager_SyncWithUptimeKuma(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Not configured", func(t *testing.T) {
		m := newTestManager(t, testDeps{preloaded: cachedServices()})

		ok, err := m.SyncWithUptimeKuma(context.Background())

		assert.False(t, ok)
		assert.NoError(t, err)
		assert.Equal(t, cachedServices(), m.AllServices())
	})
	t.Run("Monitored services only", func(t *testing.T) {
		kuma := NewMockUptimeKumaClient(ctrl)
		kuma.EXPECT().GetMonitors(gomock.Any()).Return([]Monitor{
			{ID: "3", Name: "Jellyfin", Status: model.ServiceStatusDown},
			{ID: "4", Name: "nextcloud", Status: model.ServiceStatusUnknown},
			{ID: "7", Name: "Legacy", Status: model.ServiceStatusUp},
		}, nil)
		m := newTestManager(t, testDeps{kuma: kuma, draws: []float64{0.5}, preloaded: cachedServices()})

		ok, err := m.SyncWithUptimeKuma(context.Background())

		assert.True(t, ok)
		assert.NoError(t, err)
		expected := cachedServices()
		expected[0].Status, expected[0].UptimePercentage = model.ServiceStatusDown, 97
		expected[1].Status = model.ServiceStatusUnknown
		assert.Equal(t, expected, m.AllServices())
	})
	t.Run("Unreachable", func(t *testing.T) {
		kuma := NewMockUptimeKumaClient(ctrl)
		kuma.EXPECT().GetMonitors(gomock.Any()).Return(nil, errors.New("connection refused"))
		m := newTestManager(t, testDeps{kuma: kuma, preloaded: cachedServices()})

		ok, err := m.SyncWithUptimeKuma(context.Background())

		assert.False(t, ok)
		assert.Error(t, err)
		assert.Equal(t, cachedServices(), m.AllServices())
	})
}

func TestManager_RefreshServiceStatusWithUptimeKuma(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Uses monitors when reachable", func(t *testing.T) {
		kuma := NewMockUptimeKumaClient(ctrl)
		kuma.EXPECT().GetMonitors(gomock.Any()).Return([]Monitor{{ID: "3", Status: model.ServiceStatusUp}}, nil)
		m := newTestManager(t, testDeps{kuma: kuma, draws: []float64{0}, preloaded: cachedServices()})

		require.NoError(t, m.RefreshServiceStatus(context.Background(), "1"))

		expected := cachedServices()
		expected[0].UptimePercentage = 99.5
		assert.Equal(t, expected, m.AllServices())
	})
	t.Run("Falls back to the heuristic", func(t *testing.T) {
		kuma := NewMockUptimeKumaClient(ctrl)
		kuma.EXPECT().GetMonitors(gomock.Any()).Return(nil, errors.New("unauthorized"))
		m := newTestManager(t, testDeps{kuma: kuma, draws: []float64{0.95, 0.5}, preloaded: cachedServices()})

		require.NoError(t, m.RefreshServiceStatus(context.Background(), "3"))

		expected := cachedServices()
		expected[2].UptimePercentage = 77.5
		assert.Equal(t, expected, m.AllServices())
	})
}

func TestManager_AutoSync(t *testing.T) {
	t.Run("Refreshes every interval until closed", func(t *testing.T) {
		clk := testclock.NewClock(time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC))
		m := newTestManager(t, testDeps{
			clock:     clk,
			settings:  Settings{AutoSync: true},
			draws:     []float64{0.95, 0.2},
			preloaded: []model.Service{{ID: "1", Name: "Jellyfin", URL: "https://jellyfin.lan", Status: model.ServiceStatusUp, UptimePercentage: 100}},
		})
		m.StartAutoSync()
		defer m.Close()

		require.NoError(t, clk.WaitAdvance(AutoSyncInterval, time.Second, 1))
		assert.Eventually(t, func() bool {
			return m.AllServices()[0].UptimePercentage == 99
		}, time.Second, 10*time.Millisecond)

		require.NoError(t, clk.WaitAdvance(AutoSyncInterval, time.Second, 1))
		assert.Eventually(t, func() bool {
			return m.AllServices()[0].UptimePercentage == 98
		}, time.Second, 10*time.Millisecond)
		assert.Equal(t, model.ServiceStatusDown, m.AllServices()[0].Status)
	})
	t.Run("Disabled", func(t *testing.T) {
		clk := testclock.NewClock(time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC))
		m := newTestManager(t, testDeps{clock: clk, preloaded: cachedServices()})
		m.StartAutoSync()

		assert.Error(t, clk.WaitAdvance(AutoSyncInterval, 50*time.Millisecond, 1))
		m.Close()
		assert.Equal(t, cachedServices(), m.AllServices())
	})
	t.Run("Close is idempotent", func(t *testing.T) {
		m := newTestManager(t, testDeps{settings: Settings{AutoSync: true}})
		m.StartAutoSync()

		m.Close()
		m.Close()
		m.StartAutoSync()
	})
}

func mustJSON(t *testing.T, v any) []byte {
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}
