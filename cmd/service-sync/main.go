package main

import (
	service_manager "NYA_Service_Dashboard/internal/service-manager"
	"NYA_Service_Dashboard/pkg/logger"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/juju/clock"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := service_manager.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer(appConfig.Client.LogFile)
	if err != nil {
		log.Fatal(fmt.Sprintf("open log file error: %v", err))
	}
	defer fileSyncer.Close()
	zapLogger := logger.NewLogger(appConfig.Client.LogLevel, fileSyncer).With(zap.String("service.name", "service-sync"))
	defer zapLogger.Sync()
	fileSyncer.ReloadOnSIGHUP(zapLogger)

	ctx, cancel := context.WithTimeout(context.Background(), 4*appConfig.Client.RequestTimeout)
	defer cancel()

	storage := service_manager.NewFileStorage(appConfig.Client.CacheDir)
	settings, err := service_manager.LoadSettings(storage)
	if err != nil {
		zapLogger.Fatal("failed to load settings", zap.Error(err))
	}

	var store service_manager.StoreClient
	if appConfig.Dashboard.URL != "" {
		store = service_manager.NewStoreClient(appConfig.Dashboard.URL, appConfig.Dashboard.Username, appConfig.Dashboard.Password, appConfig.Client.RequestTimeout)
		if appConfig.Dashboard.Username != "" {
			if err = store.Login(ctx); err != nil {
				zapLogger.Fatal("failed to log in to dashboard", zap.Error(err))
			}
			zapLogger.Info("logged in to dashboard", zap.String("url", appConfig.Dashboard.URL), zap.String("username", appConfig.Dashboard.Username))
		}
		if !settings.UptimeKumaConfigured() {
			integrations, e := store.GetIntegrations(ctx)
			if e != nil {
				zapLogger.Warn("failed to read integrations from dashboard", zap.Error(e))
			} else {
				settings = settings.WithIntegrations(integrations)
				if e = service_manager.SaveSettings(storage, settings); e != nil {
					zapLogger.Error("failed to save settings", zap.Error(e))
				}
			}
		}
	} else {
		zapLogger.Info("no dashboard url configured, using local cache only")
	}

	var kuma service_manager.UptimeKumaClient
	if settings.UptimeKumaConfigured() {
		kuma = service_manager.NewUptimeKumaClient(settings.UptimeKumaURL, settings.UptimeKumaAPIKey, appConfig.Client.RequestTimeout)
		zapLogger.Info("syncing with uptime kuma", zap.String("url", settings.UptimeKumaURL))
	}

	manager := service_manager.NewManager(store, storage, kuma, nil, settings, clock.WallClock, zapLogger)
	if err = manager.Load(ctx); err != nil {
		zapLogger.Error("failed to load services from dashboard, using cache", zap.Error(err))
	}
	if err = manager.RefreshServiceStatus(ctx, ""); err != nil {
		zapLogger.Error("failed to refresh service status", zap.Error(err))
	}
	zapLogger.Info("services refreshed", zap.Int("total", len(manager.AllServices())), zap.Int("visible", len(manager.Services())))

	if !settings.AutoSync {
		zapLogger.Info("auto sync disabled, exiting")
		return
	}
	manager.StartAutoSync()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down service sync...")
	manager.Close()
	zapLogger.Info("service sync exiting")
}
