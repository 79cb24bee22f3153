package main

import (
	"NYA_Service_Dashboard/internal/dashboard-server/api/handler"
	"NYA_Service_Dashboard/internal/dashboard-server/api/middleware"
	"NYA_Service_Dashboard/internal/dashboard-server/api/routes"
	"NYA_Service_Dashboard/internal/dashboard-server/config"
	"NYA_Service_Dashboard/internal/dashboard-server/event"
	"NYA_Service_Dashboard/internal/dashboard-server/jwt"
	"NYA_Service_Dashboard/internal/dashboard-server/repository"
	"NYA_Service_Dashboard/internal/dashboard-server/service"
	"NYA_Service_Dashboard/pkg/filestore"
	"NYA_Service_Dashboard/pkg/infra"
	"NYA_Service_Dashboard/pkg/logger"
	"NYA_Service_Dashboard/pkg/mail"
	pkgmiddleware "NYA_Service_Dashboard/pkg/middleware"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/juju/clock"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer(appConfig.Server.LogFile)
	if err != nil {
		log.Fatal(fmt.Sprintf("open log file error: %v", err))
	}
	defer fileSyncer.Close()
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, fileSyncer).With(zap.String("service.name", "dashboard-server"))
	defer zapLogger.Sync()
	fileSyncer.ReloadOnSIGHUP(zapLogger)

	// set up data files
	servicesFile := filestore.New(filepath.Join(appConfig.Server.DataDir, repository.ServicesFile), repository.DefaultServices)
	usersFile := filestore.New(filepath.Join(appConfig.Server.DataDir, repository.UsersFile), repository.DefaultUsers)
	ticketsFile := filestore.New(filepath.Join(appConfig.Server.DataDir, repository.TicketsFile), repository.DefaultTickets)
	integrationsFile := filestore.New(filepath.Join(appConfig.Server.DataDir, repository.IntegrationsFile), repository.DefaultIntegrations)
	for _, initFile := range []func() error{servicesFile.Init, usersFile.Init, ticketsFile.Init, integrationsFile.Init} {
		if err = initFile(); err != nil {
			zapLogger.Fatal("failed to initialise data file", zap.Error(err))
		}
	}
	zapLogger.Info("data files ready", zap.String("data_dir", appConfig.Server.DataDir))

	// set up redis
	redisClient, err := infra.NewRedisConnection(infra.RedisConfig{
		Host:     appConfig.Redis.Host,
		Port:     appConfig.Redis.Port,
		Password: appConfig.Redis.Password,
		DB:       appConfig.Redis.DB,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to redis", zap.Error(err))
	} else {
		zapLogger.Info("connected to redis successfully")
	}
	defer redisClient.Close()

	// set up kafka
	var publisher event.Publisher
	if len(appConfig.Kafka.Brokers) > 0 {
		publisher = event.NewKafkaPublisher(infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.Topic))
		zapLogger.Info("publishing service events", zap.Strings("brokers", appConfig.Kafka.Brokers), zap.String("topic", appConfig.Kafka.Topic))
	} else {
		publisher = event.NewNopPublisher()
		zapLogger.Info("no kafka brokers configured, service events disabled")
	}
	defer publisher.Close()

	// set up dependencies
	clk := clock.WallClock
	serviceRepo := repository.NewServiceRepository(servicesFile, clk)
	userRepo := repository.NewUserRepository(usersFile)
	ticketRepo := repository.NewTicketRepository(ticketsFile)
	integrationRepo := repository.NewIntegrationRepository(integrationsFile)
	refreshTokenRepo := repository.NewRefreshTokenRepository(redisClient)

	var mailSender mail.Sender
	if appConfig.Mail.Enabled() {
		mailSender = mail.NewMailSender(mail.Config{
			Email:    appConfig.Mail.Email,
			Password: appConfig.Mail.Password,
			Host:     appConfig.Mail.Host,
			Port:     appConfig.Mail.Port,
		})
	}

	jwtUtils := jwt.NewJwtUtils(appConfig.JWT.SecretKey, appConfig.JWT.AccessTokenTTL, appConfig.JWT.RefreshTokenTTL)
	serviceService := service.NewServiceService(serviceRepo, publisher, clk, zapLogger)
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userService, jwtUtils, refreshTokenRepo, appConfig.Server.UserSessionTTL)
	ticketService := service.NewTicketService(ticketRepo, clk)
	integrationService := service.NewIntegrationService(integrationRepo)
	reportService := service.NewReportService(serviceRepo, mailSender, clk)

	handlerLogger := handler.NewLogger(zapLogger)
	serviceHandler := handler.NewServiceHandler(serviceService, reportService, handlerLogger)
	authHandler := handler.NewAuthHandler(authService, handlerLogger)
	userHandler := handler.NewUserHandler(userService, handlerLogger)
	ticketHandler := handler.NewTicketHandler(ticketService, handlerLogger)
	integrationHandler := handler.NewIntegrationHandler(integrationService, handlerLogger)

	m := middleware.NewAuthMiddleware(authService, zapLogger)
	loginLimiter := pkgmiddleware.NewRateLimiter(appConfig.Login.Every, appConfig.Login.Burst, clk)
	metrics := pkgmiddleware.NewHTTPMetrics(service.NewServicesCollector(serviceRepo, zapLogger))

	// create cronjob for daily report
	cronJob := cron.New()
	if appConfig.Mail.Enabled() {
		_, err = cronJob.AddFunc(appConfig.Server.ReportSchedule, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			zapLogger.Info("cronjob called")
			if e := reportService.SendDailyReport(ctx, appConfig.Mail.AdminMailAddress); e != nil {
				zapLogger.Error("failed to send daily report", zap.Error(e))
			}
		})
		if err != nil {
			zapLogger.Fatal("failed to create cron job for daily report", zap.Error(err))
		}
		cronJob.Start()
	} else {
		zapLogger.Info("mail not configured, daily report disabled")
	}

	// set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), metrics.Instrument())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", metrics.Handler())
	routes.SetUpServiceRoutes(r, serviceHandler, m)
	routes.SetUpAuthRoutes(r, authHandler, m, loginLimiter)
	routes.SetUpUserRoutes(r, userHandler, m)
	routes.SetUpTicketRoutes(r, ticketHandler, m)
	routes.SetUpIntegrationRoutes(r, integrationHandler, m)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	<-cronJob.Stop().Done()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}
