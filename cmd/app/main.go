// Command app runs the car wash subscription front end: a role-guarded HTTP
// shell over the platform REST backend.
//
// Startup sequence:
//
//  1. Initialize the structured logger.
//  2. Load configuration from environment variables.
//  3. Open the session slot (Redis when configured, a local file otherwise)
//     and hydrate the session store from it.
//  4. Wire the gateway client, domain services and HTTP routes.
//  5. Serve with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/api"
	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/ports"
	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/service"
	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/infrastructure/db/redis"
	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/infrastructure/gateway"
	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/infrastructure/session"
	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/pkg/config"
	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/wizard"
	"github.com/mahenderbytebot-oss/carwash-omni-ui/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	log := logger.Get()
	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Str("backend", cfg.APIBaseURL).
		Msg("starting")

	// Startup gets a deadline so misconfiguration fails fast instead of
	// hanging.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// --- Session slot ---
	var (
		slot ports.SessionSlot
		rdb  *goredis.Client
	)
	if cfg.Session.UseRedis() {
		var err error
		rdb, err = redis.Connect(startupCtx, redis.Config{
			Addr: cfg.Session.RedisAddr,
			DB:   cfg.Session.RedisDB,
		})
		must(log, err, "connect to redis")
		defer func() {
			if cerr := rdb.Close(); cerr != nil {
				log.Error().Err(cerr).Msg("redis close error")
			}
		}()
		slot = session.NewRedisSlot(rdb)
		log.Info().Str("addr", cfg.Session.RedisAddr).Msg("session slot: redis")
	} else {
		slot = session.NewFileSlot(cfg.Session.StateDir)
		log.Info().Str("dir", cfg.Session.StateDir).Msg("session slot: file")
	}

	// --- Session store, hydrated from the slot ---
	store := session.NewStore(startupCtx, slot, log)

	// --- Gateway ---
	gw, err := gateway.New(gateway.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.HTTPTimeout,
	}, store, log)
	must(log, err, "build gateway client")

	// --- Domain services ---
	authService := service.NewAuthService(gw, cfg.ServiceProviderID, log)
	customerService := service.NewCustomerService(gw, log)
	cleanerService := service.NewCleanerService(gw, log)
	vehicleService := service.NewVehicleService(gw, log)
	subscriptionService := service.NewSubscriptionService(gw, log)
	teamService := service.NewTeamService(gw, log)
	washService := service.NewWashService(gw, log)

	wiz := wizard.New(customerService, subscriptionService, wizard.DefaultDebounce, log)

	// --- HTTP server ---
	e := api.NewRouter(api.Dependencies{
		Store:         store,
		Auth:          authService,
		Customers:     customerService,
		Cleaners:      cleanerService,
		Vehicles:      vehicleService,
		Subscriptions: subscriptionService,
		Team:          teamService,
		Washes:        washService,
		Wizard:        wiz,
		BackendURL:    cfg.APIBaseURL,
		Redis:         rdb,
		Log:           log,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-serverErr:
		log.Error().Err(err).Msg("server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
		os.Exit(1)
	}
	log.Info().Msg("server stopped cleanly")
}

// must terminates the process on a startup wiring error. After startup all
// errors are returned and handled explicitly.
func must(log zerolog.Logger, err error, context string) {
	if err != nil {
		log.Fatal().Err(err).Str("context", context).Msg("startup failure")
	}
}
