package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/SYD090303/GymFlow/internal/api"
	"github.com/SYD090303/GymFlow/internal/core/domain"
	"github.com/SYD090303/GymFlow/internal/core/ports"
	"github.com/SYD090303/GymFlow/internal/core/service"
	mongodb "github.com/SYD090303/GymFlow/internal/infrastructure/db/mongo"
	redisdb "github.com/SYD090303/GymFlow/internal/infrastructure/db/redis"
	"github.com/SYD090303/GymFlow/internal/infrastructure/queue"
	"github.com/SYD090303/GymFlow/internal/pkg/config"
	"github.com/SYD090303/GymFlow/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "gymflow",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	memberRepo := mongodb.NewMemberRepository(db)
	attendanceRepo := mongodb.NewAttendanceRepository(db)
	planRepo := mongodb.NewPlanRepository(db)
	receptionistRepo := mongodb.NewReceptionistRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)

	ensureIndexes(ctx, log, userRepo, memberRepo, attendanceRepo, receptionistRepo, notificationRepo)

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	notificationService := service.NewNotificationService(notificationRepo, log)

	dispatcher := queue.NewDispatcher(0, notificationService, log)
	dispatcher.Start(ctx)

	guard := redisdb.NewCheckInGuard(rdb)
	attendanceService := service.NewAttendanceService(attendanceRepo, memberRepo, dispatcher, guard, log)
	memberService := service.NewMemberService(memberRepo, planRepo, log)
	planService := service.NewPlanService(planRepo, log)
	receptionistService := service.NewReceptionistService(receptionistRepo, userRepo, log)

	seedOwner(ctx, log, authService, cfg)

	// --- HTTP server ---
	e := api.NewRouter(api.Services{
		Auth:          authService,
		Members:       memberService,
		Attendance:    attendanceService,
		Plans:         planService,
		Receptionists: receptionistService,
		Notifications: notificationService,
	}, api.RouterConfig{
		JWTSecret:            cfg.JWTSecret,
		EndingSoonWindowDays: cfg.EndingSoonWindowDays,
		Mongo:                db,
		Redis:                rdb,
		Log:                  log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}

type indexEnsurer interface {
	EnsureIndexes(ctx context.Context) error
}

func ensureIndexes(ctx context.Context, log zerolog.Logger, ensurers ...indexEnsurer) {
	for _, e := range ensurers {
		if err := e.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("index creation failed")
		}
	}
}

// seedOwner creates the bootstrap OWNER credential on first start so the
// system is usable out of the box. An existing credential is left untouched.
func seedOwner(ctx context.Context, log zerolog.Logger, auth ports.AuthService, cfg *config.Config) {
	_, err := auth.Register(ctx, ports.RegisterInput{
		Email:     cfg.Seed.OwnerEmail,
		Password:  cfg.Seed.OwnerPassword,
		FirstName: "Owner",
		Role:      domain.RoleOwner,
	})
	switch {
	case err == nil:
		log.Info().Str("email", cfg.Seed.OwnerEmail).Msg("seeded owner account")
	case errors.Is(err, domain.ErrUserExists):
		// Already bootstrapped.
	default:
		log.Fatal().Err(err).Msg("owner seed failed")
	}
}
