package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Varun5711/inotebook/internal/auth"
	"github.com/Varun5711/inotebook/internal/cache"
	"github.com/Varun5711/inotebook/internal/config"
	"github.com/Varun5711/inotebook/internal/database"
	"github.com/Varun5711/inotebook/internal/handlers"
	"github.com/Varun5711/inotebook/internal/idgen"
	"github.com/Varun5711/inotebook/internal/logger"
	"github.com/Varun5711/inotebook/internal/middleware"
	"github.com/Varun5711/inotebook/internal/redis"
	"github.com/Varun5711/inotebook/internal/service"
	"github.com/Varun5711/inotebook/internal/storage"
	goredis "github.com/redis/go-redis/v9"
)

type stores struct {
	users  storage.UserStore
	notes  storage.NoteStore
	pinger storage.Pinger
	close  func()
}

func main() {
	log := logger.New("notes-service")
	log.SetStdLog()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	st, err := openStores(ctx, cfg, log)
	cancel()
	if err != nil {
		log.Fatal("failed to open store", "driver", cfg.Database.Driver, "error", err)
	}
	defer st.close()

	jwtSecret := cfg.Auth.JWTSecret
	if jwtSecret == "" {
		jwtSecret = config.DefaultJWTSecret
		log.Warn("JWT_SECRET not set, using default (insecure for production)")
	}
	jwtManager := auth.NewJWTManager(jwtSecret, cfg.Auth.TokenTTL)

	var redisClient *goredis.Client
	if cfg.Redis.Enabled() {
		rctx, rcancel := context.WithTimeout(context.Background(), 5*time.Second)
		rc, err := redis.NewRedisClient(rctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		rcancel()
		if err != nil {
			log.Warn("redis unavailable, profile cache is in-process only", "addr", cfg.Redis.Addr, "error", err)
		} else {
			defer rc.Close()
			redisClient = rc.GetClient()
			log.Info("connected to redis", "addr", cfg.Redis.Addr, "pool", rc.Stats())
		}
	}
	profiles := cache.NewMultiTierCache("inotebook:user:", cfg.Cache.L1Capacity, redisClient, cfg.Cache.L2TTL)

	ids, err := idgen.NewGenerator(cfg.Snowflake.DatacenterID, cfg.Snowflake.WorkerID)
	if err != nil {
		log.Fatal("invalid snowflake settings", "error", err)
	}

	authService := service.NewAuthService(st.users, jwtManager, profiles, cfg.Auth.BcryptCost, logger.New("auth-service"))
	noteService := service.NewNoteService(st.notes, ids, logger.New("note-service"))

	router := handlers.NewRouter(handlers.RouterConfig{
		Auth:           handlers.NewAuthHandler(authService, logger.New("auth-handler")),
		Notes:          handlers.NewNotesHandler(noteService, logger.New("notes-handler")),
		Health:         handlers.NewHealthHandler(st.pinger, cfg.Database.Driver),
		AuthMiddleware: middleware.NewAuthMiddleware(jwtManager, logger.New("auth-middleware")),
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Log:            logger.New("http"),
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("notes service listening", "port", cfg.Server.Port, "store", cfg.Database.Driver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down notes service")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}

	log.Info("notes service stopped")
}

func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	if cfg.Database.Driver == config.StoreDriverMemory {
		mem := storage.NewMemoryStorage()
		log.Warn("using in-memory store, data is lost on restart")
		return &stores{users: mem, notes: mem, pinger: mem, close: func() {}}, nil
	}

	db, err := database.NewDBManager(ctx, database.Config{
		PrimaryDSN:      cfg.Database.PrimaryDSN,
		ReplicaDSNs:     cfg.Database.ReplicaDSNs,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
	})
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, err
		}
		log.Info("database schema up to date")
	}

	log.Info("connected to postgres", "replicas", len(cfg.Database.ReplicaDSNs), "pools", db.Stats())

	return &stores{
		users:  storage.NewUserStorage(db),
		notes:  storage.NewNoteStorage(db),
		pinger: db,
		close:  db.Close,
	}, nil
}
