package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"

	"github.com/ribgsilva/notes-web/app/web/handlers"
	authhandler "github.com/ribgsilva/notes-web/app/web/handlers/v1/auth"
	noteshandler "github.com/ribgsilva/notes-web/app/web/handlers/v1/notes"
	authbiz "github.com/ribgsilva/notes-web/business/v1/auth"
	notebiz "github.com/ribgsilva/notes-web/business/v1/note"
	notestore "github.com/ribgsilva/notes-web/persistence/v1/note"
	"github.com/ribgsilva/notes-web/persistence/v1/schema"
	userstore "github.com/ribgsilva/notes-web/persistence/v1/user"
	"github.com/ribgsilva/notes-web/platform/env"
	"github.com/ribgsilva/notes-web/platform/logger"
	"github.com/ribgsilva/notes-web/platform/web/render"
	"github.com/ribgsilva/notes-web/platform/web/session"
	"github.com/ribgsilva/notes-web/sys"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

func main() {
	log, err := logger.New("Notes-Web")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer func(log *zap.SugaredLogger) {
		_ = log.Sync()
	}(log)

	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =======================================================================================================
	// Setup max procs
	if _, err := maxprocs.Set(); err != nil {
		return fmt.Errorf("maxprocs: %w", err)
	}
	log.Infow("startup", "GOMAXPROCS", runtime.GOMAXPROCS(0))

	// =======================================================================================================
	// Setup configs
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("dotenv: %w", err)
	}

	cfg := &sys.Config{}
	cfg.Http.Port = env.OrDefault(log, "HTTP_PORT", "8080")
	cfg.Http.ReadTimeout = env.DurationDefault(log, "HTTP_READ_TIMEOUT", "5s")
	cfg.Http.IdleTimeout = env.DurationDefault(log, "HTTP_IDLE_TIMEOUT", "120s")
	cfg.Http.WriteTimeout = env.DurationDefault(log, "HTTP_WRITE_TIMEOUT", "10s")
	cfg.Http.ShutdownTimeout = env.DurationDefault(log, "HTTP_SHUTDOWN_TIMEOUT", "60s")
	cfg.Database.Driver = env.OrDefault(log, "DATABASE_DRIVER", "sqlite")
	cfg.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "file:notes.db?_pragma=foreign_keys(1)")
	cfg.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	cfg.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")
	cfg.Cache.ConnectionURL = env.OrDefault(log, "CACHE_CONNECTION_URL", "localhost:6379")
	cfg.Cache.User = env.OrDefault(log, "CACHE_USER", "")
	cfg.Cache.Pass = env.OrDefault(log, "CACHE_PASS", "")
	cfg.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	cfg.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "10s")
	cfg.Cache.NotesTTL = env.DurationDefault(log, "CACHE_NOTES_TTL", "24h")
	cfg.Session.Secret = env.Must(log, "SESSION_SECRET")
	cfg.Session.TTL = env.DurationDefault(log, "SESSION_TTL", "24h")
	cfg.Session.CookieName = env.OrDefault(log, "SESSION_COOKIE", "session")
	cfg.NewRelic.AppName = env.OrDefault(log, "NEW_RELIC_APP_NAME", "notes-web")
	cfg.NewRelic.Licence = env.OrDefault(log, "NEW_RELIC_LICENCE", "")
	cfg.NewRelic.Enabled = env.BoolDefault(log, "NEW_RELIC_ENABLED", "f")
	cfg.NewRelic.ConnectionTimeout = env.DurationDefault(log, "NEW_RELIC_CONNECTION_TIMEOUT", "10s")
	cfg.NewRelic.ShutdownTimeout = env.DurationDefault(log, "NEW_RELIC_SHUTDOWN_TIMEOUT", "10s")

	if cfg.Session.Secret == "" {
		return fmt.Errorf("SESSION_SECRET must be set")
	}

	// =======================================================================================================
	// Setup resources

	// database
	var db *sql.DB
	if err := func() error {
		sqlDb, err := sql.Open(cfg.Database.Driver, cfg.Database.ConnectionURL)
		if err != nil {
			return fmt.Errorf("error to connect to database: %w", err)
		}
		if cfg.Database.Driver == "sqlite" {
			// single writer keeps the embedded store out of lock errors
			sqlDb.SetMaxOpenConns(1)
		}
		dbCtx, dbCancel := context.WithTimeout(context.Background(), cfg.Database.PingTimeout)
		defer dbCancel()
		if err := sqlDb.PingContext(dbCtx); err != nil {
			return fmt.Errorf("could not connect to database: %w", err)
		}
		db = sqlDb
		return nil
	}(); err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("could not close db conn gracefully: %s", err)
		}
	}()

	// redis
	// doing in a func, so I can use defer to cancel the contexts
	var rdb *redis.Client
	if err := func() error {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.ConnectionURL,
			Username: cfg.Cache.User,
			Password: cfg.Cache.Pass,
		})
		rdsCtx, rdsCancel := context.WithTimeout(context.Background(), cfg.Cache.PingTimeout)
		defer rdsCancel()
		if err := rdb.Ping(rdsCtx).Err(); err != nil {
			return fmt.Errorf("could not connect to redis: %w", err)
		}
		return nil
	}(); err != nil {
		return err
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Errorf("could not close redis conn gracefully: %s", err)
		}
	}()

	// =======================================================================================================
	// Database schema

	if err := func() error {
		dbCtx, dbCancel := context.WithTimeout(context.Background(), cfg.Database.OperationTimeout)
		defer dbCancel()
		return schema.NewManager(db, cfg.Database.Driver).Create(dbCtx)
	}(); err != nil {
		return err
	}

	// =======================================================================================================
	// NR

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.NewRelic.AppName),
		newrelic.ConfigLicense(cfg.NewRelic.Licence),
		newrelic.ConfigEnabled(cfg.NewRelic.Enabled),
	)
	if err != nil {
		return err
	}
	if cfg.NewRelic.Enabled {
		if err := nrApp.WaitForConnection(cfg.NewRelic.ConnectionTimeout); err != nil {
			return err
		}
	}
	defer nrApp.Shutdown(cfg.NewRelic.ShutdownTimeout)

	// =======================================================================================================
	// Components

	sessions := session.NewManager(cfg)

	users := userstore.NewStore(db, cfg)
	notes := notestore.NewStore(db, rdb, cfg, log)

	authService := authbiz.NewService(users)
	noteService := notebiz.NewService(notes)

	authHandler := authhandler.New(authService, sessions, log)
	notesHandler := noteshandler.New(noteService, log)

	// =======================================================================================================
	// Router configuration

	router := gin.New()
	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/healthcheck"},
	}), gin.Recovery(), nrgin.Middleware(nrApp))

	render.Attach(router)
	handlers.MapDefaults(router)
	handlers.Map(router, authHandler, notesHandler, sessions)

	// =======================================================================================================
	// App start and shutdown

	svr := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Http.Port),
		Handler:      router,
		ReadTimeout:  cfg.Http.ReadTimeout,
		WriteTimeout: cfg.Http.WriteTimeout,
		IdleTimeout:  cfg.Http.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("started http server")
		serverErrors <- svr.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Infow("shutdown", "status", "shutdown started", "signal", sig)
		defer log.Infow("shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := svr.Shutdown(ctx); err != nil {
			_ = svr.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}
	return nil
}
