// Command resumated is the resumate HTTP service.
// It serves resume analysis and the stored analysis archive over HTTP.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/resumate/resumate/internal/api"
	"github.com/resumate/resumate/internal/history"
	"github.com/resumate/resumate/internal/ingestion"
	"github.com/resumate/resumate/internal/logger"
	"github.com/resumate/resumate/internal/platform"
	"github.com/resumate/resumate/pkg/config"
	"github.com/resumate/resumate/pkg/scoring"
)

var version = "dev"

func main() {
	_ = godotenv.Load()

	if err := newRootCmd(os.Getenv, run).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type serveFunc func(ctx context.Context, cfg *config.Config, log *zap.Logger) error

// newRootCmd builds the resumated command. serve runs once the config and
// logger are ready.
func newRootCmd(getenv func(string) string, serve serveFunc) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "resumated",
		Short: "Resume validation and scoring HTTP service",
		Long: `resumated serves resume validation and analysis over HTTP, archives stored
analyses and re-scores them after rule changes. Settings come from the config
file, then environment variables.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath, getenv)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			log, err := logger.New(cfg.Logging.JSON, cfg.Logging.Debug)
			if err != nil {
				return fmt.Errorf("logger: %w", err)
			}
			defer func() { _ = log.Sync() }()

			if err := serve(cmd.Context(), cfg, log); err != nil {
				log.Error("resumated stopped", zap.Error(err))
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: $RESUMATE_CONFIG)")
	return cmd
}

// loadConfig reads the YAML config (if any) and applies environment
// overrides on top.
func loadConfig(path string, getenv func(string) string) (*config.Config, error) {
	if path == "" {
		path = getenv("RESUMATE_CONFIG")
	}
	cfg := config.DefaultConfig()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := applyEnv(cfg, getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *config.Config, getenv func(string) string) error {
	envOrDefault := func(key, defaultVal string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return defaultVal
	}

	if port := getenv("PORT"); port != "" {
		cfg.Server.Addr = ":" + port
	}
	cfg.Server.Addr = envOrDefault("RESUMATE_ADDR", cfg.Server.Addr)
	if keys := getenv("RESUMATE_API_KEYS"); keys != "" {
		cfg.Server.APIKeys = splitList(keys)
	}
	if origins := getenv("RESUMATE_ALLOWED_ORIGINS"); origins != "" {
		cfg.Server.AllowedOrigins = splitList(origins)
	}
	cfg.Database.URL = envOrDefault("DATABASE_URL", cfg.Database.URL)
	cfg.Storage.Backend = envOrDefault("STORAGE_BACKEND", cfg.Storage.Backend)
	cfg.Storage.Bucket = envOrDefault("STORAGE_BUCKET", cfg.Storage.Bucket)
	cfg.Storage.Region = envOrDefault("STORAGE_REGION", cfg.Storage.Region)
	cfg.Storage.Endpoint = envOrDefault("STORAGE_ENDPOINT", cfg.Storage.Endpoint)
	cfg.Storage.Prefix = envOrDefault("STORAGE_PREFIX", cfg.Storage.Prefix)
	cfg.Storage.LocalDir = envOrDefault("LOCAL_STORAGE_PATH", cfg.Storage.LocalDir)

	for key, dst := range map[string]*int{
		"REPORT_CACHE_SIZE": &cfg.Server.CacheSize,
		"RESCORE_WORKERS":   &cfg.Server.RescoreWorkers,
		"MIN_TEXT_LENGTH":   &cfg.Scoring.MinTextLength,
	} {
		if v := getenv(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return fmt.Errorf("%s must be a positive integer, got %q", key, v)
			}
			*dst = n
		}
	}

	if v := getenv("LOG_JSON"); v != "" {
		cfg.Logging.JSON, _ = strconv.ParseBool(v)
	}
	if v := getenv("LOG_DEBUG"); v != "" {
		cfg.Logging.Debug, _ = strconv.ParseBool(v)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func run(parent context.Context, cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	weights, err := cfg.Weights()
	if err != nil {
		return err
	}
	engine := scoring.NewEngine(weights)

	var (
		db    *sql.DB
		index ingestion.Index
	)
	if cfg.Database.URL != "" {
		db, err = sql.Open("postgres", cfg.Database.URL)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("ping database: %w", err)
		}
		if err := platform.AutoMigrate(db); err != nil {
			return err
		}
		index = history.NewService(db)
	} else {
		log.Warn("no database configured, analysis index is kept in memory")
		index = history.NewMemory()
	}

	storage, err := ingestion.OpenStorage(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer closeStorage(storage, log)
	log.Info("storage ready", zap.String("backend", cfg.Storage.Backend))

	svc := ingestion.NewService(engine, storage, index, log)
	handler := api.NewHandler(svc, api.NewReportCache(cfg.Server.CacheSize), log, api.Options{
		MinTextLength:  cfg.Scoring.MinTextLength,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		RescoreWorkers: cfg.Server.RescoreWorkers,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           newRouter(handler, cfg.Server, databaseCheck(db), log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting resumated", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// closeStorage releases backends that hold a client, such as GCS.
func closeStorage(storage ingestion.StorageClient, log *zap.Logger) {
	c, ok := storage.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		log.Warn("closing storage", zap.Error(err))
		return
	}
	log.Debug("storage closed")
}

// newRouter wires the API behind CORS, request logging and API-key auth.
// The health check stays unauthenticated.
func newRouter(h *api.Handler, cfg config.ServerConfig, check healthCheck, log *zap.Logger) http.Handler {
	apiMux := http.NewServeMux()
	h.RegisterRoutes(apiMux)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", healthHandler(check))
	mux.Handle("/api/", api.APIKeyAuth(cfg.APIKeys)(apiMux))

	return api.CORS(cfg.AllowedOrigins)(api.RequestLog(log)(mux))
}

// healthCheck reports the database schema state. A nil healthCheck means
// the service runs without a database.
type healthCheck func(ctx context.Context) (schemaVersion uint, dirty bool, err error)

// databaseCheck pings db and reads its migration state.
func databaseCheck(db *sql.DB) healthCheck {
	if db == nil {
		return nil
	}
	return func(ctx context.Context) (uint, bool, error) {
		if err := db.PingContext(ctx); err != nil {
			return 0, false, err
		}
		return platform.SchemaVersion(ctx, db)
	}
}

type healthResponse struct {
	Status        string `json:"status"`
	SchemaVersion *uint  `json:"schema_version,omitempty"`
	SchemaDirty   bool   `json:"schema_dirty,omitempty"`
}

func healthHandler(check healthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if check == nil {
			writeHealth(w, http.StatusOK, healthResponse{Status: "ok"})
			return
		}

		schemaVersion, dirty, err := check(r.Context())
		switch {
		case err != nil:
			writeHealth(w, http.StatusServiceUnavailable, healthResponse{Status: "database unreachable"})
		case dirty:
			writeHealth(w, http.StatusServiceUnavailable, healthResponse{
				Status: "schema dirty", SchemaVersion: &schemaVersion, SchemaDirty: true,
			})
		default:
			writeHealth(w, http.StatusOK, healthResponse{Status: "ok", SchemaVersion: &schemaVersion})
		}
	}
}

func writeHealth(w http.ResponseWriter, status int, body healthResponse) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
