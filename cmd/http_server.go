package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dschabow91/maintrack/internal"
	"github.com/dschabow91/maintrack/internal/asset"
	assetstorage "github.com/dschabow91/maintrack/internal/asset/storage"
	"github.com/dschabow91/maintrack/internal/auth"
	"github.com/dschabow91/maintrack/internal/handoff"
	handoffstorage "github.com/dschabow91/maintrack/internal/handoff/storage"
	"github.com/dschabow91/maintrack/internal/inventory"
	inventorystorage "github.com/dschabow91/maintrack/internal/inventory/storage"
	"github.com/dschabow91/maintrack/internal/pmschedule"
	pmstorage "github.com/dschabow91/maintrack/internal/pmschedule/storage"
	"github.com/dschabow91/maintrack/internal/report"
	reportstorage "github.com/dschabow91/maintrack/internal/report/storage"
	"github.com/dschabow91/maintrack/internal/template"
	templatestorage "github.com/dschabow91/maintrack/internal/template/storage"
	"github.com/dschabow91/maintrack/internal/transport/rest"
	"github.com/dschabow91/maintrack/internal/user"
	userstorage "github.com/dschabow91/maintrack/internal/user/storage"
	"github.com/dschabow91/maintrack/internal/workorder"
	workorderstorage "github.com/dschabow91/maintrack/internal/workorder/storage"
	"github.com/dschabow91/maintrack/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if sqlDB, err := deps.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				deps.Logger.Error("database close error", "error", err)
			}
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	cfg, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"), cfg.Observability.Logging.Level, cfg.Observability.Logging.Format)
	lg := logger.LoggerWrapper()

	db, err := initDB(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Repositories.
	userRepo := userstorage.NewUserRepository(db)
	workOrderRepo := workorderstorage.NewWorkOrderRepository(db)
	itemRepo := inventorystorage.NewItemRepository(db)
	assetRepo := assetstorage.NewAssetRepository(db)
	pmRepo := pmstorage.NewScheduleRepository(db)
	handoffRepo := handoffstorage.NewHandoffRepository(db)
	reportRepo := reportstorage.NewReportRepository(db)
	templateRepo := templatestorage.NewTemplateRepository(db)

	// Services.
	tokens := auth.NewJWTTokenGenerator(cfg.Security.JWTSecret, cfg.Security.TokenDuration)
	authService := auth.NewService(userRepo, tokens, cfg.Security.BCryptCost, lg)
	userService := user.NewService(userRepo, lg)
	workOrderService := workorder.NewService(workOrderRepo, lg)
	inventoryService := inventory.NewService(itemRepo, lg)
	assetService := asset.NewService(assetRepo, lg)
	pmService := pmschedule.NewService(pmRepo, lg)
	handoffService := handoff.NewService(handoffRepo, lg)
	reportService := report.NewService(reportRepo, lg)
	templateService := template.NewService(templateRepo, lg)

	if err := authService.EnsureBootstrapAdmin(cfg.Bootstrap); err != nil {
		return nil, fmt.Errorf("failed to bootstrap admin: %w", err)
	}

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, db, rest.Handlers{
		Auth:      auth.NewHandler(authService),
		User:      user.NewHandler(userService),
		WorkOrder: workorder.NewHandler(workOrderService),
		Inventory: inventory.NewHandler(inventoryService),
		Asset:     asset.NewHandler(assetService),
		PM:        pmschedule.NewHandler(pmService),
		Handoff:   handoff.NewHandler(handoffService),
		Report:    report.NewHandler(reportService),
		Template:  template.NewHandler(templateService),
	}, lg, cfg.Observability.Metrics.Enabled)

	return &Dependencies{
		Config: cfg,
		DB:     db,
		Router: router,
		Logger: lg,
	}, nil
}

// initDB opens the configured database. SQLite keeps local development and
// tests dependency-free; postgres is the deployment target.
func initDB(cfg internal.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.Source)
	default:
		dialector = postgres.Open(cfg.Source)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
