/*
Package cmd wires the application together: configuration, logger,
persistence (MySQL or in-memory), services, controllers and the HTTP
server with graceful shutdown.
*/
package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"videorental/api"
	apicustomer "videorental/api/customer"
	apifilm "videorental/api/film"
	"videorental/api/health"
	apirental "videorental/api/rental"
	customerapp "videorental/application/customer"
	filmapp "videorental/application/film"
	rentalapp "videorental/application/rental"
	"videorental/config"
	customerdomain "videorental/domain/customer"
	filmdomain "videorental/domain/film"
	rentaldomain "videorental/domain/rental"
	"videorental/domain/shared"
	"videorental/infrastructure/persistence/mocks"
	"videorental/infrastructure/persistence/mysql"
	"videorental/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App Application
type App struct {
	config *config.Config
	router *api.Router
	server *http.Server
	db     *gorm.DB
}

// NewApp builds the application from configuration.
func NewApp(cfg *config.Config) *App {
	if err := logger.Init(&cfg.Log, cfg.App.Env); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	logger.Info("Starting application",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("env", cfg.App.Env),
		zap.String("db_type", cfg.Database.Type))

	var (
		db           *gorm.DB
		customerRepo customerdomain.Repository
		filmRepo     filmdomain.Repository
		rentalRepo   rentaldomain.Repository
		uowFactory   shared.UnitOfWorkFactory
	)

	if cfg.Database.Type == "mysql" {
		db = connectMySQL(cfg)
		customerRepo = mysql.NewCustomerRepository(db)
		filmRepo = mysql.NewFilmRepository(db)
		rentalRepo = mysql.NewRentalRepository(db)
		uowFactory = mysql.NewUnitOfWorkFactory(db)
	} else {
		logger.Info("Using in-memory persistence layer")
		customerRepo = mocks.NewCustomerRepository()
		filmRepo = mocks.NewFilmRepository()
		rentalRepo = mocks.NewRentalRepository()
		uowFactory = mocks.NewUnitOfWorkFactory()
	}

	customerService := customerapp.NewApplicationService(customerRepo, uowFactory)
	filmService := filmapp.NewApplicationService(filmRepo, uowFactory)
	rentalService := rentalapp.NewApplicationService(rentalRepo, customerRepo, filmRepo, uowFactory)

	var sqlDB *sql.DB
	if db != nil {
		sqlDB, _ = db.DB()
	}

	router := api.NewRouter(
		cfg,
		health.NewController(cfg, sqlDB),
		apicustomer.NewController(customerService),
		apifilm.NewController(filmService),
		apirental.NewController(rentalService),
	)
	router.SetupRoutes()

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.GetEngine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return &App{
		config: cfg,
		router: router,
		server: server,
		db:     db,
	}
}

func connectMySQL(cfg *config.Config) *gorm.DB {
	logger.Info("Using MySQL/GORM persistence layer")

	mysqlConfig := &mysql.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Log.Level,
	}

	db, err := mysqlConfig.Connect()
	if err != nil {
		logger.Fatal("Failed to connect to MySQL", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get underlying sql.DB", zap.Error(err))
	}
	if err := sqlDB.Ping(); err != nil {
		logger.Fatal("Failed to ping MySQL", zap.Error(err))
	}

	if cfg.IsDevelopment() {
		if err := mysql.AutoMigrate(db); err != nil {
			logger.Fatal("Failed to auto migrate", zap.Error(err))
		}
	}

	return db
}

// Run starts the HTTP server and blocks until a shutdown signal.
func (a *App) Run() error {
	go func() {
		logger.Info("Server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", zap.Error(err))
		return err
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			sqlDB.Close()
		}
	}

	logger.Info("Server stopped")
	return logger.Sync()
}

// GetEngine returns the gin engine. Test helper.
func (a *App) GetEngine() http.Handler {
	return a.router.GetEngine()
}
