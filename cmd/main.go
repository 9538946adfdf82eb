package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/config"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/database"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "restaurant-api",
	Short: "Restaurants, pizzas and their prices over HTTP",
	Long:  `restaurant-api serves restaurants, pizzas and the prices restaurants charge for them as a JSON API backed by SQLite or PostgreSQL.`,
	// Serving is the default when no subcommand is given
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Migrate the schema and start the HTTP server",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE:  runMigrate,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Migrate the schema and seed an empty database with sample data",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

// @title Restaurant Pizza API
// @version 1.0
// @description Restaurants, pizzas and the prices restaurants charge for them
// @host localhost:5555
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and the configured level
func setUpLogger(conf *config.Config) {
	level := conf.Level()
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(level)
	database.SetLogLevel(level)

	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}

// bootstrap loads configuration, configures logging and opens the migrated database
func bootstrap() (*config.Config, *gorm.DB, error) {
	conf, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	setUpLogger(conf)

	dbConfig, err := database.ParseDatabaseURI(conf.DatabaseURI)
	if err != nil {
		return nil, nil, fmt.Errorf("parse DB_URI: %w", err)
	}
	log.Infof("Using database: %s", dbConfig.String())

	db, err := database.InitDatabase(dbConfig)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(db); err != nil {
		closeDatabase(db)
		return nil, nil, err
	}
	return conf, db, nil
}

func closeDatabase(db *gorm.DB) {
	if err := database.Close(db); err != nil {
		log.WithError(err).Error("Failed to close database")
	}
}

func runMigrate(cmd *cobra.Command, args []string) error {
	_, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer closeDatabase(db)

	log.Info("Database schema is up to date")
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	_, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer closeDatabase(db)

	_, err = database.Seed(db)
	return err
}

func runServe(cmd *cobra.Command, args []string) error {
	conf, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer closeDatabase(db)

	if conf.SeedOnStart {
		if _, err := database.Seed(db); err != nil {
			return err
		}
	}

	server := &http.Server{
		Addr:    fmt.Sprintf("%v:%d", conf.Host, conf.Port),
		Handler: router.SetupRouter(db),
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		log.Infof("Starting server on %s", server.Addr)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("Server stopped")
	return nil
}
