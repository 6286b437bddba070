// Package wire provides dependency injection for the encore application.
// It creates singleton services with lazy initialization.
package wire

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	cliadapter "github.com/example/encore/internal/adapters/cli"
	"github.com/example/encore/internal/adapters/sqlite"
	"github.com/example/encore/internal/app"
	"github.com/example/encore/internal/config"
	"github.com/example/encore/internal/core/performance"
	"github.com/example/encore/internal/core/setback"
	"github.com/example/encore/internal/core/technique"
	"github.com/example/encore/internal/db"
	"github.com/example/encore/internal/logging"
	"github.com/example/encore/internal/ports/primary"
)

var (
	cfg                *config.Config
	cfgErr             error
	logger             zerolog.Logger
	performanceService primary.PerformanceService
	servicesErr        error
	configOnce         sync.Once
	once               sync.Once
)

// Config returns the configuration resolved from the working directory.
// The result, error included, is computed once.
func Config() (*config.Config, error) {
	configOnce.Do(initConfig)
	return cfg, cfgErr
}

// Logger returns the shell logger. It falls back to the default level when the
// configuration could not be loaded.
func Logger() zerolog.Logger {
	configOnce.Do(initConfig)
	return logger
}

// Catalog returns the technique and setback tables performances are dealt from.
func Catalog() performance.Catalog {
	return performance.Catalog{
		Techniques: technique.Catalog(),
		Setbacks:   setback.Catalog(),
	}
}

// PerformanceService returns the singleton PerformanceService instance.
func PerformanceService() (primary.PerformanceService, error) {
	once.Do(initServices)
	return performanceService, servicesErr
}

func initConfig() {
	logger = logging.New(logging.DefaultLevel, os.Stderr)

	dir, err := os.Getwd()
	if err != nil {
		cfgErr = fmt.Errorf("failed to resolve working directory: %w", err)
		return
	}

	cfg, err = config.Load(dir)
	if err != nil {
		cfgErr = fmt.Errorf("failed to load config: %w", err)
		return
	}
	logger = logging.New(cfg.LogLevel, os.Stderr)
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	configOnce.Do(initConfig)
	if cfgErr != nil {
		servicesErr = cfgErr
		return
	}

	rules, err := cfg.Rules()
	if err != nil {
		servicesErr = fmt.Errorf("failed to build rules: %w", err)
		return
	}

	// In-process journal database
	database, err := db.GetDB()
	if err != nil {
		servicesErr = fmt.Errorf("failed to initialize database: %w", err)
		return
	}

	// Create repository adapters (secondary ports) - sqlite adapters with injected DB
	journalRepo := sqlite.NewJournalRepository(database)

	// Create effect executor with injected repository
	executor := app.NewEffectExecutor(journalRepo, logger)

	// Create services (primary ports implementation)
	performanceService = app.NewPerformanceService(journalRepo, executor, rules, Catalog())
}

// PerformanceAdapter returns a new PerformanceAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func PerformanceAdapter() (*cliadapter.PerformanceAdapter, error) {
	return PerformanceAdapterWithOutput(os.Stdout)
}

// PerformanceAdapterWithOutput returns a new PerformanceAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func PerformanceAdapterWithOutput(out io.Writer) (*cliadapter.PerformanceAdapter, error) {
	service, err := PerformanceService()
	if err != nil {
		return nil, err
	}
	return cliadapter.NewPerformanceAdapter(service, out), nil
}
