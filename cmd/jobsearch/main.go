package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"maps"
	"os"
	"runtime/debug"
	"slices"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/jrsteele09/go-jobsearch/internal/config"
	"github.com/jrsteele09/go-jobsearch/internal/logging"
	"github.com/jrsteele09/go-jobsearch/internal/metrics"
	"github.com/jrsteele09/go-jobsearch/persistence/memorydb"
	"github.com/jrsteele09/go-jobsearch/presentation"
	"github.com/jrsteele09/go-jobsearch/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error running job search: %s\n", err)
	}
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	if err := loadDotEnv(config.New().GetDotEnvFile()); err != nil {
		return err
	}

	c := config.New()
	displayAppname(c.GetAppName())

	logger := logging.New(os.Stderr, c.GetLogLevel(), c.GetLogFormat()).With().Str("env", c.GetEnv()).Logger()

	db, err := memorydb.New(
		memorydb.WithLogger(logger),
		memorydb.WithAdaptationFile(c.GetAdaptationFile()),
	)
	if err != nil {
		return fmt.Errorf("memorydb.New: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil && returnError == nil {
			returnError = fmt.Errorf("db.Close: %w", err)
		}
	}()

	reg := prometheus.NewRegistry()
	defer logMetrics(logger, reg)

	auth, err := session.NewAuthenticator(
		session.Deps{Gateway: db, Presenter: presentation.NewConsole(os.Stdout, db)},
		session.WithLogger(logger),
		session.WithMetrics(metrics.New(reg)),
	)
	if err != nil {
		return fmt.Errorf("session.NewAuthenticator: %w", err)
	}

	return newConsole(os.Stdin, os.Stdout, auth, db, logger).launch()
}

// loadDotEnv fills the environment from path. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("godotenv.Load %s: %w", path, err)
	}
	return nil
}

// logMetrics writes the totals recorded during the run as one audit line
func logMetrics(logger zerolog.Logger, g prometheus.Gatherer) {
	totals, err := metrics.Totals(g)
	if err != nil {
		logger.Warn().Err(err).Msg("gathering metrics failed")
		return
	}

	event := logger.Info()
	for _, name := range slices.Sorted(maps.Keys(totals)) {
		event = event.Float64(name, totals[name])
	}
	event.Msg("metrics summary")
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
