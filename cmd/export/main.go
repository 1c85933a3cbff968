// Command export precomputes almanac day records into the SQLite database.
//
// Usage:
//
//	go run ./cmd/export -start 2020 -end 2030 -db data/almanac.db
//
// This tool:
// 1. Creates/opens the SQLite database
// 2. Runs migrations to ensure schema is current
// 3. Computes the full almanac record for every day of the year range
// 4. Upserts the records, so re-running refreshes existing rows
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/wugeer/almanac/internal/calendar"
	"github.com/wugeer/almanac/internal/database"
)

func main() {
	// Parse command line flags
	startYear := flag.Int("start", time.Now().Year(), "First year to export")
	endYear := flag.Int("end", 0, "Last year to export (defaults to start year)")
	dbPath := flag.String("db", "data/almanac.db", "Path to SQLite database")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	if *endYear == 0 {
		*endYear = *startYear
	}

	// Setup logger
	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))

	if err := run(*startYear, *endYear, *dbPath, logger); err != nil {
		logger.Error("export failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("export complete")
}

func run(startYear, endYear int, dbPath string, logger *slog.Logger) error {
	ctx := context.Background()
	startTime := time.Now()

	if startYear > endYear {
		return fmt.Errorf("start year %d is after end year %d", startYear, endYear)
	}
	if startYear < calendar.MinYear || endYear > calendar.MaxSupportedYear() {
		return fmt.Errorf("year range %d-%d outside supported lunar range %d-%d",
			startYear, endYear, calendar.MinYear, calendar.MaxSupportedYear())
	}

	// =========================================================================
	// Step 1: Open database and run migrations
	// =========================================================================
	logger.Info("opening database", slog.String("path", dbPath))

	db, err := database.Open(database.DefaultConfig(dbPath), logger)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	migrated, err := db.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("migrations complete", slog.Int("applied", migrated))

	// =========================================================================
	// Step 2: Compute and upsert day records
	// =========================================================================
	logger.Info("starting export",
		slog.Int("start_year", startYear),
		slog.Int("end_year", endYear),
	)

	var stats exportStats
	cursor := time.Date(startYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	for cursor.Year() <= endYear {
		day := calendar.BuildDay(cursor)
		if err := db.UpsertDay(ctx, database.FromDay(day)); err != nil {
			return fmt.Errorf("upsert day %s: %w", day.Date, err)
		}

		stats.Days++
		if day.Holiday != nil {
			stats.Holidays++
		}
		if day.SolarTerm != "" {
			stats.SolarTerms++
		}

		cursor = cursor.AddDate(0, 0, 1)
		if stats.Days%1000 == 0 {
			logger.Debug("export progress",
				slog.Int("days", stats.Days),
				slog.String("cursor", calendar.FormatDate(cursor)),
			)
		}
	}

	// =========================================================================
	// Step 3: Verify export
	// =========================================================================
	dayCount, err := db.CountDays(ctx)
	if err != nil {
		return fmt.Errorf("count days: %w", err)
	}

	elapsed := time.Since(startTime)

	logger.Info("export verified",
		slog.Int64("rows", dayCount),
		slog.Duration("elapsed", elapsed),
	)

	// Print summary
	fmt.Println()
	fmt.Println("=== Export Summary ===")
	fmt.Printf("Days exported:       %d\n", stats.Days)
	fmt.Printf("Holiday days:        %d\n", stats.Holidays)
	fmt.Printf("Solar term days:     %d\n", stats.SolarTerms)
	fmt.Printf("Rows in database:    %d\n", dayCount)
	fmt.Printf("Time elapsed:        %v\n", elapsed.Round(time.Millisecond))

	return nil
}

// exportStats tracks export statistics.
type exportStats struct {
	Days       int
	Holidays   int
	SolarTerms int
}
