package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/wugeer/almanac/internal/database"
)

func TestRunExportsFullYear(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "almanac.db")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if err := run(2024, 2024, dbPath, logger); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	db, err := database.Open(database.DefaultConfig(dbPath), logger)
	if err != nil {
		t.Fatalf("failed to reopen database: %v", err)
	}
	defer db.Close()

	count, err := db.CountDays(context.Background())
	if err != nil {
		t.Fatalf("count days: %v", err)
	}
	if count != 366 {
		t.Errorf("expected 366 rows for leap year 2024, got %d", count)
	}

	// Spring Festival day should carry its lunar and holiday fields.
	day, err := db.GetDayByDate(context.Background(), "2024-02-10")
	if err != nil {
		t.Fatalf("get day: %v", err)
	}
	if day.HolidayName == nil || *day.HolidayName != "春节" {
		t.Errorf("expected holiday 春节 on 2024-02-10, got %+v", day.HolidayName)
	}
}

func TestRunRejectsBadRanges(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "almanac.db")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if err := run(2025, 2024, dbPath, logger); err == nil {
		t.Error("expected error for inverted year range")
	}
	if err := run(1899, 1899, dbPath, logger); err == nil {
		t.Error("expected error for year before the lunar table")
	}
	if err := run(2113, 2113, dbPath, logger); err == nil {
		t.Error("expected error for year past the lunar table")
	}
}
