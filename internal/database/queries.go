package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// =============================================================================
// Error Types
// =============================================================================

var (
	// ErrNotFound is returned when a requested record doesn't exist
	ErrNotFound = errors.New("not found")
)

// IsNotFound checks if an error is a not-found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// =============================================================================
// Helper Functions
// =============================================================================

// parseTimestamp parses a timestamp from SQLite TEXT format.
// Tries multiple formats and returns the zero time if parsing fails.
func parseTimestamp(ns sql.NullString) time.Time {
	if !ns.Valid || ns.String == "" {
		return time.Time{}
	}

	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05.999999",
	} {
		if t, err := time.Parse(layout, ns.String); err == nil {
			return t
		}
	}

	return time.Time{}
}

const almanacDayColumns = `
	id, date, weekday,
	lunar_year, lunar_month, lunar_day, is_leap_month,
	month_label, day_label, stem_branch, zodiac, festival,
	solar_term,
	holiday_name, holiday_category, holiday_note,
	created_at, updated_at`

// scanAlmanacDay scans one almanac_days row.
func scanAlmanacDay(row interface{ Scan(dest ...any) error }) (*AlmanacDay, error) {
	var day AlmanacDay
	var createdAt, updatedAt sql.NullString

	err := row.Scan(
		&day.ID,
		&day.Date,
		&day.Weekday,
		&day.LunarYear,
		&day.LunarMonth,
		&day.LunarDay,
		&day.IsLeapMonth,
		&day.MonthLabel,
		&day.DayLabel,
		&day.StemBranch,
		&day.Zodiac,
		&day.Festival,
		&day.SolarTerm,
		&day.HolidayName,
		&day.HolidayCategory,
		&day.HolidayNote,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	day.CreatedAt = parseTimestamp(createdAt)
	day.UpdatedAt = parseTimestamp(updatedAt)
	return &day, nil
}

// =============================================================================
// Almanac Day Queries
// =============================================================================

// UpsertDay inserts a day record, replacing any previous export of the
// same date.
func (db *DB) UpsertDay(ctx context.Context, day *AlmanacDay) error {
	query := `
		INSERT INTO almanac_days (
			date, weekday,
			lunar_year, lunar_month, lunar_day, is_leap_month,
			month_label, day_label, stem_branch, zodiac, festival,
			solar_term,
			holiday_name, holiday_category, holiday_note
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			weekday = excluded.weekday,
			lunar_year = excluded.lunar_year,
			lunar_month = excluded.lunar_month,
			lunar_day = excluded.lunar_day,
			is_leap_month = excluded.is_leap_month,
			month_label = excluded.month_label,
			day_label = excluded.day_label,
			stem_branch = excluded.stem_branch,
			zodiac = excluded.zodiac,
			festival = excluded.festival,
			solar_term = excluded.solar_term,
			holiday_name = excluded.holiday_name,
			holiday_category = excluded.holiday_category,
			holiday_note = excluded.holiday_note,
			updated_at = datetime('now')
	`

	_, err := db.ExecContext(ctx, query,
		day.Date,
		day.Weekday,
		day.LunarYear,
		day.LunarMonth,
		day.LunarDay,
		day.IsLeapMonth,
		day.MonthLabel,
		day.DayLabel,
		day.StemBranch,
		day.Zodiac,
		day.Festival,
		day.SolarTerm,
		day.HolidayName,
		day.HolidayCategory,
		day.HolidayNote,
	)
	if err != nil {
		return fmt.Errorf("upsert almanac day %s: %w", day.Date, err)
	}

	return nil
}

// GetDayByDate retrieves the record for a date in YYYY-MM-DD form.
// Returns ErrNotFound if the date was never exported.
func (db *DB) GetDayByDate(ctx context.Context, date string) (*AlmanacDay, error) {
	query := `SELECT ` + almanacDayColumns + ` FROM almanac_days WHERE date = ?`

	day, err := scanAlmanacDay(db.QueryRowContext(ctx, query, date))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get almanac day %s: %w", date, err)
	}

	return day, nil
}

// GetDaysByRange retrieves all exported records in [start, end]
// inclusive, ordered by date. Dates are YYYY-MM-DD strings, which sort
// lexicographically in date order.
func (db *DB) GetDaysByRange(ctx context.Context, start, end string) ([]*AlmanacDay, error) {
	query := `SELECT ` + almanacDayColumns + `
		FROM almanac_days
		WHERE date >= ? AND date <= ?
		ORDER BY date`

	rows, err := db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("query almanac range %s..%s: %w", start, end, err)
	}
	defer rows.Close()

	var days []*AlmanacDay
	for rows.Next() {
		day, err := scanAlmanacDay(rows)
		if err != nil {
			return nil, fmt.Errorf("scan almanac day: %w", err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate almanac days: %w", err)
	}

	return days, nil
}

// CountDays returns the number of exported day records.
func (db *DB) CountDays(ctx context.Context) (int64, error) {
	var count int64
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM almanac_days").Scan(&count); err != nil {
		return 0, fmt.Errorf("count almanac days: %w", err)
	}
	return count, nil
}
