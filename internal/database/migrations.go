package database

// migrationsSQL contains all database migrations.
// Migrations are applied in order by version number.
// Each migration should be idempotent (safe to run multiple times).
var migrationsSQL = map[int]string{
	1: migrationV1AlmanacDays,
}

// migrationV1AlmanacDays creates the exported almanac table.
//
// One row per Gregorian date. Lunar columns are NULL for dates outside
// the supported lunar table range; the date itself is still exported so
// consumers get a contiguous range. The date column is unique so
// re-exports upsert instead of duplicating.
const migrationV1AlmanacDays = `
-- Migration 001: exported almanac days

CREATE TABLE IF NOT EXISTS almanac_days (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    date             TEXT NOT NULL UNIQUE,
    weekday          INTEGER NOT NULL CHECK (weekday BETWEEN 0 AND 6),

    lunar_year       INTEGER,
    lunar_month      INTEGER CHECK (lunar_month BETWEEN 1 AND 12),
    lunar_day        INTEGER CHECK (lunar_day BETWEEN 1 AND 30),
    is_leap_month    INTEGER NOT NULL DEFAULT 0,
    month_label      TEXT,
    day_label        TEXT,
    stem_branch      TEXT,
    zodiac           TEXT,
    festival         TEXT,

    solar_term       TEXT,

    holiday_name     TEXT,
    holiday_category TEXT CHECK (holiday_category IN ('statutory', 'traditional', 'folk')),
    holiday_note     TEXT,

    created_at       TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at       TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_almanac_days_holiday ON almanac_days(holiday_name) WHERE holiday_name IS NOT NULL;
CREATE INDEX IF NOT EXISTS idx_almanac_days_solar_term ON almanac_days(solar_term) WHERE solar_term IS NOT NULL;
`
