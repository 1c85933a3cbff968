// Package database provides SQLite storage for exported almanac days.
package database

import (
	"time"

	"github.com/wugeer/almanac/internal/calendar"
)

// AlmanacDay is one exported day record. Nullable fields are absent
// when the date falls outside the lunar table or solar-term window, or
// when the day simply has no term, festival or holiday.
type AlmanacDay struct {
	ID      int64  `json:"id"`
	Date    string `json:"date"`    // ISO 8601 format: YYYY-MM-DD
	Weekday int    `json:"weekday"` // 0=Sunday through 6=Saturday

	LunarYear   *int    `json:"lunar_year"`
	LunarMonth  *int    `json:"lunar_month"`
	LunarDay    *int    `json:"lunar_day"`
	IsLeapMonth bool    `json:"is_leap_month"`
	MonthLabel  *string `json:"month_label"`
	DayLabel    *string `json:"day_label"`
	StemBranch  *string `json:"stem_branch"`
	Zodiac      *string `json:"zodiac"`
	Festival    *string `json:"festival"`

	SolarTerm *string `json:"solar_term"`

	HolidayName     *string `json:"holiday_name"`
	HolidayCategory *string `json:"holiday_category"`
	HolidayNote     *string `json:"holiday_note"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromDay flattens a computed calendar day into a storable record.
func FromDay(day calendar.Day) *AlmanacDay {
	rec := &AlmanacDay{
		Date:    day.Date,
		Weekday: day.Weekday,
	}
	if day.Lunar != nil {
		rec.LunarYear = &day.Lunar.Year
		rec.LunarMonth = &day.Lunar.Month
		rec.LunarDay = &day.Lunar.Day
		rec.IsLeapMonth = day.Lunar.IsLeap
		rec.MonthLabel = &day.Lunar.MonthLabel
		rec.DayLabel = &day.Lunar.DayLabel
		rec.StemBranch = &day.Lunar.StemBranch
		rec.Zodiac = &day.Lunar.Zodiac
		if day.Lunar.Festival != "" {
			rec.Festival = &day.Lunar.Festival
		}
	}
	if day.SolarTerm != "" {
		rec.SolarTerm = &day.SolarTerm
	}
	if day.Holiday != nil {
		category := string(day.Holiday.Category)
		rec.HolidayName = &day.Holiday.Name
		rec.HolidayCategory = &category
		rec.HolidayNote = &day.Holiday.Note
	}
	return rec
}
