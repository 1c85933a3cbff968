package calendar

import "time"

// LunarView is the JSON-friendly projection of a lunar date with its
// display labels and year-cycle names attached.
type LunarView struct {
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	Day        int    `json:"day"`
	IsLeap     bool   `json:"is_leap"`
	MonthLabel string `json:"month_label"`
	DayLabel   string `json:"day_label"`
	Festival   string `json:"festival,omitempty"`
	StemBranch string `json:"stem_branch"`
	Zodiac     string `json:"zodiac"`
}

// Day is the full almanac record for one Gregorian date. Lunar is nil
// when the date is outside the table range; SolarTerm is empty when no
// term falls on the date; Holiday is nil when no rule matches.
type Day struct {
	Date      string       `json:"date"` // YYYY-MM-DD
	Weekday   int          `json:"weekday"` // 0=Sunday through 6=Saturday
	Lunar     *LunarView   `json:"lunar,omitempty"`
	SolarTerm string       `json:"solar_term,omitempty"`
	Holiday   *HolidayInfo `json:"holiday,omitempty"`
}

// BuildDay composes the converter, term calculator and holiday
// resolver for a single date.
func BuildDay(date time.Time) Day {
	d := midnightUTC(date)
	lunar := SolarToLunar(d)
	term, _ := SolarTermName(d)
	holiday := HolidayFor(d, lunar, term)

	day := Day{
		Date:      FormatDate(d),
		Weekday:   int(d.Weekday()),
		SolarTerm: term,
		Holiday:   holiday,
	}
	if lunar != nil {
		day.Lunar = &LunarView{
			Year:       lunar.Date.Year,
			Month:      lunar.Date.Month,
			Day:        lunar.Date.Day,
			IsLeap:     lunar.Date.IsLeap,
			MonthLabel: lunar.MonthLabel(),
			DayLabel:   lunar.DayLabel(),
			Festival:   lunar.Festival,
			StemBranch: StemBranchYear(lunar.Date.Year),
			Zodiac:     ZodiacAnimal(lunar.Date.Year),
		}
	}
	return day
}

// Cell is one slot of a month grid: a day record plus whether it
// belongs to the displayed month (grids are padded with neighboring
// months' days).
type Cell struct {
	Day
	InMonth bool `json:"in_month"`
}

// MonthGrid returns the 6-week, Monday-first matrix of day cells for a
// Gregorian month.
func MonthGrid(year int, month time.Month) [][]Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := int(first.Weekday()+6) % 7 // days since Monday
	cursor := first.AddDate(0, 0, -offset)

	rows := make([][]Cell, 0, 6)
	for i := 0; i < 6; i++ {
		week := make([]Cell, 0, 7)
		for j := 0; j < 7; j++ {
			week = append(week, Cell{
				Day:     BuildDay(cursor),
				InMonth: cursor.Month() == month && cursor.Year() == year,
			})
			cursor = cursor.AddDate(0, 0, 1)
		}
		rows = append(rows, week)
	}
	return rows
}

// Observance is one resolved holiday with the Gregorian date it falls
// on.
type Observance struct {
	Date    string      `json:"date"`
	Holiday HolidayInfo `json:"holiday"`
}

// HolidaysInYear scans every date of a Gregorian year and returns each
// day on which a holiday resolves, in date order. Multi-day holidays
// such as Spring Festival contribute one entry per matching day.
func HolidaysInYear(year int) []Observance {
	var out []Observance
	cursor := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for cursor.Year() == year {
		day := BuildDay(cursor)
		if day.Holiday != nil {
			out = append(out, Observance{Date: day.Date, Holiday: *day.Holiday})
		}
		cursor = cursor.AddDate(0, 0, 1)
	}
	return out
}

// ParseDate parses a date string in YYYY-MM-DD format as a UTC
// midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.UTC)
}

// FormatDate formats a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
