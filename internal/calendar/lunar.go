package calendar

import "time"

// lunarEpoch is the Gregorian date of lunar 1900-01-01, the first day
// encoded by the table.
var lunarEpoch = time.Date(MinYear, time.January, 31, 0, 0, 0, 0, time.UTC)

// LunarDate is a date in the Chinese lunisolar calendar. When IsLeap is
// set, Month refers to the leap (doubled) occurrence of that month.
type LunarDate struct {
	Year   int  `json:"year"`
	Month  int  `json:"month"`
	Day    int  `json:"day"`
	IsLeap bool `json:"is_leap"`
}

// LunarInfo is a lunar date plus the traditional festival falling on
// it, if any. Festival is empty for ordinary days.
type LunarInfo struct {
	Date     LunarDate `json:"date"`
	Festival string    `json:"festival,omitempty"`
}

// SolarToLunar converts a Gregorian date to its lunar representation.
// It returns nil for dates before the table epoch (1900-01-31) or past
// the last day the table encodes. Time of day and location are ignored;
// only the calendar date matters.
func SolarToLunar(date time.Time) *LunarInfo {
	d := midnightUTC(date)
	offset := daysBetween(lunarEpoch, d)
	if offset < 0 {
		return nil
	}

	// Walk whole lunar years until the offset falls inside one.
	year := MinYear
	maxYear := MaxSupportedYear()
	for year <= maxYear {
		yearDays := LunarYearDays(year)
		if offset < yearDays {
			break
		}
		offset -= yearDays
		year++
	}
	if year > maxYear {
		return nil
	}

	// Walk months in calendar order, visiting the leap month right
	// after its regular counterpart.
	month := 1
	isLeap := false
	leap := LeapMonth(year)
	for {
		var daysInMonth int
		if isLeap {
			daysInMonth = LeapDays(year)
		} else {
			daysInMonth = MonthDays(year, month)
		}
		if offset < daysInMonth {
			break
		}
		offset -= daysInMonth

		if leap != 0 && month == leap && !isLeap {
			isLeap = true
		} else {
			isLeap = false
			month++
		}
	}

	day := offset + 1

	festival := ""
	if !isLeap {
		festival = lunarFestival(month, day)
		// New Year's Eve is derived (last day of month 12 varies by
		// year) rather than stored, and it wins unconditionally.
		if month == 12 && day == MonthDays(year, 12) {
			festival = FestivalNewYearEve
		}
	}

	return &LunarInfo{
		Date: LunarDate{
			Year:   year,
			Month:  month,
			Day:    day,
			IsLeap: isLeap,
		},
		Festival: festival,
	}
}

// midnightUTC normalizes a time to its calendar date at UTC midnight so
// day arithmetic is exact.
func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the signed whole-day count from a to b. Both must
// be UTC midnights.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
