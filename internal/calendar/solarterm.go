package calendar

import (
	"math"
	"time"
)

// Solar term calculation uses a fixed-coefficient approximation: each
// term's instant is the base instant plus N tropical years plus the
// term's precomputed minute offset within the base year. The constants
// hold to within the needed accuracy only inside [1900, 2100]; outside
// that window no term is reported, independent of the lunar table's
// own bound.
const (
	// SolarTermMinYear and SolarTermMaxYear bound the approximation's
	// validity window.
	SolarTermMinYear = 1900
	SolarTermMaxYear = 2100

	solarTermBaseYear = 1900

	// tropicalYearMs is the length of a mean tropical year in
	// milliseconds.
	tropicalYearMs = 31_556_925_974.7
)

// solarTermBase is the instant of 小寒 in the base year.
var solarTermBase = time.Date(solarTermBaseYear, time.January, 6, 2, 5, 0, 0, time.UTC)

// solarTermNames lists the 24 terms in order within a tropical year,
// starting from 小寒 in early January.
var solarTermNames = [24]string{
	"小寒", "大寒", "立春", "雨水", "惊蛰", "春分", "清明", "谷雨", "立夏", "小满", "芒种", "夏至",
	"小暑", "大暑", "立秋", "处暑", "白露", "秋分", "寒露", "霜降", "立冬", "小雪", "大雪", "冬至",
}

// solarTermOffsets holds each term's offset from 小寒 of the base year,
// in minutes.
var solarTermOffsets = [24]int64{
	0, 21208, 42467, 63836, 85337, 107014, 128867, 150921, 173149, 195551, 218072, 240693,
	263343, 285989, 308563, 331033, 353350, 375494, 397447, 419210, 440795, 462224, 483532, 504758,
}

// SolarTermName reports which of the 24 solar terms falls on the given
// Gregorian date. The second return is false when no term falls on the
// date or the year is outside [SolarTermMinYear, SolarTermMaxYear].
// Terms are roughly 15 days apart, so at most one can match.
func SolarTermName(date time.Time) (string, bool) {
	year := date.Year()
	if year < SolarTermMinYear || year > SolarTermMaxYear {
		return "", false
	}
	for i, name := range solarTermNames {
		term := solarTermInstant(year, i)
		if sameDate(term, date) {
			return name, true
		}
	}
	return "", false
}

// SolarTermDate pairs a term name with the Gregorian date it falls on.
type SolarTermDate struct {
	Name string
	Date time.Time
}

// SolarTermsInYear returns the 24 term dates of a Gregorian year in
// order, or nil outside the supported window.
func SolarTermsInYear(year int) []SolarTermDate {
	if year < SolarTermMinYear || year > SolarTermMaxYear {
		return nil
	}
	terms := make([]SolarTermDate, 0, len(solarTermNames))
	for i, name := range solarTermNames {
		instant := solarTermInstant(year, i)
		terms = append(terms, SolarTermDate{
			Name: name,
			Date: midnightUTC(instant),
		})
	}
	return terms
}

// solarTermInstant computes the approximate instant of term index in
// the given year: base + year offset + term offset, rounded to the
// nearest millisecond.
func solarTermInstant(year, index int) time.Time {
	yearOffset := float64(year-solarTermBaseYear) * tropicalYearMs
	termOffset := float64(solarTermOffsets[index]) * 60_000
	ms := int64(math.Round(yearOffset + termOffset))
	return solarTermBase.Add(time.Duration(ms) * time.Millisecond)
}

// sameDate reports whether two times fall on the same calendar date.
func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
