// Package feed renders a year's holidays and solar terms as an
// iCalendar feed consumable by standard calendar clients.
package feed

import (
	"bytes"
	"fmt"
	"time"

	"github.com/emersion/go-ical"

	"github.com/wugeer/almanac/internal/calendar"
)

const (
	icalVersion = "2.0"
	icalProdID  = "-//wugeer//almanac//CN"
	icalScale   = "GREGORIAN"
	icalDomain  = "almanac.wugeer"
)

// Year builds the iCalendar for one Gregorian year: an all-day event
// per resolved holiday date and per solar term. The encoded bytes are
// deterministic for a given year, so responses may be cached.
func Year(year int) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, icalVersion)
	cal.Props.SetText(ical.PropProductID, icalProdID)
	cal.Props.SetText("X-WR-CALNAME", fmt.Sprintf("中国农历节假日 %d", year))
	cal.Props.SetText(ical.PropCalendarScale, icalScale)

	for _, obs := range calendar.HolidaysInYear(year) {
		date, err := calendar.ParseDate(obs.Date)
		if err != nil {
			return nil, fmt.Errorf("parse observance date %q: %w", obs.Date, err)
		}
		summary := obs.Holiday.Name
		description := fmt.Sprintf("%s · %s", obs.Holiday.Category.Label(), obs.Holiday.Note)
		cal.Children = append(cal.Children,
			allDayEvent("holiday", date, summary, description).Component)
	}

	for _, term := range calendar.SolarTermsInYear(year) {
		description := fmt.Sprintf("二十四节气 · %s", term.Name)
		cal.Children = append(cal.Children,
			allDayEvent("term", term.Date, term.Name, description).Component)
	}

	if len(cal.Children) == 0 {
		return nil, fmt.Errorf("year %d has no events to encode", year)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("encode icalendar: %w", err)
	}
	return buf.Bytes(), nil
}

// allDayEvent builds one date-valued VEVENT. The UID derives from the
// kind and date so re-exports keep stable identities.
func allDayEvent(kind string, date time.Time, summary, description string) *ical.Event {
	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID,
		fmt.Sprintf("%s-%s@%s", kind, date.Format("20060102"), icalDomain))
	event.Props.SetText(ical.PropSummary, summary)
	event.Props.SetText(ical.PropDescription, description)

	start := ical.NewProp(ical.PropDateTimeStart)
	start.SetDate(date)
	event.Props.Set(start)

	stamp := ical.NewProp(ical.PropDateTimeStamp)
	stamp.SetDateTime(date.UTC())
	event.Props.Set(stamp)

	return event
}
