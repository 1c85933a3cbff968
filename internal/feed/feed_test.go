package feed

import (
	"bytes"
	"strings"
	"testing"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearEncodesValidCalendar(t *testing.T) {
	data, err := Year(2023)
	require.NoError(t, err)

	cal, err := ical.NewDecoder(bytes.NewReader(data)).Decode()
	require.NoError(t, err)

	events := cal.Events()
	// 24 solar terms plus every resolved holiday date.
	assert.Greater(t, len(events), 24)

	summaries := make(map[string]bool)
	uids := make(map[string]bool)
	for _, event := range events {
		summary, err := event.Props.Text(ical.PropSummary)
		require.NoError(t, err)
		summaries[summary] = true

		uid, err := event.Props.Text(ical.PropUID)
		require.NoError(t, err)
		assert.False(t, uids[uid], "duplicate UID %s", uid)
		uids[uid] = true
	}

	for _, want := range []string{"春节", "除夕", "清明", "清明节", "中秋节", "国庆节", "冬至"} {
		assert.True(t, summaries[want], "missing event %s", want)
	}
}

func TestYearIsDeterministic(t *testing.T) {
	first, err := Year(2024)
	require.NoError(t, err)
	second, err := Year(2024)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestYearCalendarName(t *testing.T) {
	data, err := Year(2024)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "2024"), "calendar name carries the year")
}

func TestYearOutsideTermWindowStillHasHolidays(t *testing.T) {
	// 2105 is past the solar-term window but fixed solar holidays
	// and lunar holidays still resolve.
	data, err := Year(2105)
	require.NoError(t, err)

	cal, err := ical.NewDecoder(bytes.NewReader(data)).Decode()
	require.NoError(t, err)
	assert.NotEmpty(t, cal.Events())
}
