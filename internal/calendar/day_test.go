package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDay(t *testing.T) {
	day := BuildDay(date(2024, time.February, 10))

	assert.Equal(t, "2024-02-10", day.Date)
	assert.Equal(t, 6, day.Weekday, "Chinese New Year 2024 was a Saturday")
	require.NotNil(t, day.Lunar)
	assert.Equal(t, 2024, day.Lunar.Year)
	assert.Equal(t, 1, day.Lunar.Month)
	assert.Equal(t, 1, day.Lunar.Day)
	assert.False(t, day.Lunar.IsLeap)
	assert.Equal(t, "正月", day.Lunar.MonthLabel)
	assert.Equal(t, "初一", day.Lunar.DayLabel)
	assert.Equal(t, "春节", day.Lunar.Festival)
	assert.Equal(t, "甲辰", day.Lunar.StemBranch)
	assert.Equal(t, "龙", day.Lunar.Zodiac)
	require.NotNil(t, day.Holiday)
	assert.Equal(t, "春节", day.Holiday.Name)
	assert.Empty(t, day.SolarTerm)
}

func TestBuildDayWithSolarTerm(t *testing.T) {
	day := BuildDay(date(2023, time.April, 5))
	assert.Equal(t, "清明", day.SolarTerm)
	require.NotNil(t, day.Holiday)
	assert.Equal(t, "清明节", day.Holiday.Name)
}

func TestBuildDayOutOfLunarRange(t *testing.T) {
	day := BuildDay(date(2150, time.October, 1))
	assert.Nil(t, day.Lunar, "past the lunar table")
	assert.Empty(t, day.SolarTerm, "past the solar term window")
	require.NotNil(t, day.Holiday, "fixed solar holidays still resolve")
	assert.Equal(t, "国庆节", day.Holiday.Name)
}

func TestMonthGrid(t *testing.T) {
	grid := MonthGrid(2024, time.February)
	require.Len(t, grid, 6)
	for _, week := range grid {
		require.Len(t, week, 7)
	}

	// February 1, 2024 was a Thursday; the grid starts on the Monday
	// of that week.
	assert.Equal(t, "2024-01-29", grid[0][0].Date)
	assert.False(t, grid[0][0].InMonth)

	inMonth := 0
	for _, week := range grid {
		for _, cell := range week {
			if cell.InMonth {
				inMonth++
			}
		}
	}
	assert.Equal(t, 29, inMonth, "2024 is a leap year")

	// Grid cells are consecutive dates.
	first, err := ParseDate(grid[0][0].Date)
	require.NoError(t, err)
	last, err := ParseDate(grid[5][6].Date)
	require.NoError(t, err)
	assert.Equal(t, 41, daysBetween(first, last))
}

func TestHolidaysInYear(t *testing.T) {
	obs := HolidaysInYear(2023)
	require.NotEmpty(t, obs)

	byDate := make(map[string]string)
	for i, o := range obs {
		_, dup := byDate[o.Date]
		require.False(t, dup, "at most one holiday per date: %s", o.Date)
		byDate[o.Date] = o.Holiday.Name
		if i > 0 {
			assert.Less(t, obs[i-1].Date, o.Date, "observances ordered by date")
		}
	}

	assert.Equal(t, "除夕", byDate["2023-01-21"])
	assert.Equal(t, "春节", byDate["2023-01-22"])
	assert.Equal(t, "春节", byDate["2023-01-24"], "three statutory days")
	assert.Equal(t, "元宵节", byDate["2023-02-05"])
	assert.Equal(t, "清明节", byDate["2023-04-05"])
	assert.Equal(t, "端午节", byDate["2023-06-22"])
	assert.Equal(t, "中秋节", byDate["2023-09-29"])
	assert.Equal(t, "国庆节", byDate["2023-10-01"])
	assert.Equal(t, "重阳节", byDate["2023-10-23"])
	assert.Equal(t, "冬至", byDate["2023-12-22"])
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2023-01-22")
	require.NoError(t, err)
	assert.Equal(t, date(2023, time.January, 22), d)
	assert.Equal(t, "2023-01-22", FormatDate(d))

	_, err = ParseDate("22/01/2023")
	assert.Error(t, err)
}
