package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStemBranchYear(t *testing.T) {
	cases := map[int]string{
		4:    "甲子", // cycle anchor
		1984: "甲子",
		2023: "癸卯",
		2024: "甲辰",
		2044: "甲子",
	}
	for year, want := range cases {
		assert.Equal(t, want, StemBranchYear(year), "year %d", year)
	}
}

func TestStemBranchYearBeforeAnchor(t *testing.T) {
	// Floor mod: the year before the anchor is the cycle's last entry.
	assert.Equal(t, "癸亥", StemBranchYear(3))
	assert.Equal(t, "甲子", StemBranchYear(4-60))
}

func TestZodiacAnimal(t *testing.T) {
	cases := map[int]string{
		2023: "兔",
		2024: "龙",
		2025: "蛇",
		1900: "鼠",
	}
	for year, want := range cases {
		assert.Equal(t, want, ZodiacAnimal(year), "year %d", year)
	}
}

func TestLunarLabels(t *testing.T) {
	info := SolarToLunar(time.Date(2023, time.March, 22, 0, 0, 0, 0, time.UTC))
	require.NotNil(t, info)
	assert.Equal(t, "闰二月", info.MonthLabel())
	assert.Equal(t, "初一", info.DayLabel())
	assert.Equal(t, "初一", info.DisplayLabel(), "no festival in a leap month")

	cny := SolarToLunar(time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC))
	require.NotNil(t, cny)
	assert.Equal(t, "正月", cny.MonthLabel())
	assert.Equal(t, "春节", cny.DisplayLabel(), "festival replaces the day name")

	laYue := SolarToLunar(time.Date(2023, time.January, 14, 0, 0, 0, 0, time.UTC))
	require.NotNil(t, laYue)
	assert.Equal(t, "腊月", laYue.MonthLabel())
	assert.Equal(t, "廿三", laYue.DayLabel())
}
