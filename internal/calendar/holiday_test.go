package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lunarOn(month, day int) *LunarInfo {
	return &LunarInfo{Date: LunarDate{Year: 2023, Month: month, Day: day}}
}

func TestHolidayCategoryLabel(t *testing.T) {
	assert.Equal(t, "法定节假日", CategoryStatutory.Label())
	assert.Equal(t, "传统节日", CategoryTraditional.Label())
	assert.Equal(t, "民俗节日", CategoryFolk.Label())
	assert.True(t, CategoryStatutory.IsValid())
	assert.False(t, HolidayCategory("national").IsValid())
}

func TestHolidayForFixedSolarDates(t *testing.T) {
	cases := []struct {
		date time.Time
		want string
	}{
		{date(2023, time.January, 1), "元旦"},
		{date(2023, time.May, 1), "劳动节"},
		{date(2023, time.October, 1), "国庆节"},
	}
	for _, tc := range cases {
		// Fixed solar dates win regardless of lunar state.
		h := HolidayFor(tc.date, nil, "")
		require.NotNil(t, h, "%s", FormatDate(tc.date))
		assert.Equal(t, tc.want, h.Name)
		assert.Equal(t, CategoryStatutory, h.Category)

		h = HolidayFor(tc.date, lunarOn(12, 10), "")
		require.NotNil(t, h)
		assert.Equal(t, tc.want, h.Name, "lunar state must not matter")
	}
}

func TestHolidayForQingming(t *testing.T) {
	h := HolidayFor(date(2023, time.April, 5), lunarOn(2, 15), "清明")
	require.NotNil(t, h)
	assert.Equal(t, "清明节", h.Name)
	assert.Equal(t, CategoryStatutory, h.Category)
}

func TestHolidayForNewYearEveOverridesEverything(t *testing.T) {
	lunar := lunarOn(12, 30)
	lunar.Festival = FestivalNewYearEve
	h := HolidayFor(date(2023, time.January, 21), lunar, "")
	require.NotNil(t, h)
	assert.Equal(t, "除夕", h.Name)
}

func TestHolidayForSpringFestivalDays(t *testing.T) {
	for day := 1; day <= 3; day++ {
		h := HolidayFor(date(2023, time.January, 21+day), lunarOn(1, day), "")
		require.NotNil(t, h, "day %d", day)
		assert.Equal(t, "春节", h.Name, "day %d", day)
	}
	// Day 4 of month 1 is an ordinary day.
	assert.Nil(t, HolidayFor(date(2023, time.January, 25), lunarOn(1, 4), ""))
}

func TestHolidayForLunarStatutory(t *testing.T) {
	h := HolidayFor(date(2023, time.June, 22), lunarOn(5, 5), "夏至")
	require.NotNil(t, h)
	assert.Equal(t, "端午节", h.Name, "夏至 is not a holiday rule, the lunar date wins")

	h = HolidayFor(date(2023, time.September, 29), lunarOn(8, 15), "")
	require.NotNil(t, h)
	assert.Equal(t, "中秋节", h.Name)
}

func TestHolidayForMajorTraditional(t *testing.T) {
	cases := []struct {
		month, day int
		want       string
	}{
		{1, 15, "元宵节"},
		{7, 7, "七夕节"},
		{9, 9, "重阳节"},
	}
	for _, tc := range cases {
		h := HolidayFor(date(2023, time.June, 1), lunarOn(tc.month, tc.day), "")
		require.NotNil(t, h, "%d/%d", tc.month, tc.day)
		assert.Equal(t, tc.want, h.Name)
		assert.Equal(t, CategoryTraditional, h.Category)
	}
}

func TestHolidayForFolk(t *testing.T) {
	cases := []struct {
		month, day int
		want       string
	}{
		{2, 2, "龙抬头"},
		{7, 15, "中元节"},
		{12, 8, "腊八节"},
	}
	for _, tc := range cases {
		h := HolidayFor(date(2023, time.June, 1), lunarOn(tc.month, tc.day), "")
		require.NotNil(t, h, "%d/%d", tc.month, tc.day)
		assert.Equal(t, tc.want, h.Name)
		assert.Equal(t, CategoryFolk, h.Category)
	}

	h := HolidayFor(date(2023, time.December, 22), lunarOn(11, 10), "冬至")
	require.NotNil(t, h)
	assert.Equal(t, "冬至", h.Name)
	assert.Equal(t, CategoryFolk, h.Category)
}

func TestHolidayForNoLunarInfo(t *testing.T) {
	// Lunar-based rules need a lunar representation; solar rules do not.
	assert.Nil(t, HolidayFor(date(2150, time.June, 10), nil, ""))

	h := HolidayFor(date(2150, time.October, 1), nil, "")
	require.NotNil(t, h)
	assert.Equal(t, "国庆节", h.Name)
}

func TestHolidayForOrdinaryDay(t *testing.T) {
	assert.Nil(t, HolidayFor(date(2023, time.March, 14), lunarOn(2, 23), ""))
}
