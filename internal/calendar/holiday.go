package calendar

import "time"

// HolidayCategory classifies a holiday.
type HolidayCategory string

const (
	// CategoryStatutory marks national statutory holidays with days off.
	CategoryStatutory HolidayCategory = "statutory"

	// CategoryTraditional marks major traditional festivals without
	// statutory days off.
	CategoryTraditional HolidayCategory = "traditional"

	// CategoryFolk marks other folk observances.
	CategoryFolk HolidayCategory = "folk"
)

// Label returns the Chinese display label for a category.
func (c HolidayCategory) Label() string {
	switch c {
	case CategoryStatutory:
		return "法定节假日"
	case CategoryTraditional:
		return "传统节日"
	case CategoryFolk:
		return "民俗节日"
	default:
		return string(c)
	}
}

// IsValid checks if a category is one of the defined values.
func (c HolidayCategory) IsValid() bool {
	switch c {
	case CategoryStatutory, CategoryTraditional, CategoryFolk:
		return true
	}
	return false
}

// HolidayInfo describes one named holiday. Instances are immutable
// package constants; a date resolves to at most one of them.
type HolidayInfo struct {
	Name     string          `json:"name"`
	Category HolidayCategory `json:"category"`
	Note     string          `json:"note"`
}

var (
	holidaySpringFestival = &HolidayInfo{
		Name:     "春节",
		Category: CategoryStatutory,
		Note:     "农历正月初一 · 放假4天（除夕至初三）",
	}
	holidaySpringEve = &HolidayInfo{
		Name:     "除夕",
		Category: CategoryStatutory,
		Note:     "春节前夜 · 合家团圆",
	}
	holidayNewYear = &HolidayInfo{
		Name:     "元旦",
		Category: CategoryStatutory,
		Note:     "公历1月1日 · 放假1天",
	}
	holidayLaborDay = &HolidayInfo{
		Name:     "劳动节",
		Category: CategoryStatutory,
		Note:     "公历5月1日 · 放假2天",
	}
	holidayDragonBoat = &HolidayInfo{
		Name:     "端午节",
		Category: CategoryStatutory,
		Note:     "农历五月初五 · 放假1天",
	}
	holidayMidAutumn = &HolidayInfo{
		Name:     "中秋节",
		Category: CategoryStatutory,
		Note:     "农历八月十五 · 放假1天",
	}
	holidayNationalDay = &HolidayInfo{
		Name:     "国庆节",
		Category: CategoryStatutory,
		Note:     "公历10月1日至3日 · 放假3天",
	}
	holidayQingming = &HolidayInfo{
		Name:     "清明节",
		Category: CategoryStatutory,
		Note:     "清明时节 · 踏青祭祖 · 放假1天",
	}
	holidayLantern = &HolidayInfo{
		Name:     "元宵节",
		Category: CategoryTraditional,
		Note:     "农历正月十五 · 元宵赏灯",
	}
	holidayQixi = &HolidayInfo{
		Name:     "七夕节",
		Category: CategoryTraditional,
		Note:     "农历七月初七 · 牛郎织女传说",
	}
	holidayChongyang = &HolidayInfo{
		Name:     "重阳节",
		Category: CategoryTraditional,
		Note:     "农历九月初九 · 登高敬老",
	}
	holidayLongtaitou = &HolidayInfo{
		Name:     "龙抬头",
		Category: CategoryFolk,
		Note:     "农历二月初二 · 春耕开犁",
	}
	holidayZhongyuan = &HolidayInfo{
		Name:     "中元节",
		Category: CategoryFolk,
		Note:     "农历七月十五 · 中元祭祖",
	}
	holidayLaba = &HolidayInfo{
		Name:     "腊八节",
		Category: CategoryFolk,
		Note:     "农历腊月初八 · 喝腊八粥",
	}
	holidayDongzhi = &HolidayInfo{
		Name:     "冬至",
		Category: CategoryFolk,
		Note:     "冬至日 · 最重要节气之一",
	}
)

// solarHolidays are the fixed Gregorian-date statutory holidays.
var solarHolidays = []struct {
	month time.Month
	day   int
	info  *HolidayInfo
}{
	{time.January, 1, holidayNewYear},
	{time.May, 1, holidayLaborDay},
	{time.October, 1, holidayNationalDay},
}

// HolidayFor resolves which holiday, if any, falls on a Gregorian date.
// lunar may be nil (out of table range) and solarTerm may be empty.
// Rules are evaluated in fixed priority order and the first match wins:
//
//  1. fixed solar-date statutory holidays
//  2. Qingming (by solar term)
//  3. lunar statutory holidays (incl. New Year's Eve and the first
//     three days of month 1)
//  4. major traditional festivals
//  5. folk observances, incl. Dongzhi (by solar term)
//
// Returns nil when no rule matches.
func HolidayFor(date time.Time, lunar *LunarInfo, solarTerm string) *HolidayInfo {
	if h := solarHoliday(date); h != nil {
		return h
	}
	if solarTerm == "清明" {
		return holidayQingming
	}
	if h := lunarStatutoryHoliday(lunar); h != nil {
		return h
	}
	if h := majorTraditionalHoliday(lunar); h != nil {
		return h
	}
	return folkHoliday(lunar, solarTerm)
}

func solarHoliday(date time.Time) *HolidayInfo {
	for _, h := range solarHolidays {
		if date.Month() == h.month && date.Day() == h.day {
			return h.info
		}
	}
	return nil
}

func lunarStatutoryHoliday(lunar *LunarInfo) *HolidayInfo {
	if lunar == nil {
		return nil
	}
	if lunar.Festival == FestivalNewYearEve {
		return holidaySpringEve
	}
	// Spring Festival covers the first three days of month 1; the eve
	// is caught above.
	if lunar.Date.Month == 1 && lunar.Date.Day <= 3 {
		return holidaySpringFestival
	}
	switch [2]int{lunar.Date.Month, lunar.Date.Day} {
	case [2]int{5, 5}:
		return holidayDragonBoat
	case [2]int{8, 15}:
		return holidayMidAutumn
	}
	return nil
}

func majorTraditionalHoliday(lunar *LunarInfo) *HolidayInfo {
	if lunar == nil {
		return nil
	}
	switch [2]int{lunar.Date.Month, lunar.Date.Day} {
	case [2]int{1, 15}:
		return holidayLantern
	case [2]int{7, 7}:
		return holidayQixi
	case [2]int{9, 9}:
		return holidayChongyang
	}
	return nil
}

func folkHoliday(lunar *LunarInfo, solarTerm string) *HolidayInfo {
	if lunar != nil {
		switch [2]int{lunar.Date.Month, lunar.Date.Day} {
		case [2]int{2, 2}:
			return holidayLongtaitou
		case [2]int{7, 15}:
			return holidayZhongyuan
		case [2]int{12, 8}:
			return holidayLaba
		}
	}
	if solarTerm == "冬至" {
		return holidayDongzhi
	}
	return nil
}
