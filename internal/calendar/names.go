package calendar

// The sexagenary cycle combines 10 heavenly stems with 12 earthly
// branches, anchored so that year 4 CE is 甲子 (cycle position 0).
var (
	stems    = [10]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}
	branches = [12]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}
	zodiacs  = [12]string{"鼠", "牛", "虎", "兔", "龙", "蛇", "马", "羊", "猴", "鸡", "狗", "猪"}
)

var lunarMonthNames = [12]string{"正", "二", "三", "四", "五", "六", "七", "八", "九", "十", "冬", "腊"}

var lunarDayNames = [30]string{
	"初一", "初二", "初三", "初四", "初五", "初六", "初七", "初八", "初九", "初十",
	"十一", "十二", "十三", "十四", "十五", "十六", "十七", "十八", "十九", "二十",
	"廿一", "廿二", "廿三", "廿四", "廿五", "廿六", "廿七", "廿八", "廿九", "三十",
}

// StemBranchYear returns the sexagenary name of a lunar year, e.g.
// 甲辰 for 2024. Defined for any year, including years before 4 CE.
func StemBranchYear(year int) string {
	return stems[cycleIndex(year-4, 10)] + branches[cycleIndex(year-4, 12)]
}

// ZodiacAnimal returns the zodiac animal of a lunar year, e.g. 龙 for
// 2024. Defined for any year.
func ZodiacAnimal(year int) string {
	return zodiacs[cycleIndex(year-4, 12)]
}

// cycleIndex is a floor mod: the result is always in [0, n) even for
// negative offsets.
func cycleIndex(offset, n int) int {
	i := offset % n
	if i < 0 {
		i += n
	}
	return i
}

// MonthLabel returns the display name of the lunar month, e.g. 正月,
// 腊月, or 闰四月 for a leap month.
func (li *LunarInfo) MonthLabel() string {
	name := lunarMonthNames[0]
	if li.Date.Month >= 1 && li.Date.Month <= 12 {
		name = lunarMonthNames[li.Date.Month-1]
	}
	if li.Date.IsLeap {
		return "闰" + name + "月"
	}
	return name + "月"
}

// DayLabel returns the display name of the lunar day, e.g. 初一 or 廿三.
func (li *LunarInfo) DayLabel() string {
	if li.Date.Day >= 1 && li.Date.Day <= 30 {
		return lunarDayNames[li.Date.Day-1]
	}
	return lunarDayNames[0]
}

// DisplayLabel returns the short label a calendar cell shows for this
// day: the festival name when one falls on it, otherwise the day name.
func (li *LunarInfo) DisplayLabel() string {
	if li.Festival != "" {
		return li.Festival
	}
	return li.DayLabel()
}
