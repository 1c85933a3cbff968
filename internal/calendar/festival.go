package calendar

// FestivalNewYearEve tags the last day of lunar month 12. It is not in
// the static table because the length of month 12 varies by year.
const FestivalNewYearEve = "除夕"

// lunarFestivals maps fixed lunar (month, day) pairs to traditional
// festival names. Leap-month days never carry a festival.
var lunarFestivals = map[[2]int]string{
	{1, 1}:   "春节",
	{1, 15}:  "元宵节",
	{2, 2}:   "龙抬头",
	{5, 5}:   "端午节",
	{7, 7}:   "七夕节",
	{7, 15}:  "中元节",
	{8, 15}:  "中秋节",
	{9, 9}:   "重阳节",
	{12, 8}:  "腊八节",
	{12, 23}: "小年",
}

// lunarFestival returns the festival on a lunar (month, day), or "".
func lunarFestival(month, day int) string {
	return lunarFestivals[[2]int{month, day}]
}
