package teibun

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Context carries the values template expansion needs. Now must be supplied
// by the caller rather than read from a process-wide clock so expansion stays
// a pure function.
type Context struct {
	UserName string
	Now      time.Time
}

// weekdayKanji maps time.Weekday (0 = Sunday) to the Japanese weekday name.
var weekdayKanji = [7]string{"日", "月", "火", "水", "木", "金", "土"}

// schedulePair is a linked pair of calendar tokens. Slot 1 renders
// skipFirst(now, baseDays, altDays); slot 2 renders slot 1 plus one day,
// advanced one further day when that lands on the 1st. Slot 2 never uses the
// configured alternate offset; the two slots follow different rules.
type schedulePair struct {
	slot1Token string
	slot2Token string
	baseDays   int
	altDays    int
}

// schedulePairs are substituted strictly in this order. Adjacent pairs share
// a token literal (pair A's slot 2 and pair B's slot 1 are both {1日後}), so
// an earlier pair's pass consumes the literal before a later pair sees it.
var schedulePairs = []schedulePair{
	{"{0日後}", "{1日後}", 0, 1},
	{"{1日後}", "{2日後}", 1, 2},
	{"{2日後}", "{3日後}", 2, 3},
}

// skipFirst applies the "never land on the 1st" business rule: if now plus
// baseDays falls on the first calendar day of a month, the alternate offset
// is used as-is; it is not itself re-checked against the 1st.
func skipFirst(now time.Time, baseDays, altDays int) time.Time {
	candidate := now.AddDate(0, 0, baseDays)
	if candidate.Day() == 1 {
		return now.AddDate(0, 0, altDays)
	}
	return candidate
}

// formatSchedule renders a schedule date as M月D日（曜）, no zero padding.
func formatSchedule(d time.Time) string {
	return fmt.Sprintf("%d月%d日（%s）", int(d.Month()), d.Day(), weekdayKanji[d.Weekday()])
}

// Expand substitutes every template token in text using ctx. It is total: no
// token is ever invalid, and brace-delimited text that matches no token is
// left verbatim. There is no escape mechanism for literal braces; text that
// happens to contain a token-shaped substring is always substituted.
func Expand(text string, ctx Context) string {
	now := ctx.Now
	tomorrow := now.AddDate(0, 0, 1)
	dayAfter := now.AddDate(0, 0, 2)
	date := now.Format("2006/01/02")
	clock := now.Format("15:04")

	// The colon-suffixed tokens are listed ahead of their plain prefixes so
	// the replacer matches them first.
	text = strings.NewReplacer(
		"{今日:MM/DD}", now.Format("01/02"),
		"{明日:MM/DD}", tomorrow.Format("01/02"),
		"{名前}", ctx.UserName,
		"{name}", ctx.UserName,
		"{日付}", date,
		"{date}", date,
		"{年}", strconv.Itoa(now.Year()),
		"{月}", strconv.Itoa(int(now.Month())),
		"{日}", strconv.Itoa(now.Day()),
		"{時刻}", clock,
		"{time}", clock,
		"{曜日}", weekdayKanji[now.Weekday()],
		"{明日}", tomorrow.Format("2006/01/02"),
		"{明後日}", dayAfter.Format("2006/01/02"),
		"{タイムスタンプ}", now.Format("2006/01/02 15:04:05"),
	).Replace(text)

	// Pairs run in fixed order, each pair's two replacements applied
	// immediately, so a later pair cannot re-match substituted text.
	for _, p := range schedulePairs {
		slot1 := skipFirst(now, p.baseDays, p.altDays)
		slot2 := slot1.AddDate(0, 0, 1)
		if slot2.Day() == 1 {
			slot2 = slot2.AddDate(0, 0, 1)
		}
		text = strings.ReplaceAll(text, p.slot1Token, formatSchedule(slot1))
		text = strings.ReplaceAll(text, p.slot2Token, formatSchedule(slot2))
	}
	return text
}
