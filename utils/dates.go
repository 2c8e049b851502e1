// utils/dates.go
package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/olebedev/when/rules/ru"
)

// DisplayDateLayout is the dd.mm.yyyy format shown to users.
const DisplayDateLayout = "02.01.2006"

var dateRe = regexp.MustCompile(`(\d{1,2})[.\-/](\d{1,2})[.\-/](\d{4})`)

var naturalParser = func() *when.Parser {
	p := when.New(nil)
	p.Add(en.All...)
	p.Add(ru.All...)
	p.Add(common.All...)
	return p
}()

// ParseEventArgs splits "/addevent" arguments into a title and a calendar
// date. An explicit dd.mm.yyyy (also - and / separators) wins; otherwise the
// text is run through a natural-language parser ("next Friday", "завтра")
// anchored at "now" in the user's timezone. ok is false when no date is
// recognizable. An empty title is left empty for the caller to default.
func ParseEventArgs(text, timezone string, now time.Time) (title string, date time.Time, ok bool) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}

	if m := dateRe.FindStringSubmatchIndex(text); m != nil {
		day, _ := strconv.Atoi(text[m[2]:m[3]])
		month, _ := strconv.Atoi(text[m[4]:m[5]])
		year, _ := strconv.Atoi(text[m[6]:m[7]])

		d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
		// time.Date normalizes overflow (31.02 becomes 03.03); reject that.
		if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
			return "", time.Time{}, false
		}
		title = cleanTitle(text[:m[0]] + text[m[1]:])
		return title, d, true
	}

	result, err := naturalParser.Parse(text, now.In(loc))
	if err != nil || result == nil {
		return "", time.Time{}, false
	}
	y, mo, d := result.Time.Date()
	date = time.Date(y, mo, d, 0, 0, 0, 0, loc)
	title = cleanTitle(text[:result.Index] + text[result.Index+len(result.Text):])
	return title, date, true
}

func cleanTitle(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"“”«»`)
}
