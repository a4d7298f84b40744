package calendar

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/itchan-dev/forumview/internal/domain"
)

// Labels on the generated options are language keys; templates translate them.
const (
	freqLabelPrefix    = "calendar_repeat_"
	weekdayLabelPrefix = "calendar_day_short_"
	monthLabelPrefix   = "calendar_month_"
	lastDayLabel       = "calendar_last_day"
)

// rruleWeekday maps time.Weekday to the RRULE day code.
func rruleWeekday(d time.Weekday) string {
	return Weekdays[(int(d)+6)%7]
}

// NewRecurrenceForm fills the repeat controls of the event form from an
// existing RRULE. An empty rule produces a disabled weekly default anchored
// on start.
func NewRecurrenceForm(rule string, start time.Time) (domain.RecurrenceForm, error) {
	r := Recurrence{
		Freq:       Weekly,
		Interval:   1,
		ByDay:      []string{rruleWeekday(start.Weekday())},
		ByMonthDay: []int{start.Day()},
		ByMonth:    []int{int(start.Month())},
	}
	form := domain.RecurrenceForm{EndMode: "never"}

	if rule != "" {
		parsed, err := ParseRRule(rule)
		if err != nil {
			return domain.RecurrenceForm{}, err
		}
		r = parsed
		form.Enabled = true
		form.RRule = parsed.String()
	}

	form.Interval = r.Interval
	for _, f := range frequencies {
		form.Frequencies = append(form.Frequencies, domain.Option{
			Value:    string(f),
			Label:    freqLabelPrefix + strings.ToLower(string(f)),
			Selected: f == r.Freq,
		})
	}

	checked := make(map[string]bool, len(r.ByDay))
	for _, d := range r.ByDay {
		// ordinals ("1FR") still check the plain weekday box
		checked[d[len(d)-2:]] = true
	}
	for _, d := range Weekdays {
		form.Weekdays = append(form.Weekdays, domain.Option{
			Value:    d,
			Label:    weekdayLabelPrefix + strings.ToLower(d),
			Selected: checked[d],
		})
	}

	for day := 1; day <= 31; day++ {
		form.MonthDays = append(form.MonthDays, domain.Option{
			Value:    strconv.Itoa(day),
			Label:    strconv.Itoa(day),
			Selected: slices.Contains(r.ByMonthDay, day),
		})
	}
	form.MonthDays = append(form.MonthDays, domain.Option{
		Value:    "-1",
		Label:    lastDayLabel,
		Selected: slices.Contains(r.ByMonthDay, -1),
	})

	for m := 1; m <= 12; m++ {
		form.Months = append(form.Months, domain.Option{
			Value:    strconv.Itoa(m),
			Label:    monthLabelPrefix + strconv.Itoa(m),
			Selected: slices.Contains(r.ByMonth, m),
		})
	}

	switch {
	case r.Count > 0:
		form.EndMode = "count"
		form.Count = r.Count
	case !r.Until.IsZero():
		form.EndMode = "until"
		form.Until = r.Until.Format("2006-01-02")
	}
	return form, nil
}
