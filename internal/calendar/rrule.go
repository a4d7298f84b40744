package calendar

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

type Frequency string

const (
	Yearly  Frequency = "YEARLY"
	Monthly Frequency = "MONTHLY"
	Weekly  Frequency = "WEEKLY"
	Daily   Frequency = "DAILY"
)

var frequencies = []Frequency{Yearly, Monthly, Weekly, Daily}

// Weekdays in RRULE notation, Monday first as in RFC 5545.
var Weekdays = []string{"MO", "TU", "WE", "TH", "FR", "SA", "SU"}

// Recurrence is the subset of an RRULE the event form can edit.
type Recurrence struct {
	Freq       Frequency
	Interval   int
	Count      int
	Until      time.Time
	ByDay      []string // e.g. "MO", "1FR", "-1SU"
	ByMonthDay []int
	ByMonth    []int
}

// rruleFreqs maps the library frequencies the form offers.
var rruleFreqs = map[rrule.Frequency]Frequency{
	rrule.YEARLY:  Yearly,
	rrule.MONTHLY: Monthly,
	rrule.WEEKLY:  Weekly,
	rrule.DAILY:   Daily,
}

var rruleWeekdays = []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA, rrule.SU}

// editable lists the parts the event form can show. Anything else is rejected
// so that the form never silently drops it.
var editable = []string{"FREQ", "INTERVAL", "COUNT", "UNTIL", "BYDAY", "BYMONTHDAY", "BYMONTH"}

// ParseRRule reads an RRULE value, with or without the "RRULE:" prefix.
func ParseRRule(s string) (Recurrence, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "RRULE:")
	if s == "" {
		return Recurrence{}, fmt.Errorf("empty rrule")
	}

	values := make(map[string]string)
	var parts []string
	for _, part := range strings.Split(s, ";") {
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=")
		if !slices.Contains(editable, key) {
			return Recurrence{}, fmt.Errorf("unsupported rrule part %q", key)
		}
		values[key] = value
		parts = append(parts, part)
	}

	opt, err := rrule.StrToROption(strings.Join(parts, ";"))
	if err != nil {
		return Recurrence{}, fmt.Errorf("rrule %q: %w", s, err)
	}

	freq, ok := rruleFreqs[opt.Freq]
	if !ok {
		return Recurrence{}, fmt.Errorf("unsupported frequency %q", values["FREQ"])
	}
	r := Recurrence{
		Freq:       freq,
		Interval:   1,
		Count:      opt.Count,
		Until:      opt.Until,
		ByMonthDay: opt.Bymonthday,
		ByMonth:    opt.Bymonth,
	}
	if _, ok := values["INTERVAL"]; ok {
		if opt.Interval < 1 {
			return Recurrence{}, fmt.Errorf("invalid interval %d", opt.Interval)
		}
		r.Interval = opt.Interval
	}
	if _, ok := values["COUNT"]; ok && opt.Count < 1 {
		return Recurrence{}, fmt.Errorf("invalid count %d", opt.Count)
	}
	if r.Count > 0 && !r.Until.IsZero() {
		return Recurrence{}, fmt.Errorf("COUNT and UNTIL are mutually exclusive")
	}
	if !inRange(r.ByMonthDay, -31, 31) {
		return Recurrence{}, fmt.Errorf("invalid BYMONTHDAY %q", values["BYMONTHDAY"])
	}
	if !inRange(r.ByMonth, 1, 12) {
		return Recurrence{}, fmt.Errorf("invalid BYMONTH %q", values["BYMONTH"])
	}

	// the library reads "0MO" as plain "MO"
	tokens := strings.Split(values["BYDAY"], ",")
	for i, w := range opt.Byweekday {
		n := w.N()
		if (len(tokens[i]) > 2 && n == 0) || n < -53 || n > 53 {
			return Recurrence{}, fmt.Errorf("invalid BYDAY value %q", tokens[i])
		}
		day := Weekdays[w.Day()]
		if n != 0 {
			day = strconv.Itoa(n) + day
		}
		r.ByDay = append(r.ByDay, day)
	}
	return r, nil
}

// inRange reports whether every n is a non-zero value within [lo, hi].
func inRange(ns []int, lo, hi int) bool {
	for _, n := range ns {
		if n == 0 || n < lo || n > hi {
			return false
		}
	}
	return true
}

// String writes the recurrence back in canonical part order. Ordinal weekdays
// are signed ("+1FR").
func (r Recurrence) String() string {
	opt := rrule.ROption{
		Count:      r.Count,
		Until:      r.Until,
		Bymonth:    r.ByMonth,
		Bymonthday: r.ByMonthDay,
	}
	for f, ours := range rruleFreqs {
		if ours == r.Freq {
			opt.Freq = f
		}
	}
	if r.Interval > 1 {
		opt.Interval = r.Interval
	}
	for _, d := range r.ByDay {
		day, ord := d[len(d)-2:], d[:len(d)-2]
		w := rruleWeekdays[slices.Index(Weekdays, day)]
		if n, err := strconv.Atoi(ord); err == nil {
			w = w.Nth(n)
		}
		opt.Byweekday = append(opt.Byweekday, w)
	}
	return opt.RRuleString()
}
