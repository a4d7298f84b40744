// Package calendar builds calendar grids and the recurrence (RRULE) controls
// of the event form. Evaluating recurrences is left to the calendar backend.
package calendar

import (
	"fmt"
	"time"

	"github.com/itchan-dev/forumview/internal/domain"
)

const dateLayout = "2006-01-02"

type GridOptions struct {
	FirstDay        time.Weekday
	Today           time.Time
	Size            domain.GridSize
	BaseHref        string
	ShowWeekNumbers bool
	Events          map[string][]domain.EventLink // keyed by YYYY-MM-DD
	Holidays        map[string][]string
}

// MonthGrid lays out one month as full weeks starting on opts.FirstDay. Cells
// before the first and after the last day of the month are fillers.
func MonthGrid(year int, month time.Month, opts GridOptions) domain.CalendarGrid {
	if opts.Size == "" {
		opts.Size = domain.GridMain
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	today := opts.Today.Format(dateLayout)

	grid := domain.CalendarGrid{
		Year:            year,
		Month:           int(month),
		MonthName:       month.String(),
		Href:            fmt.Sprintf("%s?month=%s", opts.BaseHref, first.Format("2006-01")),
		Size:            opts.Size,
		PrevHref:        fmt.Sprintf("%s?month=%s", opts.BaseHref, first.AddDate(0, -1, 0).Format("2006-01")),
		NextHref:        fmt.Sprintf("%s?month=%s", opts.BaseHref, first.AddDate(0, 1, 0).Format("2006-01")),
		ShowWeekNumbers: opts.ShowWeekNumbers,
	}
	for i := 0; i < 7; i++ {
		name := time.Weekday((int(opts.FirstDay) + i) % 7).String()
		if opts.Size == domain.GridSmall {
			name = name[:1]
		} else {
			name = name[:3]
		}
		grid.WeekdayNames = append(grid.WeekdayNames, name)
	}

	offset := (int(first.Weekday()) - int(opts.FirstDay) + 7) % 7
	cursor := first.AddDate(0, 0, -offset)
	for !cursor.After(last) {
		_, weekNum := cursor.AddDate(0, 0, 3).ISOWeek()
		week := domain.CalendarWeek{
			Number: weekNum,
			Href:   fmt.Sprintf("%s?view=week&date=%s", opts.BaseHref, cursor.Format(dateLayout)),
		}
		for i := 0; i < 7; i++ {
			week.Days = append(week.Days, gridDay(cursor, month, today, opts))
			cursor = cursor.AddDate(0, 0, 1)
		}
		grid.Weeks = append(grid.Weeks, week)
	}
	return grid
}

func gridDay(d time.Time, month time.Month, today string, opts GridOptions) domain.CalendarDay {
	if d.Month() != month {
		return domain.CalendarDay{IsFiller: true}
	}
	date := d.Format(dateLayout)
	return domain.CalendarDay{
		Day:      d.Day(),
		Date:     date,
		Href:     fmt.Sprintf("%s?date=%s", opts.BaseHref, date),
		IsToday:  date == today,
		Events:   opts.Events[date],
		Holidays: opts.Holidays[date],
	}
}
