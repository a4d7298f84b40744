package domain

type GridSize string

const (
	GridMain  GridSize = "main"
	GridSmall GridSize = "small"
)

type EventLink struct {
	ID       int
	Title    string
	Href     string
	CanEdit  bool
	EditHref string
	AllDay   bool
	Start    string
}

type CalendarDay struct {
	Day       int
	Date      string // YYYY-MM-DD, empty for filler cells
	Href      string
	IsToday   bool
	IsFiller  bool
	Events    []EventLink
	Holidays  []string
	Birthdays []Link
}

type CalendarWeek struct {
	Number int
	Href   string
	Days   []CalendarDay
}

type CalendarGrid struct {
	Year            int
	Month           int
	MonthName       string
	Href            string
	Size            GridSize
	WeekdayNames    []string
	Weeks           []CalendarWeek
	PrevHref        string
	NextHref        string
	ShowWeekNumbers bool
}

type Occurrence struct {
	Start string
	End   string
}

type Event struct {
	ID                 int
	Title              string `validate:"required"`
	Href               string
	Location           string
	Start              string
	End                string
	AllDay             bool
	Timezone           string
	Topic              *Link
	Poster             Link
	CanEdit            bool
	EditHref           string
	CanExport          bool
	ExportHref         string
	RRule              string
	RRuleDescription   string
	SelectedOccurrence *Occurrence
}

type CalendarView string

const (
	ViewMonth CalendarView = "month"
	ViewWeek  CalendarView = "week"
	ViewList  CalendarView = "list"
)

type CalendarPage struct {
	View     CalendarView `validate:"required,oneof=month week list"`
	MainGrid *CalendarGrid
	PrevGrid *CalendarGrid
	NextGrid *CalendarGrid
	Events   []*Event `validate:"dive"`
	CanPost  bool
	PostHref string
	FeedHref string
}

type Option struct {
	Value    string
	Label    string
	Selected bool
}

// RecurrenceForm is the pre-filled state of the repeat controls on the event
// form. It mirrors an RRULE but does not evaluate it.
type RecurrenceForm struct {
	Enabled     bool
	Frequencies []Option
	Interval    int
	Weekdays    []Option // Selected means checked
	MonthDays   []Option
	Months      []Option
	EndMode     string // never, count, until
	Count       int
	Until       string
	RRule       string
}

type EventForm struct {
	ID         int
	Title      string
	Location   string
	StartDate  string
	StartTime  string
	EndDate    string
	EndTime    string
	AllDay     bool
	Timezone   string
	Timezones  []Option
	Boards     []Option
	Recurrence RecurrenceForm
}

type EventPostPage struct {
	Destination string `validate:"required"`
	Event       EventForm
	IsNew       bool
	Errors      []string
	CanDelete   bool
	DeleteHref  string
}
