// Package fixtures loads preview fixtures: YAML documents holding a page name,
// the shared context and the page's view model.
package fixtures

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/itchan-dev/forumview/internal/calendar"
	"github.com/itchan-dev/forumview/internal/domain"
	internal_errors "github.com/itchan-dev/forumview/internal/errors"
	"github.com/itchan-dev/forumview/internal/pageindex"
	"github.com/itchan-dev/forumview/internal/render"
)

const ext = ".yaml"

//go:embed samples/*.yaml
var samples embed.FS

type Fixture struct {
	Name        string
	Title       string
	Description string
	Page        render.Page
	Common      domain.Common
	Data        any
}

// Grid asks for a generated month grid instead of a hand written one.
type Grid struct {
	Year        int    `yaml:"year"`
	Month       int    `yaml:"month"`
	FirstDay    int    `yaml:"first_day"`
	Today       string `yaml:"today"`
	Base        string `yaml:"base"`
	WeekNumbers bool   `yaml:"week_numbers"`
	Neighbours  bool   `yaml:"neighbours"`
}

// Pagination asks for a generated page index.
type Pagination struct {
	Base    string `yaml:"base"`
	Start   int    `yaml:"start"`
	Total   int    `yaml:"total"`
	PerPage int    `yaml:"per_page"`
}

type header struct {
	Page render.Page `yaml:"page"`
}

type document struct {
	Page        string        `yaml:"page"`
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	Common      domain.Common `yaml:"common"`
	Data        target        `yaml:"data"`
	Grid        *Grid         `yaml:"grid"`
	Pagination  *Pagination   `yaml:"pagination"`
}

// target decodes into the view model chosen from the page name.
type target struct {
	v any
}

func (t *target) UnmarshalYAML(unmarshal func(any) error) error {
	return unmarshal(t.v)
}

// Parse decodes one fixture document.
func Parse(raw []byte) (*Fixture, error) {
	var h header
	if err := yaml.Unmarshal(raw, &h); err != nil {
		return nil, fmt.Errorf("fixture header: %w", err)
	}
	data, ok := render.NewData(h.Page)
	if !ok {
		return nil, fmt.Errorf("%w: %q", internal_errors.ErrUnknownPage, h.Page)
	}

	doc := document{Data: target{v: data}}
	if err := yaml.UnmarshalStrict(raw, &doc); err != nil {
		return nil, fmt.Errorf("fixture %s: %w", h.Page, err)
	}

	f := &Fixture{
		Title:       doc.Title,
		Description: doc.Description,
		Page:        h.Page,
		Common:      doc.Common,
		Data:        data,
	}
	if err := expand(f, doc.Grid, doc.Pagination); err != nil {
		return nil, fmt.Errorf("fixture %s: %w", h.Page, err)
	}
	return f, nil
}

// expand fills generated parts of the view model.
func expand(f *Fixture, grid *Grid, pages *Pagination) error {
	var index *pageindex.Index
	switch d := f.Data.(type) {
	case *domain.MessageIndexPage:
		index = &d.PageIndex
	case *domain.TopicPage:
		index = &d.PageIndex
	case *domain.ModCenterPage:
		index = &d.PageIndex
	case *domain.CalendarPage:
		if grid != nil {
			expandGrid(d, *grid)
		}
	case *domain.EventPostPage:
		return expandRecurrence(&d.Event)
	case *domain.PostPage:
		if d.Event != nil {
			return expandRecurrence(d.Event)
		}
	}
	if pages != nil && index != nil {
		*index = pageindex.Build(pages.Base, pages.Start, pages.Total, pages.PerPage, pageindex.DefaultContiguous)
	}
	return nil
}

func expandGrid(d *domain.CalendarPage, g Grid) {
	today, _ := time.Parse("2006-01-02", g.Today)
	opts := calendar.GridOptions{
		FirstDay:        time.Weekday(g.FirstDay),
		Today:           today,
		BaseHref:        g.Base,
		ShowWeekNumbers: g.WeekNumbers,
		Events:          eventsByDate(d.Events),
	}
	mainGrid := calendar.MonthGrid(g.Year, time.Month(g.Month), opts)
	d.MainGrid = &mainGrid

	if g.Neighbours {
		opts.Size = domain.GridSmall
		opts.ShowWeekNumbers = false
		first := time.Date(g.Year, time.Month(g.Month), 1, 0, 0, 0, 0, time.UTC)
		prev, next := first.AddDate(0, -1, 0), first.AddDate(0, 1, 0)
		pg := calendar.MonthGrid(prev.Year(), prev.Month(), opts)
		ng := calendar.MonthGrid(next.Year(), next.Month(), opts)
		d.PrevGrid, d.NextGrid = &pg, &ng
	}
}

// eventsByDate places events on the day their start date falls on.
func eventsByDate(events []*domain.Event) map[string][]domain.EventLink {
	out := make(map[string][]domain.EventLink)
	for _, e := range events {
		start := e.Start
		if e.SelectedOccurrence != nil {
			start = e.SelectedOccurrence.Start
		}
		if len(start) < 10 {
			continue
		}
		date := start[:10]
		out[date] = append(out[date], domain.EventLink{
			ID:       e.ID,
			Title:    e.Title,
			Href:     e.Href,
			CanEdit:  e.CanEdit,
			EditHref: e.EditHref,
			AllDay:   e.AllDay,
			Start:    start,
		})
	}
	return out
}

// expandRecurrence builds the repeat controls from the RRULE when the fixture
// does not spell them out.
func expandRecurrence(e *domain.EventForm) error {
	if len(e.Recurrence.Frequencies) > 0 {
		return nil
	}
	start, err := time.Parse("2006-01-02", e.StartDate)
	if err != nil {
		start = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	form, err := calendar.NewRecurrenceForm(e.Recurrence.RRule, start)
	if err != nil {
		return fmt.Errorf("event recurrence: %w", err)
	}
	e.Recurrence = form
	return nil
}

// Store reads fixtures named <name>.yaml from a file system.
type Store struct {
	fsys fs.FS
}

func NewStore(fsys fs.FS) *Store {
	return &Store{fsys: fsys}
}

// Embedded returns the fixtures shipped with the binary.
func Embedded() *Store {
	sub, err := fs.Sub(samples, "samples")
	if err != nil {
		panic(err)
	}
	return NewStore(sub)
}

func Dir(dir string) *Store {
	return NewStore(os.DirFS(dir))
}

// Names lists fixture names in order.
func (s *Store) Names() ([]string, error) {
	matches, err := fs.Glob(s.fsys, "*"+ext)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(m, ext))
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) Load(name string) (*Fixture, error) {
	file := name + ext
	if name == "" || strings.Contains(name, "/") || !fs.ValidPath(file) {
		return nil, fmt.Errorf("%w: %q", internal_errors.ErrFixtureNotFound, name)
	}
	raw, err := fs.ReadFile(s.fsys, file)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", internal_errors.ErrFixtureNotFound, name)
	}
	if err != nil {
		return nil, err
	}

	f, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	f.Name = name
	if f.Title == "" {
		f.Title = name
	}
	return f, nil
}

// LoadFile parses a fixture from a path on disk.
func LoadFile(file string) (*Fixture, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	f, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	f.Name = strings.TrimSuffix(filepath.Base(file), ext)
	return f, nil
}
