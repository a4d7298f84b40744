package fixtures

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itchan-dev/forumview/internal/domain"
	internal_errors "github.com/itchan-dev/forumview/internal/errors"
	"github.com/itchan-dev/forumview/internal/render"
)

func TestEmbedded_Names(t *testing.T) {
	names, err := Embedded().Names()
	require.NoError(t, err)

	assert.Contains(t, names, "boardindex")
	assert.Contains(t, names, "event_post")
	assert.Contains(t, names, "moderation_boardaccess")
	assert.IsIncreasing(t, names)
}

func TestEmbedded_AllRender(t *testing.T) {
	r, err := render.New()
	require.NoError(t, err)
	store := Embedded()

	names, err := store.Names()
	require.NoError(t, err)
	require.NotEmpty(t, names)

	seen := map[render.Page]bool{}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			f, err := store.Load(name)
			require.NoError(t, err)
			assert.Equal(t, name, f.Name)
			assert.NotEmpty(t, f.Title)

			var buf bytes.Buffer
			require.NoError(t, r.Render(&buf, f.Page, f.Common, f.Data))
			assert.Contains(t, buf.String(), "Sample Community")
			seen[f.Page] = true
		})
	}

	for _, p := range r.Pages() {
		assert.True(t, seen[p], "no sample fixture for %s", p)
	}
}

func TestLoad_Pagination(t *testing.T) {
	f, err := Embedded().Load("messageindex")
	require.NoError(t, err)

	page, ok := f.Data.(*domain.MessageIndexPage)
	require.True(t, ok)
	assert.Equal(t, 3, page.PageIndex.Current)
	assert.Equal(t, 11, page.PageIndex.Total)
	assert.Equal(t, "/index.php?board=1.20", page.PageIndex.PrevHref)
	assert.Equal(t, "/index.php?board=1.60", page.PageIndex.NextHref)
}

func TestLoad_Grid(t *testing.T) {
	f, err := Embedded().Load("calendar")
	require.NoError(t, err)

	page, ok := f.Data.(*domain.CalendarPage)
	require.True(t, ok)
	require.NotNil(t, page.MainGrid)
	require.NotNil(t, page.PrevGrid)
	require.NotNil(t, page.NextGrid)

	assert.Equal(t, 10, page.MainGrid.Month)
	assert.Equal(t, 9, page.PrevGrid.Month)
	assert.Equal(t, 11, page.NextGrid.Month)
	assert.Equal(t, domain.GridSmall, page.PrevGrid.Size)
	assert.True(t, page.MainGrid.ShowWeekNumbers)
	assert.Equal(t, "Mon", page.MainGrid.WeekdayNames[0])

	var today *domain.CalendarDay
	for _, w := range page.MainGrid.Weeks {
		for i := range w.Days {
			if w.Days[i].Date == "2026-10-19" {
				today = &w.Days[i]
			}
		}
	}
	require.NotNil(t, today)
	assert.True(t, today.IsToday)
	require.Len(t, today.Events, 1)
	assert.Equal(t, "Weekly voice chat", today.Events[0].Title)
}

func TestLoad_Recurrence(t *testing.T) {
	f, err := Embedded().Load("event_post")
	require.NoError(t, err)

	page, ok := f.Data.(*domain.EventPostPage)
	require.True(t, ok)
	rec := page.Event.Recurrence

	assert.True(t, rec.Enabled)
	assert.Equal(t, 2, rec.Interval)
	assert.Equal(t, "until", rec.EndMode)
	assert.Equal(t, "2026-12-31", rec.Until)

	var checked []string
	for _, d := range rec.Weekdays {
		if d.Selected {
			checked = append(checked, d.Value)
		}
	}
	assert.Equal(t, []string{"MO", "TH"}, checked)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
	}{
		{name: "unknown page", body: "page: gallery\n", err: internal_errors.ErrUnknownPage},
		{name: "missing page", body: "common:\n  forumname: x\n", err: internal_errors.ErrUnknownPage},
		{name: "unknown data field", body: "page: themes\ndata:\n  section: list\n  colour: red\n"},
		{name: "unknown top level field", body: "page: themes\nextra: 1\n"},
		{name: "bad rrule", body: "page: event_post\ndata:\n  event:\n    recurrence:\n      rrule: \"FREQ=HOURLY\"\n"},
		{name: "not yaml", body: "page: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.body))
			require.Error(t, err)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestStore_Dir(t *testing.T) {
	dir := t.TempDir()
	body := "page: calendar\ntitle: \"Empty list\"\ncommon:\n  forumname: \"F\"\n  scripturl: \"/\"\ndata:\n  view: list\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.yaml"), []byte(body), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600))

	store := Dir(dir)

	names, err := store.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"empty"}, names)

	f, err := store.Load("empty")
	require.NoError(t, err)
	assert.Equal(t, "Empty list", f.Title)
	assert.Equal(t, render.PageCalendar, f.Page)
	assert.Equal(t, domain.ViewList, f.Data.(*domain.CalendarPage).View)

	for _, name := range []string{"missing", "../empty", "", "a/b"} {
		_, err := store.Load(name)
		assert.ErrorIs(t, err, internal_errors.ErrFixtureNotFound, name)
	}
}

func TestLoadFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "board.yaml")
	require.NoError(t, os.WriteFile(file, []byte("page: boardindex\n"), 0o600))

	f, err := LoadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "board", f.Name)
	assert.Equal(t, render.PageBoardIndex, f.Page)

	_, err = LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
