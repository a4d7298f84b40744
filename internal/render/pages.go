package render

import "github.com/itchan-dev/forumview/internal/domain"

var pageFiles = map[Page]string{
	PageBoardIndex:   "boardindex.html",
	PageMessageIndex: "messageindex.html",
	PageDisplay:      "display.html",
	PagePost:         "post.html",
	PageCalendar:     "calendar.html",
	PageEventPost:    "event_post.html",
	PageModCenter:    "moderation.html",
	PageThemes:       "themes.html",
}

func is[T any](data any) bool {
	d, ok := data.(*T)
	return ok && d != nil
}

// pageAccepts reports whether data is the view model page is written against.
func pageAccepts(page Page, data any) bool {
	switch page {
	case PageBoardIndex:
		return is[domain.BoardIndexPage](data)
	case PageMessageIndex:
		return is[domain.MessageIndexPage](data)
	case PageDisplay:
		return is[domain.TopicPage](data)
	case PagePost:
		return is[domain.PostPage](data)
	case PageCalendar:
		return is[domain.CalendarPage](data)
	case PageEventPost:
		return is[domain.EventPostPage](data)
	case PageModCenter:
		return is[domain.ModCenterPage](data)
	case PageThemes:
		return is[domain.ThemesPage](data)
	}
	return false
}

// NewData returns an empty view model for page, for decoders that need a
// target before the data is known.
func NewData(page Page) (any, bool) {
	switch page {
	case PageBoardIndex:
		return &domain.BoardIndexPage{}, true
	case PageMessageIndex:
		return &domain.MessageIndexPage{}, true
	case PageDisplay:
		return &domain.TopicPage{}, true
	case PagePost:
		return &domain.PostPage{}, true
	case PageCalendar:
		return &domain.CalendarPage{}, true
	case PageEventPost:
		return &domain.EventPostPage{}, true
	case PageModCenter:
		return &domain.ModCenterPage{}, true
	case PageThemes:
		return &domain.ThemesPage{}, true
	}
	return nil, false
}
