// Package pageindex builds the compact page navigation shown above and below
// board and topic listings.
package pageindex

import (
	"fmt"
	"strings"
)

// DefaultContiguous is how many pages are listed on each side of the current one.
const DefaultContiguous = 2

type ItemKind string

const (
	KindPage     ItemKind = "page"
	KindCurrent  ItemKind = "current"
	KindEllipsis ItemKind = "ellipsis"
)

type Item struct {
	Kind   ItemKind
	Number int // 1-based page number, zero for ellipsis
	Start  int // item offset of the page
	Href   string
}

type Index struct {
	Items    []Item
	Current  int
	Total    int // number of pages
	PrevHref string
	NextHref string
}

// Multiple reports whether there is more than one page to navigate.
func (i Index) Multiple() bool {
	return i.Total > 1
}

// Href expands base for an item offset. A "%d" in base is replaced by the
// offset, otherwise a start query parameter is appended.
func Href(base string, start int) string {
	if strings.Contains(base, "%d") {
		return fmt.Sprintf(base, start)
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%sstart=%d", base, sep, start)
}

// Build returns the page index for total items shown perPage at a time, with
// start being the offset of the first item on the current page. start is
// clamped and rounded down to a page boundary.
func Build(base string, start, total, perPage, contiguous int) Index {
	if perPage <= 0 {
		perPage = 1
	}
	if contiguous < 0 {
		contiguous = 0
	}
	if total <= 0 {
		return Index{Current: 1, Total: 1, Items: []Item{{Kind: KindCurrent, Number: 1, Href: Href(base, 0)}}}
	}

	lastStart := (total - 1) / perPage * perPage
	start = min(max(start, 0), lastStart)
	start -= start % perPage

	idx := Index{
		Current: start/perPage + 1,
		Total:   lastStart/perPage + 1,
	}
	page := func(s int) Item {
		return Item{Kind: KindPage, Number: s/perPage + 1, Start: s, Href: Href(base, s)}
	}

	if start > perPage*contiguous {
		idx.Items = append(idx.Items, page(0))
	}
	if start > perPage*(contiguous+1) {
		idx.Items = append(idx.Items, Item{Kind: KindEllipsis})
	}
	for n := contiguous; n >= 1; n-- {
		if s := start - perPage*n; s >= 0 {
			idx.Items = append(idx.Items, page(s))
		}
	}

	current := page(start)
	current.Kind = KindCurrent
	idx.Items = append(idx.Items, current)

	for n := 1; n <= contiguous; n++ {
		if s := start + perPage*n; s <= lastStart {
			idx.Items = append(idx.Items, page(s))
		}
	}
	if start+perPage*(contiguous+1) < lastStart {
		idx.Items = append(idx.Items, Item{Kind: KindEllipsis})
	}
	if start+perPage*contiguous < lastStart {
		idx.Items = append(idx.Items, page(lastStart))
	}

	if start > 0 {
		idx.PrevHref = Href(base, start-perPage)
	}
	if start < lastStart {
		idx.NextHref = Href(base, start+perPage)
	}
	return idx
}

// TopicPages returns the short list of page links shown next to a topic in a
// board listing. Topics that fit on one page get no links. Up to five pages are
// all listed; longer topics show the first three, an ellipsis and the last.
func TopicPages(base string, total, perPage int) []Item {
	if perPage <= 0 || total <= perPage {
		return nil
	}
	pages := (total-1)/perPage + 1
	link := func(n int) Item {
		s := (n - 1) * perPage
		return Item{Kind: KindPage, Number: n, Start: s, Href: Href(base, s)}
	}

	var items []Item
	if pages <= 5 {
		for n := 1; n <= pages; n++ {
			items = append(items, link(n))
		}
		return items
	}
	for n := 1; n <= 3; n++ {
		items = append(items, link(n))
	}
	items = append(items, Item{Kind: KindEllipsis}, link(pages))
	return items
}
