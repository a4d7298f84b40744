package domain

import (
	"github.com/itchan-dev/forumview/internal/pageindex"
	"github.com/itchan-dev/forumview/internal/quickbuttons"
)

type ModSection string

const (
	SectionModHome     ModSection = "home"
	SectionReports     ModSection = "reports"
	SectionReport      ModSection = "report"
	SectionWatched     ModSection = "watched"
	SectionBoardAccess ModSection = "boardaccess"
)

type ReportComment struct {
	Member Link
	Time   string
	Text   string // markdown
}

type Report struct {
	ID           int `validate:"required"`
	Href         string
	Subject      string
	Topic        Link
	Board        Link
	Author       Link
	Body         string // upstream HTML
	NumReports   int
	FirstReport  string
	LastUpdated  string
	Reporters    []Link
	Closed       bool
	Ignored      bool
	Quickbuttons quickbuttons.List
}

type ReportDetail struct {
	Report      Report
	Comments    []ReportComment
	ModComments []ReportComment
	CommentHref string
}

type WatchedUser struct {
	Member    Link
	Warning   int
	LastLogin string
	LastPost  string
	PostsHref string
}

type GroupRequest struct {
	ID     int
	Member Link
	Group  Link
	Time   string
	Reason string
}

type ModNote struct {
	ID         int
	Author     Link
	Time       string
	Text       string // markdown
	DeleteHref string
}

// AccessCell is one membergroup's access to one board.
type AccessCell string

const (
	AccessAllow  AccessCell = "allow"
	AccessDeny   AccessCell = "deny"
	AccessIgnore AccessCell = "ignore"
)

type AccessRow struct {
	Board Link
	Cells []AccessCell // same order as AccessMatrix.Groups
}

type AccessMatrix struct {
	Groups []Link
	Rows   []AccessRow
}

type ModCenterPage struct {
	Section       ModSection `validate:"required,oneof=home reports report watched boardaccess"`
	Reports       []*Report  `validate:"dive"`
	Report        *ReportDetail
	WatchedUsers  []WatchedUser
	GroupRequests []GroupRequest
	Notes         []ModNote
	NoteHref      string
	Access        *AccessMatrix
	PageIndex     pageindex.Index
	ViewClosed    bool
	OpenHref      string
	ClosedHref    string
}
