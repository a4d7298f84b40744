package domain

// BoardType selects the renderer set for a board row.
type BoardType string

const (
	BoardTypeBoard    BoardType = "board"
	BoardTypeRedirect BoardType = "redirect"
)

type LastPost struct {
	Subject string
	Href    string
	Member  Link
	Time    string
}

// ChildBoard is a sub-board listed under its parent's row.
type ChildBoard struct {
	ID         int
	Name       string
	Href       string
	Type       BoardType
	New        bool
	Posts      int
	Topics     int
	Unapproved int
}

type Board struct {
	ID               int
	Type             BoardType
	Name             string `validate:"required"`
	Href             string `validate:"required"`
	Description      string // upstream HTML
	New              bool
	ChildrenNew      bool
	Posts            int // redirect boards count redirects here
	Topics           int
	Moderators       []Link
	ModeratorGroups  []Link
	Children         []ChildBoard
	LastPost         *LastPost
	UnapprovedTopics int
	UnapprovedPosts  int
	CanApprove       bool
}

type Category struct {
	ID           int
	Name         string `validate:"required"`
	Href         string
	Description  string
	CanCollapse  bool
	IsCollapsed  bool
	CollapseHref string
	New          bool
	Boards       []*Board `validate:"dive"`
}

type ForumStats struct {
	TotalPosts   int
	TotalTopics  int
	TotalMembers int
	LatestMember Link
	StatsHref    string
}

type RecentPost struct {
	Subject string
	Href    string
	Poster  Link
	Board   Link
	Time    string
	Preview string // upstream HTML, shown as a plain text tooltip
}

type InfoCenter struct {
	Stats       ForumStats
	UsersOnline []Link
	Guests      int
	OnlineHref  string
	RecentPosts []RecentPost
	Events      []EventLink
	Collapsed   bool
}

type BoardIndexPage struct {
	Categories   []*Category `validate:"dive"`
	InfoCenter   InfoCenter
	MarkReadHref string
}
