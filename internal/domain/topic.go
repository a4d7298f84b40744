package domain

import (
	"github.com/itchan-dev/forumview/internal/pageindex"
	"github.com/itchan-dev/forumview/internal/quickbuttons"
)

type PostRef struct {
	Member Link
	Time   string
	Href   string
}

type TopicSummary struct {
	ID        int
	Subject   string `validate:"required"`
	Href      string `validate:"required"`
	Icon      string
	FirstPost PostRef
	LastPost  PostRef
	Replies   int
	Views     int
	IsSticky  bool
	IsLocked  bool
	IsPoll    bool
	IsHot     bool
	IsVeryHot bool
	New       bool
	NewHref   string
	Approved  bool
	Pages     []pageindex.Item
	Selected  bool
}

// QuickModeration lists the bulk actions offered for checked topics.
type QuickModeration struct {
	Enabled bool
	Href    string
	Actions []Link // Href holds the action value
}

type BoardHeader struct {
	ID          int
	Name        string `validate:"required"`
	Href        string
	Description string
}

type MessageIndexPage struct {
	Board           BoardHeader
	ChildBoards     []*Board `validate:"dive"`
	Topics          []*TopicSummary `validate:"dive"`
	PageIndex       pageindex.Index
	CanPostNew      bool
	NewTopicHref    string
	CanPostPoll     bool
	NewPollHref     string
	QuickModeration QuickModeration
	Moderators      []Link
	ViewingMembers  []Link
	ViewingGuests   int
}

type Poster struct {
	ID        int
	Name      string `validate:"required"`
	Href      string
	Title     string
	Group     string
	Avatar    string
	PostCount int
	IsOnline  bool
	IsGuest   bool
	Signature string // upstream HTML
}

type Attachment struct {
	ID        int
	Name      string
	Href      string
	Size      string
	IsImage   bool
	ThumbHref string
	Downloads int
}

type Likes struct {
	Count   int
	CanLike bool
	YouLike bool
	Href    string
}

type Modified struct {
	Time string
	Name string
}

type Message struct {
	ID           int `validate:"required"`
	Counter      int
	Subject      string
	Href         string
	Time         string
	Body         string // upstream HTML
	Member       Poster
	Quickbuttons quickbuttons.List
	CanModify    bool
	Approved     bool
	IsNew        bool
	Likes        Likes
	Attachments  []Attachment
	Modified     *Modified
}

type PollOption struct {
	ID      int
	Option  string
	Votes   int
	Percent int
	Voted   bool
}

type Poll struct {
	ID          int
	Question    string `validate:"required"`
	Options     []PollOption
	TotalVotes  int
	ShowResults bool
	IsLocked    bool
	AllowVote   bool
	MaxVotes    int
	ExpireTime  string
	Expired     bool
	VoteHref    string
}

type QuickReply struct {
	Href    string
	Subject string
	// Collapsed is the initial state of the quick reply toggle.
	Collapsed bool
}

type TopicHeader struct {
	ID       int
	Subject  string `validate:"required"`
	Href     string
	Board    Link
	IsLocked bool
	IsSticky bool
	Views    int
}

type TopicPage struct {
	Topic        TopicHeader
	Messages     []*Message `validate:"dive"`
	Poll         *Poll
	PageIndex    pageindex.Index
	QuickReply   *QuickReply
	Events       []EventLink
	CanQuickEdit bool
	CanReply     bool
	ReplyHref    string
	PrevHref     string
	NextHref     string
}
