package domain

type MessageIcon struct {
	Value    string
	Name     string
	Href     string
	Selected bool
}

type Preview struct {
	Subject string
	Body    string // upstream HTML
}

type PollForm struct {
	Question    string
	Options     []string
	MaxVotes    int
	ExpireDays  int
	ChangeVote  bool
	GuestVote   bool
	ShowResults int // 0 anyone, 1 after voting, 2 after expiry
}

type AttachmentForm struct {
	Current     []Attachment
	AllowedExts []string
	MaxSizeKB   int
	NumAllowed  int
}

type DraftSettings struct {
	Enabled  bool
	AutoSave bool
	Interval int // seconds
	DraftID  int
	SaveHref string
}

type PostPage struct {
	IsNewTopic  bool
	Board       Link
	Destination string `validate:"required"`
	Subject     string
	Body        string // raw editor contents, always escaped
	Icons       []MessageIcon
	Errors      []string
	Preview     *Preview
	Poll        *PollForm
	Event       *EventForm
	Attachments *AttachmentForm
	Drafts      *DraftSettings
	CanLock     bool
	Lock        bool
	CanSticky   bool
	Sticky      bool
}
