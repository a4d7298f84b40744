package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/itchan-dev/forumview/internal/domain"
	"github.com/itchan-dev/forumview/internal/pageindex"
	"github.com/itchan-dev/forumview/internal/quickbuttons"
)

func newTestRenderer(t *testing.T, opts ...Option) *Renderer {
	t.Helper()
	r, err := New(opts...)
	require.NoError(t, err)
	return r
}

func render(t *testing.T, r *Renderer, page Page, data any) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, page, testCommon(), data))
	return buf.String()
}

func testCommon() domain.Common {
	return domain.Common{
		ForumName:  "Test Forum",
		ScriptURL:  "/index.php",
		ImagesURL:  "/themes/default/images",
		ThemeURL:   "/themes/default",
		PageTitle:  "Index",
		User:       domain.User{ID: 3, Name: "ann", ProfileURL: "/index.php?action=profile;u=3"},
		SessionVar: "c4f2a1",
		SessionID:  "0123456789abcdef",
		LinkTree:   []domain.Link{{Name: "Test Forum", Href: "/index.php"}},
	}
}

func boardIndexPage() *domain.BoardIndexPage {
	return &domain.BoardIndexPage{
		Categories: []*domain.Category{
			{
				ID:          1,
				Name:        "General",
				CanCollapse: true,
				Boards: []*domain.Board{
					{
						ID:          1,
						Type:        domain.BoardTypeBoard,
						Name:        "Announcements",
						Href:        "/index.php?board=1.0",
						Description: "News <script>alert(1)</script>about the forum",
						New:         true,
						Posts:       1234,
						Topics:      56,
						Moderators:  []domain.Link{{Name: "mod", Href: "/index.php?action=profile;u=2"}},
						LastPost: &domain.LastPost{
							Subject: "Welcome",
							Href:    "/index.php?topic=1.msg1#msg1",
							Member:  domain.Link{Name: "admin", Href: "/index.php?action=profile;u=1"},
							Time:    "Today at 10:00",
						},
						Children: []domain.ChildBoard{{ID: 4, Name: "Archive", Href: "/index.php?board=4.0", Posts: 5, Topics: 1}},
					},
					{
						ID:    2,
						Type:  domain.BoardTypeRedirect,
						Name:  "Project site",
						Href:  "https://example.org",
						Posts: 42,
					},
				},
			},
			{
				ID:          2,
				Name:        "Off topic",
				CanCollapse: true,
				IsCollapsed: true,
				Boards: []*domain.Board{
					{ID: 3, Name: "Chat", Href: "/index.php?board=3.0", Posts: 7, Topics: 2},
				},
			},
		},
		InfoCenter: domain.InfoCenter{
			Stats: domain.ForumStats{
				TotalPosts:   1283,
				TotalTopics:  59,
				TotalMembers: 12,
				LatestMember: domain.Link{Name: "newbie", Href: "/index.php?action=profile;u=12"},
			},
			UsersOnline: []domain.Link{{Name: "ann", Href: "/index.php?action=profile;u=3"}},
			Guests:      2,
		},
		MarkReadHref: "/index.php?action=markasread;sa=all",
	}
}

func topicPage() *domain.TopicPage {
	buttons := quickbuttons.List{}.
		Add(quickbuttons.Button{Key: "quote", Label: "Quote", Href: "/index.php?action=post;quote=5", Icon: "quote", Show: true}).
		Add(quickbuttons.Button{Key: "more", Label: "More", Icon: "post_options", Show: true, SubItems: quickbuttons.List{
			{Key: "remove", Label: "Remove", Href: "/index.php?action=deletemsg;msg=5", Confirm: "Remove this post?", Show: true},
			{Key: "split", Label: "Split", Href: "/index.php?action=splittopics;at=5", Show: false},
		}})

	return &domain.TopicPage{
		Topic: domain.TopicHeader{ID: 7, Subject: "Hello world", Board: domain.Link{Name: "General", Href: "/index.php?board=1.0"}, Views: 10},
		Messages: []*domain.Message{
			{
				ID:           5,
				Counter:      1,
				Subject:      "Hello world",
				Href:         "/index.php?topic=7.msg5#msg5",
				Time:         "Today at 09:00",
				Body:         "<b>bold</b> text",
				Member:       domain.Poster{ID: 3, Name: "ann", Href: "/index.php?action=profile;u=3", PostCount: 12},
				Quickbuttons: buttons,
				CanModify:    true,
				Approved:     true,
				Modified:     &domain.Modified{Time: "Today at 09:30", Name: "ann"},
			},
			{
				ID:       6,
				Counter:  2,
				Subject:  "Re: Hello world",
				Body:     "reply",
				Member:   domain.Poster{Name: "guest", IsGuest: true},
				Approved: false,
			},
		},
		PageIndex: pageindex.Build("/index.php?topic=7.%d", 0, 2, 20, pageindex.DefaultContiguous),
	}
}
