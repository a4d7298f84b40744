package render

import (
	"fmt"
	"sync"

	"github.com/itchan-dev/forumview/internal/domain"
)

// Board row parts rendered through the board type registry.
const (
	PartIcon     = "icon"
	PartStats    = "stats"
	PartLastPost = "lastpost"
	PartChildren = "children"
)

// BoardStrategy names the templates that render each part of a board row for
// one board type.
type BoardStrategy struct {
	Icon     string
	Stats    string
	LastPost string
	Children string
}

func (s BoardStrategy) template(part string) (string, error) {
	switch part {
	case PartIcon:
		return s.Icon, nil
	case PartStats:
		return s.Stats, nil
	case PartLastPost:
		return s.LastPost, nil
	case PartChildren:
		return s.Children, nil
	}
	return "", fmt.Errorf("unknown board part %q", part)
}

var boardStrategy = BoardStrategy{
	Icon:     "bi_board_icon",
	Stats:    "bi_board_stats",
	LastPost: "bi_board_lastpost",
	Children: "bi_board_children",
}

// BoardTypes maps board types to their renderers. Types without an entry are
// rendered like ordinary boards.
type BoardTypes struct {
	mu         sync.RWMutex
	strategies map[domain.BoardType]BoardStrategy
}

func NewBoardTypes() *BoardTypes {
	return &BoardTypes{strategies: map[domain.BoardType]BoardStrategy{
		domain.BoardTypeBoard: boardStrategy,
		domain.BoardTypeRedirect: {
			Icon:     "bi_redirect_icon",
			Stats:    "bi_redirect_stats",
			LastPost: "bi_board_lastpost",
			Children: "bi_board_children",
		},
	}}
}

// Register adds or replaces the strategy for t. Empty template names fall
// back to the ordinary board templates.
func (bt *BoardTypes) Register(t domain.BoardType, s BoardStrategy) {
	if s.Icon == "" {
		s.Icon = boardStrategy.Icon
	}
	if s.Stats == "" {
		s.Stats = boardStrategy.Stats
	}
	if s.LastPost == "" {
		s.LastPost = boardStrategy.LastPost
	}
	if s.Children == "" {
		s.Children = boardStrategy.Children
	}

	bt.mu.Lock()
	defer bt.mu.Unlock()
	bt.strategies[t] = s
}

func (bt *BoardTypes) Lookup(t domain.BoardType) BoardStrategy {
	bt.mu.RLock()
	defer bt.mu.RUnlock()
	if s, ok := bt.strategies[t]; ok {
		return s
	}
	return bt.strategies[domain.BoardTypeBoard]
}
