package tui

import (
	"time"

	"hnreader/config"
	"hnreader/hackernews"
	"hnreader/state"
	"hnreader/types"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// Screen is what the main region currently shows
type Screen string

const (
	ScreenLoading Screen = "loading"
	ScreenFailed  Screen = "failed"
	ScreenList    Screen = "list"
	ScreenDetail  Screen = "detail"
)

// LogEntry represents a single activity line with timestamp
type LogEntry struct {
	Timestamp time.Time
	Message   string
}

// Model is the reader's view state. Update is serialized by bubbletea, so the
// maps below are only touched from one goroutine.
type Model struct {
	fetcher   hackernews.Fetcher
	selection *state.Selection
	limit     int

	// TopStories is the loading boundary for the list
	TopStories state.Resource[[]types.Article]
	// generation counts reloads; results from an older generation are dropped
	generation int

	// articles indexes every record fetched this session by id
	articles map[int]types.Article
	// items tracks on-demand fetches of ids not in the top stories
	items map[int]state.Resource[types.Article]

	listCursor int
	// detail cursors point into the kids of the selected article
	detailCursors map[int]int

	Logs []LogEntry

	keys   keyMap
	help   help.Model
	width  int
	height int
}

// NewModel creates a reader model. A limit below 1 uses the default.
func NewModel(fetcher hackernews.Fetcher, selection *state.Selection, limit int) Model {
	if limit < 1 {
		limit = config.DefaultTopStoriesLimit
	}
	return Model{
		fetcher:       fetcher,
		selection:     selection,
		limit:         limit,
		TopStories:    state.Pending[[]types.Article](),
		articles:      make(map[int]types.Article),
		items:         make(map[int]state.Resource[types.Article]),
		detailCursors: make(map[int]int),
		Logs:          make([]LogEntry, 0),
		keys:          defaultKeyMap(),
		help:          newHelp(),
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return fetchTopStories(m.fetcher, m.limit, m.generation)
}

// Screen derives what the main region shows from the resource and the selection
func (m Model) Screen() Screen {
	switch {
	case m.TopStories.IsFailed():
		return ScreenFailed
	case m.TopStories.IsPending():
		return ScreenLoading
	}
	if _, ok := m.selection.Selected(); ok {
		return ScreenDetail
	}
	return ScreenList
}

// Stories returns the rows of the list view in ranking order
func (m Model) Stories() []types.Article {
	articles, _ := m.TopStories.Value()
	rows := make([]types.Article, 0, len(articles))
	for _, a := range articles {
		if _, _, ok := types.Headline(a); ok {
			rows = append(rows, a)
		}
	}
	return rows
}

// resolve looks the selected id up in what has been fetched so far
func (m Model) resolve(id int) (types.Article, state.Resource[types.Article]) {
	if a, ok := m.articles[id]; ok {
		return a, state.Ready(a)
	}
	if r, ok := m.items[id]; ok {
		a, _ := r.Value()
		return a, r
	}
	return nil, state.Ready[types.Article](nil)
}

// AddLog appends an activity line, keeping the most recent entries
func (m Model) AddLog(message string) Model {
	m.Logs = append(m.Logs, LogEntry{Timestamp: time.Now(), Message: message})
	if len(m.Logs) > config.MaxActivityEntries {
		m.Logs = m.Logs[len(m.Logs)-config.MaxActivityEntries:]
	}
	return m
}

func kidsOf(a types.Article) []int {
	if a == nil {
		return nil
	}
	return a.Base().Kids
}
