package tui

import (
	"errors"
	"fmt"
	"log"

	"hnreader/hackernews"
	"hnreader/state"
	"hnreader/types"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case TopStoriesMsg:
		return m.handleTopStories(msg)
	case ArticleMsg:
		return m.handleArticle(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Reload):
		return m.reload()
	}

	switch m.Screen() {
	case ScreenList:
		return m.handleListKey(msg)
	case ScreenDetail:
		return m.handleDetailKey(msg)
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.Stories()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.listCursor > 0 {
			m.listCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.listCursor < len(rows)-1 {
			m.listCursor++
		}
	case key.Matches(msg, m.keys.Open):
		if m.listCursor < len(rows) {
			id := rows[m.listCursor].Base().ID
			m.selection.Select(id)
			m.detailCursors[id] = 0
		}
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id, _ := m.selection.Selected()
	article, _ := m.resolve(id)
	kids := kidsOf(article)
	cursor := m.detailCursors[id]

	switch {
	case key.Matches(msg, m.keys.Back):
		m.selection.Back()
	case key.Matches(msg, m.keys.Up):
		if cursor > 0 {
			m.detailCursors[id] = cursor - 1
		}
	case key.Matches(msg, m.keys.Down):
		if cursor < len(kids)-1 {
			m.detailCursors[id] = cursor + 1
		}
	case key.Matches(msg, m.keys.Open):
		if cursor < len(kids) {
			return m.open(kids[cursor])
		}
	}
	return m, nil
}

// open selects id and fetches it unless it is loaded or already in flight
func (m Model) open(id int) (tea.Model, tea.Cmd) {
	m.selection.Select(id)
	m.detailCursors[id] = 0

	if _, ok := m.articles[id]; ok {
		return m, nil
	}
	if r, ok := m.items[id]; ok && !r.IsFailed() {
		return m, nil
	}
	m.items[id] = state.Pending[types.Article]()
	return m, fetchArticle(m.fetcher, id, m.generation)
}

// reload drops everything fetched and starts over from the list
func (m Model) reload() (tea.Model, tea.Cmd) {
	m.selection.Clear()
	m.generation++
	m.TopStories = state.Pending[[]types.Article]()
	m.articles = make(map[int]types.Article)
	m.items = make(map[int]state.Resource[types.Article])
	m.detailCursors = make(map[int]int)
	m.listCursor = 0
	m = m.AddLog("Reloading top stories")
	return m, fetchTopStories(m.fetcher, m.limit, m.generation)
}

// handleTopStories resolves the loading boundary
func (m Model) handleTopStories(msg TopStoriesMsg) (tea.Model, tea.Cmd) {
	if msg.Generation != m.generation {
		log.Printf("Dropping top stories from reload %d (current %d)", msg.Generation, m.generation)
		return m, nil
	}
	if msg.Err != nil {
		m.TopStories = state.Failed[[]types.Article](msg.Err)
		m = m.AddLog(fmt.Sprintf("Top stories failed: %v", msg.Err))
		return m, nil
	}

	m.TopStories = state.Ready(msg.Articles)
	for _, a := range msg.Articles {
		m.articles[a.Base().ID] = a
	}
	if m.listCursor >= len(m.Stories()) {
		m.listCursor = 0
	}
	m = m.AddLog(fmt.Sprintf("Loaded %d stories", len(msg.Articles)))
	return m, nil
}

// handleArticle records an on-demand item fetch
func (m Model) handleArticle(msg ArticleMsg) (tea.Model, tea.Cmd) {
	if msg.Generation != m.generation {
		log.Printf("Dropping item %d from reload %d (current %d)", msg.ID, msg.Generation, m.generation)
		return m, nil
	}
	switch {
	case errors.Is(msg.Err, hackernews.ErrMissingArticle):
		m.items[msg.ID] = state.Ready[types.Article](nil)
		m = m.AddLog(fmt.Sprintf("Item %d not found", msg.ID))
	case msg.Err != nil:
		m.items[msg.ID] = state.Failed[types.Article](msg.Err)
		m = m.AddLog(fmt.Sprintf("Item %d failed: %v", msg.ID, msg.Err))
	default:
		m.items[msg.ID] = state.Ready(msg.Article)
		if msg.Article != nil {
			m.articles[msg.ID] = msg.Article
		}
	}
	return m, nil
}
