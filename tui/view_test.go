package tui

import (
	"fmt"
	"html"
	"strings"
	"testing"

	"hnreader/state"
	"hnreader/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// escapeMarkup swaps the markup primitive for HTML escaping for one test
func escapeMarkup(t *testing.T) {
	t.Helper()
	prev := markup
	markup = html.EscapeString
	t.Cleanup(func() { markup = prev })
}

func lineCount(view string) int {
	return strings.Count(view, "\n") + 1
}

func TestSourceTextGoesThroughMarkup(t *testing.T) {
	escapeMarkup(t)

	s := story(1, "Show HN: <b>x</b>", "https://a.example/?a=1&b=2", 2)
	s.By = "<i>pg</i>"
	f := &fakeFetcher{
		top:   []types.Article{s},
		items: map[int]types.Article{2: comment(2, 1, "<p>reply</p>")},
	}
	m, _ := loaded(t, f)

	view := m.View()
	assert.Contains(t, view, "Show HN: &lt;b&gt;x&lt;/b&gt;")
	assert.NotContains(t, view, "<b>x</b>")

	m, _ = update(t, m, keyEnter)
	view = m.View()
	assert.Contains(t, view, "Show HN: &lt;b&gt;x&lt;/b&gt;")
	assert.Contains(t, view, "by &lt;i&gt;pg&lt;/i&gt;")
	assert.Contains(t, view, "a=1&amp;b=2")
	assert.NotContains(t, view, "<i>pg</i>")

	m, cmd := update(t, m, keyEnter)
	m, _ = update(t, m, cmd())
	view = m.View()
	assert.Contains(t, view, "&lt;p&gt;reply&lt;/p&gt;")
	assert.NotContains(t, view, "<p>reply</p>")
}

func manyKids(first, n int) []int {
	kids := make([]int, n)
	for i := range kids {
		kids[i] = first + i
	}
	return kids
}

func TestLongReplyListFitsTerminal(t *testing.T) {
	title := "Story with a busy thread"
	m, _ := loaded(t, &fakeFetcher{top: []types.Article{story(1, title, "https://a.example", manyKids(5000, 150)...)}})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = update(t, m, keyEnter)

	view := m.View()
	assert.LessOrEqual(t, lineCount(view), 24)
	assert.Contains(t, view, TextTitle)
	assert.Contains(t, view, TextBack)
	assert.Contains(t, view, title)
	assert.Contains(t, view, "› #5000")
	assert.Contains(t, view, "150 replies, showing 1-")

	for i := 0; i < 60; i++ {
		m, _ = update(t, m, keyDown)
	}
	view = m.View()
	assert.LessOrEqual(t, lineCount(view), 24)
	assert.Contains(t, view, title)
	assert.Contains(t, view, "› #5060")
	assert.NotContains(t, view, "#5000")

	for i := 0; i < 200; i++ {
		m, _ = update(t, m, keyDown)
	}
	view = m.View()
	assert.LessOrEqual(t, lineCount(view), 24)
	assert.Contains(t, view, "› #5149")
	assert.Contains(t, view, "-150")
}

func TestLongStoryListFitsTerminal(t *testing.T) {
	top := make([]types.Article, 30)
	for i := range top {
		top[i] = story(100+i, fmt.Sprintf("Story %02d", i), "https://a.example")
	}
	f := &fakeFetcher{top: top}
	sel := state.NewSelection()
	m := NewModel(f, sel, 30)
	m, _ = update(t, m, m.Init()())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 12})

	view := m.View()
	assert.LessOrEqual(t, lineCount(view), 12)
	assert.Contains(t, view, "›  1. Story 00")

	for i := 0; i < 25; i++ {
		m, _ = update(t, m, keyDown)
	}
	view = m.View()
	assert.LessOrEqual(t, lineCount(view), 12)
	assert.Contains(t, view, "› 26. Story 25")
	assert.NotContains(t, view, "Story 00")

	update(t, m, keyEnter)
	id, ok := sel.Selected()
	require.True(t, ok)
	assert.Equal(t, 125, id)
}

func TestUnknownSizeShowsAllRows(t *testing.T) {
	m, _ := loaded(t, &fakeFetcher{top: []types.Article{story(1, "Thread", "https://a.example", manyKids(7000, 40)...)}})
	m, _ = update(t, m, keyEnter)

	view := m.View()
	assert.Contains(t, view, "40 replies\n")
	assert.Contains(t, view, "#7000")
	assert.Contains(t, view, "#7039")
}

func TestVisibleRange(t *testing.T) {
	cases := []struct {
		name               string
		n, cursor, size    int
		wantStart, wantEnd int
	}{
		{"unbounded", 50, 10, -1, 0, 50},
		{"fits", 5, 4, 10, 0, 5},
		{"top", 100, 0, 10, 0, 10},
		{"middle", 100, 50, 10, 45, 55},
		{"bottom", 100, 99, 10, 90, 100},
		{"single row", 100, 42, 1, 42, 43},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			start, end := visibleRange(c.n, c.cursor, c.size)
			assert.Equal(t, c.wantStart, start)
			assert.Equal(t, c.wantEnd, end)
			assert.True(t, c.cursor >= start && c.cursor < end)
		})
	}
}
