package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hnreader/hackernews"
	"hnreader/render"
	"hnreader/types"

	"github.com/charmbracelet/lipgloss"
)

// markup renders every piece of source-supplied text that reaches the screen
var markup = render.TrustedMarkup

// View implements tea.Model interface
func (m Model) View() string {
	header := m.headerView()
	footer := m.footerView()

	// lines left for the main region; -1 until the terminal size is known
	avail := -1
	if m.height > 0 {
		avail = max(1, m.height-lipgloss.Height(header)-lipgloss.Height(footer)-2)
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(m.mainView(avail))
	b.WriteString("\n\n")
	b.WriteString(footer)

	return b.String()
}

func (m Model) headerView() string {
	return TitleStyle.Render(TextTitle) + " " + InfoStyle.Render(fmt.Sprintf("top %d", m.limit))
}

// mainView is the loading boundary: placeholder, failure, list or detail
func (m Model) mainView(avail int) string {
	switch m.Screen() {
	case ScreenLoading:
		return TextLoading
	case ScreenFailed:
		return failureView(TextFailedTopStories, m.TopStories.Err())
	case ScreenDetail:
		id, _ := m.selection.Selected()
		return m.detailView(id, avail)
	default:
		return m.listView(avail)
	}
}

func (m Model) footerView() string {
	var b strings.Builder
	for _, entry := range m.Logs {
		b.WriteString(InfoStyle.Render(entry.Timestamp.Format("15:04:05") + " " + entry.Message))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) listView(avail int) string {
	rows := m.Stories()
	if len(rows) == 0 {
		return InfoStyle.Render(TextNoStories)
	}

	start, end := visibleRange(len(rows), m.listCursor, avail)
	var b strings.Builder
	for i := start; i < end; i++ {
		title, url, _ := types.Headline(rows[i])
		marker := "  "
		if i == m.listCursor {
			marker = CursorStyle.Render("› ")
		}
		b.WriteString(fmt.Sprintf("%s%2d. %s (%s)\n", marker, i+1, markup(title), LinkStyle.Render(render.Hostname(url))))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// detailView resolves id against fetched data and picks the view for its kind
func (m Model) detailView(id, avail int) string {
	article, res := m.resolve(id)
	switch {
	case res.IsPending():
		return backLine() + "\n\n" + TextLoading
	case res.IsFailed():
		return backLine() + "\n\n" + failureView(fmt.Sprintf("%s %d", TextFailedItem, id), res.Err())
	case article == nil:
		return backLine() + "\n\n" + TextNothing
	}

	var body string
	switch a := article.(type) {
	case *types.Story:
		body = storyView(a)
	case *types.Comment:
		body = commentView(a)
	case *types.Unknown:
		body = unknownView(a)
	}
	rows := -1
	if avail >= 0 {
		// blank line and the replies header sit between body and rows
		rows = max(1, avail-lipgloss.Height(body)-2)
	}
	return body + "\n\n" + m.kidsView(id, article, rows)
}

func backLine() string {
	return CursorStyle.Render(TextBack)
}

// storyView renders the title as trusted markup linked to the story URL
func storyView(s *types.Story) string {
	var b strings.Builder
	b.WriteString(backLine())
	b.WriteString("\n\n")
	b.WriteString(markup(s.Title))
	b.WriteString("\n")
	b.WriteString(LinkStyle.Render(linkTarget(s.URL, s.ID)))
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(fmt.Sprintf("%s | %s | %s", byline(s.ArticleBase), commentCount(s.Descendants), formatTime(s.Time))))
	return b.String()
}

// commentView renders the comment text as trusted markup
func commentView(c *types.Comment) string {
	var b strings.Builder
	b.WriteString(backLine())
	b.WriteString("\n\n")
	b.WriteString(InfoStyle.Render(fmt.Sprintf("%s | %s | reply to %d", byline(c.ArticleBase), formatTime(c.Time), c.Parent)))
	b.WriteString("\n\n")
	if c.Deleted {
		b.WriteString(InfoStyle.Render(TextDeleted))
	} else {
		b.WriteString(markup(c.Text))
	}
	return b.String()
}

func unknownView(u *types.Unknown) string {
	var b strings.Builder
	b.WriteString(backLine())
	b.WriteString("\n\n")
	if u.Title != "" {
		b.WriteString(markup(u.Title))
		b.WriteString("\n")
	}
	b.WriteString(LinkStyle.Render(linkTarget(u.URL, u.ID)))
	b.WriteString("\n")
	if u.Text != "" {
		b.WriteString(markup(u.Text))
		b.WriteString("\n")
	}
	b.WriteString(InfoStyle.Render(fmt.Sprintf("%s | %s | %s", u.Type, byline(u.ArticleBase), formatTime(u.Time))))
	return b.String()
}

// kidsView lists the replies of the selected article as selectable rows,
// windowed around the cursor to at most rows lines (rows < 0 shows all)
func (m Model) kidsView(id int, article types.Article, rows int) string {
	kids := kidsOf(article)
	if len(kids) == 0 {
		return InfoStyle.Render(TextNoComments)
	}

	cursor := m.detailCursors[id]
	start, end := visibleRange(len(kids), cursor, rows)
	title := fmt.Sprintf("%d replies", len(kids))
	if end-start < len(kids) {
		title = fmt.Sprintf("%d replies, showing %d-%d", len(kids), start+1, end)
	}

	var b strings.Builder
	b.WriteString(InfoStyle.Render(title))
	b.WriteString("\n")
	for i := start; i < end; i++ {
		marker := "  "
		if i == cursor {
			marker = CursorStyle.Render("› ")
		}
		b.WriteString(marker + m.kidLabel(kids[i]) + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m Model) kidLabel(id int) string {
	a, res := m.resolve(id)
	switch {
	case res.IsPending():
		return fmt.Sprintf("#%d %s", id, TextLoading)
	case res.IsFailed():
		return fmt.Sprintf("#%d %s", id, ErrorStyle.Render("failed"))
	case a == nil:
		return fmt.Sprintf("#%d", id)
	}
	return fmt.Sprintf("#%d %s", id, byline(a.Base()))
}

// visibleRange picks the rows [start, end) of n that fit in size lines with
// the cursor inside. A negative size shows everything.
func visibleRange(n, cursor, size int) (start, end int) {
	if size < 0 || n <= size {
		return 0, n
	}
	size = max(1, size)
	start = max(0, cursor-size/2)
	if start+size > n {
		start = n - size
	}
	return start, start + size
}

// failureView is the visible error state for a rejected fetch
func failureView(title string, err error) string {
	var b strings.Builder
	b.WriteString(ErrorStyle.Render(fmt.Sprintf("❌ %s (%s)", title, errorClass(err))))
	b.WriteString("\n")
	if err != nil {
		b.WriteString(err.Error())
		b.WriteString("\n")
	}
	b.WriteString(InfoStyle.Render(TextRetryHint))
	return BoxStyle.Render(b.String())
}

func errorClass(err error) string {
	switch {
	case errors.Is(err, hackernews.ErrNetwork):
		return "network error"
	case errors.Is(err, hackernews.ErrDecode):
		return "bad response"
	default:
		return "error"
	}
}

// linkTarget shows where a link points. Text posts link to their discussion page.
func linkTarget(url string, id int) string {
	if url == "" {
		return fmt.Sprintf("<%s%d>", discussionURL, id)
	}
	return "<" + markup(url) + ">"
}

func byline(b types.ArticleBase) string {
	if b.By == "" {
		return "by unknown"
	}
	return "by " + markup(b.By)
}

func commentCount(n int) string {
	if n == 1 {
		return "1 comment"
	}
	return fmt.Sprintf("%d comments", n)
}

func formatTime(unix int64) string {
	if unix == 0 {
		return "-"
	}
	return time.Unix(unix, 0).UTC().Format("2006-01-02 15:04")
}
