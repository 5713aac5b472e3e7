package tui

// UI Text Constants
const (
	TextTitle   = "Hacker News"
	TextLoading = "loading..."
	TextNothing = "nothing found"
	TextBack    = "←"
	TextDeleted = "[deleted]"

	TextFailedTopStories = "Could not load top stories"
	TextFailedItem       = "Could not load item"
	TextRetryHint        = "Press 'r' to try again"

	TextNoComments = "no comments"
	TextNoStories  = "no stories"
)

const discussionURL = "https://news.ycombinator.com/item?id="
