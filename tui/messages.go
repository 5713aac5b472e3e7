package tui

import "hnreader/types"

// Messages for the tea program

// TopStoriesMsg is sent when the combined top stories fetch resolves or fails
type TopStoriesMsg struct {
	Generation int
	Articles   []types.Article
	Err        error
}

// ArticleMsg is sent when an on-demand item fetch resolves or fails.
// A missing item arrives with a nil Article and an ErrMissingArticle error.
type ArticleMsg struct {
	Generation int
	ID         int
	Article    types.Article
	Err        error
}
