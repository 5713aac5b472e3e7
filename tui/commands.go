package tui

import (
	"context"
	"errors"
	"log"

	"hnreader/hackernews"

	tea "github.com/charmbracelet/bubbletea"
)

// fetchTopStories creates a command that loads the ranking and the first limit stories
func fetchTopStories(f hackernews.Fetcher, limit, generation int) tea.Cmd {
	return func() tea.Msg {
		log.Printf("Fetching top %d stories", limit)
		articles, err := f.TopStories(context.Background(), limit)
		if err != nil {
			log.Printf("Top stories failed: %v", err)
			return TopStoriesMsg{Generation: generation, Err: err}
		}
		log.Printf("Fetched %d stories", len(articles))
		return TopStoriesMsg{Generation: generation, Articles: articles}
	}
}

// fetchArticle creates a command that loads a single item
func fetchArticle(f hackernews.Fetcher, id, generation int) tea.Cmd {
	return func() tea.Msg {
		log.Printf("Fetching item %d", id)
		article, err := f.Article(context.Background(), id)
		if err != nil && !errors.Is(err, hackernews.ErrMissingArticle) {
			log.Printf("Item %d failed: %v", id, err)
		}
		return ArticleMsg{Generation: generation, ID: id, Article: article, Err: err}
	}
}
