package config

// Reader defaults
const (
	// DefaultTopStoriesLimit is how many top stories the list loads
	DefaultTopStoriesLimit = 10

	// MaxTopStoriesLimit matches the length of the topstories ranking
	MaxTopStoriesLimit = 500

	// MaxActivityEntries bounds the recent activity shown in the footer
	MaxActivityEntries = 5
)
