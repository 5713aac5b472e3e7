package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind is the item type tag sent by the Hacker News API
type Kind string

const (
	KindStory   Kind = "story"
	KindComment Kind = "comment"
)

// ArticleBase holds the fields every item shares
type ArticleBase struct {
	By      string `json:"by"`
	ID      int    `json:"id"`
	Kids    []int  `json:"kids,omitempty"`
	Parent  int    `json:"parent,omitempty"` // 0 when the item has no parent
	Time    int64  `json:"time"`
	Deleted bool   `json:"deleted,omitempty"`
	Dead    bool   `json:"dead,omitempty"`
}

// Article is one of *Story, *Comment or *Unknown
type Article interface {
	Base() ArticleBase
	Kind() Kind
}

// Story is a top-level submission
type Story struct {
	ArticleBase
	Descendants int    `json:"descendants"` // comment count, never an item id
	Title       string `json:"title"`
	URL         string `json:"url,omitempty"`
}

// Comment is a reply to a story or another comment
type Comment struct {
	ArticleBase
	Text string `json:"text"`
}

// Unknown keeps the item kinds the reader does not model (job, poll, pollopt)
type Unknown struct {
	ArticleBase
	Type  Kind   `json:"type"`
	Title string `json:"title,omitempty"`
	URL   string `json:"url,omitempty"`
	Text  string `json:"text,omitempty"`
}

func (s *Story) Base() ArticleBase   { return s.ArticleBase }
func (s *Story) Kind() Kind          { return KindStory }
func (c *Comment) Base() ArticleBase { return c.ArticleBase }
func (c *Comment) Kind() Kind        { return KindComment }
func (u *Unknown) Base() ArticleBase { return u.ArticleBase }
func (u *Unknown) Kind() Kind        { return u.Type }

var jsonNull = []byte("null")

// DecodeArticle parses an item body and picks the variant from its type tag.
// A JSON null decodes to a nil Article and a nil error.
func DecodeArticle(data []byte) (Article, error) {
	body := bytes.TrimSpace(data)
	if bytes.Equal(body, jsonNull) {
		return nil, nil
	}

	var probe struct {
		Type Kind `json:"type"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, fmt.Errorf("failed to read item type: %w", err)
	}

	var article Article
	switch probe.Type {
	case KindStory:
		article = &Story{}
	case KindComment:
		article = &Comment{}
	default:
		article = &Unknown{}
	}
	if err := json.Unmarshal(body, article); err != nil {
		return nil, fmt.Errorf("failed to decode %s item: %w", probe.Type, err)
	}
	return article, nil
}

// Headline returns the title and link target a list row shows for an article.
// Comments have no headline.
func Headline(a Article) (title, url string, ok bool) {
	switch v := a.(type) {
	case *Story:
		return v.Title, v.URL, true
	case *Unknown:
		if v.Title == "" {
			return "", "", false
		}
		return v.Title, v.URL, true
	default:
		return "", "", false
	}
}
