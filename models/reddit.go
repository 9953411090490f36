package models

import (
	"bytes"
	"encoding/json"
)

// PostListing is Reddit's paginated wrapper around a page of posts, as
// returned by /search.json and /r/{sub}/top.json.
type PostListing struct {
	Data struct {
		Children []PostNode `json:"children"`
	} `json:"data"`
}

type PostNode struct {
	Kind string `json:"kind"`
	Data Post   `json:"data"`
}

type Post struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Subreddit   string  `json:"subreddit"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
	Author      string  `json:"author"`
	CreatedUTC  float64 `json:"created_utc"`
	Selftext    string  `json:"selftext"`
	URL         string  `json:"url"`
}

// CommentListing is the wrapper around a page of comments, both the second
// element of a /comments/{id}.json response and every nested replies field.
type CommentListing struct {
	Data struct {
		Children []CommentNode `json:"children"`
	} `json:"data"`
}

type CommentNode struct {
	Kind string  `json:"kind"`
	Data Comment `json:"data"`
}

// Comment is a single comment. Placeholder nodes ("load more" markers) have
// no body and must be skipped by callers.
type Comment struct {
	Author  string  `json:"author"`
	Score   int     `json:"score"`
	Body    string  `json:"body"`
	Replies Replies `json:"replies"`
}

// Replies wraps a comment's replies field, which Reddit serializes as an
// empty string when there are none and as a CommentListing otherwise.
type Replies struct {
	Listing *CommentListing
}

func (r *Replies) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte(`""`)) || bytes.Equal(b, []byte("null")) {
		return nil
	}
	var listing CommentListing
	if err := json.Unmarshal(b, &listing); err != nil {
		// Anything else malformed is treated as no replies rather than
		// failing the whole thread decode.
		return nil
	}
	r.Listing = &listing
	return nil
}

// Children returns the nested comment nodes, or nil when there are none.
func (r Replies) Children() []CommentNode {
	if r.Listing == nil {
		return nil
	}
	return r.Listing.Data.Children
}
