package models

type PostStatus string

const (
	PostDraft     PostStatus = "Draft"
	PostPublished PostStatus = "Published"
)

// BlogPost is read-only fixture content in this version of the site; no
// admin screen edits posts yet.
type BlogPost struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Excerpt  string     `json:"excerpt"`
	Content  string     `json:"content"`
	Author   string     `json:"author"`
	Date     string     `json:"date"`
	ImageURL string     `json:"imageUrl,omitempty"`
	Status   PostStatus `json:"status"`
}
