package models

// Comment is a single comment on a post. Replies is reserved for nested
// threads and stays empty for now.
type Comment struct {
	ID      string    `json:"id"`
	UserID  string    `json:"userId"`
	Text    string    `json:"text"`
	Replies []Comment `json:"replies"`
}
