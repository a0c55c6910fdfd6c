package models

// Post represents a user's post. Comments keep insertion order; Likes is a
// set of user ids where membership means "liked".
type Post struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Comments    []Comment `json:"comments"`
	Likes       []string  `json:"likes"`
	// IsPublic is read by the listing filter but no creation path sets it;
	// a post becomes public only if the field is edited out of band.
	IsPublic bool `json:"isPublic,omitempty"`
}
