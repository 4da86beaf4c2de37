package model

import "time"

// Comment is an immutable record attached to a book. CreatedAt is set
// exactly once, by storage, at creation time.
type Comment struct {
	ID        int64     `json:"id"`
	BookID    int64     `json:"book_id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Equal implements identity-based equality.
func (c Comment) Equal(other Comment) bool {
	return c.ID == other.ID
}
