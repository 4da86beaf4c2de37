package model

// Book is an immutable catalog entry. Identity is assigned by storage;
// two books are the same book iff their ids match.
type Book struct {
	ID     int64   `json:"id"`
	Title  string  `json:"title"`
	Author string  `json:"author"`
	ISBN   *string `json:"isbn,omitempty"`
	Year   *int    `json:"year,omitempty"`
}

// Equal implements identity-based equality.
func (b Book) Equal(other Book) bool {
	return b.ID == other.ID
}
