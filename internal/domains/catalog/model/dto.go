package model

// CreateBookRequest is the payload for adding a book to the catalog.
// Title/author presence is enforced by the service so the reported
// messages stay consistent across entry points.
type CreateBookRequest struct {
	Title  string  `json:"title"`
	Author string  `json:"author"`
	ISBN   *string `json:"isbn,omitempty"`
	Year   *int    `json:"year,omitempty"`
}

func (r CreateBookRequest) ToBook() Book {
	return Book{
		Title:  r.Title,
		Author: r.Author,
		ISBN:   r.ISBN,
		Year:   r.Year,
	}
}
