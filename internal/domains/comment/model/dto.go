package model

// AddCommentRequest is the payload for posting a comment on a book.
// Length and presence checks live in the service so every entry point
// reports identical messages in identical order.
type AddCommentRequest struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}
