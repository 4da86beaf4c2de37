package model

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User is an account record. The password hash is opaque to the domain
// layer and never leaves it in responses.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}
