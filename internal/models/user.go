package models

// User is a read-only account as returned by GET /users/.
// Fields other than id and username are ignored by the board.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// GetID returns the user ID (used by the CLI quiet output)
func (u *User) GetID() int {
	return u.ID
}
