package kanban

import "github.com/thenoetrevino/quadro/internal/models"

// UnassignedUsername is shown for tasks whose user is not in the loaded list
const UnassignedUsername = "Não atribuído"

// UserIndex maps user IDs to users for constant-time lookups while rendering
type UserIndex map[int]models.User

// NewUserIndex builds an index from a freshly loaded user list.
// When IDs repeat, the last user wins.
func NewUserIndex(users []models.User) UserIndex {
	index := make(UserIndex, len(users))
	for _, user := range users {
		index[user.ID] = user
	}
	return index
}

// ResolveUsername returns the username for userID, or UnassignedUsername when
// the index has no such user (including before users have loaded).
func ResolveUsername(userID int, index UserIndex) string {
	user, ok := index[userID]
	if !ok || user.Username == "" {
		return UnassignedUsername
	}
	return user.Username
}
