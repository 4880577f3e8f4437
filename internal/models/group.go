package models

// Group represents a named collection of users that share expenses.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Roommates", "Ski Trip").
	Name string

	// CreatorID is the UserID of the member who created the group.
	CreatorID string

	// Members is the set of member UserIDs. No duplicates; order carries
	// no meaning.
	Members []string

	// Closed marks a group that no longer accepts settlements or new
	// members.
	Closed bool

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// HasMember reports whether userID is in the group's member set.
func (g *Group) HasMember(userID string) bool {
	for _, m := range g.Members {
		if m == userID {
			return true
		}
	}
	return false
}
