package models

// User is a player account with its lifetime statistics
type User struct {
	// Username is the unique key of the account
	Username string

	// Password is either the plaintext password or a bcrypt hash
	Password string

	// BestScore is the highest game score reached; it never decreases
	BestScore int

	// GamesCompleted counts the rounds the player has solved
	GamesCompleted int
}

// RecordScore raises the best score if score beats it and reports whether it did
func (u *User) RecordScore(score int) bool {
	if score <= u.BestScore {
		return false
	}
	u.BestScore = score
	return true
}
