package domain

import "time"

// User represents a registered player account
type User struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Password   string    `json:"password"`
	FullName   string    `json:"fullName"`
	AgeGroup   string    `json:"ageGroup"`
	TotalScore int       `json:"totalScore"`
	Level      int       `json:"level"`
	CreatedAt  time.Time `json:"createdAt"`
}

// InsertUser represents a signup request. Username and email uniqueness
// is checked by the caller before insert, not enforced by the store.
type InsertUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	AgeGroup string `json:"ageGroup"`
}

// PublicUser is the subset of user fields exposed on leaderboard responses
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Level    int    `json:"level"`
}

// Public returns the leaderboard-facing view of a user
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Level:    u.Level,
	}
}
