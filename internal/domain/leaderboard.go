package domain

import "time"

// Period represents a coarse leaderboard time bucket.
// There is no automatic rollover between buckets.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodAllTime Period = "all-time"
)

// LeaderboardEntry represents a single submitted score. UserID, GameID
// and Category are weak references; an empty Category marks an entry on
// the global cross-category board. The stored Rank is never recomputed;
// display rank is derived from sort position at read time.
type LeaderboardEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId,omitempty"`
	GameID    string    `json:"gameId,omitempty"`
	Category  string    `json:"category,omitempty"`
	Score     int       `json:"score"`
	Rank      int       `json:"rank"`
	Period    Period    `json:"period"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertLeaderboardEntry represents a score submission
type InsertLeaderboardEntry struct {
	UserID   string `json:"userId,omitempty"`
	GameID   string `json:"gameId,omitempty"`
	Category string `json:"category,omitempty"`
	Score    int    `json:"score"`
	Period   Period `json:"period"`
}

// RankedEntry is a leaderboard entry decorated with its read-time rank
// and the public profile of the referenced user, if any
type RankedEntry struct {
	LeaderboardEntry
	User *PublicUser `json:"user"`
}
