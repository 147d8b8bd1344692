package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/edugames-catalog/internal/domain"
	"github.com/google/uuid"
)

// MemStore is an in-memory implementation of Storage. Each collection
// has its own mutex; insertion order is tracked per collection so that
// listings and equal-score leaderboard ties stay stable across calls.
type MemStore struct {
	usersMu sync.RWMutex
	users   map[string]*domain.User
	userIDs []string

	gamesMu sync.RWMutex
	games   map[string]*domain.Game
	gameIDs []string

	categoriesMu sync.RWMutex
	categories   map[string]*domain.Category
	categoryIDs  []string

	entriesMu sync.RWMutex
	entries   map[string]*domain.LeaderboardEntry
	entryIDs  []string

	messagesMu sync.RWMutex
	messages   map[string]*domain.ContactMessage
}

// NewMemStore creates an empty in-memory store
func NewMemStore() *MemStore {
	return &MemStore{
		users:      make(map[string]*domain.User),
		games:      make(map[string]*domain.Game),
		categories: make(map[string]*domain.Category),
		entries:    make(map[string]*domain.LeaderboardEntry),
		messages:   make(map[string]*domain.ContactMessage),
	}
}

// GetUser returns the user with the given id, or nil if absent
func (s *MemStore) GetUser(ctx context.Context, id string) (*domain.User, error) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	u := *user
	return &u, nil
}

// GetUserByUsername returns the first user with an exact username match
func (s *MemStore) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	for _, id := range s.userIDs {
		if user := s.users[id]; user.Username == username {
			u := *user
			return &u, nil
		}
	}
	return nil, nil
}

// GetUserByEmail returns the first user with an exact email match
func (s *MemStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	for _, id := range s.userIDs {
		if user := s.users[id]; user.Email == email {
			u := *user
			return &u, nil
		}
	}
	return nil, nil
}

// CreateUser stores a new user with a generated id, a zero total score
// and level 1. Username and email uniqueness is the caller's concern.
func (s *MemStore) CreateUser(ctx context.Context, insert domain.InsertUser) (*domain.User, error) {
	user := &domain.User{
		ID:         uuid.NewString(),
		Username:   insert.Username,
		Email:      insert.Email,
		Password:   insert.Password,
		FullName:   insert.FullName,
		AgeGroup:   insert.AgeGroup,
		TotalScore: 0,
		Level:      1,
		CreatedAt:  time.Now(),
	}

	s.usersMu.Lock()
	s.users[user.ID] = user
	s.userIDs = append(s.userIDs, user.ID)
	s.usersMu.Unlock()

	u := *user
	return &u, nil
}

// GetGames returns all games in insertion order
func (s *MemStore) GetGames(ctx context.Context) ([]domain.Game, error) {
	s.gamesMu.RLock()
	defer s.gamesMu.RUnlock()

	games := make([]domain.Game, 0, len(s.gameIDs))
	for _, id := range s.gameIDs {
		games = append(games, *s.games[id])
	}
	return games, nil
}

// GetGame returns the game with the given id, or nil if absent
func (s *MemStore) GetGame(ctx context.Context, id string) (*domain.Game, error) {
	s.gamesMu.RLock()
	defer s.gamesMu.RUnlock()

	game, ok := s.games[id]
	if !ok {
		return nil, nil
	}
	g := *game
	return &g, nil
}

// GetGamesByCategory returns games whose category matches exactly,
// case-sensitive. An empty result is not an error.
func (s *MemStore) GetGamesByCategory(ctx context.Context, category string) ([]domain.Game, error) {
	s.gamesMu.RLock()
	defer s.gamesMu.RUnlock()

	games := make([]domain.Game, 0)
	for _, id := range s.gameIDs {
		if game := s.games[id]; game.Category == category {
			games = append(games, *game)
		}
	}
	return games, nil
}

// SearchGames returns games whose title, description or category
// contains the query, case-insensitive. An empty query matches all.
func (s *MemStore) SearchGames(ctx context.Context, query string) ([]domain.Game, error) {
	s.gamesMu.RLock()
	defer s.gamesMu.RUnlock()

	q := strings.ToLower(query)
	games := make([]domain.Game, 0)
	for _, id := range s.gameIDs {
		game := s.games[id]
		if strings.Contains(strings.ToLower(game.Title), q) ||
			strings.Contains(strings.ToLower(game.Description), q) ||
			strings.Contains(strings.ToLower(game.Category), q) {
			games = append(games, *game)
		}
	}
	return games, nil
}

// CreateGame stores a game under its caller-supplied id with a zero
// play count. A colliding id overwrites the previous record.
func (s *MemStore) CreateGame(ctx context.Context, insert domain.InsertGame) (*domain.Game, error) {
	game := insert.ToGame()

	s.gamesMu.Lock()
	if _, exists := s.games[game.ID]; !exists {
		s.gameIDs = append(s.gameIDs, game.ID)
	}
	s.games[game.ID] = &game
	s.gamesMu.Unlock()

	g := game
	return &g, nil
}

// IncrementGamePlayCount increments a game's play count by one.
// Incrementing a nonexistent game is a silent no-op.
func (s *MemStore) IncrementGamePlayCount(ctx context.Context, id string) error {
	s.gamesMu.Lock()
	defer s.gamesMu.Unlock()

	if game, ok := s.games[id]; ok {
		game.PlayCount++
	}
	return nil
}

// GetCategories returns all categories in insertion order
func (s *MemStore) GetCategories(ctx context.Context) ([]domain.Category, error) {
	s.categoriesMu.RLock()
	defer s.categoriesMu.RUnlock()

	categories := make([]domain.Category, 0, len(s.categoryIDs))
	for _, id := range s.categoryIDs {
		categories = append(categories, *s.categories[id])
	}
	return categories, nil
}

// GetCategory returns the category with the given id, or nil if absent
func (s *MemStore) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	s.categoriesMu.RLock()
	defer s.categoriesMu.RUnlock()

	category, ok := s.categories[id]
	if !ok {
		return nil, nil
	}
	c := *category
	return &c, nil
}

// CreateCategory stores a category under its caller-supplied id with a
// zero game count regardless of input
func (s *MemStore) CreateCategory(ctx context.Context, insert domain.InsertCategory) (*domain.Category, error) {
	category := insert.ToCategory()

	s.categoriesMu.Lock()
	if _, exists := s.categories[category.ID]; !exists {
		s.categoryIDs = append(s.categoryIDs, category.ID)
	}
	s.categories[category.ID] = &category
	s.categoriesMu.Unlock()

	c := category
	return &c, nil
}

// GetLeaderboard returns entries for the given period sorted by score
// descending. An empty category selects the global board (entries with
// no category); an empty period defaults to all-time. Equal scores keep
// insertion order.
func (s *MemStore) GetLeaderboard(ctx context.Context, category string, period domain.Period) ([]domain.LeaderboardEntry, error) {
	if period == "" {
		period = domain.PeriodAllTime
	}

	s.entriesMu.RLock()
	defer s.entriesMu.RUnlock()

	entries := make([]domain.LeaderboardEntry, 0)
	for _, id := range s.entryIDs {
		entry := s.entries[id]
		if entry.Period != period {
			continue
		}
		if entry.Category != category {
			continue
		}
		entries = append(entries, *entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries, nil
}

// CreateLeaderboardEntry stores a new entry with a generated id and a
// zero stored rank. Rank is a display-time value derived from sort
// position, never trusted from storage.
func (s *MemStore) CreateLeaderboardEntry(ctx context.Context, insert domain.InsertLeaderboardEntry) (*domain.LeaderboardEntry, error) {
	entry := &domain.LeaderboardEntry{
		ID:        uuid.NewString(),
		UserID:    insert.UserID,
		GameID:    insert.GameID,
		Category:  insert.Category,
		Score:     insert.Score,
		Rank:      0,
		Period:    insert.Period,
		CreatedAt: time.Now(),
	}

	s.entriesMu.Lock()
	s.entries[entry.ID] = entry
	s.entryIDs = append(s.entryIDs, entry.ID)
	s.entriesMu.Unlock()

	e := *entry
	return &e, nil
}

// CreateContactMessage stores a contact form message with a generated
// id. Messages are never read back through this interface.
func (s *MemStore) CreateContactMessage(ctx context.Context, insert domain.InsertContactMessage) (*domain.ContactMessage, error) {
	message := &domain.ContactMessage{
		ID:        uuid.NewString(),
		Name:      insert.Name,
		Email:     insert.Email,
		Subject:   insert.Subject,
		Message:   insert.Message,
		CreatedAt: time.Now(),
	}

	s.messagesMu.Lock()
	s.messages[message.ID] = message
	s.messagesMu.Unlock()

	m := *message
	return &m, nil
}

// Stats returns aggregate counts across all collections
func (s *MemStore) Stats(ctx context.Context) (domain.CatalogStats, error) {
	var stats domain.CatalogStats

	s.gamesMu.RLock()
	stats.Games = len(s.games)
	for _, game := range s.games {
		stats.TotalPlays += game.PlayCount
	}
	s.gamesMu.RUnlock()

	s.categoriesMu.RLock()
	stats.Categories = len(s.categories)
	s.categoriesMu.RUnlock()

	s.usersMu.RLock()
	stats.Users = len(s.users)
	s.usersMu.RUnlock()

	s.entriesMu.RLock()
	stats.LeaderboardEntries = len(s.entries)
	s.entriesMu.RUnlock()

	s.messagesMu.RLock()
	stats.ContactMessages = len(s.messages)
	s.messagesMu.RUnlock()

	return stats, nil
}
