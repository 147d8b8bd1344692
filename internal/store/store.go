package store

import (
	"context"

	"github.com/edugames-catalog/internal/domain"
)

// Storage defines the catalog query and mutation contract. Lookups
// return nil (not an error) when the requested record is absent; the
// error return is reserved for backend failure so that a persistent
// implementation can slot in behind the same interface. Every mutation
// is atomic with respect to concurrent callers.
type Storage interface {
	// Users
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	CreateUser(ctx context.Context, insert domain.InsertUser) (*domain.User, error)

	// Games
	GetGames(ctx context.Context) ([]domain.Game, error)
	GetGame(ctx context.Context, id string) (*domain.Game, error)
	GetGamesByCategory(ctx context.Context, category string) ([]domain.Game, error)
	SearchGames(ctx context.Context, query string) ([]domain.Game, error)
	CreateGame(ctx context.Context, insert domain.InsertGame) (*domain.Game, error)
	IncrementGamePlayCount(ctx context.Context, id string) error

	// Categories
	GetCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	CreateCategory(ctx context.Context, insert domain.InsertCategory) (*domain.Category, error)

	// Leaderboard
	GetLeaderboard(ctx context.Context, category string, period domain.Period) ([]domain.LeaderboardEntry, error)
	CreateLeaderboardEntry(ctx context.Context, insert domain.InsertLeaderboardEntry) (*domain.LeaderboardEntry, error)

	// Contact
	CreateContactMessage(ctx context.Context, insert domain.InsertContactMessage) (*domain.ContactMessage, error)

	// Stats
	Stats(ctx context.Context) (domain.CatalogStats, error)
}
