package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/edugames-catalog/internal/domain"
	"github.com/edugames-catalog/internal/store"
)

// CatalogService provides business logic on top of the storage layer:
// query precedence for game listings, the user join and read-time rank
// derivation for leaderboard responses, and contact form validation.
type CatalogService struct {
	store  store.Storage
	logger *slog.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(store store.Storage, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		store:  store,
		logger: logger,
	}
}

// ListGames returns games matching the request. A non-empty search
// query takes precedence over a category filter; with neither, all
// games are returned.
func (s *CatalogService) ListGames(ctx context.Context, search, category string) ([]domain.Game, error) {
	switch {
	case search != "":
		games, err := s.store.SearchGames(ctx, search)
		if err != nil {
			return nil, fmt.Errorf("searching games: %w", err)
		}
		return games, nil
	case category != "":
		games, err := s.store.GetGamesByCategory(ctx, category)
		if err != nil {
			return nil, fmt.Errorf("getting games by category: %w", err)
		}
		return games, nil
	default:
		games, err := s.store.GetGames(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting games: %w", err)
		}
		return games, nil
	}
}

// GetGame returns a game by id
func (s *CatalogService) GetGame(ctx context.Context, id string) (*domain.Game, error) {
	game, err := s.store.GetGame(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting game: %w", err)
	}
	if game == nil {
		return nil, domain.ErrGameNotFound
	}
	return game, nil
}

// RecordPlay increments a game's play count. Recording a play for a
// nonexistent game is a silent no-op, matching the storage contract.
func (s *CatalogService) RecordPlay(ctx context.Context, gameID string) error {
	if err := s.store.IncrementGamePlayCount(ctx, gameID); err != nil {
		return fmt.Errorf("incrementing play count: %w", err)
	}
	return nil
}

// ListCategories returns all categories
func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.store.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting categories: %w", err)
	}
	return categories, nil
}

// GetCategory returns a category by id
func (s *CatalogService) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	category, err := s.store.GetCategory(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting category: %w", err)
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	return category, nil
}

// GetLeaderboard returns ranked entries for the given category and
// period. Each entry carries its rank derived from sort position and
// the public profile of the referenced user, or nil when the user is
// missing or the entry has no user reference.
func (s *CatalogService) GetLeaderboard(ctx context.Context, category string, period domain.Period) ([]domain.RankedEntry, error) {
	entries, err := s.store.GetLeaderboard(ctx, category, period)
	if err != nil {
		return nil, fmt.Errorf("getting leaderboard: %w", err)
	}

	ranked := make([]domain.RankedEntry, 0, len(entries))
	for i, entry := range entries {
		entry.Rank = i + 1

		var user *domain.PublicUser
		if entry.UserID != "" {
			u, err := s.store.GetUser(ctx, entry.UserID)
			if err != nil {
				return nil, fmt.Errorf("getting user for entry: %w", err)
			}
			if u != nil {
				user = u.Public()
			}
		}

		ranked = append(ranked, domain.RankedEntry{
			LeaderboardEntry: entry,
			User:             user,
		})
	}
	return ranked, nil
}

// SubmitScore stores a new leaderboard entry
func (s *CatalogService) SubmitScore(ctx context.Context, insert domain.InsertLeaderboardEntry) (*domain.LeaderboardEntry, error) {
	entry, err := s.store.CreateLeaderboardEntry(ctx, insert)
	if err != nil {
		return nil, fmt.Errorf("creating leaderboard entry: %w", err)
	}
	return entry, nil
}

// SubmitContact validates and stores a contact form message
func (s *CatalogService) SubmitContact(ctx context.Context, insert domain.InsertContactMessage) (*domain.ContactMessage, error) {
	if err := insert.Validate(); err != nil {
		return nil, err
	}

	message, err := s.store.CreateContactMessage(ctx, insert)
	if err != nil {
		return nil, fmt.Errorf("creating contact message: %w", err)
	}
	return message, nil
}

// Stats returns aggregate catalog counts
func (s *CatalogService) Stats(ctx context.Context) (domain.CatalogStats, error) {
	return s.store.Stats(ctx)
}
